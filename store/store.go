package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/confmerge/internal/keypath"
	"github.com/MKhiriev/confmerge/internal/logger"
	"github.com/MKhiriev/confmerge/internal/shape"
	"github.com/MKhiriev/confmerge/models"
)

// Store holds one merged configuration mapping and answers lookups
// against it. A Store is read-only after [New] and safe for concurrent use.
type Store struct {
	data models.Mapping
	opts Options
	log  *logger.Logger
}

// New returns a Store owning a deep copy of data.
//
// With RemoveKeyUnderscores or RemoveKeyHyphens set, the first "_" or "-"
// of every key, at every depth, is removed here, once: "snake_case" becomes
// "snakecase" while "a_b_c" becomes "ab_c".
func New(data models.Mapping, opts ...Option) *Store {
	o := newOptions(opts)

	cfg := keypath.Clone(data)
	if cfg == nil {
		cfg = models.Mapping{}
	}
	if o.RemoveKeyUnderscores {
		cfg = keypath.TransformKeys(cfg, keypath.RemoveFirst("_"))
	}
	if o.RemoveKeyHyphens {
		cfg = keypath.TransformKeys(cfg, keypath.RemoveFirst("-"))
	}

	return &Store{
		data: cfg,
		opts: o,
		log:  o.Logger.GetChildLogger("store"),
	}
}

// Get resolves path and returns the value found there, or nil when the
// path does not exist.
//
// Unless the store is case-sensitive the path is lower-cased and matched
// against lower-cased keys. Values that are not mappings are returned as
// they are, whatever target is; sequences are copied. A mapping is returned
// as a copy when target is nil; otherwise it is reconciled to target's property names, coerced,
// instantiated into target.New() and, when shape validation is on, checked
// against target's rules. Any failed rule or conversion yields a
// *[ShapeValidationError].
//
// Get never modifies the stored mapping.
func (s *Store) Get(ctx context.Context, path string, target *models.Shape) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !s.opts.CaseSensitiveKeys {
		path = strings.ToLower(path)
	}

	value, ok := keypath.Resolve(path, s.data, !s.opts.CaseSensitiveKeys)
	if !ok {
		return nil, nil
	}

	obj, isMapping := models.AsMapping(value)
	if !isMapping {
		return keypath.CloneValue(value), nil
	}

	if target == nil {
		return keypath.Clone(obj), nil
	}

	return s.materialize(ctx, path, obj, target)
}

func (s *Store) materialize(ctx context.Context, path string, obj models.Mapping, target *models.Shape) (any, error) {
	reconciled := shape.Reconcile(obj, target)
	values, typeViolations := shape.Coerce(reconciled, target)

	instance, err := shape.Instantiate(values, target)
	if err != nil {
		return nil, err
	}

	if !s.opts.ValidateShape {
		if len(typeViolations) > 0 {
			s.log.Debug().
				Str("path", path).
				Str("shape", target.Name).
				Int("skipped", len(typeViolations)).
				Msg("unconvertible values left at zero value")
		}
		return instance, nil
	}

	violations := mergeViolations(typeViolations, s.opts.Validator.Validate(ctx, target, values))
	if len(violations) > 0 {
		return nil, &ShapeValidationError{
			Shape:      target.Name,
			Path:       path,
			Violations: violations,
		}
	}

	return instance, nil
}

// mergeViolations appends rule violations to type violations, skipping
// properties that already failed conversion: their value is missing from
// the rule input and would otherwise be reported twice.
func mergeViolations(typed, rules []models.Violation) []models.Violation {
	failed := make(map[string]struct{}, len(typed))
	for _, v := range typed {
		failed[v.Property] = struct{}{}
	}

	out := append([]models.Violation(nil), typed...)
	for _, v := range rules {
		if _, skip := failed[v.Property]; !skip {
			out = append(out, v)
		}
	}
	return out
}
