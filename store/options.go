package store

import (
	"github.com/MKhiriev/confmerge/internal/logger"
	"github.com/MKhiriev/confmerge/internal/validators"
)

// Options control how a [Store] normalises keys and materialises shapes.
// They are fixed when the store is constructed.
type Options struct {
	// CaseSensitiveKeys makes path segments match keys exactly.
	// Default false.
	CaseSensitiveKeys bool

	// ValidateShape evaluates the shape rules after instantiation.
	// Default true.
	ValidateShape bool

	// RemoveKeyUnderscores deletes the first "_" of every key at
	// construction. Default false.
	RemoveKeyUnderscores bool

	// RemoveKeyHyphens deletes the first "-" of every key at construction.
	// Default false.
	RemoveKeyHyphens bool

	// Validator evaluates shape rules. Defaults to the go-playground backed
	// [validators.NewRuleValidator].
	Validator validators.Validator

	// Logger receives debug output. Defaults to [logger.Nop].
	Logger *logger.Logger
}

// Option mutates Options during construction.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		ValidateShape: true,
	}
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Validator == nil {
		o.Validator = validators.NewRuleValidator()
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	return o
}

// WithCaseSensitiveKeys makes lookups match key case exactly.
func WithCaseSensitiveKeys() Option {
	return func(o *Options) { o.CaseSensitiveKeys = true }
}

// WithShapeValidation turns rule evaluation on or off.
func WithShapeValidation(enabled bool) Option {
	return func(o *Options) { o.ValidateShape = enabled }
}

// WithRemoveKeyUnderscores strips the first underscore of every key.
func WithRemoveKeyUnderscores() Option {
	return func(o *Options) { o.RemoveKeyUnderscores = true }
}

// WithRemoveKeyHyphens strips the first hyphen of every key.
func WithRemoveKeyHyphens() Option {
	return func(o *Options) { o.RemoveKeyHyphens = true }
}

// WithValidator replaces the rule evaluator.
func WithValidator(v validators.Validator) Option {
	return func(o *Options) { o.Validator = v }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOptions applies a complete Options value, e.g. one built from CLI
// settings. Nil collaborators keep their defaults.
func WithOptions(src Options) Option {
	return func(o *Options) {
		validator, log := o.Validator, o.Logger
		*o = src
		if o.Validator == nil {
			o.Validator = validator
		}
		if o.Logger == nil {
			o.Logger = log
		}
	}
}
