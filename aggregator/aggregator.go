package aggregator

import (
	"fmt"
	"sort"

	"github.com/MKhiriev/confmerge/internal/keypath"
	"github.com/MKhiriev/confmerge/internal/loader"
	"github.com/MKhiriev/confmerge/internal/logger"
	"github.com/MKhiriev/confmerge/models"
	"github.com/MKhiriev/confmerge/store"
)

const (
	envSource      = "env"
	objectSource   = "object"
	keyValueSource = "key/value"
)

// Aggregator records configuration sources and merges them on Build.
// It is not safe for concurrent use.
type Aggregator struct {
	jobs    []job
	loaders loader.Loaders
	log     *logger.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the logger used during Build.
func WithLogger(l *logger.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.log = l
		}
	}
}

// WithLoaders replaces the file loaders. Nil loaders keep the default.
func WithLoaders(l loader.Loaders) Option {
	return func(a *Aggregator) {
		if l.JSON != nil {
			a.loaders.JSON = l.JSON
		}
		if l.YAML != nil {
			a.loaders.YAML = l.YAML
		}
		if l.DotEnv != nil {
			a.loaders.DotEnv = l.DotEnv
		}
	}
}

// New returns an empty Aggregator.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		jobs:    make([]job, 0, 4),
		loaders: loader.Default(),
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.GetChildLogger("aggregator")
	return a
}

// AddObject registers an in-memory mapping.
func (a *Aggregator) AddObject(data models.Mapping, opts ...SourceOption) *Aggregator {
	a.jobs = append(a.jobs, objectJob{
		name: objectSource,
		load: func() models.Mapping { return data },
		opts: newSourceOptions(opts),
	})
	return a
}

// AddEnvVars registers the process environment. The snapshot is taken at
// Build time.
func (a *Aggregator) AddEnvVars(opts ...SourceOption) *Aggregator {
	a.jobs = append(a.jobs, objectJob{
		name: envSource,
		load: loader.Env,
		opts: newSourceOptions(opts),
	})
	return a
}

// AddKeyValue registers a single top-level key.
func (a *Aggregator) AddKeyValue(key string, value any) *Aggregator {
	a.jobs = append(a.jobs, objectJob{
		name: keyValueSource,
		load: func() models.Mapping { return models.Mapping{key: value} },
		opts: newSourceOptions(nil),
	})
	return a
}

// AddJSONFile registers a JSON file. Comments and trailing commas are
// accepted.
func (a *Aggregator) AddJSONFile(path string, opts ...SourceOption) *Aggregator {
	a.jobs = append(a.jobs, fileJob{path: path, loader: a.loaders.JSON, opts: newSourceOptions(opts)})
	return a
}

// AddYAMLFile registers a YAML file.
func (a *Aggregator) AddYAMLFile(path string, opts ...SourceOption) *Aggregator {
	a.jobs = append(a.jobs, fileJob{path: path, loader: a.loaders.YAML, opts: newSourceOptions(opts)})
	return a
}

// AddDotEnvFile registers a KEY=VALUE file.
func (a *Aggregator) AddDotEnvFile(path string, opts ...SourceOption) *Aggregator {
	a.jobs = append(a.jobs, dotEnvJob{path: path, loader: a.loaders.DotEnv, opts: newSourceOptions(opts)})
	return a
}

// Len returns the number of registered sources.
func (a *Aggregator) Len() int {
	return len(a.jobs)
}

// Build loads every source in registration order, deep-merges them and
// returns a cached store over the result. opts configure the store.
//
// The first failing source aborts the build; no store is returned.
func (a *Aggregator) Build(opts ...store.Option) (*store.CachedStore, error) {
	data, err := a.merge()
	if err != nil {
		a.log.Error().Err(err).Msg("error building config")
		return nil, err
	}

	o := store.DefaultOptions()
	o.Logger = a.log
	for _, opt := range opts {
		opt(&o)
	}

	return store.NewCachedStore(data, store.WithOptions(o)), nil
}

func (a *Aggregator) merge() (models.Mapping, error) {
	result := make(models.Mapping)
	for _, j := range a.jobs {
		m, err := a.load(j)
		if err != nil {
			return nil, err
		}

		opts := j.options()
		if opts.validator != nil && !opts.validator(m) {
			return nil, &SourceValidationError{Source: j.source()}
		}
		if opts.namespace != "" {
			m = models.Mapping{opts.namespace: m}
		}

		if err = keypath.Merge(result, m); err != nil {
			return nil, fmt.Errorf("%s: %w", j.source(), err)
		}

		a.log.Debug().
			Str("source", j.source()).
			Strs("keys", keys(m)).
			Msg("config source merged")
	}
	return result, nil
}

// load reads one job and applies nesting where the job kind allows it.
func (a *Aggregator) load(j job) (models.Mapping, error) {
	var (
		m   models.Mapping
		err error
	)

	switch j := j.(type) {
	case objectJob:
		m = j.load()
		if m == nil {
			m = models.Mapping{}
		}
	case fileJob:
		if m, err = j.loader(j.path); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadSource, err)
		}
		return m, nil
	case dotEnvJob:
		if m, err = j.loader(j.path); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadSource, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown source %T", ErrLoadSource, j)
	}

	opts := j.options()
	if !opts.nesting {
		return m, nil
	}
	nested, err := keypath.Nest(m, opts.delimiter)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadSource, j.source(), err)
	}
	return nested, nil
}

func keys(m models.Mapping) []string {
	out := make([]string, 0, len(m))
	for key := range m {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
