package aggregator

import (
	"github.com/MKhiriev/confmerge/internal/keypath"
	"github.com/MKhiriev/confmerge/internal/loader"
	"github.com/MKhiriev/confmerge/models"
)

// ValidatorFunc reports whether a loaded source is acceptable.
type ValidatorFunc func(models.Mapping) bool

// SourceOption configures one registered source.
type SourceOption func(*sourceOptions)

type sourceOptions struct {
	namespace string
	nesting   bool
	delimiter string
	validator ValidatorFunc
}

func newSourceOptions(opts []SourceOption) sourceOptions {
	o := sourceOptions{delimiter: keypath.DefaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithNamespace nests the whole source under the key ns.
func WithNamespace(ns string) SourceOption {
	return func(o *sourceOptions) { o.namespace = ns }
}

// WithNesting expands delimiter-encoded keys (FOO__BAR) into nested
// mappings. It has no effect on JSON and YAML files, whose format already
// expresses structure.
func WithNesting() SourceOption {
	return func(o *sourceOptions) { o.nesting = true }
}

// WithNestingDelimiter enables nesting with a custom delimiter.
func WithNestingDelimiter(delimiter string) SourceOption {
	return func(o *sourceOptions) {
		o.nesting = true
		o.delimiter = delimiter
	}
}

// WithValidator rejects the build when fn returns false for the source.
// fn sees the mapping after nesting and before namespacing.
func WithValidator(fn ValidatorFunc) SourceOption {
	return func(o *sourceOptions) { o.validator = fn }
}

// job is one deferred source. The set of implementations is closed; Build
// dispatches on the concrete type.
type job interface {
	source() string
	options() sourceOptions
}

// objectJob carries in-memory data: objects, key/value pairs and the
// environment snapshot.
type objectJob struct {
	name string
	load func() models.Mapping
	opts sourceOptions
}

// fileJob is a JSON or YAML file. Nesting never applies to it.
type fileJob struct {
	path   string
	loader loader.FileLoader
	opts   sourceOptions
}

// dotEnvJob is a KEY=VALUE file.
type dotEnvJob struct {
	path   string
	loader loader.FileLoader
	opts   sourceOptions
}

func (j objectJob) source() string         { return j.name }
func (j objectJob) options() sourceOptions { return j.opts }
func (j fileJob) source() string           { return j.path }
func (j fileJob) options() sourceOptions   { return j.opts }
func (j dotEnvJob) source() string         { return j.path }
func (j dotEnvJob) options() sourceOptions { return j.opts }
