package config

import (
	"fmt"
	"strings"
)

// SourceKind names the loader used for a [Source].
type SourceKind string

// Supported source kinds.
const (
	SourceJSON   SourceKind = "json"
	SourceYAML   SourceKind = "yaml"
	SourceDotEnv SourceKind = "dotenv"
	SourceEnv    SourceKind = "env"
)

// Source is one configuration source of a confq run, written on the
// command line as kind[@namespace][=path]:
//
//	yaml=config.yaml
//	dotenv@secrets=.env
//	env@env
//
// It implements encoding.TextUnmarshaler for CONFQ_SOURCES and the
// pflag.Value interface for --source.
type Source struct {
	Kind      SourceKind
	Namespace string
	Path      string
}

// ParseSource parses kind[@namespace][=path].
func ParseSource(s string) (Source, error) {
	var src Source

	head, path, hasPath := strings.Cut(strings.TrimSpace(s), "=")
	kind, namespace, hasNamespace := strings.Cut(head, "@")
	if hasNamespace && namespace == "" {
		return Source{}, fmt.Errorf("%w: %q: empty namespace", ErrInvalidSource, s)
	}
	if hasPath && path == "" {
		return Source{}, fmt.Errorf("%w: %q: empty path", ErrInvalidSource, s)
	}

	src.Kind = SourceKind(strings.ToLower(kind))
	src.Namespace = namespace
	src.Path = path

	if err := src.validate(); err != nil {
		return Source{}, err
	}
	return src, nil
}

func (s Source) validate() error {
	switch s.Kind {
	case SourceEnv:
		if s.Path != "" {
			return fmt.Errorf("%w: %s takes no path", ErrInvalidSource, s.Kind)
		}
	case SourceJSON, SourceYAML, SourceDotEnv:
		if s.Path == "" {
			return fmt.Errorf("%w: %s needs a path", ErrInvalidSource, s.Kind)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedSourceKind, s.Kind)
	}
	return nil
}

// String returns the kind[@namespace][=path] form of s.
func (s Source) String() string {
	var b strings.Builder
	b.WriteString(string(s.Kind))
	if s.Namespace != "" {
		b.WriteString("@" + s.Namespace)
	}
	if s.Path != "" {
		b.WriteString("=" + s.Path)
	}
	return b.String()
}

// UnmarshalText parses one entry of CONFQ_SOURCES.
func (s *Source) UnmarshalText(text []byte) error {
	src, err := ParseSource(string(text))
	if err != nil {
		return err
	}
	*s = src
	return nil
}

// SourcesFlag appends every --source occurrence to a slice of sources.
type SourcesFlag struct {
	Sources *[]Source
}

// String joins the collected sources with commas.
func (f SourcesFlag) String() string {
	if f.Sources == nil {
		return ""
	}
	parts := make([]string, 0, len(*f.Sources))
	for _, src := range *f.Sources {
		parts = append(parts, src.String())
	}
	return strings.Join(parts, ",")
}

// Set parses and appends one source.
func (f SourcesFlag) Set(value string) error {
	src, err := ParseSource(value)
	if err != nil {
		return err
	}
	*f.Sources = append(*f.Sources, src)
	return nil
}

// Type names the flag value in help output.
func (f SourcesFlag) Type() string {
	return "kind[@ns][=path]"
}
