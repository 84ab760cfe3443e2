package loader

import (
	"fmt"
	"os"

	"github.com/spf13/cast"

	"github.com/MKhiriev/confmerge/models"
)

// FileLoader reads the file at path into a mapping.
type FileLoader func(path string) (models.Mapping, error)

// Loaders bundles the file loaders an aggregator uses, one per format.
type Loaders struct {
	JSON   FileLoader
	YAML   FileLoader
	DotEnv FileLoader
}

// Default returns the loaders backed by the real parsers.
func Default() Loaders {
	return Loaders{
		JSON:   JSON,
		YAML:   YAML,
		DotEnv: DotEnv,
	}
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %q: %w", path, err)
	}
	return data, nil
}

// normalize rewrites parser output into map[string]any / []any trees.
// YAML produces map[any]any for non-string keys; those keys are stringified.
func normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(models.Mapping, len(v))
		for key, item := range v {
			out[key] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(models.Mapping, len(v))
		for key, item := range v {
			out[cast.ToString(key)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	default:
		return value
	}
}

// toMapping asserts that a parsed document is a mapping at the top level.
// An empty document is an empty mapping.
func toMapping(path string, doc any) (models.Mapping, error) {
	if doc == nil {
		return models.Mapping{}, nil
	}
	m, ok := normalize(doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q holds %T", ErrNotMapping, path, doc)
	}
	return m, nil
}

func fromStrings(vars map[string]string) models.Mapping {
	out := make(models.Mapping, len(vars))
	for key, value := range vars {
		out[key] = value
	}
	return out
}
