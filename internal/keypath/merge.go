package keypath

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/confmerge/models"
)

// Merge deep-merges src into dst in place.
//
// Nested mappings present on both sides are merged recursively, disjoint
// keys from both sides are kept, and any other conflict is won by src.
// src is cloned first, so dst never shares nested mappings with it. dst
// must be non-nil.
func Merge(dst, src models.Mapping) error {
	clone := Clone(src)
	if err := mergo.Merge(&dst, clone, mergo.WithOverride); err != nil {
		return fmt.Errorf("error merging configs: %w", err)
	}
	return nil
}

// Clone returns a deep copy of m. Nested mappings and sequences are copied,
// scalars are shared.
func Clone(m models.Mapping) models.Mapping {
	if m == nil {
		return nil
	}
	out := make(models.Mapping, len(m))
	for key, value := range m {
		out[key] = CloneValue(value)
	}
	return out
}

// CloneValue deep-copies nested mappings and sequences inside value.
// Scalars are returned as they are.
func CloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return Clone(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = CloneValue(item)
		}
		return out
	default:
		return value
	}
}
