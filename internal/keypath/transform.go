package keypath

import (
	"strings"

	"github.com/MKhiriev/confmerge/models"
)

// RenameFunc maps a key to its new name.
type RenameFunc func(key string) string

// TransformKeys returns a copy of m in which every key, at every depth, is
// replaced by rename(key). Nested mappings are processed recursively; all
// other values, nil and sequences included, are copied unchanged.
//
// rename is applied as given: TransformKeys does not make it idempotent and
// two keys renamed to the same name overwrite each other.
func TransformKeys(m models.Mapping, rename RenameFunc) models.Mapping {
	out := make(models.Mapping, len(m))
	for _, key := range sortedKeys(m) {
		value := m[key]
		if nested, ok := models.AsMapping(value); ok {
			value = TransformKeys(nested, rename)
		}
		out[rename(key)] = value
	}
	return out
}

// RemoveFirst returns a RenameFunc that deletes only the first occurrence
// of sub from a key: "a_b_c" becomes "ab_c".
func RemoveFirst(sub string) RenameFunc {
	return func(key string) string {
		return strings.Replace(key, sub, "", 1)
	}
}

// ToLower is a RenameFunc folding keys to lower case.
func ToLower(key string) string {
	return strings.ToLower(key)
}
