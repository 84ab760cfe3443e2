package keypath

import (
	"strings"

	"github.com/MKhiriev/confmerge/models"
)

// DefaultDelimiter marks a nesting level inside a flat key, as in
// FOO__BAR=baz.
const DefaultDelimiter = "__"

// Nest expands a flat mapping whose keys contain delimiter into a nested
// one. {"FOO__BAR": 1, "FOO__BAZ": 2} becomes {"FOO": {"BAR": 1, "BAZ": 2}}.
//
// A key without the delimiter is copied to the top level as is. A key with
// several segments becomes a one-branch tree that is deep-merged into the
// result, so keys sharing a prefix share a subtree. Keys are applied in
// sorted order and a later key wins a conflicting leaf. An empty delimiter
// selects [DefaultDelimiter].
func Nest(m models.Mapping, delimiter string) (models.Mapping, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	out := make(models.Mapping, len(m))
	for _, key := range sortedKeys(m) {
		segments := strings.Split(key, delimiter)
		if len(segments) == 1 {
			out[key] = CloneValue(m[key])
			continue
		}

		if err := Merge(out, branch(segments, m[key])); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// branch builds {s0: {s1: {... sN: value}}}.
func branch(segments []string, value any) models.Mapping {
	root := make(models.Mapping, 1)
	current := root
	for i, segment := range segments {
		if i == len(segments)-1 {
			current[segment] = value
			break
		}
		next := make(models.Mapping, 1)
		current[segment] = next
		current = next
	}
	return root
}

// Flatten is the inverse of [Nest]: nested mappings are collapsed into
// delimiter-joined keys. Sequences and scalars become leaves.
func Flatten(m models.Mapping, delimiter string) models.Mapping {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	out := make(models.Mapping)
	flattenInto(out, m, "", delimiter)
	return out
}

func flattenInto(out, m models.Mapping, prefix, delimiter string) {
	for key, value := range m {
		full := key
		if prefix != "" {
			full = prefix + delimiter + key
		}

		if nested, ok := models.AsMapping(value); ok && len(nested) > 0 {
			flattenInto(out, nested, full, delimiter)
			continue
		}
		out[full] = value
	}
}
