package keypath

import (
	"sort"
	"strings"

	"github.com/MKhiriev/confmerge/models"
)

// Separator splits a lookup path into segments.
const Separator = "."

// Resolve returns the value found under path in root.
//
// An empty path resolves to root itself. Otherwise path is split on
// [Separator] and every segment descends one level; the descent fails, and
// Resolve reports false, as soon as the current value is not a mapping or
// the segment is missing. A failed descent never yields a partial value.
//
// With caseInsensitive set the segment and the keys of the level being
// visited are compared in lower case.
func Resolve(path string, root models.Mapping, caseInsensitive bool) (any, bool) {
	if path == "" {
		return root, true
	}

	current := any(root)
	for _, segment := range strings.Split(path, Separator) {
		level, ok := models.AsMapping(current)
		if !ok {
			return nil, false
		}

		if caseInsensitive {
			current, ok = lookupFold(level, segment)
		} else {
			current, ok = level[segment]
		}
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// lookupFold finds segment among the lower-cased keys of level.
//
// Keys that collide once lowered shadow each other; the lexicographically
// greatest original key wins so the outcome does not depend on map order.
func lookupFold(level models.Mapping, segment string) (any, bool) {
	segment = strings.ToLower(segment)

	var (
		found any
		ok    bool
	)
	for _, key := range sortedKeys(level) {
		if strings.ToLower(key) == segment {
			found, ok = level[key], true
		}
	}

	return found, ok
}

// LowerKeys returns a shallow copy of m with every key lower-cased.
// Colliding keys resolve the same way [Resolve] does.
func LowerKeys(m models.Mapping) models.Mapping {
	lowered := make(models.Mapping, len(m))
	for _, key := range sortedKeys(m) {
		lowered[strings.ToLower(key)] = m[key]
	}
	return lowered
}

func sortedKeys(m models.Mapping) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
