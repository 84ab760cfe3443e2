package shape

import (
	"strings"

	"github.com/MKhiriev/confmerge/internal/keypath"
	"github.com/MKhiriev/confmerge/models"
)

// Reconcile returns a mapping holding, for every declared property of s,
// the value stored in obj under the case-insensitively matching key.
//
// Properties missing from obj are present with a nil value; keys of obj
// the shape does not declare are dropped. obj is not modified.
func Reconcile(obj models.Mapping, s *models.Shape) models.Mapping {
	lowered := keypath.LowerKeys(obj)

	out := make(models.Mapping, len(s.Fields))
	for _, name := range s.PropertyNames() {
		out[name] = lowered[strings.ToLower(name)]
	}
	return out
}
