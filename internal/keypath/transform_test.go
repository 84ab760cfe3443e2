package keypath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/confmerge/models"
)

// TestTransformKeys_Recursive verifies that keys are renamed at every depth.
func TestTransformKeys_Recursive(t *testing.T) {
	in := models.Mapping{
		"NESTED_OBJECT": map[string]any{
			"L2_NESTED_OBJECT": map[string]any{
				"L2_NESTED_OBJECT_SCREAMING_SNAKE_CASE": "L2_NESTED_OBJECT_SCREAMING_SNAKE_CASE",
			},
		},
	}

	out := TransformKeys(in, ToLower)

	assert.Equal(t, models.Mapping{
		"nested_object": map[string]any{
			"l2_nested_object": map[string]any{
				"l2_nested_object_screaming_snake_case": "L2_NESTED_OBJECT_SCREAMING_SNAKE_CASE",
			},
		},
	}, out)
}

// TestTransformKeys_NonMappingValuesUnchanged verifies that sequences, nil
// and scalars are copied as they are.
func TestTransformKeys_NonMappingValuesUnchanged(t *testing.T) {
	list := []any{map[string]any{"INNER": 1}}
	in := models.Mapping{"LIST": list, "NIL": nil, "NUM": 42}

	out := TransformKeys(in, ToLower)

	assert.Equal(t, list, out["list"])
	assert.Contains(t, out, "nil")
	assert.Nil(t, out["nil"])
	assert.Equal(t, 42, out["num"])
}

// TestTransformKeys_DoesNotModifyInput verifies that a new mapping is built.
func TestTransformKeys_DoesNotModifyInput(t *testing.T) {
	in := models.Mapping{"A": map[string]any{"B": 1}}

	TransformKeys(in, ToLower)

	assert.Equal(t, models.Mapping{"A": map[string]any{"B": 1}}, in)
}

// TestRemoveFirst_OnlyFirstOccurrence verifies the single replacement.
func TestRemoveFirst_OnlyFirstOccurrence(t *testing.T) {
	rename := RemoveFirst("_")

	assert.Equal(t, "snakecase", rename("snake_case"))
	assert.Equal(t, "ab_c", rename("a_b_c"))
	assert.Equal(t, "plain", rename("plain"))
	assert.Equal(t, "kebabcase", RemoveFirst("-")("kebab-case"))
}
