package keypath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/confmerge/models"
)

// TestMerge_DisjointSiblingsKept verifies that keys from both sides survive.
func TestMerge_DisjointSiblingsKept(t *testing.T) {
	dst := models.Mapping{"db": map[string]any{"host": "localhost"}}
	src := models.Mapping{"db": map[string]any{"port": 5432}, "debug": true}

	require.NoError(t, Merge(dst, src))

	assert.Equal(t, models.Mapping{
		"db":    map[string]any{"host": "localhost", "port": 5432},
		"debug": true,
	}, dst)
}

// TestMerge_LaterLeafWins verifies conflict resolution in favour of src.
func TestMerge_LaterLeafWins(t *testing.T) {
	dst := models.Mapping{"db": map[string]any{"host": "localhost", "port": 5432}}
	src := models.Mapping{"db": map[string]any{"host": "db.internal"}}

	require.NoError(t, Merge(dst, src))

	assert.Equal(t, "db.internal", dst["db"].(map[string]any)["host"])
	assert.Equal(t, 5432, dst["db"].(map[string]any)["port"])
}

// TestMerge_DoesNotAliasSource verifies that later merges never write into
// the mappings of an earlier source.
func TestMerge_DoesNotAliasSource(t *testing.T) {
	first := models.Mapping{"db": map[string]any{"host": "localhost"}}
	dst := models.Mapping{}

	require.NoError(t, Merge(dst, first))
	require.NoError(t, Merge(dst, models.Mapping{"db": map[string]any{"port": 1}}))

	assert.Equal(t, models.Mapping{"db": map[string]any{"host": "localhost"}}, first)
}

// TestClone_Deep verifies that nested mappings and sequences are copied.
func TestClone_Deep(t *testing.T) {
	in := models.Mapping{"a": map[string]any{"b": []any{1, 2}}}

	out := Clone(in)
	out["a"].(map[string]any)["b"].([]any)[0] = 99

	assert.Equal(t, 1, in["a"].(map[string]any)["b"].([]any)[0])
	assert.Nil(t, Clone(nil))
}

// TestCloneValue verifies copying of sequences and passthrough of scalars.
func TestCloneValue(t *testing.T) {
	in := []any{map[string]any{"a": 1}, "b"}

	out := CloneValue(in).([]any)
	out[0].(map[string]any)["a"] = 2
	out[1] = "c"

	assert.Equal(t, []any{map[string]any{"a": 1}, "b"}, in)
	assert.Equal(t, "x", CloneValue("x"))
	assert.Nil(t, CloneValue(nil))
}
