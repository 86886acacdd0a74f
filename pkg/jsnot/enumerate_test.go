package jsnot

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestEnumerate(t *testing.T) {
	wrapper, err := FromJsonString(`{"b": [1, {"c": true}], "a": "x", "empty": {}}`)
	require.NoError(t, err)

	results := wrapper.Enumerate()

	paths := make([]string, len(results))
	for i, result := range results {
		paths[i] = result.Path()
	}

	// object keys in sorted order, array elements in index order
	require.Equal(t, []string{"a", `b\0`, `b\1\c`, "empty"}, paths)

	require.Equal(t, "x", results[0].Value)
	require.Equal(t, float64(1), results[1].Value)
	require.Equal(t, true, results[2].Value)
	require.Equal(t, map[string]interface{}{}, results[3].Value)
}

func TestEnumerateScalar(t *testing.T) {
	results := Wrap("only").Enumerate()
	require.Len(t, results, 1)
	require.Equal(t, "", results[0].Path())
	require.Equal(t, "only", results[0].Value)
}

func TestEnumerateRoundTripsThroughAtPath(t *testing.T) {
	wrapper := wrapModuleDocument(t)

	for _, result := range wrapper.Enumerate() {
		found, err := wrapper.AtSegments(result.Segments)
		require.NoError(t, err)
		require.Equal(t, result.Value, found.Value())
		require.True(t, wrapper.Has(result.Path()))
	}
}
