package jsnot

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestKindOf(t *testing.T) {
	require.Equal(t, KindNull, KindOf(nil))
	require.Equal(t, KindBool, KindOf(true))
	require.Equal(t, KindInt, KindOf(3))
	require.Equal(t, KindInt, KindOf(int64(3)))
	require.Equal(t, KindInt, KindOf(uint32(3)))
	require.Equal(t, KindFloat, KindOf(3.5))
	require.Equal(t, KindFloat, KindOf(float32(3.5)))
	require.Equal(t, KindString, KindOf("x"))
	require.Equal(t, KindArray, KindOf([]interface{}{}))
	require.Equal(t, KindObject, KindOf(map[string]interface{}{}))

	// outside the decoded-document model
	require.Equal(t, KindInvalid, KindOf(make(chan int)))
	require.Equal(t, KindInvalid, KindOf(map[int]interface{}{}))
	require.Equal(t, KindInvalid, KindOf([]string{"x"}))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "float", KindFloat.String())
	require.Equal(t, "object", KindObject.String())
	require.Equal(t, "invalid", KindInvalid.String())
	require.Equal(t, "invalid", Kind(99).String())
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"null", "bool", "int", "float", "string", "array", "object"} {
		kind, err := ParseKind(name)
		require.NoError(t, err)
		require.Equal(t, name, kind.String())
	}

	_, err := ParseKind("number")
	require.Error(t, err)
	_, err = ParseKind("invalid")
	require.Error(t, err)
}
