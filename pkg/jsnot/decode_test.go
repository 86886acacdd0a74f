package jsnot

import (
	"github.com/bigrep/jsnot/pkg/utils"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromJson(t *testing.T) {
	wrapper, err := FromJsonString(`{"a": 1, "b": [true, null]}`)
	require.NoError(t, err)

	// encoding/json decodes every number as float64
	a, err := wrapper.AtPath("a")
	require.NoError(t, err)
	require.Equal(t, float64(1), a.Value())
	require.True(t, a.Satisfy(KindFloat))
	require.False(t, a.Satisfy(KindInt))

	require.Equal(t, true, wrapper.Get(`b\0`, nil))
	require.Equal(t, nil, wrapper.Get(`b\1`, "x"))

	_, err = FromJsonString(`{"a":`)
	require.Error(t, err)
}

func TestFromJsonReader(t *testing.T) {
	wrapper, err := FromJsonReader(strings.NewReader(moduleDocument))
	require.NoError(t, err)
	require.Equal(t, "JSNOT", wrapper.Get(`module\name`, nil))
}

func TestFromJsonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "module.json")
	require.NoError(t, utils.WriteFile(path, moduleDocument, 0644))

	wrapper, err := FromJsonFile(path)
	require.NoError(t, err)
	require.Equal(t, "0.1", wrapper.Get(`module\version`, nil))

	_, err = FromJsonFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestFromYaml(t *testing.T) {
	wrapper, err := FromYaml([]byte("module:\n  name: JSNOT\n  version: \"0.1\"\n  dependencies:\n    - re\n    - json\n"))
	require.NoError(t, err)

	require.Equal(t, "0.1", wrapper.Get(`module\version`, nil))
	require.Equal(t, "json", wrapper.Get(`module\dependencies\1`, nil))

	// sigs.k8s.io/yaml produces json-shaped values
	require.True(t, wrapper.Index("module").Satisfy(KindObject))
	require.True(t, wrapper.Index(`module\dependencies`).Satisfy(KindArray))
}

func TestFromYamlStream(t *testing.T) {
	wrappers, err := FromYamlStream([]byte("a: 1\n---\nb: 2\n"))
	require.NoError(t, err)
	require.Len(t, wrappers, 2)

	// yaml.v3 keeps integer identity
	a, err := wrappers[0].AtPath("a")
	require.NoError(t, err)
	require.True(t, a.Satisfy(KindInt))

	require.Equal(t, 2, wrappers[1].Get("b", nil))

	empty, err := FromYamlStream(nil)
	require.NoError(t, err)
	require.Len(t, empty, 0)
}
