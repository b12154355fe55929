package extensions_test

import (
	"testing"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mappingNode(t *testing.T, data string) *yaml.Node {
	t.Helper()

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(data), &doc))
	require.Len(t, doc.Content, 1)
	return doc.Content[0]
}

func TestFromMapping_Success(t *testing.T) {
	t.Parallel()

	node := mappingNode(t, `
name: test
x-int: 1
x-map:
  a: b
`)

	e := extensions.FromMapping(node, extensions.IsExtension)
	require.NotNil(t, e)
	assert.Equal(t, 2, e.Len())
	assert.True(t, e.Has("x-int"))
	assert.True(t, e.Has("x-map"))
	assert.False(t, e.Has("name"))

	assert.Nil(t, extensions.FromMapping(mappingNode(t, "name: test"), extensions.IsExtension))
}

func TestGetExtensionValue_Success(t *testing.T) {
	t.Parallel()

	e := extensions.FromMapping(mappingNode(t, `
x-int: 1
x-string: hi
x-simple-map:
  key1: value1
`), extensions.IsExtension)

	intVal, err := extensions.GetExtensionValue[int](e, "x-int")
	require.NoError(t, err)
	assert.Equal(t, 1, *intVal)

	strVal, err := extensions.GetExtensionValue[string](e, "x-string")
	require.NoError(t, err)
	assert.Equal(t, "hi", *strVal)

	mapVal, err := extensions.GetExtensionValue[map[string]string](e, "x-simple-map")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"key1": "value1"}, *mapVal)

	missing, err := extensions.GetExtensionValue[int](e, "x-missing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = extensions.GetExtensionValue[int](e, "x-string")
	require.Error(t, err)
}

func TestExtensions_AppendTo_Success(t *testing.T) {
	t.Parallel()

	e := extensions.FromMapping(mappingNode(t, "x-a: 1\nx-b: two\n"), extensions.IsExtension)
	target := mappingNode(t, "name: test\n")

	e.AppendTo(target)

	out, err := yaml.Marshal(target)
	require.NoError(t, err)
	assert.Equal(t, "name: test\nx-a: 1\nx-b: two\n", string(out))
}

func TestExtensions_IsEqual_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        *extensions.Extensions
		b        *extensions.Extensions
		expected bool
	}{
		{
			name:     "both nil",
			expected: true,
		},
		{
			name:     "nil and empty",
			b:        extensions.New(),
			expected: true,
		},
		{
			name:     "same content different positions",
			a:        extensions.FromMapping(mappingNode(t, "x-a: 1"), extensions.IsExtension),
			b:        extensions.FromMapping(mappingNode(t, "\n\nx-a: 1"), extensions.IsExtension),
			expected: true,
		},
		{
			name:     "different values",
			a:        extensions.FromMapping(mappingNode(t, "x-a: 1"), extensions.IsExtension),
			b:        extensions.FromMapping(mappingNode(t, "x-a: 2"), extensions.IsExtension),
			expected: false,
		},
		{
			name:     "one side empty",
			a:        extensions.FromMapping(mappingNode(t, "x-a: 1"), extensions.IsExtension),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.a.IsEqual(tt.b))
		})
	}
}
