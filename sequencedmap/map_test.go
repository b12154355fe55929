package sequencedmap_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMap_Set_PreservesOrder_Success(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New(
		sequencedmap.NewElem("b", 1),
		sequencedmap.NewElem("a", 2),
	)
	m.Set("c", 3)

	assert.Equal(t, []string{"b", "a", "c"}, slices.Collect(m.Keys()))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(m.Values()))
	assert.Equal(t, 3, sequencedmap.Len(m))
	assert.Equal(t, 3, m.Len())
}

func TestMap_Set_ExistingKeyReplacesInPlace_Success(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New(
		sequencedmap.NewElem("a", 1),
		sequencedmap.NewElem("b", 2),
	)
	m.Set("a", 10)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"a", "b"}, slices.Collect(m.Keys()))
	assert.Equal(t, 10, m.GetOrZero("a"))
}

func TestMap_Delete_Success(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New(
		sequencedmap.NewElem("a", 1),
		sequencedmap.NewElem("b", 2),
		sequencedmap.NewElem("c", 3),
	)
	m.Delete("b")
	m.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, slices.Collect(m.Keys()))
	assert.False(t, m.Has("b"))
}

func TestMap_NilSafety_Success(t *testing.T) {
	t.Parallel()

	var m *sequencedmap.Map[string, int]

	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("a"))
	assert.Equal(t, 0, m.GetOrZero("a"))
	assert.Empty(t, slices.Collect(m.Keys()))
	assert.False(t, m.IsInitialized())

	_, err := m.NavigateWithKey("a")
	require.Error(t, err)
}

func TestMap_NavigateWithKey(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New(sequencedmap.NewElem("a", "x"))

	v, err := m.NavigateWithKey("a")
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	_, err = m.NavigateWithKey("b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMap_AllUntyped_Success(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New(
		sequencedmap.NewElem("b", 2),
		sequencedmap.NewElem("a", 1),
	)

	keys := []any{}
	values := []any{}
	for k, v := range m.AllUntyped() {
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal(t, []any{"b", "a"}, keys)
	assert.Equal(t, []any{2, 1}, values)
}

func TestMap_MutateWhileIterating_Success(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New(
		sequencedmap.NewElem("a", 1),
		sequencedmap.NewElem("b", 2),
		sequencedmap.NewElem("c", 3),
	)

	visited := []string{}
	for k := range m.All() {
		visited = append(visited, k)
		if k == "a" {
			m.Delete("b")
			m.Set("d", 4)
		}
	}

	assert.Equal(t, []string{"a", "c"}, visited, "deleted keys are skipped and new keys wait for the next iteration")
	assert.Equal(t, []string{"a", "c", "d"}, slices.Collect(m.Keys()))
}

func TestMap_NavigateWithKey_NonStringKeys_Error(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New(sequencedmap.NewElem(1, "one"))

	_, err := m.NavigateWithKey("1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be navigated")
}

func TestMap_MarshalJSON_Success(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New(
		sequencedmap.NewElem("z", 1),
		sequencedmap.NewElem("a", 2),
	)

	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":1,"a":2}`, string(data))
	assert.Equal(t, `{"z":1,"a":2}`, string(data))
}

func TestMap_YAML_RoundTrip_Success(t *testing.T) {
	t.Parallel()

	type holder struct {
		Map *sequencedmap.Map[string, string] `yaml:"map"`
	}

	input := `map:
  zeta: one
  alpha: two
  mid: three
`

	var h holder
	require.NoError(t, yaml.Unmarshal([]byte(input), &h))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, slices.Collect(h.Map.Keys()))

	var out strings.Builder
	enc := yaml.NewEncoder(&out)
	enc.SetIndent(2)
	require.NoError(t, enc.Encode(&h))
	require.NoError(t, enc.Close())
	assert.Equal(t, input, out.String())
}

func TestMap_UnmarshalYAML_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "sequence instead of mapping",
			input: "map:\n  - a\n  - b\n",
		},
		{
			name:  "duplicate key",
			input: "map:\n  a: one\n  a: two\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var h struct {
				Map *sequencedmap.Map[string, string] `yaml:"map"`
			}
			require.Error(t, yaml.Unmarshal([]byte(tt.input), &h))
		})
	}
}

func TestFrom_Ensure_Success(t *testing.T) {
	t.Parallel()

	src := sequencedmap.New(sequencedmap.NewElem("a", 1))
	copied := sequencedmap.From(src.All())
	copied.Set("b", 2)

	assert.Equal(t, 1, src.Len())
	assert.Equal(t, 2, sequencedmap.Len(copied))

	var missing *sequencedmap.Map[string, int]
	ensured := sequencedmap.Ensure(missing)
	require.NotNil(t, ensured)
	assert.True(t, ensured.IsInitialized())
}
