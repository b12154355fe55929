package hashing_test

import (
	"testing"

	"github.com/speakeasy-api/asyncapi/hashing"
	"github.com/speakeasy-api/asyncapi/pointer"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

type testEnum string

const (
	testEnumA testEnum = "hello"
)

type testTag struct {
	Name        string
	Description *string
	Extensions  map[string]any
}

type testMessage struct {
	Name    string
	Tags    []*testTag
	Headers *sequencedmap.Map[string, string]
	Payload *yaml.Node
	private string
}

func TestHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		v        any
		wantHash string
	}{
		{
			name:     "nil",
			v:        nil,
			wantHash: "cbf29ce484222325",
		},
		{
			name:     "string",
			v:        "hello",
			wantHash: "dcdd4ba1ec7623eb",
		},
		{
			name:     "enum",
			v:        testEnumA,
			wantHash: "dcdd4ba1ec7623eb",
		},
		{
			name:     "empty struct",
			v:        testTag{},
			wantHash: "cbf29ce484222325",
		},
		{
			name:     "struct",
			v:        testTag{Name: "t1"},
			wantHash: "4bc41ba8f835769a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantHash, hashing.Hash(tt.v))
		})
	}
}

func TestEqual_Success(t *testing.T) {
	t.Parallel()

	payloadA := &yaml.Node{}
	payloadB := &yaml.Node{}
	_ = yaml.Unmarshal([]byte("type: string"), payloadA)
	_ = yaml.Unmarshal([]byte("type:   string"), payloadB)

	tests := []struct {
		name     string
		a        any
		b        any
		expected bool
	}{
		{
			name:     "identical structs",
			a:        &testTag{Name: "t1", Description: pointer.From("d")},
			b:        &testTag{Name: "t1", Description: pointer.From("d")},
			expected: true,
		},
		{
			name:     "different descriptions",
			a:        &testTag{Name: "t1", Description: pointer.From("a")},
			b:        &testTag{Name: "t1", Description: pointer.From("b")},
			expected: false,
		},
		{
			name:     "extensions are compared",
			a:        &testTag{Name: "t1", Extensions: map[string]any{"x-a": 1}},
			b:        &testTag{Name: "t1"},
			expected: false,
		},
		{
			name:     "different extension values",
			a:        &testTag{Name: "t1", Extensions: map[string]any{"x-owner": "team-a"}},
			b:        &testTag{Name: "t1", Extensions: map[string]any{"x-owner": "team-b"}},
			expected: false,
		},
		{
			name:     "extension order is ignored",
			a:        &testTag{Name: "t1", Extensions: map[string]any{"x-a": 1, "x-b": 2}},
			b:        &testTag{Name: "t1", Extensions: map[string]any{"x-b": 2, "x-a": 1}},
			expected: true,
		},
		{
			name:     "delimiters inside strings do not collide with field boundaries",
			a:        &testMessage{Name: `t)Tags([Name("x")])(`},
			b:        &testMessage{Name: "t", Tags: []*testTag{{Name: "x"}}},
			expected: false,
		},
		{
			name:     "quotes inside strings do not collide",
			a:        &testTag{Name: `a"`, Description: pointer.From("b")},
			b:        &testTag{Name: `a")Description("b`},
			expected: false,
		},
		{
			name: "sequenced map order is ignored",
			a: &testMessage{Headers: sequencedmap.New(
				sequencedmap.NewElem("a", "1"),
				sequencedmap.NewElem("b", "2"),
			)},
			b: &testMessage{Headers: sequencedmap.New(
				sequencedmap.NewElem("b", "2"),
				sequencedmap.NewElem("a", "1"),
			)},
			expected: true,
		},
		{
			name:     "nil and empty sequenced maps are equal",
			a:        &testMessage{Headers: sequencedmap.New[string, string]()},
			b:        &testMessage{},
			expected: true,
		},
		{
			name:     "go map order is ignored",
			a:        map[string]int{"a": 1, "b": 2},
			b:        map[string]int{"b": 2, "a": 1},
			expected: true,
		},
		{
			name:     "different map values",
			a:        map[string]int{"a": 1},
			b:        map[string]int{"a": 2},
			expected: false,
		},
		{
			name:     "yaml nodes compare by content not position",
			a:        &testMessage{Payload: payloadA},
			b:        &testMessage{Payload: payloadB},
			expected: true,
		},
		{
			name:     "yaml nodes with different content",
			a:        &testMessage{Payload: payloadA},
			b:        &testMessage{Payload: &yaml.Node{Kind: yaml.ScalarNode, Value: "string"}},
			expected: false,
		},
		{
			name:     "unexported fields are ignored",
			a:        testMessage{Name: "m", private: "x"},
			b:        testMessage{Name: "m", private: "y"},
			expected: true,
		},
		{
			name:     "list element boundaries matter",
			a:        &testMessage{Tags: []*testTag{{Name: "ab"}, {Name: "c"}}},
			b:        &testMessage{Tags: []*testTag{{Name: "a"}, {Name: "bc"}}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, hashing.Equal(tt.a, tt.b))
			if tt.expected {
				assert.Equal(t, hashing.Hash(tt.a), hashing.Hash(tt.b))
			}
		})
	}
}
