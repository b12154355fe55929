package interfaces_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/speakeasy-api/asyncapi/internal/interfaces"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/stretchr/testify/assert"
)

func TestSatisfies(t *testing.T) {
	t.Parallel()

	orderedMap := reflect.TypeFor[interfaces.OrderedMap]()

	tests := []struct {
		name     string
		actual   reflect.Type
		iface    reflect.Type
		expected bool
	}{
		{
			name:     "sequenced map is ordered",
			actual:   reflect.TypeOf(sequencedmap.New[string, int]()),
			iface:    orderedMap,
			expected: true,
		},
		{
			name:     "sequenced map is navigable",
			actual:   reflect.TypeOf(sequencedmap.New[string, int]()),
			iface:    reflect.TypeFor[interfaces.KeyNavigable](),
			expected: true,
		},
		{
			name:     "plain map is not ordered",
			actual:   reflect.TypeOf(map[string]int{}),
			iface:    orderedMap,
			expected: false,
		},
		{
			name:     "concrete target type",
			actual:   reflect.TypeOf(sequencedmap.New[string, int]()),
			iface:    reflect.TypeOf(map[string]int{}),
			expected: false,
		},
		{
			name:     "nil actual",
			iface:    orderedMap,
			expected: false,
		},
		{
			name:     "nil interface",
			actual:   reflect.TypeOf(""),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, interfaces.Satisfies(tt.actual, tt.iface))
		})
	}
}

func TestIs(t *testing.T) {
	t.Parallel()

	assert.True(t, interfaces.Is[fmt.Stringer](reflect.TypeFor[int]()))
	assert.True(t, interfaces.Is[interfaces.OrderedMap](sequencedmap.New[string, string]()))
	assert.False(t, interfaces.Is[interfaces.OrderedMap]("channels"))
	assert.False(t, interfaces.Is[fmt.Stringer](nil))
}
