package pointer_test

import (
	"testing"

	"github.com/speakeasy-api/asyncapi/pointer"
	"github.com/stretchr/testify/assert"
)

func TestFrom_Success(t *testing.T) {
	t.Parallel()

	p := pointer.From("test")
	assert.Equal(t, "test", *p)

	n := pointer.From(42)
	assert.Equal(t, 42, *n)
}

func TestValueOrZero_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    *string
		expected string
	}{
		{
			name:     "nil returns zero",
			input:    nil,
			expected: "",
		},
		{
			name:     "value returned",
			input:    pointer.From("value"),
			expected: "value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, pointer.ValueOrZero(tt.input))
		})
	}
}

func TestValueOr_Success(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "default", pointer.ValueOr(nil, "default"))
	assert.Equal(t, "set", pointer.ValueOr(pointer.From("set"), "default"))
}
