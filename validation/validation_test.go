package validation_test

import (
	"errors"
	"testing"

	"github.com/speakeasy-api/asyncapi/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const doc = `asyncapi: 3.0.0
info:
  title: Orders
channels:
  orders:
    messages:
      - a
      - b
`

func TestNodeAt_Success(t *testing.T) {
	t.Parallel()

	var root yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(doc), &root))

	tests := []struct {
		name         string
		location     []string
		expectedLine int
		expectedCol  int
	}{
		{
			name:         "root",
			location:     nil,
			expectedLine: 1,
			expectedCol:  1,
		},
		{
			name:         "mapping value",
			location:     []string{"info", "title"},
			expectedLine: 3,
			expectedCol:  10,
		},
		{
			name:         "sequence item",
			location:     []string{"channels", "orders", "messages", "1"},
			expectedLine: 8,
			expectedCol:  9,
		},
		{
			name:         "missing key stops at last reachable node",
			location:     []string{"info", "version"},
			expectedLine: 3,
			expectedCol:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			node := validation.NodeAt(&root, tt.location)
			require.NotNil(t, node)
			assert.Equal(t, tt.expectedLine, node.Line)
			assert.Equal(t, tt.expectedCol, node.Column)
		})
	}
}

func TestError_Success(t *testing.T) {
	t.Parallel()

	node := &yaml.Node{Line: 4, Column: 2}
	err := validation.NewValidationError(validation.NewMissingFieldError("info.title is required"), "info", node)

	assert.Equal(t, "[4:2] missing required field -- info.title is required", err.Error())
	assert.ErrorIs(t, err, validation.ErrMissingField)
	assert.NotErrorIs(t, err, validation.ErrTypeMismatch)

	noNode := validation.NewValidationError(validation.NewValueValidationError("bad"), "", nil)
	assert.Equal(t, 0, noNode.GetLineNumber())

	var nilErr *validation.Error
	assert.Equal(t, -1, nilErr.GetLineNumber())
	assert.Equal(t, -1, nilErr.GetColumnNumber())
}

func TestSortValidationErrors_Success(t *testing.T) {
	t.Parallel()

	other := errors.New("plain")
	late := validation.NewValidationError(validation.NewValueValidationError("late"), "", &yaml.Node{Line: 9, Column: 1})
	early := validation.NewValidationError(validation.NewValueValidationError("early"), "", &yaml.Node{Line: 2, Column: 5})
	earlier := validation.NewValidationError(validation.NewValueValidationError("earlier"), "", &yaml.Node{Line: 2, Column: 1})

	errs := []error{other, late, early, earlier}
	validation.SortValidationErrors(errs)

	assert.Equal(t, []error{earlier, early, late, other}, errs)
}
