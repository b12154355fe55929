package validators_test

import (
	"reflect"
	"testing"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/validators"
	"github.com/speakeasy-api/asyncapi/walk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_ExpectedTypes_Success(t *testing.T) {
	t.Parallel()

	schemaTypes := []reflect.Type{validators.TypeOf[asyncapi.Schema](), validators.TypeOf[asyncapi.MultiFormatSchema]()}

	tests := []struct {
		name     string
		path     string
		expected []reflect.Type
	}{
		{
			name:     "channel message",
			path:     "spec.channels.a.messages.m",
			expected: []reflect.Type{validators.TypeOf[asyncapi.Message]()},
		},
		{
			name:     "operation message list entry",
			path:     "spec.operations.send.messages[0]",
			expected: []reflect.Type{validators.TypeOf[asyncapi.Message]()},
		},
		{
			name:     "operation channel",
			path:     "spec.operations.send.channel",
			expected: []reflect.Type{validators.TypeOf[asyncapi.Channel]()},
		},
		{
			name:     "reply channel",
			path:     "spec.operations.send.reply.channel",
			expected: []reflect.Type{validators.TypeOf[asyncapi.Channel]()},
		},
		{
			name:     "message payload",
			path:     "spec.components.messages.m.payload",
			expected: schemaTypes,
		},
		{
			name:     "trait headers",
			path:     "spec.components.messages.m.traits[1].headers",
			expected: schemaTypes,
		},
		{
			name:     "server bindings",
			path:     "spec.servers.prod.bindings",
			expected: []reflect.Type{validators.TypeOf[asyncapi.ServerBindings]()},
		},
		{
			name:     "kafka binding schema inline",
			path:     "spec.channels.a.messages.m.bindings.kafka.key",
			expected: []reflect.Type{validators.TypeOf[asyncapi.Schema]()},
		},
		{
			name:     "kafka binding schema in components",
			path:     "spec.components.message_bindings.b.kafka.key",
			expected: []reflect.Type{validators.TypeOf[asyncapi.Schema]()},
		},
		{
			name:     "server variable",
			path:     "spec.servers.prod.variables.port",
			expected: []reflect.Type{validators.TypeOf[asyncapi.ServerVariable]()},
		},
		{
			name:     "security requirement",
			path:     "spec.servers.prod.security[0]",
			expected: []reflect.Type{validators.TypeOf[asyncapi.SecurityScheme]()},
		},
		{
			name:     "info tag",
			path:     "spec.info.tags[0]",
			expected: []reflect.Type{validators.TypeOf[asyncapi.Tag]()},
		},
		{
			name:     "root markers are normalized away",
			path:     "spec.channels.root.a.messages.root.m",
			expected: []reflect.Type{validators.TypeOf[asyncapi.Message]()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			actual, err := validators.DefaultRegistry().ExpectedTypes(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestRegistry_ExpectedTypes_UnknownPath_Error(t *testing.T) {
	t.Parallel()

	_, err := validators.DefaultRegistry().ExpectedTypes("spec.info")
	require.Error(t, err)
	require.ErrorIs(t, err, validators.ErrUnknownReferencePath)
	assert.Contains(t, err.Error(), "spec.info")
}

func TestRegistry_ExpectedTypes_Precedence_Success(t *testing.T) {
	t.Parallel()

	message := validators.TypeOf[asyncapi.Message]()
	trait := validators.TypeOf[asyncapi.MessageTrait]()

	tests := []struct {
		name     string
		entries  []validators.Entry
		path     string
		expected reflect.Type
	}{
		{
			name: "more literals win",
			entries: []validators.Entry{
				validators.Expect("**.messages.*", message),
				validators.Expect("**.components.messages.*", trait),
			},
			path:     "spec.components.messages.m",
			expected: trait,
		},
		{
			name: "fewer double wildcards win",
			entries: []validators.Entry{
				validators.Expect("**.messages.**", trait),
				validators.Expect("*.messages.*", message),
			},
			path:     "spec.messages.m",
			expected: message,
		},
		{
			name: "first registered wins a tie",
			entries: []validators.Entry{
				validators.Expect("**.a.*", message),
				validators.Expect("**.*.b", trait),
			},
			path:     "spec.a.b",
			expected: message,
		},
		{
			name: "first registered wins a tie in reverse",
			entries: []validators.Entry{
				validators.Expect("**.*.b", trait),
				validators.Expect("**.a.*", message),
			},
			path:     "spec.a.b",
			expected: trait,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := validators.NewRegistry(tt.entries...)
			actual, err := r.ExpectedTypes(tt.path)
			require.NoError(t, err)
			assert.Equal(t, []reflect.Type{tt.expected}, actual)
		})
	}
}

func TestRegistry_Entries_ReturnsCopy_Success(t *testing.T) {
	t.Parallel()

	r := validators.NewRegistry(validators.Expect("**.tags.*", validators.TypeOf[asyncapi.Tag]()))

	entries := r.Entries()
	require.Len(t, entries, 1)
	entries[0].Pattern = "changed"

	assert.Equal(t, "**.tags.*", r.Entries()[0].Pattern)

	_, err := r.ExpectedTypes("spec.components.tags.t1")
	require.NoError(t, err)
}

func TestRegistry_LiteralEntry_Success(t *testing.T) {
	t.Parallel()

	// Entries built without Expect are split on registration.
	r := validators.NewRegistry(validators.Entry{
		Pattern: "**.tags.*",
		Types:   []reflect.Type{validators.TypeOf[asyncapi.Tag]()},
	})

	actual, err := r.ExpectedTypes("spec.info.tags[0]")
	require.NoError(t, err)
	assert.Equal(t, []reflect.Type{validators.TypeOf[asyncapi.Tag]()}, actual)
}

func TestCompatible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		actual   reflect.Type
		expected []reflect.Type
		want     bool
	}{
		{
			name:     "exact type",
			actual:   validators.TypeOf[asyncapi.Schema](),
			expected: []reflect.Type{validators.TypeOf[asyncapi.Schema](), validators.TypeOf[asyncapi.MultiFormatSchema]()},
			want:     true,
		},
		{
			name:     "second alternative",
			actual:   validators.TypeOf[asyncapi.MultiFormatSchema](),
			expected: []reflect.Type{validators.TypeOf[asyncapi.Schema](), validators.TypeOf[asyncapi.MultiFormatSchema]()},
			want:     true,
		},
		{
			name:     "interface implemented",
			actual:   validators.TypeOf[asyncapi.Message](),
			expected: []reflect.Type{reflect.TypeFor[walk.Node]()},
			want:     true,
		},
		{
			name:     "different type",
			actual:   validators.TypeOf[asyncapi.Tag](),
			expected: []reflect.Type{validators.TypeOf[asyncapi.Schema]()},
			want:     false,
		},
		{
			name:     "value instead of pointer",
			actual:   reflect.TypeFor[asyncapi.Schema](),
			expected: []reflect.Type{validators.TypeOf[asyncapi.Schema]()},
			want:     false,
		},
		{
			name:     "nil type",
			actual:   nil,
			expected: []reflect.Type{reflect.TypeFor[walk.Node]()},
			want:     false,
		},
		{
			name:     "nothing expected",
			actual:   validators.TypeOf[asyncapi.Tag](),
			expected: nil,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validators.Compatible(tt.actual, tt.expected))
		})
	}
}

func TestFormatTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		types    []reflect.Type
		expected string
	}{
		{
			name:     "single",
			types:    []reflect.Type{validators.TypeOf[asyncapi.Tag]()},
			expected: "Tag",
		},
		{
			name:     "union",
			types:    []reflect.Type{validators.TypeOf[asyncapi.Schema](), validators.TypeOf[asyncapi.MultiFormatSchema]()},
			expected: "Schema | MultiFormatSchema",
		},
		{
			name:     "empty",
			types:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, validators.FormatTypes(tt.types))
		})
	}
}
