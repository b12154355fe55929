package validators_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/speakeasy-api/asyncapi/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const taggedDocument = `asyncapi: 3.0.0
info:
  title: Shop
  version: 1.0.0
  tags:
    - $ref: '#/components/tags/shop'
servers:
  prod:
    host: broker.example.com
    protocol: kafka
    tags:
      - name: inline
channels:
  orders:
    tags:
      - $ref: '#/components/tags/shop'
    messages:
      placed:
        tags:
          - $ref: '#/components/tags/orders'
operations:
  publishOrder:
    action: send
    channel:
      $ref: '#/channels/orders'
    tags:
      - $ref: '#/components/tags/orders'
components:
  messageTraits:
    traced:
      tags:
        - $ref: 'common.yaml#/components/tags/tracing'
  tags:
    shop:
      name: shop
    orders:
      name: orders
    alias:
      $ref: '#/components/tags/shop'
`

func TestTagsRefValidator_Process_Success(t *testing.T) {
	t.Parallel()

	doc := loadDocument(t, taggedDocument)

	var logs bytes.Buffer
	v := validators.NewTagsRefValidator(validators.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	out, err := v.Process(t.Context(), doc)
	require.NoError(t, err)
	assert.Same(t, doc, out)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "common.yaml#/components/tags/tracing")
}

func TestTagsRefValidator_Process_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		contains []string
	}{
		{
			name: "info tag points at a schema",
			doc: `asyncapi: 3.0.0
info:
  title: Shop
  version: 1.0.0
  tags:
    - $ref: '#/components/schemas/x'
components:
  schemas:
    x:
      type: string
`,
			contains: []string{"info", "must point to #/components/tags/"},
		},
		{
			name: "channel message tag is missing",
			doc: `asyncapi: 3.0.0
info:
  title: Shop
  version: 1.0.0
channels:
  orders:
    messages:
      placed:
        tags:
          - $ref: '#/components/tags/missing'
components:
  tags:
    shop:
      name: shop
`,
			contains: []string{`message "placed" in channel "orders"`, `"missing" does not exist`},
		},
		{
			name: "operation trait tag is missing",
			doc: `asyncapi: 3.0.0
info:
  title: Shop
  version: 1.0.0
components:
  operationTraits:
    common:
      tags:
        - $ref: '#/components/tags/missing'
`,
			contains: []string{`components operation trait "common"`},
		},
		{
			name: "components tag stored as a reference to a missing tag",
			doc: `asyncapi: 3.0.0
info:
  title: Shop
  version: 1.0.0
components:
  tags:
    alias:
      $ref: '#/components/tags/gone'
`,
			contains: []string{`components tag "alias"`, `"gone" does not exist`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := loadDocument(t, tt.doc)

			out, err := validators.NewTagsRefValidator().Process(t.Context(), doc)
			require.Error(t, err)
			require.ErrorIs(t, err, validators.ErrInvalidReference)
			assert.Nil(t, out)
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestServerBindingsRefValidator_Process_Success(t *testing.T) {
	t.Parallel()

	doc := loadDocument(t, `asyncapi: 3.0.0
info:
  title: Shop
  version: 1.0.0
servers:
  prod:
    host: broker.example.com
    protocol: kafka
    bindings:
      $ref: '#/components/serverBindings/kafka'
  dev:
    host: localhost
    protocol: kafka
    bindings:
      kafka:
        schemaRegistryUrl: http://localhost:8081
components:
  serverBindings:
    kafka:
      kafka:
        schemaRegistryUrl: https://registry.example.com
    shared:
      $ref: '#/components/serverBindings/kafka'
`)

	out, err := validators.NewServerBindingsRefValidator().Process(t.Context(), doc)
	require.NoError(t, err)
	assert.Same(t, doc, out)
}

func TestServerBindingsRefValidator_Process_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		contains []string
	}{
		{
			name: "points at a channel binding",
			doc: `asyncapi: 3.0.0
info:
  title: Shop
  version: 1.0.0
servers:
  prod:
    host: broker.example.com
    protocol: kafka
    bindings:
      $ref: '#/components/channelBindings/kafka'
`,
			contains: []string{`server "prod" bindings`, "must point to #/components/serverBindings/"},
		},
		{
			name: "components server binding missing",
			doc: `asyncapi: 3.0.0
info:
  title: Shop
  version: 1.0.0
components:
  servers:
    prod:
      host: broker.example.com
      protocol: kafka
      bindings:
        $ref: '#/components/serverBindings/missing'
`,
			contains: []string{`components server "prod" bindings`, `"missing" does not exist`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := loadDocument(t, tt.doc)

			out, err := validators.NewServerBindingsRefValidator().Process(t.Context(), doc)
			require.Error(t, err)
			require.ErrorIs(t, err, validators.ErrInvalidReference)
			assert.Nil(t, out)
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestComponentRefValidators_NilDocument_Success(t *testing.T) {
	t.Parallel()

	out, err := validators.NewTagsRefValidator().Process(t.Context(), nil)
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = validators.NewServerBindingsRefValidator().Process(t.Context(), nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestPassThroughValidators_Process_Success(t *testing.T) {
	t.Parallel()

	doc := loadDocument(t, taggedDocument)

	tests := []struct {
		name      string
		validator *validators.PassThroughValidator
		expected  string
	}{
		{name: "channels", validator: validators.NewChannelsRefValidator(), expected: "channels reference validator"},
		{name: "correlation ids", validator: validators.NewCorrelationIDsRefValidator(), expected: "correlation ids reference validator"},
		{name: "messages", validator: validators.NewMessagesRefValidator(), expected: "messages reference validator"},
		{name: "schemas", validator: validators.NewSchemasRefValidator(), expected: "schemas reference validator"},
		{name: "server variables", validator: validators.NewServerVariablesRefValidator(), expected: "server variables reference validator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.validator.Name())

			out, err := tt.validator.Process(t.Context(), doc)
			require.NoError(t, err)
			assert.Same(t, doc, out)
		})
	}
}
