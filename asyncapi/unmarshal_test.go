package asyncapi_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/pointer"
	"github.com/speakeasy-api/asyncapi/references"
	"github.com/speakeasy-api/asyncapi/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roundTripDocument = `asyncapi: 3.0.0
info:
  title: Orders
  version: 1.0.0
  x-owner: team-a
servers:
  production:
    host: broker.example.com
    protocol: mqtt
    bindings:
      mqtt:
        sessionExpiryInterval:
          $ref: '#/components/schemas/Interval'
channels:
  orders:
    address: orders
    messages:
      created:
        $ref: '#/components/messages/created'
operations:
  sendOrder:
    action: send
    channel:
      $ref: '#/channels/orders'
components:
  schemas:
    Interval:
      type: integer
      minimum: 30
    Avro:
      schemaFormat: application/vnd.apache.avro;version=1.9.0
      schema:
        type: record
  messages:
    created:
      payload:
        type: object
        properties:
          id:
            type: string
        x-custom: true
`

func TestUnmarshal_RoundTrip_Success(t *testing.T) {
	t.Parallel()

	doc, validationErrs, err := asyncapi.Unmarshal(t.Context(), strings.NewReader(roundTripDocument))
	require.NoError(t, err)
	require.Empty(t, validationErrs)

	var out bytes.Buffer
	require.NoError(t, asyncapi.Marshal(t.Context(), doc, &out))
	assert.Equal(t, roundTripDocument, out.String())
}

func TestUnmarshal_Model_Success(t *testing.T) {
	t.Parallel()

	doc, validationErrs, err := asyncapi.Unmarshal(t.Context(), strings.NewReader(roundTripDocument))
	require.NoError(t, err)
	require.Empty(t, validationErrs)

	owner, err := extensions.GetExtensionValue[string](doc.Info.Extensions, "x-owner")
	require.NoError(t, err)
	assert.Equal(t, "team-a", *owner)

	server := doc.Servers.GetOrZero("production").GetObject()
	require.NotNil(t, server)
	interval := server.Bindings.GetObject().MQTT.SessionExpiryInterval
	require.NotNil(t, interval.Schema)
	assert.Nil(t, interval.Value)
	assert.Equal(t, asyncapi.ToComponentSchema("Interval"), interval.Schema.GetReference())

	channel := doc.Channels.GetOrZero("orders")
	require.False(t, channel.IsReference())
	created := channel.GetObject().Messages.GetOrZero("created")
	assert.True(t, created.IsReference())
	assert.Equal(t, references.Reference("#/components/messages/created"), created.GetReference())

	operation := doc.Operations.GetOrZero("sendOrder").GetObject()
	assert.Equal(t, asyncapi.ActionSend, operation.Action)
	assert.Equal(t, asyncapi.ToRootChannel("orders"), operation.Channel.GetReference())

	avro := doc.Components.Schemas.GetOrZero("Avro")
	require.NotNil(t, avro.GetMultiFormatSchema())
	assert.Nil(t, avro.GetSchema())
	assert.Equal(t, "application/vnd.apache.avro;version=1.9.0", avro.GetMultiFormatSchema().SchemaFormat)

	payload := doc.Components.Messages.GetOrZero("created").GetObject().Payload.GetSchema()
	require.NotNil(t, payload)
	assert.Equal(t, asyncapi.TypeSet{"object"}, payload.Type)
	assert.True(t, payload.Properties.Has("id"))
	assert.Equal(t, 1, payload.Extensions.Len())
}

func TestMarshalJSON_Success(t *testing.T) {
	t.Parallel()

	doc, err := asyncapi.NewBuilder("Orders", "1.0.0").Build()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, asyncapi.MarshalJSON(t.Context(), doc, &out))
	assert.JSONEq(t, `{"asyncapi":"3.0.0","info":{"title":"Orders","version":"1.0.0"}}`, out.String())
	assert.True(t, strings.HasPrefix(out.String(), "{\n  \"asyncapi\""))
}

func TestUnmarshal_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		document      string
		expectedKinds []error
		expectedMsgs  []string
	}{
		{
			name: "missing info title",
			document: `asyncapi: 3.0.0
info:
  version: 1.0.0
`,
			expectedKinds: []error{validation.ErrMissingField},
			expectedMsgs:  []string{"title"},
		},
		{
			name: "unsupported major version",
			document: `asyncapi: 2.6.0
info:
  title: Orders
  version: 1.0.0
`,
			expectedKinds: []error{asyncapi.ErrUnsupportedVersion},
			expectedMsgs:  []string{"2.6.0"},
		},
		{
			name: "invalid operation action",
			document: `asyncapi: 3.0.0
info:
  title: Orders
  version: 1.0.0
operations:
  op:
    action: publish
    channel:
      $ref: '#/channels/orders'
`,
			expectedKinds: []error{validation.ErrValueInvalid},
			expectedMsgs:  []string{"operations.op.action"},
		},
		{
			name: "component key outside the allowed characters",
			document: `asyncapi: 3.0.0
info:
  title: Orders
  version: 1.0.0
components:
  messages:
    "bad key":
      name: bad
`,
			expectedKinds: []error{validation.ErrValueInvalid},
			expectedMsgs:  []string{"components.messages"},
		},
		{
			name: "server without protocol",
			document: `asyncapi: 3.0.0
info:
  title: Orders
  version: 1.0.0
servers:
  production:
    host: broker.example.com
`,
			expectedKinds: []error{validation.ErrMissingField},
			expectedMsgs:  []string{"protocol"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, validationErrs, err := asyncapi.Unmarshal(t.Context(), strings.NewReader(tt.document))
			require.NoError(t, err)
			require.NotNil(t, doc)
			require.Len(t, validationErrs, len(tt.expectedKinds), "errors: %v", validationErrs)

			for i, verr := range validationErrs {
				require.ErrorIs(t, verr, tt.expectedKinds[i])
				assert.Contains(t, verr.Error(), tt.expectedMsgs[i])

				var vErr *validation.Error
				require.ErrorAs(t, verr, &vErr)
				assert.Positive(t, vErr.Line)
			}
		})
	}
}

func TestUnmarshal_SkipValidation_Success(t *testing.T) {
	t.Parallel()

	doc, validationErrs, err := asyncapi.Unmarshal(t.Context(), strings.NewReader("asyncapi: 2.6.0\ninfo: {}\n"), asyncapi.WithSkipValidation())
	require.NoError(t, err)
	assert.Empty(t, validationErrs)
	assert.Equal(t, "2.6.0", doc.AsyncAPI)
}

func TestUnmarshal_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
	}{
		{
			name:     "empty document",
			document: "",
		},
		{
			name:     "malformed yaml",
			document: "asyncapi: [3.0.0\n",
		},
		{
			name:     "root is not a mapping",
			document: "- a\n- b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := asyncapi.Unmarshal(t.Context(), strings.NewReader(tt.document), asyncapi.WithSkipValidation())
			require.Error(t, err)
		})
	}
}

func TestDocument_Validate_Success(t *testing.T) {
	t.Parallel()

	doc, err := asyncapi.NewBuilder("Orders", "1.0.0").
		UpdateOrCreateServer("production", asyncapi.ServerOptions{Host: pointer.From("broker"), Protocol: pointer.From("kafka")}, true).
		Build()
	require.NoError(t, err)

	assert.Empty(t, doc.Validate(t.Context()))

	doc.AsyncAPI = "2.6.0"
	errs := doc.Validate(t.Context())
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], asyncapi.ErrUnsupportedVersion)
}

func ptr[T any](v T) *T {
	return &v
}
