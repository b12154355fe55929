package asyncapi_test

import (
	"strings"
	"testing"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/references"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resolveDocument = `asyncapi: 3.0.0
info:
  title: Orders
  version: 1.0.0
channels:
  a:
    messages:
      m:
        $ref: '#/components/messages/shared'
      aliased:
        $ref: '#/components/messageTraits/common'
components:
  messages:
    shared:
      name: shared
      payload:
        $ref: '#/components/schemas/Order'
  schemas:
    Order:
      type: object
  messageTraits:
    common:
      contentType: application/json
  serverBindings:
    mqtt:
      mqtt:
        clientId: svc
  securitySchemes:
    basic:
      type: userPassword
`

func TestResolve_DocumentModel_Success(t *testing.T) {
	t.Parallel()

	doc, validationErrs, err := asyncapi.Unmarshal(t.Context(), strings.NewReader(resolveDocument))
	require.NoError(t, err)
	require.Empty(t, validationErrs)

	tests := []struct {
		name         string
		ref          references.Reference
		expectedType string
		expectedPath string
	}{
		{
			name:         "chained message reference",
			ref:          "#/channels/a/messages/m",
			expectedType: "Message",
			expectedPath: "spec.components.messages.shared",
		},
		{
			name:         "field reached through its serialized key",
			ref:          "#/components/messageTraits/common",
			expectedType: "MessageTrait",
			expectedPath: "spec.components.message_traits.common",
		},
		{
			name:         "schema reference through a message field",
			ref:          "#/components/messages/shared/payload",
			expectedType: "Schema",
			expectedPath: "spec.components.schemas.Order",
		},
		{
			name:         "binding leaf",
			ref:          "#/components/serverBindings/mqtt/mqtt",
			expectedType: "MQTTServerBinding",
			expectedPath: "spec.components.server_bindings.mqtt.mqtt",
		},
		{
			name:         "path records the field name rather than the serialized key",
			ref:          "#/components/securitySchemes/basic",
			expectedType: "SecurityScheme",
			expectedPath: "spec.components.security_schemes.basic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := references.Resolve(t.Context(), tt.ref, references.ResolveOptions{RootDocument: doc})
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, tt.expectedType, res.TypeName())
			assert.Equal(t, tt.expectedPath, res.Path)
		})
	}
}

func TestResolve_DocumentModel_Error(t *testing.T) {
	t.Parallel()

	doc, _, err := asyncapi.Unmarshal(t.Context(), strings.NewReader(resolveDocument))
	require.NoError(t, err)

	_, err = references.Resolve(t.Context(), "#/components/schemas/Missing", references.ResolveOptions{RootDocument: doc})
	require.ErrorIs(t, err, references.ErrUnresolvedPointer)

	_, err = references.Resolve(t.Context(), "#/components/messages/shared/unknownField", references.ResolveOptions{RootDocument: doc})
	require.ErrorIs(t, err, references.ErrUnresolvedField)

	_, err = references.Resolve(t.Context(), "#/info/title/deeper", references.ResolveOptions{RootDocument: doc})
	require.ErrorIs(t, err, references.ErrNotNavigable)
}
