package pipeline_test

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/managers"
	"github.com/speakeasy-api/asyncapi/pipeline"
	"github.com/speakeasy-api/asyncapi/references"
	"github.com/speakeasy-api/asyncapi/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usersDocument = `asyncapi: 3.0.0
info:
  title: Users
  version: 1.0.0
  tags:
    - name: users
servers:
  production:
    host: broker.example.com
    protocol: kafka
    tags:
      - name: users
channels:
  signup:
    address: user/signedup
    messages:
      userData:
        name: userData
        payload:
          type: object
    parameters:
      region:
        description: deployment region
  login:
    address: user/loggedin
    messages:
      userData:
        name: userData
        payload:
          type: object
operations:
  onSignup:
    action: receive
    channel:
      $ref: '#/channels/signup'
    messages:
      - $ref: '#/channels/signup/messages/userData'
`

func TestLoad_DefaultPipeline_Success(t *testing.T) {
	t.Parallel()

	doc, err := pipeline.Load(t.Context(), strings.NewReader(usersDocument))
	require.NoError(t, err)
	require.NotNil(t, doc)

	components := doc.GetComponents()
	require.NotNil(t, components)

	assert.Equal(t, []string{"users"}, slices.Collect(components.Tags.Keys()))
	assert.Equal(t, []string{"production"}, slices.Collect(components.Servers.Keys()))
	assert.Equal(t, []string{"signup", "login"}, slices.Collect(components.Channels.Keys()))
	assert.Equal(t, []string{"onSignup"}, slices.Collect(components.Operations.Keys()))
	assert.Equal(t, []string{"userData"}, slices.Collect(components.Messages.Keys()))
	assert.Equal(t, []string{"region"}, slices.Collect(components.Parameters.Keys()))

	assert.Equal(t, references.Reference("#/components/tags/users"), doc.Info.Tags[0].GetReference())
	assert.Equal(t, references.Reference("#/components/servers/production"), doc.Servers.GetOrZero("production").GetReference())
	assert.Equal(t, references.Reference("#/components/channels/signup"), doc.Channels.GetOrZero("signup").GetReference())
	assert.Equal(t, references.Reference("#/components/operations/onSignup"), doc.Operations.GetOrZero("onSignup").GetReference())

	signup := components.Channels.GetOrZero("signup").GetObject()
	require.NotNil(t, signup)
	assert.Equal(t, references.Reference("#/components/messages/userData"), signup.Messages.GetOrZero("userData").GetReference())
	assert.Equal(t, references.Reference("#/components/parameters/region"), signup.Parameters.GetOrZero("region").GetReference())

	operation := components.Operations.GetOrZero("onSignup").GetObject()
	require.NotNil(t, operation)
	assert.Equal(t, references.Reference("#/channels/signup"), operation.Channel.GetReference())
	assert.Equal(t, references.Reference("#/channels/signup/messages/userData"), operation.Messages[0].GetReference())
}

func TestLoad_Idempotent_Success(t *testing.T) {
	t.Parallel()

	doc, err := pipeline.Load(t.Context(), strings.NewReader(usersDocument))
	require.NoError(t, err)

	var first bytes.Buffer
	require.NoError(t, asyncapi.Marshal(t.Context(), doc, &first))

	again, err := pipeline.Load(t.Context(), bytes.NewReader(first.Bytes()))
	require.NoError(t, err)

	var second bytes.Buffer
	require.NoError(t, asyncapi.Marshal(t.Context(), again, &second))

	assert.Equal(t, first.String(), second.String())
}

func TestLoad_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		doc         string
		expectedErr error
		contains    []string
	}{
		{
			name: "missing title",
			doc: `asyncapi: 3.0.0
info:
  version: 1.0.0
`,
			expectedErr: pipeline.ErrStructural,
			contains:    []string{"title"},
		},
		{
			name: "unsupported version",
			doc: `asyncapi: 2.6.0
info:
  title: Users
  version: 1.0.0
`,
			expectedErr: pipeline.ErrStructural,
			contains:    []string{"2.6.0"},
		},
		{
			name: "conflicting channel messages",
			doc: `asyncapi: 3.0.0
info:
  title: Users
  version: 1.0.0
channels:
  signup:
    messages:
      userData:
        payload:
          type: object
  login:
    messages:
      userData:
        payload:
          type: string
`,
			expectedErr: managers.ErrNameConflict,
			contains:    []string{"converter", `"userData"`},
		},
		{
			name: "missing schema",
			doc: `asyncapi: 3.0.0
info:
  title: Users
  version: 1.0.0
channels:
  signup:
    messages:
      userData:
        payload:
          $ref: '#/components/schemas/Missing'
`,
			expectedErr: validators.ErrInvalidReference,
			contains:    []string{"validator", "#/components/schemas/Missing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := pipeline.Load(t.Context(), strings.NewReader(tt.doc))
			require.Error(t, err)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, doc)
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestLoad_SkipBaseValidation_Success(t *testing.T) {
	t.Parallel()

	doc, err := pipeline.Load(t.Context(), strings.NewReader(`asyncapi: 3.0.0
info:
  version: 1.0.0
`), pipeline.WithSkipBaseValidation())
	require.NoError(t, err)
	require.NotNil(t, doc)
}

func TestRun_NilDocument_Success(t *testing.T) {
	t.Parallel()

	doc, err := pipeline.Run(t.Context(), nil)
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestRun_BuiltDocument_Success(t *testing.T) {
	t.Parallel()

	doc, err := asyncapi.NewBuilder("Users", "1.0.0").Build()
	require.NoError(t, err)

	out, err := pipeline.Run(t.Context(), doc)
	require.NoError(t, err)
	assert.Same(t, doc, out)
}

type recorder struct {
	name  string
	calls *[]string
	err   error
}

func (r recorder) Process(_ context.Context, doc *asyncapi.Document) (*asyncapi.Document, error) {
	*r.calls = append(*r.calls, r.name)
	if r.err != nil {
		return nil, r.err
	}
	return doc, nil
}

func TestRun_CustomProcessors_Order_Success(t *testing.T) {
	t.Parallel()

	var calls []string
	p := pipeline.New(
		pipeline.WithSkipBaseValidation(),
		pipeline.WithValidators(recorder{name: "validate", calls: &calls}),
		pipeline.WithConverters(
			recorder{name: "first", calls: &calls},
			recorder{name: "second", calls: &calls},
		),
	)

	doc := &asyncapi.Document{}
	out, err := p.Run(t.Context(), doc)
	require.NoError(t, err)
	assert.Same(t, doc, out)
	assert.Equal(t, []string{"first", "second", "validate"}, calls)
}

func TestRun_StopsAtFirstFailure_Error(t *testing.T) {
	t.Parallel()

	var calls []string
	failure := managers.ErrNameConflict.Wrapf("boom")

	p := pipeline.New(
		pipeline.WithSkipBaseValidation(),
		pipeline.WithConverters(
			recorder{name: "first", calls: &calls, err: failure},
			recorder{name: "second", calls: &calls},
		),
		pipeline.WithValidators(recorder{name: "validate", calls: &calls}),
	)

	out, err := p.Run(t.Context(), &asyncapi.Document{})
	require.ErrorIs(t, err, managers.ErrNameConflict)
	assert.Nil(t, out)
	assert.Equal(t, []string{"first"}, calls)
}

func TestRun_ProcessorFunc_NilResultKeepsDocument_Success(t *testing.T) {
	t.Parallel()

	var seen *asyncapi.Document
	p := pipeline.New(
		pipeline.WithSkipBaseValidation(),
		pipeline.WithConverters(asyncapi.ProcessorFunc(func(_ context.Context, _ *asyncapi.Document) (*asyncapi.Document, error) {
			return nil, nil
		})),
		pipeline.WithValidators(asyncapi.ProcessorFunc(func(_ context.Context, doc *asyncapi.Document) (*asyncapi.Document, error) {
			seen = doc
			return doc, nil
		})),
	)

	doc := &asyncapi.Document{}
	out, err := p.Run(t.Context(), doc)
	require.NoError(t, err)
	assert.Same(t, doc, out)
	assert.Same(t, doc, seen)
}

func TestNew_Defaults_Success(t *testing.T) {
	t.Parallel()

	p := pipeline.New()
	assert.Len(t, p.Converters(), 6)
	assert.Len(t, p.Validators(), 20)

	_, isTags := p.Converters()[0].(*managers.TagsManager)
	assert.True(t, isTags, "tags are hoisted first")
	_, isUnified := p.Validators()[0].(*validators.UnifiedReferencesValidator)
	assert.True(t, isUnified, "the unified validator runs first")

	empty := pipeline.New(pipeline.WithConverters(), pipeline.WithValidators())
	assert.Empty(t, empty.Converters())
	assert.Empty(t, empty.Validators())
}

func TestRun_DebugLogging_Success(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := pipeline.Load(t.Context(), strings.NewReader(usersDocument), pipeline.WithLogger(logger))
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, "processor started")
	assert.Contains(t, out, "processor finished")
	assert.Contains(t, out, "phase=converter")
	assert.Contains(t, out, "processor=*managers.TagsManager")
	assert.Contains(t, out, `processor="servers reference validator"`)
}

func TestRun_MaxDepth_Error(t *testing.T) {
	t.Parallel()

	_, err := pipeline.Load(t.Context(), strings.NewReader(usersDocument), pipeline.WithMaxDepth(2))
	require.ErrorIs(t, err, validators.ErrDepthExceeded)
}
