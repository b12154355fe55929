package managers

import (
	"log/slog"
	"testing"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStrictTagsProcessor(existing *asyncapi.Tag) *tagsProcessor {
	target := sequencedmap.New[string, *asyncapi.ReferencedTag]()
	target.Set(TagName(existing.Name), asyncapi.NewReferenceFromObject(existing))

	return &tagsProcessor{
		hoister: &hoister[asyncapi.Tag]{
			kind:       "tag",
			collection: asyncapi.KeyTags,
			target:     target,
			policy:     failOnConflict,
			logger:     slog.New(slog.DiscardHandler),
		},
	}
}

func TestTagsProcessor_Tags_HoistError(t *testing.T) {
	t.Parallel()

	p := newStrictTagsProcessor(&asyncapi.Tag{Name: "user", Description: "existing"})

	tags, err := p.tags(t.Context(), []*asyncapi.ReferencedTag{
		asyncapi.NewReferenceFromObject(&asyncapi.Tag{Name: "user", Description: "different"}),
	})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNameConflict)
	assert.Nil(t, tags)
}

func TestTagsProcessor_Document_HoistError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      func(tag *asyncapi.ReferencedTag) *asyncapi.Document
		contains string
	}{
		{
			name: "info",
			doc: func(tag *asyncapi.ReferencedTag) *asyncapi.Document {
				return &asyncapi.Document{Info: &asyncapi.Info{Tags: []*asyncapi.ReferencedTag{tag}}}
			},
			contains: "info",
		},
		{
			name: "channel message",
			doc: func(tag *asyncapi.ReferencedTag) *asyncapi.Document {
				message := asyncapi.NewReferenceFromObject(&asyncapi.Message{Tags: []*asyncapi.ReferencedTag{tag}})
				channel := &asyncapi.Channel{Messages: sequencedmap.New(sequencedmap.NewElem("userData", message))}
				return &asyncapi.Document{Channels: sequencedmap.New(sequencedmap.NewElem("signup", asyncapi.NewReferenceFromObject(channel)))}
			},
			contains: "channel signup: message userData",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := newStrictTagsProcessor(&asyncapi.Tag{Name: "user", Description: "existing"})
			doc := tt.doc(asyncapi.NewReferenceFromObject(&asyncapi.Tag{Name: "user", Description: "different"}))

			err := p.document(t.Context(), doc, doc.EnsureComponents())
			require.Error(t, err)
			require.ErrorIs(t, err, ErrNameConflict)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
