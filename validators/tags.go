package validators

import (
	"context"
	"fmt"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
)

// TagsRefValidator checks that every internal tag reference points at an existing #/components/tags entry.
type TagsRefValidator struct {
	cfg config
}

var _ asyncapi.Processor = (*TagsRefValidator)(nil)

// NewTagsRefValidator creates a TagsRefValidator.
func NewTagsRefValidator(opts ...Option) *TagsRefValidator {
	return &TagsRefValidator{cfg: newConfig(opts)}
}

// Process validates the tag lists of the info object and of every inline server, channel, channel message,
// operation, component message and component trait, plus entries of components.tags stored as references.
func (v *TagsRefValidator) Process(ctx context.Context, doc *asyncapi.Document) (*asyncapi.Document, error) {
	if doc == nil {
		return nil, nil
	}

	components := doc.GetComponents()
	t := &tagLists{
		ctx: ctx,
		checker: &componentRefChecker[*asyncapi.ReferencedTag]{
			collection: asyncapi.KeyTags,
			entries:    components.GetTags(),
			logger:     v.cfg.logger,
		},
	}

	t.check(doc.GetInfo().GetTags(), "info")
	eachTagged(t, doc.GetServers(), "server", (*asyncapi.Server).GetTags)
	eachTagged(t, doc.GetChannels(), "channel", (*asyncapi.Channel).GetTags)
	channelMessages(t, doc.GetChannels(), "channel")
	eachTagged(t, doc.GetOperations(), "operation", (*asyncapi.Operation).GetTags)
	eachTagged(t, components.GetMessages(), "components message", (*asyncapi.Message).GetTags)
	eachTagged(t, components.GetChannels(), "components channel", (*asyncapi.Channel).GetTags)
	eachTagged(t, components.GetOperations(), "components operation", (*asyncapi.Operation).GetTags)
	eachTagged(t, components.GetServers(), "components server", (*asyncapi.Server).GetTags)
	eachTagged(t, components.GetOperationTraits(), "components operation trait", (*asyncapi.OperationTrait).GetTags)
	eachTagged(t, components.GetMessageTraits(), "components message trait", (*asyncapi.MessageTrait).GetTags)
	channelMessages(t, components.GetChannels(), "components channel")

	for name, tag := range components.GetTags().All() {
		if tag.IsReference() {
			t.checkRef(tag, fmt.Sprintf("components tag %q", name))
		}
	}

	if t.err != nil {
		return nil, t.err
	}
	return doc, nil
}

// tagLists keeps the first failure so the checks read as a flat list.
type tagLists struct {
	ctx     context.Context
	checker *componentRefChecker[*asyncapi.ReferencedTag]
	err     error
}

func (t *tagLists) check(tags []*asyncapi.ReferencedTag, where string) {
	for _, tag := range tags {
		if tag.IsReference() {
			t.checkRef(tag, where)
		}
	}
}

func (t *tagLists) checkRef(tag *asyncapi.ReferencedTag, where string) {
	if t.err != nil {
		return
	}
	t.err = t.checker.check(t.ctx, tag.GetReference(), where)
}

func eachTagged[T any](t *tagLists, m *sequencedmap.Map[string, *asyncapi.Reference[T]], kind string, tagsOf func(*T) []*asyncapi.ReferencedTag) {
	for name, entry := range m.All() {
		if obj := entry.GetObject(); obj != nil {
			t.check(tagsOf(obj), fmt.Sprintf("%s %q", kind, name))
		}
	}
}

func channelMessages(t *tagLists, channels *sequencedmap.Map[string, *asyncapi.ReferencedChannel], kind string) {
	for channelName, entry := range channels.All() {
		for name, msg := range entry.GetObject().GetMessages().All() {
			t.check(msg.GetObject().GetTags(), fmt.Sprintf("message %q in %s %q", name, kind, channelName))
		}
	}
}
