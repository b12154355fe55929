package managers

import (
	"context"
	"fmt"
	"strings"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/references"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
)

var tagNameReplacer = strings.NewReplacer(" ", "_", "-", "_")

// TagName returns the components key a tag named name is stored under.
func TagName(name string) string {
	return tagNameReplacer.Replace(name)
}

// TagsManager moves inline tags into components.tags and deduplicates every tag list.
//
// Tags are metadata, so unlike the other managers a name taken by a different tag is not an error:
// the existing entry is kept, the occurrence points at it and a warning is logged.
type TagsManager struct {
	cfg config
}

var _ asyncapi.Processor = (*TagsManager)(nil)

// NewTagsManager creates a TagsManager.
func NewTagsManager(opts ...Option) *TagsManager {
	return &TagsManager{cfg: newConfig(opts)}
}

// Process hoists the tags of the info object and of every inline server, channel, operation, operation trait,
// message and message trait, at the root and in components.
func (m *TagsManager) Process(ctx context.Context, doc *asyncapi.Document) (*asyncapi.Document, error) {
	if doc == nil {
		return nil, nil
	}

	components := doc.EnsureComponents()
	components.Tags = sequencedmap.Ensure(components.Tags)

	p := &tagsProcessor{
		hoister: &hoister[asyncapi.Tag]{
			kind:       "tag",
			collection: asyncapi.KeyTags,
			target:     components.Tags,
			policy:     keepExisting,
			logger:     m.cfg.logger,
		},
	}

	if err := p.document(ctx, doc, components); err != nil {
		return nil, err
	}

	return doc, nil
}

type tagsProcessor struct {
	hoister *hoister[asyncapi.Tag]
}

func (p *tagsProcessor) document(ctx context.Context, doc *asyncapi.Document, components *asyncapi.Components) error {
	if info := doc.Info; info != nil {
		tags, err := p.tags(ctx, info.Tags)
		if err != nil {
			return fmt.Errorf("info: %w", err)
		}
		info.Tags = tags
	}

	for _, servers := range []*sequencedmap.Map[string, *asyncapi.ReferencedServer]{doc.Servers, components.Servers} {
		for name, entry := range servers.All() {
			server := entry.GetObject()
			if server == nil {
				continue
			}
			tags, err := p.tags(ctx, server.Tags)
			if err != nil {
				return fmt.Errorf("server %s: %w", name, err)
			}
			server.Tags = tags
		}
	}
	for _, channels := range []*sequencedmap.Map[string, *asyncapi.ReferencedChannel]{doc.Channels, components.Channels} {
		for name, entry := range channels.All() {
			if err := p.channel(ctx, entry.GetObject()); err != nil {
				return fmt.Errorf("channel %s: %w", name, err)
			}
		}
	}
	for _, operations := range []*sequencedmap.Map[string, *asyncapi.ReferencedOperation]{doc.Operations, components.Operations} {
		for name, entry := range operations.All() {
			if err := p.operation(ctx, entry.GetObject()); err != nil {
				return fmt.Errorf("operation %s: %w", name, err)
			}
		}
	}
	for name, entry := range components.OperationTraits.All() {
		if err := p.operationTrait(ctx, entry.GetObject()); err != nil {
			return fmt.Errorf("operation trait %s: %w", name, err)
		}
	}
	for name, entry := range components.MessageTraits.All() {
		if err := p.messageTrait(ctx, entry.GetObject()); err != nil {
			return fmt.Errorf("message trait %s: %w", name, err)
		}
	}
	for name, entry := range components.Messages.All() {
		if err := p.message(ctx, entry.GetObject()); err != nil {
			return fmt.Errorf("message %s: %w", name, err)
		}
	}

	return nil
}

func (p *tagsProcessor) channel(ctx context.Context, channel *asyncapi.Channel) error {
	if channel == nil {
		return nil
	}
	tags, err := p.tags(ctx, channel.Tags)
	if err != nil {
		return err
	}
	channel.Tags = tags
	for name, entry := range channel.Messages.All() {
		if err := p.message(ctx, entry.GetObject()); err != nil {
			return fmt.Errorf("message %s: %w", name, err)
		}
	}
	return nil
}

func (p *tagsProcessor) operation(ctx context.Context, operation *asyncapi.Operation) error {
	if operation == nil {
		return nil
	}
	tags, err := p.tags(ctx, operation.Tags)
	if err != nil {
		return err
	}
	operation.Tags = tags
	for _, trait := range operation.Traits {
		if err := p.operationTrait(ctx, trait.GetObject()); err != nil {
			return err
		}
	}
	for _, message := range operation.Messages {
		if err := p.message(ctx, message.GetObject()); err != nil {
			return err
		}
	}
	return nil
}

func (p *tagsProcessor) operationTrait(ctx context.Context, trait *asyncapi.OperationTrait) error {
	if trait == nil {
		return nil
	}
	tags, err := p.tags(ctx, trait.Tags)
	if err != nil {
		return err
	}
	trait.Tags = tags
	return nil
}

func (p *tagsProcessor) message(ctx context.Context, message *asyncapi.Message) error {
	if message == nil {
		return nil
	}
	tags, err := p.tags(ctx, message.Tags)
	if err != nil {
		return err
	}
	message.Tags = tags
	for _, trait := range message.Traits {
		if err := p.messageTrait(ctx, trait.GetObject()); err != nil {
			return err
		}
	}
	return nil
}

func (p *tagsProcessor) messageTrait(ctx context.Context, trait *asyncapi.MessageTrait) error {
	if trait == nil {
		return nil
	}
	tags, err := p.tags(ctx, trait.Tags)
	if err != nil {
		return err
	}
	trait.Tags = tags
	return nil
}

// tags hoists every inline tag of the list and drops repeated references, keeping first-seen order.
// Inline tags without a name have no components key and stay inline.
func (p *tagsProcessor) tags(ctx context.Context, tags []*asyncapi.ReferencedTag) ([]*asyncapi.ReferencedTag, error) {
	if len(tags) == 0 {
		return tags, nil
	}

	seen := make(map[references.Reference]struct{}, len(tags))
	out := make([]*asyncapi.ReferencedTag, 0, len(tags))

	for _, tag := range tags {
		if tag == nil {
			continue
		}

		if obj := tag.GetObject(); obj != nil {
			name := TagName(obj.Name)
			if name == "" {
				out = append(out, tag)
				continue
			}
			hoisted, err := p.hoister.hoist(ctx, name, tag)
			if err != nil {
				return nil, err
			}
			tag = hoisted
		}

		if !tag.IsReference() {
			out = append(out, tag)
			continue
		}

		ref := tag.GetReference()
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		out = append(out, tag)
	}

	return out, nil
}
