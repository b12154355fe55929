package managers

import (
	"context"
	"fmt"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
)

// ChannelMessagesManager moves the inline messages of every channel, at the root and in components,
// into components.messages.
type ChannelMessagesManager struct {
	cfg config
}

var _ asyncapi.Processor = (*ChannelMessagesManager)(nil)

// NewChannelMessagesManager creates a ChannelMessagesManager.
func NewChannelMessagesManager(opts ...Option) *ChannelMessagesManager {
	return &ChannelMessagesManager{cfg: newConfig(opts)}
}

// Process replaces every inline channel message with a reference to #/components/messages/<key>, where key is the
// message's key in the channel. Identical messages under the same key in different channels share one entry.
func (m *ChannelMessagesManager) Process(ctx context.Context, doc *asyncapi.Document) (*asyncapi.Document, error) {
	if doc == nil {
		return nil, nil
	}

	components := doc.EnsureComponents()
	components.Messages = sequencedmap.Ensure(components.Messages)

	h := &hoister[asyncapi.Message]{
		kind:       "message",
		collection: asyncapi.KeyMessages,
		target:     components.Messages,
		logger:     m.cfg.logger,
	}
	for _, channel := range channelObjects(doc) {
		if err := h.hoistAll(ctx, channel.Messages); err != nil {
			return nil, fmt.Errorf("channel %s: %w", channelLabel(channel), err)
		}
	}

	return doc, nil
}

func channelLabel(channel *asyncapi.Channel) string {
	if channel.Address != nil {
		return fmt.Sprintf("%q", *channel.Address)
	}
	return "without address"
}
