package managers

import (
	"context"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
)

// ChannelsManager moves inline root channels into components.channels.
type ChannelsManager struct {
	cfg config
}

var _ asyncapi.Processor = (*ChannelsManager)(nil)

// NewChannelsManager creates a ChannelsManager.
func NewChannelsManager(opts ...Option) *ChannelsManager {
	return &ChannelsManager{cfg: newConfig(opts)}
}

// Process replaces every inline root channel with a reference to #/components/channels/<name>.
// Operations pointing at #/channels/<name> keep resolving through the new root reference.
func (m *ChannelsManager) Process(ctx context.Context, doc *asyncapi.Document) (*asyncapi.Document, error) {
	if doc == nil {
		return nil, nil
	}

	components := doc.EnsureComponents()
	components.Channels = sequencedmap.Ensure(components.Channels)

	h := &hoister[asyncapi.Channel]{
		kind:       "channel",
		collection: asyncapi.KeyChannels,
		target:     components.Channels,
		logger:     m.cfg.logger,
	}
	if err := h.hoistAll(ctx, doc.Channels); err != nil {
		return nil, err
	}

	return doc, nil
}
