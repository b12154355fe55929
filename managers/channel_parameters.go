package managers

import (
	"context"
	"fmt"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
)

// ChannelParametersManager moves the inline parameters of every channel, at the root and in components,
// into components.parameters.
type ChannelParametersManager struct {
	cfg config
}

var _ asyncapi.Processor = (*ChannelParametersManager)(nil)

// NewChannelParametersManager creates a ChannelParametersManager.
func NewChannelParametersManager(opts ...Option) *ChannelParametersManager {
	return &ChannelParametersManager{cfg: newConfig(opts)}
}

// Process replaces every inline channel parameter with a reference to #/components/parameters/<key>.
func (m *ChannelParametersManager) Process(ctx context.Context, doc *asyncapi.Document) (*asyncapi.Document, error) {
	if doc == nil {
		return nil, nil
	}

	components := doc.EnsureComponents()
	components.Parameters = sequencedmap.Ensure(components.Parameters)

	h := &hoister[asyncapi.Parameter]{
		kind:       "parameter",
		collection: asyncapi.KeyParameters,
		target:     components.Parameters,
		logger:     m.cfg.logger,
	}
	for _, channel := range channelObjects(doc) {
		if err := h.hoistAll(ctx, channel.Parameters); err != nil {
			return nil, fmt.Errorf("channel %s: %w", channelLabel(channel), err)
		}
	}

	return doc, nil
}
