package managers

import (
	"context"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
)

// ServersManager moves inline root servers into components.servers.
type ServersManager struct {
	cfg config
}

var _ asyncapi.Processor = (*ServersManager)(nil)

// NewServersManager creates a ServersManager.
func NewServersManager(opts ...Option) *ServersManager {
	return &ServersManager{cfg: newConfig(opts)}
}

// Process replaces every inline root server with a reference to #/components/servers/<name>.
// A name already used by a different server in components fails with ErrNameConflict.
func (m *ServersManager) Process(ctx context.Context, doc *asyncapi.Document) (*asyncapi.Document, error) {
	if doc == nil {
		return nil, nil
	}

	components := doc.EnsureComponents()
	components.Servers = sequencedmap.Ensure(components.Servers)

	h := &hoister[asyncapi.Server]{
		kind:       "server",
		collection: asyncapi.KeyServers,
		target:     components.Servers,
		logger:     m.cfg.logger,
	}
	if err := h.hoistAll(ctx, doc.Servers); err != nil {
		return nil, err
	}

	return doc, nil
}
