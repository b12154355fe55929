package managers

import (
	"context"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
)

// OperationsManager moves inline root operations into components.operations.
type OperationsManager struct {
	cfg config
}

var _ asyncapi.Processor = (*OperationsManager)(nil)

// NewOperationsManager creates an OperationsManager.
func NewOperationsManager(opts ...Option) *OperationsManager {
	return &OperationsManager{cfg: newConfig(opts)}
}

// Process replaces every inline root operation with a reference to #/components/operations/<name>.
func (m *OperationsManager) Process(ctx context.Context, doc *asyncapi.Document) (*asyncapi.Document, error) {
	if doc == nil {
		return nil, nil
	}

	components := doc.EnsureComponents()
	components.Operations = sequencedmap.Ensure(components.Operations)

	h := &hoister[asyncapi.Operation]{
		kind:       "operation",
		collection: asyncapi.KeyOperations,
		target:     components.Operations,
		logger:     m.cfg.logger,
	}
	if err := h.hoistAll(ctx, doc.Operations); err != nil {
		return nil, err
	}

	return doc, nil
}
