package validators

import (
	"context"
	"fmt"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
)

// ServerBindingsRefValidator checks that server binding references point at an existing
// #/components/serverBindings entry.
type ServerBindingsRefValidator struct {
	cfg config
}

var _ asyncapi.Processor = (*ServerBindingsRefValidator)(nil)

// NewServerBindingsRefValidator creates a ServerBindingsRefValidator.
func NewServerBindingsRefValidator(opts ...Option) *ServerBindingsRefValidator {
	return &ServerBindingsRefValidator{cfg: newConfig(opts)}
}

// Process validates the bindings of root and components servers, and entries of components.serverBindings stored
// as references.
func (v *ServerBindingsRefValidator) Process(ctx context.Context, doc *asyncapi.Document) (*asyncapi.Document, error) {
	if doc == nil {
		return nil, nil
	}

	components := doc.GetComponents()
	c := &componentRefChecker[*asyncapi.ReferencedServerBindings]{
		collection: asyncapi.KeyServerBindings,
		entries:    components.GetServerBindings(),
		logger:     v.cfg.logger,
	}

	servers := []struct {
		kind    string
		entries *sequencedmap.Map[string, *asyncapi.ReferencedServer]
	}{
		{kind: "server", entries: doc.GetServers()},
		{kind: "components server", entries: components.GetServers()},
	}
	for _, s := range servers {
		for name, entry := range s.entries.All() {
			bindings := entry.GetObject().GetBindings()
			if !bindings.IsReference() {
				continue
			}
			if err := c.check(ctx, bindings.GetReference(), fmt.Sprintf("%s %q bindings", s.kind, name)); err != nil {
				return nil, err
			}
		}
	}

	for name, binding := range components.GetServerBindings().All() {
		if !binding.IsReference() {
			continue
		}
		if err := c.check(ctx, binding.GetReference(), fmt.Sprintf("components server binding %q", name)); err != nil {
			return nil, err
		}
	}

	return doc, nil
}
