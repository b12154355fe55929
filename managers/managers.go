// Package managers moves inline objects of an AsyncAPI document into its components and replaces every moved
// occurrence with a reference to the components entry.
//
// Each manager implements asyncapi.Processor and mutates the document it is given. Managers are idempotent:
// running one again on its own output changes nothing, since every position it scans already holds a reference.
package managers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/errors"
	"github.com/speakeasy-api/asyncapi/hashing"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"gopkg.in/yaml.v3"
)

// ErrNameConflict is returned when an inline object would be stored under a components name that already holds
// different content.
const ErrNameConflict = errors.Error("name conflict")

// Option configures a manager.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger warnings are written to. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// conflictPolicy decides what happens when a name is taken by different content.
type conflictPolicy int

const (
	// failOnConflict aborts with ErrNameConflict.
	failOnConflict conflictPolicy = iota
	// keepExisting logs a warning and points the occurrence at the existing entry.
	keepExisting
)

// hoister stores inline objects of one kind in a components sub-collection.
type hoister[T any] struct {
	kind       string
	collection string
	target     *sequencedmap.Map[string, *asyncapi.Reference[T]]
	policy     conflictPolicy
	logger     *slog.Logger
}

// hoist stores the object held by entry under name and returns the reference that replaces it.
// Entries already holding a reference, or holding nothing, are returned unchanged.
func (h *hoister[T]) hoist(ctx context.Context, name string, entry *asyncapi.Reference[T]) (*asyncapi.Reference[T], error) {
	if entry.GetObject() == nil {
		return entry, nil
	}

	ref := asyncapi.NewReferenceFromRef[T](asyncapi.ToComponent(h.collection, name))

	existing, ok := h.target.Get(name)
	if !ok {
		h.target.Set(name, entry)
		return ref, nil
	}

	if existing == entry || hashing.Equal(existing, entry) {
		return ref, nil
	}

	switch h.policy {
	case keepExisting:
		h.logger.WarnContext(ctx, fmt.Sprintf("%s name conflict, keeping the existing entry", h.kind),
			slog.String("name", name),
			slog.String("existing", dump(existing)),
			slog.String("new", dump(entry)))
		return ref, nil
	default:
		return nil, ErrNameConflict.Wrapf("%s %q already exists in %s with different content\nexisting:\n%snew:\n%s",
			h.kind, name, asyncapi.ComponentPrefix(h.collection), dump(existing), dump(entry))
	}
}

// hoistAll hoists every entry of m in place, keeping the key order.
func (h *hoister[T]) hoistAll(ctx context.Context, m *sequencedmap.Map[string, *asyncapi.Reference[T]]) error {
	for name, entry := range m.All() {
		replacement, err := h.hoist(ctx, name, entry)
		if err != nil {
			return err
		}
		if replacement != entry {
			m.Set(name, replacement)
		}
	}
	return nil
}

// dump renders a value the way it would appear in the document.
func dump(v any) string {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v\n", v)
	}
	return string(out)
}

// channelObjects returns the inline channels at the root of the document and in its components.
func channelObjects(doc *asyncapi.Document) []*asyncapi.Channel {
	var channels []*asyncapi.Channel
	for _, m := range []*sequencedmap.Map[string, *asyncapi.ReferencedChannel]{doc.GetChannels(), doc.GetComponents().GetChannels()} {
		for _, entry := range m.All() {
			if channel := entry.GetObject(); channel != nil {
				channels = append(channels, channel)
			}
		}
	}
	return channels
}
