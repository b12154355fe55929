package validators

import (
	"context"
	"log/slog"
	"strings"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/references"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
)

// componentRefChecker checks that references of one kind point into a single components sub-collection.
type componentRefChecker[T any] struct {
	collection string
	entries    *sequencedmap.Map[string, T]
	logger     *slog.Logger
}

// check validates ref found at where. External references are logged and accepted.
func (c *componentRefChecker[T]) check(ctx context.Context, ref references.Reference, where string) error {
	if ref.IsExternal() {
		c.logger.WarnContext(ctx, "external reference cannot be validated locally",
			slog.String("at", where),
			slog.String("ref", ref.String()))
		return nil
	}

	prefix := asyncapi.ComponentPrefix(c.collection)
	key, ok := strings.CutPrefix(ref.String(), prefix)
	if !ok {
		return ErrInvalidReference.Wrapf("%s reference %s must point to %s", where, ref, prefix)
	}
	if !c.entries.Has(key) {
		return ErrInvalidReference.Wrapf("%s references %s but %q does not exist in %s", where, ref, key, prefix)
	}

	return nil
}
