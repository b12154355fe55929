// Package validators checks the references of an AsyncAPI document.
//
// UnifiedReferencesValidator walks the whole document, resolves every internal reference and checks the resolved
// object against the type the Registry expects at the reference's position. The per-kind validators add rules about
// where references of one kind are allowed to point.
package validators

import (
	"context"
	"log/slog"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/references"
	"github.com/speakeasy-api/asyncapi/walk"
)

// UnifiedReferencesValidator validates every reference in a document.
type UnifiedReferencesValidator struct {
	cfg config
}

var _ asyncapi.Processor = (*UnifiedReferencesValidator)(nil)

// NewUnifiedReferencesValidator creates a UnifiedReferencesValidator using the default registry unless
// WithRegistry is given.
func NewUnifiedReferencesValidator(opts ...Option) *UnifiedReferencesValidator {
	return &UnifiedReferencesValidator{cfg: newConfig(opts)}
}

// Process validates doc and returns it unchanged.
func (v *UnifiedReferencesValidator) Process(ctx context.Context, doc *asyncapi.Document) (*asyncapi.Document, error) {
	if err := v.Validate(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate returns the first reference that fails to resolve, or that resolves to a type the registry does not
// accept at its position. External references are logged and skipped.
func (v *UnifiedReferencesValidator) Validate(ctx context.Context, doc *asyncapi.Document) error {
	if doc == nil {
		return nil
	}

	validated := make(map[references.Reference]struct{})

	for item, err := range walk.Walk(doc, references.RootPath, walk.WithMaxDepth(v.cfg.maxDepth)) {
		if err != nil {
			return err
		}

		r, ok := item.Value.(references.Referencer)
		if !ok || !r.IsReference() {
			continue
		}

		ref := r.GetReference()
		if err := v.validateReference(ctx, doc, item.Path, ref); err != nil {
			return err
		}
		validated[ref] = struct{}{}
	}

	v.cfg.logger.DebugContext(ctx, "references validated", slog.Int("distinct", len(validated)))
	return nil
}

func (v *UnifiedReferencesValidator) validateReference(ctx context.Context, doc *asyncapi.Document, path string, ref references.Reference) error {
	result, err := references.Resolve(ctx, ref, references.ResolveOptions{
		RootDocument: doc,
		Logger:       v.cfg.logger.With(slog.String("path", path)),
	})
	if err != nil {
		return ErrInvalidReference.Wrapf("reference %s at %s: %w", ref, path, err)
	}
	if result == nil {
		return nil
	}

	expected, err := v.cfg.registry.ExpectedTypes(path)
	if err != nil {
		return err
	}

	if !Compatible(result.Type, expected) {
		return ErrInvalidReference.Wrap(ErrTypeMismatch.Wrapf("reference %s at %s resolved to %s with type %s, expected %s",
			ref, path, result.Path, result.TypeName(), FormatTypes(expected)))
	}

	return nil
}
