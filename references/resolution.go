package references

import (
	"context"
	"log/slog"
	"reflect"

	"github.com/speakeasy-api/asyncapi/internal/interfaces"
	"github.com/speakeasy-api/asyncapi/pathmatch"
	"github.com/speakeasy-api/asyncapi/walk"
)

// RootPath is the path prefix of every resolved location.
const RootPath = "spec"

// KeyNavigable is implemented by keyed collections that can be indexed by a pointer segment.
type KeyNavigable = interfaces.KeyNavigable

// Referencer is implemented by union values that may hold a reference instead of an object.
type Referencer interface {
	IsReference() bool
	GetReference() Reference
}

// ResolveOptions represent the options available when resolving a reference.
type ResolveOptions struct {
	// RootDocument is the document references are resolved against.
	RootDocument any
	// Logger receives warnings for skipped external references. Defaults to a discarding logger.
	Logger *slog.Logger
}

// ResolveResult contains the result of a reference resolution.
type ResolveResult struct {
	// Object is the concrete object at the end of the reference chain.
	Object any
	// Type is the runtime type of Object.
	Type reflect.Type
	// Path is the normalized location of Object, for example spec.components.messages.shared.
	Path string
}

// TypeName returns the name of the resolved type without pointer decoration.
func (r *ResolveResult) TypeName() string {
	return TypeName(r.Type)
}

// TypeName returns the name of t without pointer decoration.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// Resolve follows ref through the root document, including chains of references, until it reaches a concrete object.
// External references are logged and return a nil result without error.
func Resolve(ctx context.Context, ref Reference, opts ResolveOptions) (*ResolveResult, error) {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return resolve(ctx, ref, opts, map[Reference]struct{}{})
}

func resolve(ctx context.Context, ref Reference, opts ResolveOptions, visited map[Reference]struct{}) (*ResolveResult, error) {
	if _, ok := visited[ref]; ok {
		return nil, ErrCircularReference.Wrapf("%s", ref)
	}
	visited[ref] = struct{}{}

	if ref.IsExternal() {
		opts.Logger.WarnContext(ctx, "external reference cannot be validated locally", slog.String("ref", ref.String()))
		return nil, nil
	}

	segments := ref.Segments()
	if len(segments) == 0 {
		return nil, ErrMalformedPointer.Wrapf("invalid reference path: %s", ref)
	}

	current := opts.RootDocument
	path := RootPath
	for _, segment := range segments {
		// Intermediate references are followed so pointers stay valid after their parent was moved to components.
		if r, ok := current.(Referencer); ok && r.IsReference() {
			hop, err := resolve(ctx, r.GetReference(), opts, visited)
			if err != nil || hop == nil {
				return nil, err
			}
			current, path = hop.Object, hop.Path
		}

		next, name, err := navigate(current, segment, path)
		if err != nil {
			return nil, err
		}
		current = next
		path += "." + name
	}

	if u, ok := current.(walk.Union); ok {
		if r, ok := current.(Referencer); ok && u.IsReference() {
			return resolve(ctx, r.GetReference(), opts, visited)
		}
		current = u.GetObjectAny()
	}

	if walk.IsNil(current) {
		return nil, ErrUnresolvedField.Wrapf("reference path %s is empty", path)
	}

	return &ResolveResult{
		Object: current,
		Type:   reflect.TypeOf(current),
		Path:   path,
	}, nil
}

// navigate steps from current into segment and returns the child along with the path segment it is recorded under.
// Fields are recorded by their Name and keys are escaped, matching the paths produced by walk.
func navigate(current any, segment, path string) (any, string, error) {
	if u, ok := current.(walk.Union); ok {
		if u.IsReference() {
			return nil, "", ErrUnresolvedField.Wrapf("cannot navigate to %q through the reference at %s", segment, path)
		}
		current = u.GetObjectAny()
	}

	key := pathmatch.EscapeSegment(segment)

	switch c := current.(type) {
	case KeyNavigable:
		if walk.IsNil(c) {
			return nil, "", ErrUnresolvedPointer.Wrapf("reference key %q not found in %s", segment, path)
		}
		next, err := c.NavigateWithKey(segment)
		if err != nil {
			return nil, "", ErrUnresolvedPointer.Wrapf("reference key %q not found in %s", segment, path)
		}
		return next, key, nil
	case walk.Node:
		if walk.IsNil(c) {
			return nil, "", ErrUnresolvedField.Wrapf("reference path %s is empty", path)
		}
		field, ok := walk.FindField(c, segment)
		if !ok {
			return nil, "", ErrUnresolvedField.Wrapf("field %q not found in model at %s", segment, path)
		}
		if field.Value == nil {
			return nil, "", ErrUnresolvedField.Wrapf("reference path %s is empty", path)
		}
		return field.Value, field.Name, nil
	case map[string]any:
		next, ok := c[segment]
		if !ok {
			return nil, "", ErrUnresolvedPointer.Wrapf("reference key %q not found in %s", segment, path)
		}
		return next, key, nil
	default:
		return nil, "", ErrNotNavigable.Wrapf("cannot navigate to %q in %s", segment, path)
	}
}
