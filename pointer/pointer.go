// Package pointer helps with the optional fields of the document model, which are held behind pointers
// so that an absent value can be told apart from an empty one.
package pointer

// From returns a pointer to a copy of v.
func From[T any](v T) *T {
	return &v
}

// ValueOrZero dereferences p, returning the zero value of T for a nil pointer.
func ValueOrZero[T any](p *T) T {
	var zero T
	return ValueOr(p, zero)
}

// ValueOr dereferences p, returning fallback for a nil pointer.
func ValueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
