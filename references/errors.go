package references

import "github.com/speakeasy-api/asyncapi/errors"

const (
	// ErrCircularReference is returned when a reference chain revisits a pointer.
	ErrCircularReference = errors.Error("circular reference detected")
	// ErrMalformedPointer is returned for internal pointers without any path segment.
	ErrMalformedPointer = errors.Error("malformed reference pointer")
	// ErrUnresolvedPointer is returned when a keyed mapping has no entry for a segment.
	ErrUnresolvedPointer = errors.Error("reference does not exist")
	// ErrUnresolvedField is returned when a record has no such field or the field is unset.
	ErrUnresolvedField = errors.Error("reference field does not exist")
	// ErrNotNavigable is returned when a segment is applied to a value that is neither a record nor a mapping.
	ErrNotNavigable = errors.Error("reference path is not navigable")
)
