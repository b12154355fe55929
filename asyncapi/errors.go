package asyncapi

import "github.com/speakeasy-api/asyncapi/errors"

const (
	// ErrUnsupportedVersion is returned when the asyncapi field is not a 3.x version.
	ErrUnsupportedVersion = errors.Error("unsupported asyncapi version")
	// ErrInvalidKey is returned when a component name does not match the patterned key format.
	ErrInvalidKey = errors.Error("invalid key")
	// ErrInvalidID is returned when a document id is not an absolute URI.
	ErrInvalidID = errors.Error("invalid id")
	// ErrNotFound is returned when a named entity does not exist.
	ErrNotFound = errors.Error("not found")
	// ErrStoredAsReference is returned when an entity to update is stored as a reference rather than an object.
	ErrStoredAsReference = errors.Error("entity is stored as a reference")
	// ErrInvalidValue is returned when a value is outside the allowed set.
	ErrInvalidValue = errors.Error("invalid value")
	// ErrMissingRequired is returned when a required value is not provided.
	ErrMissingRequired = errors.Error("missing required value")
)
