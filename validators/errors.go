package validators

import (
	"github.com/speakeasy-api/asyncapi/errors"
	"github.com/speakeasy-api/asyncapi/walk"
)

const (
	// ErrInvalidReference is returned for a reference that cannot be resolved or resolves to the wrong kind of object.
	ErrInvalidReference = errors.Error("invalid reference")
	// ErrTypeMismatch is returned, wrapped in ErrInvalidReference, when a reference resolves to an unexpected type.
	ErrTypeMismatch = errors.Error("reference type mismatch")
	// ErrUnknownReferencePath is returned when no registry pattern matches the position of a reference.
	// It signals an incomplete registry rather than an invalid document.
	ErrUnknownReferencePath = errors.Error("unknown reference path")
	// ErrDepthExceeded is returned when the document nests deeper than the configured walk ceiling.
	ErrDepthExceeded = walk.ErrDepthExceeded
)
