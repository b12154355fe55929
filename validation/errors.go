// Package validation holds the error type reported by base structural validation of a document,
// positioned at the line and column of the offending YAML node.
package validation

import (
	"fmt"

	"github.com/speakeasy-api/asyncapi/errors"
	"gopkg.in/yaml.v3"
)

const (
	// ErrMissingField is reported when a required field is absent.
	ErrMissingField = errors.Error("missing required field")
	// ErrTypeMismatch is reported when a value has the wrong type.
	ErrTypeMismatch = errors.Error("type mismatch")
	// ErrValueInvalid is reported when a value violates any other constraint.
	ErrValueInvalid = errors.Error("invalid value")
)

// Error represents a validation error and the line and column where it occurred.
type Error struct {
	// UnderlyingError is one of the kinds declared in this package wrapping the detail message.
	UnderlyingError error
	// Location is the dot separated location of the offending value in the document.
	Location string
	Line     int
	Column   int
}

var _ error = (*Error)(nil)

// NewValidationError creates an Error positioned at node. A nil node produces a position of 0:0.
func NewValidationError(err error, location string, node *yaml.Node) *Error {
	e := &Error{UnderlyingError: err, Location: location}
	if node != nil {
		e.Line = node.Line
		e.Column = node.Column
	}
	return e
}

// NewMissingFieldError creates a missing field error with a formatted detail message.
func NewMissingFieldError(format string, args ...any) error {
	return ErrMissingField.Wrapf(format, args...)
}

// NewTypeMismatchError creates a type mismatch error with a formatted detail message.
func NewTypeMismatchError(format string, args ...any) error {
	return ErrTypeMismatch.Wrapf(format, args...)
}

// NewValueValidationError creates an invalid value error with a formatted detail message.
func NewValueValidationError(format string, args ...any) error {
	return ErrValueInvalid.Wrapf(format, args...)
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d] %s", e.Line, e.Column, e.UnderlyingError.Error())
}

func (e *Error) Unwrap() error {
	return e.UnderlyingError
}

// GetLineNumber returns the line of the error, or -1 for a nil error.
func (e *Error) GetLineNumber() int {
	if e == nil {
		return -1
	}
	return e.Line
}

// GetColumnNumber returns the column of the error, or -1 for a nil error.
func (e *Error) GetColumnNumber() int {
	if e == nil {
		return -1
	}
	return e.Column
}
