// Package errors lets packages declare their error kinds as string constants and attach causes to them,
// while remaining a drop-in replacement for the standard errors package.
//
//	const ErrUnresolvedPointer = errors.Error("pointer cannot be resolved")
//
//	return ErrUnresolvedPointer.Wrapf("key %s does not exist", key)
//
// A wrapped error renders as "kind -- cause" and matches both its kind and every kind in its cause chain.
package errors

import (
	"errors"
	"fmt"
)

// ErrSeparator separates an error kind from its cause in rendered messages.
const ErrSeparator = " -- "

// Error is an error kind that can be declared as a constant.
type Error string

func (e Error) Error() string {
	return string(e)
}

// Wrap attaches cause to the kind. A nil cause yields an error rendering as the kind alone.
func (e Error) Wrap(cause error) error {
	return &kindError{kind: e, cause: cause}
}

// Wrapf attaches a formatted cause to the kind. The format may use %w.
func (e Error) Wrapf(format string, args ...any) error {
	return e.Wrap(fmt.Errorf(format, args...))
}

type kindError struct {
	kind  Error
	cause error
}

func (k *kindError) Error() string {
	if k.cause == nil {
		return string(k.kind)
	}
	return string(k.kind) + ErrSeparator + k.cause.Error()
}

func (k *kindError) Is(target error) bool {
	kind, ok := target.(Error)
	return ok && kind == k.kind
}

func (k *kindError) As(target any) bool {
	kind, ok := target.(*Error)
	if ok {
		*kind = k.kind
	}
	return ok
}

func (k *kindError) Unwrap() error {
	return k.cause
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target and sets target to it.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that renders as message.
func New(message string) error {
	return errors.New(message)
}

// Join returns an error wrapping every non nil error of errs, or nil when there are none.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
