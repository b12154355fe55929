// Package interfaces holds the structural interfaces shared by the reflective code paths of the module,
// so that walking, hashing and pointer resolution agree on what a keyed collection looks like.
package interfaces

import (
	"iter"
	"reflect"
)

// OrderedMap is implemented by keyed collections that keep their insertion order.
type OrderedMap interface {
	Len() int
	AllUntyped() iter.Seq2[any, any]
}

// KeyNavigable is implemented by keyed collections that a pointer segment can step into.
type KeyNavigable interface {
	NavigateWithKey(key string) (any, error)
}

// Satisfies reports whether actual is assignable to the interface type iface.
// It is false when either type is nil or iface is not an interface.
func Satisfies(actual, iface reflect.Type) bool {
	if actual == nil || iface == nil || iface.Kind() != reflect.Interface {
		return false
	}
	return actual.Implements(iface)
}

// Is reports whether the dynamic value v implements T without the caller asserting it.
func Is[T any](v any) bool {
	if v == nil {
		return false
	}
	return Satisfies(reflect.TypeOf(v), reflect.TypeFor[T]())
}
