// Package walk provides the field descriptor vocabulary document records use to expose their children,
// and a depth bounded iterator over a tree built from them.
package walk

import (
	"reflect"

	"github.com/speakeasy-api/asyncapi/internal/interfaces"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
)

// Field describes a single declared field of a record.
type Field struct {
	// Name is the snake_case name used in walk paths and registry patterns.
	Name string
	// Key is the name the field is serialized under in the document.
	Key string
	// Value is the current value of the field or nil when the field is unset.
	Value any
}

// Node is implemented by records with a declared field set.
type Node interface {
	Fields() []Field
}

// Mapping is implemented by keyed collections.
type Mapping = interfaces.OrderedMap

// List is an ordered sequence of children.
type List []any

// Union is implemented by the two case reference-or-object values.
// A union holding a reference is a leaf, otherwise the walk continues into the object at the same path.
type Union interface {
	IsReference() bool
	GetObjectAny() any
}

// Value builds a field from an optional pointer value.
func Value[T any](name, key string, v *T) Field {
	f := Field{Name: name, Key: key}
	if v != nil {
		f.Value = v
	}
	return f
}

// String builds a field from a string, treating the empty string as unset.
func String(name, key, v string) Field {
	f := Field{Name: name, Key: key}
	if v != "" {
		f.Value = v
	}
	return f
}

// Map builds a field from an optional keyed collection.
func Map[K comparable, V any](name, key string, m *sequencedmap.Map[K, V]) Field {
	f := Field{Name: name, Key: key}
	if m != nil {
		f.Value = m
	}
	return f
}

// Slice builds a field from a slice, exposing it to the walker as a List.
func Slice[T any](name, key string, s []T) Field {
	f := Field{Name: name, Key: key}
	if s == nil {
		return f
	}

	list := make(List, 0, len(s))
	for _, v := range s {
		if IsNil(v) {
			list = append(list, nil)
			continue
		}
		list = append(list, v)
	}
	f.Value = list
	return f
}

// Any builds a field from an arbitrary value, dropping typed nils.
func Any(name, key string, v any) Field {
	f := Field{Name: name, Key: key}
	if !IsNil(v) {
		f.Value = v
	}
	return f
}

// FindField returns the field whose Name or Key equals segment.
func FindField(n Node, segment string) (Field, bool) {
	for _, f := range n.Fields() {
		if f.Name == segment || f.Key == segment {
			return f, true
		}
	}
	return Field{}, false
}

// IsNil reports whether v is nil or a typed nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
