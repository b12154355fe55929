// Package sequencedmap provides the ordered keyed collection used for every map in the document model.
//
// AsyncAPI documents are authored by hand and their key order carries meaning to readers, so collections
// such as channels, messages and components keep the order their keys were first written in, through
// decoding, mutation and encoding.
package sequencedmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"gopkg.in/yaml.v3"
)

// Element is a key/value pair used to seed a map.
type Element[K comparable, V any] struct {
	Key   K
	Value V
}

// NewElem creates an element.
func NewElem[K comparable, V any](key K, value V) *Element[K, V] {
	return &Element[K, V]{Key: key, Value: value}
}

// Map is a map that remembers the order keys were first set in.
// The zero value is ready to use and a nil *Map behaves as an empty map for every read.
type Map[K comparable, V any] struct {
	order  []K
	values map[K]V
}

var (
	_ yaml.Unmarshaler = (*Map[string, any])(nil)
	_ yaml.Marshaler   = (*Map[string, any])(nil)
	_ json.Marshaler   = (*Map[string, any])(nil)
)

// New creates a map seeded with elements, in order.
func New[K comparable, V any](elements ...*Element[K, V]) *Map[K, V] {
	m := &Map[K, V]{}
	m.reset(len(elements))
	for _, el := range elements {
		m.Set(el.Key, el.Value)
	}
	return m
}

func (m *Map[K, V]) reset(capacity int) {
	m.order = make([]K, 0, capacity)
	m.values = make(map[K]V, capacity)
}

// Init allocates the map storage if it has not been allocated yet.
func (m *Map[K, V]) Init() {
	if m.values == nil {
		m.reset(0)
	}
}

// IsInitialized reports whether the map storage has been allocated.
func (m *Map[K, V]) IsInitialized() bool {
	return m != nil && m.values != nil
}

// Len returns the number of keys.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// Set stores value under key. A new key is appended, an existing key keeps its position.
func (m *Map[K, V]) Set(key K, value V) {
	m.Init()
	if _, exists := m.values[key]; !exists {
		m.order = append(m.order, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// GetOrZero returns the value stored under key or the zero value of V.
func (m *Map[K, V]) GetOrZero(key K) V {
	v, _ := m.Get(key)
	return v
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key, keeping the relative order of the remaining keys.
func (m *Map[K, V]) Delete(key K) {
	if !m.Has(key) {
		return
	}
	delete(m.values, key)
	if i := slices.Index(m.order, key); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
}

// All iterates over the key/value pairs in order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys() {
			v, ok := m.values[k]
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// AllUntyped iterates over the key/value pairs in order without their static types, for reflective callers
// such as the document walker and the hasher.
func (m *Map[K, V]) AllUntyped() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for k, v := range m.All() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys iterates over the keys in order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return slices.Values(m.keys())
}

// Values iterates over the values in key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// keys returns a snapshot of the key order so that callers may mutate the map while iterating.
func (m *Map[K, V]) keys() []K {
	if m == nil {
		return nil
	}
	return slices.Clone(m.order)
}

// NavigateWithKey looks up a pointer segment. Only maps keyed by strings can be navigated.
func (m *Map[K, V]) NavigateWithKey(key string) (any, error) {
	if m == nil {
		return nil, fmt.Errorf("key %s not found in empty map", key)
	}

	k, ok := any(key).(K)
	if !ok {
		var zero K
		return nil, fmt.Errorf("map keyed by %T cannot be navigated with %q", zero, key)
	}

	v, ok := m.values[k]
	if !ok {
		return nil, fmt.Errorf("key %s not found", key)
	}
	return v, nil
}

// MarshalJSON encodes the map as a JSON object in key order.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(fmt.Sprint(k))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("failed to encode value for key %v: %w", k, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML encodes the map as a mapping node in key order.
func (m *Map[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for k, v := range m.All() {
		var key, value yaml.Node
		if err := key.Encode(k); err != nil {
			return nil, fmt.Errorf("failed to encode key %v: %w", k, err)
		}
		if err := value.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to encode value for key %v: %w", k, err)
		}
		node.Content = append(node.Content, &key, &value)
	}

	return node, nil
}

// UnmarshalYAML decodes a mapping node, keeping the order its keys were written in.
// Duplicate keys are rejected.
func (m *Map[K, V]) UnmarshalYAML(node *yaml.Node) error {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping, got %s", node.Line, node.ShortTag())
	}

	m.reset(len(node.Content) / 2)

	for pair := range slices.Chunk(node.Content, 2) {
		if len(pair) < 2 {
			break
		}
		keyNode, valueNode := pair[0], pair[1]

		var k K
		if err := keyNode.Decode(&k); err != nil {
			return fmt.Errorf("line %d: failed to decode key: %w", keyNode.Line, err)
		}
		if m.Has(k) {
			return fmt.Errorf("line %d: duplicate key %v", keyNode.Line, k)
		}

		var v V
		if err := valueNode.Decode(&v); err != nil {
			return fmt.Errorf("line %d: failed to decode value for key %v: %w", valueNode.Line, k, err)
		}
		m.Set(k, v)
	}

	return nil
}
