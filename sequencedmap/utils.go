package sequencedmap

import "iter"

// Len returns the number of keys of m, zero for a nil map.
func Len[K comparable, V any](m *Map[K, V]) int {
	return m.Len()
}

// From collects a sequence into a new map. Later pairs overwrite earlier ones with the same key.
func From[K comparable, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	m := New[K, V]()
	for k, v := range seq {
		m.Set(k, v)
	}
	return m
}

// Ensure returns m with its storage allocated, or a new empty map when m is nil.
// Managers use it before writing into a components collection that may not exist yet.
func Ensure[K comparable, V any](m *Map[K, V]) *Map[K, V] {
	if m == nil {
		return New[K, V]()
	}
	m.Init()
	return m
}
