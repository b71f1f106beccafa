// Package pkg is a package that provides utilities for testindex.
package pkg

// OrdMap is a generic mapping that remembers the order in which keys were
// first inserted. Overwriting an existing key keeps its original position.
type OrdMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrdMap creates an empty OrdMap.
func NewOrdMap[K comparable, V any]() *OrdMap[K, V] {
	return &OrdMap[K, V]{
		values: make(map[K]V),
	}
}

// Set stores value under key. A key seen for the first time is appended to
// the iteration order; an existing key is overwritten in place.
func (m *OrdMap[K, V]) Set(key K, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Get returns the value stored under key and whether the key is present.
func (m *OrdMap[K, V]) Get(key K) (V, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Keys returns the keys in insertion order. The returned slice is shared
// with the map and must not be mutated by the caller.
func (m *OrdMap[K, V]) Keys() []K {
	return m.keys
}

// Len returns the number of stored keys.
func (m *OrdMap[K, V]) Len() int {
	return len(m.keys)
}

// Range calls fn for every key/value pair in insertion order. Iteration
// stops at the first error, which is returned to the caller.
func (m *OrdMap[K, V]) Range(fn func(key K, value V) error) error {
	for _, key := range m.keys {
		if err := fn(key, m.values[key]); err != nil {
			return err
		}
	}

	return nil
}
