package containers

// OrderedMap is a map that remembers the order in which keys were first set.
// Setting an existing key replaces its value but keeps its position.
type OrderedMap[K comparable, V any] struct {
	values map[K]V
	keys   []K
}

// NewOrderedMap creates a new empty map
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{values: make(map[K]V)}
}

// Set stores value under key, overwriting any previous value
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if m.values == nil {
		m.values = make(map[K]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in first-insertion order
func (m *OrderedMap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}
