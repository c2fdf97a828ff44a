package mmap

import "slices"

// Pair is one (key, value) binding of an MMap, as returned by Pairs.
type Pair[K comparable, V any] struct {
	Key K
	Val V
}

// MMap is an ordered multimap from K to ordered sets of V.
//
// The zero value is not usable; construct with New. Keys are kept in a
// sorted slice, values in sorted slices keyed by a plain map, so lookups
// are O(log n) and ordered iteration is allocation-free per step.
type MMap[K comparable, V any] struct {
	cmpKey func(a, b K) int
	cmpVal func(a, b V) int

	keys []K       // sorted by cmpKey
	vals map[K][]V // each slice sorted by cmpVal, never empty
	size int       // total number of (key, value) pairs
}

// New returns an empty MMap ordered by the given key and value
// comparators. Both must define a total order (negative, zero, positive
// for less, equal, greater).
func New[K comparable, V any](cmpKey func(a, b K) int, cmpVal func(a, b V) int) *MMap[K, V] {
	return &MMap[K, V]{
		cmpKey: cmpKey,
		cmpVal: cmpVal,
		vals:   make(map[K][]V),
	}
}

// Insert adds val to the set bound to key. Inserting a value that is
// already present is a no-op.
//
// Complexity: O(log n) search + O(n) slice shift in the worst case.
func (m *MMap[K, V]) Insert(key K, val V) {
	vs, ok := m.vals[key]
	if !ok {
		i, _ := slices.BinarySearchFunc(m.keys, key, m.cmpKey)
		m.keys = slices.Insert(m.keys, i, key)
		m.vals[key] = []V{val}
		m.size++

		return
	}

	i, found := slices.BinarySearchFunc(vs, val, m.cmpVal)
	if found {
		return
	}
	m.vals[key] = slices.Insert(vs, i, val)
	m.size++
}

// Remove deletes val from the set bound to key, reporting whether it was
// present. When the set becomes empty the key is dropped entirely, so
// that no key is ever bound to an empty set.
func (m *MMap[K, V]) Remove(key K, val V) bool {
	vs, ok := m.vals[key]
	if !ok {
		return false
	}

	i, found := slices.BinarySearchFunc(vs, val, m.cmpVal)
	if !found {
		return false
	}

	if len(vs) == 1 {
		m.removeKey(key)
	} else {
		m.vals[key] = slices.Delete(vs, i, i+1)
	}
	m.size--

	return true
}

// RemoveAll drops key and every value bound to it.
func (m *MMap[K, V]) RemoveAll(key K) {
	vs, ok := m.vals[key]
	if !ok {
		return
	}
	m.size -= len(vs)
	m.removeKey(key)
}

// removeKey erases key from both the map and the sorted key slice.
func (m *MMap[K, V]) removeKey(key K) {
	delete(m.vals, key)
	i, found := slices.BinarySearchFunc(m.keys, key, m.cmpKey)
	if found {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
}

// Contains reports whether val is bound to key.
func (m *MMap[K, V]) Contains(key K, val V) bool {
	vs, ok := m.vals[key]
	if !ok {
		return false
	}
	_, found := slices.BinarySearchFunc(vs, val, m.cmpVal)

	return found
}

// Get returns the values bound to key in ascending order, or nil if the
// key is absent. The returned slice is a view into the map: callers must
// not mutate it, and any MMap mutation invalidates it.
func (m *MMap[K, V]) Get(key K) []V {
	return m.vals[key]
}

// Keys returns the keys in ascending order. The returned slice is a
// fresh copy.
func (m *MMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Len returns the total number of (key, value) pairs.
func (m *MMap[K, V]) Len() int {
	return m.size
}

// Pairs returns every (key, value) pair in (k, v) lexicographic order.
//
// Complexity: O(n) time and allocation.
func (m *MMap[K, V]) Pairs() []Pair[K, V] {
	out := make([]Pair[K, V], 0, m.size)
	for _, k := range m.keys {
		for _, v := range m.vals[k] {
			out = append(out, Pair[K, V]{Key: k, Val: v})
		}
	}

	return out
}

// Equal reports whether m and o represent the same partial function,
// judged by m's comparators.
func (m *MMap[K, V]) Equal(o *MMap[K, V]) bool {
	if m.size != o.size || len(m.keys) != len(o.keys) {
		return false
	}
	for i, k := range m.keys {
		if m.cmpKey(k, o.keys[i]) != 0 {
			return false
		}
		a, b := m.vals[k], o.vals[o.keys[i]]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if m.cmpVal(a[j], b[j]) != 0 {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy sharing only the comparators.
func (m *MMap[K, V]) Clone() *MMap[K, V] {
	out := &MMap[K, V]{
		cmpKey: m.cmpKey,
		cmpVal: m.cmpVal,
		keys:   slices.Clone(m.keys),
		vals:   make(map[K][]V, len(m.vals)),
		size:   m.size,
	}
	for k, vs := range m.vals {
		out.vals[k] = slices.Clone(vs)
	}

	return out
}
