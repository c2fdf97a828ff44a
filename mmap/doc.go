// Package mmap provides MMap, an ordered multimap: a map from totally
// ordered keys to ordered sets of values.
//
// Semantically an MMap[K,V] is a partial function K → OrderedSet<V>,
// with the convention that a missing key and a key bound to the empty
// set are indistinguishable. The implementation enforces this: removing
// the last value under a key drops the key itself, so Equal coincides
// with structural equality of the backing storage.
//
// Ordering is supplied at construction time as two three-way
// comparators (the same shape as slices.SortFunc takes). Get returns
// values in ascending comparator order; Pairs returns all (key, value)
// pairs in (k, v) lexicographic order. Callers lean on this: the digle
// package orders its edge values so that live edges sort before deleted
// ones, making "iterate only live out-edges" a prefix scan.
//
// Serialization flattens the map into a sequence of [k, v] tuples.
// Output is canonical (ascending by (k, v)); input tolerates any tuple
// order and rebuilds by repeated Insert.
//
// MMap is not safe for concurrent mutation. Slices returned by Get are
// views into the map and are invalidated by any mutation.
package mmap
