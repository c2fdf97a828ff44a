package mmap_test

import (
	"cmp"
	"testing"

	"github.com/jneem/quilt/mmap"
)

// BenchmarkInsert_Spread measures inserts spread across many keys, the
// digle-like access pattern (few values per key).
func BenchmarkInsert_Spread(b *testing.B) {
	m := mmap.New[int, int](cmp.Compare, cmp.Compare)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Insert(i%4096, i)
	}
}

// BenchmarkGet measures ordered value lookup on a populated map.
func BenchmarkGet(b *testing.B) {
	m := mmap.New[int, int](cmp.Compare, cmp.Compare)
	for i := 0; i < 4096; i++ {
		m.Insert(i%512, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Get(i % 512)
	}
}
