// Package anyhash implements a map keyed by arbitrary hashable
// values that aren't necessarily comparable, such as slices.
package anyhash

import (
	"hash/maphash"
	"iter"
	"slices"
)

// A Hasher defines a hash function and an equivalence relation over
// values of type T. Values that are Equal must produce the same hash.
type Hasher[T any] interface {
	Hash(*maphash.Hash, T)
	Equal(x, y T) bool
}

// ComparableHasher is an implementation of [Hasher] for comparable types.
// Its Equal(x, y) method is consistent with x == y.
type ComparableHasher[T comparable] struct {
	_ [0]func(T) // disallow comparison, and conversion between ComparableHasher[X] and ComparableHasher[Y]
}

func (ComparableHasher[T]) Hash(h *maphash.Hash, v T) { maphash.WriteComparable(h, v) }
func (ComparableHasher[T]) Equal(x, y T) bool         { return x == y }

// SliceHasher is an implementation of [Hasher] for slices of
// comparable elements. Two slices are equal when they have the
// same length and equal elements.
type SliceHasher[S ~[]E, E comparable] struct{}

func (SliceHasher[S, E]) Hash(h *maphash.Hash, s S) {
	for _, e := range s {
		maphash.WriteComparable(h, e)
	}
}

func (SliceHasher[S, E]) Equal(x, y S) bool { return slices.Equal(x, y) }

// Map is a hash-table-based mapping from keys K to values V.
//
// Just as with map[K]V, a nil *Map is a valid empty map for
// read operations.
//
// Map is not safe for concurrent mutation.
type Map[K, V any] struct {
	hasher Hasher[K]
	seed   maphash.Seed
	table  map[uint64][]entry[K, V]
	length int
}

// entry is an association in a hash bucket.
type entry[K, V any] struct {
	key K
	val V
}

// NewMap returns a new empty Map using h to hash and compare keys.
func NewMap[K, V any](h Hasher[K]) *Map[K, V] {
	return &Map[K, V]{
		hasher: h,
		seed:   maphash.MakeSeed(),
		table:  make(map[uint64][]entry[K, V]),
	}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.length
}

func (m *Map[K, V]) hashKey(k K) uint64 {
	var h maphash.Hash
	h.SetSeed(m.seed)
	m.hasher.Hash(&h, k)
	return h.Sum64()
}

// Get returns the value associated with k and reports
// whether the entry was found.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if m == nil || m.table == nil {
		return *new(V), false
	}
	for _, e := range m.table[m.hashKey(k)] {
		if m.hasher.Equal(k, e.key) {
			return e.val, true
		}
	}
	return *new(V), false
}

// Set sets the value for k to v, returning the previous value (or zero if none).
func (m *Map[K, V]) Set(k K, v V) (prev V) {
	if m == nil {
		panic("(*Map).Set called on nil *Map")
	}
	if m.table == nil {
		m.table = make(map[uint64][]entry[K, V])
	}
	hv := m.hashKey(k)
	b := m.table[hv]
	for i := range b {
		if m.hasher.Equal(k, b[i].key) {
			prev = b[i].val
			b[i].val = v
			return prev
		}
	}
	m.table[hv] = append(b, entry[K, V]{key: k, val: v})
	m.length++
	return prev
}

// Clear removes all entries from the map.
func (m *Map[K, V]) Clear() {
	if m == nil {
		return
	}
	clear(m.table)
	m.length = 0
}

// All returns an iterator over (key, value) pairs in unspecified order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, bucket := range m.table {
			for _, e := range bucket {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}
