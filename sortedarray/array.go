// Package sortedarray provides a sorted set of keys held in a
// single contiguous slice.
//
// Compared with a tree-based set, an Array costs O(n) to insert or
// remove a single key but iterates over plain memory, can be bulk
// loaded in O(n log n) and carries no per-key overhead. It suits
// data that is built once, or in large batches, and then queried
// many times.
//
// The ordering is given by a less function that must be a strict
// weak order. Two keys are equivalent when neither is less than the
// other, and an Array holds at most one key from each equivalence
// class. Equivalence is not equality: when less only looks at part
// of a key, keys that differ elsewhere are still duplicates, and the
// first one stored is kept.
//
// Positions returned by the methods of Array are indexes into the
// array, with Len() standing for "end". Any method that changes the
// array invalidates every position obtained before the call.
//
// An Array is not safe for concurrent use, including concurrent reads
// alongside a writer.
package sortedarray

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// Array holds a sorted sequence of unique keys.
//
// The zero value has no ordering and must not be used;
// create arrays with New, NewFunc, Of, OfFunc, Collect or CollectFunc.
type Array[K any] struct {
	// keys holds the elements in ascending order
	// with no two equivalent elements.
	keys []K

	// less defines the order of keys.
	less func(a, b K) bool
}

// New returns an empty array ordered by cmp.Less with
// room for at least minCap keys.
func New[K cmp.Ordered](minCap int) *Array[K] {
	return NewFunc(cmp.Less[K], minCap)
}

// NewFunc returns an empty array ordered by less with
// room for at least minCap keys.
func NewFunc[K any](less func(a, b K) bool, minCap int) *Array[K] {
	if less == nil {
		panic("sortedarray: nil less function")
	}
	return &Array[K]{
		keys: make([]K, 0, max(minCap, 0)),
		less: less,
	}
}

// Of returns an array holding the given keys ordered by cmp.Less.
// Duplicates are dropped, keeping the first occurrence.
func Of[K cmp.Ordered](keys ...K) *Array[K] {
	return OfFunc(cmp.Less[K], keys...)
}

// OfFunc returns an array holding the given keys ordered by less.
// Of each set of equivalent keys, only the first in argument order
// is kept. The keys slice is not retained.
func OfFunc[K any](less func(a, b K) bool, keys ...K) *Array[K] {
	a := NewFunc(less, len(keys))
	a.keys = append(a.keys, keys...)
	a.normalize()
	return a
}

// Collect returns an array holding the values of seq ordered by cmp.Less.
func Collect[K cmp.Ordered](seq iter.Seq[K]) *Array[K] {
	return CollectFunc(cmp.Less[K], seq)
}

// CollectFunc returns an array holding the values of seq ordered by less.
// Of each set of equivalent values, only the first produced by seq is kept.
func CollectFunc[K any](less func(a, b K) bool, seq iter.Seq[K]) *Array[K] {
	a := NewFunc(less, 0)
	a.keys = slices.AppendSeq(a.keys, seq)
	a.normalize()
	return a
}

// Clone returns a copy of a that shares no storage with it.
func (a *Array[K]) Clone() *Array[K] {
	return &Array[K]{
		keys: slices.Clone(a.keys),
		less: a.less,
	}
}

// Assign replaces the contents of a with the given keys,
// as if a had been created with OfFunc(a.Less(), keys...).
func (a *Array[K]) Assign(keys ...K) {
	clear(a.keys)
	a.keys = append(a.keys[:0], keys...)
	a.normalize()
}

// Len returns the number of keys in the array.
func (a *Array[K]) Len() int {
	return len(a.keys)
}

// Cap returns the number of keys the array can hold
// without allocating.
func (a *Array[K]) Cap() int {
	return cap(a.keys)
}

// Grow makes room for at least n more keys
// to be added without allocating.
func (a *Array[K]) Grow(n int) {
	a.keys = slices.Grow(a.keys, n)
}

// Less returns the function that orders the array.
func (a *Array[K]) Less() func(a, b K) bool {
	return a.less
}

// At returns the key at position i. It panics if i is out of range.
func (a *Array[K]) At(i int) K {
	if i < 0 || i >= len(a.keys) {
		panic(fmt.Sprintf("sortedarray: index %d out of range [0:%d]", i, len(a.keys)))
	}
	return a.keys[i]
}

// First returns the least key in the array
// and reports whether there is one.
func (a *Array[K]) First() (K, bool) {
	if len(a.keys) == 0 {
		return *new(K), false
	}
	return a.keys[0], true
}

// Last returns the greatest key in the array
// and reports whether there is one.
func (a *Array[K]) Last() (K, bool) {
	if len(a.keys) == 0 {
		return *new(K), false
	}
	return a.keys[len(a.keys)-1], true
}

// All returns an iterator over the positions and keys
// of the array in ascending order.
func (a *Array[K]) All() iter.Seq2[int, K] {
	return func(yield func(int, K) bool) {
		for i, k := range a.keys {
			if !yield(i, k) {
				return
			}
		}
	}
}

// Values returns an iterator over the keys in ascending order.
func (a *Array[K]) Values() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range a.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Backward returns an iterator over the positions and keys
// of the array in descending order.
func (a *Array[K]) Backward() iter.Seq2[int, K] {
	return slices.Backward(a.keys)
}

// Slice returns a copy of the keys in ascending order.
func (a *Array[K]) Slice() []K {
	return slices.Clone(a.keys)
}

func (a *Array[K]) String() string {
	return fmt.Sprint(a.keys)
}

// Validate reports whether the array is in ascending order
// with no two equivalent keys. It is intended for tests;
// it takes O(n) time.
func (a *Array[K]) Validate() bool {
	for i := 1; i < len(a.keys); i++ {
		// Each key must be strictly greater than its predecessor:
		// that rules out both disorder and duplicates.
		if !a.greater(a.keys[i], a.keys[i-1]) {
			return false
		}
	}
	return true
}

func (a *Array[K]) equivalent(k1, k2 K) bool {
	return !a.less(k1, k2) && !a.less(k2, k1)
}

func (a *Array[K]) greater(k1, k2 K) bool {
	return a.less(k2, k1)
}

// compare adapts less to the three-way form used by the slices package.
func (a *Array[K]) compare(k1, k2 K) int {
	switch {
	case a.less(k1, k2):
		return -1
	case a.less(k2, k1):
		return 1
	}
	return 0
}

// normalize establishes the array invariants over a.keys in place.
// The sort is stable, so the key kept from each run of
// equivalent keys is the first one originally present.
func (a *Array[K]) normalize() {
	a.keys = sortUnique(a.keys, a.compare, a.equivalent)
}

// sortUnique sorts keys stably and removes all but the first
// of each run of keys that eq reports as equivalent.
// Vacated slots are zeroed.
func sortUnique[K any](keys []K, compare func(K, K) int, eq func(K, K) bool) []K {
	slices.SortStableFunc(keys, compare)
	return slices.CompactFunc(keys, eq)
}
