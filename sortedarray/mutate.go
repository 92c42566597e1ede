package sortedarray

import (
	"iter"
	"slices"

	"github.com/rogpeppe/sortedarray/merge"
)

// Insert adds k to the array unless an equivalent key is
// already present, in which case the array is unchanged.
// It returns the position of the key equivalent to k
// and reports whether k was added.
// The complexity is O(n) where n = a.Len().
func (a *Array[K]) Insert(k K) (int, bool) {
	i := a.LowerBound(k)
	if i < len(a.keys) && a.equivalent(a.keys[i], k) {
		// Got it already.
		return i, false
	}
	a.keys = slices.Insert(a.keys, i, k)
	return i, true
}

// InsertHint is like Insert except that hint suggests
// the position at which k belongs. When the hint is correct,
// the key is inserted without searching, so inserting keys in
// ascending order with hint a.Len() costs amortized O(1) each.
// A wrong or out-of-range hint is ignored.
//
// It returns the position of the key equivalent to k.
func (a *Array[K]) InsertHint(hint int, k K) int {
	if a.goodHint(hint, k) {
		a.keys = slices.Insert(a.keys, hint, k)
		return hint
	}
	i, _ := a.Insert(k)
	return i
}

// Emplace calls newKey once and inserts the result as for Insert.
func (a *Array[K]) Emplace(newKey func() K) (int, bool) {
	return a.Insert(newKey())
}

// EmplaceHint calls newKey once and inserts the result as for InsertHint.
func (a *Array[K]) EmplaceHint(hint int, newKey func() K) int {
	return a.InsertHint(hint, newKey())
}

// InsertSlice adds all the given keys to the array.
// The result is the same as calling Insert on each key in turn:
// keys already present are kept, and of several equivalent new
// keys the first is kept. The keys slice is not retained.
//
// The complexity is O(n + k log k) for k keys.
func (a *Array[K]) InsertSlice(keys ...K) {
	switch {
	case len(keys) == 0:
	case len(a.keys) == 0:
		a.keys = append(a.keys, keys...)
		a.normalize()
	case len(keys) == 1:
		a.Insert(keys[0])
	default:
		a.mergeBatch(slices.Clone(keys))
	}
}

// InsertSeq adds all the values produced by seq to the array,
// with the same semantics as InsertSlice.
func (a *Array[K]) InsertSeq(seq iter.Seq[K]) {
	if len(a.keys) == 0 {
		a.keys = slices.AppendSeq(a.keys, seq)
		a.normalize()
		return
	}
	a.mergeBatch(slices.Collect(seq))
}

// mergeBatch merges batch, which it may reorder, into a non-empty array.
// Existing keys win over equivalent keys in batch.
func (a *Array[K]) mergeBatch(batch []K) {
	batch = sortUnique(batch, a.compare, a.equivalent)
	if len(batch) == 0 {
		return
	}
	a.keys = merge.Unique(make([]K, 0, len(a.keys)+len(batch)), a.keys, batch, a.less)
}

// Union returns a new array holding the keys of both a and b,
// ordered by a.Less. Where a and b hold equivalent keys,
// the key from a is used. The arrays must be ordered compatibly.
func (a *Array[K]) Union(b *Array[K]) *Array[K] {
	return &Array[K]{
		keys: merge.Unique(make([]K, 0, len(a.keys)+len(b.keys)), a.keys, b.keys, a.less),
		less: a.less,
	}
}

// Delete removes the key at position i.
// It panics if i is out of range.
func (a *Array[K]) Delete(i int) {
	a.DeleteRange(i, i+1)
}

// DeleteRange removes the keys at positions [i, j).
// It panics if the range is not valid.
func (a *Array[K]) DeleteRange(i, j int) {
	a.keys = slices.Delete(a.keys, i, j)
}

// Remove removes the key equivalent to k, if any,
// and returns the number of keys removed: 0 or 1.
func (a *Array[K]) Remove(k K) int {
	i, ok := a.Find(k)
	if !ok {
		return 0
	}
	a.Delete(i)
	return 1
}

// Clear removes all keys from the array, retaining its capacity.
func (a *Array[K]) Clear() {
	clear(a.keys)
	a.keys = a.keys[:0]
}

// Swap exchanges the contents and ordering of a and b.
func (a *Array[K]) Swap(b *Array[K]) {
	a.keys, b.keys = b.keys, a.keys
	a.less, b.less = b.less, a.less
}

// goodHint reports whether k may be inserted at position
// hint without breaking the array invariants.
func (a *Array[K]) goodHint(hint int, k K) bool {
	if hint < 0 || hint > len(a.keys) {
		return false
	}
	if hint > 0 && !a.greater(k, a.keys[hint-1]) {
		return false
	}
	if hint < len(a.keys) && !a.less(k, a.keys[hint]) {
		return false
	}
	return true
}
