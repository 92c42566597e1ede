package sortedarray

import "sort"

// LowerBound returns the position of the first key
// that is not less than k, or Len() if there is none.
func (a *Array[K]) LowerBound(k K) int {
	return sort.Search(len(a.keys), func(i int) bool {
		return !a.less(a.keys[i], k)
	})
}

// UpperBound returns the position of the first key
// that is greater than k, or Len() if there is none.
func (a *Array[K]) UpperBound(k K) int {
	return sort.Search(len(a.keys), func(i int) bool {
		return a.less(k, a.keys[i])
	})
}

// EqualRange returns the range of positions [lo, hi)
// holding keys equivalent to k. As keys are unique,
// hi-lo is either 0 or 1.
func (a *Array[K]) EqualRange(k K) (lo, hi int) {
	lo = a.LowerBound(k)
	if lo < len(a.keys) && !a.less(k, a.keys[lo]) {
		return lo, lo + 1
	}
	return lo, lo
}

// Find returns the position of the key equivalent to k
// and reports whether there is one. If there is not,
// it returns Len(), false.
func (a *Array[K]) Find(k K) (int, bool) {
	i := a.LowerBound(k)
	if i < len(a.keys) && !a.less(k, a.keys[i]) {
		return i, true
	}
	return len(a.keys), false
}

// Get returns the stored key equivalent to k and reports
// whether there is one. The stored key may differ from k
// in anything the ordering does not look at.
func (a *Array[K]) Get(k K) (K, bool) {
	if i, ok := a.Find(k); ok {
		return a.keys[i], true
	}
	return *new(K), false
}

// Contains reports whether the array holds a key equivalent to k.
func (a *Array[K]) Contains(k K) bool {
	_, ok := a.Find(k)
	return ok
}

// Count returns the number of keys equivalent to k: 0 or 1.
func (a *Array[K]) Count(k K) int {
	lo, hi := a.EqualRange(k)
	return hi - lo
}
