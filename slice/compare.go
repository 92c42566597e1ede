// Package slice provides orderings over slice-typed values,
// for use as keys in sorted containers.
package slice

import "cmp"

// Less reports whether s1 orders before s2 lexicographically.
// A proper prefix orders before any longer slice.
func Less[T cmp.Ordered](s1, s2 []T) bool {
	return LessFunc(cmp.Less[T])(s1, s2)
}

// LessFunc returns a lexicographic less function over slices
// whose elements are ordered by less. The result is a strict weak
// order whenever less is; two slices are equivalent when they have
// the same length and their elements are pairwise equivalent.
func LessFunc[T any](less func(x, y T) bool) func(s1, s2 []T) bool {
	return func(s1, s2 []T) bool {
		for i := 0; i < len(s1) && i < len(s2); i++ {
			switch {
			case less(s1[i], s2[i]):
				return true
			case less(s2[i], s1[i]):
				return false
			}
		}
		return len(s1) < len(s2)
	}
}
