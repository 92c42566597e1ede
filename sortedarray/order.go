package sortedarray

import "cmp"

// By returns a less function that orders keys by the value
// proj returns for them. Keys with equal projections are
// equivalent, so an Array ordered this way holds at most one
// key per projected value.
func By[K any, P cmp.Ordered](proj func(K) P) func(a, b K) bool {
	return func(a, b K) bool {
		return cmp.Less(proj(a), proj(b))
	}
}

// Reverse returns a less function for the reverse of the order defined by less.
func Reverse[K any](less func(a, b K) bool) func(a, b K) bool {
	return func(a, b K) bool {
		return less(b, a)
	}
}
