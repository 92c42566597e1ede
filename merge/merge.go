// Package merge implements linear merging of sorted sequences
// that hold no two equivalent elements.
//
// Elements are ordered by a less function that must be a strict
// weak order; two elements are equivalent when neither is less
// than the other. When both inputs hold equivalent elements, the
// merged result holds only the one from the first input.
package merge

import (
	"fmt"
	"iter"
)

// Unique appends to dst the elements of s0 and s1 in order
// and returns the extended slice. Both s0 and s1 must be sorted
// by less with no equivalent elements; of two equivalent elements
// the one from s0 is kept.
//
// dst must not overlap s0 or s1.
func Unique[T any](dst, s0, s1 []T, less func(x, y T) bool) []T {
	i, j := 0, 0
	for i < len(s0) && j < len(s1) {
		switch x0, x1 := s0[i], s1[j]; {
		case less(x0, x1):
			dst = append(dst, x0)
			i++
		case less(x1, x0):
			dst = append(dst, x1)
			j++
		default:
			dst = append(dst, x0)
			i++
			j++
		}
	}
	dst = append(dst, s0[i:]...)
	return append(dst, s1[j:]...)
}

// Seq returns an iterator over the merged values of it0 and it1,
// with the same semantics as Unique. The returned iterator panics
// if either input is out of order or holds equivalent neighbours.
func Seq[T any](it0, it1 iter.Seq[T], less func(x, y T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		next0, stop0 := iter.Pull(checked(it0, less))
		defer stop0()
		next1, stop1 := iter.Pull(checked(it1, less))
		defer stop1()
		x0, has0 := next0()
		x1, has1 := next1()
		for has0 && has1 {
			switch {
			case less(x0, x1):
				if !yield(x0) {
					return
				}
				x0, has0 = next0()
			case less(x1, x0):
				if !yield(x1) {
					return
				}
				x1, has1 = next1()
			default:
				if !yield(x0) {
					return
				}
				x0, has0 = next0()
				x1, has1 = next1()
			}
		}
		for ; has0; x0, has0 = next0() {
			if !yield(x0) {
				return
			}
		}
		for ; has1; x1, has1 = next1() {
			if !yield(x1) {
				return
			}
		}
	}
}

// SeqMulti is like Seq but merges any number of sequences.
// Where several inputs hold equivalent values, the value from
// the earliest input is used.
func SeqMulti[T any](less func(x, y T) bool, its ...iter.Seq[T]) iter.Seq[T] {
	if len(its) == 0 {
		return func(yield func(T) bool) {}
	}
	r := its[0]
	for _, it := range its[1:] {
		r = Seq(r, it, less)
	}
	return r
}

// checked returns it, but panics if a value is
// not strictly greater than the one before.
func checked[T any](it iter.Seq[T], less func(x, y T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		var prev T
		first := true
		for x := range it {
			if !first && !less(prev, x) {
				panic(fmt.Errorf("out of order item in sequence (%v >= %v)", prev, x))
			}
			prev, first = x, false
			if !yield(x) {
				return
			}
		}
	}
}
