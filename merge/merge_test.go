package merge

import (
	"cmp"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestUnique(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(
		Unique(nil, []int{1, 2, 5, 7, 43, 87}, []int{1, 3, 6, 7, 9}, cmp.Less[int]),
		[]int{1, 2, 3, 5, 6, 7, 9, 43, 87},
	))
	qt.Assert(t, qt.DeepEquals(
		Unique([]int{-1}, nil, []int{4, 5}, cmp.Less[int]),
		[]int{-1, 4, 5},
	))
	qt.Assert(t, qt.HasLen(Unique[int](nil, nil, nil, cmp.Less[int]), 0))
}

type entry struct {
	Key  string
	From int
}

func byKey(x, y entry) bool {
	return x.Key < y.Key
}

func TestUniqueFirstWins(t *testing.T) {
	s0 := []entry{{"a", 0}, {"c", 0}}
	s1 := []entry{{"a", 1}, {"b", 1}, {"c", 1}, {"d", 1}}
	qt.Assert(t, qt.DeepEquals(Unique(nil, s0, s1, byKey), []entry{
		{"a", 0}, {"b", 1}, {"c", 0}, {"d", 1},
	}))
}

func TestSeq(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(
		slices.Collect(Seq(slices.Values([]int{1, 2, 5, 7, 43, 87}), slices.Values([]int{1, 3, 6, 7, 9}), cmp.Less[int])),
		[]int{1, 2, 3, 5, 6, 7, 9, 43, 87},
	))

	qt.Assert(t, qt.DeepEquals(
		slices.Collect(SeqMulti(cmp.Less[int],
			slices.Values([]int{4, 6, 7}),
			slices.Values([]int{}),
			slices.Values([]int{2, 6, 77, 87}),
			slices.Values([]int{1, 65, 99}),
		)),
		[]int{1, 2, 4, 6, 7, 65, 77, 87, 99},
	))
	qt.Assert(t, qt.HasLen(slices.Collect(SeqMulti[int](cmp.Less[int])), 0))
}

func TestSeqMultiEarliestWins(t *testing.T) {
	got := slices.Collect(SeqMulti(byKey,
		slices.Values([]entry{{"b", 0}}),
		slices.Values([]entry{{"a", 1}, {"b", 1}}),
		slices.Values([]entry{{"a", 2}, {"c", 2}}),
	))
	qt.Assert(t, qt.DeepEquals(got, []entry{{"a", 1}, {"b", 0}, {"c", 2}}))
}

func TestSeqAgreesWithUnique(t *testing.T) {
	s0 := strings.Fields("apple banana cherry kiwi")
	s1 := strings.Fields("banana date fig kiwi lime")
	qt.Assert(t, qt.DeepEquals(
		slices.Collect(Seq(slices.Values(s0), slices.Values(s1), cmp.Less[string])),
		Unique(nil, s0, s1, cmp.Less[string]),
	))
}

func TestSeqStopsEarly(t *testing.T) {
	var got []int
	for x := range Seq(slices.Values([]int{1, 3, 5}), slices.Values([]int{2, 4}), cmp.Less[int]) {
		if x > 3 {
			break
		}
		got = append(got, x)
	}
	qt.Assert(t, qt.DeepEquals(got, []int{1, 2, 3}))
}

func TestSeqOutOfOrder(t *testing.T) {
	for _, bad := range [][]int{{3, 2}, {2, 2}} {
		qt.Assert(t, qt.PanicMatches(func() {
			for range Seq(slices.Values(bad), slices.Values([]int{10}), cmp.Less[int]) {
			}
		}, `out of order item in sequence .*`))
	}
}

func BenchmarkSeq(b *testing.B) {
	it := Seq(countIter(0), countIter(5), cmp.Less[int64])
	prev := int64(-1)
	i := 0
	for x := range it {
		if i >= b.N {
			break
		}
		if x <= prev {
			b.Fatalf("unordered")
		}
		prev = x
		i++
	}
}

func BenchmarkUnique(b *testing.B) {
	s0 := slices.Collect(limit(countIter(0), 1000))
	s1 := slices.Collect(limit(countIter(5), 1000))
	dst := make([]int64, 0, len(s0)+len(s1))
	for b.Loop() {
		dst = Unique(dst[:0], s0, s1, cmp.Less[int64])
	}
}

func countIter(start int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		x := start
		for {
			x += 10
			if !yield(x) {
				return
			}
		}
	}
}

func limit[T any](it iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for x := range it {
			if !yield(x) {
				return
			}
			if i++; i >= n {
				return
			}
		}
	}
}
