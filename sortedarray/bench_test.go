package sortedarray_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/rogpeppe/sortedarray/sortedarray"
)

const benchSize = 10000

func benchKeys() []int {
	return randomKeys(rand.New(rand.NewSource(1)), benchSize, benchSize*4)
}

func BenchmarkBulkLoad(b *testing.B) {
	keys := benchKeys()
	for b.Loop() {
		sortedarray.Of(keys...)
	}
}

func BenchmarkInsertOneByOne(b *testing.B) {
	keys := benchKeys()
	for b.Loop() {
		a := sortedarray.New[int](0)
		for _, k := range keys {
			a.Insert(k)
		}
	}
}

func BenchmarkInsertHintAscending(b *testing.B) {
	keys := slices.Sorted(slices.Values(benchKeys()))
	for b.Loop() {
		a := sortedarray.New[int](0)
		for _, k := range keys {
			a.InsertHint(a.Len(), k)
		}
	}
}

func BenchmarkInsertSliceNonEmpty(b *testing.B) {
	keys := benchKeys()
	half := len(keys) / 2
	for b.Loop() {
		a := sortedarray.Of(keys[:half]...)
		a.InsertSlice(keys[half:]...)
	}
}

func BenchmarkFind(b *testing.B) {
	keys := benchKeys()
	a := sortedarray.Of(keys...)
	i := 0
	for b.Loop() {
		a.Find(keys[i%len(keys)])
		i++
	}
}
