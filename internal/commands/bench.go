package commands

import (
	"fmt"
	"math/rand"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rogpeppe/sortedarray/sortedarray"
)

// benchMethod builds a sorted array from keys in one particular way.
type benchMethod struct {
	name  string
	build func(keys []int) *sortedarray.Array[int]
}

var benchMethods = []benchMethod{{
	name: "bulk",
	build: func(keys []int) *sortedarray.Array[int] {
		return sortedarray.Of(keys...)
	},
}, {
	name: "insert",
	build: func(keys []int) *sortedarray.Array[int] {
		a := sortedarray.New[int](0)
		for _, k := range keys {
			a.Insert(k)
		}
		return a
	},
}, {
	name: "hint-ascending",
	build: func(keys []int) *sortedarray.Array[int] {
		keys = slices.Sorted(slices.Values(keys))
		a := sortedarray.New[int](len(keys))
		for _, k := range keys {
			a.InsertHint(a.Len(), k)
		}
		return a
	},
}, {
	name: "merge-half",
	build: func(keys []int) *sortedarray.Array[int] {
		half := len(keys) / 2
		a := sortedarray.Of(keys[:half]...)
		a.InsertSlice(keys[half:]...)
		return a
	},
}}

func newBenchCmd(o *options) *cobra.Command {
	var (
		n    int
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the ways of building a sorted array.",
		Long: `
Build a sorted array from the same random integer keys by bulk loading,
by inserting one key at a time, by inserting sorted keys with an end
hint, and by merging half the keys into an array holding the other half.
Check that all methods agree and print how long each took.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 0 {
				return fmt.Errorf("invalid key count %d", n)
			}
			r := rand.New(rand.NewSource(seed))
			keys := make([]int, n)
			for i := range keys {
				keys[i] = r.Intn(4*n + 1)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(tw, "METHOD\tLEN\tDURATION")
			var want []int
			for i, m := range benchMethods {
				t0 := time.Now()
				a := m.build(slices.Clone(keys))
				d := time.Since(t0)
				if !a.Validate() {
					return fmt.Errorf("%s: result is not sorted and unique", m.name)
				}
				if i == 0 {
					want = a.Slice()
				} else if !slices.Equal(a.Slice(), want) {
					return fmt.Errorf("%s: result differs from %s", m.name, benchMethods[0].name)
				}
				o.logger.Info("built array", "method", m.name, "keys", n, "unique", a.Len(), "duration", d)
				fmt.Fprintf(tw, "%s\t%d\t%v\n", m.name, a.Len(), d)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&n, "n", 100000, "number of keys")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}
