package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rogpeppe/sortedarray/internal/records"
	"github.com/rogpeppe/sortedarray/sortedarray"
)

func newFindCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "find file key...",
		Short: "Look up keys in the sorted records of a file.",
		Long: `
Load the records in file into a sorted array and, for each key, print a
line holding the key, whether an equivalent record is present, and the
lower and upper bound positions of the key, separated by tabs.

When records are ordered by a single field, each key is a value of that
field. Otherwise keys are whole records, split into fields with the
configured separator.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := o.readRecords(cmd, args[0])
			if err != nil {
				return err
			}
			a := sortedarray.OfFunc(records.Less(o.cfg), recs...)
			out := cmd.OutOrStdout()
			for _, arg := range args[1:] {
				key := records.Key(o.cfg, arg)
				fmt.Fprintf(out, "%s\t%v\t%d\t%d\n", arg, a.Contains(key), a.LowerBound(key), a.UpperBound(key))
			}
			return nil
		},
	}
}
