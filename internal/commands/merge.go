package commands

import (
	"iter"

	"github.com/spf13/cobra"

	"github.com/rogpeppe/sortedarray/internal/records"
	"github.com/rogpeppe/sortedarray/merge"
	"github.com/rogpeppe/sortedarray/sortedarray"
)

func newMergeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "merge file...",
		Short: "Merge the records of several files into one ordered stream.",
		Long: `
Load each file into its own sorted array, then stream the merged
contents of all of them. Where files hold duplicate records, the record
from the earliest file on the command line is printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			less := records.Less(o.cfg)
			seqs := make([]iter.Seq[records.Record], 0, len(args))
			for _, name := range args {
				recs, err := o.readRecords(cmd, name)
				if err != nil {
					return err
				}
				a := sortedarray.OfFunc(less, recs...)
				o.logger.Debug("loaded file", "file", name, "unique", a.Len())
				seqs = append(seqs, a.Values())
			}
			return records.Write(cmd.OutOrStdout(), o.cfg.Separator, merge.SeqMulti(less, seqs...))
		},
	}
}
