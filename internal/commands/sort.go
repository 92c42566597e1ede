package commands

import (
	"github.com/spf13/cobra"

	"github.com/rogpeppe/sortedarray/internal/records"
	"github.com/rogpeppe/sortedarray/sortedarray"
)

func newSortCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sort [file...]",
		Short: "Print the unique records of all the files in order.",
		Long: `
Read records from each file (or stdin when no file, or "-", is given) and
print them in order with duplicates removed. Where records are duplicates,
the one read first is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			a := sortedarray.NewFunc(records.Less(o.cfg), 0)
			total := 0
			for _, name := range args {
				recs, err := o.readRecords(cmd, name)
				if err != nil {
					return err
				}
				total += len(recs)
				// The first file is bulk loaded; later ones
				// are merged into what is already there.
				a.InsertSlice(recs...)
			}
			o.logger.Info("sorted records", "read", total, "unique", a.Len())
			return records.Write(cmd.OutOrStdout(), o.cfg.Separator, a.Values())
		},
	}
}
