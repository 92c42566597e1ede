// Package commands implements the sortedarray command line.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/rogpeppe/sortedarray/internal/config"
	"github.com/rogpeppe/sortedarray/internal/records"
)

// options holds the state shared by all subcommands.
type options struct {
	configPath string
	logLevel   string

	// Overrides for the configuration file.
	separator string
	field     int
	reverse   bool
	foldCase  bool

	cfg    config.Config
	logger *slog.Logger
}

// Execute runs the command line with the process arguments
// and exits with a non-zero status on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd returns the root command with all
// subcommands attached.
func NewRootCmd() *cobra.Command {
	o := &options{}
	rootCmd := &cobra.Command{
		Use:   "sortedarray",
		Short: "Sort, deduplicate, merge and query line-based records.",
		Long: `
Sort, deduplicate, merge and query line-based records using a sorted
array. Each input line is split into fields; records are ordered either
by all their fields or by a single selected field, in which case records
that agree on that field are duplicates and only the first one read is
kept.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "configuration file (.yaml, .yml or .toml)")
	flags.StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&o.separator, "separator", "\t", "field separator")
	flags.IntVar(&o.field, "field", -1, "zero-based field to order by; -1 orders by the whole record")
	flags.BoolVar(&o.reverse, "reverse", false, "order records in descending order")
	flags.BoolVar(&o.foldCase, "fold-case", false, "compare fields case-insensitively")

	rootCmd.AddCommand(
		newSortCmd(o),
		newMergeCmd(o),
		newFindCmd(o),
		newBenchCmd(o),
	)
	return rootCmd
}

// setup loads the configuration, applies any flags that
// were explicitly set and installs the logger.
func (o *options) setup(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", o.logLevel)
	}
	o.logger = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:   level,
		NoColor: os.Getenv("NO_COLOR") != "",
	}))

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("separator") {
		cfg.Separator = o.separator
	}
	if flags.Changed("field") {
		cfg.Field = o.field
	}
	if flags.Changed("reverse") {
		cfg.Reverse = o.reverse
	}
	if flags.Changed("fold-case") {
		cfg.FoldCase = o.foldCase
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg
	o.logger.Debug("loaded configuration", "config", o.configPath, "separator", cfg.Separator, "field", cfg.Field, "reverse", cfg.Reverse, "fold-case", cfg.FoldCase)
	return nil
}

// readRecords reads the records in the named file,
// or from stdin if the name is "-".
func (o *options) readRecords(cmd *cobra.Command, name string) ([]records.Record, error) {
	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	recs, err := records.Read(r, o.cfg.Separator)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	o.logger.Debug("read records", "file", name, "count", len(recs))
	return recs, nil
}
