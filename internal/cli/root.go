package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thinktide/statspan/internal/format"
	"github.com/thinktide/statspan/internal/input"
	"github.com/thinktide/statspan/internal/stats"
)

var Version = "dev"

type options struct {
	file       string
	confidence float64
	outformat  string
	digits     int
	numbers    []float64
	fromStats  []float64
	table      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "statspan",
		Short: "Confidence intervals for the mean of numeric samples",
		Long: `Statspan reads numeric samples, computes descriptive statistics and a
Student's-t confidence interval for the population mean, and prints one
line shaped by an output template.

Samples come from standard input by default, one or more per line,
separated by spaces, commas or semicolons.

Template tokens (escape a literal percent sign as %%):
  %M mean        %N sample size  %S stdev        %E margin of error
  %L lower bound %U upper bound  %C confidence   %c confidence in percent
  %s sum         %i minimum      %a maximum      %1..%5 predefined formats

Examples:
  seq 1 5 | statspan
  statspan --numbers 1,2,3,4,5 --confidence 0.99
  statspan --file samples.txt --outformat "[%L, %U] at %c%% confidence"
  statspan --from-stats 10,2,5 --outformat "%L, %U"
  statspan --numbers 1,2,3,4,5 --table`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", `read samples from the named file ("-" for stdin)`)
	cmd.Flags().Float64Var(&opts.confidence, "confidence", 0.95, "confidence level, in [0,1]")
	cmd.Flags().StringVar(&opts.outformat, "outformat", format.Default, "output template")
	cmd.Flags().IntVar(&opts.digits, "digits", 3, "fractional digits to round to; negative keeps full precision")
	cmd.Flags().Float64SliceVar(&opts.numbers, "numbers", nil, "samples given inline, comma separated or repeated")
	cmd.Flags().Float64SliceVar(&opts.fromStats, "from-stats", nil, "pre-computed mean,stdev,size instead of raw samples")
	cmd.Flags().BoolVar(&opts.table, "table", false, "print the full statistics record as a table")
	cmd.MarkFlagsMutuallyExclusive("file", "numbers", "from-stats")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts *options) error {
	// Argument validation happens before any input is read.
	if opts.confidence < 0 || opts.confidence > 1 {
		return fmt.Errorf("confidence must lie in [0, 1], got %v", opts.confidence)
	}

	rec, err := buildRecord(cmd, opts)
	if err != nil {
		return err
	}

	fields := format.Stringify(rec, opts.digits)
	if opts.table {
		printTable(cmd.OutOrStdout(), fields)
		return nil
	}

	out, err := format.Render(fields, opts.outformat)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func buildRecord(cmd *cobra.Command, opts *options) (stats.Record, error) {
	switch {
	case cmd.Flags().Changed("from-stats"):
		if len(opts.fromStats) != 3 {
			return stats.Record{}, fmt.Errorf("--from-stats takes exactly mean,stdev,size, got %d values", len(opts.fromStats))
		}
		mean, stdev, size := opts.fromStats[0], opts.fromStats[1], int(opts.fromStats[2])
		return stats.FromAggregate(mean, stdev, size, opts.confidence), nil

	case cmd.Flags().Changed("numbers"):
		return stats.FromSamples(opts.numbers, opts.confidence), nil

	case opts.file != "" && opts.file != "-":
		xs, err := input.ReadSamplesFile(opts.file)
		if err != nil {
			return stats.Record{}, err
		}
		return stats.FromSamples(xs, opts.confidence), nil

	default:
		xs, err := input.ReadSamples(cmd.InOrStdin())
		if err != nil {
			return stats.Record{}, err
		}
		return stats.FromSamples(xs, opts.confidence), nil
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "statspan %s\n", Version)
		},
	}
}
