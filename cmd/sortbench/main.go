// sortbench times insertion sort, merge sort, and quicksort over several
// array sizes and orderings and writes the results as CSV.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/feather-lang/sortbench/harness"
	"github.com/feather-lang/sortbench/report"
)

func main() {
	// Interrupts stop the run after the trial in progress.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfg harness.Config

	cmd := &cobra.Command{
		Use:   "sortbench",
		Short: "Benchmark insertion sort, merge sort, and quicksort",
		Long: `sortbench sorts arrays of 1000, 5000, 10000, 20000, and 50000 integers in
ascending, descending, and random order with each algorithm, and writes one
CSV row per trial to resultados.csv.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cfg.Output = cmd.OutOrStdout()
			cfg.ErrOutput = cmd.ErrOrStderr()
			os.Exit(harness.RunContext(cmd.Context(), cfg))
		},
	}

	cmd.Flags().StringVarP(&cfg.OutputPath, "output", "o", harness.DefaultOutputPath, "path of the results file")
	cmd.Flags().StringVar(&cfg.PlanPath, "plan", "", "YAML file overriding sizes, orderings, or algorithms")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", 0, "random seed (0 seeds from the current time)")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "report every trial")

	cmd.AddCommand(newReportCommand())
	return cmd
}

func newReportCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "report [results.csv]",
		Short: "Draw charts from a results file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := harness.DefaultOutputPath
			if len(args) > 0 {
				path = args[0]
			}
			return report.Generate(report.Config{
				CSVPath: path,
				Dir:     dir,
				Output:  cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVar(&dir, "dir", report.DefaultDir, "directory for charts and index.html")
	return cmd
}
