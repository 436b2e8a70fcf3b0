package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/willfong/employee-registry/internal/registry"
	"github.com/willfong/employee-registry/internal/report"
)

// benchmarkCmd represents the benchmark command (mode 6)
var benchmarkCmd = &cobra.Command{
	Use:     "benchmark",
	Aliases: []string{"6"},
	Short:   "Compare search time before and after indexing",
	Long: `Run the search once, create the (gender, full_name) index, run the
search again and report both timings with the improvement percentage.

Run it against a freshly generated table: once the index exists both
searches use it.`,
	Args: exactArgs(0),
	RunE: runBenchmark,
}

func init() {
	rootCmd.AddCommand(benchmarkCmd)
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	u := newUI(cmd)

	u.Println(u.Section("Before optimization:"))
	before, err := a.service.SearchEmployees(ctx)
	if err != nil {
		return err
	}
	if err := report.SearchResults(out, before.Employees, before.Elapsed, time.Now()); err != nil {
		return err
	}

	spinner := u.NewSpinner("Creating index")
	spinner.Start()
	if err := a.service.CreateIndexes(ctx); err != nil {
		spinner.Error("failed")
		return err
	}
	spinner.Success("done")

	u.Println()
	u.Println(u.Section("After optimization:"))
	after, err := a.service.SearchEmployees(ctx)
	if err != nil {
		return err
	}
	if err := report.SearchResults(out, after.Employees, after.Elapsed, time.Now()); err != nil {
		return err
	}

	return report.Comparison(out, registry.Comparison{Before: before.Elapsed, After: after.Elapsed})
}
