package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/willfong/employee-registry/internal/report"
)

// searchCmd represents the search command (mode 5)
var searchCmd = &cobra.Command{
	Use:     "search",
	Aliases: []string{"5"},
	Short:   "Search Male employees whose name starts with F",
	Long: `Run the benchmark query: distinct Male employees whose full name
starts with F, ordered by name. Prints the rows, the row count and the
time spent executing the query and fetching every row.`,
	Args: exactArgs(0),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.service.SearchEmployees(cmd.Context())
	if err != nil {
		return err
	}

	return report.SearchResults(cmd.OutOrStdout(), result.Employees, result.Elapsed, time.Now())
}
