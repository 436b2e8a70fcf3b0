package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/willfong/employee-registry/internal/report"
)

// listCmd represents the list command (mode 3)
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"3"},
	Short:   "List all employees with their age",
	Args:    exactArgs(0),
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.service.ListEmployees(cmd.Context())
	if err != nil {
		return err
	}

	return report.Employees(cmd.OutOrStdout(), result.Employees, time.Now())
}
