package cmd

import (
	"github.com/spf13/cobra"
)

// schemaCmd represents the schema command (mode 1)
var schemaCmd = &cobra.Command{
	Use:     "schema",
	Aliases: []string{"1"},
	Short:   "Create the employees table",
	Long: `Create the employees table if it does not exist yet.

The (gender, full_name) index is not created here; the benchmark mode
creates it between its two searches.`,
	Args: exactArgs(0),
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.service.CreateSchema(cmd.Context()); err != nil {
		return err
	}

	u := newUI(cmd)
	u.Println(u.Success("Table created successfully"))
	return nil
}
