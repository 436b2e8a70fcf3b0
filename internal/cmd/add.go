package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// addCmd represents the add command (mode 2)
var addCmd = &cobra.Command{
	Use:     "add <full_name> <birth_date> <gender>",
	Aliases: []string{"2"},
	Short:   "Add one employee",
	Long: `Validate and store one employee.

The name is normalized to capitalized words, the birth date may use
YYYY-MM-DD, DD.MM.YYYY, DD/MM/YYYY or YYYY/MM/DD and is stored as
YYYY-MM-DD, and the gender is male or female in any case.`,
	Example: `  empreg add "john doe" 1990-01-15 male
  empreg 2 "Jane Roe" 24.07.1952 FEMALE`,
	Args: exactArgs(3),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	emp, err := a.service.AddEmployee(cmd.Context(), args[0], args[1], args[2])
	if err != nil {
		return err
	}

	u := newUI(cmd)
	u.Println(u.Success(fmt.Sprintf("Employee %s added successfully", emp.FullName)))
	return nil
}
