package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/willfong/employee-registry/internal/ui"
)

var (
	verbose bool
	noColor bool
	envFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "empreg <mode> [arguments]",
	Short: "Employee registry backed by a relational table",
	Long: `A command-line employee registry with a search benchmark.

Modes (the number or the command name can be used):
  1  schema      Create tables
  2  add         Add employee: empreg 2 "<full_name>" <birth_date> <gender>
  3  list        List all employees
  4  generate    Generate test data
  5  search      Search employees
  6  benchmark   Optimize and compare performance

Notes:
  - Full name should contain at least first and last name
  - Gender should be 'male' or 'female' (case insensitive)
  - Birth date must be between 1900 and current date
    Supported date formats: YYYY-MM-DD, DD.MM.YYYY, DD/MM/YYYY, YYYY/MM/DD

Connection settings come from DB_HOST, DB_PORT, DB_NAME, DB_USER and
DB_PASSWORD (environment or .env file). DB_DRIVER selects postgres
(default), mysql or sqlite3.`,
	Example: `  empreg 1
  empreg 2 "John Doe Smith" 1990-01-15 male
  empreg add "Jane Roe" 24.07.1952 FEMALE
  empreg 6`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return usageErrorf("invalid mode %q", args[0])
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return usageErrorf("missing mode")
	},
}

// Execute runs the CLI. Usage problems print the usage text; every other
// error prints a single line. Both go to stdout.
func Execute() error {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return nil
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, uerr.Error())
		fmt.Fprintln(out)
		if cmd == rootCmd {
			fmt.Fprintln(out, rootCmd.Long)
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, cmd.UsageString())
		return err
	}

	u := newUI(cmd)
	u.Println(u.Error(err.Error()))
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "mirror log records to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors and animations")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with DB_* settings (ignored when missing)")

	// We print our own messages and usage
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.SetOut(os.Stdout)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})
}

// usageError marks invalid modes, argument counts and flags
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// exactArgs is cobra.ExactArgs reporting a usage error
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageErrorf("%s accepts %d arg(s), received %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

// newUI builds the terminal UI on the command's output honoring --no-color
func newUI(cmd *cobra.Command) *ui.UI {
	u := ui.NewWriter(cmd.OutOrStdout())
	if noColor {
		u.SetNoColor(true)
	}
	return u
}
