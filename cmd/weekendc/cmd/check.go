package cmd

import (
	"fmt"

	"github.com/mleone/weekendc/internal/driver"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse and typecheck a file without running it",
	Long: `Parse and typecheck file, printing OK on success or the first
error on failure. Checking stops at the first error; no recovery is
attempted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			return err
		}
		if _, err := driver.Check(source, args[0]); err != nil {
			printCompilerError(err)
			return fmt.Errorf("type checking failed")
		}
		fmt.Println("OK")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
