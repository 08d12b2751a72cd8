package cmd

import (
	"fmt"

	"github.com/mleone/weekendc/internal/driver"
	"github.com/mleone/weekendc/internal/printer"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file and pretty-print the resulting AST",
	Long: `Parse file and print it back out as source text, without running
the semantic analyzer or codegen. Useful for inspecting how the parser
grouped operators and the ternary operator.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			return err
		}
		prog, err := driver.Parse(source, args[0])
		if err != nil {
			printCompilerError(err)
			return fmt.Errorf("parsing failed")
		}
		fmt.Print(printer.Program(prog))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
