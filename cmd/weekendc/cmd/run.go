package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mleone/weekendc/internal/driver"
	"github.com/mleone/weekendc/internal/errors"
	"github.com/mleone/weekendc/internal/token"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file> <arg>",
	Short: "Compile and JIT-run a program",
	Long: `Compile file, JIT-compile it, and call its main(int) -> int entry
point with arg, printing the result.

Example:
  weekendc run factorial.wc 5`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return runFile(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(file, argStr string) error {
	arg, err := strconv.ParseInt(argStr, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid integer argument %q: %w", argStr, err)
	}

	source, err := readSource(file)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "compiling %s\n", file)
	}

	dump := driver.DumpOptionsFromEnv(file)
	result, err := driver.Run(source, file, int32(arg), dump)
	if err != nil {
		printCompilerError(err)
		return fmt.Errorf("compilation failed")
	}

	fmt.Println(result)
	return nil
}

func readSource(file string) (string, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return "", errors.New(errors.IOError, token.Position{},
			fmt.Sprintf("Unable to open input file: %s", file), "", file)
	}
	return string(content), nil
}

// printCompilerError prints err with source context and a caret when it is
// a *errors.CompilerError, or plainly otherwise.
func printCompilerError(err error) {
	type formatter interface{ Format(color bool) string }
	if f, ok := err.(formatter); ok {
		fmt.Fprintln(os.Stderr, f.Format(true))
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
