package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "weekendc <file> <arg>",
	Short: "A JIT compiler for a tiny statically typed language",
	Long: `weekendc compiles a small bool/int imperative language to native
code via LLVM and runs it in-process.

Running weekendc with a file and an integer argument is shorthand for
"weekendc run <file> <arg>": the file is compiled, JIT-compiled, and its
main function is called with <arg>.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) != 2 {
			return c.Help()
		}
		return runFile(args[0], args[1])
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
