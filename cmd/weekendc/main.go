// Command weekendc is the command-line entry point for the compiler.
package main

import (
	"fmt"
	"os"

	"github.com/mleone/weekendc/cmd/weekendc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
