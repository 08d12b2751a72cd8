package cmd

import (
	"fmt"

	"github.com/mleone/weekendc/internal/driver"
	"github.com/mleone/weekendc/internal/token"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a file and print the resulting tokens",
	Long: `Tokenize (lex) a program and print the resulting tokens, one per
line. Useful for debugging the lexer in isolation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			return err
		}
		for _, tok := range driver.Lex(source) {
			printToken(tok)
			if tok.Type == token.EOF {
				break
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
}

func printToken(tok token.Token) {
	output := fmt.Sprintf("%-12s", tok.Type)
	if tok.Literal != "" {
		output += fmt.Sprintf(" %q", tok.Literal)
	}
	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(output)
}
