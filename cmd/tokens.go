package cmd

import (
	"fmt"
	"os"

	"cxxdecl/pkg/parser"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the token stream of a header",
	Long: `Tokenize a C++ header and print one token per line with its position.
Preprocessor directives never appear in the stream. Useful for debugging
declarations the parser skips.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}

		tokens, err := parser.Tokenize(string(content))
		if err != nil {
			return fmt.Errorf("failed to tokenize %s: %w", filename, err)
		}

		codeOnly, _ := cmd.Flags().GetBool("code-only")
		if codeOnly {
			tokens = parser.FilterNoncode(tokens)
		}

		out := cmd.OutOrStdout()
		for _, token := range tokens {
			fmt.Fprintf(out, "%d:%d\t%s\t%q\n", token.Line, token.Column, token.Kind, token.Text)
		}
		return nil
	},
}

func init() {
	tokensCmd.Flags().BoolP("code-only", "c", false, "Drop whitespace and comment tokens")
}
