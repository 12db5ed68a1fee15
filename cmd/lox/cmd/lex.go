package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-lox/internal/lexer"
)

var lexShowPos bool

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a source file and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show each token's line:offset")
}

func runLex(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return FileReadError(fmt.Errorf("reading %s: %w", filename, err))
	}

	tokens, lexErr := lexer.New(string(content)).ScanTokens()
	if lexErr != nil {
		fmt.Fprintln(os.Stderr, lexErr.Message)
		return PipelineError(fmt.Errorf("lexing failed"))
	}

	for _, tok := range tokens {
		typeName := strings.ToUpper(tok.Type.String())
		if lexShowPos {
			fmt.Printf("%-14s %-20q %s\n", typeName, tok.Lexeme, tok.Pos)
		} else {
			fmt.Printf("%-14s %q\n", typeName, tok.Lexeme)
		}
	}
	return nil
}
