package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-lox/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return FileReadError(fmt.Errorf("reading %s: %w", filename, err))
	}

	p, lexErr := parser.New(string(content), filename)
	if lexErr != nil {
		return reportAndFail(lexErr)
	}

	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return reportAndFail(errs...)
	}

	for _, stmt := range program.Statements {
		fmt.Println(stmt.String())
	}
	return nil
}
