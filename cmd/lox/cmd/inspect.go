package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-lox/internal/inspect"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
)

var inspectQuery string

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Dump tokens and AST as JSON, for tooling",
	Long: `Scan and parse a source file, then print its tokens and top-level
statements as a single JSON document.

Use --query with a gjson path expression to extract one value instead of
printing the whole document, e.g.:

  lox inspect --query "tokens.0.type" script.lox`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectQuery, "query", "", "gjson path to extract from the JSON document instead of printing it whole")
}

func runInspect(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return FileReadError(fmt.Errorf("reading %s: %w", filename, err))
	}
	source := string(content)

	tokens, lexErr := lexer.New(source).ScanTokens()
	if lexErr != nil {
		fmt.Fprintln(os.Stderr, lexErr.Message)
		return PipelineError(fmt.Errorf("lexing failed"))
	}
	tokensJSON, err := inspect.Tokens(tokens)
	if err != nil {
		return PipelineError(err)
	}

	p, lexParseErr := parser.New(source, filename)
	if lexParseErr != nil {
		return reportAndFail(lexParseErr)
	}
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return reportAndFail(errs...)
	}
	astJSON, err := inspect.AST(program)
	if err != nil {
		return PipelineError(err)
	}

	doc := `{"tokens":` + tokensJSON + `,"ast":` + astJSON + `}`

	if inspectQuery != "" {
		fmt.Println(inspect.Query(doc, inspectQuery))
		return nil
	}
	fmt.Println(doc)
	return nil
}
