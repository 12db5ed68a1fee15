// Package cmd implements the lox command-line tool: run, lex, parse,
// inspect, and version subcommands wired onto a cobra root command.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lox",
	Short: "A tree-walking interpreter for a small class-based scripting language",
	Long: `lox is a tree-walking interpreter: scanner, recursive-descent parser,
static scope resolver, and evaluator over a Lox-like dynamically-typed,
class-based language.

Run a script:
  lox run script.lox

Debug the pipeline:
  lox lex script.lox
  lox parse script.lox
  lox inspect script.lox`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command and returns its error, if any. main.go
// maps the error to an exit code; this package never calls os.Exit
// itself.
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
