package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/kr/pretty"
	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/cwbudde/go-lox/internal/config"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
)

var (
	dumpAST     bool
	trace       bool
	dumpGlobals bool
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a source file",
	Long: `Execute a program read from a single source file.

Examples:
  lox run script.lox
  lox run --dump-ast script.lox
  lox run --trace --dump-globals script.lox`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed program before running it")
	runCmd.Flags().BoolVar(&trace, "trace", false, "pretty-print each call's environment as it executes")
	runCmd.Flags().BoolVar(&dumpGlobals, "dump-globals", false, "print global bindings, naturally sorted, after the program finishes")
}

func runScript(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return FileReadError(fmt.Errorf("reading %s: %w", filename, err))
	}
	source := string(content)

	cfg, err := config.Load(filename)
	if err != nil {
		return FileReadError(fmt.Errorf("loading .loxrc.yaml: %w", err))
	}

	p, lexErr := parser.New(source, filename)
	if lexErr != nil {
		return reportAndFail(lexErr)
	}

	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return reportAndFail(errs...)
	}

	res := resolver.New(source, filename)
	locals := res.Resolve(program)
	if errs := res.Errors(); len(errs) > 0 {
		return reportAndFail(errs...)
	}

	if dumpAST {
		for _, stmt := range program.Statements {
			fmt.Println(stmt.String())
		}
	}

	ev := interp.New(locals, os.Stdout, source, filename)
	if cfg.MaxCallDepth > 0 {
		ev.MaxCallDepth = cfg.MaxCallDepth
	}
	if cfg.Builtins.ClockEpoch != nil {
		ev.ClockEpoch = cfg.Builtins.ClockEpoch
	}
	if trace || cfg.TraceCalls {
		ev.Trace = traceToStderr
	}

	if runtimeErr := ev.Run(program); runtimeErr != nil {
		return reportAndFail(runtimeErr)
	}

	if dumpGlobals {
		printGlobals(ev)
	}

	return nil
}

func reportAndFail(errs ...*errors.SourceError) error {
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e.Format(true))
	}
	return PipelineError(fmt.Errorf("%d error(s)", len(errs)))
}

func traceToStderr(name string, env *interp.Environment) {
	fmt.Fprintf(os.Stderr, "[trace] call %s%s\n", name, strings.TrimPrefix(pretty.Sprint(env.Bindings()), "map"))
}

func printGlobals(ev *interp.Evaluator) {
	bindings := ev.GlobalBindings()
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	for _, name := range names {
		fmt.Printf("%s = %s\n", name, bindings[name].String())
	}
}
