// Package interp implements a tree-walking evaluator: it executes a
// resolved *ast.Program directly, dispatching on the concrete AST node
// type rather than through a visitor interface, the same shape the lexer
// and parser use for their own token/node dispatch.
package interp

import (
	"io"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
)

// Evaluator holds the two pieces of state that persist across an entire
// program run: the global environment and the resolver's expression →
// depth side table. Locals is read-only from the evaluator's point of
// view; it is produced once, up front, by the resolver package.
type Evaluator struct {
	Globals *Environment
	env     *Environment
	locals  map[ast.Expression]int
	out     io.Writer
	source  string
	file    string

	// MaxCallDepth guards against native stack overflow from deeply
	// recursive user functions, turning an unrecoverable crash into a
	// catchable Runtime error. Zero means "use the package default" (see
	// defaultMaxCallDepth).
	MaxCallDepth int
	callDepth    int

	// ClockEpoch overrides the "clock" builtin's return value when set,
	// per .loxrc.yaml's builtins.clockEpoch (internal/config).
	ClockEpoch *float64

	// Trace, if set, is invoked with a callee's name and its freshly
	// bound parameter environment each time a user function or method is
	// entered, for the --trace CLI flag.
	Trace func(name string, env *Environment)
}

const defaultMaxCallDepth = 255

// New creates an Evaluator with a fresh global environment seeded with the
// builtins from builtins.go, ready to run statements against locals (the
// resolver's output for the program about to be executed).
func New(locals map[ast.Expression]int, out io.Writer, source, file string) *Evaluator {
	globals := NewEnvironment()
	ev := &Evaluator{Globals: globals, env: globals, locals: locals, out: out, source: source, file: file}
	registerBuiltins(globals)
	return ev
}

// enterCall increments the active call depth, returning a stack-overflow
// error if MaxCallDepth (or its default) has been exceeded.
func (ev *Evaluator) enterCall() *errors.SourceError {
	limit := ev.MaxCallDepth
	if limit <= 0 {
		limit = defaultMaxCallDepth
	}
	ev.callDepth++
	if ev.callDepth > limit {
		ev.callDepth--
		return errors.New(errors.RuntimeError, "stack overflow").WithSource(ev.source, ev.file)
	}
	return nil
}

func (ev *Evaluator) exitCall() { ev.callDepth-- }

// GlobalBindings returns the global environment's name → value bindings,
// for the CLI's --dump-globals aid. Callers that want a stable order sort
// the keys themselves (the cmd/lox/cmd run command uses natural order).
func (ev *Evaluator) GlobalBindings() map[string]Value {
	return ev.Globals.values
}

// Run executes every top-level statement of program in order, stopping at
// the first runtime error.
func (ev *Evaluator) Run(program *ast.Program) *errors.SourceError {
	for _, stmt := range program.Statements {
		if _, _, err := ev.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// print writes a line of program output, used by the "print" statement.
func (ev *Evaluator) print(line string) {
	if ev.out == nil {
		return
	}
	ev.out.Write([]byte(line + "\n"))
}

// lookUpVariable resolves a Variable/This/Super reference using the
// resolver's side table, falling back to the global environment for names
// the resolver left unresolved (i.e. genuinely global references).
func (ev *Evaluator) lookUpVariable(name string, expr ast.Expression) (Value, *errors.SourceError) {
	if depth, ok := ev.locals[expr]; ok {
		return ev.env.GetAt(depth, name), nil
	}
	if v, ok := ev.Globals.Get(name); ok {
		return v, nil
	}
	return nil, globalUndefined(name).WithSource(ev.source, ev.file)
}
