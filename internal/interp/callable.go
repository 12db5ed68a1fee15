package interp

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
)

// Callable is anything that can appear on the left of a call expression:
// a builtin, a user-defined function, a bound method, or a class acting as
// its own constructor.
type Callable interface {
	Value
	Arity() int
	Call(ev *Evaluator, args []Value) (Value, *errors.SourceError)
}

// BuiltinFunction wraps a Go function as a callable value, for the
// environment's native bindings.
type BuiltinFunction struct {
	name  string
	arity int
	fn    func(ev *Evaluator, args []Value) (Value, *errors.SourceError)
}

// NewBuiltin constructs a named builtin with a fixed arity.
func NewBuiltin(name string, arity int, fn func(ev *Evaluator, args []Value) (Value, *errors.SourceError)) *BuiltinFunction {
	return &BuiltinFunction{name: name, arity: arity, fn: fn}
}

func (*BuiltinFunction) Type() ValueType { return BuiltinType }
func (b *BuiltinFunction) String() string {
	return "<native fn " + b.name + ">"
}
func (b *BuiltinFunction) Arity() int { return b.arity }
func (b *BuiltinFunction) Call(ev *Evaluator, args []Value) (Value, *errors.SourceError) {
	return b.fn(ev, args)
}

// Function is a user-defined function or method: an AST declaration plus
// the environment it closed over at definition time. isInitializer marks a
// class's "init" method, whose implicit return value is always the bound
// instance.
type Function struct {
	declaration   *ast.Function
	closure       *Environment
	isInitializer bool
}

// NewFunction builds a plain (non-method) closure over declaration.
func NewFunction(declaration *ast.Function, closure *Environment) *Function {
	return &Function{declaration: declaration, closure: closure}
}

func (*Function) Type() ValueType { return FunctionType }
func (f *Function) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}
func (f *Function) Arity() int { return len(f.declaration.Params) }

// Bind returns a copy of f whose closure has an extra innermost scope
// binding "this" to instance, so method bodies can refer to their
// receiver without it being a parameter.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewChildEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{declaration: f.declaration, closure: env, isInitializer: f.isInitializer}
}

// Call runs the function body in a fresh scope chained off its closure,
// binding each parameter to the matching argument. A Return control-flow
// signal raised inside the body is caught here and turned into the call's
// result; falling off the end of the body yields nil (or, for an
// initializer, the bound instance).
func (f *Function) Call(ev *Evaluator, args []Value) (Value, *errors.SourceError) {
	if err := ev.enterCall(); err != nil {
		return nil, err
	}
	defer ev.exitCall()

	env := NewChildEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}
	if ev.Trace != nil {
		ev.Trace(f.declaration.Name.Lexeme, env)
	}

	result, ret, err := ev.executeBlock(f.declaration.Body, env)
	if err != nil {
		return nil, err
	}
	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	if ret {
		return result, nil
	}
	return Nil{}, nil
}
