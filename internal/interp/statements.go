package interp

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
)

// execute runs a single statement. The bool return reports whether a
// `return` was hit while running it, in which case Value is the returned
// value; callers that can't themselves return (the top-level Run loop)
// simply ignore it, since the resolver already rejects top-level return.
func (ev *Evaluator) execute(stmt ast.Statement) (Value, bool, *errors.SourceError) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		_, err := ev.evaluate(s.Expr)
		return nil, false, err

	case *ast.PrintStatement:
		v, err := ev.evaluate(s.Expr)
		if err != nil {
			return nil, false, err
		}
		ev.print(v.String())
		return nil, false, nil

	case *ast.VarStatement:
		var value Value = Nil{}
		if s.Initializer != nil {
			v, err := ev.evaluate(s.Initializer)
			if err != nil {
				return nil, false, err
			}
			value = v
		}
		ev.env.Define(s.Name.Lexeme, value)
		return nil, false, nil

	case *ast.Block:
		return ev.executeBlock(s.Statements, NewChildEnvironment(ev.env))

	case *ast.If:
		cond, err := ev.evaluate(s.Condition)
		if err != nil {
			return nil, false, err
		}
		if Truthy(cond) {
			return ev.execute(s.Then)
		}
		if s.Else != nil {
			return ev.execute(s.Else)
		}
		return nil, false, nil

	case *ast.While:
		for {
			cond, err := ev.evaluate(s.Condition)
			if err != nil {
				return nil, false, err
			}
			if !Truthy(cond) {
				return nil, false, nil
			}
			v, isReturn, err := ev.execute(s.Body)
			if err != nil || isReturn {
				return v, isReturn, err
			}
		}

	case *ast.Function:
		fn := NewFunction(s, ev.env)
		ev.env.Define(s.Name.Lexeme, fn)
		return nil, false, nil

	case *ast.Return:
		var value Value = Nil{}
		if s.Value != nil {
			v, err := ev.evaluate(s.Value)
			if err != nil {
				return nil, false, err
			}
			value = v
		}
		return value, true, nil

	case *ast.Class:
		return nil, false, ev.executeClass(s)
	}
	return nil, false, nil
}

// executeBlock runs stmts against env, restoring the evaluator's previous
// environment before returning (including on error or early return).
func (ev *Evaluator) executeBlock(stmts []ast.Statement, env *Environment) (Value, bool, *errors.SourceError) {
	previous := ev.env
	ev.env = env
	defer func() { ev.env = previous }()

	for _, stmt := range stmts {
		v, isReturn, err := ev.execute(stmt)
		if err != nil || isReturn {
			return v, isReturn, err
		}
	}
	return nil, false, nil
}

// executeClass evaluates a class declaration: resolves the (optional)
// superclass, builds the method table closing over an environment that
// has "super" bound when applicable, and defines the class itself using
// the "placeholder, then patch" two-step the resolver's scoping assumes
// (the class's own name is visible, as nil, while its methods are being
// built, then rebound to the finished Class).
func (ev *Evaluator) executeClass(s *ast.Class) *errors.SourceError {
	var superclass *Class
	if s.Superclass != nil {
		v, err := ev.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return errors.At(errors.RuntimeError, s.Superclass.Pos(), "superclass must be a class").WithSource(ev.source, ev.file)
		}
		superclass = sc
	}

	ev.env.Define(s.Name.Lexeme, Nil{})

	methodEnv := ev.env
	if superclass != nil {
		methodEnv = NewChildEnvironment(ev.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &Function{
			declaration:   m,
			closure:       methodEnv,
			isInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	ev.env.Assign(s.Name.Lexeme, class)
	return nil
}

