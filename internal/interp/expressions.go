package interp

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
)

func (ev *Evaluator) evaluate(expr ast.Expression) (Value, *errors.SourceError) {
	switch e := expr.(type) {
	case *ast.Literal:
		return wrapLiteral(e.Value), nil

	case *ast.Grouping:
		return ev.evaluate(e.Inner)

	case *ast.Variable:
		return ev.lookUpVariable(e.Name.Lexeme, e)

	case *ast.Assign:
		value, err := ev.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if depth, ok := ev.locals[e]; ok {
			ev.env.AssignAt(depth, e.Name.Lexeme, value)
			return value, nil
		}
		if !ev.Globals.Assign(e.Name.Lexeme, value) {
			return nil, globalUndefined(e.Name.Lexeme).WithSource(ev.source, ev.file)
		}
		return value, nil

	case *ast.Unary:
		return ev.evalUnary(e)

	case *ast.Binary:
		return ev.evalBinary(e)

	case *ast.Logical:
		left, err := ev.evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		if isOrOperator(e) {
			if Truthy(left) {
				return left, nil
			}
		} else {
			if !Truthy(left) {
				return left, nil
			}
		}
		return ev.evaluate(e.Right)

	case *ast.Call:
		return ev.evalCall(e)

	case *ast.Get:
		obj, err := ev.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, errors.At(errors.RuntimeError, e.Pos(), "only instances have properties").WithSource(ev.source, ev.file)
		}
		v, ok := inst.Get(e.Name.Lexeme)
		if !ok {
			return nil, errors.At(errors.RuntimeError, e.Pos(), "undefined property '"+e.Name.Lexeme+"'").WithSource(ev.source, ev.file)
		}
		return v, nil

	case *ast.Set:
		obj, err := ev.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, errors.At(errors.RuntimeError, e.Pos(), "only instances have fields").WithSource(ev.source, ev.file)
		}
		value, err := ev.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(e.Name.Lexeme, value)
		return value, nil

	case *ast.This:
		return ev.lookUpVariable("this", e)

	case *ast.Super:
		return ev.evalSuper(e)
	}
	return Nil{}, nil
}

func isOrOperator(l *ast.Logical) bool {
	return l.Op.Lexeme == "or"
}

func wrapLiteral(v any) Value {
	switch lit := v.(type) {
	case nil:
		return Nil{}
	case float64:
		return Number(lit)
	case string:
		return String(lit)
	case bool:
		return Bool(lit)
	default:
		return Nil{}
	}
}

func (ev *Evaluator) evalUnary(e *ast.Unary) (Value, *errors.SourceError) {
	operand, err := ev.evaluate(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Op.Lexeme {
	case "-":
		n, ok := operand.(Number)
		if !ok {
			return nil, errors.At(errors.OperandMustBeNumber, e.Pos(), "operand must be a number").WithSource(ev.source, ev.file)
		}
		return -n, nil
	case "!":
		return Bool(!Truthy(operand)), nil
	}
	return nil, errors.At(errors.RuntimeError, e.Pos(), "unknown unary operator '"+e.Op.Lexeme+"'").WithSource(ev.source, ev.file)
}

func (ev *Evaluator) evalBinary(e *ast.Binary) (Value, *errors.SourceError) {
	left, err := ev.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Lexeme {
	case "==":
		return Bool(Equal(left, right)), nil
	case "!=":
		return Bool(!Equal(left, right)), nil
	case "+":
		ln, lok := left.(Number)
		rn, rok := right.(Number)
		if lok && rok {
			return ln + rn, nil
		}
		ls, lok := left.(String)
		rs, rok := right.(String)
		if lok && rok {
			return ls + rs, nil
		}
		return nil, errors.At(errors.OperandsMustBeSameType, e.Pos(), "operands must be two numbers or two strings").WithSource(ev.source, ev.file)
	case "-", "*", "/", ">", ">=", "<", "<=":
		ln, lok := left.(Number)
		rn, rok := right.(Number)
		if !lok || !rok {
			return nil, errors.At(errors.OperandMustBeNumber, e.Pos(), "operands must be numbers").WithSource(ev.source, ev.file)
		}
		switch e.Op.Lexeme {
		case "-":
			return ln - rn, nil
		case "*":
			return ln * rn, nil
		case "/":
			return ln / rn, nil
		case ">":
			return Bool(ln > rn), nil
		case ">=":
			return Bool(ln >= rn), nil
		case "<":
			return Bool(ln < rn), nil
		case "<=":
			return Bool(ln <= rn), nil
		}
	}
	return nil, errors.At(errors.RuntimeError, e.Pos(), "unknown binary operator '"+e.Op.Lexeme+"'").WithSource(ev.source, ev.file)
}

func (ev *Evaluator) evalCall(e *ast.Call) (Value, *errors.SourceError) {
	callee, err := ev.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := ev.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, errors.At(errors.RuntimeError, e.Paren.Pos, "can only call functions and classes").WithSource(ev.source, ev.file)
	}
	if len(args) != callable.Arity() {
		return nil, errors.At(errors.RuntimeError, e.Paren.Pos, "wrong number of arguments").WithSource(ev.source, ev.file)
	}
	return callable.Call(ev, args)
}

func (ev *Evaluator) evalSuper(e *ast.Super) (Value, *errors.SourceError) {
	depth, ok := ev.locals[e]
	if !ok {
		return nil, errors.At(errors.RuntimeError, e.Pos(), "'super' used outside of a subclass method").WithSource(ev.source, ev.file)
	}
	superVal := ev.env.GetAt(depth, "super")
	superclass, ok := superVal.(*Class)
	if !ok {
		return nil, errors.At(errors.RuntimeError, e.Pos(), "'super' is not bound to a class").WithSource(ev.source, ev.file)
	}
	thisVal := ev.env.GetAt(depth-1, "this")
	instance, ok := thisVal.(*Instance)
	if !ok {
		return nil, errors.At(errors.RuntimeError, e.Pos(), "'this' is not bound to an instance").WithSource(ev.source, ev.file)
	}
	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, errors.At(errors.RuntimeError, e.Pos(), "undefined property '"+e.Method.Lexeme+"'").WithSource(ev.source, ev.file)
	}
	return method.Bind(instance), nil
}
