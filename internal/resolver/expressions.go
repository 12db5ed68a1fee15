package resolver

import "github.com/cwbudde/go-lox/internal/ast"

func (r *Resolver) resolveExpression(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Variable:
		if sc := r.peekScope(); sc != nil {
			if state, ok := sc[e.Name.Lexeme]; ok && state == declared {
				r.addError(e.Pos(), "can't read local variable in its own initializer")
			}
		}
		r.resolveLocal(e, e.Name)

	case *ast.Assign:
		r.resolveExpression(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.Binary:
		r.resolveExpression(e.Left)
		r.resolveExpression(e.Right)

	case *ast.Logical:
		r.resolveExpression(e.Left)
		r.resolveExpression(e.Right)

	case *ast.Unary:
		r.resolveExpression(e.Operand)

	case *ast.Grouping:
		r.resolveExpression(e.Inner)

	case *ast.Literal:
		// no children, no bindings to resolve

	case *ast.Call:
		r.resolveExpression(e.Callee)
		for _, a := range e.Args {
			r.resolveExpression(a)
		}

	case *ast.Get:
		r.resolveExpression(e.Object)

	case *ast.Set:
		r.resolveExpression(e.Value)
		r.resolveExpression(e.Object)

	case *ast.This:
		if r.clsKind == clsNone {
			r.addError(e.Pos(), "can't use 'this' outside of a class")
			return
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.Super:
		r.resolveLocal(e, e.Keyword)
	}
}
