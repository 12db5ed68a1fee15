package resolver

import "github.com/cwbudde/go-lox/internal/ast"

func (r *Resolver) resolveStatements(stmts []ast.Statement) {
	for _, s := range stmts {
		r.resolveStatement(s)
	}
}

func (r *Resolver) resolveStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStatements(s.Statements)
		r.endScope()

	case *ast.VarStatement:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpression(s.Initializer)
		}
		r.define(s.Name)

	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)

	case *ast.Class:
		r.resolveClass(s)

	case *ast.ExpressionStatement:
		r.resolveExpression(s.Expr)

	case *ast.PrintStatement:
		r.resolveExpression(s.Expr)

	case *ast.If:
		r.resolveExpression(s.Condition)
		r.resolveStatement(s.Then)
		if s.Else != nil {
			r.resolveStatement(s.Else)
		}

	case *ast.While:
		r.resolveExpression(s.Condition)
		r.resolveStatement(s.Body)

	case *ast.Return:
		if r.fnKind == fnNone {
			r.addError(s.Pos(), "can't return from top-level code")
		}
		if s.Value != nil {
			if r.fnKind == fnInitializer {
				r.addError(s.Pos(), "can't return a value from an initializer")
			}
			r.resolveExpression(s.Value)
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFn := r.fnKind
	r.fnKind = kind

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStatements(fn.Body)
	r.endScope()

	r.fnKind = enclosingFn
}

func (r *Resolver) resolveClass(cls *ast.Class) {
	enclosingCls := r.clsKind
	r.clsKind = clsClass
	r.declare(cls.Name)
	r.define(cls.Name)

	if cls.Superclass != nil {
		if cls.Superclass.Name.Lexeme == cls.Name.Lexeme {
			r.addError(cls.Superclass.Pos(), "a class can't inherit from itself")
		}
		r.resolveExpression(cls.Superclass)
		r.beginScope()
		r.peekScope()["super"] = defined
	}

	r.beginScope()
	r.peekScope()["this"] = defined

	for _, method := range cls.Methods {
		kind := fnMethod
		if method.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if cls.Superclass != nil {
		r.endScope()
	}

	r.clsKind = enclosingCls
}
