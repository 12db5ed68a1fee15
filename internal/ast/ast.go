// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the resolver and evaluator.
//
// Node is a plain tagged-variant sum type: each concrete node is a pointer to
// a struct carrying its immediate children, and traversals are ordinary type
// switches rather than a visitor interface. Every concrete node is therefore
// compared by pointer identity, which is exactly what the resolver's
// expression → depth side table needs (see internal/resolver).
package ast

import "github.com/cwbudde/go-lox/internal/lexer"

// Node is the base interface implemented by every AST node.
type Node interface {
	// TokenLiteral returns the literal text of the node's principal token
	// (a statement's keyword, an operator, a name); mostly useful in tests
	// and error messages.
	TokenLiteral() string
	// String renders the node back to source-like text, for --dump-ast
	// tooling and debugging.
	String() string
	// Pos returns the node's source location.
	Pos() lexer.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action but produces no value.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of every parsed source file.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	out := ""
	for _, s := range p.Statements {
		out += s.String()
	}
	return out
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Offset: 0}
}
