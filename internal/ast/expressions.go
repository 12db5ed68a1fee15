package ast

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-lox/internal/lexer"
)

// Literal is a constant value baked into the source: a number, string, bool,
// or nil. Value holds the raw Go representation (float64, string, bool, or
// nil); the evaluator wraps it into a runtime Value.
type Literal struct {
	Token lexer.Token
	Value any
}

func (e *Literal) expressionNode()          {}
func (e *Literal) TokenLiteral() string     { return e.Token.Lexeme }
func (e *Literal) Pos() lexer.Position      { return e.Token.Pos }
func (e *Literal) String() string {
	if e.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", e.Value)
}

// Variable is a reference to a named binding.
type Variable struct {
	Name lexer.Token
}

func (e *Variable) expressionNode()      {}
func (e *Variable) TokenLiteral() string { return e.Name.Lexeme }
func (e *Variable) Pos() lexer.Position  { return e.Name.Pos }
func (e *Variable) String() string       { return e.Name.Lexeme }

// Assign is `name = value`.
type Assign struct {
	Name  lexer.Token
	Value Expression
}

func (e *Assign) expressionNode()      {}
func (e *Assign) TokenLiteral() string { return e.Name.Lexeme }
func (e *Assign) Pos() lexer.Position  { return e.Name.Pos }
func (e *Assign) String() string       { return e.Name.Lexeme + " = " + e.Value.String() }

// Unary is a prefix operator applied to one operand: `-x`, `!x`.
type Unary struct {
	Op      lexer.Token
	Operand Expression
}

func (e *Unary) expressionNode()      {}
func (e *Unary) TokenLiteral() string { return e.Op.Lexeme }
func (e *Unary) Pos() lexer.Position  { return e.Op.Pos }
func (e *Unary) String() string       { return "(" + e.Op.Lexeme + e.Operand.String() + ")" }

// Binary is an infix arithmetic/comparison/equality operator.
type Binary struct {
	Left  Expression
	Op    lexer.Token
	Right Expression
}

func (e *Binary) expressionNode()      {}
func (e *Binary) TokenLiteral() string { return e.Op.Lexeme }
func (e *Binary) Pos() lexer.Position  { return e.Op.Pos }
func (e *Binary) String() string {
	return "(" + e.Left.String() + " " + e.Op.Lexeme + " " + e.Right.String() + ")"
}

// Logical is `and`/`or`, which short-circuit unlike Binary.
type Logical struct {
	Left  Expression
	Op    lexer.Token
	Right Expression
}

func (e *Logical) expressionNode()      {}
func (e *Logical) TokenLiteral() string { return e.Op.Lexeme }
func (e *Logical) Pos() lexer.Position  { return e.Op.Pos }
func (e *Logical) String() string {
	return "(" + e.Left.String() + " " + e.Op.Lexeme + " " + e.Right.String() + ")"
}

// Grouping is a parenthesized expression, kept distinct from its inner
// expression so the printer can round-trip `(expr)`.
type Grouping struct {
	LParen lexer.Token
	Inner  Expression
}

func (e *Grouping) expressionNode()      {}
func (e *Grouping) TokenLiteral() string { return e.LParen.Lexeme }
func (e *Grouping) Pos() lexer.Position  { return e.LParen.Pos }
func (e *Grouping) String() string       { return "(" + e.Inner.String() + ")" }

// Call is `callee(args...)`.
type Call struct {
	Callee Expression
	Paren  lexer.Token // the closing ')', used to position call errors
	Args   []Expression
}

func (e *Call) expressionNode()      {}
func (e *Call) TokenLiteral() string { return e.Paren.Lexeme }
func (e *Call) Pos() lexer.Position  { return e.Callee.Pos() }
func (e *Call) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return e.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// Get is `object.name`, a field or method read.
type Get struct {
	Object Expression
	Name   lexer.Token
}

func (e *Get) expressionNode()      {}
func (e *Get) TokenLiteral() string { return e.Name.Lexeme }
func (e *Get) Pos() lexer.Position  { return e.Name.Pos }
func (e *Get) String() string       { return e.Object.String() + "." + e.Name.Lexeme }

// Set is `object.name = value`.
type Set struct {
	Object Expression
	Name   lexer.Token
	Value  Expression
}

func (e *Set) expressionNode()      {}
func (e *Set) TokenLiteral() string { return e.Name.Lexeme }
func (e *Set) Pos() lexer.Position  { return e.Name.Pos }
func (e *Set) String() string {
	return e.Object.String() + "." + e.Name.Lexeme + " = " + e.Value.String()
}

// This is a `this` reference inside a method body.
type This struct {
	Keyword lexer.Token
}

func (e *This) expressionNode()      {}
func (e *This) TokenLiteral() string { return e.Keyword.Lexeme }
func (e *This) Pos() lexer.Position  { return e.Keyword.Pos }
func (e *This) String() string       { return "this" }

// Super is `super.method`, used inside a subclass method to reach the
// parent class's implementation while keeping `this` bound to the
// subclass instance.
type Super struct {
	Keyword lexer.Token
	Method  lexer.Token
}

func (e *Super) expressionNode()      {}
func (e *Super) TokenLiteral() string { return e.Keyword.Lexeme }
func (e *Super) Pos() lexer.Position  { return e.Keyword.Pos }
func (e *Super) String() string       { return "super." + e.Method.Lexeme }
