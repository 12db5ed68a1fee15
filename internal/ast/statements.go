package ast

import (
	"strings"

	"github.com/cwbudde/go-lox/internal/lexer"
)

// ExpressionStatement evaluates an expression and discards the result.
type ExpressionStatement struct {
	Expr Expression
}

func (s *ExpressionStatement) statementNode()       {}
func (s *ExpressionStatement) TokenLiteral() string { return s.Expr.TokenLiteral() }
func (s *ExpressionStatement) Pos() lexer.Position  { return s.Expr.Pos() }
func (s *ExpressionStatement) String() string       { return s.Expr.String() + ";" }

// PrintStatement writes the textual form of a value followed by a newline.
type PrintStatement struct {
	Token lexer.Token // the "print" keyword
	Expr  Expression
}

func (s *PrintStatement) statementNode()       {}
func (s *PrintStatement) TokenLiteral() string { return s.Token.Lexeme }
func (s *PrintStatement) Pos() lexer.Position  { return s.Token.Pos }
func (s *PrintStatement) String() string       { return "print " + s.Expr.String() + ";" }

// VarStatement declares a new binding in the current environment, with an
// optional initializer (nil value otherwise).
type VarStatement struct {
	Token       lexer.Token // the "var" keyword
	Name        lexer.Token
	Initializer Expression // nil if absent
}

func (s *VarStatement) statementNode()       {}
func (s *VarStatement) TokenLiteral() string { return s.Token.Lexeme }
func (s *VarStatement) Pos() lexer.Position  { return s.Token.Pos }
func (s *VarStatement) String() string {
	out := "var " + s.Name.Lexeme
	if s.Initializer != nil {
		out += " = " + s.Initializer.String()
	}
	return out + ";"
}

// Block is a brace-delimited sequence of statements run in a fresh,
// child environment.
type Block struct {
	LBrace     lexer.Token
	Statements []Statement
}

func (s *Block) statementNode()       {}
func (s *Block) TokenLiteral() string { return s.LBrace.Lexeme }
func (s *Block) Pos() lexer.Position  { return s.LBrace.Pos }
func (s *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, st := range s.Statements {
		sb.WriteString(st.String())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}

// If is a conditional with an optional else branch.
type If struct {
	Token     lexer.Token // the "if" keyword
	Condition Expression
	Then      Statement
	Else      Statement // nil if absent
}

func (s *If) statementNode()       {}
func (s *If) TokenLiteral() string { return s.Token.Lexeme }
func (s *If) Pos() lexer.Position  { return s.Token.Pos }
func (s *If) String() string {
	out := "if (" + s.Condition.String() + ") " + s.Then.String()
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}

// While is a pre-tested loop. `for` is desugared into this during parsing.
type While struct {
	Token     lexer.Token // the "while" keyword
	Condition Expression
	Body      Statement
}

func (s *While) statementNode()       {}
func (s *While) TokenLiteral() string { return s.Token.Lexeme }
func (s *While) Pos() lexer.Position  { return s.Token.Pos }
func (s *While) String() string {
	return "while (" + s.Condition.String() + ") " + s.Body.String()
}

// Function is a named function or method declaration.
type Function struct {
	Token  lexer.Token // the function or method name (the "fun" keyword is not kept)
	Name   lexer.Token
	Params []lexer.Token
	Body   []Statement
}

func (s *Function) statementNode()       {}
func (s *Function) TokenLiteral() string { return s.Token.Lexeme }
func (s *Function) Pos() lexer.Position  { return s.Token.Pos }
func (s *Function) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Lexeme
	}
	var body strings.Builder
	for _, st := range s.Body {
		body.WriteString(st.String())
		body.WriteString(" ")
	}
	return "fun " + s.Name.Lexeme + "(" + strings.Join(params, ", ") + ") { " + body.String() + "}"
}

// Return exits the enclosing function, optionally carrying a value.
type Return struct {
	Token lexer.Token // the "return" keyword
	Value Expression  // nil if bare `return;`
}

func (s *Return) statementNode()       {}
func (s *Return) TokenLiteral() string { return s.Token.Lexeme }
func (s *Return) Pos() lexer.Position  { return s.Token.Pos }
func (s *Return) String() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}

// Class is a class declaration with an optional superclass and a list of
// method declarations (each a *Function, parsed as if `fun`-less methods).
type Class struct {
	Token      lexer.Token // the "class" keyword
	Name       lexer.Token
	Superclass *Variable // nil if the class has no superclass
	Methods    []*Function
}

func (s *Class) statementNode()       {}
func (s *Class) TokenLiteral() string { return s.Token.Lexeme }
func (s *Class) Pos() lexer.Position  { return s.Token.Pos }
func (s *Class) String() string {
	var sb strings.Builder
	sb.WriteString("class ")
	sb.WriteString(s.Name.Lexeme)
	if s.Superclass != nil {
		sb.WriteString(" < ")
		sb.WriteString(s.Superclass.Name.Lexeme)
	}
	sb.WriteString(" { ")
	for _, m := range s.Methods {
		sb.WriteString(m.String())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}
