package ast

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/lexer"
)

func ident(name string) lexer.Token {
	return lexer.Token{Type: lexer.IDENT, Lexeme: name}
}

func TestBinaryString(t *testing.T) {
	expr := &Binary{
		Left:  &Literal{Value: 1.0},
		Op:    lexer.Token{Type: lexer.PLUS, Lexeme: "+"},
		Right: &Literal{Value: 2.0},
	}
	want := "(1 + 2)"
	if got := expr.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAssignString(t *testing.T) {
	expr := &Assign{Name: ident("x"), Value: &Literal{Value: 3.0}}
	want := "x = 3"
	if got := expr.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestClassStringWithSuperclass(t *testing.T) {
	cls := &Class{
		Token:      lexer.Token{Type: lexer.CLASS, Lexeme: "class"},
		Name:       ident("B"),
		Superclass: &Variable{Name: ident("A")},
	}
	want := "class B < A { }"
	if got := cls.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestProgramPosFallsBackToOrigin(t *testing.T) {
	p := &Program{}
	pos := p.Pos()
	if pos.Line != 1 || pos.Offset != 0 {
		t.Errorf("got %+v, want {1 0}", pos)
	}
}

func TestProgramPosDelegatesToFirstStatement(t *testing.T) {
	stmt := &ExpressionStatement{Expr: &Literal{Token: lexer.Token{Pos: lexer.Position{Line: 5, Offset: 10}}}}
	p := &Program{Statements: []Statement{stmt}}
	pos := p.Pos()
	if pos.Line != 5 || pos.Offset != 10 {
		t.Errorf("got %+v, want {5 10}", pos)
	}
}

func TestLiteralStringNilValue(t *testing.T) {
	lit := &Literal{Value: nil}
	if got := lit.String(); got != "nil" {
		t.Errorf("got %q, want nil", got)
	}
}
