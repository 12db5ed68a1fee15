package parser

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/lexer"
)

// declaration → varDecl | funDecl | classDecl | statement
func (p *Parser) declaration() ast.Statement {
	stmt := p.declarationOrNil()
	if stmt == nil && len(p.errs) > 0 && !p.isAtEnd() {
		p.synchronize()
	}
	return stmt
}

func (p *Parser) declarationOrNil() ast.Statement {
	switch {
	case p.match(lexer.VAR):
		return p.varDeclaration()
	case p.match(lexer.FUN):
		return p.functionDeclaration("function")
	case p.match(lexer.CLASS):
		return p.classDeclaration()
	default:
		return p.statement()
	}
}

// varDecl → "var" IDENT ( "=" expression )? ";"
func (p *Parser) varDeclaration() ast.Statement {
	varTok := p.previous()
	name := p.consume(lexer.IDENT, "expected variable name")

	var init ast.Expression
	if p.match(lexer.EQUAL) {
		init = p.expression()
	}
	p.consume(lexer.SEMI, "expected ';' after variable declaration")
	return &ast.VarStatement{Token: varTok, Name: name, Initializer: init}
}

// function(kind) → IDENT "(" params? ")" "{" declaration* "}"
func (p *Parser) functionDeclaration(kind string) *ast.Function {
	name := p.consume(lexer.IDENT, "expected "+kind+" name")
	p.consume(lexer.LPAREN, "expected '(' after "+kind+" name")

	var params []lexer.Token
	if !p.check(lexer.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.addError(errors.TooManyFunctionArguments, p.peek(), "can't have more than 255 parameters")
			}
			params = append(params, p.consume(lexer.IDENT, "expected parameter name"))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RPAREN, "expected ')' after parameters")
	p.consume(lexer.LBRACE, "expected '{' before "+kind+" body")
	body := p.block()

	return &ast.Function{Token: name, Name: name, Params: params, Body: body}
}

// classDecl → "class" IDENT ( "<" IDENT )? "{" function("method")* "}"
func (p *Parser) classDeclaration() ast.Statement {
	classTok := p.previous()
	name := p.consume(lexer.IDENT, "expected class name")

	var super *ast.Variable
	if p.match(lexer.LESS) {
		superName := p.consume(lexer.IDENT, "expected superclass name")
		super = &ast.Variable{Name: superName}
	}

	p.consume(lexer.LBRACE, "expected '{' before class body")
	var methods []*ast.Function
	for !p.check(lexer.RBRACE) && !p.isAtEnd() {
		methods = append(methods, p.functionDeclaration("method"))
	}
	p.consume(lexer.RBRACE, "expected '}' after class body")

	return &ast.Class{Token: classTok, Name: name, Superclass: super, Methods: methods}
}
