package parser

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
)

// statement → exprStmt | printStmt | block | ifStmt
//           | whileStmt | forStmt | returnStmt
func (p *Parser) statement() ast.Statement {
	switch {
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.LBRACE):
		lbrace := p.previous()
		return &ast.Block{LBrace: lbrace, Statements: p.block()}
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) expressionStatement() ast.Statement {
	expr := p.expression()
	p.consume(lexer.SEMI, "expected ';' after expression")
	return &ast.ExpressionStatement{Expr: expr}
}

func (p *Parser) printStatement() ast.Statement {
	tok := p.previous()
	value := p.expression()
	p.consume(lexer.SEMI, "expected ';' after value")
	return &ast.PrintStatement{Token: tok, Expr: value}
}

// block -> "{" declaration* "}"; the opening brace is already consumed by
// the caller, which differs per whether this is a bare block statement or a
// function/method body.
func (p *Parser) block() []ast.Statement {
	var statements []ast.Statement
	for !p.check(lexer.RBRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(lexer.RBRACE, "expected '}' after block")
	return statements
}

func (p *Parser) ifStatement() ast.Statement {
	tok := p.previous()
	p.consume(lexer.LPAREN, "expected '(' after 'if'")
	condition := p.expression()
	p.consume(lexer.RPAREN, "expected ')' after if condition")

	thenBranch := p.statement()
	var elseBranch ast.Statement
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.If{Token: tok, Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Statement {
	tok := p.previous()
	p.consume(lexer.LPAREN, "expected '(' after 'while'")
	condition := p.expression()
	p.consume(lexer.RPAREN, "expected ')' after while condition")
	body := p.statement()
	return &ast.While{Token: tok, Condition: condition, Body: body}
}

// forStatement desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }`: a missing condition becomes
// literal `true`, and the increment (if present) is appended to the body
// inside its own block.
func (p *Parser) forStatement() ast.Statement {
	tok := p.previous()
	p.consume(lexer.LPAREN, "expected '(' after 'for'")

	var initializer ast.Statement
	switch {
	case p.match(lexer.SEMI):
		initializer = nil
	case p.check(lexer.VAR):
		p.advance()
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expression
	if !p.check(lexer.SEMI) {
		condition = p.expression()
	}
	p.consume(lexer.SEMI, "expected ';' after loop condition")

	var increment ast.Expression
	if !p.check(lexer.RPAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RPAREN, "expected ')' after for clauses")

	body := p.statement()

	if increment != nil {
		body = &ast.Block{
			LBrace:     tok,
			Statements: []ast.Statement{body, &ast.ExpressionStatement{Expr: increment}},
		}
	}

	if condition == nil {
		condition = &ast.Literal{Token: tok, Value: true}
	}
	body = &ast.While{Token: tok, Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.Block{LBrace: tok, Statements: []ast.Statement{initializer, body}}
	}
	return body
}

func (p *Parser) returnStatement() ast.Statement {
	tok := p.previous()
	var value ast.Expression
	if !p.check(lexer.SEMI) {
		value = p.expression()
	}
	p.consume(lexer.SEMI, "expected ';' after return value")
	return &ast.Return{Token: tok, Value: value}
}
