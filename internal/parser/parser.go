// Package parser implements a recursive-descent grammar over expressions,
// statements, functions, and classes, turning a token stream into an
// *ast.Program.
package parser

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/lexer"
)

const maxArgs = 255

// Parser is a single-pass, one-token-lookahead recursive-descent parser.
type Parser struct {
	tokens  []lexer.Token
	current int
	source  string
	file    string
	errs    []*errors.SourceError
}

// New scans source into tokens and constructs a Parser over them. If the
// scanner fails, the returned error is the lexical failure (wrapped as a
// errors.SourceError) and parser is nil.
func New(source, file string) (*Parser, *errors.SourceError) {
	tokens, lexErr := lexer.New(source).ScanTokens()
	if lexErr != nil {
		kind := errors.UnexpectedCharacter
		if lexErr.Kind == lexer.ErrUnterminatedString {
			kind = errors.UnterminatedString
		}
		return nil, errors.At(kind, lexErr.Pos, lexErr.Message).WithSource(source, file)
	}
	return &Parser{tokens: tokens, source: source, file: file}, nil
}

// Errors returns every parse error accumulated while parsing the program.
// Parsing never stops at the first error: a failed expectation records an
// error and parsing carries on from the current token, so a single run can
// surface more than one mistake (and one mistake can produce follow-on
// errors).
func (p *Parser) Errors() []*errors.SourceError { return p.errs }

// ParseProgram parses the entire token stream. The returned program is valid
// to evaluate only if Errors() is empty.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog
}

func (p *Parser) addError(kind errors.Kind, tok lexer.Token, message string) {
	p.errs = append(p.errs, errors.At(kind, tok.Pos, message).WithSource(p.source, p.file))
}

// --- token stream primitives -------------------------------------------------

func (p *Parser) peek() lexer.Token { return p.tokens[p.current] }

func (p *Parser) previous() lexer.Token { return p.tokens[p.current-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Type == lexer.EOF }

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt lexer.TokenType) bool {
	if p.isAtEnd() {
		return tt == lexer.EOF
	}
	return p.peek().Type == tt
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past a token of the expected type, or records a parse
// error at the current token and returns that token without advancing.
func (p *Parser) consume(tt lexer.TokenType, message string) lexer.Token {
	if p.check(tt) {
		return p.advance()
	}
	p.addError(errors.ExpressionExpected, p.peek(), message)
	return p.peek()
}

// synchronize discards tokens after a parse error up to the next likely
// statement boundary, so parsing can continue and surface further errors.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMI {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
	}
}
