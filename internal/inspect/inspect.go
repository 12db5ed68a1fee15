// Package inspect builds the JSON token/AST dump consumed by the `lox
// inspect` subcommand, and answers path queries against it. It exists
// purely as a debugging/tooling surface: nothing in internal/interp reads
// it back.
package inspect

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
)

// Tokens renders a token stream as a JSON array of {type, lexeme, line,
// offset} objects, with type names upper-cased ("VAR", "IDENT"), built
// incrementally with sjson rather than through
// encoding/json so the shape stays easy to extend ad hoc.
func Tokens(tokens []lexer.Token) (string, error) {
	doc := "[]"
	var err error
	for i, tok := range tokens {
		idx := strconv.Itoa(i)
		doc, err = sjson.Set(doc, idx+".type", strings.ToUpper(tok.Type.String()))
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, idx+".lexeme", tok.Lexeme)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, idx+".line", tok.Pos.Line)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, idx+".offset", tok.Pos.Offset)
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}

// AST renders a parsed program as {"statements": [...]}, one string entry
// per top-level statement's String() form. A full structural AST dump is
// left to the `parse` subcommand, which prints String() directly; this
// JSON form exists so `inspect` output composes with jq-style tooling.
func AST(program *ast.Program) (string, error) {
	doc := `{"statements":[]}`
	var err error
	for i, stmt := range program.Statements {
		doc, err = sjson.Set(doc, "statements."+strconv.Itoa(i), stmt.String())
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}

// Query evaluates a gjson path expression against a JSON document produced
// by Tokens or AST, returning the raw matched text.
func Query(doc, path string) string {
	return gjson.Get(doc, path).String()
}
