package inspect

import (
	"strconv"
	"strings"
	"testing"

	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
)

func TestTokensBuildsJSONArray(t *testing.T) {
	tokens, err := lexer.New("var x = 1;").ScanTokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, err := Tokens(tokens)
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if !strings.HasPrefix(doc, "[") {
		t.Fatalf("got %q, want a JSON array", doc)
	}
	if got := Query(doc, "0.type"); got != "VAR" {
		t.Errorf("got %q, want VAR", got)
	}
	if got := Query(doc, "0.lexeme"); got != "var" {
		t.Errorf("got %q, want var", got)
	}
	if got := Query(doc, "#"); got != strconv.Itoa(len(tokens)) {
		t.Errorf("got %q tokens, want %d", got, len(tokens))
	}
}

func TestASTBuildsStatementsArray(t *testing.T) {
	p, lexErr := parser.New("print 1; print 2;", "<test>")
	if lexErr != nil {
		t.Fatalf("unexpected lex error: %v", lexErr)
	}
	program := p.ParseProgram()
	doc, err := AST(program)
	if err != nil {
		t.Fatalf("AST: %v", err)
	}
	if got := Query(doc, "statements.0"); got != "print 1;" {
		t.Errorf("got %q, want %q", got, "print 1;")
	}
	if got := Query(doc, "statements.1"); got != "print 2;" {
		t.Errorf("got %q, want %q", got, "print 2;")
	}
}

func TestQueryMissingPathReturnsEmptyString(t *testing.T) {
	doc := `{"statements":["print 1;"]}`
	if got := Query(doc, "statements.9"); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}
