package lexer

import "testing"

func scanAll(t *testing.T, source string) []Token {
	t.Helper()
	tokens, err := New(source).ScanTokens()
	if err != nil {
		t.Fatalf("ScanTokens(%q) unexpected error: %v", source, err)
	}
	return tokens
}

func TestScanTokensPunctuationAndOperators(t *testing.T) {
	tokens := scanAll(t, "(){},.-+;*!!====<><=>=")
	want := []TokenType{
		LPAREN, RPAREN, LBRACE, RBRACE, COMMA, DOT, MINUS, PLUS, SEMI, STAR,
		BANG, BANG_EQUAL, EQUAL_EQUAL, EQUAL, LESS, GREATER, LESS_EQUAL, GREATER_EQUAL, EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Type, tt)
		}
	}
}

func TestScanTokensKeywordsAndIdentifiers(t *testing.T) {
	cases := []struct {
		lexeme string
		want   TokenType
	}{
		{"and", AND}, {"class", CLASS}, {"else", ELSE}, {"false", FALSE},
		{"fun", FUN}, {"for", FOR}, {"if", IF}, {"nil", NIL}, {"or", OR},
		{"print", PRINT}, {"return", RETURN}, {"super", SUPER}, {"this", THIS},
		{"true", TRUE}, {"var", VAR}, {"while", WHILE}, {"counter", IDENT},
		{"_leading", IDENT},
	}
	for _, c := range cases {
		t.Run(c.lexeme, func(t *testing.T) {
			tokens := scanAll(t, c.lexeme)
			if tokens[0].Type != c.want {
				t.Errorf("got %s, want %s", tokens[0].Type, c.want)
			}
		})
	}
}

func TestScanTokensNumberLiterals(t *testing.T) {
	tokens := scanAll(t, "123 45.67")
	if tokens[0].Literal.(float64) != 123 {
		t.Errorf("got %v, want 123", tokens[0].Literal)
	}
	if tokens[1].Literal.(float64) != 45.67 {
		t.Errorf("got %v, want 45.67", tokens[1].Literal)
	}
}

func TestScanTokensStringLiteral(t *testing.T) {
	tokens := scanAll(t, `"hello, world"`)
	if tokens[0].Type != STRING {
		t.Fatalf("got %s, want STRING", tokens[0].Type)
	}
	if tokens[0].Literal.(string) != "hello, world" {
		t.Errorf("got %q, want %q", tokens[0].Literal, "hello, world")
	}
}

func TestScanTokensUnicodeStringLiteral(t *testing.T) {
	tokens := scanAll(t, `"café ❤"`)
	if tokens[0].Type != STRING {
		t.Fatalf("got %s, want STRING", tokens[0].Type)
	}
}

func TestScanTokensUnterminatedString(t *testing.T) {
	_, err := New(`"unterminated`).ScanTokens()
	if err == nil {
		t.Fatal("expected an unterminated string error")
	}
	if err.Kind != ErrUnterminatedString {
		t.Errorf("got kind %v, want ErrUnterminatedString", err.Kind)
	}
}

func TestScanTokensUnexpectedCharacter(t *testing.T) {
	_, err := New("@").ScanTokens()
	if err == nil {
		t.Fatal("expected an unexpected-character error")
	}
	if err.Kind != ErrUnexpectedCharacter {
		t.Errorf("got kind %v, want ErrUnexpectedCharacter", err.Kind)
	}
}

func TestScanTokensLineCommentsAreSkipped(t *testing.T) {
	tokens := scanAll(t, "var x = 1; // a trailing comment\nvar y = 2;")
	var varCount int
	for _, tok := range tokens {
		if tok.Type == VAR {
			varCount++
		}
	}
	if varCount != 2 {
		t.Errorf("got %d var tokens, want 2", varCount)
	}
}

func TestScanTokensTracksLineNumbers(t *testing.T) {
	tokens := scanAll(t, "var x = 1;\nvar y = 2;")
	var secondVar Token
	found := 0
	for _, tok := range tokens {
		if tok.Type == VAR {
			found++
			if found == 2 {
				secondVar = tok
			}
		}
	}
	if secondVar.Pos.Line != 2 {
		t.Errorf("got line %d, want 2", secondVar.Pos.Line)
	}
}

func TestScanTokensEOFIsStable(t *testing.T) {
	l := New("")
	first, err := l.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := l.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Type != EOF || second.Type != EOF {
		t.Errorf("got %s, %s, want EOF, EOF", first.Type, second.Type)
	}
}
