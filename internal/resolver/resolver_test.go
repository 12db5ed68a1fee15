package resolver

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/parser"
)

func resolveSource(t *testing.T, source string) *Resolver {
	t.Helper()
	p, lexErr := parser.New(source, "<test>")
	if lexErr != nil {
		t.Fatalf("unexpected lex error: %v", lexErr)
	}
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	r := New(source, "<test>")
	r.Resolve(program)
	return r
}

func TestResolveRedeclarationInSameScope(t *testing.T) {
	r := resolveSource(t, `{ var a = 1; var a = 2; }`)
	if len(r.Errors()) == 0 {
		t.Fatal("expected a redeclaration error")
	}
}

func TestResolveShadowingAcrossScopesIsFine(t *testing.T) {
	r := resolveSource(t, `var a = 1; { var a = 2; }`)
	if len(r.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", r.Errors())
	}
}

func TestResolveSelfReferencingInitializerIsError(t *testing.T) {
	r := resolveSource(t, `{ var a = a; }`)
	if len(r.Errors()) == 0 {
		t.Fatal("expected a self-initializer error")
	}
}

func TestResolveTopLevelReturnIsError(t *testing.T) {
	r := resolveSource(t, `return 1;`)
	if len(r.Errors()) == 0 {
		t.Fatal("expected a top-level return error")
	}
}

func TestResolveReturnValueFromInitializerIsError(t *testing.T) {
	r := resolveSource(t, `class A { init() { return 1; } }`)
	if len(r.Errors()) == 0 {
		t.Fatal("expected an initializer-return-value error")
	}
}

func TestResolveBareReturnFromInitializerIsFine(t *testing.T) {
	r := resolveSource(t, `class A { init() { return; } }`)
	if len(r.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", r.Errors())
	}
}

func TestResolveSelfInheritingClassIsError(t *testing.T) {
	r := resolveSource(t, `class A < A {}`)
	if len(r.Errors()) == 0 {
		t.Fatal("expected a self-inheritance error")
	}
}

func TestResolveThisOutsideClassIsError(t *testing.T) {
	r := resolveSource(t, `print this;`)
	if len(r.Errors()) == 0 {
		t.Fatal("expected a this-outside-class error")
	}
}

func TestResolveThisInsideMethodIsFine(t *testing.T) {
	r := resolveSource(t, `class A { greet() { return this; } }`)
	if len(r.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", r.Errors())
	}
}

func TestResolveLocalsRecordsHopDistance(t *testing.T) {
	p, lexErr := parser.New(`{ var a = 1; { print a; } }`, "<test>")
	if lexErr != nil {
		t.Fatalf("unexpected lex error: %v", lexErr)
	}
	program := p.ParseProgram()
	r := New(`{ var a = 1; { print a; } }`, "<test>")
	locals := r.Resolve(program)
	if len(locals) != 1 {
		t.Fatalf("got %d resolved locals, want 1: %v", len(locals), locals)
	}
	for _, depth := range locals {
		if depth != 1 {
			t.Errorf("got depth %d, want 1", depth)
		}
	}
}
