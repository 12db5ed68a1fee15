// Package resolver performs a static lexical-scope analysis pass: a single
// walk over the AST that annotates every variable reference with the
// number of environment-chain hops between the scope it is read in and the
// scope that declares it. The evaluator consults this side table instead
// of re-deriving scoping rules at runtime, which is what lets closures and
// shadowing behave correctly without a full compilation step.
package resolver

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/lexer"
)

// functionKind tracks what kind of function body is currently being
// resolved, so `return` can be validated contextually.
type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
	fnInitializer
)

// classKind tracks whether resolution is currently inside a class body, so
// `this` can be rejected at the top level.
type classKind int

const (
	clsNone classKind = iota
	clsClass
)

// declState is the two-state marker for a name within a scope: declared but
// not yet defined (its initializer is still being resolved), or fully
// defined.
type declState bool

const (
	declared declState = false
	defined  declState = true
)

type scope map[string]declState

// Resolver walks a parsed program and builds the expression → depth side
// table the evaluator needs.
type Resolver struct {
	scopes   []scope
	fnKind   functionKind
	clsKind  classKind
	locals   map[ast.Expression]int
	errs     []*errors.SourceError
	source   string
	file     string
}

// New creates a Resolver over the given program source (used only to
// attach source context to error messages).
func New(source, file string) *Resolver {
	return &Resolver{
		locals: make(map[ast.Expression]int),
		source: source,
		file:   file,
	}
}

// Resolve walks every top-level statement of the program. The returned map
// is the side table; Errors() reports any scope violations found along the
// way.
func (r *Resolver) Resolve(program *ast.Program) map[ast.Expression]int {
	r.resolveStatements(program.Statements)
	return r.locals
}

// Errors returns every resolver error accumulated during Resolve.
func (r *Resolver) Errors() []*errors.SourceError { return r.errs }

func (r *Resolver) addError(pos lexer.Position, message string) {
	r.errs = append(r.errs, errors.At(errors.ResolverError, pos, message).WithSource(r.source, r.file))
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }

func (r *Resolver) endScope() { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) peekScope() scope {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare marks name as present but not yet initialized in the innermost
// scope. Re-declaring a name already present in that same scope is an
// error; shadowing a name from an outer scope is fine.
func (r *Resolver) declare(name lexer.Token) {
	sc := r.peekScope()
	if sc == nil {
		return
	}
	if _, ok := sc[name.Lexeme]; ok {
		r.addError(name.Pos, "already a variable with this name in this scope")
	}
	sc[name.Lexeme] = declared
}

func (r *Resolver) define(name lexer.Token) {
	sc := r.peekScope()
	if sc == nil {
		return
	}
	sc[name.Lexeme] = defined
}

// resolveLocal walks scopes from innermost to outermost looking for name,
// recording the hop distance for expr the first time it finds a match. A
// name found nowhere is left unresolved, so the evaluator treats it as
// global.
func (r *Resolver) resolveLocal(expr ast.Expression, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}
