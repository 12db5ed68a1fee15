package interp

import "github.com/cwbudde/go-lox/internal/errors"

// Environment is one scope of the environment chain: a flat binding table
// plus a pointer to the enclosing scope. Closures capture a live
// *Environment, not a snapshot, so writes made after a function is created
// are still visible the next time it runs.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a top-level environment with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewChildEnvironment creates a scope nested directly inside enclosing.
func NewChildEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]Value), enclosing: enclosing}
}

// Define binds name in this scope, overwriting any existing binding of the
// same name in this same scope (redeclaration is caught earlier, by the
// resolver, for local scopes; the global scope allows it).
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get looks up name starting in this scope and walking outward. An unbound
// name at global scope is a runtime error, not a Go panic.
func (e *Environment) Get(name string) (Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, false
}

// Assign rebinds an already-declared name, walking outward, without
// introducing a new binding. Reports whether name was found.
func (e *Environment) Assign(name string, value Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return false
}

// ancestor walks exactly depth hops outward from e.
func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name from the environment depth hops outward, per the
// resolver's side table. The binding is assumed present: the resolver
// guarantees it was declared at exactly that depth.
func (e *Environment) GetAt(depth int, name string) Value {
	v, _ := e.ancestor(depth).values[name]
	return v
}

// AssignAt rebinds name in the environment depth hops outward.
func (e *Environment) AssignAt(depth int, name string, value Value) {
	e.ancestor(depth).values[name] = value
}

// Bindings returns this scope's own name → value table, not including any
// enclosing scope. Used by the CLI's --trace output; the evaluator itself
// never needs a flattened view.
func (e *Environment) Bindings() map[string]Value {
	return e.values
}

// globalUndefined builds the runtime error for a read of a name that is
// bound nowhere in the chain.
func globalUndefined(name string) *errors.SourceError {
	return errors.New(errors.UndefinedVariable, "undefined variable '"+name+"'")
}
