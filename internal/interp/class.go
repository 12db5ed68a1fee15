package interp

import "github.com/cwbudde/go-lox/internal/errors"

// Class is a runtime class value: a name, an optional superclass, and the
// methods declared directly on it. Method lookup walks the superclass
// chain the same way Instance.Get walks fields before methods.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (*Class) Type() ValueType  { return ClassType }
func (c *Class) String() string { return "class " + c.Name }

// FindMethod looks up name on c, then on c's superclass chain, returning
// the first match. A method found here is still unbound: callers that
// intend to invoke it on an instance must Bind it first.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the constructor's arity: that of "init" if the class (or an
// ancestor) declares one, zero otherwise.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance and, if the class declares an
// initializer, runs it bound to that instance before returning it.
func (c *Class) Call(ev *Evaluator, args []Value) (Value, *errors.SourceError) {
	instance := &Instance{class: c, fields: make(map[string]Value)}
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(ev, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a class instance: a reference to its class plus a flat,
// mutable field table. Fields shadow methods of the same name.
type Instance struct {
	class  *Class
	fields map[string]Value
}

func (i *Instance) Type() ValueType { return InstanceType }
func (i *Instance) String() string  { return "instance of class '" + i.class.Name + "'" }

// Get resolves a property access: a field, if one is set, otherwise a
// method bound to this instance.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.fields[name]; ok {
		return v, true
	}
	if m, ok := i.class.FindMethod(name); ok {
		return m.Bind(i), true
	}
	return nil, false
}

// Set assigns a field unconditionally: fields need no prior declaration.
func (i *Instance) Set(name string, value Value) {
	i.fields[name] = value
}
