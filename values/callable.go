/*
File    : lox/values/callable.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import (
	"fmt"

	"github.com/loxlang/lox/ast"
	"github.com/loxlang/lox/lerrors"
	"github.com/loxlang/lox/lexer"
)

// Interpreter is the one evaluator capability a Callable needs: run a
// function body against a fresh frame and report its return value, if any.
// Declaring it here (rather than importing package eval, which imports
// values for Environment) breaks what would otherwise be an import cycle.
type Interpreter struct {
	Exec func(body []ast.Stmt, env *Environment) (interface{}, error)
}

// Callable is anything Lox can invoke with "(args...)": user-defined
// functions and methods, classes (as constructors), and natives like clock.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []interface{}) (interface{}, error)
	String() string
}

// NativeFunction wraps a Go function as a Lox-callable builtin.
type NativeFunction struct {
	Name string
	Ar   int
	Fn   func(args []interface{}) (interface{}, error)
}

func (n *NativeFunction) Arity() int { return n.Ar }

func (n *NativeFunction) Call(_ *Interpreter, args []interface{}) (interface{}, error) {
	return n.Fn(args)
}

func (n *NativeFunction) String() string { return "<native fn>" }

// Function is a user-defined function or method: its declaration plus the
// environment it closed over at definition time. Capturing Closure directly
// (never copied) is what gives Lox closures shared-mutation semantics.
type Function struct {
	Declaration   *ast.Function
	Closure       *Environment
	IsInitializer bool
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

func (f *Function) Call(interp *Interpreter, args []interface{}) (interface{}, error) {
	env := NewEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}
	result, err := interp.Exec(f.Declaration.Body, env)
	if err != nil {
		return nil, err
	}
	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return result, nil
}

func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme) }

// Bind returns a copy of f whose closure is a new frame with "this" set to
// instance, so method bodies can reference it.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// Class is a Lox class: its method table and an optional superclass to
// search when a method isn't found locally.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// FindMethod looks up name in this class's own methods, then its
// superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of "init" if defined, else 0 (a bare "Class()" call).
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance, running "init" against it if present.
func (c *Class) Call(interp *Interpreter, args []interface{}) (interface{}, error) {
	instance := &Instance{Class: c, Fields: make(map[string]interface{})}
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string { return c.Name }

// Instance is a live object: a back-pointer to its class plus its own field
// table, checked before the method table on property reads.
type Instance struct {
	Class  *Class
	Fields map[string]interface{}
}

func (i *Instance) String() string { return fmt.Sprintf("%s instance", i.Class.Name) }

// Get reads a property: fields first, then a bound method. Returns a
// RuntimeError positioned at name if neither exists.
func (i *Instance) Get(name lexer.Token) (interface{}, error) {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if m, ok := i.Class.FindMethod(name.Lexeme); ok {
		return m.Bind(i), nil
	}
	return nil, lerrors.NewRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

// Set writes a field unconditionally -- Lox instances are open, any property
// name may be assigned at any time.
func (i *Instance) Set(name lexer.Token, value interface{}) {
	i.Fields[name.Lexeme] = value
}
