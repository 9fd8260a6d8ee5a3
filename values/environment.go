/*
File    : lox/values/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package values holds the runtime representation of Lox data: the
// Environment chain variables live in, and the callable/class/instance types
// the evaluator produces and consumes. Adapted from a scope/scope.go
// chain-of-maps design, trimmed to the single Variables map Lox needs (no
// const/let type tracking) and fixed to close over its parent by reference
// rather than by a Scope.Copy() snapshot, which would break Lox's
// shared-mutation closure semantics.
package values


// Environment is one lexical frame: a flat map of bindings plus a pointer to
// the enclosing frame, forming a chain walked on lookup/assignment.
type Environment struct {
	Variables map[string]interface{}
	Enclosing *Environment
}

// NewEnvironment creates a frame enclosed by parent, or a root frame when
// parent is nil.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		Variables: make(map[string]interface{}),
		Enclosing: parent,
	}
}

// Define binds name to value in this frame, overwriting any existing binding
// -- a global may be redeclared; the resolver rejects a duplicate
// declaration in a local scope before evaluation.
func (e *Environment) Define(name string, value interface{}) {
	e.Variables[name] = value
}

// Get looks up name starting at this frame and walking Enclosing links
// outward. The ok result is false if name is bound nowhere in the chain.
func (e *Environment) Get(name string) (interface{}, bool) {
	for env := e; env != nil; env = env.Enclosing {
		if v, ok := env.Variables[name]; ok {
			return v, ok
		}
	}
	return nil, false
}

// Assign walks the chain to the frame that already binds name and mutates
// the binding there, leaving every other frame untouched. It reports whether
// such a frame was found.
func (e *Environment) Assign(name string, value interface{}) bool {
	for env := e; env != nil; env = env.Enclosing {
		if _, ok := env.Variables[name]; ok {
			env.Variables[name] = value
			return true
		}
	}
	return false
}

// ancestor walks exactly depth Enclosing links out from e.
func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt reads name from the frame exactly depth hops out from e, the fast
// path used once the resolver has stamped a non-negative Depth on a
// Variable/This/Super node.
func (e *Environment) GetAt(depth int, name string) interface{} {
	return e.ancestor(depth).Variables[name]
}

// AssignAt mutates name in the frame exactly depth hops out from e.
func (e *Environment) AssignAt(depth int, name string, value interface{}) {
	e.ancestor(depth).Variables[name] = value
}
