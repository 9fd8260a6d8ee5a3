/*
File    : lox/resolve/resolve.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolve performs the static pass between parsing and evaluation:
// it walks the tree once, computes the scope-depth of every variable
// reference, and rejects a handful of programs that are syntactically valid
// but never legal. It stamps Depth directly onto the Variable, Assign, This,
// and Super nodes it visits, mutating the tree produced by the parser in
// place before it reaches the evaluator.
//
// The scope stack here tracks only non-global, local scopes: -1 means
// "unresolved, look in globals" rather than counting hops all the way out to
// a global frame that is itself just another scope. A name that bottoms out
// the local stack keeps its Variable/Assign/This/Super's Depth at -1, and the
// evaluator resolves it dynamically against the interpreter's dedicated
// global environment instead of hopping there.
package resolve

import (
	"github.com/loxlang/lox/ast"
	"github.com/loxlang/lox/lerrors"
	"github.com/loxlang/lox/lexer"
)

type functionContext int

const (
	noFunction functionContext = iota
	inFunction
	inMethod
	inInitializer
)

type classContext int

const (
	noClass classContext = iota
	inClass
	inSubclass
)

// binding tracks whether a name has merely been declared (visible for
// shadowing checks but not yet safe to read, per the own-initializer check)
// or fully defined.
type binding struct {
	declared bool
	defined  bool
}

// Resolver walks a Program exactly once, using a chain-of-maps style
// adapted from a single name->value map to a stack of name->binding maps
// since the resolver needs no runtime values, only declared/defined state.
type Resolver struct {
	scopes          []map[string]*binding
	currentFunction functionContext
	currentClass    classContext
	errors          lerrors.StaticErrors
}

// New creates a Resolver ready to walk a freshly parsed Program.
func New() *Resolver {
	return &Resolver{}
}

// Resolve walks program, stamping Depth fields in place. It returns a
// non-nil *lerrors.StaticErrors if any static error was found, in which case
// the tree must not be evaluated.
func Resolve(program *ast.Program) *lerrors.StaticErrors {
	r := New()
	r.resolveStmts(program.Statements)
	if r.errors.HasErrors() {
		return &r.errors
	}
	return nil
}

func (r *Resolver) push() {
	r.scopes = append(r.scopes, map[string]*binding{})
}

func (r *Resolver) pop() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) peek() map[string]*binding {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare introduces name in the innermost scope as not-yet-defined,
// reporting a static error if that scope already binds the same name.
// Declaring at global scope is a deliberate no-op: there is no enclosing
// scope to shadow, and later references resolve dynamically at -1
// regardless.
func (r *Resolver) declare(name lexer.Token) {
	scope := r.peek()
	if scope == nil {
		return
	}
	if _, ok := scope[name.Lexeme]; ok {
		r.errors.Add(name, "Already a variable with this name in this scope.")
		return
	}
	scope[name.Lexeme] = &binding{declared: true}
}

func (r *Resolver) define(name string) {
	scope := r.peek()
	if scope == nil {
		return
	}
	if b, ok := scope[name]; ok {
		b.defined = true
	} else {
		scope[name] = &binding{declared: true, defined: true}
	}
}

// resolveLocal searches the local scope stack innermost-out for name and
// sets *depth to the number of enclosing-hops it took to find it. If name is
// never found locally, *depth is left at its -1 sentinel: a genuinely global
// reference, or a forward reference the evaluator must resolve dynamically.
func (r *Resolver) resolveLocal(name string, depth *int) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			*depth = len(r.scopes) - 1 - i
			return
		}
	}
	*depth = -1
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.Expression:
		r.resolveExpr(n.Expression)
	case *ast.Print:
		r.resolveExpr(n.Expression)
	case *ast.Var:
		r.declare(n.Name)
		r.resolveExpr(n.Initializer)
		r.define(n.Name.Lexeme)
	case *ast.Block:
		r.push()
		r.resolveStmts(n.Statements)
		r.pop()
	case *ast.If:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.ThenBranch)
		if n.ElseBranch != nil {
			r.resolveStmt(n.ElseBranch)
		}
	case *ast.While:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Body)
	case *ast.Function:
		r.declare(n.Name)
		r.define(n.Name.Lexeme)
		r.resolveFunction(n, inFunction)
	case *ast.Return:
		if r.currentFunction == noFunction {
			r.errors.Add(n.Keyword, "Can't return from top-level code.")
		}
		if n.Value != nil {
			if r.currentFunction == inInitializer {
				r.errors.Add(n.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(n.Value)
		}
	case *ast.Class:
		r.resolveClass(n)
	default:
		panic("resolve: unhandled statement node")
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, ctx functionContext) {
	enclosingFunction := r.currentFunction
	r.currentFunction = ctx
	r.push()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param.Lexeme)
	}
	r.resolveStmts(fn.Body)
	r.pop()
	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveClass(stmt *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = inClass

	r.declare(stmt.Name)
	r.define(stmt.Name.Lexeme)

	if stmt.Superclass != nil {
		if stmt.Superclass.Name.Lexeme == stmt.Name.Lexeme {
			r.errors.Add(stmt.Superclass.Name, "A class can't inherit from itself.")
		} else {
			r.currentClass = inSubclass
			r.resolveExpr(stmt.Superclass)
		}
		r.push()
		r.peek()["super"] = &binding{declared: true, defined: true}
	}

	r.push()
	r.peek()["this"] = &binding{declared: true, defined: true}

	for _, method := range stmt.Methods {
		ctx := inMethod
		if method.Name.Lexeme == "init" {
			ctx = inInitializer
		}
		r.resolveFunction(method, ctx)
	}

	r.pop() // "this" scope
	if stmt.Superclass != nil {
		r.pop() // "super" scope
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch n := expr.(type) {
	case nil:
		return
	case *ast.Literal:
		return
	case *ast.Grouping:
		r.resolveExpr(n.Expression)
	case *ast.Unary:
		r.resolveExpr(n.Right)
	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *ast.Variable:
		if scope := r.peek(); scope != nil {
			if b, ok := scope[n.Name.Lexeme]; ok && b.declared && !b.defined {
				r.errors.Add(n.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(n.Name.Lexeme, &n.Depth)
	case *ast.Assign:
		r.resolveExpr(n.Value)
		r.resolveLocal(n.Name.Lexeme, &n.Depth)
	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, a := range n.Arguments {
			r.resolveExpr(a)
		}
	case *ast.Get:
		r.resolveExpr(n.Object)
	case *ast.Set:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Object)
	case *ast.This:
		if r.currentClass == noClass {
			r.errors.Add(n.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal("this", &n.Depth)
	case *ast.Super:
		switch r.currentClass {
		case noClass:
			r.errors.Add(n.Keyword, "Can't use 'super' outside of a class.")
			return
		case inClass:
			r.errors.Add(n.Keyword, "Can't use 'super' in a class with no superclass.")
			return
		}
		r.resolveLocal("super", &n.Depth)
	default:
		panic("resolve: unhandled expression node")
	}
}
