/*
File    : lox/eval/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval is the tree-walking evaluator: it executes a resolved
// Program against a chain of values.Environment frames.
// Dispatch is a direct type-switch on ast.Expr/ast.Stmt rather than the
// Visitor/Accept pattern ast.Visitor defines.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/loxlang/lox/ast"
	"github.com/loxlang/lox/builtins"
	"github.com/loxlang/lox/values"
)

// maxCallDepth bounds recursion so a runaway Lox program fails with a
// "Stack overflow." runtime error instead of crashing the host process,
// without depending on a specific Go stack size.
const maxCallDepth = 255

// Interpreter holds all state live across a Run: the global frame, the
// current frame, output destination, and call depth.
type Interpreter struct {
	Globals *values.Environment
	env     *values.Environment
	Writer  io.Writer
	Reader  *bufio.Reader
	depth   int
}

// New creates an Interpreter with globals seeded from the builtins package
// and output/input defaulted to os.Stdout/os.Stdin.
func New() *Interpreter {
	globals := values.NewEnvironment(nil)
	for name, fn := range builtins.All() {
		globals.Define(name, fn)
	}
	return &Interpreter{
		Globals: globals,
		env:     globals,
		Writer:  os.Stdout,
		Reader:  bufio.NewReader(os.Stdin),
	}
}

// SetWriter redirects Print statement output, for test capture.
func (in *Interpreter) SetWriter(w io.Writer) {
	in.Writer = w
}

// callbackInterpreter adapts in to the values.Interpreter shape a
// values.Function needs to run its body, closing the import-cycle gap
// between package eval and package values: package values cannot import
// package eval (eval already imports values for Environment), so eval
// supplies itself as a narrow function-valued callback instead.
func (in *Interpreter) callbackInterpreter() *values.Interpreter {
	return &values.Interpreter{
		Exec: func(body []ast.Stmt, env *values.Environment) (interface{}, error) {
			return in.executeFunctionBody(body, env)
		},
	}
}

// executeFunctionBody runs a call frame: swap in env, execute every
// statement, and unwind on the first Return -- or on a propagating error.
// The caller (values.Function.Call) restores nothing; each call gets its
// own fresh frame that is discarded when this returns.
func (in *Interpreter) executeFunctionBody(body []ast.Stmt, env *values.Environment) (interface{}, error) {
	if in.depth >= maxCallDepth {
		return nil, errStackOverflow
	}
	in.depth++
	defer func() { in.depth-- }()

	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range body {
		value, returned, err := in.execStmt(stmt)
		if err != nil {
			return nil, err
		}
		if returned {
			return value, nil
		}
	}
	return nil, nil
}
