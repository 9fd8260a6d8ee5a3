/*
File    : lox/eval/run.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"errors"

	"github.com/loxlang/lox/ast"
)

// errStackOverflow signals that executeFunctionBody hit maxCallDepth. It
// never escapes package eval: the Call expression handler that triggered the
// invocation rewraps it as a positioned lerrors.RuntimeError ("Stack
// overflow.") before returning, since executeFunctionBody itself has no
// token to position the error at.
var errStackOverflow = errors.New("stack overflow")

// Run executes every top-level statement of program in order against the
// interpreter's global frame, stopping at the first runtime error.
func (in *Interpreter) Run(program *ast.Program) error {
	for _, stmt := range program.Statements {
		if _, _, err := in.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Eval evaluates a single expression against the current frame -- used by
// the REPL to echo the value of a bare expression typed at the prompt
// without requiring a trailing "print".
func (in *Interpreter) Eval(expr ast.Expr) (interface{}, error) {
	return in.evalExpr(expr)
}

// Stringify renders v the same way a Print statement would, for callers
// (the REPL) that need to echo a value outside of executing a Print node.
func (in *Interpreter) Stringify(v interface{}) string {
	return stringify(v)
}
