/*
File    : lox/lox/lox.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lox is the facade tying the pipeline stages together: lex, parse,
// resolve, evaluate. It owns the three-tier exit
// code taxonomy (64 usage, 65 static, 70 runtime) and the single shared
// *eval.Interpreter a REPL session keeps alive across lines so top-level
// variable/function/class declarations persist.
package lox

import (
	"fmt"
	"io"

	"github.com/loxlang/lox/ast"
	"github.com/loxlang/lox/eval"
	"github.com/loxlang/lox/lerrors"
	"github.com/loxlang/lox/lexer"
	"github.com/loxlang/lox/parser"
	"github.com/loxlang/lox/resolve"
)

// Exit codes, matching the sysexits.h-derived convention this interpreter follows:
// 64 for a usage error (handled by package main, not here), 65 for any static
// (syntax or resolve) error, 70 for a runtime error, 0 otherwise.
const (
	ExitUsage   = 64
	ExitStatic  = 65
	ExitRuntime = 70
)

// Runner holds one interpreter instance across any number of Run/RunLine
// calls, so a REPL session's global declarations accumulate exactly like the
// reference implementation's single persistent interpreter.
type Runner struct {
	interp *eval.Interpreter
}

// NewRunner creates a Runner writing Print output to w.
func NewRunner(w io.Writer) *Runner {
	interp := eval.New()
	interp.SetWriter(w)
	return &Runner{interp: interp}
}

// RunFile lexes, parses, resolves, and evaluates the full contents of
// source, returning the process exit code this convention prescribes and the
// first error encountered, if any.
func (r *Runner) RunFile(source string) (int, error) {
	program, staticErr := compile(source)
	if staticErr != nil {
		return ExitStatic, staticErr
	}
	if err := r.interp.Run(program); err != nil {
		return ExitRuntime, err
	}
	return 0, nil
}

// compile runs the lex/parse/resolve stages shared by RunFile and RunLine,
// returning a static error (syntax or resolve) bundle if either stage fails.
func compile(source string) (*ast.Program, error) {
	tokens := lexer.NewLexer(source).Tokenize()
	program, perrs := parser.NewParser(tokens).Parse()
	if perrs != nil {
		return nil, perrs
	}
	if rerrs := resolve.Resolve(program); rerrs != nil {
		return nil, rerrs
	}
	return program, nil
}

// soleExpressionStatement reports whether program is exactly one bare
// expression statement whose value is worth echoing: an assignment is
// excluded even though it is itself an expression, since "x = 1;" reads as a
// statement to a REPL user, not a value to print.
func soleExpressionStatement(program *ast.Program) (ast.Expr, bool) {
	if len(program.Statements) != 1 {
		return nil, false
	}
	exprStmt, ok := program.Statements[0].(*ast.Expression)
	if !ok {
		return nil, false
	}
	if _, isAssign := exprStmt.Expression.(*ast.Assign); isAssign {
		return nil, false
	}
	if _, isSet := exprStmt.Expression.(*ast.Set); isSet {
		return nil, false
	}
	return exprStmt.Expression, true
}

// RunLine evaluates one REPL input line against the Runner's persistent
// interpreter. A line that parses as a single bare expression statement has
// its value printed automatically, a convenience over requiring an explicit
// "print" for every line typed at the prompt. A line that fails to compile
// is retried once with a ';' appended, so the final ';' may be omitted; if
// the retry also fails, the original error is returned. Declarations and
// other statements run silently, same as in a file.
func (r *Runner) RunLine(source string) error {
	program, staticErr := compile(source)
	if staticErr != nil {
		retried, retryErr := compile(source + ";")
		if retryErr != nil {
			return staticErr
		}
		program = retried
	}

	if expr, ok := soleExpressionStatement(program); ok {
		v, err := r.interp.Eval(expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.interp.Writer, r.interp.Stringify(v))
		return nil
	}
	return r.interp.Run(program)
}

// ClassifyError maps a pipeline error to its exit code: a *lerrors.StaticErrors
// (from the parser or resolver) is 65, anything else that reached this far
// is a *lerrors.RuntimeError and is 70.
func ClassifyError(err error) int {
	if err == nil {
		return 0
	}
	if _, ok := err.(*lerrors.StaticErrors); ok {
		return ExitStatic
	}
	return ExitRuntime
}
