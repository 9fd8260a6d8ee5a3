/*
File    : lox/lerrors/lerrors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lerrors models the three disjoint error kinds of the interpreter
// pipeline: syntax errors (lexer/parser), static errors (resolver), and
// runtime errors (evaluator). Each carries the line and position it was
// raised at and produces the exact wire format conformance tests compare
// against.
package lerrors

import (
	"fmt"
	"strings"

	"github.com/loxlang/lox/lexer"
)

// SyntaxError is a single lexer- or parser-detected error tied to a token.
// Its Error() string matches the convention: "[line N] Error at '<lexeme>': <msg>"
// or, for the EOF token, "[line N] Error at end: <msg>".
type SyntaxError struct {
	Line    int
	Where   string // "at 'lexeme'" or "at end"
	Message string
}

// NewSyntaxError builds a SyntaxError positioned at tok, choosing the "at
// end" wording when tok is the EOF token.
func NewSyntaxError(tok lexer.Token, message string) *SyntaxError {
	where := fmt.Sprintf("at '%s'", tok.Lexeme)
	if tok.Type == lexer.EOF_TYPE {
		where = "at end"
	}
	return &SyntaxError{Line: tok.Line, Where: where, Message: message}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] Error %s: %s", e.Line, e.Where, e.Message)
}

// StaticErrors bundles every syntax/static error collected over one parse or
// resolve pass. Both the parser (recovering via synchronization) and the
// resolver (which never recovers, only keeps walking) accumulate into this
// same bundle shape, printed one per line.
type StaticErrors struct {
	Errors []*SyntaxError
}

func (e *StaticErrors) Error() string {
	lines := make([]string, len(e.Errors))
	for i, se := range e.Errors {
		lines[i] = se.Error()
	}
	return strings.Join(lines, "\n")
}

// HasErrors reports whether any errors were collected.
func (e *StaticErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Add appends a SyntaxError built from tok and message to the bundle.
func (e *StaticErrors) Add(tok lexer.Token, message string) *SyntaxError {
	se := NewSyntaxError(tok, message)
	e.Errors = append(e.Errors, se)
	return se
}

// RuntimeError is an evaluator-detected failure: type mismatches, undefined
// properties, arity mismatches, stack overflow. Its Error() string matches
// The format is: "[line N] Runtime error at '<lexeme>': <msg>".
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

// NewRuntimeError builds a RuntimeError reporting at tok's line and lexeme.
func NewRuntimeError(tok lexer.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Runtime error at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Message)
}
