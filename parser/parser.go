/*
File    : lox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser for Lox. It recovers
// from syntax errors by synchronizing to the next plausible declaration
// boundary so a single run reports as many errors as possible, then fails
// the whole parse with a lerrors.StaticErrors bundle.
package parser

import (
	"github.com/loxlang/lox/ast"
	"github.com/loxlang/lox/lerrors"
	"github.com/loxlang/lox/lexer"
)

// Parser walks a flattened token slice with a single cursor.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  lerrors.StaticErrors
}

// NewParser builds a Parser over tokens, first filtering out every INVALID
// token while recording a "Unexpected character." syntax error for each.
// This happens once, up front, so the rest of the grammar never has to
// special-case INVALID.
func NewParser(tokens []lexer.Token) *Parser {
	p := &Parser{}
	filtered := make([]lexer.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type == lexer.INVALID_TYPE {
			p.errors.Add(tok, "Unexpected character.")
			continue
		}
		filtered = append(filtered, tok)
	}
	p.tokens = filtered
	return p
}

// Parse runs the full program grammar and returns the resulting Program. If
// any syntax errors were collected (from INVALID filtering or during
// parsing), it returns a non-nil *lerrors.StaticErrors and a nil Program
// that must not be evaluated.
func (p *Parser) Parse() (*ast.Program, *lerrors.StaticErrors) {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}
	if p.errors.HasErrors() {
		return nil, &p.errors
	}
	return &ast.Program{Statements: statements}, nil
}

// --- token cursor utilities ---------------------------------------------

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t lexer.TokenType) bool {
	return !p.isAtEnd() && p.peek().Type == t
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF_TYPE
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

// consume advances past an expected token type or records a syntax error at
// the current token.
func (p *Parser) consume(t lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.error(p.peek(), message)
}

// error records a syntax error at tok and returns it so call sites can use
// it as a Go error to unwind the current production.
func (p *Parser) error(tok lexer.Token, message string) error {
	return p.errors.Add(tok, message)
}

// synchronize discards tokens until a statement boundary is plausible:
// right after a consumed ';', or right before a token that starts a new
// declaration.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS_KEY, lexer.FUN_KEY, lexer.VAR_KEY, lexer.FOR_KEY,
			lexer.IF_KEY, lexer.WHILE_KEY, lexer.PRINT_KEY, lexer.RETURN_KEY:
			return
		}
		p.advance()
	}
}
