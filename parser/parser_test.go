/*
File    : lox/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/loxlang/lox/ast"
	"github.com/loxlang/lox/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	tokens := lexer.NewLexer(src).Tokenize()
	program, errs := NewParser(tokens).Parse()
	require.Nil(t, errs, "unexpected parse errors: %v", errs)
	require.NotNil(t, program)
	return program
}

func parseErrors(t *testing.T, src string) []string {
	t.Helper()
	tokens := lexer.NewLexer(src).Tokenize()
	_, errs := NewParser(tokens).Parse()
	require.NotNil(t, errs, "expected parse errors")
	out := make([]string, len(errs.Errors))
	for i, e := range errs.Errors {
		out[i] = e.Error()
	}
	return out
}

func TestParser_Parse_NumberExpression(t *testing.T) {
	program := parse(t, "1;")
	require.Len(t, program.Statements, 1)
	exprStmt, ok := program.Statements[0].(*ast.Expression)
	require.True(t, ok)
	lit, ok := exprStmt.Expression.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, 1.0, lit.Value)
}

func TestParser_Parse_BinaryPrecedence(t *testing.T) {
	// 1 + 2 * 3 parses as 1 + (2 * 3)
	program := parse(t, "1 + 2 * 3;")
	exprStmt := program.Statements[0].(*ast.Expression)
	add, ok := exprStmt.Expression.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.PLUS, add.Operator.Type)
	mul, ok := add.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.STAR, mul.Operator.Type)
}

func TestParser_Parse_VarDeclaration(t *testing.T) {
	program := parse(t, "var x = 10;")
	varStmt, ok := program.Statements[0].(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "x", varStmt.Name.Lexeme)
	lit := varStmt.Initializer.(*ast.Literal)
	assert.Equal(t, 10.0, lit.Value)
}

func TestParser_Parse_VarDeclarationDefaultsToNil(t *testing.T) {
	program := parse(t, "var x;")
	varStmt := program.Statements[0].(*ast.Var)
	lit := varStmt.Initializer.(*ast.Literal)
	assert.Nil(t, lit.Value)
}

func TestParser_Parse_Assignment(t *testing.T) {
	program := parse(t, "x = 5;")
	exprStmt := program.Statements[0].(*ast.Expression)
	assign, ok := exprStmt.Expression.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name.Lexeme)
}

func TestParser_Parse_AssignmentToGetProducesSet(t *testing.T) {
	program := parse(t, "a.b = 5;")
	exprStmt := program.Statements[0].(*ast.Expression)
	set, ok := exprStmt.Expression.(*ast.Set)
	require.True(t, ok)
	assert.Equal(t, "b", set.Name.Lexeme)
}

func TestParser_Parse_InvalidAssignmentTargetIsNonFatal(t *testing.T) {
	// "Invalid assignment target." is recorded but parsing continues
	//.
	errs := parseErrors(t, "1 = 2;")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Invalid assignment target.")
}

func TestParser_Parse_ForDesugarsToWhile(t *testing.T) {
	program := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	block, ok := program.Statements[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)
	_, ok = block.Statements[0].(*ast.Var)
	assert.True(t, ok)
	whileStmt, ok := block.Statements[1].(*ast.While)
	require.True(t, ok)
	bodyBlock, ok := whileStmt.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, bodyBlock.Statements, 2)
}

func TestParser_Parse_ClassWithSuperclass(t *testing.T) {
	program := parse(t, "class B < A { hi() { return 1; } }")
	class, ok := program.Statements[0].(*ast.Class)
	require.True(t, ok)
	require.NotNil(t, class.Superclass)
	assert.Equal(t, "A", class.Superclass.Name.Lexeme)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "hi", class.Methods[0].Name.Lexeme)
}

func TestParser_Parse_TooManyArguments(t *testing.T) {
	args := "1"
	for i := 0; i < 255; i++ {
		args += ",1"
	}
	errs := parseErrors(t, "f("+args+");")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Can't have more than 255 arguments.")
}

func TestParser_Parse_UnterminatedStatementSynchronizes(t *testing.T) {
	// The missing ';' after the first statement and the unterminated
	// string in the second are both reported: parsing synchronizes after
	// the first error instead of stopping.
	errs := parseErrors(t, "var x = 1\nvar y = \"unterminated;")
	assert.NotEmpty(t, errs)
}

func TestParser_Parse_MissingClosingParenAtEOF(t *testing.T) {
	errs := parseErrors(t, "print (1;")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Expect ')' after expression.")
}
