/*
File    : lox/lox/lox_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_RunFile_ExecutesProgram(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&buf)
	code, err := r.RunFile(`print "hello";`)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello\n", buf.String())
}

func TestRunner_RunFile_SyntaxErrorExitsStatic(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&buf)
	code, err := r.RunFile(`var = 1;`)
	require.Error(t, err)
	assert.Equal(t, ExitStatic, code)
}

func TestRunner_RunFile_ResolveErrorExitsStatic(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&buf)
	code, err := r.RunFile(`return 1;`)
	require.Error(t, err)
	assert.Equal(t, ExitStatic, code)
}

func TestRunner_RunFile_RuntimeErrorExitsRuntime(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&buf)
	code, err := r.RunFile(`print 1 + "a";`)
	require.Error(t, err)
	assert.Equal(t, ExitRuntime, code)
}

func TestRunner_RunLine_AutoPrintsBareExpression(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&buf)
	err := r.RunLine("1 + 2")
	require.NoError(t, err)
	assert.Equal(t, "3\n", buf.String())
}

func TestRunner_RunLine_DoesNotAutoPrintStatements(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&buf)
	err := r.RunLine("var x = 1;")
	require.NoError(t, err)
	assert.Equal(t, "", buf.String())
}

func TestRunner_RunLine_PersistsGlobalsAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&buf)
	require.NoError(t, r.RunLine("var x = 41;"))
	require.NoError(t, r.RunLine("x = x + 1;"))
	require.NoError(t, r.RunLine("x"))
	assert.Equal(t, "42\n", buf.String())
}

func TestRunner_RunLine_NilExpressionPrintsNilLiteral(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&buf)
	require.NoError(t, r.RunLine("var x;"))
	require.NoError(t, r.RunLine("x"))
	assert.Equal(t, "nil\n", buf.String())
}

func TestClassifyError_NilIsZero(t *testing.T) {
	assert.Equal(t, 0, ClassifyError(nil))
}
