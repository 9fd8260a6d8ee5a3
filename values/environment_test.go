/*
File    : lox/values/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", 1.0)
	v, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestEnvironment_GetWalksToEnclosing(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", "outer")
	inner := NewEnvironment(outer)
	v, ok := inner.Get("x")
	require.True(t, ok)
	assert.Equal(t, "outer", v)
}

func TestEnvironment_GetMissingReportsNotFound(t *testing.T) {
	env := NewEnvironment(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestEnvironment_AssignMutatesDefiningFrame(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", 1.0)
	inner := NewEnvironment(outer)

	ok := inner.Assign("x", 2.0)
	require.True(t, ok)

	// The write landed on outer, not shadowed into inner.
	_, shadowed := inner.Variables["x"]
	assert.False(t, shadowed)
	v, _ := outer.Get("x")
	assert.Equal(t, 2.0, v)
}

func TestEnvironment_AssignUndeclaredFails(t *testing.T) {
	env := NewEnvironment(nil)
	ok := env.Assign("missing", 1.0)
	assert.False(t, ok)
}

func TestEnvironment_GetAtAndAssignAtWalkExactDepth(t *testing.T) {
	global := NewEnvironment(nil)
	middle := NewEnvironment(global)
	inner := NewEnvironment(middle)
	middle.Define("x", 1.0)

	assert.Equal(t, 1.0, inner.GetAt(1, "x"))
	inner.AssignAt(1, "x", 9.0)
	assert.Equal(t, 9.0, middle.Variables["x"])
}

func TestEnvironment_ClosuresShareByReference(t *testing.T) {
	// Two environments created from the same closure frame observe each
	// other's writes -- the behavior Scope.Copy() would break.
	shared := NewEnvironment(nil)
	shared.Define("count", 0.0)

	callA := NewEnvironment(shared)
	callB := NewEnvironment(shared)

	callA.Assign("count", 1.0)
	v, _ := callB.Get("count")
	assert.Equal(t, 1.0, v)
}
