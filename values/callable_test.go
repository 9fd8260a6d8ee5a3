/*
File    : lox/values/callable_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import (
	"testing"

	"github.com/loxlang/lox/ast"
	"github.com/loxlang/lox/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoInterpreter(ret interface{}) *Interpreter {
	return &Interpreter{
		Exec: func(body []ast.Stmt, env *Environment) (interface{}, error) {
			return ret, nil
		},
	}
}

func TestNativeFunction_CallInvokesFn(t *testing.T) {
	called := false
	fn := &NativeFunction{Name: "probe", Ar: 0, Fn: func(args []interface{}) (interface{}, error) {
		called = true
		return 42.0, nil
	}}
	v, err := fn.Call(nil, nil)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, 42.0, v)
	assert.Equal(t, "<native fn>", fn.String())
}

func TestFunction_CallBindsParamsAndReturnsExecResult(t *testing.T) {
	decl := &ast.Function{
		Name:   lexer.Token{Type: lexer.IDENTIFIER, Lexeme: "add"},
		Params: []lexer.Token{{Type: lexer.IDENTIFIER, Lexeme: "a"}, {Type: lexer.IDENTIFIER, Lexeme: "b"}},
	}
	closure := NewEnvironment(nil)
	fn := &Function{Declaration: decl, Closure: closure}

	var seenA, seenB interface{}
	interp := &Interpreter{
		Exec: func(body []ast.Stmt, env *Environment) (interface{}, error) {
			seenA, _ = env.Get("a")
			seenB, _ = env.Get("b")
			return 3.0, nil
		},
	}

	result, err := fn.Call(interp, []interface{}{1.0, 2.0})
	require.NoError(t, err)
	assert.Equal(t, 3.0, result)
	assert.Equal(t, 1.0, seenA)
	assert.Equal(t, 2.0, seenB)
	assert.Equal(t, "<fn add>", fn.String())
}

func TestFunction_InitializerAlwaysReturnsThis(t *testing.T) {
	decl := &ast.Function{Name: lexer.Token{Lexeme: "init"}}
	closure := NewEnvironment(nil)
	fn := &Function{Declaration: decl, Closure: closure, IsInitializer: true}
	instance := &Instance{Class: &Class{Name: "A"}, Fields: map[string]interface{}{}}
	bound := fn.Bind(instance)

	interp := echoInterpreter("ignored return value")
	result, err := bound.Call(interp, nil)
	require.NoError(t, err)
	assert.Same(t, instance, result)
}

func TestClass_FindMethodSearchesSuperclass(t *testing.T) {
	parentMethod := &Function{Declaration: &ast.Function{Name: lexer.Token{Lexeme: "greet"}}}
	parent := &Class{Name: "Animal", Methods: map[string]*Function{"greet": parentMethod}}
	child := &Class{Name: "Dog", Superclass: parent, Methods: map[string]*Function{}}

	found, ok := child.FindMethod("greet")
	require.True(t, ok)
	assert.Same(t, parentMethod, found)
}

func TestClass_ArityMatchesInit(t *testing.T) {
	init := &Function{Declaration: &ast.Function{
		Name:   lexer.Token{Lexeme: "init"},
		Params: []lexer.Token{{Lexeme: "x"}},
	}}
	class := &Class{Name: "A", Methods: map[string]*Function{"init": init}}
	assert.Equal(t, 1, class.Arity())

	empty := &Class{Name: "B", Methods: map[string]*Function{}}
	assert.Equal(t, 0, empty.Arity())
}

func TestClass_CallConstructsAndRunsInit(t *testing.T) {
	var sawInstance *Instance
	decl := &ast.Function{Name: lexer.Token{Lexeme: "init"}, Params: []lexer.Token{{Lexeme: "x"}}}
	initMethod := &Function{Declaration: decl}
	class := &Class{Name: "Point", Methods: map[string]*Function{"init": initMethod}}

	interp := &Interpreter{
		Exec: func(body []ast.Stmt, env *Environment) (interface{}, error) {
			this, _ := env.Get("this")
			sawInstance = this.(*Instance)
			x, _ := env.Get("x")
			sawInstance.Fields["x"] = x
			return nil, nil
		},
	}

	result, err := class.Call(interp, []interface{}{7.0})
	require.NoError(t, err)
	instance := result.(*Instance)
	assert.Same(t, instance, sawInstance)
	assert.Equal(t, 7.0, instance.Fields["x"])
}

func TestInstance_GetReturnsFieldBeforeMethod(t *testing.T) {
	class := &Class{Name: "A", Methods: map[string]*Function{}}
	instance := &Instance{Class: class, Fields: map[string]interface{}{"x": 5.0}}
	v, err := instance.Get(lexer.Token{Lexeme: "x"})
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestInstance_GetBindsMethod(t *testing.T) {
	method := &Function{Declaration: &ast.Function{Name: lexer.Token{Lexeme: "hi"}}, Closure: NewEnvironment(nil)}
	class := &Class{Name: "A", Methods: map[string]*Function{"hi": method}}
	instance := &Instance{Class: class, Fields: map[string]interface{}{}}

	v, err := instance.Get(lexer.Token{Lexeme: "hi"})
	require.NoError(t, err)
	bound := v.(*Function)
	this, ok := bound.Closure.Get("this")
	require.True(t, ok)
	assert.Same(t, instance, this)
}

func TestInstance_GetUndefinedPropertyErrors(t *testing.T) {
	class := &Class{Name: "A", Methods: map[string]*Function{}}
	instance := &Instance{Class: class, Fields: map[string]interface{}{}}
	_, err := instance.Get(lexer.Token{Lexeme: "missing", Line: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined property 'missing'.")
}

func TestInstance_SetWritesFieldUnconditionally(t *testing.T) {
	class := &Class{Name: "A", Methods: map[string]*Function{}}
	instance := &Instance{Class: class, Fields: map[string]interface{}{}}
	instance.Set(lexer.Token{Lexeme: "y"}, 9.0)
	assert.Equal(t, 9.0, instance.Fields["y"])
}
