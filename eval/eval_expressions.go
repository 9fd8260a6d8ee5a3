/*
File    : lox/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/loxlang/lox/ast"
	"github.com/loxlang/lox/lerrors"
	"github.com/loxlang/lox/lexer"
	"github.com/loxlang/lox/values"
)

// evalExpr evaluates expr against the current frame, returning a Go value
// drawn from Lox's runtime vocabulary: nil, bool, float64, string,
// values.Callable, or *values.Instance.
func (in *Interpreter) evalExpr(expr ast.Expr) (interface{}, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return n.Value, nil

	case *ast.Grouping:
		return in.evalExpr(n.Expression)

	case *ast.Unary:
		return in.evalUnary(n)

	case *ast.Binary:
		return in.evalBinary(n)

	case *ast.Logical:
		return in.evalLogical(n)

	case *ast.Variable:
		return in.lookupVariable(n.Name, n.Depth)

	case *ast.Assign:
		return in.evalAssign(n)

	case *ast.Call:
		return in.evalCall(n)

	case *ast.Get:
		return in.evalGet(n)

	case *ast.Set:
		return in.evalSet(n)

	case *ast.This:
		return in.lookupVariable(n.Keyword, n.Depth)

	case *ast.Super:
		return in.evalSuper(n)

	default:
		panic("eval: unhandled expression node")
	}
}

// lookupVariable reads name using the resolver's verdict: depth >= 0 walks
// exactly that many frames from the current one; the -1 sentinel means the
// resolver never found a local binding, so the lookup goes straight to
// Globals regardless of how deeply nested the reference is.
func (in *Interpreter) lookupVariable(name lexer.Token, depth int) (interface{}, error) {
	if depth >= 0 {
		return in.env.GetAt(depth, name.Lexeme), nil
	}
	if v, ok := in.Globals.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, lerrors.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

func (in *Interpreter) evalUnary(n *ast.Unary) (interface{}, error) {
	right, err := in.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Operator.Type {
	case lexer.MINUS:
		f, err := asNumberOperand(n.Operator, right)
		if err != nil {
			return nil, err
		}
		return -f, nil
	case lexer.BANG:
		return !isTruthy(right), nil
	}
	panic("eval: unhandled unary operator")
}

func (in *Interpreter) evalLogical(n *ast.Logical) (interface{}, error) {
	left, err := in.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Operator.Type == lexer.OR_KEY {
		if isTruthy(left) {
			return left, nil
		}
	} else { // and
		if !isTruthy(left) {
			return left, nil
		}
	}
	return in.evalExpr(n.Right)
}

func (in *Interpreter) evalAssign(n *ast.Assign) (interface{}, error) {
	value, err := in.evalExpr(n.Value)
	if err != nil {
		return nil, err
	}
	if n.Depth >= 0 {
		in.env.AssignAt(n.Depth, n.Name.Lexeme, value)
		return value, nil
	}
	if in.Globals.Assign(n.Name.Lexeme, value) {
		return value, nil
	}
	return nil, lerrors.NewRuntimeError(n.Name, "Undefined variable '%s'.", n.Name.Lexeme)
}

func (in *Interpreter) evalCall(n *ast.Call) (interface{}, error) {
	callee, err := in.evalExpr(n.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]interface{}, len(n.Arguments))
	for i, a := range n.Arguments {
		v, err := in.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(values.Callable)
	if !ok {
		return nil, lerrors.NewRuntimeError(n.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, lerrors.NewRuntimeError(n.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	result, err := callable.Call(in.callbackInterpreter(), args)
	if err == errStackOverflow {
		return nil, lerrors.NewRuntimeError(n.Paren, "Stack overflow.")
	}
	return result, err
}

func (in *Interpreter) evalGet(n *ast.Get) (interface{}, error) {
	object, err := in.evalExpr(n.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*values.Instance)
	if !ok {
		return nil, lerrors.NewRuntimeError(n.Name, "Only instances have properties.")
	}
	return instance.Get(n.Name)
}

func (in *Interpreter) evalSet(n *ast.Set) (interface{}, error) {
	object, err := in.evalExpr(n.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*values.Instance)
	if !ok {
		return nil, lerrors.NewRuntimeError(n.Name, "Only instances have fields.")
	}
	value, err := in.evalExpr(n.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(n.Name, value)
	return value, nil
}

// evalSuper resolves `super.method` statically: Depth locates the "super"
// frame the defining class pushed, and "this" always sits exactly one frame
// closer in, regardless of the runtime type of
// the receiving instance.
func (in *Interpreter) evalSuper(n *ast.Super) (interface{}, error) {
	superclass := in.env.GetAt(n.Depth, "super").(*values.Class)
	instance := in.env.GetAt(n.Depth-1, "this").(*values.Instance)

	method, ok := superclass.FindMethod(n.Method.Lexeme)
	if !ok {
		return nil, lerrors.NewRuntimeError(n.Method, "Undefined property '%s'.", n.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
