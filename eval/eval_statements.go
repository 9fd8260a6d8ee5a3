/*
File    : lox/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/loxlang/lox/ast"
	"github.com/loxlang/lox/lerrors"
	"github.com/loxlang/lox/values"
)

// execStmt runs one statement against the current frame. The (value,
// returned) pair propagates a Return up through nested blocks/if/while
// without panic/recover: returned is true only for the Return statement
// itself and every ancestor block/loop that re-propagates it unexamined.
func (in *Interpreter) execStmt(stmt ast.Stmt) (interface{}, bool, error) {
	switch n := stmt.(type) {
	case *ast.Expression:
		_, err := in.evalExpr(n.Expression)
		return nil, false, err

	case *ast.Print:
		v, err := in.evalExpr(n.Expression)
		if err != nil {
			return nil, false, err
		}
		fmt.Fprintln(in.Writer, stringify(v))
		return nil, false, nil

	case *ast.Var:
		v, err := in.evalExpr(n.Initializer)
		if err != nil {
			return nil, false, err
		}
		in.env.Define(n.Name.Lexeme, v)
		return nil, false, nil

	case *ast.Block:
		return in.execBlock(n.Statements, values.NewEnvironment(in.env))

	case *ast.If:
		cond, err := in.evalExpr(n.Condition)
		if err != nil {
			return nil, false, err
		}
		if isTruthy(cond) {
			return in.execStmt(n.ThenBranch)
		}
		if n.ElseBranch != nil {
			return in.execStmt(n.ElseBranch)
		}
		return nil, false, nil

	case *ast.While:
		for {
			cond, err := in.evalExpr(n.Condition)
			if err != nil {
				return nil, false, err
			}
			if !isTruthy(cond) {
				return nil, false, nil
			}
			value, returned, err := in.execStmt(n.Body)
			if err != nil || returned {
				return value, returned, err
			}
		}

	case *ast.Function:
		fn := &values.Function{Declaration: n, Closure: in.env}
		in.env.Define(n.Name.Lexeme, fn)
		return nil, false, nil

	case *ast.Return:
		var value interface{}
		if n.Value != nil {
			v, err := in.evalExpr(n.Value)
			if err != nil {
				return nil, false, err
			}
			value = v
		}
		return value, true, nil

	case *ast.Class:
		return in.execClass(n)

	default:
		panic("eval: unhandled statement node")
	}
}

// execBlock runs stmts in a fresh child frame, restoring the caller's frame
// before returning. A Return or error from any statement stops the block
// immediately and propagates upward unexamined.
func (in *Interpreter) execBlock(stmts []ast.Stmt, blockEnv *values.Environment) (interface{}, bool, error) {
	previous := in.env
	in.env = blockEnv
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		value, returned, err := in.execStmt(stmt)
		if err != nil || returned {
			return value, returned, err
		}
	}
	return nil, false, nil
}

// execClass declares a class: its optional superclass must already be bound
// to a *values.Class, each method closes over a frame that (when a
// superclass exists) defines "super", and the class itself is defined in the
// frame active before that "super" frame was pushed.
func (in *Interpreter) execClass(n *ast.Class) (interface{}, bool, error) {
	var superclass *values.Class
	if n.Superclass != nil {
		v, err := in.evalExpr(n.Superclass)
		if err != nil {
			return nil, false, err
		}
		sc, ok := v.(*values.Class)
		if !ok {
			return nil, false, lerrors.NewRuntimeError(n.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	methodEnv := in.env
	if superclass != nil {
		methodEnv = values.NewEnvironment(in.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*values.Function, len(n.Methods))
	for _, m := range n.Methods {
		methods[m.Name.Lexeme] = &values.Function{
			Declaration:   m,
			Closure:       methodEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &values.Class{Name: n.Name.Lexeme, Superclass: superclass, Methods: methods}
	in.env.Define(n.Name.Lexeme, class)
	return nil, false, nil
}
