/*
File    : lox/eval/eval_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"math"
	"strconv"

	"github.com/loxlang/lox/ast"
	"github.com/loxlang/lox/lerrors"
	"github.com/loxlang/lox/lexer"
)

// evalBinary evaluates a Binary expression. Both operands are always
// evaluated (unlike Logical, which short-circuits) before the operator is
// applied.
func (in *Interpreter) evalBinary(n *ast.Binary) (interface{}, error) {
	left, err := in.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator.Type {
	case lexer.MINUS:
		return numberBinary(n.Operator, left, right, func(a, b float64) float64 { return a - b })
	case lexer.STAR:
		return numberBinary(n.Operator, left, right, func(a, b float64) float64 { return a * b })
	case lexer.SLASH:
		l, r, err := asNumberOperands(n.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return divide(l, r), nil
	case lexer.PLUS:
		return evalPlus(n.Operator, left, right)
	case lexer.GREATER:
		return numberCompare(n.Operator, left, right, func(a, b float64) bool { return a > b })
	case lexer.GREATER_EQUAL:
		return numberCompare(n.Operator, left, right, func(a, b float64) bool { return a >= b })
	case lexer.LESS:
		return numberCompare(n.Operator, left, right, func(a, b float64) bool { return a < b })
	case lexer.LESS_EQUAL:
		return numberCompare(n.Operator, left, right, func(a, b float64) bool { return a <= b })
	case lexer.EQUAL_EQUAL:
		return isEqual(left, right), nil
	case lexer.BANG_EQUAL:
		return !isEqual(left, right), nil
	}
	panic("eval: unhandled binary operator")
}

// evalPlus implements Lox's one overloaded operator: number+number adds,
// string+string concatenates, anything else is a type error.
func evalPlus(op lexer.Token, left, right interface{}) (interface{}, error) {
	if lf, ok := left.(float64); ok {
		if rf, ok := right.(float64); ok {
			return lf + rf, nil
		}
	}
	if ls, ok := left.(string); ok {
		if rs, ok := right.(string); ok {
			return ls + rs, nil
		}
	}
	return nil, lerrors.NewRuntimeError(op, "Operands must be two numbers or two strings.")
}

func numberBinary(op lexer.Token, left, right interface{}, f func(a, b float64) float64) (interface{}, error) {
	l, r, err := asNumberOperands(op, left, right)
	if err != nil {
		return nil, err
	}
	return f(l, r), nil
}

func numberCompare(op lexer.Token, left, right interface{}, f func(a, b float64) bool) (interface{}, error) {
	l, r, err := asNumberOperands(op, left, right)
	if err != nil {
		return nil, err
	}
	return f(l, r), nil
}

// asNumberOperand checks a single unary operand -- "Operand must be a
// number." (singular), matching as_number_operand in the original.
func asNumberOperand(op lexer.Token, v interface{}) (float64, error) {
	if f, ok := v.(float64); ok {
		return f, nil
	}
	return 0, lerrors.NewRuntimeError(op, "Operand must be a number.")
}

// asNumberOperands checks both binary operands -- "Operands must be
// numbers." (plural), matching check_number_operands in the original.
func asNumberOperands(op lexer.Token, left, right interface{}) (float64, float64, error) {
	lf, lok := left.(float64)
	rf, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, lerrors.NewRuntimeError(op, "Operands must be numbers.")
	}
	return lf, rf, nil
}

// divide implements total division: a zero divisor never panics, instead
// producing the IEEE-754 value its sign dictates.
func divide(left, right float64) float64 {
	if right != 0 {
		return left / right
	}
	switch {
	case left == 0:
		return math.NaN()
	case left > 0:
		return math.Inf(1)
	default:
		return math.Inf(-1)
	}
}

// isTruthy: nil and false are falsey, everything else -- including 0 and ""
// -- is truthy.
func isTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual is strict-type equality: values of different dynamic types are
// never equal, even 1 vs "1" or nil vs false. NaN is
// unequal to itself, following ordinary float64 comparison.
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// stringify renders a Lox runtime value the way Print and the REPL echo it:
// nil -> "nil", floats render without a trailing ".0" for whole numbers,
// bools -> "true"/"false", everything else defers to its own String().
func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case float64:
		if math.IsInf(val, 1) {
			return "inf"
		}
		if math.IsInf(val, -1) {
			return "-inf"
		}
		if math.IsNaN(val) {
			return "nan"
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
