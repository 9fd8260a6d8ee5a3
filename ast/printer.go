/*
File    : lox/ast/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"bytes"
	"fmt"
)

const indentSize = 2

// Printer is a Visitor that renders a parsed (and optionally resolved) tree
// as indented text, for the CLI's `--ast` debug flag (package main). It
// covers the full Lox grammar.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// PrintProgram renders every statement of a Program and returns the
// accumulated text.
func PrintProgram(program *Program) string {
	p := &Printer{}
	program.Accept(p)
	return p.buf.String()
}

func (p *Printer) line(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(" ")
	}
	p.buf.WriteString(fmt.Sprintf(format, args...))
	p.buf.WriteString("\n")
}

func (p *Printer) nested(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}

func exprStr(v *Printer, e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", e.Accept(v))
}

func (p *Printer) VisitLiteralExpr(n *Literal) interface{} {
	return fmt.Sprintf("Literal(%v)", n.Value)
}

func (p *Printer) VisitGroupingExpr(n *Grouping) interface{} {
	return fmt.Sprintf("Grouping(%s)", exprStr(p, n.Expression))
}

func (p *Printer) VisitUnaryExpr(n *Unary) interface{} {
	return fmt.Sprintf("Unary(%s %s)", n.Operator.Lexeme, exprStr(p, n.Right))
}

func (p *Printer) VisitBinaryExpr(n *Binary) interface{} {
	return fmt.Sprintf("Binary(%s %s %s)", exprStr(p, n.Left), n.Operator.Lexeme, exprStr(p, n.Right))
}

func (p *Printer) VisitLogicalExpr(n *Logical) interface{} {
	return fmt.Sprintf("Logical(%s %s %s)", exprStr(p, n.Left), n.Operator.Lexeme, exprStr(p, n.Right))
}

func (p *Printer) VisitVariableExpr(n *Variable) interface{} {
	return fmt.Sprintf("Variable(%s @%d)", n.Name.Lexeme, n.Depth)
}

func (p *Printer) VisitAssignExpr(n *Assign) interface{} {
	return fmt.Sprintf("Assign(%s @%d = %s)", n.Name.Lexeme, n.Depth, exprStr(p, n.Value))
}

func (p *Printer) VisitCallExpr(n *Call) interface{} {
	args := ""
	for i, a := range n.Arguments {
		if i > 0 {
			args += ", "
		}
		args += exprStr(p, a)
	}
	return fmt.Sprintf("Call(%s(%s))", exprStr(p, n.Callee), args)
}

func (p *Printer) VisitGetExpr(n *Get) interface{} {
	return fmt.Sprintf("Get(%s.%s)", exprStr(p, n.Object), n.Name.Lexeme)
}

func (p *Printer) VisitSetExpr(n *Set) interface{} {
	return fmt.Sprintf("Set(%s.%s = %s)", exprStr(p, n.Object), n.Name.Lexeme, exprStr(p, n.Value))
}

func (p *Printer) VisitThisExpr(n *This) interface{} {
	return fmt.Sprintf("This(@%d)", n.Depth)
}

func (p *Printer) VisitSuperExpr(n *Super) interface{} {
	return fmt.Sprintf("Super(@%d.%s)", n.Depth, n.Method.Lexeme)
}

func (p *Printer) VisitProgramStmt(n *Program) interface{} {
	p.line("Program")
	p.nested(func() {
		for _, s := range n.Statements {
			s.Accept(p)
		}
	})
	return nil
}

func (p *Printer) VisitExpressionStmt(n *Expression) interface{} {
	p.line("Expression(%s)", exprStr(p, n.Expression))
	return nil
}

func (p *Printer) VisitPrintStmt(n *Print) interface{} {
	p.line("Print(%s)", exprStr(p, n.Expression))
	return nil
}

func (p *Printer) VisitVarStmt(n *Var) interface{} {
	p.line("Var(%s = %s)", n.Name.Lexeme, exprStr(p, n.Initializer))
	return nil
}

func (p *Printer) VisitBlockStmt(n *Block) interface{} {
	p.line("Block")
	p.nested(func() {
		for _, s := range n.Statements {
			s.Accept(p)
		}
	})
	return nil
}

func (p *Printer) VisitIfStmt(n *If) interface{} {
	p.line("If(%s)", exprStr(p, n.Condition))
	p.nested(func() {
		n.ThenBranch.Accept(p)
		if n.ElseBranch != nil {
			n.ElseBranch.Accept(p)
		}
	})
	return nil
}

func (p *Printer) VisitWhileStmt(n *While) interface{} {
	p.line("While(%s)", exprStr(p, n.Condition))
	p.nested(func() { n.Body.Accept(p) })
	return nil
}

func (p *Printer) VisitFunctionStmt(n *Function) interface{} {
	p.line("Function(%s)", n.Name.Lexeme)
	p.nested(func() {
		for _, s := range n.Body {
			s.Accept(p)
		}
	})
	return nil
}

func (p *Printer) VisitReturnStmt(n *Return) interface{} {
	p.line("Return(%s)", exprStr(p, n.Value))
	return nil
}

func (p *Printer) VisitClassStmt(n *Class) interface{} {
	super := ""
	if n.Superclass != nil {
		super = " < " + n.Superclass.Name.Lexeme
	}
	p.line("Class(%s%s)", n.Name.Lexeme, super)
	p.nested(func() {
		for _, m := range n.Methods {
			m.Accept(p)
		}
	})
	return nil
}
