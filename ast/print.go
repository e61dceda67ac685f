/*
 * Lox
 *
 * Copyright 2026 The golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

import (
	"fmt"
	"strings"

	"github.com/krotik/common/stringutil"
)

/*
printer implements ExprVisitor to produce the S-expression debugging form
described in spec §6; statements are rendered by writeStmt's type switch.
It is unexported; use SPrint or SPrintStmt.
*/
type printer struct{}

/*
SPrint renders expr as the S-expression form from spec §6, e.g.
"(+ 1 2)", "(assign a 9)", "(call f 1 2)".
*/
func SPrint(expr Expr) string {
	p := &printer{}
	s, _ := expr.AcceptExpr(p)
	return s.(string)
}

/*
SPrintStmt renders a single statement as an S-expression, e.g.
"(var a 1)", "(block (var a 1) (print a))".
*/
func SPrintStmt(stmt Stmt) string {
	p := &printer{}
	var sb strings.Builder
	p.writeStmt(&sb, stmt)
	return sb.String()
}

func (p *printer) parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteString(" ")
		s, _ := e.AcceptExpr(p)
		sb.WriteString(s.(string))
	}
	sb.WriteString(")")
	return sb.String()
}

func (p *printer) VisitBinaryExpr(e *Binary) (interface{}, error) {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right), nil
}

func (p *printer) VisitLogicalExpr(e *Logical) (interface{}, error) {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right), nil
}

func (p *printer) VisitUnaryExpr(e *Unary) (interface{}, error) {
	return p.parenthesize(e.Op.Lexeme, e.Right), nil
}

func (p *printer) VisitGroupingExpr(e *Grouping) (interface{}, error) {
	return p.parenthesize("grouping", e.Inner), nil
}

func (p *printer) VisitLiteralExpr(e *Literal) (interface{}, error) {
	switch v := e.Value.(type) {
	case nil:
		return "nil", nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case string:
		return fmt.Sprintf("%q", v), nil
	default:
		return stringutil.ConvertToString(v), nil
	}
}

func (p *printer) VisitVariableExpr(e *Variable) (interface{}, error) {
	return e.Name.Lexeme, nil
}

func (p *printer) VisitAssignExpr(e *Assign) (interface{}, error) {
	return p.parenthesize("assign "+e.Name.Lexeme, e.Value), nil
}

func (p *printer) VisitCallExpr(e *Call) (interface{}, error) {
	return p.parenthesize("call", append([]Expr{e.Callee}, e.Args...)...), nil
}

func (p *printer) VisitGetExpr(e *Get) (interface{}, error) {
	return p.parenthesize("get "+e.Name.Lexeme, e.Object), nil
}

func (p *printer) VisitSetExpr(e *Set) (interface{}, error) {
	return p.parenthesize("set "+e.Name.Lexeme, e.Object, e.Value), nil
}

func (p *printer) VisitThisExpr(e *This) (interface{}, error) {
	return "this", nil
}

func (p *printer) VisitSuperExpr(e *Super) (interface{}, error) {
	return fmt.Sprintf("(super %s)", e.Method.Lexeme), nil
}

func (p *printer) VisitBreakExpr(e *Break) (interface{}, error) {
	return "(break)", nil
}

func (p *printer) writeStmt(sb *strings.Builder, stmt Stmt) {
	switch s := stmt.(type) {
	case *Expression:
		sb.WriteString(SPrint(s.Expr))
	case *Print:
		sb.WriteString(p.parenthesize("print", s.Expr))
	case *Var:
		if s.Initializer != nil {
			sb.WriteString(p.parenthesize("var "+s.Name.Lexeme, s.Initializer))
		} else {
			sb.WriteString(fmt.Sprintf("(var %s)", s.Name.Lexeme))
		}
	case *Block:
		sb.WriteString("(block")
		for _, st := range s.Stmts {
			sb.WriteString(" ")
			p.writeStmt(sb, st)
		}
		sb.WriteString(")")
	case *If:
		sb.WriteString("(if ")
		sb.WriteString(SPrint(s.Cond))
		sb.WriteString(" ")
		p.writeStmt(sb, s.Then)
		if s.Else != nil {
			sb.WriteString(" ")
			p.writeStmt(sb, s.Else)
		}
		sb.WriteString(")")
	case *While:
		sb.WriteString("(while ")
		sb.WriteString(SPrint(s.Cond))
		sb.WriteString(" ")
		p.writeStmt(sb, s.Body)
		sb.WriteString(")")
	case *Function:
		sb.WriteString("(func " + s.Name.Lexeme + " (")
		for i, param := range s.Params {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(param.Lexeme)
		}
		sb.WriteString(")")
		for _, st := range s.Body {
			sb.WriteString(" ")
			p.writeStmt(sb, st)
		}
		sb.WriteString(")")
	case *Return:
		if s.Value != nil {
			sb.WriteString(p.parenthesize("return", s.Value))
		} else {
			sb.WriteString("(return)")
		}
	case *Class:
		sb.WriteString("(class " + s.Name.Lexeme)
		if s.Superclass != nil {
			sb.WriteString(" (< " + s.Superclass.Name.Lexeme + ")")
		}
		for _, m := range s.Methods {
			sb.WriteString(" ")
			p.writeStmt(sb, m)
		}
		sb.WriteString(")")
	}
}

/*
SourcePrint reconstructs an approximately-idiomatic Lox rendering of a
statement list, used by golden tests. Unlike SPrint it is indentation-based
rather than fully parenthesized.
*/
func SourcePrint(stmts []Stmt) string {
	var sb strings.Builder
	sp := &sourcePrinter{}
	for _, s := range stmts {
		sp.writeStmt(&sb, s, 0)
		sb.WriteString("\n")
	}
	return sb.String()
}

type sourcePrinter struct{}

func (sp *sourcePrinter) indent(sb *strings.Builder, level int) {
	sb.WriteString(stringutil.GenerateRollingString(" ", level*4))
}

func (sp *sourcePrinter) writeStmt(sb *strings.Builder, stmt Stmt, level int) {
	sp.indent(sb, level)
	switch s := stmt.(type) {
	case *Expression:
		sb.WriteString(SPrint(s.Expr))
		sb.WriteString(";")
	case *Print:
		sb.WriteString("print ")
		sb.WriteString(SPrint(s.Expr))
		sb.WriteString(";")
	case *Var:
		sb.WriteString("var " + s.Name.Lexeme)
		if s.Initializer != nil {
			sb.WriteString(" = " + SPrint(s.Initializer))
		}
		sb.WriteString(";")
	case *Block:
		sb.WriteString("{\n")
		for _, st := range s.Stmts {
			sp.writeStmt(sb, st, level+1)
			sb.WriteString("\n")
		}
		sp.indent(sb, level)
		sb.WriteString("}")
	case *If:
		sb.WriteString("if (" + SPrint(s.Cond) + ")\n")
		sp.writeStmt(sb, s.Then, level+1)
		if s.Else != nil {
			sb.WriteString("\n")
			sp.indent(sb, level)
			sb.WriteString("else\n")
			sp.writeStmt(sb, s.Else, level+1)
		}
	case *While:
		sb.WriteString("while (" + SPrint(s.Cond) + ")\n")
		sp.writeStmt(sb, s.Body, level+1)
	case *Function:
		sb.WriteString("fun " + s.Name.Lexeme + "(")
		for i, param := range s.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(param.Lexeme)
		}
		sb.WriteString(") {\n")
		for _, st := range s.Body {
			sp.writeStmt(sb, st, level+1)
			sb.WriteString("\n")
		}
		sp.indent(sb, level)
		sb.WriteString("}")
	case *Return:
		sb.WriteString("return")
		if s.Value != nil {
			sb.WriteString(" " + SPrint(s.Value))
		}
		sb.WriteString(";")
	case *Class:
		sb.WriteString("class " + s.Name.Lexeme)
		if s.Superclass != nil {
			sb.WriteString(" < " + s.Superclass.Name.Lexeme)
		}
		sb.WriteString(" {\n")
		for _, m := range s.Methods {
			sp.writeStmt(sb, m, level+1)
			sb.WriteString("\n")
		}
		sp.indent(sb, level)
		sb.WriteString("}")
	}
}
