/*
 * Lox
 *
 * Copyright 2026 The golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package interpreter is the tree-walking evaluator: it drives a
// resolved statement list over a chained environment cursor (spec §4.4).
// Non-local control transfer for `return` and `break` is modeled as an
// explicit result variant threaded back up through every execute call,
// per spec §9's design note, rather than the flag the original
// implementation used — a flag cannot tell a loop's `break` apart from a
// `break` belonging to a function nested inside it.
package interpreter

import (
	"fmt"
	"io"

	"github.com/krotik/common/errorutil"

	"github.com/adeleyeMV/golox/ast"
	"github.com/adeleyeMV/golox/diag"
	"github.com/adeleyeMV/golox/environment"
	"github.com/adeleyeMV/golox/lexer"
	"github.com/adeleyeMV/golox/resolver"
	"github.com/adeleyeMV/golox/value"
)

type signalKind int

const (
	sigNormal signalKind = iota
	sigReturn
	sigBreak
)

/*
signal is the result every execute/executeBlock call threads upward: a
statement list runs to completion (sigNormal), unwinds out of a function
(sigReturn, carrying the returned value), or unwinds out of the nearest
enclosing loop (sigBreak). Only the construct that owns the transfer
(While for sigBreak, LoxFunction.Call for sigReturn) converts a signal
back into sigNormal; every other caller just passes it through unchanged.
*/
type signal struct {
	kind  signalKind
	value interface{}
}

var normal = signal{kind: sigNormal}

/*
Interpreter walks a resolved program. Its environment field is the
"current environment" cursor spec §4.4 describes: every nested
evaluation pushes a new environment and restores the prior one on every
exit path, normal or not.
*/
type Interpreter struct {
	globals     *environment.Environment
	environment *environment.Environment
	locals      resolver.Locals
	sink        *diag.Sink
	out         io.Writer
}

/*
New creates an Interpreter that writes `print` output to out and reports
runtime errors through sink. locals is the side table produced by
resolver.Resolve for the statements this Interpreter will run.
*/
func New(out io.Writer, sink *diag.Sink, locals resolver.Locals) *Interpreter {
	globals := environment.New(nil)
	globals.Define("clock", clockFn())
	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      locals,
		sink:        sink,
		out:         out,
	}
}

/*
SetLocals replaces the side table consulted for variable resolution — the
REPL re-resolves and swaps this in between lines while keeping the same
global environment alive across them.
*/
func (it *Interpreter) SetLocals(locals resolver.Locals) {
	it.locals = locals
}

/*
Interpret runs stmts in the global environment. A runtime error aborts the
remaining statements in this call and is reported through the sink (spec
§5 "Scheduling model": runtime errors unwind to the top-level evaluator,
which stops executing the current batch).
*/
func (it *Interpreter) Interpret(stmts []ast.Stmt) {
	for _, s := range stmts {
		_, err := it.execute(s)
		if err != nil {
			if rerr, ok := err.(*diag.RuntimeError); ok {
				it.sink.RuntimeError(rerr)
			}
			return
		}
	}
}

func (it *Interpreter) execute(s ast.Stmt) (signal, error) {
	switch stmt := s.(type) {
	case *ast.Expression:
		return it.visitExpressionStmt(stmt)
	case *ast.Print:
		return it.visitPrintStmt(stmt)
	case *ast.Var:
		return it.visitVarStmt(stmt)
	case *ast.Block:
		return it.visitBlockStmt(stmt)
	case *ast.If:
		return it.visitIfStmt(stmt)
	case *ast.While:
		return it.visitWhileStmt(stmt)
	case *ast.Function:
		return it.visitFunctionStmt(stmt)
	case *ast.Return:
		return it.visitReturnStmt(stmt)
	case *ast.Class:
		return it.visitClassStmt(stmt)
	default:
		return normal, diag.NewRuntimeError(lexer.Token{}, "unknown statement type %T", s)
	}
}

func (it *Interpreter) evaluate(e ast.Expr) (interface{}, error) {
	switch expr := e.(type) {
	case *ast.Binary:
		return it.visitBinaryExpr(expr)
	case *ast.Logical:
		return it.visitLogicalExpr(expr)
	case *ast.Unary:
		return it.visitUnaryExpr(expr)
	case *ast.Grouping:
		return it.evaluate(expr.Inner)
	case *ast.Literal:
		return expr.Value, nil
	case *ast.Variable:
		return it.lookupVariable(expr.Name, expr)
	case *ast.Assign:
		return it.visitAssignExpr(expr)
	case *ast.Call:
		return it.visitCallExpr(expr)
	case *ast.Get:
		return it.visitGetExpr(expr)
	case *ast.Set:
		return it.visitSetExpr(expr)
	case *ast.This:
		return it.lookupVariable(expr.Keyword, expr)
	case *ast.Super:
		return it.visitSuperExpr(expr)
	case *ast.Break:
		// Reached only when break appears nested inside a larger expression
		// rather than alone in statement position; the statement-level
		// case in visitExpressionStmt is what actually produces sigBreak.
		return nil, nil
	default:
		return nil, diag.NewRuntimeError(lexer.Token{}, "unknown expression type %T", e)
	}
}

/*
executeBlock runs stmts against env, restoring the interpreter's previous
environment cursor on every exit path — the one mandatory scoped-
acquisition-with-guaranteed-release contract spec §5 names. It stops at
the first non-normal signal (return or break) and propagates it, leaving
later statements in stmts unexecuted.
*/
func (it *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) (signal, error) {
	previous := it.environment
	it.environment = env
	defer func() { it.environment = previous }()

	for _, s := range stmts {
		sig, err := it.execute(s)
		if err != nil {
			return normal, err
		}
		if sig.kind != sigNormal {
			return sig, nil
		}
	}
	return normal, nil
}

// Statements
// ==========

func (it *Interpreter) visitExpressionStmt(s *ast.Expression) (signal, error) {
	if _, ok := s.Expr.(*ast.Break); ok {
		return signal{kind: sigBreak}, nil
	}
	_, err := it.evaluate(s.Expr)
	return normal, err
}

func (it *Interpreter) visitPrintStmt(s *ast.Print) (signal, error) {
	v, err := it.evaluate(s.Expr)
	if err != nil {
		return normal, err
	}
	fmt.Fprintln(it.out, stringify(v))
	return normal, nil
}

func (it *Interpreter) visitVarStmt(s *ast.Var) (signal, error) {
	var v interface{}
	if s.Initializer != nil {
		var err error
		v, err = it.evaluate(s.Initializer)
		if err != nil {
			return normal, err
		}
	}
	it.environment.Define(s.Name.Lexeme, v)
	return normal, nil
}

func (it *Interpreter) visitBlockStmt(s *ast.Block) (signal, error) {
	return it.executeBlock(s.Stmts, environment.New(it.environment))
}

func (it *Interpreter) visitIfStmt(s *ast.If) (signal, error) {
	cond, err := it.evaluate(s.Cond)
	if err != nil {
		return normal, err
	}
	if isTruthy(cond) {
		return it.execute(s.Then)
	}
	if s.Else != nil {
		return it.execute(s.Else)
	}
	return normal, nil
}

func (it *Interpreter) visitWhileStmt(s *ast.While) (signal, error) {
	for {
		cond, err := it.evaluate(s.Cond)
		if err != nil {
			return normal, err
		}
		if !isTruthy(cond) {
			return normal, nil
		}
		sig, err := it.execute(s.Body)
		if err != nil {
			return normal, err
		}
		switch sig.kind {
		case sigBreak:
			return normal, nil
		case sigReturn:
			return sig, nil
		}
	}
}

func (it *Interpreter) visitFunctionStmt(s *ast.Function) (signal, error) {
	it.environment.Define(s.Name.Lexeme, NewFunction(s, it.environment, false))
	return normal, nil
}

func (it *Interpreter) visitReturnStmt(s *ast.Return) (signal, error) {
	var v interface{}
	if s.Value != nil {
		var err error
		v, err = it.evaluate(s.Value)
		if err != nil {
			return normal, err
		}
	}
	return signal{kind: sigReturn, value: v}, nil
}

/*
visitClassStmt mirrors spec §4.4's two-phase class evaluation: the class
name is bound before its methods are built (so a method can recursively
reference its own class by name), a superclass's "super" binding lives in
its own scope frame pushed only for the duration of method-closure
construction, and every method closes over that frame.
*/
func (it *Interpreter) visitClassStmt(s *ast.Class) (signal, error) {
	var super *LoxClass
	if s.Superclass != nil {
		v, err := it.evaluate(s.Superclass)
		if err != nil {
			return normal, err
		}
		sc, ok := v.(*LoxClass)
		if !ok {
			return normal, diag.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		super = sc
	}

	it.environment.Define(s.Name.Lexeme, nil)

	classEnv := it.environment
	if super != nil {
		classEnv = environment.New(it.environment)
		classEnv.Define("super", super)
	}

	methods := make(map[string]*LoxFunction, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, classEnv, m.Name.Lexeme == "init")
	}

	class := NewClass(s.Name.Lexeme, super, methods)
	it.environment.Define(s.Name.Lexeme, class)
	return normal, nil
}

// Expressions
// ===========

func (it *Interpreter) lookupVariable(name lexer.Token, expr ast.Expr) (interface{}, error) {
	if distance, ok := it.locals[expr]; ok {
		return it.environment.GetAt(distance, name.Lexeme), nil
	}
	return it.globals.Get(name)
}

func (it *Interpreter) visitAssignExpr(e *ast.Assign) (interface{}, error) {
	v, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := it.locals[e]; ok {
		it.environment.AssignAt(distance, e.Name.Lexeme, v)
	} else if err := it.globals.Assign(e.Name, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (it *Interpreter) visitUnaryExpr(e *ast.Unary) (interface{}, error) {
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Type {
	case lexer.Minus:
		n, err := checkNumberOperand(e.Op, right)
		if err != nil {
			return nil, err
		}
		return value.Int(0).Sub(n), nil
	case lexer.Bang:
		return !isTruthy(right), nil
	}
	return nil, diag.NewRuntimeError(e.Op, "Invalid unary operator")
}

func (it *Interpreter) visitBinaryExpr(e *ast.Binary) (interface{}, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case lexer.Minus:
		ln, rn, err := checkBothNumberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln.Sub(rn), nil
	case lexer.Slash:
		ln, rn, err := checkBothNumberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		if rn.IsZero() {
			return nil, diag.NewRuntimeError(e.Op, "Division by zero")
		}
		return ln.Div(rn), nil
	case lexer.Star:
		ln, rn, err := checkBothNumberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln.Mul(rn), nil
	case lexer.Plus:
		ls, lok := left.(string)
		rs, rok := right.(string)
		if lok && rok {
			return ls + rs, nil
		}
		ln, rn, err := checkBothNumberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln.Add(rn), nil
	case lexer.Greater:
		ln, rn, err := checkBothNumberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln.Compare(rn) > 0, nil
	case lexer.GreaterEqual:
		ln, rn, err := checkBothNumberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln.Compare(rn) >= 0, nil
	case lexer.Less:
		ln, rn, err := checkBothNumberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln.Compare(rn) < 0, nil
	case lexer.LessEqual:
		ln, rn, err := checkBothNumberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln.Compare(rn) <= 0, nil
	case lexer.BangEqual:
		return !isEqual(left, right), nil
	case lexer.EqualEqual:
		return isEqual(left, right), nil
	}
	return nil, diag.NewRuntimeError(e.Op, "Unsupported binary operator")
}

func (it *Interpreter) visitLogicalExpr(e *ast.Logical) (interface{}, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	switch e.Op.Type {
	case lexer.Or:
		if isTruthy(left) {
			return left, nil
		}
	case lexer.And:
		if !isTruthy(left) {
			return left, nil
		}
	default:
		return nil, diag.NewRuntimeError(e.Op, "Invalid logical operator")
	}
	return it.evaluate(e.Right)
}

func (it *Interpreter) visitCallExpr(e *ast.Call) (interface{}, error) {
	callee, err := it.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, len(e.Args))
	for i, a := range e.Args {
		v, err := it.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, diag.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, diag.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(it, args)
}

func (it *Interpreter) visitGetExpr(e *ast.Get) (interface{}, error) {
	obj, err := it.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*LoxInstance)
	if !ok {
		return nil, diag.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	return instance.Get(e.Name)
}

func (it *Interpreter) visitSetExpr(e *ast.Set) (interface{}, error) {
	obj, err := it.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*LoxInstance)
	if !ok {
		return nil, diag.NewRuntimeError(e.Name, "Only instances have fields.")
	}
	v, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name, v)
	return v, nil
}

/*
visitSuperExpr resolves super.method at the distance the resolver
recorded for the keyword "super"; "this" always sits exactly one scope
frame closer in, by the shape of the frames visitClassStmt pushes. A
Super node with no recorded distance means the resolver let an invalid
"super" reach evaluation, which resolveLocal should have made impossible
for a correctly-resolved program (VisitSuperExpr resolves every "super"
keyword unconditionally).
*/
func (it *Interpreter) visitSuperExpr(e *ast.Super) (interface{}, error) {
	distance, ok := it.locals[e]
	errorutil.AssertTrue(ok, "super used outside a resolved subclass method")
	super := it.environment.GetAt(distance, "super").(*LoxClass)
	instance := it.environment.GetAt(distance-1, "this").(*LoxInstance)

	method := super.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, diag.NewRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}

// Shared value helpers
// ====================

func isTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	an, aok := a.(value.Number)
	bn, bok := b.(value.Number)
	if aok && bok {
		return an.Compare(bn) == 0
	}
	if aok != bok {
		return false
	}
	return a == b
}

func stringify(v interface{}) string {
	if v == nil {
		return "nil"
	}
	switch t := v.(type) {
	case bool:
		if t {
			return "true"
		}
		return "false"
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

func checkNumberOperand(op lexer.Token, v interface{}) (value.Number, error) {
	n, ok := v.(value.Number)
	if !ok {
		return value.Number{}, diag.NewRuntimeError(op, "Operand must be a number")
	}
	return n, nil
}

func checkBothNumberOperands(op lexer.Token, left, right interface{}) (value.Number, value.Number, error) {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		return value.Number{}, value.Number{}, diag.NewRuntimeError(op, "Operands must be numbers")
	}
	return ln, rn, nil
}
