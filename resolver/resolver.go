/*
 * Lox
 *
 * Copyright 2026 The golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package resolver performs the single static pass between parsing and
// evaluation: it binds every variable use to a lexical scope distance and
// reports the scope errors spec §4.3 describes (self-referential
// initializers, return/this/super misuse, duplicate local declarations,
// self-inheriting classes, break outside a loop). Its output is a side
// table keyed by ast.Expr node identity, so two syntactically identical
// expressions at different source positions never collide as keys.
package resolver

import (
	"github.com/adeleyeMV/golox/ast"
	"github.com/adeleyeMV/golox/diag"
	"github.com/adeleyeMV/golox/lexer"
)

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

/*
Locals is the resolver's side table: for every Variable, Assign, This, or
Super node the resolver found bound in some enclosing local scope, the
number of scopes to walk outward at evaluation time. A name use absent
from this map is a global reference (spec §3).
*/
type Locals map[ast.Expr]int

/*
Resolver walks a statement list once, maintaining a stack of lexical
scopes alongside the current function/class context needed for its
static checks.
*/
type Resolver struct {
	sink    *diag.Sink
	scopes  []map[string]bool
	locals  Locals
	curFn   functionType
	curCls  classType
}

/*
New creates a Resolver reporting to sink.
*/
func New(sink *diag.Sink) *Resolver {
	return &Resolver{sink: sink, locals: make(Locals)}
}

/*
Resolve walks stmts and returns the populated side table. Call this once
per top-level statement list (a whole file, or a single REPL line).
*/
func (r *Resolver) Resolve(stmts []ast.Stmt) Locals {
	r.resolveStmts(stmts)
	return r.locals
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	_ = s.AcceptStmt(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	_, _ = e.AcceptExpr(r)
}

// Scope stack
// ===========

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) innermost() map[string]bool {
	return r.scopes[len(r.scopes)-1]
}

/*
declare records name in the innermost scope with "not yet defined". A
second declaration of the same name in the same local scope is an error;
global (file-level, zero scopes) re-declaration is allowed, matching
spec §4.3.
*/
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.innermost()
	if _, ok := scope[name.Lexeme]; ok {
		r.sink.TokenError(name, "Variable with this name already declared in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.innermost()[name.Lexeme] = true
}

/*
resolveLocal walks scopes innermost-outward and records the first
matching distance into the side table. No match leaves expr unbound,
meaning "look it up in the global environment" at evaluation time.
*/
func (r *Resolver) resolveLocal(expr ast.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionType) {
	enclosingFn := r.curFn
	r.curFn = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.curFn = enclosingFn
}

// Statement visitors
// ===================

func (r *Resolver) VisitBlockStmt(s *ast.Block) error {
	r.beginScope()
	r.resolveStmts(s.Stmts)
	r.endScope()
	return nil
}

func (r *Resolver) VisitVarStmt(s *ast.Var) error {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.Function) error {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s, fnFunction)
	return nil
}

func (r *Resolver) VisitExpressionStmt(s *ast.Expression) error {
	r.resolveExpr(s.Expr)
	return nil
}

func (r *Resolver) VisitIfStmt(s *ast.If) error {
	r.resolveExpr(s.Cond)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
	return nil
}

func (r *Resolver) VisitPrintStmt(s *ast.Print) error {
	r.resolveExpr(s.Expr)
	return nil
}

func (r *Resolver) VisitReturnStmt(s *ast.Return) error {
	if r.curFn == fnNone {
		r.sink.TokenError(s.Keyword, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.curFn == fnInitializer {
			r.sink.TokenError(s.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
	return nil
}

func (r *Resolver) VisitWhileStmt(s *ast.While) error {
	r.resolveExpr(s.Cond)
	r.resolveStmt(s.Body)
	return nil
}

func (r *Resolver) VisitClassStmt(s *ast.Class) error {
	enclosingCls := r.curCls
	r.curCls = classClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		r.curCls = classSubclass
		r.resolveExpr(s.Superclass)
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.sink.TokenError(s.Superclass.Name, "A class can't inherit from itself.")
		}

		r.beginScope()
		r.innermost()["super"] = true
	}

	r.beginScope()
	r.innermost()["this"] = true

	for _, method := range s.Methods {
		kind := fnMethod
		if method.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()
	if s.Superclass != nil {
		r.endScope()
	}

	r.curCls = enclosingCls
	return nil
}

// Expression visitors
// ====================

func (r *Resolver) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	if len(r.scopes) > 0 {
		if defined, ok := r.innermost()[e.Name.Lexeme]; ok && !defined {
			r.sink.TokenError(e.Name, "Cannot read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	r.resolveExpr(e.Inner)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitCallExpr(e *ast.Call) (interface{}, error) {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Args {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGetExpr(e *ast.Get) (interface{}, error) {
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitSetExpr(e *ast.Set) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitThisExpr(e *ast.This) (interface{}, error) {
	if r.curCls == classNone {
		r.sink.TokenError(e.Keyword, "Can't use 'this' outside of a class.")
		return nil, nil
	}
	r.resolveLocal(e, e.Keyword)
	return nil, nil
}

func (r *Resolver) VisitBreakExpr(e *ast.Break) (interface{}, error) {
	if e.LoopDepth == 0 {
		r.sink.TokenError(e.Keyword, "Break statement must be inside a loop.")
	}
	return nil, nil
}

func (r *Resolver) VisitSuperExpr(e *ast.Super) (interface{}, error) {
	if r.curCls == classNone {
		r.sink.TokenError(e.Keyword, "Can't use 'super' outside of a class.")
	} else if r.curCls != classSubclass {
		r.sink.TokenError(e.Keyword, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(e, e.Keyword)
	return nil, nil
}
