/*
 * Lox
 *
 * Copyright 2026 The golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package parser implements a recursive-descent parser that turns a
// token stream into a list of ast.Stmt. It follows the Pratt-style
// precedence climbing laid out in spec §4.2, growing outward from
// assignment through equality, comparison, term, factor, unary, and call.
package parser

import (
	"github.com/adeleyeMV/golox/ast"
	"github.com/adeleyeMV/golox/diag"
	"github.com/adeleyeMV/golox/lexer"
	"github.com/adeleyeMV/golox/value"
)

const maxArgs = 255

var statementKeywords = map[lexer.TokenType]bool{
	lexer.Class: true, lexer.Fun: true, lexer.Var: true, lexer.For: true,
	lexer.If: true, lexer.While: true, lexer.Print: true, lexer.Return: true,
}

/*
syntaxError is a sentinel used to unwind to the nearest synchronize point
after a diagnostic has already been reported. It is never surfaced to
callers of Parser.Parse.
*/
type syntaxError struct{}

func (syntaxError) Error() string { return "syntax error" }

/*
Parser consumes a flat token slice and produces statements. Parsing never
aborts on ill-formed input (spec §8 property 4): on error it reports
through sink, synchronizes to the next statement boundary, and continues.
*/
type Parser struct {
	tokens    []lexer.Token
	sink      *diag.Sink
	current   int
	loopDepth int
}

/*
New creates a Parser over tokens, reporting diagnostics to sink.
*/
func New(tokens []lexer.Token, sink *diag.Sink) *Parser {
	return &Parser{tokens: tokens, sink: sink}
}

/*
Parse runs the full "program → declaration* EOF" rule and returns every
statement parsed, even if sink.HadError() is true afterward.
*/
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// Declarations
// ============

func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(syntaxError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	if p.match(lexer.Class) {
		return p.classDeclaration()
	}
	if p.match(lexer.Fun) {
		return p.function("function")
	}
	if p.match(lexer.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(lexer.Identifier, "Expect class name.")

	var superclass *ast.Variable
	if p.match(lexer.Less) {
		p.consume(lexer.Identifier, "Expect superclass name.")
		superclass = &ast.Variable{Name: p.previous()}
	}

	p.consume(lexer.LeftBrace, "Expect '{' before class body.")
	var methods []*ast.Function
	for !p.check(lexer.RightBrace) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(lexer.RightBrace, "Expect '}' after class body.")

	return &ast.Class{Name: name, Superclass: superclass, Methods: methods}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(lexer.Identifier, "Expect variable name.")

	var init ast.Expr
	if p.match(lexer.Equal) {
		init = p.expression()
	}

	p.consume(lexer.Semicolon, "Expect ';' after variable declaration.")
	return &ast.Var{Name: name, Initializer: init}
}

/*
function parses both top-level function declarations and method bodies.
It resets loopDepth to zero for the duration of the body: a break belongs
to the nearest lexically enclosing loop inside the SAME function, never to
a loop the function happens to be declared or called within (spec §9's
break-vs-function-boundary note).
*/
func (p *Parser) function(kind string) *ast.Function {
	name := p.consume(lexer.Identifier, "Expect "+kind+" name.")
	p.consume(lexer.LeftParen, "Expect '(' after "+kind+" name.")

	var params []lexer.Token
	if !p.check(lexer.RightParen) {
		params = append(params, p.consume(lexer.Identifier, "Expect parameter name."))
		for p.match(lexer.Comma) {
			if len(params) >= maxArgs {
				p.reportAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.Identifier, "Expect parameter name."))
		}
	}
	p.consume(lexer.RightParen, "Expect ')' after parameters.")
	p.consume(lexer.LeftBrace, "Expect '{' before "+kind+" body.")

	enclosingLoopDepth := p.loopDepth
	p.loopDepth = 0
	body := p.block()
	p.loopDepth = enclosingLoopDepth

	return &ast.Function{Name: name, Params: params, Body: body}
}

// Statements
// ==========

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.Return):
		return p.returnStatement()
	case p.match(lexer.Print):
		return p.printStatement()
	case p.match(lexer.If):
		return p.ifStatement()
	case p.match(lexer.While):
		return p.whileStatement()
	case p.match(lexer.For):
		return p.forStatement()
	case p.match(lexer.LeftBrace):
		return &ast.Block{Stmts: p.block()}
	}
	return p.expressionStatement()
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(lexer.Semicolon) {
		value = p.expression()
	}
	p.consume(lexer.Semicolon, "Expect ';' after return value.")
	return &ast.Return{Keyword: keyword, Value: value}
}

func (p *Parser) printStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.Semicolon, "Expect ';' after value.")
	return &ast.Print{Expr: expr}
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(lexer.LeftParen, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(lexer.RightParen, "Expect ')' after if condition.")

	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.Else) {
		elseBranch = p.statement()
	}
	return &ast.If{Cond: cond, Then: then, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(lexer.LeftParen, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(lexer.RightParen, "Expect ')' after while condition.")

	p.loopDepth++
	body := p.statement()
	p.loopDepth--

	return &ast.While{Cond: cond, Body: body}
}

/*
forStatement desugars "for (init; cond; incr) body" into
"{ init; while (cond) { body; incr; } }" (spec §4.2). The surrounding
block scopes a var-declared init to the loop.
*/
func (p *Parser) forStatement() ast.Stmt {
	p.consume(lexer.LeftParen, "Expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(lexer.Semicolon):
		init = nil
	case p.match(lexer.Var):
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(lexer.Semicolon) {
		cond = p.expression()
	}
	p.consume(lexer.Semicolon, "Expect ';' after loop condition.")

	var incr ast.Expr
	if !p.check(lexer.RightParen) {
		incr = p.expression()
	}
	p.consume(lexer.RightParen, "Expect ')' after for clauses.")

	p.loopDepth++
	body := p.statement()
	p.loopDepth--

	if incr != nil {
		body = &ast.Block{Stmts: []ast.Stmt{body, &ast.Expression{Expr: incr}}}
	}
	if cond == nil {
		cond = &ast.Literal{Value: true}
	}
	body = &ast.While{Cond: cond, Body: body}

	if init != nil {
		body = &ast.Block{Stmts: []ast.Stmt{init, body}}
	}
	return body
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(lexer.RightBrace) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(lexer.RightBrace, "Expect '}' after block.")
	return stmts
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.Semicolon, "Expect ';' after expression.")
	return &ast.Expression{Expr: expr}
}

// Expressions
// ===========

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

/*
assignment rewrites the left side of '=' into Assign or Set: a Variable
target becomes Assign, a Get target becomes Set, anything else is
"Invalid assignment target." reported without aborting the parse (spec
§4.2).
*/
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(lexer.Equal) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		}
		p.reportAt(equals, "Invalid assignment target.")
	}

	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.Or) {
		op := p.previous()
		expr = &ast.Logical{Left: expr, Op: op, Right: p.and()}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.And) {
		op := p.previous()
		expr = &ast.Logical{Left: expr, Op: op, Right: p.equality()}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BangEqual, lexer.EqualEqual) {
		op := p.previous()
		expr = &ast.Binary{Left: expr, Op: op, Right: p.comparison()}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual) {
		op := p.previous()
		expr = &ast.Binary{Left: expr, Op: op, Right: p.term()}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.Minus, lexer.Plus) {
		op := p.previous()
		expr = &ast.Binary{Left: expr, Op: op, Right: p.factor()}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.Slash, lexer.Star) {
		op := p.previous()
		expr = &ast.Binary{Left: expr, Op: op, Right: p.unary()}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(lexer.Minus, lexer.Bang) {
		op := p.previous()
		return &ast.Unary{Op: op, Right: p.unary()}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		if p.match(lexer.LeftParen) {
			expr = p.finishCall(expr)
		} else if p.match(lexer.Dot) {
			name := p.consume(lexer.Identifier, "Expect property name after '.'.")
			expr = &ast.Get{Object: expr, Name: name}
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RightParen) {
		args = append(args, p.expression())
		for p.match(lexer.Comma) {
			if len(args) >= maxArgs {
				p.reportAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
		}
	}
	paren := p.consume(lexer.RightParen, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.False):
		return &ast.Literal{Value: false}
	case p.match(lexer.True):
		return &ast.Literal{Value: true}
	case p.match(lexer.Nil):
		return &ast.Literal{Value: nil}
	case p.match(lexer.Number):
		return &ast.Literal{Value: numberLiteral(p.previous())}
	case p.match(lexer.String):
		return &ast.Literal{Value: p.previous().StringValue}
	case p.match(lexer.This):
		return &ast.This{Keyword: p.previous()}
	case p.match(lexer.Break):
		return p.breakExpr()
	case p.match(lexer.Super):
		keyword := p.previous()
		p.consume(lexer.Dot, "Expect '.' after 'super'.")
		method := p.consume(lexer.Identifier, "Expect superclass method name.")
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(lexer.Identifier):
		return &ast.Variable{Name: p.previous()}
	case p.match(lexer.LeftParen):
		expr := p.expression()
		p.consume(lexer.RightParen, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	}

	panic(p.errorAt(p.peek(), "Expect expression."))
}

func numberLiteral(tok lexer.Token) value.Number {
	if tok.LiteralKind == lexer.IntLiteral {
		return value.Int(tok.IntValue)
	}
	return value.Float(tok.FloatValue)
}

/*
breakExpr parses `break` as a primary expression — a Lox "statement" that
flows through expressionStatement like any other expression, matching
spec's grammar (primary → ... | "break" | ...). The resolver rejects a
Break whose captured LoopDepth is zero.
*/
func (p *Parser) breakExpr() ast.Expr {
	return &ast.Break{Keyword: p.previous(), LoopDepth: p.loopDepth}
}

// Token helpers
// =============

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool { return p.peek().Type == lexer.EOF }

func (p *Parser) peek() lexer.Token { return p.tokens[p.current] }

func (p *Parser) previous() lexer.Token { return p.tokens[p.current-1] }

func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

/*
reportAt records a diagnostic without unwinding the current production —
used for recoverable errors like an oversized argument list where parsing
can simply continue.
*/
func (p *Parser) reportAt(tok lexer.Token, message string) {
	p.sink.TokenError(tok, message)
}

/*
errorAt records a diagnostic and returns a syntaxError to be panicked,
unwinding to the nearest declaration()'s recover and then synchronize.
*/
func (p *Parser) errorAt(tok lexer.Token, message string) syntaxError {
	p.sink.TokenError(tok, message)
	return syntaxError{}
}

/*
synchronize discards tokens until a statement boundary — a ';' or the
start of a new statement keyword — so a single malformed statement does
not suppress diagnostics for the rest of the program (spec §4.2).
*/
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == lexer.Semicolon {
			return
		}
		if statementKeywords[p.peek().Type] {
			return
		}
		p.advance()
	}
}
