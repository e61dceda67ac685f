/*
 * Lox
 *
 * Copyright 2026 The golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package resolver

import (
	"testing"

	"github.com/adeleyeMV/golox/ast"
	"github.com/adeleyeMV/golox/diag"
	"github.com/adeleyeMV/golox/lexer"
	"github.com/adeleyeMV/golox/parser"
)

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }

func resolve(t *testing.T, source string) (Locals, *diag.Sink, []ast.Stmt) {
	t.Helper()
	sink := diag.New(new(nullWriter))
	tokens := lexer.New(source, sink).ScanTokens()
	stmts := parser.New(tokens, sink).Parse()
	if sink.HadError() {
		t.Fatalf("unexpected parse error for %q", source)
	}
	locals := New(sink).Resolve(stmts)
	return locals, sink, stmts
}

func TestResolveLocalDistanceThroughNestedBlocks(t *testing.T) {
	locals, sink, stmts := resolve(t, `
{
  var a = 1;
  {
    print a;
  }
}
`)
	if sink.HadError() {
		t.Fatalf("unexpected resolve error")
	}
	outer := stmts[0].(*ast.Block)
	inner := outer.Stmts[1].(*ast.Block)
	printStmt := inner.Stmts[0].(*ast.Print)
	variable := printStmt.Expr.(*ast.Variable)

	dist, ok := locals[variable]
	if !ok || dist != 1 {
		t.Errorf("expected distance 1, got %d (ok=%v)", dist, ok)
	}
}

func TestResolveGlobalReferenceIsUnbound(t *testing.T) {
	locals, sink, stmts := resolve(t, `
var a = 1;
print a;
`)
	if sink.HadError() {
		t.Fatalf("unexpected resolve error")
	}
	printStmt := stmts[1].(*ast.Print)
	variable := printStmt.Expr.(*ast.Variable)
	if _, ok := locals[variable]; ok {
		t.Errorf("expected a global reference to stay unbound")
	}
}

func TestResolveSelfReferentialInitializerIsError(t *testing.T) {
	_, sink, _ := resolve(t, `
var a = 1;
{
  var a = a;
}
`)
	if !sink.HadError() {
		t.Errorf("expected a self-referential initializer error")
	}
}

func TestResolveDuplicateLocalDeclarationIsError(t *testing.T) {
	_, sink, _ := resolve(t, `
{
  var a = 1;
  var a = 2;
}
`)
	if !sink.HadError() {
		t.Errorf("expected a duplicate local declaration error")
	}
}

func TestResolveTopLevelReturnIsError(t *testing.T) {
	_, sink, _ := resolve(t, "return 1;")
	if !sink.HadError() {
		t.Errorf("expected a top-level return error")
	}
}

func TestResolveReturnValueFromInitializerIsError(t *testing.T) {
	_, sink, _ := resolve(t, `
class Foo {
  init() {
    return 1;
  }
}
`)
	if !sink.HadError() {
		t.Errorf("expected a return-value-from-initializer error")
	}
}

func TestResolveSelfInheritingClassIsError(t *testing.T) {
	_, sink, _ := resolve(t, "class Foo < Foo {}")
	if !sink.HadError() {
		t.Errorf("expected a self-inheriting class error")
	}
}

func TestResolveThisOutsideClassIsError(t *testing.T) {
	_, sink, _ := resolve(t, "print this;")
	if !sink.HadError() {
		t.Errorf("expected a 'this' outside class error")
	}
}

func TestResolveSuperOutsideClassIsError(t *testing.T) {
	_, sink, _ := resolve(t, "print super.foo;")
	if !sink.HadError() {
		t.Errorf("expected a 'super' outside class error")
	}
}

func TestResolveSuperWithNoSuperclassIsError(t *testing.T) {
	_, sink, _ := resolve(t, `
class Foo {
  bar() { return super.bar(); }
}
`)
	if !sink.HadError() {
		t.Errorf("expected a 'super' with no superclass error")
	}
}

func TestResolveBreakOutsideLoopIsError(t *testing.T) {
	_, sink, _ := resolve(t, "break;")
	if !sink.HadError() {
		t.Errorf("expected a break-outside-loop error")
	}
}

func TestResolveBreakInsideLoopIsFine(t *testing.T) {
	_, sink, _ := resolve(t, "while (true) { break; }")
	if sink.HadError() {
		t.Errorf("unexpected error for a well-formed loop break")
	}
}

func TestResolveMethodBindsThisAtDistanceOne(t *testing.T) {
	locals, sink, stmts := resolve(t, `
class Foo {
  bar() {
    print this;
  }
}
`)
	if sink.HadError() {
		t.Fatalf("unexpected resolve error")
	}
	class := stmts[0].(*ast.Class)
	method := class.Methods[0]
	printStmt := method.Body[0].(*ast.Print)
	this := printStmt.Expr.(*ast.This)

	// The method's parameter scope sits inside the class's "this" scope.
	if dist, ok := locals[this]; !ok || dist != 1 {
		t.Errorf("expected this bound at distance 1, got %d (ok=%v)", dist, ok)
	}
}
