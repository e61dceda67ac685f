/*
 * Lox
 *
 * Copyright 2026 The golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package environment

import (
	"testing"

	"github.com/adeleyeMV/golox/lexer"
)

func tok(name string) lexer.Token {
	return lexer.Token{Type: lexer.Identifier, Lexeme: name, Line: 1}
}

func TestDefineAndGetInSameFrame(t *testing.T) {
	env := New(nil)
	env.Define("a", int64(1))
	v, err := env.Get(tok("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != int64(1) {
		t.Errorf("got %v, want 1", v)
	}
}

func TestGetWalksEnclosingChain(t *testing.T) {
	global := New(nil)
	global.Define("a", "outer")
	inner := New(global)
	v, err := inner.Get(tok("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "outer" {
		t.Errorf("got %v, want outer", v)
	}
}

func TestGetUndefinedGlobalIsRuntimeError(t *testing.T) {
	env := New(nil)
	_, err := env.Get(tok("missing"))
	if err == nil {
		t.Fatalf("expected an undefined variable error")
	}
}

func TestAssignRebindsInOwningFrame(t *testing.T) {
	global := New(nil)
	global.Define("a", int64(1))
	inner := New(global)
	if err := inner.Assign(tok("a"), int64(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := global.Get(tok("a"))
	if v != int64(2) {
		t.Errorf("expected global frame updated, got %v", v)
	}
	if _, ok := inner.values["a"]; ok {
		t.Errorf("assign should not have defined a new binding in inner")
	}
}

func TestAssignUndefinedGlobalIsRuntimeError(t *testing.T) {
	env := New(nil)
	if err := env.Assign(tok("missing"), int64(1)); err == nil {
		t.Fatalf("expected an undefined variable error")
	}
}

func TestGetAtAndAssignAtUseDistance(t *testing.T) {
	global := New(nil)
	middle := New(global)
	inner := New(middle)

	middle.Define("a", int64(1))

	if v := inner.GetAt(1, "a"); v != int64(1) {
		t.Errorf("got %v, want 1", v)
	}

	inner.AssignAt(1, "a", int64(9))
	if v := middle.values["a"]; v != int64(9) {
		t.Errorf("expected middle frame updated via AssignAt, got %v", v)
	}
}

func TestAncestorWalksExactDistance(t *testing.T) {
	global := New(nil)
	middle := New(global)
	inner := New(middle)

	if inner.Ancestor(0) != inner {
		t.Errorf("distance 0 should be the frame itself")
	}
	if inner.Ancestor(1) != middle {
		t.Errorf("distance 1 should be the immediate enclosing frame")
	}
	if inner.Ancestor(2) != global {
		t.Errorf("distance 2 should be the global frame")
	}
}

func TestDefineShadowsEnclosingBinding(t *testing.T) {
	global := New(nil)
	global.Define("a", "outer")
	inner := New(global)
	inner.Define("a", "inner")

	v, err := inner.Get(tok("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "inner" {
		t.Errorf("got %v, want inner shadowing outer", v)
	}
	outerV, _ := global.Get(tok("a"))
	if outerV != "outer" {
		t.Errorf("shadowing must not mutate the enclosing frame, got %v", outerV)
	}
}
