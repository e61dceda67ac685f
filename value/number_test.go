/*
 * Lox
 *
 * Copyright 2026 The golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package value

import "testing"

func TestAddStaysIntegerWhenBothOperandsAreIntegers(t *testing.T) {
	got := Int(1).Add(Int(2))
	if !got.IsInt || got.I != 3 {
		t.Errorf("got %+v, want integer 3", got)
	}
}

func TestAddPromotesToFloatWhenEitherOperandIsFloat(t *testing.T) {
	got := Int(1).Add(Float(2.5))
	if got.IsInt || got.F != 3.5 {
		t.Errorf("got %+v, want float 3.5", got)
	}
}

func TestSubAndMulFollowTheSamePromotionRule(t *testing.T) {
	if got := Int(5).Sub(Int(2)); !got.IsInt || got.I != 3 {
		t.Errorf("Sub: got %+v", got)
	}
	if got := Float(5).Sub(Int(2)); got.IsInt || got.F != 3 {
		t.Errorf("Sub promotion: got %+v", got)
	}
	if got := Int(3).Mul(Int(4)); !got.IsInt || got.I != 12 {
		t.Errorf("Mul: got %+v", got)
	}
}

func TestDivAlwaysPromotesToFloat(t *testing.T) {
	got := Int(6).Div(Int(3))
	if got.IsInt {
		t.Errorf("Div must always yield a float-typed Number, got %+v", got)
	}
	if got.F != 2 {
		t.Errorf("got %v, want 2", got.F)
	}
}

func TestDivByZeroYieldsInfNotPanic(t *testing.T) {
	got := Int(1).Div(Int(0))
	if got.IsInt || !(got.F > 0) {
		t.Errorf("expected a float +Inf for 1/0, got %+v", got)
	}
}

func TestIsZero(t *testing.T) {
	if !Int(0).IsZero() {
		t.Errorf("expected Int(0) to be zero")
	}
	if !Float(0).IsZero() {
		t.Errorf("expected Float(0) to be zero")
	}
	if Int(1).IsZero() {
		t.Errorf("expected Int(1) to not be zero")
	}
}

func TestCompareTreatsIntAndFloatEquivalently(t *testing.T) {
	if Int(1).Compare(Float(1.0)) != 0 {
		t.Errorf("expected integer 1 to equal float 1.0")
	}
	if Int(1).Compare(Int(2)) != -1 {
		t.Errorf("expected 1 < 2")
	}
	if Float(3).Compare(Int(2)) != 1 {
		t.Errorf("expected 3 > 2")
	}
}

func TestStringPrintsIntegralValuesWithoutADecimalPoint(t *testing.T) {
	if got := Int(3).String(); got != "3" {
		t.Errorf("got %q, want %q", got, "3")
	}
	if got := Float(3).String(); got != "3" {
		t.Errorf("got %q, want %q (float holding an exact integer)", got, "3")
	}
}

func TestStringPrintsFractionalFloats(t *testing.T) {
	if got := Float(3.5).String(); got != "3.5" {
		t.Errorf("got %q, want %q", got, "3.5")
	}
}
