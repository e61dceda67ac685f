/*
 * Lox
 *
 * Copyright 2026 The golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package value defines Lox's single numeric runtime type, shared by the
// parser (which produces Number literals straight from scanned tokens)
// and the interpreter (which does arithmetic on them). Keeping Number
// outside both avoids a parser → interpreter import.
package value

import "strconv"

/*
Number is Lox's one runtime numeric type, carrying both an integer and a
floating-point sub-kind (spec §3, §4.6). IsInt selects which field is
live. Division always promotes its result to the float sub-kind — the
implementation's pinned choice for spec §4.6's open "integer division"
question (see DESIGN.md) — every other arithmetic operator stays integer
when both operands are integers and promotes to float otherwise.
*/
type Number struct {
	IsInt bool
	I     int64
	F     float64
}

/*
Int builds an integer-typed Number.
*/
func Int(i int64) Number { return Number{IsInt: true, I: i} }

/*
Float builds a float-typed Number.
*/
func Float(f float64) Number { return Number{IsInt: false, F: f} }

/*
AsFloat returns n's value widened to float64 regardless of sub-kind.
*/
func (n Number) AsFloat() float64 {
	if n.IsInt {
		return float64(n.I)
	}
	return n.F
}

/*
IsZero reports whether n is exactly zero in its own sub-kind.
*/
func (n Number) IsZero() bool {
	if n.IsInt {
		return n.I == 0
	}
	return n.F == 0
}

/*
Add, Sub, and Mul stay integer when both operands are integers and
promote to float otherwise.
*/
func (n Number) Add(o Number) Number { return binary(n, o, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }) }
func (n Number) Sub(o Number) Number { return binary(n, o, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }) }
func (n Number) Mul(o Number) Number { return binary(n, o, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }) }

func binary(n, o Number, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) Number {
	if n.IsInt && o.IsInt {
		return Int(intOp(n.I, o.I))
	}
	return Float(floatOp(n.AsFloat(), o.AsFloat()))
}

/*
Div always yields a float-typed Number, per the pinned division rule.
*/
func (n Number) Div(o Number) Number {
	return Float(n.AsFloat() / o.AsFloat())
}

/*
Compare returns -1, 0, or 1 comparing n and o by mathematical value
(so the integer 1 equals the float 1.0, per spec §4.4).
*/
func (n Number) Compare(o Number) int {
	a, b := n.AsFloat(), o.AsFloat()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

/*
String renders n per spec §4.6's printing policy: no decimal point when
the value is an exact integer (in either sub-kind), minimal precision
otherwise.
*/
func (n Number) String() string {
	if n.IsInt {
		return strconv.FormatInt(n.I, 10)
	}
	if n.F == float64(int64(n.F)) {
		return strconv.FormatInt(int64(n.F), 10)
	}
	return strconv.FormatFloat(n.F, 'g', -1, 64)
}
