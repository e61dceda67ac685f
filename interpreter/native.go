/*
 * Lox
 *
 * Copyright 2026 The golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"time"

	"github.com/adeleyeMV/golox/value"
)

/*
nativeFunction wraps a Go closure as a Callable, for the small set of
built-ins pre-bound into the global environment (spec §4.4 "Native
functions" — only clock() is required; Non-goals exclude any broader
standard library).
*/
type nativeFunction struct {
	name  string
	arity int
	fn    func(args []interface{}) interface{}
}

func (n *nativeFunction) Arity() int { return n.arity }

func (n *nativeFunction) String() string { return "<native fn " + n.name + ">" }

func (n *nativeFunction) Call(it *Interpreter, args []interface{}) (interface{}, error) {
	return n.fn(args), nil
}

/*
clockFn returns the current wall-clock time in seconds as a Lox Number.
*/
func clockFn() *nativeFunction {
	return &nativeFunction{
		name:  "clock",
		arity: 0,
		fn: func(args []interface{}) interface{} {
			return value.Float(float64(time.Now().UnixNano()) / 1e9)
		},
	}
}
