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

/*
Callable is implemented by every value that can appear as the callee of a
Call expression: user functions, classes (construction), and native
functions.
*/
type Callable interface {
	Arity() int
	Call(it *Interpreter, args []interface{}) (interface{}, error)
	String() string
}
