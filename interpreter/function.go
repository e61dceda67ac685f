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
	"fmt"

	"github.com/adeleyeMV/golox/ast"
	"github.com/adeleyeMV/golox/environment"
)

/*
LoxFunction is a user-defined function or method: its declaration plus the
environment it closed over at definition time (spec §4.4 "closures").
isInitializer marks a class's "init" method, whose implicit return value is
always the bound instance rather than whatever the body returns.
*/
type LoxFunction struct {
	declaration   *ast.Function
	closure       *environment.Environment
	isInitializer bool
}

/*
NewFunction builds a LoxFunction over declaration, closing over closure.
*/
func NewFunction(declaration *ast.Function, closure *environment.Environment, isInitializer bool) *LoxFunction {
	return &LoxFunction{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

/*
Arity is the function's declared parameter count.
*/
func (f *LoxFunction) Arity() int { return len(f.declaration.Params) }

func (f *LoxFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}

/*
Call binds args to the function's parameters in a fresh environment
enclosed by its closure, then runs the body. A return statement inside the
body surfaces here as a sigReturn signal; reaching the end of the body
without one is equivalent to `return nil;`, except in an initializer,
which always yields the bound `this` (spec §4.4 "Functions").
*/
func (f *LoxFunction) Call(it *Interpreter, args []interface{}) (interface{}, error) {
	local := environment.New(f.closure)
	for i, param := range f.declaration.Params {
		local.Define(param.Lexeme, args[i])
	}

	sig, err := it.executeBlock(f.declaration.Body, local)
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	if sig.kind == sigReturn {
		return sig.value, nil
	}
	return nil, nil
}

/*
Bind returns a copy of f whose closure additionally binds "this" to
instance — used when a method is retrieved off an instance (spec §4.4
"Get performs field-then-method lookup... a found method is returned
already bound").
*/
func (f *LoxFunction) Bind(instance *LoxInstance) *LoxFunction {
	env := environment.New(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer)
}
