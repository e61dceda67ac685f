/*
 * Lox
 *
 * Copyright 2026 The golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package environment implements the chained variable scope that backs
// Lox's lexical scoping at run time (spec §3). It is the runtime
// counterpart of the resolver's static scope stack: every distance the
// resolver records is later walked here by Ancestor.
package environment

import (
	"fmt"

	"github.com/adeleyeMV/golox/diag"
	"github.com/adeleyeMV/golox/lexer"
)

/*
Environment is a mutable name-to-value frame with an optional enclosing
link. The global environment has a nil enclosing link; every other
environment's enclosing link is the environment active at the point it
was created (a block's surrounding scope, or a function's closure).
Lox is single-threaded (spec §5), so no locking is required here.
*/
type Environment struct {
	enclosing *Environment
	values    map[string]interface{}
}

/*
New creates a new environment enclosed by parent. Pass nil to create the
global environment.
*/
func New(parent *Environment) *Environment {
	return &Environment{enclosing: parent, values: make(map[string]interface{})}
}

/*
Enclosing returns the parent environment, or nil for the global one.
*/
func (e *Environment) Enclosing() *Environment { return e.enclosing }

/*
Define binds name to value in this exact frame, overwriting any existing
binding. Used for var declarations, parameter binding, and function/class
self-binding.
*/
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

/*
Get looks up name by walking outward from this frame. Reading an unbound
global name is a runtime error (spec §4.4).
*/
func (e *Environment) Get(name lexer.Token) (interface{}, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, diag.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

/*
Assign rebinds an existing name by walking outward from this frame.
Assigning to an unbound global name is a runtime error (spec §4.4).
*/
func (e *Environment) Assign(name lexer.Token, value interface{}) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return diag.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

/*
Ancestor walks exactly distance enclosing links outward. The resolver
guarantees distance always lands on a real ancestor for every name use it
resolves, so no enclosing link here is ever nil at that point.
*/
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

/*
GetAt reads name directly out of the frame distance links outward —
used for every resolved (non-global) name use.
*/
func (e *Environment) GetAt(distance int, name string) interface{} {
	return e.Ancestor(distance).values[name]
}

/*
AssignAt writes value directly into the frame distance links outward.
*/
func (e *Environment) AssignAt(distance int, name string, value interface{}) {
	e.Ancestor(distance).values[name] = value
}

/*
String renders the environment chain depth and frame size, for debugging.
*/
func (e *Environment) String() string {
	depth := 0
	for p := e.enclosing; p != nil; p = p.enclosing {
		depth++
	}
	return fmt.Sprintf("Environment{depth=%d, vars=%d}", depth, len(e.values))
}
