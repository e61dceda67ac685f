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

	"github.com/adeleyeMV/golox/diag"
	"github.com/adeleyeMV/golox/lexer"
)

/*
LoxClass is a runtime class value: a name, an optional superclass, and its
own methods (spec §4.4 "Classes"). Calling a class value constructs an
instance.
*/
type LoxClass struct {
	Name       string
	Superclass *LoxClass
	methods    map[string]*LoxFunction
}

/*
NewClass builds a LoxClass. methods holds only the class's own methods;
inherited methods are reached through Superclass at lookup time.
*/
func NewClass(name string, superclass *LoxClass, methods map[string]*LoxFunction) *LoxClass {
	return &LoxClass{Name: name, Superclass: superclass, methods: methods}
}

/*
FindMethod looks up name among c's own methods, then its superclass chain.
It reports no match by returning nil, never an error: callers (Get, Super)
decide whether a miss is a runtime error.
*/
func (c *LoxClass) FindMethod(name string) *LoxFunction {
	if m, ok := c.methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

func (c *LoxClass) String() string { return fmt.Sprintf("<class %s>", c.Name) }

/*
Arity mirrors the class's "init" method arity, or zero if it declares none.
*/
func (c *LoxClass) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

/*
Call constructs a fresh instance and, if the class declares an "init"
method, runs it bound to that instance before returning it.
*/
func (c *LoxClass) Call(it *Interpreter, args []interface{}) (interface{}, error) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(it, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

/*
LoxInstance is a runtime object: a class tag plus a mutable field map
(spec §4.4 "Get performs field-then-method lookup").
*/
type LoxInstance struct {
	class  *LoxClass
	fields map[string]interface{}
}

/*
NewInstance builds an instance of class with no fields set.
*/
func NewInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{class: class, fields: make(map[string]interface{})}
}

func (i *LoxInstance) String() string { return fmt.Sprintf("<instance of %s>", i.class.Name) }

/*
Get resolves a property access: fields shadow methods. A found method is
bound to i before being returned, so its body sees the correct "this".
*/
func (i *LoxInstance) Get(name lexer.Token) (interface{}, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}
	if method := i.class.FindMethod(name.Lexeme); method != nil {
		return method.Bind(i), nil
	}
	return nil, diag.NewRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

/*
Set always writes a field, even one shadowing a method name; Lox classes
have no settable attributes of their own (spec §4.4 "Set only works on
instances; classes have no settable attributes").
*/
func (i *LoxInstance) Set(name lexer.Token, value interface{}) {
	i.fields[name.Lexeme] = value
}
