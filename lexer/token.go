/*
 * Lox
 *
 * Copyright 2026 The golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package lexer turns Lox source text into a sequence of tokens.
package lexer

import "fmt"

/*
TokenType identifies the lexical class of a Token.
*/
type TokenType int

/*
All token kinds recognised by the scanner.
*/
const (
	// Single-character punctuation

	LeftParen TokenType = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// One or two character operators

	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals

	Identifier
	String
	Number

	// Keywords

	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Break
	Super
	This
	True
	Var
	While

	EOF
)

var tokenNames = map[TokenType]string{
	LeftParen: "LEFT_PAREN", RightParen: "RIGHT_PAREN",
	LeftBrace: "LEFT_BRACE", RightBrace: "RIGHT_BRACE",
	Comma: "COMMA", Dot: "DOT", Minus: "MINUS", Plus: "PLUS",
	Semicolon: "SEMICOLON", Slash: "SLASH", Star: "STAR",
	Bang: "BANG", BangEqual: "BANG_EQUAL",
	Equal: "EQUAL", EqualEqual: "EQUAL_EQUAL",
	Greater: "GREATER", GreaterEqual: "GREATER_EQUAL",
	Less: "LESS", LessEqual: "LESS_EQUAL",
	Identifier: "IDENTIFIER", String: "STRING", Number: "NUMBER",
	And: "AND", Class: "CLASS", Else: "ELSE", False: "FALSE",
	Fun: "FUN", For: "FOR", If: "IF", Nil: "NIL", Or: "OR",
	Print: "PRINT", Return: "RETURN", Break: "BREAK", Super: "SUPER",
	This: "THIS", True: "TRUE", Var: "VAR", While: "WHILE",
	EOF: "EOF",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

/*
Keywords maps reserved identifiers to their token type.
*/
var Keywords = map[string]TokenType{
	"and": And, "class": Class, "else": Else, "false": False,
	"for": For, "fun": Fun, "if": If, "nil": Nil, "or": Or,
	"print": Print, "return": Return, "break": Break, "super": Super,
	"this": This, "true": True, "var": Var, "while": While,
}

/*
LiteralKind distinguishes the literal payload carried by NUMBER and STRING
tokens. A NUMBER token is either an Int or a Float literal depending on
whether the scanned lexeme had a fractional part; this sub-kind survives
into the runtime Number value (see the value package).
*/
type LiteralKind int

const (
	NoLiteral LiteralKind = iota
	IntLiteral
	FloatLiteral
	StringLiteral
)

/*
Token is an immutable record produced by the scanner: a token kind, the
exact source substring it was scanned from, an optional literal payload,
and the source line it appeared on.
*/
type Token struct {
	Type         TokenType
	Lexeme       string
	LiteralKind  LiteralKind
	IntValue     int64
	FloatValue   float64
	StringValue  string
	Line         int
}

/*
String renders a token for debugging.
*/
func (t Token) String() string {
	return fmt.Sprintf("%v %q", t.Type, t.Lexeme)
}
