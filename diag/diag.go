/*
 * Lox
 *
 * Copyright 2026 The golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package diag carries the pipeline's diagnostic state. Rather than the
// two mutable package-level flags the design sketches as a strawman (spec
// §4.5), a Sink value is threaded through scanner, parser, resolver and
// evaluator (spec §9's preferred design), which keeps the pipeline
// reentrant-safe for the REPL's per-line reset and testable in isolation.
package diag

import (
	"fmt"
	"io"

	"github.com/adeleyeMV/golox/lexer"
)

/*
Sink accumulates compile-time and runtime diagnostics for one pipeline
run and reports them in spec §4.5's wire format.
*/
type Sink struct {
	out             io.Writer
	hadError        bool
	hadRuntimeError bool
}

/*
New creates a Sink that writes formatted diagnostics to out.
*/
func New(out io.Writer) *Sink {
	return &Sink{out: out}
}

/*
HadError reports whether any lexical, syntactic, or resolution error has
been recorded since the last Reset.
*/
func (s *Sink) HadError() bool { return s.hadError }

/*
HadRuntimeError reports whether a runtime error has been recorded.
*/
func (s *Sink) HadRuntimeError() bool { return s.hadRuntimeError }

/*
Reset clears both flags. The REPL calls this between prompt lines so one
line's errors don't poison the next (spec §6).
*/
func (s *Sink) Reset() {
	s.hadError = false
	s.hadRuntimeError = false
}

/*
ScanError reports a lexical error at line with no "where" qualifier.
*/
func (s *Sink) ScanError(line int, message string) {
	s.report(line, "", message)
}

/*
TokenError reports a syntactic or resolution error at the given token,
rendering the "at end" / "at '<lexeme>'" qualifier per spec §4.5.
*/
func (s *Sink) TokenError(tok lexer.Token, message string) {
	if tok.Type == lexer.EOF {
		s.report(tok.Line, " at end", message)
	} else {
		s.report(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), message)
	}
}

func (s *Sink) report(line int, where, message string) {
	fmt.Fprintf(s.out, "[line %d] Error%s: %s\n", line, where, message)
	s.hadError = true
}

/*
RuntimeError reports a runtime error and sets HadRuntimeError. err's token
supplies the line.
*/
func (s *Sink) RuntimeError(err *RuntimeError) {
	fmt.Fprintf(s.out, "[line %d] Runtime error: %s\n", err.Token.Line, err.Message)
	s.hadRuntimeError = true
}

/*
RuntimeError is the error type raised by the evaluator for any runtime
fault (type errors, undefined variables, division by zero, arity
mismatches, non-callable/non-instance access). It carries the offending
token so the diagnostic can cite a line, mirroring the original
implementation's InterpretationError.
*/
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Runtime error: %s", e.Token.Line, e.Message)
}

/*
NewRuntimeError builds a RuntimeError at tok.
*/
func NewRuntimeError(tok lexer.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
