/*
 * Lox
 *
 * Copyright 2026 The golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package cli drives the interpreter pipeline in its two external modes
// (spec §6): run a single source file, or read-eval-print one line at a
// time. It wires scanner → parser → resolver → interpreter together and
// maps the sink's error state onto the documented process exit codes.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/krotik/common/fileutil"
	"github.com/krotik/common/termutil"

	"github.com/adeleyeMV/golox/ast"
	"github.com/adeleyeMV/golox/config"
	"github.com/adeleyeMV/golox/diag"
	"github.com/adeleyeMV/golox/interpreter"
	"github.com/adeleyeMV/golox/lexer"
	"github.com/adeleyeMV/golox/logging"
	"github.com/adeleyeMV/golox/parser"
	"github.com/adeleyeMV/golox/resolver"
)

// Exit codes (spec §6).
const (
	ExitOK         = 0
	ExitUsage      = 64
	ExitCompileErr = 65
	ExitRuntimeErr = 70
)

/*
Driver runs Lox programs in file or REPL mode. Out and Err separate
program output (print, REPL results) from diagnostics, matching the
teacher's split between LogOut and the console terminal. Log receives
lifecycle tracing (spec §2.1); it is never shown a diagnostic or a
program's own output.
*/
type Driver struct {
	Out io.Writer
	Err io.Writer
	Log logging.Logger

	Term termutil.ConsoleLineTerminal
}

/*
NewDriver creates a Driver writing program output to os.Stdout and
diagnostics to os.Stderr, tracing at config.DefaultLogLevel.
*/
func NewDriver() *Driver {
	var log logging.Logger
	log, err := logging.NewLevelLogger(logging.NewStdOutLogger(), config.DefaultLogLevel)
	if err != nil {
		log = logging.NewNullLogger()
	}
	return &Driver{Out: os.Stdout, Err: os.Stderr, Log: log}
}

/*
RunFile executes the program in path and returns the process exit code.
Non-.lox/.pylox extensions are rejected as misuse (spec §6 exit code 64).
*/
func (d *Driver) RunFile(path string) int {
	if ok, _ := fileutil.PathExists(path); !ok {
		fmt.Fprintf(d.Err, "Error: file not found: %s\n", path)
		return ExitUsage
	}
	if !config.HasSourceExtension(filepath.Ext(path)) {
		fmt.Fprintf(d.Err, "Error: unrecognized source extension: %s\n", path)
		return ExitUsage
	}

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(d.Err, "Error: %v\n", err)
		return ExitUsage
	}

	d.Log.LogDebug("running ", path)

	sink := diag.New(d.Err)
	stmts, ok := compile(string(src), sink)
	if !ok || sink.HadError() {
		return ExitCompileErr
	}

	it := interpreter.New(d.Out, sink, nil)
	resolveAndRun(it, stmts, sink)
	if sink.HadError() {
		return ExitCompileErr
	}
	if sink.HadRuntimeError() {
		return ExitRuntimeErr
	}
	return ExitOK
}

/*
RunPrompt starts the REPL: print Prompt, read one line, run it through the
full pipeline, then clear both of the sink's flags with Reset (the
compile-error flag and the runtime-error flag alike; the REPL never
inspects the runtime-error flag, so clearing it has no visible effect).
EOF terminates the loop.
*/
func (d *Driver) RunPrompt() int {
	if d.Term == nil {
		term, err := termutil.NewConsoleLineTerminal(d.Out)
		if err != nil {
			fmt.Fprintf(d.Err, "Error: %v\n", err)
			return ExitUsage
		}
		d.Term = term
	}

	fmt.Fprintf(d.Out, "Lox %s\n", config.ProductVersion)
	d.Log.LogInfo("starting REPL")

	if err := d.Term.StartTerm(); err != nil {
		fmt.Fprintf(d.Err, "Error: %v\n", err)
		return ExitUsage
	}
	defer d.Term.StopTerm()

	sink := diag.New(d.Err)
	it := interpreter.New(d.Out, sink, nil)

	fmt.Fprint(d.Out, config.Prompt)
	line, err := d.Term.NextLine()
	for err == nil {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			stmts, ok := compile(trimmed, sink)
			if ok && !sink.HadError() {
				resolveAndRun(it, stmts, sink)
			}
			sink.Reset()
		}
		fmt.Fprint(d.Out, config.Prompt)
		line, err = d.Term.NextLine()
	}

	d.Log.LogInfo("REPL terminated")
	return ExitOK
}

func compile(src string, sink *diag.Sink) ([]ast.Stmt, bool) {
	scanner := lexer.New(src, sink)
	tokens := scanner.ScanTokens()
	if sink.HadError() {
		return nil, false
	}

	p := parser.New(tokens, sink)
	stmts := p.Parse()
	return stmts, true
}

func resolveAndRun(it *interpreter.Interpreter, stmts []ast.Stmt, sink *diag.Sink) {
	r := resolver.New(sink)
	locals := r.Resolve(stmts)
	if sink.HadError() {
		return
	}
	it.SetLocals(locals)
	it.Interpret(stmts)
}
