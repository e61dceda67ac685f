/*
 * Lox
 *
 * Copyright 2026 The golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/krotik/common/termutil"

	"github.com/adeleyeMV/golox/logging"
)

const testDir = "clitest"

// testConsoleLineTerminal feeds preset lines to a Driver the way a real
// terminal would feed typed ones, without needing a tty.
type testConsoleLineTerminal struct {
	in  []string
	out bytes.Buffer
}

func (t *testConsoleLineTerminal) StartTerm() error { return nil }
func (t *testConsoleLineTerminal) StopTerm()        {}

func (t *testConsoleLineTerminal) AddKeyHandler(handler termutil.KeyHandler) {}

func (t *testConsoleLineTerminal) NextLine() (string, error) {
	if len(t.in) == 0 {
		return "", fmt.Errorf("input exhausted in testConsoleLineTerminal")
	}
	line := t.in[0]
	t.in = t.in[1:]
	return line, nil
}

func (t *testConsoleLineTerminal) NextLinePrompt(prompt string, echo rune) (string, error) {
	return t.NextLine()
}

func (t *testConsoleLineTerminal) WriteString(s string) { t.out.WriteString(s) }

func (t *testConsoleLineTerminal) Write(p []byte) (int, error) { return t.out.Write(p) }

func newTestDriver() (*Driver, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &Driver{Out: out, Err: errOut, Log: logging.NewNullLogger()}, out, errOut
}

func setUp(t *testing.T) {
	if err := os.MkdirAll(testDir, 0770); err != nil {
		t.Fatal("could not create test directory:", err)
	}
}

func tearDown() {
	os.RemoveAll(testDir)
}

func TestRunFileAcceptsLoxAndPyloxExtensions(t *testing.T) {
	setUp(t)
	defer tearDown()

	for _, ext := range []string{".lox", ".pylox"} {
		path := filepath.Join(testDir, "prog"+ext)
		if err := os.WriteFile(path, []byte(`print "hi";`), 0644); err != nil {
			t.Fatal(err)
		}

		d, out, _ := newTestDriver()
		code := d.RunFile(path)

		if code != ExitOK {
			t.Errorf("%s: expected exit %d, got %d", ext, ExitOK, code)
		}
		if out.String() != "hi\n" {
			t.Errorf("%s: unexpected output: %q", ext, out.String())
		}
	}
}

func TestRunFileRejectsUnrecognizedExtension(t *testing.T) {
	setUp(t)
	defer tearDown()

	path := filepath.Join(testDir, "prog.txt")
	if err := os.WriteFile(path, []byte(`print "hi";`), 0644); err != nil {
		t.Fatal(err)
	}

	d, _, errOut := newTestDriver()
	code := d.RunFile(path)

	if code != ExitUsage {
		t.Errorf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut.String(), "unrecognized source extension") {
		t.Errorf("unexpected error output: %q", errOut.String())
	}
}

func TestRunFileMissingFile(t *testing.T) {
	d, _, errOut := newTestDriver()
	code := d.RunFile(filepath.Join(testDir, "nope.lox"))

	if code != ExitUsage {
		t.Errorf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut.String(), "file not found") {
		t.Errorf("unexpected error output: %q", errOut.String())
	}
}

func TestRunFileCompileError(t *testing.T) {
	setUp(t)
	defer tearDown()

	path := filepath.Join(testDir, "bad.lox")
	if err := os.WriteFile(path, []byte(`print ;`), 0644); err != nil {
		t.Fatal(err)
	}

	d, _, _ := newTestDriver()
	code := d.RunFile(path)

	if code != ExitCompileErr {
		t.Errorf("expected exit %d, got %d", ExitCompileErr, code)
	}
}

func TestRunFileRuntimeError(t *testing.T) {
	setUp(t)
	defer tearDown()

	path := filepath.Join(testDir, "runtimeerr.lox")
	if err := os.WriteFile(path, []byte(`print 1 + "a";`), 0644); err != nil {
		t.Fatal(err)
	}

	d, _, _ := newTestDriver()
	code := d.RunFile(path)

	if code != ExitRuntimeErr {
		t.Errorf("expected exit %d, got %d", ExitRuntimeErr, code)
	}
}

func TestRunPromptEchoesPrintStatements(t *testing.T) {
	d, out, _ := newTestDriver()
	term := &testConsoleLineTerminal{in: []string{`print "one";`, `print "two";`}}
	d.Term = term

	code := d.RunPrompt()

	if code != ExitOK {
		t.Errorf("expected exit %d, got %d", ExitOK, code)
	}
	if out.String() != "Lox 0.1.0\n> one\n> two\n> " {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestRunPromptRecoversFromLineError(t *testing.T) {
	d, out, _ := newTestDriver()
	term := &testConsoleLineTerminal{in: []string{`print 1 +;`, `print "ok";`}}
	d.Term = term

	code := d.RunPrompt()

	if code != ExitOK {
		t.Errorf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.HasSuffix(out.String(), "ok\n> ") {
		t.Errorf("bad line did not let the REPL continue: %q", out.String())
	}
}
