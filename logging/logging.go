/*
 * Lox
 *
 * Copyright 2026 The golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package logging provides the interpreter's internal trace logger —
// distinct from the diag package's user-facing diagnostics (spec §4.5):
// this is for driver-lifecycle tracing only (which file is being run, REPL
// start/stop), filtered by a LevelLogger. The driver runs it at
// config.DefaultLogLevel; there is no command-line switch for the level.
package logging

import (
	"fmt"
	"log"
	"strings"

	"github.com/krotik/common/datautil"
)

/*
Level is a logger's verbosity threshold.
*/
type Level string

/*
Supported log levels, ordered least to most verbose.
*/
const (
	Error Level = "error"
	Info  Level = "info"
	Debug Level = "debug"
)

/*
Logger is implemented by every trace log backend.
*/
type Logger interface {
	LogError(m ...interface{})
	LogInfo(m ...interface{})
	LogDebug(m ...interface{})
}

/*
LevelLogger wraps a Logger and filters calls below its configured level.
*/
type LevelLogger struct {
	logger Logger
	level  Level
}

/*
NewLevelLogger wraps logger with level-based filtering. level is matched
case-insensitively against Error/Info/Debug.
*/
func NewLevelLogger(logger Logger, level string) (*LevelLogger, error) {
	l := Level(strings.ToLower(level))
	if l != Error && l != Info && l != Debug {
		return nil, fmt.Errorf("invalid log level: %v", level)
	}
	return &LevelLogger{logger: logger, level: l}, nil
}

/*
Level returns the logger's configured threshold.
*/
func (ll *LevelLogger) Level() Level { return ll.level }

func (ll *LevelLogger) LogError(m ...interface{}) {
	ll.logger.LogError(m...)
}

func (ll *LevelLogger) LogInfo(m ...interface{}) {
	if ll.level == Info || ll.level == Debug {
		ll.logger.LogInfo(m...)
	}
}

func (ll *LevelLogger) LogDebug(m ...interface{}) {
	if ll.level == Debug {
		ll.logger.LogDebug(m...)
	}
}

/*
NullLogger discards every message. Used as a safe fallback when a level
string fails to parse.
*/
type NullLogger struct{}

/*
NewNullLogger returns a logger that discards everything.
*/
func NewNullLogger() *NullLogger { return &NullLogger{} }

func (l *NullLogger) LogError(m ...interface{}) {}
func (l *NullLogger) LogInfo(m ...interface{})  {}
func (l *NullLogger) LogDebug(m ...interface{}) {}

/*
StdOutLogger writes trace messages through the standard log package's
default logger, which writes to os.Stderr unless redirected with
log.SetOutput.
*/
type StdOutLogger struct{}

/*
NewStdOutLogger returns a logger writing through the standard log package.
*/
func NewStdOutLogger() *StdOutLogger { return &StdOutLogger{} }

func (l *StdOutLogger) LogError(m ...interface{}) { log.Print("error: " + fmt.Sprint(m...)) }
func (l *StdOutLogger) LogInfo(m ...interface{})  { log.Print(fmt.Sprint(m...)) }
func (l *StdOutLogger) LogDebug(m ...interface{}) { log.Print("debug: " + fmt.Sprint(m...)) }

/*
MemoryLogger keeps the last N trace messages in a ring buffer, so traced
messages can be read back with Slice instead of from an output stream.
*/
type MemoryLogger struct {
	buf *datautil.RingBuffer
}

/*
NewMemoryLogger returns a memory logger retaining up to size messages.
*/
func NewMemoryLogger(size int) *MemoryLogger {
	return &MemoryLogger{buf: datautil.NewRingBuffer(size)}
}

func (l *MemoryLogger) LogError(m ...interface{}) { l.buf.Add(fmt.Sprintf("error: %v", fmt.Sprint(m...))) }
func (l *MemoryLogger) LogInfo(m ...interface{})  { l.buf.Add(fmt.Sprint(m...)) }
func (l *MemoryLogger) LogDebug(m ...interface{}) { l.buf.Add(fmt.Sprintf("debug: %v", fmt.Sprint(m...))) }

/*
Slice returns the currently buffered messages, oldest first.
*/
func (l *MemoryLogger) Slice() []string {
	raw := l.buf.Slice()
	out := make([]string, len(raw))
	for i, v := range raw {
		out[i] = v.(string)
	}
	return out
}
