// Copyright (C) 2024 The cppast Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log is a small fluent, context-carried logger: ctx.Info().Logf(...)
// rather than a package-level log.Printf. It trades the severity filtering
// and multi-handler fan-out of a full logging framework for a single writer
// and a fixed set of severities, which is all a one-shot CLI driver needs;
// tags attached with WithValue are appended to each line as key=value text.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Severity is the level a log record was emitted at.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "?"
	}
}

type ctxKey struct{}

// Context is a fluent wrapper over context.Context; it conforms to
// context.Context itself so it can be passed anywhere one is expected.
type Context struct {
	context.Context
	w    io.Writer
	tags []string
}

// New returns a root Context that writes to w.
func New(ctx context.Context, w io.Writer) Context {
	return Context{Context: ctx, w: w}
}

// From returns the Context stored in ctx under this package's key, or a
// Context writing to os.Stderr if none is stored. New and WithValue do not
// store one in ctx.
func From(ctx context.Context) Context {
	if c, ok := ctx.Value(ctxKey{}).(Context); ok {
		return c
	}
	return Context{Context: ctx, w: os.Stderr}
}

// WithValue returns a copy of c with the key/value pair attached as a tag
// that every subsequent log line includes.
func (c Context) WithValue(key string, value interface{}) Context {
	c.tags = append(append([]string{}, c.tags...), fmt.Sprintf("%s=%v", key, value))
	return c
}

// Unwrap returns the underlying context.Context.
func (c Context) Unwrap() context.Context { return c.Context }

// At returns a Logger at the given severity.
func (c Context) At(sev Severity) Logger { return Logger{w: c.w, sev: sev, tags: c.tags} }

// Debug is shorthand for At(Debug).
func (c Context) Debug() Logger { return c.At(Debug) }

// Info is shorthand for At(Info).
func (c Context) Info() Logger { return c.At(Info) }

// Warning is shorthand for At(Warning).
func (c Context) Warning() Logger { return c.At(Warning) }

// Error is shorthand for At(Error).
func (c Context) Error() Logger { return c.At(Error) }

// Logger is an immutable, severity-bound log record in progress.
type Logger struct {
	w    io.Writer
	sev  Severity
	tags []string
}

// Log writes msg verbatim, prefixed with a timestamp and severity.
func (l Logger) Log(msg string) {
	line := fmt.Sprintf("%s %-7s %s", time.Now().Format("15:04:05.000"), l.sev, msg)
	for _, t := range l.tags {
		line += " " + t
	}
	fmt.Fprintln(l.w, line)
}

// Logf formats and writes a log record.
func (l Logger) Logf(format string, args ...interface{}) {
	l.Log(fmt.Sprintf(format, args...))
}
