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

// Package app is the small entry-point harness shared by the cppast
// binaries: it gives a main() a context.Context, turns a returned error
// into the right process exit code, and lets a handler abort early with a
// specific exit code via panic(app.ExitCode(n)) from deep in a call stack
// (e.g. an argument-validation helper) without threading an error return
// through every intermediate frame.
package app

import (
	"context"
	"os"

	"github.com/pkg/errors"

	"github.com/cppast/cppast/internal/log"
)

const (
	exitSuccess = 0
	exitArgError = -1
	exitFailure = 1
)

// ExitCode is a sentinel panic value: recovered by Run and translated
// directly into a process exit code, bypassing the usual error-return exit
// code mapping below.
type ExitCode int

var (
	// Name is the program name; main sets it and nothing in this package
	// reads it.
	Name string
	// ShortHelp is a one-line description of the program; main sets it and
	// nothing in this package reads it.
	ShortHelp string
	// ExitFuncForTesting stands in for os.Exit so tests can observe the
	// code a Run call would have exited with.
	ExitFuncForTesting = os.Exit
)

// Task is the signature a Run handler implements.
type Task func(ctx log.Context) error

// Run builds a root logging context, invokes main, and exits the process
// with a code derived from the returned error: 0 on success, -1 if main
// returned an *ArgError, 1 for any other error. A main that panics with an
// ExitCode exits with that code directly, without the error being logged.
func Run(main Task) {
	ExitFuncForTesting(doRun(main))
}

func doRun(main Task) (code int) {
	defer func() {
		if r := recover(); r != nil {
			if ec, ok := r.(ExitCode); ok {
				code = int(ec)
				return
			}
			panic(r)
		}
	}()

	ctx := log.New(context.Background(), os.Stderr)
	err := main(ctx)
	switch {
	case err == nil:
		return exitSuccess
	case errors.As(err, new(*ArgError)):
		ctx.Error().Log(err.Error())
		return exitArgError
	default:
		ctx.Error().Log(err.Error())
		return exitFailure
	}
}

// ArgError marks a command-line argument failure, which Run maps to the
// distinguished -1 exit code rather than the generic 1 used for every other
// failure.
type ArgError struct{ Message string }

func (e *ArgError) Error() string { return e.Message }

// NewArgError wraps a formatted message as an *ArgError.
func NewArgError(format string, args ...interface{}) error {
	return &ArgError{Message: errors.Errorf(format, args...).Error()}
}
