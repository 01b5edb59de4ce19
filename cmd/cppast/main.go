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

// cppast is the command-line driver for the parse/emit pipeline. It runs in
// one of two modes: single-file (parse one path and report success or
// failure) or full-test (walk an input tree, emit each parsed file to a
// mirror output tree, and byte-diff the result against a master tree).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/cppast/cppast/config"
	"github.com/cppast/cppast/emit"
	"github.com/cppast/cppast/internal/app"
	"github.com/cppast/cppast/internal/log"
	"github.com/cppast/cppast/parser"
)

var fullTest = flag.String("full-test", "",
	"run in full-test mode: comma-separated input,output,master directories")

func main() {
	app.Name = "cppast"
	app.ShortHelp = "cppast parses C++ translation units and pretty-prints their AST."
	app.Run(run)
}

func run(ctx log.Context) error {
	flag.Parse()
	if *fullTest != "" {
		dirs, err := splitDirs(*fullTest)
		if err != nil {
			return app.NewArgError("%s", err)
		}
		return runFullTest(ctx, dirs[0], dirs[1], dirs[2])
	}
	args := flag.Args()
	if len(args) != 1 {
		return app.NewArgError("expected exactly one input file, got %d", len(args))
	}
	return runSingleFile(ctx, args[0])
}

func splitDirs(spec string) ([3]string, error) {
	var dirs [3]string
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return dirs, fmt.Errorf("-full-test wants input,output,master, got %q", spec)
	}
	copy(dirs[:], parts)
	return dirs, nil
}

// runSingleFile parses path and writes the emitted text to stdout. Any
// parse error is logged at Error severity and makes it return an error
// without emitting anything.
func runSingleFile(ctx log.Context, path string) error {
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	root, errs := parser.Parse(path, string(src), config.New())
	if len(errs) > 0 {
		for _, e := range errs {
			ctx.Error().Log(e.Error())
		}
		return fmt.Errorf("parse failed for %s", path)
	}
	var buf bytes.Buffer
	emit.New(&buf).Emit(root, 0, true)
	_, err = os.Stdout.Write(buf.Bytes())
	return err
}

// runFullTest walks input recursively; every regular file is parsed, its
// emitted form written to the mirror path under output, then byte-compared
// against the mirror path under master. Parse failures and diff mismatches
// are each collected into their own list; the run fails if either is
// non-empty.
func runFullTest(ctx log.Context, input, output, master string) error {
	var parseFailures, diffFailures []string

	walkErr := filepath.Walk(input, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(input, path)
		if err != nil {
			return err
		}
		outPath := filepath.Join(output, rel)
		masterPath := filepath.Join(master, rel)

		src, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}
		root, errs := parser.Parse(path, string(src), config.New())
		if len(errs) > 0 {
			for _, e := range errs {
				ctx.Warning().Log(e.Error())
			}
			parseFailures = append(parseFailures, rel)
			return nil
		}

		var buf bytes.Buffer
		emit.New(&buf).Emit(root, 0, true)

		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		if err := ioutil.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return err
		}

		wantBytes, err := ioutil.ReadFile(masterPath)
		if err != nil || !bytes.Equal(buf.Bytes(), wantBytes) {
			diffFailures = append(diffFailures, rel)
		}
		return nil
	})
	if walkErr != nil {
		return walkErr
	}

	ctx.Info().Logf("%d files parsed, %d parse failures, %d diff failures",
		countInputFiles(input), len(parseFailures), len(diffFailures))
	for _, f := range parseFailures {
		ctx.Error().Logf("parse failure: %s", f)
	}
	for _, f := range diffFailures {
		ctx.Error().Logf("diff failure: %s", f)
	}

	if len(parseFailures) == 0 && len(diffFailures) == 0 {
		return nil
	}
	return fmt.Errorf("%d parse failures, %d diff failures", len(parseFailures), len(diffFailures))
}

func countInputFiles(input string) int {
	n := 0
	filepath.Walk(input, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			n++
		}
		return nil
	})
	return n
}
