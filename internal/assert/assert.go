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

// Package assert is a small fluent assertion helper for tests. It trades
// the generality of a full matcher library for call sites that read like
// plain English: assert.To(t).For("case").That(got).Equals(want).
package assert

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Manager is the entry point returned by To; it binds assertions to a
// *testing.T.
type Manager struct {
	t *testing.T
}

// To returns a Manager that reports failures against t.
func To(t *testing.T) Manager {
	t.Helper()
	return Manager{t: t}
}

// For starts a named assertion; name is included in any failure message so
// table-driven tests can identify which case failed.
func (m Manager) For(name string, args ...interface{}) Assertion {
	if len(args) > 0 {
		name = fmt.Sprintf(name, args...)
	}
	return Assertion{t: m.t, name: name}
}

// Assertion holds the name of the current check; the That/ThatSlice/
// ThatString calls below attach a value to it.
type Assertion struct {
	t    *testing.T
	name string
}

// That attaches a value of any type to the assertion.
func (a Assertion) That(got interface{}) Value {
	return Value{t: a.t, name: a.name, got: got}
}

// ThatSlice is an alias of That retained for call sites that compare
// slices; the comparison itself is the same.
func (a Assertion) ThatSlice(got interface{}) Value {
	return a.That(got)
}

// ThatString attaches a string to the assertion.
func (a Assertion) ThatString(got string) Value {
	return a.That(got)
}

// Value is a value under test, ready for a terminal comparison.
type Value struct {
	t    *testing.T
	name string
	got  interface{}
}

// Equals fails the test if got and want differ under reflect.DeepEqual.
func (v Value) Equals(want interface{}) {
	v.t.Helper()
	if !reflect.DeepEqual(v.got, want) {
		v.t.Errorf("%s: got %+v, want %+v", v.name, v.got, want)
	}
}

// DeepEquals fails the test if got and want differ, reporting a field-level
// diff via go-cmp rather than a flat %+v dump.
func (v Value) DeepEquals(want interface{}) {
	v.t.Helper()
	if diff := cmp.Diff(want, v.got); diff != "" {
		v.t.Errorf("%s: mismatch (-want +got):\n%s", v.name, diff)
	}
}

// IsNil fails the test if the value is non-nil.
func (v Value) IsNil() {
	v.t.Helper()
	if v.got != nil {
		rv := reflect.ValueOf(v.got)
		switch rv.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
			if rv.IsNil() {
				return
			}
		}
		v.t.Errorf("%s: got %+v, want nil", v.name, v.got)
	}
}

// IsTrue fails the test unless the value is the boolean true.
func (v Value) IsTrue() {
	v.t.Helper()
	if b, ok := v.got.(bool); !ok || !b {
		v.t.Errorf("%s: got %+v, want true", v.name, v.got)
	}
}
