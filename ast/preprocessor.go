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

package ast

// HashDefine is a `#define name [definition]` directive.
type HashDefine struct {
	base

	Name       string
	Definition string
}

// NewHashDefine builds a HashDefine node.
func NewHashDefine() *HashDefine {
	return &HashDefine{base: base{kind: KindHashDefine}}
}

// HashUndef is a `#undef name` directive.
type HashUndef struct {
	base

	Name string
}

// NewHashUndef builds a HashUndef node.
func NewHashUndef() *HashUndef {
	return &HashUndef{base: base{kind: KindHashUndef}}
}

// HashInclude is a `#include payload` directive; Payload retains whatever
// delimiters (`<>` or `""`) the source used.
type HashInclude struct {
	base

	Payload string
}

// NewHashInclude builds a HashInclude node.
func NewHashInclude() *HashInclude {
	return &HashInclude{base: base{kind: KindHashInclude}}
}

// HashPragma is a `#pragma payload` directive.
type HashPragma struct {
	base

	Payload string
}

// NewHashPragma builds a HashPragma node.
func NewHashPragma() *HashPragma {
	return &HashPragma{base: base{kind: KindHashPragma}}
}

// CondType is the directive kind of a HashIf node.
type CondType int

const (
	CondIf CondType = iota
	CondIfDef
	CondIfNDef
	CondElIf
	CondElse
	CondEndIf
)

// HashIf is any of #if/#ifdef/#ifndef/#elif/#else/#endif. It drives the
// emitter's shared preprocessor-indent counter; see the Emitter type.
type HashIf struct {
	base

	CondType CondType
	Cond     string
}

// NewHashIf builds a HashIf node.
func NewHashIf(t CondType) *HashIf {
	return &HashIf{base: base{kind: KindHashIf}, CondType: t}
}
