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

// AssignKind is how a VarDecl's initializer is introduced.
type AssignKind int

const (
	AssignNone AssignKind = iota
	AssignUsingEqual
	AssignUsingBracket
	AssignUsingBraces
)

// VarDecl is the declarator part of a variable: its name, any array-size
// suffixes, and its initializer.
type VarDecl struct {
	Name       string
	ArraySizes []*Expression // nil entry means an empty `[]`
	Assign     AssignKind
	Value      *Expression
}

// VarType is a type reference: attribute bits, a base type name or nested
// compound, and a pointer/reference/const shape.
type VarType struct {
	base

	Attrs    Attrs
	BaseName string
	Nested   *Compound // set when the type is an inline class/struct/union/enum
	Mod      TypeMod
}

// NewVarType builds a VarType node.
func NewVarType() *VarType {
	return &VarType{base: base{kind: KindVarType}}
}

// Var is a single variable declaration: an optional API decoration, a type,
// and a declarator.
type Var struct {
	base

	APIDecor string
	Type     *VarType
	Decl     VarDecl
}

// NewVar builds a Var node.
func NewVar() *Var {
	return &Var{base: base{kind: KindVar}}
}

// VarList is a shared base type followed by one or more declarators, as in
// `int a, *b, c[4];`.
type VarList struct {
	base

	Type  *VarType
	Decls []VarDecl
}

// NewVarList builds a VarList node.
func NewVarList() *VarList {
	return &VarList{base: base{kind: KindVarList}}
}

// EnumItem is a single member of an Enum: either a plain name with an
// optional value, or a raw embedded node for preprocessor-conditional
// entries interleaved between enumerators.
type EnumItem struct {
	Name  string
	Value *Expression // nil when the item has no explicit value
	Raw   Node        // set instead of Name/Value for e.g. an embedded HashIf
}

// Enum is an enum or enum class declaration.
type Enum struct {
	base

	Attrs     Attrs
	IsClass   bool
	Name      string
	Underlying string
	AsBlob    string // set when the body was kept opaque (enum-body-as-blob)
	Items     []EnumItem
}

// NewEnum builds an Enum node.
func NewEnum() *Enum {
	return &Enum{base: base{kind: KindEnum}}
}

// TypedefName is a single `typedef <type> <name>;` declaration.
type TypedefName struct {
	base

	Var *Var
}

// NewTypedefName builds a TypedefName node.
func NewTypedefName() *TypedefName {
	return &TypedefName{base: base{kind: KindTypedefName}}
}

// TypedefNameList groups several TypedefName declarators sharing a common
// base type, as in `typedef int a, *b;`.
type TypedefNameList struct {
	base

	Type  *VarType
	Decls []VarDecl
}

// NewTypedefNameList builds a TypedefNameList node.
func NewTypedefNameList() *TypedefNameList {
	return &TypedefNameList{base: base{kind: KindTypedefNameList}}
}

// UsingDecl is a `using name [= target];` declaration, optionally templated.
type UsingDecl struct {
	base

	TemplateParams []string
	Name           string
	Target         *VarType // nil for a plain using-declaration (not an alias)
}

// NewUsingDecl builds a UsingDecl node.
func NewUsingDecl() *UsingDecl {
	return &UsingDecl{base: base{kind: KindUsingDecl}}
}

// FwdClsDecl is a forward class/struct/union declaration.
type FwdClsDecl struct {
	base

	TemplateParams []string
	Friend         bool
	CompoundType   CompoundType
	Name           string
}

// NewFwdClsDecl builds a FwdClsDecl node.
func NewFwdClsDecl() *FwdClsDecl {
	return &FwdClsDecl{base: base{kind: KindFwdClsDecl}}
}

// DocComment carries a raw comment's text through to emit verbatim.
type DocComment struct {
	base

	Text string
}

// NewDocComment builds a DocComment node.
func NewDocComment() *DocComment {
	return &DocComment{base: base{kind: KindDocComment}}
}

// MacroCall is a known-macro invocation kept as literal text.
type MacroCall struct {
	base

	Text string
}

// NewMacroCall builds a MacroCall node.
func NewMacroCall() *MacroCall {
	return &MacroCall{base: base{kind: KindMacroCall}}
}

// Blob is an opaque run of source text the parser declined to structure,
// emitted verbatim with no indent and no terminator.
type Blob struct {
	base

	Text string
}

// NewBlob builds a Blob node.
func NewBlob() *Blob {
	return &Blob{base: base{kind: KindBlob}}
}
