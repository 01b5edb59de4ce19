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

// MemberInit is one entry of a constructor's member-initializer list:
// `member(expr)`.
type MemberInit struct {
	Member string
	Value  *Expression
}

// Function is a free or member function declaration or definition.
type Function struct {
	base

	Attrs          Attrs
	TemplateParams []string
	APIDecor       string
	ReturnType     *VarType
	// Decor2 is a second, optional API-decoration token rendered between
	// the return type and the name (e.g. a calling-convention macro such
	// as WXDLLIMPEXP_CORE appearing after the return type rather than
	// before it, as opposed to APIDecor/decor1 which precedes it).
	Decor2 string
	Name   string
	Params []Node // each element is *Var or *FunctionPtr
	Body   *Compound
}

// NewFunction builds a Function node.
func NewFunction() *Function {
	return &Function{base: base{kind: KindFunction}}
}

// Constructor is a class constructor: no return type, an optional
// member-initializer list, and the possibility of `= delete`.
type Constructor struct {
	base

	Attrs    Attrs
	APIDecor string
	Name     string
	Params   []Node
	Inits    []MemberInit
	Body     *Compound
}

// NewConstructor builds a Constructor node.
func NewConstructor() *Constructor {
	return &Constructor{base: base{kind: KindConstructor}}
}

// Destructor is a class destructor. Its stored Name always carries the
// leading `~`.
type Destructor struct {
	base

	Attrs Attrs
	Name  string
	Body  *Compound
}

// NewDestructor builds a Destructor node.
func NewDestructor() *Destructor {
	return &Destructor{base: base{kind: KindDestructor}}
}

// TypeConverter is a user-defined conversion operator:
// `operator TargetType() [const];`.
type TypeConverter struct {
	base

	Attrs      Attrs
	TargetType *VarType
	Body       *Compound
}

// NewTypeConverter builds a TypeConverter node.
func NewTypeConverter() *TypeConverter {
	return &TypeConverter{base: base{kind: KindTypeConverter}}
}

// FunctionPtr is a function-pointer typed declarator:
// `ReturnType (*Name)(Params...)`.
type FunctionPtr struct {
	base

	Attrs      Attrs
	ReturnType *VarType
	// Decor2 is the same second API-decoration token Function carries,
	// rendered between the return type's "(" and the "*" (§4.3 decor2).
	Decor2 string
	Name   string
	Params []Node
	Decl   VarDecl
}

// NewFunctionPtr builds a FunctionPtr node.
func NewFunctionPtr() *FunctionPtr {
	return &FunctionPtr{base: base{kind: KindFunctionPtr}}
}
