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

// Package ast holds the set of types used in the abstract syntax tree
// representation of a parsed C++ translation unit.
//
// The tree is a tagged variant: every node type embeds base, which supplies
// the Kind and AccessType shared by all nodes. Declaration-like nodes
// additionally embed Attrs, the attribute bitset described in the Attrs type.
package ast

import "fmt"

// Kind identifies the concrete shape of a Node. It is a closed set; the
// emitter and other consumers are expected to handle every value below.
type Kind int

const (
	KindHashDefine Kind = iota
	KindHashUndef
	KindHashInclude
	KindHashIf
	KindHashPragma
	KindVarType
	KindVar
	KindVarList
	KindEnum
	KindDocComment
	KindUsingDecl
	KindTypedefName
	KindTypedefNameList
	KindCompound
	KindFwdClsDecl
	KindFunction
	KindConstructor
	KindDestructor
	KindTypeConverter
	KindFunctionPtr
	KindIfBlock
	KindWhileBlock
	KindDoWhileBlock
	KindForBlock
	KindExpression
	KindSwitchBlock
	KindMacroCall
	KindBlob
)

var kindNames = [...]string{
	"HashDefine", "HashUndef", "HashInclude", "HashIf", "HashPragma",
	"VarType", "Var", "VarList", "Enum", "DocComment",
	"UsingDecl", "TypedefName", "TypedefNameList", "Compound", "FwdClsDecl",
	"Function", "Constructor", "Destructor", "TypeConverter", "FunctionPtr",
	"IfBlock", "WhileBlock", "DoWhileBlock", "ForBlock", "Expression",
	"SwitchBlock", "MacroCall", "Blob",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// AccessType is the access-specifier a node was declared under. It is only
// meaningful when the enclosing scope is a class-like Compound.
type AccessType int

const (
	AccessUnknown AccessType = iota
	AccessPublic
	AccessProtected
	AccessPrivate
)

func (a AccessType) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessProtected:
		return "protected"
	case AccessPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// Node is implemented by every type in the AST. Consumers dispatch on the
// concrete type with a type switch; Kind and Access exist for introspection,
// logging, and the access-specifier bookkeeping the printer needs.
type Node interface {
	Kind() Kind
	Access() AccessType
	SetAccess(AccessType)
}

// base is embedded (unexported, by value) in every node struct. It supplies
// the Node interface so individual node types never have to.
type base struct {
	kind   Kind
	access AccessType
}

func (b *base) Kind() Kind             { return b.kind }
func (b *base) Access() AccessType     { return b.access }
func (b *base) SetAccess(a AccessType) { b.access = a }

// Attrs is the 32-bit attribute vector carried by declaration-like nodes.
// Storage-class bits (Static|Extern|ExternC) are mutually exclusive in a
// well-formed tree; the emitter renders whichever is set first in that
// priority order.
type Attrs uint32

const (
	Static Attrs = 1 << iota
	Extern
	ExternC
	Const
	Volatile
	Virtual
	PureVirtual
	Inline
	Explicit
	Friend
	Override
	Final
	Typedef
	FuncParam
	Deleted
)

// Has reports whether every bit set in f is also set in a.
func (a Attrs) Has(f Attrs) bool { return a&f == f }

// RefType is the reference qualifier applied to a type reference.
type RefType int

const (
	NoRef RefType = iota
	ByRef         // &
	RValRef       // &&
)

// TypeMod is the pointer/reference/const-qualification shape of a type
// reference; see emitVarType in package emit for how it is rendered.
type TypeMod struct {
	RefType   RefType
	PtrLevel  int
	ConstBits uint64 // bit i (0 <= i <= PtrLevel) per the constBits invariant
}

// ConstAt reports whether the const-qualifier bit at position i is set.
// Bits at position > PtrLevel are ignored by the emitter.
func (m TypeMod) ConstAt(i int) bool {
	return m.ConstBits&(1<<uint(i)) != 0
}
