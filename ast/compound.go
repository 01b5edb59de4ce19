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

// CompoundType is the kind of brace-enclosed scope a Compound represents.
type CompoundType int

const (
	CompoundTranslationUnit CompoundType = iota
	CompoundNamespace
	CompoundClass
	CompoundStruct
	CompoundUnion
	CompoundExternC

	// CompoundStatementBody marks the non-class-like, non-namespace-like
	// form used purely as an ordered statement container for a
	// function/constructor/destructor/type-converter body (§3.5). It is
	// distinct from CompoundTranslationUnit so IsNamespaceLike correctly
	// reports false for it instead of matching the zero value.
	CompoundStatementBody
)

func (t CompoundType) String() string {
	switch t {
	case CompoundNamespace:
		return "namespace"
	case CompoundClass:
		return "class"
	case CompoundStruct:
		return "struct"
	case CompoundUnion:
		return "union"
	case CompoundExternC:
		return "extern \"C\""
	default:
		return ""
	}
}

// InheritEntry is one item of a class's base-class list.
type InheritEntry struct {
	AccessType AccessType
	BaseName   string
}

// Compound is any brace-enclosed scope: a namespace, class, struct, union,
// extern-C block, or the translation-unit root. It exclusively owns its
// member list; members retain insertion order, which is emit order.
type Compound struct {
	base

	CompoundType   CompoundType
	TemplateParams []string
	Name           string
	APIDecor       string
	Inherits       []InheritEntry
	Members        []Node
}

// NewCompound builds a Compound node of the given type.
func NewCompound(t CompoundType) *Compound {
	return &Compound{base: base{kind: KindCompound}, CompoundType: t}
}

// NewStatementBody builds a Compound used purely as an ordered statement
// container for a function/constructor/destructor/type-converter body. It
// is never namespace-like or class-like; emitCompoundBody renders it
// directly without the header line NewCompound-rooted kinds would produce.
func NewStatementBody() *Compound {
	return &Compound{base: base{kind: KindCompound}, CompoundType: CompoundStatementBody}
}

// IsClassLike reports whether c is a class, struct, or union.
func (c *Compound) IsClassLike() bool {
	switch c.CompoundType {
	case CompoundClass, CompoundStruct, CompoundUnion:
		return true
	default:
		return false
	}
}

// IsNamespaceLike reports whether c is a namespace or the translation-unit
// root; class-like compounds, extern-C blocks and statement bodies report
// false.
func (c *Compound) IsNamespaceLike() bool {
	switch c.CompoundType {
	case CompoundNamespace, CompoundTranslationUnit:
		return true
	default:
		return false
	}
}
