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

// IfBlock is an `if (cond) {...} [else {...}]` statement. An `else if` is
// chained through ElseIfs; Else holds the statements of a plain else branch.
type IfBlock struct {
	base

	Cond      *Expression
	Then      []Node
	Else      []Node
	ElseIfs   *IfBlock // non-nil for `else if`, mutually exclusive with Else
}

// NewIfBlock builds an IfBlock node.
func NewIfBlock() *IfBlock {
	return &IfBlock{base: base{kind: KindIfBlock}}
}

// WhileBlock is a `while (cond) {...}` statement.
type WhileBlock struct {
	base

	Cond *Expression
	Body []Node
}

// NewWhileBlock builds a WhileBlock node.
func NewWhileBlock() *WhileBlock {
	return &WhileBlock{base: base{kind: KindWhileBlock}}
}

// DoWhileBlock is a `do {...} while (cond);` statement.
type DoWhileBlock struct {
	base

	Body []Node
	Cond *Expression
}

// NewDoWhileBlock builds a DoWhileBlock node.
func NewDoWhileBlock() *DoWhileBlock {
	return &DoWhileBlock{base: base{kind: KindDoWhileBlock}}
}

// ForBlock is a `for (init; cond; step) {...}` statement. Any of Init,
// Cond, Step may be nil for an elided slot.
type ForBlock struct {
	base

	Init *Expression
	Cond *Expression
	Step *Expression
	Body []Node
}

// NewForBlock builds a ForBlock node.
func NewForBlock() *ForBlock {
	return &ForBlock{base: base{kind: KindForBlock}}
}

// CaseItem is one `case expr:` or `default:` arm of a SwitchBlock. Expr is
// nil for the default arm.
type CaseItem struct {
	Expr *Expression
	Body []Node
}

// SwitchBlock is a `switch (cond) { case ...: ... }` statement.
type SwitchBlock struct {
	base

	Cond  *Expression
	Cases []CaseItem
}

// NewSwitchBlock builds a SwitchBlock node.
func NewSwitchBlock() *SwitchBlock {
	return &SwitchBlock{base: base{kind: KindSwitchBlock}}
}
