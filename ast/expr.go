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

// ExprFlags is the flag bitset wrapping an Expression's rendering.
type ExprFlags uint32

const (
	FlagReturn ExprFlags = 1 << iota
	FlagThrow
	FlagInitializer
	FlagBracketed
	FlagNew
	FlagDelete
	FlagDeleteArray
	FlagSizeOf
)

func (f ExprFlags) Has(g ExprFlags) bool { return f&g == g }

// Atom is a leaf within an expression: a raw token, a nested expression, or
// a type expression. Exactly one of the three fields is ever populated, so
// callers may check them in any order; by convention consumers check Expr,
// then Type, then fall back to Token.
type Atom struct {
	Token string
	Expr  *Expression
	Type  *VarType
}

// IsEmpty reports whether the atom carries no payload at all, which is
// legal for elided slots such as a for-loop's empty condition.
func (a Atom) IsEmpty() bool {
	return a.Token == "" && a.Expr == nil && a.Type == nil
}

// Expression is a single expression-tree node: an operator tag plus up to
// three operand atoms, wrapped in zero or more ExprFlags.
type Expression struct {
	base

	Oper  Operator
	Expr1 Atom
	Expr2 Atom
	Expr3 Atom
	Flags ExprFlags
}

// NewExpression builds an Expression node with the given operator.
func NewExpression(oper Operator) *Expression {
	return &Expression{base: base{kind: KindExpression}, Oper: oper}
}
