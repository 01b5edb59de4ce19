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

// Operator identifies the operation an Expression node performs. The set is
// open-ended in real C++ but closed here to what the printer knows how to
// render; unrecognised operators fall back to the binary class.
type Operator int

const (
	OpNone Operator = iota

	// Unary-prefix class.
	OpUnaryPlus
	OpUnaryMinus
	OpNot
	OpBitNot
	OpPreInc
	OpPreDec
	OpAddressOf
	OpDeref
	OpThrowExpr

	// Unary-suffix class.
	OpPostInc
	OpPostDec

	// Binary class.
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpShl
	OpShr
	OpLess
	OpGreater
	OpLessEq
	OpGreaterEq
	OpEq
	OpNotEq
	OpBitAnd
	OpBitOr
	OpBitXor
	OpLogAnd
	OpLogOr
	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign
	OpShlAssign
	OpShrAssign
	OpAndAssign
	OpOrAssign
	OpXorAssign
	OpComma

	// Dereference family.
	OpDot
	OpArrow
	OpArrowStar

	// Special class.
	OpFunctionCall
	OpArrayElem
	OpCStyleCast
	OpConstCast
	OpStaticCast
	OpDynamicCast
	OpReinterpretCast
	OpTernary
)

// OperatorClass is the positional category driving emit layout; see
// ClassOf.
type OperatorClass int

const (
	ClassNone OperatorClass = iota
	ClassUnaryPrefix
	ClassUnarySuffix
	ClassBinary
	ClassDereference
	ClassSpecial
)

var operatorText = map[Operator]string{
	OpUnaryPlus: "+", OpUnaryMinus: "-", OpNot: "!", OpBitNot: "~",
	OpPreInc: "++", OpPreDec: "--", OpAddressOf: "&", OpDeref: "*",
	OpThrowExpr: "throw ",
	OpPostInc:   "++", OpPostDec: "--",
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpShl: "<<", OpShr: ">>",
	OpLess: "<", OpGreater: ">", OpLessEq: "<=", OpGreaterEq: ">=",
	OpEq: "==", OpNotEq: "!=",
	OpBitAnd: "&", OpBitOr: "|", OpBitXor: "^",
	OpLogAnd: "&&", OpLogOr: "||",
	OpAssign: "=", OpAddAssign: "+=", OpSubAssign: "-=", OpMulAssign: "*=",
	OpDivAssign: "/=", OpModAssign: "%=", OpShlAssign: "<<=", OpShrAssign: ">>=",
	OpAndAssign: "&=", OpOrAssign: "|=", OpXorAssign: "^=",
	OpComma: ",",
	OpDot:   ".", OpArrow: "->", OpArrowStar: "->*",
}

var namedCastKeyword = map[Operator]string{
	OpConstCast:       "const_cast",
	OpStaticCast:      "static_cast",
	OpDynamicCast:     "dynamic_cast",
	OpReinterpretCast: "reinterpret_cast",
}

// CastKeyword returns the keyword spelling of a named C++ cast operator
// (const_cast, static_cast, ...); it returns "" for any other operator.
func CastKeyword(o Operator) string { return namedCastKeyword[o] }

// Text returns the source-level spelling of the operator, where one exists
// as a fixed token (binary, unary and dereference-family operators). Special
// operators without a single fixed spelling return "".
func (o Operator) Text() string { return operatorText[o] }

// ClassOf classifies an operator into the positional class that determines
// how the emit package's expression printer lays it out. This is an explicit table, not a range
// check over the Operator enumeration, since the numeric ordering of the
// constants above carries no meaning.
func ClassOf(o Operator) OperatorClass {
	switch o {
	case OpNone:
		return ClassNone
	case OpUnaryPlus, OpUnaryMinus, OpNot, OpBitNot, OpPreInc, OpPreDec,
		OpAddressOf, OpDeref, OpThrowExpr:
		return ClassUnaryPrefix
	case OpPostInc, OpPostDec:
		return ClassUnarySuffix
	case OpDot, OpArrow, OpArrowStar:
		return ClassDereference
	case OpFunctionCall, OpArrayElem, OpCStyleCast, OpConstCast, OpStaticCast,
		OpDynamicCast, OpReinterpretCast, OpTernary:
		return ClassSpecial
	default:
		return ClassBinary
	}
}

// IsAssignment reports whether o is one of the compound or plain assignment
// operators.
func IsAssignment(o Operator) bool {
	switch o {
	case OpAssign, OpAddAssign, OpSubAssign, OpMulAssign, OpDivAssign,
		OpModAssign, OpShlAssign, OpShrAssign, OpAndAssign, OpOrAssign, OpXorAssign:
		return true
	default:
		return false
	}
}
