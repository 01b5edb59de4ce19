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

package emit

import (
	"io"

	"github.com/cppast/cppast/ast"
)

func (e *Emitter) emitAtom(a ast.Atom) {
	switch {
	case a.Expr != nil:
		e.emitExpr(a.Expr)
	case a.Type != nil:
		e.emitVarType(a.Type, false)
	default:
		io.WriteString(e.w, a.Token)
	}
}

// emitExpr renders an expression per the operator's positional class, then
// wraps the result in whatever flag-driven decoration applies.
func (e *Emitter) emitExpr(x *ast.Expression) {
	if x == nil {
		return
	}
	if x.Flags.Has(ast.FlagReturn) {
		io.WriteString(e.w, "return ")
	}
	if x.Flags.Has(ast.FlagThrow) {
		io.WriteString(e.w, "throw ")
	}
	if x.Flags.Has(ast.FlagDeleteArray) {
		io.WriteString(e.w, "delete[] ")
	} else if x.Flags.Has(ast.FlagDelete) {
		io.WriteString(e.w, "delete ")
	}
	if x.Flags.Has(ast.FlagNew) {
		io.WriteString(e.w, "new ")
	}

	open, close := "", ""
	if x.Flags.Has(ast.FlagSizeOf) {
		open, close = "sizeof(", ")"
	} else if x.Flags.Has(ast.FlagInitializer) {
		open, close = "{", "}"
	} else if x.Flags.Has(ast.FlagBracketed) {
		open, close = "(", ")"
	}
	io.WriteString(e.w, open)
	e.emitExprCore(x)
	io.WriteString(e.w, close)
}

func (e *Emitter) emitExprCore(x *ast.Expression) {
	switch x.Oper {
	case ast.OpNone:
		e.emitAtom(x.Expr1)
		return
	case ast.OpFunctionCall:
		e.emitAtom(x.Expr1)
		io.WriteString(e.w, "(")
		e.emitAtom(x.Expr2)
		io.WriteString(e.w, ")")
		return
	case ast.OpArrayElem:
		e.emitAtom(x.Expr1)
		io.WriteString(e.w, "[")
		e.emitAtom(x.Expr2)
		io.WriteString(e.w, "]")
		return
	case ast.OpCStyleCast:
		io.WriteString(e.w, "(")
		e.emitAtom(x.Expr1)
		io.WriteString(e.w, ") ")
		e.emitAtom(x.Expr2)
		return
	case ast.OpConstCast, ast.OpStaticCast, ast.OpDynamicCast, ast.OpReinterpretCast:
		io.WriteString(e.w, ast.CastKeyword(x.Oper))
		io.WriteString(e.w, "<")
		e.emitAtom(x.Expr1)
		io.WriteString(e.w, ">(")
		e.emitAtom(x.Expr2)
		io.WriteString(e.w, ")")
		return
	case ast.OpTernary:
		e.emitAtom(x.Expr1)
		io.WriteString(e.w, " ? ")
		e.emitAtom(x.Expr2)
		io.WriteString(e.w, " : ")
		e.emitAtom(x.Expr3)
		return
	}

	switch ast.ClassOf(x.Oper) {
	case ast.ClassUnaryPrefix:
		io.WriteString(e.w, x.Oper.Text())
		e.emitAtom(x.Expr1)
	case ast.ClassUnarySuffix:
		e.emitAtom(x.Expr1)
		io.WriteString(e.w, x.Oper.Text())
	case ast.ClassDereference:
		e.emitAtom(x.Expr1)
		io.WriteString(e.w, x.Oper.Text())
		e.emitAtom(x.Expr2)
	default: // ClassBinary and any unrecognised operator
		e.emitAtom(x.Expr1)
		if x.Oper == ast.OpComma {
			io.WriteString(e.w, ", ")
		} else {
			io.WriteString(e.w, " ")
			io.WriteString(e.w, x.Oper.Text())
			io.WriteString(e.w, " ")
		}
		e.emitAtom(x.Expr2)
	}
}
