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

package parser

import "github.com/cppast/cppast/ast"

var binaryOps = map[string]ast.Operator{
	"+": ast.OpAdd, "-": ast.OpSub, "*": ast.OpMul, "/": ast.OpDiv, "%": ast.OpMod,
	"<<": ast.OpShl, ">>": ast.OpShr,
	"<": ast.OpLess, ">": ast.OpGreater, "<=": ast.OpLessEq, ">=": ast.OpGreaterEq,
	"==": ast.OpEq, "!=": ast.OpNotEq,
	"&": ast.OpBitAnd, "|": ast.OpBitOr, "^": ast.OpBitXor,
	"&&": ast.OpLogAnd, "||": ast.OpLogOr,
}

var assignOps = map[string]ast.Operator{
	"=": ast.OpAssign, "+=": ast.OpAddAssign, "-=": ast.OpSubAssign,
	"*=": ast.OpMulAssign, "/=": ast.OpDivAssign, "%=": ast.OpModAssign,
	"<<=": ast.OpShlAssign, ">>=": ast.OpShrAssign,
	"&=": ast.OpAndAssign, "|=": ast.OpOrAssign, "^=": ast.OpXorAssign,
}

// precedence is the binding strength of each binary operator, highest
// number binds tightest. Operators absent from this table (assignment,
// comma) are handled at their own fixed level outside this table.
var precedence = map[ast.Operator]int{
	ast.OpMul: 10, ast.OpDiv: 10, ast.OpMod: 10,
	ast.OpAdd: 9, ast.OpSub: 9,
	ast.OpShl: 8, ast.OpShr: 8,
	ast.OpLess: 7, ast.OpGreater: 7, ast.OpLessEq: 7, ast.OpGreaterEq: 7,
	ast.OpEq: 6, ast.OpNotEq: 6,
	ast.OpBitAnd: 5, ast.OpBitXor: 4, ast.OpBitOr: 3,
	ast.OpLogAnd: 2, ast.OpLogOr: 1,
}

func atomOf(x *ast.Expression) ast.Atom {
	if x == nil {
		return ast.Atom{}
	}
	if x.Oper == ast.OpNone && x.Flags == 0 {
		return x.Expr1
	}
	return ast.Atom{Expr: x}
}

// parseExpression parses a full expression down to and including the
// comma operator and trailing/leading assignment.
func (p *Parser) parseExpression() *ast.Expression {
	return p.parseComma()
}

func (p *Parser) parseComma() *ast.Expression {
	e := p.parseAssignment()
	for p.isPunct(",") {
		p.pos++
		rhs := p.parseAssignment()
		n := ast.NewExpression(ast.OpComma)
		n.Expr1 = atomOf(e)
		n.Expr2 = atomOf(rhs)
		e = n
	}
	return e
}

func (p *Parser) parseAssignment() *ast.Expression {
	lhs := p.parseTernary()
	if p.cur().kind == tokPunct {
		if op, ok := assignOps[p.cur().text]; ok {
			p.pos++
			rhs := p.parseAssignment()
			n := ast.NewExpression(op)
			n.Expr1 = atomOf(lhs)
			n.Expr2 = atomOf(rhs)
			return n
		}
	}
	return lhs
}

func (p *Parser) parseTernary() *ast.Expression {
	cond := p.parseBinary(0)
	if p.acceptPunct("?") {
		thenE := p.parseAssignment()
		p.expectPunct(":")
		elseE := p.parseAssignment()
		n := ast.NewExpression(ast.OpTernary)
		n.Expr1 = atomOf(cond)
		n.Expr2 = atomOf(thenE)
		n.Expr3 = atomOf(elseE)
		return n
	}
	return cond
}

func (p *Parser) parseBinary(minPrec int) *ast.Expression {
	lhs := p.parseUnaryAndPostfix()
	for {
		if p.cur().kind != tokPunct {
			return lhs
		}
		op, ok := binaryOps[p.cur().text]
		if !ok {
			return lhs
		}
		prec := precedence[op]
		if prec < minPrec {
			return lhs
		}
		p.pos++
		rhs := p.parseBinary(prec + 1)
		n := ast.NewExpression(op)
		n.Expr1 = atomOf(lhs)
		n.Expr2 = atomOf(rhs)
		lhs = n
	}
}

func (p *Parser) parseUnaryAndPostfix() *ast.Expression {
	switch {
	case p.acceptPunct("++"):
		n := ast.NewExpression(ast.OpPreInc)
		n.Expr1 = atomOf(p.parseUnaryAndPostfix())
		return n
	case p.acceptPunct("--"):
		n := ast.NewExpression(ast.OpPreDec)
		n.Expr1 = atomOf(p.parseUnaryAndPostfix())
		return n
	case p.acceptPunct("!"):
		n := ast.NewExpression(ast.OpNot)
		n.Expr1 = atomOf(p.parseUnaryAndPostfix())
		return n
	case p.acceptPunct("~"):
		n := ast.NewExpression(ast.OpBitNot)
		n.Expr1 = atomOf(p.parseUnaryAndPostfix())
		return n
	case p.isPunct("-"):
		p.pos++
		n := ast.NewExpression(ast.OpUnaryMinus)
		n.Expr1 = atomOf(p.parseUnaryAndPostfix())
		return n
	case p.isPunct("+"):
		p.pos++
		n := ast.NewExpression(ast.OpUnaryPlus)
		n.Expr1 = atomOf(p.parseUnaryAndPostfix())
		return n
	case p.isPunct("*"):
		p.pos++
		n := ast.NewExpression(ast.OpDeref)
		n.Expr1 = atomOf(p.parseUnaryAndPostfix())
		return n
	case p.isPunct("&"):
		p.pos++
		n := ast.NewExpression(ast.OpAddressOf)
		n.Expr1 = atomOf(p.parseUnaryAndPostfix())
		return n
	case p.acceptKeyword("sizeof"):
		bracketed := p.acceptPunct("(")
		inner := p.parseUnaryAndPostfix()
		if bracketed {
			p.expectPunct(")")
		}
		n := ast.NewExpression(ast.OpNone)
		n.Expr1 = atomOf(inner)
		n.Flags |= ast.FlagSizeOf
		return n
	case p.acceptKeyword("new"):
		inner := p.parseUnaryAndPostfix()
		n := ast.NewExpression(ast.OpNone)
		n.Expr1 = atomOf(inner)
		n.Flags |= ast.FlagNew
		return n
	case p.acceptKeyword("delete"):
		array := p.acceptPunct("[")
		if array {
			p.expectPunct("]")
		}
		inner := p.parseUnaryAndPostfix()
		n := ast.NewExpression(ast.OpNone)
		n.Expr1 = atomOf(inner)
		if array {
			n.Flags |= ast.FlagDeleteArray
		} else {
			n.Flags |= ast.FlagDelete
		}
		return n
	case p.acceptKeyword("throw"):
		n := ast.NewExpression(ast.OpNone)
		if !p.isPunct(";") && !p.isPunct(")") && !p.isPunct(",") {
			n.Expr1 = atomOf(p.parseAssignment())
		}
		n.Flags |= ast.FlagThrow
		return n
	case p.acceptKeyword("return"):
		n := ast.NewExpression(ast.OpNone)
		if !p.isPunct(";") {
			n.Expr1 = atomOf(p.parseExpression())
		}
		n.Flags |= ast.FlagReturn
		return n
	}

	if kw, ok := namedCastKeywords[p.peekKeywordText()]; ok {
		return p.parseNamedCast(kw)
	}

	return p.parsePostfix(p.parsePrimary())
}

var namedCastKeywords = map[string]ast.Operator{
	"const_cast": ast.OpConstCast, "static_cast": ast.OpStaticCast,
	"dynamic_cast": ast.OpDynamicCast, "reinterpret_cast": ast.OpReinterpretCast,
}

func (p *Parser) peekKeywordText() string {
	if p.isIdent() {
		return p.cur().text
	}
	return ""
}

func (p *Parser) parseNamedCast(op ast.Operator) *ast.Expression {
	p.pos++
	p.expectPunct("<")
	vt := p.parseVarType()
	p.expectPunct(">")
	p.expectPunct("(")
	inner := p.parseExpression()
	p.expectPunct(")")
	n := ast.NewExpression(op)
	n.Expr1 = ast.Atom{Type: vt}
	n.Expr2 = atomOf(inner)
	return n
}

func (p *Parser) parsePostfix(e *ast.Expression) *ast.Expression {
	for {
		switch {
		case p.acceptPunct("("):
			args := p.parseCallArgs()
			n := ast.NewExpression(ast.OpFunctionCall)
			n.Expr1 = atomOf(e)
			n.Expr2 = args
			e = n
		case p.acceptPunct("["):
			idx := p.parseExpression()
			p.expectPunct("]")
			n := ast.NewExpression(ast.OpArrayElem)
			n.Expr1 = atomOf(e)
			n.Expr2 = atomOf(idx)
			e = n
		case p.acceptPunct("."):
			name, _ := p.acceptIdent()
			n := ast.NewExpression(ast.OpDot)
			n.Expr1 = atomOf(e)
			n.Expr2 = ast.Atom{Token: name}
			e = n
		case p.acceptPunct("->*"):
			name, _ := p.acceptIdent()
			n := ast.NewExpression(ast.OpArrowStar)
			n.Expr1 = atomOf(e)
			n.Expr2 = ast.Atom{Token: name}
			e = n
		case p.acceptPunct("->"):
			name, _ := p.acceptIdent()
			n := ast.NewExpression(ast.OpArrow)
			n.Expr1 = atomOf(e)
			n.Expr2 = ast.Atom{Token: name}
			e = n
		case p.acceptPunct("++"):
			n := ast.NewExpression(ast.OpPostInc)
			n.Expr1 = atomOf(e)
			e = n
		case p.acceptPunct("--"):
			n := ast.NewExpression(ast.OpPostDec)
			n.Expr1 = atomOf(e)
			e = n
		default:
			return e
		}
	}
}

// parseCallArgs parses a comma-separated argument list up to and including
// the closing ')' and folds it into a single Atom, matching the Expression model's single Expr2 slot
// for a FunctionCall's argument list.
func (p *Parser) parseCallArgs() ast.Atom {
	if p.isPunct(")") {
		p.pos++
		return ast.Atom{}
	}
	first := p.parseAssignment()
	args := first
	for p.acceptPunct(",") {
		rhs := p.parseAssignment()
		n := ast.NewExpression(ast.OpComma)
		n.Expr1 = atomOf(args)
		n.Expr2 = atomOf(rhs)
		args = n
	}
	p.expectPunct(")")
	return atomOf(args)
}

func (p *Parser) parsePrimary() *ast.Expression {
	switch {
	case p.acceptPunct("("):
		inner := p.parseExpression()
		p.expectPunct(")")
		n := ast.NewExpression(ast.OpNone)
		n.Expr1 = atomOf(inner)
		n.Flags |= ast.FlagBracketed
		return n
	case p.acceptPunct("{"):
		inner := p.parseExpression()
		p.acceptPunct("}")
		n := ast.NewExpression(ast.OpNone)
		n.Expr1 = atomOf(inner)
		n.Flags |= ast.FlagInitializer
		return n
	default:
		t := p.next()
		n := ast.NewExpression(ast.OpNone)
		n.Expr1 = ast.Atom{Token: t.text}
		return n
	}
}
