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

import (
	"strings"

	"github.com/cppast/cppast/ast"
	"github.com/cppast/cppast/config"
)

var builtinTypeWords = map[string]bool{
	"void": true, "bool": true, "char": true, "wchar_t": true,
	"short": true, "int": true, "long": true, "float": true,
	"double": true, "signed": true, "unsigned": true, "auto": true,
}

// tryAttrKeyword consumes a single leading attribute/storage keyword, also
// recognising any configured renamed-keyword alias, and folds it into
// attrs. It reports whether it consumed anything.
func (p *Parser) tryAttrKeyword(attrs *ast.Attrs) bool {
	switch {
	case p.acceptKeyword("static"):
		*attrs |= ast.Static
		return true
	case p.isKeyword("extern") && p.peekAt(1).kind == tokString:
		p.pos += 2
		*attrs |= ast.ExternC
		return true
	case p.acceptKeyword("extern"):
		*attrs |= ast.Extern
		return true
	case p.acceptKeyword("friend"):
		*attrs |= ast.Friend
		return true
	case p.acceptKeyword("typedef"):
		*attrs |= ast.Typedef
		return true
	case p.acceptKeyword("volatile"):
		*attrs |= ast.Volatile
		return true
	}
	if p.isIdent() {
		if kw, ok := p.cfg.KeywordFor(p.cur().text); ok {
			switch kw {
			case config.KeywordVirtual:
				p.pos++
				*attrs |= ast.Virtual
				return true
			case config.KeywordConst:
				p.pos++
				*attrs |= ast.Const
				return true
			}
		}
	}
	if p.acceptKeyword("explicit") {
		*attrs |= ast.Explicit
		return true
	}
	if p.acceptKeyword("const") {
		*attrs |= ast.Const
		return true
	}
	if p.acceptKeyword("inline") {
		*attrs |= ast.Inline
		return true
	}
	return false
}

func (p *Parser) parsePostQualifiers(attrs *ast.Attrs) {
	for {
		switch {
		case p.acceptKeyword("const"):
			*attrs |= ast.Const
		case p.acceptPunct("="):
			if p.isKeyword("delete") {
				p.pos++
				*attrs |= ast.Deleted
			} else if p.cur().kind == tokNumber && p.cur().text == "0" {
				p.pos++
				*attrs |= ast.PureVirtual
			}
		default:
			if p.isIdent() {
				if kw, ok := p.cfg.KeywordFor(p.cur().text); ok && kw == config.KeywordOverride {
					p.pos++
					*attrs |= ast.Override
					continue
				}
				if kw, ok := p.cfg.KeywordFor(p.cur().text); ok && kw == config.KeywordFinal {
					p.pos++
					*attrs |= ast.Final
					continue
				}
			}
			return
		}
	}
}

// parseVarType consumes attribute keywords, a base type name (built-in
// words plus at most one custom type-name chunk), and a pointer/reference/
// const-bit suffix.
func (p *Parser) parseVarType() *ast.VarType {
	vt := ast.NewVarType()
	for p.tryAttrKeyword(&vt.Attrs) {
	}

	var words []string
	for p.isIdent() && builtinTypeWords[p.cur().text] {
		words = append(words, p.next().text)
	}
	if len(words) == 0 && p.isIdent() {
		words = append(words, p.identChunk())
	}
	vt.BaseName = strings.Join(words, " ")

	ptrLevel := 0
	var constBits uint64
	for {
		switch {
		case p.acceptKeyword("const"):
			constBits |= 1 << uint(ptrLevel)
		case p.acceptPunct("*"):
			ptrLevel++
		default:
			goto doneMods
		}
	}
doneMods:
	vt.Mod = ast.TypeMod{PtrLevel: ptrLevel, ConstBits: constBits}
	if p.acceptPunct("&&") {
		vt.Mod.RefType = ast.RValRef
	} else if p.acceptPunct("&") {
		vt.Mod.RefType = ast.ByRef
	}
	return vt
}

// identChunk consumes one identifier, any trailing "::ident" scope
// segments, and one balanced "<...>" template-argument suffix if present,
// returning it all joined as a single type-name token.
func (p *Parser) identChunk() string {
	var sb strings.Builder
	if name, ok := p.acceptIdent(); ok {
		sb.WriteString(name)
	}
	for p.acceptPunct("::") {
		sb.WriteString("::")
		if name, ok := p.acceptIdent(); ok {
			sb.WriteString(name)
		}
	}
	if p.isPunct("<") {
		sb.WriteString(p.consumeAngleArgs())
	}
	return sb.String()
}

// consumeAngleArgs consumes a balanced '<' ... '>' template-argument list
// and returns its literal text, reconstructed with single spaces between
// tokens.
func (p *Parser) consumeAngleArgs() string {
	start := p.pos
	depth := 0
	for !p.atEOF() {
		switch {
		case p.isPunct("<"):
			depth++
			p.pos++
		case p.isPunct(">"):
			depth--
			p.pos++
			if depth == 0 {
				return p.tokenRangeText(start, p.pos)
			}
		case p.isPunct(">>") && depth >= 2:
			// lexed as a single shift token inside nested template args
			depth -= 2
			p.pos++
			if depth <= 0 {
				return p.tokenRangeText(start, p.pos)
			}
		default:
			p.pos++
		}
	}
	return p.tokenRangeText(start, p.pos)
}

// parseDeclarator reads a VarDecl: name, optional array-size suffixes, and
// optional initializer.
func (p *Parser) parseDeclarator() ast.VarDecl {
	var d ast.VarDecl
	if name, ok := p.acceptIdent(); ok {
		d.Name = name
	}
	for p.acceptPunct("[") {
		if p.isPunct("]") {
			d.ArraySizes = append(d.ArraySizes, nil)
		} else {
			d.ArraySizes = append(d.ArraySizes, p.parseExpression())
		}
		p.expectPunct("]")
	}
	switch {
	case p.acceptPunct("="):
		d.Assign = ast.AssignUsingEqual
		d.Value = p.parseExpression()
	case p.acceptPunct("("):
		d.Assign = ast.AssignUsingBracket
		d.Value = p.parseExpression()
		p.expectPunct(")")
	case p.acceptPunct("{"):
		d.Assign = ast.AssignUsingBraces
		d.Value = p.parseExpression()
		p.expectPunct("}")
	}
	return d
}
