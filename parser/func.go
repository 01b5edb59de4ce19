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

// scanAttrs consumes a run of leading attribute/storage keywords and
// returns the accumulated bitset.
func (p *Parser) scanAttrs() ast.Attrs {
	var attrs ast.Attrs
	for p.tryAttrKeyword(&attrs) {
	}
	return attrs
}

// fillBaseTypeAndMods fills in vt.BaseName and vt.Mod; vt.Attrs must
// already hold whatever scanAttrs produced.
func (p *Parser) fillBaseTypeAndMods(vt *ast.VarType) {
	tmp := ast.NewVarType()
	*tmp = *p.parseVarType()
	vt.BaseName = tmp.BaseName
	vt.Mod = tmp.Mod
	vt.Nested = tmp.Nested
}

func (p *Parser) finishBodyOrSemiCompound() *ast.Compound {
	if p.acceptPunct("{") {
		return p.parseBody()
	}
	p.expectPunct(";")
	return nil
}

// parseBody reads statements up to (and consuming) the closing '}'. The
// returned Compound is used purely as an ordered statement container, the
// same role a function/constructor/destructor/type-converter body plays;
// it is never treated as namespace-like or class-like.
func (p *Parser) parseBody() *ast.Compound {
	c := ast.NewStatementBody()
	for !p.isPunct("}") && !p.atEOF() {
		p.appendStatements(&c.Members)
	}
	p.expectPunct("}")
	return c
}

type fnDeclarator struct {
	name   string
	params []ast.Node
}

// tryFunctionDeclarator peeks for `ident (` and, if found, consumes the
// name and full parameter list.
func (p *Parser) tryFunctionDeclarator() (fnDeclarator, bool) {
	if !p.isIdent() {
		return fnDeclarator{}, false
	}
	save := p.pos
	name := p.next().text
	if !p.isPunct("(") {
		p.pos = save
		return fnDeclarator{}, false
	}
	params := p.parseParams()
	return fnDeclarator{name: name, params: params}, true
}

// parseParams reads a parenthesized, comma-separated parameter list. Each
// entry becomes a *ast.Var; function-pointer-typed parameters are not
// currently recovered structurally and fall back to a best-effort Var
// reading of their return type as the parameter's type.
func (p *Parser) parseParams() []ast.Node {
	p.expectPunct("(")
	var params []ast.Node
	if p.acceptPunct(")") {
		return params
	}
	if p.isKeyword("void") && p.peekAt(1).kind == tokPunct && p.peekAt(1).text == ")" {
		p.pos += 2
		return params
	}
	for {
		pv := ast.NewVar()
		pv.Type = p.parseVarType()
		pv.Type.Attrs |= ast.FuncParam
		pv.Decl = p.parseDeclarator()
		params = append(params, pv)
		if !p.acceptPunct(",") {
			break
		}
	}
	p.expectPunct(")")
	return params
}

// isOperatorOverloadToken reports whether the token right after `operator`
// starts an operator-overload signature (operator+, operator==, ...)
// rather than a user-defined conversion function (operator Type()). Those
// overloads are out of the taxonomy this parser structures; they fall
// through to the generic declaration path and typically surface as a Blob
// or parse error, which is acceptable for the lenient contract.
func (p *Parser) isOperatorOverloadToken() bool {
	if p.cur().kind != tokPunct {
		return false
	}
	switch p.cur().text {
	case "(", "[":
		return true
	default:
		_, isBinary := binaryOps[p.cur().text]
		_, isAssign := assignOps[p.cur().text]
		return isBinary || isAssign
	}
}

// parseVarOrFunction is the declaration heuristic: it disambiguates a
// destructor, a conversion operator, a constructor (when className
// matches), a function, a function-pointer variable, or a plain variable
// declaration list, all of which share an ambiguous token prefix until
// enough of the declarator has been seen.
func (p *Parser) parseVarOrFunction(className string, templateParams []string, apiDecor string) ast.Node {
	attrs := p.scanAttrs()

	if p.acceptPunct("~") {
		name, _ := p.acceptIdent()
		d := ast.NewDestructor()
		d.Attrs = attrs
		d.Name = "~" + name
		p.expectPunct("(")
		p.expectPunct(")")
		p.parsePostQualifiers(&d.Attrs)
		d.Body = p.finishBodyOrSemiCompound()
		return d
	}

	if p.isKeyword("operator") && !p.isOperatorOverloadToken() && p.acceptKeyword("operator") {
		vt := p.parseVarType()
		tc := ast.NewTypeConverter()
		tc.Attrs = attrs
		tc.TargetType = vt
		p.expectPunct("(")
		p.expectPunct(")")
		p.parsePostQualifiers(&tc.Attrs)
		tc.Body = p.finishBodyOrSemiCompound()
		return tc
	}

	if className != "" && p.isIdent() && p.cur().text == className &&
		p.peekAt(1).kind == tokPunct && p.peekAt(1).text == "(" {
		name := p.next().text
		ctor := ast.NewConstructor()
		ctor.Attrs = attrs
		ctor.APIDecor = apiDecor
		ctor.Name = name
		ctor.Params = p.parseParams()
		if p.acceptPunct(":") {
			for {
				member, _ := p.acceptIdent()
				p.expectPunct("(")
				var val *ast.Expression
				if !p.isPunct(")") {
					val = p.parseExpression()
				}
				p.expectPunct(")")
				ctor.Inits = append(ctor.Inits, ast.MemberInit{Member: member, Value: val})
				if !p.acceptPunct(",") {
					break
				}
			}
		}
		p.parsePostQualifiers(&ctor.Attrs)
		if ctor.Attrs.Has(ast.Deleted) {
			p.expectPunct(";")
			return ctor
		}
		ctor.Body = p.finishBodyOrSemiCompound()
		return ctor
	}

	vt := ast.NewVarType()
	vt.Attrs = attrs
	p.fillBaseTypeAndMods(vt)
	for p.tryAttrKeyword(&vt.Attrs) {
	}

	// decor2 (§4.3): a second API-decoration token between the return type
	// and the name/pointer-star, distinct from decor1/apiDecor which
	// precedes the whole declaration. For a function-pointer declarator it
	// sits inside the parens, between '(' and '*'; for a plain function it
	// sits directly before the name. Each branch below tries it only after
	// committing to that shape, and rewinds it along with everything else
	// on failure.
	if p.isPunct("(") {
		start := p.pos
		p.pos++
		decor2 := p.tryAPIDecorator()
		p.acceptPunct("*")
		name, hasName := p.acceptIdent()
		if hasName && p.acceptPunct(")") && p.isPunct("(") {
			fp := ast.NewFunctionPtr()
			fp.Attrs = vt.Attrs
			fp.ReturnType = vt
			fp.Decor2 = decor2
			fp.Name = name
			fp.Params = p.parseParams()
			if p.acceptPunct("=") {
				fp.Decl.Assign = ast.AssignUsingEqual
				fp.Decl.Value = p.parseExpression()
			}
			p.expectPunct(";")
			return fp
		}
		p.pos = start
	}

	declStart := p.pos
	decor2 := p.tryAPIDecorator()
	if decl, isFn := p.tryFunctionDeclarator(); isFn {
		f := ast.NewFunction()
		f.Attrs = vt.Attrs
		f.TemplateParams = templateParams
		f.APIDecor = apiDecor
		f.ReturnType = vt
		f.Decor2 = decor2
		f.Name = decl.name
		f.Params = decl.params
		p.parsePostQualifiers(&f.Attrs)
		if f.Attrs.Has(ast.Deleted) {
			p.expectPunct(";")
			return f
		}
		f.Body = p.finishBodyOrSemiCompound()
		return f
	}
	p.pos = declStart

	first := p.parseDeclarator()
	if !p.isPunct(",") {
		p.expectPunct(";")
		v := ast.NewVar()
		v.APIDecor = apiDecor
		v.Type = vt
		v.Decl = first
		return v
	}
	list := ast.NewVarList()
	list.Type = vt
	list.Decls = append(list.Decls, first)
	for p.acceptPunct(",") {
		list.Decls = append(list.Decls, p.parseDeclarator())
	}
	p.expectPunct(";")
	return list
}
