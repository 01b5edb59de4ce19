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
)

// parseMembers fills c.Members until a matching '}' (or EOF at the top
// level). access starts Unknown and is only ever set by an explicit
// public:/protected:/private: label seen in the source — it is not
// pre-seeded from C++'s implicit per-class/struct/union access rules, since
// a member with no preceding label in the source has no access-specifier
// line to round-trip and must stay Unknown through emit (§4.4 step 5).
func (p *Parser) parseMembers(c *ast.Compound, topLevel bool) {
	access := ast.AccessUnknown
	for {
		if p.atEOF() {
			return
		}
		if !topLevel && p.isPunct("}") {
			p.pos++
			p.acceptPunct(";")
			return
		}
		if a, ok := p.tryAccessSpecifier(); ok {
			access = a
			continue
		}
		start := p.pos
		m := p.parseMember()
		if m == nil || p.pos == start {
			if p.atEOF() || (!topLevel && p.isPunct("}")) {
				continue
			}
			// Could not structure this token as any known member; skip it
			// to make forward progress rather than looping forever. This
			// is the parser's leniency showing: unrecognised constructs
			// become a recovery skip, not a hard failure. A non-nil m that
			// consumed no token (e.g. a stray punctuation character that
			// matches no declaration shape at all and so bottoms out in an
			// empty best-effort Var) is just as much a dead end as a nil
			// one and is discarded rather than appended.
			p.errorf("unexpected token %q", p.cur().text)
			p.pos++
			continue
		}
		if c.IsClassLike() {
			m.SetAccess(access)
		}
		c.Members = append(c.Members, m)
	}
}

func (p *Parser) tryAccessSpecifier() (ast.AccessType, bool) {
	save := p.pos
	if p.isKeyword("public") || p.isKeyword("protected") || p.isKeyword("private") {
		kw := p.cur().text
		if p.peekAt(1).kind == tokPunct && p.peekAt(1).text == ":" {
			p.pos += 2
			switch kw {
			case "public":
				return ast.AccessPublic, true
			case "protected":
				return ast.AccessProtected, true
			case "private":
				return ast.AccessPrivate, true
			}
		}
	}
	p.pos = save
	return ast.AccessUnknown, false
}

// parseMember dispatches one top-level-or-member declaration. A token that
// starts nothing recognised yields a best-effort Var from parseVarOrFunction
// rather than nil; parseMembers detects that case by the unmoved cursor.
func (p *Parser) parseMember() ast.Node {
	if p.cur().kind == tokComment {
		text := p.next().text
		n := ast.NewDocComment()
		n.Text = text
		return n
	}
	if p.cur().kind == tokDirective {
		return p.parseDirective()
	}

	if name, ok := p.tryIgnorableMacro(); ok {
		_ = name
		return p.parseMember() // the whole invocation was erased; continue
	}
	if mc, ok := p.tryKnownMacroCall(); ok {
		return mc
	}

	templateParams := p.tryTemplateParams()

	apiDecor := p.tryAPIDecorator()

	switch {
	case p.isKeyword("using"):
		return p.parseUsing(templateParams)
	case p.isKeyword("typedef"):
		return p.parseTypedef()
	case p.isKeyword("enum"):
		return p.parseEnum()
	case p.isKeyword("namespace"):
		return p.parseNamespace()
	case p.isKeyword("class"), p.isKeyword("struct"), p.isKeyword("union"):
		return p.parseClassLike(templateParams, apiDecor, false)
	case p.isKeyword("friend") && isClassLikeKeyword(p.peekAt(1)):
		p.next() // friend
		return p.parseClassLike(templateParams, apiDecor, true)
	case p.isKeyword("extern") && p.peekAt(1).kind == tokString:
		return p.parseExternC()
	}

	return p.parseVarOrFunction(p.className, templateParams, apiDecor)
}

func (p *Parser) tryAPIDecorator() string {
	if p.isIdent() && p.cfg.IsAPIDecorator(p.cur().text) {
		return p.next().text
	}
	return ""
}

func (p *Parser) tryIgnorableMacro() (string, bool) {
	if p.isIdent() && p.cfg.IsIgnorableMacro(p.cur().text) {
		name := p.next().text
		if p.isPunct("(") {
			p.skipBalanced("(", ")")
		}
		return name, true
	}
	return "", false
}

func (p *Parser) tryKnownMacroCall() (*ast.MacroCall, bool) {
	if !p.isIdent() || !p.cfg.IsKnownMacro(p.cur().text) {
		return nil, false
	}
	start := p.pos
	p.pos++
	if p.isPunct("(") {
		p.skipBalanced("(", ")")
	}
	text := p.tokenRangeText(start, p.pos)
	n := ast.NewMacroCall()
	n.Text = text
	return n, true
}

// tokenRangeText reconstructs a plausible source rendering of tokens
// [from, to) by joining their literal text with single spaces. It is only
// used for opaque payloads (macro calls) where exact original spacing
// isn't part of the contract.
func (p *Parser) tokenRangeText(from, to int) string {
	var sb strings.Builder
	for i := from; i < to; i++ {
		if i > from {
			sb.WriteString(" ")
		}
		sb.WriteString(p.toks[i].text)
	}
	return sb.String()
}

func (p *Parser) parseDirective() ast.Node {
	t := p.next()
	body := strings.TrimSpace(t.text[1:]) // drop leading '#'
	kw, rest := splitFirstWord(body)
	switch kw {
	case "define":
		name, def := splitFirstWord(rest)
		n := ast.NewHashDefine()
		n.Name = name
		n.Definition = strings.TrimSpace(def)
		return n
	case "undef":
		n := ast.NewHashUndef()
		n.Name = strings.TrimSpace(rest)
		return n
	case "include":
		n := ast.NewHashInclude()
		n.Payload = strings.TrimSpace(rest)
		return n
	case "pragma":
		n := ast.NewHashPragma()
		n.Payload = strings.TrimSpace(rest)
		return n
	case "if":
		return p.hashIf(ast.CondIf, rest)
	case "ifdef":
		return p.hashIf(ast.CondIfDef, rest)
	case "ifndef":
		return p.hashIf(ast.CondIfNDef, rest)
	case "elif":
		return p.hashIf(ast.CondElIf, rest)
	case "else":
		return p.hashIf(ast.CondElse, rest)
	case "endif":
		return p.hashIf(ast.CondEndIf, rest)
	default:
		n := ast.NewHashPragma()
		n.Payload = body
		return n
	}
}

func (p *Parser) hashIf(t ast.CondType, cond string) *ast.HashIf {
	n := ast.NewHashIf(t)
	n.Cond = strings.TrimSpace(cond)
	return n
}

func splitFirstWord(s string) (first, rest string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

// tryTemplateParams consumes a leading `template<...>` header, if present,
// and returns its parameter list as raw text fragments.
func (p *Parser) tryTemplateParams() []string {
	if !p.acceptKeyword("template") {
		return nil
	}
	if !p.expectPunct("<") {
		return nil
	}
	var params []string
	depth := 1
	var cur strings.Builder
	for !p.atEOF() && depth > 0 {
		switch {
		case p.isPunct("<"):
			depth++
			cur.WriteString("<")
			p.pos++
		case p.isPunct(">"):
			depth--
			p.pos++
			if depth == 0 {
				break
			}
			cur.WriteString(">")
		case depth == 1 && p.isPunct(","):
			params = append(params, strings.TrimSpace(cur.String()))
			cur.Reset()
			p.pos++
		default:
			if cur.Len() > 0 {
				cur.WriteString(" ")
			}
			cur.WriteString(p.cur().text)
			p.pos++
		}
	}
	if cur.Len() > 0 {
		params = append(params, strings.TrimSpace(cur.String()))
	}
	return params
}

func (p *Parser) parseUsing(templateParams []string) ast.Node {
	p.acceptKeyword("using")
	n := ast.NewUsingDecl()
	n.TemplateParams = templateParams
	name, _ := p.acceptIdent()
	n.Name = name
	if p.acceptPunct("=") {
		n.Target = p.parseVarType()
	}
	p.expectPunct(";")
	return n
}

func (p *Parser) parseTypedef() ast.Node {
	p.acceptKeyword("typedef")
	vt := p.parseVarType()
	var decls []ast.VarDecl
	decls = append(decls, p.parseDeclarator())
	for p.acceptPunct(",") {
		decls = append(decls, p.parseDeclarator())
	}
	p.expectPunct(";")
	if len(decls) == 1 {
		n := ast.NewTypedefName()
		v := ast.NewVar()
		v.Type = vt
		v.Decl = decls[0]
		n.Var = v
		return n
	}
	n := ast.NewTypedefNameList()
	n.Type = vt
	n.Decls = decls
	return n
}

func (p *Parser) parseEnum() ast.Node {
	p.acceptKeyword("enum")
	n := ast.NewEnum()
	if p.acceptKeyword("class") {
		n.IsClass = true
	}
	if p.isIdent() {
		n.Name = p.next().text
	}
	if p.acceptPunct(":") {
		if name, ok := p.acceptIdent(); ok {
			n.Underlying = name
		}
	}
	if !p.acceptPunct("{") {
		p.acceptPunct(";")
		return n
	}
	if p.cfg.EnumBodyAsBlob && p.looksComplexEnumBody() {
		start := p.pos
		p.skipBalanced("{", "}")
		n.AsBlob = p.tokenRangeText(start, p.pos-1)
		p.acceptPunct(";")
		return n
	}
	for !p.isPunct("}") && !p.atEOF() {
		if p.cur().kind == tokDirective {
			n.Items = append(n.Items, ast.EnumItem{Raw: p.parseDirective()})
			continue
		}
		name, _ := p.acceptIdent()
		item := ast.EnumItem{Name: name}
		if p.acceptPunct("=") {
			item.Value = p.parseExpression()
		}
		n.Items = append(n.Items, item)
		if !p.acceptPunct(",") {
			break
		}
	}
	p.expectPunct("}")
	p.acceptPunct(";")
	return n
}

// looksComplexEnumBody is a cheap heuristic: a body containing a nested
// preprocessor directive before its closing brace is considered complex.
func (p *Parser) looksComplexEnumBody() bool {
	depth := 1
	for i := p.pos; i < len(p.toks); i++ {
		switch {
		case p.toks[i].kind == tokPunct && p.toks[i].text == "{":
			depth++
		case p.toks[i].kind == tokPunct && p.toks[i].text == "}":
			depth--
			if depth == 0 {
				return false
			}
		case p.toks[i].kind == tokDirective:
			return true
		}
	}
	return false
}

// isClassLikeKeyword reports whether t is class/struct/union, used to
// disambiguate `friend class Foo;` from a friend function/member
// declaration (where "friend" is consumed as a plain attribute bit).
func isClassLikeKeyword(t token) bool {
	return t.kind == tokIdent && (t.text == "class" || t.text == "struct" || t.text == "union")
}

func compoundTypeFor(kw string) ast.CompoundType {
	switch kw {
	case "class":
		return ast.CompoundClass
	case "struct":
		return ast.CompoundStruct
	case "union":
		return ast.CompoundUnion
	default:
		return ast.CompoundTranslationUnit
	}
}

func (p *Parser) parseNamespace() ast.Node {
	p.acceptKeyword("namespace")
	c := ast.NewCompound(ast.CompoundNamespace)
	if name, ok := p.acceptIdent(); ok {
		c.Name = name
	}
	p.expectPunct("{")
	// A namespace is not class-like: clear className so a function here
	// sharing the namespace's name isn't mistaken for a constructor.
	saved := p.className
	p.className = ""
	p.parseMembers(c, false)
	p.className = saved
	return c
}

func (p *Parser) parseExternC() ast.Node {
	p.acceptKeyword("extern")
	p.next() // the string literal, typically "C"
	c := ast.NewCompound(ast.CompoundExternC)
	p.expectPunct("{")
	saved := p.className
	p.className = ""
	p.parseMembers(c, false)
	p.className = saved
	return c
}

func (p *Parser) parseClassLike(templateParams []string, apiDecor string, friend bool) ast.Node {
	kw := p.next().text
	ct := compoundTypeFor(kw)
	var name string
	if n, ok := p.acceptIdent(); ok {
		name = n
	}
	if !p.isPunct("{") && !p.isPunct(":") {
		p.acceptPunct(";")
		n := ast.NewFwdClsDecl()
		n.TemplateParams = templateParams
		n.Friend = friend
		n.CompoundType = ct
		n.Name = name
		return n
	}
	c := ast.NewCompound(ct)
	c.TemplateParams = templateParams
	c.Name = name
	c.APIDecor = apiDecor
	if p.acceptPunct(":") {
		for {
			access := ast.AccessUnknown
			switch {
			case p.acceptKeyword("public"):
				access = ast.AccessPublic
			case p.acceptKeyword("protected"):
				access = ast.AccessProtected
			case p.acceptKeyword("private"):
				access = ast.AccessPrivate
			}
			base, _ := p.acceptIdent()
			for p.acceptPunct("::") {
				more, _ := p.acceptIdent()
				base = base + "::" + more
			}
			c.Inherits = append(c.Inherits, ast.InheritEntry{AccessType: access, BaseName: base})
			if !p.acceptPunct(",") {
				break
			}
		}
	}
	p.expectPunct("{")
	saved := p.className
	p.className = name
	p.parseMembers(c, false)
	p.className = saved
	return c
}
