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

// Package parser is a lenient recursive-descent reader for C++ translation
// units. It is not a compiler front end: there is no name resolution, no
// overload resolution, no template instantiation. Its job is to recover
// enough structure from real-world headers — vendor macros, partial
// preprocessor conditionals and all — to build the ast.Compound tree the
// emit package knows how to render.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cppast/cppast/ast"
	"github.com/cppast/cppast/config"
)

// Parser holds the token cursor and the configuration surface for one
// parse. It is not safe for concurrent use and is not reused across files;
// build a fresh Parser (or call Parse, which builds one internally) per
// translation unit.
type Parser struct {
	file      string
	toks      []token
	pos       int
	cfg       *config.Config
	errs      ErrorList
	className string // enclosing class-like compound's name, for constructor detection
}

// Parse reads src (the contents of file) and returns the root Compound
// representing the translation unit. The returned root is always non-nil,
// best-effort AST, even when errs is non-empty; callers that need the
// ParseFailure case test len(errs) > 0 rather than checking root for nil.
func Parse(file, src string, cfg *config.Config) (*ast.Compound, ErrorList) {
	if cfg == nil {
		cfg = config.New()
	}
	p := &Parser{file: file, toks: lex(src), cfg: cfg}
	root := ast.NewCompound(ast.CompoundTranslationUnit)
	p.parseMembers(root, true)
	return root, p.errs
}

func (p *Parser) errorf(format string, args ...interface{}) {
	t := p.cur()
	p.errs = append(p.errs, &SyntaxError{File: p.file, Line: t.line, Col: t.col, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) cur() token {
	if p.pos >= len(p.toks) {
		return token{kind: tokEOF}
	}
	return p.toks[p.pos]
}

func (p *Parser) peekAt(off int) token {
	i := p.pos + off
	if i >= len(p.toks) {
		return token{kind: tokEOF}
	}
	return p.toks[i]
}

func (p *Parser) atEOF() bool { return p.cur().kind == tokEOF }

func (p *Parser) next() token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

// skipComments advances past comment tokens, attaching nothing: comment
// text that matters to the caller is captured via takeDocComment instead.
func (p *Parser) skipComments() {
	for p.cur().kind == tokComment {
		p.pos++
	}
}

// takeDocComment consumes and returns a leading comment token as raw text,
// or "" if none is present.
func (p *Parser) takeDocComment() string {
	if p.cur().kind == tokComment {
		t := p.next()
		return t.text
	}
	return ""
}

func (p *Parser) isPunct(s string) bool {
	return p.cur().kind == tokPunct && p.cur().text == s
}

func (p *Parser) acceptPunct(s string) bool {
	if p.isPunct(s) {
		p.pos++
		return true
	}
	return false
}

func (p *Parser) expectPunct(s string) bool {
	if p.acceptPunct(s) {
		return true
	}
	p.errorf("expected %q, got %q", s, p.cur().text)
	return false
}

func (p *Parser) isKeyword(kw string) bool {
	return p.cur().kind == tokIdent && p.cur().text == kw
}

func (p *Parser) acceptKeyword(kw string) bool {
	if p.isKeyword(kw) {
		p.pos++
		return true
	}
	return false
}

func (p *Parser) isIdent() bool { return p.cur().kind == tokIdent }

func (p *Parser) acceptIdent() (string, bool) {
	if p.isIdent() {
		return p.next().text, true
	}
	return "", false
}

var reservedWords = map[string]bool{
	"class": true, "struct": true, "union": true, "namespace": true,
	"public": true, "protected": true, "private": true,
	"if": true, "else": true, "while": true, "do": true, "for": true,
	"switch": true, "case": true, "default": true, "return": true,
	"template": true, "typename": true, "using": true, "typedef": true,
	"enum": true, "friend": true, "virtual": true, "static": true,
	"extern": true, "const": true, "volatile": true, "inline": true,
	"explicit": true, "override": true, "final": true, "delete": true,
	"new": true, "sizeof": true, "throw": true, "operator": true,
}

// skipBalanced skips a balanced run of tokens starting at an open punct
// (one of '(', '[', '{') through its matching close, leaving pos just past
// the close token. It is used for ignorable-macro argument lists and for
// recovering from declarations the parser can't fully structure.
func (p *Parser) skipBalanced(open, close string) {
	depth := 0
	for !p.atEOF() {
		switch {
		case p.isPunct(open):
			depth++
			p.pos++
		case p.isPunct(close):
			depth--
			p.pos++
			if depth <= 0 {
				return
			}
		default:
			p.pos++
		}
	}
}

func parseIntLiteral(s string) (int64, bool) {
	s = strings.TrimRight(s, "uUlL")
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
