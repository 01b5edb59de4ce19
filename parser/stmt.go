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

// parseStatement reads one statement inside a function/constructor body. It
// returns nil for a token it can't structure into anything (e.g. a bare
// ';'), in which case no node is appended for it but the token cursor has
// still advanced. A nested '{...}' block never reaches it: appendStatements
// flattens such blocks first.
func (p *Parser) parseStatement() ast.Node {
	if p.cur().kind == tokComment {
		text := p.next().text
		n := ast.NewDocComment()
		n.Text = text
		return n
	}
	if p.cur().kind == tokDirective {
		return p.parseDirective()
	}
	if p.isPunct(";") {
		p.pos++
		return nil
	}

	switch {
	case p.isKeyword("if"):
		return p.parseIfBlock()
	case p.isKeyword("while"):
		return p.parseWhileBlock()
	case p.isKeyword("do"):
		return p.parseDoWhileBlock()
	case p.isKeyword("for"):
		return p.parseForBlock()
	case p.isKeyword("switch"):
		return p.parseSwitchBlock()
	}

	if name, ok := p.tryIgnorableMacro(); ok {
		_ = name
		return p.parseStatement()
	}
	if mc, ok := p.tryKnownMacroCall(); ok {
		return mc
	}

	if p.looksLikeDeclaration() {
		return p.parseVarOrFunction(p.className, nil, "")
	}

	n := p.parseExpression()
	p.expectPunct(";")
	return n
}

// looksLikeDeclaration is the statement-level heuristic that disambiguates
// a local variable declaration from an expression statement without a
// symbol table: a leading storage/qualifier keyword, a builtin type word,
// or two identifiers in a row (or an identifier immediately followed by a
// pointer/reference/scope token) all read as the start of a type.
func (p *Parser) looksLikeDeclaration() bool {
	switch {
	case p.isKeyword("static"), p.isKeyword("const"), p.isKeyword("volatile"),
		p.isKeyword("typedef"), p.isKeyword("friend"), p.isKeyword("inline"):
		return true
	}
	if p.isIdent() && builtinTypeWords[p.cur().text] {
		return true
	}
	if p.isIdent() {
		nxt := p.peekAt(1)
		if nxt.kind == tokIdent {
			return true
		}
		if nxt.kind == tokPunct {
			switch nxt.text {
			case "*", "&", "&&", "::":
				return true
			}
		}
	}
	return false
}

// appendStatements reads one statement into *dst, flattening a bare nested
// '{...}' block (which has no dedicated AST node) into the same slice
// rather than dropping all but one of its statements.
func (p *Parser) appendStatements(dst *[]ast.Node) {
	if p.isPunct("{") {
		p.pos++
		for !p.isPunct("}") && !p.atEOF() {
			p.appendStatements(dst)
		}
		p.expectPunct("}")
		return
	}
	if s := p.parseStatement(); s != nil {
		*dst = append(*dst, s)
	}
}

func (p *Parser) parseStatementList() []ast.Node {
	var stmts []ast.Node
	if p.isPunct("{") {
		p.pos++
		for !p.isPunct("}") && !p.atEOF() {
			p.appendStatements(&stmts)
		}
		p.expectPunct("}")
		return stmts
	}
	// Single statement without braces; the emitter canonicalizes this into
	// a brace-delimited body regardless (§4.3).
	p.appendStatements(&stmts)
	return stmts
}

func (p *Parser) parseIfBlock() *ast.IfBlock {
	p.acceptKeyword("if")
	n := ast.NewIfBlock()
	p.expectPunct("(")
	n.Cond = p.parseExpression()
	p.expectPunct(")")
	n.Then = p.parseStatementList()
	if p.acceptKeyword("else") {
		if p.isKeyword("if") {
			n.ElseIfs = p.parseIfBlock()
		} else {
			n.Else = p.parseStatementList()
		}
	}
	return n
}

func (p *Parser) parseWhileBlock() *ast.WhileBlock {
	p.acceptKeyword("while")
	n := ast.NewWhileBlock()
	p.expectPunct("(")
	n.Cond = p.parseExpression()
	p.expectPunct(")")
	n.Body = p.parseStatementList()
	return n
}

func (p *Parser) parseDoWhileBlock() *ast.DoWhileBlock {
	p.acceptKeyword("do")
	n := ast.NewDoWhileBlock()
	n.Body = p.parseStatementList()
	if !p.acceptKeyword("while") {
		p.errorf("expected %q, got %q", "while", p.cur().text)
	}
	p.expectPunct("(")
	n.Cond = p.parseExpression()
	p.expectPunct(")")
	p.expectPunct(";")
	return n
}

func (p *Parser) parseForBlock() *ast.ForBlock {
	p.acceptKeyword("for")
	n := ast.NewForBlock()
	p.expectPunct("(")
	if !p.isPunct(";") {
		n.Init = p.parseExpression()
	}
	p.expectPunct(";")
	if !p.isPunct(";") {
		n.Cond = p.parseExpression()
	}
	p.expectPunct(";")
	if !p.isPunct(")") {
		n.Step = p.parseExpression()
	}
	p.expectPunct(")")
	n.Body = p.parseStatementList()
	return n
}

func (p *Parser) parseSwitchBlock() *ast.SwitchBlock {
	p.acceptKeyword("switch")
	n := ast.NewSwitchBlock()
	p.expectPunct("(")
	n.Cond = p.parseExpression()
	p.expectPunct(")")
	p.expectPunct("{")
	for !p.isPunct("}") && !p.atEOF() {
		var item ast.CaseItem
		switch {
		case p.acceptKeyword("case"):
			item.Expr = p.parseExpression()
			p.expectPunct(":")
		case p.acceptKeyword("default"):
			p.expectPunct(":")
		default:
			// Stray token inside a switch body that isn't a new case arm:
			// skip it to make forward progress.
			p.pos++
			continue
		}
		for !p.isKeyword("case") && !p.isKeyword("default") && !p.isPunct("}") && !p.atEOF() {
			p.appendStatements(&item.Body)
		}
		n.Cases = append(n.Cases, item)
	}
	p.expectPunct("}")
	return n
}
