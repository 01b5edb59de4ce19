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
	"testing"

	"github.com/cppast/cppast/ast"
	"github.com/cppast/cppast/config"
	"github.com/cppast/cppast/internal/assert"
)

func TestLexIdentPunctAndDirective(t *testing.T) {
	toks := lex("int x; // trailing\n#define FOO 1\n")
	var kinds []tokenKind
	for _, tok := range toks {
		kinds = append(kinds, tok.kind)
	}
	assert.To(t).For("token kinds").That(kinds).DeepEquals([]tokenKind{
		tokIdent, tokIdent, tokPunct, tokComment, tokDirective, tokEOF,
	})
	assert.To(t).For("directive text").ThatString(toks[4].text).Equals("#define FOO 1")
}

func TestLexMultiCharPunctGreedy(t *testing.T) {
	toks := lex("a->*b <<= c")
	assert.To(t).For("arrow-star").ThatString(toks[1].text).Equals("->*")
	assert.To(t).For("shl-assign").ThatString(toks[3].text).Equals("<<=")
}

func TestLexStringAndCharLiterals(t *testing.T) {
	toks := lex(`"a\"b" 'c'`)
	assert.To(t).For("string kind").That(toks[0].kind).Equals(tokString)
	assert.To(t).For("string text").ThatString(toks[0].text).Equals(`"a\"b"`)
	assert.To(t).For("char kind").That(toks[1].kind).Equals(tokChar)
}

func TestParseAPIDecoratorAttachedToVar(t *testing.T) {
	cfg := config.New().WithAPIDecorator("WXDLLIMPEXP_CORE")
	root, errs := Parse("t.h", "WXDLLIMPEXP_CORE int x;", cfg)
	assert.To(t).For("no errors").That(len(errs)).Equals(0)
	assert.To(t).For("one member").That(len(root.Members)).Equals(1)
	v, ok := root.Members[0].(*ast.Var)
	assert.To(t).For("is Var").That(ok).IsTrue()
	assert.To(t).For("apidecor").ThatString(v.APIDecor).Equals("WXDLLIMPEXP_CORE")
}

func TestParseKnownMacroBecomesMacroCall(t *testing.T) {
	cfg := config.New().WithKnownMacro("DECLARE_DYNAMIC_CLASS")
	root, errs := Parse("t.h", "DECLARE_DYNAMIC_CLASS(Widget)", cfg)
	assert.To(t).For("no errors").That(len(errs)).Equals(0)
	assert.To(t).For("one member").That(len(root.Members)).Equals(1)
	mc, ok := root.Members[0].(*ast.MacroCall)
	assert.To(t).For("is MacroCall").That(ok).IsTrue()
	assert.To(t).For("macro text").ThatString(mc.Text).Equals("DECLARE_DYNAMIC_CLASS ( Widget )")
}

func TestParseIgnorableMacroIsErased(t *testing.T) {
	// Ignorable macros are the unadorned-invocation, no-trailing-semicolon
	// style (DECLARE_NO_COPY_CLASS(Foo), wxDEPRECATED(...)): the macro
	// itself expands to a complete declaration or nothing at all, so the
	// source never puts a ';' after the call.
	cfg := config.New().WithIgnorableMacro("WXUNUSED")
	root, errs := Parse("t.h", "WXUNUSED(argc)\nint x;", cfg)
	assert.To(t).For("no errors").That(len(errs)).Equals(0)
	assert.To(t).For("macro invocation erased, only the Var survives").That(len(root.Members)).Equals(1)
	_, ok := root.Members[0].(*ast.Var)
	assert.To(t).For("is Var").That(ok).IsTrue()
}

func TestParseRenamedKeywordOverride(t *testing.T) {
	cfg := config.New().WithRenamedKeyword("ADESK_OVERRIDE", config.KeywordOverride)
	root, errs := Parse("t.h", "class A { public: void f() ADESK_OVERRIDE; };", cfg)
	assert.To(t).For("no errors").That(len(errs)).Equals(0)
	cls, ok := root.Members[0].(*ast.Compound)
	assert.To(t).For("is Compound").That(ok).IsTrue()
	fn, ok := cls.Members[0].(*ast.Function)
	assert.To(t).For("is Function").That(ok).IsTrue()
	assert.To(t).For("override bit set").That(fn.Attrs.Has(ast.Override)).IsTrue()
}

func TestParseConstructorDetectionByClassName(t *testing.T) {
	root, errs := Parse("t.h", "class Point { public: Point(int x); };", config.New())
	assert.To(t).For("no errors").That(len(errs)).Equals(0)
	cls := root.Members[0].(*ast.Compound)
	_, ok := cls.Members[0].(*ast.Constructor)
	assert.To(t).For("is Constructor").That(ok).IsTrue()
}

func TestParseNamespaceDoesNotEnableConstructorDetection(t *testing.T) {
	// A function sharing its enclosing namespace's name is an ordinary
	// function, not a constructor: namespaces are not class-like.
	root, errs := Parse("t.h", "namespace Point { void Point(int x); }", config.New())
	assert.To(t).For("no errors").That(len(errs)).Equals(0)
	ns := root.Members[0].(*ast.Compound)
	_, ok := ns.Members[0].(*ast.Function)
	assert.To(t).For("is Function, not Constructor").That(ok).IsTrue()
}

func TestParseRecoversFromUnstructuredToken(t *testing.T) {
	// A stray token that matches no declaration shape at all must not spin
	// the parser forever: it's recorded as a failure and skipped, and the
	// well-formed declaration that follows still comes through cleanly.
	root, errs := Parse("t.h", "@ int x;", config.New())
	assert.To(t).For("at least one error recorded").That(len(errs) > 0).IsTrue()
	assert.To(t).For("only the recovered var survives").That(len(root.Members)).Equals(1)
	v, ok := root.Members[0].(*ast.Var)
	assert.To(t).For("is Var").That(ok).IsTrue()
	assert.To(t).For("var name").ThatString(v.Decl.Name).Equals("x")
}

func TestParsePointerConstBitVector(t *testing.T) {
	root, errs := Parse("t.h", "int const * const x;", config.New())
	assert.To(t).For("no errors").That(len(errs)).Equals(0)
	v := root.Members[0].(*ast.Var)
	assert.To(t).For("ptr level").That(v.Type.Mod.PtrLevel).Equals(1)
	assert.To(t).For("bit 0 (pointee const)").That(v.Type.Mod.ConstAt(0)).IsTrue()
	assert.To(t).For("bit 1 (pointer itself const)").That(v.Type.Mod.ConstAt(1)).IsTrue()
}

func TestParseStructWithNoAccessLabelStaysUnknown(t *testing.T) {
	// A struct with no explicit public:/protected:/private: label anywhere
	// must not have its members' access silently defaulted from the C++
	// implicit-access rule: the real tool leaves it Unknown so the emitter
	// never synthesizes a label the source never had.
	root, errs := Parse("t.h", "struct S { int a; int b; };", config.New())
	assert.To(t).For("no errors").That(len(errs)).Equals(0)
	s := root.Members[0].(*ast.Compound)
	for _, m := range s.Members {
		assert.To(t).For("member access unknown").That(m.Access()).Equals(ast.AccessUnknown)
	}
}

func TestParseFriendClassForwardDecl(t *testing.T) {
	root, errs := Parse("t.h", "class A { friend class B; };", config.New())
	assert.To(t).For("no errors").That(len(errs)).Equals(0)
	a := root.Members[0].(*ast.Compound)
	fwd, ok := a.Members[0].(*ast.FwdClsDecl)
	assert.To(t).For("is FwdClsDecl").That(ok).IsTrue()
	assert.To(t).For("friend flag set").That(fwd.Friend).IsTrue()
	assert.To(t).For("name").ThatString(fwd.Name).Equals("B")
}

func TestParseFriendFunctionStillConsumedAsAttribute(t *testing.T) {
	// friend before anything other than class/struct/union is the existing
	// friend-function path: it stays an attribute bit on the Function, not
	// a FwdClsDecl.
	root, errs := Parse("t.h", "class A { friend void f(); };", config.New())
	assert.To(t).For("no errors").That(len(errs)).Equals(0)
	a := root.Members[0].(*ast.Compound)
	fn, ok := a.Members[0].(*ast.Function)
	assert.To(t).For("is Function").That(ok).IsTrue()
	assert.To(t).For("friend bit set").That(fn.Attrs.Has(ast.Friend)).IsTrue()
}

func TestParseFunctionDecor2(t *testing.T) {
	cfg := config.New().WithAPIDecorator("WXCALLBACK")
	root, errs := Parse("t.h", "void WXCALLBACK f();", cfg)
	assert.To(t).For("no errors").That(len(errs)).Equals(0)
	fn, ok := root.Members[0].(*ast.Function)
	assert.To(t).For("is Function").That(ok).IsTrue()
	assert.To(t).For("decor2").ThatString(fn.Decor2).Equals("WXCALLBACK")
}

func TestParseEnumBodyAsBlobWhenComplex(t *testing.T) {
	cfg := config.New()
	cfg.EnumBodyAsBlob = true
	src := "enum E {\n#ifdef FOO\nA,\n#endif\nB\n};"
	root, errs := Parse("t.h", src, cfg)
	assert.To(t).For("no errors").That(len(errs)).Equals(0)
	e := root.Members[0].(*ast.Enum)
	assert.To(t).For("blob captured").That(len(e.AsBlob) > 0).IsTrue()
	assert.To(t).For("no structured items").That(len(e.Items)).Equals(0)
}
