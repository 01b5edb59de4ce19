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

import (
	"testing"

	"github.com/cppast/cppast/internal/assert"
)

func TestCompoundClassification(t *testing.T) {
	cases := []struct {
		name      string
		ct        CompoundType
		wantClass bool
		wantNS    bool
	}{
		{"class", CompoundClass, true, false},
		{"struct", CompoundStruct, true, false},
		{"union", CompoundUnion, true, false},
		{"namespace", CompoundNamespace, false, true},
		{"translation unit", CompoundTranslationUnit, false, true},
		{"extern C", CompoundExternC, false, false},
	}
	for _, c := range cases {
		comp := NewCompound(c.ct)
		assert.To(t).For("IsClassLike(%s)", c.name).That(comp.IsClassLike()).Equals(c.wantClass)
		assert.To(t).For("IsNamespaceLike(%s)", c.name).That(comp.IsNamespaceLike()).Equals(c.wantNS)
	}
}

func TestStatementBodyIsNeitherClassLikeNorNamespaceLike(t *testing.T) {
	body := NewStatementBody()
	assert.To(t).For("IsClassLike(body)").That(body.IsClassLike()).Equals(false)
	assert.To(t).For("IsNamespaceLike(body)").That(body.IsNamespaceLike()).Equals(false)
}

func TestForEachMemberOrderAndStop(t *testing.T) {
	root := NewCompound(CompoundNamespace)
	root.Name = "n"
	v1, v2, v3 := NewVar(), NewVar(), NewVar()
	v1.Decl.Name, v2.Decl.Name, v3.Decl.Name = "a", "b", "c"
	root.Members = []Node{v1, v2, v3}

	var seen []string
	err := ForEachMember(root, func(m Node) error {
		seen = append(seen, m.(*Var).Decl.Name)
		if m.(*Var).Decl.Name == "b" {
			return Stop
		}
		return nil
	})
	assert.To(t).For("stop error").That(err == error(Stop)).IsTrue()
	assert.To(t).For("visited before stop").ThatSlice(seen).DeepEquals([]string{"a", "b"})
}

func TestAttrsHas(t *testing.T) {
	a := Static | Const | Virtual
	assert.To(t).For("has Static").That(a.Has(Static)).IsTrue()
	assert.To(t).For("has Static|Const").That(a.Has(Static | Const)).IsTrue()
	assert.To(t).For("has Extern").That(a.Has(Extern)).Equals(false)
}

func TestTypeModConstAt(t *testing.T) {
	// `const char * const * p`: ptrLevel 2, const on the base (bit 0) and on
	// the outermost pointer (bit 2), not on the middle pointer (bit 1).
	m := TypeMod{PtrLevel: 2, ConstBits: (1 << 0) | (1 << 2)}
	assert.To(t).For("const bit 0").That(m.ConstAt(0)).IsTrue()
	assert.To(t).For("const bit 1").That(m.ConstAt(1)).Equals(false)
	assert.To(t).For("const bit 2").That(m.ConstAt(2)).IsTrue()
}

func TestOperatorClassOf(t *testing.T) {
	cases := []struct {
		op   Operator
		want OperatorClass
	}{
		{OpNone, ClassNone},
		{OpUnaryMinus, ClassUnaryPrefix},
		{OpPostInc, ClassUnarySuffix},
		{OpDot, ClassDereference},
		{OpArrow, ClassDereference},
		{OpFunctionCall, ClassSpecial},
		{OpCStyleCast, ClassSpecial},
		{OpTernary, ClassSpecial},
		{OpAdd, ClassBinary},
		{OpAssign, ClassBinary},
	}
	for _, c := range cases {
		assert.To(t).For("ClassOf(%v)", c.op).That(ClassOf(c.op)).Equals(c.want)
	}
}

func TestIsAssignment(t *testing.T) {
	assert.To(t).For("plain assign").That(IsAssignment(OpAssign)).IsTrue()
	assert.To(t).For("compound assign").That(IsAssignment(OpAddAssign)).IsTrue()
	assert.To(t).For("not assign").That(IsAssignment(OpAdd)).Equals(false)
}

func TestCastKeyword(t *testing.T) {
	assert.To(t).For("const_cast").ThatString(CastKeyword(OpConstCast)).Equals("const_cast")
	assert.To(t).For("non-cast op").ThatString(CastKeyword(OpAdd)).Equals("")
}

func TestIsConstAcrossNodeKinds(t *testing.T) {
	v := NewVar()
	v.Type = NewVarType()
	v.Type.Attrs |= Const
	assert.To(t).For("Var with const type").That(IsConst(v)).IsTrue()

	f := NewFunction()
	f.Attrs |= Const
	assert.To(t).For("const member function").That(IsConst(f)).IsTrue()

	assert.To(t).For("node with no attrs").That(IsConst(NewDocComment())).Equals(false)
}

func TestIsDeleted(t *testing.T) {
	ctor := NewConstructor()
	ctor.Attrs |= Deleted
	assert.To(t).For("deleted constructor").That(IsDeleted(ctor)).IsTrue()
	assert.To(t).For("non-deleted function").That(IsDeleted(NewFunction())).Equals(false)
}
