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

// Stop is returned by a MemberVisitor to end iteration early. Any other
// return value, including nil, continues the walk.
var Stop = stopSignal{}

type stopSignal struct{}

func (stopSignal) Error() string { return "stop" }

// MemberVisitor is called once per member of a Compound by ForEachMember.
// The handle it receives is non-owning; mutating the tree through it during
// iteration is undefined, matching the read-only traversal contract.
type MemberVisitor func(member Node) error

// ForEachMember iterates the immediate members of c in insertion order,
// calling visit for each. Iteration stops as soon as visit returns a
// non-nil error; that error is returned to the caller of ForEachMember
// unchanged (compare against Stop to distinguish a deliberate early exit
// from a genuine failure).
func ForEachMember(c *Compound, visit MemberVisitor) error {
	for _, m := range c.Members {
		if err := visit(m); err != nil {
			return err
		}
	}
	return nil
}

// IsClassLike reports whether n is a Compound representing a class, struct,
// or union.
func IsClassLike(n Node) bool {
	c, ok := n.(*Compound)
	return ok && c.IsClassLike()
}

// IsNamespaceLike reports whether n is a Compound representing a namespace
// or the translation-unit root.
func IsNamespaceLike(n Node) bool {
	c, ok := n.(*Compound)
	return ok && c.IsNamespaceLike()
}

// IsConst reports whether n carries the Const attribute. Node kinds with no
// attribute bitset report false.
func IsConst(n Node) bool {
	switch v := n.(type) {
	case *Var:
		return v.Type != nil && v.Type.Attrs.Has(Const)
	case *VarType:
		return v.Attrs.Has(Const)
	case *Function:
		return v.Attrs.Has(Const)
	case *TypeConverter:
		return v.Attrs.Has(Const)
	case *FunctionPtr:
		return v.Attrs.Has(Const)
	default:
		return false
	}
}

// IsDeleted reports whether n carries the Deleted attribute.
func IsDeleted(n Node) bool {
	switch v := n.(type) {
	case *Function:
		return v.Attrs.Has(Deleted)
	case *Constructor:
		return v.Attrs.Has(Deleted)
	case *Destructor:
		return v.Attrs.Has(Deleted)
	default:
		return false
	}
}

// IsExpr reports whether n is an Expression node.
func IsExpr(n Node) bool {
	_, ok := n.(*Expression)
	return ok
}
