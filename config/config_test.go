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

package config

import (
	"testing"

	"github.com/cppast/cppast/internal/assert"
)

func TestBuilderChaining(t *testing.T) {
	c := New().
		WithAPIDecorator("WXDLLIMPEXP_CORE").
		WithKnownMacro("DECLARE_EVENT_TABLE").
		WithIgnorableMacro("DEPRECATED").
		WithRenamedKeyword("ADESK_OVERRIDE", KeywordOverride)

	assert.To(t).For("api decorator registered").That(c.IsAPIDecorator("WXDLLIMPEXP_CORE")).IsTrue()
	assert.To(t).For("unknown api decorator").That(c.IsAPIDecorator("OTHER")).Equals(false)
	assert.To(t).For("known macro registered").That(c.IsKnownMacro("DECLARE_EVENT_TABLE")).IsTrue()
	assert.To(t).For("ignorable macro registered").That(c.IsIgnorableMacro("DEPRECATED")).IsTrue()

	kw, ok := c.KeywordFor("ADESK_OVERRIDE")
	assert.To(t).For("renamed keyword resolved").That(ok).IsTrue()
	assert.To(t).For("renamed keyword value").That(kw).Equals(KeywordOverride)
}

func TestKeywordForCanonical(t *testing.T) {
	kw, ok := New().KeywordFor("virtual")
	assert.To(t).For("canonical keyword found").That(ok).IsTrue()
	assert.To(t).For("canonical keyword value").That(kw).Equals(KeywordVirtual)

	_, ok = New().KeywordFor("banana")
	assert.To(t).For("unknown word not a keyword").That(ok).Equals(false)
}

func TestPredefinedAndUndefinedAreMutuallyExclusive(t *testing.T) {
	c := New().WithPredefined("FOO", 1)
	assert.To(t).For("defined after WithPredefined").That(c.EvalDefined("FOO")).IsTrue()

	c.WithUndefined("FOO")
	assert.To(t).For("undefined wins over predefined").That(c.EvalDefined("FOO")).Equals(false)
	_, ok := c.EvalValue("FOO")
	assert.To(t).For("no value once undefined").That(ok).Equals(false)

	c.WithPredefined("FOO", 2)
	assert.To(t).For("predefined wins back over undefined").That(c.EvalDefined("FOO")).IsTrue()
	v, ok := c.EvalValue("FOO")
	assert.To(t).For("value present").That(ok).IsTrue()
	assert.To(t).For("value").That(v).Equals(int64(2))
}

func TestEvalDefinedUnknownName(t *testing.T) {
	assert.To(t).For("unknown name is undefined").That(New().EvalDefined("NEVER_SET")).Equals(false)
}
