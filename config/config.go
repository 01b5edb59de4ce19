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

// Package config holds the pre-parse configuration surface a Parser
// instance accepts: the vocabulary of vendor decorators, macros, and
// renamed keywords that let the parser cope with real-world C++ headers
// without a full preprocessor pass.
package config

// Keyword is a canonical C++ keyword that a vendor macro can stand in for,
// per the renamed-keyword binding mechanism.
type Keyword string

const (
	KeywordVirtual  Keyword = "virtual"
	KeywordConst    Keyword = "const"
	KeywordOverride Keyword = "override"
	KeywordFinal    Keyword = "final"
)

// Config is process-local state scoped to one Parser instance. It carries
// no process-global mutable state; two Parsers built from two Configs do
// not interact.
type Config struct {
	// APIDecorators are identifiers the parser treats as opaque
	// type-annotation tokens attached to the following declaration, e.g.
	// WXDLLIMPEXP_CORE.
	APIDecorators map[string]bool

	// KnownMacros are identifiers that, in declaration position, are
	// consumed as a MacroCall node carrying the literal invocation text.
	KnownMacros map[string]bool

	// IgnorableMacros are identifiers erased from the token stream
	// entirely, including any trailing parenthesized argument list.
	IgnorableMacros map[string]bool

	// Predefined maps a name to its integer value for #if/#ifdef
	// evaluation.
	Predefined map[string]int64

	// Undefined names are explicitly treated as undefined in
	// conditionals, overriding any entry in Predefined.
	Undefined map[string]bool

	// RenamedKeywords maps each additional identifier to the keyword it is
	// recognised as, e.g. ADESK_OVERRIDE -> KeywordOverride.
	RenamedKeywords map[string]Keyword

	// EnumBodyAsBlob, when set, keeps complex enum bodies as a single
	// opaque Blob instead of structurally parsing them.
	EnumBodyAsBlob bool
}

// New returns an empty, ready-to-populate Config.
func New() *Config {
	return &Config{
		APIDecorators:   map[string]bool{},
		KnownMacros:     map[string]bool{},
		IgnorableMacros: map[string]bool{},
		Predefined:      map[string]int64{},
		Undefined:       map[string]bool{},
		RenamedKeywords: map[string]Keyword{},
	}
}

// WithAPIDecorator registers name as a known API decorator and returns c
// for chaining.
func (c *Config) WithAPIDecorator(name string) *Config {
	c.APIDecorators[name] = true
	return c
}

// WithKnownMacro registers name as a known macro and returns c for
// chaining.
func (c *Config) WithKnownMacro(name string) *Config {
	c.KnownMacros[name] = true
	return c
}

// WithIgnorableMacro registers name as an ignorable macro and returns c for
// chaining.
func (c *Config) WithIgnorableMacro(name string) *Config {
	c.IgnorableMacros[name] = true
	return c
}

// WithPredefined registers name with the given integer value for
// conditional evaluation and returns c for chaining.
func (c *Config) WithPredefined(name string, value int64) *Config {
	c.Predefined[name] = value
	delete(c.Undefined, name)
	return c
}

// WithUndefined marks name as explicitly undefined for conditional
// evaluation and returns c for chaining.
func (c *Config) WithUndefined(name string) *Config {
	c.Undefined[name] = true
	delete(c.Predefined, name)
	return c
}

// WithRenamedKeyword binds alias as an additional spelling of keyword and
// returns c for chaining.
func (c *Config) WithRenamedKeyword(alias string, keyword Keyword) *Config {
	c.RenamedKeywords[alias] = keyword
	return c
}

// IsAPIDecorator reports whether name is a configured API decorator.
func (c *Config) IsAPIDecorator(name string) bool { return c.APIDecorators[name] }

// IsKnownMacro reports whether name is a configured known macro.
func (c *Config) IsKnownMacro(name string) bool { return c.KnownMacros[name] }

// IsIgnorableMacro reports whether name is a configured ignorable macro.
func (c *Config) IsIgnorableMacro(name string) bool { return c.IgnorableMacros[name] }

// KeywordFor resolves name to the canonical keyword it stands in for, via
// either an exact keyword match or a renamed-keyword binding. ok is false
// if name names neither.
func (c *Config) KeywordFor(name string) (kw Keyword, ok bool) {
	switch Keyword(name) {
	case KeywordVirtual, KeywordConst, KeywordOverride, KeywordFinal:
		return Keyword(name), true
	}
	kw, ok = c.RenamedKeywords[name]
	return kw, ok
}

// EvalDefined reports whether name should be considered defined for
// #ifdef/#ifndef evaluation: explicitly undefined names lose to Undefined
// even if also present in Predefined.
func (c *Config) EvalDefined(name string) bool {
	if c.Undefined[name] {
		return false
	}
	_, ok := c.Predefined[name]
	return ok
}

// EvalValue returns the integer value of name for #if expression
// evaluation, and whether name has one.
func (c *Config) EvalValue(name string) (int64, bool) {
	if c.Undefined[name] {
		return 0, false
	}
	v, ok := c.Predefined[name]
	return v, ok
}
