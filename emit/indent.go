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

package emit

import (
	"io"
	"strings"
)

const indentUnit = "    "

// writeIndent writes n copies of the indent unit to w.
func writeIndent(w io.Writer, n int) {
	if n <= 0 {
		return
	}
	io.WriteString(w, strings.Repeat(indentUnit, n))
}

// preproIndent is the per-Emitter preprocessor-indent counter. The textual
// position of '#' is always column 0;
// the counter is the number of spaces between '#' and the directive
// keyword, so nested conditionals visually step in.
//
// It begins at zero and is expected to end at zero for a balanced
// translation unit; a malformed source may drive it negative, which this
// type does not guard against, matching the non-enforcing contract.
type preproIndent struct {
	n int
}

func (p *preproIndent) spaces() int { return p.n }

func (p *preproIndent) inc() { p.n++ }

func (p *preproIndent) dec() {
	p.n--
}
