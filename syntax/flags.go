// Copyright 2020-2025 Buf Technologies, Inc.
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

package syntax

import "math/bits"

//go:generate go run github.com/bufbuild/syntaxedit/internal/enum modifiers.yaml

// Has returns whether every modifier in flags is in m.
func (m Modifiers) Has(flags Modifiers) bool {
	return m&flags == flags
}

// With returns m with flags added.
func (m Modifiers) With(flags Modifiers) Modifiers {
	return m | flags
}

// Without returns m with flags removed.
func (m Modifiers) Without(flags Modifiers) Modifiers {
	return m &^ flags
}

// Len returns the number of modifiers in m.
func (m Modifiers) Len() int {
	return bits.OnesCount16(uint16(m))
}

// Names returns the keyword spelling of each modifier in m, in canonical
// order.
func (m Modifiers) Names() []string {
	var out []string
	for bit := Modifiers(1); bit != 0 && bit <= m; bit <<= 1 {
		if m&bit != 0 {
			out = append(out, bit.String())
		}
	}
	return out
}

// Has returns whether every constraint in flags is in c.
func (c SpecialConstraint) Has(flags SpecialConstraint) bool {
	return c&flags == flags
}
