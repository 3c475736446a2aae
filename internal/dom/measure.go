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

package dom

import (
	"strings"

	"github.com/rivo/uniseg"
)

// measurer computes the width of a run of tags laid out flat.
type measurer struct {
	Options
	width, spaces int
	newline       bool
}

// flatWidth returns the width of a group's contents if laid out flat, and
// whether they contain a newline, which forces the group to break.
func (n *node) flatWidth(options Options) (width int, newline bool) {
	m := measurer{Options: options}
	m.measure(n.children)
	return m.width, m.newline
}

func (m *measurer) measure(nodes []*node) {
	for _, n := range nodes {
		if !n.renders(Flat) {
			continue
		}
		switch n.kind {
		case kindText:
			if strings.Contains(n.text, "\n") {
				m.newline = true
			}
			// With tabs, this has to be pessimistic, since the column the
			// group will start at is not known.
			m.width += m.spaces + stringWidth(m.Options, -1, n.text)
			m.spaces = 0
		case kindSpace:
			m.spaces = max(m.spaces, len(n.text))
		case kindBreak:
			m.newline = true
		default:
			m.measure(n.children)
		}
	}
}

// stringWidth calculates the rendered width of text if placed at the given
// column, accounting for tabstops. Returns the column after text.
//
// If column is -1, all tabstops are given their maximum width.
func stringWidth(options Options, column int, text string) int {
	pessimistic := column < 0
	column = max(0, column)

	// uniseg.StringWidth does not know about tabstops.
	for i, next := range strings.Split(text, "\t") {
		if i > 0 {
			tab := options.TabstopWidth
			if !pessimistic {
				tab -= column % options.TabstopWidth
			}
			column += tab
		}
		column += uniseg.StringWidth(next)
	}
	return column
}
