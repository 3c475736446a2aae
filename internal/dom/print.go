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

import "strings"

// printer renders a document tree, deciding the layout of each group as it
// reaches it.
type printer struct {
	Options

	out    strings.Builder
	column int // The column at the end of out.

	// Whitespace waiting for the next text, so that it can merge.
	spaces, newlines int

	indent []string

	// Marks that have not written any text yet, so their start is unknown.
	open  []int
	marks []Span
}

// print prints the tags in nodes that render in a group laid out as cond.
func (p *printer) print(cond Cond, nodes []*node) {
	for _, n := range nodes {
		if !n.renders(cond) {
			continue
		}

		switch n.kind {
		case kindText:
			p.write(n.text)

		case kindSpace:
			p.spaces = max(p.spaces, len(n.text))

		case kindBreak:
			p.newlines = max(p.newlines, len(n.text))

		case kindGroup:
			width, newline := n.flatWidth(p.Options)
			layout := Flat
			if newline || width > n.limit || p.nextColumn()+width > p.MaxWidth {
				layout = Broken
			}
			p.print(layout, n.children)

		case kindIndent:
			p.indent = append(p.indent, n.text)
			p.print(cond, n.children)
			p.indent = p.indent[:len(p.indent)-1]

		case kindMark:
			idx := len(p.marks)
			p.marks = append(p.marks, Span{ID: n.limit, Start: -1})
			p.open = append(p.open, idx)
			p.print(cond, n.children)

			mark := &p.marks[idx]
			mark.End = p.out.Len()
			if mark.Start < 0 {
				mark.Start = mark.End
				p.open = p.open[:len(p.open)-1]
			}
		}
	}
}

// nextColumn returns the column the next text would be written at.
func (p *printer) nextColumn() int {
	if p.newlines > 0 {
		return stringWidth(p.Options, 0, strings.Join(p.indent, ""))
	}
	return p.column + p.spaces
}

// write appends text to the output, after any pending whitespace and
// indentation.
func (p *printer) write(text string) {
	if p.newlines > 0 {
		p.out.WriteString(strings.Repeat("\n", p.newlines))
		p.column = 0
		for _, by := range p.indent {
			p.out.WriteString(by)
			p.column = stringWidth(p.Options, p.column, by)
		}
	} else if p.spaces > 0 {
		p.out.WriteString(strings.Repeat(" ", p.spaces))
		p.column += p.spaces
	}
	p.spaces, p.newlines = 0, 0

	for _, idx := range p.open {
		p.marks[idx].Start = p.out.Len()
	}
	p.open = p.open[:0]

	p.out.WriteString(text)
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		p.column = stringWidth(p.Options, 0, text[i+1:])
	} else {
		p.column = stringWidth(p.Options, p.column, text)
	}
}
