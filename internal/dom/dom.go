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

// Package dom lays out source text from a tree of formatting directives,
// in the manner of https://github.com/mcy/strings/tree/main/allman.
//
// A document is built by pushing [Tag]s into a [Sink]. Text tags are output
// as-is, except that runs of spaces and newlines merge with their neighbors.
// An [Indent] prefixes every non-empty line within it. A [Group] is laid out
// flat if it fits in the remaining width, and broken otherwise; tags built
// with [TextIf] render only in one of the two orientations, which is how a
// group says where its line breaks go. A [Mark] records where its contents
// ended up in the output; see [RenderMarked].
package dom

import (
	"math"
	"strings"
)

// Options specifies configuration for [Render].
type Options struct {
	// The maximum number of columns to render before triggering
	// a break. A value of zero implies an infinite width.
	MaxWidth int

	// The number of columns a tab character counts as. Defaults to 1.
	TabstopWidth int
}

// WithDefaults replaces any unset fields of an Options with their defaults.
func (o Options) WithDefaults() Options {
	if o.MaxWidth == 0 {
		o.MaxWidth = math.MaxInt
	}
	if o.TabstopWidth == 0 {
		o.TabstopWidth = 1
	}
	return o
}

// Span is where the contents of a [Mark] were rendered, as a half-open range
// of byte offsets.
type Span struct {
	ID         int
	Start, End int
}

// Render renders the document built by content.
func Render(options Options, content func(push Sink)) string {
	text, _ := RenderMarked(options, content)
	return text
}

// RenderMarked is like [Render], but also returns the location of every
// [Mark] in the output, in the order the marks were opened.
//
// A mark starts at the first text written inside of it, not counting merged
// whitespace, and ends after the last. An empty mark is an empty span at the
// position it would have started at.
func RenderMarked(options Options, content func(push Sink)) (string, []Span) {
	root := &node{kind: kindGroup}
	content(root.sink())

	p := printer{Options: options.WithDefaults()}
	// The outermost level is always broken.
	p.print(Broken, root.children)
	if !strings.HasSuffix(p.out.String(), "\n") {
		p.out.WriteByte('\n')
	}
	return p.out.String(), p.marks
}

// Tag is a formatting directive. The nil Tag is equivalent to Text("").
type Tag func(parent *node)

// Sink is a place to push tags. The tags are added to whatever the sink was
// created for.
//
// Functions in this package that take a func(push Sink) call it right away,
// and the sink must not be used after it returns.
type Sink func(...Tag)

const (
	Always Cond = iota
	Flat        // Render only in a flat group.
	Broken      // Render only in a broken group.
)

// Cond is whether a tag renders in a flat group, a broken group, or both.
type Cond byte

// Text returns a tag that emits text.
//
// Text consisting only of spaces (U+0020) or only of newlines (U+000A) is
// whitespace, and merges with adjacent whitespace:
//
//   - Spaces before or after a newline are dropped, so that lines have no
//     trailing whitespace and indentation comes only from [Indent].
//
//   - Adjacent runs of the same rune collapse into the longest of them.
func Text(text string) Tag {
	return TextIf(Always, text)
}

// TextIf is like [Text], but only renders when cond holds in the containing
// group.
func TextIf(cond Cond, text string) Tag {
	return func(parent *node) {
		if text == "" {
			return
		}
		kind := kindText
		switch {
		case every(text, ' '):
			kind = kindSpace
		case every(text, '\n'):
			kind = kindBreak
		}
		parent.add(&node{kind: kind, cond: cond, text: text})
	}
}

// Group returns a tag that lays out its contents together, either all flat or
// all broken.
//
// A group is broken if, laid out flat, it would contain a newline, be wider
// than maxWidth, or run past [Options.MaxWidth]. A maxWidth of zero implies
// no limit of its own.
func Group(maxWidth int, content func(push Sink)) Tag {
	return GroupIf(Always, maxWidth, content)
}

// GroupIf is like [Group], but with a condition attached.
func GroupIf(cond Cond, maxWidth int, content func(push Sink)) Tag {
	return func(parent *node) {
		if maxWidth == 0 {
			maxWidth = math.MaxInt
		}
		n := &node{kind: kindGroup, cond: cond, limit: maxWidth}
		content(n.sink())
		parent.add(n)
	}
}

// Indent prefixes each non-empty line started within content with by, after
// the prefixes of any enclosing Indents.
func Indent(by string, content func(push Sink)) Tag {
	return func(parent *node) {
		if by == "" {
			content(parent.sink())
			return
		}
		n := &node{kind: kindIndent, text: by}
		content(n.sink())
		parent.add(n)
	}
}

// Mark records where content is rendered, under the given ID. Marks have no
// effect on layout.
func Mark(id int, content func(push Sink)) Tag {
	return func(parent *node) {
		n := &node{kind: kindMark, limit: id}
		content(n.sink())
		parent.add(n)
	}
}

type kind byte

const (
	kindText   kind = iota // Ordinary text.
	kindSpace              // All spaces.
	kindBreak              // All newlines.
	kindGroup              // See [Group].
	kindIndent             // See [Indent].
	kindMark               // See [Mark].
)

// node is one tag in a document tree.
type node struct {
	kind     kind
	cond     Cond
	text     string
	limit    int // Width limit of a group, or the ID of a mark.
	children []*node
}

func (n *node) add(child *node) {
	n.children = append(n.children, child)
}

func (n *node) sink() Sink {
	return func(tags ...Tag) {
		for _, tag := range tags {
			if tag != nil {
				tag(n)
			}
		}
	}
}

// renders returns whether n renders in a group laid out as cond.
func (n *node) renders(cond Cond) bool {
	return n.cond == Always || n.cond == cond
}

// every returns whether s consists only of r.
func every(s string, r byte) bool {
	return strings.Trim(s, string(r)) == ""
}
