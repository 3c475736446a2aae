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

package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/syntaxedit/internal/dom"
)

func call(push dom.Sink) {
	push(
		dom.Text("f"),
		dom.Group(0, func(push dom.Sink) {
			push(
				dom.Text("("),
				dom.TextIf(dom.Broken, "\n"),
				dom.Indent("    ", func(push dom.Sink) {
					push(
						dom.Text("aaaaaaaaaa"),
						dom.Text(","),
						dom.TextIf(dom.Flat, " "),
						dom.TextIf(dom.Broken, "\n"),
						dom.Text("bbbbbbbbbb"),
					)
				}),
				dom.TextIf(dom.Broken, "\n"),
				dom.Text(")"),
			)
		}),
	)
}

func TestGroup(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal("f(aaaaaaaaaa, bbbbbbbbbb)\n", dom.Render(dom.Options{MaxWidth: 40}, call))
	assert.Equal("f(\n    aaaaaaaaaa,\n    bbbbbbbbbb\n)\n", dom.Render(dom.Options{MaxWidth: 20}, call))
}

func TestMark(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	text, marks := dom.RenderMarked(dom.Options{}, func(push dom.Sink) {
		push(
			dom.Text("a"),
			dom.Text(" "),
			dom.Mark(7, func(push dom.Sink) {
				push(dom.Text(" "), dom.Text("bc"))
			}),
			dom.Text("\n"),
			dom.Mark(8, func(push dom.Sink) {}),
		)
	})
	assert.Equal("a bc\n", text)
	assert.Equal([]dom.Span{{ID: 7, Start: 2, End: 4}, {ID: 8, Start: 4, End: 4}}, marks)
}

func TestWhitespaceMerging(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	text := dom.Render(dom.Options{}, func(push dom.Sink) {
		push(
			dom.Text("a"), dom.Text(" "), dom.Text("   "), dom.Text("b"),
			dom.Text("  "), dom.Text("\n"), dom.Text(" "), dom.Text("c"),
			dom.Text("\n"), dom.Text("\n\n"), dom.Text("d"),
			dom.Text(" "),
		)
	})
	assert.Equal("a   b\nc\n\nd\n", text)
}

func TestIndent(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	text := dom.Render(dom.Options{}, func(push dom.Sink) {
		push(dom.Text("class A"), dom.Text("\n"), dom.Text("{"))
		push(dom.Indent("    ", func(push dom.Sink) {
			push(dom.Text("\n"), dom.Text("int x;"), dom.Text("\n\n"), dom.Text("int y;"))
			push(dom.Indent("\t", func(push dom.Sink) {
				push(dom.Text("\n"), dom.Text("z"))
			}))
		}))
		push(dom.Text("\n"), dom.Text("}"))
	})
	// Blank lines are not indented.
	assert.Equal("class A\n{\n    int x;\n\n    int y;\n    \tz\n}\n", text)
}

func TestNestedGroups(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	args := func(name string, n int) dom.Tag {
		return dom.Group(0, func(push dom.Sink) {
			push(dom.Text(name+"("), dom.TextIf(dom.Broken, "\n"))
			push(dom.Indent("  ", func(push dom.Sink) {
				for i := range n {
					if i > 0 {
						push(dom.Text(","), dom.TextIf(dom.Flat, " "), dom.TextIf(dom.Broken, "\n"))
					}
					push(dom.Text("xxxx"))
				}
			}))
			push(dom.TextIf(dom.Broken, "\n"), dom.Text(")"))
		})
	}
	content := func(push dom.Sink) {
		push(dom.Group(0, func(push dom.Sink) {
			push(dom.Text("f("), dom.TextIf(dom.Broken, "\n"))
			push(dom.Indent("  ", func(push dom.Sink) {
				push(args("g", 2), dom.Text(","), dom.TextIf(dom.Flat, " "), dom.TextIf(dom.Broken, "\n"), args("h", 1))
			}))
			push(dom.TextIf(dom.Broken, "\n"), dom.Text(")"))
		}))
	}

	assert.Equal("f(g(xxxx, xxxx), h(xxxx))\n", dom.Render(dom.Options{MaxWidth: 80}, content))
	// The outer group breaks; the inner ones fit on their own lines.
	assert.Equal("f(\n  g(xxxx, xxxx),\n  h(xxxx)\n)\n", dom.Render(dom.Options{MaxWidth: 20}, content))

	// A group's own limit breaks it regardless of the line width.
	limited := dom.Render(dom.Options{}, func(push dom.Sink) {
		push(dom.Group(5, func(push dom.Sink) {
			push(dom.Text("abc"), dom.TextIf(dom.Flat, " "), dom.TextIf(dom.Broken, "\n"), dom.Text("def"))
		}))
	})
	assert.Equal("abc\ndef\n", limited)

	// So does a newline in its flat form.
	forced := dom.Render(dom.Options{}, func(push dom.Sink) {
		push(dom.Group(0, func(push dom.Sink) {
			push(dom.Text("a"), dom.TextIf(dom.Broken, ";"), dom.Text("\n"), dom.Text("b"))
		}))
	})
	assert.Equal("a;\nb\n", forced)
}
