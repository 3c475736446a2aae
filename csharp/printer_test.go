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

package csharp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/syntaxedit/csharp"
	"github.com/bufbuild/syntaxedit/internal/corpora"
	"github.com/bufbuild/syntaxedit/syntax"
)

func TestPrintCorpus(t *testing.T) {
	t.Parallel()

	corpora.Corpus{
		Root:      "testdata/print",
		Extension: "cs",
		Outputs:   []corpora.Output{{Extension: "print"}},
		Test: func(t *testing.T, path, text string) []string {
			root, err := csharp.ParseFile(path, text, nil)
			require.NoError(t, err)
			out := csharp.Printer{}.Print(root)

			again, err := csharp.ParseFile(path, out, nil)
			require.NoError(t, err)
			assert.Equal(t, out, csharp.Printer{}.Print(again), "printing is not idempotent")
			return []string{out}
		},
	}.Run(t)
}

func TestPrintSpans(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root, err := csharp.ParseCompilationUnit("class C { void M() { } }")
	require.NoError(t, err)
	text, spans := csharp.Printer{}.PrintSpans(root)

	assert.Equal("class C\n{\n    void M()\n    {\n    }\n}\n", text)
	require.Len(t, spans, 2)
	assert.Equal(syntax.KindClass, spans[0].Node.Kind())
	assert.Equal("class C\n{\n    void M()\n    {\n    }\n}", text[spans[0].Start:spans[0].End])
	assert.Equal(syntax.KindMethod, spans[1].Node.Kind())
	assert.Equal("void M()\n    {\n    }", text[spans[1].Start:spans[1].End])
}

func TestPrintSpansIncludeComments(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root, err := csharp.ParseCompilationUnit("// hi\nclass C { }")
	require.NoError(t, err)
	text, spans := csharp.Printer{}.PrintSpans(root)

	require.Len(t, spans, 1)
	assert.Equal(0, spans[0].Start)
	assert.Equal("// hi\nclass C\n{\n}", text[spans[0].Start:spans[0].End])
}

func TestPrintBreaksParameters(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root, err := csharp.ParseCompilationUnit("class C { void Method(int first, int second, int third) { } }")
	require.NoError(t, err)

	assert.Equal(`class C
{
    void Method(
        int first,
        int second,
        int third
    )
    {
    }
}
`, csharp.Printer{LineWidth: 30}.Print(root))

	assert.Equal(`class C
{
  void Method(int first, int second, int third)
  {
  }
}
`, csharp.Printer{Indent: 2}.Print(root))
}

func TestPrintFragments(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	e, err := csharp.ParseExpression("a ?. b ( c , d ) [ 0 ]")
	require.NoError(t, err)
	assert.Equal("a?.b(c, d)[0]", csharp.Printer{}.Print(e))

	s, err := csharp.ParseStatement("if (x) { y++; } else z--;")
	require.NoError(t, err)
	assert.Equal("if (x)\n{\n    y++;\n}\nelse\n    z--;", csharp.Printer{}.Print(s))

	empty, err := csharp.ParseCompilationUnit("")
	require.NoError(t, err)
	assert.Empty(csharp.Printer{}.Print(empty))
}

func TestPrintEscapesKeywords(t *testing.T) {
	t.Parallel()

	g := csharp.Generator{}
	n := g.Field("class", g.SpecialType(syntax.SpecialTypeInt32), nil)
	assert.Equal(t, "int @class;", csharp.Printer{}.Print(n))
}

func TestFormat(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root, err := csharp.ParseCompilationUnit("class C\n{\n\n\n    // a\n    int x; /* b */\n}")
	require.NoError(t, err)
	field := root.At(0).First(syntax.RoleMember)
	assert.NotEmpty(field.Leading())

	formatted := csharp.Printer{}.Format(root)
	field = formatted.At(0).First(syntax.RoleMember)
	assert.Equal([]syntax.Trivia{
		syntax.EndOfLine(),
		{Kind: syntax.TriviaLineComment, Text: "// a"},
		syntax.EndOfLine(),
	}, field.Leading())
	assert.Equal([]syntax.Trivia{{Kind: syntax.TriviaBlockComment, Text: "/* b */"}}, field.Trailing())

	// Formatting does not change what is printed.
	assert.Equal(csharp.Printer{}.Print(root), csharp.Printer{}.Print(formatted))
}
