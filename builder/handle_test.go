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

package builder_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/syntaxedit/builder"
	"github.com/bufbuild/syntaxedit/csharp"
	"github.com/bufbuild/syntaxedit/syntax"
	"github.com/bufbuild/syntaxedit/walk"
)

func parse(t *testing.T, src string) *builder.CompilationUnit {
	t.Helper()
	cu, err := builder.Parse(csharp.Language, "test.cs", src)
	require.NoError(t, err)
	return cu
}

func TestFacets(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cu := parse(t, "class C\n{\n    int x;\n    void M(int a)\n    {\n    }\n}\n")
	c := cu.Types().At(0)
	assert.Equal(syntax.DeclarationClass, c.Kind())
	assert.Equal("C", c.Name())

	c.SetName("D")
	c.SetAccessibility(syntax.AccessibilityPublic)
	c.AddModifiers(syntax.ModifierStatic | syntax.ModifierPartial)
	assert.Equal("D", c.Name())
	assert.Equal(syntax.AccessibilityPublic, c.Accessibility())
	assert.True(c.Modifiers().Has(syntax.ModifierStatic | syntax.ModifierPartial))
	c.RemoveModifiers(syntax.ModifierPartial)
	assert.Equal(syntax.ModifierStatic, c.Modifiers())

	x := c.Fields().At(0)
	require.NoError(t, x.SetType(builder.Special(syntax.SpecialTypeInt64)))
	assert.Equal("long", csharp.Printer{}.Print(x.Type()))
	require.NoError(t, x.SetValue(builder.Literal(int64(3))))
	assert.Equal("3L", csharp.Printer{}.Print(x.Value()))

	m := c.Methods().At(0)
	assert.Same(c, m.Parent())
	assert.Same(cu.Context(), m.Context())
	a := m.Parameters().At(0)
	assert.Equal("a", a.Name())
	require.NoError(t, a.SetDefault(builder.Literal(0)))
	assert.Equal("0", csharp.Printer{}.Print(a.Default()))

	assert.Equal("public static class D\n{\n    long x = 3L;\n    void M(int a = 0)\n    {\n    }\n}\n", cu.String())
}

func TestSiblingsSurviveEdits(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cu := parse(t, "class C\n{\n    int x;\n    void M()\n    {\n    }\n}\n")
	c := cu.Types().At(0)
	x := c.Fields().At(0)
	m := c.Methods().At(0)

	x.SetName("y")
	m.SetName("N")
	c.SetName("D")

	assert.Equal("y", x.Name())
	assert.Equal("N", m.Name())
	assert.Equal("int y;", x.String())
	assert.Equal("class D\n{\n    int y;\n    void N()\n    {\n    }\n}\n", cu.String())
	assert.NotSame(cu.Context().Original(), cu.Context().Root())
}

func TestHandlesAreStable(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cu := parse(t, "class C\n{\n    int x;\n    void M()\n    {\n    }\n}\n")
	c := cu.Types().At(0)
	m := c.Methods().At(0)
	assert.Same(m, c.Members().At(1))
	assert.Same(m, c.Methods().At(0))
	// Creating handles tracks nodes, which is not an edit.
	assert.False(cu.Context().Edited())

	c.SetName("D")
	assert.True(cu.Context().Edited())
	assert.Same(m, cu.Types().At(0).Methods().At(0))
	assert.Same(c, cu.Types().At(0))
}

func TestNew(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root, err := csharp.ParseCompilationUnit("class C { }")
	require.NoError(t, err)
	b, err := builder.New(root)
	require.NoError(t, err)
	assert.IsType(&builder.CompilationUnit{}, b)
	assert.Nil(b.Parent())

	class := root.First(syntax.RoleMember)
	b, err = builder.NewWithLanguage(csharp.Language, class)
	require.NoError(t, err)
	assert.IsType(&builder.Type{}, b)
	assert.Equal("class C\n{\n}", b.String())

	expr, err := csharp.ParseExpression("1 + 2")
	require.NoError(t, err)
	_, err = builder.New(expr)
	assert.ErrorIs(err, builder.ErrUnsupportedKind)
}

func TestFind(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cu := parse(t, "namespace N\n{\n    class A\n    {\n        void M()\n        {\n        }\n    }\n    class B\n    {\n    }\n}\n")
	types := builder.Find[*builder.Type](cu, "")
	require.Len(t, types, 2)
	assert.Equal("A", types[0].Name())
	assert.Equal("B", types[1].Name())

	methods := builder.Find[*builder.Method](cu, "M")
	require.Len(t, methods, 1)
	assert.Empty(builder.Find[*builder.Method](cu, "Nope"))

	bs := cu.Builders(syntax.DeclarationClass, "B")
	require.Len(t, bs, 1)
	assert.Same(types[1], bs[0])
	assert.Len(cu.Builders(syntax.DeclarationClass, ""), 2)

	b, ok := cu.BuilderFor(methods[0].CurrentNode())
	assert.True(ok)
	assert.Same(methods[0], b)
	_, ok = cu.BuilderFor(nil)
	assert.False(ok)
}

func TestBuilderForUntrackedNode(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cu := parse(t, "namespace N\n{\n    class A\n    {\n        int x;\n        void M()\n        {\n        }\n    }\n}\n")
	g := csharp.Generator{}
	var method *syntax.Node
	for n := range walk.Declarations(cu.CurrentNode()) {
		if g.DeclarationKind(n) == syntax.DeclarationMethod {
			method = n
		}
	}
	require.NotNil(t, method)

	// No handles exist below cu yet.
	b, ok := cu.BuilderFor(method)
	require.True(t, ok)
	m, ok := b.(*builder.Method)
	require.True(t, ok)
	assert.Equal("M", m.Name())
	assert.Equal("A", m.Parent().(*builder.Type).Name())
	assert.Same(builder.Find[*builder.Method](cu, "M")[0], m)

	_, ok = cu.BuilderFor(method.First(syntax.RoleName))
	assert.False(ok)
}

func TestBuilderAt(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cu := parse(t, "namespace N\n{\n    class A\n    {\n        void M()\n        {\n        }\n    }\n    class B\n    {\n    }\n}\n")
	text := cu.String()

	b, ok := cu.BuilderAt(strings.Index(text, "void"))
	require.True(t, ok)
	assert.Same(builder.Find[*builder.Method](cu, "M")[0], b)

	b, ok = cu.BuilderAt(strings.Index(text, "class B") + len("class "))
	require.True(t, ok)
	assert.Equal("B", b.(*builder.Type).Name())

	b, ok = cu.BuilderAt(0)
	require.True(t, ok)
	assert.IsType(&builder.Namespace{}, b)
}

func TestFormat(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cu := parse(t, "class C { void M() { } }")
	before := cu.String()
	cu.Format()
	assert.Equal(before, cu.String())
	assert.Equal("class C\n{\n    void M()\n    {\n    }\n}\n", cu.String())
}
