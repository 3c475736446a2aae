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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/syntaxedit/csharp"
	"github.com/bufbuild/syntaxedit/syntax"
)

func TestLiteral(t *testing.T) {
	t.Parallel()

	g := csharp.Generator{}
	tests := []struct {
		value any
		want  string
	}{
		{nil, "null"},
		{true, "true"},
		{"a\"b\n", `"a\"b\n"`},
		{42, "42"},
		{int8(-1), "-1"},
		{int16(7), "7"},
		{int32(7), "7"},
		{'x', "120"},
		{int64(7), "7L"},
		{uint8(255), "255"},
		{uint16(1), "1"},
		{uint32(7), "7U"},
		{uint(7), "7U"},
		{uint64(7), "7UL"},
		{float32(1.5), "1.5F"},
		{1.5, "1.5D"},
		{1e21, "1E+21D"},
		{math.NaN(), "double.NaN"},
		{float32(math.Inf(1)), "float.PositiveInfinity"},
		{math.Inf(-1), "double.NegativeInfinity"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, csharp.Printer{}.Print(g.Literal(tt.value)), "%T(%v)", tt.value, tt.value)
	}

	assert.Panics(t, func() { g.Literal(struct{}{}) })
	assert.Equal(t, "1.50M", csharp.Printer{}.Print(g.DecimalLiteral("1.50")))
	assert.Equal(t, `'\''`, csharp.Printer{}.Print(g.CharLiteral('\'')))
}

func TestTypes(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	g := csharp.Generator{}
	print := func(n *syntax.Node) string { return csharp.Printer{}.Print(n) }

	assert.Equal("int", print(g.SpecialType(syntax.SpecialTypeInt32)))
	assert.Equal("string[]", print(g.ArrayType(g.SpecialType(syntax.SpecialTypeString))))
	assert.Equal("long?", print(g.NullableType(g.SpecialType(syntax.SpecialTypeInt64))))
	assert.Equal("System.Collections.Generic", print(g.DottedName("System.Collections.Generic")))
	assert.Equal("List<int>", print(g.GenericName("List", g.SpecialType(syntax.SpecialTypeInt32))))
	assert.Equal(syntax.KindIdentifierName, g.GenericName("List").Kind())
}

func TestDeclarationKind(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	g := csharp.Generator{}
	assert.Equal(syntax.DeclarationClass, g.DeclarationKind(g.TypeDeclaration(syntax.DeclarationClass, "C")))
	assert.Equal(syntax.DeclarationEvent, g.DeclarationKind(g.Event("E", g.IdentifierName("Action"))))
	assert.Equal(syntax.DeclarationCustomEvent, g.DeclarationKind(g.CustomEvent("E", g.IdentifierName("Action"))))
	assert.Equal(syntax.DeclarationGetAccessor, g.DeclarationKind(g.Accessor(syntax.DeclarationGetAccessor)))
	assert.Nil(g.Accessor(syntax.DeclarationRaiseAccessor))
	assert.Equal(syntax.DeclarationNone, g.DeclarationKind(g.IdentifierName("x")))
	assert.Panics(func() { g.TypeDeclaration(syntax.DeclarationMethod, "M") })

	root, err := csharp.ParseCompilationUnit("namespace N; class C { int this[int i] => i; }")
	require.NoError(t, err)
	ns := root.First(syntax.RoleMember)
	assert.Equal(syntax.DeclarationNamespace, g.DeclarationKind(ns))
	indexer := ns.First(syntax.RoleMember).First(syntax.RoleMember)
	assert.Equal(syntax.DeclarationIndexer, g.DeclarationKind(indexer))
	assert.Equal("this", g.Name(indexer))
}

func TestFacets(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	g := csharp.Generator{}
	p := csharp.Printer{}
	int32T := g.SpecialType(syntax.SpecialTypeInt32)

	class := g.TypeDeclaration(syntax.DeclarationClass, "C")
	class = g.WithName(class, "D")
	assert.Equal("D", g.Name(class))

	class = g.WithModifiers(class, syntax.ModifierStatic|syntax.ModifierPartial)
	class = g.WithAccessibility(class, syntax.AccessibilityProtectedOrInternal)
	assert.Equal(syntax.AccessibilityProtectedOrInternal, g.Accessibility(class))
	assert.Equal(syntax.ModifierStatic|syntax.ModifierPartial, g.Modifiers(class))
	assert.Equal("protected internal partial static class D\n{\n}", p.Print(class))

	class = g.WithAccessibility(class, syntax.AccessibilityNotApplicable)
	class = g.WithModifiers(class, syntax.ModifierNone)
	assert.Equal("class D\n{\n}", p.Print(class))

	field := g.Field("x", int32T, nil)
	assert.Nil(g.Expression(field))
	field = g.WithExpression(field, g.Literal(1))
	assert.Equal("int x = 1;", p.Print(field))
	assert.Equal("x", g.Name(g.WithName(field, "x")))

	method := g.Method("M", nil)
	assert.Equal("void M()\n{\n}", p.Print(method))
	method = g.WithType(method, int32T)
	method = g.WithExpression(method, g.Literal(0))
	assert.Equal("int M() => 0;", p.Print(method))
	method = g.WithStatements(method, []*syntax.Node{g.ReturnStatement(g.Literal(1))})
	assert.Nil(g.Expression(method))
	assert.Len(g.Statements(method), 1)
	assert.Equal("int M()\n{\n    return 1;\n}", p.Print(method))

	prop := g.Property("P", int32T)
	assert.Equal("int P { get; set; }", p.Print(prop))
	prop = g.WithExpression(prop, g.Literal(2))
	assert.Equal("int P { get; set; } = 2;", p.Print(prop))

	using := g.WithAlias(g.NamespaceImport("System.IO"), "IO")
	assert.Equal("IO", g.Alias(using))
	assert.Equal("System.IO", g.Name(using))
	assert.Equal("using IO = System.IO;", p.Print(using))
}

func TestAddMembersKeepsUsingsFirst(t *testing.T) {
	t.Parallel()

	g := csharp.Generator{}
	cu := g.CompilationUnit(g.NamespaceImport("System"), g.TypeDeclaration(syntax.DeclarationClass, "C"))
	cu = g.AddMembers(cu, g.TypeDeclaration(syntax.DeclarationEnum, "E"), g.NamespaceImport("System.IO"))

	var names []string
	for _, m := range g.Members(cu) {
		names = append(names, g.Name(m))
	}
	assert.Equal(t, []string{"System", "System.IO", "C", "E"}, names)
}

func TestTypeParameters(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	g := csharp.Generator{}
	c := csharp.CommentEditor{}
	p := csharp.Printer{}

	class := g.TypeDeclaration(syntax.DeclarationClass, "C")
	class = g.WithTypeParameters(class, "T", "U")
	class = g.WithTypeConstraint(class, "T",
		syntax.ConstraintConstructor|syntax.ConstraintReferenceType, g.IdentifierName("IDisposable"))
	class = g.WithTypeConstraint(class, "U", syntax.ConstraintValueType)
	assert.Equal("class C<T, U> where T : class, IDisposable, new() where U : struct\n{\n}", p.Print(class))

	assert.Equal([]string{"T", "U"}, c.TypeParameterNames(class))
	assert.Equal(syntax.ConstraintConstructor|syntax.ConstraintReferenceType, c.SpecialConstraints(class, "T"))
	assert.Len(c.TypeConstraints(class, "T"), 1)

	class = c.WithTypeParameterNameChanged(class, "T", "V")
	assert.Equal("class C<V, U> where V : class, IDisposable, new() where U : struct\n{\n}", p.Print(class))

	class = g.WithTypeConstraint(class, "U", syntax.ConstraintNone)
	class = g.WithTypeParameters(class, "U")
	assert.Equal("class C<U>\n{\n}", p.Print(class))

	// Not generic.
	field := g.Field("f", g.SpecialType(syntax.SpecialTypeInt32), nil)
	assert.Same(field, g.WithTypeParameters(field, "T"))
}

func TestTreeEdits(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	g := csharp.Generator{}
	root, err := csharp.ParseCompilationUnit("class A { } class B { }")
	require.NoError(t, err)
	a, b := root.At(0), root.At(1)

	out := g.InsertNodesAfter(root, a, g.TypeDeclaration(syntax.DeclarationStruct, "S"))
	assert.Equal("class A\n{\n}\nstruct S\n{\n}\nclass B\n{\n}\n", csharp.Printer{}.Print(out))

	out = g.RemoveNode(root, a)
	assert.Equal("class B\n{\n}\n", csharp.Printer{}.Print(out))

	out = g.ReplaceNode(root, b, g.TypeDeclaration(syntax.DeclarationInterface, "I"))
	assert.Equal("class A\n{\n}\ninterface I\n{\n}\n", csharp.Printer{}.Print(out))

	assert.Panics(func() { g.RemoveNode(root, g.IdentifierName("x")) })
	assert.Panics(func() { g.InsertNodesBefore(a, root) })
}
