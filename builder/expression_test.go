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
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/syntaxedit/builder"
	"github.com/bufbuild/syntaxedit/csharp"
	"github.com/bufbuild/syntaxedit/syntax"
)

type (
	code  int16
	point struct{}
)

func TestExpressions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr builder.Expression
		want string
	}{
		{builder.Literal(int64(5)), "5L"},
		{builder.Literal(code(3)), "3"},
		{builder.Literal("hi\n"), `"hi\n"`},
		{builder.Literal(false), "false"},
		{builder.Integer(uint64(7)), "7UL"},
		{builder.Decimal("1.50"), "1.50M"},
		{builder.Char('a'), "'a'"},
		{builder.Null(), "null"},
		{builder.Identifier("x"), "x"},
		{builder.ParseExpression("a + b * 2"), "a + b * 2"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			n, err := tt.expr.Node(csharp.Language)
			require.NoError(t, err)
			assert.Equal(t, tt.want, csharp.Printer{}.Print(n))
		})
	}
}

func TestExpressionValues(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cu := parse(t, "class C\n{\n    int x;\n}\n")
	x := builder.Find[*builder.Field](cu, "x")[0]

	require.NoError(t, x.SetValue(builder.Literal(1)))
	assert.Equal("int x = 1;", x.String())

	// A node from elsewhere in the tree is copied.
	require.NoError(t, x.SetValue(builder.ExpressionOf(x.Value())))
	assert.Equal("int x = 1;", x.String())

	before := x.CurrentNode()
	assert.Error(x.SetValue(builder.ParseExpression("a +")))
	assert.Same(before, x.CurrentNode())

	require.NoError(t, x.SetValue(builder.Expression{}))
	assert.Nil(x.Value())
	assert.Equal("int x;", x.String())
	assert.True(builder.ExpressionOf(nil).IsZero())
}

func TestTypeExpressions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  builder.TypeExpression
		want string
	}{
		{builder.Special(syntax.SpecialTypeBoolean), "bool"},
		{builder.Named("System.IO.Stream"), "System.IO.Stream"},
		{builder.Named("List", builder.Special(syntax.SpecialTypeInt32)), "List<int>"},
		{builder.ArrayOf(builder.Named("T")), "T[]"},
		{builder.NullableOf(builder.Special(syntax.SpecialTypeDouble)), "double?"},
		{builder.TypeFor[[]string](), "string[]"},
		{builder.TypeFor[map[string]int64](), "Dictionary<string, long>"},
		{builder.TypeFor[*int](), "int?"},
		{builder.TypeFor[*point](), "point"},
		{builder.TypeFor[code](), "code"},
		{builder.TypeFor[any](), "object"},
		{builder.TypeFor[uint8](), "byte"},
		{builder.TypeOf(reflect.TypeOf(float32(0))), "float"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			n, err := tt.typ.Node(csharp.Language)
			require.NoError(t, err)
			assert.Equal(t, tt.want, csharp.Printer{}.Print(n))
		})
	}
}

func TestTypeExpressionErrors(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	_, err := builder.TypeFor[chan int]().Node(csharp.Language)
	assert.ErrorIs(err, builder.ErrUnsupportedKind)
	_, err = builder.Named("List", builder.TypeFor[func()]()).Node(csharp.Language)
	assert.ErrorIs(err, builder.ErrUnsupportedKind)
	_, err = builder.ArrayOf(builder.TypeExpression{}).Node(csharp.Language)
	assert.ErrorIs(err, builder.ErrUnsupportedKind)

	n, err := builder.TypeExpression{}.Node(csharp.Language)
	assert.NoError(err)
	assert.Nil(n)

	cu := parse(t, "class C\n{\n    int x;\n}\n")
	x := builder.Find[*builder.Field](cu, "x")[0]
	before := x.CurrentNode()
	assert.ErrorIs(x.SetType(builder.TypeFor[chan int]()), builder.ErrUnsupportedKind)
	assert.Same(before, x.CurrentNode())
	require.NoError(t, x.SetType(builder.TypeFor[[]string]()))
	assert.Equal("string[] x;", x.String())
}
