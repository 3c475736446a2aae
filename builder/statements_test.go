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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/syntaxedit/builder"
	"github.com/bufbuild/syntaxedit/csharp"
	"github.com/bufbuild/syntaxedit/syntax"
)

func stmt(t *testing.T, text string) *syntax.Node {
	t.Helper()
	n, err := csharp.ParseStatement(text)
	require.NoError(t, err)
	return n
}

func TestStatements(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cu := parse(t, "class C\n{\n    void M()\n    {\n        a(); // keep\n    }\n}\n")
	m := builder.Find[*builder.Method](cu, "M")[0]
	stmts := m.Statements()
	assert.Equal(1, stmts.Len())

	require.NoError(t, stmts.Insert(0, stmt(t, "  b();")))
	require.NoError(t, stmts.Insert(stmts.Len(), stmt(t, "c();")))
	assert.Equal("void M()\n{\n    b();\n    a(); // keep\n    c();\n}", m.String())

	first, err := stmts.At(0)
	require.NoError(t, err)
	assert.Equal("b();", csharp.Printer{}.Print(first))

	require.NoError(t, stmts.Set(1, stmt(t, "d();")))
	require.NoError(t, stmts.RemoveAt(0))
	require.NoError(t, stmts.AddText("return;"))
	assert.Equal("void M()\n{\n    d();\n    c();\n    return;\n}", m.String())

	var texts []string
	for _, s := range stmts.All() {
		texts = append(texts, csharp.Printer{}.Print(s))
	}
	assert.Equal([]string{"d();", "c();", "return;"}, texts)

	stmts.Clear()
	assert.Equal(0, stmts.Len())
	assert.Equal("void M()\n{\n}", m.String())
}

func TestStatementsOutOfRange(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	m, err := builder.CreateMethod(csharp.Language, "M", builder.TypeExpression{})
	require.NoError(t, err)
	stmts := m.Statements()
	stmts.Add(stmt(t, "a();"))
	before := m.CurrentNode()

	err = stmts.Insert(2, stmt(t, "b();"))
	assert.ErrorIs(err, builder.ErrOutOfRange)
	var rangeErr *builder.RangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(builder.RangeError{Index: 2, Len: 1}, *rangeErr)

	_, err = stmts.At(1)
	assert.ErrorIs(err, builder.ErrOutOfRange)
	assert.ErrorIs(stmts.Set(-1, stmt(t, "b();")), builder.ErrOutOfRange)
	assert.ErrorIs(stmts.RemoveAt(1), builder.ErrOutOfRange)
	assert.Error(stmts.AddText("not a statement"))
	assert.Same(before, m.CurrentNode())
}

func TestStatementsInsertAtEndIsAdd(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	added, err := builder.CreateMethod(csharp.Language, "M", builder.TypeExpression{})
	require.NoError(t, err)
	inserted, err := builder.CreateMethod(csharp.Language, "M", builder.TypeExpression{})
	require.NoError(t, err)

	for _, text := range []string{"a();", "b();", "c();"} {
		added.Statements().Add(stmt(t, text))
		require.NoError(t, inserted.Statements().Insert(inserted.Statements().Len(), stmt(t, text)))
	}
	assert.Equal(added.String(), inserted.String())

	added.Statements().AddRange(stmt(t, "d();"), stmt(t, "e();"))
	require.NoError(t, inserted.Statements().InsertRange(3, stmt(t, "d();"), stmt(t, "e();")))
	assert.Equal(added.String(), inserted.String())
}

func TestStatementsReplaceExpressionBody(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cu := parse(t, "class C\n{\n    int F() => 1;\n}\n")
	f := builder.Find[*builder.Method](cu, "F")[0]
	assert.Equal(0, f.Statements().Len())
	assert.NotNil(f.ExpressionBody())

	require.NoError(t, f.Statements().AddText("return 2;"))
	assert.Nil(f.ExpressionBody())
	assert.Equal("int F()\n{\n    return 2;\n}", f.String())

	require.NoError(t, f.SetExpressionBody(builder.ParseExpression("3")))
	assert.Equal("int F() => 3;", f.String())
	assert.Equal(0, f.Statements().Len())
}
