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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/syntaxedit/csharp"
	"github.com/bufbuild/syntaxedit/reporter"
	"github.com/bufbuild/syntaxedit/syntax"
)

func TestParseExpression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text, want string
	}{
		{
			text: "a + b * c",
			want: `(Binary "+" (Left:IdentifierName "a") (Right:Binary "*" (Left:IdentifierName "b") (Right:IdentifierName "c")))`,
		},
		{
			text: "(int)x",
			want: `(Cast (Type:PredefinedType "int") (Operand:IdentifierName "x"))`,
		},
		{
			text: "F<int>(x)",
			want: `(Invocation (Callee:GenericName "F" (TypeArgument:PredefinedType "int")) (Argument:IdentifierName "x"))`,
		},
		{
			text: "a < b",
			want: `(Binary "<" (Left:IdentifierName "a") (Right:IdentifierName "b"))`,
		},
		{
			text: "x = y ?? 0",
			want: `(Assignment "=" (Left:IdentifierName "x") (Right:Binary "??" (Left:IdentifierName "y") (Right:Literal "0")))`,
		},
		{
			text: "a?.b",
			want: `(MemberAccess "?." (Left:IdentifierName "a") (Right:IdentifierName "b"))`,
		},
		{
			text: "i++",
			want: `(PostfixUnary "++" (Operand:IdentifierName "i"))`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			n, err := csharp.ParseExpression(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fmt.Sprintf("%+v", n))
		})
	}
}

func TestParseDeclarations(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root, err := csharp.ParseCompilationUnit(`
using System;
using IO = System.IO;

namespace N
{
    public sealed class C<T> : B where T : struct
    {
        private int x = 1, y;
        public C() : base(0) { }
        public string Name { get; private set; }
    }
}
`)
	require.NoError(t, err)

	members := root.All(syntax.RoleMember)
	require.Len(t, members, 3)
	assert.Equal(syntax.KindUsingDirective, members[0].Kind())
	assert.Equal("IO", members[1].First(syntax.RoleAlias).Text())

	ns := members[2]
	assert.Equal(syntax.KindNamespace, ns.Kind())
	class := ns.First(syntax.RoleMember)
	assert.Equal(syntax.KindClass, class.Kind())
	assert.Equal("C", class.First(syntax.RoleName).Text())
	assert.Len(class.All(syntax.RoleModifier), 2)
	assert.Equal("T", class.First(syntax.RoleTypeParameter).Text())
	assert.Len(class.All(syntax.RoleConstraint), 1)

	body := class.All(syntax.RoleMember)
	require.Len(t, body, 3)
	assert.Equal(syntax.KindField, body[0].Kind())
	assert.Len(body[0].All(syntax.RoleDeclarator), 2)
	assert.Equal(syntax.KindConstructor, body[1].Kind())
	assert.Equal("base", body[1].Text())
	assert.Equal(syntax.KindProperty, body[2].Kind())
	assert.Len(body[2].All(syntax.RoleAccessor), 2)
}

func TestParseTrivia(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root, err := csharp.ParseCompilationUnit("// one\n\n/// two\nclass C { } // three\n")
	require.NoError(t, err)

	class := root.First(syntax.RoleMember)
	var comments []string
	for _, tr := range class.Leading() {
		if tr.IsComment() {
			comments = append(comments, tr.Text)
		}
	}
	assert.Equal([]string{"// one", "/// two"}, comments)
	assert.Equal([]syntax.Trivia{
		{Kind: syntax.TriviaLineComment, Text: "// three"},
		syntax.EndOfLine(),
	}, class.Trailing())
}

func TestParseUnsupported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text string
	}{
		{"lambda", "class C { void M() { F(x => x); } }"},
		{"goto", "class C { void M() { goto done; } }"},
		{"named argument", "class C { void M() { F(x: 1); } }"},
		{"extern alias", "extern alias A;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert := assert.New(t)

			_, err := csharp.ParseFile("test.cs", tt.text, nil)
			require.Error(t, err)
			assert.ErrorIs(err, csharp.ErrUnsupported)

			var pos reporter.ErrorWithPos
			require.ErrorAs(t, err, &pos)
			assert.Equal("test.cs", pos.GetPosition().Filename)
			assert.Equal(1, pos.GetPosition().Line)
		})
	}
}

func TestParseRecovers(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var errs []error
	rep := reporter.NewReporter(func(err reporter.ErrorWithPos) error {
		errs = append(errs, err)
		return nil
	}, nil)

	root, err := csharp.ParseFile("test.cs", "class A { void M() { goto x; } }\nclass B { }\n", rep)
	assert.ErrorIs(err, reporter.ErrInvalidSource)
	require.Len(t, errs, 1)
	assert.Equal(1, errs[0].(reporter.ErrorWithPos).GetPosition().Line)

	require.NotNil(t, root)
	members := root.All(syntax.RoleMember)
	require.Len(t, members, 2)
	assert.Equal("B", members[1].First(syntax.RoleName).Text())
}

func TestParseFragmentsRejectTrailingInput(t *testing.T) {
	t.Parallel()

	_, err := csharp.ParseExpression("a b")
	assert.Error(t, err)
	_, err = csharp.ParseStatement("return;;")
	assert.Error(t, err)
}

func TestParseWarnsOnConditionals(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var c reporter.Collector
	root, err := csharp.ParseFile("cond.cs", "#if DEBUG\n#endif\n#region r\nclass A { }\n#endregion\n", &c)
	require.NoError(t, err)
	assert.Len(root.All(syntax.RoleMember), 1)
	assert.Empty(c.Errors())

	warnings := c.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(1, warnings[0].GetPosition().Line)
	assert.ErrorContains(warnings[0], "#if is not evaluated")
}
