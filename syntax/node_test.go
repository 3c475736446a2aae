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

package syntax_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/syntaxedit/syntax"
)

func TestNilNode(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var n *syntax.Node
	assert.Equal(syntax.KindUnknown, n.Kind())
	assert.Equal(syntax.RoleNone, n.Role())
	assert.Zero(n.Len())
	assert.Nil(n.First(syntax.RoleName))
	assert.Equal(-1, n.Index(nil))
	assert.Equal("<nil>", fmt.Sprint(n))
}

func TestNodeCopies(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	n := syntax.Token("test", syntax.KindIdentifier, "x")
	assert.Same(n, n.WithRole(syntax.RoleNone))

	m := n.WithText("y").WithLeading(syntax.Whitespace(" ")).WithTrailing(syntax.EndOfLine())
	assert.Equal("x", n.Text())
	assert.Equal("y", m.Text())
	assert.Equal(" ", syntax.TriviaText(m.Leading()))
	assert.Equal("\n", syntax.TriviaText(m.Trailing()))

	cleared := syntax.ClearTrivia(m)
	assert.Empty(cleared.Leading())
	assert.Same(cleared, syntax.ClearTrivia(cleared))

	assert.Equal(`Identifier("y")`, fmt.Sprint(m))
}

func TestNodeAnnotations(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	a, b := syntax.NewAnnotation("a"), syntax.NewAnnotation("b")
	assert.NotEqual(a, b)
	assert.False(a.IsZero())

	n := syntax.Token("test", syntax.KindIdentifier, "x").WithAnnotations(a, a, b)
	assert.Len(n.Annotations(), 2)
	assert.True(n.HasAnnotation(b))

	m := n.WithoutAnnotations("a")
	assert.False(m.HasAnnotation(a))
	assert.True(m.HasAnnotation(b))
	assert.True(n.HasAnnotation(a), "the original is unchanged")
}

func TestModifiers(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	m := syntax.ModifierStatic.With(syntax.ModifierReadOnly)
	assert.True(m.Has(syntax.ModifierStatic))
	assert.False(m.Has(syntax.ModifierAbstract))
	assert.Equal(2, m.Len())
	assert.Equal([]string{"readonly", "static"}, m.Names())
	assert.Equal("readonly|static", m.String())
	assert.Equal("none", syntax.ModifierNone.String())

	assert.Equal(syntax.ModifierReadOnly, m.Without(syntax.ModifierStatic))

	parsed, ok := syntax.ModifierByName("virtual")
	assert.True(ok)
	assert.Equal(syntax.ModifierVirtual, parsed)
	_, ok = syntax.ModifierByName("public")
	assert.False(ok)

	assert.True(m.Valid())
	assert.False(syntax.Modifiers(1 << 15).Valid())
	assert.Equal("Modifiers(0x8000)", syntax.Modifiers(1<<15).String())

	c := syntax.ConstraintReferenceType | syntax.ConstraintConstructor
	assert.True(c.Has(syntax.ConstraintConstructor))
	assert.Equal("class|new()", c.String())
	assert.Equal("none", syntax.ConstraintNone.String())
}
