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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/syntaxedit/builder"
	"github.com/bufbuild/syntaxedit/comment"
)

func TestComments(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cu := parse(t, "// a\n// b\n\n/// doc\nclass C\n{\n}\n")
	c := cu.Types().At(0)
	comments := c.Comments()
	require.Equal(t, 2, comments.Len())

	first, err := comments.At(0)
	require.NoError(t, err)
	assert.Equal("a\nb", first.Text())
	assert.Equal(comment.StyleSingleLineBlock, first.Style())
	doc, err := comments.At(1)
	require.NoError(t, err)
	assert.Equal(comment.StyleDocumentation, doc.Style())
	_, err = comments.At(2)
	assert.ErrorIs(err, builder.ErrOutOfRange)

	// Inserting before the first block shifts the others.
	added, err := comments.Insert(0, "new", comment.StyleSingleLineBlock)
	require.NoError(t, err)
	assert.Equal(3, comments.Len())
	assert.Equal(0, comments.Index(added))
	assert.Equal(1, comments.Index(first))
	assert.Equal("a\nb", first.Text())
	assert.Equal("// new\n\n// a\n// b\n\n/// doc\nclass C\n{\n}", c.String())

	var texts []string
	for _, cm := range comments.All() {
		texts = append(texts, cm.Text())
	}
	assert.Equal([]string{"new", "a\nb", "doc"}, texts)
}

func TestCommentEdits(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cu := parse(t, "// a\nclass C\n{\n}\n")
	c := cu.Types().At(0)
	first, err := c.Comments().At(0)
	require.NoError(t, err)

	first.SetText("one\ntwo")
	assert.Equal("// one\n// two\nclass C\n{\n}", c.String())
	require.NoError(t, first.SetStyle(comment.StyleMultiLineBlock))
	assert.Equal(comment.StyleMultiLineBlock, first.Style())
	assert.Equal("one\ntwo", first.Text())

	assert.ErrorIs(first.SetStyle(comment.Style(42)), builder.ErrInvalidStyle)
	_, err = c.Comments().Add("x", comment.Style(42))
	assert.ErrorIs(err, builder.ErrInvalidStyle)
	_, err = c.Comments().Insert(5, "x", comment.StyleSingleLineBlock)
	assert.ErrorIs(err, builder.ErrOutOfRange)

	assert.ErrorIs(c.Comments().Remove(first), builder.ErrNotImplemented)
	assert.Equal(1, c.Comments().Len())
}

func TestCommentsMerge(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cu := parse(t, "class C\n{\n}\n")
	c := cu.Types().At(0)
	x, err := c.Comments().Add("x", comment.StyleSingleLineBlock)
	require.NoError(t, err)
	y, err := c.Comments().Add("y", comment.StyleSingleLineBlock)
	require.NoError(t, err)

	assert.Same(x, y)
	assert.Equal(1, c.Comments().Len())
	assert.Equal("x\ny", x.Text())
	assert.Equal("// x\n// y\nclass C\n{\n}", c.String())
}
