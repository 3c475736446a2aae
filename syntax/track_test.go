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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/syntaxedit/syntax"
)

func TestTrack(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	a, b := field("a"), field("b")
	root := class("C", a, b)

	tracked, ids := syntax.Track(root, a, b)
	assert.Len(ids, 2)
	assert.NotEqual(ids[0], ids[1])

	index := syntax.TrackingIndex(tracked)
	assert.Equal("a", index[ids[0]].First(syntax.RoleName).Text())

	// Renaming b's name keeps b's annotation on the rebuilt node.
	bName := index[ids[1]].First(syntax.RoleName)
	renamed, ok := syntax.Replace(tracked, bName, ident("b2"))
	assert.True(ok)
	current := syntax.TrackingIndex(renamed)[ids[1]]
	assert.Equal("b2", current.First(syntax.RoleName).Text())

	// Tracking an already tracked node reuses its annotation.
	again, ids2 := syntax.Track(renamed, current)
	assert.Same(renamed, again)
	assert.Equal(ids[1], ids2[0])

	// Nodes outside the tree are not tracked.
	_, ids3 := syntax.Track(renamed, field("z"))
	assert.True(ids3[0].IsZero())
}

func TestClearTracking(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	a := field("a")
	root, _ := syntax.Track(class("C", a), a)
	assert.Len(syntax.TrackingIndex(root), 1)

	cleared := syntax.ClearTracking(root)
	assert.Empty(syntax.TrackingIndex(cleared))

	other := syntax.NewAnnotation("insert")
	marked := cleared.WithAnnotations(other)
	assert.Same(marked, syntax.ClearTracking(marked), "other annotations are kept")
	assert.Same(marked, syntax.Annotated(marked, other))
}
