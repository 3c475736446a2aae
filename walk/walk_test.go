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

package walk_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/syntaxedit/syntax"
	"github.com/bufbuild/syntaxedit/walk"
)

func tree() *syntax.Node {
	name := func(s string) *syntax.Node {
		return syntax.Token("test", syntax.KindIdentifier, s).WithRole(syntax.RoleName)
	}
	body := syntax.New("test", syntax.KindBlock,
		syntax.New("test", syntax.KindReturn).WithRole(syntax.RoleStatement),
	).WithRole(syntax.RoleBody)
	method := syntax.New("test", syntax.KindMethod, name("M"), body).WithRole(syntax.RoleMember)
	field := syntax.New("test", syntax.KindField, name("f")).WithRole(syntax.RoleMember)
	class := syntax.New("test", syntax.KindClass, name("C"), method, field).WithRole(syntax.RoleMember)
	return syntax.New("test", syntax.KindCompilationUnit, class)
}

func TestNodesEnterAndExit(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var events []string
	err := walk.NodesEnterAndExit(tree(),
		func(n *syntax.Node) error {
			events = append(events, "+"+n.Kind().String())
			if n.Kind() == syntax.KindMethod {
				return walk.ErrSkip
			}
			return nil
		},
		func(n *syntax.Node) error {
			events = append(events, "-"+n.Kind().String())
			return nil
		},
	)
	assert.NoError(err)
	assert.Equal([]string{
		"+CompilationUnit", "+Class",
		"+Identifier", "-Identifier",
		"+Method", "-Method",
		"+Field", "+Identifier", "-Identifier", "-Field",
		"-Class", "-CompilationUnit",
	}, events)

	boom := errors.New("boom")
	err = walk.Nodes(tree(), func(n *syntax.Node) error {
		if n.Kind() == syntax.KindBlock {
			return boom
		}
		return nil
	})
	assert.ErrorIs(err, boom)
}

func TestDeclarations(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var kinds []syntax.Kind
	for n := range walk.Declarations(tree()) {
		kinds = append(kinds, n.Kind())
	}
	assert.Equal([]syntax.Kind{
		syntax.KindCompilationUnit, syntax.KindClass, syntax.KindMethod, syntax.KindField,
	}, kinds)

	first := slices.Collect(func(yield func(*syntax.Node) bool) {
		for n := range walk.Declarations(tree()) {
			if !yield(n) || n.Kind() == syntax.KindClass {
				return
			}
		}
	})
	assert.Len(first, 2)
}

func TestNodesWithPath(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var depth int
	err := walk.NodesWithPath(tree(), func(path []*syntax.Node, n *syntax.Node) error {
		if n.Kind() == syntax.KindReturn {
			depth = len(path)
			assert.Equal(syntax.KindMethod, path[len(path)-2].Kind())
		}
		return nil
	})
	assert.NoError(err)
	assert.Equal(4, depth)
}
