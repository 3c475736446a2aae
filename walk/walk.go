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

// Package walk provides helper functions for traversing syntax trees.
package walk

import (
	"errors"
	"iter"

	"github.com/bufbuild/syntaxedit/syntax"
)

// ErrSkip may be returned by an enter function to skip the children of the
// node it was called on. The exit function is still called for it.
var ErrSkip = errors.New("walk: skip children")

// Nodes calls fn for root and every node beneath it, in pre-order.
//
// If fn returns an error other than [ErrSkip], the walk stops and that error
// is returned.
func Nodes(root *syntax.Node, fn func(*syntax.Node) error) error {
	return NodesEnterAndExit(root, fn, nil)
}

// NodesEnterAndExit is like [Nodes], but also calls exit, if not nil, after
// all of a node's children have been visited.
func NodesEnterAndExit(root *syntax.Node, enter, exit func(*syntax.Node) error) error {
	if root == nil {
		return nil
	}
	err := enter(root)
	switch {
	case errors.Is(err, ErrSkip):
	case err != nil:
		return err
	default:
		for _, child := range root.Children() {
			if err := NodesEnterAndExit(child, enter, exit); err != nil {
				return err
			}
		}
	}
	if exit != nil {
		return exit(root)
	}
	return nil
}

// NodesWithPath is like [Nodes], but fn also receives the ancestors of each
// node, outermost first, excluding the node itself.
//
// The path slice is reused between calls and must not be retained.
func NodesWithPath(root *syntax.Node, fn func(path []*syntax.Node, n *syntax.Node) error) error {
	var path []*syntax.Node
	return NodesEnterAndExit(root,
		func(n *syntax.Node) error {
			err := fn(path, n)
			path = append(path, n)
			return err
		},
		func(*syntax.Node) error {
			path = path[:len(path)-1]
			return nil
		},
	)
}

// Declarations returns an iterator over root and every declaration beneath
// it, in pre-order. The walk does not descend into statements, expressions,
// or types, since declarations cannot appear inside of them.
func Declarations(root *syntax.Node) iter.Seq[*syntax.Node] {
	return func(yield func(*syntax.Node) bool) {
		stop := errors.New("stop")
		_ = Nodes(root, func(n *syntax.Node) error {
			if !n.Kind().IsDeclaration() {
				return ErrSkip
			}
			if !yield(n) {
				return stop
			}
			return nil
		})
	}
}
