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

package syntax

import (
	"iter"
	"slices"
)

// Descendants returns an iterator over root and every node beneath it, in
// pre-order.
func Descendants(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if root != nil {
			descend(root, yield)
		}
	}
}

func descend(n *Node, yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.children {
		if !descend(c, yield) {
			return false
		}
	}
	return true
}

// PathTo returns the chain of nodes from root down to target, inclusive, or
// nil if target is not in root's subtree.
func PathTo(root, target *Node) []*Node {
	if root == nil || target == nil {
		return nil
	}
	var path []*Node
	var find func(*Node) bool
	find = func(n *Node) bool {
		path = append(path, n)
		if n == target {
			return true
		}
		for _, c := range n.children {
			if find(c) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}
	if !find(root) {
		return nil
	}
	return path
}

// Contains returns whether target is root or one of its descendants.
func Contains(root, target *Node) bool {
	for n := range Descendants(root) {
		if n == target {
			return true
		}
	}
	return false
}

// Replace returns a copy of root in which old has been replaced with
// replacement. The replacement takes over old's role.
//
// Returns false if old is not in root's subtree.
func Replace(root, old, replacement *Node) (*Node, bool) {
	path := PathTo(root, old)
	if path == nil {
		return root, false
	}
	return rebuild(path, replacement.WithRole(old.role)), true
}

// Remove returns a copy of root with target removed from its parent.
//
// Returns false if target is not a proper descendant of root.
func Remove(root, target *Node) (*Node, bool) {
	path := PathTo(root, target)
	if len(path) < 2 {
		return root, false
	}
	return splice(path, func(children []*Node, i int) []*Node {
		return slices.Delete(children, i, i+1)
	}), true
}

// InsertAfter returns a copy of root with nodes inserted after existing, as
// siblings of it. Inserted nodes take on existing's role.
//
// Returns false if existing is not a proper descendant of root.
func InsertAfter(root, existing *Node, nodes ...*Node) (*Node, bool) {
	return insert(root, existing, 1, nodes)
}

// InsertBefore is like [InsertAfter], but inserts before existing.
func InsertBefore(root, existing *Node, nodes ...*Node) (*Node, bool) {
	return insert(root, existing, 0, nodes)
}

func insert(root, existing *Node, offset int, nodes []*Node) (*Node, bool) {
	path := PathTo(root, existing)
	if len(path) < 2 {
		return root, false
	}
	return splice(path, func(children []*Node, i int) []*Node {
		added := make([]*Node, len(nodes))
		for j, n := range nodes {
			added[j] = n.WithRole(existing.role)
		}
		return slices.Insert(children, i+offset, added...)
	}), true
}

// ReplaceAll returns a copy of root where nodes are substituted bottom-up.
//
// replace is called once per node with the node as it appears in root and
// the node as rebuilt after its descendants were substituted (the same node
// if nothing beneath it changed). It returns the node to use in its place,
// which takes over the original's role; returning current keeps it.
func ReplaceAll(root *Node, replace func(original, current *Node) *Node) *Node {
	if root == nil {
		return nil
	}
	var visit func(n *Node) *Node
	visit = func(n *Node) *Node {
		next := n
		for i, c := range n.children {
			d := visit(c)
			if d == c {
				continue
			}
			if next == n {
				next = n.clone()
				next.children = slices.Clone(n.children)
			}
			next.children[i] = d
		}
		if r := replace(n, next); r != nil && r != next {
			return r.WithRole(n.role)
		}
		return next
	}
	return visit(root)
}

// splice edits the children of the parent of the last node in path, and then
// rebuilds the ancestors.
func splice(path []*Node, edit func(children []*Node, i int) []*Node) *Node {
	parent := path[len(path)-2]
	i := parent.Index(path[len(path)-1])
	next := parent.clone()
	next.children = edit(slices.Clone(parent.children), i)
	return rebuild(path[:len(path)-1], next)
}

// rebuild replaces the last node of path with replacement and rebuilds every
// ancestor above it.
func rebuild(path []*Node, replacement *Node) *Node {
	for i := len(path) - 2; i >= 0; i-- {
		parent := path[i]
		j := parent.Index(path[i+1])
		next := parent.clone()
		next.children = slices.Clone(parent.children)
		next.children[j] = replacement
		replacement = next
	}
	return replacement
}
