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

package builder

import (
	"fmt"
	"iter"

	"github.com/bufbuild/syntaxedit/seq"
	"github.com/bufbuild/syntaxedit/syntax"
)

// List is a live view of one kind of child of a handle's node, such as the
// members of a type or the parameters of a method.
//
// A List has no state of its own beyond the handles it has handed out: every
// call reads the parent's current node, so edits made through other handles
// are always visible. Handles are stable: the same declaration always yields
// the same handle.
type List[T Builder] struct {
	parent Builder
	slot   slot
}

var _ seq.Indexer[*Type] = (*List[*Type])(nil)

// slot describes where a List's nodes live in the parent node.
type slot struct {
	nodes func(Generator, *syntax.Node) []*syntax.Node
	add   func(Generator, *syntax.Node, *syntax.Node) *syntax.Node
}

var (
	memberSlot = slot{
		nodes: Generator.Members,
		add:   func(g Generator, p, n *syntax.Node) *syntax.Node { return g.AddMembers(p, n) },
	}
	parameterSlot = slot{
		nodes: Generator.Parameters,
		add:   func(g Generator, p, n *syntax.Node) *syntax.Node { return g.AddParameters(p, n) },
	}
	accessorSlot = slot{
		nodes: Generator.Accessors,
		add:   func(g Generator, p, n *syntax.Node) *syntax.Node { return g.AddAccessors(p, n) },
	}
	attributeSlot = slot{
		nodes: Generator.Attributes,
		add:   func(g Generator, p, n *syntax.Node) *syntax.Node { return g.AddAttributes(p, n) },
	}
	argumentSlot = slot{
		nodes: Generator.AttributeArguments,
		add:   func(g Generator, p, n *syntax.Node) *syntax.Node { return g.AddAttributeArguments(p, n) },
	}
)

func newList[T Builder](parent Builder, s slot) *List[T] {
	return &List[T]{parent: parent, slot: s}
}

// items returns the handles for the current children in this list.
func (l *List[T]) items() []T {
	ctx := l.parent.Context()
	g := ctx.lang.Generator

	nodes := l.slot.nodes(g, l.parent.CurrentNode())
	var untracked []*syntax.Node
	for _, n := range nodes {
		if _, ok := syntax.TrackingAnnotation(n); !ok && l.accepts(g.DeclarationKind(n)) {
			untracked = append(untracked, n)
		}
	}
	if untracked != nil {
		ctx.TrackNodes(untracked...)
		nodes = l.slot.nodes(g, l.parent.CurrentNode())
	}

	var out []T
	for _, n := range nodes {
		if !l.accepts(g.DeclarationKind(n)) {
			continue
		}
		b, err := ctx.builder(l.parent, n)
		if err != nil {
			continue
		}
		if t, ok := b.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// accepts returns whether a declaration of the given kind can be in this
// list.
func (l *List[T]) accepts(kind syntax.DeclarationKind) bool {
	newVariant := variant(kind)
	if newVariant == nil {
		return false
	}
	_, ok := newVariant(handle{}).(T)
	return ok
}

// Len implements [seq.Indexer].
func (l *List[T]) Len() int {
	return len(l.items())
}

// At implements [seq.Indexer].
//
// Panics with a [*RangeError] if i is out of bounds.
func (l *List[T]) At(i int) T {
	items := l.items()
	if err := checkIndex(i, len(items), false); err != nil {
		panic(err)
	}
	return items[i]
}

// All returns an iterator over the handles in this list. The list is read
// once, when iteration starts.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, b := range l.items() {
			if !yield(i, b) {
				return
			}
		}
	}
}

// Slice returns the handles in this list.
func (l *List[T]) Slice() []T {
	return l.items()
}

func (l *List[T]) builders() []Builder {
	items := l.items()
	out := make([]Builder, len(items))
	for i, b := range items {
		out[i] = b
	}
	return out
}

// Index returns the position of b in this list, or -1.
func (l *List[T]) Index(b T) int {
	for i, item := range l.items() {
		if Builder(item) == Builder(b) {
			return i
		}
	}
	return -1
}

// Contains returns whether b is in this list.
func (l *List[T]) Contains(b T) bool {
	return l.Index(b) >= 0
}

// Add adds a copy of node to the parent's node and returns its handle.
//
// Returns an error wrapping [ErrUnsupportedKind], without changing anything,
// if this list cannot hold a declaration of node's kind.
func (l *List[T]) Add(node *syntax.Node) (T, error) {
	var zero T
	ctx := l.parent.Context()
	g := ctx.lang.Generator

	kind := g.DeclarationKind(node)
	if !l.accepts(kind) {
		return zero, fmt.Errorf("%w: cannot add %v here", ErrUnsupportedKind, kind)
	}

	parent := l.parent.CurrentNode()
	added := ctx.addNode(node, func(marked *syntax.Node) *syntax.Node {
		return g.ReplaceNode(ctx.current, parent, l.slot.add(g, parent, marked))
	})
	b, err := ctx.builder(l.parent, added)
	if err != nil {
		return zero, err
	}
	return b.(T), nil
}

// AddBuilder adds a copy of b's current node and returns the handle for the
// copy. b itself is not changed, and does not become part of this list.
func (l *List[T]) AddBuilder(b Builder) (T, error) {
	return l.Add(b.CurrentNode())
}

// Remove removes b from the parent's node. b is detached: it keeps working,
// as the root of a tree of its own.
//
// Returns false if b is not in this list.
func (l *List[T]) Remove(b T) bool {
	if !l.Contains(b) {
		return false
	}
	node := b.CurrentNode()
	l.parent.Context().RemoveNode(node)
	b.base().detach(node)
	return true
}
