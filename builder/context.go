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

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bufbuild/syntaxedit/syntax"
)

// sideTableSize bounds the per-Context caches of derived data, such as the
// statements of a method body, keyed by the node they were derived from.
const sideTableSize = 64

// Context is the shared state of a tree of handles: the tree they were
// created from, and what that tree looks like now.
//
// The tree itself is immutable. Every edit made through a handle builds a
// new root and installs it in the Context, after which every other handle
// sharing the Context sees the edit. Handles find their node in the new root
// through tracking annotations, see [syntax.Track].
//
// A Context must not be used from more than one goroutine at a time.
type Context struct {
	lang     *Language
	original *syntax.Node
	current  *syntax.Node
	// Number of structural edits; tracking does not count.
	edits int

	// Shared with any Context created by detaching a handle from this one,
	// since detached subtrees keep the annotations given out here.
	tracker *tracker

	// Lookup table from annotation to node, valid while indexed == current.
	indexed *syntax.Node
	index   map[syntax.Annotation]*syntax.Node

	statements *lru.Cache[*syntax.Node, []*syntax.Node]
	typeParams *lru.Cache[*syntax.Node, []string]
}

// tracker maps the nodes handed out as handle anchors to their tracking
// annotations, and those annotations to their handles.
type tracker struct {
	annotations map[*syntax.Node]syntax.Annotation
	anchors     map[syntax.Annotation]*syntax.Node
	handles     map[syntax.Annotation]Builder
}

// NewContext returns a new Context around root.
func NewContext(lang *Language, root *syntax.Node) *Context {
	return newContext(lang, root, &tracker{
		annotations: make(map[*syntax.Node]syntax.Annotation),
		anchors:     make(map[syntax.Annotation]*syntax.Node),
		handles:     make(map[syntax.Annotation]Builder),
	})
}

func newContext(lang *Language, root *syntax.Node, t *tracker) *Context {
	if root == nil {
		panic("builder: nil root")
	}
	return &Context{
		lang:     lang,
		original: root,
		current:  root,
		tracker:  t,
	}
}

// Language returns the language of this Context's tree.
func (c *Context) Language() *Language {
	return c.lang
}

// Original returns the root this Context was created with.
func (c *Context) Original() *syntax.Node {
	return c.original
}

// Root returns the current root.
//
// The root changes whenever nodes are tracked, which happens as handles are
// created, so comparing roots does not tell whether anything was edited; use
// [Context.Edited] for that.
func (c *Context) Root() *syntax.Node {
	return c.current
}

// Edited returns whether the tree has been changed since this Context was
// created, other than by tracking nodes.
func (c *Context) Edited() bool {
	return c.edits > 0
}

// Replace replaces old with replacement in the current root.
//
// Panics if old is not in the current root: nodes passed to Replace must
// come from [Builder.CurrentNode] or the current root, never from an older
// version of the tree.
func (c *Context) Replace(old, replacement *syntax.Node) {
	root, ok := syntax.Replace(c.current, old, replacement)
	if !ok {
		panic(fmt.Sprintf("builder: replacing %v, which is not in the current tree", old))
	}
	c.current = root
	c.edits++
}

// TrackNodes makes nodes, which must be in the current root, locatable after
// future edits. Returns the annotation assigned to each node.
func (c *Context) TrackNodes(nodes ...*syntax.Node) []syntax.Annotation {
	root, annotations := syntax.Track(c.current, nodes...)
	for i, a := range annotations {
		if a.IsZero() {
			panic(fmt.Sprintf("builder: tracking %v, which is not in the current tree", nodes[i]))
		}
		c.tracker.annotations[nodes[i]] = a
		if _, ok := c.tracker.anchors[a]; !ok {
			c.tracker.anchors[a] = nodes[i]
		}
	}
	c.current = root
	return annotations
}

// RemoveNode removes node from the current root.
func (c *Context) RemoveNode(node *syntax.Node) {
	c.current = c.lang.Generator.RemoveNode(c.current, node)
	c.edits++
}

// InsertAfter inserts nodes after existing, which must be in the current
// root.
func (c *Context) InsertAfter(existing *syntax.Node, nodes ...*syntax.Node) {
	c.current = c.lang.Generator.InsertNodesAfter(c.current, existing, nodes...)
	c.edits++
}

// annotation returns the tracking annotation of a handle anchor.
func (c *Context) annotation(original *syntax.Node) (syntax.Annotation, bool) {
	a, ok := c.tracker.annotations[original]
	return a, ok
}

// resolve returns the node in the current root that corresponds to
// original, a node that was passed to [Context.TrackNodes].
func (c *Context) resolve(original *syntax.Node) *syntax.Node {
	if original == c.original {
		return c.current
	}
	a, ok := c.annotation(original)
	if !ok {
		panic(fmt.Sprintf("builder: resolving %v, which was never tracked", original))
	}
	n := c.lookup(a)
	if n == nil {
		panic(fmt.Sprintf("builder: resolving %v: %v is not in the current tree", original, a))
	}
	return n
}

// lookup finds the node carrying a tracking annotation.
func (c *Context) lookup(a syntax.Annotation) *syntax.Node {
	if c.indexed != c.current {
		c.index = syntax.TrackingIndex(c.current)
		c.indexed = c.current
	}
	return c.index[a]
}

// addNode adds a copy of node to the current root with add, which returns
// the new root, and then tracks it. The copy loses any tracking annotations
// node had. Returns the tracked node as it appears in the tree.
func (c *Context) addNode(node *syntax.Node, add func(*syntax.Node) *syntax.Node) *syntax.Node {
	marker := syntax.NewAnnotation("builder.add")
	c.current = add(syntax.ClearTracking(node).WithAnnotations(marker))
	c.edits++

	added := syntax.Annotated(c.current, marker)
	if added == nil {
		panic(fmt.Sprintf("builder: added %v, but it is not in the new tree", node))
	}
	anchor := added.WithoutAnnotations(marker.Kind())
	c.Replace(added, anchor)
	return c.lookup(c.TrackNodes(anchor)[0])
}

// builder returns the handle for n, a tracked child of parent's node,
// creating it on first use. Every handle for the same declaration is the same
// value, whichever collection it was obtained from.
func (c *Context) builder(parent Builder, n *syntax.Node) (Builder, error) {
	a, ok := syntax.TrackingAnnotation(n)
	if !ok {
		panic(fmt.Sprintf("builder: creating a handle for %v, which is not tracked", n))
	}
	if b, ok := c.tracker.handles[a]; ok {
		return b, nil
	}
	anchor, ok := c.tracker.anchors[a]
	if !ok {
		anchor = n
		c.tracker.annotations[n] = a
		c.tracker.anchors[a] = n
	}
	b, err := newChild(parent, anchor)
	if err != nil {
		return nil, err
	}
	c.tracker.handles[a] = b
	return b, nil
}

// detach returns a new Context around a node that was removed from this
// one.
func (c *Context) detach(node *syntax.Node) *Context {
	return newContext(c.lang, node, c.tracker)
}

func (c *Context) statementTable() *lru.Cache[*syntax.Node, []*syntax.Node] {
	if c.statements == nil {
		c.statements, _ = lru.New[*syntax.Node, []*syntax.Node](sideTableSize)
	}
	return c.statements
}

func (c *Context) typeParameterTable() *lru.Cache[*syntax.Node, []string] {
	if c.typeParams == nil {
		c.typeParams, _ = lru.New[*syntax.Node, []string](sideTableSize)
	}
	return c.typeParams
}
