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
	"fmt"
	"slices"
	"strings"
)

// Node is a node in an immutable syntax tree.
//
// A nil *Node is a valid, empty node: its accessors return zero values.
//
// Nodes are compared by identity. Two nodes with the same contents are still
// different nodes, and the tree operations in this package locate nodes by
// pointer.
type Node struct {
	kind Kind
	role Role
	lang string
	text string

	children    []*Node
	leading     []Trivia
	trailing    []Trivia
	annotations []Annotation
}

// New constructs a new node of the given language and kind with the given
// children.
//
// Children keep whatever role they were constructed with; see [Node.WithRole].
func New(lang string, kind Kind, children ...*Node) *Node {
	n := &Node{kind: kind, lang: lang}
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}

// Token constructs a new childless node carrying text, such as an identifier
// or a keyword.
func Token(lang string, kind Kind, text string) *Node {
	return &Node{kind: kind, lang: lang, text: text}
}

// Kind returns this node's kind.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindUnknown
	}
	return n.kind
}

// Role returns the slot this node occupies in its parent.
func (n *Node) Role() Role {
	if n == nil {
		return RoleNone
	}
	return n.role
}

// Language returns the name of the language backend that built this node.
func (n *Node) Language() string {
	if n == nil {
		return ""
	}
	return n.lang
}

// Text returns the text carried by this node. What the text means depends on
// the kind: it is the spelling of a token, the operator of a binary
// expression, and so on.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.text
}

// Children returns this node's children.
//
// The returned slice must not be modified.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return slices.Clip(n.children)
}

// Len returns the number of children of this node.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// At returns the child at the given index.
func (n *Node) At(i int) *Node {
	return n.children[i]
}

// Index returns the index of child among n's children, or -1.
func (n *Node) Index(child *Node) int {
	if n == nil {
		return -1
	}
	return slices.Index(n.children, child)
}

// First returns the first child with the given role, or nil.
func (n *Node) First(role Role) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.children {
		if c.role == role {
			return c
		}
	}
	return nil
}

// All returns every child with the given role, in order.
func (n *Node) All(role Role) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.children {
		if c.role == role {
			out = append(out, c)
		}
	}
	return out
}

// Leading returns the trivia preceding this node.
//
// The returned slice must not be modified.
func (n *Node) Leading() []Trivia {
	if n == nil {
		return nil
	}
	return slices.Clip(n.leading)
}

// Trailing returns the trivia following this node on the same line.
//
// The returned slice must not be modified.
func (n *Node) Trailing() []Trivia {
	if n == nil {
		return nil
	}
	return slices.Clip(n.trailing)
}

// Annotations returns the annotations on this node.
func (n *Node) Annotations() []Annotation {
	if n == nil {
		return nil
	}
	return slices.Clip(n.annotations)
}

// HasAnnotation returns whether this node carries a.
func (n *Node) HasAnnotation(a Annotation) bool {
	return n != nil && slices.Contains(n.annotations, a)
}

// clone makes a shallow copy of n. The copy shares n's slices, which is safe
// because no slice in a node is ever written to after construction.
func (n *Node) clone() *Node {
	m := *n
	return &m
}

// WithRole returns a copy of n with the given role.
func (n *Node) WithRole(role Role) *Node {
	if n.role == role {
		return n
	}
	m := n.clone()
	m.role = role
	return m
}

// WithText returns a copy of n with the given text.
func (n *Node) WithText(text string) *Node {
	m := n.clone()
	m.text = text
	return m
}

// WithChildren returns a copy of n with the given children, which replace all
// of n's children.
func (n *Node) WithChildren(children ...*Node) *Node {
	m := n.clone()
	m.children = nil
	for _, c := range children {
		if c != nil {
			m.children = append(m.children, c)
		}
	}
	return m
}

// WithRoleChildren returns a copy of n where the children with the given role
// are replaced with children, each of which is given that role.
//
// The new children are placed where the first old child of that role was, or,
// if there was none, before the first child whose role sorts after role in
// order; pass the roles that must come after in after.
func (n *Node) WithRoleChildren(role Role, children []*Node, after ...Role) *Node {
	at := -1
	var kept []*Node
	for _, c := range n.children {
		if c.role == role {
			if at < 0 {
				at = len(kept)
			}
			continue
		}
		kept = append(kept, c)
	}
	if at < 0 {
		at = len(kept)
		for i, c := range kept {
			if slices.Contains(after, c.role) {
				at = i
				break
			}
		}
	}

	out := make([]*Node, 0, len(kept)+len(children))
	out = append(out, kept[:at]...)
	for _, c := range children {
		if c != nil {
			out = append(out, c.WithRole(role))
		}
	}
	out = append(out, kept[at:]...)

	m := n.clone()
	m.children = out
	return m
}

// WithLeading returns a copy of n with the given leading trivia.
func (n *Node) WithLeading(trivia ...Trivia) *Node {
	m := n.clone()
	m.leading = slices.Clone(trivia)
	return m
}

// WithTrailing returns a copy of n with the given trailing trivia.
func (n *Node) WithTrailing(trivia ...Trivia) *Node {
	m := n.clone()
	m.trailing = slices.Clone(trivia)
	return m
}

// WithAnnotations returns a copy of n with the given annotations added to
// the ones it already has.
func (n *Node) WithAnnotations(annotations ...Annotation) *Node {
	m := n.clone()
	m.annotations = slices.Clone(n.annotations)
	for _, a := range annotations {
		if !slices.Contains(m.annotations, a) {
			m.annotations = append(m.annotations, a)
		}
	}
	return m
}

// WithoutAnnotations returns a copy of n without any annotation of the given
// kind. Returns n itself if it has none.
func (n *Node) WithoutAnnotations(kind string) *Node {
	if !slices.ContainsFunc(n.annotations, func(a Annotation) bool { return a.kind == kind }) {
		return n
	}
	m := n.clone()
	m.annotations = slices.DeleteFunc(slices.Clone(n.annotations), func(a Annotation) bool {
		return a.kind == kind
	})
	return m
}

// Format implements [fmt.Formatter].
//
// %v prints the kind and text of the node; %+v prints the whole subtree as an
// S-expression, which is useful in tests.
func (n *Node) Format(s fmt.State, verb rune) {
	if n == nil {
		fmt.Fprint(s, "<nil>")
		return
	}

	if !s.Flag('+') {
		fmt.Fprint(s, n.kind)
		if n.text != "" {
			fmt.Fprintf(s, "(%q)", n.text)
		}
		return
	}

	var b strings.Builder
	n.sexpr(&b)
	fmt.Fprint(s, b.String())
}

func (n *Node) sexpr(b *strings.Builder) {
	b.WriteByte('(')
	if n.role != RoleNone {
		b.WriteString(n.role.String())
		b.WriteByte(':')
	}
	b.WriteString(n.kind.String())
	if n.text != "" {
		fmt.Fprintf(b, " %q", n.text)
	}
	for _, c := range n.children {
		b.WriteByte(' ')
		c.sexpr(b)
	}
	b.WriteByte(')')
}
