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
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/bufbuild/syntaxedit/internal/interval"
	"github.com/bufbuild/syntaxedit/syntax"
	"github.com/bufbuild/syntaxedit/walk"
)

// Builder is a handle on a declaration in a syntax tree.
//
// A handle remembers the node it was created for, and resolves it to that
// node's current version on every call: edits made through any handle
// sharing the same [Context] are visible through every other one.
//
// Builder is implemented by the pointer types in this package, such as
// [*Type] and [*Method]; it cannot be implemented outside of it.
type Builder interface {
	// CurrentNode returns this handle's node as it is now.
	CurrentNode() *syntax.Node
	// Context returns the Context this handle belongs to.
	Context() *Context
	// Parent returns the handle this one was obtained from, or nil for a
	// root.
	Parent() Builder
	// Kind returns which kind of declaration this handle is for.
	Kind() syntax.DeclarationKind
	// String prints the current node.
	String() string
	// Comments returns the comment blocks before the current node.
	Comments() *CommentList

	base() *handle
	// children returns the handles for this handle's child declarations.
	children() []Builder
}

// handle is the part of a [Builder] shared by every kind of handle.
type handle struct {
	// Exactly one of ctx and parent is set: ctx for a root, parent for a
	// child.
	ctx    *Context
	parent Builder

	original *syntax.Node
	self     Builder
	detached bool

	comments *CommentList
}

func (h *handle) base() *handle {
	return h
}

// Context implements [Builder].
func (h *handle) Context() *Context {
	for {
		if h.ctx != nil {
			return h.ctx
		}
		h = h.parent.base()
	}
}

// CurrentNode implements [Builder].
func (h *handle) CurrentNode() *syntax.Node {
	return h.Context().resolve(h.original)
}

// Parent implements [Builder].
func (h *handle) Parent() Builder {
	return h.parent
}

// Kind implements [Builder].
func (h *handle) Kind() syntax.DeclarationKind {
	return h.gen().DeclarationKind(h.CurrentNode())
}

// Language returns the language of this handle's tree.
func (h *handle) Language() *Language {
	return h.Context().lang
}

// IsDetached returns whether this handle was removed from the tree it was
// created in, and is now the root of a tree of its own.
func (h *handle) IsDetached() bool {
	return h.detached
}

func (h *handle) gen() Generator {
	return h.Context().lang.Generator
}

// String implements [Builder].
func (h *handle) String() string {
	return h.Context().lang.Printer.Print(h.CurrentNode())
}

// Format normalizes the whitespace and comments of this handle's node and
// everything beneath it.
func (h *handle) Format() {
	h.update(func(_ Generator, n *syntax.Node) *syntax.Node {
		return h.Context().lang.Printer.Format(n)
	})
}

// Comments returns the comment blocks before this handle's node.
func (h *handle) Comments() *CommentList {
	if h.comments == nil {
		h.comments = &CommentList{owner: h}
	}
	return h.comments
}

// update replaces this handle's node with the result of edit. edit must
// return a node derived from the one it is given, so that it keeps its
// tracking annotations.
func (h *handle) update(edit func(Generator, *syntax.Node) *syntax.Node) {
	current := h.CurrentNode()
	next := edit(h.gen(), current)
	if next == current {
		return
	}
	h.Context().Replace(current, next)
}

// detach turns this handle into the root of a new Context around node, the
// last version of its node before it was removed.
func (h *handle) detach(node *syntax.Node) {
	ctx := h.Context().detach(node)
	h.ctx = ctx
	h.parent = nil
	h.original = node
	h.detached = true
}

// Builders returns every handle beneath this one, in pre-order, for a
// declaration of the given kind. If name is not empty, only declarations
// with that name are returned.
func (h *handle) Builders(kind syntax.DeclarationKind, name string) []Builder {
	var out []Builder
	for b := range descendants(h.self) {
		if b.Kind() == kind && (name == "" || nameOf(b) == name) {
			out = append(out, b)
		}
	}
	return out
}

// BuilderFor returns the handle for node, which must be this handle's
// current node or one of its descendants.
//
// Creating handles tracks nodes, which replaces the root, so node is located
// by its position beneath this handle's node rather than by identity.
func (h *handle) BuilderFor(node *syntax.Node) (Builder, bool) {
	if node == nil {
		return nil, false
	}
	var path []*syntax.Node
	err := walk.NodesWithPath(h.CurrentNode(), func(ancestors []*syntax.Node, n *syntax.Node) error {
		if n == node {
			path = append(slices.Clone(ancestors), n)
			return errFound
		}
		if !n.Kind().IsDeclaration() {
			return walk.ErrSkip
		}
		return nil
	})
	if !errors.Is(err, errFound) {
		return nil, false
	}

	b := h.self
	var steps []int
	for k := 1; k < len(path); k++ {
		steps = append(steps, path[k-1].Index(path[k]))
		if !path[k].Kind().IsDeclaration() {
			continue
		}
		kids := b.children()
		target := b.CurrentNode()
		for _, i := range steps {
			target = target.At(i)
		}
		i := slices.IndexFunc(kids, func(c Builder) bool { return c.CurrentNode() == target })
		if i < 0 {
			return nil, false
		}
		b, steps = kids[i], nil
	}
	if steps != nil {
		// node is not a declaration.
		return nil, false
	}
	return b, true
}

var errFound = errors.New("found")

// BuilderAt returns the innermost handle whose declaration covers the given
// byte offset in the output of [Builder.String].
func (h *handle) BuilderAt(offset int) (Builder, bool) {
	_, spans := h.Context().lang.Printer.PrintSpans(h.CurrentNode())

	var index interval.Nested[int, *syntax.Node]
	for _, span := range spans {
		if span.End > span.Start {
			index.Insert(span.Start, span.End-1, span.Node)
		}
	}
	node, ok := index.Innermost(offset)
	if !ok {
		return nil, false
	}
	return h.BuilderFor(node)
}

// descendants yields every handle beneath b, in pre-order.
func descendants(b Builder) iter.Seq[Builder] {
	return func(yield func(Builder) bool) {
		var walk func(Builder) bool
		walk = func(b Builder) bool {
			for _, c := range b.children() {
				if !yield(c) || !walk(c) {
					return false
				}
			}
			return true
		}
		walk(b)
	}
}

// nameOf returns the name of the declaration b is for, if it has one.
func nameOf(b Builder) string {
	return b.base().gen().Name(b.CurrentNode())
}

// Find returns every handle of type T beneath b, in pre-order. If name is
// not empty, only declarations with that name are returned.
func Find[T Builder](b Builder, name string) []T {
	var out []T
	for c := range descendants(b) {
		if t, ok := c.(T); ok && (name == "" || nameOf(c) == name) {
			out = append(out, t)
		}
	}
	return out
}

// variant returns the constructor for the kind of handle that represents
// a declaration of the given kind, or nil if there is none.
//
// This is the only place that decides which handle type a declaration gets;
// [New], every collection, and [Find] go through it.
func variant(kind syntax.DeclarationKind) func(handle) Builder {
	switch kind {
	case syntax.DeclarationCompilationUnit:
		return newCompilationUnit
	case syntax.DeclarationNamespace:
		return newNamespace
	case syntax.DeclarationNamespaceImport:
		return newNamespaceImport
	case syntax.DeclarationClass, syntax.DeclarationStruct,
		syntax.DeclarationInterface, syntax.DeclarationEnum:
		return newType
	case syntax.DeclarationMethod, syntax.DeclarationOperator,
		syntax.DeclarationConversionOperator, syntax.DeclarationConstructor,
		syntax.DeclarationDestructor:
		return newMethod
	case syntax.DeclarationDelegate:
		return newDelegate
	case syntax.DeclarationField, syntax.DeclarationEnumMember, syntax.DeclarationEvent:
		return newField
	case syntax.DeclarationParameter:
		return newParameter
	case syntax.DeclarationProperty, syntax.DeclarationIndexer, syntax.DeclarationCustomEvent:
		return newProperty
	case syntax.DeclarationGetAccessor, syntax.DeclarationSetAccessor,
		syntax.DeclarationAddAccessor, syntax.DeclarationRemoveAccessor,
		syntax.DeclarationRaiseAccessor:
		return newAccessor
	case syntax.DeclarationAttribute:
		return newAttribute
	case syntax.DeclarationAttributeArgument:
		return newAttributeArgument
	case syntax.DeclarationNone, syntax.DeclarationVariable, syntax.DeclarationLambdaExpression:
		return nil
	default:
		return nil
	}
}

// newChild creates a handle for node, a tracked child of parent's node.
func newChild(parent Builder, node *syntax.Node) (Builder, error) {
	kind := parent.base().gen().DeclarationKind(node)
	newVariant := variant(kind)
	if newVariant == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedKind, kind)
	}
	return newVariant(handle{parent: parent, original: node}), nil
}

// New returns a handle for root, in a new Context. The language is looked up
// by root's language name; see [Register].
func New(root *syntax.Node) (Builder, error) {
	lang, ok := LookupLanguage(root.Language())
	if !ok {
		return nil, fmt.Errorf("builder: no language registered for %q", root.Language())
	}
	return NewWithLanguage(lang, root)
}

// NewWithLanguage is like [New], but uses the given language.
func NewWithLanguage(lang *Language, root *syntax.Node) (Builder, error) {
	kind := lang.Generator.DeclarationKind(root)
	newVariant := variant(kind)
	if newVariant == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedKind, kind)
	}
	return newVariant(handle{ctx: NewContext(lang, root), original: root}), nil
}

// Parse parses a file and returns a handle for it.
func Parse(lang *Language, filename, text string) (*CompilationUnit, error) {
	root, err := lang.Parser.ParseFile(filename, text, nil)
	if err != nil {
		return nil, err
	}
	b, err := NewWithLanguage(lang, root)
	if err != nil {
		return nil, err
	}
	cu, ok := b.(*CompilationUnit)
	if !ok {
		return nil, fmt.Errorf("%w: parsing %s produced %v", ErrUnsupportedKind, filename, b.Kind())
	}
	return cu, nil
}

// newRoot creates a detached handle around a node built by lang's
// generator.
func newRoot[T Builder](lang *Language, node *syntax.Node) T {
	b, err := NewWithLanguage(lang, node)
	if err != nil {
		panic(fmt.Sprintf("builder: %v", err))
	}
	return b.(T)
}
