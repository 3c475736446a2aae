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
	"github.com/bufbuild/syntaxedit/syntax"
)

// Facets are the pieces of behavior shared between handle kinds. Each handle
// type embeds the facets its declarations have; every facet holds a pointer
// back to the handle it is part of.

type nameFacet struct{ h *handle }

// Name returns the name of the declaration.
func (f nameFacet) Name() string {
	return f.h.gen().Name(f.h.CurrentNode())
}

// SetName renames the declaration. References to it elsewhere in the tree are
// not updated.
func (f nameFacet) SetName(name string) {
	f.h.update(func(g Generator, n *syntax.Node) *syntax.Node {
		return g.WithName(n, name)
	})
}

type accessibilityFacet struct{ h *handle }

// Accessibility returns the declared accessibility.
func (f accessibilityFacet) Accessibility() syntax.Accessibility {
	return f.h.gen().Accessibility(f.h.CurrentNode())
}

// SetAccessibility replaces the accessibility modifiers.
func (f accessibilityFacet) SetAccessibility(a syntax.Accessibility) {
	f.h.update(func(g Generator, n *syntax.Node) *syntax.Node {
		return g.WithAccessibility(n, a)
	})
}

type modifierFacet struct{ h *handle }

// Modifiers returns the modifiers other than accessibility.
func (f modifierFacet) Modifiers() syntax.Modifiers {
	return f.h.gen().Modifiers(f.h.CurrentNode())
}

// SetModifiers replaces the modifiers other than accessibility.
func (f modifierFacet) SetModifiers(m syntax.Modifiers) {
	f.h.update(func(g Generator, n *syntax.Node) *syntax.Node {
		return g.WithModifiers(n, m)
	})
}

// AddModifiers adds to the declaration's modifiers, keeping the ones it
// already has.
func (f modifierFacet) AddModifiers(m syntax.Modifiers) {
	f.SetModifiers(f.Modifiers().With(m))
}

// RemoveModifiers removes some of the declaration's modifiers.
func (f modifierFacet) RemoveModifiers(m syntax.Modifiers) {
	f.SetModifiers(f.Modifiers().Without(m))
}

type typeFacet struct{ h *handle }

// Type returns the declared type; for method-like declarations, the return
// type. Returns nil if there is none.
func (f typeFacet) Type() *syntax.Node {
	return f.h.gen().Type(f.h.CurrentNode())
}

// SetType sets the declared type. For method-like declarations, the zero
// TypeExpression is void.
func (f typeFacet) SetType(t TypeExpression) error {
	typ, err := t.Node(f.h.Context().lang)
	if err != nil {
		return err
	}
	f.h.update(func(g Generator, n *syntax.Node) *syntax.Node {
		return g.WithType(n, typ)
	})
	return nil
}

type valueFacet struct{ h *handle }

// Value returns the value of the declaration: the initializer of a field or
// property, the value of an enum member or attribute argument, or the default
// value of a parameter. Returns nil if there is none.
func (f valueFacet) Value() *syntax.Node {
	return f.h.gen().Expression(f.h.CurrentNode())
}

// SetValue sets the value of the declaration. The zero Expression removes
// it.
func (f valueFacet) SetValue(e Expression) error {
	value, err := e.Node(f.h.Context().lang)
	if err != nil {
		return err
	}
	f.h.update(func(g Generator, n *syntax.Node) *syntax.Node {
		return g.WithExpression(n, value)
	})
	return nil
}

type bodyFacet struct {
	h          *handle
	statements *StatementList
}

// Statements returns the statements in the body.
func (f *bodyFacet) Statements() *StatementList {
	if f.statements == nil {
		f.statements = &StatementList{owner: f.h}
	}
	return f.statements
}

// ExpressionBody returns the expression body, if the declaration has one
// instead of a block.
func (f *bodyFacet) ExpressionBody() *syntax.Node {
	return f.h.gen().Expression(f.h.CurrentNode())
}

// SetExpressionBody replaces the body with an expression body. The zero
// Expression replaces an expression body with an empty block.
func (f *bodyFacet) SetExpressionBody(e Expression) error {
	body, err := e.Node(f.h.Context().lang)
	if err != nil {
		return err
	}
	f.h.update(func(g Generator, n *syntax.Node) *syntax.Node {
		return g.WithExpression(n, body)
	})
	return nil
}

type parameterFacet struct {
	h    *handle
	list *List[*Parameter]
}

// Parameters returns the declaration's parameters.
func (f *parameterFacet) Parameters() *List[*Parameter] {
	if f.list == nil {
		f.list = newList[*Parameter](f.h.self, parameterSlot)
	}
	return f.list
}

// AddParameter adds a parameter at the end of the parameter list.
func (f *parameterFacet) AddParameter(name string, typ TypeExpression) (*Parameter, error) {
	lang := f.h.Context().lang
	t, err := typ.Node(lang)
	if err != nil {
		return nil, err
	}
	return f.Parameters().Add(lang.Generator.Parameter(name, t, nil))
}

type attributeFacet struct {
	h    *handle
	list *List[*Attribute]
}

// Attributes returns the attributes applied to the declaration.
func (f *attributeFacet) Attributes() *List[*Attribute] {
	if f.list == nil {
		f.list = newList[*Attribute](f.h.self, attributeSlot)
	}
	return f.list
}

// AddAttribute applies a new attribute to the declaration.
func (f *attributeFacet) AddAttribute(name string, args ...Expression) (*Attribute, error) {
	lang := f.h.Context().lang
	nodes := make([]*syntax.Node, 0, len(args))
	for _, arg := range args {
		value, err := arg.Node(lang)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, lang.Generator.AttributeArgument("", value))
	}
	return f.Attributes().Add(lang.Generator.Attribute(name, nodes...))
}

type typeParameterFacet struct {
	h    *handle
	list *TypeParameterList
}

// TypeParameters returns the declaration's type parameters.
func (f *typeParameterFacet) TypeParameters() *TypeParameterList {
	if f.list == nil {
		f.list = &TypeParameterList{owner: f.h}
	}
	return f.list
}
