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

	"github.com/bufbuild/syntaxedit/syntax"
)

// Method is a handle on a method, constructor, destructor, operator or
// conversion operator.
type Method struct {
	handle
	nameFacet
	accessibilityFacet
	modifierFacet
	typeFacet
	attributeFacet
	typeParameterFacet
	parameterFacet
	bodyFacet
}

func newMethod(h handle) Builder {
	b := &Method{handle: h}
	b.self = b
	b.nameFacet = nameFacet{&b.handle}
	b.accessibilityFacet = accessibilityFacet{&b.handle}
	b.modifierFacet = modifierFacet{&b.handle}
	b.typeFacet = typeFacet{&b.handle}
	b.attributeFacet = attributeFacet{h: &b.handle}
	b.typeParameterFacet = typeParameterFacet{h: &b.handle}
	b.parameterFacet = parameterFacet{h: &b.handle}
	b.bodyFacet = bodyFacet{h: &b.handle}
	return b
}

func (b *Method) children() []Builder {
	return append(b.Attributes().builders(), b.Parameters().builders()...)
}

// Delegate is a handle on a delegate declaration. It has the signature of a
// method, but no body.
type Delegate struct {
	handle
	nameFacet
	accessibilityFacet
	modifierFacet
	typeFacet
	attributeFacet
	typeParameterFacet
	parameterFacet
}

func newDelegate(h handle) Builder {
	b := &Delegate{handle: h}
	b.self = b
	b.nameFacet = nameFacet{&b.handle}
	b.accessibilityFacet = accessibilityFacet{&b.handle}
	b.modifierFacet = modifierFacet{&b.handle}
	b.typeFacet = typeFacet{&b.handle}
	b.attributeFacet = attributeFacet{h: &b.handle}
	b.typeParameterFacet = typeParameterFacet{h: &b.handle}
	b.parameterFacet = parameterFacet{h: &b.handle}
	return b
}

func (b *Delegate) children() []Builder {
	return append(b.Attributes().builders(), b.Parameters().builders()...)
}

// Field is a handle on a field, enum member or field-like event.
type Field struct {
	handle
	nameFacet
	accessibilityFacet
	modifierFacet
	typeFacet
	valueFacet
	attributeFacet
}

func newField(h handle) Builder {
	b := &Field{handle: h}
	b.self = b
	b.nameFacet = nameFacet{&b.handle}
	b.accessibilityFacet = accessibilityFacet{&b.handle}
	b.modifierFacet = modifierFacet{&b.handle}
	b.typeFacet = typeFacet{&b.handle}
	b.valueFacet = valueFacet{&b.handle}
	b.attributeFacet = attributeFacet{h: &b.handle}
	return b
}

func (b *Field) children() []Builder {
	return b.Attributes().builders()
}

// Parameter is a handle on a parameter of a method, delegate or indexer.
type Parameter struct {
	handle
	nameFacet
	modifierFacet
	typeFacet
	attributeFacet
}

func newParameter(h handle) Builder {
	b := &Parameter{handle: h}
	b.self = b
	b.nameFacet = nameFacet{&b.handle}
	b.modifierFacet = modifierFacet{&b.handle}
	b.typeFacet = typeFacet{&b.handle}
	b.attributeFacet = attributeFacet{h: &b.handle}
	return b
}

func (b *Parameter) children() []Builder {
	return b.Attributes().builders()
}

// Default returns the default value of the parameter, or nil.
func (b *Parameter) Default() *syntax.Node {
	return b.gen().Expression(b.CurrentNode())
}

// SetDefault sets the default value of the parameter. The zero Expression
// removes it.
func (b *Parameter) SetDefault(e Expression) error {
	return valueFacet{&b.handle}.SetValue(e)
}

// Property is a handle on a property, indexer or custom event.
type Property struct {
	handle
	nameFacet
	accessibilityFacet
	modifierFacet
	typeFacet
	valueFacet
	attributeFacet
	parameterFacet

	accessors *List[*Accessor]
}

func newProperty(h handle) Builder {
	b := &Property{handle: h}
	b.self = b
	b.nameFacet = nameFacet{&b.handle}
	b.accessibilityFacet = accessibilityFacet{&b.handle}
	b.modifierFacet = modifierFacet{&b.handle}
	b.typeFacet = typeFacet{&b.handle}
	b.valueFacet = valueFacet{&b.handle}
	b.attributeFacet = attributeFacet{h: &b.handle}
	b.parameterFacet = parameterFacet{h: &b.handle}
	return b
}

func (b *Property) children() []Builder {
	out := b.Attributes().builders()
	out = append(out, b.Parameters().builders()...)
	return append(out, b.Accessors().builders()...)
}

// Accessors returns the accessors of the property.
func (b *Property) Accessors() *List[*Accessor] {
	if b.accessors == nil {
		b.accessors = newList[*Accessor](b, accessorSlot)
	}
	return b.accessors
}

// AddAccessor adds an accessor with no body.
func (b *Property) AddAccessor(kind syntax.DeclarationKind) (*Accessor, error) {
	n := b.gen().Accessor(kind)
	if n == nil {
		return nil, fmt.Errorf("%w: %v is not an accessor", ErrUnsupportedKind, kind)
	}
	return b.Accessors().Add(n)
}

// Accessor is a handle on a get, set, add, remove or raise accessor.
type Accessor struct {
	handle
	accessibilityFacet
	attributeFacet
	bodyFacet
}

func newAccessor(h handle) Builder {
	b := &Accessor{handle: h}
	b.self = b
	b.accessibilityFacet = accessibilityFacet{&b.handle}
	b.attributeFacet = attributeFacet{h: &b.handle}
	b.bodyFacet = bodyFacet{h: &b.handle}
	return b
}

func (b *Accessor) children() []Builder {
	return b.Attributes().builders()
}

// Attribute is a handle on an attribute applied to a declaration.
type Attribute struct {
	handle
	nameFacet

	arguments *List[*AttributeArgument]
}

func newAttribute(h handle) Builder {
	b := &Attribute{handle: h}
	b.self = b
	b.nameFacet = nameFacet{&b.handle}
	return b
}

func (b *Attribute) children() []Builder {
	return b.Arguments().builders()
}

// Arguments returns the arguments of the attribute.
func (b *Attribute) Arguments() *List[*AttributeArgument] {
	if b.arguments == nil {
		b.arguments = newList[*AttributeArgument](b, argumentSlot)
	}
	return b.arguments
}

// AddArgument adds an argument. name may be empty, for a positional
// argument.
func (b *Attribute) AddArgument(name string, value Expression) (*AttributeArgument, error) {
	v, err := value.Node(b.Language())
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%w: attribute argument %q has no value", ErrUnsupportedKind, name)
	}
	return b.Arguments().Add(b.gen().AttributeArgument(name, v))
}

// AttributeArgument is a handle on one argument of an attribute.
type AttributeArgument struct {
	handle
	nameFacet
	valueFacet
}

func newAttributeArgument(h handle) Builder {
	b := &AttributeArgument{handle: h}
	b.self = b
	b.nameFacet = nameFacet{&b.handle}
	b.valueFacet = valueFacet{&b.handle}
	return b
}

func (*AttributeArgument) children() []Builder { return nil }
