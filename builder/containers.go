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

// CompilationUnit is a handle on a whole file.
type CompilationUnit struct {
	handle
	memberFacet
	namespaceFacet
	attributeFacet
}

func newCompilationUnit(h handle) Builder {
	b := &CompilationUnit{handle: h}
	b.self = b
	b.memberFacet = memberFacet{h: &b.handle}
	b.namespaceFacet = namespaceFacet{h: &b.handle}
	b.attributeFacet = attributeFacet{h: &b.handle}
	return b
}

func (b *CompilationUnit) children() []Builder {
	return append(b.Attributes().builders(), b.Members().builders()...)
}

// Namespace is a handle on a namespace declaration.
type Namespace struct {
	handle
	nameFacet
	memberFacet
	namespaceFacet
}

func newNamespace(h handle) Builder {
	b := &Namespace{handle: h}
	b.self = b
	b.nameFacet = nameFacet{&b.handle}
	b.memberFacet = memberFacet{h: &b.handle}
	b.namespaceFacet = namespaceFacet{h: &b.handle}
	return b
}

func (b *Namespace) children() []Builder {
	return b.Members().builders()
}

// NamespaceImport is a handle on a using directive.
type NamespaceImport struct {
	handle
	nameFacet
}

func newNamespaceImport(h handle) Builder {
	b := &NamespaceImport{handle: h}
	b.self = b
	b.nameFacet = nameFacet{&b.handle}
	return b
}

// Alias returns the alias this import introduces, or "".
func (b *NamespaceImport) Alias() string {
	return b.gen().Alias(b.CurrentNode())
}

// SetAlias sets the alias this import introduces. An empty alias removes
// it.
func (b *NamespaceImport) SetAlias(alias string) {
	b.update(func(g Generator, n *syntax.Node) *syntax.Node {
		return g.WithAlias(n, alias)
	})
}

func (*NamespaceImport) children() []Builder { return nil }

// Type is a handle on a class, struct, interface or enum.
type Type struct {
	handle
	nameFacet
	accessibilityFacet
	modifierFacet
	attributeFacet
	typeParameterFacet
	memberFacet
}

func newType(h handle) Builder {
	b := &Type{handle: h}
	b.self = b
	b.nameFacet = nameFacet{&b.handle}
	b.accessibilityFacet = accessibilityFacet{&b.handle}
	b.modifierFacet = modifierFacet{&b.handle}
	b.attributeFacet = attributeFacet{h: &b.handle}
	b.typeParameterFacet = typeParameterFacet{h: &b.handle}
	b.memberFacet = memberFacet{h: &b.handle}
	return b
}

func (b *Type) children() []Builder {
	return append(b.Attributes().builders(), b.Members().builders()...)
}

// Methods returns the methods, constructors, destructors and operators of
// this type.
func (b *Type) Methods() *List[*Method] {
	return newList[*Method](b, memberSlot)
}

// Fields returns the fields, enum members and field-like events of this
// type.
func (b *Type) Fields() *List[*Field] {
	return newList[*Field](b, memberSlot)
}

// Properties returns the properties, indexers and custom events of this type.
func (b *Type) Properties() *List[*Property] {
	return newList[*Property](b, memberSlot)
}

// AddMethod adds a method with an empty body. A zero return type is void.
func (b *Type) AddMethod(name string, returnType TypeExpression) (*Method, error) {
	typ, err := returnType.Node(b.Language())
	if err != nil {
		return nil, err
	}
	return b.Methods().Add(b.gen().Method(name, typ))
}

// AddField adds a field, with an optional initializer.
func (b *Type) AddField(name string, typ TypeExpression, value Expression) (*Field, error) {
	lang := b.Language()
	t, err := typ.Node(lang)
	if err != nil {
		return nil, err
	}
	v, err := value.Node(lang)
	if err != nil {
		return nil, err
	}
	return b.Fields().Add(lang.Generator.Field(name, t, v))
}

// AddProperty adds an automatically implemented property.
func (b *Type) AddProperty(name string, typ TypeExpression) (*Property, error) {
	t, err := typ.Node(b.Language())
	if err != nil {
		return nil, err
	}
	return b.Properties().Add(b.gen().Property(name, t))
}

// AddIndexer adds an indexer with a getter. Add its parameters with
// [Property.AddParameter].
func (b *Type) AddIndexer(typ TypeExpression) (*Property, error) {
	t, err := typ.Node(b.Language())
	if err != nil {
		return nil, err
	}
	return b.Properties().Add(b.gen().Indexer(t))
}

// AddEvent adds a field-like event.
func (b *Type) AddEvent(name string, typ TypeExpression) (*Field, error) {
	t, err := typ.Node(b.Language())
	if err != nil {
		return nil, err
	}
	return b.Fields().Add(b.gen().Event(name, t))
}

// AddCustomEvent adds an event with add and remove accessors.
func (b *Type) AddCustomEvent(name string, typ TypeExpression) (*Property, error) {
	t, err := typ.Node(b.Language())
	if err != nil {
		return nil, err
	}
	return b.Properties().Add(b.gen().CustomEvent(name, t))
}

// AddEnumMember adds a member to an enum, with an optional value.
func (b *Type) AddEnumMember(name string, value Expression) (*Field, error) {
	if kind := b.Kind(); kind != syntax.DeclarationEnum {
		return nil, fmt.Errorf("%w: cannot add an enum member to %v", ErrUnsupportedKind, kind)
	}
	v, err := value.Node(b.Language())
	if err != nil {
		return nil, err
	}
	return b.Fields().Add(b.gen().EnumMember(name, v))
}

// memberFacet is shared by every declaration that contains types.
type memberFacet struct {
	h       *handle
	members *List[Builder]
}

// Members returns every member declaration, in order.
func (f *memberFacet) Members() *List[Builder] {
	if f.members == nil {
		f.members = newList[Builder](f.h.self, memberSlot)
	}
	return f.members
}

// Types returns the member classes, structs, interfaces and enums.
func (f *memberFacet) Types() *List[*Type] {
	return newList[*Type](f.h.self, memberSlot)
}

// Delegates returns the member delegates.
func (f *memberFacet) Delegates() *List[*Delegate] {
	return newList[*Delegate](f.h.self, memberSlot)
}

// AddClass adds an empty class after the existing members.
func (f *memberFacet) AddClass(name string) *Type {
	return f.addType(syntax.DeclarationClass, name)
}

// AddStruct adds an empty struct after the existing members.
func (f *memberFacet) AddStruct(name string) *Type {
	return f.addType(syntax.DeclarationStruct, name)
}

// AddInterface adds an empty interface after the existing members.
func (f *memberFacet) AddInterface(name string) *Type {
	return f.addType(syntax.DeclarationInterface, name)
}

// AddEnum adds an enum with no members after the existing members.
func (f *memberFacet) AddEnum(name string) *Type {
	return f.addType(syntax.DeclarationEnum, name)
}

func (f *memberFacet) addType(kind syntax.DeclarationKind, name string) *Type {
	return mustAdd(f.Types(), f.h.gen().TypeDeclaration(kind, name))
}

// AddDelegate adds a delegate declaration. A zero return type is void.
func (f *memberFacet) AddDelegate(name string, returnType TypeExpression) (*Delegate, error) {
	typ, err := returnType.Node(f.h.Language())
	if err != nil {
		return nil, err
	}
	return f.Delegates().Add(f.h.gen().Delegate(name, typ))
}

// namespaceFacet is shared by compilation units and namespaces.
type namespaceFacet struct{ h *handle }

// Imports returns the using directives. They always come before any other
// member.
func (f namespaceFacet) Imports() *List[*NamespaceImport] {
	return newList[*NamespaceImport](f.h.self, memberSlot)
}

// Namespaces returns the nested namespaces.
func (f namespaceFacet) Namespaces() *List[*Namespace] {
	return newList[*Namespace](f.h.self, memberSlot)
}

// AddNamespace adds a nested namespace.
func (f namespaceFacet) AddNamespace(name string) *Namespace {
	return mustAdd(f.Namespaces(), f.h.gen().Namespace(name))
}

// AddNamespaceImport adds a using directive after the existing ones.
func (f namespaceFacet) AddNamespaceImport(name string) *NamespaceImport {
	return mustAdd(f.Imports(), f.h.gen().NamespaceImport(name))
}

// mustAdd adds a node the list is known to accept.
func mustAdd[T Builder](l *List[T], n *syntax.Node) T {
	b, err := l.Add(n)
	if err != nil {
		panic(fmt.Sprintf("builder: %v", err))
	}
	return b
}
