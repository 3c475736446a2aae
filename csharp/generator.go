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

package csharp

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/bufbuild/syntaxedit/builder"
	"github.com/bufbuild/syntaxedit/syntax"
)

// Generator reads and rewrites the facets of C# declarations, and builds new
// ones.
type Generator struct{}

var _ builder.Generator = Generator{}

var declarationKinds = map[syntax.Kind]syntax.DeclarationKind{
	syntax.KindCompilationUnit:     syntax.DeclarationCompilationUnit,
	syntax.KindUsingDirective:      syntax.DeclarationNamespaceImport,
	syntax.KindNamespace:           syntax.DeclarationNamespace,
	syntax.KindFileScopedNamespace: syntax.DeclarationNamespace,
	syntax.KindClass:               syntax.DeclarationClass,
	syntax.KindStruct:              syntax.DeclarationStruct,
	syntax.KindInterface:           syntax.DeclarationInterface,
	syntax.KindEnum:                syntax.DeclarationEnum,
	syntax.KindDelegate:            syntax.DeclarationDelegate,
	syntax.KindMethod:              syntax.DeclarationMethod,
	syntax.KindOperator:            syntax.DeclarationOperator,
	syntax.KindConversionOperator:  syntax.DeclarationConversionOperator,
	syntax.KindConstructor:         syntax.DeclarationConstructor,
	syntax.KindDestructor:          syntax.DeclarationDestructor,
	syntax.KindField:               syntax.DeclarationField,
	syntax.KindEventField:          syntax.DeclarationEvent,
	syntax.KindProperty:            syntax.DeclarationProperty,
	syntax.KindIndexer:             syntax.DeclarationIndexer,
	syntax.KindEvent:               syntax.DeclarationCustomEvent,
	syntax.KindEnumMember:          syntax.DeclarationEnumMember,
	syntax.KindParameter:           syntax.DeclarationParameter,
	syntax.KindAttribute:           syntax.DeclarationAttribute,
	syntax.KindAttributeArgument:   syntax.DeclarationAttributeArgument,
	syntax.KindLocalDeclaration:    syntax.DeclarationVariable,
}

var accessorKinds = map[string]syntax.DeclarationKind{
	"get":    syntax.DeclarationGetAccessor,
	"set":    syntax.DeclarationSetAccessor,
	"init":   syntax.DeclarationSetAccessor,
	"add":    syntax.DeclarationAddAccessor,
	"remove": syntax.DeclarationRemoveAccessor,
}

// DeclarationKind implements [builder.Generator].
func (Generator) DeclarationKind(n *syntax.Node) syntax.DeclarationKind {
	if n.Language() != Name {
		return syntax.DeclarationNone
	}
	if n.Kind() == syntax.KindAccessor {
		return accessorKinds[n.Text()]
	}
	return declarationKinds[n.Kind()]
}

// named are the kinds whose name is a single identifier in the Name role.
var named = map[syntax.Kind]bool{
	syntax.KindClass: true, syntax.KindStruct: true, syntax.KindInterface: true,
	syntax.KindEnum: true, syntax.KindDelegate: true, syntax.KindMethod: true,
	syntax.KindConstructor: true, syntax.KindDestructor: true,
	syntax.KindProperty: true, syntax.KindEvent: true, syntax.KindEnumMember: true,
	syntax.KindParameter: true,
}

// Name implements [builder.Generator].
func (g Generator) Name(n *syntax.Node) string {
	switch k := n.Kind(); {
	case named[k]:
		return n.First(syntax.RoleName).Text()
	case k == syntax.KindUsingDirective, k == syntax.KindNamespace,
		k == syntax.KindFileScopedNamespace, k == syntax.KindAttribute:
		return dotted(n.First(syntax.RoleName))
	case k == syntax.KindField, k == syntax.KindEventField:
		return n.First(syntax.RoleDeclarator).First(syntax.RoleName).Text()
	case k == syntax.KindAttributeArgument:
		return n.First(syntax.RoleName).Text()
	case k == syntax.KindOperator:
		return n.Text()
	case k == syntax.KindIndexer:
		return "this"
	case k == syntax.KindTypeParameter:
		return n.Text()
	default:
		return ""
	}
}

// WithName implements [builder.Generator].
func (g Generator) WithName(n *syntax.Node, name string) *syntax.Node {
	switch k := n.Kind(); {
	case named[k]:
		return setRole(n, syntax.RoleName, ident(name))
	case k == syntax.KindUsingDirective, k == syntax.KindNamespace,
		k == syntax.KindFileScopedNamespace, k == syntax.KindAttribute:
		return setRole(n, syntax.RoleName, g.DottedName(name))
	case k == syntax.KindField, k == syntax.KindEventField:
		decls := n.All(syntax.RoleDeclarator)
		decls[0] = setRole(decls[0], syntax.RoleName, ident(name))
		return setRole(n, syntax.RoleDeclarator, decls...)
	case k == syntax.KindAttributeArgument:
		if name == "" {
			return setRole(n, syntax.RoleName).WithText("")
		}
		sep := n.Text()
		if sep == "" {
			sep = "="
		}
		return setRole(n, syntax.RoleName, ident(name)).WithText(sep)
	case k == syntax.KindTypeParameter:
		return n.WithText(name)
	default:
		return n
	}
}

// dotted spells out a possibly qualified name.
func dotted(n *syntax.Node) string {
	switch n.Kind() {
	case syntax.KindQualifiedName:
		sep := "."
		if n.Text() == "::" {
			sep = "::"
		}
		return dotted(n.First(syntax.RoleLeft)) + sep + dotted(n.First(syntax.RoleRight))
	case syntax.KindGenericName:
		args := n.All(syntax.RoleTypeArgument)
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = dotted(a)
		}
		return n.Text() + "<" + strings.Join(parts, ", ") + ">"
	case syntax.KindIdentifierName, syntax.KindIdentifier, syntax.KindPredefinedType:
		return n.Text()
	default:
		return (&printer{}).expr(n)
	}
}

// Alias implements [builder.Generator].
func (Generator) Alias(n *syntax.Node) string {
	if n.Kind() != syntax.KindUsingDirective {
		return ""
	}
	return n.First(syntax.RoleAlias).Text()
}

// WithAlias implements [builder.Generator].
func (Generator) WithAlias(n *syntax.Node, alias string) *syntax.Node {
	if n.Kind() != syntax.KindUsingDirective {
		return n
	}
	if alias == "" {
		return setRole(n, syntax.RoleAlias)
	}
	return setRole(n, syntax.RoleAlias, ident(alias))
}

// hasModifiers are the kinds that can carry modifier keywords.
func hasModifiers(k syntax.Kind) bool {
	switch k {
	case syntax.KindCompilationUnit, syntax.KindNamespace, syntax.KindFileScopedNamespace,
		syntax.KindUsingDirective, syntax.KindEnumMember, syntax.KindParameter,
		syntax.KindAttribute, syntax.KindAttributeArgument:
		return false
	default:
		return k.IsDeclaration() || k == syntax.KindLocalDeclaration
	}
}

// Accessibility implements [builder.Generator].
func (Generator) Accessibility(n *syntax.Node) syntax.Accessibility {
	var public, private, protected, internal bool
	for _, m := range n.All(syntax.RoleModifier) {
		switch m.Text() {
		case "public":
			public = true
		case "private":
			private = true
		case "protected":
			protected = true
		case "internal":
			internal = true
		}
	}
	switch {
	case public:
		return syntax.AccessibilityPublic
	case private && protected:
		return syntax.AccessibilityProtectedAndInternal
	case protected && internal:
		return syntax.AccessibilityProtectedOrInternal
	case private:
		return syntax.AccessibilityPrivate
	case protected:
		return syntax.AccessibilityProtected
	case internal:
		return syntax.AccessibilityInternal
	default:
		return syntax.AccessibilityNotApplicable
	}
}

var accessibilitySpelling = map[syntax.Accessibility][]string{
	syntax.AccessibilityPrivate:              {"private"},
	syntax.AccessibilityProtectedAndInternal: {"private", "protected"},
	syntax.AccessibilityProtected:            {"protected"},
	syntax.AccessibilityInternal:             {"internal"},
	syntax.AccessibilityProtectedOrInternal:  {"protected", "internal"},
	syntax.AccessibilityPublic:               {"public"},
}

// WithAccessibility replaces the accessibility keywords of n, which always
// come first among its modifiers.
func (Generator) WithAccessibility(n *syntax.Node, a syntax.Accessibility) *syntax.Node {
	if !hasModifiers(n.Kind()) {
		return n
	}
	var mods []*syntax.Node
	for _, kw := range accessibilitySpelling[a] {
		mods = append(mods, keyword(kw))
	}
	for _, m := range n.All(syntax.RoleModifier) {
		if !accessibilityKeywords[m.Text()] {
			mods = append(mods, m)
		}
	}
	return setRole(n, syntax.RoleModifier, mods...)
}

// Modifiers implements [builder.Generator].
func (Generator) Modifiers(n *syntax.Node) syntax.Modifiers {
	var out syntax.Modifiers
	for _, m := range n.All(syntax.RoleModifier) {
		if flag, ok := syntax.ModifierByName(m.Text()); ok {
			out = out.With(flag)
		}
	}
	return out
}

// WithModifiers replaces the modifiers of n that [syntax.Modifiers] can
// express. Accessibility keywords stay first; keywords outside the set, such
// as required, are kept after them.
func (Generator) WithModifiers(n *syntax.Node, m syntax.Modifiers) *syntax.Node {
	if !hasModifiers(n.Kind()) {
		return n
	}
	var access, other []*syntax.Node
	for _, mod := range n.All(syntax.RoleModifier) {
		_, known := syntax.ModifierByName(mod.Text())
		switch {
		case accessibilityKeywords[mod.Text()]:
			access = append(access, mod)
		case !known:
			other = append(other, mod)
		}
	}
	mods := access
	for _, name := range m.Names() {
		mods = append(mods, keyword(name))
	}
	return setRole(n, syntax.RoleModifier, append(mods, other...)...)
}

// Type implements [builder.Generator].
func (Generator) Type(n *syntax.Node) *syntax.Node {
	return n.First(syntax.RoleType)
}

// WithType implements [builder.Generator].
func (g Generator) WithType(n *syntax.Node, t *syntax.Node) *syntax.Node {
	switch n.Kind() {
	case syntax.KindMethod, syntax.KindDelegate, syntax.KindOperator:
		if t == nil {
			t = g.SpecialType(syntax.SpecialTypeVoid)
		}
	case syntax.KindField, syntax.KindEventField, syntax.KindProperty, syntax.KindIndexer,
		syntax.KindEvent, syntax.KindParameter, syntax.KindConversionOperator,
		syntax.KindLocalDeclaration:
		if t == nil {
			return n
		}
	default:
		return n
	}
	return setRole(n, syntax.RoleType, t)
}

// functionLike are the kinds that can have a block or expression body.
var functionLike = map[syntax.Kind]bool{
	syntax.KindMethod: true, syntax.KindConstructor: true, syntax.KindDestructor: true,
	syntax.KindOperator: true, syntax.KindConversionOperator: true, syntax.KindAccessor: true,
}

// Expression implements [builder.Generator].
func (Generator) Expression(n *syntax.Node) *syntax.Node {
	switch k := n.Kind(); {
	case k == syntax.KindField, k == syntax.KindEventField, k == syntax.KindLocalDeclaration:
		return n.First(syntax.RoleDeclarator).First(syntax.RoleValue)
	case k == syntax.KindEnumMember, k == syntax.KindParameter, k == syntax.KindAttributeArgument:
		return n.First(syntax.RoleValue)
	case k == syntax.KindProperty:
		if e := n.First(syntax.RoleExpressionBody); e != nil {
			return e
		}
		return n.First(syntax.RoleValue)
	case functionLike[k], k == syntax.KindIndexer:
		return n.First(syntax.RoleExpressionBody)
	default:
		return nil
	}
}

// WithExpression sets the value of n. For a property with accessors, this
// is its initializer; for anything with a body, it replaces the body.
func (g Generator) WithExpression(n *syntax.Node, e *syntax.Node) *syntax.Node {
	switch k := n.Kind(); {
	case k == syntax.KindField, k == syntax.KindEventField, k == syntax.KindLocalDeclaration:
		decls := n.All(syntax.RoleDeclarator)
		decls[0] = setRole(decls[0], syntax.RoleValue, e)
		return setRole(n, syntax.RoleDeclarator, decls...)

	case k == syntax.KindEnumMember, k == syntax.KindParameter:
		return setRole(n, syntax.RoleValue, e)

	case k == syntax.KindAttributeArgument:
		if e == nil {
			return n
		}
		return setRole(n, syntax.RoleValue, e)

	case k == syntax.KindProperty:
		if n.First(syntax.RoleExpressionBody) == nil {
			return setRole(n, syntax.RoleValue, e)
		}
		if e == nil {
			n = setRole(n, syntax.RoleExpressionBody)
			return setRole(n, syntax.RoleAccessor, g.Accessor(syntax.DeclarationGetAccessor))
		}
		return setRole(n, syntax.RoleExpressionBody, e)

	case k == syntax.KindIndexer:
		if e == nil {
			if n.First(syntax.RoleExpressionBody) == nil {
				return n
			}
			n = setRole(n, syntax.RoleExpressionBody)
			return setRole(n, syntax.RoleAccessor, g.Accessor(syntax.DeclarationGetAccessor))
		}
		n = setRole(n, syntax.RoleAccessor)
		return setRole(n, syntax.RoleExpressionBody, e)

	case functionLike[k]:
		if e == nil {
			if n.First(syntax.RoleExpressionBody) == nil {
				return n
			}
			n = setRole(n, syntax.RoleExpressionBody)
			return setRole(n, syntax.RoleBody, node(syntax.KindBlock))
		}
		n = setRole(n, syntax.RoleBody)
		return setRole(n, syntax.RoleExpressionBody, e)

	default:
		return n
	}
}

// Statements implements [builder.Generator].
func (Generator) Statements(n *syntax.Node) []*syntax.Node {
	switch {
	case functionLike[n.Kind()]:
		return n.First(syntax.RoleBody).All(syntax.RoleStatement)
	case n.Kind() == syntax.KindBlock:
		return n.All(syntax.RoleStatement)
	default:
		return nil
	}
}

// WithStatements replaces the statements in the body of n. An expression
// body is replaced with a block.
func (Generator) WithStatements(n *syntax.Node, statements []*syntax.Node) *syntax.Node {
	switch {
	case functionLike[n.Kind()]:
		body := n.First(syntax.RoleBody)
		if body == nil {
			body = node(syntax.KindBlock)
		}
		n = setRole(n, syntax.RoleExpressionBody)
		return setRole(n, syntax.RoleBody, setRole(body, syntax.RoleStatement, statements...))
	case n.Kind() == syntax.KindBlock:
		return setRole(n, syntax.RoleStatement, statements...)
	default:
		return n
	}
}

// containers are the kinds whose members are declarations.
var containers = map[syntax.Kind]bool{
	syntax.KindCompilationUnit: true, syntax.KindNamespace: true,
	syntax.KindFileScopedNamespace: true, syntax.KindClass: true,
	syntax.KindStruct: true, syntax.KindInterface: true, syntax.KindEnum: true,
}

// Members implements [builder.Generator].
func (Generator) Members(n *syntax.Node) []*syntax.Node {
	if !containers[n.Kind()] {
		return nil
	}
	return n.All(syntax.RoleMember)
}

// AddMembers appends members to n. Using directives go after the existing
// using directives, before any other member, as C# requires.
func (Generator) AddMembers(n *syntax.Node, members ...*syntax.Node) *syntax.Node {
	if !containers[n.Kind()] {
		return n
	}
	existing := n.All(syntax.RoleMember)
	usings := 0
	for usings < len(existing) && existing[usings].Kind() == syntax.KindUsingDirective {
		usings++
	}
	out := slices.Clone(existing)
	for _, m := range members {
		if m.Kind() == syntax.KindUsingDirective {
			out = slices.Insert(out, usings, m)
			usings++
		} else {
			out = append(out, m)
		}
	}
	return setRole(n, syntax.RoleMember, out...)
}

// hasParameters are the kinds with a parameter list.
var hasParameters = map[syntax.Kind]bool{
	syntax.KindDelegate: true, syntax.KindMethod: true, syntax.KindConstructor: true,
	syntax.KindOperator: true, syntax.KindConversionOperator: true, syntax.KindIndexer: true,
}

// Parameters implements [builder.Generator].
func (Generator) Parameters(n *syntax.Node) []*syntax.Node {
	return n.All(syntax.RoleParameter)
}

// AddParameters implements [builder.Generator].
func (Generator) AddParameters(n *syntax.Node, params ...*syntax.Node) *syntax.Node {
	if !hasParameters[n.Kind()] {
		return n
	}
	return appendRole(n, syntax.RoleParameter, params...)
}

// Accessors implements [builder.Generator].
func (Generator) Accessors(n *syntax.Node) []*syntax.Node {
	return n.All(syntax.RoleAccessor)
}

// AddAccessors appends accessors to a property, indexer or event. An
// expression body is removed.
func (Generator) AddAccessors(n *syntax.Node, accessors ...*syntax.Node) *syntax.Node {
	switch n.Kind() {
	case syntax.KindProperty, syntax.KindIndexer, syntax.KindEvent:
		n = setRole(n, syntax.RoleExpressionBody)
		return appendRole(n, syntax.RoleAccessor, accessors...)
	default:
		return n
	}
}

// Attributes implements [builder.Generator].
func (Generator) Attributes(n *syntax.Node) []*syntax.Node {
	return n.All(syntax.RoleAttribute)
}

// AddAttributes implements [builder.Generator].
func (Generator) AddAttributes(n *syntax.Node, attributes ...*syntax.Node) *syntax.Node {
	switch k := n.Kind(); {
	case k == syntax.KindCompilationUnit, k == syntax.KindNamespace,
		k == syntax.KindFileScopedNamespace, k == syntax.KindUsingDirective,
		k == syntax.KindAttribute, k == syntax.KindAttributeArgument,
		!k.IsDeclaration() && k != syntax.KindEnumMember:
		return n
	}
	return appendRole(n, syntax.RoleAttribute, attributes...)
}

// AttributeArguments implements [builder.Generator].
func (Generator) AttributeArguments(n *syntax.Node) []*syntax.Node {
	if n.Kind() != syntax.KindAttribute {
		return nil
	}
	return n.All(syntax.RoleArgument)
}

// AddAttributeArguments implements [builder.Generator].
func (Generator) AddAttributeArguments(n *syntax.Node, args ...*syntax.Node) *syntax.Node {
	if n.Kind() != syntax.KindAttribute {
		return n
	}
	return appendRole(n, syntax.RoleArgument, args...)
}

// genericKinds are the kinds that can declare type parameters.
var genericKinds = map[syntax.Kind]bool{
	syntax.KindClass: true, syntax.KindStruct: true, syntax.KindInterface: true,
	syntax.KindDelegate: true, syntax.KindMethod: true,
}

// WithTypeParameters implements [builder.Generator].
func (Generator) WithTypeParameters(n *syntax.Node, names ...string) *syntax.Node {
	if !genericKinds[n.Kind()] {
		return n
	}
	existing := make(map[string]*syntax.Node)
	for _, tp := range n.All(syntax.RoleTypeParameter) {
		existing[tp.Text()] = tp
	}
	tps := make([]*syntax.Node, len(names))
	for i, name := range names {
		if tp, ok := existing[name]; ok {
			tps[i] = tp
		} else {
			tps[i] = node(syntax.KindTypeParameter).WithText(name)
		}
	}

	var clauses []*syntax.Node
	for _, c := range n.All(syntax.RoleConstraint) {
		if slices.Contains(names, c.First(syntax.RoleName).Text()) {
			clauses = append(clauses, c)
		}
	}
	n = setRole(n, syntax.RoleTypeParameter, tps...)
	return setRole(n, syntax.RoleConstraint, clauses...)
}

// WithTypeConstraint writes the where clause for one type parameter. The
// class or struct constraint comes first and new() last, as C# requires.
func (Generator) WithTypeConstraint(n *syntax.Node, name string, special syntax.SpecialConstraint, types ...*syntax.Node) *syntax.Node {
	if !genericKinds[n.Kind()] {
		return n
	}

	var constraints []*syntax.Node
	switch {
	case special.Has(syntax.ConstraintReferenceType):
		constraints = append(constraints, node(syntax.KindClassConstraint))
	case special.Has(syntax.ConstraintValueType):
		constraints = append(constraints, node(syntax.KindStructConstraint))
	}
	for _, t := range types {
		constraints = append(constraints, node(syntax.KindTypeConstraint, as(syntax.RoleType, t)))
	}
	if special.Has(syntax.ConstraintConstructor) {
		constraints = append(constraints, node(syntax.KindConstructorConstraint))
	}

	var clause *syntax.Node
	if len(constraints) > 0 {
		clause = node(syntax.KindConstraintClause, concat(
			list(as(syntax.RoleName, leaf(syntax.KindIdentifierName, name))),
			all(syntax.RoleConstraint, constraints),
		)...)
	}

	clauses := n.All(syntax.RoleConstraint)
	i := slices.IndexFunc(clauses, func(c *syntax.Node) bool {
		return c.First(syntax.RoleName).Text() == name
	})
	switch {
	case i >= 0 && clause == nil:
		clauses = slices.Delete(clauses, i, i+1)
	case i >= 0:
		clauses[i] = clause
	case clause != nil:
		clauses = append(clauses, clause)
	}
	return setRole(n, syntax.RoleConstraint, clauses...)
}

// RemoveNode implements [builder.Generator].
func (Generator) RemoveNode(root, n *syntax.Node) *syntax.Node {
	out, ok := syntax.Remove(root, n)
	if !ok {
		panic(fmt.Sprintf("csharp: cannot remove %v: not a descendant of %v", n, root))
	}
	return out
}

// InsertNodesAfter implements [builder.Generator].
func (Generator) InsertNodesAfter(root, existing *syntax.Node, nodes ...*syntax.Node) *syntax.Node {
	out, ok := syntax.InsertAfter(root, existing, nodes...)
	if !ok {
		panic(fmt.Sprintf("csharp: cannot insert after %v: not a descendant of %v", existing, root))
	}
	return out
}

// InsertNodesBefore implements [builder.Generator].
func (Generator) InsertNodesBefore(root, existing *syntax.Node, nodes ...*syntax.Node) *syntax.Node {
	out, ok := syntax.InsertBefore(root, existing, nodes...)
	if !ok {
		panic(fmt.Sprintf("csharp: cannot insert before %v: not a descendant of %v", existing, root))
	}
	return out
}

// ReplaceNode implements [builder.Generator].
func (Generator) ReplaceNode(root, old, replacement *syntax.Node) *syntax.Node {
	out, ok := syntax.Replace(root, old, replacement)
	if !ok {
		panic(fmt.Sprintf("csharp: cannot replace %v: not in %v", old, root))
	}
	return out
}

// ClearTrivia implements [builder.Generator].
func (Generator) ClearTrivia(n *syntax.Node) *syntax.Node {
	return syntax.ClearTrivia(n)
}

// CompilationUnit implements [builder.Generator].
func (Generator) CompilationUnit(members ...*syntax.Node) *syntax.Node {
	return node(syntax.KindCompilationUnit, all(syntax.RoleMember, members)...)
}

// NamespaceImport implements [builder.Generator].
func (g Generator) NamespaceImport(name string) *syntax.Node {
	return node(syntax.KindUsingDirective, as(syntax.RoleName, g.DottedName(name)))
}

// Namespace implements [builder.Generator].
func (g Generator) Namespace(name string, members ...*syntax.Node) *syntax.Node {
	return node(syntax.KindNamespace, concat(
		list(as(syntax.RoleName, g.DottedName(name))),
		all(syntax.RoleMember, members),
	)...)
}

var typeDeclarationKinds = map[syntax.DeclarationKind]syntax.Kind{
	syntax.DeclarationClass:     syntax.KindClass,
	syntax.DeclarationStruct:    syntax.KindStruct,
	syntax.DeclarationInterface: syntax.KindInterface,
	syntax.DeclarationEnum:      syntax.KindEnum,
}

// TypeDeclaration implements [builder.Generator].
func (Generator) TypeDeclaration(kind syntax.DeclarationKind, name string) *syntax.Node {
	k, ok := typeDeclarationKinds[kind]
	if !ok {
		panic(fmt.Sprintf("csharp: %v is not a type declaration", kind))
	}
	return node(k, as(syntax.RoleName, ident(name)))
}

// EnumMember implements [builder.Generator].
func (Generator) EnumMember(name string, value *syntax.Node) *syntax.Node {
	return node(syntax.KindEnumMember, as(syntax.RoleName, ident(name)), as(syntax.RoleValue, value))
}

// Delegate implements [builder.Generator].
func (g Generator) Delegate(name string, returnType *syntax.Node) *syntax.Node {
	if returnType == nil {
		returnType = g.SpecialType(syntax.SpecialTypeVoid)
	}
	return node(syntax.KindDelegate, as(syntax.RoleType, returnType), as(syntax.RoleName, ident(name)))
}

// Method implements [builder.Generator].
func (g Generator) Method(name string, returnType *syntax.Node) *syntax.Node {
	if returnType == nil {
		returnType = g.SpecialType(syntax.SpecialTypeVoid)
	}
	return node(syntax.KindMethod,
		as(syntax.RoleType, returnType),
		as(syntax.RoleName, ident(name)),
		as(syntax.RoleBody, node(syntax.KindBlock)),
	)
}

// Field implements [builder.Generator].
func (Generator) Field(name string, typ, initializer *syntax.Node) *syntax.Node {
	decl := node(syntax.KindVariableDeclarator, as(syntax.RoleName, ident(name)), as(syntax.RoleValue, initializer))
	return node(syntax.KindField, as(syntax.RoleType, typ), as(syntax.RoleDeclarator, decl))
}

// Property implements [builder.Generator].
func (g Generator) Property(name string, typ *syntax.Node) *syntax.Node {
	return node(syntax.KindProperty,
		as(syntax.RoleType, typ),
		as(syntax.RoleName, ident(name)),
		as(syntax.RoleAccessor, g.Accessor(syntax.DeclarationGetAccessor)),
		as(syntax.RoleAccessor, g.Accessor(syntax.DeclarationSetAccessor)),
	)
}

// Indexer implements [builder.Generator].
func (g Generator) Indexer(typ *syntax.Node, params ...*syntax.Node) *syntax.Node {
	return node(syntax.KindIndexer, concat(
		list(as(syntax.RoleType, typ)),
		all(syntax.RoleParameter, params),
		list(
			as(syntax.RoleAccessor, g.Accessor(syntax.DeclarationGetAccessor)),
			as(syntax.RoleAccessor, g.Accessor(syntax.DeclarationSetAccessor)),
		),
	)...)
}

// Event implements [builder.Generator].
func (Generator) Event(name string, typ *syntax.Node) *syntax.Node {
	decl := node(syntax.KindVariableDeclarator, as(syntax.RoleName, ident(name)))
	return node(syntax.KindEventField, as(syntax.RoleType, typ), as(syntax.RoleDeclarator, decl))
}

// CustomEvent builds an event with empty add and remove accessors.
func (g Generator) CustomEvent(name string, typ *syntax.Node) *syntax.Node {
	add := setRole(g.Accessor(syntax.DeclarationAddAccessor), syntax.RoleBody, node(syntax.KindBlock))
	remove := setRole(g.Accessor(syntax.DeclarationRemoveAccessor), syntax.RoleBody, node(syntax.KindBlock))
	return node(syntax.KindEvent,
		as(syntax.RoleType, typ),
		as(syntax.RoleName, ident(name)),
		as(syntax.RoleAccessor, add),
		as(syntax.RoleAccessor, remove),
	)
}

var accessorKeywordsByKind = map[syntax.DeclarationKind]string{
	syntax.DeclarationGetAccessor:    "get",
	syntax.DeclarationSetAccessor:    "set",
	syntax.DeclarationAddAccessor:    "add",
	syntax.DeclarationRemoveAccessor: "remove",
}

// Accessor implements [builder.Generator].
func (Generator) Accessor(kind syntax.DeclarationKind) *syntax.Node {
	kw, ok := accessorKeywordsByKind[kind]
	if !ok {
		return nil
	}
	return node(syntax.KindAccessor).WithText(kw)
}

// Parameter implements [builder.Generator].
func (Generator) Parameter(name string, typ, defaultValue *syntax.Node) *syntax.Node {
	return node(syntax.KindParameter,
		as(syntax.RoleType, typ),
		as(syntax.RoleName, ident(name)),
		as(syntax.RoleValue, defaultValue),
	)
}

// Attribute implements [builder.Generator].
func (g Generator) Attribute(name string, args ...*syntax.Node) *syntax.Node {
	return node(syntax.KindAttribute, concat(
		list(as(syntax.RoleName, g.DottedName(name))),
		all(syntax.RoleArgument, args),
	)...)
}

// AttributeArgument implements [builder.Generator].
func (Generator) AttributeArgument(name string, value *syntax.Node) *syntax.Node {
	if name == "" {
		return node(syntax.KindAttributeArgument, as(syntax.RoleValue, value))
	}
	return node(syntax.KindAttributeArgument,
		as(syntax.RoleName, ident(name)),
		as(syntax.RoleValue, value),
	).WithText("=")
}

// Literal builds a literal for a Go value. Integer and floating-point types
// map to the C# type of the same size, with the matching suffix: int64 is
// long (L), uint32 and uint are uint (U), uint64 is ulong (UL), float32 is
// float (F) and float64 is double (D). int is int, with no suffix.
//
// rune is an alias of int32, so it is an integer here; use
// [Generator.CharLiteral] for characters.
func (g Generator) Literal(value any) *syntax.Node {
	var text string
	switch v := value.(type) {
	case nil:
		return g.NullLiteral()
	case bool:
		text = strconv.FormatBool(v)
	case string:
		text = quote(v, '"')
	case int:
		text = strconv.Itoa(v)
	case int8:
		text = strconv.FormatInt(int64(v), 10)
	case int16:
		text = strconv.FormatInt(int64(v), 10)
	case int32:
		text = strconv.FormatInt(int64(v), 10)
	case int64:
		text = strconv.FormatInt(v, 10) + "L"
	case uint8:
		text = strconv.FormatUint(uint64(v), 10)
	case uint16:
		text = strconv.FormatUint(uint64(v), 10)
	case uint32:
		text = strconv.FormatUint(uint64(v), 10) + "U"
	case uint:
		text = strconv.FormatUint(uint64(v), 10) + "U"
	case uint64:
		text = strconv.FormatUint(v, 10) + "UL"
	case float32:
		return floatLiteral(float64(v), 32, "float", "F")
	case float64:
		return floatLiteral(v, 64, "double", "D")
	default:
		panic(fmt.Sprintf("csharp: cannot build a literal out of %T", value))
	}
	return leaf(syntax.KindLiteral, text)
}

// floatLiteral builds a floating-point literal, or a reference to one of the
// special values of typ.
func floatLiteral(v float64, bits int, typ, suffix string) *syntax.Node {
	var special string
	switch {
	case math.IsNaN(v):
		special = "NaN"
	case math.IsInf(v, 1):
		special = "PositiveInfinity"
	case math.IsInf(v, -1):
		special = "NegativeInfinity"
	default:
		return leaf(syntax.KindLiteral, strconv.FormatFloat(v, 'G', -1, bits)+suffix)
	}
	return node(syntax.KindMemberAccess,
		as(syntax.RoleLeft, leaf(syntax.KindPredefinedType, typ)),
		as(syntax.RoleRight, leaf(syntax.KindIdentifierName, special)),
	).WithText(".")
}

// DecimalLiteral builds a decimal literal. text is the number as written,
// without the M suffix, so that trailing zeros are kept.
func (Generator) DecimalLiteral(text string) *syntax.Node {
	return leaf(syntax.KindLiteral, text+"M")
}

// CharLiteral implements [builder.Generator].
func (Generator) CharLiteral(value rune) *syntax.Node {
	return leaf(syntax.KindLiteral, quote(string(value), '\''))
}

// NullLiteral implements [builder.Generator].
func (Generator) NullLiteral() *syntax.Node {
	return leaf(syntax.KindLiteral, "null")
}

// quote spells s as a C# string or character literal.
func quote(s string, delim byte) string {
	var b strings.Builder
	b.WriteByte(delim)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			switch {
			case r == rune(delim):
				b.WriteByte('\\')
				b.WriteRune(r)
			case r < 0x20 || r == 0x7f:
				fmt.Fprintf(&b, `\u%04X`, r)
			default:
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte(delim)
	return b.String()
}

// IdentifierName implements [builder.Generator].
func (Generator) IdentifierName(name string) *syntax.Node {
	return leaf(syntax.KindIdentifierName, name)
}

// QualifiedName implements [builder.Generator].
func (Generator) QualifiedName(left, right *syntax.Node) *syntax.Node {
	return node(syntax.KindQualifiedName, as(syntax.RoleLeft, left), as(syntax.RoleRight, right))
}

// DottedName implements [builder.Generator].
func (g Generator) DottedName(name string) *syntax.Node {
	parts := strings.Split(name, ".")
	n := g.IdentifierName(parts[0])
	for _, part := range parts[1:] {
		n = g.QualifiedName(n, g.IdentifierName(part))
	}
	return n
}

// GenericName implements [builder.Generator].
func (Generator) GenericName(name string, args ...*syntax.Node) *syntax.Node {
	if len(args) == 0 {
		return leaf(syntax.KindIdentifierName, name)
	}
	return node(syntax.KindGenericName, all(syntax.RoleTypeArgument, args)...).WithText(name)
}

// ArrayType implements [builder.Generator].
func (Generator) ArrayType(element *syntax.Node) *syntax.Node {
	return node(syntax.KindArrayType, as(syntax.RoleElement, element)).WithText("[]")
}

// NullableType implements [builder.Generator].
func (Generator) NullableType(element *syntax.Node) *syntax.Node {
	return node(syntax.KindNullableType, as(syntax.RoleElement, element))
}

// SpecialType implements [builder.Generator].
func (Generator) SpecialType(t syntax.SpecialType) *syntax.Node {
	for kw, st := range predefinedTypes {
		if st == t {
			return leaf(syntax.KindPredefinedType, kw)
		}
	}
	panic(fmt.Sprintf("csharp: no keyword for %v", t))
}

// ReturnStatement implements [builder.Generator].
func (Generator) ReturnStatement(value *syntax.Node) *syntax.Node {
	return node(syntax.KindReturn, as(syntax.RoleValue, value))
}

// ExpressionStatement implements [builder.Generator].
func (Generator) ExpressionStatement(value *syntax.Node) *syntax.Node {
	return node(syntax.KindExpressionStatement, as(syntax.RoleValue, value))
}
