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
	"slices"

	"github.com/bufbuild/syntaxedit/syntax"
)

// Name is the language name this package registers, and that every node it
// builds carries.
const Name = "csharp"

func node(kind syntax.Kind, children ...*syntax.Node) *syntax.Node {
	return syntax.New(Name, kind, children...)
}

func leaf(kind syntax.Kind, text string) *syntax.Node {
	return syntax.Token(Name, kind, text)
}

func ident(name string) *syntax.Node {
	return leaf(syntax.KindIdentifier, name)
}

func keyword(kw string) *syntax.Node {
	return leaf(syntax.KindKeyword, kw)
}

// as gives n a role. It is nil-safe, so that optional children can be passed
// straight to [node].
func as(role syntax.Role, n *syntax.Node) *syntax.Node {
	if n == nil {
		return nil
	}
	return n.WithRole(role)
}

// all gives every node in nodes a role.
func all(role syntax.Role, nodes []*syntax.Node) []*syntax.Node {
	out := make([]*syntax.Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n.WithRole(role))
		}
	}
	return out
}

// roleOrder is the order children appear in within any declaration. Not
// every declaration has every role.
var roleOrder = []syntax.Role{
	syntax.RoleAttribute,
	syntax.RoleModifier,
	syntax.RoleAlias,
	syntax.RoleType,
	syntax.RoleName,
	syntax.RoleTypeParameter,
	syntax.RoleParameter,
	syntax.RoleArgument,
	syntax.RoleBaseType,
	syntax.RoleConstraint,
	syntax.RoleAccessor,
	syntax.RoleMember,
	syntax.RoleStatement,
	syntax.RoleDeclarator,
	syntax.RoleBody,
	syntax.RoleExpressionBody,
	syntax.RoleValue,
	syntax.RoleEnd,
}

// setRole replaces the children of n with the given role.
func setRole(n *syntax.Node, role syntax.Role, children ...*syntax.Node) *syntax.Node {
	i := slices.Index(roleOrder, role)
	return n.WithRoleChildren(role, children, roleOrder[i+1:]...)
}

// appendRole adds children after the existing children of n with the given
// role.
func appendRole(n *syntax.Node, role syntax.Role, children ...*syntax.Node) *syntax.Node {
	return setRole(n, role, append(n.All(role), children...)...)
}

// concat concatenates groups of children.
func concat(groups ...[]*syntax.Node) []*syntax.Node {
	var out []*syntax.Node
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// keywords are the reserved words of C#. An identifier spelled like one is
// printed with a leading @.
var keywords = map[string]bool{
	"abstract": true, "as": true, "base": true, "bool": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "checked": true,
	"class": true, "const": true, "continue": true, "decimal": true,
	"default": true, "delegate": true, "do": true, "double": true, "else": true,
	"enum": true, "event": true, "explicit": true, "extern": true, "false": true,
	"finally": true, "fixed": true, "float": true, "for": true, "foreach": true,
	"goto": true, "if": true, "implicit": true, "in": true, "int": true,
	"interface": true, "internal": true, "is": true, "lock": true, "long": true,
	"namespace": true, "new": true, "null": true, "object": true,
	"operator": true, "out": true, "override": true, "params": true,
	"private": true, "protected": true, "public": true, "readonly": true,
	"ref": true, "return": true, "sbyte": true, "sealed": true, "short": true,
	"sizeof": true, "stackalloc": true, "static": true, "string": true,
	"struct": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "uint": true, "ulong": true, "unchecked": true,
	"unsafe": true, "ushort": true, "using": true, "virtual": true, "void": true,
	"volatile": true, "while": true,
}

// predefinedTypes maps the keyword spelling of each built-in type to the
// special type it names.
var predefinedTypes = map[string]syntax.SpecialType{
	"object":  syntax.SpecialTypeObject,
	"void":    syntax.SpecialTypeVoid,
	"bool":    syntax.SpecialTypeBoolean,
	"char":    syntax.SpecialTypeChar,
	"sbyte":   syntax.SpecialTypeSByte,
	"byte":    syntax.SpecialTypeByte,
	"short":   syntax.SpecialTypeInt16,
	"ushort":  syntax.SpecialTypeUInt16,
	"int":     syntax.SpecialTypeInt32,
	"uint":    syntax.SpecialTypeUInt32,
	"long":    syntax.SpecialTypeInt64,
	"ulong":   syntax.SpecialTypeUInt64,
	"decimal": syntax.SpecialTypeDecimal,
	"float":   syntax.SpecialTypeSingle,
	"double":  syntax.SpecialTypeDouble,
	"string":  syntax.SpecialTypeString,
}

// accessibilityKeywords are the modifiers that make up an accessibility.
var accessibilityKeywords = map[string]bool{
	"public": true, "private": true, "protected": true, "internal": true,
}

// modifierKeywords are the keywords the parser accepts as modifiers of a
// declaration. Those that are not accessibilities or [syntax.Modifiers] are
// kept, but not exposed as facets.
var modifierKeywords = map[string]bool{
	"public": true, "private": true, "protected": true, "internal": true,
	"abstract": true, "async": true, "const": true, "extern": true, "new": true,
	"override": true, "partial": true, "readonly": true, "sealed": true,
	"static": true, "unsafe": true, "virtual": true, "volatile": true,
	"required": true, "fixed": true, "file": true,
}

// parameterModifiers are the keywords that can precede a parameter's type.
var parameterModifiers = map[string]bool{
	"ref": true, "out": true, "in": true, "params": true, "this": true, "scoped": true,
}

// list is a convenience for passing individual nodes to [concat].
func list(nodes ...*syntax.Node) []*syntax.Node {
	return nodes
}
