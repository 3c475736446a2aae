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
	"reflect"

	"github.com/bufbuild/syntaxedit/syntax"
)

// TypeExpression is a value that can be written into a type position: an
// existing node, one of the special types, a name, a Go type, or a type
// built out of other TypeExpressions.
//
// Like [Expression], a TypeExpression is immutable and only becomes a node
// when written. The zero TypeExpression means "no type"; for a method, that
// is void.
type TypeExpression struct {
	kind    typeKind
	node    *syntax.Node
	special syntax.SpecialType
	name    string
	goType  reflect.Type
	args    []TypeExpression
}

type typeKind byte

const (
	typeNone typeKind = iota
	typeNode
	typeSpecial
	typeNamed
	typeReflected
	typeArray
	typeNullable
)

// TypeNode wraps an existing type node. A nil node is the zero
// TypeExpression.
func TypeNode(n *syntax.Node) TypeExpression {
	if n == nil {
		return TypeExpression{}
	}
	return TypeExpression{kind: typeNode, node: n}
}

// Special is one of the types every language knows how to spell.
func Special(t syntax.SpecialType) TypeExpression {
	return TypeExpression{kind: typeSpecial, special: t}
}

// Named is a type referred to by a possibly dotted name, with optional type
// arguments.
func Named(name string, args ...TypeExpression) TypeExpression {
	return TypeExpression{kind: typeNamed, name: name, args: args}
}

// ArrayOf is an array of element.
func ArrayOf(element TypeExpression) TypeExpression {
	return TypeExpression{kind: typeArray, args: []TypeExpression{element}}
}

// NullableOf is a nullable element.
func NullableOf(element TypeExpression) TypeExpression {
	return TypeExpression{kind: typeNullable, args: []TypeExpression{element}}
}

// TypeOf is the closest equivalent of a Go type:
//
//   - predeclared types map to the special type of the same size, and any to
//     object;
//   - slices and arrays map to arrays;
//   - maps map to Dictionary<K, V>;
//   - pointers to structs map to the struct, and other pointers to nullables;
//   - other named types map to their name.
//
// Writing a TypeOf for anything else, such as a channel, fails with
// [ErrUnsupportedKind].
func TypeOf(t reflect.Type) TypeExpression {
	return TypeExpression{kind: typeReflected, goType: t}
}

// TypeFor is [TypeOf] for a type parameter.
func TypeFor[T any]() TypeExpression {
	return TypeOf(reflect.TypeFor[T]())
}

// IsZero returns whether this is the zero TypeExpression.
func (t TypeExpression) IsZero() bool {
	return t.kind == typeNone
}

// Node builds the node for this type in the given language. Returns nil for
// the zero TypeExpression.
func (t TypeExpression) Node(lang *Language) (*syntax.Node, error) {
	g := lang.Generator
	switch t.kind {
	case typeNone:
		return nil, nil
	case typeNode:
		return syntax.ClearTracking(t.node), nil
	case typeSpecial:
		return g.SpecialType(t.special), nil
	case typeNamed:
		if len(t.args) == 0 {
			return g.DottedName(t.name), nil
		}
		args, err := typeNodes(lang, t.args)
		if err != nil {
			return nil, err
		}
		return g.GenericName(t.name, args...), nil
	case typeArray, typeNullable:
		elem, err := t.args[0].Node(lang)
		if err != nil {
			return nil, err
		}
		if elem == nil {
			return nil, fmt.Errorf("%w: element type is missing", ErrUnsupportedKind)
		}
		if t.kind == typeArray {
			return g.ArrayType(elem), nil
		}
		return g.NullableType(elem), nil
	case typeReflected:
		rt, err := reflected(t.goType)
		if err != nil {
			return nil, err
		}
		return rt.Node(lang)
	default:
		panic(fmt.Sprintf("builder: unknown type kind %d", t.kind))
	}
}

func typeNodes(lang *Language, types []TypeExpression) ([]*syntax.Node, error) {
	out := make([]*syntax.Node, 0, len(types))
	for _, t := range types {
		n, err := t.Node(lang)
		if err != nil {
			return nil, err
		}
		if n == nil {
			return nil, fmt.Errorf("%w: type argument is missing", ErrUnsupportedKind)
		}
		out = append(out, n)
	}
	return out, nil
}

var specialTypes = map[reflect.Kind]syntax.SpecialType{
	reflect.Bool:    syntax.SpecialTypeBoolean,
	reflect.Int:     syntax.SpecialTypeInt32,
	reflect.Int8:    syntax.SpecialTypeSByte,
	reflect.Int16:   syntax.SpecialTypeInt16,
	reflect.Int32:   syntax.SpecialTypeInt32,
	reflect.Int64:   syntax.SpecialTypeInt64,
	reflect.Uint:    syntax.SpecialTypeUInt32,
	reflect.Uint8:   syntax.SpecialTypeByte,
	reflect.Uint16:  syntax.SpecialTypeUInt16,
	reflect.Uint32:  syntax.SpecialTypeUInt32,
	reflect.Uint64:  syntax.SpecialTypeUInt64,
	reflect.Float32: syntax.SpecialTypeSingle,
	reflect.Float64: syntax.SpecialTypeDouble,
	reflect.String:  syntax.SpecialTypeString,
}

// reflected converts a Go type into the equivalent TypeExpression.
func reflected(t reflect.Type) (TypeExpression, error) {
	if t == nil {
		return Special(syntax.SpecialTypeObject), nil
	}
	// Named types other than the predeclared ones keep their name.
	if t.PkgPath() != "" && t.Kind() != reflect.Interface {
		return Named(t.Name()), nil
	}
	if special, ok := specialTypes[t.Kind()]; ok {
		return Special(special), nil
	}

	switch t.Kind() {
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return Special(syntax.SpecialTypeObject), nil
		}
		if t.Name() != "" {
			return Named(t.Name()), nil
		}
	case reflect.Slice, reflect.Array:
		elem, err := reflected(t.Elem())
		if err != nil {
			return TypeExpression{}, err
		}
		return ArrayOf(elem), nil
	case reflect.Map:
		key, err := reflected(t.Key())
		if err != nil {
			return TypeExpression{}, err
		}
		value, err := reflected(t.Elem())
		if err != nil {
			return TypeExpression{}, err
		}
		return Named("Dictionary", key, value), nil
	case reflect.Pointer:
		elem, err := reflected(t.Elem())
		if err != nil {
			return TypeExpression{}, err
		}
		if t.Elem().Kind() == reflect.Struct {
			return elem, nil
		}
		return NullableOf(elem), nil
	}
	return TypeExpression{}, fmt.Errorf("%w: no equivalent of Go type %v", ErrUnsupportedKind, t)
}
