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

	"golang.org/x/exp/constraints"

	"github.com/bufbuild/syntaxedit/syntax"
)

// Scalar is the set of Go types that can be written as literals.
type Scalar interface {
	~bool | ~string | constraints.Integer | constraints.Float
}

// Expression is a value that can be written into an expression position:
// an existing node, a Go literal, or source text parsed on demand.
//
// Expressions are immutable. They are turned into nodes only when written,
// by the language of the tree they are written into. The zero Expression
// means "no expression", and writing it removes what was there.
type Expression struct {
	kind  expressionKind
	node  *syntax.Node
	value any
	text  string
}

type expressionKind byte

const (
	expressionNone expressionKind = iota
	expressionNode
	expressionLiteral
	expressionDecimal
	expressionChar
	expressionNull
	expressionIdentifier
	expressionText
)

// ExpressionOf wraps an existing node. A nil node is the zero Expression.
func ExpressionOf(n *syntax.Node) Expression {
	if n == nil {
		return Expression{}
	}
	return Expression{kind: expressionNode, node: n}
}

// Literal is a literal for a Go value. Named types are written as their
// underlying type.
func Literal[T Scalar](v T) Expression {
	return Expression{kind: expressionLiteral, value: underlying(reflect.ValueOf(v))}
}

// Integer is like [Literal], restricted to integers.
func Integer[T constraints.Integer](v T) Expression {
	return Literal(v)
}

// Decimal is a literal of the language's decimal type. text is the number
// as it should be written, such as "1.50".
func Decimal(text string) Expression {
	return Expression{kind: expressionDecimal, text: text}
}

// Char is a character literal.
func Char(r rune) Expression {
	return Expression{kind: expressionChar, value: r}
}

// Null is the null literal.
func Null() Expression {
	return Expression{kind: expressionNull}
}

// Identifier is a reference to a name.
func Identifier(name string) Expression {
	return Expression{kind: expressionIdentifier, text: name}
}

// ParseExpression is an expression written as source text. It is parsed when
// it is written, and writing it fails if it does not parse.
func ParseExpression(text string) Expression {
	return Expression{kind: expressionText, text: text}
}

// IsZero returns whether this is the zero Expression.
func (e Expression) IsZero() bool {
	return e.kind == expressionNone
}

// String implements [fmt.Stringer].
func (e Expression) String() string {
	switch e.kind {
	case expressionNone:
		return "<none>"
	case expressionNode:
		return fmt.Sprintf("%v", e.node)
	case expressionLiteral:
		return fmt.Sprintf("%#v", e.value)
	case expressionChar:
		return fmt.Sprintf("%q", e.value)
	case expressionNull:
		return "null"
	default:
		return e.text
	}
}

// Node builds the node for this expression in the given language. Returns
// nil for the zero Expression.
func (e Expression) Node(lang *Language) (*syntax.Node, error) {
	g := lang.Generator
	switch e.kind {
	case expressionNone:
		return nil, nil
	case expressionNode:
		return syntax.ClearTracking(e.node), nil
	case expressionLiteral:
		return g.Literal(e.value), nil
	case expressionDecimal:
		return g.DecimalLiteral(e.text), nil
	case expressionChar:
		return g.CharLiteral(e.value.(rune)), nil
	case expressionNull:
		return g.NullLiteral(), nil
	case expressionIdentifier:
		return g.IdentifierName(e.text), nil
	case expressionText:
		n, err := lang.Parser.ParseExpression(e.text)
		if err != nil {
			return nil, fmt.Errorf("builder: parsing expression %q: %w", e.text, err)
		}
		return n, nil
	default:
		panic(fmt.Sprintf("builder: unknown expression kind %d", e.kind))
	}
}

// underlying converts a value of a named scalar type into its predeclared
// type, so that backends only have to handle those.
func underlying(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.String:
		return v.String()
	case reflect.Int:
		return int(v.Int())
	case reflect.Int8:
		return int8(v.Int())
	case reflect.Int16:
		return int16(v.Int())
	case reflect.Int32:
		return int32(v.Int())
	case reflect.Int64:
		return v.Int()
	case reflect.Uint:
		return uint(v.Uint())
	case reflect.Uint8:
		return uint8(v.Uint())
	case reflect.Uint16:
		return uint16(v.Uint())
	case reflect.Uint32:
		return uint32(v.Uint())
	case reflect.Uint64, reflect.Uintptr:
		return v.Uint()
	case reflect.Float32:
		return float32(v.Float())
	case reflect.Float64:
		return v.Float()
	default:
		panic(fmt.Sprintf("builder: %v is not a scalar", v.Type()))
	}
}
