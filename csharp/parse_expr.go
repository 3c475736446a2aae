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

import "github.com/bufbuild/syntaxedit/syntax"

func (p *parser) expr() *syntax.Node {
	if p.atIdent() && p.atN(1, "=>") {
		p.errorf("%w: lambdas", ErrUnsupported)
	}
	left := p.conditional()
	if p.at("=>") {
		p.errorf("%w: lambdas", ErrUnsupported)
	}
	op, n := p.assignmentOperator()
	if op == "" {
		return left
	}
	for range n {
		p.next()
	}
	right := p.expr()
	return node(syntax.KindAssignment, as(syntax.RoleLeft, left), as(syntax.RoleRight, right)).WithText(op)
}

var assignmentOperators = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true, "<<=": true, "??=": true,
}

// assignmentOperator returns the assignment operator at the cursor and how
// many tokens it is made of.
func (p *parser) assignmentOperator() (string, int) {
	t := p.peek()
	if t.kind != tokenPunct {
		return "", 0
	}
	if t.is(">") {
		if next := p.peekN(1); next.is(">=") && next.pos.Offset == t.end() {
			return ">>=", 2
		}
		return "", 0
	}
	if assignmentOperators[t.text] {
		return t.text, 1
	}
	return "", 0
}

func (p *parser) conditional() *syntax.Node {
	cond := p.binary(0)
	if !p.at("?") {
		return cond
	}
	p.next()
	then := p.expr()
	p.expect(":")
	els := p.expr()
	return node(syntax.KindConditional,
		as(syntax.RoleCondition, cond), as(syntax.RoleThen, then), as(syntax.RoleElse, els))
}

// binaryLevels lists the binary operators from loosest to tightest binding.
var binaryLevels = [][]string{
	{"??"},
	{"||"},
	{"&&"},
	{"|"},
	{"^"},
	{"&"},
	{"==", "!="},
	{"<", ">", "<=", ">=", "is", "as"},
	{"<<", ">>"},
	{"+", "-"},
	{"*", "/", "%"},
}

func (p *parser) binary(level int) *syntax.Node {
	if level == len(binaryLevels) {
		return p.unary()
	}
	left := p.binary(level + 1)
	for {
		op, n := p.binaryOperator(level)
		if op == "" {
			return left
		}
		for range n {
			p.next()
		}

		var right *syntax.Node
		switch op {
		case "is", "as":
			if p.at("not") && op == "is" {
				p.next()
				op = "is not"
			}
			if p.at("null") || p.peek().kind == tokenNumber || p.peek().kind == tokenString {
				right = p.unary()
			} else {
				right = p.typ()
			}
		case "??":
			right = p.binary(level)
		default:
			right = p.binary(level + 1)
		}
		left = node(syntax.KindBinary, as(syntax.RoleLeft, left), as(syntax.RoleRight, right)).WithText(op)
	}
}

func (p *parser) binaryOperator(level int) (string, int) {
	t := p.peek()
	if p.shiftRight() {
		if level == 8 {
			return ">>", 2
		}
		return "", 0
	}
	if t.is(">") && p.peekN(1).is(">=") && p.peekN(1).pos.Offset == t.end() {
		return "", 0 // >>=
	}
	if t.kind != tokenPunct && (t.kind != tokenIdent || t.verbatim) {
		return "", 0
	}
	for _, op := range binaryLevels[level] {
		if t.text == op {
			return op, 1
		}
	}
	return "", 0
}

// shiftRight returns whether the cursor is at two adjacent > tokens.
func (p *parser) shiftRight() bool {
	t, next := p.peek(), p.peekN(1)
	return t.is(">") && next.is(">") && next.pos.Offset == t.end()
}

var prefixOperators = map[string]bool{
	"!": true, "-": true, "+": true, "~": true, "++": true, "--": true,
}

func (p *parser) unary() *syntax.Node {
	t := p.peek()
	switch {
	case t.kind == tokenPunct && prefixOperators[t.text],
		p.at("await") && p.peekN(1).kind != tokenPunct:
		op := p.next().text
		return node(syntax.KindUnary, as(syntax.RoleOperand, p.unary())).WithText(op)
	case p.at("(") && p.atCast():
		p.next()
		typ := as(syntax.RoleType, p.typ())
		p.expect(")")
		return node(syntax.KindCast, typ, as(syntax.RoleOperand, p.unary()))
	}
	return p.postfix(p.primary())
}

// atCast returns whether the cursor is at a parenthesized type that is
// followed by something that can be cast.
func (p *parser) atCast() bool {
	j, ok := p.scanType(p.i + 1)
	if !ok || !p.tokenAt(j).is(")") {
		return false
	}
	next := p.tokenAt(j + 1)
	_, predefined := predefinedTypes[p.tokenAt(p.i+1).text]
	switch {
	case next.kind == tokenNumber, next.kind == tokenString, next.kind == tokenChar:
		return true
	case next.kind == tokenIdent:
		return next.verbatim || !keywords[next.text] || castableKeywords[next.text]
	case next.is("("):
		return true
	case predefined && j == p.i+2:
		return next.is("-") || next.is("+") || next.is("!") || next.is("~")
	}
	return false
}

var castableKeywords = map[string]bool{
	"this": true, "base": true, "new": true, "typeof": true, "default": true,
	"true": true, "false": true, "null": true,
}

func (p *parser) primary() *syntax.Node {
	t := p.peek()
	switch {
	case t.kind == tokenNumber, t.kind == tokenString, t.kind == tokenChar,
		p.at("true"), p.at("false"), p.at("null"):
		return leaf(syntax.KindLiteral, p.next().text)

	case p.at("this"), p.at("base"):
		return keyword(p.next().text)

	case p.eat("("):
		e := p.expr()
		p.expect(")")
		return node(syntax.KindParenthesized, as(syntax.RoleOperand, e))

	case p.eat("new"):
		typ := as(syntax.RoleType, p.typeName())
		if !p.at("(") {
			p.errorf("%w: object and array initializers", ErrUnsupported)
		}
		args := p.arguments("(", ")")
		return node(syntax.KindObjectCreation, concat(list(typ), all(syntax.RoleArgument, args))...)

	case p.eat("typeof"):
		p.expect("(")
		typ := as(syntax.RoleType, p.typ())
		p.expect(")")
		return node(syntax.KindTypeOf, typ)

	case p.eat("default"):
		if !p.eat("(") {
			return node(syntax.KindDefault)
		}
		typ := as(syntax.RoleType, p.typ())
		p.expect(")")
		return node(syntax.KindDefault, typ)

	case t.kind == tokenIdent && !t.verbatim && predefinedTypes[t.text] != syntax.SpecialTypeNone:
		return leaf(syntax.KindPredefinedType, p.next().text)

	case p.atIdent():
		return p.simpleName(true)
	}

	p.errorf("expected expression, found %s", p.describe())
	return nil
}

func (p *parser) postfix(e *syntax.Node) *syntax.Node {
	for {
		switch {
		case p.at("."), p.at("?."):
			op := p.next().text
			right := as(syntax.RoleRight, p.simpleName(true))
			e = node(syntax.KindMemberAccess, as(syntax.RoleLeft, e), right).WithText(op)

		case p.at("("):
			args := p.arguments("(", ")")
			e = node(syntax.KindInvocation, concat(list(as(syntax.RoleCallee, e)), all(syntax.RoleArgument, args))...)

		case p.at("["):
			args := p.arguments("[", "]")
			e = node(syntax.KindElementAccess, concat(list(as(syntax.RoleCallee, e)), all(syntax.RoleArgument, args))...)

		case p.at("++"), p.at("--"):
			e = node(syntax.KindPostfixUnary, as(syntax.RoleOperand, e)).WithText(p.next().text)

		case p.at("!") && (p.atN(1, ".") || p.atN(1, ")") || p.atN(1, ";") || p.atN(1, ",")):
			e = node(syntax.KindPostfixUnary, as(syntax.RoleOperand, e)).WithText(p.next().text)

		default:
			return e
		}
	}
}

// argumentModifiers are the keywords that can precede an argument. They are
// kept as prefix operators.
var argumentModifiers = map[string]bool{"ref": true, "out": true, "in": true}

func (p *parser) arguments(open, close string) []*syntax.Node {
	p.expect(open)
	var out []*syntax.Node
	for !p.at(close) {
		if p.atIdent() && p.atN(1, ":") {
			p.errorf("%w: named arguments", ErrUnsupported)
		}
		var arg *syntax.Node
		if t := p.peek(); t.kind == tokenIdent && argumentModifiers[t.text] && !t.verbatim {
			op := p.next().text
			arg = node(syntax.KindUnary, as(syntax.RoleOperand, p.expr())).WithText(op)
		} else {
			arg = p.expr()
		}
		out = append(out, arg)
		if !p.eat(",") {
			break
		}
	}
	p.expect(close)
	return out
}

// typ parses a type.
func (p *parser) typ() *syntax.Node {
	t := p.typeName()
	for {
		switch {
		case p.at("?"):
			p.next()
			t = node(syntax.KindNullableType, as(syntax.RoleElement, t))
		case p.at("[") && (p.atN(1, "]") || p.atN(1, ",")):
			p.next()
			rank := "["
			for p.eat(",") {
				rank += ","
			}
			p.expect("]")
			t = node(syntax.KindArrayType, as(syntax.RoleElement, t)).WithText(rank + "]")
		default:
			return t
		}
	}
}

// typeName parses a possibly qualified, possibly generic name, or a
// predefined type.
func (p *parser) typeName() *syntax.Node {
	if t := p.peek(); t.kind == tokenIdent && !t.verbatim && predefinedTypes[t.text] != syntax.SpecialTypeNone {
		return leaf(syntax.KindPredefinedType, p.next().text)
	}
	n := p.simpleName(false)
	for p.at(".") || p.at("::") {
		sep := p.next().text
		right := p.simpleName(false)
		n = node(syntax.KindQualifiedName, as(syntax.RoleLeft, n), as(syntax.RoleRight, right))
		if sep == "::" {
			n = n.WithText(sep)
		}
	}
	return n
}

// simpleName parses an identifier with optional type arguments. In an
// expression, a < only starts type arguments if what follows it looks like
// them.
func (p *parser) simpleName(inExpr bool) *syntax.Node {
	name := p.name().text
	if !p.at("<") || (inExpr && !p.atTypeArguments()) {
		return leaf(syntax.KindIdentifierName, name)
	}
	p.next()
	var args []*syntax.Node
	for {
		args = append(args, p.typ())
		if !p.eat(",") {
			break
		}
	}
	p.expect(">")
	return node(syntax.KindGenericName, all(syntax.RoleTypeArgument, args)...).WithText(name)
}

// typeArgumentFollowers are the tokens that can follow type arguments in an
// expression.
var typeArgumentFollowers = []string{
	"(", ")", "]", "}", ":", ";", ",", ".", "?", "==", "!=", "|", "^", "?.",
}

func (p *parser) atTypeArguments() bool {
	j, ok := p.scanTypeArguments(p.i)
	if !ok {
		return false
	}
	next := p.tokenAt(j)
	if next.kind == tokenEOF {
		return true
	}
	for _, f := range typeArgumentFollowers {
		if next.is(f) {
			return true
		}
	}
	return false
}

func (p *parser) tokenAt(j int) *token {
	if j >= len(p.tokens) {
		return &p.tokens[len(p.tokens)-1]
	}
	return &p.tokens[j]
}

// scanType returns the index of the first token after a type that starts at
// token j, without consuming anything.
func (p *parser) scanType(j int) (int, bool) {
	j, ok := p.scanTypeName(j)
	if !ok {
		return j, false
	}
	for {
		switch t := p.tokenAt(j); {
		case t.is("?"):
			j++
		case t.is("["):
			k := j + 1
			for p.tokenAt(k).is(",") {
				k++
			}
			if !p.tokenAt(k).is("]") {
				return j, true
			}
			j = k + 1
		default:
			return j, true
		}
	}
}

func (p *parser) scanTypeName(j int) (int, bool) {
	t := p.tokenAt(j)
	if t.kind != tokenIdent {
		return j, false
	}
	if !t.verbatim && keywords[t.text] {
		if predefinedTypes[t.text] == syntax.SpecialTypeNone {
			return j, false
		}
		return j + 1, true
	}
	j++
	for {
		if p.tokenAt(j).is("<") {
			var ok bool
			if j, ok = p.scanTypeArguments(j); !ok {
				return j, false
			}
		}
		if !p.tokenAt(j).is(".") && !p.tokenAt(j).is("::") {
			return j, true
		}
		if p.tokenAt(j+1).kind != tokenIdent {
			return j, false
		}
		j += 2
	}
}

func (p *parser) scanTypeArguments(j int) (int, bool) {
	j++ // Skip the <.
	for {
		var ok bool
		if j, ok = p.scanType(j); !ok {
			return j, false
		}
		switch t := p.tokenAt(j); {
		case t.is(","):
			j++
		case t.is(">"):
			return j + 1, true
		default:
			return j, false
		}
	}
}
