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

func (p *parser) compilationUnit() *syntax.Node {
	var members []*syntax.Node
	for !p.atEOF() {
		if m := p.recover(p.namespaceMember); m != nil {
			members = append(members, m)
		}
	}
	return node(syntax.KindCompilationUnit, concat(all(syntax.RoleMember, members), list(p.end()))...)
}

// namespaceMember parses anything that can appear directly in a file or a
// namespace.
func (p *parser) namespaceMember() *syntax.Node {
	lead := p.leading()
	switch {
	case p.at("using"), p.at("global") && p.atN(1, "using"):
		return p.finish(p.usingDirective(), lead)
	case p.at("namespace"):
		return p.namespace(lead)
	case p.at("extern") && p.atN(1, "alias"):
		p.errorf("%w: extern aliases", ErrUnsupported)
	}
	return p.member(lead)
}

func (p *parser) usingDirective() *syntax.Node {
	var mods []*syntax.Node
	if p.at("global") {
		mods = append(mods, keyword(p.next().text))
	}
	p.expect("using")
	if p.at("static") {
		mods = append(mods, keyword(p.next().text))
	}
	var alias *syntax.Node
	if p.atIdent() && p.atN(1, "=") {
		alias = ident(p.next().text)
		p.next()
	}
	name := p.typ()
	p.expect(";")
	return node(syntax.KindUsingDirective, concat(
		all(syntax.RoleModifier, mods),
		list(as(syntax.RoleAlias, alias), as(syntax.RoleName, name)),
	)...)
}

func (p *parser) namespace(lead []syntax.Trivia) *syntax.Node {
	p.expect("namespace")
	name := as(syntax.RoleName, p.typeName())

	if p.eat(";") {
		// A file-scoped namespace holds the rest of the file.
		n := p.finish(node(syntax.KindFileScopedNamespace, name), lead)
		var members []*syntax.Node
		for !p.atEOF() {
			if m := p.recover(p.namespaceMember); m != nil {
				members = append(members, m)
			}
		}
		return setRole(n, syntax.RoleMember, members...)
	}

	p.expect("{")
	var members []*syntax.Node
	for !p.at("}") && !p.atEOF() {
		if m := p.recover(p.namespaceMember); m != nil {
			members = append(members, m)
		}
	}
	end := p.end()
	p.expect("}")
	p.eat(";")
	n := node(syntax.KindNamespace, concat(list(name), all(syntax.RoleMember, members), list(end))...)
	return p.finish(n, lead)
}

// member parses a member of a type or namespace.
func (p *parser) member(lead []syntax.Trivia) *syntax.Node {
	attrs := p.attributes()
	mods := p.modifiers()

	var n *syntax.Node
	switch {
	case p.at("class"), p.at("struct"), p.at("interface"):
		n = p.typeDeclaration(attrs, mods)
	case p.at("enum"):
		n = p.enumDeclaration(attrs, mods)
	case p.at("delegate"):
		n = p.delegateDeclaration(attrs, mods)
	case p.at("event"):
		n = p.eventDeclaration(attrs, mods)
	case p.at("~"):
		n = p.destructor(attrs, mods)
	case p.at("implicit"), p.at("explicit"):
		n = p.conversionOperator(attrs, mods)
	case p.atIdent() && p.atN(1, "("):
		n = p.constructor(attrs, mods)
	default:
		typ := p.typ()
		switch {
		case p.at("operator"):
			n = p.operator(attrs, mods, typ)
		case p.at("this"):
			n = p.indexer(attrs, mods, typ)
		case p.atIdent() && (p.atN(1, "(") || p.atN(1, "<")):
			n = p.method(attrs, mods, typ)
		case p.atIdent() && (p.atN(1, "{") || p.atN(1, "=>")):
			n = p.property(attrs, mods, typ)
		case p.atIdent():
			n = p.field(attrs, mods, typ)
		default:
			p.errorf("expected member name, found %s", p.describe())
		}
	}
	return p.finish(n, lead)
}

func (p *parser) attributes() []*syntax.Node {
	var out []*syntax.Node
	for p.at("[") {
		p.next()
		var target string
		if p.peek().kind == tokenIdent && p.atN(1, ":") {
			target = p.next().text
			p.next()
		}
		for {
			attr := p.attribute()
			if target != "" {
				attr = attr.WithText(target)
			}
			out = append(out, attr)
			if !p.eat(",") || p.at("]") {
				break
			}
		}
		p.expect("]")
	}
	return all(syntax.RoleAttribute, out)
}

func (p *parser) attribute() *syntax.Node {
	name := as(syntax.RoleName, p.typeName())
	var args []*syntax.Node
	if p.eat("(") {
		for !p.at(")") {
			args = append(args, p.attributeArgument())
			if !p.eat(",") {
				break
			}
		}
		p.expect(")")
	}
	return node(syntax.KindAttribute, concat(list(name), all(syntax.RoleArgument, args))...)
}

func (p *parser) attributeArgument() *syntax.Node {
	var name *syntax.Node
	var sep string
	if p.atIdent() && (p.atN(1, "=") || p.atN(1, ":")) {
		name = as(syntax.RoleName, ident(p.next().text))
		sep = p.next().text
	}
	value := as(syntax.RoleValue, p.expr())
	return node(syntax.KindAttributeArgument, name, value).WithText(sep)
}

// contextualModifiers are modifiers that are also valid identifiers. They are
// only modifiers if something that could continue a declaration follows.
var contextualModifiers = map[string]bool{
	"async": true, "partial": true, "required": true, "file": true,
}

func (p *parser) modifiers() []*syntax.Node {
	var out []*syntax.Node
	for {
		t := p.peek()
		if t.kind != tokenIdent || t.verbatim || !modifierKeywords[t.text] {
			break
		}
		if contextualModifiers[t.text] && p.peekN(1).kind != tokenIdent {
			break
		}
		out = append(out, keyword(p.next().text))
	}
	return all(syntax.RoleModifier, out)
}

var typeKinds = map[string]syntax.Kind{
	"class":     syntax.KindClass,
	"struct":    syntax.KindStruct,
	"interface": syntax.KindInterface,
}

func (p *parser) typeDeclaration(attrs, mods []*syntax.Node) *syntax.Node {
	kind := typeKinds[p.next().text]
	name := as(syntax.RoleName, ident(p.name().text))
	tparams := p.typeParameters()
	bases := p.baseList()
	constraints := p.constraintClauses()

	p.expect("{")
	var members []*syntax.Node
	for !p.at("}") && !p.atEOF() {
		m := p.recover(func() *syntax.Node { return p.member(p.leading()) })
		if m != nil {
			members = append(members, m)
		}
	}
	end := p.end()
	p.expect("}")
	p.eat(";")

	return node(kind, concat(
		attrs, mods, list(name), tparams, bases, constraints,
		all(syntax.RoleMember, members), list(end),
	)...)
}

func (p *parser) baseList() []*syntax.Node {
	if !p.eat(":") {
		return nil
	}
	var out []*syntax.Node
	for {
		out = append(out, p.typ())
		if !p.eat(",") {
			break
		}
	}
	return all(syntax.RoleBaseType, out)
}

func (p *parser) enumDeclaration(attrs, mods []*syntax.Node) *syntax.Node {
	p.expect("enum")
	name := as(syntax.RoleName, ident(p.name().text))
	bases := p.baseList()

	p.expect("{")
	var members []*syntax.Node
	for !p.at("}") && !p.atEOF() {
		m := p.recover(func() *syntax.Node {
			lead := p.leading()
			attrs := p.attributes()
			name := as(syntax.RoleName, ident(p.name().text))
			var value *syntax.Node
			if p.eat("=") {
				value = as(syntax.RoleValue, p.expr())
			}
			if !p.at("}") {
				p.expect(",")
			}
			return p.finish(node(syntax.KindEnumMember, concat(attrs, list(name, value))...), lead)
		})
		if m != nil {
			members = append(members, m)
		}
	}
	end := p.end()
	p.expect("}")
	p.eat(";")

	return node(syntax.KindEnum, concat(attrs, mods, list(name), bases, all(syntax.RoleMember, members), list(end))...)
}

func (p *parser) delegateDeclaration(attrs, mods []*syntax.Node) *syntax.Node {
	p.expect("delegate")
	ret := as(syntax.RoleType, p.typ())
	name := as(syntax.RoleName, ident(p.name().text))
	tparams := p.typeParameters()
	params := p.parameters("(", ")")
	constraints := p.constraintClauses()
	p.expect(";")
	return node(syntax.KindDelegate, concat(attrs, mods, list(ret, name), tparams, params, constraints)...)
}

func (p *parser) eventDeclaration(attrs, mods []*syntax.Node) *syntax.Node {
	p.expect("event")
	typ := as(syntax.RoleType, p.typ())
	if p.atIdent() && p.atN(1, "{") {
		name := as(syntax.RoleName, ident(p.name().text))
		accessors := p.accessors()
		return node(syntax.KindEvent, concat(attrs, mods, list(typ, name), accessors)...)
	}
	decls := p.declarators()
	p.expect(";")
	return node(syntax.KindEventField, concat(attrs, mods, list(typ), decls)...)
}

func (p *parser) destructor(attrs, mods []*syntax.Node) *syntax.Node {
	p.expect("~")
	name := as(syntax.RoleName, ident(p.name().text))
	p.expect("(")
	p.expect(")")
	return node(syntax.KindDestructor, concat(attrs, mods, list(name), p.body())...)
}

func (p *parser) conversionOperator(attrs, mods []*syntax.Node) *syntax.Node {
	kind := p.next().text
	p.expect("operator")
	typ := as(syntax.RoleType, p.typ())
	params := p.parameters("(", ")")
	return node(syntax.KindConversionOperator, concat(attrs, mods, list(typ), params, p.body())...).WithText(kind)
}

func (p *parser) constructor(attrs, mods []*syntax.Node) *syntax.Node {
	name := as(syntax.RoleName, ident(p.name().text))
	params := p.parameters("(", ")")
	var init string
	var args []*syntax.Node
	if p.eat(":") {
		if !p.at("base") && !p.at("this") {
			p.errorf("expected \"base\" or \"this\", found %s", p.describe())
		}
		init = p.next().text
		args = p.arguments("(", ")")
	}
	n := node(syntax.KindConstructor, concat(attrs, mods, list(name), params, all(syntax.RoleArgument, args), p.body())...)
	return n.WithText(init)
}

// overloadableOperators are the operators that can be declared. >> is lexed
// as two tokens and handled separately.
var overloadableOperators = map[string]bool{
	"+": true, "-": true, "!": true, "~": true, "++": true, "--": true,
	"true": true, "false": true, "*": true, "/": true, "%": true, "&": true,
	"|": true, "^": true, "<<": true, "==": true, "!=": true, "<": true,
	">": true, "<=": true, ">=": true,
}

func (p *parser) operator(attrs, mods []*syntax.Node, typ *syntax.Node) *syntax.Node {
	p.expect("operator")
	var op string
	switch {
	case p.shiftRight():
		p.next()
		p.next()
		op = ">>"
	case overloadableOperators[p.peek().text] && p.peek().kind != tokenString:
		op = p.next().text
	default:
		p.errorf("expected overloadable operator, found %s", p.describe())
	}
	params := p.parameters("(", ")")
	return node(syntax.KindOperator, concat(attrs, mods, list(as(syntax.RoleType, typ)), params, p.body())...).WithText(op)
}

func (p *parser) indexer(attrs, mods []*syntax.Node, typ *syntax.Node) *syntax.Node {
	p.expect("this")
	params := p.parameters("[", "]")
	var rest []*syntax.Node
	if p.at("=>") {
		rest = p.body()
	} else {
		rest = p.accessors()
	}
	return node(syntax.KindIndexer, concat(attrs, mods, list(as(syntax.RoleType, typ)), params, rest)...)
}

func (p *parser) method(attrs, mods []*syntax.Node, typ *syntax.Node) *syntax.Node {
	name := as(syntax.RoleName, ident(p.name().text))
	tparams := p.typeParameters()
	params := p.parameters("(", ")")
	constraints := p.constraintClauses()
	return node(syntax.KindMethod, concat(
		attrs, mods, list(as(syntax.RoleType, typ), name), tparams, params, constraints, p.body(),
	)...)
}

func (p *parser) property(attrs, mods []*syntax.Node, typ *syntax.Node) *syntax.Node {
	name := as(syntax.RoleName, ident(p.name().text))
	if p.at("=>") {
		return node(syntax.KindProperty, concat(attrs, mods, list(as(syntax.RoleType, typ), name), p.body())...)
	}
	accessors := p.accessors()
	var value *syntax.Node
	if p.eat("=") {
		value = as(syntax.RoleValue, p.expr())
		p.expect(";")
	}
	return node(syntax.KindProperty, concat(attrs, mods, list(as(syntax.RoleType, typ), name), accessors, list(value))...)
}

var accessorKeywords = map[string]bool{
	"get": true, "set": true, "init": true, "add": true, "remove": true,
}

func (p *parser) accessors() []*syntax.Node {
	p.expect("{")
	var out []*syntax.Node
	for !p.at("}") && !p.atEOF() {
		a := p.recover(func() *syntax.Node {
			lead := p.leading()
			attrs := p.attributes()
			mods := p.modifiers()
			if !accessorKeywords[p.peek().text] || p.peek().kind != tokenIdent {
				p.errorf("expected accessor, found %s", p.describe())
			}
			kind := p.next().text
			n := node(syntax.KindAccessor, concat(attrs, mods, p.body())...).WithText(kind)
			return p.finish(n, lead)
		})
		if a != nil {
			out = append(out, a)
		}
	}
	p.expect("}")
	return all(syntax.RoleAccessor, out)
}

func (p *parser) field(attrs, mods []*syntax.Node, typ *syntax.Node) *syntax.Node {
	decls := p.declarators()
	p.expect(";")
	return node(syntax.KindField, concat(attrs, mods, list(as(syntax.RoleType, typ)), decls)...)
}

func (p *parser) declarators() []*syntax.Node {
	var out []*syntax.Node
	for {
		name := as(syntax.RoleName, ident(p.name().text))
		var value *syntax.Node
		if p.eat("=") {
			if p.at("{") {
				p.errorf("%w: array initializers", ErrUnsupported)
			}
			value = as(syntax.RoleValue, p.expr())
		}
		out = append(out, node(syntax.KindVariableDeclarator, name, value))
		if !p.eat(",") {
			break
		}
	}
	return all(syntax.RoleDeclarator, out)
}

// body parses the body of a function-like member: a block, an expression
// body, or a semicolon.
func (p *parser) body() []*syntax.Node {
	switch {
	case p.at("{"):
		return list(as(syntax.RoleBody, p.block()))
	case p.eat("=>"):
		e := as(syntax.RoleExpressionBody, p.expr())
		p.expect(";")
		return list(e)
	default:
		p.expect(";")
		return nil
	}
}

func (p *parser) parameters(open, close string) []*syntax.Node {
	p.expect(open)
	var out []*syntax.Node
	for !p.at(close) {
		attrs := p.attributes()
		var mods []*syntax.Node
		for t := p.peek(); t.kind == tokenIdent && !t.verbatim && parameterModifiers[t.text] &&
			p.peekN(1).kind == tokenIdent; t = p.peek() {
			mods = append(mods, keyword(p.next().text))
		}
		typ := as(syntax.RoleType, p.typ())
		name := as(syntax.RoleName, ident(p.name().text))
		var value *syntax.Node
		if p.eat("=") {
			value = as(syntax.RoleValue, p.expr())
		}
		out = append(out, node(syntax.KindParameter, concat(attrs, all(syntax.RoleModifier, mods), list(typ, name, value))...))
		if !p.eat(",") {
			break
		}
	}
	p.expect(close)
	return all(syntax.RoleParameter, out)
}

func (p *parser) typeParameters() []*syntax.Node {
	if !p.eat("<") {
		return nil
	}
	var out []*syntax.Node
	for {
		p.attributes()
		var variance *syntax.Node
		if p.at("in") || p.at("out") {
			variance = as(syntax.RoleModifier, keyword(p.next().text))
		}
		name := p.name().text
		out = append(out, node(syntax.KindTypeParameter, variance).WithText(name))
		if !p.eat(",") {
			break
		}
	}
	p.expect(">")
	return all(syntax.RoleTypeParameter, out)
}

func (p *parser) constraintClauses() []*syntax.Node {
	var out []*syntax.Node
	for p.at("where") && p.atIdentN(1) && p.atN(2, ":") {
		p.next()
		name := as(syntax.RoleName, leaf(syntax.KindIdentifierName, p.name().text))
		p.expect(":")
		var constraints []*syntax.Node
		for {
			var c *syntax.Node
			switch {
			case p.at("class"):
				p.next()
				c = node(syntax.KindClassConstraint)
				if p.eat("?") {
					c = c.WithText("?")
				}
			case p.at("struct"):
				p.next()
				c = node(syntax.KindStructConstraint)
			case p.at("new") && p.atN(1, "("):
				p.next()
				p.expect("(")
				p.expect(")")
				c = node(syntax.KindConstructorConstraint)
			default:
				c = node(syntax.KindTypeConstraint, as(syntax.RoleType, p.typ()))
			}
			constraints = append(constraints, c)
			if !p.eat(",") {
				break
			}
		}
		out = append(out, node(syntax.KindConstraintClause, concat(list(name), all(syntax.RoleConstraint, constraints))...))
	}
	return all(syntax.RoleConstraint, out)
}
