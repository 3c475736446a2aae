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

func (p *parser) block() *syntax.Node {
	p.expect("{")
	var stmts []*syntax.Node
	for !p.at("}") && !p.atEOF() {
		if s := p.recover(p.statement); s != nil {
			stmts = append(stmts, s)
		}
	}
	end := p.end()
	p.expect("}")
	return node(syntax.KindBlock, concat(all(syntax.RoleStatement, stmts), list(end))...)
}

// statement parses a statement, along with the comments around it.
func (p *parser) statement() *syntax.Node {
	lead := p.leading()
	return p.finish(p.statementBody(), lead)
}

func (p *parser) statementBody() *syntax.Node {
	switch {
	case p.at("{"):
		return p.block()

	case p.eat(";"):
		return node(syntax.KindEmptyStatement)

	case p.at("return"), p.at("throw"):
		kind := syntax.KindReturn
		if p.next().text == "throw" {
			kind = syntax.KindThrow
		}
		var value *syntax.Node
		if !p.at(";") {
			value = as(syntax.RoleValue, p.expr())
		}
		p.expect(";")
		return node(kind, value)

	case p.at("break"), p.at("continue"):
		kind := syntax.KindBreak
		if p.next().text == "continue" {
			kind = syntax.KindContinue
		}
		p.expect(";")
		return node(kind)

	case p.eat("if"):
		cond := p.condition()
		then := as(syntax.RoleThen, p.statement())
		var els *syntax.Node
		if p.eat("else") {
			els = as(syntax.RoleElse, p.statement())
		}
		return node(syntax.KindIf, cond, then, els)

	case p.eat("while"):
		cond := p.condition()
		return node(syntax.KindWhile, cond, as(syntax.RoleBody, p.statement()))

	case p.eat("foreach"):
		p.expect("(")
		typ := as(syntax.RoleType, p.typ())
		name := as(syntax.RoleName, ident(p.name().text))
		p.expect("in")
		collection := as(syntax.RoleValue, p.expr())
		p.expect(")")
		return node(syntax.KindForeach, typ, name, collection, as(syntax.RoleBody, p.statement()))

	case p.at("const"):
		mods := list(as(syntax.RoleModifier, keyword(p.next().text)))
		return p.localDeclaration(mods)

	case p.atLocalDeclaration():
		return p.localDeclaration(nil)
	}

	for _, kw := range unsupportedStatements {
		if p.at(kw) {
			p.errorf("%w: %q statements", ErrUnsupported, kw)
		}
	}

	e := as(syntax.RoleValue, p.expr())
	p.expect(";")
	return node(syntax.KindExpressionStatement, e)
}

var unsupportedStatements = []string{
	"for", "do", "switch", "try", "using", "lock", "goto", "yield", "checked",
	"unchecked", "fixed", "unsafe",
}

func (p *parser) condition() *syntax.Node {
	p.expect("(")
	cond := as(syntax.RoleCondition, p.expr())
	p.expect(")")
	return cond
}

// atLocalDeclaration returns whether the next tokens are a type followed by
// a variable name.
func (p *parser) atLocalDeclaration() bool {
	j, ok := p.scanType(p.i)
	if !ok {
		return false
	}
	t := p.tokenAt(j)
	if t.kind != tokenIdent || (!t.verbatim && keywords[t.text]) {
		return false
	}
	next := p.tokenAt(j + 1)
	return next.is("=") || next.is(";") || next.is(",")
}

func (p *parser) localDeclaration(mods []*syntax.Node) *syntax.Node {
	typ := as(syntax.RoleType, p.typ())
	decls := p.declarators()
	p.expect(";")
	return node(syntax.KindLocalDeclaration, concat(mods, list(typ), decls)...)
}
