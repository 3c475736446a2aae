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
	"strings"

	"github.com/bufbuild/syntaxedit/builder"
	"github.com/bufbuild/syntaxedit/internal/dom"
	"github.com/bufbuild/syntaxedit/syntax"
)

// Printer renders C# syntax trees in a canonical layout: braces on their own
// lines, one member or statement per line, and parameter lists broken one
// per line when they do not fit.
//
// Comments and directives in trivia are kept, as are single blank lines
// between members and statements. All other whitespace is regenerated.
type Printer struct {
	// Indent is the number of spaces per indentation level. Defaults to 4.
	Indent int
	// LineWidth is the column at which parameter lists break. Defaults to
	// 100.
	LineWidth int
}

var _ builder.Printer = Printer{}

// Print renders n.
//
// A compilation unit is rendered as a file, ending in a newline. Any other
// node is rendered without a trailing newline.
func (p Printer) Print(n *syntax.Node) string {
	text, _ := p.PrintSpans(n)
	return text
}

// PrintSpans is like [Printer.Print], but also returns where each
// declaration in n was printed. A declaration's span includes its leading
// comments. Spans are in pre-order, so an enclosing declaration comes before
// the declarations it contains.
func (p Printer) PrintSpans(n *syntax.Node) (string, []builder.NodeSpan) {
	if n == nil {
		return "", nil
	}
	pr := &printer{indent: strings.Repeat(" ", 4)}
	if p.Indent > 0 {
		pr.indent = strings.Repeat(" ", p.Indent)
	}
	width := p.LineWidth
	if width <= 0 {
		width = 100
	}

	text, marks := dom.RenderMarked(dom.Options{MaxWidth: width}, func(push dom.Sink) {
		pr.top(push, n)
	})
	if n.Kind() != syntax.KindCompilationUnit || strings.TrimSpace(text) == "" {
		text = strings.TrimRight(text, "\n")
	}

	spans := make([]builder.NodeSpan, 0, len(marks))
	for _, m := range marks {
		spans = append(spans, builder.NodeSpan{
			Node: pr.marked[m.ID],
			Span: syntax.Span{Start: m.Start, End: min(m.End, len(text))},
		})
	}
	return text, spans
}

// printer is the state of one call to [Printer.PrintSpans].
type printer struct {
	indent string
	// Declarations that have been given a [dom.Mark], indexed by mark ID.
	marked []*syntax.Node
}

func (p *printer) top(push dom.Sink, n *syntax.Node) {
	switch {
	case n.Kind() == syntax.KindCompilationUnit:
		p.compilationUnit(push, n)
	case n.Kind().IsDeclaration(), n.Kind() == syntax.KindEnumMember:
		p.decl(push, n, true, "")
	case n.Kind().IsStatement():
		p.stmt(push, n, true)
	case n.Kind() == syntax.KindEnd:
		p.leading(push, n.Leading(), false)
	default:
		push(dom.Text(p.expr(n)))
	}
}

func (p *printer) compilationUnit(push dom.Sink, n *syntax.Node) {
	members := n.All(syntax.RoleMember)
	for i, m := range members {
		if i > 0 {
			push(dom.Text("\n"))
		}
		p.decl(push, m, i == 0, "")
	}
	if end := n.First(syntax.RoleEnd); end != nil {
		if len(members) > 0 {
			push(dom.Text("\n"))
		}
		p.leading(push, end.Leading(), len(members) > 0)
	}
}

// leading prints the comments and directives in trivia, each on its own
// line, followed by a line break. At most one blank line is kept between
// them; a blank line at the start is only kept if allowBlank is set.
func (p *printer) leading(push dom.Sink, trivia []syntax.Trivia, allowBlank bool) {
	lineHasContent := false
	blank := false
	first := true
	for i, t := range trivia {
		switch {
		case t.Kind == syntax.TriviaEndOfLine:
			if !lineHasContent {
				blank = true
			}
			lineHasContent = false
		case t.Kind == syntax.TriviaWhitespace:
		default:
			if blank && (allowBlank || !first) {
				push(dom.Text("\n\n"))
			}
			blank = false
			first = false
			lineHasContent = true

			p.commentText(push, t.Text)
			if t.Kind == syntax.TriviaBlockComment || t.Kind == syntax.TriviaDocBlockComment {
				if !endsLine(trivia[i+1:]) {
					push(dom.Text(" "))
					continue
				}
			}
			push(dom.Text("\n"))
		}
	}
	if blank && (allowBlank || !first) {
		push(dom.Text("\n\n"))
	}
}

// endsLine returns whether trivia reaches a line ending before anything
// other than whitespace. Running out of trivia means more code follows on
// the same line.
func endsLine(trivia []syntax.Trivia) bool {
	for _, t := range trivia {
		switch t.Kind {
		case syntax.TriviaWhitespace:
			continue
		case syntax.TriviaEndOfLine:
			return true
		default:
			return false
		}
	}
	return false
}

// commentText prints a comment, indenting every one of its lines.
func (p *printer) commentText(push dom.Sink, text string) {
	for i, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if i > 0 {
			push(dom.Text("\n"))
		}
		push(dom.Text(strings.TrimRight(line, " \t")))
	}
}

// trailing prints the comments after a node on the line it ends on.
func (p *printer) trailing(push dom.Sink, n *syntax.Node) {
	for _, t := range n.Trailing() {
		if t.IsComment() || t.Kind == syntax.TriviaDirective {
			push(dom.Text(" "))
			p.commentText(push, t.Text)
		}
	}
}

// decl prints a declaration, marking where it ends up. suffix is printed
// after the declaration but before its trailing comments.
func (p *printer) decl(push dom.Sink, n *syntax.Node, first bool, suffix string) {
	id := len(p.marked)
	p.marked = append(p.marked, n)
	push(dom.Mark(id, func(push dom.Sink) {
		p.leading(push, n.Leading(), !first)
		p.declBody(push, n)
		if suffix != "" {
			push(dom.Text(suffix))
		}
		p.trailing(push, n)
	}))
}

func (p *printer) declBody(push dom.Sink, n *syntax.Node) {
	switch n.Kind() {
	case syntax.KindUsingDirective:
		var b strings.Builder
		mods := n.All(syntax.RoleModifier)
		for _, m := range mods {
			if m.Text() == "global" {
				b.WriteString("global ")
			}
		}
		b.WriteString("using ")
		for _, m := range mods {
			if m.Text() != "global" {
				b.WriteString(m.Text() + " ")
			}
		}
		if alias := n.First(syntax.RoleAlias); alias != nil {
			b.WriteString(escape(alias.Text()) + " = ")
		}
		b.WriteString(p.expr(n.First(syntax.RoleName)) + ";")
		push(dom.Text(b.String()))

	case syntax.KindNamespace:
		push(dom.Text("namespace " + p.expr(n.First(syntax.RoleName))))
		p.members(push, n)

	case syntax.KindFileScopedNamespace:
		push(dom.Text("namespace " + p.expr(n.First(syntax.RoleName)) + ";"))
		for i, m := range n.All(syntax.RoleMember) {
			if i == 0 {
				push(dom.Text("\n\n"))
			} else {
				push(dom.Text("\n"))
			}
			p.decl(push, m, true, "")
		}

	case syntax.KindClass, syntax.KindStruct, syntax.KindInterface:
		p.attributes(push, n, false)
		push(dom.Text(p.modifiers(n) + typeKeywords[n.Kind()] + " " + escape(n.First(syntax.RoleName).Text())))
		push(dom.Text(p.typeParameters(n) + p.baseList(n) + p.constraints(n)))
		p.members(push, n)

	case syntax.KindEnum:
		p.attributes(push, n, false)
		push(dom.Text(p.modifiers(n) + "enum " + escape(n.First(syntax.RoleName).Text()) + p.baseList(n)))
		p.members(push, n)

	case syntax.KindEnumMember:
		p.attributes(push, n, false)
		text := escape(n.First(syntax.RoleName).Text())
		if v := n.First(syntax.RoleValue); v != nil {
			text += " = " + p.expr(v)
		}
		push(dom.Text(text))

	case syntax.KindDelegate:
		p.attributes(push, n, false)
		push(dom.Text(p.modifiers(n) + "delegate " + p.expr(n.First(syntax.RoleType)) + " " +
			escape(n.First(syntax.RoleName).Text()) + p.typeParameters(n)))
		p.parameters(push, n, "(", ")")
		push(dom.Text(p.constraints(n) + ";"))

	case syntax.KindMethod:
		p.attributes(push, n, false)
		push(dom.Text(p.modifiers(n) + p.expr(n.First(syntax.RoleType)) + " " +
			escape(n.First(syntax.RoleName).Text()) + p.typeParameters(n)))
		p.parameters(push, n, "(", ")")
		push(dom.Text(p.constraints(n)))
		p.body(push, n)

	case syntax.KindConstructor:
		p.attributes(push, n, false)
		push(dom.Text(p.modifiers(n) + escape(n.First(syntax.RoleName).Text())))
		p.parameters(push, n, "(", ")")
		if init := n.Text(); init != "" {
			push(dom.Text(" : " + init + "(" + p.exprList(n.All(syntax.RoleArgument)) + ")"))
		}
		p.body(push, n)

	case syntax.KindDestructor:
		p.attributes(push, n, false)
		push(dom.Text(p.modifiers(n) + "~" + escape(n.First(syntax.RoleName).Text()) + "()"))
		p.body(push, n)

	case syntax.KindOperator:
		p.attributes(push, n, false)
		push(dom.Text(p.modifiers(n) + p.expr(n.First(syntax.RoleType)) + " operator " + n.Text()))
		p.parameters(push, n, "(", ")")
		p.body(push, n)

	case syntax.KindConversionOperator:
		p.attributes(push, n, false)
		push(dom.Text(p.modifiers(n) + n.Text() + " operator " + p.expr(n.First(syntax.RoleType))))
		p.parameters(push, n, "(", ")")
		p.body(push, n)

	case syntax.KindField, syntax.KindEventField:
		p.attributes(push, n, false)
		text := p.modifiers(n)
		if n.Kind() == syntax.KindEventField {
			text += "event "
		}
		text += p.expr(n.First(syntax.RoleType)) + " " + p.declarators(n) + ";"
		push(dom.Text(text))

	case syntax.KindProperty:
		p.attributes(push, n, false)
		push(dom.Text(p.modifiers(n) + p.expr(n.First(syntax.RoleType)) + " " + escape(n.First(syntax.RoleName).Text())))
		p.accessors(push, n)

	case syntax.KindIndexer:
		p.attributes(push, n, false)
		push(dom.Text(p.modifiers(n) + p.expr(n.First(syntax.RoleType)) + " this"))
		p.parameters(push, n, "[", "]")
		p.accessors(push, n)

	case syntax.KindEvent:
		p.attributes(push, n, false)
		push(dom.Text(p.modifiers(n) + "event " + p.expr(n.First(syntax.RoleType)) + " " + escape(n.First(syntax.RoleName).Text())))
		p.accessors(push, n)

	case syntax.KindAccessor:
		p.attributes(push, n, false)
		push(dom.Text(p.modifiers(n) + n.Text()))
		p.body(push, n)

	case syntax.KindParameter:
		push(dom.Text(p.parameter(n)))

	case syntax.KindAttribute:
		push(dom.Text("[" + p.attribute(n) + "]"))

	case syntax.KindAttributeArgument:
		push(dom.Text(p.attributeArgument(n)))

	default:
		push(dom.Text(p.expr(n)))
	}
}

var typeKeywords = map[syntax.Kind]string{
	syntax.KindClass:     "class",
	syntax.KindStruct:    "struct",
	syntax.KindInterface: "interface",
	syntax.KindEnum:      "enum",
}

// members prints the braced member list of a namespace or type.
func (p *printer) members(push dom.Sink, n *syntax.Node) {
	members := n.All(syntax.RoleMember)
	enum := n.Kind() == syntax.KindEnum
	p.braces(push, n, func(push dom.Sink) {
		for i, m := range members {
			push(dom.Text("\n"))
			suffix := ""
			if enum && i < len(members)-1 {
				suffix = ","
			}
			p.decl(push, m, i == 0, suffix)
		}
	}, len(members) == 0)
}

// braces prints a braced, indented body on the lines after the current one.
// The body's closing trivia, if any, is printed before the closing brace.
func (p *printer) braces(push dom.Sink, n *syntax.Node, body func(dom.Sink), empty bool) {
	push(dom.Text("\n"), dom.Text("{"))
	push(dom.Indent(p.indent, func(push dom.Sink) {
		body(push)
		if end := n.First(syntax.RoleEnd); end != nil {
			push(dom.Text("\n"))
			p.leading(push, end.Leading(), !empty)
		}
	}))
	push(dom.Text("\n"), dom.Text("}"))
}

// body prints the body of a function-like member.
func (p *printer) body(push dom.Sink, n *syntax.Node) {
	switch {
	case n.First(syntax.RoleBody) != nil:
		push(dom.Text("\n"))
		p.block(push, n.First(syntax.RoleBody))
	case n.First(syntax.RoleExpressionBody) != nil:
		push(dom.Text(" => " + p.expr(n.First(syntax.RoleExpressionBody)) + ";"))
	default:
		push(dom.Text(";"))
	}
}

// accessors prints the accessor list or expression body of a property,
// indexer or event.
func (p *printer) accessors(push dom.Sink, n *syntax.Node) {
	if e := n.First(syntax.RoleExpressionBody); e != nil {
		push(dom.Text(" => " + p.expr(e) + ";"))
		return
	}

	accessors := n.All(syntax.RoleAccessor)
	if isAuto(accessors) {
		text := " {"
		for _, a := range accessors {
			text += " " + p.modifiers(a) + a.Text() + ";"
		}
		push(dom.Text(text + " }"))
	} else {
		push(dom.Text("\n"), dom.Text("{"))
		push(dom.Indent(p.indent, func(push dom.Sink) {
			for i, a := range accessors {
				push(dom.Text("\n"))
				p.decl(push, a, i == 0, "")
			}
		}))
		push(dom.Text("\n"), dom.Text("}"))
	}

	if v := n.First(syntax.RoleValue); v != nil {
		push(dom.Text(" = " + p.expr(v) + ";"))
	}
}

// isAuto returns whether accessors can be printed on one line: none of them
// have bodies, attributes or comments.
func isAuto(accessors []*syntax.Node) bool {
	if len(accessors) == 0 {
		return true
	}
	for _, a := range accessors {
		if a.First(syntax.RoleBody) != nil || a.First(syntax.RoleExpressionBody) != nil ||
			a.First(syntax.RoleAttribute) != nil || hasComments(a.Leading()) || hasComments(a.Trailing()) {
			return false
		}
	}
	return true
}

func hasComments(trivia []syntax.Trivia) bool {
	for _, t := range trivia {
		if t.IsComment() || t.Kind == syntax.TriviaDirective {
			return true
		}
	}
	return false
}

// attributes prints the attributes of n, each on its own line.
func (p *printer) attributes(push dom.Sink, n *syntax.Node, inline bool) {
	for _, a := range n.All(syntax.RoleAttribute) {
		push(dom.Text("[" + p.attribute(a) + "]"))
		if inline {
			push(dom.Text(" "))
		} else {
			push(dom.Text("\n"))
		}
	}
}

func (p *printer) attribute(n *syntax.Node) string {
	text := p.expr(n.First(syntax.RoleName))
	if target := n.Text(); target != "" {
		text = target + ": " + text
	}
	if args := n.All(syntax.RoleArgument); len(args) > 0 {
		parts := make([]string, len(args))
		for i, arg := range args {
			parts[i] = p.attributeArgument(arg)
		}
		text += "(" + strings.Join(parts, ", ") + ")"
	}
	return text
}

func (p *printer) attributeArgument(n *syntax.Node) string {
	value := p.expr(n.First(syntax.RoleValue))
	name := n.First(syntax.RoleName)
	if name == nil {
		return value
	}
	if n.Text() == ":" {
		return escape(name.Text()) + ": " + value
	}
	return escape(name.Text()) + " = " + value
}

func (p *printer) modifiers(n *syntax.Node) string {
	var b strings.Builder
	for _, m := range n.All(syntax.RoleModifier) {
		b.WriteString(m.Text())
		b.WriteByte(' ')
	}
	return b.String()
}

func (p *printer) typeParameters(n *syntax.Node) string {
	tps := n.All(syntax.RoleTypeParameter)
	if len(tps) == 0 {
		return ""
	}
	parts := make([]string, len(tps))
	for i, tp := range tps {
		parts[i] = p.modifiers(tp) + escape(tp.Text())
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

func (p *printer) baseList(n *syntax.Node) string {
	bases := n.All(syntax.RoleBaseType)
	if len(bases) == 0 {
		return ""
	}
	return " : " + p.exprList(bases)
}

// constraints prints the where clauses of n, on the same line.
func (p *printer) constraints(n *syntax.Node) string {
	var b strings.Builder
	for _, clause := range n.All(syntax.RoleConstraint) {
		b.WriteString(" where ")
		b.WriteString(p.expr(clause.First(syntax.RoleName)))
		b.WriteString(" : ")
		for i, c := range clause.All(syntax.RoleConstraint) {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.constraint(c))
		}
	}
	return b.String()
}

func (p *printer) constraint(c *syntax.Node) string {
	switch c.Kind() {
	case syntax.KindClassConstraint:
		return "class" + c.Text()
	case syntax.KindStructConstraint:
		return "struct"
	case syntax.KindConstructorConstraint:
		return "new()"
	default:
		return p.expr(c.First(syntax.RoleType))
	}
}

// parameters prints a parameter list, broken one parameter per line if it
// does not fit.
func (p *printer) parameters(push dom.Sink, n *syntax.Node, open, close string) {
	params := n.All(syntax.RoleParameter)
	if len(params) == 0 {
		push(dom.Text(open + close))
		return
	}
	push(dom.Group(0, func(push dom.Sink) {
		push(dom.Text(open), dom.TextIf(dom.Broken, "\n"))
		push(dom.Indent(p.indent, func(push dom.Sink) {
			for i, param := range params {
				if i > 0 {
					push(
						dom.Text(","),
						dom.TextIf(dom.Flat, " "),
						dom.TextIf(dom.Broken, "\n"),
					)
				}
				p.decl(push, param, true, "")
			}
		}))
		push(dom.TextIf(dom.Broken, "\n"), dom.Text(close))
	}))
}

func (p *printer) parameter(n *syntax.Node) string {
	var b strings.Builder
	for _, a := range n.All(syntax.RoleAttribute) {
		b.WriteString("[" + p.attribute(a) + "] ")
	}
	b.WriteString(p.modifiers(n))
	b.WriteString(p.expr(n.First(syntax.RoleType)))
	b.WriteString(" ")
	b.WriteString(escape(n.First(syntax.RoleName).Text()))
	if v := n.First(syntax.RoleValue); v != nil {
		b.WriteString(" = " + p.expr(v))
	}
	return b.String()
}

func (p *printer) declarators(n *syntax.Node) string {
	decls := n.All(syntax.RoleDeclarator)
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = escape(d.First(syntax.RoleName).Text())
		if v := d.First(syntax.RoleValue); v != nil {
			parts[i] += " = " + p.expr(v)
		}
	}
	return strings.Join(parts, ", ")
}

// stmt prints a statement along with its comments.
func (p *printer) stmt(push dom.Sink, n *syntax.Node, first bool) {
	p.leading(push, n.Leading(), !first)
	switch n.Kind() {
	case syntax.KindBlock:
		p.block(push, n)

	case syntax.KindLocalDeclaration:
		push(dom.Text(p.modifiers(n) + p.expr(n.First(syntax.RoleType)) + " " + p.declarators(n) + ";"))

	case syntax.KindExpressionStatement:
		push(dom.Text(p.expr(n.First(syntax.RoleValue)) + ";"))

	case syntax.KindReturn, syntax.KindThrow:
		text := "return"
		if n.Kind() == syntax.KindThrow {
			text = "throw"
		}
		if v := n.First(syntax.RoleValue); v != nil {
			text += " " + p.expr(v)
		}
		push(dom.Text(text + ";"))

	case syntax.KindBreak:
		push(dom.Text("break;"))

	case syntax.KindContinue:
		push(dom.Text("continue;"))

	case syntax.KindEmptyStatement:
		push(dom.Text(";"))

	case syntax.KindIf:
		push(dom.Text("if (" + p.expr(n.First(syntax.RoleCondition)) + ")"))
		p.embedded(push, n.First(syntax.RoleThen))
		if els := n.First(syntax.RoleElse); els != nil {
			push(dom.Text("\n"), dom.Text("else"))
			if els.Kind() == syntax.KindIf && len(els.Leading()) == 0 {
				push(dom.Text(" "))
				p.stmt(push, els, true)
			} else {
				p.embedded(push, els)
			}
		}

	case syntax.KindWhile:
		push(dom.Text("while (" + p.expr(n.First(syntax.RoleCondition)) + ")"))
		p.embedded(push, n.First(syntax.RoleBody))

	case syntax.KindForeach:
		push(dom.Text("foreach (" + p.expr(n.First(syntax.RoleType)) + " " +
			escape(n.First(syntax.RoleName).Text()) + " in " + p.expr(n.First(syntax.RoleValue)) + ")"))
		p.embedded(push, n.First(syntax.RoleBody))

	default:
		push(dom.Text(p.expr(n)))
	}
	p.trailing(push, n)
}

// embedded prints the body of an if, while or foreach: a block on the next
// line, or any other statement indented on the next line.
func (p *printer) embedded(push dom.Sink, n *syntax.Node) {
	if n.Kind() == syntax.KindBlock {
		push(dom.Text("\n"))
		p.stmt(push, n, true)
		return
	}
	push(dom.Indent(p.indent, func(push dom.Sink) {
		push(dom.Text("\n"))
		p.stmt(push, n, true)
	}))
}

func (p *printer) block(push dom.Sink, n *syntax.Node) {
	stmts := n.All(syntax.RoleStatement)
	push(dom.Text("{"))
	push(dom.Indent(p.indent, func(push dom.Sink) {
		for i, s := range stmts {
			push(dom.Text("\n"))
			p.stmt(push, s, i == 0)
		}
		if end := n.First(syntax.RoleEnd); end != nil {
			push(dom.Text("\n"))
			p.leading(push, end.Leading(), len(stmts) > 0)
		}
	}))
	push(dom.Text("\n"), dom.Text("}"))
}

func (p *printer) exprList(nodes []*syntax.Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = p.expr(n)
	}
	return strings.Join(parts, ", ")
}

// expr prints an expression or type on one line.
func (p *printer) expr(n *syntax.Node) string {
	var b strings.Builder
	p.writeExpr(&b, n)
	return b.String()
}

func (p *printer) writeExpr(b *strings.Builder, n *syntax.Node) {
	switch n.Kind() {
	case syntax.KindUnknown:
		return

	case syntax.KindLiteral, syntax.KindKeyword, syntax.KindPredefinedType:
		b.WriteString(n.Text())

	case syntax.KindIdentifier, syntax.KindIdentifierName:
		b.WriteString(escape(n.Text()))

	case syntax.KindGenericName:
		b.WriteString(escape(n.Text()))
		b.WriteString("<" + p.exprList(n.All(syntax.RoleTypeArgument)) + ">")

	case syntax.KindQualifiedName:
		p.writeExpr(b, n.First(syntax.RoleLeft))
		if n.Text() == "::" {
			b.WriteString("::")
		} else {
			b.WriteString(".")
		}
		p.writeExpr(b, n.First(syntax.RoleRight))

	case syntax.KindArrayType:
		p.writeExpr(b, n.First(syntax.RoleElement))
		if rank := n.Text(); rank != "" {
			b.WriteString(rank)
		} else {
			b.WriteString("[]")
		}

	case syntax.KindNullableType:
		p.writeExpr(b, n.First(syntax.RoleElement))
		b.WriteString("?")

	case syntax.KindMemberAccess:
		p.writeExpr(b, n.First(syntax.RoleLeft))
		if op := n.Text(); op != "" {
			b.WriteString(op)
		} else {
			b.WriteString(".")
		}
		p.writeExpr(b, n.First(syntax.RoleRight))

	case syntax.KindInvocation:
		p.writeExpr(b, n.First(syntax.RoleCallee))
		b.WriteString("(" + p.exprList(n.All(syntax.RoleArgument)) + ")")

	case syntax.KindElementAccess:
		p.writeExpr(b, n.First(syntax.RoleCallee))
		b.WriteString("[" + p.exprList(n.All(syntax.RoleArgument)) + "]")

	case syntax.KindObjectCreation:
		b.WriteString("new ")
		p.writeExpr(b, n.First(syntax.RoleType))
		b.WriteString("(" + p.exprList(n.All(syntax.RoleArgument)) + ")")

	case syntax.KindUnary:
		op := n.Text()
		operand := p.expr(n.First(syntax.RoleOperand))
		b.WriteString(op)
		if isWordOperator(op) || (op != "" && strings.HasPrefix(operand, op[len(op)-1:]) && strings.ContainsAny(op, "+-")) {
			b.WriteByte(' ')
		}
		b.WriteString(operand)

	case syntax.KindPostfixUnary:
		p.writeExpr(b, n.First(syntax.RoleOperand))
		b.WriteString(n.Text())

	case syntax.KindBinary, syntax.KindAssignment:
		p.writeExpr(b, n.First(syntax.RoleLeft))
		b.WriteString(" " + n.Text() + " ")
		p.writeExpr(b, n.First(syntax.RoleRight))

	case syntax.KindConditional:
		p.writeExpr(b, n.First(syntax.RoleCondition))
		b.WriteString(" ? ")
		p.writeExpr(b, n.First(syntax.RoleThen))
		b.WriteString(" : ")
		p.writeExpr(b, n.First(syntax.RoleElse))

	case syntax.KindParenthesized:
		b.WriteString("(")
		p.writeExpr(b, n.First(syntax.RoleOperand))
		b.WriteString(")")

	case syntax.KindTypeOf:
		b.WriteString("typeof(")
		p.writeExpr(b, n.First(syntax.RoleType))
		b.WriteString(")")

	case syntax.KindDefault:
		b.WriteString("default")
		if t := n.First(syntax.RoleType); t != nil {
			b.WriteString("(")
			p.writeExpr(b, t)
			b.WriteString(")")
		}

	case syntax.KindCast:
		b.WriteString("(")
		p.writeExpr(b, n.First(syntax.RoleType))
		b.WriteString(")")
		p.writeExpr(b, n.First(syntax.RoleOperand))

	default:
		// Declarations and statements have no one-line form; fall back to
		// the full printer.
		b.WriteString(strings.TrimSpace(Printer{}.Print(n)))
	}
}

func isWordOperator(op string) bool {
	switch op {
	case "await", "ref", "out", "in":
		return true
	default:
		return false
	}
}

// escape prefixes identifiers that are spelled like keywords with @.
func escape(name string) string {
	if keywords[name] {
		return "@" + name
	}
	return name
}
