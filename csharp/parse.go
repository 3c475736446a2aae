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

	"github.com/bufbuild/syntaxedit/reporter"
	"github.com/bufbuild/syntaxedit/syntax"
)

// ParseFile parses a C# source file.
//
// Errors are sent to rep; a nil rep stops at the first one. If rep lets the
// parse continue, declarations and statements with errors in them are
// skipped, and the partial tree is returned along with
// [reporter.ErrInvalidSource].
func ParseFile(filename, text string, rep reporter.Reporter) (*syntax.Node, error) {
	h := reporter.NewHandler(rep)
	p, err := newParser(filename, text, h)
	if err != nil {
		return nil, err
	}
	root, err := p.run(p.compilationUnit)
	if err != nil {
		return nil, err
	}
	return root, h.Error()
}

// ParseCompilationUnit parses text as a C# file, failing on the first error.
func ParseCompilationUnit(text string) (*syntax.Node, error) {
	return ParseFile("", text, nil)
}

// ParseExpression parses text as a single C# expression.
func ParseExpression(text string) (*syntax.Node, error) {
	return parseFragment(text, func(p *parser) *syntax.Node { return p.expr() })
}

// ParseStatement parses text as a single C# statement.
func ParseStatement(text string) (*syntax.Node, error) {
	return parseFragment(text, (*parser).statement)
}

// ParseType parses text as a C# type.
func ParseType(text string) (*syntax.Node, error) {
	return parseFragment(text, (*parser).typ)
}

func parseFragment(text string, parse func(*parser) *syntax.Node) (*syntax.Node, error) {
	h := reporter.NewHandler(nil)
	p, err := newParser("", text, h)
	if err != nil {
		return nil, err
	}
	return p.run(func() *syntax.Node {
		n := parse(p)
		if !p.atEOF() {
			p.errorf("unexpected %s after end of input", p.describe())
		}
		return n
	})
}

// parser is a recursive-descent parser over a lexed file.
type parser struct {
	tokens  []token
	i       int
	handler *reporter.Handler

	// Comments from tokens that are not the first or last token of a
	// declaration or statement. They are attached to the next one that
	// starts.
	pending []syntax.Trivia
	// The trailing trivia of the last token consumed, until something claims
	// it.
	trailing []syntax.Trivia
}

// bailout unwinds the parser after a syntax error. A nil err means the
// reporter chose to continue, and the nearest [parser.recover] resumes.
type bailout struct{ err error }

func newParser(filename, text string, h *reporter.Handler) (*parser, error) {
	tokens, err := lex(filename, text, h)
	if err != nil {
		return nil, err
	}
	return &parser{tokens: tokens, handler: h}, nil
}

// run calls parse, turning a fatal bailout into an error.
func (p *parser) run(parse func() *syntax.Node) (n *syntax.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			n = nil
			err = b.err
			if err == nil {
				err = p.handler.Error()
			}
		}
	}()
	return parse(), nil
}

// recover calls parse. If it hits a syntax error that the reporter lets the
// parse continue past, recover skips ahead to a likely end of the construct
// and returns nil.
func (p *parser) recover(parse func() *syntax.Node) (n *syntax.Node) {
	start := p.i
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok || b.err != nil {
				panic(r)
			}
			p.skip(start)
			n = nil
		}
	}()
	return parse()
}

// skip advances past the end of the statement or declaration that began at
// token start: a semicolon or a balanced closing brace. It stops before a
// closing brace that belongs to an enclosing construct.
func (p *parser) skip(start int) {
	p.i = start
	depth := 0
	for !p.atEOF() {
		t := p.peek()
		switch {
		case t.is("{"):
			depth++
		case t.is("}"):
			if depth == 0 {
				if p.i == start {
					p.i++
				}
				return
			}
			depth--
			if depth == 0 {
				p.i++
				if p.peek().is(";") {
					p.i++
				}
				return
			}
		case t.is(";") && depth == 0:
			p.i++
			return
		}
		p.i++
	}
	p.pending = nil
	p.trailing = nil
}

func (p *parser) errorf(format string, args ...any) {
	p.errorAt(p.peek().pos, format, args...)
}

func (p *parser) errorAt(pos syntax.Position, format string, args ...any) {
	panic(bailout{p.handler.HandleErrorf(pos, format, args...)})
}

func (p *parser) peek() *token {
	return p.peekN(0)
}

func (p *parser) peekN(n int) *token {
	if p.i+n >= len(p.tokens) {
		return &p.tokens[len(p.tokens)-1]
	}
	return &p.tokens[p.i+n]
}

func (p *parser) atEOF() bool {
	return p.peek().kind == tokenEOF
}

// at returns whether the next token is the given punctuation or keyword.
func (p *parser) at(text string) bool {
	return p.atN(0, text)
}

func (p *parser) atN(n int, text string) bool {
	t := p.peekN(n)
	return t.is(text) && !t.verbatim
}

// atIdent returns whether the next token is an identifier that is not a
// reserved keyword.
func (p *parser) atIdent() bool {
	return p.atIdentN(0)
}

func (p *parser) atIdentN(n int) bool {
	t := p.peekN(n)
	return t.kind == tokenIdent && (t.verbatim || !keywords[t.text])
}

func (p *parser) describe() string {
	t := p.peek()
	if t.kind == tokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.text)
}

// next consumes a token.
func (p *parser) next() *token {
	t := p.peek()
	if t.kind == tokenEOF {
		p.errorf("unexpected end of input")
	}
	p.flushTrailing()
	p.pending = appendComments(p.pending, t.leading)
	t.leading = nil
	p.trailing = t.trailing
	p.i++
	return t
}

// eat consumes the next token if it is the given punctuation or keyword.
func (p *parser) eat(text string) bool {
	if !p.at(text) {
		return false
	}
	p.next()
	return true
}

// expect consumes the given punctuation or keyword, or fails.
func (p *parser) expect(text string) *token {
	if !p.at(text) {
		p.errorf("expected %q, found %s", text, p.describe())
	}
	return p.next()
}

// name consumes an identifier.
func (p *parser) name() *token {
	if !p.atIdent() {
		p.errorf("expected identifier, found %s", p.describe())
	}
	return p.next()
}

// leading claims the trivia before the next token, for a node that starts
// there.
func (p *parser) leading() []syntax.Trivia {
	p.flushTrailing()
	t := p.peek()
	out := append(p.pending, t.leading...)
	p.pending = nil
	t.leading = nil
	return out
}

// claimTrailing claims the comments after the last token consumed, for a
// node that ends there.
func (p *parser) claimTrailing() []syntax.Trivia {
	out := appendComments(nil, p.trailing)
	p.trailing = nil
	return out
}

func (p *parser) flushTrailing() {
	p.pending = appendComments(p.pending, p.trailing)
	p.trailing = nil
}

// finish attaches trivia to a declaration or statement that starts with
// leading and ends with the last token consumed.
func (p *parser) finish(n *syntax.Node, leading []syntax.Trivia) *syntax.Node {
	if len(leading) > 0 {
		n = n.WithLeading(leading...)
	}
	if trailing := p.claimTrailing(); len(trailing) > 0 {
		n = n.WithTrailing(trailing...)
	}
	return n
}

// end builds the token that holds the trivia before a closing brace or the
// end of the file. Returns nil if there are no comments to hold.
func (p *parser) end() *syntax.Node {
	leading := p.leading()
	for _, t := range leading {
		if t.IsComment() || t.Kind == syntax.TriviaDirective {
			return as(syntax.RoleEnd, leaf(syntax.KindEnd, "").WithLeading(leading...))
		}
	}
	return nil
}

// appendComments appends the comments and directives in trivia to out, each
// on its own line.
func appendComments(out, trivia []syntax.Trivia) []syntax.Trivia {
	for _, t := range trivia {
		if t.IsComment() || t.Kind == syntax.TriviaDirective {
			out = append(out, t, syntax.EndOfLine())
		}
	}
	return out
}
