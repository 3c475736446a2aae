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
	"slices"
	"strings"

	"github.com/bufbuild/syntaxedit/builder"
	"github.com/bufbuild/syntaxedit/comment"
	"github.com/bufbuild/syntaxedit/syntax"
)

// CommentEditor edits the comment blocks in the leading trivia of C#
// declarations, and the type parameters of generic declarations.
//
// A block is a run of // comments on consecutive lines, a run of ///
// comments on consecutive lines, or a single /* */ or /** */ comment. A
// blank line, a directive, or a change of comment kind ends a block.
type CommentEditor struct{}

var _ builder.CommentEditor = CommentEditor{}

var (
	lineComment = comment.Pattern{FirstLineLeadingToken: "//", FirstLineGap: " "}
	docComment  = comment.Pattern{FirstLineLeadingToken: "///", FirstLineGap: " "}

	blockComment = comment.Pattern{
		FirstLineLeadingToken:  "/*",
		FirstLineGap:           " ",
		SecondLineLeadingToken: "  ",
		LastLineTrailingToken:  "*/",
	}
	docBlockComment = comment.Pattern{
		FirstLineLeadingToken:  "/**",
		FirstLineGap:           " ",
		SecondLineLeadingToken: " *",
		LastLineTrailingToken:  "*/",
	}
)

// block is a comment block: the trivia in [start, end) of a node's leading
// trivia. end is just after the block's last comment.
type block struct {
	start, end int
	kind       syntax.TriviaKind
}

func (b block) style() comment.Style {
	switch b.kind {
	case syntax.TriviaBlockComment:
		return comment.StyleMultiLineBlock
	case syntax.TriviaDocLineComment, syntax.TriviaDocBlockComment:
		return comment.StyleDocumentation
	default:
		return comment.StyleSingleLineBlock
	}
}

func (b block) pattern() comment.Pattern {
	switch b.kind {
	case syntax.TriviaBlockComment:
		return blockComment
	case syntax.TriviaDocLineComment:
		return docComment
	case syntax.TriviaDocBlockComment:
		return docBlockComment
	default:
		return lineComment
	}
}

// fullText returns the block's comments as written, one per line.
func (b block) fullText(trivia []syntax.Trivia) string {
	var lines []string
	for _, t := range trivia[b.start:b.end] {
		if t.IsComment() {
			lines = append(lines, t.Text)
		}
	}
	return strings.Join(lines, "\n")
}

// blocks segments trivia into comment blocks.
func blocks(trivia []syntax.Trivia) []block {
	var out []block
	// Line endings seen since the last comment of the current block.
	eols := 0
	open := false
	for i, t := range trivia {
		switch t.Kind {
		case syntax.TriviaWhitespace:
			continue
		case syntax.TriviaEndOfLine:
			eols++
			continue
		case syntax.TriviaLineComment, syntax.TriviaDocLineComment:
			if open && out[len(out)-1].kind == t.Kind && eols <= 1 {
				out[len(out)-1].end = i + 1
			} else {
				out = append(out, block{start: i, end: i + 1, kind: t.Kind})
			}
			open = true
		case syntax.TriviaBlockComment, syntax.TriviaDocBlockComment:
			out = append(out, block{start: i, end: i + 1, kind: t.Kind})
			open = false
		default:
			open = false
		}
		eols = 0
	}
	return out
}

func patternFor(style comment.Style) comment.Pattern {
	switch style {
	case comment.StyleMultiLineBlock:
		return blockComment
	case comment.StyleDocumentation:
		return docComment
	default:
		return lineComment
	}
}

// render lexes the full text of a comment back into trivia.
func render(c comment.Comment) []syntax.Trivia {
	text := strings.TrimRight(c.FullText(), "\r\n")
	return lexTrivia(text)
}

func (e CommentEditor) block(n *syntax.Node, index int) (block, []syntax.Trivia) {
	trivia := n.Leading()
	bs := blocks(trivia)
	if index < 0 || index >= len(bs) {
		panic(fmt.Sprintf("csharp: comment index %d out of range [0:%d]", index, len(bs)))
	}
	return bs[index], trivia
}

// CommentCount implements [builder.CommentEditor].
func (e CommentEditor) CommentCount(n *syntax.Node) int {
	return len(blocks(n.Leading()))
}

// CommentText implements [builder.CommentEditor].
func (e CommentEditor) CommentText(n *syntax.Node, index int) string {
	b, trivia := e.block(n, index)
	return comment.Parse(b.fullText(trivia), b.pattern()).Text()
}

// CommentStyle implements [builder.CommentEditor].
func (e CommentEditor) CommentStyle(n *syntax.Node, index int) comment.Style {
	b, _ := e.block(n, index)
	return b.style()
}

// WithCommentText replaces the text of a block, keeping its layout.
func (e CommentEditor) WithCommentText(n *syntax.Node, index int, text string) *syntax.Node {
	b, trivia := e.block(n, index)
	c := comment.Parse(b.fullText(trivia), b.pattern()).WithText(text)
	return n.WithLeading(slices.Replace(trivia, b.start, b.end, render(c)...)...)
}

// WithCommentStyle rewrites a block in another style, keeping its text.
func (e CommentEditor) WithCommentStyle(n *syntax.Node, index int, style comment.Style) *syntax.Node {
	b, trivia := e.block(n, index)
	if b.style() == style {
		return n
	}
	text := comment.Parse(b.fullText(trivia), b.pattern()).Text()
	c := comment.From(patternFor(style), text)
	return n.WithLeading(slices.Replace(trivia, b.start, b.end, render(c)...)...)
}

// AddComment implements [builder.CommentEditor].
func (e CommentEditor) AddComment(n *syntax.Node, text string, style comment.Style) *syntax.Node {
	return e.InsertComment(n, e.CommentCount(n), text, style)
}

// InsertComment inserts a new block before the block at index. It is
// separated from that block by a blank line, so that it stays a block of its
// own.
//
// At the end, the new block is appended to the leading trivia on a line of
// its own, so a // block added after another // block joins it.
func (e CommentEditor) InsertComment(n *syntax.Node, index int, text string, style comment.Style) *syntax.Node {
	trivia := n.Leading()
	bs := blocks(trivia)
	if index < 0 || index > len(bs) {
		panic(fmt.Sprintf("csharp: comment index %d out of range [0:%d]", index, len(bs)))
	}

	added := render(comment.From(patternFor(style), text))
	added = append(added, syntax.EndOfLine())

	var at int
	if index < len(bs) {
		at = bs[index].start
		added = append(added, syntax.EndOfLine())
	} else {
		// Before the indentation of the line the node starts on.
		at = len(trivia)
		for at > 0 && trivia[at-1].Kind == syntax.TriviaWhitespace {
			at--
		}
		if at > 0 && trivia[at-1].Kind != syntax.TriviaEndOfLine {
			added = slices.Insert(added, 0, syntax.EndOfLine())
		}
	}
	return n.WithLeading(slices.Insert(trivia, at, added...)...)
}

// RemoveComment is not supported.
func (e CommentEditor) RemoveComment(n *syntax.Node, index int) (*syntax.Node, error) {
	return n, fmt.Errorf("%w: removing comment blocks", builder.ErrNotImplemented)
}

// TypeParameterNames implements [builder.CommentEditor].
func (CommentEditor) TypeParameterNames(n *syntax.Node) []string {
	tps := n.All(syntax.RoleTypeParameter)
	names := make([]string, len(tps))
	for i, tp := range tps {
		names[i] = tp.Text()
	}
	return names
}

// clause returns the constraint clause for a type parameter.
func clause(n *syntax.Node, name string) *syntax.Node {
	for _, c := range n.All(syntax.RoleConstraint) {
		if c.First(syntax.RoleName).Text() == name {
			return c
		}
	}
	return nil
}

// TypeConstraints implements [builder.CommentEditor].
func (CommentEditor) TypeConstraints(n *syntax.Node, name string) []*syntax.Node {
	var out []*syntax.Node
	for _, c := range clause(n, name).All(syntax.RoleConstraint) {
		if c.Kind() == syntax.KindTypeConstraint {
			out = append(out, c.First(syntax.RoleType))
		}
	}
	return out
}

// SpecialConstraints implements [builder.CommentEditor].
func (CommentEditor) SpecialConstraints(n *syntax.Node, name string) syntax.SpecialConstraint {
	var out syntax.SpecialConstraint
	for _, c := range clause(n, name).All(syntax.RoleConstraint) {
		switch c.Kind() {
		case syntax.KindClassConstraint:
			out |= syntax.ConstraintReferenceType
		case syntax.KindStructConstraint:
			out |= syntax.ConstraintValueType
		case syntax.KindConstructorConstraint:
			out |= syntax.ConstraintConstructor
		}
	}
	return out
}

// WithTypeParameterNameChanged renames a type parameter and its constraint
// clause. Uses of the type parameter elsewhere in n are not renamed.
func (CommentEditor) WithTypeParameterNameChanged(n *syntax.Node, name, newName string) *syntax.Node {
	tps := n.All(syntax.RoleTypeParameter)
	for i, tp := range tps {
		if tp.Text() == name {
			tps[i] = tp.WithText(newName)
		}
	}
	clauses := n.All(syntax.RoleConstraint)
	for i, c := range clauses {
		if c.First(syntax.RoleName).Text() == name {
			clauses[i] = setRole(c, syntax.RoleName, leaf(syntax.KindIdentifierName, newName))
		}
	}
	n = setRole(n, syntax.RoleTypeParameter, tps...)
	return setRole(n, syntax.RoleConstraint, clauses...)
}
