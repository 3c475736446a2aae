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

// Package comment models the text of a comment block: a run of comment lines
// whose editable text is surrounded by comment delimiters.
//
// A [Comment] keeps every line's delimiters and whitespace, so that replacing
// its text with [Comment.WithText] keeps the block's existing layout.
package comment

import (
	"strings"
	"unicode"

	"github.com/bufbuild/syntaxedit/seq"
)

//go:generate go run github.com/bufbuild/syntaxedit/internal/enum style.yaml

// StyleDefault is the style used when none is specified.
const StyleDefault = StyleSingleLineBlock

// Pattern describes the delimiters of one comment style.
//
// The zero values of the second-line and last-line fields default to their
// first-line counterparts; see [Pattern.WithDefaults].
type Pattern struct {
	// The token that starts the first line, such as "//" or "/*".
	FirstLineLeadingToken string
	// Whitespace after the first line's token that is not part of the text.
	FirstLineGap string

	// The token that starts every other line.
	SecondLineLeadingToken string
	// Whitespace after the other lines' token that is not part of the text.
	SecondLineGap string

	// Whitespace before the trailing token that is not part of the text.
	LastLineGap string
	// The token that ends the last line, such as "*/". May be empty.
	LastLineTrailingToken string
}

// WithDefaults fills in unset fields of p from the first-line fields.
func (p Pattern) WithDefaults() Pattern {
	if p.SecondLineLeadingToken == "" {
		p.SecondLineLeadingToken = p.FirstLineLeadingToken
	}
	if p.SecondLineGap == "" {
		p.SecondLineGap = p.FirstLineGap
	}
	if p.LastLineGap == "" {
		p.LastLineGap = p.FirstLineGap
	}
	return p
}

// Line is one physical line of a comment.
//
// Concatenating Prefix, Banner, Text, Postfix and EndOfLine gives back the
// line as written.
type Line struct {
	// Leading whitespace, the leading token, and the gap after it.
	Prefix string
	// Set instead of Text when the line is a banner: a run of punctuation,
	// such as a line of dashes, that frames the comment.
	Banner string
	// The comment text on this line.
	Text string
	// The gap and trailing token on the last line, plus anything after them.
	Postfix string
	// The line ending, if any.
	EndOfLine string
}

// IsBanner returns whether this line is a banner line.
func (l Line) IsBanner() bool {
	return l.Banner != ""
}

// Comment is a parsed comment block.
type Comment struct {
	pattern Pattern
	lines   []Line
}

// New constructs a comment out of its lines.
func New(pattern Pattern, lines ...Line) Comment {
	return Comment{pattern: pattern.WithDefaults(), lines: lines}
}

// From builds a new comment with the given text, laid out according to
// pattern.
func From(pattern Pattern, text string) Comment {
	pattern = pattern.WithDefaults()
	line := Line{Prefix: pattern.FirstLineLeadingToken + pattern.FirstLineGap}
	if pattern.LastLineTrailingToken != "" {
		line.Postfix = pattern.LastLineGap + pattern.LastLineTrailingToken
	}
	return New(pattern, line).WithText(text)
}

// Pattern returns the pattern this comment was parsed or built with.
func (c Comment) Pattern() Pattern {
	return c.pattern
}

// Lines returns the lines of this comment.
func (c Comment) Lines() seq.Indexer[Line] {
	return seq.View[Line](c.lines)
}

// FullText returns the comment as it appears in source, delimiters included.
func (c Comment) FullText() string {
	var b strings.Builder
	for _, line := range c.lines {
		b.WriteString(line.Prefix)
		b.WriteString(line.Banner)
		b.WriteString(line.Text)
		b.WriteString(line.Postfix)
		b.WriteString(line.EndOfLine)
	}
	return b.String()
}

// Text returns the editable text of the comment: the text of each line that
// is not a banner, joined with newlines.
func (c Comment) Text() string {
	var b strings.Builder
	first := true
	for _, line := range c.lines {
		if line.IsBanner() {
			continue
		}
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString(line.Text)
	}
	return b.String()
}

// WithText returns a copy of c with its text replaced.
//
// The prefixes, postfix and line endings of c's lines are reused for as many
// lines of text as c had; additional lines get a prefix made of the
// indentation of the last reused line and the pattern's second-line token.
// Banner lines at the start or end of a multi-line comment are kept.
func (c Comment) WithText(text string) Comment {
	lines := c.lines
	if len(lines) == 0 {
		return From(c.pattern, text)
	}

	// lines[reuse:last+1] are the lines whose layout new text may take over.
	reuse, last := 0, len(lines)-1
	var out []Line
	head := len(lines) > 1 && lines[0].IsBanner()
	tail := len(lines) > 1 && lines[last].IsBanner()
	if head {
		out = append(out, lines[0])
		reuse = 1
	}
	if tail && last > reuse {
		last--
	}

	source := splitLines(text)
	for i, src := range source {
		isLast := i == len(source)-1

		next := Line{Text: src.text}
		if reuse <= last && (i == 0 || reuse > 0) {
			next.Prefix = lines[reuse].Prefix
			next.EndOfLine = lines[reuse].EndOfLine
		} else {
			ref := lines[min(reuse, len(lines)-1)]
			next.Prefix = leadingSpace(ref.Prefix) + c.pattern.SecondLineLeadingToken + c.pattern.SecondLineGap
		}

		if isLast && !tail {
			next.Postfix = lines[len(lines)-1].Postfix
			next.EndOfLine = lines[len(lines)-1].EndOfLine
		}
		if next.EndOfLine == "" {
			next.EndOfLine = src.eol
		}
		if isLast && tail && next.EndOfLine == "" {
			next.EndOfLine = "\n"
		}
		out = append(out, next)

		if reuse < last {
			reuse++
		}
	}

	if tail {
		out = append(out, lines[len(lines)-1])
	}
	return Comment{pattern: c.pattern, lines: out}
}

// Parse parses the full text of a comment block written in pattern's style.
func Parse(text string, pattern Pattern) Comment {
	pattern = pattern.WithDefaults()
	c := Comment{pattern: pattern}
	for offset := 0; offset < len(text); {
		var line Line
		line, offset = parseLine(text, offset, pattern, len(c.lines) == 0)
		c.lines = append(c.lines, line)
	}
	return c
}

func parseLine(text string, offset int, pattern Pattern, first bool) (Line, int) {
	token, gap := pattern.SecondLineLeadingToken, pattern.SecondLineGap
	if first {
		token, gap = pattern.FirstLineLeadingToken, pattern.FirstLineGap
	}

	// The prefix is any indentation, then the token and its gap.
	start := offset
	for offset < len(text) {
		if token != "" && strings.HasPrefix(text[offset:], token) {
			offset += len(token)
			if strings.HasPrefix(text[offset:], gap) {
				offset += len(gap)
			}
			break
		}
		if ch := text[offset]; ch != ' ' && ch != '\t' {
			break
		}
		offset++
	}
	line := Line{Prefix: text[start:offset]}

	textStart := offset
	for offset < len(text) && text[offset] != '\r' && text[offset] != '\n' {
		offset++
	}
	textEnd := offset

	eolStart := offset
	if strings.HasPrefix(text[offset:], "\r\n") {
		offset += 2
	} else if offset < len(text) {
		offset++
	}
	line.EndOfLine = text[eolStart:offset]

	isLast := offset == len(text)
	postfixStart := textEnd
	if trailing := pattern.LastLineTrailingToken; isLast && trailing != "" &&
		strings.HasSuffix(text[textStart:textEnd], trailing) {
		postfixStart = textEnd - len(trailing)
		if gap := pattern.LastLineGap; gap != "" && postfixStart-len(gap) >= textStart &&
			strings.HasSuffix(text[textStart:postfixStart], gap) {
			postfixStart -= len(gap)
		}
	}
	line.Postfix = text[postfixStart:eolStart]

	body := text[textStart:postfixStart]
	if (first || isLast) && isBanner(body) {
		line.Banner = body
	} else {
		line.Text = body
	}
	return line, offset
}

// isBanner returns whether s is a non-empty run of characters that are
// neither letters, digits, nor whitespace.
func isBanner(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

type sourceLine struct {
	text, eol string
}

// splitLines splits text into lines, keeping each line's ending. A trailing
// line ending does not start another line.
func splitLines(text string) []sourceLine {
	var out []sourceLine
	for {
		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			break
		}
		eol := text[i : i+1]
		if strings.HasPrefix(text[i:], "\r\n") {
			eol = "\r\n"
		}
		out = append(out, sourceLine{text: text[:i], eol: eol})
		text = text[i+len(eol):]
	}
	if text != "" || len(out) == 0 {
		out = append(out, sourceLine{text: text})
	}
	return out
}

func leadingSpace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}
