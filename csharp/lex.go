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
	"unicode"
	"unicode/utf8"

	"github.com/bufbuild/syntaxedit/reporter"
	"github.com/bufbuild/syntaxedit/syntax"
)

type tokenKind byte

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenNumber
	tokenString
	tokenChar
	tokenPunct
)

// token is a lexed token, along with the trivia around it.
//
// Trailing trivia runs up to and including the end of the token's line;
// everything after that is leading trivia of the next token.
type token struct {
	kind tokenKind
	text string
	pos  syntax.Position

	// Set for identifiers written with a leading @.
	verbatim bool

	leading, trailing []syntax.Trivia
}

func (t *token) is(text string) bool {
	return t.kind != tokenString && t.kind != tokenChar && t.text == text
}

// end returns the offset just past this token.
func (t *token) end() int {
	return t.pos.Offset + len(t.text)
}

// lexer holds the state of lexing a single file.
type lexer struct {
	filename string
	src      string
	handler  *reporter.Handler

	cursor, line, lineStart int
	tokens                  []token
}

// lex performs lexical analysis on src.
//
// The returned tokens always end in a tokenEOF, whose leading trivia is
// whatever follows the last real token. Errors are sent to handler; lexing
// stops early only if the handler asks it to.
func lex(filename, src string, handler *reporter.Handler) ([]token, error) {
	l := &lexer{filename: filename, src: src, handler: handler, line: 1}
	if strings.HasPrefix(src, "\uFEFF") {
		l.cursor = len("\uFEFF")
		l.lineStart = l.cursor
	}

	for {
		leading := l.trivia(false)
		tok, err := l.token()
		if err != nil {
			return nil, err
		}
		tok.leading = leading
		if tok.kind == tokenEOF {
			l.tokens = append(l.tokens, tok)
			return l.tokens, nil
		}
		tok.trailing = l.trivia(true)
		l.tokens = append(l.tokens, tok)
	}
}

func (l *lexer) done() bool {
	return l.cursor >= len(l.src)
}

func (l *lexer) peek() rune {
	return l.peekAt(0)
}

func (l *lexer) peekAt(n int) rune {
	i := l.cursor + n
	if i >= len(l.src) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.src[i:])
	return r
}

func (l *lexer) pop() rune {
	r, n := utf8.DecodeRuneInString(l.src[l.cursor:])
	l.cursor += n
	if r == '\n' {
		l.line++
		l.lineStart = l.cursor
	}
	return r
}

func (l *lexer) takeWhile(pred func(rune) bool) string {
	start := l.cursor
	for !l.done() && pred(l.peek()) {
		l.pop()
	}
	return l.src[start:l.cursor]
}

func (l *lexer) pos() syntax.Position {
	return l.posAt(l.cursor)
}

func (l *lexer) posAt(offset int) syntax.Position {
	return syntax.Position{
		Filename: l.filename,
		Line:     l.line,
		Col:      offset - l.lineStart + 1,
		Offset:   offset,
	}
}

func (l *lexer) errorf(pos syntax.Position, format string, args ...any) error {
	return l.handler.HandleErrorf(pos, format, args...)
}

// trivia lexes a run of trivia. If sameLine is set, it stops after the first
// line ending.
func (l *lexer) trivia(sameLine bool) []syntax.Trivia {
	var out []syntax.Trivia
	atLineStart := l.onlySpaceBefore()
	for !l.done() {
		start := l.cursor
		column := l.cursor - l.lineStart
		r := l.peek()
		switch {
		case r == '\r' || r == '\n':
			if r == '\r' {
				l.pop()
			}
			if l.peek() == '\n' {
				l.pop()
			}
			out = append(out, syntax.Trivia{Kind: syntax.TriviaEndOfLine, Text: l.src[start:l.cursor]})
			if sameLine {
				return out
			}
			atLineStart = true

		case r == ' ' || r == '\t' || r == '\f' || r == '\v':
			out = append(out, syntax.Whitespace(l.takeWhile(isSpace)))

		case r == '/' && l.peekAt(1) == '/':
			kind := syntax.TriviaLineComment
			if strings.HasPrefix(l.src[l.cursor:], "///") && !strings.HasPrefix(l.src[l.cursor:], "////") {
				kind = syntax.TriviaDocLineComment
			}
			text := l.takeWhile(func(r rune) bool { return r != '\r' && r != '\n' })
			out = append(out, syntax.Trivia{Kind: kind, Text: strings.TrimRight(text, " \t")})
			atLineStart = false

		case r == '/' && l.peekAt(1) == '*':
			kind := syntax.TriviaBlockComment
			if strings.HasPrefix(l.src[l.cursor:], "/**") && !strings.HasPrefix(l.src[l.cursor:], "/**/") {
				kind = syntax.TriviaDocBlockComment
			}
			l.pop()
			l.pop()
			for !l.done() && !strings.HasPrefix(l.src[l.cursor:], "*/") {
				l.pop()
			}
			if l.done() {
				// Keep going; the handler decides whether this is fatal.
				_ = l.errorf(l.posAt(start), "unterminated block comment")
			} else {
				l.pop()
				l.pop()
			}
			out = append(out, syntax.Trivia{Kind: kind, Text: dedent(l.src[start:l.cursor], column)})
			atLineStart = false

		case r == '#' && atLineStart && !sameLine:
			text := l.takeWhile(func(r rune) bool { return r != '\r' && r != '\n' })
			if fields := strings.Fields(strings.TrimPrefix(text, "#")); len(fields) > 0 && fields[0] == "if" {
				l.handler.HandleWarningf(l.posAt(start), "#if is not evaluated; every branch is parsed")
			}
			out = append(out, syntax.Trivia{Kind: syntax.TriviaDirective, Text: strings.TrimRight(text, " \t")})
			atLineStart = false

		default:
			return out
		}
	}
	return out
}

// onlySpaceBefore returns whether the current line holds nothing but
// whitespace before the cursor.
func (l *lexer) onlySpaceBefore() bool {
	return strings.TrimLeft(l.src[l.lineStart:l.cursor], " \t") == ""
}

func (l *lexer) token() (token, error) {
	pos := l.pos()
	tok := token{pos: pos}
	if l.done() {
		tok.kind = tokenEOF
		return tok, nil
	}

	r := l.peek()
	switch {
	case r == '@' && l.peekAt(1) == '"',
		r == '$' && (l.peekAt(1) == '"' || l.peekAt(1) == '@'),
		r == '"':
		return l.string(pos)

	case r == '\'':
		return l.char(pos)

	case r == '@' && isIdentStart(l.peekAt(1)):
		l.pop()
		tok.kind = tokenIdent
		tok.verbatim = true
		tok.text = l.takeWhile(isIdentContinue)
		return tok, nil

	case isIdentStart(r):
		tok.kind = tokenIdent
		tok.text = l.takeWhile(isIdentContinue)
		return tok, nil

	case unicode.IsDigit(r) || (r == '.' && unicode.IsDigit(l.peekAt(1))):
		tok.kind = tokenNumber
		tok.text = l.number()
		return tok, nil
	}

	tok.kind = tokenPunct
	for _, p := range puncts {
		if strings.HasPrefix(l.src[l.cursor:], p) {
			l.cursor += len(p)
			tok.text = p
			return tok, nil
		}
	}

	l.pop()
	tok.text = l.src[pos.Offset:l.cursor]
	return tok, l.errorf(pos, "unrecognized character %q", tok.text)
}

// puncts is every punctuator, longest first. A > is always lexed on its own,
// so that closing type argument lists is never ambiguous; the parser puts
// shift operators back together.
var puncts = []string{
	"??=", "<<=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "++", "--", "+=", "-=", "*=", "/=",
	"%=", "&=", "|=", "^=", "<<", "??", "?.", "::", "->",
	"{", "}", "(", ")", "[", "]", ";", ",", ".", ":", "?", "=", "<", ">", "+",
	"-", "*", "/", "%", "&", "|", "^", "!", "~",
}

func (l *lexer) number() string {
	start := l.cursor
	if l.peek() == '0' && strings.ContainsRune("xXbB", l.peekAt(1)) {
		l.pop()
		l.pop()
		l.takeWhile(func(r rune) bool { return isHexDigit(r) || r == '_' })
	} else {
		l.takeWhile(isDigitOrUnderscore)
		if l.peek() == '.' && unicode.IsDigit(l.peekAt(1)) {
			l.pop()
			l.takeWhile(isDigitOrUnderscore)
		}
		if r := l.peek(); r == 'e' || r == 'E' {
			next := l.peekAt(1)
			if unicode.IsDigit(next) || ((next == '+' || next == '-') && unicode.IsDigit(l.peekAt(2))) {
				l.pop()
				l.pop()
				l.takeWhile(isDigitOrUnderscore)
			}
		}
	}
	// Suffixes: u, l, ul, lu, f, d, m, in any case.
	l.takeWhile(func(r rune) bool { return strings.ContainsRune("uUlLfFdDmM", r) })
	return l.src[start:l.cursor]
}

func (l *lexer) string(pos syntax.Position) (token, error) {
	start := l.cursor
	verbatim, interpolated := false, false
	for {
		switch l.peek() {
		case '@':
			verbatim = true
			l.pop()
			continue
		case '$':
			interpolated = true
			l.pop()
			continue
		}
		break
	}

	tok := token{kind: tokenString, pos: pos}
	if !verbatim && strings.HasPrefix(l.src[l.cursor:], `"""`) {
		// Raw string literal: closed by as many quotes as opened it.
		quotes := l.takeWhile(func(r rune) bool { return r == '"' })
		end := strings.Index(l.src[l.cursor:], quotes)
		if end < 0 {
			l.cursor = len(l.src)
			tok.text = l.src[start:]
			return tok, l.errorf(pos, "unterminated raw string literal")
		}
		for target := l.cursor + end; l.cursor < target; {
			l.pop()
		}
		l.cursor += len(quotes)
		tok.text = l.src[start:l.cursor]
		return tok, nil
	}

	l.pop() // Opening quote.
	depth := 0
	for {
		if l.done() {
			tok.text = l.src[start:]
			return tok, l.errorf(pos, "unterminated string literal")
		}
		r := l.pop()
		switch {
		case r == '\\' && !verbatim:
			if !l.done() {
				l.pop()
			}
		case r == '"' && verbatim && l.peek() == '"':
			l.pop()
		case r == '{' && interpolated:
			if l.peek() == '{' && depth == 0 {
				l.pop()
			} else {
				depth++
			}
		case r == '}' && interpolated && depth > 0:
			depth--
		case r == '"' && depth == 0:
			tok.text = l.src[start:l.cursor]
			return tok, nil
		case r == '\n' && !verbatim && depth == 0:
			tok.text = l.src[start:l.cursor]
			return tok, l.errorf(pos, "newline in string literal")
		}
	}
}

func (l *lexer) char(pos syntax.Position) (token, error) {
	start := l.cursor
	l.pop()
	for !l.done() {
		r := l.pop()
		switch r {
		case '\\':
			if !l.done() {
				l.pop()
			}
		case '\'':
			return token{kind: tokenChar, text: l.src[start:l.cursor], pos: pos}, nil
		case '\n':
			return token{kind: tokenChar, text: l.src[start:l.cursor], pos: pos},
				l.errorf(pos, "newline in character literal")
		}
	}
	return token{kind: tokenChar, text: l.src[start:], pos: pos}, l.errorf(pos, "unterminated character literal")
}

// lexTrivia lexes text that consists only of trivia, such as a rendered
// comment. Text that is not trivia is dropped.
func lexTrivia(text string) []syntax.Trivia {
	l := &lexer{src: text, line: 1, handler: reporter.NewHandler(nil)}
	var out []syntax.Trivia
	for !l.done() {
		next := l.trivia(false)
		if len(next) == 0 {
			l.pop()
			continue
		}
		out = append(out, next...)
	}
	return out
}

// dedent removes up to column leading spaces from every line of text but the
// first, so that a multi-line comment's lines are stored relative to the
// column the comment started at.
func dedent(text string, column int) string {
	if column == 0 || !strings.Contains(text, "\n") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		n := 0
		for n < column && n < len(line) && (line[n] == ' ' || line[n] == '\t') {
			n++
		}
		lines[i] = line[n:]
	}
	return strings.Join(lines, "\n")
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\f' || r == '\v'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Pc, r)
}

func isDigitOrUnderscore(r rune) bool {
	return r == '_' || unicode.IsDigit(r)
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || strings.ContainsRune("abcdefABCDEF", r)
}
