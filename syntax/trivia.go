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

package syntax

import "strings"

// Trivia is a piece of source text that carries no syntactic meaning, such
// as whitespace or a comment.
type Trivia struct {
	Kind TriviaKind
	Text string
}

// Whitespace returns whitespace trivia.
func Whitespace(text string) Trivia { return Trivia{Kind: TriviaWhitespace, Text: text} }

// EndOfLine returns end-of-line trivia.
func EndOfLine() Trivia { return Trivia{Kind: TriviaEndOfLine, Text: "\n"} }

// IsComment returns whether this trivia is any kind of comment.
func (t Trivia) IsComment() bool {
	switch t.Kind {
	case TriviaLineComment, TriviaBlockComment, TriviaDocLineComment, TriviaDocBlockComment:
		return true
	default:
		return false
	}
}

// IsDoc returns whether this trivia is a documentation comment.
func (t Trivia) IsDoc() bool {
	return t.Kind == TriviaDocLineComment || t.Kind == TriviaDocBlockComment
}

// String returns the trivia's text.
func (t Trivia) String() string {
	return t.Text
}

// TriviaText concatenates the text of a run of trivia.
func TriviaText(trivia []Trivia) string {
	var b strings.Builder
	for _, t := range trivia {
		b.WriteString(t.Text)
	}
	return b.String()
}

// ClearTrivia returns n without leading or trailing trivia.
func ClearTrivia(n *Node) *Node {
	if n == nil || (len(n.leading) == 0 && len(n.trailing) == 0) {
		return n
	}
	m := n.clone()
	m.leading = nil
	m.trailing = nil
	return m
}
