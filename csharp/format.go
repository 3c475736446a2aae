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

// Format normalizes the trivia of n and every node under it to the layout
// [Printer] prints: whitespace is dropped, every comment and directive sits on
// its own line, and runs of blank lines collapse to one. Trailing trivia
// keeps only comments.
//
// Annotations, including tracking annotations, are preserved.
func (Printer) Format(n *syntax.Node) *syntax.Node {
	return syntax.ReplaceAll(n, func(_, current *syntax.Node) *syntax.Node {
		leading, trailing := current.Leading(), current.Trailing()
		if len(leading) == 0 && len(trailing) == 0 {
			return current
		}
		return current.
			WithLeading(normalizeLeading(leading)...).
			WithTrailing(normalizeTrailing(trailing)...)
	})
}

// normalizeLeading rewrites trivia so that each comment is followed by a
// line ending, and a blank line is a single line ending on its own.
func normalizeLeading(trivia []syntax.Trivia) []syntax.Trivia {
	var out []syntax.Trivia
	lineHasContent := false
	blank := false
	for _, t := range trivia {
		switch {
		case t.Kind == syntax.TriviaEndOfLine:
			if !lineHasContent {
				blank = true
			}
			lineHasContent = false
		case t.Kind == syntax.TriviaWhitespace:
		default:
			if blank {
				out = append(out, syntax.EndOfLine())
			}
			blank = false
			lineHasContent = true
			out = append(out, t, syntax.EndOfLine())
		}
	}
	if blank {
		out = append(out, syntax.EndOfLine())
	}
	return out
}

func normalizeTrailing(trivia []syntax.Trivia) []syntax.Trivia {
	var out []syntax.Trivia
	for _, t := range trivia {
		if t.IsComment() || t.Kind == syntax.TriviaDirective {
			out = append(out, t)
		}
	}
	return out
}
