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

package builder

import (
	"fmt"
	"iter"
	"slices"

	"github.com/bufbuild/syntaxedit/seq"
	"github.com/bufbuild/syntaxedit/syntax"
)

// StatementList is a live view of the statements in the body of a method or
// accessor.
//
// Statements are plain nodes rather than handles. Statements written through
// a StatementList lose their leading and trailing trivia, and the printer
// lays them out afresh.
type StatementList struct {
	owner *handle
}

// statements returns the current statements.
func (l *StatementList) statements() []*syntax.Node {
	current := l.owner.CurrentNode()
	table := l.owner.Context().statementTable()
	if stmts, ok := table.Get(current); ok {
		return stmts
	}
	stmts := l.owner.gen().Statements(current)
	table.Add(current, stmts)
	return stmts
}

// write replaces the statements with stmts.
func (l *StatementList) write(stmts []*syntax.Node) {
	l.owner.update(func(g Generator, n *syntax.Node) *syntax.Node {
		return g.WithStatements(n, stmts)
	})
}

// clean strips inbound statements of trivia and tracking.
func (l *StatementList) clean(stmts []*syntax.Node) []*syntax.Node {
	g := l.owner.gen()
	out := make([]*syntax.Node, len(stmts))
	for i, s := range stmts {
		if s == nil {
			panic("builder: nil statement")
		}
		out[i] = g.ClearTrivia(syntax.ClearTracking(s))
	}
	return out
}

// Len returns the number of statements.
func (l *StatementList) Len() int {
	return len(l.statements())
}

// At returns the statement at index i.
func (l *StatementList) At(i int) (*syntax.Node, error) {
	stmts := l.statements()
	if err := checkIndex(i, len(stmts), false); err != nil {
		return nil, err
	}
	return stmts[i], nil
}

// All returns an iterator over the statements. The list is read once, when
// iteration starts.
func (l *StatementList) All() iter.Seq2[int, *syntax.Node] {
	return slices.All(l.statements())
}

// Set replaces the statement at index i.
func (l *StatementList) Set(i int, stmt *syntax.Node) error {
	stmts := l.statements()
	if err := checkIndex(i, len(stmts), false); err != nil {
		return err
	}
	l.write(seq.Replaced(stmts, i, l.clean([]*syntax.Node{stmt})[0]))
	return nil
}

// Add appends a statement.
func (l *StatementList) Add(stmt *syntax.Node) {
	l.AddRange(stmt)
}

// AddRange appends statements, in order.
func (l *StatementList) AddRange(stmts ...*syntax.Node) {
	if len(stmts) == 0 {
		return
	}
	l.write(seq.Appended(l.statements(), l.clean(stmts)...))
}

// AddText parses a statement in the tree's language and appends it.
func (l *StatementList) AddText(text string) error {
	stmt, err := l.owner.Context().lang.Parser.ParseStatement(text)
	if err != nil {
		return fmt.Errorf("builder: parsing statement %q: %w", text, err)
	}
	l.Add(stmt)
	return nil
}

// Insert inserts a statement before the one at index i. Inserting at
// [StatementList.Len] appends.
func (l *StatementList) Insert(i int, stmt *syntax.Node) error {
	return l.InsertRange(i, stmt)
}

// InsertRange inserts statements, in order, before the one at index i.
func (l *StatementList) InsertRange(i int, stmts ...*syntax.Node) error {
	current := l.statements()
	if err := checkIndex(i, len(current), true); err != nil {
		return err
	}
	if len(stmts) == 0 {
		return nil
	}
	l.write(seq.Inserted(current, i, l.clean(stmts)...))
	return nil
}

// RemoveAt removes the statement at index i.
func (l *StatementList) RemoveAt(i int) error {
	current := l.statements()
	if err := checkIndex(i, len(current), false); err != nil {
		return err
	}
	l.write(seq.Deleted(current, i))
	return nil
}

// Clear removes every statement, leaving an empty body.
func (l *StatementList) Clear() {
	l.write(nil)
}
