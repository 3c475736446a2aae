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

// TypeParameterList is a live view of the type parameters of a generic
// type, method or delegate.
//
// Type parameters are identified by name. The same name always yields the
// same [*TypeParameter], including across renames made through it.
type TypeParameterList struct {
	owner  *handle
	params map[string]*TypeParameter
}

// names returns the current type parameter names.
func (l *TypeParameterList) names() []string {
	current := l.owner.CurrentNode()
	table := l.owner.Context().typeParameterTable()
	if names, ok := table.Get(current); ok {
		return names
	}
	names := l.owner.Context().lang.Comments.TypeParameterNames(current)
	table.Add(current, names)
	return names
}

// param returns the TypeParameter for name, which must be declared.
func (l *TypeParameterList) param(name string) *TypeParameter {
	if l.params == nil {
		l.params = make(map[string]*TypeParameter)
	}
	tp, ok := l.params[name]
	if !ok {
		tp = &TypeParameter{list: l, name: name}
		l.params[name] = tp
	}
	return tp
}

func (l *TypeParameterList) write(names []string) {
	l.owner.update(func(g Generator, n *syntax.Node) *syntax.Node {
		return g.WithTypeParameters(n, names...)
	})
}

// Len returns the number of type parameters.
func (l *TypeParameterList) Len() int {
	return len(l.names())
}

// At returns the type parameter at index i.
func (l *TypeParameterList) At(i int) (*TypeParameter, error) {
	names := l.names()
	if err := checkIndex(i, len(names), false); err != nil {
		return nil, err
	}
	return l.param(names[i]), nil
}

// Get returns the type parameter with the given name.
func (l *TypeParameterList) Get(name string) (*TypeParameter, bool) {
	if !l.Contains(name) {
		return nil, false
	}
	return l.param(name), true
}

// Contains returns whether a type parameter with the given name is declared.
func (l *TypeParameterList) Contains(name string) bool {
	return slices.Contains(l.names(), name)
}

// Index returns the position of tp, or -1.
func (l *TypeParameterList) Index(tp *TypeParameter) int {
	if tp.list != l {
		return -1
	}
	return slices.Index(l.names(), tp.name)
}

// All returns an iterator over the type parameters. The list is read once,
// when iteration starts.
func (l *TypeParameterList) All() iter.Seq2[int, *TypeParameter] {
	return func(yield func(int, *TypeParameter) bool) {
		for i, name := range l.names() {
			if !yield(i, l.param(name)) {
				return
			}
		}
	}
}

// Add declares a type parameter after the existing ones. If name is already
// declared, nothing changes and the existing type parameter is returned.
func (l *TypeParameterList) Add(name string) *TypeParameter {
	_ = l.InsertRange(l.Len(), name)
	return l.param(name)
}

// AddRange declares type parameters, in order, after the existing ones.
// Names that are already declared are skipped.
func (l *TypeParameterList) AddRange(names ...string) {
	_ = l.InsertRange(l.Len(), names...)
}

// Insert declares a type parameter before the one at index i. Inserting at
// [TypeParameterList.Len] appends. If name is already declared, nothing
// changes.
func (l *TypeParameterList) Insert(i int, name string) (*TypeParameter, error) {
	if err := l.InsertRange(i, name); err != nil {
		return nil, err
	}
	return l.param(name), nil
}

// InsertRange is like [TypeParameterList.Insert] for several names.
func (l *TypeParameterList) InsertRange(i int, names ...string) error {
	current := l.names()
	if err := checkIndex(i, len(current), true); err != nil {
		return err
	}
	var fresh []string
	for _, name := range names {
		if !slices.Contains(current, name) && !slices.Contains(fresh, name) {
			fresh = append(fresh, name)
		}
	}
	if len(fresh) == 0 {
		return nil
	}
	l.write(seq.Inserted(current, i, fresh...))
	return nil
}

// Remove removes tp, along with its constraints. Returns false if tp is not
// declared.
func (l *TypeParameterList) Remove(tp *TypeParameter) bool {
	if l.Index(tp) < 0 {
		return false
	}
	tp.SetSpecialConstraints(syntax.ConstraintNone)
	tp.Constraints().Clear()

	l.write(seq.Deleted(l.names(), l.Index(tp)))
	delete(l.params, tp.name)
	tp.list = nil
	return true
}

// RemoveName removes the type parameter with the given name.
func (l *TypeParameterList) RemoveName(name string) bool {
	tp, ok := l.Get(name)
	return ok && l.Remove(tp)
}

// RemoveAt removes the type parameter at index i.
func (l *TypeParameterList) RemoveAt(i int) error {
	tp, err := l.At(i)
	if err != nil {
		return err
	}
	l.Remove(tp)
	return nil
}

// Clear removes every type parameter.
func (l *TypeParameterList) Clear() {
	for _, name := range slices.Clone(l.names()) {
		l.RemoveName(name)
	}
}

// TypeParameter is one type parameter of a [TypeParameterList].
type TypeParameter struct {
	list        *TypeParameterList
	name        string
	constraints *ConstraintList
}

// Name returns the type parameter's name.
func (tp *TypeParameter) Name() string {
	return tp.name
}

// owner returns the handle of the declaration tp belongs to. Panics if tp
// was removed.
func (tp *TypeParameter) owner() *handle {
	if tp.list == nil {
		panic(fmt.Sprintf("builder: type parameter %s was removed", tp.name))
	}
	return tp.list.owner
}

// SetName renames the type parameter and its constraint clause, in one edit.
// Uses of the type parameter elsewhere are not renamed.
func (tp *TypeParameter) SetName(name string) error {
	h := tp.owner()
	if name == tp.name {
		return nil
	}
	if tp.list.Contains(name) {
		return fmt.Errorf("%w: type parameter %s", ErrDuplicateName, name)
	}
	old := tp.name
	h.update(func(_ Generator, n *syntax.Node) *syntax.Node {
		return h.Context().lang.Comments.WithTypeParameterNameChanged(n, old, name)
	})
	delete(tp.list.params, old)
	tp.list.params[name] = tp
	tp.name = name
	return nil
}

// SpecialConstraints returns the class, struct and new() constraints on the
// type parameter.
func (tp *TypeParameter) SpecialConstraints() syntax.SpecialConstraint {
	h := tp.owner()
	return h.Context().lang.Comments.SpecialConstraints(h.CurrentNode(), tp.name)
}

// SetSpecialConstraints replaces the class, struct and new() constraints on
// the type parameter, keeping its type constraints.
func (tp *TypeParameter) SetSpecialConstraints(special syntax.SpecialConstraint) {
	tp.writeConstraints(special, tp.Constraints().types())
}

// Constraints returns the type constraints on the type parameter.
func (tp *TypeParameter) Constraints() *ConstraintList {
	if tp.constraints == nil {
		tp.constraints = &ConstraintList{param: tp}
	}
	return tp.constraints
}

func (tp *TypeParameter) writeConstraints(special syntax.SpecialConstraint, types []*syntax.Node) {
	h := tp.owner()
	h.update(func(g Generator, n *syntax.Node) *syntax.Node {
		return g.WithTypeConstraint(n, tp.name, special, types...)
	})
}

// ConstraintList is a live view of the type constraints on a type
// parameter: the base types and interfaces it must implement.
type ConstraintList struct {
	param *TypeParameter
}

func (l *ConstraintList) types() []*syntax.Node {
	h := l.param.owner()
	return h.Context().lang.Comments.TypeConstraints(h.CurrentNode(), l.param.name)
}

// write replaces the type constraints, keeping the special constraints as
// they are now.
func (l *ConstraintList) write(types []*syntax.Node) {
	l.param.writeConstraints(l.param.SpecialConstraints(), types)
}

// Len returns the number of type constraints.
func (l *ConstraintList) Len() int {
	return len(l.types())
}

// At returns the type constraint at index i.
func (l *ConstraintList) At(i int) (*syntax.Node, error) {
	types := l.types()
	if err := checkIndex(i, len(types), false); err != nil {
		return nil, err
	}
	return types[i], nil
}

// All returns an iterator over the type constraints.
func (l *ConstraintList) All() iter.Seq2[int, *syntax.Node] {
	return slices.All(l.types())
}

// Set replaces the type constraint at index i.
func (l *ConstraintList) Set(i int, t TypeExpression) error {
	types := l.types()
	if err := checkIndex(i, len(types), false); err != nil {
		return err
	}
	nodes, err := typeNodes(l.param.owner().Language(), []TypeExpression{t})
	if err != nil {
		return err
	}
	l.write(seq.Replaced(types, i, nodes[0]))
	return nil
}

// Add appends a type constraint.
func (l *ConstraintList) Add(t TypeExpression) error {
	return l.AddRange(t)
}

// AddRange appends type constraints, in order.
func (l *ConstraintList) AddRange(types ...TypeExpression) error {
	return l.InsertRange(l.Len(), types...)
}

// Insert inserts a type constraint before the one at index i. Inserting at
// [ConstraintList.Len] appends.
func (l *ConstraintList) Insert(i int, t TypeExpression) error {
	return l.InsertRange(i, t)
}

// InsertRange inserts type constraints, in order, before the one at index i.
func (l *ConstraintList) InsertRange(i int, types ...TypeExpression) error {
	current := l.types()
	if err := checkIndex(i, len(current), true); err != nil {
		return err
	}
	nodes, err := typeNodes(l.param.owner().Language(), types)
	if err != nil {
		return err
	}
	if len(nodes) == 0 {
		return nil
	}
	l.write(seq.Inserted(current, i, nodes...))
	return nil
}

// RemoveAt removes the type constraint at index i.
func (l *ConstraintList) RemoveAt(i int) error {
	current := l.types()
	if err := checkIndex(i, len(current), false); err != nil {
		return err
	}
	l.write(seq.Deleted(current, i))
	return nil
}

// Clear removes every type constraint, keeping the special constraints.
func (l *ConstraintList) Clear() {
	l.write(nil)
}
