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

// Package interval provides an index of nested intervals, queried by the
// point they contain.
//
// The builder package uses it to map a byte offset in printed source back to
// the declarations whose text covers that offset. The spans of printed
// declarations never partially overlap: each is either disjoint from another
// or contains it.
package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Entry is one interval in a [Nested], with its value.
type Entry[K Endpoint, V any] struct {
	Start, End K // The range, inclusive.
	Value      V

	parent *Entry[K, V] // The innermost entry containing this one.
}

// Contains returns whether an entry contains a given point.
func (e *Entry[K, V]) Contains(point K) bool {
	return e.Start <= point && point <= e.End
}

// Nested is a collection of intervals that are each either disjoint from or
// nested within one another. Intervals must be inserted outside-in and left
// to right, as when walking a tree in pre-order.
//
// A zero value is ready to use.
type Nested[K Endpoint, V any] struct {
	// The innermost entry starting at each start point.
	starts btree.Map[K, *Entry[K, V]]
	// The entries containing the most recently inserted one, outermost
	// first, and that entry itself.
	open []*Entry[K, V]
	len  int
}

// Insert adds an interval with the given associated value. Both endpoints are
// inclusive.
//
// Panics if start > end, if the interval starts before the previous one, or
// if it overlaps an interval without being nested in it.
func (m *Nested[K, V]) Insert(start, end K, value V) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}
	for len(m.open) > 0 && m.open[len(m.open)-1].End < start {
		m.open = m.open[:len(m.open)-1]
	}

	entry := &Entry[K, V]{Start: start, End: end, Value: value}
	if len(m.open) > 0 {
		parent := m.open[len(m.open)-1]
		if start < parent.Start {
			panic(fmt.Sprintf("interval: [%#v, %#v] inserted out of order", start, end))
		}
		if end > parent.End {
			panic(fmt.Sprintf("interval: [%#v, %#v] overlaps [%#v, %#v]", start, end, parent.Start, parent.End))
		}
		entry.parent = parent
	} else if last, _, ok := m.starts.Max(); ok && start < last {
		panic(fmt.Sprintf("interval: [%#v, %#v] inserted out of order", start, end))
	}

	m.starts.Set(start, entry)
	m.open = append(m.open, entry)
	m.len++
}

// Len returns the number of intervals inserted.
func (m *Nested[K, V]) Len() int {
	return m.len
}

// Containing returns an iterator over the entries that contain point,
// innermost first.
func (m *Nested[K, V]) Containing(point K) iter.Seq[*Entry[K, V]] {
	return func(yield func(*Entry[K, V]) bool) {
		// The last interval to start at or before point is either the
		// innermost one containing it, or nested in it.
		var entry *Entry[K, V]
		m.starts.Descend(point, func(_ K, e *Entry[K, V]) bool {
			entry = e
			return false
		})
		for ; entry != nil; entry = entry.parent {
			if entry.Contains(point) && !yield(entry) {
				return
			}
		}
	}
}

// Innermost returns the value of the innermost interval that contains point.
func (m *Nested[K, V]) Innermost(point K) (V, bool) {
	for entry := range m.Containing(point) {
		return entry.Value, true
	}
	var zero V
	return zero, false
}
