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

// Package seq provides sequence helpers for the collections of the builder
// package.
//
// Those collections are views over a syntax tree that changes under them, so
// they cannot hand out slices they own. Reads go through [Indexer]. Writes
// build a new slice with [Replaced], [Inserted] or [Deleted], none of which
// modify their input: it may be shared with a cache, or with an older
// version of the tree.
package seq

import "iter"

// Indexer is a type that can be indexed like a slice.
type Indexer[T any] interface {
	// Len returns the length of this sequence.
	Len() int

	// At returns the element at the given index.
	//
	// Should panic if idx < 0 or idx >= Len().
	At(idx int) T
}

// View is a read-only [Indexer] over a slice.
type View[T any] []T

// Len implements [Indexer].
func (v View[T]) Len() int { return len(v) }

// At implements [Indexer].
func (v View[T]) At(idx int) T { return v[idx] }

// Values returns an iterator over the elements in seq, like [slices.Values].
func Values[T any](seq Indexer[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		n := seq.Len()
		for i := range n {
			if !yield(seq.At(i)) {
				return
			}
		}
	}
}

// ToSlice copies an [Indexer] into a slice.
func ToSlice[T any](seq Indexer[T]) []T {
	out := make([]T, seq.Len())
	for i := range out {
		out[i] = seq.At(i)
	}
	return out
}

// InRange returns whether idx indexes a sequence of length n. If end is set,
// n itself is also in range, as a position to insert at.
func InRange(idx, n int, end bool) bool {
	if end {
		return idx >= 0 && idx <= n
	}
	return idx >= 0 && idx < n
}

// Replaced returns a copy of s with s[idx] set to v.
func Replaced[S ~[]E, E any](s S, idx int, v E) S {
	out := make(S, len(s))
	copy(out, s)
	out[idx] = v
	return out
}

// Inserted returns a copy of s with vs inserted before s[idx]. An idx of
// len(s) appends.
func Inserted[S ~[]E, E any](s S, idx int, vs ...E) S {
	out := make(S, 0, len(s)+len(vs))
	out = append(out, s[:idx]...)
	out = append(out, vs...)
	return append(out, s[idx:]...)
}

// Appended returns a copy of s with vs added at the end.
func Appended[S ~[]E, E any](s S, vs ...E) S {
	return Inserted(s, len(s), vs...)
}

// Deleted returns a copy of s without s[idx].
func Deleted[S ~[]E, E any](s S, idx int) S {
	out := make(S, 0, len(s)-1)
	out = append(out, s[:idx]...)
	return append(out, s[idx+1:]...)
}
