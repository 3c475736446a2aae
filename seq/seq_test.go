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

package seq_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/syntaxedit/seq"
)

func TestView(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	squares := seq.View[int]{0, 1, 4, 9}
	assert.Equal(4, squares.Len())
	assert.Equal([]int{0, 1, 4, 9}, seq.ToSlice(squares))
	assert.Equal([]int{0, 1}, slices.Collect(func(yield func(int) bool) {
		for v := range seq.Values(squares) {
			if v > 1 || !yield(v) {
				return
			}
		}
	}))

	assert.Panics(func() { squares.At(4) })
	assert.Panics(func() { squares.At(-1) })
}

func TestInRange(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(seq.InRange(0, 1, false))
	assert.False(seq.InRange(1, 1, false))
	assert.True(seq.InRange(1, 1, true))
	assert.False(seq.InRange(2, 1, true))
	assert.False(seq.InRange(-1, 1, true))
	assert.False(seq.InRange(0, 0, false))
}

func TestCopyOnWrite(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// A slice with spare capacity, as a cache might hold; appending to it in
	// place would be visible to the next append.
	shared := make([]string, 3, 8)
	copy(shared, []string{"a", "b", "c"})

	assert.Equal([]string{"a", "x", "c"}, seq.Replaced(shared, 1, "x"))
	assert.Equal([]string{"x", "y", "a", "b", "c"}, seq.Inserted(shared, 0, "x", "y"))
	assert.Equal([]string{"a", "b", "x", "c"}, seq.Inserted(shared, 2, "x"))
	assert.Equal([]string{"a", "b", "c", "x"}, seq.Appended(shared, "x"))
	assert.Equal([]string{"a", "c"}, seq.Deleted(shared, 1))
	assert.Equal([]string{"b", "c"}, seq.Deleted(shared, 0))

	assert.Equal([]string{"a", "b", "c"}, shared)
	assert.Equal([]string{"a", "b", "c", ""}, shared[:4])

	assert.Equal([]int{1}, seq.Inserted([]int(nil), 0, 1))
}
