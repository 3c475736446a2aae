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

package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/syntaxedit/internal/interval"
)

func TestInnermost(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// A file, a class inside of it, two members inside the class, and an
	// attribute that starts where its member does.
	var m interval.Nested[int, string]
	m.Insert(0, 99, "file")
	m.Insert(10, 80, "class")
	m.Insert(20, 29, "a")
	m.Insert(30, 39, "b")
	m.Insert(30, 33, "b.attr")
	m.Insert(90, 95, "trailer")
	assert.Equal(6, m.Len())

	for _, tt := range []struct {
		offset int
		want   string
	}{
		{0, "file"},
		{10, "class"},
		{25, "a"},
		{30, "b.attr"},
		{34, "b"},
		{40, "class"},
		{85, "file"},
		{90, "trailer"},
		{99, "file"},
	} {
		got, ok := m.Innermost(tt.offset)
		assert.True(ok, "offset %d", tt.offset)
		assert.Equal(tt.want, got, "offset %d", tt.offset)
	}

	_, ok := m.Innermost(100)
	assert.False(ok)
	_, ok = m.Innermost(-1)
	assert.False(ok)
}

func TestContaining(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var m interval.Nested[int, string]
	m.Insert(0, 9, "x")
	m.Insert(20, 49, "y")
	m.Insert(25, 30, "z")

	var got []string
	for e := range m.Containing(27) {
		assert.True(e.Contains(27))
		got = append(got, e.Value)
	}
	assert.Equal([]string{"z", "y"}, got)

	got = nil
	for e := range m.Containing(15) {
		got = append(got, e.Value)
	}
	assert.Empty(got)
}

func TestInsertPanics(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var m interval.Nested[int, string]
	assert.Panics(func() { m.Insert(5, 4, "backwards") })

	m.Insert(10, 20, "a")
	assert.Panics(func() { m.Insert(15, 25, "overlap") })
	assert.Panics(func() { m.Insert(5, 8, "before") })

	m.Insert(30, 40, "b")
	assert.Panics(func() { m.Insert(25, 28, "out of order") })
}
