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

	"github.com/bufbuild/syntaxedit/comment"
	"github.com/bufbuild/syntaxedit/syntax"
)

// CommentList is a live view of the comment blocks before a declaration.
//
// A block is a run of adjacent comment lines of the same kind; see
// [CommentEditor]. Blocks are not tracked: a [*Comment] refers to a block by
// its position, which moves when blocks are inserted before it through this
// list.
type CommentList struct {
	owner *handle
	items []*Comment
}

func (l *CommentList) editor() CommentEditor {
	return l.owner.Context().lang.Comments
}

// sync makes items as long as the number of blocks in the current node.
func (l *CommentList) sync() []*Comment {
	n := l.editor().CommentCount(l.owner.CurrentNode())
	for len(l.items) < n {
		l.items = append(l.items, &Comment{list: l})
	}
	for _, c := range l.items[n:] {
		c.list = nil
	}
	l.items = l.items[:n]
	return l.items
}

// Len returns the number of comment blocks.
func (l *CommentList) Len() int {
	return len(l.sync())
}

// At returns the comment block at index i.
func (l *CommentList) At(i int) (*Comment, error) {
	items := l.sync()
	if err := checkIndex(i, len(items), false); err != nil {
		return nil, err
	}
	return items[i], nil
}

// All returns an iterator over the comment blocks.
func (l *CommentList) All() iter.Seq2[int, *Comment] {
	return slices.All(slices.Clone(l.sync()))
}

// Index returns the position of c, or -1.
func (l *CommentList) Index(c *Comment) int {
	return slices.Index(l.sync(), c)
}

// Add adds a comment block after the existing ones, directly before the
// declaration.
func (l *CommentList) Add(text string, style comment.Style) (*Comment, error) {
	return l.Insert(l.Len(), text, style)
}

// Insert inserts a comment block before the one at index i. Inserting at
// [CommentList.Len] is the same as [CommentList.Add].
func (l *CommentList) Insert(i int, text string, style comment.Style) (*Comment, error) {
	items := l.sync()
	if err := checkIndex(i, len(items), true); err != nil {
		return nil, err
	}
	if !style.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStyle, style)
	}

	before := len(items)
	l.owner.update(func(_ Generator, n *syntax.Node) *syntax.Node {
		return l.editor().InsertComment(n, i, text, style)
	})
	c := &Comment{list: l}
	l.items = slices.Insert(l.items, i, c)

	// The new block may have merged with a neighbor.
	if l.editor().CommentCount(l.owner.CurrentNode()) == before {
		l.items = slices.Delete(l.items, i, i+1)
		c.list = nil
		if i == len(l.items) {
			i--
		}
		return l.items[i], nil
	}
	return c, nil
}

// Remove removes the comment block c.
//
// Not every language supports this; those that do not return
// [ErrNotImplemented].
func (l *CommentList) Remove(c *Comment) error {
	i := l.Index(c)
	if i < 0 {
		return fmt.Errorf("builder: removing a comment that is not in this list")
	}
	n, err := l.editor().RemoveComment(l.owner.CurrentNode(), i)
	if err != nil {
		return err
	}
	l.owner.update(func(Generator, *syntax.Node) *syntax.Node { return n })
	l.items = slices.Delete(l.items, i, i+1)
	c.list = nil
	return nil
}

// Comment is one comment block of a [CommentList].
type Comment struct {
	list *CommentList
}

func (c *Comment) index() int {
	if c.list == nil {
		panic("builder: comment was removed")
	}
	i := c.list.Index(c)
	if i < 0 {
		panic("builder: comment was removed")
	}
	return i
}

// Text returns the text of the block, without comment delimiters.
func (c *Comment) Text() string {
	i := c.index()
	return c.list.editor().CommentText(c.list.owner.CurrentNode(), i)
}

// SetText replaces the text of the block, keeping its style.
func (c *Comment) SetText(text string) {
	i := c.index()
	c.list.owner.update(func(_ Generator, n *syntax.Node) *syntax.Node {
		return c.list.editor().WithCommentText(n, i, text)
	})
}

// Style returns the style of the block.
func (c *Comment) Style() comment.Style {
	i := c.index()
	return c.list.editor().CommentStyle(c.list.owner.CurrentNode(), i)
}

// SetStyle rewrites the block in another style, keeping its text.
func (c *Comment) SetStyle(style comment.Style) error {
	if !style.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidStyle, style)
	}
	i := c.index()
	c.list.owner.update(func(_ Generator, n *syntax.Node) *syntax.Node {
		return c.list.editor().WithCommentStyle(n, i, style)
	})
	return nil
}
