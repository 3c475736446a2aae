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
	"errors"
	"fmt"

	"github.com/bufbuild/syntaxedit/seq"
)

var (
	// ErrUnsupportedKind is returned when a node cannot be given a handle,
	// or cannot be added to a collection, because of its kind.
	ErrUnsupportedKind = errors.New("builder: unsupported declaration kind")
	// ErrNotImplemented is returned by operations a language backend does
	// not support.
	ErrNotImplemented = errors.New("builder: not implemented")
	// ErrOutOfRange is matched by every [*RangeError].
	ErrOutOfRange = errors.New("builder: index out of range")
	// ErrInvalidStyle is returned when creating a comment with a style that
	// is not one of the [comment.Style] values.
	ErrInvalidStyle = errors.New("builder: invalid comment style")
	// ErrDuplicateName is returned when renaming a type parameter to the
	// name of another one.
	ErrDuplicateName = errors.New("builder: duplicate name")
)

// RangeError is returned by indexed operations on collections when the
// index is out of bounds.
type RangeError struct {
	Index, Len int
}

// Error implements [error].
func (e *RangeError) Error() string {
	return fmt.Sprintf("builder: index %d out of range [0:%d]", e.Index, e.Len)
}

// Is makes a RangeError match [ErrOutOfRange].
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// checkIndex returns a [*RangeError] unless 0 <= i < n, or 0 <= i <= n if
// inclusive is set.
func checkIndex(i, n int, inclusive bool) error {
	if !seq.InRange(i, n, inclusive) {
		return &RangeError{Index: i, Len: n}
	}
	return nil
}
