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

// Package reporter contains the types used for reporting errors found while
// parsing source files.
package reporter

import (
	"errors"
	"fmt"

	"github.com/bufbuild/syntaxedit/syntax"
)

// ErrInvalidSource is a sentinel error that is returned by parsers when errors
// are encountered, but the configured ErrorReporter always returns nil.
var ErrInvalidSource = errors.New("parse failed: invalid source")

// ErrorWithPos is an error about a source file that includes information
// about the location in the file that caused the error.
//
// The value of Error() contains both the position and the underlying error.
// The value of Unwrap() is only the underlying error.
type ErrorWithPos interface {
	error
	GetPosition() syntax.Position
	Unwrap() error
}

// Error wraps err with a position.
func Error(pos syntax.Position, err error) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: err}
}

// Errorf is like [Error], but formats the underlying error.
func Errorf(pos syntax.Position, format string, args ...any) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithPos struct {
	underlying error
	pos        syntax.Position
}

func (e errorWithPos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

// GetPosition implements [ErrorWithPos].
func (e errorWithPos) GetPosition() syntax.Position {
	return e.pos
}

// Unwrap implements [ErrorWithPos].
func (e errorWithPos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithPos{}
