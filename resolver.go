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

package syntaxedit

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
)

// Accessor opens the file at path for reading.
type Accessor func(path string) (io.ReadCloser, error)

// SourceAccessorFromFS returns an Accessor that opens files in fsys. Paths are
// cleaned and made relative, as [fs.FS] requires.
func SourceAccessorFromFS(fsys fs.FS) Accessor {
	return func(p string) (io.ReadCloser, error) {
		return fsys.Open(strings.TrimPrefix(path.Clean("/"+p), "/"))
	}
}

// SourceAccessorFromMap returns an Accessor that serves the given sources,
// keyed by path. Any other path is reported as not existing.
func SourceAccessorFromMap(srcs map[string]string) Accessor {
	return func(p string) (io.ReadCloser, error) {
		src, ok := srcs[p]
		if !ok {
			return nil, &fs.PathError{Op: "open", Path: p, Err: os.ErrNotExist}
		}
		return io.NopCloser(strings.NewReader(src)), nil
	}
}

// CompositeAccessor tries each of its Accessors in turn, and returns the
// first file that exists.
type CompositeAccessor []Accessor

// Open opens the file at path with the first Accessor that has it. If none
// do, returns the first error that was not [os.ErrNotExist], if any.
func (c CompositeAccessor) Open(p string) (io.ReadCloser, error) {
	if len(c) == 0 {
		return nil, &fs.PathError{Op: "open", Path: p, Err: os.ErrNotExist}
	}
	var firstErr error
	for _, acc := range c {
		r, err := acc(p)
		if err == nil {
			return r, nil
		}
		if firstErr == nil || (errors.Is(firstErr, os.ErrNotExist) && !errors.Is(err, os.ErrNotExist)) {
			firstErr = err
		}
	}
	return nil, firstErr
}
