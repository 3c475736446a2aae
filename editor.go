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
	"context"
	"fmt"
	"io"
	"io/fs"
	"runtime"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/syntaxedit/builder"
	"github.com/bufbuild/syntaxedit/csharp"
	"github.com/bufbuild/syntaxedit/internal/textdiff"
	"github.com/bufbuild/syntaxedit/reporter"
)

// EditFunc edits one file. It must confine its use of cu to the calling
// goroutine.
type EditFunc func(ctx context.Context, path string, cu *builder.CompilationUnit) error

// Editor applies an EditFunc to many files in parallel.
type Editor struct {
	// Opens the files to edit. This field is the only required field.
	Accessor Accessor
	// The language of the files. Defaults to C#.
	Language *builder.Language
	// Prints edited files. Defaults to the language's printer.
	Printer builder.Printer
	// The maximum number of files to edit at once. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// Receives syntax errors and warnings from every file, concurrently; see
	// [reporter.Collector]. If unspecified, parsing a file stops at its first
	// error, which fails the whole edit.
	Reporter reporter.Reporter
	// Logs progress at debug level and failures at error level. Defaults to
	// a no-op logger.
	Logger *zap.Logger
}

// Result is the outcome of editing one file.
type Result struct {
	Path string
	// The text of the file before and after editing.
	Before, After string
	// Whether the edit function changed the file. A file the edit function
	// did not touch is not reprinted, so After is Before.
	Changed bool
	// A unified diff from Before to After; empty if nothing changed.
	Diff string
}

// Edit opens each of paths, parses it, and calls fn with it. Returns one
// Result per path, in order.
//
// The first error, from opening, parsing or fn, cancels the edits still in
// progress and is returned.
func (e *Editor) Edit(ctx context.Context, paths []string, fn EditFunc) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	par := e.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}
	logger := e.logger()
	logger.Debug("editing files", zap.Int("files", len(paths)), zap.Int("parallelism", par))

	sem := semaphore.NewWeighted(int64(par))
	group, ctx := errgroup.WithContext(ctx)
	results := make([]Result, len(paths))
	for i, path := range paths {
		group.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			r, err := e.editFile(ctx, path, fn)
			if err != nil {
				logger.Error("edit failed", zap.String("path", path), zap.Error(err))
				return err
			}
			logger.Debug("edited file",
				zap.String("path", path),
				zap.Bool("changed", r.Changed),
				zap.Int("bytes", len(r.After)),
			)
			results[i] = r
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Editor) editFile(ctx context.Context, path string, fn EditFunc) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	rc, err := e.Accessor(path)
	if err != nil {
		return Result{}, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	before := string(data)

	lang := e.language()
	root, err := lang.Parser.ParseFile(path, before, e.Reporter)
	if err != nil {
		return Result{}, err
	}
	b, err := builder.NewWithLanguage(lang, root)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	cu, ok := b.(*builder.CompilationUnit)
	if !ok {
		return Result{}, fmt.Errorf("%s: %w: %v", path, builder.ErrUnsupportedKind, b.Kind())
	}

	if err := fn(ctx, path, cu); err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}

	r := Result{Path: path, Before: before, After: before}
	if !cu.Context().Edited() {
		return r, nil
	}
	r.After = e.printer().Print(cu.CurrentNode())
	r.Changed = r.After != before
	if r.Changed {
		r.Diff, err = textdiff.Unified("a/"+path, "b/"+path, before, r.After, 3)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	return r, nil
}

// Glob returns the paths in fsys that match a doublestar pattern, such as
// "src/**/*.cs", sorted.
func (e *Editor) Glob(fsys fs.FS, pattern string) ([]string, error) {
	paths, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)
	e.logger().Debug("expanded glob", zap.String("pattern", pattern), zap.Int("files", len(paths)))
	return paths, nil
}

func (e *Editor) language() *builder.Language {
	if e.Language == nil {
		return csharp.Language
	}
	return e.Language
}

func (e *Editor) printer() builder.Printer {
	if e.Printer == nil {
		return e.language().Printer
	}
	return e.Printer
}

func (e *Editor) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}
