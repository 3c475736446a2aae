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

package reporter

import (
	"cmp"
	"errors"
	"slices"
	"sync"

	"github.com/bufbuild/syntaxedit/syntax"
)

// ErrorReporter is responsible for reporting the given error. If the reporter
// returns a non-nil error, parsing stops and that error is returned. If it
// returns nil, parsing continues so that more errors can be found, and the
// parse as a whole fails with [ErrInvalidSource].
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. Warnings
// are for things that do not cause a parse to fail.
type WarningReporter func(ErrorWithPos)

// Reporter receives the errors and warnings found while parsing.
//
// A Reporter given to a batch edit is shared by every file, and must be safe
// to call from multiple goroutines.
type Reporter interface {
	Error(ErrorWithPos) error
	Warning(ErrorWithPos)
}

// NewReporter builds a [Reporter] from callbacks. A nil errs fails on the
// first error; a nil warnings drops warnings.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return funcs{errs, warnings}
}

type funcs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r funcs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r funcs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Collector is a [Reporter] that records everything reported to it, and lets
// every parse run to completion. It is safe for concurrent use.
//
// The zero value is ready to use.
type Collector struct {
	mu       sync.Mutex
	errs     []ErrorWithPos
	warnings []ErrorWithPos
}

var _ Reporter = (*Collector)(nil)

// Error implements [Reporter].
func (c *Collector) Error(err ErrorWithPos) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, err)
	return nil
}

// Warning implements [Reporter].
func (c *Collector) Warning(err ErrorWithPos) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, err)
}

// Errors returns the errors reported so far, ordered by file and position.
func (c *Collector) Errors() []ErrorWithPos {
	c.mu.Lock()
	defer c.mu.Unlock()
	return sorted(c.errs)
}

// Warnings returns the warnings reported so far, ordered by file and
// position.
func (c *Collector) Warnings() []ErrorWithPos {
	c.mu.Lock()
	defer c.mu.Unlock()
	return sorted(c.warnings)
}

// Err joins every error reported so far, in order, or returns nil if there
// are none.
func (c *Collector) Err() error {
	errs := c.Errors()
	joined := make([]error, len(errs))
	for i, err := range errs {
		joined[i] = err
	}
	return errors.Join(joined...)
}

func sorted(errs []ErrorWithPos) []ErrorWithPos {
	out := slices.Clone(errs)
	slices.SortStableFunc(out, func(a, b ErrorWithPos) int {
		pa, pb := a.GetPosition(), b.GetPosition()
		return cmp.Or(
			cmp.Compare(pa.Filename, pb.Filename),
			cmp.Compare(pa.Offset, pb.Offset),
		)
	})
	return out
}

// Handler is used by a single parse to report errors and warnings. It
// remembers the error that stopped the parse, if any.
type Handler struct {
	reporter Reporter
	reported bool
	err      error
}

// NewHandler returns a handler that reports to rep. A nil rep fails on the
// first error.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf reports a positioned error. Returns the error that should stop
// the parse, if any. Once the parse has been stopped, later errors are not
// reported.
func (h *Handler) HandleErrorf(pos syntax.Position, format string, args ...any) error {
	if h.err == nil {
		h.reported = true
		h.err = h.reporter.Error(Errorf(pos, format, args...))
	}
	return h.err
}

// HandleWarningf reports a positioned warning.
func (h *Handler) HandleWarningf(pos syntax.Position, format string, args ...any) {
	h.reporter.Warning(Errorf(pos, format, args...))
}

// Error returns the error that stopped the parse, or [ErrInvalidSource] if
// errors were reported but the reporter let the parse continue.
func (h *Handler) Error() error {
	if h.reported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}
