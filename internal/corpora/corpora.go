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

// Package corpora runs golden-file tests: each file in a directory is one test
// case, and the outputs it is expected to produce sit next to it.
package corpora

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/bufbuild/syntaxedit/internal/textdiff"
)

// RefreshEnv is the environment variable consulted when [Corpus.Refresh] is
// not set. Its value is a glob, relative to the calling test's directory,
// matching the test cases whose outputs should be rewritten instead of
// checked. For example:
//
//	SYNTAXEDIT_REFRESH='testdata/print/**' go test ./csharp
const RefreshEnv = "SYNTAXEDIT_REFRESH"

// Corpus is a directory of test cases.
type Corpus struct {
	// The directory holding the test cases, relative to the file that calls
	// [Corpus.Run].
	Root string

	// The environment variable naming the cases to refresh. Defaults to
	// [RefreshEnv].
	Refresh string

	// The file extension (without a dot) of the files that define test cases,
	// such as "cs". Cases are found in Root and every directory beneath it.
	Extension string

	// The outputs of each case, in the order Test returns them.
	Outputs []Output

	// Test runs one case, given its path relative to the calling test's
	// directory and its contents.
	Test func(t *testing.T, path, text string) []string
}

// Output is one output of a test case.
type Output struct {
	// Appended to the name of a case's file to find the file the output is
	// checked against: for a case "foo.cs" and an extension of "print", the
	// file is "foo.cs.print". A missing file expects an empty output.
	Extension string

	// Compares outputs. If nil, they must be equal byte for byte.
	Compare Compare
}

// Compare compares an output against what was expected. Returns an empty
// string if they match, and a description of the difference otherwise.
type Compare func(got, want string) string

// Run runs every case in the corpus as a subtest of t.
func (c Corpus) Run(t *testing.T) {
	t.Helper()
	dir := callerDir()
	root := filepath.Join(dir, c.Root)

	cases, err := doublestar.Glob(os.DirFS(root), "**/*."+c.Extension, doublestar.WithFilesOnly())
	if err != nil {
		t.Fatalf("corpora: searching %q: %v", root, err)
	}
	if len(cases) == 0 {
		t.Fatalf("corpora: no *.%s files in %q", c.Extension, root)
	}

	refresh := c.refresh(t)
	for _, name := range cases {
		rel := path.Join(filepath.ToSlash(c.Root), name)
		file := filepath.Join(root, filepath.FromSlash(name))

		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("corpora: reading %q: %v", file, err)
			}

			got := c.Test(t, rel, string(text))
			if len(got) != len(c.Outputs) {
				t.Fatalf("corpora: test returned %d outputs, want %d", len(got), len(c.Outputs))
			}

			update := refresh != "" && matches(refresh, rel)
			for i, out := range c.Outputs {
				golden := file + "." + out.Extension
				if update {
					write(t, golden, got[i])
				} else {
					out.check(t, golden, got[i])
				}
			}
		})
	}
}

// refresh returns the refresh glob, if there is one. Refreshing fails the
// test, so that it cannot be left on by accident.
func (c Corpus) refresh(t *testing.T) string {
	t.Helper()
	env := c.Refresh
	if env == "" {
		env = RefreshEnv
	}
	glob := os.Getenv(env)
	if glob == "" {
		return ""
	}
	if !doublestar.ValidatePattern(glob) {
		t.Fatalf("corpora: invalid glob in %s: %q", env, glob)
	}
	t.Logf("corpora: refreshing outputs because %s=%s", env, glob)
	t.Fail()
	return glob
}

func matches(glob, name string) bool {
	ok, _ := doublestar.Match(glob, name)
	return ok
}

func (o Output) check(t *testing.T, golden, got string) {
	t.Helper()
	want, err := os.ReadFile(golden)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		t.Errorf("corpora: reading %q: %v", golden, err)
		return
	}

	compare := o.Compare
	if compare == nil {
		compare = diff
	}
	if msg := compare(got, string(want)); msg != "" {
		t.Errorf("corpora: output does not match %q:\n%s", golden, msg)
	}
}

// write replaces a golden file. An empty output deletes it.
func write(t *testing.T, golden, got string) {
	t.Helper()
	if got == "" {
		if err := os.Remove(golden); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("corpora: deleting %q: %v", golden, err)
		}
		return
	}
	if err := os.WriteFile(golden, []byte(got), 0o644); err != nil {
		t.Errorf("corpora: writing %q: %v", golden, err)
	}
}

func diff(got, want string) string {
	d, err := textdiff.Unified("want", "got", want, got, 2)
	if err != nil {
		return err.Error()
	}
	return textdiff.Colorize(d)
}

// callerDir returns the directory of the file that called [Corpus.Run].
func callerDir() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
