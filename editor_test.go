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

package syntaxedit_test

import (
	"context"
	"errors"
	"io/fs"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bufbuild/syntaxedit"
	"github.com/bufbuild/syntaxedit/builder"
	"github.com/bufbuild/syntaxedit/reporter"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var sources = map[string]string{
	"a.cs": "namespace Demo\n{\n    class Greeter\n    {\n        int count;\n    }\n}\n",
	"b.cs": "class Other\n{\n}\n",
	"c.cs": "class Greeter\n{\n}\n",
}

func renameGreeter(_ context.Context, _ string, cu *builder.CompilationUnit) error {
	for _, typ := range builder.Find[*builder.Type](cu, "Greeter") {
		typ.SetName("Welcomer")
	}
	return nil
}

func TestEdit(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	core, logs := observer.New(zapcore.DebugLevel)
	editor := &syntaxedit.Editor{
		Accessor:       syntaxedit.SourceAccessorFromMap(sources),
		MaxParallelism: 2,
		Logger:         zap.New(core),
	}

	results, err := editor.Edit(context.Background(), []string{"a.cs", "b.cs", "c.cs"}, renameGreeter)
	require.NoError(t, err)
	require.Len(t, results, 3)

	a := results[0]
	assert.Equal("a.cs", a.Path)
	assert.True(a.Changed)
	assert.Equal(sources["a.cs"], a.Before)
	assert.Contains(a.After, "class Welcomer")
	assert.NotContains(a.After, "Greeter")
	assert.Contains(a.Diff, "--- a/a.cs")
	assert.Contains(a.Diff, "+++ b/a.cs")
	assert.Contains(a.Diff, "+    class Welcomer")

	// Untouched files are not reprinted.
	b := results[1]
	assert.Equal("b.cs", b.Path)
	assert.False(b.Changed)
	assert.Equal(sources["b.cs"], b.After)
	assert.Empty(b.Diff)

	assert.True(results[2].Changed)
	assert.Contains(results[2].After, "class Welcomer")

	assert.Equal(3, logs.FilterMessage("edited file").Len())
	assert.Equal(1, logs.FilterMessage("editing files").Len())
	assert.Zero(logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestEditReadOnly(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	source := "class   A { int   x; }\n"
	editor := &syntaxedit.Editor{
		Accessor: syntaxedit.SourceAccessorFromMap(map[string]string{"a.cs": source}),
	}
	var found int
	results, err := editor.Edit(context.Background(), []string{"a.cs"},
		func(_ context.Context, _ string, cu *builder.CompilationUnit) error {
			found = len(builder.Find[*builder.Field](cu, ""))
			builder.Find[*builder.Type](cu, "Nope")
			return nil
		})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(1, found)
	assert.False(results[0].Changed)
	assert.Equal(source, results[0].After)
	assert.Empty(results[0].Diff)
}

func TestEditNoPaths(t *testing.T) {
	t.Parallel()

	editor := &syntaxedit.Editor{Accessor: syntaxedit.SourceAccessorFromMap(nil)}
	results, err := editor.Edit(context.Background(), nil, renameGreeter)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEditErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		core, logs := observer.New(zapcore.ErrorLevel)
		editor := &syntaxedit.Editor{
			Accessor: syntaxedit.SourceAccessorFromMap(sources),
			Logger:   zap.New(core),
		}
		_, err := editor.Edit(context.Background(), []string{"a.cs", "missing.cs"}, renameGreeter)
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Equal(t, 1, logs.FilterField(zap.String("path", "missing.cs")).Len())
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()
		editor := &syntaxedit.Editor{
			Accessor: syntaxedit.SourceAccessorFromMap(map[string]string{
				"bad.cs": "class {",
			}),
		}
		_, err := editor.Edit(context.Background(), []string{"bad.cs"}, renameGreeter)
		require.Error(t, err)
		var pos reporter.ErrorWithPos
		require.ErrorAs(t, err, &pos)
		assert.Equal(t, "bad.cs", pos.GetPosition().Filename)
	})

	t.Run("reporter sees every error", func(t *testing.T) {
		t.Parallel()
		var collector reporter.Collector
		editor := &syntaxedit.Editor{
			Accessor: syntaxedit.SourceAccessorFromMap(map[string]string{
				"bad.cs":  "class A { void M() { goto x; } }\nclass B { }\n",
				"good.cs": "#if DEBUG\n#endif\nclass C { }\n",
			}),
			Reporter: &collector,
		}
		_, err := editor.Edit(context.Background(), []string{"good.cs"}, renameGreeter)
		require.NoError(t, err)
		_, err = editor.Edit(context.Background(), []string{"bad.cs"}, renameGreeter)
		assert.ErrorIs(t, err, reporter.ErrInvalidSource)
		require.Len(t, collector.Errors(), 1)
		assert.Equal(t, "bad.cs", collector.Errors()[0].GetPosition().Filename)
		require.Len(t, collector.Warnings(), 1)
		assert.Equal(t, "good.cs", collector.Warnings()[0].GetPosition().Filename)
	})

	t.Run("edit function fails", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		var calls atomic.Int32
		editor := &syntaxedit.Editor{
			Accessor:       syntaxedit.SourceAccessorFromMap(sources),
			MaxParallelism: 1,
		}
		_, err := editor.Edit(context.Background(), []string{"a.cs", "b.cs", "c.cs"},
			func(context.Context, string, *builder.CompilationUnit) error {
				calls.Add(1)
				return boom
			})
		require.ErrorIs(t, err, boom)
		assert.ErrorContains(t, err, ".cs: boom")
		assert.GreaterOrEqual(t, calls.Load(), int32(1))
	})
}

func TestEditCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	editor := &syntaxedit.Editor{Accessor: syntaxedit.SourceAccessorFromMap(sources)}
	_, err := editor.Edit(ctx, []string{"a.cs", "b.cs"}, renameGreeter)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGlob(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	fsys := fstest.MapFS{
		"src/b.cs":          {Data: []byte(sources["b.cs"])},
		"src/a.cs":          {Data: []byte(sources["a.cs"])},
		"src/nested/c.cs":   {Data: []byte(sources["c.cs"])},
		"src/nested/readme": {Data: []byte("hi")},
		"other.cs":          {Data: []byte("")},
	}

	editor := &syntaxedit.Editor{Accessor: syntaxedit.SourceAccessorFromFS(fsys)}
	paths, err := editor.Glob(fsys, "src/**/*.cs")
	require.NoError(t, err)
	assert.Equal([]string{"src/a.cs", "src/b.cs", "src/nested/c.cs"}, paths)

	results, err := editor.Edit(context.Background(), paths, renameGreeter)
	require.NoError(t, err)
	assert.False(results[1].Changed)
	assert.True(results[2].Changed)

	_, err = editor.Glob(fsys, "src/[")
	assert.Error(err)
}
