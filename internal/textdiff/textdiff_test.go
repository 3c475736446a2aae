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

package textdiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/syntaxedit/internal/textdiff"
)

func TestUnified(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	same, err := textdiff.Unified("a", "b", "x\n", "x\n", 1)
	require.NoError(t, err)
	assert.Empty(same)

	diff, err := textdiff.Unified("a.cs", "b.cs", "class C\n{\n}\n", "class D\n{\n}\n", 1)
	require.NoError(t, err)
	assert.Equal("--- a.cs\n+++ b.cs\n@@ -1,2 +1,2 @@\n-class C\n+class D\n {\n", diff)

	assert.Equal("\033[1;91m-x\033[0m\n\033[1;92m+y\033[0m\n z", textdiff.Colorize("-x\n+y\n z"))
}
