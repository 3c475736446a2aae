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

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/syntaxedit/builder"
	"github.com/bufbuild/syntaxedit/comment"
	"github.com/bufbuild/syntaxedit/csharp"
	"github.com/bufbuild/syntaxedit/syntax"
)

func TestBuildFile(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	lang := csharp.Language

	cu := builder.CreateCompilationUnit(lang)
	cu.AddNamespaceImport("System")
	ns := cu.AddNamespace("Demo")

	greeter := builder.CreateClass(lang, "Greeter")
	greeter.SetAccessibility(syntax.AccessibilityPublic)
	greet, err := greeter.AddMethod("Greet", builder.Special(syntax.SpecialTypeString))
	require.NoError(t, err)
	_, err = greet.AddParameter("name", builder.Special(syntax.SpecialTypeString))
	require.NoError(t, err)
	require.NoError(t, greet.Statements().AddText(`return "Hello, " + name;`))
	_, err = greeter.Comments().Add("Says hello.", comment.StyleDocumentation)
	require.NoError(t, err)

	added, err := ns.Types().AddBuilder(greeter)
	require.NoError(t, err)
	assert.Same(ns, added.Parent())
	assert.Same(cu.Context(), added.Context())

	assert.Equal(
		"using System;\n"+
			"namespace Demo\n{\n"+
			"    /// Says hello.\n"+
			"    public class Greeter\n    {\n"+
			"        string Greet(string name)\n        {\n"+
			"            return \"Hello, \" + name;\n"+
			"        }\n"+
			"    }\n"+
			"}\n",
		cu.String(),
	)

	// The copy is independent of the handle it was made from.
	greeter.SetName("Unused")
	assert.Equal("Greeter", added.Name())

	// Reparsing the output gives the same tree back.
	again, err := builder.Parse(lang, "demo.cs", cu.String())
	require.NoError(t, err)
	assert.Equal(cu.String(), again.String())
	assert.Len(builder.Find[*builder.Method](again, "Greet"), 1)
}
