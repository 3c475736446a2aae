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
	"fmt"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/syntaxedit/builder"
	"github.com/bufbuild/syntaxedit/comment"
	"github.com/bufbuild/syntaxedit/csharp"
	"github.com/bufbuild/syntaxedit/internal/corpora"
	"github.com/bufbuild/syntaxedit/syntax"
)

func TestEdits(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:      "testdata/edits",
		Extension: "yaml",
		Outputs: []corpora.Output{
			{Extension: "print"},
		},
		Test: func(t *testing.T, path, text string) []string {
			var testCase struct {
				Source string `yaml:"source"`
				Edits  []Edit `yaml:"edits"`
			}
			if err := yaml.Unmarshal([]byte(text), &testCase); err != nil {
				t.Fatalf("failed to parse test case %q: %v", path, err)
			}

			cu, err := builder.Parse(csharp.Language, path, testCase.Source)
			if err != nil {
				t.Fatalf("failed to parse source of %q: %v", path, err)
			}
			for _, edit := range testCase.Edits {
				if err := applyEdit(cu, edit); err != nil {
					t.Fatalf("failed to apply edit in %q: %v", path, err)
				}
			}
			return []string{cu.String()}
		},
	}
	corpus.Run(t)
}

// Edit is one edit to apply to a parsed file.
type Edit struct {
	Kind   string `yaml:"kind"`   // Edit operation type
	Target string `yaml:"target"` // Dotted path to a declaration, e.g. "N.C.M"
	Name   string `yaml:"name"`   // Name for a new or renamed declaration
	Type   string `yaml:"type"`   // Source text of a type
	Value  string `yaml:"value"`  // Source text of an expression or statement
}

func applyEdit(cu *builder.CompilationUnit, edit Edit) error {
	target, err := find(cu, edit.Target)
	if err != nil {
		return err
	}

	switch edit.Kind {
	case "rename":
		named, ok := target.(interface{ SetName(string) })
		if !ok {
			return fmt.Errorf("%v cannot be renamed", target.Kind())
		}
		named.SetName(edit.Name)
	case "add_class":
		container, ok := target.(interface{ AddClass(string) *builder.Type })
		if !ok {
			return fmt.Errorf("%v cannot contain classes", target.Kind())
		}
		container.AddClass(edit.Name)
	case "add_using":
		cu.AddNamespaceImport(edit.Name)
	case "add_method":
		ty, err := as[*builder.Type](target)
		if err != nil {
			return err
		}
		_, err = ty.AddMethod(edit.Name, typeExpr(edit.Type))
		return err
	case "add_field":
		ty, err := as[*builder.Type](target)
		if err != nil {
			return err
		}
		var value builder.Expression
		if edit.Value != "" {
			value = builder.ParseExpression(edit.Value)
		}
		_, err = ty.AddField(edit.Name, typeExpr(edit.Type), value)
		return err
	case "add_parameter":
		m, err := as[*builder.Method](target)
		if err != nil {
			return err
		}
		_, err = m.AddParameter(edit.Name, typeExpr(edit.Type))
		return err
	case "add_statement":
		m, err := as[*builder.Method](target)
		if err != nil {
			return err
		}
		return m.Statements().AddText(edit.Value)
	case "add_comment":
		_, err := target.Comments().Add(edit.Value, comment.StyleSingleLineBlock)
		return err
	case "add_doc_comment":
		_, err := target.Comments().Add(edit.Value, comment.StyleDocumentation)
		return err
	case "make_public":
		ty, ok := target.(interface{ SetAccessibility(syntax.Accessibility) })
		if !ok {
			return fmt.Errorf("%v has no accessibility", target.Kind())
		}
		ty.SetAccessibility(syntax.AccessibilityPublic)
	case "add_type_parameter":
		ty, err := as[*builder.Type](target)
		if err != nil {
			return err
		}
		tp := ty.TypeParameters().Add(edit.Name)
		if edit.Type != "" {
			return tp.Constraints().Add(typeExpr(edit.Type))
		}
	case "delete":
		parent := target.Parent()
		if parent == nil {
			return fmt.Errorf("cannot delete the root")
		}
		members, ok := parent.(interface{ Members() *builder.List[builder.Builder] })
		if !ok || !members.Members().Remove(target) {
			return fmt.Errorf("cannot delete %v", target.Kind())
		}
	default:
		return fmt.Errorf("unknown edit kind: %s", edit.Kind)
	}
	return nil
}

// find finds a declaration by dotted path, e.g. "N.C.M". An empty path is
// the whole file.
func find(cu *builder.CompilationUnit, path string) (builder.Builder, error) {
	var b builder.Builder = cu
	if path == "" {
		return b, nil
	}
	for _, name := range strings.Split(path, ".") {
		var next builder.Builder
		for _, c := range builder.Find[builder.Builder](b, name) {
			if c.Parent() == b {
				next = c
				break
			}
		}
		if next == nil {
			return nil, fmt.Errorf("declaration %q not found", path)
		}
		b = next
	}
	return b, nil
}

func as[T builder.Builder](b builder.Builder) (T, error) {
	t, ok := b.(T)
	if !ok {
		return t, fmt.Errorf("%v is not a %T", b.Kind(), t)
	}
	return t, nil
}

func typeExpr(text string) builder.TypeExpression {
	if text == "" {
		return builder.TypeExpression{}
	}
	n, err := csharp.ParseType(text)
	if err != nil {
		panic(err)
	}
	return builder.TypeNode(n)
}
