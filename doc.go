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

// Package syntaxedit edits source files through handles on their
// declarations.
//
// The packages under this module are layered as follows:
//  1. syntax is an immutable syntax tree with annotations that survive edits.
//  2. builder is the editing layer: a Context holds the current version of a
//     tree, and handles such as *builder.Type and *builder.Method find their
//     declaration in it again after every edit.
//  3. csharp is a language backend: it parses and prints C#, and tells the
//     builder package how C# declarations are shaped.
//
// This package ties them together for batch jobs. An [Editor] opens a set of
// files, hands each of them to an edit function as a
// [*builder.CompilationUnit], and reports what changed. Files are edited in
// parallel, each in its own Context.
//
// # Accessors
//
// An [Accessor] is how the editor opens the files it is asked to edit. Use
// [SourceAccessorFromFS] to read from a file system, and
// [SourceAccessorFromMap] to edit in-memory sources, for example in tests.
//
// # Editor
//
// A minimal Editor, that reads files relative to the current working
// directory, looks like this:
//
//	editor := syntaxedit.Editor{
//		Accessor: syntaxedit.SourceAccessorFromFS(os.DirFS(".")),
//	}
//	results, err := editor.Edit(ctx, paths, func(ctx context.Context, path string, cu *builder.CompilationUnit) error {
//		for _, t := range builder.Find[*builder.Type](cu, "") {
//			t.SetAccessibility(syntax.AccessibilityPublic)
//		}
//		return nil
//	})
//
// Results carry the new text of each file and a unified diff; the Editor
// never writes files itself.
package syntaxedit
