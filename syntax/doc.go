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

// Package syntax provides an immutable syntax tree shared by language
// backends and the builder layer.
//
// A [Node] is never modified once constructed. Edits produce new trees that
// share unchanged subtrees with the old one; see [Replace], [Remove] and
// [InsertAfter]. Because edits replace nodes, code that wants to find "the
// same" node in a later version of a tree attaches an [Annotation] to it
// first; [Track] does this for a batch of nodes.
package syntax

//go:generate go run github.com/bufbuild/syntaxedit/internal/enum kind.yaml declaration.yaml
