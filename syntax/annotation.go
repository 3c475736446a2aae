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

package syntax

import (
	"fmt"
	"sync/atomic"
)

var annotationIDs atomic.Uint64

// Annotation is an opaque marker that can be attached to a node and survives
// any edit that copies the node, such as [Node.WithText] or [Replace] of one
// of its descendants.
//
// Annotations are compared by value; every call to [NewAnnotation] returns a
// distinct one.
type Annotation struct {
	kind string
	id   uint64
}

// NewAnnotation returns a new, unique annotation of the given kind.
func NewAnnotation(kind string) Annotation {
	return Annotation{kind: kind, id: annotationIDs.Add(1)}
}

// Kind returns the kind this annotation was created with.
func (a Annotation) Kind() string {
	return a.kind
}

// IsZero returns whether this is the zero annotation.
func (a Annotation) IsZero() bool {
	return a == Annotation{}
}

// String implements [fmt.Stringer].
func (a Annotation) String() string {
	return fmt.Sprintf("%s#%d", a.kind, a.id)
}

// Annotated returns the first node in root's subtree, in pre-order, that
// carries a.
func Annotated(root *Node, a Annotation) *Node {
	for n := range Descendants(root) {
		if n.HasAnnotation(a) {
			return n
		}
	}
	return nil
}
