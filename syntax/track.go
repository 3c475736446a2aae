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

// TrackingKind is the kind of the annotations used by [Track].
const TrackingKind = "track"

// Track returns a copy of root in which each of nodes carries a tracking
// annotation, along with the annotation assigned to each of them, in order.
//
// A node that already carries a tracking annotation keeps it and no new one is
// assigned. Nodes that are not in root's subtree get the zero annotation.
func Track(root *Node, nodes ...*Node) (*Node, []Annotation) {
	out := make([]Annotation, len(nodes))
	pending := make(map[*Node]Annotation)
	for i, n := range nodes {
		if a, ok := TrackingAnnotation(n); ok {
			out[i] = a
			continue
		}
		a, ok := pending[n]
		if !ok {
			a = NewAnnotation(TrackingKind)
			pending[n] = a
		}
		out[i] = a
	}
	if len(pending) == 0 {
		return root, out
	}

	found := 0
	root = ReplaceAll(root, func(original, current *Node) *Node {
		a, ok := pending[original]
		if !ok {
			return current
		}
		found++
		return current.WithAnnotations(a)
	})
	if found < len(pending) {
		for i, n := range nodes {
			if _, missing := pending[n]; missing && Annotated(root, out[i]) == nil {
				out[i] = Annotation{}
			}
		}
	}
	return root, out
}

// TrackingAnnotation returns the tracking annotation on n, if it has one.
func TrackingAnnotation(n *Node) (Annotation, bool) {
	if n == nil {
		return Annotation{}, false
	}
	for _, a := range n.annotations {
		if a.kind == TrackingKind {
			return a, true
		}
	}
	return Annotation{}, false
}

// ClearTracking returns n with every tracking annotation removed from it and
// its descendants.
func ClearTracking(n *Node) *Node {
	return ReplaceAll(n, func(_, current *Node) *Node {
		return current.WithoutAnnotations(TrackingKind)
	})
}

// TrackingIndex returns a map from every tracking annotation in root's subtree
// to the node carrying it.
func TrackingIndex(root *Node) map[Annotation]*Node {
	index := make(map[Annotation]*Node)
	for n := range Descendants(root) {
		for _, a := range n.annotations {
			if a.kind == TrackingKind {
				if _, dup := index[a]; !dup {
					index[a] = n
				}
			}
		}
	}
	return index
}
