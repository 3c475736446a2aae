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

import "fmt"

// Position is a location in a source file.
type Position struct {
	Filename string
	// Line and Col are 1-based; Col counts bytes.
	Line, Col int
	// Offset is the 0-based byte offset from the start of the file.
	Offset int
}

// String implements [fmt.Stringer].
func (p Position) String() string {
	if p.Line <= 0 || p.Col <= 0 {
		return p.Filename
	}
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Col)
}

// Span is a half-open range of byte offsets, [Start, End).
type Span struct {
	Start, End int
}

// Contains returns whether offset is inside this span. An empty span contains
// its start.
func (s Span) Contains(offset int) bool {
	if s.Start == s.End {
		return offset == s.Start
	}
	return s.Start <= offset && offset < s.End
}

// Len returns the length of this span.
func (s Span) Len() int {
	return s.End - s.Start
}
