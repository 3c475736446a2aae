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

package main

import (
	"bytes"
	"go/format"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, yaml, err string
	}{
		{
			name: "ok",
			yaml: `{name: K, type: byte, methods: [{kind: string}, {kind: valid}], values: [{name: A}, {name: B}]}`,
		},
		{
			name: "empty",
			yaml: `{name: K, type: byte}`,
			err:  "enum K has no values",
		},
		{
			name: "bad type",
			yaml: `{name: K, type: float64, values: [{name: A}]}`,
			err:  `unsupported type "float64"`,
		},
		{
			name: "too many flags",
			yaml: `{name: K, type: int8, flags: true, values: [{name: A}, {name: B}, {name: C}, {name: D}, {name: E}, {name: F}, {name: G}, {name: H}]}`,
			err:  "8 flags do not fit in int8",
		},
		{
			name: "flags with total",
			yaml: `{name: K, type: byte, flags: true, total: kCount, values: [{name: A}]}`,
			err:  "flag sets have no total",
		},
		{
			name: "zero without flags",
			yaml: `{name: K, type: byte, zero: {name: KNone}, values: [{name: A}]}`,
			err:  "only flag sets have a zero value",
		},
		{
			name: "duplicate string",
			yaml: `{name: K, type: byte, values: [{name: A, string: x}, {name: B, string: x}]}`,
			err:  `duplicate string "x"`,
		},
		{
			name: "unnamed lookup",
			yaml: `{name: K, type: byte, methods: [{kind: from-string}], values: [{name: A}]}`,
			err:  "missing name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var e Enum
			require.NoError(t, yaml.Unmarshal([]byte(tt.yaml), &e))
			err := e.Check()
			if tt.err == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.err)
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var enums []Enum
	require.NoError(t, yaml.Unmarshal([]byte(`
- name: Color
  type: byte
  total: colorCount
  methods:
  - kind: string
  - {kind: from-string, name: ParseColor}
  - kind: valid
  values:
  - {name: Red, string: red, docs: The color red.}
  - {name: Blue, string: blue}
- name: Mode
  type: uint8
  flags: true
  zero: {name: ModeNone, string: none}
  methods:
  - kind: string
  - kind: valid
  values:
  - {name: ModeRead, string: r}
  - {name: ModeWrite, string: w}
`), &enums))

	tmpl, err := parseTemplate()
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&out, "enum.go.tmpl", &input{
		Binary:  "enum",
		Package: "colors",
		Config:  "colors.yaml",
		YAML:    enums,
	}))

	src, err := format.Source(out.Bytes())
	require.NoError(t, err, out.String())
	text := string(src)

	assert.Contains(text, "// Code generated by enum. DO NOT EDIT.")
	assert.Contains(text, "Red Color = iota")
	assert.Contains(text, "colorCount = iota")
	assert.Contains(text, `Red:  "red",`)
	assert.Contains(text, `"blue": Blue,`)
	assert.Contains(text, "return int(v) >= 0 && int(v) < 2")

	assert.Contains(text, "ModeRead Mode = 1 << iota")
	assert.Contains(text, "ModeNone Mode = 0")
	assert.Contains(text, `return "none"`)
	assert.Contains(text, "return v>>2 == 0")
}

func TestMakeDocs(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Empty(makeDocs("", "\t"))
	assert.Equal("\t// One.\n\t//\n\t// Two.\n", makeDocs("One.\n\nTwo.\n", "\t"))
}
