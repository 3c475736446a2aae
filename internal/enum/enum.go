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

// enum generates the boilerplate for the enums and flag sets of the syntax
// tree: the constants, String methods, lookups by name and range checks.
//
// To generate boilerplate for a given file, use
//
//	//go:generate go run github.com/bufbuild/syntaxedit/internal/enum kind.yaml
//
// Each argument is a YAML file containing an array of the Enum type defined
// in this package. The generated code is written next to it, with the .yaml
// extension replaced by .go.
//
//nolint:revive // We use _ in field names to disambiguate them from methods, while still exporting them.
package main

import (
	"debug/buildinfo"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Enum is one generated type.
//
// A plain enum numbers its values from zero. A flag set (Flags is true) gives
// each value its own bit, and the empty set is the Zero value.
type Enum struct {
	Name    string   `yaml:"name"`  // The name of the new type.
	Type    string   `yaml:"type"`  // The underlying type.
	Docs    string   `yaml:"docs"`  // Documentation for the type.
	Total   string   `yaml:"total"` // The name of a "total values" constant.
	Flags   bool     `yaml:"flags"`
	Zero    *Value   `yaml:"zero"` // The empty set of a flag set.
	Methods []Method `yaml:"methods"`
	Values  []Value  `yaml:"values"`
}

// Check reports configuration errors that would produce code that does not
// compile, or does not mean what it looks like.
func (e Enum) Check() error {
	if len(e.Values) == 0 {
		return fmt.Errorf("enum %s has no values", e.Name)
	}

	width, ok := widths[e.Type]
	if !ok {
		return fmt.Errorf("enum %s: unsupported type %q", e.Name, e.Type)
	}
	if e.Flags {
		if e.Total != "" {
			return fmt.Errorf("enum %s: flag sets have no total", e.Name)
		}
		if len(e.Values) > width {
			return fmt.Errorf("enum %s: %d flags do not fit in %s", e.Name, len(e.Values), e.Type)
		}
	} else if e.Zero != nil {
		return fmt.Errorf("enum %s: only flag sets have a zero value", e.Name)
	}

	seen := make(map[string]bool)
	for _, v := range e.Values {
		if seen[v.String()] {
			return fmt.Errorf("enum %s: duplicate string %q", e.Name, v.String())
		}
		seen[v.String()] = true
	}
	for _, m := range e.Methods {
		if _, err := m.Name(); err != nil {
			return fmt.Errorf("enum %s: %w", e.Name, err)
		}
		if e.Flags && len(m.Skip) > 0 {
			return fmt.Errorf("enum %s: flag sets cannot skip values", e.Name)
		}
	}
	return nil
}

// ZeroString is what String returns for the empty set of a flag set.
func (e Enum) ZeroString() string {
	if e.Zero == nil {
		return ""
	}
	return e.Zero.String()
}

var widths = map[string]int{
	"byte": 8, "uint8": 8, "int8": 7,
	"uint16": 16, "int16": 15,
	"uint32": 32, "int32": 31,
	"uint64": 64, "int64": 63,
	"int": 31, "uint": 32,
}

type Value struct {
	Name    string `yaml:"name"`   // The name of the value.
	String_ string `yaml:"string"` // The string representation of this value.
	Docs    string `yaml:"docs"`   // Documentation for the value.
}

func (v Value) String() string {
	if v.String_ == "" {
		return v.Name
	}
	return v.String_
}

type Method struct {
	Kind  MethodKind `yaml:"kind"` // The kind of method to generate.
	Name_ string     `yaml:"name"` // The method's name; optional for some methods.
	Docs_ string     `yaml:"docs"` // Documentation for the method.
	Skip  []string   `yaml:"skip"` // Enum values to ignore in this method.
}

func (m Method) Name() (string, error) {
	if m.Name_ != "" {
		return m.Name_, nil
	}

	switch m.Kind {
	case MethodFromString:
		return "", fmt.Errorf("missing name for kind: %#v", MethodFromString)
	case MethodString:
		return "String", nil
	case MethodValid:
		return "Valid", nil
	default:
		return "", fmt.Errorf("unexpected kind: %#v", m.Kind)
	}
}

func (m Method) Docs() string {
	if m.Docs_ != "" {
		return m.Docs_
	}

	switch m.Kind {
	case MethodString:
		return "String implements [fmt.Stringer]."
	case MethodValid:
		name, _ := m.Name()
		return name + " returns whether v is one of the declared values."
	default:
		return ""
	}
}

type MethodKind string

const (
	MethodString     MethodKind = "string"
	MethodFromString MethodKind = "from-string"
	MethodValid      MethodKind = "valid"
)

//go:embed enum.go.tmpl
var tmplText string

// makeDocs converts a data into doc comments.
func makeDocs(data, indent string) string {
	if data == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

// input is what the template is executed with.
type input struct {
	Binary, Package, Path, Config string
	YAML                          []Enum
}

func load(config string) (*input, error) {
	if filepath.Ext(config) != ".yaml" {
		return nil, errors.New("file argument must end in .yaml")
	}

	in := &input{
		Package: os.Getenv("GOPACKAGE"),
		Config:  config,
		Path:    strings.TrimSuffix(config, ".yaml") + ".go",
	}
	text, err := os.ReadFile(config)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(text, &in.YAML); err != nil {
		return nil, err
	}
	var errs []error
	for i := range in.YAML {
		errs = append(errs, in.YAML[i].Check())
	}
	return in, errors.Join(errs...)
}

func parseTemplate() (*template.Template, error) {
	return template.New("enum.go.tmpl").Funcs(template.FuncMap{
		"makeDocs": makeDocs,
		"contains": slices.Contains[[]string],
	}).Parse(tmplText)
}

func Main(config string) error {
	in, err := load(config)
	if err != nil {
		return err
	}

	info, err := buildinfo.ReadFile(os.Args[0])
	if err != nil {
		return err
	}
	in.Binary = info.Path

	tmpl, err := parseTemplate()
	if err != nil {
		return err
	}

	out, err := os.Create(in.Path)
	if err != nil {
		return err
	}
	defer out.Close()
	return tmpl.ExecuteTemplate(out, "enum.go.tmpl", in)
}

func main() {
	var failed bool
	for _, config := range os.Args[1:] {
		if err := Main(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
