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

package csharp

import (
	"github.com/bufbuild/syntaxedit/builder"
	"github.com/bufbuild/syntaxedit/reporter"
	"github.com/bufbuild/syntaxedit/syntax"
)

// Language is the C# backend, registered with the builder package under
// [Name].
var Language = &builder.Language{
	Name:      Name,
	Generator: Generator{},
	Comments:  CommentEditor{},
	Parser:    Parser{},
	Printer:   Printer{},
}

func init() {
	builder.Register(Language)
}

// Parser adapts this package's parsing functions to [builder.Parser].
type Parser struct{}

var _ builder.Parser = Parser{}

// ParseFile implements [builder.Parser].
func (Parser) ParseFile(filename, text string, rep reporter.Reporter) (*syntax.Node, error) {
	return ParseFile(filename, text, rep)
}

// ParseExpression implements [builder.ExpressionParser].
func (Parser) ParseExpression(text string) (*syntax.Node, error) {
	return ParseExpression(text)
}

// ParseStatement implements [builder.ExpressionParser].
func (Parser) ParseStatement(text string) (*syntax.Node, error) {
	return ParseStatement(text)
}
