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

package builder

import (
	"sync"

	"github.com/bufbuild/syntaxedit/comment"
	"github.com/bufbuild/syntaxedit/reporter"
	"github.com/bufbuild/syntaxedit/syntax"
)

// Generator knows the shape of one language's declarations.
//
// Every method is a pure function: it never modifies the nodes it is given,
// and returns new nodes instead. Methods that take a node and a facet return
// a copy of that node with the facet replaced.
//
// Reading a facet a node does not have returns its zero value; writing one
// returns the node unchanged.
type Generator interface {
	// DeclarationKind returns which kind of declaration n is, or
	// [syntax.DeclarationNone].
	DeclarationKind(n *syntax.Node) syntax.DeclarationKind

	Name(n *syntax.Node) string
	WithName(n *syntax.Node, name string) *syntax.Node
	// Alias is the alias a namespace import introduces, if any.
	Alias(n *syntax.Node) string
	WithAlias(n *syntax.Node, alias string) *syntax.Node
	Accessibility(n *syntax.Node) syntax.Accessibility
	WithAccessibility(n *syntax.Node, a syntax.Accessibility) *syntax.Node
	Modifiers(n *syntax.Node) syntax.Modifiers
	WithModifiers(n *syntax.Node, m syntax.Modifiers) *syntax.Node

	// Type is the declared type of n; for methods and delegates, this is the
	// return type.
	Type(n *syntax.Node) *syntax.Node
	WithType(n *syntax.Node, t *syntax.Node) *syntax.Node

	// Expression is the value of a field, enum member, parameter or
	// attribute argument, or the expression body of a member. Passing nil
	// removes it.
	Expression(n *syntax.Node) *syntax.Node
	WithExpression(n *syntax.Node, e *syntax.Node) *syntax.Node

	Statements(n *syntax.Node) []*syntax.Node
	WithStatements(n *syntax.Node, statements []*syntax.Node) *syntax.Node

	Members(n *syntax.Node) []*syntax.Node
	AddMembers(n *syntax.Node, members ...*syntax.Node) *syntax.Node
	Parameters(n *syntax.Node) []*syntax.Node
	AddParameters(n *syntax.Node, params ...*syntax.Node) *syntax.Node
	Accessors(n *syntax.Node) []*syntax.Node
	AddAccessors(n *syntax.Node, accessors ...*syntax.Node) *syntax.Node
	Attributes(n *syntax.Node) []*syntax.Node
	AddAttributes(n *syntax.Node, attributes ...*syntax.Node) *syntax.Node
	AttributeArguments(n *syntax.Node) []*syntax.Node
	AddAttributeArguments(n *syntax.Node, args ...*syntax.Node) *syntax.Node

	// WithTypeParameters replaces the type parameters of n. Constraint
	// clauses for names that are no longer declared are dropped.
	WithTypeParameters(n *syntax.Node, names ...string) *syntax.Node
	// WithTypeConstraint replaces the constraints on one of n's type
	// parameters. If there are none, the constraint clause is removed.
	WithTypeConstraint(n *syntax.Node, name string, special syntax.SpecialConstraint, types ...*syntax.Node) *syntax.Node

	// RemoveNode removes node from root. Panics if node is not a proper
	// descendant of root.
	RemoveNode(root, node *syntax.Node) *syntax.Node
	// InsertNodesAfter inserts nodes as siblings after existing.
	InsertNodesAfter(root, existing *syntax.Node, nodes ...*syntax.Node) *syntax.Node
	// InsertNodesBefore inserts nodes as siblings before existing.
	InsertNodesBefore(root, existing *syntax.Node, nodes ...*syntax.Node) *syntax.Node
	// ReplaceNode replaces old with replacement within root.
	ReplaceNode(root, old, replacement *syntax.Node) *syntax.Node
	// ClearTrivia removes the leading and trailing trivia of n.
	ClearTrivia(n *syntax.Node) *syntax.Node

	CompilationUnit(members ...*syntax.Node) *syntax.Node
	NamespaceImport(name string) *syntax.Node
	Namespace(name string, members ...*syntax.Node) *syntax.Node
	// TypeDeclaration builds an empty class, struct, interface or enum.
	TypeDeclaration(kind syntax.DeclarationKind, name string) *syntax.Node
	EnumMember(name string, value *syntax.Node) *syntax.Node
	Delegate(name string, returnType *syntax.Node) *syntax.Node
	// Method builds a method with an empty body. A nil return type means the
	// method returns nothing.
	Method(name string, returnType *syntax.Node) *syntax.Node
	Field(name string, typ, initializer *syntax.Node) *syntax.Node
	// Property builds an automatically implemented property.
	Property(name string, typ *syntax.Node) *syntax.Node
	Indexer(typ *syntax.Node, params ...*syntax.Node) *syntax.Node
	Event(name string, typ *syntax.Node) *syntax.Node
	CustomEvent(name string, typ *syntax.Node) *syntax.Node
	// Accessor builds an accessor with no body. Returns nil if the language
	// has no accessor of the given kind.
	Accessor(kind syntax.DeclarationKind) *syntax.Node
	Parameter(name string, typ, defaultValue *syntax.Node) *syntax.Node
	Attribute(name string, args ...*syntax.Node) *syntax.Node
	// AttributeArgument builds an attribute argument; name may be empty.
	AttributeArgument(name string, value *syntax.Node) *syntax.Node

	// Literal builds a literal expression out of a Go boolean, string, rune,
	// integer or floating-point value. Panics on any other type.
	Literal(value any) *syntax.Node
	DecimalLiteral(text string) *syntax.Node
	CharLiteral(value rune) *syntax.Node
	NullLiteral() *syntax.Node
	IdentifierName(name string) *syntax.Node
	QualifiedName(left, right *syntax.Node) *syntax.Node
	// DottedName builds a possibly qualified name out of a dotted string.
	DottedName(name string) *syntax.Node
	GenericName(name string, args ...*syntax.Node) *syntax.Node
	ArrayType(element *syntax.Node) *syntax.Node
	NullableType(element *syntax.Node) *syntax.Node
	SpecialType(t syntax.SpecialType) *syntax.Node
	ReturnStatement(value *syntax.Node) *syntax.Node
	ExpressionStatement(value *syntax.Node) *syntax.Node
}

// CommentEditor knows how one language writes comments and type parameters.
//
// Comments are counted in blocks: a run of adjacent comment lines in a
// node's leading trivia. Methods that take a block index panic if it is out
// of range.
type CommentEditor interface {
	CommentCount(n *syntax.Node) int
	CommentText(n *syntax.Node, index int) string
	CommentStyle(n *syntax.Node, index int) comment.Style
	WithCommentText(n *syntax.Node, index int, text string) *syntax.Node
	WithCommentStyle(n *syntax.Node, index int, style comment.Style) *syntax.Node
	AddComment(n *syntax.Node, text string, style comment.Style) *syntax.Node
	// InsertComment inserts a new block before the block at index. An index
	// equal to the number of blocks appends.
	InsertComment(n *syntax.Node, index int, text string, style comment.Style) *syntax.Node
	RemoveComment(n *syntax.Node, index int) (*syntax.Node, error)

	TypeParameterNames(n *syntax.Node) []string
	TypeConstraints(n *syntax.Node, name string) []*syntax.Node
	SpecialConstraints(n *syntax.Node, name string) syntax.SpecialConstraint
	// WithTypeParameterNameChanged renames a type parameter, along with its
	// constraint clause.
	WithTypeParameterNameChanged(n *syntax.Node, name, newName string) *syntax.Node
}

// ExpressionParser parses fragments of source text.
type ExpressionParser interface {
	ParseExpression(text string) (*syntax.Node, error)
	ParseStatement(text string) (*syntax.Node, error)
}

// Parser parses whole files.
type Parser interface {
	ExpressionParser
	// ParseFile parses a file. Errors are sent to rep; if rep chooses to
	// continue, parsing recovers and the returned error is
	// [reporter.ErrInvalidSource].
	ParseFile(filename, text string, rep reporter.Reporter) (*syntax.Node, error)
}

// NodeSpan is where a node was printed.
type NodeSpan struct {
	Node *syntax.Node
	syntax.Span
}

// Printer renders nodes as source text.
type Printer interface {
	Print(n *syntax.Node) string
	// PrintSpans is like Print, but also returns the span of every
	// declaration in the output, outermost first.
	PrintSpans(n *syntax.Node) (string, []NodeSpan)
	// Format normalizes the trivia of n and its descendants.
	Format(n *syntax.Node) *syntax.Node
}

// Language bundles everything the builder layer needs from a language
// backend.
type Language struct {
	// Name is matched against [syntax.Node.Language].
	Name string

	Generator Generator
	Comments  CommentEditor
	Parser    Parser
	Printer   Printer
}

var languages sync.Map // string -> *Language

// Register makes a language available to [New] and [Parse]. Registering a
// name twice panics.
func Register(lang *Language) {
	if _, dup := languages.LoadOrStore(lang.Name, lang); dup {
		panic("builder: language registered twice: " + lang.Name)
	}
}

// LookupLanguage returns the registered language with the given name.
func LookupLanguage(name string) (*Language, bool) {
	lang, ok := languages.Load(name)
	if !ok {
		return nil, false
	}
	return lang.(*Language), true
}
