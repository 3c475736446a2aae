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
	"github.com/bufbuild/syntaxedit/syntax"
)

// The Create functions build new declarations that are not part of any
// tree yet. Each returns the root handle of a new Context; add a copy of it
// to a tree with [List.AddBuilder].

// CreateCompilationUnit creates an empty file.
func CreateCompilationUnit(lang *Language) *CompilationUnit {
	return newRoot[*CompilationUnit](lang, lang.Generator.CompilationUnit())
}

// CreateNamespace creates an empty namespace.
func CreateNamespace(lang *Language, name string) *Namespace {
	return newRoot[*Namespace](lang, lang.Generator.Namespace(name))
}

// CreateNamespaceImport creates a using directive.
func CreateNamespaceImport(lang *Language, name string) *NamespaceImport {
	return newRoot[*NamespaceImport](lang, lang.Generator.NamespaceImport(name))
}

// CreateClass creates an empty class.
func CreateClass(lang *Language, name string) *Type {
	return createType(lang, syntax.DeclarationClass, name)
}

// CreateStruct creates an empty struct.
func CreateStruct(lang *Language, name string) *Type {
	return createType(lang, syntax.DeclarationStruct, name)
}

// CreateInterface creates an empty interface.
func CreateInterface(lang *Language, name string) *Type {
	return createType(lang, syntax.DeclarationInterface, name)
}

// CreateEnum creates an enum with no members.
func CreateEnum(lang *Language, name string) *Type {
	return createType(lang, syntax.DeclarationEnum, name)
}

func createType(lang *Language, kind syntax.DeclarationKind, name string) *Type {
	return newRoot[*Type](lang, lang.Generator.TypeDeclaration(kind, name))
}

// CreateDelegate creates a delegate. A zero return type is void.
func CreateDelegate(lang *Language, name string, returnType TypeExpression) (*Delegate, error) {
	typ, err := returnType.Node(lang)
	if err != nil {
		return nil, err
	}
	return newRoot[*Delegate](lang, lang.Generator.Delegate(name, typ)), nil
}

// CreateMethod creates a method with an empty body. A zero return type is
// void.
func CreateMethod(lang *Language, name string, returnType TypeExpression) (*Method, error) {
	typ, err := returnType.Node(lang)
	if err != nil {
		return nil, err
	}
	return newRoot[*Method](lang, lang.Generator.Method(name, typ)), nil
}

// CreateParameter creates a parameter, with an optional default value.
func CreateParameter(lang *Language, name string, typ TypeExpression, defaultValue Expression) (*Parameter, error) {
	t, err := typ.Node(lang)
	if err != nil {
		return nil, err
	}
	v, err := defaultValue.Node(lang)
	if err != nil {
		return nil, err
	}
	return newRoot[*Parameter](lang, lang.Generator.Parameter(name, t, v)), nil
}

// CreateField creates a field, with an optional initializer.
func CreateField(lang *Language, name string, typ TypeExpression, value Expression) (*Field, error) {
	t, err := typ.Node(lang)
	if err != nil {
		return nil, err
	}
	v, err := value.Node(lang)
	if err != nil {
		return nil, err
	}
	return newRoot[*Field](lang, lang.Generator.Field(name, t, v)), nil
}

// CreateProperty creates an automatically implemented property.
func CreateProperty(lang *Language, name string, typ TypeExpression) (*Property, error) {
	t, err := typ.Node(lang)
	if err != nil {
		return nil, err
	}
	return newRoot[*Property](lang, lang.Generator.Property(name, t)), nil
}

// CreateIndexer creates an indexer with a getter.
func CreateIndexer(lang *Language, typ TypeExpression) (*Property, error) {
	t, err := typ.Node(lang)
	if err != nil {
		return nil, err
	}
	return newRoot[*Property](lang, lang.Generator.Indexer(t)), nil
}

// CreateEvent creates a field-like event.
func CreateEvent(lang *Language, name string, typ TypeExpression) (*Field, error) {
	t, err := typ.Node(lang)
	if err != nil {
		return nil, err
	}
	return newRoot[*Field](lang, lang.Generator.Event(name, t)), nil
}

// CreateCustomEvent creates an event with add and remove accessors.
func CreateCustomEvent(lang *Language, name string, typ TypeExpression) (*Property, error) {
	t, err := typ.Node(lang)
	if err != nil {
		return nil, err
	}
	return newRoot[*Property](lang, lang.Generator.CustomEvent(name, t)), nil
}
