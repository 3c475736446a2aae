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

// IsType returns whether this kind is a type expression.
func (v Kind) IsType() bool {
	return v >= KindPredefinedType && v <= KindNullableType
}

// IsDeclaration returns whether this kind declares something: a namespace,
// a type, a member, or one of the parts of a member that can be edited on
// its own, such as a parameter or an attribute.
func (v Kind) IsDeclaration() bool {
	return v >= KindCompilationUnit && v <= KindAttributeArgument
}

// IsStatement returns whether this kind is a statement.
func (v Kind) IsStatement() bool {
	return v >= KindBlock && v <= KindEmptyStatement
}

// IsExpression returns whether this kind is an expression. Names are both
// types and expressions.
func (v Kind) IsExpression() bool {
	switch {
	case v == KindLiteral,
		v >= KindIdentifierName && v <= KindGenericName,
		v >= KindMemberAccess && v <= KindDefault:
		return true
	default:
		return false
	}
}
