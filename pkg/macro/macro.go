// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package macro

import (
	"strings"

	"github.com/consensys/go-rambo/pkg/util/source"
)

// Definition represents a single DEFINE declaration found in an assembly
// source file.  A definition associates a name (and optional formal
// parameters) with a body of raw text, delimited in the source by a
// nesting-aware pair of angle brackets.  Definitions are pure records: they
// carry no knowledge of assembly semantics, macro expansion or parameter
// substitution.
type Definition struct {
	// Name of the macro being declared.
	name string
	// Formal parameters declared for this macro (empty when the declaration
	// carries no parenthesised list).  Never nil.
	parameters []string
	// Raw body text of this macro, with leading and trailing newline runs
	// trimmed.  May be empty.
	body string
	// Number of whole-word references to this macro found outside its own
	// declaration.  Filled in by Annotate after extraction.
	usages uint
	// Span of the entire declaration (keyword through closing delimiter, or
	// end of file for an unterminated body) within the original source.
	span source.Span
}

// Name returns the name of the macro being declared.
func (p *Definition) Name() string {
	return p.name
}

// Parameters returns the formal parameters of this macro, in declaration
// order.  The result is empty (not nil) when no parameter list was given.
func (p *Definition) Parameters() []string {
	return p.parameters
}

// Body returns the raw body text of this macro.
func (p *Definition) Body() string {
	return p.body
}

// Usages returns the number of whole-word references to this macro outside
// its own declaration.  This is zero until Annotate has run.
func (p *Definition) Usages() uint {
	return p.usages
}

// Span returns the span of the entire declaration within the original source
// file.
func (p *Definition) Span() source.Span {
	return p.span
}

// LineCount returns the number of source lines which this macro's body spans,
// where an empty body spans no lines at all.
func (p *Definition) LineCount() uint {
	if p.body == "" {
		return 0
	}
	//
	return uint(1 + strings.Count(p.body, "\n"))
}

// Analyse extracts every macro declaration from a given source file and
// annotates each with its usage count.  The result is in discovery order.
func Analyse(srcfile *source.File) []Definition {
	macros := Extract(srcfile)
	//
	Annotate(srcfile, macros)
	//
	return macros
}
