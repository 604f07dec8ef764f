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
	"unicode"

	"github.com/consensys/go-rambo/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// keyword which introduces a macro declaration.
const keyword = "DEFINE"

// Extract scans a given source file left to right for macro declarations,
// producing one definition per well-formed declaration in discovery order.
// A declaration with no opening delimiter before the next declaration (or end
// of file) is malformed and produces no record, whilst a body which never
// closes simply runs to end of file.  Extraction is a pure function of the
// source text, hence scanning the same file twice yields identical results.
func Extract(srcfile *source.File) []Definition {
	p := &scanner{srcfile.Contents(), 0}
	macros := make([]Definition, 0)
	// Scan all declarations
	for {
		macro, ok := p.scanDefinition()
		if !ok {
			break
		}
		//
		macros = append(macros, macro)
	}
	//
	return macros
}

// scanner walks the contents of a source file extracting macro declarations.
type scanner struct {
	// Text being scanned
	text []rune
	// Determine current position within text
	index int
}

// scanDefinition scans forward from the current position for the next
// well-formed macro declaration, skipping over any malformed ones.  This
// returns false once the text is exhausted.
func (p *scanner) scanDefinition() (Definition, bool) {
	for {
		start := p.findHeader(p.index)
		if start < 0 {
			return Definition{}, false
		}
		// Position ourselves on the name token
		p.index = start + len(keyword)
		p.skipWhitespace()
		//
		name := p.scanName()
		if name == "" {
			// Not a declaration (keyword followed by a delimiter, etc).
			continue
		}
		//
		params, ok := p.scanParameters()
		if !ok {
			log.Debugf("skipping macro %s (unclosed parameter list)", name)
			continue
		}
		// Skip optional whitespace and (at most) one comma separator.
		p.skipWhitespace()
		//
		if p.index < len(p.text) && p.text[p.index] == ',' {
			p.index++
		}
		// Body delimiter must open before the next declaration.
		open := p.findOpen(p.index)
		if open < 0 {
			log.Debugf("skipping macro %s (no body found)", name)
			continue
		}
		//
		p.index = open + 1
		body, end := p.scanBody()
		// Done
		return Definition{name, params, body, 0, source.NewSpan(start, end)}, true
	}
}

// scanName scans the macro name, being a maximal run of characters which
// cannot appear in a name (i.e. whitespace, commas, opening parentheses and
// the opening body delimiter).
func (p *scanner) scanName() string {
	i := p.index
	//
	for i < len(p.text) && !isNameEnd(p.text[i]) {
		i++
	}
	//
	name := string(p.text[p.index:i])
	p.index = i
	//
	return name
}

// scanParameters scans an optional parenthesised parameter list.  This is a
// single-level scan: the list runs to the next closing parenthesis, and
// nested parentheses are not handled specially.  A list which never closes
// renders the declaration malformed.
func (p *scanner) scanParameters() ([]string, bool) {
	params := []string{}
	//
	p.skipWhitespace()
	// Check whether a parameter list is present
	if p.index >= len(p.text) || p.text[p.index] != '(' {
		return params, true
	}
	//
	p.index++
	// Locate the closing parenthesis
	end := p.find(')', p.index)
	if end < 0 {
		return nil, false
	}
	// Split on commas, trimming whitespace and dropping empty entries.
	for _, param := range strings.Split(string(p.text[p.index:end]), ",") {
		if param = strings.TrimSpace(param); param != "" {
			params = append(params, param)
		}
	}
	//
	p.index = end + 1
	//
	return params, true
}

// scanBody scans the macro body, which runs from the current position (just
// inside the opening delimiter) to its matching closing delimiter.  Since a
// body may itself contain nested angle bracket groups, a depth counter
// determines which closing delimiter actually ends the body.  This returns
// the body (with leading and trailing newline runs trimmed) along with the
// position one past the closing delimiter.
func (p *scanner) scanBody() (string, int) {
	depth := 1
	//
	for i := p.index; i < len(p.text); i++ {
		switch p.text[i] {
		case '<':
			depth++
		case '>':
			depth--
			// Check whether this delimiter closes the body
			if depth == 0 {
				body := string(p.text[p.index:i])
				p.index = i + 1
				//
				return strings.Trim(body, "\n"), p.index
			}
		}
	}
	// Unterminated body runs to end of file.
	body := string(p.text[p.index:])
	p.index = len(p.text)
	//
	return strings.Trim(body, "\n"), p.index
}

// findHeader determines the position of the next declaration header (the
// keyword followed by at least one whitespace character) at or after a given
// position, or -1 if there is none.
func (p *scanner) findHeader(from int) int {
	for i := from; i < len(p.text); i++ {
		if p.isHeader(i) {
			return i
		}
	}
	//
	return -1
}

// findOpen determines the position of the opening body delimiter for the
// declaration currently being scanned.  The search is bounded: a delimiter
// only counts if it occurs before the next declaration header (or end of
// file), otherwise the current declaration is malformed.
func (p *scanner) findOpen(from int) int {
	for i := from; i < len(p.text); i++ {
		if p.text[i] == '<' {
			return i
		} else if p.isHeader(i) {
			return -1
		}
	}
	//
	return -1
}

// isHeader checks whether a declaration header begins at a given position.
func (p *scanner) isHeader(index int) bool {
	return p.matches(index, keyword) &&
		index+len(keyword) < len(p.text) &&
		unicode.IsSpace(p.text[index+len(keyword)])
}

// matches checks whether a given string occurs at a given position.
func (p *scanner) matches(index int, str string) bool {
	if index+len(str) > len(p.text) {
		return false
	}
	//
	for i := 0; i < len(str); i++ {
		if p.text[index+i] != rune(str[i]) {
			return false
		}
	}
	//
	return true
}

// skipWhitespace advances over any whitespace at the current position.
func (p *scanner) skipWhitespace() {
	for p.index < len(p.text) && unicode.IsSpace(p.text[p.index]) {
		p.index++
	}
}

// find determines the position of the next occurrence of a given character at
// or after a given position, or -1 if there is none.
func (p *scanner) find(c rune, from int) int {
	for i := from; i < len(p.text); i++ {
		if p.text[i] == c {
			return i
		}
	}
	//
	return -1
}

// isNameEnd determines whether a given character terminates a macro name.
func isNameEnd(c rune) bool {
	return unicode.IsSpace(c) || c == ',' || c == '(' || c == '<'
}
