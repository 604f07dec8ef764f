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
package docs

import (
	"strings"
)

// headerPrefix marks a top-level section header in the reference document,
// whose headers are all written as bracketed self-links.
const headerPrefix = "## ["

// Section identifies one top-level section of a document, as a half-open
// range of line numbers.
type Section struct {
	// Title as written in the section header.
	Title string
	// Line on which the section header sits.
	Start int
	// One past the last line of the section.
	End int
}

// ScanSections identifies every top-level section of a document.  A section
// begins at a header line and runs to the line before the next header, with
// the final section running to end of document.
func ScanSections(lines []string) []Section {
	sections := []Section{}
	//
	for i, line := range lines {
		if !strings.HasPrefix(line, headerPrefix) {
			continue
		}
		// Close off the previous section
		if n := len(sections); n > 0 {
			sections[n-1].End = i
		}
		//
		sections = append(sections, Section{sectionTitle(line), i, len(lines)})
	}
	//
	return sections
}

// sectionTitle extracts the title from a header line.
func sectionTitle(line string) string {
	title := line[len(headerPrefix):]
	//
	if i := strings.Index(title, "]"); i >= 0 {
		title = title[:i]
	}
	//
	return strings.TrimSpace(title)
}

// Slugify converts a title into a filesystem-friendly slug: lower case, with
// runs of anything other than (ascii) letters and digits collapsed into
// single dashes.  A title with nothing to keep yields the given fallback.
func Slugify(title string, fallback string) string {
	var slug []rune
	//
	for _, c := range strings.ToLower(title) {
		switch {
		case (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9'):
			slug = append(slug, c)
		case len(slug) > 0 && slug[len(slug)-1] != '-':
			slug = append(slug, '-')
		}
	}
	//
	if result := strings.Trim(string(slug), "-"); result != "" {
		return result
	}
	//
	return fallback
}

// RewriteLinks redirects anchor-only links (in both markdown and inline html
// form) so they resolve against a given document, rather than against the
// file they have been extracted into.
func RewriteLinks(text string, target string) string {
	text = strings.ReplaceAll(text, "](#", "]("+target+"#")
	//
	return strings.ReplaceAll(text, `href="#`, `href="`+target+`#`)
}
