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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Split writes one file per section of a given document into a given output
// directory, along with a README.md index.  Anchor links are rewritten so
// they resolve against the full document, whose name is given by fullDoc.
// This returns the number of section files written.
func Split(lines []string, fullDoc string, outdir string) (int, error) {
	sections := ScanSections(lines)
	//
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return 0, err
	}
	//
	index := []string{
		fmt.Sprintf("# %s (split)", fullDoc),
		"",
		"This is a split, easier-to-browse version of the one-page reference.",
		"",
		fmt.Sprintf("- Full one-page reference: `%s`", fullDoc),
		"",
		"## Sections",
		"",
	}
	//
	for i, section := range sections {
		filename := fmt.Sprintf("%02d-%s.md", i+1, Slugify(section.Title, "section"))
		body := sectionBody(lines, section, fullDoc)
		//
		if err := os.WriteFile(filepath.Join(outdir, filename), []byte(body), 0644); err != nil {
			return 0, err
		}
		//
		index = append(index, fmt.Sprintf("- [%02d. %s](%s)", i+1, section.Title, filename))
		log.Debugf("wrote %s (%d lines)", filename, section.End-section.Start)
	}
	//
	readme := strings.Join(index, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(outdir, "README.md"), []byte(readme), 0644); err != nil {
		return 0, err
	}
	//
	return len(sections), nil
}

// sectionBody renders the lines of one section, prefixed by a provenance
// comment and a back link, with anchor links rewritten against the full
// document.
func sectionBody(lines []string, section Section, fullDoc string) string {
	var b strings.Builder
	//
	body := trimTrailer(lines[section.Start:section.End])
	//
	fmt.Fprintf(&b, "<!-- Extracted from %s; section: %s -->\n", fullDoc, section.Title)
	fmt.Fprintf(&b, "[Back to index](README.md)  |  Full reference: %s\n\n", fullDoc)
	//
	for _, line := range body {
		b.WriteString(RewriteLinks(line, fullDoc))
		b.WriteByte('\n')
	}
	//
	return b.String()
}

// trimTrailer drops the closing divs of the one-page layout from the end of
// a block.
func trimTrailer(block []string) []string {
	n := len(block)
	//
	for n > 0 && strings.TrimSpace(block[n-1]) == "</div>" {
		n--
	}
	//
	return block[:n]
}
