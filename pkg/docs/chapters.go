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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"
)

// chunkLines bounds the fallback chunks an oversized block is cut into when
// it offers no subheadings to split on.
const chunkLines = 200

// Chapter names a group of sections to be emitted together as one themed
// document.
type Chapter struct {
	// Title of the chapter itself.
	Title string `json:"title"`
	// Titles of the member sections, as written in their headers.
	Sections []string `json:"sections"`
}

// ReadPlan loads a chapter plan from a JSON file, being an ordered array of
// chapters each naming its title and member sections.
func ReadPlan(filename string) ([]Chapter, error) {
	var plan []Chapter
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	if err := json.Unmarshal(bytes, &plan); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return plan, nil
}

// DefaultPlan produces the trivial plan, with one chapter per section.
func DefaultPlan(sections []Section) []Chapter {
	plan := make([]Chapter, len(sections))
	//
	for i, section := range sections {
		plan[i] = Chapter{section.Title, []string{section.Title}}
	}
	//
	return plan
}

// BuildChapters writes the chapters of a given plan into a given output
// directory, along with a CHAPTERS.md index in its parent directory.  Each
// chapter is packed into as few parts as possible, subject to every part
// holding at most maxBytes of packed content.  This returns the number of
// part files written.
func BuildChapters(lines []string, fullDoc string, plan []Chapter, outdir string, maxBytes int) (int, error) {
	var (
		sections = ScanSections(lines)
		written  = 0
		index    = []string{
			fmt.Sprintf("# %s (chapters)", fullDoc),
			"",
			"Split into larger, themed chapters for easier loading.",
			"",
			fmt.Sprintf("- Full one-page reference: `%s`", fullDoc),
			"",
			"## Chapters",
			"",
		}
	)
	//
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return 0, err
	}
	//
	for i, chapter := range plan {
		blocks := chapterBlocks(lines, sections, chapter)
		//
		if len(blocks) == 0 {
			log.Warnf("chapter %q matches no sections", chapter.Title)
			continue
		}
		//
		parts := packBlocks(blocks, maxBytes)
		slug := Slugify(chapter.Title, "chapter")
		//
		for k, part := range parts {
			var (
				filename = partName(i+1, slug, k+1)
				title    = partTitle(chapter.Title, k+1)
				body     = renderPart(chapter, title, part, fullDoc)
			)
			//
			if err := os.WriteFile(filepath.Join(outdir, filename), []byte(body), 0644); err != nil {
				return written, err
			}
			//
			index = append(index, fmt.Sprintf("- [%02d. %s](%s/%s)", i+1, title, filepath.Base(outdir), filename))
			written++
			//
			log.Debugf("wrote %s (%d lines)", filename, len(part))
		}
	}
	//
	contents := strings.Join(index, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(filepath.Dir(outdir), "CHAPTERS.md"), []byte(contents), 0644); err != nil {
		return written, err
	}
	//
	return written, nil
}

// chapterBlocks collects the line blocks of a chapter's sections in document
// order, merging sections which sit adjacent in the document into a single
// block.  Sections named by the plan but absent from the document are
// reported and skipped.
func chapterBlocks(lines []string, sections []Section, chapter Chapter) [][]string {
	var ranges []Section
	//
	for _, name := range chapter.Sections {
		section, ok := findSection(sections, name)
		//
		if !ok {
			log.Warnf("chapter %q: no section %q in document", chapter.Title, name)
			continue
		}
		//
		ranges = append(ranges, section)
	}
	// Restore document order
	slices.SortFunc(ranges, func(l Section, r Section) int {
		return l.Start - r.Start
	})
	// Merge adjacent (or overlapping) ranges
	var merged []Section
	//
	for _, r := range ranges {
		if n := len(merged); n > 0 && r.Start <= merged[n-1].End {
			merged[n-1].End = max(merged[n-1].End, r.End)
		} else {
			merged = append(merged, r)
		}
	}
	//
	blocks := make([][]string, len(merged))
	//
	for i, r := range merged {
		blocks[i] = trimTrailer(lines[r.Start:r.End])
	}
	//
	return blocks
}

// findSection looks up a section by title.
func findSection(sections []Section, title string) (Section, bool) {
	for _, section := range sections {
		if section.Title == title {
			return section, true
		}
	}
	//
	return Section{}, false
}

// packBlocks packs a sequence of line blocks into parts of at most maxBytes,
// splitting any oversized block on its own subheadings (or, failing that,
// into fixed line chunks).
func packBlocks(blocks [][]string, maxBytes int) [][]string {
	var (
		parts   [][]string
		current []string
	)
	//
	for _, block := range blocks {
		for _, piece := range splitBlock(block, maxBytes) {
			if len(current) > 0 && blockBytes(current)+blockBytes(piece) > maxBytes {
				parts = append(parts, current)
				current = nil
			}
			//
			current = append(current, piece...)
		}
	}
	//
	if len(current) > 0 {
		parts = append(parts, current)
	}
	//
	return parts
}

// splitBlock cuts an oversized block into pieces, first on level-three
// headings, then level-four, and finally into fixed line chunks.
func splitBlock(block []string, maxBytes int) [][]string {
	pieces := [][]string{block}
	//
	for _, marker := range []string{"### [", "#### ["} {
		var next [][]string
		//
		for _, piece := range pieces {
			if blockBytes(piece) > maxBytes {
				next = append(next, splitAt(piece, marker)...)
			} else {
				next = append(next, piece)
			}
		}
		//
		pieces = next
	}
	//
	var result [][]string
	//
	for _, piece := range pieces {
		if blockBytes(piece) > maxBytes {
			result = append(result, chunk(piece, chunkLines)...)
		} else {
			result = append(result, piece)
		}
	}
	//
	return result
}

// splitAt cuts a block at every line bearing a given prefix, such that each
// matching line begins a new piece.
func splitAt(block []string, prefix string) [][]string {
	var (
		pieces [][]string
		start  = 0
	)
	//
	for i, line := range block {
		if i > start && strings.HasPrefix(line, prefix) {
			pieces = append(pieces, block[start:i])
			start = i
		}
	}
	//
	return append(pieces, block[start:])
}

// chunk cuts a block into pieces of at most n lines each.
func chunk(block []string, n int) [][]string {
	var pieces [][]string
	//
	for start := 0; start < len(block); start += n {
		end := min(start+n, len(block))
		pieces = append(pieces, block[start:end])
	}
	//
	return pieces
}

// blockBytes computes the packed size of a block, counting one byte for each
// trailing newline.
func blockBytes(block []string) int {
	size := 0
	//
	for _, line := range block {
		size += len(line) + 1
	}
	//
	return size
}

// partName determines the filename of one chapter part.  Only second and
// subsequent parts carry a part suffix, so a chapter which fits in one part
// is named by its slug alone.
func partName(chapter int, slug string, part int) string {
	if part == 1 {
		return fmt.Sprintf("%02d-%s.md", chapter, slug)
	}
	//
	return fmt.Sprintf("%02d-%s-part-%d.md", chapter, slug, part)
}

// partTitle determines the displayed title of one chapter part.
func partTitle(title string, part int) string {
	if part == 1 {
		return title
	}
	//
	return fmt.Sprintf("%s (Part %d)", title, part)
}

// renderPart renders the content of one chapter part, prefixed by a
// provenance comment, a back link and the list of included sections, with
// anchor links rewritten against the full document (which lives one
// directory up from the chapter files).
func renderPart(chapter Chapter, title string, lines []string, fullDoc string) string {
	var b strings.Builder
	//
	fmt.Fprintf(&b, "<!-- Auto-generated chapter from %s -->\n", fullDoc)
	fmt.Fprintf(&b, "[Back to chapters index](../CHAPTERS.md)  |  Full reference: ../%s\n\n", fullDoc)
	fmt.Fprintf(&b, "# %s\n\n", title)
	//
	b.WriteString("Included sections:\n")
	//
	for _, section := range chapter.Sections {
		fmt.Fprintf(&b, "- %s\n", section)
	}
	//
	b.WriteString("\n")
	//
	for _, line := range lines {
		b.WriteString(RewriteLinks(line, "../"+fullDoc))
		b.WriteByte('\n')
	}
	//
	return b.String()
}
