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
	"unicode"

	"github.com/consensys/go-rambo/pkg/util/source"
)

// Annotate fills in the usage count of each given definition by counting
// whole-word occurrences of its name throughout the source, then discounting
// the occurrence within the declaration itself.  The count is clamped at zero
// so that a name with fewer raw matches than expected never reports a
// negative usage count.
func Annotate(srcfile *source.File, macros []Definition) {
	text := srcfile.Contents()
	//
	for i := range macros {
		count := countWord(text, macros[i].name)
		// Discount the declaration itself
		if count > 0 {
			count--
		}
		//
		macros[i].usages = count
	}
}

// countWord counts non-overlapping whole-word occurrences of a given name
// within a given text.  The name is always matched as literal text (never as
// a pattern), and a match only counts when neither neighbouring character is
// a letter, digit or underscore.  Thus, a name occurring as a substring of a
// longer identifier is not counted.
func countWord(text []rune, name string) uint {
	var (
		count uint
		word  = []rune(name)
		n     = len(word)
	)
	//
	if n == 0 {
		return 0
	}
	//
	for i := 0; i+n <= len(text); {
		if !matchesWord(text, i, word) {
			i++
			continue
		}
		// Check characters either side of the match
		if i > 0 && isWordChar(text[i-1]) {
			i++
			continue
		}
		//
		if i+n < len(text) && isWordChar(text[i+n]) {
			i++
			continue
		}
		//
		count++
		i += n
	}
	//
	return count
}

// matchesWord checks whether a given word occurs at a given position.
func matchesWord(text []rune, index int, word []rune) bool {
	for i, c := range word {
		if text[index+i] != c {
			return false
		}
	}
	//
	return true
}

// isWordChar determines whether a given character can form part of an
// identifier, and hence whether it breaks a whole-word match.
func isWordChar(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}
