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
	"testing"

	"github.com/consensys/go-rambo/pkg/util/source"
)

func TestUsages_01(t *testing.T) {
	CheckUsages(t, "DEFINE PAL(n)<LDA #n>\nPAL 1\nPAL 2\n", "PAL", 2)
}

func TestUsages_02(t *testing.T) {
	CheckUsages(t, "DEFINE EMPTY<>", "EMPTY", 0)
}

func TestUsages_03(t *testing.T) {
	// Substring occurrences within longer identifiers do not count.
	CheckUsages(t, "DEFINE FOO<x>\nFOOBAR\nFOO\n", "FOO", 1)
}

func TestUsages_04(t *testing.T) {
	// References within other macro bodies count.
	CheckUsages(t, "DEFINE A<B>\nDEFINE B<1>\n", "B", 1)
	CheckUsages(t, "DEFINE A<B>\nDEFINE B<1>\n", "A", 0)
}

func TestUsages_05(t *testing.T) {
	// Count clamps at zero when a name only occurs at its declaration.
	CheckUsages(t, "DEFINE KIL<HLT>\nNOP\nNOP\n", "KIL", 0)
}

func TestUsages_06(t *testing.T) {
	// Names are matched literally, even when they contain characters which
	// are special in a pattern language.
	CheckUsages(t, "DEFINE A+B<x>\nA+B\nA+BC\n", "A+B", 1)
}

func TestUsages_07(t *testing.T) {
	// Matches never overlap, nor extend into neighbouring word characters.
	CheckUsages(t, "DEFINE AA<x>\nAAA\nAA\n", "AA", 1)
}

func TestUsages_08(t *testing.T) {
	// Underscores extend identifiers on either side.
	CheckUsages(t, "DEFINE M<x>\n_M M_ M\n", "M", 1)
}

func TestUsages_09(t *testing.T) {
	// Punctuation neighbours do not break a whole-word match.
	CheckUsages(t, "DEFINE PAL(n)<LDA #n>\nJSR PAL,X\n(PAL)\n", "PAL", 2)
}

func TestUsages_10(t *testing.T) {
	// Every reported count is filled in by a single annotation pass.
	srcfile := source.NewSourceFile("test.asm", []byte("DEFINE A<1>\nDEFINE B<A A>\nB\n"))
	macros := Analyse(srcfile)
	//
	if len(macros) != 2 {
		t.Fatalf("extracted %d macros, expected 2", len(macros))
	}
	//
	if macros[0].Usages() != 2 {
		t.Errorf("macro A reported %d usages, expected 2", macros[0].Usages())
	}
	//
	if macros[1].Usages() != 1 {
		t.Errorf("macro B reported %d usages, expected 1", macros[1].Usages())
	}
}

// ============================================================================
// Helpers
// ============================================================================

// CheckUsages analyses a given input and checks the usage count reported for
// a given macro.
func CheckUsages(t *testing.T, input string, name string, expected uint) {
	srcfile := source.NewSourceFile("test.asm", []byte(input))
	//
	for _, macro := range Analyse(srcfile) {
		if macro.Name() == name {
			if macro.Usages() != expected {
				t.Errorf("macro %s reported %d usages in %q, expected %d",
					name, macro.Usages(), input, expected)
			}
			//
			return
		}
	}
	//
	t.Errorf("macro %s not extracted from %q", name, input)
}
