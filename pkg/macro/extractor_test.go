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
	"reflect"
	"testing"

	"github.com/consensys/go-rambo/pkg/util/source"
)

// ============================================================================
// Well-formed declarations
// ============================================================================

func TestExtract_01(t *testing.T) {
	macros := CheckExtract(t, "DEFINE PAL(n)<LDA #n>\nPAL 1\nPAL 2\n", 1)
	CheckDefinition(t, &macros[0], "PAL", []string{"n"}, "LDA #n")
}

func TestExtract_02(t *testing.T) {
	macros := CheckExtract(t, "DEFINE EMPTY<>", 1)
	CheckDefinition(t, &macros[0], "EMPTY", []string{}, "")
	//
	if macros[0].LineCount() != 0 {
		t.Errorf("empty body should span 0 lines, got %d", macros[0].LineCount())
	}
}

func TestExtract_03(t *testing.T) {
	macros := CheckExtract(t, "DEFINE NAME(a, b), < body >", 1)
	CheckDefinition(t, &macros[0], "NAME", []string{"a", "b"}, " body ")
}

func TestExtract_04(t *testing.T) {
	macros := CheckExtract(t, "DEFINE X < outer < inner > still-outer >", 1)
	CheckDefinition(t, &macros[0], "X", []string{}, " outer < inner > still-outer ")
}

func TestExtract_05(t *testing.T) {
	macros := CheckExtract(t, "DEFINE DELAY<\nNOP\nNOP\n>", 1)
	CheckDefinition(t, &macros[0], "DELAY", []string{}, "NOP\nNOP")
	//
	if macros[0].LineCount() != 2 {
		t.Errorf("body should span 2 lines, got %d", macros[0].LineCount())
	}
}

func TestExtract_06(t *testing.T) {
	// Unterminated bodies run to end of file.
	macros := CheckExtract(t, "DEFINE OPEN<LDA A\nSTA B", 1)
	CheckDefinition(t, &macros[0], "OPEN", []string{}, "LDA A\nSTA B")
}

func TestExtract_07(t *testing.T) {
	macros := CheckExtract(t, "DEFINE NULLARY()<RTS>", 1)
	CheckDefinition(t, &macros[0], "NULLARY", []string{}, "RTS")
}

func TestExtract_08(t *testing.T) {
	// Empty parameter entries are dropped.
	macros := CheckExtract(t, "DEFINE F(a, , b,)<x>", 1)
	CheckDefinition(t, &macros[0], "F", []string{"a", "b"}, "x")
}

func TestExtract_09(t *testing.T) {
	macros := CheckExtract(t, "DEFINE WAIT, <NOP>", 1)
	CheckDefinition(t, &macros[0], "WAIT", []string{}, "NOP")
}

func TestExtract_10(t *testing.T) {
	macros := CheckExtract(t, "DEFINE A<1>\nDEFINE B<2>\n", 2)
	CheckDefinition(t, &macros[0], "A", []string{}, "1")
	CheckDefinition(t, &macros[1], "B", []string{}, "2")
}

func TestExtract_11(t *testing.T) {
	// A declaration inside a body belongs to that body.
	macros := CheckExtract(t, "DEFINE A<DEFINE B<x>>", 1)
	CheckDefinition(t, &macros[0], "A", []string{}, "DEFINE B<x>")
}

func TestExtract_12(t *testing.T) {
	// Duplicate declarations yield independent records.
	macros := CheckExtract(t, "DEFINE D<1>\nDEFINE D<2>\n", 2)
	CheckDefinition(t, &macros[0], "D", []string{}, "1")
	CheckDefinition(t, &macros[1], "D", []string{}, "2")
}

func TestExtract_13(t *testing.T) {
	// Text between the name and the delimiter is tolerated, and an identifier
	// merely containing the keyword does not bound the search.
	macros := CheckExtract(t, "DEFINE BAD\nUNDEFINED x < y >", 1)
	CheckDefinition(t, &macros[0], "BAD", []string{}, " y ")
}

func TestExtract_14(t *testing.T) {
	macros := CheckExtract(t, "xx DEFINE M<ab>", 1)
	span := macros[0].Span()
	//
	if span.Start() != 3 || span.End() != 15 {
		t.Errorf("declaration span was %d:%d, expected 3:15", span.Start(), span.End())
	}
	//
	if span.Length() != 12 {
		t.Errorf("declaration span length was %d, expected 12", span.Length())
	}
}

func TestExtract_15(t *testing.T) {
	macros := CheckExtract(t, "ORG $8000\nDEFINE INC16(w)<\nINC w\n>\nINC16 ptr\n", 1)
	CheckDefinition(t, &macros[0], "INC16", []string{"w"}, "INC w")
}

// ============================================================================
// Malformed declarations
// ============================================================================

func TestExtract_Err1(t *testing.T) {
	CheckExtract(t, "DEFINE BAD no-body here", 0)
}

func TestExtract_Err2(t *testing.T) {
	macros := CheckExtract(t, "DEFINE BAD stuff\nDEFINE GOOD<ok>", 1)
	CheckDefinition(t, &macros[0], "GOOD", []string{}, "ok")
}

func TestExtract_Err3(t *testing.T) {
	// The delimiter search stops at the next declaration header.
	macros := CheckExtract(t, "DEFINE BAD\nDEFINE GOOD <ok>", 1)
	CheckDefinition(t, &macros[0], "GOOD", []string{}, "ok")
}

func TestExtract_Err4(t *testing.T) {
	// Unclosed parameter list
	CheckExtract(t, "DEFINE F(a, b\nLDA X", 0)
}

func TestExtract_Err5(t *testing.T) {
	// Keyword without a name
	CheckExtract(t, "DEFINE <x>", 0)
}

func TestExtract_Err6(t *testing.T) {
	// Keyword at end of file
	CheckExtract(t, "DEFINE", 0)
}

func TestExtract_Err7(t *testing.T) {
	// Keyword must be followed by whitespace
	CheckExtract(t, "DEFINEX FOO<x>", 0)
}

func TestExtract_Err8(t *testing.T) {
	CheckExtract(t, "", 0)
}

// ============================================================================
// Helpers
// ============================================================================

// CheckExtract extracts all macros from a given input, checking both that the
// expected number were found and that extraction is idempotent.
func CheckExtract(t *testing.T, input string, n int) []Definition {
	srcfile := source.NewSourceFile("test.asm", []byte(input))
	//
	macros := Extract(srcfile)
	again := Extract(srcfile)
	//
	if !reflect.DeepEqual(macros, again) {
		t.Errorf("repeated extraction differed on %q", input)
	}
	//
	if len(macros) != n {
		t.Fatalf("extracted %d macros from %q, expected %d", len(macros), input, n)
	}
	//
	return macros
}

// CheckDefinition checks the fields of an extracted definition against their
// expected values.
func CheckDefinition(t *testing.T, macro *Definition, name string, params []string, body string) {
	if macro.Name() != name {
		t.Errorf("extracted name %q, expected %q", macro.Name(), name)
	}
	//
	if !reflect.DeepEqual(macro.Parameters(), params) {
		t.Errorf("extracted parameters %v, expected %v", macro.Parameters(), params)
	}
	//
	if macro.Body() != body {
		t.Errorf("extracted body %q, expected %q", macro.Body(), body)
	}
}
