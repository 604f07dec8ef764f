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
package termio

import (
	"bytes"
	"strings"
	"testing"
)

// ===================================================================
// Styles
// ===================================================================

func TestStyle_01(t *testing.T) {
	CheckStyle(t, NewStyle(), "hello", "hello")
}

func TestStyle_02(t *testing.T) {
	CheckStyle(t, NewStyle().Bold(), "hello", "\033[1mhello\033[0m")
}

func TestStyle_03(t *testing.T) {
	CheckStyle(t, NewStyle().Underline(), "hello", "\033[4mhello\033[0m")
}

func TestStyle_04(t *testing.T) {
	CheckStyle(t, NewStyle().FgColour(TERM_CYAN), "hello", "\033[36mhello\033[0m")
}

func TestStyle_05(t *testing.T) {
	CheckStyle(t, NewStyle().BgColour(TERM_RED), "hello", "\033[41mhello\033[0m")
}

func TestStyle_06(t *testing.T) {
	CheckStyle(t, NewStyle().Bold().FgColour(TERM_GREEN), "hi", "\033[1;32mhi\033[0m")
}

// ===================================================================
// Panels
// ===================================================================

func TestPanel_01(t *testing.T) {
	CheckPanel(t, NewPanel("build").Add("image: %s", "x.nes"), []string{
		"╭─ build ──────╮",
		"│ image: x.nes │",
		"╰──────────────╯",
	})
}

func TestPanel_02(t *testing.T) {
	// Frame width is driven by the title when lines are short.
	CheckPanel(t, NewPanel("toolchain").Add("ok"), []string{
		"╭─ toolchain ╮",
		"│ ok         │",
		"╰────────────╯",
	})
}

func TestPanel_03(t *testing.T) {
	CheckPanel(t, NewPanel("empty"), []string{
		"╭─ empty ╮",
		"╰────────╯",
	})
}

func TestPanel_04(t *testing.T) {
	panel := NewPanel("x").Add("one").Add("three").WithStyle(NewStyle().Bold())
	//
	CheckPanel(t, panel, []string{
		"\033[1m╭─ x ───╮\033[0m",
		"\033[1m│ one   │\033[0m",
		"\033[1m│ three │\033[0m",
		"\033[1m╰───────╯\033[0m",
	})
}

// ===================================================================
// Helpers
// ===================================================================

func CheckStyle(t *testing.T, style Style, text string, expected string) {
	if actual := style.Apply(text); actual != expected {
		t.Errorf("styled %q into %q, expected %q", text, actual, expected)
	}
}

func CheckPanel(t *testing.T, panel *Panel, expected []string) {
	var buf bytes.Buffer
	//
	panel.Render(&buf)
	//
	if actual := buf.String(); actual != strings.Join(expected, "\n")+"\n" {
		t.Errorf("rendered %q, expected %q", actual, strings.Join(expected, "\n")+"\n")
	}
}
