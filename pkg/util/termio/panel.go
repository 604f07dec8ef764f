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
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Panel renders a titled box around a sequence of lines, as used for the
// status summaries printed at the end of a command.
type Panel struct {
	title string
	lines []string
	style Style
}

// NewPanel constructs an empty panel with a given title.
func NewPanel(title string) *Panel {
	return &Panel{title, nil, NewStyle()}
}

// WithStyle sets the style in which this panel is rendered.
func (p *Panel) WithStyle(style Style) *Panel {
	p.style = style
	//
	return p
}

// Add appends a formatted line to this panel.
func (p *Panel) Add(format string, args ...any) *Panel {
	p.lines = append(p.lines, fmt.Sprintf(format, args...))
	//
	return p
}

// Render writes this panel to a given writer.  The interior is padded so
// that the frame fits both the title and the widest line.
func (p *Panel) Render(w io.Writer) {
	var (
		title = utf8.RuneCountInString(p.title)
		inner = title + 3
	)
	//
	for _, line := range p.lines {
		inner = max(inner, utf8.RuneCountInString(line)+2)
	}
	// Top border, carrying the title
	p.renderLine(w, fmt.Sprintf("╭─ %s %s╮", p.title, strings.Repeat("─", inner-title-3)))
	// Interior
	for _, line := range p.lines {
		padding := inner - utf8.RuneCountInString(line) - 2
		p.renderLine(w, fmt.Sprintf("│ %s%s │", line, strings.Repeat(" ", padding)))
	}
	// Bottom border
	p.renderLine(w, fmt.Sprintf("╰%s╯", strings.Repeat("─", inner)))
}

func (p *Panel) renderLine(w io.Writer, line string) {
	fmt.Fprintln(w, p.style.Apply(line))
}
