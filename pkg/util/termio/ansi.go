package termio

import "fmt"

// TERM_BLACK represents black
const TERM_BLACK = uint(0)

// TERM_RED represents red
const TERM_RED = uint(1)

// TERM_GREEN represents green
const TERM_GREEN = uint(2)

// TERM_YELLOW represents yellow
const TERM_YELLOW = uint(3)

// TERM_BLUE represents blue
const TERM_BLUE = uint(4)

// TERM_MAGENTA represents magenta
const TERM_MAGENTA = uint(5)

// TERM_CYAN represents cyan
const TERM_CYAN = uint(6)

// TERM_WHITE represents white
const TERM_WHITE = uint(7)

// Style represents a (possibly empty) sequence of ANSI formatting codes which
// can be applied to text written to a terminal.
type Style struct {
	escape string
	count  uint
}

// NewStyle constructs the empty style, which leaves text exactly as it is.
func NewStyle() Style {
	return Style{"\033", 0}
}

// Bold enables bold text.
func (p Style) Bold() Style {
	return p.code(1)
}

// Underline enables underlined text.
func (p Style) Underline() Style {
	return p.code(4)
}

// FgColour sets the foreground colour.
func (p Style) FgColour(col uint) Style {
	return p.code(30 + col)
}

// BgColour sets the background colour.
func (p Style) BgColour(col uint) Style {
	return p.code(40 + col)
}

// Apply wraps some text in this style, resetting the terminal afterwards.
func (p Style) Apply(text string) string {
	if p.count == 0 {
		return text
	}
	//
	return fmt.Sprintf("%sm%s\033[0m", p.escape, text)
}

// code appends a single formatting code to this style.
func (p Style) code(n uint) Style {
	// Construct string
	var escape string
	if p.count > 0 {
		escape = fmt.Sprintf("%s;%d", p.escape, n)
	} else {
		escape = fmt.Sprintf("%s[%d", p.escape, n)
	}
	// Done
	return Style{escape, p.count + 1}
}
