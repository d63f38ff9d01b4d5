package grammar

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position is a location within the input text.
type Position struct {
	Offset int // byte offset, starting at 0
	Line   int // line number, starting at 1
	Column int // rune column within the line, starting at 1
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// Cursor is a read position within an immutable input text.
//
// All scanning functions advance a cursor in place. A cursor is a small
// value; copying it saves a position to return to (for lookahead).
// A cursor never reads beyond the end of its input.
type Cursor struct {
	input     string
	pos       int // byte offset of the next unread byte
	line      int // current line, 1-based
	lineStart int // byte offset of the start of the current line
}

// NewCursor creates a cursor at the start of input.
func NewCursor(input string) Cursor {
	return Cursor{input: input, line: 1}
}

// AtEOF is a predicate: has all input been consumed?
func (c *Cursor) AtEOF() bool {
	return c.pos >= len(c.input)
}

// Rest returns the unread remainder of the input.
func (c *Cursor) Rest() string {
	return c.input[c.pos:]
}

// Peek returns the next unread byte without consuming it. At the end of the
// input it returns false.
func (c *Cursor) Peek() (byte, bool) {
	if c.AtEOF() {
		return 0, false
	}
	return c.input[c.pos], true
}

// Position returns the current location of the cursor.
func (c *Cursor) Position() Position {
	return Position{
		Offset: c.pos,
		Line:   c.line,
		Column: utf8.RuneCountInString(c.input[c.lineStart:c.pos]) + 1,
	}
}

// CurrentLine returns the full text of the line the cursor is positioned in,
// without line break characters.
func (c *Cursor) CurrentLine() string {
	line := c.input[c.lineStart:]
	if i := strings.IndexAny(line, lineBreakChars); i >= 0 {
		line = line[:i]
	}
	return line
}

// advance moves the cursor n bytes forward, keeping track of lines.
// It stops at the end of the input.
func (c *Cursor) advance(n int) {
	end := c.pos + n
	if end > len(c.input) {
		end = len(c.input)
	}
	for i := c.pos; i < end; i++ {
		if endsLine(c.input, i) {
			c.line++
			c.lineStart = i + 1
		}
	}
	c.pos = end
}

// endsLine is a predicate: does the byte at i terminate a line?
// "\r\n" counts as a single line end.
func endsLine(s string, i int) bool {
	switch s[i] {
	case '\n', '\f', '\v':
		return true
	case '\r':
		return i+1 >= len(s) || s[i+1] != '\n'
	}
	return false
}
