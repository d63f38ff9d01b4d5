package grammar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	whitespaceChars = " \t"
	lineBreakChars  = "\n\r\f\v"
)

var (
	errUnexpectedEOF = errors.New("unexpected end of input")
	errUnterminated  = errors.New("unterminated quoted value, missing closing '\"'")
)

// expected creates an error for a missing character ch, given the cursor
// position where it should have appeared.
func expected(ch byte, c *Cursor) error {
	if c.AtEOF() {
		return fmt.Errorf("expected '%c', %w", ch, errUnexpectedEOF)
	}
	next, _ := c.Peek()
	return fmt.Errorf("expected '%c', found '%c'", ch, next)
}

// isWhitespace is a predicate for blanks within a line.
func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t'
}

// isLineBreak is a predicate for line break characters.
func isLineBreak(ch byte) bool {
	return strings.IndexByte(lineBreakChars, ch) >= 0
}

// isNameChar is a predicate for characters allowed in names and type tags.
func isNameChar(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9' || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// scanWhile consumes the longest prefix of bytes satisfying pred.
func (c *Cursor) scanWhile(pred func(byte) bool) string {
	rest := c.Rest()
	n := 0
	for n < len(rest) && pred(rest[n]) {
		n++
	}
	c.advance(n)
	return rest[:n]
}

// skipWhitespace skips spaces and tabs. It returns true if anything has been
// skipped.
func (c *Cursor) skipWhitespace() bool {
	return c.scanWhile(isWhitespace) != ""
}

// skipLineBreaks skips a run of line break characters. It returns true if
// anything has been skipped.
func (c *Cursor) skipLineBreaks() bool {
	return c.scanWhile(isLineBreak) != ""
}

// skipBlank skips whitespace and line breaks in any order.
func (c *Cursor) skipBlank() {
	c.scanWhile(func(ch byte) bool {
		return isWhitespace(ch) || isLineBreak(ch)
	})
}

// skipChar consumes ch if it is the next character.
func (c *Cursor) skipChar(ch byte) bool {
	if next, ok := c.Peek(); ok && next == ch {
		c.advance(1)
		return true
	}
	return false
}

// scanName consumes a name or type tag. It returns "" if the next character
// cannot start a name.
func (c *Cursor) scanName() string {
	return c.scanWhile(isNameChar)
}

// scanQuoted consumes a double-quoted value and returns the text between the
// quotes. There are no escapes; a value ends at the next '"' and may span
// lines. For an unterminated value the rest of the input is consumed.
func (c *Cursor) scanQuoted() (string, error) {
	if !c.skipChar('"') {
		return "", expected('"', c)
	}
	rest := c.Rest()
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		c.advance(len(rest))
		return "", errUnterminated
	}
	c.advance(end + 1)
	return rest[:end], nil
}

// scanArraySpecifier consumes an optional array specifier "[" digits? "]".
// It returns -1 if no specifier is present, 0 for "[]" and the declared size
// otherwise. The size is informational only.
func (c *Cursor) scanArraySpecifier() (int, error) {
	if !c.skipChar('[') {
		return -1, nil
	}
	c.skipWhitespace()
	digits := c.scanWhile(isDigit)
	c.skipWhitespace()
	if !c.skipChar(']') {
		return 0, expected(']', c)
	}
	if digits == "" {
		return 0, nil
	}
	size, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("array size out of range: %s", digits)
	}
	return size, nil
}

// skipCloneOperator consumes "<-" with optional leading and trailing
// whitespace. If the operator is not present, nothing is consumed.
func (c *Cursor) skipCloneOperator() bool {
	la := *c
	la.skipWhitespace()
	if la.skipChar('<') && la.skipChar('-') {
		la.skipWhitespace()
		*c = la
		return true
	}
	return false
}
