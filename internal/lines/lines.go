// Package lines walks a string line by line while tracking byte offsets, so callers can
// cut value spans out of the original text without copying it.
package lines

import "strings"

// Next returns the line starting at pos, including its trailing '\n' if any,
// and the offset of the following line.
//
// Parameters:
//   - text: Source text
//   - pos: Byte offset of the line start
//
// Returns:
//   - line: The line including its terminator
//   - next: Offset just past the line
//   - ok: False when pos is at or beyond the end of text
func Next(text string, pos int) (line string, next int, ok bool) {
	if pos >= len(text) {
		return "", pos, false
	}

	end := strings.IndexByte(text[pos:], '\n')
	if end < 0 {
		return text[pos:], len(text), true
	}
	next = pos + end + 1

	return text[pos:next], next, true
}

// Cursor is a forward-only line iterator over a string.
//
// The zero value is not usable; create one with NewCursor.
type Cursor struct {
	text string
	pos  int
}

// NewCursor creates a cursor positioned at the start of text.
func NewCursor(text string) Cursor {
	return Cursor{text: text}
}

// Next advances the cursor by one line.
//
// Returns the line including its terminator, its start offset and whether a line was read.
func (c *Cursor) Next() (line string, start int, ok bool) {
	start = c.pos
	line, c.pos, ok = Next(c.text, c.pos)

	return line, start, ok
}

// Offset returns the byte offset of the next unread line.
func (c *Cursor) Offset() int {
	return c.pos
}

// Done reports whether every line has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.text)
}

// Text returns the source text.
func (c *Cursor) Text() string {
	return c.text
}
