package buf

import "bytes"

// Cursor reads forward through an immutable byte slice. The zero value is
// an empty cursor.
type Cursor struct {
	data []byte
	off  int
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Off returns the absolute offset of the next unread byte.
func (c *Cursor) Off() int { return c.off }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.off }

// EOF reports whether every byte has been consumed.
func (c *Cursor) EOF() bool { return c.off >= len(c.data) }

// Peek returns the next byte without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if c.off >= len(c.data) {
		return 0, false
	}
	return c.data[c.off], true
}

// Next consumes and returns the next byte.
func (c *Cursor) Next() (byte, bool) {
	if c.off >= len(c.data) {
		return 0, false
	}
	b := c.data[c.off]
	c.off++
	return b, true
}

// Skip advances past n bytes, clamping at the end of the input.
func (c *Cursor) Skip(n int) {
	end, ok := AddOverflowSafe(c.off, n)
	if !ok || end > len(c.data) {
		end = len(c.data)
	}
	c.off = end
}

// Take consumes n bytes and returns them as a view into the input.
// The cursor does not move when fewer than n bytes remain.
func (c *Cursor) Take(n int) ([]byte, bool) {
	b, ok := Slice(c.data, c.off, n)
	if !ok {
		return nil, false
	}
	c.off += n
	return b, true
}

// TakeUntil consumes bytes up to, but not including, the first occurrence
// of delim and returns them. The delimiter itself is also consumed. The
// cursor does not move when delim is absent.
func (c *Cursor) TakeUntil(delim byte) ([]byte, bool) {
	i := bytes.IndexByte(c.data[c.off:], delim)
	if i < 0 {
		return nil, false
	}
	b := c.data[c.off : c.off+i]
	c.off += i + 1
	return b, true
}

// Rest returns the unread bytes without consuming them.
func (c *Cursor) Rest() []byte { return c.data[c.off:] }
