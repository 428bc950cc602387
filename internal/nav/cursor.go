// Package nav implements the editor's navigation state machine: a clamped
// integer cursor over a fixed range. The card cursor and the moment cursor
// are two independent instances of the same machine.
package nav

// Cursor is a position tracker over [0, size-1]. The zero value is not usable;
// construct with New. Reaching either end has no side effect, the cursor
// simply stops moving.
type Cursor struct {
	pos  int
	size int
}

// New returns a cursor over [0, size-1] starting at 0. Size must be positive.
func New(size int) *Cursor {
	if size < 1 {
		size = 1
	}
	return &Cursor{size: size}
}

// Pos returns the current position.
func (c *Cursor) Pos() int { return c.pos }

// Size returns the number of positions.
func (c *Cursor) Size() int { return c.size }

// Next advances by one, clamped at the last position. It reports whether the
// position changed.
func (c *Cursor) Next() bool {
	if c.pos >= c.size-1 {
		return false
	}
	c.pos++
	return true
}

// Previous moves back by one, clamped at zero. It reports whether the
// position changed.
func (c *Cursor) Previous() bool {
	if c.pos <= 0 {
		return false
	}
	c.pos--
	return true
}

// GoTo jumps to position i. Out-of-range targets are ignored rather than
// treated as errors; late-arriving UI events routinely aim past the ends.
func (c *Cursor) GoTo(i int) bool {
	if i < 0 || i >= c.size || i == c.pos {
		return false
	}
	c.pos = i
	return true
}

// Restore sets the position from a recovered snapshot, clamping silently so a
// stale snapshot can never produce an out-of-range cursor.
func (c *Cursor) Restore(i int) {
	if i < 0 {
		i = 0
	}
	if i >= c.size {
		i = c.size - 1
	}
	c.pos = i
}

// AtStart reports whether the cursor is at the first position.
func (c *Cursor) AtStart() bool { return c.pos == 0 }

// AtEnd reports whether the cursor is at the last position.
func (c *Cursor) AtEnd() bool { return c.pos == c.size-1 }
