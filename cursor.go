package xdr

import "fmt"

// ============================================================================
// Read Cursor - Position and Bounds Tracking
// ============================================================================

// cursor is the single source of truth for the decode position. It holds an
// immutable byte region and a read offset; every access is bounds-checked.
// Its only side effect is advancing the offset.
type cursor struct {
	buf []byte
	off int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

// remaining reports how many bytes are left to read.
func (c *cursor) remaining() int {
	return len(c.buf) - c.off
}

// consumed reports how many bytes have been read so far.
func (c *cursor) consumed() int {
	return c.off
}

// take returns the next n bytes of the input and advances past them. The
// returned slice aliases the input; callers that retain data must copy it.
func (c *cursor) take(n int) ([]byte, error) {
	if n < 0 || n > c.remaining() {
		return nil, fmt.Errorf("need %d bytes at offset %d, have %d: %w",
			n, c.off, c.remaining(), ErrUnexpectedEOF)
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// skipPadding advances past the padding for a unit of logical length n.
// In strict mode any non-zero padding byte fails with ErrInvalidPadding.
func (c *cursor) skipPadding(n uint32, strict bool) error {
	pad := Padding(n)
	if pad == 0 {
		return nil
	}
	b, err := c.take(pad)
	if err != nil {
		return fmt.Errorf("skip padding: %w", err)
	}
	if strict {
		for i, v := range b {
			if v != 0 {
				return fmt.Errorf("padding byte at offset %d is 0x%02x: %w",
					c.off-pad+i, v, ErrInvalidPadding)
			}
		}
	}
	return nil
}
