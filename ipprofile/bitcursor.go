package ipprofile

import (
	"braces.dev/errtrace"

	"github.com/rohcware/rohc-ip/internal/errorutil"
)

// BitCursor is a stateful reader over a byte slice. It never advances
// past the end of the underlying data; every read that would under-run
// returns [ErrTooShort] and leaves the cursor unchanged.
type BitCursor struct {
	data []byte
	pos  int
}

// NewBitCursor returns a cursor positioned at the start of data.
func NewBitCursor(data []byte) *BitCursor {
	return &BitCursor{data: data}
}

// Pos returns the number of bytes already consumed.
func (c *BitCursor) Pos() int { return c.pos }

// Len returns the total length of the underlying data.
func (c *BitCursor) Len() int { return len(c.data) }

// Remaining returns the number of bytes not yet consumed.
func (c *BitCursor) Remaining() int { return len(c.data) - c.pos }

// HasBytes reports whether at least n bytes remain.
func (c *BitCursor) HasBytes(n int) bool { return c.Remaining() >= n }

// Byte consumes and returns the next byte.
func (c *BitCursor) Byte() (byte, error) {
	if !c.HasBytes(1) {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrTooShort, "read 1 byte"))
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// PeekByte returns the next byte without consuming it.
func (c *BitCursor) PeekByte() (byte, error) {
	if !c.HasBytes(1) {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrTooShort, "peek 1 byte"))
	}
	return c.data[c.pos], nil
}

// Bytes consumes and returns the next n bytes as a sub-slice of the
// underlying data (not copied).
func (c *BitCursor) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("negative byte count"))
	}
	if !c.HasBytes(n) {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrTooShort, "read %d bytes", n))
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Uint16 consumes and returns the next 2 bytes as a big-endian integer.
func (c *BitCursor) Uint16() (uint16, error) {
	b, err := c.Bytes(2)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// Skip advances the cursor by n bytes without returning them.
func (c *BitCursor) Skip(n int) error {
	_, err := c.Bytes(n)
	return errtrace.Wrap(err)
}

// Rest returns every byte not yet consumed, without advancing the
// cursor.
func (c *BitCursor) Rest() []byte { return c.data[c.pos:] }
