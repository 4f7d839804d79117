package binary

import (
	bin "github.com/gagliardetto/binary"
)

// Cursor is a bounds checked read position into a caller owned buffer.
//
// The offset only moves forward and never exceeds the buffer length. Every
// read verifies the remaining length first, so a short buffer surfaces as
// ErrOutOfBounds instead of a slice panic.
type Cursor struct {
	dec   *bin.Decoder
	total int
}

// NewCursor returns a cursor positioned at offset within data
func NewCursor(data []byte, offset int) (*Cursor, error) {
	if offset < 0 || offset > len(data) {
		return nil, outOfBounds(offset, 0, len(data))
	}

	return &Cursor{
		dec:   bin.NewBorshDecoder(data[offset:]),
		total: len(data),
	}, nil
}

// Offset returns the absolute read position
func (c *Cursor) Offset() int {
	return c.total - c.dec.Remaining()
}

// Remaining returns the number of unread bytes
func (c *Cursor) Remaining() int {
	return c.dec.Remaining()
}

func (c *Cursor) require(n int) error {
	if n < 0 || c.dec.Remaining() < n {
		return outOfBounds(c.Offset(), n, c.total)
	}
	return nil
}

func (c *Cursor) ReadUint8() (uint8, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	return c.dec.ReadUint8()
}

func (c *Cursor) ReadUint16() (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	return c.dec.ReadUint16(bin.LE)
}

func (c *Cursor) ReadUint32() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	return c.dec.ReadUint32(bin.LE)
}

func (c *Cursor) ReadUint64() (uint64, error) {
	if err := c.require(8); err != nil {
		return 0, err
	}
	return c.dec.ReadUint64(bin.LE)
}

// ReadBytes returns a copy of the next n bytes
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}

	b, err := c.dec.ReadNBytes(n)
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, b)
	return out, nil
}
