package binary

// Encode returns the encoding of v under s. Nothing is returned on failure.
func Encode(s Schema, v interface{}) ([]byte, error) {
	enc, buf := newEncoder()
	if err := s.encode(enc, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decodes a value of schema s starting at offset, returning the value
// and the offset immediately following it. Trailing bytes are left unread.
func Decode(s Schema, data []byte, offset int) (interface{}, int, error) {
	c, err := NewCursor(data, offset)
	if err != nil {
		return nil, offset, err
	}

	v, err := s.decode(c)
	if err != nil {
		return nil, offset, err
	}
	return v, c.Offset(), nil
}

// DecodeFrom decodes a value of schema s at the cursor position, advancing it
func DecodeFrom(s Schema, c *Cursor) (interface{}, error) {
	return s.decode(c)
}
