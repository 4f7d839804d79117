package binary

import (
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/pkg/errors"
)

// Array returns the schema of a fixed length array of elem. Values are
// []interface{} of exactly length elements.
func Array(elem Schema, length int) Schema {
	if length < 0 {
		panic(fmt.Sprintf("binary: negative array length %d", length))
	}
	return arraySchema{elem: elem, length: length}
}

type arraySchema struct {
	elem   Schema
	length int
}

func (s arraySchema) Kind() Kind {
	return KindArray
}

func (s arraySchema) Name() string {
	return fmt.Sprintf("[%s; %d]", s.elem.Name(), s.length)
}

func (s arraySchema) Size() (int, bool) {
	size, ok := s.elem.Size()
	if !ok {
		return 0, false
	}
	return size * s.length, true
}

func (s arraySchema) encode(enc *bin.Encoder, v interface{}) error {
	elems, ok := v.([]interface{})
	if !ok {
		return typeMismatch(s, v)
	}
	if len(elems) != s.length {
		return errors.Wrapf(ErrTypeMismatch, "%s: got %d elements", s.Name(), len(elems))
	}

	for i, elem := range elems {
		if err := s.elem.encode(enc, elem); err != nil {
			return errors.WithMessagef(err, "element %d", i)
		}
	}
	return nil
}

func (s arraySchema) decode(c *Cursor) (interface{}, error) {
	elems := make([]interface{}, s.length)
	for i := range elems {
		elem, err := s.elem.decode(c)
		if err != nil {
			return nil, errors.WithMessagef(err, "element %d", i)
		}
		elems[i] = elem
	}
	return elems, nil
}
