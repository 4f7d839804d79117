package binary

import (
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/pkg/errors"
)

const (
	optionNone uint8 = 0
	optionSome uint8 = 1
)

// Option returns the schema of an optional value: a presence byte (0 or 1)
// followed by the inner encoding when present.
//
// An absent value is represented as nil. Option panics when inner is a Unit or
// an Option, whose values are nil when present.
func Option(inner Schema) Schema {
	switch inner.Kind() {
	case KindUnit, KindOption:
		panic(fmt.Sprintf("binary: %s cannot be optional", inner.Name()))
	}
	return optionSchema{inner: inner}
}

type optionSchema struct {
	inner Schema
}

func (s optionSchema) Kind() Kind {
	return KindOption
}

func (s optionSchema) Name() string {
	return "option<" + s.inner.Name() + ">"
}

func (s optionSchema) Size() (int, bool) {
	return 0, false
}

func (s optionSchema) encode(enc *bin.Encoder, v interface{}) error {
	if v == nil {
		return enc.WriteUint8(optionNone)
	}

	if err := enc.WriteUint8(optionSome); err != nil {
		return err
	}
	return s.inner.encode(enc, v)
}

func (s optionSchema) decode(c *Cursor) (interface{}, error) {
	offset := c.Offset()

	presence, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}

	switch presence {
	case optionNone:
		return nil, nil
	case optionSome:
		return s.inner.decode(c)
	default:
		return nil, errors.Wrapf(ErrInvalidEncoding, "%s: presence byte %d at offset %d", s.Name(), presence, offset)
	}
}
