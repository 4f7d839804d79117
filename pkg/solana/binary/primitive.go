package binary

import (
	"bytes"
	"crypto/ed25519"
	"fmt"
	"math"

	bin "github.com/gagliardetto/binary"
	"github.com/pkg/errors"
)

var (
	U8   Schema = scalarSchema{KindU8}
	U16  Schema = scalarSchema{KindU16}
	U32  Schema = scalarSchema{KindU32}
	U64  Schema = scalarSchema{KindU64}
	I8   Schema = scalarSchema{KindI8}
	I16  Schema = scalarSchema{KindI16}
	I32  Schema = scalarSchema{KindI32}
	I64  Schema = scalarSchema{KindI64}
	Bool Schema = scalarSchema{KindBool}

	// String is a u32 length prefixed UTF-8 string
	String Schema = stringSchema{}

	// Unit carries no data and encodes to zero bytes
	Unit Schema = unitSchema{}

	// PublicKey is a 32 byte ed25519 public key
	PublicKey = Bytes(ed25519.PublicKeySize)
)

// Scalar returns the schema for a fixed width integer or bool kind
func Scalar(kind Kind) (Schema, error) {
	if !kind.IsScalar() {
		return nil, errors.Wrapf(ErrTypeMismatch, "%s is not a scalar kind", kind)
	}
	return scalarSchema{kind}, nil
}

// EncodePrimitive encodes a scalar value, producing exactly the width of kind
func EncodePrimitive(kind Kind, v interface{}) ([]byte, error) {
	s, err := Scalar(kind)
	if err != nil {
		return nil, err
	}
	return Encode(s, v)
}

// DecodePrimitive decodes a scalar value at offset and returns the offset
// following it
func DecodePrimitive(kind Kind, data []byte, offset int) (interface{}, int, error) {
	s, err := Scalar(kind)
	if err != nil {
		return nil, offset, err
	}
	return Decode(s, data, offset)
}

type scalarSchema struct {
	kind Kind
}

func (s scalarSchema) Kind() Kind {
	return s.kind
}

func (s scalarSchema) Name() string {
	return s.kind.String()
}

func (s scalarSchema) Size() (int, bool) {
	return s.kind.Width()
}

func (s scalarSchema) encode(enc *bin.Encoder, v interface{}) error {
	switch s.kind {
	case KindU8:
		if typed, ok := v.(uint8); ok {
			return enc.WriteUint8(typed)
		}
	case KindU16:
		if typed, ok := v.(uint16); ok {
			return enc.WriteUint16(typed, bin.LE)
		}
	case KindU32:
		if typed, ok := v.(uint32); ok {
			return enc.WriteUint32(typed, bin.LE)
		}
	case KindU64:
		if typed, ok := v.(uint64); ok {
			return enc.WriteUint64(typed, bin.LE)
		}
	case KindI8:
		if typed, ok := v.(int8); ok {
			return enc.WriteUint8(uint8(typed))
		}
	case KindI16:
		if typed, ok := v.(int16); ok {
			return enc.WriteUint16(uint16(typed), bin.LE)
		}
	case KindI32:
		if typed, ok := v.(int32); ok {
			return enc.WriteUint32(uint32(typed), bin.LE)
		}
	case KindI64:
		if typed, ok := v.(int64); ok {
			return enc.WriteUint64(uint64(typed), bin.LE)
		}
	case KindBool:
		if typed, ok := v.(bool); ok {
			if typed {
				return enc.WriteUint8(1)
			}
			return enc.WriteUint8(0)
		}
	}
	return typeMismatch(s, v)
}

func (s scalarSchema) decode(c *Cursor) (interface{}, error) {
	switch s.kind {
	case KindU8:
		return c.ReadUint8()
	case KindU16:
		return c.ReadUint16()
	case KindU32:
		return c.ReadUint32()
	case KindU64:
		return c.ReadUint64()
	case KindI8:
		v, err := c.ReadUint8()
		return int8(v), err
	case KindI16:
		v, err := c.ReadUint16()
		return int16(v), err
	case KindI32:
		v, err := c.ReadUint32()
		return int32(v), err
	case KindI64:
		v, err := c.ReadUint64()
		return int64(v), err
	case KindBool:
		// Any non-zero byte is true, the encoder only emits 0 or 1
		v, err := c.ReadUint8()
		return v != 0, err
	}
	return nil, errors.Wrapf(ErrTypeMismatch, "%s is not a scalar kind", s.kind)
}

// Bytes returns the schema of a fixed length byte array
func Bytes(length int) Schema {
	if length < 0 {
		panic(fmt.Sprintf("binary: negative byte array length %d", length))
	}
	return bytesSchema{length: length}
}

type bytesSchema struct {
	length int
}

func (s bytesSchema) Kind() Kind {
	return KindBytes
}

func (s bytesSchema) Name() string {
	return fmt.Sprintf("[u8; %d]", s.length)
}

func (s bytesSchema) Size() (int, bool) {
	return s.length, true
}

func (s bytesSchema) encode(enc *bin.Encoder, v interface{}) error {
	var b []byte
	switch typed := v.(type) {
	case []byte:
		b = typed
	case ed25519.PublicKey:
		b = typed
	default:
		return typeMismatch(s, v)
	}

	if len(b) != s.length {
		return errors.Wrapf(ErrTypeMismatch, "%s: got %d bytes", s.Name(), len(b))
	}

	_, err := enc.Write(b)
	return err
}

func (s bytesSchema) decode(c *Cursor) (interface{}, error) {
	return c.ReadBytes(s.length)
}

type stringSchema struct{}

func (stringSchema) Kind() Kind {
	return KindString
}

func (stringSchema) Name() string {
	return "string"
}

func (stringSchema) Size() (int, bool) {
	return 0, false
}

func (s stringSchema) encode(enc *bin.Encoder, v interface{}) error {
	typed, ok := v.(string)
	if !ok {
		return typeMismatch(s, v)
	}
	if uint64(len(typed)) > math.MaxUint32 {
		return errors.Wrapf(ErrTypeMismatch, "string length %d exceeds u32", len(typed))
	}

	if err := enc.WriteUint32(uint32(len(typed)), bin.LE); err != nil {
		return err
	}
	_, err := enc.Write([]byte(typed))
	return err
}

func (stringSchema) decode(c *Cursor) (interface{}, error) {
	length, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	if uint64(length) > uint64(c.Remaining()) {
		return nil, outOfBounds(c.Offset(), int(length), c.total)
	}

	b, err := c.ReadBytes(int(length))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

type unitSchema struct{}

func (unitSchema) Kind() Kind {
	return KindUnit
}

func (unitSchema) Name() string {
	return "unit"
}

func (unitSchema) Size() (int, bool) {
	return 0, true
}

func (unitSchema) encode(_ *bin.Encoder, _ interface{}) error {
	return nil
}

func (unitSchema) decode(_ *Cursor) (interface{}, error) {
	return nil, nil
}

// newEncoder returns a Borsh encoder writing into a fresh buffer
func newEncoder() (*bin.Encoder, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return bin.NewBorshEncoder(buf), buf
}
