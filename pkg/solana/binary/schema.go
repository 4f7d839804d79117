// Package binary implements a schema driven codec for the packed, little
// endian layout used by on-chain program instruction and account data.
//
// A Schema is an immutable descriptor built once (usually as a package level
// variable) and reused for every Encode and Decode call. Values are plain Go
// values:
//
//	u8..u64, i8..i64   uint8..uint64, int8..int64
//	bool               bool
//	Bytes(n)           []byte (ed25519.PublicKey is accepted on encode)
//	String             string
//	Array(s, n)        []interface{}
//	Option(s)          nil when absent, the inner value otherwise
//	Struct             Fields
//	Union              Variant
//	Unit               nil
package binary

import (
	"fmt"

	bin "github.com/gagliardetto/binary"
)

// Kind identifies the wire layout family of a Schema
type Kind uint8

const (
	KindUnknown Kind = iota

	KindU8
	KindU16
	KindU32
	KindU64
	KindI8
	KindI16
	KindI32
	KindI64
	KindBool

	KindBytes
	KindString

	KindArray
	KindOption
	KindStruct
	KindUnion
	KindUnit
)

func (k Kind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindBool:
		return "bool"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindOption:
		return "option"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	case KindUnit:
		return "unit"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsScalar reports whether the kind is a fixed width integer or bool
func (k Kind) IsScalar() bool {
	return k >= KindU8 && k <= KindBool
}

// Width returns the encoded size of a scalar kind
func (k Kind) Width() (int, bool) {
	switch k {
	case KindU8, KindI8, KindBool:
		return 1, true
	case KindU16, KindI16:
		return 2, true
	case KindU32, KindI32:
		return 4, true
	case KindU64, KindI64:
		return 8, true
	}
	return 0, false
}

// Schema describes the wire layout of a value.
//
// The set of implementations is closed: schemas are only created through the
// constructors in this package.
type Schema interface {
	// Kind returns the layout family
	Kind() Kind

	// Name returns a human readable type name, used in errors
	Name() string

	// Size returns the encoded size when every value of the schema encodes to
	// the same number of bytes
	Size() (int, bool)

	encode(enc *bin.Encoder, v interface{}) error
	decode(c *Cursor) (interface{}, error)
}
