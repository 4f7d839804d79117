package binary

import (
	"github.com/pkg/errors"
)

var (
	// ErrOutOfBounds indicates a read past the end of the buffer
	ErrOutOfBounds = errors.New("binary: out of bounds")

	// ErrInvalidEncoding indicates a malformed presence, discriminant or
	// length value
	ErrInvalidEncoding = errors.New("binary: invalid encoding")

	// ErrMissingField indicates a struct value is missing a declared field
	ErrMissingField = errors.New("binary: missing field")

	// ErrUnknownVariant indicates a union value names an undeclared variant
	ErrUnknownVariant = errors.New("binary: unknown variant")

	// ErrUnknownTag indicates a union tag byte with no declared variant
	ErrUnknownTag = errors.New("binary: unknown tag")

	// ErrTypeMismatch indicates a value does not conform to its schema
	ErrTypeMismatch = errors.New("binary: type mismatch")
)

func outOfBounds(offset, need, have int) error {
	return errors.Wrapf(ErrOutOfBounds, "need %d bytes at offset %d, buffer has %d", need, offset, have)
}

func typeMismatch(s Schema, v interface{}) error {
	return errors.Wrapf(ErrTypeMismatch, "%s: unexpected value of type %T", s.Name(), v)
}
