package binary

import (
	"github.com/pkg/errors"
)

// Fields is a struct value keyed by field name
type Fields map[string]interface{}

// Variant is a union value: the variant name and its struct payload, nil for
// unit variants
type Variant struct {
	Name   string
	Fields Fields
}

// Get returns the named field of f as T
func Get[T any](f Fields, name string) (T, error) {
	var zero T

	raw, ok := f[name]
	if !ok {
		return zero, errors.Wrap(ErrMissingField, name)
	}

	typed, ok := raw.(T)
	if !ok {
		return zero, errors.Wrapf(ErrTypeMismatch, "%s: unexpected value of type %T", name, raw)
	}
	return typed, nil
}

// GetOptional returns the named optional field of f. The pointer is nil when
// the value is absent.
func GetOptional[T any](f Fields, name string) (*T, error) {
	raw, ok := f[name]
	if !ok {
		return nil, errors.Wrap(ErrMissingField, name)
	}
	if raw == nil {
		return nil, nil
	}

	typed, ok := raw.(T)
	if !ok {
		return nil, errors.Wrapf(ErrTypeMismatch, "%s: unexpected value of type %T", name, raw)
	}
	return &typed, nil
}
