package binary

import (
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/pkg/errors"
)

// FieldSchema is a named, ordered struct member
type FieldSchema struct {
	Name   string
	Schema Schema
}

// Field declares a struct member
func Field(name string, s Schema) FieldSchema {
	return FieldSchema{Name: name, Schema: s}
}

// StructSchema is a packed sequence of named fields. There are no tags on the
// wire, so declaration order is the only thing identifying a field.
type StructSchema struct {
	name   string
	fields []FieldSchema
	size   int
	fixed  bool
}

// Struct declares a struct schema. It panics on duplicate field names.
func Struct(name string, fields ...FieldSchema) *StructSchema {
	s := &StructSchema{
		name:   name,
		fields: make([]FieldSchema, len(fields)),
		fixed:  true,
	}
	copy(s.fields, fields)

	seen := make(map[string]struct{})
	for _, f := range fields {
		if _, ok := seen[f.Name]; ok {
			panic(fmt.Sprintf("binary: duplicate field %q in struct %s", f.Name, name))
		}
		seen[f.Name] = struct{}{}

		size, ok := f.Schema.Size()
		s.size += size
		s.fixed = s.fixed && ok
	}

	return s
}

func (s *StructSchema) Kind() Kind {
	return KindStruct
}

func (s *StructSchema) Name() string {
	return s.name
}

func (s *StructSchema) Size() (int, bool) {
	if !s.fixed {
		return 0, false
	}
	return s.size, true
}

// Fields returns the declared fields in wire order
func (s *StructSchema) Fields() []FieldSchema {
	fields := make([]FieldSchema, len(s.fields))
	copy(fields, s.fields)
	return fields
}

// Encode encodes v in declaration order. Keys of v that are not declared
// fields are ignored.
func (s *StructSchema) Encode(v Fields) ([]byte, error) {
	return Encode(s, v)
}

// Decode decodes a struct at offset, returning the offset following it
func (s *StructSchema) Decode(data []byte, offset int) (Fields, int, error) {
	v, next, err := Decode(s, data, offset)
	if err != nil {
		return nil, offset, err
	}
	return v.(Fields), next, nil
}

func (s *StructSchema) encode(enc *bin.Encoder, v interface{}) error {
	var values Fields
	switch typed := v.(type) {
	case Fields:
		values = typed
	case map[string]interface{}:
		values = typed
	case nil:
		values = nil
	default:
		return typeMismatch(s, v)
	}

	for _, f := range s.fields {
		value, ok := values[f.Name]
		if !ok {
			return errors.Wrapf(ErrMissingField, "%s.%s", s.name, f.Name)
		}
		if err := f.Schema.encode(enc, value); err != nil {
			return errors.WithMessagef(err, "%s.%s", s.name, f.Name)
		}
	}
	return nil
}

func (s *StructSchema) decode(c *Cursor) (interface{}, error) {
	values := make(Fields, len(s.fields))
	for _, f := range s.fields {
		value, err := f.Schema.decode(c)
		if err != nil {
			return nil, errors.WithMessagef(err, "%s.%s", s.name, f.Name)
		}
		values[f.Name] = value
	}
	return values, nil
}

// EncodeStruct encodes a struct value under s
func EncodeStruct(s *StructSchema, v Fields) ([]byte, error) {
	return s.Encode(v)
}

// DecodeStruct decodes a struct value of s at offset
func DecodeStruct(s *StructSchema, data []byte, offset int) (Fields, int, error) {
	return s.Decode(data, offset)
}
