package binary

import (
	"fmt"
	"math"

	bin "github.com/gagliardetto/binary"
	"github.com/pkg/errors"
)

// CaseSchema is a union alternative. A nil payload declares a unit variant.
type CaseSchema struct {
	Name    string
	Payload *StructSchema
}

// Case declares a union variant carrying a struct payload
func Case(name string, payload *StructSchema) CaseSchema {
	return CaseSchema{Name: name, Payload: payload}
}

// UnitCase declares a union variant without a payload
func UnitCase(name string) CaseSchema {
	return CaseSchema{Name: name}
}

// UnionSchema is a closed set of variants ("data enum"). On the wire a value
// is a single tag byte holding the variant's 0-based declaration ordinal,
// followed by the variant payload.
type UnionSchema struct {
	name     string
	cases    []CaseSchema
	ordinals map[string]uint8
	size     int
	fixed    bool
}

// Union declares a union schema. It panics on duplicate variant names or when
// there are more variants than a tag byte can address.
func Union(name string, cases ...CaseSchema) *UnionSchema {
	if len(cases) > math.MaxUint8+1 {
		panic(fmt.Sprintf("binary: union %s declares %d variants", name, len(cases)))
	}

	s := &UnionSchema{
		name:     name,
		cases:    make([]CaseSchema, len(cases)),
		ordinals: make(map[string]uint8, len(cases)),
		fixed:    true,
	}
	copy(s.cases, cases)

	for i, c := range cases {
		if _, ok := s.ordinals[c.Name]; ok {
			panic(fmt.Sprintf("binary: duplicate variant %q in union %s", c.Name, name))
		}
		s.ordinals[c.Name] = uint8(i)

		size, ok := c.size()
		if !ok || (i > 0 && size != s.size) {
			s.fixed = false
		}
		s.size = size
	}

	return s
}

func (c CaseSchema) size() (int, bool) {
	if c.Payload == nil {
		return 0, true
	}
	return c.Payload.Size()
}

func (s *UnionSchema) Kind() Kind {
	return KindUnion
}

func (s *UnionSchema) Name() string {
	return s.name
}

// Size is only fixed when every variant payload has the same fixed size
func (s *UnionSchema) Size() (int, bool) {
	if !s.fixed || len(s.cases) == 0 {
		return 0, false
	}
	return 1 + s.size, true
}

// Cases returns the declared variants in ordinal order
func (s *UnionSchema) Cases() []CaseSchema {
	cases := make([]CaseSchema, len(s.cases))
	copy(cases, s.cases)
	return cases
}

// Ordinal returns the wire tag of the named variant
func (s *UnionSchema) Ordinal(name string) (uint8, bool) {
	ordinal, ok := s.ordinals[name]
	return ordinal, ok
}

// Encode encodes the named variant with its payload. The payload of unit
// variants is ignored.
func (s *UnionSchema) Encode(name string, payload Fields) ([]byte, error) {
	return Encode(s, Variant{Name: name, Fields: payload})
}

// Decode decodes a union value at offset, returning the offset following it
func (s *UnionSchema) Decode(data []byte, offset int) (Variant, int, error) {
	v, next, err := Decode(s, data, offset)
	if err != nil {
		return Variant{}, offset, err
	}
	return v.(Variant), next, nil
}

func (s *UnionSchema) encode(enc *bin.Encoder, v interface{}) error {
	var variant Variant
	switch typed := v.(type) {
	case Variant:
		variant = typed
	case *Variant:
		if typed == nil {
			return typeMismatch(s, v)
		}
		variant = *typed
	default:
		return typeMismatch(s, v)
	}

	ordinal, ok := s.ordinals[variant.Name]
	if !ok {
		return errors.Wrapf(ErrUnknownVariant, "%s::%s", s.name, variant.Name)
	}

	if err := enc.WriteUint8(ordinal); err != nil {
		return err
	}

	payload := s.cases[ordinal].Payload
	if payload == nil {
		return nil
	}
	if err := payload.encode(enc, variant.Fields); err != nil {
		return errors.WithMessagef(err, "%s::%s", s.name, variant.Name)
	}
	return nil
}

func (s *UnionSchema) decode(c *Cursor) (interface{}, error) {
	offset := c.Offset()

	tag, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	if int(tag) >= len(s.cases) {
		return nil, errors.Wrapf(ErrUnknownTag, "%s: tag %d at offset %d", s.name, tag, offset)
	}

	selected := s.cases[tag]
	if selected.Payload == nil {
		return Variant{Name: selected.Name}, nil
	}

	payload, err := selected.Payload.decode(c)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s::%s", s.name, selected.Name)
	}
	return Variant{Name: selected.Name, Fields: payload.(Fields)}, nil
}

// EncodeUnion encodes the named variant of s
func EncodeUnion(s *UnionSchema, name string, payload Fields) ([]byte, error) {
	return s.Encode(name, payload)
}

// DecodeUnion decodes a variant of s at offset
func DecodeUnion(s *UnionSchema, data []byte, offset int) (Variant, int, error) {
	return s.Decode(data, offset)
}
