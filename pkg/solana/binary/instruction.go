package binary

import (
	"github.com/pkg/errors"
)

// InstructionSchema describes a program instruction payload: a fixed
// discriminator byte followed by the struct encoding of the arguments.
type InstructionSchema struct {
	discriminator uint8
	args          *StructSchema
}

// Instruction declares an instruction payload schema
func Instruction(name string, discriminator uint8, args ...FieldSchema) *InstructionSchema {
	return &InstructionSchema{
		discriminator: discriminator,
		args:          Struct(name, args...),
	}
}

func (s *InstructionSchema) Name() string {
	return s.args.Name()
}

func (s *InstructionSchema) Discriminator() uint8 {
	return s.discriminator
}

// Args returns the argument struct schema
func (s *InstructionSchema) Args() *StructSchema {
	return s.args
}

// Size returns the payload size, including the discriminator
func (s *InstructionSchema) Size() (int, bool) {
	size, ok := s.args.Size()
	if !ok {
		return 0, false
	}
	return 1 + size, true
}

// Matches reports whether data starts with this instruction's discriminator
func (s *InstructionSchema) Matches(data []byte) bool {
	return len(data) > 0 && data[0] == s.discriminator
}

// Encode returns the instruction payload for args
func (s *InstructionSchema) Encode(args Fields) ([]byte, error) {
	enc, buf := newEncoder()
	if err := enc.WriteUint8(s.discriminator); err != nil {
		return nil, err
	}
	if err := s.args.encode(enc, args); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode verifies the discriminator at offset and decodes the arguments that
// follow it
func (s *InstructionSchema) Decode(data []byte, offset int) (Fields, int, error) {
	c, err := NewCursor(data, offset)
	if err != nil {
		return nil, offset, err
	}

	discriminator, err := c.ReadUint8()
	if err != nil {
		return nil, offset, err
	}
	if discriminator != s.discriminator {
		return nil, offset, errors.Wrapf(ErrInvalidEncoding, "%s: discriminator %d, expected %d", s.Name(), discriminator, s.discriminator)
	}

	args, err := s.args.decode(c)
	if err != nil {
		return nil, offset, err
	}
	return args.(Fields), c.Offset(), nil
}
