package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstruction_NoArguments(t *testing.T) {
	s := Instruction("Collect", 54)

	encoded, err := s.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x36}, encoded)

	size, ok := s.Size()
	require.True(t, ok)
	assert.Equal(t, 1, size)

	args, offset, err := s.Decode(encoded, 0)
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t, 1, offset)
}

func TestInstruction_WithArguments(t *testing.T) {
	s := Instruction("SetSize", 36, Field("size", U64))
	assert.Equal(t, "SetSize", s.Name())
	assert.EqualValues(t, 36, s.Discriminator())

	encoded, err := s.Encode(Fields{"size": uint64(1000)})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x24, 0xe8, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, encoded)
	assert.True(t, s.Matches(encoded))

	args, offset, err := s.Decode(encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, Fields{"size": uint64(1000)}, args)
	assert.Equal(t, 9, offset)

	_, err = s.Encode(nil)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestInstruction_DiscriminatorMismatch(t *testing.T) {
	s := Instruction("SetSize", 36, Field("size", U64))

	data := []byte{0x22, 0xe8, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	assert.False(t, s.Matches(data))
	assert.False(t, s.Matches(nil))

	_, _, err := s.Decode(data, 0)
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, _, err = s.Decode(nil, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, _, err = s.Decode([]byte{0x24, 0x01}, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
