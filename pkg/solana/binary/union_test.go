package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 9 bytes: u8 + u64
var testPayloadSchema = Struct(
	"Payload",
	Field("method", U8),
	Field("amount", U64),
)

var testToggleSchema = Union(
	"Toggle",
	UnitCase("None"),
	UnitCase("Clear"),
	Case("Set", Struct("Set", Field("payload", testPayloadSchema))),
)

func TestUnion_UnitVariant(t *testing.T) {
	encoded, err := EncodeUnion(testToggleSchema, "None", nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, encoded)

	encoded, err = EncodeUnion(testToggleSchema, "Clear", Fields{"ignored": true})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, encoded)
}

func TestUnion_PayloadVariant(t *testing.T) {
	size, ok := testPayloadSchema.Size()
	require.True(t, ok)
	require.Equal(t, 9, size)

	payload := Fields{"payload": Fields{"method": uint8(2), "amount": uint64(0x0807060504030201)}}

	encoded, err := testToggleSchema.Encode("Set", payload)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x02, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, encoded)

	decoded, offset, err := testToggleSchema.Decode(encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, Variant{Name: "Set", Fields: payload}, decoded)
	assert.Equal(t, 10, offset)
}

func TestUnion_DecodeIgnoresTrailingBytes(t *testing.T) {
	for _, data := range [][]byte{
		{0x01},
		{0x01, 0xff},
		{0x01, 0x02, 0x03, 0x04},
	} {
		decoded, offset, err := DecodeUnion(testToggleSchema, data, 0)
		require.NoError(t, err)
		assert.Equal(t, Variant{Name: "Clear"}, decoded)
		assert.Equal(t, 1, offset)
	}
}

func TestUnion_UnknownVariant(t *testing.T) {
	encoded, err := testToggleSchema.Encode("Toggle", nil)
	assert.ErrorIs(t, err, ErrUnknownVariant)
	assert.Nil(t, encoded)

	_, err = Encode(testToggleSchema, Fields{})
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestUnion_UnknownTag(t *testing.T) {
	for _, tag := range []byte{0x03, 0x04, 0xff} {
		_, offset, err := testToggleSchema.Decode([]byte{tag}, 0)
		assert.ErrorIs(t, err, ErrUnknownTag)
		assert.Equal(t, 0, offset)
	}

	_, _, err := testToggleSchema.Decode(nil, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestUnion_MissingPayloadField(t *testing.T) {
	_, err := testToggleSchema.Encode("Set", Fields{"payload": Fields{"method": uint8(1)}})
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "Payload.amount")
}

func TestUnion_TruncatedPayload(t *testing.T) {
	encoded, err := testToggleSchema.Encode("Set", Fields{"payload": Fields{"method": uint8(1), "amount": uint64(5)}})
	require.NoError(t, err)

	for n := 0; n < len(encoded); n++ {
		_, _, err := testToggleSchema.Decode(encoded[:n], 0)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
}

func TestUnion_OrdinalFidelity(t *testing.T) {
	names := []string{"Zulu", "Alpha", "Mike", "Bravo"}

	var cases []CaseSchema
	for _, name := range names {
		cases = append(cases, UnitCase(name))
	}
	s := Union("Shuffled", cases...)

	for i, name := range names {
		ordinal, ok := s.Ordinal(name)
		require.True(t, ok)
		assert.EqualValues(t, i, ordinal)

		encoded, err := s.Encode(name, nil)
		require.NoError(t, err)
		assert.Equal(t, []byte{byte(i)}, encoded)

		decoded, _, err := s.Decode([]byte{byte(i)}, 0)
		require.NoError(t, err)
		assert.Equal(t, name, decoded.Name)
	}

	_, ok := s.Ordinal("Yankee")
	assert.False(t, ok)
}

func TestUnion_Size(t *testing.T) {
	_, ok := testToggleSchema.Size()
	assert.False(t, ok)

	size, ok := Union("Scalar", UnitCase("A"), UnitCase("B")).Size()
	require.True(t, ok)
	assert.Equal(t, 1, size)

	size, ok = Union(
		"Same",
		Case("A", Struct("A", Field("v", U32))),
		Case("B", Struct("B", Field("w", I32))),
	).Size()
	require.True(t, ok)
	assert.Equal(t, 5, size)

	_, ok = Union("Empty").Size()
	assert.False(t, ok)
}

func TestUnion_DuplicateVariantPanics(t *testing.T) {
	assert.Panics(t, func() {
		Union("Dup", UnitCase("A"), UnitCase("A"))
	})
}
