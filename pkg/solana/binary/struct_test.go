package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPointSchema = Struct(
	"Point",
	Field("x", U16),
	Field("flag", Bool),
	Field("y", U32),
)

func TestStruct_DeclaredOrder(t *testing.T) {
	encoded, err := testPointSchema.Encode(Fields{
		"y":    uint32(3),
		"x":    uint16(1),
		"flag": true,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00, 0x01, 0x03, 0x00, 0x00, 0x00}, encoded)

	size, ok := testPointSchema.Size()
	require.True(t, ok)
	assert.Equal(t, len(encoded), size)

	decoded, offset, err := testPointSchema.Decode(encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, Fields{"x": uint16(1), "flag": true, "y": uint32(3)}, decoded)
	assert.Equal(t, 7, offset)
}

func TestStruct_MissingField(t *testing.T) {
	_, err := EncodeStruct(testPointSchema, Fields{
		"x": uint16(1),
		"y": uint32(3),
	})
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "Point.flag")

	_, err = EncodeStruct(testPointSchema, nil)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestStruct_FieldTypeMismatch(t *testing.T) {
	_, err := EncodeStruct(testPointSchema, Fields{
		"x":    uint16(1),
		"flag": true,
		"y":    uint64(3),
	})
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "Point.y")

	_, err = Encode(testPointSchema, []interface{}{uint16(1)})
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestStruct_ExtraKeysIgnored(t *testing.T) {
	encoded, err := EncodeStruct(testPointSchema, Fields{
		"x":     uint16(1),
		"flag":  false,
		"y":     uint32(3),
		"extra": "ignored",
	})
	require.NoError(t, err)
	assert.Len(t, encoded, 7)
}

func TestStruct_Nested(t *testing.T) {
	s := Struct(
		"Segment",
		Field("from", testPointSchema),
		Field("to", testPointSchema),
		Field("label", Option(String)),
	)

	_, ok := s.Size()
	assert.False(t, ok)

	value := Fields{
		"from":  Fields{"x": uint16(1), "flag": false, "y": uint32(2)},
		"to":    Fields{"x": uint16(3), "flag": true, "y": uint32(4)},
		"label": "edge",
	}
	encoded, err := s.Encode(value)
	require.NoError(t, err)
	assert.Len(t, encoded, 7+7+1+4+4)

	decoded, offset, err := DecodeStruct(s, append([]byte{0xee}, encoded...), 1)
	require.NoError(t, err)
	assert.Equal(t, value, decoded)
	assert.Equal(t, len(encoded)+1, offset)
}

func TestStruct_DecodeOutOfBounds(t *testing.T) {
	encoded, err := testPointSchema.Encode(Fields{"x": uint16(1), "flag": true, "y": uint32(3)})
	require.NoError(t, err)

	for n := 0; n < len(encoded); n++ {
		_, offset, err := testPointSchema.Decode(encoded[:n], 0)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Equal(t, 0, offset)
	}
}

func TestStruct_Empty(t *testing.T) {
	s := Struct("Empty")

	size, ok := s.Size()
	require.True(t, ok)
	assert.Zero(t, size)

	encoded, err := s.Encode(nil)
	require.NoError(t, err)
	assert.Empty(t, encoded)

	decoded, offset, err := s.Decode(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, decoded)
	assert.Zero(t, offset)
}

func TestStruct_DuplicateFieldPanics(t *testing.T) {
	assert.Panics(t, func() {
		Struct("Dup", Field("a", U8), Field("a", U16))
	})
}

func TestStruct_FieldsIsCopy(t *testing.T) {
	fields := testPointSchema.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "x", fields[0].Name)
	assert.Equal(t, "flag", fields[1].Name)
	assert.Equal(t, "y", fields[2].Name)

	fields[0].Name = "mutated"
	assert.Equal(t, "x", testPointSchema.Fields()[0].Name)
}

func TestGet(t *testing.T) {
	f := Fields{"size": uint64(7), "label": nil, "other": "x"}

	size, err := Get[uint64](f, "size")
	require.NoError(t, err)
	assert.EqualValues(t, 7, size)

	_, err = Get[uint32](f, "size")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Get[uint64](f, "missing")
	assert.ErrorIs(t, err, ErrMissingField)

	label, err := GetOptional[string](f, "label")
	require.NoError(t, err)
	assert.Nil(t, label)

	other, err := GetOptional[string](f, "other")
	require.NoError(t, err)
	require.NotNil(t, other)
	assert.Equal(t, "x", *other)

	_, err = GetOptional[uint8](f, "other")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
