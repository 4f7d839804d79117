package binary

import (
	"crypto/ed25519"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitive_CrossImpl(t *testing.T) {
	for _, tc := range []struct {
		kind    Kind
		value   interface{}
		encoded []byte
	}{
		{KindU8, uint8(0), []byte{0x00}},
		{KindU8, uint8(0xff), []byte{0xff}},
		{KindU16, uint16(0x0102), []byte{0x02, 0x01}},
		{KindU32, uint32(0x01020304), []byte{0x04, 0x03, 0x02, 0x01}},
		{KindU64, uint64(0x0102030405060708), []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}},
		{KindU64, uint64(math.MaxUint64), []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{KindI8, int8(-1), []byte{0xff}},
		{KindI16, int16(-2), []byte{0xfe, 0xff}},
		{KindI32, int32(math.MinInt32), []byte{0x00, 0x00, 0x00, 0x80}},
		{KindI64, int64(-1), []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{KindBool, false, []byte{0x00}},
		{KindBool, true, []byte{0x01}},
	} {
		encoded, err := EncodePrimitive(tc.kind, tc.value)
		require.NoError(t, err)
		assert.Equal(t, tc.encoded, encoded, tc.kind.String())

		width, ok := tc.kind.Width()
		require.True(t, ok)
		assert.Len(t, encoded, width)

		decoded, offset, err := DecodePrimitive(tc.kind, tc.encoded, 0)
		require.NoError(t, err)
		assert.Equal(t, tc.value, decoded)
		assert.Equal(t, width, offset)
	}
}

func TestPrimitive_DecodeAtOffset(t *testing.T) {
	data := []byte{0xaa, 0xbb, 0x2a, 0x00, 0x00, 0x00, 0xcc}

	decoded, offset, err := DecodePrimitive(KindU32, data, 2)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), decoded)
	assert.Equal(t, 6, offset)
}

func TestPrimitive_OutOfBounds(t *testing.T) {
	for _, kind := range []Kind{KindU8, KindU16, KindU32, KindU64, KindI8, KindI16, KindI32, KindI64, KindBool} {
		width, _ := kind.Width()
		full := make([]byte, width)

		for n := 0; n < width; n++ {
			_, offset, err := DecodePrimitive(kind, full[:n], 0)
			assert.ErrorIs(t, err, ErrOutOfBounds, kind.String())
			assert.Equal(t, 0, offset)
		}

		_, _, err := DecodePrimitive(kind, full, 1)
		assert.ErrorIs(t, err, ErrOutOfBounds, kind.String())
	}

	_, _, err := DecodePrimitive(KindU8, []byte{0x01}, -1)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, _, err = DecodePrimitive(KindU8, []byte{0x01}, 2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestPrimitive_TypeMismatch(t *testing.T) {
	_, err := EncodePrimitive(KindU64, 12)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = EncodePrimitive(KindBool, uint8(1))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = EncodePrimitive(KindString, "hello")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, _, err = DecodePrimitive(KindStruct, []byte{0x00}, 0)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestBool_NonZeroDecodesTrue(t *testing.T) {
	for b := 0; b <= math.MaxUint8; b++ {
		decoded, offset, err := Decode(Bool, []byte{byte(b)}, 0)
		require.NoError(t, err)
		assert.Equal(t, b != 0, decoded)
		assert.Equal(t, 1, offset)
	}
}

func TestBytes(t *testing.T) {
	key, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	encoded, err := Encode(PublicKey, key)
	require.NoError(t, err)
	assert.Equal(t, []byte(key), encoded)

	encoded, err = Encode(PublicKey, []byte(key))
	require.NoError(t, err)
	assert.Equal(t, []byte(key), encoded)

	decoded, offset, err := Decode(PublicKey, encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte(key), decoded)
	assert.Equal(t, ed25519.PublicKeySize, offset)

	// Decoded values do not alias the input buffer
	encoded[0]++
	assert.NotEqual(t, encoded[0], decoded.([]byte)[0])

	_, err = Encode(PublicKey, key[:31])
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, _, err = Decode(PublicKey, encoded[:31], 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	encoded, err = Encode(Bytes(0), []byte{})
	require.NoError(t, err)
	assert.Empty(t, encoded)
}

func TestString(t *testing.T) {
	encoded, err := Encode(String, "hello")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x05, 0x00, 0x00, 0x00, 'h', 'e', 'l', 'l', 'o'}, encoded)

	decoded, offset, err := Decode(String, encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", decoded)
	assert.Equal(t, len(encoded), offset)

	_, ok := String.Size()
	assert.False(t, ok)

	_, _, err = Decode(String, encoded[:8], 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, _, err = Decode(String, []byte{0xff, 0xff, 0xff, 0xff}, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestOption(t *testing.T) {
	s := Option(U16)

	encoded, err := Encode(s, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, encoded)

	encoded, err = Encode(s, uint16(5))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x05, 0x00}, encoded)

	decoded, offset, err := Decode(s, []byte{0x00, 0xff}, 0)
	require.NoError(t, err)
	assert.Nil(t, decoded)
	assert.Equal(t, 1, offset)

	decoded, offset, err = Decode(s, []byte{0x01, 0x05, 0x00}, 0)
	require.NoError(t, err)
	assert.Equal(t, uint16(5), decoded)
	assert.Equal(t, 3, offset)

	for _, presence := range []byte{0x02, 0x80, 0xff} {
		_, _, err = Decode(s, []byte{presence, 0x05, 0x00}, 0)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	}

	_, _, err = Decode(s, []byte{0x01, 0x05}, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, _, err = Decode(s, nil, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestOption_NilInnerValues(t *testing.T) {
	// Present and absent would both decode to nil
	assert.Panics(t, func() { Option(Unit) })
	assert.Panics(t, func() { Option(Option(U8)) })

	assert.NotPanics(t, func() { Option(Array(Option(U8), 2)) })
}

func TestArray(t *testing.T) {
	s := Array(U16, 3)

	size, ok := s.Size()
	require.True(t, ok)
	assert.Equal(t, 6, size)

	encoded, err := Encode(s, []interface{}{uint16(1), uint16(2), uint16(3)})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00}, encoded)

	decoded, offset, err := Decode(s, encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{uint16(1), uint16(2), uint16(3)}, decoded)
	assert.Equal(t, 6, offset)

	_, err = Encode(s, []interface{}{uint16(1)})
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Encode(s, []interface{}{uint16(1), uint16(2), uint8(3)})
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, _, err = Decode(s, encoded[:5], 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, ok = Array(String, 2).Size()
	assert.False(t, ok)
}

func TestUnit(t *testing.T) {
	encoded, err := Encode(Unit, nil)
	require.NoError(t, err)
	assert.Empty(t, encoded)

	decoded, offset, err := Decode(Unit, []byte{0x01}, 1)
	require.NoError(t, err)
	assert.Nil(t, decoded)
	assert.Equal(t, 1, offset)
}
