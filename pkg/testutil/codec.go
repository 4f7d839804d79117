package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertTruncationsFail decodes every strict prefix of a valid encoding and
// verifies each attempt fails with target.
func AssertTruncationsFail(t *testing.T, encoded []byte, target error, decode func([]byte) error) {
	require.NoError(t, decode(encoded))

	for i := 0; i < len(encoded); i++ {
		err := decode(encoded[:i])
		assert.ErrorIs(t, err, target, "prefix length %d", i)
	}
}
