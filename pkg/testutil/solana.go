package testutil

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"
)

func GenerateSolanaKeys(t *testing.T, n int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, n)
	for i := 0; i < n; i++ {
		p, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		keys[i] = p
	}
	return keys
}

// GenerateNamedSolanaKeys returns a distinct random key per account name
func GenerateNamedSolanaKeys(t *testing.T, names ...string) map[string]ed25519.PublicKey {
	keys := GenerateSolanaKeys(t, len(names))

	named := make(map[string]ed25519.PublicKey, len(names))
	for i, name := range names {
		named[name] = keys[i]
	}
	return named
}
