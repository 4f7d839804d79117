package solana

import (
	"context"
	"crypto/ed25519"
)

// BuildContext carries the collaborators instruction builders consult when a
// caller leaves account or program values unset.
type BuildContext struct {
	// Identity is the default signer for optional authority accounts
	Identity ed25519.PublicKey

	// Programs resolves program addresses by name. A nil registry always
	// yields the builder's default address.
	Programs *ProgramRegistry
}

// Program resolves the named program address, falling back to defaultAddress
func (c *BuildContext) Program(ctx context.Context, name string, defaultAddress ed25519.PublicKey) (ed25519.PublicKey, error) {
	if c == nil || c.Programs == nil {
		return defaultAddress, nil
	}
	return c.Programs.GetPublicKey(ctx, name, defaultAddress)
}

// IdentityOr returns key when set, otherwise the context identity
func (c *BuildContext) IdentityOr(key ed25519.PublicKey) ed25519.PublicKey {
	if len(key) > 0 || c == nil {
		return key
	}
	return c.Identity
}
