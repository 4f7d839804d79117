package tokenmetadata

import (
	"context"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/token-metadata-client/pkg/solana"
)

var (
	ErrInvalidProgram         = errors.New("invalid program id")
	ErrInvalidAccountData     = errors.New("unexpected account data")
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
)

// Registry names consulted through solana.BuildContext
const (
	ProgramName                   = "mplTokenMetadata"
	SplTokenProgramName           = "splToken"
	SplAssociatedTokenProgramName = "splAssociatedToken"
	SystemProgramName             = "splSystem"
)

var (
	PROGRAM_ADDRESS = solana.MustBase58Decode("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	SYSTEM_PROGRAM_ID               = solana.MustBase58Decode("11111111111111111111111111111111")
	SPL_TOKEN_PROGRAM_ID            = solana.MustBase58Decode("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	SPL_ASSOCIATED_TOKEN_PROGRAM_ID = solana.MustBase58Decode("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")

	SYSVAR_RENT_PUBKEY = solana.MustBase58Decode("SysvarRent111111111111111111111111111111111")
)

func resolveProgram(ctx context.Context, bctx *solana.BuildContext) (ed25519.PublicKey, error) {
	program, err := bctx.Program(ctx, ProgramName, PROGRAM_ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve program address")
	}
	return program, nil
}

// resolveDefault returns key when set, otherwise the registry address of the
// named program
func resolveDefault(ctx context.Context, bctx *solana.BuildContext, key ed25519.PublicKey, name string, fallback ed25519.PublicKey) (ed25519.PublicKey, error) {
	if len(key) > 0 {
		return key, nil
	}
	return bctx.Program(ctx, name, fallback)
}
