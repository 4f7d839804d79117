package tokenmetadata

import (
	"context"
	"crypto/ed25519"

	"github.com/code-payments/token-metadata-client/pkg/solana"
	"github.com/code-payments/token-metadata-client/pkg/solana/binary"
)

var collectInstructionSchema = binary.Instruction(
	"CollectInstructionData",
	uint8(InstructionTypeCollect),
)

type CollectInstructionArgs struct {
}

type CollectInstructionAccounts struct {
	// Authority to collect fees. Defaults to the context identity.
	Authority ed25519.PublicKey
	// PDA to retrieve fees from
	PdaAccount ed25519.PublicKey
}

func NewCollectInstruction(
	ctx context.Context,
	bctx *solana.BuildContext,
	accounts *CollectInstructionAccounts,
	args *CollectInstructionArgs,
) (solana.Instruction, error) {
	program, err := resolveProgram(ctx, bctx)
	if err != nil {
		return solana.Instruction{}, err
	}

	// Instruction accounts
	metas, _, err := solana.ResolveAccounts(
		[]solana.ResolvedAccount{
			{
				Name:     "authority",
				Index:    0,
				IsSigner: true,
				Value:    bctx.IdentityOr(accounts.Authority),
			},
			{
				Name:  "pdaAccount",
				Index: 1,
				Value: accounts.PdaAccount,
			},
		},
		solana.OptionalAccountProgramID,
		program,
	)
	if err != nil {
		return solana.Instruction{}, err
	}

	// Serialize instruction arguments
	data, err := collectInstructionSchema.Encode(nil)
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(program, data, metas...), nil
}
