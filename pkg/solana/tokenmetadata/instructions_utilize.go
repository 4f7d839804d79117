package tokenmetadata

import (
	"context"
	"crypto/ed25519"

	"github.com/code-payments/token-metadata-client/pkg/solana"
	"github.com/code-payments/token-metadata-client/pkg/solana/binary"
)

const (
	UtilizeInstructionArgsSize = UtilizeArgsSize // utilize_args
)

var utilizeInstructionSchema = binary.Instruction(
	"UtilizeInstructionData",
	uint8(InstructionTypeUtilize),
	binary.Field("utilizeArgs", UtilizeArgsSchema),
)

type UtilizeInstructionArgs struct {
	UtilizeArgs UtilizeArgs
}

// UtilizeInstructionAccounts are the accounts of a Utilize instruction. Unset
// program accounts resolve through the build context, unset optional accounts
// are replaced by the program address.
type UtilizeInstructionAccounts struct {
	Metadata     ed25519.PublicKey
	TokenAccount ed25519.PublicKey
	Mint         ed25519.PublicKey
	UseAuthority ed25519.PublicKey
	Owner        ed25519.PublicKey

	TokenProgram           ed25519.PublicKey
	AssociatedTokenProgram ed25519.PublicKey
	SystemProgram          ed25519.PublicKey
	Rent                   ed25519.PublicKey

	UseAuthorityRecord ed25519.PublicKey
	Burner             ed25519.PublicKey
}

func NewUtilizeInstruction(
	ctx context.Context,
	bctx *solana.BuildContext,
	accounts *UtilizeInstructionAccounts,
	args *UtilizeInstructionArgs,
) (solana.Instruction, error) {
	program, err := resolveProgram(ctx, bctx)
	if err != nil {
		return solana.Instruction{}, err
	}

	// Default values
	tokenProgram, err := resolveDefault(ctx, bctx, accounts.TokenProgram, SplTokenProgramName, SPL_TOKEN_PROGRAM_ID)
	if err != nil {
		return solana.Instruction{}, err
	}
	associatedTokenProgram, err := resolveDefault(ctx, bctx, accounts.AssociatedTokenProgram, SplAssociatedTokenProgramName, SPL_ASSOCIATED_TOKEN_PROGRAM_ID)
	if err != nil {
		return solana.Instruction{}, err
	}
	systemProgram, err := resolveDefault(ctx, bctx, accounts.SystemProgram, SystemProgramName, SYSTEM_PROGRAM_ID)
	if err != nil {
		return solana.Instruction{}, err
	}
	rent := accounts.Rent
	if len(rent) == 0 {
		rent = SYSVAR_RENT_PUBKEY
	}

	// Instruction accounts
	metas, _, err := solana.ResolveAccounts(
		[]solana.ResolvedAccount{
			{Name: "metadata", Index: 0, IsWritable: true, Value: accounts.Metadata},
			{Name: "tokenAccount", Index: 1, IsWritable: true, Value: accounts.TokenAccount},
			{Name: "mint", Index: 2, IsWritable: true, Value: accounts.Mint},
			{Name: "useAuthority", Index: 3, IsWritable: true, IsSigner: true, Value: accounts.UseAuthority},
			{Name: "owner", Index: 4, Value: accounts.Owner},
			{Name: "tokenProgram", Index: 5, Value: tokenProgram},
			{Name: "ataProgram", Index: 6, Value: associatedTokenProgram},
			{Name: "systemProgram", Index: 7, Value: systemProgram},
			{Name: "rent", Index: 8, Value: rent},
			{Name: "useAuthorityRecord", Index: 9, IsWritable: true, Optional: true, Value: accounts.UseAuthorityRecord},
			{Name: "burner", Index: 10, Optional: true, Value: accounts.Burner},
		},
		solana.OptionalAccountProgramID,
		program,
	)
	if err != nil {
		return solana.Instruction{}, err
	}

	// Serialize instruction arguments
	data, err := utilizeInstructionSchema.Encode(binary.Fields{
		"utilizeArgs": args.UtilizeArgs.fields(),
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(program, data, metas...), nil
}
