package tokenmetadata

import (
	"context"
	"crypto/ed25519"

	"github.com/code-payments/token-metadata-client/pkg/solana"
	"github.com/code-payments/token-metadata-client/pkg/solana/binary"
)

const (
	SetCollectionSizeInstructionArgsSize = SetCollectionSizeArgsSize // set_collection_size_args
)

var setCollectionSizeInstructionSchema = binary.Instruction(
	"SetCollectionSizeInstructionData",
	uint8(InstructionTypeSetCollectionSize),
	binary.Field("setCollectionSizeArgs", SetCollectionSizeArgsSchema),
)

type SetCollectionSizeInstructionArgs struct {
	SetCollectionSizeArgs SetCollectionSizeArgs
}

type SetCollectionSizeInstructionAccounts struct {
	// Collection Metadata account
	CollectionMetadata ed25519.PublicKey
	// Collection Update authority
	CollectionAuthority ed25519.PublicKey
	// Mint of the Collection
	CollectionMint ed25519.PublicKey
	// Collection Authority Record PDA, optional
	CollectionAuthorityRecord ed25519.PublicKey
}

func NewSetCollectionSizeInstruction(
	ctx context.Context,
	bctx *solana.BuildContext,
	accounts *SetCollectionSizeInstructionAccounts,
	args *SetCollectionSizeInstructionArgs,
) (solana.Instruction, error) {
	program, err := resolveProgram(ctx, bctx)
	if err != nil {
		return solana.Instruction{}, err
	}

	// Instruction accounts
	metas, _, err := solana.ResolveAccounts(
		[]solana.ResolvedAccount{
			{
				Name:       "collectionMetadata",
				Index:      0,
				IsWritable: true,
				Value:      accounts.CollectionMetadata,
			},
			{
				Name:       "collectionAuthority",
				Index:      1,
				IsWritable: true,
				IsSigner:   true,
				Value:      accounts.CollectionAuthority,
			},
			{
				Name:  "collectionMint",
				Index: 2,
				Value: accounts.CollectionMint,
			},
			{
				Name:     "collectionAuthorityRecord",
				Index:    3,
				Optional: true,
				Value:    accounts.CollectionAuthorityRecord,
			},
		},
		solana.OptionalAccountOmitted,
		program,
	)
	if err != nil {
		return solana.Instruction{}, err
	}

	// Serialize instruction arguments
	data, err := setCollectionSizeInstructionSchema.Encode(binary.Fields{
		"setCollectionSizeArgs": args.SetCollectionSizeArgs.fields(),
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(program, data, metas...), nil
}
