package tokenmetadata

import (
	"context"
	"crypto/ed25519"

	"github.com/code-payments/token-metadata-client/pkg/solana"
	"github.com/code-payments/token-metadata-client/pkg/solana/binary"
)

const (
	BubblegumSetCollectionSizeInstructionArgsSize = SetCollectionSizeArgsSize // set_collection_size_args
)

var bubblegumSetCollectionSizeInstructionSchema = binary.Instruction(
	"BubblegumSetCollectionSizeInstructionData",
	uint8(InstructionTypeBubblegumSetCollectionSize),
	binary.Field("setCollectionSizeArgs", SetCollectionSizeArgsSchema),
)

type BubblegumSetCollectionSizeInstructionArgs struct {
	SetCollectionSizeArgs SetCollectionSizeArgs
}

type BubblegumSetCollectionSizeInstructionAccounts struct {
	// Collection Metadata account
	CollectionMetadata ed25519.PublicKey
	// Collection Update authority
	CollectionAuthority ed25519.PublicKey
	// Mint of the Collection
	CollectionMint ed25519.PublicKey
	// Signing PDA of Bubblegum program
	BubblegumSigner ed25519.PublicKey
	// Collection Authority Record PDA, optional
	CollectionAuthorityRecord ed25519.PublicKey
}

func NewBubblegumSetCollectionSizeInstruction(
	ctx context.Context,
	bctx *solana.BuildContext,
	accounts *BubblegumSetCollectionSizeInstructionAccounts,
	args *BubblegumSetCollectionSizeInstructionArgs,
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
				Name:     "bubblegumSigner",
				Index:    3,
				IsSigner: true,
				Value:    accounts.BubblegumSigner,
			},
			{
				Name:     "collectionAuthorityRecord",
				Index:    4,
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
	data, err := bubblegumSetCollectionSizeInstructionSchema.Encode(binary.Fields{
		"setCollectionSizeArgs": args.SetCollectionSizeArgs.fields(),
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(program, data, metas...), nil
}
