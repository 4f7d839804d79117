package tokenmetadata

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/token-metadata-client/pkg/solana"
	"github.com/code-payments/token-metadata-client/pkg/solana/binary"
)

// DecompiledInstruction is a decoded program instruction. Accounts and Args
// hold the *<Name>InstructionAccounts and *<Name>InstructionArgs of Type.
type DecompiledInstruction struct {
	Type     InstructionType
	Accounts interface{}
	Args     interface{}
}

// DecompileInstruction decodes an instruction addressed to PROGRAM_ID
func DecompileInstruction(ixn solana.Instruction) (*DecompiledInstruction, error) {
	return DecompileProgramInstruction(PROGRAM_ID, ixn)
}

// DecompileProgramInstruction decodes an instruction addressed to program,
// which may be a deployment other than PROGRAM_ID
func DecompileProgramInstruction(program ed25519.PublicKey, ixn solana.Instruction) (*DecompiledInstruction, error) {
	if !bytes.Equal(ixn.Program, program) {
		return nil, solana.ErrIncorrectProgram
	}
	if len(ixn.Data) == 0 {
		return nil, errors.Wrap(ErrInvalidInstructionData, "missing discriminator")
	}

	var err error
	decompiled := &DecompiledInstruction{Type: InstructionType(ixn.Data[0])}
	switch decompiled.Type {
	case InstructionTypeCollect:
		decompiled.Accounts, decompiled.Args, err = decompileCollect(ixn)
	case InstructionTypeBubblegumSetCollectionSize:
		decompiled.Accounts, decompiled.Args, err = decompileBubblegumSetCollectionSize(ixn)
	case InstructionTypeSetCollectionSize:
		decompiled.Accounts, decompiled.Args, err = decompileSetCollectionSize(ixn)
	case InstructionTypeUtilize:
		decompiled.Accounts, decompiled.Args, err = decompileUtilize(program, ixn)
	default:
		return nil, solana.ErrIncorrectInstruction
	}
	if err != nil {
		return nil, errors.WithMessage(err, decompiled.Type.String())
	}
	return decompiled, nil
}

func decompileCollect(ixn solana.Instruction) (*CollectInstructionAccounts, *CollectInstructionArgs, error) {
	if err := checkAccountCount(ixn, 2, 2); err != nil {
		return nil, nil, err
	}
	if _, err := decodeInstructionData(collectInstructionSchema, ixn.Data); err != nil {
		return nil, nil, err
	}

	return &CollectInstructionAccounts{
		Authority:  ixn.Accounts[0].PublicKey,
		PdaAccount: ixn.Accounts[1].PublicKey,
	}, &CollectInstructionArgs{}, nil
}

func decompileBubblegumSetCollectionSize(ixn solana.Instruction) (*BubblegumSetCollectionSizeInstructionAccounts, *BubblegumSetCollectionSizeInstructionArgs, error) {
	if err := checkAccountCount(ixn, 4, 5); err != nil {
		return nil, nil, err
	}
	values, err := decodeInstructionData(bubblegumSetCollectionSizeInstructionSchema, ixn.Data)
	if err != nil {
		return nil, nil, err
	}

	args := &BubblegumSetCollectionSizeInstructionArgs{}
	if err := decodeNested(values, "setCollectionSizeArgs", args.SetCollectionSizeArgs.fromFields); err != nil {
		return nil, nil, err
	}

	accounts := &BubblegumSetCollectionSizeInstructionAccounts{
		CollectionMetadata:  ixn.Accounts[0].PublicKey,
		CollectionAuthority: ixn.Accounts[1].PublicKey,
		CollectionMint:      ixn.Accounts[2].PublicKey,
		BubblegumSigner:     ixn.Accounts[3].PublicKey,
	}
	if len(ixn.Accounts) > 4 {
		accounts.CollectionAuthorityRecord = ixn.Accounts[4].PublicKey
	}
	return accounts, args, nil
}

func decompileSetCollectionSize(ixn solana.Instruction) (*SetCollectionSizeInstructionAccounts, *SetCollectionSizeInstructionArgs, error) {
	if err := checkAccountCount(ixn, 3, 4); err != nil {
		return nil, nil, err
	}
	values, err := decodeInstructionData(setCollectionSizeInstructionSchema, ixn.Data)
	if err != nil {
		return nil, nil, err
	}

	args := &SetCollectionSizeInstructionArgs{}
	if err := decodeNested(values, "setCollectionSizeArgs", args.SetCollectionSizeArgs.fromFields); err != nil {
		return nil, nil, err
	}

	accounts := &SetCollectionSizeInstructionAccounts{
		CollectionMetadata:  ixn.Accounts[0].PublicKey,
		CollectionAuthority: ixn.Accounts[1].PublicKey,
		CollectionMint:      ixn.Accounts[2].PublicKey,
	}
	if len(ixn.Accounts) > 3 {
		accounts.CollectionAuthorityRecord = ixn.Accounts[3].PublicKey
	}
	return accounts, args, nil
}

func decompileUtilize(program ed25519.PublicKey, ixn solana.Instruction) (*UtilizeInstructionAccounts, *UtilizeInstructionArgs, error) {
	if err := checkAccountCount(ixn, 11, 11); err != nil {
		return nil, nil, err
	}
	values, err := decodeInstructionData(utilizeInstructionSchema, ixn.Data)
	if err != nil {
		return nil, nil, err
	}

	args := &UtilizeInstructionArgs{}
	if err := decodeNested(values, "utilizeArgs", args.UtilizeArgs.fromFields); err != nil {
		return nil, nil, err
	}

	return &UtilizeInstructionAccounts{
		Metadata:               ixn.Accounts[0].PublicKey,
		TokenAccount:           ixn.Accounts[1].PublicKey,
		Mint:                   ixn.Accounts[2].PublicKey,
		UseAuthority:           ixn.Accounts[3].PublicKey,
		Owner:                  ixn.Accounts[4].PublicKey,
		TokenProgram:           ixn.Accounts[5].PublicKey,
		AssociatedTokenProgram: ixn.Accounts[6].PublicKey,
		SystemProgram:          ixn.Accounts[7].PublicKey,
		Rent:                   ixn.Accounts[8].PublicKey,
		UseAuthorityRecord:     optionalAccount(ixn.Accounts[9].PublicKey, program),
		Burner:                 optionalAccount(ixn.Accounts[10].PublicKey, program),
	}, args, nil
}

func checkAccountCount(ixn solana.Instruction, minAccounts, maxAccounts int) error {
	if len(ixn.Accounts) < minAccounts || len(ixn.Accounts) > maxAccounts {
		return errors.Wrapf(ErrInvalidInstructionData, "invalid number of accounts: %d", len(ixn.Accounts))
	}
	return nil
}

// decodeInstructionData decodes the arguments of schema, which must span all
// of data
func decodeInstructionData(schema *binary.InstructionSchema, data []byte) (binary.Fields, error) {
	values, next, err := schema.Decode(data, 0)
	if err != nil {
		return nil, err
	}
	if next != len(data) {
		return nil, errors.Wrapf(ErrInvalidInstructionData, "invalid instruction data size: %d", len(data))
	}
	return values, nil
}

func decodeNested(values binary.Fields, name string, into func(binary.Fields) error) error {
	nested, err := binary.Get[binary.Fields](values, name)
	if err != nil {
		return err
	}
	return into(nested)
}

// optionalAccount maps the program address placeholder of an unset optional
// account back to nil
func optionalAccount(key, program ed25519.PublicKey) ed25519.PublicKey {
	if bytes.Equal(key, program) {
		return nil
	}
	return key
}
