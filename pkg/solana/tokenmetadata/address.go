package tokenmetadata

import (
	"crypto/ed25519"

	"github.com/code-payments/token-metadata-client/pkg/solana"
)

var (
	MetadataPrefix = []byte("metadata")
)

// HolderDelegateRole is the role seed of a holder delegate record
type HolderDelegateRole string

const (
	HolderDelegateRolePrintDelegate HolderDelegateRole = "print_delegate"
)

type GetHolderDelegateRecordAddressArgs struct {
	Mint     ed25519.PublicKey
	Role     HolderDelegateRole
	Owner    ed25519.PublicKey
	Delegate ed25519.PublicKey
}

func (args *GetHolderDelegateRecordAddressArgs) seeds() [][]byte {
	return [][]byte{
		MetadataPrefix,
		PROGRAM_ID,
		args.Mint,
		[]byte(args.Role),
		args.Owner,
		args.Delegate,
	}
}

// FindHolderDelegateRecordAddress returns the holder delegate record address
// and its bump
func FindHolderDelegateRecordAddress(args *GetHolderDelegateRecordAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, args.seeds()...)
}

// CreateHolderDelegateRecordAddress derives the holder delegate record address
// for a known bump
func CreateHolderDelegateRecordAddress(args *GetHolderDelegateRecordAddressArgs, bump uint8) (ed25519.PublicKey, error) {
	return solana.CreateProgramAddress(PROGRAM_ID, append(args.seeds(), []byte{bump})...)
}

type GetMetadataAddressArgs struct {
	Mint ed25519.PublicKey
}

// GetMetadataAddress returns the metadata account address of a mint
func GetMetadataAddress(args *GetMetadataAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		MetadataPrefix,
		PROGRAM_ID,
		args.Mint,
	)
}
