package solana

import (
	"crypto/ed25519"
	"sort"

	"github.com/pkg/errors"
)

// ErrMissingAccount indicates a required instruction account was not provided
var ErrMissingAccount = errors.New("missing required account")

// OptionalAccountStrategy controls how an unset optional account is laid out
// in an instruction's account list.
type OptionalAccountStrategy uint8

const (
	// OptionalAccountOmitted drops unset optional accounts from the list,
	// shifting the accounts that follow
	OptionalAccountOmitted OptionalAccountStrategy = iota

	// OptionalAccountProgramID substitutes the program address, as a readonly
	// non-signer, so positions stay stable
	OptionalAccountProgramID
)

// ResolvedAccount is a named instruction account slot and the key bound to it
type ResolvedAccount struct {
	Name       string
	Index      int
	IsWritable bool
	IsSigner   bool
	Optional   bool
	Value      ed25519.PublicKey
}

// ResolveAccounts orders accounts by index and converts them into account
// metas for program. It also returns the unique signer keys.
func ResolveAccounts(
	accounts []ResolvedAccount,
	strategy OptionalAccountStrategy,
	program ed25519.PublicKey,
) ([]AccountMeta, []ed25519.PublicKey, error) {
	ordered := make([]ResolvedAccount, len(accounts))
	copy(ordered, accounts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Index < ordered[j].Index
	})

	metas := make([]AccountMeta, 0, len(ordered))
	for _, account := range ordered {
		if len(account.Value) == 0 {
			if !account.Optional {
				return nil, nil, errors.Wrap(ErrMissingAccount, account.Name)
			}

			if strategy == OptionalAccountProgramID {
				metas = append(metas, NewReadonlyAccountMeta(program, false))
			}
			continue
		}

		if len(account.Value) != ed25519.PublicKeySize {
			return nil, nil, errors.Wrapf(ErrInvalidPublicKey, "%s: %d bytes", account.Name, len(account.Value))
		}

		metas = append(metas, AccountMeta{
			PublicKey:  account.Value,
			IsWritable: account.IsWritable,
			IsSigner:   account.IsSigner,
		})
	}

	ixn := Instruction{Accounts: metas}
	return metas, ixn.Signers(), nil
}
