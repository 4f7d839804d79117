package tokenmetadata

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/code-payments/token-metadata-client/pkg/solana/binary"
)

const (
	HolderDelegateRecordAccountSize = (1 + // key
		1 + // bump
		32 + // mint
		32 + // delegate
		32) // update_authority
)

var holderDelegateRecordSchema = binary.Struct(
	"HolderDelegateRecord",
	binary.Field("key", KeySchema),
	binary.Field("bump", binary.U8),
	binary.Field("mint", binary.PublicKey),
	binary.Field("delegate", binary.PublicKey),
	binary.Field("updateAuthority", binary.PublicKey),
)

type HolderDelegateRecord struct {
	Key             Key
	Bump            uint8
	Mint            ed25519.PublicKey
	Delegate        ed25519.PublicKey
	UpdateAuthority ed25519.PublicKey
}

func (obj *HolderDelegateRecord) Unmarshal(data []byte) error {
	if len(data) < HolderDelegateRecordAccountSize {
		return ErrInvalidAccountData
	}

	values, _, err := holderDelegateRecordSchema.Decode(data, 0)
	if err != nil {
		return errors.Wrap(ErrInvalidAccountData, err.Error())
	}

	var record HolderDelegateRecord
	if err := record.fromFields(values); err != nil {
		return errors.Wrap(ErrInvalidAccountData, err.Error())
	}
	if record.Key != KeyHolderDelegate {
		return errors.Wrapf(ErrInvalidAccountData, "unexpected account key %s", record.Key)
	}

	*obj = record
	return nil
}

func (obj *HolderDelegateRecord) fromFields(values binary.Fields) error {
	key, err := binary.Get[uint8](values, "key")
	if err != nil {
		return err
	}
	if obj.Bump, err = binary.Get[uint8](values, "bump"); err != nil {
		return err
	}
	if obj.Mint, err = binary.Get[[]byte](values, "mint"); err != nil {
		return err
	}
	if obj.Delegate, err = binary.Get[[]byte](values, "delegate"); err != nil {
		return err
	}
	if obj.UpdateAuthority, err = binary.Get[[]byte](values, "updateAuthority"); err != nil {
		return err
	}

	obj.Key = Key(key)
	return nil
}

func (obj *HolderDelegateRecord) Marshal() ([]byte, error) {
	return holderDelegateRecordSchema.Encode(binary.Fields{
		"key":             uint8(obj.Key),
		"bump":            obj.Bump,
		"mint":            []byte(obj.Mint),
		"delegate":        []byte(obj.Delegate),
		"updateAuthority": []byte(obj.UpdateAuthority),
	})
}

func (obj *HolderDelegateRecord) String() string {
	return fmt.Sprintf(
		"HolderDelegateRecord{key=%s,bump=%d,mint=%s,delegate=%s,update_authority=%s}",
		obj.Key,
		obj.Bump,
		base58.Encode(obj.Mint),
		base58.Encode(obj.Delegate),
		base58.Encode(obj.UpdateAuthority),
	)
}
