package tokenmetadata

import (
	"fmt"

	"github.com/code-payments/token-metadata-client/pkg/solana/binary"
)

// Key identifies the type of a program account. It is always the first byte
// of account data.
type Key uint8

const (
	KeyUninitialized Key = iota
	KeyEditionV1
	KeyMasterEditionV1
	KeyReservationListV1
	KeyMetadataV1
	KeyReservationListV2
	KeyMasterEditionV2
	KeyEditionMarker
	KeyUseAuthorityRecord
	KeyCollectionAuthorityRecord
	KeyTokenOwnedEscrow
	KeyTokenRecord
	KeyMetadataDelegate
	KeyEditionMarkerV2
	KeyHolderDelegate
)

var keyNames = []string{
	"Uninitialized",
	"EditionV1",
	"MasterEditionV1",
	"ReservationListV1",
	"MetadataV1",
	"ReservationListV2",
	"MasterEditionV2",
	"EditionMarker",
	"UseAuthorityRecord",
	"CollectionAuthorityRecord",
	"TokenOwnedEscrow",
	"TokenRecord",
	"MetadataDelegate",
	"EditionMarkerV2",
	"HolderDelegate",
}

var KeySchema = binary.U8

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// IsValid reports whether k is a declared account type
func (k Key) IsValid() bool {
	return int(k) < len(keyNames)
}
