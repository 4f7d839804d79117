package tokenmetadata

import (
	"github.com/code-payments/token-metadata-client/pkg/solana/binary"
)

const SetCollectionSizeArgsSize = 8 // size

var SetCollectionSizeArgsSchema = binary.Struct(
	"SetCollectionSizeArgs",
	binary.Field("size", binary.U64),
)

type SetCollectionSizeArgs struct {
	Size uint64
}

func (obj *SetCollectionSizeArgs) fields() binary.Fields {
	return binary.Fields{"size": obj.Size}
}

func (obj *SetCollectionSizeArgs) fromFields(values binary.Fields) error {
	var err error
	obj.Size, err = binary.Get[uint64](values, "size")
	return err
}

const UtilizeArgsSize = 8 // number_of_uses

var UtilizeArgsSchema = binary.Struct(
	"UtilizeArgs",
	binary.Field("numberOfUses", binary.U64),
)

type UtilizeArgs struct {
	NumberOfUses uint64
}

func (obj *UtilizeArgs) fields() binary.Fields {
	return binary.Fields{"numberOfUses": obj.NumberOfUses}
}

func (obj *UtilizeArgs) fromFields(values binary.Fields) error {
	var err error
	obj.NumberOfUses, err = binary.Get[uint64](values, "numberOfUses")
	return err
}
