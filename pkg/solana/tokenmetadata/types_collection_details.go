package tokenmetadata

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/code-payments/token-metadata-client/pkg/solana/binary"
)

type CollectionDetailsKind uint8

const (
	CollectionDetailsKindV1 CollectionDetailsKind = iota
	CollectionDetailsKindV2
)

const CollectionDetailsPaddingSize = 8

var CollectionDetailsSchema = binary.Union(
	"CollectionDetails",
	binary.Case("V1", binary.Struct("V1", binary.Field("size", binary.U64))),
	binary.Case("V2", binary.Struct("V2", binary.Field("padding", binary.Array(binary.U8, CollectionDetailsPaddingSize)))),
)

func (k CollectionDetailsKind) String() string {
	cases := CollectionDetailsSchema.Cases()
	if int(k) < len(cases) {
		return cases[k].Name
	}
	return fmt.Sprintf("CollectionDetailsKind(%d)", uint8(k))
}

// CollectionDetails marks a collection parent. V1 tracks the collection size
// on the parent, V2 leaves sizing to the collection itself.
type CollectionDetails struct {
	Kind CollectionDetailsKind

	// Size is only meaningful for V1
	Size uint64

	// Padding is only meaningful for V2
	Padding [CollectionDetailsPaddingSize]uint8
}

func (obj *CollectionDetails) Marshal() ([]byte, error) {
	var variant binary.Variant
	switch obj.Kind {
	case CollectionDetailsKindV1:
		variant = binary.Variant{
			Name:   obj.Kind.String(),
			Fields: binary.Fields{"size": obj.Size},
		}
	case CollectionDetailsKindV2:
		padding := make([]interface{}, len(obj.Padding))
		for i, b := range obj.Padding {
			padding[i] = b
		}
		variant = binary.Variant{
			Name:   obj.Kind.String(),
			Fields: binary.Fields{"padding": padding},
		}
	default:
		return nil, errors.Wrapf(binary.ErrUnknownVariant, "CollectionDetails: kind %d", uint8(obj.Kind))
	}
	return binary.Encode(CollectionDetailsSchema, variant)
}

// Unmarshal decodes collection details at offset, returning the offset that
// follows them
func (obj *CollectionDetails) Unmarshal(data []byte, offset int) (int, error) {
	variant, next, err := CollectionDetailsSchema.Decode(data, offset)
	if err != nil {
		return offset, err
	}

	var decoded CollectionDetails
	switch variant.Name {
	case CollectionDetailsKindV1.String():
		decoded.Kind = CollectionDetailsKindV1
		if decoded.Size, err = binary.Get[uint64](variant.Fields, "size"); err != nil {
			return offset, err
		}
	case CollectionDetailsKindV2.String():
		decoded.Kind = CollectionDetailsKindV2
		padding, err := binary.Get[[]interface{}](variant.Fields, "padding")
		if err != nil {
			return offset, err
		}
		for i := range decoded.Padding {
			decoded.Padding[i] = padding[i].(uint8)
		}
	}

	*obj = decoded
	return next, nil
}
