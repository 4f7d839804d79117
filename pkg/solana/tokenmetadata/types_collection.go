package tokenmetadata

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/code-payments/token-metadata-client/pkg/solana/binary"
)

const CollectionSize = (1 + // verified
	32) // key

var CollectionSchema = binary.Struct(
	"Collection",
	binary.Field("verified", binary.Bool),
	binary.Field("key", binary.PublicKey),
)

type Collection struct {
	Verified bool
	Key      ed25519.PublicKey
}

func (obj *Collection) Marshal() ([]byte, error) {
	return CollectionSchema.Encode(obj.fields())
}

func (obj *Collection) Unmarshal(data []byte) error {
	values, _, err := CollectionSchema.Decode(data, 0)
	if err != nil {
		return err
	}
	return obj.fromFields(values)
}

func (obj *Collection) String() string {
	return fmt.Sprintf(
		"Collection{verified=%t,key=%s}",
		obj.Verified,
		base58.Encode(obj.Key),
	)
}

func (obj *Collection) fields() binary.Fields {
	return binary.Fields{
		"verified": obj.Verified,
		"key":      []byte(obj.Key),
	}
}

func (obj *Collection) fromFields(values binary.Fields) error {
	var err error
	if obj.Verified, err = binary.Get[bool](values, "verified"); err != nil {
		return err
	}
	key, err := binary.Get[[]byte](values, "key")
	if err != nil {
		return err
	}
	obj.Key = key
	return nil
}

type CollectionToggleKind uint8

const (
	CollectionToggleKindNone CollectionToggleKind = iota
	CollectionToggleKindClear
	CollectionToggleKindSet
)

var CollectionToggleSchema = binary.Union(
	"CollectionToggle",
	binary.UnitCase("None"),
	binary.UnitCase("Clear"),
	binary.Case("Set", binary.Struct("Set", binary.Field("collection", CollectionSchema))),
)

func (k CollectionToggleKind) String() string {
	cases := CollectionToggleSchema.Cases()
	if int(k) < len(cases) {
		return cases[k].Name
	}
	return fmt.Sprintf("CollectionToggleKind(%d)", uint8(k))
}

// CollectionToggle either leaves the collection of an asset untouched, clears
// it or replaces it.
type CollectionToggle struct {
	Kind CollectionToggleKind

	// Collection is only set for CollectionToggleKindSet
	Collection *Collection
}

func (obj *CollectionToggle) Marshal() ([]byte, error) {
	variant := binary.Variant{Name: obj.Kind.String()}
	if obj.Kind == CollectionToggleKindSet {
		if obj.Collection == nil {
			return nil, errors.Wrap(binary.ErrMissingField, "CollectionToggle::Set.collection")
		}
		variant.Fields = binary.Fields{"collection": obj.Collection.fields()}
	}
	return binary.Encode(CollectionToggleSchema, variant)
}

// Unmarshal decodes a toggle at offset, returning the offset that follows it
func (obj *CollectionToggle) Unmarshal(data []byte, offset int) (int, error) {
	variant, next, err := CollectionToggleSchema.Decode(data, offset)
	if err != nil {
		return offset, err
	}

	ordinal, _ := CollectionToggleSchema.Ordinal(variant.Name)
	decoded := CollectionToggle{Kind: CollectionToggleKind(ordinal)}
	if decoded.Kind == CollectionToggleKindSet {
		values, err := binary.Get[binary.Fields](variant.Fields, "collection")
		if err != nil {
			return offset, err
		}
		decoded.Collection = &Collection{}
		if err := decoded.Collection.fromFields(values); err != nil {
			return offset, err
		}
	}

	*obj = decoded
	return next, nil
}
