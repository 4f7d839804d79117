package tokenmetadata

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/code-payments/token-metadata-client/pkg/solana/binary"
)

type UsesToggleKind uint8

const (
	UsesToggleKindNone UsesToggleKind = iota
	UsesToggleKindClear
	UsesToggleKindSet
)

var UsesToggleSchema = binary.Union(
	"UsesToggle",
	binary.UnitCase("None"),
	binary.UnitCase("Clear"),
	binary.Case("Set", binary.Struct("Set", binary.Field("uses", UsesSchema))),
)

func (k UsesToggleKind) String() string {
	cases := UsesToggleSchema.Cases()
	if int(k) < len(cases) {
		return cases[k].Name
	}
	return fmt.Sprintf("UsesToggleKind(%d)", uint8(k))
}

// ParseUsesToggleKind returns the kind with the given variant name
func ParseUsesToggleKind(name string) (UsesToggleKind, error) {
	ordinal, ok := UsesToggleSchema.Ordinal(name)
	if !ok {
		return 0, errors.Wrapf(binary.ErrUnknownVariant, "UsesToggle::%s", name)
	}
	return UsesToggleKind(ordinal), nil
}

// UsesToggle either leaves the uses of an asset untouched, clears them or
// replaces them.
//
// Implementations are UsesToggleNone, UsesToggleClear and UsesToggleSet.
type UsesToggle interface {
	Kind() UsesToggleKind

	isUsesToggle()
}

type UsesToggleNone struct{}

type UsesToggleClear struct{}

type UsesToggleSet struct {
	Uses Uses
}

func (UsesToggleNone) Kind() UsesToggleKind { return UsesToggleKindNone }
func (UsesToggleClear) Kind() UsesToggleKind { return UsesToggleKindClear }
func (UsesToggleSet) Kind() UsesToggleKind { return UsesToggleKindSet }

func (UsesToggleNone) isUsesToggle() {}
func (UsesToggleClear) isUsesToggle() {}
func (UsesToggleSet) isUsesToggle() {}

// NewUsesToggle builds a toggle of the given kind. Set requires uses, which is
// ignored by the other kinds.
func NewUsesToggle(kind UsesToggleKind, uses *Uses) (UsesToggle, error) {
	switch kind {
	case UsesToggleKindNone:
		return UsesToggleNone{}, nil
	case UsesToggleKindClear:
		return UsesToggleClear{}, nil
	case UsesToggleKindSet:
		if uses == nil {
			return nil, errors.Wrap(binary.ErrMissingField, "UsesToggle::Set.uses")
		}
		return UsesToggleSet{Uses: *uses}, nil
	}
	return nil, errors.Wrapf(binary.ErrUnknownVariant, "UsesToggle: kind %d", uint8(kind))
}

// IsUsesToggle reports whether value is a toggle of the given kind
func IsUsesToggle(value UsesToggle, kind UsesToggleKind) bool {
	return value != nil && value.Kind() == kind
}

func MarshalUsesToggle(value UsesToggle) ([]byte, error) {
	variant, err := usesToggleVariant(value)
	if err != nil {
		return nil, err
	}
	return binary.Encode(UsesToggleSchema, variant)
}

// UnmarshalUsesToggle decodes a toggle at offset, returning the offset that
// follows it
func UnmarshalUsesToggle(data []byte, offset int) (UsesToggle, int, error) {
	variant, next, err := UsesToggleSchema.Decode(data, offset)
	if err != nil {
		return nil, offset, err
	}

	value, err := usesToggleFromVariant(variant)
	if err != nil {
		return nil, offset, err
	}
	return value, next, nil
}

func usesToggleVariant(value UsesToggle) (binary.Variant, error) {
	switch typed := value.(type) {
	case UsesToggleNone, UsesToggleClear:
		return binary.Variant{Name: typed.Kind().String()}, nil
	case UsesToggleSet:
		return binary.Variant{
			Name:   typed.Kind().String(),
			Fields: binary.Fields{"uses": typed.Uses.fields()},
		}, nil
	case *UsesToggleSet:
		if typed != nil {
			return usesToggleVariant(*typed)
		}
	}
	return binary.Variant{}, errors.Wrapf(binary.ErrTypeMismatch, "UsesToggle: unexpected value of type %T", value)
}

func usesToggleFromVariant(variant binary.Variant) (UsesToggle, error) {
	kind, err := ParseUsesToggleKind(variant.Name)
	if err != nil {
		return nil, err
	}
	if kind != UsesToggleKindSet {
		return NewUsesToggle(kind, nil)
	}

	values, err := binary.Get[binary.Fields](variant.Fields, "uses")
	if err != nil {
		return nil, err
	}

	var uses Uses
	if err := uses.fromFields(values); err != nil {
		return nil, err
	}
	return UsesToggleSet{Uses: uses}, nil
}
