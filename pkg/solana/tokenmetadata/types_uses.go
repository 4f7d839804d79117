package tokenmetadata

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/code-payments/token-metadata-client/pkg/solana/binary"
)

// UseMethod is how a use is consumed
type UseMethod uint8

const (
	UseMethodBurn UseMethod = iota
	UseMethodMultiple
	UseMethodSingle
)

var UseMethodSchema = binary.Union(
	"UseMethod",
	binary.UnitCase("Burn"),
	binary.UnitCase("Multiple"),
	binary.UnitCase("Single"),
)

func (m UseMethod) String() string {
	cases := UseMethodSchema.Cases()
	if int(m) < len(cases) {
		return cases[m].Name
	}
	return fmt.Sprintf("UseMethod(%d)", uint8(m))
}

// ParseUseMethod returns the use method with the given variant name
func ParseUseMethod(name string) (UseMethod, error) {
	ordinal, ok := UseMethodSchema.Ordinal(name)
	if !ok {
		return 0, errors.Wrapf(binary.ErrUnknownVariant, "UseMethod::%s", name)
	}
	return UseMethod(ordinal), nil
}

func (m UseMethod) variant() binary.Variant {
	return binary.Variant{Name: m.String()}
}

func useMethodFromVariant(v binary.Variant) (UseMethod, error) {
	return ParseUseMethod(v.Name)
}

const UsesSize = (1 + // use_method
	8 + // remaining
	8) // total

var UsesSchema = binary.Struct(
	"Uses",
	binary.Field("useMethod", UseMethodSchema),
	binary.Field("remaining", binary.U64),
	binary.Field("total", binary.U64),
)

type Uses struct {
	UseMethod UseMethod
	Remaining uint64
	Total     uint64
}

func (obj *Uses) Marshal() ([]byte, error) {
	return UsesSchema.Encode(obj.fields())
}

func (obj *Uses) Unmarshal(data []byte) error {
	values, _, err := UsesSchema.Decode(data, 0)
	if err != nil {
		return err
	}
	return obj.fromFields(values)
}

func (obj *Uses) String() string {
	return fmt.Sprintf(
		"Uses{use_method=%s,remaining=%d,total=%d}",
		obj.UseMethod,
		obj.Remaining,
		obj.Total,
	)
}

func (obj *Uses) fields() binary.Fields {
	return binary.Fields{
		"useMethod": obj.UseMethod.variant(),
		"remaining": obj.Remaining,
		"total":     obj.Total,
	}
}

func (obj *Uses) fromFields(values binary.Fields) error {
	method, err := binary.Get[binary.Variant](values, "useMethod")
	if err != nil {
		return err
	}
	if obj.UseMethod, err = useMethodFromVariant(method); err != nil {
		return err
	}
	if obj.Remaining, err = binary.Get[uint64](values, "remaining"); err != nil {
		return err
	}
	if obj.Total, err = binary.Get[uint64](values, "total"); err != nil {
		return err
	}
	return nil
}
