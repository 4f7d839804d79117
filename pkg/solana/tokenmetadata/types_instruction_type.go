package tokenmetadata

import "fmt"

// InstructionType is the leading discriminator byte of an instruction
type InstructionType uint8

const (
	InstructionTypeUtilize                    InstructionType = 19
	InstructionTypeSetCollectionSize          InstructionType = 34
	InstructionTypeBubblegumSetCollectionSize InstructionType = 36
	InstructionTypeCollect                    InstructionType = 54
)

func (t InstructionType) String() string {
	switch t {
	case InstructionTypeUtilize:
		return "Utilize"
	case InstructionTypeSetCollectionSize:
		return "SetCollectionSize"
	case InstructionTypeBubblegumSetCollectionSize:
		return "BubblegumSetCollectionSize"
	case InstructionTypeCollect:
		return "Collect"
	}
	return fmt.Sprintf("InstructionType(%d)", uint8(t))
}
