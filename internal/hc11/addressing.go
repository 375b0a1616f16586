package hc11

// AddressingMode defines the operand encoding scheme of an opcode.
// The mode determines the operand byte count and how control flow targets
// are computed.
type AddressingMode int

const (
	NoAddressing AddressingMode = iota
	// ImpliedAddressing has no operand bytes.
	ImpliedAddressing
	// ImmediateAddressing has one immediate operand byte.
	ImmediateAddressing
	// Immediate16Addressing has a 2 byte big-endian immediate operand.
	Immediate16Addressing
	// DirectAddressing addresses the zero page with one operand byte.
	DirectAddressing
	// ExtendedAddressing holds a full 2 byte big-endian CPU address.
	ExtendedAddressing
	// IndexedXAddressing adds a one byte displacement to the X register.
	IndexedXAddressing
	// IndexedYAddressing adds a one byte displacement to the Y register.
	IndexedYAddressing
	// RelativeAddressing branches by one signed displacement byte.
	RelativeAddressing
	// DirectBitAddressing holds a zero page address and a bit mask.
	DirectBitAddressing
	// IndexedXBitAddressing holds an X displacement and a bit mask.
	IndexedXBitAddressing
	// IndexedYBitAddressing holds a Y displacement and a bit mask.
	IndexedYBitAddressing
	// DirectBitRelativeAddressing holds a zero page address, a bit mask and
	// a signed branch displacement.
	DirectBitRelativeAddressing
	// IndexedXBitRelativeAddressing holds an X displacement, a bit mask and
	// a signed branch displacement.
	IndexedXBitRelativeAddressing
	// IndexedYBitRelativeAddressing holds a Y displacement, a bit mask and
	// a signed branch displacement.
	IndexedYBitRelativeAddressing
)

// OperandBytes returns the number of operand bytes the mode implies,
// not counting prefix and opcode bytes.
func OperandBytes(mode AddressingMode) int {
	switch mode {
	case ImpliedAddressing:
		return 0
	case ImmediateAddressing, DirectAddressing, IndexedXAddressing,
		IndexedYAddressing, RelativeAddressing:
		return 1
	case Immediate16Addressing, ExtendedAddressing, DirectBitAddressing,
		IndexedXBitAddressing, IndexedYBitAddressing:
		return 2
	case DirectBitRelativeAddressing, IndexedXBitRelativeAddressing,
		IndexedYBitRelativeAddressing:
		return 3
	default:
		return 0
	}
}

// IsBitAddressing returns whether the mode belongs to one of the bit
// manipulation instructions.
func IsBitAddressing(mode AddressingMode) bool {
	switch mode {
	case DirectBitAddressing, IndexedXBitAddressing, IndexedYBitAddressing,
		DirectBitRelativeAddressing, IndexedXBitRelativeAddressing,
		IndexedYBitRelativeAddressing:
		return true
	default:
		return false
	}
}

// HasRelativeOperand returns whether the last operand byte of the mode is a
// signed branch displacement.
func HasRelativeOperand(mode AddressingMode) bool {
	switch mode {
	case RelativeAddressing, DirectBitRelativeAddressing,
		IndexedXBitRelativeAddressing, IndexedYBitRelativeAddressing:
		return true
	default:
		return false
	}
}

func (m AddressingMode) String() string {
	switch m {
	case ImpliedAddressing:
		return "inherent"
	case ImmediateAddressing:
		return "immediate"
	case Immediate16Addressing:
		return "immediate16"
	case DirectAddressing:
		return "direct"
	case ExtendedAddressing:
		return "extended"
	case IndexedXAddressing:
		return "indexed,X"
	case IndexedYAddressing:
		return "indexed,Y"
	case RelativeAddressing:
		return "relative"
	case DirectBitAddressing:
		return "direct-bit"
	case IndexedXBitAddressing:
		return "indexed-bit,X"
	case IndexedYBitAddressing:
		return "indexed-bit,Y"
	case DirectBitRelativeAddressing:
		return "direct-bit-relative"
	case IndexedXBitRelativeAddressing:
		return "indexed-bit-relative,X"
	case IndexedYBitRelativeAddressing:
		return "indexed-bit-relative,Y"
	default:
		return "none"
	}
}
