package decoder

import (
	"fmt"

	"github.com/retroenv/hc11godisasm/internal/bankmap"
	"github.com/retroenv/hc11godisasm/internal/hc11"
)

// formatOperand renders the operand text of an instruction and computes
// its control flow target if it has one. Bit masks are always rendered as
// unsigned values, a mask is not a signed quantity.
func (d *Decoder) formatOperand(op hc11.Opcode, raw []byte,
	address bankmap.Address) (string, *Target) {

	operand := raw[op.Size-hc11.OperandBytes(op.Addressing):]

	switch op.Addressing {
	case hc11.ImpliedAddressing:
		return "", nil

	case hc11.ImmediateAddressing:
		return fmt.Sprintf("#$%02X", operand[0]), nil

	case hc11.Immediate16Addressing:
		return fmt.Sprintf("#$%04X", word(operand)), nil

	case hc11.DirectAddressing:
		return d.label(fmt.Sprintf("$%02X", operand[0]), uint16(operand[0])), nil

	case hc11.ExtendedAddressing:
		addr := word(operand)
		text := d.label(fmt.Sprintf("$%04X", addr), addr)
		if ins := op.Mnemonic; ins == "JMP" || ins == "JSR" {
			return text, &Target{CPU: addr, Bank: address.Bank}
		}
		return text, nil

	case hc11.IndexedXAddressing:
		return fmt.Sprintf("$%02X,X", operand[0]), nil

	case hc11.IndexedYAddressing:
		return fmt.Sprintf("$%02X,Y", operand[0]), nil

	case hc11.RelativeAddressing:
		target := relativeTarget(address, op.Size, operand[0])
		return d.label(fmt.Sprintf("$%04X", target.CPU), target.CPU), target

	case hc11.DirectBitAddressing:
		return fmt.Sprintf("%s,#$%02X",
			d.label(fmt.Sprintf("$%02X", operand[0]), uint16(operand[0])),
			operand[1]), nil

	case hc11.IndexedXBitAddressing:
		return fmt.Sprintf("$%02X,X,#$%02X", operand[0], operand[1]), nil

	case hc11.IndexedYBitAddressing:
		return fmt.Sprintf("$%02X,Y,#$%02X", operand[0], operand[1]), nil

	case hc11.DirectBitRelativeAddressing:
		target := relativeTarget(address, op.Size, operand[2])
		return fmt.Sprintf("%s,#$%02X,$%04X",
			d.label(fmt.Sprintf("$%02X", operand[0]), uint16(operand[0])),
			operand[1], target.CPU), target

	case hc11.IndexedXBitRelativeAddressing:
		target := relativeTarget(address, op.Size, operand[2])
		return fmt.Sprintf("$%02X,X,#$%02X,$%04X",
			operand[0], operand[1], target.CPU), target

	case hc11.IndexedYBitRelativeAddressing:
		target := relativeTarget(address, op.Size, operand[2])
		return fmt.Sprintf("$%02X,Y,#$%02X,$%04X",
			operand[0], operand[1], target.CPU), target

	default:
		return "", nil
	}
}

// relativeTarget computes the destination of a relative branch: the CPU
// address of the byte after the full instruction plus the sign extended
// displacement byte. This applies uniformly to plain branches and to the
// trailing relative byte of the bit test and branch forms.
func relativeTarget(address bankmap.Address, size int, displacement byte) *Target {
	next := address.CPU + uint16(size)
	return &Target{
		CPU:  next + uint16(int16(int8(displacement))),
		Bank: address.Bank,
	}
}

// label attaches an advisory annotation to a rendered address if one is
// configured for it.
func (d *Decoder) label(text string, addr uint16) string {
	if name, ok := d.labels[addr]; ok {
		return text + " (" + name + ")"
	}
	return text
}

func word(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}
