package decoder

import (
	"github.com/retroenv/hc11godisasm/internal/bankmap"
	"github.com/retroenv/hc11godisasm/internal/hc11"
)

// Target is the computed control flow destination of a branch, call or
// jump. The CPU address is not translated to file space, that is the
// caller's responsibility via the bank map. Bank carries the bank of the
// decoded instruction as a translation hint.
type Target struct {
	CPU  uint16
	Bank string
}

// Instruction is one decoded instruction or raw data record.
// It is never mutated after construction.
type Instruction struct {
	Address    bankmap.Address
	Raw        []byte
	Mnemonic   string
	Addressing hc11.AddressingMode
	Operand    string
	Target     *Target
	Valid      bool
}

// IsBranch returns whether the instruction changes control flow to a
// target address.
func (ins Instruction) IsBranch() bool {
	_, ok := hc11.BranchingInstructions[ins.Mnemonic]
	return ok
}

// IsCall returns whether the instruction calls a subroutine and continues
// after it returns.
func (ins Instruction) IsCall() bool {
	_, ok := hc11.CallInstructions[ins.Mnemonic]
	return ok
}

// IsReturn returns whether the instruction ends a subroutine or interrupt
// handler.
func (ins Instruction) IsReturn() bool {
	_, ok := hc11.ReturnInstructions[ins.Mnemonic]
	return ok
}

// IsUnknownOrRaw returns whether the record represents undecodable bytes
// emitted as raw data.
func (ins Instruction) IsUnknownOrRaw() bool {
	return !ins.Valid
}

// ContinuesToNext returns whether execution can continue at the following
// instruction.
func (ins Instruction) ContinuesToNext() bool {
	_, ok := hc11.NotExecutingFollowingOpcodeInstructions[ins.Mnemonic]
	return !ok
}
