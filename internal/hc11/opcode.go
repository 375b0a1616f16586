// Package hc11 provides the canonical Motorola 68HC11 opcode table.
// The table is an immutable configuration value constructed once via
// NewTable and passed by reference into decoder instances, allowing an
// alternate table for a related instruction set variant to be swapped in
// without touching decode logic.
package hc11

// Prebytes selecting the alternate opcode table pages. A prebyte extends
// the effective opcode space, the following byte is looked up in the page
// the prebyte selects.
const (
	PrebytePage2 = 0x18 // Y register variants of X indexed instructions
	PrebytePage3 = 0x1A // CPD and Y/X crossed indexed forms
	PrebytePage4 = 0xCD // D/X register forms indexed by Y
)

// Opcodes referenced by name outside the table.
const (
	OpJmpExtended = 0x7E // absolute jump, used by the pseudo-vector slots
	OpBra         = 0x20 // unconditional relative branch
)

// IsPrebyte returns whether the byte selects an alternate opcode page.
func IsPrebyte(b byte) bool {
	return b == PrebytePage2 || b == PrebytePage3 || b == PrebytePage4
}

// Opcode describes one instruction encoding: its mnemonic, the total
// instruction length in bytes including any prebyte, and the addressing
// mode of its operand bytes. A zero mnemonic marks an unassigned slot.
type Opcode struct {
	Mnemonic   string
	Size       int
	Addressing AddressingMode
}

// BranchingInstructions contains all instructions that change the control
// flow to a target address.
var BranchingInstructions = map[string]struct{}{
	"BRA": {}, "BRN": {}, "BHI": {}, "BLS": {}, "BCC": {}, "BCS": {},
	"BNE": {}, "BEQ": {}, "BVC": {}, "BVS": {}, "BPL": {}, "BMI": {},
	"BGE": {}, "BLT": {}, "BGT": {}, "BLE": {}, "BSR": {},
	"BRSET": {}, "BRCLR": {},
	"JMP": {}, "JSR": {},
}

// CallInstructions contains all instructions that call a subroutine and
// continue at the following instruction after its return.
var CallInstructions = map[string]struct{}{
	"BSR": {}, "JSR": {},
}

// ReturnInstructions contains the instructions that end a subroutine or
// interrupt handler.
var ReturnInstructions = map[string]struct{}{
	"RTS": {}, "RTI": {},
}

// NotExecutingFollowingOpcodeInstructions contains all instructions that
// never continue at the following instruction.
var NotExecutingFollowingOpcodeInstructions = map[string]struct{}{
	"BRA": {}, "JMP": {}, "RTS": {}, "RTI": {},
}
