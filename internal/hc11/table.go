package hc11

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOpcode is returned when the leading byte or bytes are not
	// assigned in the table, including a prebyte followed by an unassigned
	// page entry.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrIncomplete is returned when fewer bytes are supplied than the
	// matched opcode declares it needs. The table never reads past the
	// supplied slice and never guesses missing bytes.
	ErrIncomplete = errors.New("incomplete opcode byte sequence")
)

// Table is the immutable opcode table of one instruction set variant.
// It is constructed once and shared read-only by all decoder instances.
type Table struct {
	base  [256]Opcode
	pages map[byte][256]Opcode
}

// NewTable creates the canonical 68HC11 opcode table and verifies its
// internal consistency, so that future edits cannot silently reintroduce
// contradicting instruction lengths.
func NewTable() (*Table, error) {
	t := &Table{
		base: baseOpcodes,
		pages: map[byte][256]Opcode{
			PrebytePage2: page2Opcodes,
			PrebytePage3: page3Opcodes,
			PrebytePage4: page4Opcodes,
		},
	}
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("validating opcode table: %w", err)
	}
	return t, nil
}

// Lookup resolves the opcode that the leading bytes of the passed slice
// select. The slice starts at the instruction to identify and typically
// extends to the end of the image. If the slice is shorter than the full
// instruction, ErrIncomplete is returned and the caller must treat the
// position as truncated.
func (t *Table) Lookup(data []byte) (Opcode, error) {
	if len(data) == 0 {
		return Opcode{}, ErrIncomplete
	}

	b := data[0]
	page, prefixed := t.pages[b]
	var op Opcode
	if prefixed {
		if len(data) < 2 {
			return Opcode{}, ErrIncomplete
		}
		op = page[data[1]]
	} else {
		op = t.base[b]
	}

	if op.Mnemonic == "" {
		return Opcode{}, ErrUnknownOpcode
	}
	if len(data) < op.Size {
		return Opcode{}, ErrIncomplete
	}
	return op, nil
}

// validate cross-checks every assigned entry against its addressing mode.
// The source material this table was consolidated from carried several
// mutually contradicting lengths for the same opcodes.
func (t *Table) validate() error {
	for b, op := range t.base {
		if err := validateOpcode(op, byte(b), 0); err != nil {
			return err
		}
	}
	for prebyte, page := range t.pages {
		if t.base[prebyte].Mnemonic != "" {
			return fmt.Errorf("prebyte 0x%02X is also assigned in the base page", prebyte)
		}
		for b, op := range page {
			if err := validateOpcode(op, byte(b), prebyte); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateOpcode(op Opcode, b, prebyte byte) error {
	if op.Mnemonic == "" {
		return nil
	}

	leadBytes := 1
	if prebyte != 0 {
		leadBytes = 2
	}
	if want := leadBytes + OperandBytes(op.Addressing); op.Size != want {
		return fmt.Errorf("opcode %s (prebyte 0x%02X, byte 0x%02X): size %d, addressing %s requires %d",
			op.Mnemonic, prebyte, b, op.Size, op.Addressing, want)
	}
	if IsBitAddressing(op.Addressing) && op.Size < 3 {
		return fmt.Errorf("bit manipulation opcode %s (byte 0x%02X): size %d below minimum 3",
			op.Mnemonic, b, op.Size)
	}
	if IsPrebyte(b) && prebyte == 0 {
		return fmt.Errorf("reserved prebyte 0x%02X assigned as instruction %s", b, op.Mnemonic)
	}
	return nil
}
