// Package decoder decodes single 68HC11 instructions from a flash image.
// Decoding is a pure function of the image, the file offset, the opcode
// table and the bank map: identical inputs always yield an identical
// instruction, and no decode ever mutates shared state.
package decoder

import (
	"errors"
	"fmt"

	"github.com/retroenv/hc11godisasm/internal/bankmap"
	"github.com/retroenv/hc11godisasm/internal/hc11"
	"github.com/retroenv/hc11godisasm/internal/memory"
)

// ErrMalformed is returned when the resolved instruction length is
// internally inconsistent with the prefix and operand accounting.
var ErrMalformed = errors.New("malformed instruction encoding")

// Decoder decodes instructions of one image against one opcode table and
// bank map. It is safe for concurrent use, all fields are read-only.
type Decoder struct {
	image  *memory.Image
	table  *hc11.Table
	banks  *bankmap.Map
	labels map[uint16]string
}

// New creates a decoder. The label map is advisory: a matching label is
// attached to the operand text but never changes decode length, mode or
// target computation. It may be nil.
func New(image *memory.Image, table *hc11.Table, banks *bankmap.Map,
	labels map[uint16]string) *Decoder {

	return &Decoder{
		image:  image,
		table:  table,
		banks:  banks,
		labels: labels,
	}
}

// Banks returns the bank map the decoder translates addresses with.
func (d *Decoder) Banks() *bankmap.Map {
	return d.banks
}

// Decode decodes the instruction at the given file offset.
// Errors are typed values: hc11.ErrUnknownOpcode and hc11.ErrIncomplete
// are locally recoverable for sweeps, bankmap errors indicate a caller
// contract violation, ErrMalformed a table inconsistency.
func (d *Decoder) Decode(fileOffset int) (Instruction, error) {
	address, err := d.banks.ToCPU(fileOffset)
	if err != nil {
		return Instruction{}, fmt.Errorf("translating file offset: %w", err)
	}

	op, err := d.table.Lookup(d.image.Slice(fileOffset, maxInstructionSize))
	if err != nil {
		return Instruction{}, fmt.Errorf("looking up opcode at file offset 0x%X: %w", fileOffset, err)
	}

	raw := d.image.Slice(fileOffset, op.Size)
	if len(raw) != op.Size {
		return Instruction{}, fmt.Errorf("reading %d opcode bytes at file offset 0x%X: %w",
			op.Size, fileOffset, hc11.ErrIncomplete)
	}

	prefixBytes := 1
	if hc11.IsPrebyte(raw[0]) {
		prefixBytes = 2
	}
	if op.Size != prefixBytes+hc11.OperandBytes(op.Addressing) {
		return Instruction{}, fmt.Errorf("opcode %s at file offset 0x%X: %w",
			op.Mnemonic, fileOffset, ErrMalformed)
	}

	operand, target := d.formatOperand(op, raw, address)

	ins := Instruction{
		Address:    address,
		Raw:        copyBytes(raw),
		Mnemonic:   op.Mnemonic,
		Addressing: op.Addressing,
		Operand:    operand,
		Target:     target,
		Valid:      true,
	}
	return ins, nil
}

// DataByte creates a single byte raw data record at the given file offset,
// used by sweeps to degrade gracefully on undecodable bytes.
func (d *Decoder) DataByte(fileOffset int) (Instruction, error) {
	address, err := d.banks.ToCPU(fileOffset)
	if err != nil {
		return Instruction{}, fmt.Errorf("translating file offset: %w", err)
	}
	b, ok := d.image.Byte(fileOffset)
	if !ok {
		return Instruction{}, fmt.Errorf("reading byte at file offset 0x%X: %w",
			fileOffset, hc11.ErrIncomplete)
	}

	return Instruction{
		Address:  address,
		Raw:      []byte{b},
		Mnemonic: rawDataMnemonic,
		Operand:  fmt.Sprintf("$%02X", b),
	}, nil
}

// maxInstructionSize is the longest 68HC11 encoding, a prefixed bit test
// and branch form.
const maxInstructionSize = 5

const rawDataMnemonic = "FCB"

func copyBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
