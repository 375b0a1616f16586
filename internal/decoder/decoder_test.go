package decoder

import (
	"errors"
	"testing"

	"github.com/retroenv/hc11godisasm/internal/bankmap"
	"github.com/retroenv/hc11godisasm/internal/hc11"
	"github.com/retroenv/hc11godisasm/internal/memory"
	"github.com/retroenv/retrogolib/assert"
)

// newTestDecoder maps the passed bytes as bank B2 at CPU address 0x8000,
// mirroring a switched page of a 128KB image at file offset 0x10000.
func newTestDecoder(t *testing.T, data []byte, labels map[uint16]string) *Decoder {
	t.Helper()

	padded := make([]byte, 0x10000+len(data))
	copy(padded[0x10000:], data)

	banks, err := bankmap.New([]bankmap.Bank{
		{ID: "B2", FileStart: 0x10000, FileEnd: 0x10000 + len(data), CPUBase: 0x8000},
	})
	assert.NoError(t, err)

	table, err := hc11.NewTable()
	assert.NoError(t, err)

	return New(memory.NewImage(padded), table, banks, labels)
}

func TestDecodeExtendedJump(t *testing.T) {
	dec := newTestDecoder(t, []byte{0x7E, 0x80, 0x10}, nil)

	ins, err := dec.Decode(0x10000)
	assert.NoError(t, err)
	assert.True(t, ins.Valid)
	assert.Equal(t, "JMP", ins.Mnemonic)
	assert.Equal(t, "$8010", ins.Operand)
	assert.Equal(t, uint16(0x8000), ins.Address.CPU)
	assert.Equal(t, "B2", ins.Address.Bank)
	assert.Len(t, ins.Raw, 3)

	assert.NotNil(t, ins.Target)
	assert.Equal(t, uint16(0x8010), ins.Target.CPU)
	assert.Equal(t, "B2", ins.Target.Bank)
}

func TestDecodeRelativeBranchTargets(t *testing.T) {
	tests := []struct {
		name         string
		displacement byte
		target       uint16
	}{
		{name: "forward", displacement: 0x02, target: 0x8004},
		{name: "backward to self", displacement: 0xFE, target: 0x8000},
		{name: "zero falls through", displacement: 0x00, target: 0x8002},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := newTestDecoder(t, []byte{0x20, tt.displacement}, nil)

			ins, err := dec.Decode(0x10000)
			assert.NoError(t, err)
			assert.Equal(t, "BRA", ins.Mnemonic)
			assert.NotNil(t, ins.Target)
			assert.Equal(t, tt.target, ins.Target.CPU)
		})
	}
}

func TestDecodeBitTestAndBranch(t *testing.T) {
	// BRCLR $29, mask $80, branch by 0x1D
	dec := newTestDecoder(t, []byte{0x13, 0x29, 0x80, 0x1D}, nil)

	ins, err := dec.Decode(0x10000)
	assert.NoError(t, err)
	assert.Equal(t, "BRCLR", ins.Mnemonic)
	assert.Len(t, ins.Raw, 4)

	// mask stays unsigned, target is next instruction plus displacement
	assert.Equal(t, "$29,#$80,$8021", ins.Operand)
	assert.NotNil(t, ins.Target)
	assert.Equal(t, uint16(0x8021), ins.Target.CPU)
	assert.True(t, ins.IsBranch())
	assert.True(t, ins.ContinuesToNext())
}

func TestDecodePrefixedInstruction(t *testing.T) {
	dec := newTestDecoder(t, []byte{0x18, 0xCE, 0x12, 0x34}, nil)

	ins, err := dec.Decode(0x10000)
	assert.NoError(t, err)
	assert.Equal(t, "LDY", ins.Mnemonic)
	assert.Equal(t, "#$1234", ins.Operand)
	assert.Len(t, ins.Raw, 4)
}

func TestDecodeLabelsAreAdvisory(t *testing.T) {
	labels := map[uint16]string{0x8010: "main_loop", 0x00A2: "rpm"}

	dec := newTestDecoder(t, []byte{0x7E, 0x80, 0x10, 0x96, 0xA2}, labels)

	ins, err := dec.Decode(0x10000)
	assert.NoError(t, err)
	assert.Equal(t, "$8010 (main_loop)", ins.Operand)
	assert.Len(t, ins.Raw, 3)
	assert.NotNil(t, ins.Target)
	assert.Equal(t, uint16(0x8010), ins.Target.CPU)

	ins, err = dec.Decode(0x10003)
	assert.NoError(t, err)
	assert.Equal(t, "LDAA", ins.Mnemonic)
	assert.Equal(t, "$A2 (rpm)", ins.Operand)
}

func TestDecodeIsPure(t *testing.T) {
	dec := newTestDecoder(t, []byte{0x7E, 0x80, 0x10}, nil)

	first, err := dec.Decode(0x10000)
	assert.NoError(t, err)
	second, err := dec.Decode(0x10000)
	assert.NoError(t, err)

	assert.Equal(t, first.Mnemonic, second.Mnemonic)
	assert.Equal(t, first.Operand, second.Operand)
	assert.Equal(t, first.Address, second.Address)

	// mutating returned bytes must not leak into later decodes
	first.Raw[0] = 0x00
	third, err := dec.Decode(0x10000)
	assert.NoError(t, err)
	assert.Equal(t, "JMP", third.Mnemonic)
}

func TestDecodeErrors(t *testing.T) {
	dec := newTestDecoder(t, []byte{0x41, 0x7E, 0x80}, nil)

	_, err := dec.Decode(0x10000)
	assert.True(t, errors.Is(err, hc11.ErrUnknownOpcode))

	// truncated at the end of the bank
	_, err = dec.Decode(0x10001)
	assert.True(t, errors.Is(err, hc11.ErrIncomplete))

	// outside any declared bank
	_, err = dec.Decode(0x20000)
	assert.True(t, errors.Is(err, bankmap.ErrAddressOutOfRange))
}

func TestDataByte(t *testing.T) {
	dec := newTestDecoder(t, []byte{0x41}, nil)

	ins, err := dec.DataByte(0x10000)
	assert.NoError(t, err)
	assert.Equal(t, "FCB", ins.Mnemonic)
	assert.Equal(t, "$41", ins.Operand)
	assert.Len(t, ins.Raw, 1)
	assert.True(t, ins.IsUnknownOrRaw())
}
