package vector

import (
	"testing"

	"github.com/retroenv/hc11godisasm/internal/bankmap"
	"github.com/retroenv/hc11godisasm/internal/memory"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

const (
	slotBase    = 0x2000
	handlerCPU  = 0x9000
	jumpTableJT = 0x8000 // file offset of the jump table region
)

// newTestImage builds an image where every hardware vector points at the
// first pseudo-vector slot and the slot jumps to a handler in the fixed
// bank. The jump table region is mapped at CPU 0x2000 by its own bank.
func newTestImage(t *testing.T) ([]byte, *bankmap.Map) {
	t.Helper()

	data := make([]byte, 0x8040)

	// JMP $9000 in the first slot
	data[jumpTableJT] = 0x7E
	data[jumpTableJT+1] = handlerCPU >> 8
	data[jumpTableJT+2] = handlerCPU & 0xFF

	// all 21 vectors point at the first slot
	for i := range 21 {
		offset := 0x7FD6 + 2*i
		data[offset] = slotBase >> 8
		data[offset+1] = slotBase & 0xFF
	}

	banks, err := bankmap.New([]bankmap.Bank{
		{ID: "FIXED", FileStart: 0x0000, FileEnd: 0x8000, CPUBase: 0x8000},
		{ID: "JT", FileStart: jumpTableJT, FileEnd: 0x8040, CPUBase: slotBase},
	})
	assert.NoError(t, err)
	return data, banks
}

func testSlots() SlotRange {
	return SlotRange{Start: 0x2000, End: 0x202F}
}

func TestValidateAllResolved(t *testing.T) {
	data, banks := newTestImage(t)
	r := New(log.NewTestLogger(t), memory.NewImage(data), banks, "")

	entries, err := r.Validate(testSlots())
	assert.NoError(t, err)
	assert.Len(t, entries, 21)

	for _, entry := range entries {
		assert.Equal(t, StatusResolved, entry.Status)
		assert.Equal(t, uint16(handlerCPU), entry.HandlerCPU)
		assert.NotNil(t, entry.Handler)
		assert.Equal(t, "FIXED", entry.Handler.Bank)
	}

	// table order, lowest address first
	assert.Equal(t, "SCI", entries[0].Name)
	assert.Equal(t, uint16(0xFFD6), entries[0].VectorCPU)
	assert.Equal(t, "RESET", entries[20].Name)
	assert.Equal(t, uint16(0xFFFE), entries[20].VectorCPU)
}

func TestValidateSingleBrokenVector(t *testing.T) {
	data, banks := newTestImage(t)

	// corrupt the TOF vector to point outside the slot range
	offset := 0x7FD6 + 2*4
	data[offset] = 0x50
	data[offset+1] = 0x00

	r := New(log.NewTestLogger(t), memory.NewImage(data), banks, "")
	entries, err := r.Validate(testSlots())
	assert.NoError(t, err)

	var broken []Entry
	for _, entry := range entries {
		if entry.Status != StatusResolved {
			broken = append(broken, entry)
		}
	}

	// exactly the corrupted vector is reported, all others still resolve
	assert.Len(t, broken, 1)
	assert.Equal(t, "TOF", broken[0].Name)
	assert.Equal(t, StatusOutOfRange, broken[0].Status)
	assert.Equal(t, uint16(0x5000), broken[0].Stored)
}

func TestValidateSlotWithoutJump(t *testing.T) {
	data, banks := newTestImage(t)

	// point the SCI vector at a slot that holds no jump opcode
	data[0x7FD6] = 0x20
	data[0x7FD7] = 0x03
	data[jumpTableJT+3] = 0x01

	r := New(log.NewTestLogger(t), memory.NewImage(data), banks, "")
	entries, err := r.Validate(testSlots())
	assert.NoError(t, err)

	assert.Equal(t, "SCI", entries[0].Name)
	assert.Equal(t, StatusNotAJump, entries[0].Status)
}

func TestSlotRangeContains(t *testing.T) {
	slots := testSlots()

	assert.True(t, slots.Contains(0x2000))
	assert.True(t, slots.Contains(0x202F))
	assert.False(t, slots.Contains(0x1FFF))
	assert.False(t, slots.Contains(0x2030))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "resolved", StatusResolved.String())
	assert.Equal(t, "out of range", StatusOutOfRange.String())
	assert.Equal(t, "not a jump", StatusNotAJump.String())
}
