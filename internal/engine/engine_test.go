package engine

import (
	"context"
	"testing"

	"github.com/retroenv/hc11godisasm/internal/bankmap"
	"github.com/retroenv/hc11godisasm/internal/decoder"
	"github.com/retroenv/hc11godisasm/internal/hc11"
	"github.com/retroenv/hc11godisasm/internal/memory"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// newTestEngine maps the passed bytes as a single bank at CPU address
// 0x8000.
func newTestEngine(t *testing.T, data []byte) *Engine {
	t.Helper()

	banks, err := bankmap.New([]bankmap.Bank{
		{ID: "B1", FileStart: 0, FileEnd: len(data), CPUBase: 0x8000},
	})
	assert.NoError(t, err)

	table, err := hc11.NewTable()
	assert.NoError(t, err)

	dec := decoder.New(memory.NewImage(data), table, banks, nil)
	return New(log.NewTestLogger(t), dec)
}

func sweep(t *testing.T, e *Engine, start, length int) []decoder.Instruction {
	t.Helper()

	var instructions []decoder.Instruction
	for ins := range e.LinearSweep(context.Background(), start, length) {
		instructions = append(instructions, ins)
	}
	return instructions
}

func TestLinearSweep(t *testing.T) {
	e := newTestEngine(t, []byte{
		0x01,             // NOP
		0x7E, 0x80, 0x00, // JMP $8000
		0x39, // RTS
	})

	instructions := sweep(t, e, 0, 5)
	assert.Len(t, instructions, 3)
	assert.Equal(t, "NOP", instructions[0].Mnemonic)
	assert.Equal(t, "JMP", instructions[1].Mnemonic)
	assert.Equal(t, "RTS", instructions[2].Mnemonic)
}

func TestLinearSweepRecoversFromJunk(t *testing.T) {
	e := newTestEngine(t, []byte{
		0x01, // NOP
		0x41, // unassigned opcode
		0x20, 0xFE, // BRA back to itself
	})

	instructions := sweep(t, e, 0, 4)
	assert.Len(t, instructions, 3)

	// the junk byte becomes a single data record and the sweep resumes
	assert.Equal(t, "FCB", instructions[1].Mnemonic)
	assert.True(t, instructions[1].IsUnknownOrRaw())
	assert.Equal(t, "BRA", instructions[2].Mnemonic)
}

func TestLinearSweepTruncatedTail(t *testing.T) {
	e := newTestEngine(t, []byte{
		0x01,       // NOP
		0x7E, 0x80, // JMP missing its second operand byte
	})

	instructions := sweep(t, e, 0, 3)
	assert.Len(t, instructions, 3)
	assert.Equal(t, "FCB", instructions[1].Mnemonic)
	assert.Equal(t, "FCB", instructions[2].Mnemonic)
}

func TestLinearSweepIsIdempotent(t *testing.T) {
	e := newTestEngine(t, []byte{0x01, 0x41, 0x20, 0xFE})

	first := sweep(t, e, 0, 4)
	second := sweep(t, e, 0, 4)

	assert.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Mnemonic, second[i].Mnemonic)
		assert.Equal(t, first[i].Operand, second[i].Operand)
	}
}

func TestLinearSweepCancellation(t *testing.T) {
	e := newTestEngine(t, []byte{0x01, 0x01, 0x01})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var count int
	for range e.LinearSweep(ctx, 0, 3) {
		count++
	}
	assert.Equal(t, 0, count)
}

func TestDescendTerminatesOnCycle(t *testing.T) {
	e := newTestEngine(t, []byte{
		0x20, 0x00, // BRA $8002
		0x20, 0xFC, // BRA $8000
	})

	runs, err := e.Descend(context.Background(), []Seed{
		{Name: "loop", CPU: 0x8000, Bank: "B1"},
	}, NewVisited())
	assert.NoError(t, err)
	assert.Len(t, runs, 1)
	assert.Len(t, runs[0].Instructions, 2)
}

func TestDescendStopsAtReturn(t *testing.T) {
	e := newTestEngine(t, []byte{
		0x01, // NOP
		0x39, // RTS
		0x01, // NOP, unreachable
	})

	runs, err := e.Descend(context.Background(), []Seed{
		{Name: "sub", CPU: 0x8000, Bank: "B1"},
	}, NewVisited())
	assert.NoError(t, err)
	assert.Len(t, runs[0].Instructions, 2)
	assert.Equal(t, "RTS", runs[0].Instructions[1].Mnemonic)
}

func TestDescendFollowsCalls(t *testing.T) {
	e := newTestEngine(t, []byte{
		0xBD, 0x80, 0x06, // JSR $8006
		0x39,       // RTS
		0x41, 0x41, // data between the routines
		0x39, // RTS at $8006
	})

	runs, err := e.Descend(context.Background(), []Seed{
		{Name: "main", CPU: 0x8000, Bank: "B1"},
	}, NewVisited())
	assert.NoError(t, err)

	instructions := runs[0].Instructions
	assert.Len(t, instructions, 3)

	// ordered ascending by address, the data bytes are never decoded
	assert.Equal(t, uint16(0x8000), instructions[0].Address.CPU)
	assert.Equal(t, "JSR", instructions[0].Mnemonic)
	assert.Equal(t, uint16(0x8003), instructions[1].Address.CPU)
	assert.Equal(t, uint16(0x8006), instructions[2].Address.CPU)
}

func TestDescendPathEndsAtJunk(t *testing.T) {
	e := newTestEngine(t, []byte{
		0x01, // NOP
		0x41, // unassigned opcode ends the path
	})

	runs, err := e.Descend(context.Background(), []Seed{
		{Name: "main", CPU: 0x8000, Bank: "B1"},
	}, NewVisited())
	assert.NoError(t, err)
	assert.Len(t, runs[0].Instructions, 1)
}

func TestDescendSharedVisitedIsIdempotent(t *testing.T) {
	e := newTestEngine(t, []byte{0x01, 0x39})
	visited := NewVisited()
	seeds := []Seed{{Name: "sub", CPU: 0x8000, Bank: "B1"}}

	first, err := e.Descend(context.Background(), seeds, visited)
	assert.NoError(t, err)
	assert.Len(t, first[0].Instructions, 2)

	second, err := e.Descend(context.Background(), seeds, visited)
	assert.NoError(t, err)
	assert.Len(t, second[0].Instructions, 0)
}

func TestDescendSeedOrder(t *testing.T) {
	e := newTestEngine(t, []byte{
		0x39, // RTS at $8000
		0x39, // RTS at $8001
	})

	runs, err := e.Descend(context.Background(), []Seed{
		{Name: "second", CPU: 0x8001, Bank: "B1"},
		{Name: "first", CPU: 0x8000, Bank: "B1"},
	}, NewVisited())
	assert.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.Equal(t, "second", runs[0].Seed.Name)
	assert.Equal(t, "first", runs[1].Seed.Name)
}
