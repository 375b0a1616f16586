// Package vector resolves the two level interrupt indirection chain of
// banked 68HC11 firmware: a hardware vector holds the address of a
// pseudo-vector slot, the slot holds one absolute jump to the real
// handler. The hardware points at the jump table because the handler may
// live in a bank that is not guaranteed resident at interrupt time.
package vector

import (
	"fmt"

	"github.com/retroenv/hc11godisasm/internal/bankmap"
	"github.com/retroenv/hc11godisasm/internal/hc11"
	"github.com/retroenv/hc11godisasm/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

// HardwareVectorBase is the CPU address of the first hardware vector.
// The 21 vectors occupy 0xFFD6..0xFFFF.
const HardwareVectorBase = 0xFFD6

// hardwareVectors lists the vector names in table order, lowest address
// first. The reset vector is the last word of the address space.
var hardwareVectors = []string{
	"SCI", "SPI", "PAIE", "PAO", "TOF",
	"TOC5", "TOC4", "TOC3", "TOC2", "TOC1",
	"TIC3", "TIC2", "TIC1", "RTI", "IRQ",
	"XIRQ", "SWI", "ILLEGAL", "COP", "CLOCK",
	"RESET",
}

// Status describes how far the resolution chain of one vector got.
type Status int

const (
	// StatusResolved means the chain ended at a real handler address.
	StatusResolved Status = iota
	// StatusOutOfRange means the stored value lies outside the expected
	// pseudo-vector slot range.
	StatusOutOfRange
	// StatusNotAJump means the slot does not hold an absolute jump opcode.
	StatusNotAJump
)

func (s Status) String() string {
	switch s {
	case StatusResolved:
		return "resolved"
	case StatusOutOfRange:
		return "out of range"
	case StatusNotAJump:
		return "not a jump"
	default:
		return "unknown"
	}
}

// Entry is the resolution report of one hardware vector.
// Handler is only set for StatusResolved, and only when the handler CPU
// address could be translated unambiguously, HandlerCPU is always set for
// resolved entries.
type Entry struct {
	Name       string
	VectorCPU  uint16
	Stored     uint16
	HandlerCPU uint16
	Handler    *bankmap.Address
	Status     Status
}

// SlotRange is the inclusive CPU address range the pseudo-vector jump
// table is expected in.
type SlotRange struct {
	Start uint16
	End   uint16
}

// Contains returns whether the address falls into the range.
func (r SlotRange) Contains(addr uint16) bool {
	return addr >= r.Start && addr <= r.End
}

// Resolver walks and validates the vector chains of one image.
type Resolver struct {
	logger   *log.Logger
	image    *memory.Image
	banks    *bankmap.Map
	bankHint string
}

// New creates a resolver. The bank hint selects the bank to translate CPU
// addresses with when the geometry aliases them, it may be empty for
// unambiguous layouts.
func New(logger *log.Logger, image *memory.Image, banks *bankmap.Map, bankHint string) *Resolver {
	return &Resolver{
		logger:   logger,
		image:    image,
		banks:    banks,
		bankHint: bankHint,
	}
}

// Validate resolves every hardware vector and reports all outcomes
// together. A vector that breaks its chain is recorded with its status and
// never aborts validation of the others, unconventional vector usage is
// expected in firmware, not exceptional.
func (r *Resolver) Validate(slots SlotRange) ([]Entry, error) {
	entries := make([]Entry, 0, len(hardwareVectors))

	for i, name := range hardwareVectors {
		vectorCPU := uint16(HardwareVectorBase + 2*i)
		entry, err := r.resolve(name, vectorCPU, slots)
		if err != nil {
			return nil, fmt.Errorf("resolving vector %s: %w", name, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// resolve walks one chain: hardware vector word, slot range check, jump
// opcode check, handler operand.
func (r *Resolver) resolve(name string, vectorCPU uint16, slots SlotRange) (Entry, error) {
	entry := Entry{
		Name:      name,
		VectorCPU: vectorCPU,
	}

	vector, err := r.banks.ToFile(vectorCPU, r.bankHint)
	if err != nil {
		return Entry{}, fmt.Errorf("translating vector address 0x%04X: %w", vectorCPU, err)
	}
	stored, ok := r.image.Word(vector.FileOffset)
	if !ok {
		return Entry{}, fmt.Errorf("reading vector word at file offset 0x%X: %w",
			vector.FileOffset, hc11.ErrIncomplete)
	}
	entry.Stored = stored

	if !slots.Contains(stored) {
		entry.Status = StatusOutOfRange
		r.logger.Debug("Vector outside slot range",
			log.String("vector", name),
			log.String("stored", fmt.Sprintf("0x%04X", stored)))
		return entry, nil
	}

	slot, err := r.banks.ToFile(stored, r.bankHint)
	if err != nil {
		// inside the expected range but not mapped by any declared bank
		entry.Status = StatusOutOfRange
		return entry, nil
	}

	opcode, ok := r.image.Byte(slot.FileOffset)
	if !ok || opcode != hc11.OpJmpExtended {
		entry.Status = StatusNotAJump
		return entry, nil
	}

	handlerCPU, ok := r.image.Word(slot.FileOffset + 1)
	if !ok {
		entry.Status = StatusNotAJump
		return entry, nil
	}

	entry.Status = StatusResolved
	entry.HandlerCPU = handlerCPU
	if handler, err := r.banks.ToFile(handlerCPU, r.bankHint); err == nil {
		entry.Handler = &handler
	}
	return entry, nil
}
