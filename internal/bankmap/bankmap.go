// Package bankmap translates between flash image file offsets and CPU
// addresses for banked memory layouts. Several file regions can alias the
// same CPU window, the active page register is not modeled, callers pass a
// bank hint instead.
package bankmap

import (
	"errors"
	"fmt"
)

var (
	// ErrAddressOutOfRange is returned when no declared bank covers the address.
	ErrAddressOutOfRange = errors.New("address not covered by any bank")
	// ErrAmbiguousBank is returned when a CPU address is present in more than
	// one bank and no disambiguating hint was given.
	ErrAmbiguousBank = errors.New("cpu address maps to multiple banks")
	// ErrBankMismatch is returned when a bank hint does not match the bank
	// covering the address.
	ErrBankMismatch = errors.New("bank hint does not match covering bank")
)

// Bank maps a contiguous file range into a CPU window of the same length.
// FileEnd is exclusive. Distinct banks may map to the same CPU range, that
// is what paging means. A single bank never overlaps itself in file space.
type Bank struct {
	FileStart int
	FileEnd   int
	CPUBase   uint16
	ID        string
}

// Address is a translated file offset / CPU address pair.
// It is only constructed by Map, all other code treats it as opaque.
type Address struct {
	FileOffset int
	CPU        uint16
	Bank       string
}

// Map holds the declared banks of a flash image.
type Map struct {
	banks []Bank
}

// New creates a bank map and validates the bank geometry: every file range
// must be non-empty, fit the 16 bit CPU address space and entries sharing a
// bank ID must not overlap in file space. CPU windows of different IDs may
// overlap freely.
func New(banks []Bank) (*Map, error) {
	for i, bank := range banks {
		if bank.ID == "" {
			return nil, fmt.Errorf("bank %d: missing bank id", i)
		}
		if bank.FileEnd <= bank.FileStart || bank.FileStart < 0 {
			return nil, fmt.Errorf("bank %s: invalid file range 0x%X-0x%X",
				bank.ID, bank.FileStart, bank.FileEnd)
		}
		size := bank.FileEnd - bank.FileStart
		if int(bank.CPUBase)+size-1 > 0xFFFF {
			return nil, fmt.Errorf("bank %s: cpu window 0x%04X+0x%X exceeds address space",
				bank.ID, bank.CPUBase, size)
		}

		for j := range i {
			other := banks[j]
			if other.ID != bank.ID {
				continue
			}
			if bank.FileStart < other.FileEnd && other.FileStart < bank.FileEnd {
				return nil, fmt.Errorf("bank %s: file ranges 0x%X-0x%X and 0x%X-0x%X overlap",
					bank.ID, other.FileStart, other.FileEnd, bank.FileStart, bank.FileEnd)
			}
		}
	}

	m := &Map{
		banks: make([]Bank, len(banks)),
	}
	copy(m.banks, banks)
	return m, nil
}

// ToCPU translates a file offset to the CPU address and bank that cover it.
func (m *Map) ToCPU(fileOffset int) (Address, error) {
	for _, bank := range m.banks {
		if fileOffset < bank.FileStart || fileOffset >= bank.FileEnd {
			continue
		}
		return Address{
			FileOffset: fileOffset,
			CPU:        bank.CPUBase + uint16(fileOffset-bank.FileStart),
			Bank:       bank.ID,
		}, nil
	}
	return Address{}, fmt.Errorf("file offset 0x%X: %w", fileOffset, ErrAddressOutOfRange)
}

// ToFile translates a CPU address to a file offset. If more than one bank
// covers the address the hint selects the bank and is mandatory. With
// exactly one covering bank the hint is optional but must match if given.
func (m *Map) ToFile(cpuAddr uint16, hint string) (Address, error) {
	var candidates []Bank
	for _, bank := range m.banks {
		size := bank.FileEnd - bank.FileStart
		if cpuAddr < bank.CPUBase || int(cpuAddr) >= int(bank.CPUBase)+size {
			continue
		}
		candidates = append(candidates, bank)
	}

	switch {
	case len(candidates) == 0:
		return Address{}, fmt.Errorf("cpu address 0x%04X: %w", cpuAddr, ErrAddressOutOfRange)

	case len(candidates) == 1:
		bank := candidates[0]
		if hint != "" && hint != bank.ID {
			return Address{}, fmt.Errorf("cpu address 0x%04X: hint %s, covering bank %s: %w",
				cpuAddr, hint, bank.ID, ErrBankMismatch)
		}
		return m.address(cpuAddr, bank), nil

	default:
		if hint == "" {
			return Address{}, fmt.Errorf("cpu address 0x%04X covered by %d banks: %w",
				cpuAddr, len(candidates), ErrAmbiguousBank)
		}
		for _, bank := range candidates {
			if bank.ID == hint {
				return m.address(cpuAddr, bank), nil
			}
		}
		return Address{}, fmt.Errorf("cpu address 0x%04X: hint %s matches no covering bank: %w",
			cpuAddr, hint, ErrBankMismatch)
	}
}

// Banks returns a copy of the declared banks.
func (m *Map) Banks() []Bank {
	banks := make([]Bank, len(m.banks))
	copy(banks, m.banks)
	return banks
}

func (m *Map) address(cpuAddr uint16, bank Bank) Address {
	return Address{
		FileOffset: bank.FileStart + int(cpuAddr-bank.CPUBase),
		CPU:        cpuAddr,
		Bank:       bank.ID,
	}
}
