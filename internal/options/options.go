// Package options contains the program options.
package options

import "github.com/retroenv/hc11godisasm/internal/vector"

// Program options of the disassembler as read from the command line.
type Program struct {
	Input  string
	Output string
	Banks  string
	Labels string

	BankHint string
	Sweep    string
	Seeds    string

	Vectors   bool
	SlotStart string
	SlotEnd   string

	Debug bool
	Quiet bool
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	BankHint string

	SweepStart  int
	SweepLength int

	Seeds []uint16

	Vectors     bool
	FollowAll   bool // descend from all resolved vector handlers
	SlotRange   vector.SlotRange
	OffsetLines bool // prefix listing lines with file offsets
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		SweepStart:  -1,
		OffsetLines: true,
	}
}
