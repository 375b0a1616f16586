// Package writer implements the disassembly listing output.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/hc11godisasm/internal/decoder"
	"github.com/retroenv/hc11godisasm/internal/engine"
	"github.com/retroenv/hc11godisasm/internal/vector"
)

// rawBytesWidth fits the longest instruction, 5 bytes printed as hex pairs.
const rawBytesWidth = 14

// Writer writes the disassembly listing.
type Writer struct {
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	OffsetLines bool // prefix every line with the file offset
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// WriteInstruction writes one listing line for a decoded instruction or a
// raw data record.
func (w *Writer) WriteInstruction(ins decoder.Instruction) error {
	var sb strings.Builder

	if w.options.OffsetLines {
		fmt.Fprintf(&sb, "%05X  ", ins.Address.FileOffset)
	}
	fmt.Fprintf(&sb, "%s:%04X  ", ins.Address.Bank, ins.Address.CPU)

	raw := make([]string, 0, len(ins.Raw))
	for _, b := range ins.Raw {
		raw = append(raw, fmt.Sprintf("%02X", b))
	}
	fmt.Fprintf(&sb, "%-*s  ", rawBytesWidth, strings.Join(raw, " "))

	if ins.Operand == "" {
		sb.WriteString(ins.Mnemonic)
	} else {
		fmt.Fprintf(&sb, "%-5s %s", ins.Mnemonic, ins.Operand)
	}

	if _, err := fmt.Fprintln(w.writer, sb.String()); err != nil {
		return fmt.Errorf("writing listing line: %w", err)
	}
	return nil
}

// WriteRunHeader writes the seed banner that precedes a descent run.
func (w *Writer) WriteRunHeader(seed engine.Seed) error {
	name := seed.Name
	if name == "" {
		name = "seed"
	}
	if _, err := fmt.Fprintf(w.writer, "\n; %s  0x%04X\n", name, seed.CPU); err != nil {
		return fmt.Errorf("writing run header: %w", err)
	}
	return nil
}

// WriteRun writes one descent run, the seed banner followed by all
// instructions reached from it.
func (w *Writer) WriteRun(run engine.Run) error {
	if err := w.WriteRunHeader(run.Seed); err != nil {
		return err
	}
	for _, ins := range run.Instructions {
		if err := w.WriteInstruction(ins); err != nil {
			return err
		}
	}
	return nil
}

// WriteVectorReport writes the resolution outcome of every hardware vector.
func (w *Writer) WriteVectorReport(entries []vector.Entry) error {
	if _, err := fmt.Fprintln(w.writer, "; vector   stored  handler  status"); err != nil {
		return fmt.Errorf("writing vector report header: %w", err)
	}

	for _, entry := range entries {
		var sb strings.Builder
		fmt.Fprintf(&sb, "; %-8s $%04X   ", entry.Name, entry.Stored)

		if entry.Status == vector.StatusResolved {
			fmt.Fprintf(&sb, "$%04X", entry.HandlerCPU)
			if entry.Handler != nil {
				fmt.Fprintf(&sb, " %s", entry.Handler.Bank)
			}
		} else {
			sb.WriteString("-")
		}
		fmt.Fprintf(&sb, "  %s", entry.Status)

		if _, err := fmt.Fprintln(w.writer, sb.String()); err != nil {
			return fmt.Errorf("writing vector report line: %w", err)
		}
	}
	return nil
}
