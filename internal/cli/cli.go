// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/hc11godisasm/internal/options"
	"github.com/retroenv/hc11godisasm/internal/vector"
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Disassembler{}, err
	}
	if opts.Input == "" {
		opts.Input = args[0]
	}
	if opts.Banks == "" {
		return opts, options.Disassembler{}, &UsageError{
			msg: "a bank geometry file is required, pass it with -banks",
		}
	}

	disasmOptions, err := createDisasmOptions(opts)
	if err != nil {
		return opts, options.Disassembler{}, err
	}
	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: hc11godisasm [options] <flash image to disassemble>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// createDisasmOptions converts the raw string options into disassembler options
func createDisasmOptions(opts options.Program) (options.Disassembler, error) {
	disasmOptions := options.NewDisassembler()
	disasmOptions.BankHint = opts.BankHint
	disasmOptions.Vectors = opts.Vectors

	if opts.Sweep != "" {
		start, length, err := parseSweep(opts.Sweep)
		if err != nil {
			return disasmOptions, err
		}
		disasmOptions.SweepStart = start
		disasmOptions.SweepLength = length
	}

	if opts.Seeds != "" {
		seeds, err := parseSeeds(opts.Seeds)
		if err != nil {
			return disasmOptions, err
		}
		disasmOptions.Seeds = seeds
	}
	disasmOptions.FollowAll = opts.Vectors && opts.Seeds == "" && opts.Sweep == ""

	slotRange, err := parseSlotRange(opts.SlotStart, opts.SlotEnd)
	if err != nil {
		return disasmOptions, err
	}
	disasmOptions.SlotRange = slotRange

	return disasmOptions, nil
}

// parseSweep parses a "start:length" file range, both values hexadecimal
// or decimal.
func parseSweep(s string) (int, int, error) {
	start, length, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid sweep range %q, expected start:length", s)
	}
	startValue, err := strconv.ParseUint(strings.TrimSpace(start), 0, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid sweep start %q: %w", start, err)
	}
	lengthValue, err := strconv.ParseUint(strings.TrimSpace(length), 0, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid sweep length %q: %w", length, err)
	}
	return int(startValue), int(lengthValue), nil
}

// parseSeeds parses a comma separated list of CPU addresses.
func parseSeeds(s string) ([]uint16, error) {
	var seeds []uint16
	for _, item := range strings.Split(s, ",") {
		value, err := strconv.ParseUint(strings.TrimSpace(item), 0, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid seed address %q: %w", item, err)
		}
		seeds = append(seeds, uint16(value))
	}
	return seeds, nil
}

func parseSlotRange(start, end string) (vector.SlotRange, error) {
	startValue, err := strconv.ParseUint(start, 0, 16)
	if err != nil {
		return vector.SlotRange{}, fmt.Errorf("invalid slot range start %q: %w", start, err)
	}
	endValue, err := strconv.ParseUint(end, 0, 16)
	if err != nil {
		return vector.SlotRange{}, fmt.Errorf("invalid slot range end %q: %w", end, err)
	}
	if endValue < startValue {
		return vector.SlotRange{}, fmt.Errorf("slot range end 0x%04X before start 0x%04X", endValue, startValue)
	}
	return vector.SlotRange{Start: uint16(startValue), End: uint16(endValue)}, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input flash image file")
	flags.StringVar(&opts.Output, "o", "", "name of the output listing file, printed on console if no name given")
	flags.StringVar(&opts.Banks, "banks", "", "bank geometry file describing file offset to CPU address mapping")
	flags.StringVar(&opts.Labels, "labels", "", "optional address to label annotation file")
	flags.StringVar(&opts.BankHint, "bank", "", "bank id to disambiguate CPU addresses aliased by multiple banks")
	flags.StringVar(&opts.Sweep, "sweep", "", "linear sweep over a file range, for example 0x18000:0x8000")
	flags.StringVar(&opts.Seeds, "seeds", "", "comma separated CPU addresses to start recursive descent from")
	flags.BoolVar(&opts.Vectors, "vectors", false, "resolve and report the interrupt vector chains")
	flags.StringVar(&opts.SlotStart, "slot-start", "0x2000", "first CPU address of the pseudo-vector jump table")
	flags.StringVar(&opts.SlotEnd, "slot-end", "0x202F", "last CPU address of the pseudo-vector jump table")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
