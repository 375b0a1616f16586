// Package loader handles flash image and configuration file loading.
// Bank geometry is always caller supplied data, the core never guesses a
// layout from the image size.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/retroenv/hc11godisasm/internal/bankmap"
	"github.com/retroenv/hc11godisasm/internal/memory"
)

// Loader handles loading the input files from disk.
type Loader struct{}

// New creates a new loader.
func New() *Loader {
	return &Loader{}
}

// LoadImage loads the raw flash image.
func (l *Loader) LoadImage(path string) (*memory.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image file %s: %w", path, err)
	}
	return memory.NewImage(data), nil
}

// bankConfig is the on disk form of the bank geometry. All numeric values
// accept hexadecimal strings like "0x18000".
type bankConfig struct {
	Banks []bankEntry `json:"banks"`
}

type bankEntry struct {
	ID        string `json:"id"`
	FileStart string `json:"file_start"`
	FileEnd   string `json:"file_end"`
	CPUBase   string `json:"cpu_base"`
}

// LoadBanks loads and validates the bank geometry file.
func (l *Loader) LoadBanks(path string) (*bankmap.Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bank geometry file %s: %w", path, err)
	}

	var config bankConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing bank geometry file %s: %w", path, err)
	}
	if len(config.Banks) == 0 {
		return nil, fmt.Errorf("bank geometry file %s declares no banks", path)
	}

	banks := make([]bankmap.Bank, 0, len(config.Banks))
	for i, entry := range config.Banks {
		bank, err := convertBankEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("bank entry %d: %w", i, err)
		}
		banks = append(banks, bank)
	}

	m, err := bankmap.New(banks)
	if err != nil {
		return nil, fmt.Errorf("validating bank geometry: %w", err)
	}
	return m, nil
}

// LoadLabels loads the optional address to label annotation file, a JSON
// object mapping CPU addresses to names.
func (l *Loader) LoadLabels(path string) (map[uint16]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading label file %s: %w", path, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing label file %s: %w", path, err)
	}

	labels := make(map[uint16]string, len(raw))
	for key, name := range raw {
		addr, err := strconv.ParseUint(key, 0, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid label address %q: %w", key, err)
		}
		labels[uint16(addr)] = name
	}
	return labels, nil
}

func convertBankEntry(entry bankEntry) (bankmap.Bank, error) {
	fileStart, err := parseValue(entry.FileStart, 32)
	if err != nil {
		return bankmap.Bank{}, fmt.Errorf("file_start: %w", err)
	}
	fileEnd, err := parseValue(entry.FileEnd, 32)
	if err != nil {
		return bankmap.Bank{}, fmt.Errorf("file_end: %w", err)
	}
	cpuBase, err := parseValue(entry.CPUBase, 16)
	if err != nil {
		return bankmap.Bank{}, fmt.Errorf("cpu_base: %w", err)
	}

	return bankmap.Bank{
		ID:        entry.ID,
		FileStart: int(fileStart),
		FileEnd:   int(fileEnd),
		CPUBase:   uint16(cpuBase),
	}, nil
}

func parseValue(s string, bits int) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing value")
	}
	value, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return value, nil
}
