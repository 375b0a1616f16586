package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/hc11godisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestProcessFileWritesListing(t *testing.T) {
	dir := t.TempDir()

	image := filepath.Join(dir, "flash.bin")
	assert.NoError(t, os.WriteFile(image, []byte{0x7E, 0x80, 0x03, 0x39}, 0o644))

	banks := filepath.Join(dir, "banks.json")
	assert.NoError(t, os.WriteFile(banks, []byte(`{
		"banks": [{"id": "FIXED", "file_start": "0x0", "file_end": "0x4", "cpu_base": "0x8000"}]
	}`), 0o644))

	output := filepath.Join(dir, "flash.lst")
	opts := options.Program{
		Input:  image,
		Banks:  banks,
		Output: output,
		Quiet:  true,
	}
	disasmOpts := options.NewDisassembler()
	disasmOpts.SweepStart = 0
	disasmOpts.SweepLength = 4

	logger := log.NewTestLogger(t)
	assert.NoError(t, ProcessFile(context.Background(), logger, opts, disasmOpts))

	listing, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Contains(t, string(listing), "JMP")
	assert.Contains(t, string(listing), "RTS")
}

func TestProcessFileMissingInput(t *testing.T) {
	dir := t.TempDir()

	banks := filepath.Join(dir, "banks.json")
	assert.NoError(t, os.WriteFile(banks, []byte(`{
		"banks": [{"id": "FIXED", "file_start": "0x0", "file_end": "0x4", "cpu_base": "0x8000"}]
	}`), 0o644))

	opts := options.Program{
		Input: filepath.Join(dir, "missing.bin"),
		Banks: banks,
		Quiet: true,
	}

	logger := log.NewTestLogger(t)
	err := ProcessFile(context.Background(), logger, opts, options.NewDisassembler())
	assert.Error(t, err)
}
