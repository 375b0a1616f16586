// Package engine drives the instruction decoder over image regions.
// It offers a linear sweep over a file range and a seeded recursive
// descent that follows control flow from known entry points. Both build on
// the same decoder and share its purity: running them twice over the same
// inputs yields identical output.
package engine

import (
	"github.com/retroenv/hc11godisasm/internal/decoder"
	"github.com/retroenv/retrogolib/log"
)

// Engine disassembles regions of one image.
type Engine struct {
	logger *log.Logger
	dec    *decoder.Decoder
}

// New creates a new disassembly engine on top of the passed decoder.
func New(logger *log.Logger, dec *decoder.Decoder) *Engine {
	return &Engine{
		logger: logger,
		dec:    dec,
	}
}
