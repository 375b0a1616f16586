package engine

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/retroenv/hc11godisasm/internal/decoder"
	"github.com/retroenv/hc11godisasm/internal/hc11"
	"github.com/retroenv/retrogolib/log"
)

// LinearSweep returns a stream of instructions decoded over the file range
// [start, start+length). On an unknown opcode or a truncated tail a single
// byte raw data record is emitted and the sweep advances exactly one byte,
// a sweep never aborts on a single bad byte. The stream ends early when
// the context is cancelled, cancellation is checked between instructions.
func (e *Engine) LinearSweep(ctx context.Context, start, length int) iter.Seq[decoder.Instruction] {
	return func(yield func(decoder.Instruction) bool) {
		end := start + length

		for offset := start; offset < end; {
			if ctx.Err() != nil {
				return
			}

			ins, err := e.dec.Decode(offset)
			if err != nil {
				if !errors.Is(err, hc11.ErrUnknownOpcode) && !errors.Is(err, hc11.ErrIncomplete) {
					e.logger.Error("Sweep stopped",
						log.String("offset", fmt.Sprintf("0x%05X", offset)), log.Err(err))
					return
				}

				ins, err = e.dec.DataByte(offset)
				if err != nil {
					e.logger.Error("Sweep stopped",
						log.String("offset", fmt.Sprintf("0x%05X", offset)), log.Err(err))
					return
				}
			}

			if !yield(ins) {
				return
			}
			offset += len(ins.Raw)
		}
	}
}
