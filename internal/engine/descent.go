package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/retroenv/hc11godisasm/internal/bankmap"
	"github.com/retroenv/hc11godisasm/internal/decoder"
	"github.com/retroenv/hc11godisasm/internal/hc11"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Seed is a known code entry point for recursive descent, typically a
// resolved vector handler or a known call target.
type Seed struct {
	Name string
	CPU  uint16
	Bank string
}

// Run is the ordered instruction stream discovered from one seed.
type Run struct {
	Seed         Seed
	Instructions []decoder.Instruction
}

// Visit keys the visited set of a descent. An address is identified by its
// bank and CPU address, so the same CPU window in two pages is walked
// independently.
type Visit struct {
	Bank string
	CPU  uint16
}

// NewVisited creates an empty visited set. A set can be shared across
// Descend calls to make repeated descents from the same seeds idempotent:
// nothing already visited produces output again.
func NewVisited() set.Set[Visit] {
	return set.New[Visit]()
}

// Descend follows control flow outward from the passed seeds, one
// independent run per seed in the given order. Discovery uses an explicit
// work queue instead of recursion, and the visited set is checked before
// any decode, so tight call cycles terminate. A path stops at return
// instructions, at undecodable bytes and at addresses already visited.
// Instructions within a run are ordered ascending by bank and address.
func (e *Engine) Descend(ctx context.Context, seeds []Seed, visited set.Set[Visit]) ([]Run, error) {
	runs := make([]Run, 0, len(seeds))

	for _, seed := range seeds {
		run, err := e.descend(ctx, seed, visited)
		if err != nil {
			return runs, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func (e *Engine) descend(ctx context.Context, seed Seed, visited set.Set[Visit]) (Run, error) {
	run := Run{Seed: seed}
	queue := []decoder.Target{{CPU: seed.CPU, Bank: seed.Bank}}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return run, fmt.Errorf("descending from seed %s: %w", seed.Name, err)
		}

		target := queue[0]
		queue = queue[1:]

		key := Visit{Bank: target.Bank, CPU: target.CPU}
		if visited.Contains(key) {
			continue
		}
		visited.Add(key)

		ins, ok := e.decodeTarget(target)
		if !ok {
			continue
		}
		run.Instructions = append(run.Instructions, ins)

		if ins.Target != nil && ins.IsBranch() {
			queue = append(queue, *ins.Target)
		}
		if ins.ContinuesToNext() {
			queue = append(queue, decoder.Target{
				CPU:  ins.Address.CPU + uint16(len(ins.Raw)),
				Bank: ins.Address.Bank,
			})
		}
	}

	slices.SortFunc(run.Instructions, func(a, b decoder.Instruction) int {
		if a.Address.Bank != b.Address.Bank {
			if a.Address.Bank < b.Address.Bank {
				return -1
			}
			return 1
		}
		return int(a.Address.CPU) - int(b.Address.CPU)
	})
	return run, nil
}

// decodeTarget translates and decodes one discovered address. Targets
// pointing outside the mapped banks or into data are expected in firmware,
// they end the path instead of failing the descent.
func (e *Engine) decodeTarget(target decoder.Target) (decoder.Instruction, bool) {
	address, err := e.dec.Banks().ToFile(target.CPU, target.Bank)
	if err != nil {
		if !errors.Is(err, bankmap.ErrAddressOutOfRange) {
			e.logger.Debug("Skipping target",
				log.String("address", fmt.Sprintf("0x%04X", target.CPU)), log.Err(err))
		}
		return decoder.Instruction{}, false
	}

	ins, err := e.dec.Decode(address.FileOffset)
	if err != nil {
		if errors.Is(err, hc11.ErrUnknownOpcode) || errors.Is(err, hc11.ErrIncomplete) {
			e.logger.Debug("Path ends at undecodable byte",
				log.String("address", fmt.Sprintf("0x%04X", target.CPU)))
		} else {
			e.logger.Debug("Skipping target",
				log.String("address", fmt.Sprintf("0x%04X", target.CPU)), log.Err(err))
		}
		return decoder.Instruction{}, false
	}
	return ins, true
}
