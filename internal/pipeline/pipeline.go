// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/hc11godisasm/internal/decoder"
	"github.com/retroenv/hc11godisasm/internal/engine"
	"github.com/retroenv/hc11godisasm/internal/hc11"
	"github.com/retroenv/hc11godisasm/internal/loader"
	"github.com/retroenv/hc11godisasm/internal/memory"
	"github.com/retroenv/hc11godisasm/internal/options"
	"github.com/retroenv/hc11godisasm/internal/vector"
	"github.com/retroenv/hc11godisasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute runs the complete disassembly pipeline and writes the listing
// and reports to the passed writer.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program,
	disasmOpts options.Disassembler, out io.Writer) error {

	dec, image, err := p.createDecoder(opts)
	if err != nil {
		return err
	}
	p.printInfo(opts, dec)

	w := writer.New(out, writer.Options{OffsetLines: disasmOpts.OffsetLines})
	eng := engine.New(p.logger, dec)

	var seeds []engine.Seed

	if disasmOpts.Vectors {
		entries, err := p.resolveVectors(disasmOpts, image, dec, w)
		if err != nil {
			return err
		}
		if disasmOpts.FollowAll {
			seeds = handlerSeeds(entries, disasmOpts.BankHint)
		}
	}

	for _, cpu := range disasmOpts.Seeds {
		seeds = append(seeds, engine.Seed{
			Name: fmt.Sprintf("seed_%04X", cpu),
			CPU:  cpu,
			Bank: disasmOpts.BankHint,
		})
	}

	if len(seeds) > 0 {
		if err := p.descend(ctx, eng, seeds, w); err != nil {
			return err
		}
	}

	if disasmOpts.SweepStart >= 0 {
		if err := p.sweep(ctx, eng, disasmOpts, w); err != nil {
			return err
		}
	}
	return nil
}

// createDecoder loads the input files and assembles the decoder from them.
func (p *Pipeline) createDecoder(opts options.Program) (*decoder.Decoder, *memory.Image, error) {
	image, err := p.loader.LoadImage(opts.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("loading flash image: %w", err)
	}
	banks, err := p.loader.LoadBanks(opts.Banks)
	if err != nil {
		return nil, nil, fmt.Errorf("loading bank geometry: %w", err)
	}

	var labels map[uint16]string
	if opts.Labels != "" {
		labels, err = p.loader.LoadLabels(opts.Labels)
		if err != nil {
			return nil, nil, fmt.Errorf("loading labels: %w", err)
		}
	}

	table, err := hc11.NewTable()
	if err != nil {
		return nil, nil, fmt.Errorf("building opcode table: %w", err)
	}
	return decoder.New(image, table, banks, labels), image, nil
}

// resolveVectors validates the interrupt vector chains and writes the
// report.
func (p *Pipeline) resolveVectors(disasmOpts options.Disassembler, image *memory.Image,
	dec *decoder.Decoder, w *writer.Writer) ([]vector.Entry, error) {

	resolver := vector.New(p.logger, image, dec.Banks(), disasmOpts.BankHint)
	entries, err := resolver.Validate(disasmOpts.SlotRange)
	if err != nil {
		return nil, fmt.Errorf("validating vectors: %w", err)
	}
	if err := w.WriteVectorReport(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// handlerSeeds converts resolved vector entries into descent seeds.
func handlerSeeds(entries []vector.Entry, bankHint string) []engine.Seed {
	var seeds []engine.Seed
	for _, entry := range entries {
		if entry.Status != vector.StatusResolved {
			continue
		}
		bank := bankHint
		if entry.Handler != nil {
			bank = entry.Handler.Bank
		}
		seeds = append(seeds, engine.Seed{
			Name: entry.Name,
			CPU:  entry.HandlerCPU,
			Bank: bank,
		})
	}
	return seeds
}

func (p *Pipeline) descend(ctx context.Context, eng *engine.Engine,
	seeds []engine.Seed, w *writer.Writer) error {

	visited := engine.NewVisited()
	runs, err := eng.Descend(ctx, seeds, visited)
	if err != nil {
		return fmt.Errorf("recursive descent: %w", err)
	}
	for _, run := range runs {
		if err := w.WriteRun(run); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) sweep(ctx context.Context, eng *engine.Engine,
	disasmOpts options.Disassembler, w *writer.Writer) error {

	for ins := range eng.LinearSweep(ctx, disasmOpts.SweepStart, disasmOpts.SweepLength) {
		if err := w.WriteInstruction(ins); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("linear sweep: %w", err)
	}
	return nil
}

// printInfo prints information about the image being processed.
func (p *Pipeline) printInfo(opts options.Program, dec *decoder.Decoder) {
	if opts.Quiet {
		return
	}
	p.logger.Info("Processing flash image",
		log.String("file", opts.Input),
		log.Int("banks", len(dec.Banks().Banks())),
	)
}
