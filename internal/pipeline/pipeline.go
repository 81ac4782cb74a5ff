// internal/pipeline/pipeline.go
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"motifmark/core/fasta"
	"motifmark/core/feature"
	"motifmark/core/layout"
	"motifmark/core/motif"
	"motifmark/core/record"
	"motifmark/internal/gffout"
	"motifmark/internal/render"
)

// ErrOutput marks failures writing images or sidecars, as opposed to bad input.
var ErrOutput = errors.New("write output")

// Config controls a batch of passes.
type Config struct {
	Threads int    // concurrent passes (>=1)
	OutDir  string // "" writes next to each input
	GFF     bool   // also write <base>.gff
	Layout  layout.Config
}

// Pass describes one image. Prepare fills it in memory; Commit writes it.
type Pass struct {
	Input     string
	Output    string
	GFFOutput string
	Records   int
	Hits      int
	ExonBases int
	Oversized []layout.Oversized

	png []byte
	gff []byte
}

// Run prepares every file in files and returns the passes in input order.
// The first failure cancels passes that have not started yet. Nothing is
// written until every pass has been prepared, so a bad input anywhere in
// the batch leaves no images behind.
func Run(ctx context.Context, cfg Config, files []string, rules []*motif.Rule) ([]Pass, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	out := make([]Pass, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Threads)
	for i, fn := range files {
		i, fn := i, fn
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := Prepare(gctx, cfg, fn, rules)
			if err != nil {
				return err
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if err := out[i].Commit(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// RenderFile prepares and commits a single pass.
func RenderFile(ctx context.Context, cfg Config, path string, rules []*motif.Rule) (Pass, error) {
	p, err := Prepare(ctx, cfg, path, rules)
	if err != nil {
		return p, err
	}
	return p, p.Commit()
}

// Prepare reads, scans, lays out and encodes one file without touching the
// output directory.
func Prepare(ctx context.Context, cfg Config, path string, rules []*motif.Rule) (Pass, error) {
	pass := Pass{Input: path, Output: OutputPath(path, cfg.OutDir, ".png")}

	fas, err := fasta.ReadFile(ctx, path)
	if err != nil {
		return pass, err
	}

	specs := motif.Specs(rules)
	recs := make([]*record.Record, len(fas))
	occs := make([]map[string][]int, len(fas))
	inputs := make([]layout.Input, len(fas))
	for i, fa := range fas {
		recs[i] = record.New(fa.ID, fa.Seq)
		occs[i] = recs[i].Scan(rules)
		for _, pos := range occs[i] {
			pass.Hits += len(pos)
		}
		pass.ExonBases += feature.Covered(recs[i].Exons)
		inputs[i] = layout.Input{
			Title:       recs[i].Title(),
			Length:      recs[i].Len(),
			Exons:       recs[i].Exons,
			Occurrences: occs[i],
		}
	}
	pass.Records = len(recs)

	pal := layout.NewPalette(specs)
	scene, warns := layout.Build(cfg.Layout, pal, inputs)
	pass.Oversized = warns

	if pass.png, err = render.Encode(scene); err != nil {
		return pass, fmt.Errorf("%w: %s: %w", ErrOutput, pass.Output, err)
	}

	if cfg.GFF {
		pass.GFFOutput = OutputPath(path, cfg.OutDir, ".gff")
		var buf bytes.Buffer
		if err := gffout.Write(&buf, recs, occs, pal); err != nil {
			return pass, fmt.Errorf("%w: %w", ErrOutput, err)
		}
		pass.gff = buf.Bytes()
	}
	return pass, nil
}

// Commit writes the prepared image and, if requested, the GFF sidecar.
func (p *Pass) Commit() error {
	if err := os.WriteFile(p.Output, p.png, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	if p.GFFOutput != "" {
		if err := os.WriteFile(p.GFFOutput, p.gff, 0o644); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
	}
	return nil
}

// OutputPath names the output after the input's base name: a trailing .gz
// and then one FASTA extension are dropped and ext appended. stdin ("-")
// becomes "stdin". With outDir == "" the file lands next to the input.
func OutputPath(input, outDir, ext string) string {
	dir, base := filepath.Split(input)
	if input == "-" {
		dir, base = "", "stdin"
	}
	base = strings.TrimSuffix(base, ".gz")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if outDir != "" {
		dir = outDir
	}
	return filepath.Join(dir, base+ext)
}
