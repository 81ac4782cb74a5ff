// Package layout maps records onto drawing geometry: one fixed-pitch track
// per record, one pixel per nucleotide, and a legend column to the right of
// the canvas. It knows nothing about rasterization.
package layout

import (
	"fmt"
	"image/color"

	"motifmark/core/feature"
)

var (
	Black     = color.NRGBA{A: 0xFF}
	ExonColor = color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}
)

// Config holds the fixed geometry of one image. Units are pixels; a
// nucleotide is one pixel wide.
type Config struct {
	CanvasWidth    int // track area width, legend excluded
	LeftMargin     int
	TopOffset      int
	Pitch          int // vertical space per track
	BackboneHeight int
	ExonHeight     int
	MotifHeight    int
	LegendWidth    int
	LegendPitch    int
	SwatchSize     int
}

func DefaultConfig() Config {
	return Config{
		CanvasWidth:    1000,
		LeftMargin:     25,
		TopOffset:      50,
		Pitch:          150,
		BackboneHeight: 2,
		ExonHeight:     20,
		MotifHeight:    30,
		LegendWidth:    220,
		LegendPitch:    25,
		SwatchSize:     15,
	}
}

type Rect struct {
	X, Y, W, H int
	Fill       color.NRGBA
}

// Label is text whose baseline starts at (X, Y).
type Label struct {
	X, Y int
	Text string
}

type MotifBlock struct {
	Motif string
	Pos   int // 1-based occurrence
	Rect
}

// Track is the frame of one record.
type Track struct {
	Top       int
	Title     Label
	Backbone  Rect
	Exons     []Rect
	Motifs    []MotifBlock
	Oversized bool
}

type LegendEntry struct {
	Motif  string
	Swatch Rect
	Label  Label
}

type Scene struct {
	Width, Height int
	Tracks        []Track
	Legend        []LegendEntry
}

// Input is what the engine needs from a record.
type Input struct {
	Title       string
	Length      int
	Exons       []feature.Feature
	Occurrences map[string][]int // motif -> 1-based starts
}

// Oversized reports a track longer than the canvas. It is a warning: the
// track is still laid out and will be clipped when drawn.
type Oversized struct {
	Index  int
	Title  string
	Length int
	Limit  int
}

func (o Oversized) Error() string {
	return fmt.Sprintf("sequence %q (%d nt) exceeds canvas width (%d nt fit); track will be clipped",
		o.Title, o.Length, o.Limit)
}

// Build lays out tracks in input order. Motif blocks are colored from pal;
// occurrences of motifs pal does not know are skipped.
func Build(cfg Config, pal *Palette, in []Input) (Scene, []Oversized) {
	var (
		s     Scene
		warns []Oversized
	)
	limit := cfg.CanvasWidth - cfg.LeftMargin
	for i, t := range in {
		tr := buildTrack(cfg, pal, cfg.TopOffset+i*cfg.Pitch, t)
		if t.Length > limit {
			tr.Oversized = true
			warns = append(warns, Oversized{Index: i, Title: t.Title, Length: t.Length, Limit: limit})
		}
		s.Tracks = append(s.Tracks, tr)
	}

	legendX := cfg.CanvasWidth + 10
	for j, m := range pal.Motifs() {
		y := cfg.TopOffset + j*cfg.LegendPitch
		s.Legend = append(s.Legend, LegendEntry{
			Motif:  m,
			Swatch: Rect{X: legendX, Y: y, W: cfg.SwatchSize, H: cfg.SwatchSize, Fill: pal.fill(m)},
			Label:  Label{X: legendX + cfg.SwatchSize + 8, Y: y + cfg.SwatchSize - 3, Text: m},
		})
	}

	s.Width = cfg.CanvasWidth + cfg.LegendWidth
	s.Height = cfg.TopOffset + len(in)*cfg.Pitch
	if lh := cfg.TopOffset + (len(s.Legend)+1)*cfg.LegendPitch; lh > s.Height {
		s.Height = lh
	}
	return s, warns
}

func buildTrack(cfg Config, pal *Palette, top int, in Input) Track {
	mid := top + cfg.Pitch/2
	tr := Track{
		Top:   top,
		Title: Label{X: cfg.LeftMargin, Y: top + 15, Text: in.Title},
		Backbone: Rect{
			X: cfg.LeftMargin + 1, Y: mid - cfg.BackboneHeight/2,
			W: in.Length, H: cfg.BackboneHeight, Fill: Black,
		},
	}
	for _, f := range in.Exons {
		tr.Exons = append(tr.Exons, Rect{
			X: f.Start + cfg.LeftMargin, Y: mid - cfg.ExonHeight/2,
			W: f.Length, H: cfg.ExonHeight, Fill: ExonColor,
		})
	}
	for _, m := range pal.Motifs() {
		positions, ok := in.Occurrences[m]
		if !ok {
			continue
		}
		for _, p := range positions {
			tr.Motifs = append(tr.Motifs, MotifBlock{
				Motif: m,
				Pos:   p,
				Rect: Rect{
					X: p + cfg.LeftMargin, Y: mid - cfg.MotifHeight/2,
					W: len(m), H: cfg.MotifHeight, Fill: pal.fill(m),
				},
			})
		}
	}
	return tr
}
