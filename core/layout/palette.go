// core/layout/palette.go
package layout

import (
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// motifAlpha keeps overlapping motif blocks distinguishable.
const motifAlpha = 0xC0

// Palette assigns one hue per distinct motif. Build it once per rendering
// pass, before any track is laid out, and treat it as read-only.
type Palette struct {
	motifs []string
	colors map[string]colorful.Color
}

// NewPalette sorts and dedupes motifs and spaces len(distinct) hues evenly
// around the HCL wheel, so equal motif sets always get equal colors.
func NewPalette(motifs []string) *Palette {
	seen := make(map[string]bool, len(motifs))
	uniq := make([]string, 0, len(motifs))
	for _, m := range motifs {
		if !seen[m] {
			seen[m] = true
			uniq = append(uniq, m)
		}
	}
	sort.Strings(uniq)

	p := &Palette{motifs: uniq, colors: make(map[string]colorful.Color, len(uniq))}
	n := float64(len(uniq))
	for i, m := range uniq {
		h := 20 + 360*float64(i)/n
		p.colors[m] = colorful.Hcl(h, 0.75, 0.6).Clamped()
	}
	return p
}

// Motifs returns the enumeration order used for color assignment.
func (p *Palette) Motifs() []string { return append([]string(nil), p.motifs...) }

func (p *Palette) Len() int { return len(p.motifs) }

// Color returns the opaque color for m; ok is false for unknown motifs.
func (p *Palette) Color(m string) (color.NRGBA, bool) {
	c, ok := p.colors[m]
	if !ok {
		return color.NRGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, true
}

// Hex is the #rrggbb form of m's color, or "" for unknown motifs.
func (p *Palette) Hex(m string) string {
	c, ok := p.colors[m]
	if !ok {
		return ""
	}
	return c.Hex()
}

func (p *Palette) fill(m string) color.NRGBA {
	c, _ := p.Color(m)
	c.A = motifAlpha
	return c
}
