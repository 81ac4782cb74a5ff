// Package render rasterizes a layout.Scene to PNG.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"motifmark/core/layout"
)

// Image draws s onto a white canvas of s.Width x s.Height. Geometry outside
// the canvas is clipped.
func Image(s layout.Scene) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.Width, s.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Src: image.NewUniform(layout.Black), Face: basicfont.Face7x13}
	for _, tr := range s.Tracks {
		text(d, tr.Title)
		fill(img, tr.Backbone)
		for _, r := range tr.Exons {
			fill(img, r)
		}
		for _, m := range tr.Motifs {
			fill(img, m.Rect)
		}
	}
	for _, e := range s.Legend {
		fill(img, e.Swatch)
		outline(img, e.Swatch, layout.Black)
		text(d, e.Label)
	}
	return img
}

// PNG encodes the rendered scene to w.
func PNG(w io.Writer, s layout.Scene) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, Image(s))
}

// Encode returns the complete PNG for s. Callers write the bytes once every
// pass of a run has succeeded.
func Encode(s layout.Scene) ([]byte, error) {
	var buf bytes.Buffer
	if err := PNG(&buf, s); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func fill(dst draw.Image, r layout.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	rect := image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H).Intersect(dst.Bounds())
	draw.Draw(dst, rect, image.NewUniform(r.Fill), image.Point{}, draw.Over)
}

func outline(dst draw.Image, r layout.Rect, c color.Color) {
	for _, e := range []layout.Rect{
		{X: r.X, Y: r.Y, W: r.W, H: 1},
		{X: r.X, Y: r.Y + r.H - 1, W: r.W, H: 1},
		{X: r.X, Y: r.Y, W: 1, H: r.H},
		{X: r.X + r.W - 1, Y: r.Y, W: 1, H: r.H},
	} {
		rect := image.Rect(e.X, e.Y, e.X+e.W, e.Y+e.H).Intersect(dst.Bounds())
		draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Src)
	}
}

func text(d *font.Drawer, l layout.Label) {
	if l.Text == "" {
		return
	}
	d.Dot = fixed.P(l.X, l.Y)
	d.DrawString(l.Text)
}
