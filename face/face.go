// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package face adapts a *minttf.FontView and the raster package onto
// golang.org/x/image/font.Face, so anything already built against the
// wider Go font ecosystem (golang.org/x/image/draw, basicfont-style
// consumers) can render glyphs from this engine without knowing the
// difference.
package face

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/minttf"
	"github.com/gogpu/minttf/raster"
)

// Face implements golang.org/x/image/font.Face over a FontView at a
// fixed pixel size.
type Face struct {
	view   *minttf.FontView
	scale  float32
	height fixed.Int26_6
	ascent fixed.Int26_6
}

// New returns a Face that renders view's glyphs at sizePx pixels tall,
// where "tall" means ascent-descent in the font's hhea table scaled to
// sizePx — the same convention RasterizeGlyph uses.
func New(view *minttf.FontView, sizePx float64) *Face {
	emHeight := float64(int32(view.Ascent()) - int32(view.Descent()))
	var scale float32
	if emHeight != 0 {
		scale = float32(sizePx / emHeight)
	}
	return &Face{
		view:   view,
		scale:  scale,
		height: fixed.Int26_6(sizePx * 64),
		ascent: fixed.Int26_6(float64(view.Ascent()) * float64(scale) * 64),
	}
}

// Close is a no-op: a Face does not own any dynamically allocated font
// bytes to release, since it only ever borrows view's underlying data.
func (f *Face) Close() error { return nil }

// Kern always returns zero: kerning lookups are out of scope for this
// engine.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// Metrics reports the face's vertical metrics in 26.6 fixed point.
func (f *Face) Metrics() font.Metrics {
	descent := fixed.Int26_6(-float64(f.view.Descent()) * float64(f.scale) * 64)
	return font.Metrics{
		Height:  f.height,
		Ascent:  f.ascent,
		Descent: descent,
	}
}

// GlyphAdvance reports r's advance width, in 26.6 fixed point, scaled
// the same way Glyph scales outlines. This engine does not parse
// per-glyph hmtx entries beyond the header-wide advanceWidthMax, so
// every glyph reports that shared bound rather than its own width.
func (f *Face) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	if f.view.CharIndex(r) == 0 {
		return 0, false
	}
	adv := float64(f.view.AdvanceWidthMax()) * float64(f.scale)
	return fixed.Int26_6(adv * 64), true
}

// GlyphBounds reports r's bounding box and advance, in 26.6 fixed
// point, derived from the rasterized surface dimensions.
func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	if f.view.CharIndex(r) == 0 {
		return fixed.Rectangle26_6{}, 0, false
	}
	o, err := f.view.OutlineFor(r)
	if err != nil {
		return fixed.Rectangle26_6{}, 0, false
	}
	surf := raster.Rasterize(o, f.scale)
	adv, _ := f.GlyphAdvance(r)
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: 0, Y: 0},
		Max: fixed.Point26_6{X: fixed.Int26_6(surf.Width * 64), Y: fixed.Int26_6(surf.Height * 64)},
	}, adv, true
}

// Glyph rasterizes r and returns it as an alpha mask positioned so its
// bottom-left corner lands at dot, rounded to whole pixels: this engine does not
// support sub-pixel positioning.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	if f.view.CharIndex(r) == 0 {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	o, err := f.view.OutlineFor(r)
	if err != nil {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	surf := raster.Rasterize(o, f.scale)

	alpha := image.NewAlpha(image.Rect(0, 0, surf.Width, surf.Height))
	for i, v := range surf.Pix {
		alpha.Pix[i] = 255 - v
	}

	x0 := dot.X.Round()
	y0 := dot.Y.Round() - surf.Height
	dr = image.Rect(x0, y0, x0+surf.Width, y0+surf.Height)

	adv, _ := f.GlyphAdvance(r)
	return dr, alpha, image.Point{}, adv, true
}

var _ font.Face = (*Face)(nil)
