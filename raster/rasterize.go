// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster turns a glyph outline into an 8-bit grayscale alpha
// mask: quadratic Béziers are flattened to line edges by adaptive De
// Casteljau subdivision, then an active-edge scanline sweep
// accumulates exact, trapezoid-decomposed signed coverage per pixel
// row.
package raster

import (
	"github.com/gogpu/minttf"
	"github.com/gogpu/minttf/outline"
)

// Rasterize renders an outline (in font units) to a GraySurface at the
// given scale (surface units per font unit). Rasterize has no failure
// modes: an empty outline yields a surface of header-derived
// dimensions, entirely background, and any other outline is rasterized
// as given.
func Rasterize(o outline.GlyphOutline, scale float32, opts ...RasterOption) GraySurface {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	width, height := surfaceDims(o.BBox, float64(scale))
	if o.IsEmpty() || width == 0 || height == 0 {
		pix := make([]byte, width*height)
		for i := range pix {
			pix[i] = 255
		}
		return GraySurface{Pix: pix, Width: width, Height: height}
	}

	tr := newTransform(o.BBox, float64(scale))
	thresholdSq := cfg.flatnessPx * cfg.flatnessPx

	var edges edgeList
	for _, seg := range o.Segments {
		switch s := seg.(type) {
		case outline.LineSegment:
			edges.add(tr.apply(s.Start), tr.apply(s.End))
		case outline.QuadSegment:
			p0 := tr.apply(s.Start)
			p1 := tr.apply(s.Control)
			p2 := tr.apply(s.End)
			flattenQuad(p0, p1, p2, thresholdSq, edges.add)
		}
	}
	edges.sortByUpperY()

	pix := sweep(edges.edges, width, height)
	return GraySurface{Pix: pix, Width: width, Height: height}
}

// RasterizeGlyph resolves codepoint to an outline via view, derives
// scale from the font's vertical metrics so the glyph stands heightPx
// surface pixels tall (scale = heightPx / (ascent - descent)), and
// rasterizes it.
func RasterizeGlyph(view *minttf.FontView, codepoint rune, heightPx int32) (GraySurface, error) {
	o, err := view.OutlineFor(codepoint)
	if err != nil {
		return GraySurface{}, err
	}

	emHeight := int32(view.Ascent()) - int32(view.Descent())
	var scale float32
	if emHeight != 0 {
		scale = float32(heightPx) / float32(emHeight)
	}

	return Rasterize(o, scale), nil
}
