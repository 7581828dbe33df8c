// Package minttf provides a minimal TrueType font container parser and
// an analytic scanline rasterizer for simple glyph outlines.
//
// # Overview
//
// minttf loads a TrueType or OpenType-with-TrueType-outlines font from
// an in-memory byte slice, resolves Unicode code points to glyph
// indices via the cmap table, and decodes a glyph's contours into a
// sequence of line segments and quadratic Béziers. The raster and
// outline subpackages turn that outline into an 8-bit grayscale alpha
// mask.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/minttf"
//		"github.com/gogpu/minttf/raster"
//	)
//
//	view, err := minttf.Load(fontBytes)
//	if err != nil {
//		log.Fatal(err)
//	}
//	surf, err := raster.RasterizeGlyph(view, 'A', 64)
//
// # Scope
//
// This package handles simple (non-composite) TrueType glyph outlines
// and cmap formats 4, 6, and 12 only. CFF outlines, compound glyphs,
// kerning, hinting, text shaping, and color fonts are out of scope.
//
// # Architecture
//
// The library is organized into:
//   - Public API: FontView (this package) — container parsing, cmap lookup
//   - outline: the closed Segment/GlyphOutline data model shared by both sides
//   - raster: the scanline rasterizer and GraySurface output type
//   - face: a golang.org/x/image/font.Face adapter over FontView+raster
//   - debug: PGM/SVG dump helpers for manual inspection
//
// # Coordinate System
//
// Font-unit coordinates follow the TrueType convention: origin at the
// glyph's design origin, Y increasing upward. The rasterizer flips the
// vertical axis when producing a surface, whose origin is top-left as
// is conventional for packed image buffers.
package minttf
