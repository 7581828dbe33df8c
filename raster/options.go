// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// defaultFlatnessPx is the flattening tolerance used when no
// RasterOption overrides it: a curve is subdivided until its flattened
// chord deviates by at most about one surface pixel.
const defaultFlatnessPx = 1.0

// config holds the resolved settings for one Rasterize call.
type config struct {
	flatnessPx float64
}

func defaultConfig() config {
	return config{flatnessPx: defaultFlatnessPx}
}

// RasterOption customizes a single Rasterize call. The only knob
// exposed is the flattening tolerance; everything else in the
// pipeline is derived from the outline and the requested scale.
type RasterOption func(*config)

// WithFlatnessPx sets the maximum tolerated flattening error, in
// surface pixels, before a quadratic Bézier is subdivided further.
// Smaller values produce smoother curves at more edges and CPU cost;
// the default is one pixel.
func WithFlatnessPx(px float32) RasterOption {
	return func(c *config) {
		c.flatnessPx = float64(px)
	}
}
