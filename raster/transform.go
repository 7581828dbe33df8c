// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"seehuhn.de/go/geom/vec"

	"github.com/gogpu/minttf/outline"
)

// transform maps a font-unit point into surface space: translate the
// outline's bounding-box minimum to the origin, scale by the
// requested factor, then flip the vertical axis so that larger
// font-unit Y (which points away from the baseline, upward) maps to
// smaller surface Y (the surface's origin is top-left).
type transform struct {
	minX, minY float64
	scale      float64
	flipHeight float64
}

func newTransform(bbox outline.Rect, scale float64) transform {
	flipHeight := float64(int(bbox.Max.Y)-int(bbox.Min.Y)) * scale
	return transform{
		minX:       float64(bbox.Min.X),
		minY:       float64(bbox.Min.Y),
		scale:      scale,
		flipHeight: flipHeight,
	}
}

func (t transform) apply(p outline.Point) vec.Vec2 {
	x := (float64(p.X) - t.minX) * t.scale
	y := (float64(p.Y) - t.minY) * t.scale
	return vec.Vec2{X: x, Y: t.flipHeight - y}
}

// surfaceDims computes the output pixel dimensions: the ceiling of
// the bounding box's inclusive extent, scaled.
func surfaceDims(bbox outline.Rect, scale float64) (width, height int) {
	w := (float64(int(bbox.Max.X)-int(bbox.Min.X)) + 1) * scale
	h := (float64(int(bbox.Max.Y)-int(bbox.Min.Y)) + 1) * scale
	return ceilNonNegative(w), ceilNonNegative(h)
}

func ceilNonNegative(x float64) int {
	if x <= 0 {
		return 0
	}
	i := int(x)
	if float64(i) < x {
		i++
	}
	return i
}
