// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "seehuhn.de/go/geom/vec"

// horizontalEpsilon is the Y-extent below which an edge is treated as
// horizontal and dropped: horizontal edges never intersect a scanline
// and contribute no coverage of their own (their contribution is
// folded into the trapezoids of the edges that meet them).
const horizontalEpsilon = 1.0 / 8192.0

// edge is a single non-horizontal segment of a flattened contour,
// normalized so upper.Y <= lower.Y. sign is +1 if the original
// direction ran downward (upper -> lower as stored), -1 if it ran
// upward and had to be flipped to normalize; the scanline sweep uses
// sign to accumulate winding direction rather than edge order.
type edge struct {
	upper, lower vec.Vec2
	sign         float64
}

// newEdge builds an edge from two flattened points, normalizing their
// order by Y. ok is false for a horizontal edge, which the caller
// should simply not add to its edge list.
func newEdge(a, b vec.Vec2) (e edge, ok bool) {
	if absF(a.Y-b.Y) < horizontalEpsilon {
		return edge{}, false
	}
	if a.Y < b.Y {
		return edge{upper: a, lower: b, sign: 1}, true
	}
	return edge{upper: b, lower: a, sign: -1}, true
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// xAtY returns the edge's X coordinate at the given Y, which must lie
// within [upper.Y, lower.Y].
func (e edge) xAtY(y float64) float64 {
	t := (y - e.upper.Y) / (e.lower.Y - e.upper.Y)
	return e.upper.X + t*(e.lower.X-e.upper.X)
}

// activeEdge is the scanline sweep's working record for an edge whose
// Y-extent intersects the current or a future scanline. x0/dxdy/upperY
// let xAt recompute the edge's X at any Y directly from the line
// equation, rather than carrying an incrementally-advanced position
// forward row by row: direct recomputation can't accumulate floating
// drift across many scanlines.
type activeEdge struct {
	x0, dxdy       float64
	upperY, lowerY float64
	sign           float64
}

func newActiveEdge(e edge) activeEdge {
	return activeEdge{
		x0:     e.upper.X,
		dxdy:   (e.lower.X - e.upper.X) / (e.lower.Y - e.upper.Y),
		upperY: e.upper.Y,
		lowerY: e.lower.Y,
		sign:   e.sign,
	}
}

// xAt returns the edge's X coordinate at y, which must lie within
// [upperY, lowerY].
func (a activeEdge) xAt(y float64) float64 {
	return a.x0 + a.dxdy*(y-a.upperY)
}

// edgeList accumulates the non-horizontal edges of a flattened outline
// in the order they were flattened, then sorts them once by upper.Y
// for the sweep's prune/admit pass.
type edgeList struct {
	edges []edge
}

// add appends the edge a->b, silently dropping it if horizontal.
func (el *edgeList) add(a, b vec.Vec2) {
	e, ok := newEdge(a, b)
	if !ok {
		return
	}
	el.edges = append(el.edges, e)
}

// sortByUpperY orders edges ascending by upper.Y using insertion sort:
// a flattened glyph has at most a few hundred edges, and the sequence
// is usually close to sorted already since contours are flattened in
// a single top-to-bottom-ish pass.
func (el *edgeList) sortByUpperY() {
	for i := 1; i < len(el.edges); i++ {
		j := i
		for j > 0 && el.edges[j].upper.Y < el.edges[j-1].upper.Y {
			el.edges[j], el.edges[j-1] = el.edges[j-1], el.edges[j]
			j--
		}
	}
}
