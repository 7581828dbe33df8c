// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "seehuhn.de/go/geom/vec"

// flattenStackCapacity is the fixed point capacity of the De Casteljau
// subdivision stack: 3 points per stack entry, 16 entries deep,
// supporting 15 levels of subdivision before saturating. It lives on
// the call stack, never the heap.
const flattenStackCapacity = 3 * 16

type quadTri struct{ p0, p1, p2 vec.Vec2 }

// flattenQuad reduces a quadratic Bézier (already in surface space) to
// a sequence of line edges, handed one at a time to emit. Subdivision
// is driven by an approximate-arc-length test performed entirely in
// squared distance (no square root): a curve is split when the sum of
// its two chord lengths squared exceeds thresholdSq and the stack has
// room for both halves; otherwise it is emitted at its current
// subdivision depth, saturation included.
func flattenQuad(p0, p1, p2 vec.Vec2, thresholdSq float64, emit func(a, b vec.Vec2)) {
	var stack [flattenStackCapacity / 3]quadTri
	sp := 0
	stack[sp] = quadTri{p0, p1, p2}
	sp++

	for sp > 0 {
		sp--
		t := stack[sp]

		d1 := sqLen(t.p1.X-t.p0.X, t.p1.Y-t.p0.Y)
		d2 := sqLen(t.p2.X-t.p1.X, t.p2.Y-t.p1.Y)

		if d1+d2 > thresholdSq && sp+2 <= len(stack) {
			m01 := midVec(t.p0, t.p1)
			m12 := midVec(t.p1, t.p2)
			m012 := midVec(m01, m12)
			stack[sp] = quadTri{m012, m12, t.p2}
			sp++
			stack[sp] = quadTri{t.p0, m01, m012}
			sp++
			continue
		}

		emit(t.p0, t.p1)
		emit(t.p1, t.p2)
	}
}

func sqLen(dx, dy float64) float64 { return dx*dx + dy*dy }

func midVec(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
