// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// scanlineAccumulator holds one row's worth of signed coverage:
// partial[c] is the area this row's edges contribute strictly inside
// column c; prefix[c] is the height that should be treated as "fully
// covered" for every column >= c, accumulated as a running sum during
// emit. Both are reused across rows by zeroing after each emit.
type scanlineAccumulator struct {
	partial []float64
	prefix  []float64
}

func newScanlineAccumulator(width int) *scanlineAccumulator {
	return &scanlineAccumulator{
		partial: make([]float64, width+1),
		prefix:  make([]float64, width+1),
	}
}

func (s *scanlineAccumulator) addPartial(col int, area float64) {
	if col < 0 || col >= len(s.partial) {
		return
	}
	s.partial[col] += area
}

func (s *scanlineAccumulator) addPrefix(col int, height float64) {
	if col < 0 || col >= len(s.prefix) {
		return
	}
	s.prefix[col] += height
}

func (s *scanlineAccumulator) zero() {
	for i := range s.partial {
		s.partial[i] = 0
		s.prefix[i] = 0
	}
}

// emitRow walks the accumulator left to right, maintaining a running
// prefix sum, and writes one inverted (0 = ink, 255 = background) row
// of width bytes into row.
func (s *scanlineAccumulator) emitRow(row []byte, width int) {
	c := 0.0
	for col := 0; col < width; col++ {
		c += s.prefix[col]
		v := (c + s.partial[col]) * 255
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		row[col] = byte(255 - v)
	}
}

// sweep runs the active-edge scanline algorithm over a sorted,
// non-horizontal edge list, producing width*height packed grayscale
// bytes (0 = ink, 255 = background).
func sweep(edges []edge, width, height int) []byte {
	pix := make([]byte, width*height)
	if width == 0 || height == 0 {
		return pix
	}

	acc := newScanlineAccumulator(width)
	var active []activeEdge
	next := 0

	for row := 0; row < height; row++ {
		top := float64(row)
		bot := float64(row + 1)

		// Prune: drop edges that ended at or above the top of this strip.
		kept := active[:0]
		for _, a := range active {
			if a.lowerY > top {
				kept = append(kept, a)
			}
		}
		active = kept

		// Admit: activate every sorted edge whose upper.Y falls
		// within this strip.
		for next < len(edges) && edges[next].upper.Y < bot {
			active = append(active, newActiveEdge(edges[next]))
			next++
		}

		for _, a := range active {
			highY := a.upperY
			if top > highY {
				highY = top
			}
			lowY := a.lowerY
			if bot < lowY {
				lowY = bot
			}
			h := lowY - highY
			if h <= 0 {
				continue
			}

			highX := a.xAt(highY)
			lowX := a.xAt(lowY)
			sign := a.sign
			if highX > lowX {
				// Only the column bounds swap; the winding sign is a
				// property of the edge's original direction and must
				// not flip with it.
				highX, lowX = lowX, highX
			}

			startPx := int(highX)
			if startPx < 0 {
				startPx = 0
			}
			endPx := ceilNonNegative(lowX)

			if endPx-startPx <= 1 {
				widthLow := float64(startPx+1) - lowX
				widthHigh := float64(startPx+1) - highX
				acc.addPartial(startPx, sign*h*(widthLow+widthHigh)/2)
				acc.addPrefix(startPx+1, sign*h)
				continue
			}

			// Multiple columns: the per-column trapezoid formula
			// below reduces to the single-column case above when
			// endPx-startPx == 1, so it subsumes the otherwise separate
			// leading-triangle / interior-trapezoid / mixed-final-
			// column decomposition into one loop.
			dydx := h / (lowX - highX)
			for col := startPx; col < endPx; col++ {
				xIn := highX
				if float64(col) > xIn {
					xIn = float64(col)
				}
				xOut := lowX
				if float64(col+1) < xOut {
					xOut = float64(col + 1)
				}
				subH := dydx * (xOut - xIn)
				widthIn := float64(col+1) - xIn
				widthOut := float64(col+1) - xOut
				acc.addPartial(col, sign*subH*(widthIn+widthOut)/2)
				acc.addPrefix(col+1, sign*subH)
			}
		}

		acc.emitRow(pix[row*width:(row+1)*width], width)
		acc.zero()
	}

	return pix
}
