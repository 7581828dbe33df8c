package minttf

import (
	"github.com/gogpu/minttf/outline"
)

// locaEntry reads the i-th loca table entry, returning the byte offset
// relative to the start of the glyf table (not yet added to
// v.glyf.Offset).
func (v *FontView) locaEntry(i uint16) (uint32, error) {
	base := int(v.loca.Offset)
	if v.longLoca {
		val, err := v.r.U32(base + int(i)*4)
		if err != nil {
			return 0, wrapRead(err, "loca entry")
		}
		return val, nil
	}
	val, err := v.r.U16(base + int(i)*2)
	if err != nil {
		return 0, wrapRead(err, "loca entry")
	}
	return uint32(val) * 2, nil
}

// glyphOffsetRange resolves a glyph index to the [start, end) byte
// range of its glyf record, absolute within the font. ok is false
// when start == end: the loca sentinel for an empty glyph (no
// contours), which must be detected before dereferencing the glyph
// header since the glyf record itself is absent in that case.
func (v *FontView) glyphOffsetRange(glyphIndex uint32) (start, end uint32, ok bool, err error) {
	if glyphIndex+1 > uint32(v.numGlyphs) {
		return 0, 0, false, nil
	}
	locaStart, err := v.locaEntry(uint16(glyphIndex))
	if err != nil {
		return 0, 0, false, err
	}
	locaEnd, err := v.locaEntry(uint16(glyphIndex + 1))
	if err != nil {
		return 0, 0, false, err
	}
	if locaStart == locaEnd {
		return 0, 0, false, nil
	}
	return v.glyf.Offset + locaStart, v.glyf.Offset + locaEnd, true, nil
}

// OutlineFor resolves codepoint to a glyph index via the cmap table
// and decodes that glyph's contour outline. A missing glyph
// (CharIndex returns 0, the .notdef glyph — typically empty) yields a
// zero-value, empty GlyphOutline and a nil error: an absent mapping
// is a normal, not exceptional, outcome.
func (v *FontView) OutlineFor(codepoint rune) (outline.GlyphOutline, error) {
	glyphIndex := v.CharIndex(codepoint)
	return v.outlineForGlyphIndex(glyphIndex)
}

func (v *FontView) outlineForGlyphIndex(glyphIndex uint32) (outline.GlyphOutline, error) {
	start, end, ok, err := v.glyphOffsetRange(glyphIndex)
	if err != nil {
		return outline.GlyphOutline{}, err
	}
	if !ok {
		Logger().Warn("minttf: empty glyph", "glyphIndex", glyphIndex)
		return outline.GlyphOutline{}, nil
	}
	_ = end // record length currently unused beyond the emptiness check

	numberOfContours, err := v.r.I16(int(start) + 0)
	if err != nil {
		return outline.GlyphOutline{}, wrapRead(err, "glyf.numberOfContours")
	}
	xMin, err := v.r.I16(int(start) + 2)
	if err != nil {
		return outline.GlyphOutline{}, wrapRead(err, "glyf.xMin")
	}
	yMin, err := v.r.I16(int(start) + 4)
	if err != nil {
		return outline.GlyphOutline{}, wrapRead(err, "glyf.yMin")
	}
	xMax, err := v.r.I16(int(start) + 6)
	if err != nil {
		return outline.GlyphOutline{}, wrapRead(err, "glyf.xMax")
	}
	yMax, err := v.r.I16(int(start) + 8)
	if err != nil {
		return outline.GlyphOutline{}, wrapRead(err, "glyf.yMax")
	}
	bbox := outline.Rect{Min: outline.Point{X: xMin, Y: yMin}, Max: outline.Point{X: xMax, Y: yMax}}

	if numberOfContours < 0 {
		// Compound glyph: out of scope. Return an empty outline
		// rather than attempt to read the component records.
		Logger().Warn("minttf: compound glyph skipped", "glyphIndex", glyphIndex)
		return outline.GlyphOutline{BBox: bbox}, nil
	}

	return v.decodeSimpleGlyph(int(start)+10, int(numberOfContours), bbox)
}

// decodeSimpleGlyph decodes a simple (non-compound) glyf record
// starting at the endPtsOfContours array (glyf record header already
// consumed by the caller).
func (v *FontView) decodeSimpleGlyph(off int, numberOfContours int, bbox outline.Rect) (outline.GlyphOutline, error) {
	if numberOfContours == 0 {
		return outline.GlyphOutline{BBox: bbox}, nil
	}

	endPts := make([]uint16, numberOfContours)
	for i := range endPts {
		val, err := v.r.U16(off)
		if err != nil {
			return outline.GlyphOutline{}, wrapRead(err, "glyf.endPtsOfContours")
		}
		endPts[i] = val
		off += 2
	}

	instructionLength, err := v.r.U16(off)
	if err != nil {
		return outline.GlyphOutline{}, wrapRead(err, "glyf.instructionLength")
	}
	off += 2 + int(instructionLength)

	numPoints := int(endPts[len(endPts)-1]) + 1

	flags := make([]uint8, 0, numPoints)
	for len(flags) < numPoints {
		flag, err := v.r.U8(off)
		if err != nil {
			return outline.GlyphOutline{}, wrapRead(err, "glyf.flags")
		}
		off++
		flags = append(flags, flag)
		if flag&0x08 != 0 {
			repeat, err := v.r.U8(off)
			if err != nil {
				return outline.GlyphOutline{}, wrapRead(err, "glyf.flags repeat count")
			}
			off++
			for i := 0; i < int(repeat) && len(flags) < numPoints; i++ {
				flags = append(flags, flag)
			}
		}
	}

	points := make([]outline.Point, numPoints)

	x := int32(0)
	for i := 0; i < numPoints; i++ {
		flag := flags[i]
		var dx int32
		if flag&0x02 != 0 {
			v8, err := v.r.U8(off)
			if err != nil {
				return outline.GlyphOutline{}, wrapRead(err, "glyf.xCoordinates")
			}
			off++
			if flag&0x10 != 0 {
				dx = int32(v8)
			} else {
				dx = -int32(v8)
			}
		} else if flag&0x10 == 0 {
			d, err := v.r.I16(off)
			if err != nil {
				return outline.GlyphOutline{}, wrapRead(err, "glyf.xCoordinates")
			}
			off += 2
			dx = int32(d)
		}
		x += dx
		points[i].X = int16(x)
	}

	y := int32(0)
	for i := 0; i < numPoints; i++ {
		flag := flags[i]
		var dy int32
		if flag&0x04 != 0 {
			v8, err := v.r.U8(off)
			if err != nil {
				return outline.GlyphOutline{}, wrapRead(err, "glyf.yCoordinates")
			}
			off++
			if flag&0x20 != 0 {
				dy = int32(v8)
			} else {
				dy = -int32(v8)
			}
		} else if flag&0x20 == 0 {
			d, err := v.r.I16(off)
			if err != nil {
				return outline.GlyphOutline{}, wrapRead(err, "glyf.yCoordinates")
			}
			off += 2
			dy = int32(d)
		}
		y += dy
		points[i].Y = int16(y)
	}

	var segs []outline.Segment
	start := 0
	for _, e := range endPts {
		end := int(e)
		onCurve := make([]bool, end-start+1)
		for i := range onCurve {
			onCurve[i] = flags[start+i]&0x01 != 0
		}
		segs = append(segs, contourToSegments(points[start:end+1], onCurve)...)
		start = end + 1
	}

	return outline.GlyphOutline{Segments: segs, BBox: bbox}, nil
}

// contourToSegments converts one contour's vertices (with their
// on-curve flags) into an ordered, closed sequence of line and
// quadratic segments. Two consecutive off-curve points imply an
// on-curve point at their midpoint; two consecutive on-curve points
// are joined by a straight line. The walk always starts from a real
// or synthesized on-curve anchor so the result closes on itself
// (the last segment's end equals the first segment's start) without
// a final corrective segment in the common case.
func contourToSegments(pts []outline.Point, onCurve []bool) []outline.Segment {
	n := len(pts)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return nil
	}

	var start outline.Point
	var cursor int
	switch {
	case onCurve[0]:
		start = pts[0]
		cursor = 1
	case onCurve[n-1]:
		start = pts[n-1]
		cursor = 0
	default:
		start = outline.Mid(pts[n-1], pts[0])
		cursor = 0
	}

	segs := make([]outline.Segment, 0, n)
	cur := start
	consumed := 0
	for consumed < n {
		i := cursor % n
		p := pts[i]
		if onCurve[i] {
			segs = append(segs, outline.LineSegment{Start: cur, End: p})
			cur = p
			cursor++
			consumed++
			continue
		}

		// p is an off-curve control point.
		nextIdx := (i + 1) % n
		var end outline.Point
		nextConsumed := false
		if consumed+1 < n {
			if onCurve[nextIdx] {
				end = pts[nextIdx]
				nextConsumed = true
			} else {
				end = outline.Mid(p, pts[nextIdx])
			}
		} else {
			end = start
		}
		segs = append(segs, outline.QuadSegment{Start: cur, Control: p, End: end})
		cur = end
		cursor++
		consumed++
		if nextConsumed {
			cursor++
			consumed++
		}
	}

	if cur != start {
		segs = append(segs, outline.LineSegment{Start: cur, End: start})
	}
	return segs
}
