// Package outline holds the closed glyph-outline data model shared by
// the font container parser and the rasterizer: font-unit points, the
// two-case outline-segment sum type, and the glyph outline itself.
package outline

// Point is a coordinate in font design units.
type Point struct {
	X, Y int16
}

// Mid returns the midpoint of a and b, computed in 32-bit signed
// arithmetic before narrowing back to 16-bit so the intermediate sum
// cannot overflow an int16.
func Mid(a, b Point) Point {
	return Point{
		X: int16((int32(a.X) + int32(b.X)) / 2),
		Y: int16((int32(a.Y) + int32(b.Y)) / 2),
	}
}

// Rect is an axis-aligned bounding box, stored as its min/max corners
// (the glyph header's bounding-box diagonal).
type Rect struct {
	Min, Max Point
}

// Segment is a single piece of a glyph contour: either a QuadSegment
// or a LineSegment. The set is closed — isSegment is unexported so no
// type outside this package can implement Segment.
type Segment interface {
	isSegment()
}

// QuadSegment is a quadratic Bézier curve from Start to End through
// Control, all in font units.
type QuadSegment struct {
	Start, Control, End Point
}

func (QuadSegment) isSegment() {}

// LineSegment is a straight line from Start to End, in font units.
type LineSegment struct {
	Start, End Point
}

func (LineSegment) isSegment() {}

// GlyphOutline is an ordered sequence of outline segments — one
// logical closed path per contour, contours concatenated without an
// explicit delimiter, since each contour's segments close on
// themselves by construction — plus the bounding-box diagonal reported
// by the glyph header.
type GlyphOutline struct {
	Segments []Segment
	BBox     Rect
}

// IsEmpty reports whether the outline has no segments, i.e. a glyph
// with no contours (space, or the loca-sentinel empty-glyph case).
func (o GlyphOutline) IsEmpty() bool {
	return len(o.Segments) == 0
}
