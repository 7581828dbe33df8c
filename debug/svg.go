package debug

import (
	"fmt"
	"io"

	"github.com/gogpu/minttf/outline"
)

// WriteSVG writes o as an SVG path document, one <path> per segment.
// Quadratic segments are degree-raised to the equivalent cubic Bézier
// for the SVG "C" command, using the standard construction cp1 =
// start + 2/3*(control-start), cp2 = end + 2/3*(control-end).
func WriteSVG(w io.Writer, o outline.GlyphOutline) error {
	width := int(o.BBox.Max.X) - int(o.BBox.Min.X)
	height := int(o.BBox.Max.Y) - int(o.BBox.Min.Y)

	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"%d %d %d %d\">\n",
		width, height, o.BBox.Min.X, o.BBox.Min.Y, o.BBox.Max.X, o.BBox.Max.Y); err != nil {
		return err
	}

	for _, seg := range o.Segments {
		switch s := seg.(type) {
		case outline.QuadSegment:
			cp1x := float64(s.Start.X) + 2.0/3.0*float64(s.Control.X-s.Start.X)
			cp1y := float64(s.Start.Y) + 2.0/3.0*float64(s.Control.Y-s.Start.Y)
			cp2x := float64(s.End.X) + 2.0/3.0*float64(s.Control.X-s.End.X)
			cp2y := float64(s.End.Y) + 2.0/3.0*float64(s.Control.Y-s.End.Y)
			if _, err := fmt.Fprintf(w,
				"<path stroke=\"#000000\" fill=\"none\" d=\"M %d %d C %g %g %g %g %d %d\"></path>\n",
				s.Start.X, s.Start.Y, cp1x, cp1y, cp2x, cp2y, s.End.X, s.End.Y); err != nil {
				return err
			}
		case outline.LineSegment:
			if _, err := fmt.Fprintf(w,
				"<path stroke=\"#000000\" fill=\"none\" d=\"M %d %d L %d %d\"></path>\n",
				s.Start.X, s.Start.Y, s.End.X, s.End.Y); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprint(w, "</svg>\n")
	return err
}
