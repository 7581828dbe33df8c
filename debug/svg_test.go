package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gogpu/minttf/outline"
)

func TestWriteSVG_LineSegment(t *testing.T) {
	o := outline.GlyphOutline{
		Segments: []outline.Segment{
			outline.LineSegment{Start: outline.Point{X: 0, Y: 0}, End: outline.Point{X: 100, Y: 0}},
		},
		BBox: outline.Rect{Min: outline.Point{X: 0, Y: 0}, Max: outline.Point{X: 100, Y: 100}},
	}
	var buf bytes.Buffer
	if err := WriteSVG(&buf, o); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Errorf("WriteSVG() output missing svg root element: %q", out)
	}
	if !strings.Contains(out, "M 0 0 L 100 0") {
		t.Errorf("WriteSVG() = %q, want a line path command", out)
	}
}

func TestWriteSVG_QuadSegment_DegreeRaise(t *testing.T) {
	o := outline.GlyphOutline{
		Segments: []outline.Segment{
			outline.QuadSegment{
				Start:   outline.Point{X: 0, Y: 0},
				Control: outline.Point{X: 50, Y: 100},
				End:     outline.Point{X: 100, Y: 0},
			},
		},
		BBox: outline.Rect{Min: outline.Point{X: 0, Y: 0}, Max: outline.Point{X: 100, Y: 100}},
	}
	var buf bytes.Buffer
	if err := WriteSVG(&buf, o); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "M 0 0 C") {
		t.Fatalf("WriteSVG() = %q, want a cubic path command starting at the segment start", out)
	}
	// cp1 = start + 2/3*(control-start) = (33.33.., 66.66..)
	if !strings.Contains(out, "33.3") || !strings.Contains(out, "66.6") {
		t.Errorf("WriteSVG() = %q, want the degree-raised control point coordinates", out)
	}
}
