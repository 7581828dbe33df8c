package minttf

import "testing"

func TestParseHhea(t *testing.T) {
	data := buildMinimalFont(buildLoca(0), nil, buildCmapTableFormat4(0x41, 0x5A, -0x40), 1, false)
	view, err := Load(data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := view.LineGap(); got != 0 {
		t.Errorf("LineGap() = %d, want 0", got)
	}
	if got := view.AdvanceWidthMax(); got != 1000 {
		t.Errorf("AdvanceWidthMax() = %d, want 1000", got)
	}
}

func TestParseMaxp_BoundsLocaLookups(t *testing.T) {
	data := buildMinimalFont(buildLoca(0), nil, buildCmapTableFormat4(0x41, 0x5A, -0x40), 1, false)
	view, err := Load(data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// Glyph index 1 is out of range for a one-glyph font.
	_, _, ok, err := view.glyphOffsetRange(1)
	if err != nil {
		t.Fatalf("glyphOffsetRange(1) error = %v", err)
	}
	if ok {
		t.Errorf("glyphOffsetRange(1) ok = true, want false (out of range)")
	}
}

func TestLongLoca(t *testing.T) {
	// A font with more than one glyph, using the 32-bit loca format.
	pts := []struct{ x, y int16 }{{0, 0}, {1000, 0}, {500, 1000}}
	glyf0 := buildSimpleGlyph(0, 0, 1000, 1000, pts, []bool{true, true, true})
	loca := cat(be32(0), be32(uint32(len(glyf0))), be32(uint32(len(glyf0))))

	data := buildMinimalFont(loca, glyf0, buildCmapTableFormat4(0x41, 0x5A, -0x40), 2, true)
	view, err := Load(data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	o, err := view.outlineForGlyphIndex(0)
	if err != nil {
		t.Fatalf("outlineForGlyphIndex(0) error = %v", err)
	}
	if len(o.Segments) != 3 {
		t.Fatalf("len(Segments) = %d, want 3", len(o.Segments))
	}

	// Glyph 1 has an empty loca range (both entries equal len(glyf0)).
	o1, err := view.outlineForGlyphIndex(1)
	if err != nil {
		t.Fatalf("outlineForGlyphIndex(1) error = %v", err)
	}
	if !o1.IsEmpty() {
		t.Errorf("outlineForGlyphIndex(1) = %+v, want empty", o1)
	}
}
