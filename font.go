package minttf

import (
	"fmt"

	"github.com/gogpu/minttf/internal/sfntio"
)

// location is a table's byte offset and length within the font,
// absolute from the start of the font data.
type location struct {
	Offset, Length uint32
}

// present reports whether a location was actually found in the table
// directory (both offset and length are zero for a table directory
// miss, since a real table can never start at byte 0 of the file —
// that's always the offset-table version tag).
func (l location) present() bool { return l.Offset != 0 || l.Length != 0 }

// FontView is a zero-copy view over an immutable byte region holding a
// TrueType or OpenType-with-TrueType-outlines font. It borrows its
// backing slice — it never copies font bytes — and is valid only as
// long as the caller's slice stays alive.
//
// A FontView is read-only after Load returns: every query method may
// be called concurrently from multiple goroutines without additional
// coordination.
type FontView struct {
	r *sfntio.Reader

	tableCount uint16
	head       location
	loca       location
	hhea       location
	cmap       location
	maxp       location
	glyf       location
	hmtx       location
	kern       location
	name       location
	cff        location

	indexMapOffset int
	cmapFormat     uint16

	longLoca bool
	numGlyphs uint16

	unitsPerEm uint16
	bbox       struct{ xMin, yMin, xMax, yMax int16 }

	ascent, descent, lineGap   int16
	advanceWidthMax            uint16
	numberOfLongHorizontalMetrics uint16
}

// UnitsPerEm returns the font's internal coordinate unit count per em.
func (v *FontView) UnitsPerEm() uint16 { return v.unitsPerEm }

// Ascent returns the hhea ascent in font units.
func (v *FontView) Ascent() int16 { return v.ascent }

// Descent returns the hhea descent in font units (typically negative).
func (v *FontView) Descent() int16 { return v.descent }

// LineGap returns the hhea line gap in font units.
func (v *FontView) LineGap() int16 { return v.lineGap }

// AdvanceWidthMax returns the hhea advanceWidthMax in font units.
func (v *FontView) AdvanceWidthMax() uint16 { return v.advanceWidthMax }

const (
	tagTrueTypeVersion = 0x00010000
	tagAppleTrue       = "true"
	tagOpenTypeCFF     = "OTTO"
	tagOldPostScript   = "typ1"
)

// Load parses the offset table and table directory of a TrueType or
// OpenType-with-TrueType-outlines font, locates the required tables,
// and extracts global metrics. Load either fully populates the
// returned FontView and reports a nil error, or returns a non-nil
// error and a FontView that must be treated as uninitialized.
//
// data is borrowed, not copied: the returned FontView is valid only
// as long as data is not modified or released by the caller.
func Load(data []byte) (*FontView, error) {
	r := sfntio.NewReader(data)

	rawVersion, err := r.U32(0)
	if err != nil {
		return nil, fmt.Errorf("minttf: %w: reading offset table version: %v", ErrFileReadError, err)
	}
	versionTag, err := r.Tag(0)
	if err != nil {
		return nil, fmt.Errorf("minttf: %w: reading offset table version: %v", ErrFileReadError, err)
	}

	var isCFF bool
	switch {
	case rawVersion == tagTrueTypeVersion:
		// OpenType-with-TrueType-outlines.
	case versionTag == tagAppleTrue:
		// Apple TrueType: identical layout to OpenType10 from here on.
	case versionTag == tagOpenTypeCFF:
		isCFF = true
	case versionTag == tagOldPostScript:
		return nil, ErrUnsupportedFormat
	default:
		return nil, ErrUnsupportedFormat
	}

	numTables, err := r.U16(4)
	if err != nil {
		return nil, fmt.Errorf("minttf: %w: reading numTables: %v", ErrFileReadError, err)
	}

	v := &FontView{r: r, tableCount: numTables}

	const offsetTableSize = 12
	const dirEntrySize = 16
	for i := 0; i < int(numTables); i++ {
		entryOff := offsetTableSize + i*dirEntrySize
		tag, err := r.Tag(entryOff)
		if err != nil {
			return nil, fmt.Errorf("minttf: %w: reading table directory entry %d: %v", ErrFileReadError, i, err)
		}
		off, err := r.U32(entryOff + 8)
		if err != nil {
			return nil, fmt.Errorf("minttf: %w: reading table directory entry %d: %v", ErrFileReadError, i, err)
		}
		length, err := r.U32(entryOff + 12)
		if err != nil {
			return nil, fmt.Errorf("minttf: %w: reading table directory entry %d: %v", ErrFileReadError, i, err)
		}
		loc := location{Offset: off, Length: length}
		switch tag {
		case "head":
			v.head = loc
		case "loca":
			v.loca = loc
		case "hhea":
			v.hhea = loc
		case "cmap":
			v.cmap = loc
		case "maxp":
			v.maxp = loc
		case "glyf":
			v.glyf = loc
		case "hmtx":
			v.hmtx = loc
		case "kern":
			v.kern = loc
		case "name":
			v.name = loc
		case "CFF ":
			v.cff = loc
		}
	}

	Logger().Debug("minttf: table directory parsed", "numTables", numTables, "isCFF", isCFF)

	if isCFF {
		// CFF outlines are out of scope: the container is reported as
		// unsupported once its table directory has been parsed.
		return nil, ErrUnsupportedFormat
	}

	if !v.cmap.present() {
		return nil, ErrNoCmapTable
	}
	if !v.name.present() {
		return nil, ErrNoNameTable
	}
	if !v.maxp.present() {
		return nil, ErrNoMaxpTable
	}
	if !v.hhea.present() {
		return nil, ErrNoHheaTable
	}
	if !v.head.present() {
		return nil, ErrNoHeadTable
	}
	if !v.hmtx.present() {
		return nil, ErrNoHmtxTable
	}
	if !v.loca.present() {
		return nil, ErrNoLocaTable
	}
	if !v.glyf.present() {
		return nil, ErrNoGlyfTable
	}

	if err := v.parseHead(); err != nil {
		return nil, err
	}
	if err := v.parseHhea(); err != nil {
		return nil, err
	}
	if err := v.parseMaxp(); err != nil {
		return nil, err
	}
	if err := v.selectCmapSubtable(); err != nil {
		return nil, err
	}

	Logger().Debug("minttf: font loaded",
		"unitsPerEm", v.unitsPerEm, "numGlyphs", v.numGlyphs,
		"cmapFormat", v.cmapFormat, "longLoca", v.longLoca)

	return v, nil
}
