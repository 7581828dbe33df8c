package minttf

// parseHead reads the head table: version (must be 0x00010000),
// unitsPerEm, the header bounding box, and indexToLocaFormat.
func (v *FontView) parseHead() error {
	base := int(v.head.Offset)

	version, err := v.r.U32(base + 0)
	if err != nil {
		return wrapRead(err, "head.version")
	}
	if version != tagTrueTypeVersion {
		return ErrUnsupportedLocaTableVersion
	}

	unitsPerEm, err := v.r.U16(base + 18)
	if err != nil {
		return wrapRead(err, "head.unitsPerEm")
	}
	xMin, err := v.r.I16(base + 36)
	if err != nil {
		return wrapRead(err, "head.xMin")
	}
	yMin, err := v.r.I16(base + 38)
	if err != nil {
		return wrapRead(err, "head.yMin")
	}
	xMax, err := v.r.I16(base + 40)
	if err != nil {
		return wrapRead(err, "head.xMax")
	}
	yMax, err := v.r.I16(base + 42)
	if err != nil {
		return wrapRead(err, "head.yMax")
	}
	indexToLocaFormat, err := v.r.I16(base + 50)
	if err != nil {
		return wrapRead(err, "head.indexToLocaFormat")
	}

	v.unitsPerEm = unitsPerEm
	v.bbox.xMin, v.bbox.yMin, v.bbox.xMax, v.bbox.yMax = xMin, yMin, xMax, yMax

	switch indexToLocaFormat {
	case 0:
		v.longLoca = false
	case 1:
		v.longLoca = true
	default:
		return ErrUnsupportedLocaTableIndex
	}
	return nil
}

// parseHhea reads the hhea table: version (must be 0x00010000),
// ascent, descent, lineGap, advanceWidthMax, and
// numberOfLongHorizontalMetrics (numberOfHMetrics in the OpenType spec).
func (v *FontView) parseHhea() error {
	base := int(v.hhea.Offset)

	version, err := v.r.U32(base + 0)
	if err != nil {
		return wrapRead(err, "hhea.version")
	}
	if version != tagTrueTypeVersion {
		return ErrUnsupportedHheaTableVersion
	}

	ascent, err := v.r.I16(base + 4)
	if err != nil {
		return wrapRead(err, "hhea.ascent")
	}
	descent, err := v.r.I16(base + 6)
	if err != nil {
		return wrapRead(err, "hhea.descent")
	}
	lineGap, err := v.r.I16(base + 8)
	if err != nil {
		return wrapRead(err, "hhea.lineGap")
	}
	advanceWidthMax, err := v.r.U16(base + 10)
	if err != nil {
		return wrapRead(err, "hhea.advanceWidthMax")
	}
	numLong, err := v.r.U16(base + 34)
	if err != nil {
		return wrapRead(err, "hhea.numberOfLongHorizontalMetrics")
	}

	v.ascent, v.descent, v.lineGap = ascent, descent, lineGap
	v.advanceWidthMax = advanceWidthMax
	v.numberOfLongHorizontalMetrics = numLong
	return nil
}

// parseMaxp reads just the field we need: numGlyphs, used to bound
// loca lookups.
func (v *FontView) parseMaxp() error {
	numGlyphs, err := v.r.U16(int(v.maxp.Offset) + 4)
	if err != nil {
		return wrapRead(err, "maxp.numGlyphs")
	}
	v.numGlyphs = numGlyphs
	return nil
}

// wrapRead attaches a field name to a bounds-check failure while
// keeping it comparable against ErrFileReadError via errors.Is.
func wrapRead(cause error, field string) error {
	return &readError{field: field, cause: cause}
}

type readError struct {
	field string
	cause error
}

func (e *readError) Error() string {
	return "minttf: truncated or unreadable font data reading " + e.field + ": " + e.cause.Error()
}

func (e *readError) Unwrap() error { return ErrFileReadError }
