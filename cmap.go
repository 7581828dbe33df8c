package minttf

const (
	platformUnicode   = 0
	platformMicrosoft = 3

	msSpecificUCS2 = 1
	msSpecificUCS4 = 10
)

// selectCmapSubtable parses the cmap header, chooses the subtable to
// use for character-to-glyph lookups, and records its absolute
// indexMapOffset (already advanced past the 2-byte format tag) and
// format.
//
// Selection order: the first Unicode-platform (platformId == 0)
// subtable wins outright; failing that, the last Microsoft-platform
// subtable (platformId == 3) whose platform-specific id is UCS-2 (1)
// or UCS-4 (10) is used.
func (v *FontView) selectCmapSubtable() error {
	base := int(v.cmap.Offset)

	version, err := v.r.U16(base + 0)
	if err != nil {
		return wrapRead(err, "cmap.version")
	}
	if version != 0 {
		return ErrUnsupportedCharEncoding
	}
	subtableCount, err := v.r.U16(base + 2)
	if err != nil {
		return wrapRead(err, "cmap.numTables")
	}

	var chosen int = -1
	const headerSize = 4
	const entrySize = 8
	for i := 0; i < int(subtableCount); i++ {
		entryOff := base + headerSize + i*entrySize
		platformID, err := v.r.U16(entryOff + 0)
		if err != nil {
			return wrapRead(err, "cmap subtable platformID")
		}
		platformSpecificID, err := v.r.U16(entryOff + 2)
		if err != nil {
			return wrapRead(err, "cmap subtable platformSpecificID")
		}

		if platformID == platformUnicode {
			chosen = i
			break
		}
		if platformID == platformMicrosoft &&
			(platformSpecificID == msSpecificUCS2 || platformSpecificID == msSpecificUCS4) {
			chosen = i
		}
	}
	if chosen < 0 {
		return ErrUnsupportedCharEncoding
	}

	entryOff := base + headerSize + chosen*entrySize
	subOffset, err := v.r.U32(entryOff + 4)
	if err != nil {
		return wrapRead(err, "cmap subtable offset")
	}
	absOffset := base + int(subOffset)

	format, err := v.r.U16(absOffset)
	if err != nil {
		return wrapRead(err, "cmap subtable format")
	}
	switch format {
	case 4, 6, 12:
	default:
		return ErrUnsupportedFormat
	}

	v.cmapFormat = format
	v.indexMapOffset = absOffset + 2 // past the 2-byte format tag
	return nil
}

// CharIndex resolves a Unicode code point to a glyph index. A return
// value of 0 means "missing glyph" (notdef), per convention.
func (v *FontView) CharIndex(codepoint rune) uint32 {
	switch v.cmapFormat {
	case 4:
		return v.charIndexFormat4(uint32(codepoint))
	case 6:
		return v.charIndexFormat6(uint32(codepoint))
	case 12:
		return v.charIndexFormat12(uint32(codepoint))
	default:
		return 0
	}
}

// charIndexFormat4 implements the segmented-BMP (format 4) lookup.
func (v *FontView) charIndexFormat4(codepoint uint32) uint32 {
	off := v.indexMapOffset

	segCountX2, err := v.r.U16(off + 4)
	if err != nil {
		return 0
	}
	segCount := int(segCountX2 / 2)
	if segCount == 0 {
		return 0
	}

	endCodeBase := off + 12
	startCodeBase := endCodeBase + segCount*2 + 2 // +2 skips reservedPad
	idDeltaBase := startCodeBase + segCount*2
	idRangeOffsetBase := idDeltaBase + segCount*2

	// Binary search for the first segment whose endCode >= codepoint.
	lo, hi := 0, segCount-1
	seg := -1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		endCode, err := v.r.U16(endCodeBase + mid*2)
		if err != nil {
			return 0
		}
		if uint32(endCode) >= codepoint {
			seg = mid
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}
	if seg < 0 {
		return 0
	}

	startCode, err := v.r.U16(startCodeBase + seg*2)
	if err != nil {
		return 0
	}
	if codepoint < uint32(startCode) {
		return 0
	}

	idDelta, err := v.r.I16(idDeltaBase + seg*2)
	if err != nil {
		return 0
	}
	idRangeOffsetPos := idRangeOffsetBase + seg*2
	idRangeOffset, err := v.r.U16(idRangeOffsetPos)
	if err != nil {
		return 0
	}

	if idRangeOffset == 0 {
		return uint32(uint16(codepoint) + uint16(idDelta))
	}

	glyphIndexAddr := idRangeOffsetPos + int(idRangeOffset) + 2*int(codepoint-uint32(startCode))
	glyphIndex, err := v.r.U16(glyphIndexAddr)
	if err != nil || glyphIndex == 0 {
		return 0
	}
	return uint32(glyphIndex + uint16(idDelta))
}

// charIndexFormat6 implements the trimmed dense array (format 6) lookup.
func (v *FontView) charIndexFormat6(codepoint uint32) uint32 {
	off := v.indexMapOffset

	firstCode, err := v.r.U16(off + 4)
	if err != nil {
		return 0
	}
	entryCount, err := v.r.U16(off + 6)
	if err != nil {
		return 0
	}
	if codepoint < uint32(firstCode) || codepoint >= uint32(firstCode)+uint32(entryCount) {
		return 0
	}

	glyphArrayBase := off + 8
	idx := codepoint - uint32(firstCode)
	glyphID, err := v.r.U16(glyphArrayBase + int(idx)*2)
	if err != nil {
		return 0
	}
	return uint32(glyphID)
}

// charIndexFormat12 implements the segmented 32-bit (format 12)
// lookup, using the binary-search midpoint start + (end-start)/2;
// start + (end-end)/2 always equals start and never converges.
func (v *FontView) charIndexFormat12(codepoint uint32) uint32 {
	off := v.indexMapOffset

	nGroups, err := v.r.U32(off + 10)
	if err != nil {
		return 0
	}
	groupsBase := off + 14
	const groupSize = 12

	lo, hi := 0, int(nGroups)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		groupOff := groupsBase + mid*groupSize
		start, err := v.r.U32(groupOff + 0)
		if err != nil {
			return 0
		}
		end, err := v.r.U32(groupOff + 4)
		if err != nil {
			return 0
		}
		switch {
		case codepoint < start:
			hi = mid - 1
		case codepoint > end:
			lo = mid + 1
		default:
			startGlyphID, err := v.r.U32(groupOff + 8)
			if err != nil {
				return 0
			}
			return startGlyphID + (codepoint - start)
		}
	}
	return 0
}
