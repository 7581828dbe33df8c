package minttf

import "encoding/binary"

// fontBuilder assembles a minimal, valid TrueType byte stream one
// table at a time, the way a real font file would lay one out: an
// offset table, a table directory, then each table's bytes. Tests use
// it to synthesize just enough of a font to exercise one code path,
// instead of checking in binary .ttf fixtures.
type fontBuilder struct {
	tables map[string][]byte
	order  []string
}

func newFontBuilder() *fontBuilder {
	return &fontBuilder{tables: make(map[string][]byte)}
}

func (b *fontBuilder) set(tag string, data []byte) *fontBuilder {
	if _, ok := b.tables[tag]; !ok {
		b.order = append(b.order, tag)
	}
	b.tables[tag] = data
	return b
}

func (b *fontBuilder) build() []byte {
	n := len(b.order)
	out := make([]byte, 12+16*n)
	binary.BigEndian.PutUint32(out[0:], tagTrueTypeVersion)
	binary.BigEndian.PutUint16(out[4:], uint16(n))

	offset := uint32(len(out))
	for i, tag := range b.order {
		data := b.tables[tag]
		entry := out[12+i*16:]
		copy(entry[0:4], tag)
		binary.BigEndian.PutUint32(entry[8:], offset)
		binary.BigEndian.PutUint32(entry[12:], uint32(len(data)))
		out = append(out, data...)
		offset += uint32(len(data))
	}
	return out
}

func be16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func be32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// minimalHead returns a head table with the given indexToLocaFormat
// and a 0-0-1000-1000 bounding box.
func minimalHead(indexToLocaFormat int16) []byte {
	head := make([]byte, 54)
	binary.BigEndian.PutUint32(head[0:], tagTrueTypeVersion)
	binary.BigEndian.PutUint16(head[18:], 1024) // unitsPerEm
	binary.BigEndian.PutUint16(head[36:], 0)    // xMin
	binary.BigEndian.PutUint16(head[38:], 0)    // yMin
	binary.BigEndian.PutUint16(head[40:], 1000) // xMax
	binary.BigEndian.PutUint16(head[42:], 1000) // yMax
	binary.BigEndian.PutUint16(head[50:], uint16(indexToLocaFormat))
	return head
}

func minimalHhea() []byte {
	hhea := make([]byte, 36)
	binary.BigEndian.PutUint32(hhea[0:], tagTrueTypeVersion)
	binary.BigEndian.PutUint16(hhea[4:], 1000) // ascent
	binary.BigEndian.PutUint16(hhea[6:], 0xFC18) // descent = -1000
	binary.BigEndian.PutUint16(hhea[8:], 0)    // lineGap
	binary.BigEndian.PutUint16(hhea[10:], 1000) // advanceWidthMax
	binary.BigEndian.PutUint16(hhea[34:], 1)   // numberOfLongHorizontalMetrics
	return hhea
}

func minimalMaxp(numGlyphs uint16) []byte {
	maxp := make([]byte, 6)
	binary.BigEndian.PutUint16(maxp[4:], numGlyphs)
	return maxp
}

func minimalHmtx() []byte {
	return cat(be16(1000), be16(0))
}

func minimalName() []byte {
	// version=0, count=0, stringOffset=6 (right past the header).
	return cat(be16(0), be16(0), be16(6))
}

// buildCmapTableFormat4 builds a complete cmap table (header, one
// Microsoft/UCS-2 subtable entry, and a format-4 subtable) with a
// single real segment [startCode, endCode] plus the mandatory
// 0xFFFF sentinel segment, matching the layout a real format 4
// subtable uses.
func buildCmapTableFormat4(startCode, endCode uint16, idDelta int16) []byte {
	const headerSize = 4
	const entrySize = 8
	subOffset := uint32(headerSize + entrySize)

	header := cat(be16(0), be16(1)) // cmap version, numTables
	entry := cat(be16(3), be16(1), be32(subOffset))

	sub := cat(
		be16(4), be16(0), be16(0), // format, length (unused), language
		be16(4), be16(0), be16(0), // segCountX2=4, searchRange, entrySelector
		be16(0),                      // rangeShift
		be16(endCode), be16(0xFFFF),  // endCode[0], endCode[1]=sentinel
		be16(0),                      // reservedPad
		be16(startCode), be16(0xFFFF), // startCode[0], startCode[1]
		be16(uint16(idDelta)), be16(1), // idDelta[0], idDelta[1]
		be16(0), be16(0), // idRangeOffset[0], idRangeOffset[1]
	)
	return cat(header, entry, sub)
}

// buildCmapTableFormat12 builds a complete cmap table with a single
// format-12 group (start, end, startGlyphID).
func buildCmapTableFormat12(start, end, startGlyphID uint32) []byte {
	const headerSize = 4
	const entrySize = 8
	subOffset := uint32(headerSize + entrySize)

	header := cat(be16(0), be16(1))
	entry := cat(be16(3), be16(10), be32(subOffset))

	sub := cat(
		be16(12), be16(0), // format, reserved
		be32(0),          // length (unused by reader)
		be32(0),          // language
		be32(1),          // nGroups
		be32(start), be32(end), be32(startGlyphID),
	)
	return cat(header, entry, sub)
}

// buildCmapTableFormat6 builds a complete cmap table with a single
// format-6 trimmed dense array subtable: entryCount glyph IDs,
// glyphIDs[i] = firstCode+i+1, starting at firstCode.
func buildCmapTableFormat6(firstCode, entryCount uint16) []byte {
	const headerSize = 4
	const entrySize = 8
	subOffset := uint32(headerSize + entrySize)

	header := cat(be16(0), be16(1))
	entry := cat(be16(3), be16(1), be32(subOffset))

	sub := cat(be16(6), be16(0), be16(0), be16(firstCode), be16(entryCount))
	for i := uint16(0); i < entryCount; i++ {
		sub = append(sub, be16(firstCode+i+1)...)
	}
	return cat(header, entry, sub)
}

func buildMinimalFont(loca []byte, glyf []byte, cmapData []byte, numGlyphs uint16, longLoca bool) []byte {
	format := int16(0)
	if longLoca {
		format = 1
	}
	b := newFontBuilder().
		set("head", minimalHead(format)).
		set("hhea", minimalHhea()).
		set("maxp", minimalMaxp(numGlyphs)).
		set("hmtx", minimalHmtx()).
		set("name", minimalName()).
		set("loca", loca).
		set("glyf", glyf).
		set("cmap", cmapData)
	return b.build()
}

// buildSimpleGlyph encodes one simple glyf record for a single
// contour, always using the 16-bit (never the packed 8-bit) x/y
// coordinate encoding, for simplicity: flags carry only the on-curve
// bit.
func buildSimpleGlyph(xMin, yMin, xMax, yMax int16, pts []struct{ x, y int16 }, onCurve []bool) []byte {
	var out []byte
	out = append(out, be16(1)...) // numberOfContours
	out = append(out, be16(uint16(xMin))...)
	out = append(out, be16(uint16(yMin))...)
	out = append(out, be16(uint16(xMax))...)
	out = append(out, be16(uint16(yMax))...)
	out = append(out, be16(uint16(len(pts)-1))...) // endPtsOfContours[0]
	out = append(out, be16(0)...)                  // instructionLength

	for _, on := range onCurve {
		var flag byte
		if on {
			flag = 0x01
		}
		out = append(out, flag)
	}

	prevX := int16(0)
	for _, p := range pts {
		dx := p.x - prevX
		out = append(out, be16(uint16(dx))...)
		prevX = p.x
	}
	prevY := int16(0)
	for _, p := range pts {
		dy := p.y - prevY
		out = append(out, be16(uint16(dy))...)
		prevY = p.y
	}
	return out
}

// buildLoca builds a short-format loca table for a single glyph of
// length glyfLen.
func buildLoca(glyfLen int) []byte {
	return cat(be16(0), be16(uint16(glyfLen/2)))
}
