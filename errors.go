package minttf

import "errors"

// Sentinel errors returned by Load, one per error taxonomy entry.
// Callers compare with errors.Is; Load never wraps these beyond adding
// positional context with fmt.Errorf("...: %w", ...).
var (
	ErrFileReadError               = errors.New("minttf: truncated or unreadable font data")
	ErrUnsupportedFormat           = errors.New("minttf: unsupported font container format")
	ErrNoCFFTable                  = errors.New("minttf: missing required CFF table")
	ErrNoGlyfTable                 = errors.New("minttf: missing required glyf table")
	ErrNoNameTable                 = errors.New("minttf: missing required name table")
	ErrNoLocaTable                 = errors.New("minttf: missing required loca table")
	ErrNoMaxpTable                 = errors.New("minttf: missing required maxp table")
	ErrNoCmapTable                 = errors.New("minttf: missing required cmap table")
	ErrNoHheaTable                 = errors.New("minttf: missing required hhea table")
	ErrNoHeadTable                 = errors.New("minttf: missing required head table")
	ErrNoHmtxTable                 = errors.New("minttf: missing required hmtx table")
	ErrUnsupportedCharEncoding     = errors.New("minttf: no supported cmap subtable found")
	ErrUnsupportedLocaTableVersion = errors.New("minttf: unsupported head table version")
	ErrUnsupportedHheaTableVersion = errors.New("minttf: unsupported hhea table version")
	ErrUnsupportedLocaTableIndex   = errors.New("minttf: unsupported indexToLocaFormat")
)
