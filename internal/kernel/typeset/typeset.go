// Package typeset defines the data shapes exchanged with the external
// typesetting collaborator: the shaped-run result (TextPosition) and its
// per-glyph detail (GlyphPosition), plus the OpenType feature toggles a
// caller can request.
package typeset

import "github.com/solenne-labs/pagekit/internal/kernel/unit"

// Features selects a small, deliberately limited set of OpenType features a
// Style can request from the typesetter: proportional/tabular figures,
// old-style/lining figures, and small caps.
type Features struct {
	// Pnum selects proportional figures when true, tabular when false, and
	// leaves the font default untouched when nil.
	Pnum *bool
	// Lnum selects lining figures when true, old-style when false.
	Lnum *bool
	// Smcp requests small caps when true; nil leaves the font default.
	Smcp *bool
}

func boolPtr(b bool) *bool { return &b }

func (f Features) WithPnum(v bool) Features { f.Pnum = boolPtr(v); return f }
func (f Features) WithTnum() Features { f.Pnum = boolPtr(false); return f }
func (f Features) WithLnum(v bool) Features { f.Lnum = boolPtr(v); return f }
func (f Features) WithOnum() Features { f.Lnum = boolPtr(false); return f }
func (f Features) WithSmcp(v bool) Features { f.Smcp = boolPtr(v); return f }

// DefaultFeatures mirrors the typesetter's own defaults: proportional and
// lining figures on, small caps left to the font.
func DefaultFeatures() Features {
	return Features{Pnum: boolPtr(true), Lnum: boolPtr(true)}
}

// GlyphPosition is one shaped glyph's advance and per-glyph offset, in
// font-relative Em units.
type GlyphPosition struct {
	Character  *rune
	GlyphIndex uint16
	HAdvance   unit.Em
	VAdvance   unit.Em
	HOffset    unit.Em
	VOffset    unit.Em
}

func NewGlyphPosition(character *rune, hAdvance, vAdvance, hOffset, vOffset unit.Em) GlyphPosition {
	return GlyphPosition{
		Character: character,
		HAdvance:  hAdvance,
		VAdvance:  vAdvance,
		HOffset:   hOffset,
		VOffset:   vOffset,
	}
}

func (g *GlyphPosition) SetGlyphIndex(idx uint16) { g.GlyphIndex = idx }

// HAdvanceRest is the remaining horizontal advance after this glyph's own
// offset has been consumed (used to step the pen between glyphs).
func (g GlyphPosition) HAdvanceRest() unit.Em { return g.HAdvance.Sub(g.HOffset) }

// VAdvanceRest mirrors HAdvanceRest but collapses to zero when the glyph
// carries no vertical advance or offset at all, matching the typesetter's
// horizontal-script fast path.
func (g GlyphPosition) VAdvanceRest() unit.Em {
	if g.VAdvance.IsZero() && g.VOffset.IsZero() {
		return unit.Em(0)
	}
	return g.VAdvance.Sub(g.VOffset)
}

// TextPosition is a single shaped run's measured box plus its glyph-by-glyph
// layout, in Em units (multiply by the requesting Style's font size to get
// physical Pt lengths).
type TextPosition struct {
	Width     unit.Em
	Height    unit.Em
	Depth     unit.Em
	Positions []GlyphPosition
}

// Ascent is Height-Depth, the distance from the shaped run's top to its
// baseline.
func (t TextPosition) Ascent() unit.Em { return t.Height.Sub(t.Depth) }
