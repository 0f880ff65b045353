// Package fonttest provides synthetic fonts with exact, size-independent
// metrics for layout tests.
package fonttest

import "github.com/gogpu/textengine/font"

// Face is a monospace face. The glyph ID of a covered rune is the rune
// itself.
type Face struct {
	Family string
	// Advance is the pixel advance of every glyph.
	Advance float32
	// Covers reports coverage; nil covers every rune except NUL.
	Covers func(r rune) bool
}

// Latin covers ASCII and Latin-1 plus spaces and common punctuation.
func Latin(advance float32) *Face {
	return &Face{
		Family:  "Latin",
		Advance: advance,
		Covers:  func(r rune) bool { return r > 0 && r < 0x0250 },
	}
}

// Arabic covers the Arabic block and ASCII digits.
func Arabic(advance float32) *Face {
	return &Face{
		Family:  "Arabic",
		Advance: advance,
		Covers: func(r rune) bool {
			return (r >= 0x0600 && r <= 0x06FF) || (r >= '0' && r <= '9') || r == ' '
		},
	}
}

// Name implements font.Face.
func (f *Face) Name() string { return f.Family }

// GlyphIndex implements font.Face.
func (f *Face) GlyphIndex(r rune) font.GlyphID {
	if r <= 0 || (f.Covers != nil && !f.Covers(r)) {
		return 0
	}
	return font.GlyphID(r)
}

// GlyphAdvance implements font.Face.
func (f *Face) GlyphAdvance(font.GlyphID, float32) float32 { return f.Advance }

// GlyphBounds implements font.Face.
func (f *Face) GlyphBounds(_ font.GlyphID, ppem float32) font.Rect {
	return font.Rect{MinX: 0, MinY: -ppem * 0.7, MaxX: f.Advance, MaxY: 0}
}

// Metrics implements font.Face.
func (f *Face) Metrics(ppem float32) font.Metrics {
	return font.Metrics{
		Ascent:     ppem * 0.8,
		Descent:    ppem * 0.2,
		Height:     ppem,
		MaxAdvance: f.Advance,
	}
}
