package layout

import "github.com/gogpu/textengine/font"

// MappedGlyph is a glyph placed on a line.
type MappedGlyph struct {
	// Map is the index of the first codepoint of the glyph's cluster.
	Map   int
	Glyph font.GlyphMetrics
	LTR   bool
}

// TextLine is one visual line of a paragraph. Glyphs are in visual order,
// left to right.
type TextLine struct {
	Index  int
	Glyphs []MappedGlyph
	// Width is the sum of the glyph advances.
	Width float32
}

// Len returns the number of glyphs on the line.
func (l *TextLine) Len() int {
	return len(l.Glyphs)
}

// Advance returns the summed advance of the first n glyphs.
func (l *TextLine) Advance(n int) float32 {
	n = min(max(n, 0), len(l.Glyphs))
	var w float32
	for _, g := range l.Glyphs[:n] {
		w += g.Glyph.AdvanceX
	}
	return w
}
