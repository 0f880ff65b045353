// Package textengine lays out and edits multi-paragraph, bidirectional
// text for editors and text views.
//
// # Overview
//
// A TextEngine holds a document as a list of paragraphs. Every edit
// re-runs line breaking, bidi resolution, shaping and wrapping for the
// paragraphs it touches, so the glyph layout is always current. Callers
// draw the glyphs of each layout.TextLine and use the engine to map
// between logical positions (CPPos) and visual positions (GlyphPos).
//
// # Quick Start
//
//	fonts := font.NewCollection(font.WithPixelHeight(16))
//	f, err := font.Parse(goregular.TTF)
//	if err != nil {
//		return err
//	}
//	fonts.AddFont(f)
//
//	e := textengine.New(fonts, textengine.WithWrapWidth(320))
//	end := e.Insert("Hello, world\nسلام", textengine.CPPos{})
//	x, y, ok := e.ComputeCursorPos(end, 20)
//
// # Positions
//
// A CPPos addresses the gap before a codepoint. When a paragraph wraps,
// the gap after the last codepoint of a line and the gap before the first
// codepoint of the next line are the same logical position but two
// different caret locations; CPPos.EOL selects the end-of-line one.
//
// A GlyphPos addresses a glyph edge on a line: the left edge, or the
// right edge when After is set.
//
// # Coordinates
//
// Hit and ComputeCursorPos use a top-left origin with y growing down.
// Each line is lh pixels tall; an empty paragraph counts as one line.
//
// # Thread Safety
//
// TextEngine is not safe for concurrent use.
package textengine
