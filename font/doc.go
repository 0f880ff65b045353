// Package font loads fonts and organizes them into an ordered fallback
// collection.
//
// A Collection owns the fonts used for layout. Glyph lookup walks the
// collection in order and takes the first font that maps a codepoint to a
// real glyph. When no font covers a codepoint, callers fall back to the
// collection's dummy glyph, a box sized from the largest metrics of the
// loaded fonts.
//
//	fonts := font.NewCollection(font.WithPixelHeight(16))
//	f, err := font.Parse(goregular.TTF)
//	if err != nil {
//		return err
//	}
//	fonts.AddFont(f)
//
// Metrics are in pixels at the collection's pixel height.
package font
