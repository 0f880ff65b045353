package shape

// BuiltinShaper maps each codepoint to one glyph with the font's nominal
// advance. It applies no ligatures, kerning or contextual forms.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements Shaper.
func (BuiltinShaper) Shape(in Input) []Glyph {
	if in.Face == nil || in.Start >= in.End || in.End > len(in.Text) || in.Start < 0 {
		return nil
	}

	out := make([]Glyph, 0, in.End-in.Start)
	for i := in.Start; i < in.End; i++ {
		id := in.Face.GlyphIndex(in.Text[i])
		out = append(out, Glyph{
			ID:       id,
			Cluster:  i,
			AdvanceX: in.Face.GlyphAdvance(id, in.Size),
		})
	}
	return out
}
