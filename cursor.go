package textengine

// Hit returns the position nearest to the point (x, y) with lines lh
// pixels tall. Points above or left of the document clamp to it, and
// points below it land on the last line.
func (e *TextEngine) Hit(lh, x, y float32) CPPos {
	if len(e.paras) == 0 {
		return CPPos{}
	}
	x, y = max(x, 0), max(y, 0)

	var top float32
	last := len(e.paras) - 1
	for pi, p := range e.paras {
		n := max(p.LineCount(), 1)
		for l := range n {
			if y < top+lh || (pi == last && l == n-1) {
				return e.GlyphPosToCPPos(e.findGlyphPos(pi, l, x))
			}
			top += lh
		}
	}
	return e.End()
}

// ComputeCursorPos returns the top-left corner of the caret at pos with
// lines lh pixels tall. It reports false when pos is not on a mapped
// codepoint or is out of range.
func (e *TextEngine) ComputeCursorPos(pos CPPos, lh float32) (x, y float32, ok bool) {
	if len(e.paras) == 0 {
		return 0, 0, pos == CPPos{}
	}
	if e.Validate(pos) != nil {
		return 0, 0, false
	}
	gp, ok := e.CPPosToGlyphPos(pos)
	if !ok {
		return 0, 0, false
	}
	return e.cursorX(gp), e.lineTop(gp.Paragraph, gp.Line, lh), true
}

// CheckCursorPos repairs a position after the layout changed: it clamps
// it into the document, moves it off unmapped codepoints and drops EOL
// when its codepoint no longer ends a line.
func (e *TextEngine) CheckCursorPos(pos CPPos) CPPos {
	if len(e.paras) == 0 {
		return CPPos{}
	}
	if pos.Paragraph < 0 {
		return CPPos{}
	}
	if pos.Paragraph >= len(e.paras) {
		return e.End()
	}
	p := e.paras[pos.Paragraph]
	if pos.CP < 0 {
		return CPPos{Paragraph: pos.Paragraph}
	}
	if pos.CP >= p.Len() {
		return CPPos{Paragraph: pos.Paragraph, CP: p.Len()}
	}

	info := p.CP(pos.CP)
	if !info.Mapped() {
		prev := e.preNextMapped(CPPos{Paragraph: pos.Paragraph, CP: pos.CP}, false)
		if prev.Paragraph != pos.Paragraph {
			return CPPos{Paragraph: pos.Paragraph}
		}
		return prev
	}
	if !pos.EOL {
		return pos
	}

	n := p.Line(info.Line).Len()
	endsLine := info.Start+info.Len >= n
	if info.RTL() {
		endsLine = info.Start == 0
	}
	if !endsLine || info.Line == lastLine(p) {
		return e.resolveEOL(pos)
	}
	return pos
}

// CursorLeft returns the previous mapped position in logical order.
func (e *TextEngine) CursorLeft(pos CPPos) CPPos {
	if len(e.paras) == 0 {
		return CPPos{}
	}
	return e.preNextMapped(pos, false)
}

// CursorRight returns the next mapped position in logical order.
func (e *TextEngine) CursorRight(pos CPPos) CPPos {
	if len(e.paras) == 0 {
		return CPPos{}
	}
	return e.preNextMapped(pos, true)
}

// CursorUp moves to the line above, keeping the caret's x coordinate.
// On the first line it returns pos.
func (e *TextEngine) CursorUp(pos CPPos) CPPos {
	gp, ok := e.glyphPos(pos)
	if !ok {
		return pos
	}
	switch {
	case gp.Line > 0:
		return e.moveTo(gp, gp.Paragraph, gp.Line-1)
	case gp.Paragraph > 0:
		return e.moveTo(gp, gp.Paragraph-1, lastLine(e.paras[gp.Paragraph-1]))
	}
	return pos
}

// CursorDown moves to the line below, keeping the caret's x coordinate.
// On the last line it returns pos.
func (e *TextEngine) CursorDown(pos CPPos) CPPos {
	gp, ok := e.glyphPos(pos)
	if !ok {
		return pos
	}
	switch {
	case gp.Line < lastLine(e.paras[gp.Paragraph]):
		return e.moveTo(gp, gp.Paragraph, gp.Line+1)
	case gp.Paragraph+1 < len(e.paras):
		return e.moveTo(gp, gp.Paragraph+1, 0)
	}
	return pos
}

func (e *TextEngine) glyphPos(pos CPPos) (GlyphPos, bool) {
	if len(e.paras) == 0 || e.Validate(pos) != nil {
		return GlyphPos{}, false
	}
	return e.CPPosToGlyphPos(pos)
}

func (e *TextEngine) moveTo(from GlyphPos, p, l int) CPPos {
	return e.GlyphPosToCPPos(e.findGlyphPos(p, l, e.cursorX(from)))
}

// IsGlyphInRange reports whether the glyph at gp shows a codepoint in the
// selection between a and b, in either order.
func (e *TextEngine) IsGlyphInRange(gp GlyphPos, a, b CPPos) bool {
	if len(e.paras) == 0 {
		return false
	}
	a, b = e.resolveEOL(a), e.resolveEOL(b)
	if a.Compare(b) == 0 {
		return false
	}
	if b.Less(a) {
		a, b = b, a
	}

	// The logical start of a glyph is its left edge, or its right edge
	// when it is right-to-left.
	gp.After = false
	if p := e.paras[gp.Paragraph]; gp.Line < p.LineCount() {
		line := p.Line(gp.Line)
		if gp.Glyph >= 0 && gp.Glyph < line.Len() && !line.Glyphs[gp.Glyph].LTR {
			gp.After = true
		}
	}
	c := e.GlyphPosToCPPos(gp)
	return !c.Less(a) && c.Less(b)
}
