package textengine

import "github.com/gogpu/textengine/layout"

// NextCodepoint returns the gap after pos, crossing into the next
// paragraph at a paragraph end. The end of the document maps to itself.
func (e *TextEngine) NextCodepoint(pos CPPos) CPPos {
	if len(e.paras) == 0 {
		return CPPos{}
	}
	var next CPPos
	switch {
	case pos.CP < e.paras[pos.Paragraph].Len():
		next = CPPos{Paragraph: pos.Paragraph, CP: pos.CP + 1}
	case pos.Paragraph+1 < len(e.paras):
		next = CPPos{Paragraph: pos.Paragraph + 1}
	default:
		return CPPos{Paragraph: pos.Paragraph, CP: pos.CP}
	}
	if pos.EOL {
		return e.NextCodepoint(next)
	}
	return next
}

// PreCodepoint returns the gap before pos, crossing into the previous
// paragraph at a paragraph start. The start of the document maps to
// itself. An end-of-line position steps back to its logical position.
func (e *TextEngine) PreCodepoint(pos CPPos) CPPos {
	if len(e.paras) == 0 {
		return CPPos{}
	}
	switch {
	case pos.EOL:
		return CPPos{Paragraph: pos.Paragraph, CP: pos.CP}
	case pos.CP > 0:
		return CPPos{Paragraph: pos.Paragraph, CP: pos.CP - 1}
	case pos.Paragraph == 0:
		return pos
	default:
		return CPPos{Paragraph: pos.Paragraph - 1, CP: e.paras[pos.Paragraph-1].Len()}
	}
}

// preNextMapped steps from pos until it reaches a mapped codepoint or a
// paragraph end, which always counts as mapped.
func (e *TextEngine) preNextMapped(pos CPPos, next bool) CPPos {
	cur := pos
	for {
		var ret CPPos
		if next {
			ret = e.NextCodepoint(cur)
		} else {
			ret = e.PreCodepoint(cur)
		}
		if ret == cur {
			return ret
		}
		p := e.paras[ret.Paragraph]
		if ret.CP >= p.Len() || p.CP(ret.CP).Mapped() {
			return ret
		}
		cur = ret
	}
}

// GlyphPosToCPPos maps a glyph edge to the logical position it shows.
func (e *TextEngine) GlyphPosToCPPos(gp GlyphPos) CPPos {
	if len(e.paras) == 0 {
		return CPPos{}
	}
	p := e.paras[gp.Paragraph]
	if gp.Line < 0 || gp.Line >= p.LineCount() || p.Line(gp.Line).Len() == 0 {
		return CPPos{Paragraph: gp.Paragraph}
	}
	line := p.Line(gp.Line)
	n := line.Len()
	moreLines := gp.Line+1 < p.LineCount()

	if gp.Glyph >= n {
		g := line.Glyphs[n-1]
		ret := CPPos{Paragraph: gp.Paragraph, CP: g.Map}
		if !g.LTR {
			return ret
		}
		if moreLines {
			ret.EOL = true
			return ret
		}
		return e.preNextMapped(ret, true)
	}

	g := line.Glyphs[max(gp.Glyph, 0)]
	ret := CPPos{Paragraph: gp.Paragraph, CP: g.Map}
	if g.LTR {
		if !gp.After {
			return ret
		}
		if gp.Glyph+1 >= n && moreLines {
			ret.EOL = true
			return ret
		}
		return e.preNextMapped(ret, true)
	}

	// The right edge of a right-to-left glyph is its logical start.
	if gp.After {
		return ret
	}
	if gp.Glyph == 0 && moreLines {
		ret.EOL = true
		return ret
	}
	return e.preNextMapped(ret, true)
}

// CPPosToGlyphPos maps a logical position to the glyph edge the caret is
// drawn at. It reports false when the codepoint is not mapped.
func (e *TextEngine) CPPosToGlyphPos(pos CPPos) (GlyphPos, bool) {
	if len(e.paras) == 0 {
		return GlyphPos{}, false
	}
	p := e.paras[pos.Paragraph]
	gp := GlyphPos{Paragraph: pos.Paragraph}

	if pos.CP >= p.Len() {
		// Paragraph end: after the last mapped codepoint.
		prev := p.Len() - 1
		for prev > 0 && !p.CP(prev).Mapped() {
			prev--
		}
		if prev < 0 || !p.CP(prev).Mapped() {
			return gp, true
		}
		info := p.CP(prev)
		gp.Line, gp.Glyph = info.Line, info.Start
		if !info.RTL() {
			gp.Glyph += max(info.Len-1, 0)
			gp.After = true
		}
		return gp, true
	}

	info := p.CP(pos.CP)
	if !info.Mapped() {
		return gp, false
	}
	gp.Line, gp.Glyph = info.Line, info.Start

	if !info.RTL() {
		if pos.EOL {
			gp.Glyph += max(info.Len-1, 0)
			gp.After = true
		}
		return gp, true
	}
	if pos.EOL {
		return gp, true
	}

	// Right-to-left: the caret sits on the cluster's right edge, unless a
	// left-to-right codepoint precedes it on the same line, in which case
	// it sits after that one.
	if prev := e.preNextMapped(pos, false); prev.Paragraph == pos.Paragraph && prev.CP < pos.CP {
		if pi := p.CP(prev.CP); pi.Mapped() && pi.Line == info.Line && !pi.RTL() {
			gp.Glyph = pi.Start + max(pi.Len-1, 0)
			gp.After = true
			return gp, true
		}
	}
	gp.Glyph += max(info.Len-1, 0)
	gp.After = true
	return gp, true
}

// findGlyphPos returns the glyph edge nearest to x on line l. Each
// cluster is split at half its advance, the centre going to the leading
// edge.
func (e *TextEngine) findGlyphPos(p, l int, x float32) GlyphPos {
	para := e.paras[p]
	gp := GlyphPos{Paragraph: p, Line: l}
	if l >= para.LineCount() {
		return gp
	}
	glyphs := para.Line(l).Glyphs
	x -= e.LineOffset(p, l)

	var left, adv float32
	start := 0
	for i, g := range glyphs {
		if g.Map == glyphs[start].Map {
			adv += g.Glyph.AdvanceX
			continue
		}
		if x < left+adv {
			gp.Glyph, gp.After = start, x > left+adv/2
			return gp
		}
		left += adv
		start, adv = i, g.Glyph.AdvanceX
	}
	gp.Glyph, gp.After = start, x > left+adv/2
	return gp
}

// cursorX returns the x coordinate of a glyph edge.
func (e *TextEngine) cursorX(gp GlyphPos) float32 {
	para := e.paras[gp.Paragraph]
	x := e.LineOffset(gp.Paragraph, gp.Line)
	if gp.Line >= para.LineCount() {
		return x
	}
	n := gp.Glyph
	if gp.After {
		n++
	}
	return x + para.Line(gp.Line).Advance(n)
}

// lineTop returns the y coordinate of the top of line l of paragraph p.
func (e *TextEngine) lineTop(p, l int, lh float32) float32 {
	n := l
	for _, para := range e.paras[:p] {
		n += max(para.LineCount(), 1)
	}
	return float32(n) * lh
}

// lastLine returns the index of the last line of p, 0 for an empty one.
func lastLine(p *layout.Paragraph) int {
	return max(p.LineCount()-1, 0)
}
