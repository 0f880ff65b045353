package textengine

import (
	"slices"

	"github.com/gogpu/textengine/layout"
)

// Append adds text at the end of the document. Hard line breaks in text
// start new paragraphs.
func (e *TextEngine) Append(text string) {
	runes := decode(text)
	if len(runes) == 0 {
		return
	}
	e.appendParagraphs(splitParagraphs(runes))
}

func (e *TextEngine) appendParagraphs(pieces [][]rune) {
	if len(e.paras) == 0 {
		e.paras = append(e.paras, layout.NewParagraph(e.env, nil))
	}
	last := e.paras[len(e.paras)-1]
	last.Append(pieces[0])
	last.Solve()
	for _, piece := range pieces[1:] {
		e.paras = append(e.paras, e.newParagraph(piece))
	}
	e.log.Debug("textengine: append", "paragraphs", len(pieces))
}

// Insert inserts text at pos and returns the position just after it.
//
// A pos past the last paragraph appends to the document. Insert panics
// with a *PositionError if pos is otherwise out of range.
func (e *TextEngine) Insert(text string, pos CPPos) CPPos {
	if pos.Paragraph >= len(e.paras) && pos.Paragraph >= 0 {
		runes := decode(text)
		if len(runes) > 0 {
			e.appendParagraphs(splitParagraphs(runes))
		}
		return e.End()
	}
	e.mustValidate(pos)
	pos = e.resolveEOL(pos)

	runes := decode(text)
	if len(runes) == 0 {
		return pos
	}
	pieces := splitParagraphs(runes)
	p := e.paras[pos.Paragraph]

	if len(pieces) == 1 {
		p.Insert(pos.CP, pieces[0])
		p.Solve()
		return CPPos{Paragraph: pos.Paragraph, CP: pos.CP + len(pieces[0])}
	}

	tail := p.Runes(pos.CP, p.Len())
	p.Truncate(pos.CP)
	p.Append(pieces[0])
	p.Solve()

	added := make([]*layout.Paragraph, 0, len(pieces)-1)
	for _, piece := range pieces[1 : len(pieces)-1] {
		added = append(added, e.newParagraph(piece))
	}
	last := pieces[len(pieces)-1]
	lp := layout.NewParagraph(e.env, last)
	lp.Append(tail)
	lp.Solve()
	added = append(added, lp)

	e.paras = slices.Insert(e.paras, pos.Paragraph+1, added...)
	e.log.Debug("textengine: insert", "at", pos, "paragraphs", len(pieces))
	return CPPos{Paragraph: pos.Paragraph + len(added), CP: len(last)}
}

// Delete removes the text between a and b, in either order. Deleting
// across paragraphs joins the first and last of them.
//
// Delete panics with a *PositionError if a or b is out of range.
func (e *TextEngine) Delete(a, b CPPos) {
	e.mustValidate(a)
	e.mustValidate(b)
	a, b = e.resolveEOL(a), e.resolveEOL(b)
	if a.Compare(b) == 0 {
		return
	}
	if b.Less(a) {
		a, b = b, a
	}

	pa := e.paras[a.Paragraph]
	if a.Paragraph == b.Paragraph {
		pa.Delete(a.CP, b.CP)
		pa.Solve()
		return
	}

	pb := e.paras[b.Paragraph]
	pa.Truncate(a.CP)
	pa.Append(pb.Runes(b.CP, pb.Len()))
	pa.Solve()
	e.paras = slices.Delete(e.paras, a.Paragraph+1, b.Paragraph+1)
	e.log.Debug("textengine: delete", "from", a, "to", b)
}

// Replace replaces the text between a and b with text and returns the
// position just after the new text. An empty range is an Insert.
func (e *TextEngine) Replace(text string, a, b CPPos) CPPos {
	if a == b {
		return e.Insert(text, a)
	}
	e.mustValidate(a)
	e.mustValidate(b)
	a, b = e.resolveEOL(a), e.resolveEOL(b)
	if b.Less(a) {
		a, b = b, a
	}
	if a.Compare(b) != 0 {
		e.Delete(a, b)
	}
	return e.Insert(text, a)
}

// Clear removes every paragraph.
func (e *TextEngine) Clear() {
	clear(e.paras)
	e.paras = e.paras[:0]
}

// resolveEOL turns an end-of-line position into the logical position
// after the codepoint it follows.
func (e *TextEngine) resolveEOL(pos CPPos) CPPos {
	if !pos.EOL {
		return pos
	}
	pos.EOL = false
	return e.preNextMapped(pos, true)
}
