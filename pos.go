package textengine

import (
	"cmp"
	"fmt"
)

// CPPos is a logical caret position: the gap before codepoint CP of
// paragraph Paragraph. CP may equal the paragraph length.
//
// EOL marks the caret on the trailing edge of codepoint CP, the last one of
// a wrapped visual line, rather than at the start of the next line.
type CPPos struct {
	Paragraph int
	CP        int
	EOL       bool
}

// Compare orders positions by paragraph, then codepoint. At equal
// codepoints an EOL position sorts first.
func (p CPPos) Compare(q CPPos) int {
	if c := cmp.Compare(p.Paragraph, q.Paragraph); c != 0 {
		return c
	}
	if c := cmp.Compare(p.CP, q.CP); c != 0 {
		return c
	}
	switch {
	case p.EOL == q.EOL:
		return 0
	case p.EOL:
		return -1
	}
	return 1
}

// Less reports whether p is before q.
func (p CPPos) Less(q CPPos) bool {
	return p.Compare(q) < 0
}

func (p CPPos) String() string {
	if p.EOL {
		return fmt.Sprintf("%d:%d$", p.Paragraph, p.CP)
	}
	return fmt.Sprintf("%d:%d", p.Paragraph, p.CP)
}

// GlyphPos is a visual caret position: the left edge of a glyph, or its
// right edge when After is set. Glyph may equal the line's glyph count,
// meaning the end of the line.
type GlyphPos struct {
	Paragraph int
	Line      int
	Glyph     int
	After     bool
}

func (g GlyphPos) String() string {
	edge := "<"
	if g.After {
		edge = ">"
	}
	return fmt.Sprintf("%d/%d/%d%s", g.Paragraph, g.Line, g.Glyph, edge)
}
