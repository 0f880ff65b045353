package layout

import (
	"slices"

	"github.com/gogpu/textengine/bidi"
	"github.com/gogpu/textengine/linebreak"
)

// Paragraph is a run of text without hard line breaks, with its layout.
//
// Edits do not update the layout; call Solve afterwards.
type Paragraph struct {
	env   *Env
	cps   []CPInfo
	lines []*TextLine
	bidi  bidi.Line
}

// NewParagraph creates a paragraph holding text. It is not laid out
// until Solve.
func NewParagraph(env *Env, text []rune) *Paragraph {
	p := &Paragraph{env: env}
	p.Append(text)
	return p
}

// Len returns the number of codepoints.
func (p *Paragraph) Len() int {
	return len(p.cps)
}

// CP returns the codepoint at i.
func (p *Paragraph) CP(i int) CPInfo {
	return p.cps[i]
}

// Runes returns a copy of the codepoints in [from, to).
func (p *Paragraph) Runes(from, to int) []rune {
	out := make([]rune, 0, to-from)
	for _, c := range p.cps[from:to] {
		out = append(out, c.Codepoint)
	}
	return out
}

// Text returns the paragraph text.
func (p *Paragraph) Text() string {
	return string(p.Runes(0, len(p.cps)))
}

// LineCount returns the number of laid out lines. It is 0 for an empty
// paragraph.
func (p *Paragraph) LineCount() int {
	return len(p.lines)
}

// Line returns line i.
func (p *Paragraph) Line(i int) *TextLine {
	return p.lines[i]
}

// Lines returns the laid out lines. The slice must not be modified.
func (p *Paragraph) Lines() []*TextLine {
	return p.lines
}

// Runs returns the visual bidi runs from the last SolveBidi.
func (p *Paragraph) Runs() []bidi.Run {
	return p.bidi.Runs
}

// RTL reports whether the paragraph base direction is right-to-left.
func (p *Paragraph) RTL() bool {
	return p.bidi.RTL()
}

// Insert inserts text before codepoint at.
func (p *Paragraph) Insert(at int, text []rune) {
	p.cps = slices.Insert(p.cps, at, toCPInfo(text)...)
}

// Append adds text at the end.
func (p *Paragraph) Append(text []rune) {
	p.cps = append(p.cps, toCPInfo(text)...)
}

// Delete removes the codepoints in [from, to).
func (p *Paragraph) Delete(from, to int) {
	p.cps = slices.Delete(p.cps, from, to)
}

// Truncate removes every codepoint from n on.
func (p *Paragraph) Truncate(n int) {
	clear(p.cps[n:])
	p.cps = p.cps[:n]
}

// Solve recomputes break opportunities, bidi runs and lines.
func (p *Paragraph) Solve() {
	p.SolveLineBreak()
	p.SolveBidi()
	p.SolveLayout()
}

// SolveLineBreak marks the codepoints a line may start at.
func (p *Paragraph) SolveLineBreak() {
	for i := range p.cps {
		p.cps[i].Flags &^= FlagCanBreak
	}
	for br := range linebreak.Breaks(p.Runes(0, len(p.cps))) {
		if br.Pos < len(p.cps) {
			p.cps[br.Pos].Flags |= FlagCanBreak
		}
	}
}

// SolveBidi resolves the visual runs.
func (p *Paragraph) SolveBidi() {
	p.bidi = bidi.Resolve(p.Runes(0, len(p.cps)), p.env.Direction)
}

// ClearLines drops the lines and every codepoint mapping.
func (p *Paragraph) ClearLines() {
	p.lines = nil
	for i := range p.cps {
		p.cps[i].Flags &^= FlagMapped | FlagRTL
		p.cps[i].Line, p.cps[i].Start, p.cps[i].Len = 0, 0, 0
	}
}

func toCPInfo(text []rune) []CPInfo {
	out := make([]CPInfo, len(text))
	for i, r := range text {
		out[i].Codepoint = r
	}
	return out
}
