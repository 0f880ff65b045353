package textengine

import (
	"log/slog"
	"strings"

	"github.com/gogpu/textengine/font"
	"github.com/gogpu/textengine/layout"
	"github.com/gogpu/textengine/shape"
)

// TextEngine is an editable, laid out document.
type TextEngine struct {
	env   *layout.Env
	paras []*layout.Paragraph
	align Alignment
	log   *slog.Logger
}

// New creates an empty document that lays out text with fonts.
// A nil collection is replaced by an empty one, which draws every
// codepoint as the dummy glyph.
func New(fonts *font.Collection, opts ...Option) *TextEngine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if fonts == nil {
		fonts = font.NewCollection()
	}
	if o.shaper == nil {
		o.shaper = shape.NewHarfbuzzShaper()
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	return &TextEngine{
		env: &layout.Env{
			Fonts:     fonts,
			Shaper:    o.shaper,
			Direction: o.direction,
			WrapWidth: o.wrap,
			Logger:    o.logger,
		},
		align: o.align,
		log:   o.logger,
	}
}

// Fonts returns the font collection. After changing it, call Relayout.
func (e *TextEngine) Fonts() *font.Collection {
	return e.env.Fonts
}

// ParagraphCount returns the number of paragraphs.
func (e *TextEngine) ParagraphCount() int {
	return len(e.paras)
}

// Paragraph returns paragraph i for drawing. It must not be edited.
func (e *TextEngine) Paragraph(i int) *layout.Paragraph {
	return e.paras[i]
}

// Text returns the document with paragraphs separated by '\n'.
func (e *TextEngine) Text() string {
	var sb strings.Builder
	for i, p := range e.paras {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(p.Text())
	}
	return sb.String()
}

// End returns the position after the last codepoint.
func (e *TextEngine) End() CPPos {
	if len(e.paras) == 0 {
		return CPPos{}
	}
	last := len(e.paras) - 1
	return CPPos{Paragraph: last, CP: e.paras[last].Len()}
}

// WrapWidth returns the line width, 0 when wrapping is off.
func (e *TextEngine) WrapWidth() float32 {
	return e.env.WrapWidth
}

// SetWrapWidth changes the line width and relayouts every paragraph.
func (e *TextEngine) SetWrapWidth(w float32) {
	w = max(w, 0)
	if w == e.env.WrapWidth {
		return
	}
	e.env.WrapWidth = w
	e.Relayout()
}

// Alignment returns the line alignment.
func (e *TextEngine) Alignment() Alignment {
	return e.align
}

// SetAlignment changes the line alignment. Layout is unaffected.
func (e *TextEngine) SetAlignment(a Alignment) {
	e.align = a
}

// Relayout lays out every paragraph again, for example after the font
// collection changed.
func (e *TextEngine) Relayout() {
	for _, p := range e.paras {
		p.SolveLayout()
	}
	e.log.Debug("textengine: relayout", "paragraphs", len(e.paras), "wrap", e.env.WrapWidth)
}

// Height returns the height of the document with lines lh pixels tall.
func (e *TextEngine) Height(lh float32) float32 {
	n := 0
	for _, p := range e.paras {
		n += max(p.LineCount(), 1)
	}
	return float32(n) * lh
}

// Validate reports whether pos addresses a gap in the document.
// On an empty document only the zero position is valid.
func (e *TextEngine) Validate(pos CPPos) error {
	if len(e.paras) == 0 {
		if pos.Paragraph == 0 && pos.CP == 0 {
			return nil
		}
		if pos.Paragraph != 0 {
			return &PositionError{Pos: pos, Len: -1}
		}
		return &PositionError{Pos: pos, Paragraphs: 0, Len: 0}
	}
	if pos.Paragraph < 0 || pos.Paragraph >= len(e.paras) {
		return &PositionError{Pos: pos, Paragraphs: len(e.paras), Len: -1}
	}
	if n := e.paras[pos.Paragraph].Len(); pos.CP < 0 || pos.CP > n {
		return &PositionError{Pos: pos, Paragraphs: len(e.paras), Len: n}
	}
	return nil
}

func (e *TextEngine) mustValidate(pos CPPos) {
	if err := e.Validate(pos); err != nil {
		panic(err)
	}
}

func (e *TextEngine) newParagraph(text []rune) *layout.Paragraph {
	p := layout.NewParagraph(e.env, text)
	p.Solve()
	return p
}
