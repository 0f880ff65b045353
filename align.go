package textengine

import "fmt"

// Alignment places lines horizontally within the wrap width.
type Alignment uint8

const (
	// AlignAuto aligns left-to-right paragraphs left and right-to-left
	// paragraphs right.
	AlignAuto Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignAuto:
		return "auto"
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Alignment(%d)", a)
	}
}

// LineOffset returns the x coordinate line l of paragraph p starts at.
// Without a wrap width every line starts at 0.
func (e *TextEngine) LineOffset(p, l int) float32 {
	if e.env.WrapWidth <= 0 {
		return 0
	}
	para := e.paras[p]
	var width float32
	if l < para.LineCount() {
		width = para.Line(l).Width
	}
	free := max(e.env.WrapWidth-width, 0)

	switch e.align {
	case AlignRight:
		return free
	case AlignCenter:
		return free / 2
	case AlignAuto:
		if para.RTL() {
			return free
		}
	}
	return 0
}
