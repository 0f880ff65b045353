// Package shape converts runs of codepoints into positioned glyphs.
//
// Shapers always return glyphs in logical order, so callers can walk a
// run's glyphs alongside its text regardless of direction. Right-to-left
// runs are reversed by the caller when they are placed on a line.
package shape

import "github.com/gogpu/textengine/font"

// Input describes one single-font, single-direction run.
type Input struct {
	// Text is the whole paragraph. Cluster indices refer to it.
	Text []rune
	// Start and End delimit the run within Text.
	Start, End int
	RTL        bool
	Script     Script
	Face       font.Face
	// Size is the pixel size to shape at.
	Size float32
}

// Glyph is a shaped glyph.
type Glyph struct {
	ID font.GlyphID
	// Cluster is the index into Input.Text of the first codepoint of the
	// glyph's cluster.
	Cluster  int
	AdvanceX float32
	AdvanceY float32
	OffsetX  float32
	OffsetY  float32
	// UnsafeToBreak is set when breaking text immediately before this
	// glyph and shaping the halves separately would change the result.
	UnsafeToBreak bool
}

// Shaper shapes runs.
//
// An empty result for non-empty input means the run could not be shaped.
type Shaper interface {
	Shape(in Input) []Glyph
}

// markUnsafe flags every glyph that continues the cluster of the glyph
// logically before it. glyphs must be in logical order.
func markUnsafe(glyphs []Glyph) {
	for i := 1; i < len(glyphs); i++ {
		glyphs[i].UnsafeToBreak = glyphs[i].Cluster == glyphs[i-1].Cluster
	}
}

func clampCluster(c int, in Input) int {
	return min(max(c, in.Start), in.End-1)
}
