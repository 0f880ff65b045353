package shape

import (
	"slices"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textengine/font"
)

// HarfbuzzShaper shapes with go-text/typesetting's HarfBuzz port.
//
// Faces that are not *font.Font carry no OpenType tables to shape with;
// they go through Fallback, or BuiltinShaper when Fallback is nil.
//
// HarfbuzzShaper is safe for concurrent use. The zero value is ready to use.
type HarfbuzzShaper struct {
	Fallback Shaper

	// HarfbuzzShaper instances keep scratch buffers and are not
	// concurrent-safe, so they are pooled.
	pool sync.Pool
}

// NewHarfbuzzShaper returns a shaper with the builtin fallback.
func NewHarfbuzzShaper() *HarfbuzzShaper {
	return &HarfbuzzShaper{Fallback: BuiltinShaper{}}
}

// Shape implements Shaper.
func (s *HarfbuzzShaper) Shape(in Input) []Glyph {
	if in.Start >= in.End || in.End > len(in.Text) || in.Start < 0 {
		return nil
	}
	f, ok := in.Face.(*font.Font)
	if !ok {
		if s.Fallback != nil {
			return s.Fallback.Shape(in)
		}
		return BuiltinShaper{}.Shape(in)
	}

	dir := di.DirectionLTR
	if in.RTL {
		dir = di.DirectionRTL
	}
	input := shaping.Input{
		Text:      in.Text,
		RunStart:  in.Start,
		RunEnd:    in.End,
		Direction: dir,
		Face:      f.ShapingFace(),
		Size:      fixed.Int26_6(in.Size * 64),
		Script:    language.Script(in.Script),
		Language:  language.NewLanguage("en"),
	}

	hb, _ := s.pool.Get().(*shaping.HarfbuzzShaper)
	if hb == nil {
		hb = &shaping.HarfbuzzShaper{}
	}
	output := hb.Shape(input)
	s.pool.Put(hb)

	return convertGlyphs(output.Glyphs, in)
}

// convertGlyphs converts go-text output, which is in visual order, into
// logical-order glyphs.
func convertGlyphs(glyphs []shaping.Glyph, in Input) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}

	out := make([]Glyph, len(glyphs))
	for i, g := range glyphs {
		out[i] = Glyph{
			ID:       font.GlyphID(g.GlyphID),
			Cluster:  clampCluster(g.TextIndex(), in),
			AdvanceX: fromFixed(g.Advance),
			OffsetX:  fromFixed(g.XOffset),
			OffsetY:  fromFixed(g.YOffset),
		}
	}
	if in.RTL {
		slices.Reverse(out)
	}
	markUnsafe(out)
	return out
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
