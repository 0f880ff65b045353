package layout

import (
	"errors"
	"log/slog"

	"github.com/gogpu/textengine/font"
	"github.com/gogpu/textengine/shape"
)

// SolveLayout shapes the paragraph and wraps it into lines.
//
// SolveBidi must have run since the last edit. A paragraph whose runs or
// shaping results are unusable is left with a single empty line.
func (p *Paragraph) SolveLayout() {
	p.ClearLines()
	if len(p.cps) == 0 {
		return
	}

	w := &wrapper{
		p:      p,
		text:   p.Runes(0, len(p.cps)),
		fonts:  p.env.Fonts,
		shaper: p.env.shaper(),
		wrap:   p.env.WrapWidth,
	}
	if w.fonts == nil {
		w.fonts = font.NewCollection()
	}
	w.size = w.fonts.PixelHeight()

	if err := w.layout(); err != nil {
		p.env.logger().Warn("textengine: paragraph layout degraded",
			"err", err, "codepoints", len(p.cps))
		p.ClearLines()
		p.lines = []*TextLine{{}}
	}
}

// wrapper carries the state of one SolveLayout pass.
type wrapper struct {
	p      *Paragraph
	text   []rune
	fonts  *font.Collection
	shaper shape.Shaper
	size   float32
	wrap   float32
	index  int
}

// resolved is a shaped glyph with its final metrics, in logical order.
type resolved struct {
	cluster int
	unsafe  bool
	m       font.GlyphMetrics
}

var (
	errNoRuns   = errors.New("layout: no bidi runs")
	errRunRange = errors.New("layout: bidi run out of range")
	errNoGlyphs = errors.New("layout: shaper returned no glyphs")
)

func (w *wrapper) layout() error {
	runs := w.p.bidi.Runs
	if len(runs) == 0 {
		return errNoRuns
	}
	w.newLine()

	for _, run := range runs {
		if run.Offset < 0 || run.End() > len(w.text) {
			return errRunRange
		}
		pending := splitRun(w.text, run, w.fonts, &w.index)
		for len(pending) > 0 {
			seg := pending[0]
			pending = pending[1:]

			glyphs := w.resolve(seg)
			if len(glyphs) == 0 {
				return errNoGlyphs
			}
			pending = w.place(seg, glyphs, pending)
		}
	}
	return nil
}

// resolve shapes seg and looks up the metrics of every glyph. Glyphs the
// segment's font lacks fall back to later fonts, then to the dummy glyph.
func (w *wrapper) resolve(seg segment) []resolved {
	if seg.face == nil {
		w.log().Debug("textengine: no font covers segment",
			"start", seg.start, "end", seg.end)
		d := w.fonts.DummyGlyph()
		out := make([]resolved, 0, seg.end-seg.start)
		for i := seg.start; i < seg.end; i++ {
			out = append(out, resolved{cluster: i, m: d})
		}
		return out
	}

	glyphs := w.shaper.Shape(shape.Input{
		Text:   w.text,
		Start:  seg.start,
		End:    seg.end,
		RTL:    seg.rtl,
		Script: seg.script,
		Face:   seg.face,
		Size:   w.size,
	})

	out := make([]resolved, len(glyphs))
	for i, g := range glyphs {
		c := min(max(g.Cluster, seg.start), seg.end-1)
		out[i] = resolved{
			cluster: c,
			unsafe:  g.UnsafeToBreak || (i > 0 && c == out[i-1].cluster),
			m:       w.metrics(g, seg.face, c),
		}
	}
	return out
}

func (w *wrapper) metrics(g shape.Glyph, face font.Face, cluster int) font.GlyphMetrics {
	if m, ok := w.fonts.Glyph(g.ID, face); ok {
		m.AdvanceX = g.AdvanceX
		m.AdvanceY = g.AdvanceY
		m.OffsetX += g.OffsetX
		m.OffsetY += g.OffsetY
		return m
	}
	if id, f := w.fonts.Fallback(w.text[cluster], face); f != nil {
		if m, ok := w.fonts.Glyph(id, f); ok {
			return m
		}
	}
	return w.fonts.DummyGlyph()
}

// place wraps the glyphs of seg onto lines and returns the remaining
// work. A segment that cannot be broken safely is split in two and both
// halves are queued for reshaping.
//
// The next pending segment is a continuation of seg when they share an
// index. In that case seg ends its line, and a break inside seg moves the
// rest of seg into the continuation rather than placing it here.
func (w *wrapper) place(seg segment, gs []resolved, pending []segment) []segment {
	continued := len(pending) > 0 && pending[0].index == seg.index

	lb, k := 0, 0
	var width float32
	for k < len(gs) {
		adv := gs[k].m.AdvanceX
		line := w.line()
		if w.wrap <= 0 || line.Width+width+adv <= w.wrap || hangs(w.text[gs[k].cluster]) {
			width += adv
			k++
			continue
		}

		bk := k
		for bk > lb && !w.breakable(gs[bk]) {
			bk--
		}
		if bk == lb {
			if len(line.Glyphs) > 0 {
				// No opportunity inside seg: move all of it to a new line.
				w.newLine()
				k, width = lb, 0
				continue
			}
			// Emergency break on an empty line. At least one cluster
			// goes on every line.
			k = max(k, lb+1)
			if k < len(gs) && gs[k].unsafe {
				if cut := gs[k].cluster; cut > gs[lb].cluster {
					w.log().Debug("textengine: split unsafe segment",
						"start", gs[lb].cluster, "cut", cut)
					return w.split(seg, gs[lb].cluster, cut, continued, pending)
				}
			}
			bk = k
			for bk < len(gs) && gs[bk].unsafe {
				bk++
			}
			w.log().Debug("textengine: emergency break",
				"line", line.Index, "at", gs[min(bk, len(gs)-1)].cluster)
		}

		w.commit(gs[lb:bk], seg.rtl)
		if bk == len(gs) && !continued {
			return pending
		}
		w.newLine()
		if continued {
			if bk < len(gs) {
				pending[0].start = gs[bk].cluster
			}
			return pending
		}
		lb, k, width = bk, bk, 0
	}

	w.commit(gs[lb:], seg.rtl)
	if continued {
		w.newLine()
	}
	return pending
}

// split queues seg as [from, cut) followed by [cut, end). When seg already
// has a continuation the tail is merged into it.
func (w *wrapper) split(seg segment, from, cut int, continued bool, pending []segment) []segment {
	head := seg
	head.start, head.end = from, cut
	if continued {
		pending[0].start = cut
		return append([]segment{head}, pending...)
	}
	tail := seg
	tail.start = cut
	return append([]segment{head, tail}, pending...)
}

func (w *wrapper) log() *slog.Logger {
	return w.p.env.logger()
}

func (w *wrapper) breakable(g resolved) bool {
	return !g.unsafe && w.p.cps[g.cluster].CanBreak()
}

func (w *wrapper) line() *TextLine {
	return w.p.lines[len(w.p.lines)-1]
}

func (w *wrapper) newLine() {
	w.p.lines = append(w.p.lines, &TextLine{Index: len(w.p.lines)})
}

// commit appends logical-order glyphs to the current line in visual order
// and maps their clusters.
func (w *wrapper) commit(gs []resolved, rtl bool) {
	if len(gs) == 0 {
		return
	}
	line := w.line()
	begin := len(line.Glyphs)
	for i := range gs {
		g := gs[i]
		if rtl {
			g = gs[len(gs)-1-i]
		}
		line.Glyphs = append(line.Glyphs, MappedGlyph{Map: g.cluster, Glyph: g.m, LTR: !rtl})
		line.Width += g.m.AdvanceX
	}
	w.mapClusters(line, begin)
}

// mapClusters records, for each cluster among line.Glyphs[begin:], where
// its glyphs are.
func (w *wrapper) mapClusters(line *TextLine, begin int) {
	glyphs := line.Glyphs
	for i := begin; i < len(glyphs); {
		j := i + 1
		for j < len(glyphs) && glyphs[j].Map == glyphs[i].Map {
			j++
		}
		cp := &w.p.cps[glyphs[i].Map]
		cp.Line, cp.Start, cp.Len = line.Index, i, j-i
		cp.Flags |= FlagMapped
		if glyphs[i].LTR {
			cp.Flags &^= FlagRTL
		} else {
			cp.Flags |= FlagRTL
		}
		i = j
	}
}

// hangs reports whether r may extend past the wrap width at line end.
func hangs(r rune) bool {
	return r == ' ' || r == '\t' || r == '\u3000'
}
