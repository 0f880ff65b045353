package layout

import (
	"github.com/gogpu/textengine/bidi"
	"github.com/gogpu/textengine/font"
	"github.com/gogpu/textengine/shape"
)

// segment is a single-direction, single-font range of a paragraph.
// Pieces of a segment split during wrapping share its index.
type segment struct {
	index      int
	start, end int
	rtl        bool
	script     shape.Script
	face       font.Face
}

// digits marks the run of ASCII digits; no real script has code 0.
const digits = shape.Script(0)

// splitRun splits a bidi run where the script changes. Neutral codepoints
// join the segment in progress, and digits form segments of their own.
// Each segment takes the first font covering its first non-neutral
// codepoint.
func splitRun(text []rune, run bidi.Run, fonts *font.Collection, index *int) []segment {
	var segs []segment

	start, probe := run.Offset, -1
	cur := shape.Common
	flush := func(end int) {
		if end <= start {
			return
		}
		p := probe
		if p < 0 {
			p = start
		}
		script := cur
		if script == digits {
			script = shape.Common
		}
		*index++
		segs = append(segs, segment{
			index:  *index,
			start:  start,
			end:    end,
			rtl:    run.RTL(),
			script: script,
			face:   fonts.FaceFor(text[p]),
		})
		start, probe, cur = end, -1, shape.Common
	}

	for i := run.Offset; i < run.End(); i++ {
		r := text[i]
		s := shape.ScriptOf(r)
		if shape.IsDigit(r) {
			s = digits
		} else if shape.IsNeutral(s) {
			continue
		}
		switch {
		case probe < 0:
			cur, probe = s, i
		case s != cur:
			flush(i)
			cur, probe = s, i
		}
	}
	flush(run.End())
	return segs
}
