// Package bidi resolves the visual run order of a paragraph.
//
// Character classes come from golang.org/x/text/unicode/bidi. Implicit
// embedding levels (UAX #9 rules W1-W7, N1-N2, I1-I2) are resolved per
// codepoint; paragraphs with explicit embeddings or isolates use the run
// directions x/text reports. Resolve then reorders the runs visually
// (rule L2).
package bidi

import (
	"slices"

	xbidi "golang.org/x/text/unicode/bidi"
)

// Direction selects the paragraph embedding level.
type Direction uint8

const (
	// DefaultLTR takes the direction of the first strong character and
	// falls back to left-to-right.
	DefaultLTR Direction = iota
	// DefaultRTL takes the direction of the first strong character and
	// falls back to right-to-left.
	DefaultRTL
	// RTL forces a right-to-left paragraph.
	RTL
)

// Run is a maximal range of codepoints at one embedding level.
type Run struct {
	Level  uint8
	Offset int
	Length int
}

// RTL reports whether the run is right-to-left.
func (r Run) RTL() bool {
	return r.Level&1 == 1
}

// End returns the offset one past the run.
func (r Run) End() int {
	return r.Offset + r.Length
}

// Line is a resolved paragraph.
type Line struct {
	// BaseLevel is the paragraph embedding level, 0 or 1.
	BaseLevel uint8
	// Runs cover the paragraph in visual order, left to right.
	Runs []Run
}

// RTL reports whether the paragraph direction is right-to-left.
func (l Line) RTL() bool {
	return l.BaseLevel&1 == 1
}

// Resolve computes the visual runs of text.
//
// If the bidi algorithm fails or its runs do not tile text exactly, the
// whole paragraph becomes a single run at the base level.
func Resolve(text []rune, base Direction) Line {
	level := paragraphLevel(text, base)
	line := Line{BaseLevel: level}
	if len(text) == 0 {
		return line
	}

	runs, ok := implicitRuns(text, level)
	if !ok {
		runs, ok = logicalRuns(text, level)
	}
	if !ok {
		line.Runs = []Run{{Level: level, Offset: 0, Length: len(text)}}
		return line
	}
	reorder(runs)
	line.Runs = runs
	return line
}

func logicalRuns(text []rune, level uint8) ([]Run, bool) {
	dir := xbidi.LeftToRight
	if level == 1 {
		dir = xbidi.RightToLeft
	}

	var p xbidi.Paragraph
	if _, err := p.SetString(string(text), xbidi.DefaultDirection(dir)); err != nil {
		return nil, false
	}
	order, err := p.Order()
	if err != nil {
		return nil, false
	}

	runs := make([]Run, 0, order.NumRuns())
	next := 0
	for i := range order.NumRuns() {
		r := order.Run(i)
		start, end := r.Pos()
		if start != next || end < start {
			return nil, false
		}
		runs = append(runs, Run{
			Level:  runLevel(r.Direction(), level),
			Offset: start,
			Length: end - start + 1,
		})
		next = end + 1
	}
	return runs, next == len(text)
}

// runLevel maps a run direction to the lowest level consistent with the
// paragraph level.
func runLevel(d xbidi.Direction, base uint8) uint8 {
	switch {
	case d == xbidi.RightToLeft:
		return 1
	case base == 1:
		return 2
	default:
		return 0
	}
}

// reorder applies rule L2: from the highest level down to the lowest odd
// level, reverse every maximal sequence of runs at that level or higher.
func reorder(runs []Run) {
	var highest uint8
	lowestOdd := uint8(255)
	for _, r := range runs {
		highest = max(highest, r.Level)
		if r.Level&1 == 1 {
			lowestOdd = min(lowestOdd, r.Level)
		}
	}

	for lvl := highest; lvl >= lowestOdd && lvl > 0; lvl-- {
		for i := 0; i < len(runs); {
			if runs[i].Level < lvl {
				i++
				continue
			}
			j := i
			for j < len(runs) && runs[j].Level >= lvl {
				j++
			}
			slices.Reverse(runs[i:j])
			i = j
		}
	}
}

// paragraphLevel applies rules P2 and P3.
func paragraphLevel(text []rune, base Direction) uint8 {
	if base == RTL {
		return 1
	}
	for _, r := range text {
		props, _ := xbidi.LookupRune(r)
		switch props.Class() {
		case xbidi.L:
			return 0
		case xbidi.R, xbidi.AL:
			return 1
		}
	}
	if base == DefaultRTL {
		return 1
	}
	return 0
}
