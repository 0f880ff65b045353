// Package linebreak finds UAX #14 line break opportunities.
package linebreak

import (
	"iter"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Break is a position where a line may, or must, end.
type Break struct {
	// Pos is the codepoint index the next line would start at.
	Pos int
	// Required is set after a hard line break character.
	Required bool
}

// Breaks yields the break opportunities of text in increasing order.
// The end of text is always yielded; empty text yields a single Break{}.
func Breaks(text []rune) iter.Seq[Break] {
	return func(yield func(Break) bool) {
		if len(text) == 0 {
			yield(Break{})
			return
		}

		rest := string(text)
		state := -1
		pos := 0
		for len(rest) > 0 {
			var segment string
			var must bool
			segment, rest, must, state = uniseg.FirstLineSegmentInString(rest, state)
			pos += utf8.RuneCountInString(segment)
			last, _ := utf8.DecodeLastRuneInString(segment)
			if !yield(Break{Pos: pos, Required: must && IsHardBreak(last)}) {
				return
			}
		}
	}
}

// IsHardBreak reports whether r ends a paragraph.
func IsHardBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
