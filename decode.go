package textengine

import (
	"unicode/utf8"

	"github.com/gogpu/textengine/linebreak"
)

// decode converts UTF-8 text to codepoints, dropping invalid bytes.
func decode(text string) []rune {
	out := make([]rune, 0, utf8.RuneCountInString(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if r == utf8.RuneError && size <= 1 {
			continue
		}
		out = append(out, r)
	}
	return out
}

// splitParagraphs splits text at hard line breaks and drops the break
// characters. Text ending in a hard break yields a trailing empty
// paragraph, so the result always has one more element than there are
// breaks.
func splitParagraphs(text []rune) [][]rune {
	var out [][]rune
	start := 0
	for br := range linebreak.Breaks(text) {
		if !br.Required {
			continue
		}
		end := br.Pos - 1
		if end > start && text[end] == '\n' && text[end-1] == '\r' {
			end--
		}
		out = append(out, text[start:end])
		start = br.Pos
	}
	return append(out, text[start:])
}
