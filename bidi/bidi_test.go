package bidi

import (
	"reflect"
	"slices"
	"testing"

	xbidi "golang.org/x/text/unicode/bidi"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		text string
		base Direction
		want Line
	}{
		{
			name: "empty",
			text: "",
			want: Line{},
		},
		{
			name: "latin",
			text: "hello",
			want: Line{Runs: []Run{{Level: 0, Offset: 0, Length: 5}}},
		},
		{
			name: "arabic in latin",
			text: "AB مفتاح CD",
			want: Line{Runs: []Run{
				{Level: 0, Offset: 0, Length: 3},
				{Level: 1, Offset: 3, Length: 5},
				{Level: 0, Offset: 8, Length: 3},
			}},
		},
		{
			name: "latin in arabic",
			text: "مفتاح AB",
			want: Line{BaseLevel: 1, Runs: []Run{
				{Level: 2, Offset: 6, Length: 2},
				{Level: 1, Offset: 0, Length: 6},
			}},
		},
		{
			name: "numbers inside arabic",
			text: "AB مفتاح 123 شسي CD",
			want: Line{Runs: []Run{
				{Level: 0, Offset: 0, Length: 3},
				{Level: 1, Offset: 12, Length: 4},
				{Level: 2, Offset: 9, Length: 3},
				{Level: 1, Offset: 3, Length: 6},
				{Level: 0, Offset: 16, Length: 3},
			}},
		},
		{
			name: "numbers after arabic in rtl",
			text: "مرحبا 123",
			want: Line{BaseLevel: 1, Runs: []Run{
				{Level: 2, Offset: 6, Length: 3},
				{Level: 1, Offset: 0, Length: 6},
			}},
		},
		{
			name: "numbers after latin",
			text: "مفتاح ab 12",
			want: Line{BaseLevel: 1, Runs: []Run{
				{Level: 2, Offset: 6, Length: 5},
				{Level: 1, Offset: 0, Length: 6},
			}},
		},
		{
			name: "neutral default rtl",
			text: "...",
			base: DefaultRTL,
			want: Line{BaseLevel: 1, Runs: []Run{{Level: 1, Offset: 0, Length: 3}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve([]rune(tt.text), tt.base)
			if got.BaseLevel != tt.want.BaseLevel {
				t.Errorf("BaseLevel = %d, want %d", got.BaseLevel, tt.want.BaseLevel)
			}
			if len(got.Runs) != len(tt.want.Runs) || (len(got.Runs) > 0 && !reflect.DeepEqual(got.Runs, tt.want.Runs)) {
				t.Errorf("Runs = %+v, want %+v", got.Runs, tt.want.Runs)
			}
		})
	}
}

func TestResolveCoversText(t *testing.T) {
	texts := []string{
		"one two three",
		"abc אבג def",
		"١٢٣ abc مفتاح 42",
		"x",
	}
	for _, s := range texts {
		text := []rune(s)
		line := Resolve(text, DefaultLTR)

		seen := make([]bool, len(text))
		for _, r := range line.Runs {
			if r.Length <= 0 {
				t.Errorf("%q: empty run %+v", s, r)
			}
			for i := r.Offset; i < r.End(); i++ {
				if seen[i] {
					t.Errorf("%q: codepoint %d covered twice", s, i)
				}
				seen[i] = true
			}
		}
		for i, ok := range seen {
			if !ok {
				t.Errorf("%q: codepoint %d not covered", s, i)
			}
		}
	}
}

func TestParagraphLevel(t *testing.T) {
	tests := []struct {
		text string
		base Direction
		want uint8
	}{
		{"abc", DefaultRTL, 0},
		{"123 مفتاح", DefaultLTR, 1},
		{"123", DefaultLTR, 0},
		{"123", DefaultRTL, 1},
		{"abc", RTL, 1},
	}
	for _, tt := range tests {
		if got := paragraphLevel([]rune(tt.text), tt.base); got != tt.want {
			t.Errorf("paragraphLevel(%q, %d) = %d, want %d", tt.text, tt.base, got, tt.want)
		}
	}
}

func TestReorder(t *testing.T) {
	runs := []Run{
		{Level: 0, Offset: 0},
		{Level: 1, Offset: 1},
		{Level: 2, Offset: 2},
		{Level: 1, Offset: 3},
		{Level: 0, Offset: 4},
	}
	reorder(runs)

	want := []int{0, 3, 2, 1, 4}
	for i, r := range runs {
		if r.Offset != want[i] {
			t.Fatalf("visual order = %+v, want offsets %v", runs, want)
		}
	}
}

func TestResolveLevels(t *testing.T) {
	tests := []struct {
		name string
		text string
		base uint8
		want []uint8
	}{
		{"european number after arabic", "مف 12", 0, []uint8{1, 1, 1, 2, 2}},
		{"european number after latin", "ab 12", 0, []uint8{0, 0, 0, 0, 0}},
		{"separator between numbers", "م 1,2", 0, []uint8{1, 1, 2, 2, 2}},
		{"trailing whitespace", "مف  ", 0, []uint8{1, 1, 0, 0}},
		{"latin in rtl", "م ab", 1, []uint8{1, 1, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := []rune(tt.text)
			classes := make([]xbidi.Class, len(text))
			for i, r := range text {
				props, _ := xbidi.LookupRune(r)
				classes[i] = props.Class()
			}
			if got := resolveLevels(classes, tt.base); !slices.Equal(got, tt.want) {
				t.Errorf("levels = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveExplicitFallsBack(t *testing.T) {
	text := []rune("ab \u202Bcd\u202C ef")
	if _, ok := implicitRuns(text, 0); ok {
		t.Fatal("implicitRuns accepted explicit embedding characters")
	}
	line := Resolve(text, DefaultLTR)
	n := 0
	for _, r := range line.Runs {
		n += r.Length
	}
	if n != len(text) {
		t.Errorf("runs cover %d codepoints, want %d", n, len(text))
	}
}
