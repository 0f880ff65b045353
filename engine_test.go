package textengine

import (
	"errors"
	"testing"

	"github.com/gogpu/textengine/font"
	"github.com/gogpu/textengine/internal/fonttest"
	"github.com/gogpu/textengine/shape"
)

// newTestEngine returns an engine over 10px monospace Latin and Arabic
// fonts, so every glyph is 10 pixels wide.
func newTestEngine(t *testing.T, opts ...Option) *TextEngine {
	t.Helper()
	fonts := font.NewCollection(font.WithPixelHeight(10))
	for _, f := range []font.Face{fonttest.Latin(10), fonttest.Arabic(10)} {
		if err := fonts.AddFont(f); err != nil {
			t.Fatal(err)
		}
	}
	return New(fonts, opts...)
}

func paragraphTexts(e *TextEngine) []string {
	out := make([]string, e.ParagraphCount())
	for i := range out {
		out[i] = e.Paragraph(i).Text()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAppend(t *testing.T) {
	e := newTestEngine(t)

	e.Append("")
	if e.ParagraphCount() != 0 {
		t.Fatalf("Append(\"\") created %d paragraphs", e.ParagraphCount())
	}

	e.Append("ab\ncd")
	if got, want := paragraphTexts(e), []string{"ab", "cd"}; !equalStrings(got, want) {
		t.Fatalf("paragraphs = %q, want %q", got, want)
	}

	e.Append("\n")
	e.Append("x")
	if got, want := paragraphTexts(e), []string{"ab", "cd", "x"}; !equalStrings(got, want) {
		t.Errorf("paragraphs = %q, want %q", got, want)
	}
	if got := e.Text(); got != "ab\ncd\nx" {
		t.Errorf("Text() = %q", got)
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		text    string
		at      CPPos
		want    []string
		wantPos CPPos
	}{
		{
			name:    "single paragraph",
			initial: "ab\ncd",
			text:    "X",
			at:      CPPos{Paragraph: 0, CP: 1},
			want:    []string{"aXb", "cd"},
			wantPos: CPPos{Paragraph: 0, CP: 2},
		},
		{
			name:    "several paragraphs",
			initial: "hello world",
			text:    "A\nB\nC",
			at:      CPPos{Paragraph: 0, CP: 5},
			want:    []string{"helloA", "B", "C world"},
			wantPos: CPPos{Paragraph: 2, CP: 1},
		},
		{
			name:    "newline",
			initial: "ab",
			text:    "\n",
			at:      CPPos{Paragraph: 0, CP: 1},
			want:    []string{"a", "b"},
			wantPos: CPPos{Paragraph: 1, CP: 0},
		},
		{
			name:    "crlf",
			initial: "ab",
			text:    "1\r\n2",
			at:      CPPos{Paragraph: 0, CP: 2},
			want:    []string{"ab1", "2"},
			wantPos: CPPos{Paragraph: 1, CP: 1},
		},
		{
			name:    "empty document",
			initial: "",
			text:    "hi",
			at:      CPPos{},
			want:    []string{"hi"},
			wantPos: CPPos{Paragraph: 0, CP: 2},
		},
		{
			name:    "past the last paragraph",
			initial: "hi",
			text:    "!\nok",
			at:      CPPos{Paragraph: 7},
			want:    []string{"hi!", "ok"},
			wantPos: CPPos{Paragraph: 1, CP: 2},
		},
		{
			name:    "nothing to insert",
			initial: "hi",
			text:    "\xff",
			at:      CPPos{Paragraph: 0, CP: 1},
			want:    []string{"hi"},
			wantPos: CPPos{Paragraph: 0, CP: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			e.Append(tt.initial)

			got := e.Insert(tt.text, tt.at)
			if got != tt.wantPos {
				t.Errorf("Insert returned %v, want %v", got, tt.wantPos)
			}
			if texts := paragraphTexts(e); !equalStrings(texts, tt.want) {
				t.Errorf("paragraphs = %q, want %q", texts, tt.want)
			}
		})
	}
}

func TestInsertAtEndOfLine(t *testing.T) {
	e := newTestEngine(t, WithWrapWidth(60))
	e.Append("hello world")

	got := e.Insert("X", CPPos{Paragraph: 0, CP: 5, EOL: true})
	if e.Text() != "hello Xworld" {
		t.Errorf("Text() = %q, want %q", e.Text(), "hello Xworld")
	}
	if want := (CPPos{Paragraph: 0, CP: 7}); got != want {
		t.Errorf("Insert returned %v, want %v", got, want)
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name string
		a, b CPPos
		want []string
	}{
		{"empty range", CPPos{0, 1, false}, CPPos{0, 1, false}, []string{"ab", "cd", "ef"}},
		{"within paragraph", CPPos{1, 0, false}, CPPos{1, 1, false}, []string{"ab", "d", "ef"}},
		{"reversed", CPPos{1, 1, false}, CPPos{1, 0, false}, []string{"ab", "d", "ef"}},
		{"join paragraphs", CPPos{0, 2, false}, CPPos{1, 0, false}, []string{"abcd", "ef"}},
		{"across paragraphs", CPPos{2, 1, false}, CPPos{0, 1, false}, []string{"af"}},
		{"everything", CPPos{0, 0, false}, CPPos{2, 2, false}, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			e.Append("ab\ncd\nef")

			e.Delete(tt.a, tt.b)
			if got := paragraphTexts(e); !equalStrings(got, tt.want) {
				t.Errorf("paragraphs = %q, want %q", got, tt.want)
			}
		})
	}
}

// countingShaper counts Shape calls.
type countingShaper struct{ calls int }

func (s *countingShaper) Shape(in shape.Input) []shape.Glyph {
	s.calls++
	return shape.BuiltinShaper{}.Shape(in)
}

func TestDeleteEmptyRangeKeepsLayout(t *testing.T) {
	s := &countingShaper{}
	e := newTestEngine(t, WithShaper(s))
	e.Append("ab\ncd")

	lines := e.Paragraph(0).Lines()
	calls := s.calls
	e.Delete(CPPos{Paragraph: 0, CP: 1}, CPPos{Paragraph: 0, CP: 1})

	if s.calls != calls {
		t.Errorf("empty Delete shaped %d times", s.calls-calls)
	}
	after := e.Paragraph(0).Lines()
	if len(after) != len(lines) {
		t.Fatalf("line count changed from %d to %d", len(lines), len(after))
	}
	for i := range lines {
		if after[i] != lines[i] {
			t.Errorf("line %d was rebuilt", i)
		}
	}
}

func TestInsertDeleteInverse(t *testing.T) {
	const initial = "one two\nthree\n\nfour"
	inserts := []string{"x", "a\nb", "\n", "مرحبا\n"}

	e := newTestEngine(t, WithWrapWidth(40))
	e.Append(initial)

	for pi := range e.ParagraphCount() {
		for cp := 0; cp <= e.Paragraph(pi).Len(); cp++ {
			for _, s := range inserts {
				at := CPPos{Paragraph: pi, CP: cp}
				end := e.Insert(s, at)
				e.Delete(at, end)
				if got := e.Text(); got != initial {
					t.Fatalf("Insert(%q, %v) then Delete: Text() = %q", s, at, got)
				}
			}
		}
	}
}

func TestReplace(t *testing.T) {
	e := newTestEngine(t)
	e.Append("hello world")

	got := e.Replace("there", CPPos{Paragraph: 0, CP: 11}, CPPos{Paragraph: 0, CP: 6})
	if e.Text() != "hello there" {
		t.Errorf("Text() = %q", e.Text())
	}
	if want := (CPPos{Paragraph: 0, CP: 11}); got != want {
		t.Errorf("Replace returned %v, want %v", got, want)
	}

	got = e.Replace("big ", CPPos{Paragraph: 0, CP: 6}, CPPos{Paragraph: 0, CP: 6})
	if e.Text() != "hello big there" || got != (CPPos{Paragraph: 0, CP: 10}) {
		t.Errorf("empty-range Replace: Text() = %q, pos %v", e.Text(), got)
	}

	got = e.Replace("\n", CPPos{Paragraph: 0, CP: 5}, CPPos{Paragraph: 0, CP: 10})
	if e.Text() != "hello\nthere" || got != (CPPos{Paragraph: 1, CP: 0}) {
		t.Errorf("Replace with newline: Text() = %q, pos %v", e.Text(), got)
	}
}

func TestReplaceEmptyRangePastEnd(t *testing.T) {
	e := newTestEngine(t)
	e.Append("ab")

	past := CPPos{Paragraph: 5}
	got := e.Replace("x", past, past)
	if e.Text() != "abx" {
		t.Errorf("Text() = %q, want %q", e.Text(), "abx")
	}
	if got != e.End() {
		t.Errorf("Replace returned %v, want %v", got, e.End())
	}
}

func TestClear(t *testing.T) {
	e := newTestEngine(t)
	e.Append("a\nb")
	e.Clear()

	if e.ParagraphCount() != 0 || e.Text() != "" || e.End() != (CPPos{}) {
		t.Error("Clear left text behind")
	}
}

func TestValidate(t *testing.T) {
	e := newTestEngine(t)
	if err := e.Validate(CPPos{}); err != nil {
		t.Errorf("Validate(zero) on empty document = %v", err)
	}
	if err := e.Validate(CPPos{CP: 1}); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("Validate({0,1}) on empty document = %v", err)
	}

	e.Append("ab\ncd")
	tests := []struct {
		pos CPPos
		ok  bool
	}{
		{CPPos{0, 0, false}, true},
		{CPPos{0, 2, false}, true},
		{CPPos{1, 2, false}, true},
		{CPPos{0, 3, false}, false},
		{CPPos{2, 0, false}, false},
		{CPPos{-1, 0, false}, false},
		{CPPos{0, -1, false}, false},
	}
	for _, tt := range tests {
		err := e.Validate(tt.pos)
		if (err == nil) != tt.ok {
			t.Errorf("Validate(%v) = %v, want ok=%v", tt.pos, err, tt.ok)
		}
		var pe *PositionError
		if err != nil && !errors.As(err, &pe) {
			t.Errorf("Validate(%v) returned %T, want *PositionError", tt.pos, err)
		}
	}
}

func TestDeletePanicsOutOfRange(t *testing.T) {
	e := newTestEngine(t)
	e.Append("abc")

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrPositionOutOfRange) {
			t.Errorf("recovered %v, want a position error", r)
		}
		if e.Text() != "abc" {
			t.Errorf("document changed to %q", e.Text())
		}
	}()
	e.Delete(CPPos{Paragraph: 0, CP: 1}, CPPos{Paragraph: 0, CP: 9})
}

func TestSetWrapWidthRelayouts(t *testing.T) {
	e := newTestEngine(t)
	e.Append("hello world")
	if n := e.Paragraph(0).LineCount(); n != 1 {
		t.Fatalf("LineCount() = %d, want 1", n)
	}

	e.SetWrapWidth(60)
	if n := e.Paragraph(0).LineCount(); n != 2 {
		t.Errorf("LineCount() after SetWrapWidth(60) = %d, want 2", n)
	}
	if e.WrapWidth() != 60 {
		t.Errorf("WrapWidth() = %v", e.WrapWidth())
	}
	if h := e.Height(20); h != 40 {
		t.Errorf("Height(20) = %v, want 40", h)
	}

	e.SetWrapWidth(0)
	if n := e.Paragraph(0).LineCount(); n != 1 {
		t.Errorf("LineCount() after SetWrapWidth(0) = %d, want 1", n)
	}
}

func TestNilCollectionUsesDummyGlyphs(t *testing.T) {
	e := New(nil)
	e.Append("abc")

	l := e.Paragraph(0).Line(0)
	if l.Len() != 3 || !l.Glyphs[0].Glyph.IsDummy() {
		t.Errorf("expected three dummy glyphs, got %+v", l.Glyphs)
	}
}
