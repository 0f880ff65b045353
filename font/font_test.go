package font_test

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textengine/font"
)

func TestParseGoRegular(t *testing.T) {
	f, err := font.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if f.Name() == "" {
		t.Error("Name() is empty")
	}
	if f.NumGlyphs() == 0 {
		t.Error("NumGlyphs() = 0")
	}
	if f.HasColorTables() {
		t.Error("Go Regular reported color tables")
	}

	id := f.GlyphIndex('A')
	if id == 0 {
		t.Fatal("GlyphIndex('A') = 0")
	}
	if adv := f.GlyphAdvance(id, 16); adv <= 0 {
		t.Errorf("GlyphAdvance = %v, want > 0", adv)
	}
	if b := f.GlyphBounds(id, 16); b.MinY >= 0 || b.MaxX <= b.MinX {
		t.Errorf("GlyphBounds = %+v, want ink above the baseline", b)
	}

	m := f.Metrics(16)
	if m.Ascent <= 0 || m.Descent <= 0 || m.Height <= 0 || m.MaxAdvance <= 0 {
		t.Errorf("Metrics = %+v, want all positive", m)
	}
	if f.ShapingFace() == nil {
		t.Error("ShapingFace() = nil")
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := font.Parse(nil); !errors.Is(err, font.ErrEmptyFontData) {
		t.Errorf("Parse(nil) = %v, want ErrEmptyFontData", err)
	}
	if _, err := font.Parse([]byte("not a font")); err == nil {
		t.Error("Parse(garbage) succeeded")
	}
	if _, err := font.Load("testdata/does-not-exist.ttf"); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestPixelTypeString(t *testing.T) {
	tests := []struct {
		p    font.PixelType
		want string
	}{
		{font.PixelGray, "Gray"},
		{font.PixelBGRA, "BGRA"},
		{font.PixelSDF, "SDF"},
		{font.PixelType(9), "PixelType(9)"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
