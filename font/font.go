package font

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	gotext "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font is an OpenType or TrueType font.
//
// Glyph queries go through golang.org/x/image/font/sfnt. The same data is
// parsed by go-text/typesetting for shaping. Font is safe for concurrent use.
type Font struct {
	name    string
	sfnt    *opentype.Font
	shaping *gotext.Font
	color   bool
}

// Parse parses TTF, OTF or TTC (first face) data.
// The data is not retained after parsing.
func Parse(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: failed to load font for shaping: %w", err)
	}

	f := &Font{
		sfnt:    sf,
		shaping: face.Font,
		color:   hasColorTables(data),
	}
	if name, err := sf.Name(nil, sfnt.NameIDFamily); err == nil {
		f.name = name
	}
	return f, nil
}

// Load reads and parses a font file.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Name implements Face.
func (f *Font) Name() string {
	return f.name
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.sfnt.NumGlyphs()
}

// HasColorTables reports whether the font has CBDT, sbix, COLR or SVG
// glyph tables.
func (f *Font) HasColorTables() bool {
	return f.color
}

// ShapingFace returns a fresh go-text face for one shaping call.
// The returned face is not safe for concurrent use.
func (f *Font) ShapingFace() *gotext.Face {
	return gotext.NewFace(f.shaping)
}

// GlyphIndex implements Face.
func (f *Font) GlyphIndex(r rune) GlyphID {
	idx, err := f.sfnt.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// GlyphAdvance implements Face.
func (f *Font) GlyphAdvance(id GlyphID, ppem float32) float32 {
	var buf sfnt.Buffer
	adv, err := f.sfnt.GlyphAdvance(&buf, sfnt.GlyphIndex(id), toFixed(ppem), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(adv)
}

// GlyphBounds implements Face.
func (f *Font) GlyphBounds(id GlyphID, ppem float32) Rect {
	var buf sfnt.Buffer
	b, _, err := f.sfnt.GlyphBounds(&buf, sfnt.GlyphIndex(id), toFixed(ppem), xfont.HintingNone)
	if err != nil {
		return Rect{}
	}
	return Rect{
		MinX: fromFixed(b.Min.X),
		MinY: fromFixed(b.Min.Y),
		MaxX: fromFixed(b.Max.X),
		MaxY: fromFixed(b.Max.Y),
	}
}

// Metrics implements Face.
func (f *Font) Metrics(ppem float32) Metrics {
	var buf sfnt.Buffer
	m, err := f.sfnt.Metrics(&buf, toFixed(ppem), xfont.HintingNone)
	if err != nil {
		return Metrics{}
	}
	out := Metrics{
		Ascent:  fromFixed(m.Ascent),
		Descent: fromFixed(m.Descent),
		Height:  fromFixed(m.Height),
	}
	// sfnt does not expose hhea.advanceWidthMax; the font bounding box is
	// the closest available bound.
	if b, err := f.sfnt.Bounds(&buf, toFixed(ppem), xfont.HintingNone); err == nil {
		out.MaxAdvance = fromFixed(b.Max.X)
	}
	if out.MaxAdvance <= 0 {
		out.MaxAdvance = out.Height
	}
	return out
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// hasColorTables scans the sfnt table directory for color glyph tables.
// For collections only the first font is inspected.
func hasColorTables(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	off := 0
	if string(data[:4]) == "ttcf" {
		if len(data) < 16 {
			return false
		}
		off = int(binary.BigEndian.Uint32(data[12:16]))
	}
	if off < 0 || off+12 > len(data) {
		return false
	}

	n := int(binary.BigEndian.Uint16(data[off+4:]))
	for i := range n {
		rec := off + 12 + 16*i
		if rec+16 > len(data) {
			break
		}
		switch string(data[rec : rec+4]) {
		case "CBDT", "sbix", "COLR", "SVG ":
			return true
		}
	}
	return false
}
