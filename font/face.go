package font

import "fmt"

// GlyphID is a font-specific glyph index. 0 is the missing glyph.
type GlyphID uint32

// Rect is a glyph bounding box in pixels, y pointing down.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// Metrics holds font-wide vertical and horizontal extents in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the line.
	Ascent float32
	// Descent is the distance from the baseline to the bottom, positive.
	Descent float32
	// Height is the recommended line height.
	Height float32
	// MaxAdvance is the largest horizontal advance of any glyph.
	MaxAdvance float32
}

// Face is the font interface used by layout and shaping.
//
// *Font implements Face for OpenType data. Tests and synthetic fonts can
// provide their own.
type Face interface {
	// Name returns the family name, possibly empty.
	Name() string
	// GlyphIndex maps a codepoint to a glyph, 0 when unsupported.
	GlyphIndex(r rune) GlyphID
	// GlyphAdvance returns the horizontal advance at ppem pixels per em.
	GlyphAdvance(id GlyphID, ppem float32) float32
	// GlyphBounds returns the ink bounds at ppem pixels per em.
	GlyphBounds(id GlyphID, ppem float32) Rect
	// Metrics returns font-wide metrics at ppem pixels per em.
	Metrics(ppem float32) Metrics
}

// colorFace is implemented by faces that carry color glyph tables.
type colorFace interface {
	HasColorTables() bool
}

// PixelType is the pixel format a glyph renders to.
type PixelType uint8

const (
	// PixelGray is an 8-bit coverage mask.
	PixelGray PixelType = iota
	// PixelBGRA is premultiplied color, used by color fonts.
	PixelBGRA
	// PixelSDF is a signed distance field.
	PixelSDF
)

// String returns the pixel type name.
func (p PixelType) String() string {
	switch p {
	case PixelGray:
		return "Gray"
	case PixelBGRA:
		return "BGRA"
	case PixelSDF:
		return "SDF"
	default:
		return fmt.Sprintf("PixelType(%d)", p)
	}
}

// GlyphMetrics describes a resolved glyph.
//
// Face is nil for the dummy glyph.
type GlyphMetrics struct {
	ID       GlyphID
	Face     Face
	AdvanceX float32
	AdvanceY float32
	// OffsetX, OffsetY place the bitmap's top-left corner relative to the
	// pen position on the baseline. OffsetY grows upward.
	OffsetX float32
	OffsetY float32
	Pixel   PixelType
}

// IsDummy reports whether m is the placeholder for an uncovered codepoint.
func (m GlyphMetrics) IsDummy() bool {
	return m.Face == nil
}
