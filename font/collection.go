package font

import (
	"iter"
	"slices"
	"sync"

	"github.com/gogpu/textengine/internal/cache"
)

// Collection is an ordered list of fallback fonts.
//
// Earlier fonts take precedence. Faces are compared by identity, so Face
// implementations must be comparable, which pointer types are.
// Collection is safe for concurrent use.
type Collection struct {
	mu      sync.RWMutex
	entries []entry
	nextID  uint64
	px      float32
	sdf     bool
	max     Metrics
	glyphs  *cache.LRU[glyphKey, GlyphMetrics]
}

type entry struct {
	face Face
	id   uint64
}

type glyphKey struct {
	font uint64
	id   GlyphID
}

// NewCollection creates an empty collection.
func NewCollection(opts ...Option) *Collection {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &Collection{
		px:     cfg.pixelHeight,
		sdf:    cfg.sdf,
		glyphs: cache.New[glyphKey, GlyphMetrics](cfg.cacheLimit),
	}
	c.refreshLocked()
	return c
}

// AddFont appends f as the lowest-priority fallback.
func (c *Collection) AddFont(f Face) error {
	if f == nil {
		return ErrNilFace
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexLocked(f) >= 0 {
		return ErrDuplicateFace
	}
	c.nextID++
	c.entries = append(c.entries, entry{face: f, id: c.nextID})
	c.refreshLocked()
	return nil
}

// RemoveFont removes f and reports whether it was present.
func (c *Collection) RemoveFont(f Face) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(f)
	if i < 0 {
		return false
	}
	c.entries = slices.Delete(c.entries, i, i+1)
	c.glyphs.Clear()
	c.refreshLocked()
	return true
}

// Clear removes every font.
func (c *Collection) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
	c.glyphs.Clear()
	c.refreshLocked()
}

// MoveForward raises f one step in priority. It is a no-op for the first
// font and reports whether f was found.
func (c *Collection) MoveForward(f Face) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(f)
	if i < 0 {
		return false
	}
	if i > 0 {
		c.entries[i-1], c.entries[i] = c.entries[i], c.entries[i-1]
	}
	return true
}

// MoveBackward lowers f one step in priority. It is a no-op for the last
// font and reports whether f was found.
func (c *Collection) MoveBackward(f Face) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(f)
	if i < 0 {
		return false
	}
	if i < len(c.entries)-1 {
		c.entries[i+1], c.entries[i] = c.entries[i], c.entries[i+1]
	}
	return true
}

// Len returns the number of fonts.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Fonts returns the fonts in priority order.
func (c *Collection) Fonts() []Face {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Face, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.face
	}
	return out
}

// All iterates the fonts in priority order over a snapshot.
func (c *Collection) All() iter.Seq[Face] {
	fonts := c.Fonts()
	return slices.Values(fonts)
}

// First returns the highest-priority font, or nil.
func (c *Collection) First() Face {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.entries) == 0 {
		return nil
	}
	return c.entries[0].face
}

// Next returns the font after f, or nil when f is last or absent.
func (c *Collection) Next(f Face) Face {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexLocked(f)
	if i < 0 || i+1 >= len(c.entries) {
		return nil
	}
	return c.entries[i+1].face
}

// PixelHeight returns the pixel height glyphs are measured at.
func (c *Collection) PixelHeight() float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.px
}

// SetPixelHeight changes the measuring size and drops cached glyphs.
// Values <= 0 are ignored.
func (c *Collection) SetPixelHeight(px float32) {
	if px <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.px = px
	c.glyphs.Clear()
	c.refreshLocked()
}

// FaceFor returns the first font that has a glyph for r, or nil.
func (c *Collection) FaceFor(r rune) Face {
	_, f := c.Fallback(r, nil)
	return f
}

// Fallback returns the first font other than exclude that has a glyph
// for r. It returns 0, nil when no such font exists.
func (c *Collection) Fallback(r rune, exclude Face) (GlyphID, Face) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, e := range c.entries {
		if exclude != nil && e.face == exclude {
			continue
		}
		if id := e.face.GlyphIndex(r); id != 0 {
			return id, e.face
		}
	}
	return 0, nil
}

// Glyph returns cached metrics for glyph id of f. It reports false for
// the missing glyph and for fonts outside the collection.
func (c *Collection) Glyph(id GlyphID, f Face) (GlyphMetrics, bool) {
	if id == 0 || f == nil {
		return GlyphMetrics{}, false
	}

	c.mu.RLock()
	i := c.indexLocked(f)
	if i < 0 {
		c.mu.RUnlock()
		return GlyphMetrics{}, false
	}
	key := glyphKey{font: c.entries[i].id, id: id}
	px, sdf := c.px, c.sdf
	c.mu.RUnlock()

	m := c.glyphs.GetOrCreate(key, func() GlyphMetrics {
		return measure(f, id, px, sdf)
	})
	return m, true
}

// DummyGlyph returns the placeholder drawn for codepoints no font covers.
func (c *Collection) DummyGlyph() GlyphMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	box := c.px / 2
	m := GlyphMetrics{
		AdvanceX: c.max.MaxAdvance,
		OffsetX:  (c.max.MaxAdvance - box) / 2,
		OffsetY:  box,
	}
	if c.sdf {
		m.Pixel = PixelSDF
	}
	return m
}

// MaxMetrics returns the largest metrics over all fonts. An empty
// collection reports metrics derived from the pixel height.
func (c *Collection) MaxMetrics() Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.max
}

// CachedGlyphs returns the number of glyph metrics currently cached.
func (c *Collection) CachedGlyphs() int {
	return c.glyphs.Len()
}

func (c *Collection) indexLocked(f Face) int {
	for i, e := range c.entries {
		if e.face == f {
			return i
		}
	}
	return -1
}

// refreshLocked recomputes the max metrics. Caller must hold c.mu.
func (c *Collection) refreshLocked() {
	if len(c.entries) == 0 {
		c.max = Metrics{
			Ascent:     c.px * 0.8,
			Descent:    c.px * 0.2,
			Height:     c.px,
			MaxAdvance: c.px / 2,
		}
		return
	}
	var m Metrics
	for _, e := range c.entries {
		fm := e.face.Metrics(c.px)
		m.Ascent = max(m.Ascent, fm.Ascent)
		m.Descent = max(m.Descent, fm.Descent)
		m.Height = max(m.Height, fm.Height)
		m.MaxAdvance = max(m.MaxAdvance, fm.MaxAdvance)
	}
	c.max = m
}

func measure(f Face, id GlyphID, px float32, sdf bool) GlyphMetrics {
	b := f.GlyphBounds(id, px)
	m := GlyphMetrics{
		ID:       id,
		Face:     f,
		AdvanceX: f.GlyphAdvance(id, px),
		OffsetX:  b.MinX,
		OffsetY:  -b.MinY,
	}
	switch cf, ok := f.(colorFace); {
	case sdf:
		m.Pixel = PixelSDF
	case ok && cf.HasColorTables():
		m.Pixel = PixelBGRA
	}
	return m
}
