package font

// DefaultPixelHeight is the pixel height of a new Collection.
const DefaultPixelHeight = 16

// DefaultGlyphCacheLimit is the number of glyph metrics a Collection keeps.
const DefaultGlyphCacheLimit = 4096

// Option configures a Collection.
type Option func(*config)

type config struct {
	pixelHeight float32
	sdf         bool
	cacheLimit  int
}

func defaultConfig() config {
	return config{
		pixelHeight: DefaultPixelHeight,
		cacheLimit:  DefaultGlyphCacheLimit,
	}
}

// WithPixelHeight sets the pixel height glyphs are measured at.
// Values <= 0 are ignored.
func WithPixelHeight(px float32) Option {
	return func(c *config) {
		if px > 0 {
			c.pixelHeight = px
		}
	}
}

// WithSDF makes every glyph report PixelSDF.
func WithSDF(enabled bool) Option {
	return func(c *config) {
		c.sdf = enabled
	}
}

// WithGlyphCacheLimit bounds the glyph metrics cache. 0 means unbounded.
func WithGlyphCacheLimit(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.cacheLimit = n
		}
	}
}
