// Package cache provides the bounded LRU used for glyph metrics.
//
//	c := cache.New[key, font.GlyphMetrics](4096)
//	m := c.GetOrCreate(k, func() font.GlyphMetrics { return load(k) })
//
// A limit of 0 means unbounded. LRU is safe for concurrent use and must
// not be copied after creation.
package cache
