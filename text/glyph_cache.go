package text

import "github.com/gogpu/fbdraw/internal/cache"

// DefaultGlyphCacheSize is the default maximum number of cached glyphs.
const DefaultGlyphCacheSize = 4096

// GlyphCacheStats reports glyph cache usage.
type GlyphCacheStats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// GlyphCache is an LRU cache of rasterized glyphs keyed by font, size and
// rune. A glyph is requested from its Face only on a miss.
//
// GlyphCache is safe for concurrent use.
type GlyphCache struct {
	c *cache.Cache[GlyphKey, *Glyph]
}

// NewGlyphCache creates a cache holding at most size glyphs.
// A size of 0 or less selects DefaultGlyphCacheSize.
func NewGlyphCache(size int) *GlyphCache {
	if size <= 0 {
		size = DefaultGlyphCacheSize
	}
	return &GlyphCache{c: cache.New[GlyphKey, *Glyph](size)}
}

// Get returns the glyph for key, rasterizing it with face on a miss.
// Errors are not cached.
func (gc *GlyphCache) Get(key GlyphKey, face Face) (*Glyph, error) {
	return gc.c.GetOrCreate(key, func() (*Glyph, int, error) {
		g, err := face.Glyph(key.Rune)
		return g, 1, err
	})
}

// Len returns the number of cached glyphs.
func (gc *GlyphCache) Len() int {
	return gc.c.Len()
}

// Clear drops every glyph.
func (gc *GlyphCache) Clear() {
	gc.c.Clear()
}

// Stats returns usage counters.
func (gc *GlyphCache) Stats() GlyphCacheStats {
	s := gc.c.Stats()
	return GlyphCacheStats{Len: s.Len, Hits: s.Hits, Misses: s.Misses, Evictions: s.Evictions}
}
