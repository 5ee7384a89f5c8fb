// Package cache provides the LRU cache behind the image and glyph caches.
//
// Entries carry a cost (bytes for converted images, 1 for glyphs) and the
// cache evicts least recently used entries once the entry count or the
// total cost passes its limit:
//
//	c := cache.New[Key, *Glyph](1024)
//	g, err := c.GetOrCreate(k, func() (*Glyph, int, error) {
//		g, err := rasterize(k)
//		return g, 1, err
//	})
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
