package fbdraw

import (
	"sync/atomic"

	"github.com/gogpu/fbdraw/internal/clip"
	"github.com/gogpu/fbdraw/internal/color"
	"github.com/gogpu/fbdraw/internal/image"
	"github.com/gogpu/fbdraw/text"
)

// CacheStats reports image and glyph cache usage.
type CacheStats struct {
	Images     int
	ImageBytes int
	ByteLimit  int
	Hits       uint64
	Misses     uint64
	Evictions  uint64
	Glyphs     text.GlyphCacheStats
}

// CacheStats returns usage counters of the image and glyph caches.
func (d *Driver) CacheStats() CacheStats {
	s := d.images.Stats()
	return CacheStats{
		Images:     s.Len,
		ImageBytes: s.Cost,
		ByteLimit:  s.MaxCost,
		Hits:       s.Hits,
		Misses:     s.Misses,
		Evictions:  s.Evictions,
		Glyphs:     d.glyphs.Stats(),
	}
}

// lastHandle numbers handles for every driver: handles are stored on
// source images, which several drivers may draw.
var lastHandle atomic.Uint64

func newHandle() Handle {
	return Handle(lastHandle.Add(1))
}

// Cache converts img to its device form and records the handles on it.
// Caching an image that is already cached returns the same handles.
// Zero handles are returned if img cannot be converted.
func (d *Driver) Cache(img Image) (id, mask Handle) {
	if img == nil {
		return 0, 0
	}
	if d.cached(img) == nil {
		return 0, 0
	}
	return img.Handles()
}

// cached returns the device form of img, converting it on a miss.
func (d *Driver) cached(img Image) *cachedImage {
	h := img.handles()
	if h.id != 0 {
		if e, ok := d.images.Get(h.id); ok {
			return e
		}
	}

	e, err := img.convert()
	if err != nil {
		w, ht := img.Size()
		Logger().Debug("fbdraw: image not cached", "width", w, "height", ht, "err", err)
		return nil
	}
	if h.id == 0 {
		h.id = newHandle()
	}
	h.mask = 0
	if e.bitmask != nil {
		e.mask = newHandle()
		h.mask = e.mask
		d.masks[e.mask] = h.id
	}
	d.images.Set(h.id, e, e.cost())
	Logger().Debug("fbdraw: image cached", "handle", h.id, "mask", h.mask, "bytes", e.cost())
	return e
}

// release drops the entry of handle id and its mask.
func (d *Driver) release(id Handle) bool {
	e, ok := d.images.Peek(id)
	if !ok {
		return false
	}
	d.images.Delete(id)
	if e.mask != 0 {
		delete(d.masks, e.mask)
	}
	Logger().Debug("fbdraw: image released", "handle", id)
	return true
}

// Uncache releases the device form of img and clears its handles. It is
// safe to call on an image that was never cached.
func (d *Driver) Uncache(img Image) {
	if img == nil {
		return
	}
	h := img.handles()
	if h.id != 0 {
		d.release(h.id)
	}
	if h.mask != 0 {
		delete(d.masks, h.mask)
	}
	h.id, h.mask = 0, 0
}

// UncachePixmap releases the entry of image handle id. The image converts
// again on its next draw.
func (d *Driver) UncachePixmap(id Handle) {
	d.release(id)
}

// DeleteBitmask releases a mask by its handle. The image it belongs to
// is released with it and gets a new mask on its next draw.
func (d *Driver) DeleteBitmask(mask Handle) {
	id, ok := d.masks[mask]
	if !ok {
		return
	}
	d.release(id)
}

// DrawImage draws the w×h part of img whose top-left source pixel is
// (cx, cy) at (x, y). The image is cached on first use.
func (d *Driver) DrawImage(img Image, x, y, w, h, cx, cy int) {
	if img == nil || d.bind == nil || w <= 0 || h <= 0 {
		return
	}
	if !d.NotClipped(x, y, w, h) {
		return
	}
	e := d.cached(img)
	if e == nil {
		return
	}
	dst := clip.NewRect(x, y, w, h)
	switch {
	case e.rgba != nil:
		d.raster.Map565A(e.rgba, dst, cx, cy)
	case e.bytes != nil:
		d.raster.Bytemap(e.bytes, e.bitmask, dst, cx, cy)
	}
}

// DrawImageAt draws all of img with its top-left corner at (x, y).
func (d *Driver) DrawImageAt(img Image, x, y int) {
	if img == nil {
		return
	}
	w, h := img.Size()
	d.DrawImage(img, x, y, w, h, 0, 0)
}

// DrawRGB draws interleaved samples without caching them. depth is the
// number of bytes per pixel (0 means 3) and ld the line stride in bytes
// (0 means packed). Alpha samples are ignored.
func (d *Driver) DrawRGB(buf []byte, x, y, w, h, depth, ld int) {
	d.drawSamples(buf, x, y, w, h, depth, ld, 3, false)
}

// DrawMono draws 8-bit gray samples without caching them. Only the first
// byte of each pixel is used; depth 0 means 1.
func (d *Driver) DrawMono(buf []byte, x, y, w, h, depth, ld int) {
	d.drawSamples(buf, x, y, w, h, depth, ld, 1, true)
}

func (d *Driver) drawSamples(buf []byte, x, y, w, h, depth, ld, def int, mono bool) {
	if w <= 0 || h <= 0 || depth < 0 || depth > 4 {
		return
	}
	depth, ld = image.Layout(w, depth, ld, def)
	if len(buf) < w*depth {
		return
	}
	h = min(h, (len(buf)-w*depth)/ld+1)
	for row := 0; row < h; row++ {
		d.drawRow(buf[row*ld:], x, y+row, w, depth, mono, nil)
	}
}

// RowFunc fills buf with w pixels of source row y starting at column x.
type RowFunc func(x, y, w int, buf []byte)

// DrawRGBFunc draws a w×h image whose rows are produced by fn. fn is only
// called for rows, and the part of each row, that are visible.
func (d *Driver) DrawRGBFunc(fn RowFunc, x, y, w, h, depth int) {
	d.drawFunc(fn, x, y, w, h, depth, 3, false)
}

// DrawMonoFunc is DrawRGBFunc for gray samples.
func (d *Driver) DrawMonoFunc(fn RowFunc, x, y, w, h, depth int) {
	d.drawFunc(fn, x, y, w, h, depth, 1, true)
}

func (d *Driver) drawFunc(fn RowFunc, x, y, w, h, depth, def int, mono bool) {
	if fn == nil || w <= 0 || h <= 0 || depth < 0 || depth > 4 {
		return
	}
	if depth == 0 {
		depth = def
	}
	var line []byte
	for row := 0; row < h; row++ {
		d.drawRow(nil, x, y+row, w, depth, mono, func(sx, n int) []byte {
			if cap(line) < n*depth {
				line = make([]byte, n*depth)
			}
			line = line[:n*depth]
			fn(sx, row, n, line)
			return line
		})
	}
}

// drawRow packs and writes the visible part of one row. Samples come from
// src, or from fetch when src is nil.
func (d *Driver) drawRow(src []byte, x, y, w, depth int, mono bool, fetch func(sx, n int) []byte) {
	box, res := d.active.Classify(clip.NewRect(x, y, w, 1))
	if res == clip.Outside {
		return
	}
	sx := box.X - x
	if fetch != nil {
		src = fetch(sx, box.W)
	} else {
		src = src[sx*depth:]
	}
	out := d.raster.RowBuffer(box.W)
	for i := range out {
		s := src[i*depth:]
		switch {
		case mono || depth < 3:
			out[i] = color.Gray(s[0])
		default:
			out[i] = color.Pack565(s[0], s[1], s[2])
		}
	}
	d.raster.Row(box.X, y, out)
}
