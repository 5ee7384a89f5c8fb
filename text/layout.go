package text

import (
	"image"

	"golang.org/x/text/unicode/norm"
)

// Renderer measures and lays out strings in the selected font, serving
// glyphs from a GlyphCache. Strings are NFC normalized first so that
// decomposed sequences render with precomposed glyphs.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	provider Provider
	glyphs   *GlyphCache

	font Font
	size int
	face Face
}

// NewRenderer creates a renderer with no font selected.
// A nil cache gets a default-sized one.
func NewRenderer(p Provider, glyphs *GlyphCache) *Renderer {
	if glyphs == nil {
		glyphs = NewGlyphCache(0)
	}
	return &Renderer{provider: p, glyphs: glyphs}
}

// Provider returns the font provider.
func (r *Renderer) Provider() Provider {
	return r.provider
}

// Cache returns the glyph cache.
func (r *Renderer) Cache() *GlyphCache {
	return r.glyphs
}

// SetFont selects font f at size pixels. On error the previous selection
// is kept.
func (r *Renderer) SetFont(f Font, size int) error {
	if r.face != nil && f == r.font && size == r.size {
		return nil
	}
	face, err := r.provider.Face(f, size)
	if err != nil {
		return err
	}
	r.font, r.size, r.face = f, size, face
	return nil
}

// Font returns the selected font slot.
func (r *Renderer) Font() Font {
	return r.font
}

// Size returns the selected size.
func (r *Renderer) Size() int {
	return r.size
}

// Face returns the selected face, nil before SetFont succeeded.
func (r *Renderer) Face() Face {
	return r.face
}

// Metrics returns the metrics of the selected face.
func (r *Renderer) Metrics() Metrics {
	if r.face == nil {
		return Metrics{}
	}
	return r.face.Metrics()
}

// Glyph returns the cached glyph for ch in the selected face.
func (r *Renderer) Glyph(ch rune) (*Glyph, error) {
	if r.face == nil {
		return nil, ErrNoFace
	}
	return r.glyphs.Get(GlyphKey{Font: r.font, Size: r.size, Rune: ch}, r.face)
}

// Width returns the advance width of s.
func (r *Renderer) Width(s string) int {
	return r.Layout(s, nil)
}

// RuneWidth returns the advance width of one rune.
func (r *Renderer) RuneWidth(ch rune) int {
	if g, err := r.Glyph(ch); err == nil {
		return g.Advance
	}
	if r.face == nil {
		return 0
	}
	return r.face.Advance(ch)
}

// Extents returns the ink bounds of s relative to the pen start on the
// baseline. The result is empty if nothing would be drawn.
func (r *Renderer) Extents(s string) image.Rectangle {
	var box image.Rectangle
	r.Layout(s, func(g *Glyph, x int) {
		if g.Mask != nil {
			box = box.Union(g.Bounds().Add(image.Pt(x, 0)))
		}
	})
	return box
}

// Layout walks the glyphs of s, calling fn with each glyph and its pen
// offset from the start. It returns the total advance. Runes without any
// glyph are skipped. fn may be nil.
func (r *Renderer) Layout(s string, fn func(g *Glyph, x int)) int {
	if r.face == nil || s == "" {
		return 0
	}
	x := 0
	for _, ch := range norm.NFC.String(s) {
		g, err := r.Glyph(ch)
		if err != nil {
			continue
		}
		if fn != nil {
			fn(g, x)
		}
		x += g.Advance
	}
	return x
}
