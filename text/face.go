package text

import (
	"image"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// xFace adapts a golang.org/x/image font.Face.
// font.Face is not safe for concurrent use, so calls are serialized.
type xFace struct {
	mu      sync.Mutex
	face    font.Face
	metrics Metrics
}

func newXFace(f font.Face) *xFace {
	return &xFace{face: f, metrics: metricsOf(f.Metrics())}
}

// Metrics implements Face.
func (f *xFace) Metrics() Metrics {
	return f.metrics
}

// Advance implements Face.
func (f *xFace) Advance(r rune) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	adv, _ := f.face.GlyphAdvance(r)
	return adv.Round()
}

// Glyph implements Face. The face's mask buffer is reused between calls,
// so the coverage is copied out.
func (f *xFace) Glyph(r rune) (*Glyph, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	dr, mask, maskp, adv, _ := f.face.Glyph(fixed.Point26_6{}, r)
	if mask == nil {
		if r != ' ' {
			return nil, ErrNoGlyph
		}
		// Some faces have no mask at all for blank runes.
		return &Glyph{Advance: adv.Round()}, nil
	}

	g := &Glyph{Left: dr.Min.X, Top: dr.Min.Y, Advance: adv.Round()}
	if dr.Empty() {
		return g, nil
	}
	dst := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	draw.Draw(dst, dst.Rect, mask, maskp, draw.Src)
	if !blank(dst.Pix) {
		g.Mask = dst
	}
	return g, nil
}

func blank(pix []byte) bool {
	for _, v := range pix {
		if v != 0 {
			return false
		}
	}
	return true
}
