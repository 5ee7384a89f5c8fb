package raster

import (
	stdimage "image"

	"github.com/gogpu/fbdraw/internal/clip"
	"github.com/gogpu/fbdraw/internal/color"
	"github.com/gogpu/fbdraw/internal/image"
)

// visible calls fn for each part of dst that is inside the clip and backed
// by a w×h source whose pixel (sx, sy) lands on dst's top-left corner.
func (r *Rasterizer) visible(dst clip.Rect, sx, sy, w, h int, fn func(v clip.Rect)) {
	if !r.ready() {
		return
	}
	area := dst.Intersect(clip.NewRect(dst.X-sx, dst.Y-sy, w, h))
	if area.IsEmpty() {
		return
	}
	for _, c := range r.clip.Rects() {
		if v := c.Intersect(area); !v.IsEmpty() {
			fn(v)
		}
	}
}

// Map565A composites m into dst. Destination pixel (dst.X, dst.Y) shows
// source pixel (sx, sy). Opaque pixels are copied, translucent ones blended.
func (r *Rasterizer) Map565A(m *image.Map565A, dst clip.Rect, sx, sy int) {
	ox, oy := sx-dst.X, sy-dst.Y
	r.visible(dst, sx, sy, m.Width, m.Height, func(v clip.Rect) {
		for y := v.Y; y < v.Bottom(); y++ {
			for x := v.X; x < v.Right(); x++ {
				i := m.Offset(x+ox, y+oy)
				switch a := m.Alpha[i]; a {
				case 0:
				case 255:
					r.dst.SetPixel(x, y, m.Pix[i])
				default:
					r.dst.BlendPixel(x, y, m.Pix[i], a)
				}
			}
		}
	})
}

// Bytemap draws m into dst. Indexed maps draw their palette colors where
// mask (if any) is set; coverage maps blend the current color.
func (r *Rasterizer) Bytemap(m, mask *image.Bytemap, dst clip.Rect, sx, sy int) {
	ox, oy := sx-dst.X, sy-dst.Y
	r.visible(dst, sx, sy, m.Width, m.Height, func(v clip.Rect) {
		for y := v.Y; y < v.Bottom(); y++ {
			for x := v.X; x < v.Right(); x++ {
				i := m.Offset(x+ox, y+oy)
				if !m.Indexed() {
					r.dst.BlendPixel(x, y, r.color, m.Pix[i])
					continue
				}
				if mask != nil && mask.Pix[i] == 0 {
					continue
				}
				r.dst.SetPixel(x, y, m.Palette[m.Pix[i]])
			}
		}
	})
}

// AlphaMask blends the current color through a coverage mask whose
// top-left pixel lands on (x, y).
func (r *Rasterizer) AlphaMask(a *stdimage.Alpha, x, y int) {
	b := a.Rect
	dst := clip.NewRect(x, y, b.Dx(), b.Dy())
	r.visible(dst, 0, 0, b.Dx(), b.Dy(), func(v clip.Rect) {
		for yy := v.Y; yy < v.Bottom(); yy++ {
			row := a.Pix[a.PixOffset(b.Min.X+v.X-x, b.Min.Y+yy-y):]
			for xx := v.X; xx < v.Right(); xx++ {
				r.dst.BlendPixel(xx, yy, r.color, row[xx-v.X])
			}
		}
	})
}

// Row copies packed pixels to row y starting at x, through the clip.
func (r *Rasterizer) Row(x, y int, pix []color.RGB565) {
	r.visible(clip.NewRect(x, y, len(pix), 1), 0, 0, len(pix), 1, func(v clip.Rect) {
		r.dst.CopySpan(v.X, y, pix[v.X-x:v.Right()-x])
	})
}

// RowBuffer returns a scratch slice of n packed pixels owned by the
// rasterizer, valid until the next call.
func (r *Rasterizer) RowBuffer(n int) []color.RGB565 {
	if cap(r.row) < n {
		r.row = make([]color.RGB565, n)
	}
	return r.row[:n]
}
