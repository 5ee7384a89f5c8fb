// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "github.com/gogpu/fbdraw/internal/color"

// Capabilities describes optional features of a Target.
type Capabilities struct {
	// AlphaBlending reports translucent compositing of arbitrary colors.
	AlphaBlending bool
}

// Target is a destination surface the rasterizer writes to.
// Implementations must ignore writes outside their bounds.
type Target interface {
	// Size returns the surface size in pixels.
	Size() (w, h int)

	// FillSpan fills [x0, x1) on row y with c.
	FillSpan(x0, x1, y int, c color.RGB565)

	// CopySpan copies src to row y starting at x.
	CopySpan(x, y int, src []color.RGB565)

	// SetPixel writes a single pixel.
	SetPixel(x, y int, c color.RGB565)

	// Pixel reads a single pixel. Out of bounds reads return 0.
	Pixel(x, y int) color.RGB565

	// BlendPixel composites c over the pixel with coverage a.
	BlendPixel(x, y int, c color.RGB565, a uint8)

	// Capabilities reports optional features.
	Capabilities() Capabilities
}

// RGB565 is a bounds-checked view over a 16-bit framebuffer region.
// The view does not own its pixels.
type RGB565 struct {
	pix    []color.RGB565
	stride int // pixels per row
	width  int
	height int
}

// NewRGB565 creates a view of w×h pixels starting at pix[0] with the given
// row stride. The height is reduced if pix is too short to hold it.
func NewRGB565(pix []color.RGB565, stride, w, h int) *RGB565 {
	if w < 0 || stride < w {
		w = max(0, min(w, stride))
	}
	if h < 0 {
		h = 0
	}
	if w > 0 && h > 0 && (h-1)*stride+w > len(pix) {
		h = 0
		if len(pix) >= w {
			h = (len(pix)-w)/stride + 1
		}
	}
	return &RGB565{pix: pix, stride: stride, width: w, height: h}
}

// Size implements Target.
func (t *RGB565) Size() (w, h int) {
	return t.width, t.height
}

// Stride returns the row stride in pixels.
func (t *RGB565) Stride() int {
	return t.stride
}

// Offset returns the index of pixel (x, y) in the backing slice.
// All pixel addressing goes through this method.
func (t *RGB565) Offset(x, y int) int {
	return y*t.stride + x
}

func (t *RGB565) inBounds(x, y int) bool {
	return x >= 0 && x < t.width && y >= 0 && y < t.height
}

// FillSpan implements Target.
func (t *RGB565) FillSpan(x0, x1, y int, c color.RGB565) {
	if y < 0 || y >= t.height {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, t.width)
	if x0 >= x1 {
		return
	}
	row := t.pix[t.Offset(x0, y):t.Offset(x1, y)]
	for i := range row {
		row[i] = c
	}
}

// CopySpan implements Target.
func (t *RGB565) CopySpan(x, y int, src []color.RGB565) {
	if y < 0 || y >= t.height {
		return
	}
	if x < 0 {
		if -x >= len(src) {
			return
		}
		src = src[-x:]
		x = 0
	}
	if n := t.width - x; n < len(src) {
		if n <= 0 {
			return
		}
		src = src[:n]
	}
	copy(t.pix[t.Offset(x, y):], src)
}

// SetPixel implements Target.
func (t *RGB565) SetPixel(x, y int, c color.RGB565) {
	if !t.inBounds(x, y) {
		return
	}
	t.pix[t.Offset(x, y)] = c
}

// Pixel implements Target.
func (t *RGB565) Pixel(x, y int) color.RGB565 {
	if !t.inBounds(x, y) {
		return 0
	}
	return t.pix[t.Offset(x, y)]
}

// BlendPixel implements Target.
func (t *RGB565) BlendPixel(x, y int, c color.RGB565, a uint8) {
	if a == 0 || !t.inBounds(x, y) {
		return
	}
	i := t.Offset(x, y)
	t.pix[i] = color.Blend565(t.pix[i], c, a)
}

// Capabilities implements Target. Per-pixel blending is only used for
// cached translucent images and glyph coverage.
func (t *RGB565) Capabilities() Capabilities {
	return Capabilities{}
}
