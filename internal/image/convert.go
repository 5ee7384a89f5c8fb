package image

import (
	stdimage "image"
	stdcolor "image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/fbdraw/internal/color"
)

// Layout normalizes the depth and line stride of interleaved samples.
// A non-positive depth becomes def; a line stride shorter than one row of
// pixels becomes the packed row length.
func Layout(w, d, ld, def int) (depth, stride int) {
	if d <= 0 {
		d = def
	}
	if ld < w*d {
		ld = w * d
	}
	return d, ld
}

// need returns the number of bytes h rows of interleaved samples occupy.
func need(w, h, d, ld int) int {
	return (h-1)*ld + w*d
}

// FromRGB converts interleaved samples to a Map565A. d is the number of
// bytes per pixel: 1 gray, 2 gray+alpha, 3 RGB, 4 RGBA. ld is the line
// stride in bytes (0 means packed rows).
func FromRGB(data []byte, w, h, d, ld int) (*Map565A, error) {
	if d < 0 || d > 4 {
		return nil, ErrInvalidDepth
	}
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	d, ld = Layout(w, d, ld, 3)
	if len(data) < need(w, h, d, ld) {
		return nil, ErrDataTooSmall
	}
	m, err := NewMap565A(w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		row := data[y*ld:]
		for x := 0; x < w; x++ {
			s := row[x*d:]
			i := m.Offset(x, y)
			switch d {
			case 1:
				m.Pix[i], m.Alpha[i] = color.Gray(s[0]), 255
			case 2:
				m.Pix[i], m.Alpha[i] = color.Gray(s[0]), s[1]
			case 3:
				m.Pix[i], m.Alpha[i] = color.Pack565(s[0], s[1], s[2]), 255
			case 4:
				m.Pix[i], m.Alpha[i] = color.Pack565(s[0], s[1], s[2]), s[3]
			}
		}
	}
	return m, nil
}

// HasAlpha reports whether samples of depth d carry an alpha channel.
func HasAlpha(d int) bool {
	return d == 2 || d == 4
}

// FromBitmap converts 1-bit rows to a coverage Bytemap. Rows are padded to
// whole bytes and the least significant bit is the leftmost pixel.
func FromBitmap(bits []byte, w, h int) (*Bytemap, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	rowBytes := (w + 7) / 8
	if len(bits) < rowBytes*h {
		return nil, ErrDataTooSmall
	}
	m, err := NewBytemap(w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		row := bits[y*rowBytes:]
		for x := 0; x < w; x++ {
			if row[x>>3]&(1<<(x&7)) != 0 {
				m.Pix[m.Offset(x, y)] = 255
			}
		}
	}
	return m, nil
}

// Translucent reports whether any palette entry is partially transparent.
// Fully transparent entries are handled by a mask and do not count.
func Translucent(pal stdcolor.Palette) bool {
	for _, c := range pal {
		_, _, _, a := c.RGBA()
		if a != 0 && a != 0xFFFF {
			return true
		}
	}
	return false
}

// FromPaletted converts an index map with an opaque palette. Indices past
// the end of the palette draw as black. If some entry is fully transparent
// the returned mask is a coverage Bytemap of the visible pixels, otherwise
// it is nil.
func FromPaletted(idx []byte, w, h int, pal stdcolor.Palette) (m, mask *Bytemap, err error) {
	if w <= 0 || h <= 0 {
		return nil, nil, ErrInvalidDimensions
	}
	if len(idx) < w*h {
		return nil, nil, ErrDataTooSmall
	}
	m, err = NewBytemap(w, h)
	if err != nil {
		return nil, nil, err
	}
	copy(m.Pix, idx[:w*h])

	m.Palette = make([]color.RGB565, 256)
	transparent := [256]bool{}
	hasTransparent := false
	for i, c := range pal {
		if i >= 256 {
			break
		}
		_, _, _, a := c.RGBA()
		if a == 0 {
			transparent[i] = true
			hasTransparent = true
			continue
		}
		m.Palette[i] = color.FromColor(c)
	}
	if !hasTransparent {
		return m, nil, nil
	}

	mask, _ = NewBytemap(w, h)
	for i, v := range m.Pix {
		if !transparent[v] {
			mask.Pix[i] = 255
		}
	}
	return m, mask, nil
}

// FromPalettedAlpha converts an index map whose palette carries partial
// transparency into a Map565A.
func FromPalettedAlpha(idx []byte, w, h int, pal stdcolor.Palette) (*Map565A, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(idx) < w*h {
		return nil, ErrDataTooSmall
	}
	m, err := NewMap565A(w, h)
	if err != nil {
		return nil, err
	}
	for i, v := range idx[:w*h] {
		if int(v) >= len(pal) {
			m.Alpha[i] = 255
			continue
		}
		n := stdcolor.NRGBAModel.Convert(pal[v]).(stdcolor.NRGBA)
		m.Pix[i] = color.Pack565(n.R, n.G, n.B)
		m.Alpha[i] = n.A
	}
	return m, nil
}

// NRGBA converts any decoded image to packed non-premultiplied RGBA samples.
func NRGBA(src stdimage.Image) (pix []byte, w, h int) {
	b := src.Bounds()
	if n, ok := src.(*stdimage.NRGBA); ok && n.Stride == 4*b.Dx() && n.Rect.Min == (stdimage.Point{}) {
		return n.Pix, b.Dx(), b.Dy()
	}
	dst := stdimage.NewNRGBA(stdimage.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, stdimage.Point{}, src, b, xdraw.Src, nil)
	return dst.Pix, b.Dx(), b.Dy()
}
