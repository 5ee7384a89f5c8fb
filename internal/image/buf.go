// Package image holds the device-native forms images are cached in:
// Bytemap, a byte per pixel map used for masks and paletted images, and
// Map565A, an RGB565 map with a parallel alpha plane for translucent images.
package image

import (
	"errors"

	"github.com/gogpu/fbdraw/internal/color"
)

// Common errors for image conversion.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidDepth is returned when bytes per pixel is not 1 to 4.
	ErrInvalidDepth = errors.New("image: invalid depth")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// Bytemap stores one byte per pixel, rows packed without padding.
//
// Without a palette each byte is a coverage value drawn in the current
// color (0 transparent, 255 opaque). With a palette each byte indexes a
// packed color.
type Bytemap struct {
	Width   int
	Height  int
	Pix     []byte
	Palette []color.RGB565
}

// NewBytemap allocates a cleared w×h Bytemap.
func NewBytemap(w, h int) (*Bytemap, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Bytemap{Width: w, Height: h, Pix: make([]byte, w*h)}, nil
}

// Offset returns the index of pixel (x, y) in Pix.
func (m *Bytemap) Offset(x, y int) int {
	return y*m.Width + x
}

// At returns the byte at (x, y), or 0 outside the map.
func (m *Bytemap) At(x, y int) byte {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.Pix[m.Offset(x, y)]
}

// Indexed reports whether bytes are palette indices.
func (m *Bytemap) Indexed() bool {
	return m.Palette != nil
}

// Map565A stores packed RGB565 colors with an 8-bit alpha plane.
type Map565A struct {
	Width  int
	Height int
	Pix    []color.RGB565
	Alpha  []uint8
}

// NewMap565A allocates a transparent w×h map.
func NewMap565A(w, h int) (*Map565A, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Map565A{
		Width:  w,
		Height: h,
		Pix:    make([]color.RGB565, w*h),
		Alpha:  make([]uint8, w*h),
	}, nil
}

// Offset returns the index of pixel (x, y) in Pix and Alpha.
func (m *Map565A) Offset(x, y int) int {
	return y*m.Width + x
}

// Opaque reports whether every pixel has full alpha.
func (m *Map565A) Opaque() bool {
	for _, a := range m.Alpha {
		if a != 255 {
			return false
		}
	}
	return true
}

// Bytes returns the approximate memory held by the map.
func (m *Map565A) Bytes() int {
	return len(m.Pix)*2 + len(m.Alpha)
}

// Bytes returns the approximate memory held by the map.
func (m *Bytemap) Bytes() int {
	return len(m.Pix) + len(m.Palette)*2
}
