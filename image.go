package fbdraw

import (
	stdimage "image"
	stdcolor "image/color"

	"github.com/gogpu/fbdraw/internal/image"
)

// Handle identifies a cached image or mask. The zero Handle means "not
// cached".
type Handle uint64

// Image is a source image the driver can cache and draw: *RGBImage,
// *Bitmap or *Pixmap.
type Image interface {
	// Size returns the image size in pixels.
	Size() (w, h int)

	// Handles returns the cache handles recorded on the image.
	Handles() (id, mask Handle)

	handles() *imageHandles
	convert() (*cachedImage, error)
}

// imageHandles are the cache handles stored on a source image.
type imageHandles struct {
	id   Handle
	mask Handle
}

// Handles returns the image and mask handles, zero when not cached.
func (h *imageHandles) Handles() (id, mask Handle) { return h.id, h.mask }

func (h *imageHandles) handles() *imageHandles { return h }

// cachedImage is the device form of a source image. Exactly one of bytes
// and rgba is set.
type cachedImage struct {
	bytes   *image.Bytemap
	bitmask *image.Bytemap
	rgba    *image.Map565A
	mask    Handle
}

// cost returns the memory held by the entry.
func (e *cachedImage) cost() int {
	n := 0
	if e.bytes != nil {
		n += e.bytes.Bytes()
	}
	if e.bitmask != nil {
		n += e.bitmask.Bytes()
	}
	if e.rgba != nil {
		n += e.rgba.Bytes()
	}
	return n
}

// RGBImage holds interleaved 8-bit samples. D is the number of bytes per
// pixel: 1 gray, 2 gray+alpha, 3 RGB, 4 RGBA. LD is the line stride in
// bytes; 0 means rows are packed.
type RGBImage struct {
	imageHandles
	Data []byte
	W, H int
	D    int
	LD   int
}

// NewRGBImage wraps samples without copying them.
func NewRGBImage(data []byte, w, h, d, ld int) *RGBImage {
	return &RGBImage{Data: data, W: w, H: h, D: d, LD: ld}
}

// NewRGBImageFrom converts any decoded image. Opaque images get D=3,
// others D=4.
func NewRGBImageFrom(src stdimage.Image) *RGBImage {
	pix, w, h := image.NRGBA(src)
	opaque := true
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0xFF {
			opaque = false
			break
		}
	}
	if !opaque {
		return NewRGBImage(pix, w, h, 4, 0)
	}
	rgb := make([]byte, 0, w*h*3)
	for i := 0; i+3 < len(pix); i += 4 {
		rgb = append(rgb, pix[i], pix[i+1], pix[i+2])
	}
	return NewRGBImage(rgb, w, h, 3, 0)
}

// Size implements Image.
func (m *RGBImage) Size() (w, h int) { return m.W, m.H }

// Translucent reports whether the samples carry alpha.
func (m *RGBImage) Translucent() bool {
	return image.HasAlpha(m.D)
}

func (m *RGBImage) convert() (*cachedImage, error) {
	rgba, err := image.FromRGB(m.Data, m.W, m.H, m.D, m.LD)
	if err != nil {
		return nil, err
	}
	return &cachedImage{rgba: rgba}, nil
}

// Bitmap is a 1-bit mask drawn in the current color. Rows are padded to
// whole bytes; the least significant bit is the leftmost pixel.
type Bitmap struct {
	imageHandles
	Bits []byte
	W, H int
}

// NewBitmap wraps mask bits without copying them.
func NewBitmap(bits []byte, w, h int) *Bitmap {
	return &Bitmap{Bits: bits, W: w, H: h}
}

// Size implements Image.
func (m *Bitmap) Size() (w, h int) { return m.W, m.H }

func (m *Bitmap) convert() (*cachedImage, error) {
	b, err := image.FromBitmap(m.Bits, m.W, m.H)
	if err != nil {
		return nil, err
	}
	return &cachedImage{bytes: b}, nil
}

// Pixmap is a byte-per-pixel index image with its palette. Fully
// transparent palette entries become a separate mask.
type Pixmap struct {
	imageHandles
	Index   []byte
	W, H    int
	Palette stdcolor.Palette
}

// NewPixmap wraps an index map without copying it.
func NewPixmap(index []byte, w, h int, pal stdcolor.Palette) *Pixmap {
	return &Pixmap{Index: index, W: w, H: h, Palette: pal}
}

// NewPixmapFrom wraps a decoded paletted image.
func NewPixmapFrom(src *stdimage.Paletted) *Pixmap {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	idx := src.Pix
	if src.Stride != w || b.Min != (stdimage.Point{}) {
		idx = make([]byte, 0, w*h)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := src.PixOffset(b.Min.X, y)
			idx = append(idx, src.Pix[i:i+w]...)
		}
	}
	return NewPixmap(idx, w, h, src.Palette)
}

// Size implements Image.
func (m *Pixmap) Size() (w, h int) { return m.W, m.H }

// Translucent reports whether a palette entry is partially transparent.
func (m *Pixmap) Translucent() bool {
	return image.Translucent(m.Palette)
}

func (m *Pixmap) convert() (*cachedImage, error) {
	if m.Translucent() {
		rgba, err := image.FromPalettedAlpha(m.Index, m.W, m.H, m.Palette)
		if err != nil {
			return nil, err
		}
		return &cachedImage{rgba: rgba}, nil
	}
	b, mask, err := image.FromPaletted(m.Index, m.W, m.H, m.Palette)
	if err != nil {
		return nil, err
	}
	return &cachedImage{bytes: b, bitmask: mask}, nil
}
