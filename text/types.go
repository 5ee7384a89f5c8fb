package text

import "image"

// Font is a font slot number. Slots 0 to 15 are the classic fonts below;
// providers may know more.
type Font int

// Classic font slots.
const (
	Helvetica Font = iota
	HelveticaBold
	HelveticaItalic
	HelveticaBoldItalic
	Courier
	CourierBold
	CourierItalic
	CourierBoldItalic
	Times
	TimesBold
	TimesItalic
	TimesBoldItalic
	Symbol
	Screen
	ScreenBold
	ZapfDingbats

	// FreeFont is the first slot available for user fonts.
	FreeFont
)

// Font attribute bits reported by FontAttrs.
const (
	AttrBold   = 1
	AttrItalic = 2
)

var classicNames = [FreeFont]string{
	"Helvetica",
	"Helvetica Bold",
	"Helvetica Italic",
	"Helvetica Bold Italic",
	"Courier",
	"Courier Bold",
	"Courier Italic",
	"Courier Bold Italic",
	"Times",
	"Times Bold",
	"Times Italic",
	"Times Bold Italic",
	"Symbol",
	"Screen",
	"Screen Bold",
	"Zapf Dingbats",
}

// ClassicNames returns the names of the sixteen classic slots.
func ClassicNames() []string {
	return append([]string(nil), classicNames[:]...)
}

// FontAttrs returns the AttrBold/AttrItalic bits of a classic slot.
func FontAttrs(f Font) int {
	switch {
	case f >= Helvetica && f < Symbol:
		return int(f) & 3
	case f == ScreenBold:
		return AttrBold
	}
	return 0
}

// Provider creates faces for font slots.
type Provider interface {
	// Face returns the face of font f at size pixels.
	Face(f Font, size int) (Face, error)

	// Names returns the name of every known slot, indexed by Font.
	Names() []string

	// Sizes returns the pixel sizes font f is available in.
	// A single 0 means any size.
	Sizes(f Font) []int
}

// Face is one font at one size.
type Face interface {
	// Metrics returns the vertical metrics.
	Metrics() Metrics

	// Glyph rasterizes r. Faces return a replacement glyph for runes
	// they do not cover when they have one.
	Glyph(r rune) (*Glyph, error)

	// Advance returns the horizontal advance of r in pixels.
	Advance(r rune) int
}

// Glyph is a rasterized rune.
type Glyph struct {
	// Mask holds 8-bit coverage with its origin at (0, 0).
	// It is nil for glyphs without ink, such as space.
	Mask *image.Alpha

	// Left and Top locate the mask's top-left pixel relative to the pen
	// position on the baseline. Top is negative above the baseline.
	Left, Top int

	// Advance is the pen movement in pixels.
	Advance int
}

// Bounds returns the ink rectangle relative to the pen position.
func (g *Glyph) Bounds() image.Rectangle {
	if g.Mask == nil {
		return image.Rectangle{}
	}
	return g.Mask.Rect.Add(image.Pt(g.Left, g.Top))
}

// GlyphKey identifies a cached glyph.
type GlyphKey struct {
	Font Font
	Size int
	Rune rune
}
