package fbdraw

import "github.com/gogpu/fbdraw/internal/color"

// Color is a drawing color. Values below 256 are colormap indices; any
// other value holds a 24-bit RGB color in its upper three bytes
// (0xRRGGBB00).
type Color uint32

// Named colormap indices.
const (
	Foreground  Color = 0
	Background2 Color = 7
	Inactive    Color = 8
	Selection   Color = 15
	Gray0       Color = 32
	DarkGray    Color = 39
	Background  Color = 49
	LightGray   Color = 50
	Black       Color = 56
	Red         Color = 88
	Green       Color = 63
	Yellow      Color = 95
	Blue        Color = 216
	Magenta     Color = 248
	Cyan        Color = 223
	DarkRed     Color = 72
	DarkGreen   Color = 60
	DarkYellow  Color = 76
	DarkBlue    Color = 136
	DarkMagenta Color = 152
	DarkCyan    Color = 140
	White       Color = 255
)

// RGBColor returns the color with the given 8-bit components.
func RGBColor(r, g, b uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8)
}

// GrayRamp returns the colormap index of one of the 24 gray steps,
// 0 being the darkest.
func GrayRamp(step int) Color {
	return Gray0 + Color(min(max(step, 0), 23))
}

// Indexed reports whether c is a colormap index.
func (c Color) Indexed() bool {
	return c < color.PaletteSize
}

// resolve returns the 0xRRGGBB value of c.
func (c Color) resolve(p *color.Palette) uint32 {
	if c.Indexed() {
		return p.Lookup(int(c))
	}
	return uint32(c >> 8)
}

// SetColor selects the drawing color.
func (d *Driver) SetColor(c Color) {
	d.color = c
	d.raster.SetColor(color.PackRGB(c.resolve(&d.palette)))
}

// SetColorRGB selects an RGB drawing color.
func (d *Driver) SetColorRGB(r, g, b uint8) {
	d.SetColor(RGBColor(r, g, b))
}

// Color returns the color last passed to SetColor.
func (d *Driver) Color() Color {
	return d.color
}

// SetColorIndex changes colormap entry i to the 0xRRGGBB value rgb.
// Out of range indices are ignored. If the current color is i, the new
// value takes effect immediately.
func (d *Driver) SetColorIndex(i int, rgb uint32) {
	if !d.palette.Set(i, rgb) {
		return
	}
	if d.color.Indexed() && int(d.color) == i {
		d.SetColor(d.color)
	}
}

// ColorIndex returns the 0xRRGGBB value of colormap entry i.
func (d *Driver) ColorIndex(i int) uint32 {
	return d.palette.Lookup(i)
}
