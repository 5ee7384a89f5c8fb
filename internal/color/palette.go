package color

// Colormap layout.
const (
	GrayRamp  = 32 // first entry of the 24-step gray ramp
	NumGray   = 24
	ColorCube = 56 // first entry of the red/green/blue cube
	NumRed    = 5
	NumGreen  = 8
	NumBlue   = 5
)

// PaletteSize is the number of indexed colors.
const PaletteSize = 256

// Palette maps color indices to 0xRRGGBB values.
type Palette [PaletteSize]uint32

var baseColors = [16]uint32{
	0x000000, 0xFF0000, 0x00FF00, 0xFFFF00,
	0x0000FF, 0xFF00FF, 0x00FFFF, 0xFFFFFF,
	0x555555, 0xC67171, 0x71C671, 0x8E8E38,
	0x7171C6, 0x8E388E, 0x388E8E, 0x000080,
}

// DefaultPalette returns the standard colormap: 16 named colors, 16 free
// slots initialized to a light gray, a gray ramp and a color cube.
func DefaultPalette() Palette {
	var p Palette
	copy(p[:], baseColors[:])
	for i := 16; i < GrayRamp; i++ {
		p[i] = 0xC0C0C0
	}
	for i := 0; i < NumGray; i++ {
		v := uint32(i * 255 / (NumGray - 1))
		p[GrayRamp+i] = v<<16 | v<<8 | v
	}
	for b := 0; b < NumBlue; b++ {
		for r := 0; r < NumRed; r++ {
			for g := 0; g < NumGreen; g++ {
				i := ColorCube + (b*NumRed+r)*NumGreen + g
				rv := uint32(r * 255 / (NumRed - 1))
				gv := uint32(g * 255 / (NumGreen - 1))
				bv := uint32(b * 255 / (NumBlue - 1))
				p[i] = rv<<16 | gv<<8 | bv
			}
		}
	}
	return p
}

// Lookup returns the 0xRRGGBB value of index i.
// Out of range indices return black.
func (p *Palette) Lookup(i int) uint32 {
	if i < 0 || i >= PaletteSize {
		return 0
	}
	return p[i]
}

// Set replaces entry i. Out of range indices are ignored and reported false.
func (p *Palette) Set(i int, rgb uint32) bool {
	if i < 0 || i >= PaletteSize {
		return false
	}
	p[i] = rgb & 0xFFFFFF
	return true
}
