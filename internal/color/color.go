// Package color packs 8-bit RGB channel values into the RGB565 layout used
// by framebuffer targets and provides the indexed colormap.
package color

// RGB565 is a color packed as 5 bits red, 6 bits green, 5 bits blue.
type RGB565 = uint16

// Pack565 packs 8-bit red, green and blue into RGB565.
// The low bits of each channel are truncated.
func Pack565(r, g, b uint8) RGB565 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b>>3)
}

// Unpack565 expands an RGB565 value back to 8-bit channels.
// The high bits are replicated into the low bits so that white stays white.
func Unpack565(c RGB565) (r, g, b uint8) {
	r5 := uint8(c >> 11 & 0x1F)
	g6 := uint8(c >> 5 & 0x3F)
	b5 := uint8(c & 0x1F)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// PackRGB packs a 0xRRGGBB value into RGB565.
func PackRGB(rgb uint32) RGB565 {
	return Pack565(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
}

// Blend565 composites src over dst with coverage a (0..255).
// a == 0 returns dst, a == 255 returns src.
func Blend565(dst, src RGB565, a uint8) RGB565 {
	switch a {
	case 0:
		return dst
	case 255:
		return src
	}
	ia := 255 - uint32(a)
	sa := uint32(a)

	dr := uint32(dst >> 11 & 0x1F)
	dg := uint32(dst >> 5 & 0x3F)
	db := uint32(dst & 0x1F)
	sr := uint32(src >> 11 & 0x1F)
	sg := uint32(src >> 5 & 0x3F)
	sb := uint32(src & 0x1F)

	r := (sr*sa + dr*ia + 127) / 255
	g := (sg*sa + dg*ia + 127) / 255
	b := (sb*sa + db*ia + 127) / 255
	return uint16(r<<11 | g<<5 | b)
}

// Gray packs an 8-bit luminance value.
func Gray(v uint8) RGB565 {
	return Pack565(v, v, v)
}
