package color

import stdcolor "image/color"

// FromColor packs any standard library color, ignoring alpha.
// Premultiplied values are un-premultiplied first so translucent colors keep
// their hue.
func FromColor(c stdcolor.Color) RGB565 {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return Pack565(n.R, n.G, n.B)
}
