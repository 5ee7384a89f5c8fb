package fbdraw

import (
	"path"

	"github.com/gogpu/fbdraw/text"
)

// SetFont selects font f at size pixels. If the font subsystem cannot
// provide it, the default font at that size is tried, then the default
// font at the default size, and finally the built-in 7x13 bitmap font.
func (d *Driver) SetFont(f text.Font, size int) {
	if size <= 0 {
		size = d.defSize
	}
	err := d.text.SetFont(f, size)
	if err == nil {
		return
	}
	Logger().Warn("fbdraw: font unavailable, using default",
		"font", int(f), "size", size, "err", err)

	if d.text.SetFont(d.defFont, size) == nil || d.text.SetFont(d.defFont, d.defSize) == nil {
		return
	}
	if !d.fallback {
		// Glyph keys do not name the provider, so the cache must start over.
		d.fallback = true
		d.glyphs.Clear()
		d.text = text.NewRenderer(&text.BasicProvider{}, d.glyphs)
		Logger().Warn("fbdraw: switching to bitmap font")
	}
	if d.text.SetFont(f, size) != nil {
		d.text.SetFont(text.Helvetica, size)
	}
}

// Font returns the selected font slot.
func (d *Driver) Font() text.Font {
	return d.text.Font()
}

// Size returns the selected font size.
func (d *Driver) Size() int {
	return d.text.Size()
}

// Width returns the advance width of s in pixels.
func (d *Driver) Width(s string) int {
	return d.text.Width(s)
}

// RuneWidth returns the advance width of r in pixels.
func (d *Driver) RuneWidth(r rune) int {
	return d.text.RuneWidth(r)
}

// Height returns the distance between baselines.
func (d *Driver) Height() int {
	return d.text.Metrics().Height
}

// Descent returns the distance from the baseline to the bottom of the
// lowest glyph.
func (d *Driver) Descent() int {
	return d.text.Metrics().Descent
}

// TextExtents returns the ink box of s: its offset from the pen position
// on the baseline and its size. All values are zero for blank strings.
func (d *Driver) TextExtents(s string) (dx, dy, w, h int) {
	r := d.text.Extents(s)
	return r.Min.X, r.Min.Y, r.Dx(), r.Dy()
}

// Draw draws s with the pen starting at (x, y) on the baseline.
func (d *Driver) Draw(s string, x, y int) {
	if d.bind == nil || s == "" {
		return
	}
	d.text.Layout(s, func(g *text.Glyph, gx int) {
		if g.Mask != nil {
			d.raster.AlphaMask(g.Mask, x+gx+g.Left, y+g.Top)
		}
	})
}

// DrawAngle draws s rotated by angle degrees. Rotation is not supported;
// the text is drawn horizontally.
func (d *Driver) DrawAngle(angle float64, s string, x, y int) {
	if angle != 0 {
		a := text.Analyze(s)
		Logger().Debug("fbdraw: angled text drawn horizontally",
			"angle", angle, "script", a.Script)
	}
	d.Draw(s, x, y)
}

// RTLDraw draws s as Draw does. Right-to-left layout is not supported.
func (d *Driver) RTLDraw(s string, x, y int) {
	a := text.Analyze(s)
	Logger().Debug("fbdraw: right-to-left text drawn left-to-right",
		"direction", a.Direction.String(), "script", a.Script, "runs", a.Runs)
	d.Draw(s, x, y)
}

// FontName returns the name of font slot f, "" if unknown.
func (d *Driver) FontName(f text.Font) string {
	if name, ok := d.fontNames[f]; ok {
		return name
	}
	names := d.text.Provider().Names()
	if f < 0 || int(f) >= len(names) {
		return ""
	}
	return names[f]
}

// SetFontName renames font slot f. The glyphs drawn for the slot do not
// change.
func (d *Driver) SetFontName(f text.Font, name string) {
	d.fontNames[f] = name
}

// GetFontName returns the name of slot f and its AttrBold/AttrItalic bits.
func (d *Driver) GetFontName(f text.Font) (name string, attrs int) {
	return d.FontName(f), text.FontAttrs(f)
}

// GetFontSizes returns the sizes slot f is available in. A single 0
// means any size.
func (d *Driver) GetFontSizes(f text.Font) []int {
	return d.text.Provider().Sizes(f)
}

// SetFonts returns the number of font slots whose names match pattern, a
// path.Match pattern. An empty pattern matches every slot.
func (d *Driver) SetFonts(pattern string) int {
	names := d.text.Provider().Names()
	if pattern == "" {
		return len(names)
	}
	n := 0
	for i := range names {
		if ok, err := path.Match(pattern, d.FontName(text.Font(i))); err == nil && ok {
			n++
		}
	}
	return n
}
