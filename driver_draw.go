package fbdraw

import "github.com/gogpu/fbdraw/internal/raster"

// LineStyle selects the stroke pattern.
type LineStyle int

// Line styles. Only LineSolid and LineDot change the output; the other
// patterns draw solid.
const (
	LineSolid LineStyle = iota
	LineDash
	LineDot
	LineDashDot
	LineDashDotDot
)

// SetLineStyle sets the stroke pattern for subsequent lines, loops, arcs
// and rectangle outlines. Widths other than 0 or 1 and dash arrays are
// accepted and ignored.
func (d *Driver) SetLineStyle(style LineStyle, width int, dashes []byte) {
	d.lineStyle = style
	d.raster.SetDotted(style == LineDot)
	if width > 1 || len(dashes) > 0 {
		Logger().Debug("fbdraw: line width and dashes ignored", "width", width, "dashes", len(dashes))
	}
}

// LineStyle returns the current stroke pattern.
func (d *Driver) LineStyle() LineStyle {
	return d.lineStyle
}

// Point draws one pixel.
func (d *Driver) Point(x, y int) {
	d.raster.Point(x, y)
}

// Rect strokes the outline of the w×h rectangle at (x, y).
func (d *Driver) Rect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	hline, vline := d.raster.HLine, d.raster.VLine
	switch _, _, _, _, res := d.ClipBox(x, y, w, h); res {
	case ClipOutside:
		return
	case ClipInside:
		hline, vline = d.raster.HLineUnclipped, d.raster.VLineUnclipped
	}
	r, b := x+w-1, y+h-1
	hline(x, r, y)
	if h > 1 {
		hline(x, r, b)
	}
	if h > 2 {
		vline(x, y+1, b-1)
		if w > 1 {
			vline(r, y+1, b-1)
		}
	}
}

// RectF fills the w×h rectangle at (x, y).
func (d *Driver) RectF(x, y, w, h int) {
	switch _, _, _, _, res := d.ClipBox(x, y, w, h); res {
	case ClipInside:
		d.raster.FillRectUnclipped(x, y, w, h)
	case ClipPartial:
		d.raster.FillRect(x, y, w, h)
	}
}

// RectFRGB fills a rectangle with an RGB color without changing the
// current color.
func (d *Driver) RectFRGB(x, y, w, h int, r, g, b uint8) {
	saved := d.color
	d.SetColorRGB(r, g, b)
	d.RectF(x, y, w, h)
	d.SetColor(saved)
}

// Line draws a line from (x, y) to (x1, y1), both ends included.
func (d *Driver) Line(x, y, x1, y1 int) {
	d.raster.Line(x, y, x1, y1)
}

// Line3 draws the two-segment polyline through three points.
func (d *Driver) Line3(x, y, x1, y1, x2, y2 int) {
	d.raster.Polyline([]raster.Point{{X: x, Y: y}, {X: x1, Y: y1}, {X: x2, Y: y2}})
}

// XYLine draws a horizontal line from (x, y) to (x1, y).
func (d *Driver) XYLine(x, y, x1 int) {
	d.hline(x, x1, y)
}

// XYLine2 draws a horizontal line to x1, then a vertical one to y2.
func (d *Driver) XYLine2(x, y, x1, y2 int) {
	d.hline(x, x1, y)
	d.vline(x1, y, y2)
}

// XYLine3 draws horizontal, vertical, horizontal lines ending at (x3, y2).
func (d *Driver) XYLine3(x, y, x1, y2, x3 int) {
	d.hline(x, x1, y)
	d.vline(x1, y, y2)
	d.hline(x1, x3, y2)
}

// YXLine draws a vertical line from (x, y) to (x, y1).
func (d *Driver) YXLine(x, y, y1 int) {
	d.vline(x, y, y1)
}

// YXLine2 draws a vertical line to y1, then a horizontal one to x2.
func (d *Driver) YXLine2(x, y, y1, x2 int) {
	d.vline(x, y, y1)
	d.hline(x, x2, y1)
}

// YXLine3 draws vertical, horizontal, vertical lines ending at (x2, y3).
func (d *Driver) YXLine3(x, y, y1, x2, y3 int) {
	d.vline(x, y, y1)
	d.hline(x, x2, y1)
	d.vline(x2, y1, y3)
}

// hline draws a horizontal run, without clip tests when it is entirely
// visible.
func (d *Driver) hline(x0, x1, y int) {
	switch _, _, _, _, res := d.ClipBox(min(x0, x1), y, max(x0, x1)-min(x0, x1)+1, 1); res {
	case ClipInside:
		d.raster.HLineUnclipped(x0, x1, y)
	case ClipPartial:
		d.raster.HLine(x0, x1, y)
	}
}

// vline is hline for vertical runs.
func (d *Driver) vline(x, y0, y1 int) {
	switch _, _, _, _, res := d.ClipBox(x, min(y0, y1), 1, max(y0, y1)-min(y0, y1)+1); res {
	case ClipInside:
		d.raster.VLineUnclipped(x, y0, y1)
	case ClipPartial:
		d.raster.VLine(x, y0, y1)
	}
}

// Loop3 strokes a triangle.
func (d *Driver) Loop3(x0, y0, x1, y1, x2, y2 int) {
	d.raster.Polyline([]raster.Point{
		{X: x0, Y: y0}, {X: x1, Y: y1}, {X: x2, Y: y2}, {X: x0, Y: y0},
	})
}

// Loop4 strokes a quadrilateral.
func (d *Driver) Loop4(x0, y0, x1, y1, x2, y2, x3, y3 int) {
	d.raster.Polyline([]raster.Point{
		{X: x0, Y: y0}, {X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}, {X: x0, Y: y0},
	})
}

// Polygon3 fills a triangle.
func (d *Driver) Polygon3(x0, y0, x1, y1, x2, y2 int) {
	d.raster.FillPolygon([]raster.Point{{X: x0, Y: y0}, {X: x1, Y: y1}, {X: x2, Y: y2}})
}

// Polygon4 fills a quadrilateral.
func (d *Driver) Polygon4(x0, y0, x1, y1, x2, y2, x3, y3 int) {
	d.raster.FillPolygon([]raster.Point{
		{X: x0, Y: y0}, {X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3},
	})
}

// Arc strokes the part of the ellipse inscribed in the w×h box at (x, y)
// from angle a1 to a2, in degrees counter-clockwise from 3 o'clock.
func (d *Driver) Arc(x, y, w, h int, a1, a2 float64) {
	d.raster.Arc(x, y, w, h, a1, a2)
}

// Pie fills the sector of the ellipse inscribed in the w×h box at (x, y)
// from angle a1 to a2.
func (d *Driver) Pie(x, y, w, h int, a1, a2 float64) {
	d.raster.Pie(x, y, w, h, a1, a2)
}
