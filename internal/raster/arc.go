package raster

import (
	"math"

	"github.com/gogpu/fbdraw/internal/path"
)

// round is the device rounding rule: floor(v + 0.5).
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// EllipseArc appends points along the ellipse centered at (cx, cy) from
// angle a1 to a2. Angles are in degrees, counter-clockwise from 3 o'clock;
// screen y grows downwards. Spans of 360 degrees or more give the full
// ellipse.
func EllipseArc(dst []Point, cx, cy, rx, ry, a1, a2 float64) []Point {
	if a2-a1 >= 360 || a1-a2 >= 360 {
		a1, a2 = 0, 360
	}
	n := path.Segments(float32(max(rx, ry)))
	steps := int(math.Ceil(float64(n) * math.Abs(a2-a1) / 360))
	if steps < 1 {
		steps = 1
	}
	t0 := a1 * math.Pi / 180
	dt := (a2 - a1) * math.Pi / 180 / float64(steps)
	for i := 0; i <= steps; i++ {
		t := t0 + float64(i)*dt
		p := Point{X: round(cx + rx*math.Cos(t)), Y: round(cy - ry*math.Sin(t))}
		if len(dst) > 0 && dst[len(dst)-1] == p {
			continue
		}
		dst = append(dst, p)
	}
	return dst
}

// Arc strokes the part of the ellipse inscribed in the w×h box at (x, y)
// between angles a1 and a2. Vertices lie on pixel centers so the stroke
// stays inside the box.
func (r *Rasterizer) Arc(x, y, w, h int, a1, a2 float64) {
	if !r.ready() || w <= 0 || h <= 0 {
		return
	}
	rx := float64(w-1) / 2
	ry := float64(h-1) / 2
	pts := EllipseArc(nil, float64(x)+rx, float64(y)+ry, rx, ry, a1, a2)
	r.Polyline(pts)
}

// Pie fills the sector of the ellipse inscribed in the w×h box at (x, y)
// between angles a1 and a2. The box edges are used as the ellipse bounds so
// that a full pie covers the same pixels as a polygon of the same outline.
func (r *Rasterizer) Pie(x, y, w, h int, a1, a2 float64) {
	if !r.ready() || w <= 0 || h <= 0 {
		return
	}
	rx := float64(w) / 2
	ry := float64(h) / 2
	cx := float64(x) + rx
	cy := float64(y) + ry
	pts := EllipseArc(nil, cx, cy, rx, ry, a1, a2)
	if a2-a1 < 360 && a1-a2 < 360 {
		pts = append(pts, Point{X: round(cx), Y: round(cy)})
	}
	r.FillPolygon(pts)
}
