// Package raster writes clipped primitives into an RGB565 target: spans,
// points, lines, rectangles, even-odd filled polygons, ellipse arcs and
// image blits.
package raster

import (
	"math/bits"

	"github.com/gogpu/fbdraw/internal/clip"
	"github.com/gogpu/fbdraw/internal/color"
)

// Point is an integer device coordinate.
type Point struct {
	X, Y int
}

// Rasterizer draws primitives into a Target through a clip region.
// A pixel is written only if it lies inside one of the region's rectangles.
//
// Rasterizer keeps its scratch buffers between calls and is not safe for
// concurrent use.
type Rasterizer struct {
	dst    Target
	clip   *clip.Region
	color  color.RGB565
	dotted bool

	aet   *ActiveEdgeTable
	edges []Edge
	row   []color.RGB565
}

// NewRasterizer creates a rasterizer with no target.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		clip: &clip.Region{},
		aet:  NewActiveEdgeTable(),
	}
}

// Bind sets the destination and the clip region. The region is referenced,
// not copied; later changes to it apply to subsequent calls.
func (r *Rasterizer) Bind(dst Target, region *clip.Region) {
	r.dst = dst
	if region == nil {
		region = &clip.Region{}
	}
	r.clip = region
}

// SetColor sets the packed drawing color.
func (r *Rasterizer) SetColor(c color.RGB565) {
	r.color = c
}

// Color returns the packed drawing color.
func (r *Rasterizer) Color() color.RGB565 {
	return r.color
}

// SetDotted selects a dotted pattern for strokes. Fills are never dotted.
func (r *Rasterizer) SetDotted(dotted bool) {
	r.dotted = dotted
}

func (r *Rasterizer) ready() bool {
	return r.dst != nil && !r.clip.IsEmpty()
}

// dot reports whether a stroke pixel is part of the current pattern.
func (r *Rasterizer) dot(x, y int) bool {
	return !r.dotted || (x+y)&1 == 0
}

// Point writes one pixel if it is visible.
func (r *Rasterizer) Point(x, y int) {
	if !r.ready() || !r.clip.Contains(x, y) {
		return
	}
	r.dst.SetPixel(x, y, r.color)
}

// fillSpan fills [x0, x1) on row y through the clip.
func (r *Rasterizer) fillSpan(x0, x1, y int) {
	for _, c := range r.clip.Rects() {
		if y < c.Y || y >= c.Bottom() {
			continue
		}
		a := max(x0, c.X)
		b := min(x1, c.Right())
		if a < b {
			r.dst.FillSpan(a, b, y, r.color)
		}
	}
}

// strokeSpan is fillSpan honoring the dot pattern.
func (r *Rasterizer) strokeSpan(x0, x1, y int) {
	if !r.dotted {
		r.fillSpan(x0, x1, y)
		return
	}
	for _, c := range r.clip.Rects() {
		if y < c.Y || y >= c.Bottom() {
			continue
		}
		for x := max(x0, c.X); x < min(x1, c.Right()); x++ {
			if r.dot(x, y) {
				r.dst.SetPixel(x, y, r.color)
			}
		}
	}
}

// HLine draws the horizontal run from x0 to x1 inclusive on row y.
// The cost is proportional to the number of clip rectangles plus the
// number of written pixels.
func (r *Rasterizer) HLine(x0, x1, y int) {
	if !r.ready() {
		return
	}
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	r.strokeSpan(x0, x1+1, y)
}

// VLine draws the vertical run from y0 to y1 inclusive in column x.
func (r *Rasterizer) VLine(x, y0, y1 int) {
	if !r.ready() {
		return
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for _, c := range r.clip.Rects() {
		if x < c.X || x >= c.Right() {
			continue
		}
		for y := max(y0, c.Y); y < min(y1+1, c.Bottom()); y++ {
			if r.dot(x, y) {
				r.dst.SetPixel(x, y, r.color)
			}
		}
	}
}

// Line draws a one pixel wide line including both end points.
// Axis-aligned lines use the run writers, so they write exactly the same
// pixels as HLine and VLine.
func (r *Rasterizer) Line(x0, y0, x1, y1 int) {
	if !r.ready() {
		return
	}
	switch {
	case y0 == y1:
		r.HLine(x0, x1, y0)
		return
	case x0 == x1:
		r.VLine(x0, y0, y1)
		return
	}

	box := clip.NewRect(min(x0, x1), min(y0, y1), abs(x1-x0)+1, abs(y1-y0)+1)
	_, res := r.clip.Classify(box)
	if res == clip.Outside {
		return
	}
	unclipped := res == clip.Inside

	// Step along the major axis from its lower end, so both directions
	// of a segment give the same pixels.
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0, x1, y1 = y0, x0, y1, x1
	}
	if x0 > x1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	n := uint64(x1 - x0)
	d := uint64(abs(y1 - y0))
	sy := 1
	if y1 < y0 {
		sy = -1
	}

	// Only steps inside the clip bounds are visited.
	b := r.clip.Bounds()
	lo, hi := b.X, b.Right()-1
	if steep {
		lo, hi = b.Y, b.Bottom()-1
	}
	for x := max(x0, lo); x <= min(x1, hi); x++ {
		px, py := x, y0+sy*int(lineStep(uint64(x-x0), d, n))
		if steep {
			px, py = py, px
		}
		if r.dot(px, py) && (unclipped || r.clip.Contains(px, py)) {
			r.dst.SetPixel(px, py, r.color)
		}
	}
}

// lineStep returns the minor axis offset of step i of a line that rises
// d over n steps: floor(i*d/n + 1/2), computed without overflow.
func lineStep(i, d, n uint64) uint64 {
	hi, lo := bits.Mul64(2*i, d)
	var carry uint64
	lo, carry = bits.Add64(lo, n, 0)
	q, _ := bits.Div64(hi+carry, lo, 2*n)
	return q
}

// Polyline connects consecutive points.
func (r *Rasterizer) Polyline(pts []Point) {
	switch len(pts) {
	case 0:
		return
	case 1:
		r.Point(pts[0].X, pts[0].Y)
		return
	}
	for i := 1; i < len(pts); i++ {
		r.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y)
	}
}

// FillRect fills the w×h rectangle at (x, y) through the clip.
func (r *Rasterizer) FillRect(x, y, w, h int) {
	if !r.ready() || w <= 0 || h <= 0 {
		return
	}
	rect := clip.NewRect(x, y, w, h)
	for _, c := range r.clip.Rects() {
		v := c.Intersect(rect)
		for yy := v.Y; yy < v.Bottom(); yy++ {
			r.dst.FillSpan(v.X, v.Right(), yy, r.color)
		}
	}
}

// FillRectUnclipped fills without consulting the clip. The caller must have
// established that the rectangle lies entirely inside the clip region.
func (r *Rasterizer) FillRectUnclipped(x, y, w, h int) {
	if r.dst == nil {
		return
	}
	for yy := y; yy < y+h; yy++ {
		r.dst.FillSpan(x, x+w, yy, r.color)
	}
}

// HLineUnclipped is HLine without the clip test. The same precondition as
// FillRectUnclipped applies.
func (r *Rasterizer) HLineUnclipped(x0, x1, y int) {
	if r.dst == nil {
		return
	}
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if !r.dotted {
		r.dst.FillSpan(x0, x1+1, y, r.color)
		return
	}
	for x := x0; x <= x1; x++ {
		if r.dot(x, y) {
			r.dst.SetPixel(x, y, r.color)
		}
	}
}

// VLineUnclipped is VLine without the clip test.
func (r *Rasterizer) VLineUnclipped(x, y0, y1 int) {
	if r.dst == nil {
		return
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		if r.dot(x, y) {
			r.dst.SetPixel(x, y, r.color)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
