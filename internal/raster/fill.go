package raster

import (
	"math"

	"github.com/gogpu/fbdraw/internal/clip"
)

// FillPolygon fills the union of the given contours using the even-odd rule.
// Each contour is closed implicitly. A pixel is filled when its center lies
// inside, so polygons sharing an edge tile without gaps or overlap.
func (r *Rasterizer) FillPolygon(contours ...[]Point) {
	if !r.ready() {
		return
	}

	r.edges = r.edges[:0]
	yMin, yMax := math.MaxInt, math.MinInt
	for _, c := range contours {
		if len(c) < 2 {
			continue
		}
		for i := range c {
			p0 := c[i]
			p1 := c[(i+1)%len(c)]
			yMin = min(yMin, p0.Y)
			yMax = max(yMax, p0.Y)
			if e, ok := NewEdge(p0, p1); ok {
				r.edges = append(r.edges, e)
			}
		}
	}
	if len(r.edges) < 2 {
		return
	}

	// Clamp to clip bounds
	bounds := r.clip.Bounds()
	yMin = max(yMin, bounds.Y)
	yMax = min(yMax, bounds.Bottom())

	for y := yMin; y < yMax; y++ {
		r.scanline(y)
	}
}

// scanline fills row y sampling at the pixel center.
func (r *Rasterizer) scanline(y int) {
	scanY := float64(y) + 0.5

	r.aet.Clear()
	for i := range r.edges {
		if r.edges[i].Crosses(scanY) {
			r.aet.Add(&r.edges[i], scanY)
		}
	}
	xs := r.aet.Crossings()
	if len(xs) < 2 {
		return
	}
	r.aet.Sort()

	// Fill spans based on fill rule
	for i := 0; i+1 < len(xs); i += 2 {
		x0 := int(math.Ceil(xs[i] - 0.5))
		x1 := int(math.Ceil(xs[i+1] - 0.5))
		if x0 < x1 {
			r.fillSpan(x0, x1, y)
		}
	}
}

// PolygonBounds returns the pixel bounds FillPolygon may touch.
func PolygonBounds(contours ...[]Point) clip.Rect {
	var b clip.Rect
	for _, c := range contours {
		for _, p := range c {
			b = b.Union(clip.NewRect(p.X, p.Y, 1, 1))
		}
	}
	return b
}
