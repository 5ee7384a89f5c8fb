package raster

import "slices"

// Edge represents a polygon side for scanline rasterization.
// Edges are stored top to bottom; horizontal sides are never stored.
type Edge struct {
	x0, y0 float64 // Upper end point
	x1, y1 float64 // Lower end point
	dx     float64 // dx/dy slope
}

// NewEdge creates an edge from two points. ok is false for horizontal
// sides, which never cross a scanline center.
func NewEdge(p0, p1 Point) (e Edge, ok bool) {
	if p0.Y == p1.Y {
		return Edge{}, false
	}
	if p0.Y > p1.Y {
		p0, p1 = p1, p0 // Swap to ensure y0 < y1
	}
	x0, y0 := float64(p0.X), float64(p0.Y)
	x1, y1 := float64(p1.X), float64(p1.Y)
	return Edge{
		x0: x0,
		y0: y0,
		x1: x1,
		y1: y1,
		dx: (x1 - x0) / (y1 - y0),
	}, true
}

// XAtY calculates the x coordinate at the given y coordinate.
func (e *Edge) XAtY(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dx
}

// Crosses reports whether the scanline at y intersects the edge.
// The interval is half-open so a vertex shared by two edges is counted once.
func (e *Edge) Crosses(y float64) bool {
	return e.y0 <= y && y < e.y1
}

// ActiveEdgeTable collects the crossings of one scanline.
type ActiveEdgeTable struct {
	xs []float64
}

// NewActiveEdgeTable creates a new active edge table.
func NewActiveEdgeTable() *ActiveEdgeTable {
	return &ActiveEdgeTable{
		xs: make([]float64, 0, 32),
	}
}

// Clear empties the table, keeping its storage.
func (aet *ActiveEdgeTable) Clear() {
	aet.xs = aet.xs[:0]
}

// Add records the crossing of edge at scanline y.
func (aet *ActiveEdgeTable) Add(edge *Edge, y float64) {
	aet.xs = append(aet.xs, edge.XAtY(y))
}

// Sort orders crossings left to right.
func (aet *ActiveEdgeTable) Sort() {
	slices.Sort(aet.xs)
}

// Crossings returns the recorded crossings.
func (aet *ActiveEdgeTable) Crossings() []float64 {
	return aet.xs
}
