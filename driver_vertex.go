package fbdraw

import (
	"github.com/gogpu/fbdraw/internal/path"
	"github.com/gogpu/fbdraw/internal/raster"
)

// BeginPoints starts a path whose vertices are drawn as single pixels.
func (d *Driver) BeginPoints() { d.path.Begin(path.KindPoints) }

// BeginLine starts a polyline.
func (d *Driver) BeginLine() { d.path.Begin(path.KindLine) }

// BeginLoop starts a closed polyline.
func (d *Driver) BeginLoop() { d.path.Begin(path.KindLoop) }

// BeginPolygon starts a filled polygon.
func (d *Driver) BeginPolygon() { d.path.Begin(path.KindPolygon) }

// BeginComplexPolygon starts a filled polygon made of several contours
// separated by Gap. Overlapping contours cut holes (even-odd rule).
func (d *Driver) BeginComplexPolygon() { d.path.Begin(path.KindComplexPolygon) }

// EndPoints draws the vertices added since BeginPoints.
func (d *Driver) EndPoints() { d.endPath(path.KindPoints) }

// EndLine strokes the polyline started by BeginLine.
func (d *Driver) EndLine() { d.endPath(path.KindLine) }

// EndLoop strokes the loop started by BeginLoop.
func (d *Driver) EndLoop() { d.endPath(path.KindLoop) }

// EndPolygon fills the polygon started by BeginPolygon.
func (d *Driver) EndPolygon() { d.endPath(path.KindPolygon) }

// EndComplexPolygon fills the polygon started by BeginComplexPolygon.
func (d *Driver) EndComplexPolygon() { d.endPath(path.KindComplexPolygon) }

// Vertex adds a point to the open path. Without an open path it does
// nothing.
func (d *Driver) Vertex(x, y float64) {
	d.path.Add(float32(x), float32(y))
}

// TransformedVertex adds a point that is already in device coordinates.
// Coordinates reach the driver transformed, so it is the same as Vertex.
func (d *Driver) TransformedVertex(x, y float64) {
	d.Vertex(x, y)
}

// Gap ends the current contour; the next vertex starts a new one.
func (d *Driver) Gap() {
	d.path.Gap()
}

// Circle adds a circle contour to the open path. Outside a path it
// strokes the circle.
func (d *Driver) Circle(x, y, r float64) {
	if d.path.Active() {
		d.path.Ellipse(float32(x), float32(y), float32(r), float32(r))
		return
	}
	d.BeginLoop()
	d.path.Ellipse(float32(x), float32(y), float32(r), float32(r))
	d.EndLoop()
}

// PathArc adds the vertices of a circular arc to the open path. Angles
// are in degrees counter-clockwise from 3 o'clock.
func (d *Driver) PathArc(x, y, r, start, end float64) {
	d.path.Arc(float32(x), float32(y), float32(r), float32(start), float32(end))
}

// endPath closes the open path and draws it. A path ended with another
// kind than it was begun with is discarded.
func (d *Driver) endPath(k path.Kind) {
	verts, err := d.path.End(k)
	if err != nil {
		Logger().Warn("fbdraw: path discarded", "end", k.String(), "err", err)
		return
	}
	if len(verts) == 0 {
		return
	}

	rings := d.contours(verts)
	switch k {
	case path.KindPoints:
		for _, p := range d.pts {
			d.raster.Point(p.X, p.Y)
		}
	case path.KindLine:
		for _, ring := range rings {
			d.raster.Polyline(ring)
		}
	case path.KindLoop:
		for _, ring := range rings {
			if n := len(ring); n > 2 && ring[0] != ring[n-1] {
				ring = append(ring[:n:n], ring[0])
			}
			d.raster.Polyline(ring)
		}
	default:
		d.raster.FillPolygon(rings...)
	}
}

// contours rounds verts to pixels and splits them at gaps. The result
// shares the driver's scratch buffers.
func (d *Driver) contours(verts []path.Vertex) [][]raster.Point {
	d.pts = d.pts[:0]
	for _, v := range verts {
		x, y := v.Pixel()
		d.pts = append(d.pts, raster.Point{X: x, Y: y})
	}
	d.rings = d.rings[:0]
	start := 0
	for c := range path.Contours(verts) {
		d.rings = append(d.rings, d.pts[start:start+len(c):start+len(c)])
		start += len(c)
	}
	return d.rings
}
