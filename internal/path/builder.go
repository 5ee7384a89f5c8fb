// Package path implements the begin/vertex/end path builder: it accumulates
// the vertices of one logical shape, split into contours by gaps.
package path

import (
	"errors"
	"iter"

	"github.com/chewxy/math32"
)

// Kind is the kind of shape a path was opened for.
type Kind int

const (
	// KindNone means no path is open.
	KindNone Kind = iota
	// KindPoints draws each vertex as a single pixel.
	KindPoints
	// KindLine connects consecutive vertices.
	KindLine
	// KindLoop connects consecutive vertices and closes each contour.
	KindLoop
	// KindPolygon fills the interior.
	KindPolygon
	// KindComplexPolygon fills several independent contours in one pass.
	KindComplexPolygon
)

var kindNames = [...]string{"none", "points", "line", "loop", "polygon", "complex polygon"}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Sentinel errors for path building.
var (
	// ErrNotStarted is returned when a path is ended that was never begun.
	ErrNotStarted = errors.New("path: end without matching begin")

	// ErrKindMismatch is returned when the end call names a different kind
	// than the begin call.
	ErrKindMismatch = errors.New("path: end kind does not match begin kind")
)

// Vertex is a path vertex in device coordinates.
// Gap marks the first vertex of a new contour.
type Vertex struct {
	X, Y float32
	Gap  bool
}

// Round converts a coordinate to a device pixel.
// It is the only rounding rule used for path geometry.
func Round(v float32) int {
	return int(math32.Floor(v + 0.5))
}

// Pixel returns the vertex rounded to device pixels.
func (v Vertex) Pixel() (x, y int) {
	return Round(v.X), Round(v.Y)
}

// Builder accumulates vertices between a begin and an end call.
// The vertex buffer is retained across shapes and grows geometrically.
//
// The zero value is an idle builder ready for use.
type Builder struct {
	kind       Kind
	verts      []Vertex
	gapStart   int  // index of the first vertex of the current contour
	pendingGap bool // next vertex starts a new contour
}

// Begin opens a path of kind k, discarding any unfinished path.
func (b *Builder) Begin(k Kind) {
	b.kind = k
	b.verts = b.verts[:0]
	b.gapStart = 0
	b.pendingGap = false
}

// Kind returns the open path kind, or KindNone when idle.
func (b *Builder) Kind() Kind {
	return b.kind
}

// Active reports whether a path is open.
func (b *Builder) Active() bool {
	return b.kind != KindNone
}

// Len returns the number of accumulated vertices.
func (b *Builder) Len() int {
	return len(b.verts)
}

// Add appends a vertex. It is a no-op when no path is open and reports
// whether the vertex was recorded.
func (b *Builder) Add(x, y float32) bool {
	if b.kind == KindNone {
		return false
	}
	gap := b.pendingGap
	if gap {
		b.gapStart = len(b.verts)
		b.pendingGap = false
	}
	b.verts = append(b.verts, Vertex{X: x, Y: y, Gap: gap && len(b.verts) > 0})
	return true
}

// Gap ends the current contour; the next vertex starts a new one.
// For loops and polygons, contours with fewer than three vertices are
// dropped and longer ones are closed back to their first vertex.
func (b *Builder) Gap() {
	switch b.kind {
	case KindNone:
		return
	case KindPoints, KindLine:
		b.gapStart = len(b.verts)
	default:
		b.closeContour()
	}
	b.pendingGap = true
}

// closeContour applies the gap rule to the contour starting at gapStart.
func (b *Builder) closeContour() {
	n := len(b.verts) - b.gapStart
	switch {
	case n <= 0:
		return
	case n <= 2:
		b.verts = b.verts[:b.gapStart]
	default:
		first := b.verts[b.gapStart]
		last := b.verts[len(b.verts)-1]
		if first.X != last.X || first.Y != last.Y {
			b.verts = append(b.verts, Vertex{X: first.X, Y: first.Y})
		}
	}
	b.gapStart = len(b.verts)
}

// End closes the path and returns its vertices. The returned slice is only
// valid until the next Begin. The builder is idle afterwards, even when an
// error is returned.
func (b *Builder) End(k Kind) ([]Vertex, error) {
	open := b.kind
	b.kind = KindNone
	b.pendingGap = false
	switch {
	case open == KindNone:
		return nil, ErrNotStarted
	case open != k:
		b.verts = b.verts[:0]
		return nil, ErrKindMismatch
	}
	if k == KindPolygon || k == KindComplexPolygon {
		b.closeContour()
	}
	return b.verts, nil
}

// Contours splits a vertex sequence at gap markers.
func Contours(verts []Vertex) iter.Seq[[]Vertex] {
	return func(yield func([]Vertex) bool) {
		start := 0
		for i := 1; i <= len(verts); i++ {
			if i < len(verts) && !verts[i].Gap {
				continue
			}
			if i > start && !yield(verts[start:i]) {
				return
			}
			start = i
		}
	}
}
