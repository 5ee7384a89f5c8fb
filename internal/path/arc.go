package path

import "github.com/chewxy/math32"

// Segments returns the number of straight segments used to approximate a
// full ellipse with the larger radius r.
func Segments(r float32) int {
	n := 4 * int(math32.Ceil(math32.Sqrt(math32.Abs(r)*2)))
	if n < 8 {
		n = 8
	}
	return n
}

// Ellipse appends a closed elliptical contour centered at (cx, cy).
// It starts a contour of its own and the next vertex starts another one.
func (b *Builder) Ellipse(cx, cy, rx, ry float32) {
	if b.kind == KindNone {
		return
	}
	if len(b.verts) > b.gapStart {
		b.Gap()
	}
	n := Segments(max(math32.Abs(rx), math32.Abs(ry)))
	step := 2 * math32.Pi / float32(n)
	for i := 0; i < n; i++ {
		a := float32(i) * step
		b.Add(cx+rx*math32.Cos(a), cy-ry*math32.Sin(a))
	}
	b.Add(cx+rx, cy)
	b.Gap()
}

// Arc appends vertices along a circular arc centered at (cx, cy).
// Angles are in degrees, counter-clockwise from 3 o'clock with y pointing
// down on screen. end may be smaller than start to go clockwise.
func (b *Builder) Arc(cx, cy, r, start, end float32) {
	if b.kind == KindNone {
		return
	}
	a0 := start * math32.Pi / 180
	a1 := end * math32.Pi / 180
	span := math32.Abs(a1 - a0)
	n := int(math32.Ceil(float32(Segments(r)) * span / (2 * math32.Pi)))
	if n < 1 {
		n = 1
	}
	step := (a1 - a0) / float32(n)
	for i := 0; i <= n; i++ {
		a := a0 + float32(i)*step
		b.Add(cx+r*math32.Cos(a), cy-r*math32.Sin(a))
	}
}
