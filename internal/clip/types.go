// Package clip implements the integer clip-region algebra used by the
// framebuffer driver: rectangles, complex regions built from non-overlapping
// rectangles, and the push/pop clip stack.
package clip

import "image"

// Rect is an axis-aligned rectangle in device pixels.
// A rectangle with W <= 0 or H <= 0 covers nothing.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a Rect from position and size.
// Negative sizes are clamped to zero.
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// FromImage converts an image.Rectangle.
func FromImage(r image.Rectangle) Rect {
	r = r.Canon()
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// Image converts the rectangle to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Area returns W*H, or 0 for empty rectangles.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.W * r.H
}

// Contains returns true if pixel (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect returns true if o lies entirely inside r.
// An empty o is contained in everything.
func (r Rect) ContainsRect(o Rect) bool {
	if o.IsEmpty() {
		return true
	}
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersects returns true if the rectangles share at least one pixel.
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersect(o).IsEmpty()
}

// Intersect returns the intersection of two rectangles.
// Returns the zero Rect if they don't intersect.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())

	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle containing both.
// Empty operands are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	x1 := max(r.Right(), o.Right())
	y1 := max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Subtract returns the parts of r not covered by o as up to four
// non-overlapping rectangles: a top band, a bottom band, then the left and
// right pieces of the middle band.
func (r Rect) Subtract(o Rect) []Rect {
	if r.IsEmpty() {
		return nil
	}
	cut := r.Intersect(o)
	if cut.IsEmpty() {
		return []Rect{r}
	}
	out := make([]Rect, 0, 4)
	if cut.Y > r.Y {
		out = append(out, Rect{X: r.X, Y: r.Y, W: r.W, H: cut.Y - r.Y})
	}
	if cut.Bottom() < r.Bottom() {
		out = append(out, Rect{X: r.X, Y: cut.Bottom(), W: r.W, H: r.Bottom() - cut.Bottom()})
	}
	if cut.X > r.X {
		out = append(out, Rect{X: r.X, Y: cut.Y, W: cut.X - r.X, H: cut.H})
	}
	if cut.Right() < r.Right() {
		out = append(out, Rect{X: cut.Right(), Y: cut.Y, W: r.Right() - cut.Right(), H: cut.H})
	}
	return out
}
