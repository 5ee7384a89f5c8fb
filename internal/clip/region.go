package clip

// Result classifies a rectangle against a region.
type Result int

const (
	// Inside means the rectangle is fully visible.
	Inside Result = iota
	// Partial means some but not all of the rectangle is visible.
	Partial
	// Outside means nothing of the rectangle is visible.
	Outside
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case Inside:
		return "Inside"
	case Partial:
		return "Partial"
	case Outside:
		return "Outside"
	default:
		return "Unknown"
	}
}

// Region is a union of non-overlapping rectangles.
// The zero value is the empty region.
//
// Every operation preserves the invariant that no two member rectangles
// overlap, so the area of a region is the sum of its member areas.
type Region struct {
	rects []Rect
}

// NewRegion creates a region covering r.
func NewRegion(r Rect) *Region {
	reg := &Region{}
	reg.Set(r)
	return reg
}

// Set replaces the region with a single rectangle.
func (g *Region) Set(r Rect) {
	g.rects = g.rects[:0]
	if !r.IsEmpty() {
		g.rects = append(g.rects, r)
	}
}

// Clear empties the region.
func (g *Region) Clear() {
	g.rects = g.rects[:0]
}

// Clone returns an independent copy.
func (g *Region) Clone() *Region {
	c := &Region{rects: make([]Rect, len(g.rects))}
	copy(c.rects, g.rects)
	return c
}

// CopyFrom replaces the contents of g with those of o, reusing storage.
func (g *Region) CopyFrom(o *Region) {
	g.rects = append(g.rects[:0], o.rects...)
}

// Rects returns the member rectangles. The slice must not be modified.
func (g *Region) Rects() []Rect {
	return g.rects
}

// IsEmpty returns true if the region covers no pixels.
func (g *Region) IsEmpty() bool {
	return len(g.rects) == 0
}

// Area returns the number of covered pixels.
func (g *Region) Area() int {
	n := 0
	for _, r := range g.rects {
		n += r.Area()
	}
	return n
}

// Bounds returns the bounding rectangle of the region.
func (g *Region) Bounds() Rect {
	var b Rect
	for _, r := range g.rects {
		b = b.Union(r)
	}
	return b
}

// Contains returns true if pixel (x, y) is covered.
func (g *Region) Contains(x, y int) bool {
	for _, r := range g.rects {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// IntersectRect clips the region to r in place.
func (g *Region) IntersectRect(r Rect) {
	j := 0
	for _, m := range g.rects {
		if c := m.Intersect(r); !c.IsEmpty() {
			g.rects[j] = c
			j++
		}
	}
	g.rects = g.rects[:j]
}

// Intersect clips the region to o in place.
// Pairwise intersections of two disjoint sets are themselves disjoint.
func (g *Region) Intersect(o *Region) {
	if len(o.rects) == 1 {
		g.IntersectRect(o.rects[0])
		return
	}
	out := make([]Rect, 0, len(g.rects))
	for _, a := range g.rects {
		for _, b := range o.rects {
			if c := a.Intersect(b); !c.IsEmpty() {
				out = append(out, c)
			}
		}
	}
	g.rects = out
}

// SubtractRect removes r from the region in place.
func (g *Region) SubtractRect(r Rect) {
	if r.IsEmpty() {
		return
	}
	out := make([]Rect, 0, len(g.rects)+3)
	for _, m := range g.rects {
		out = append(out, m.Subtract(r)...)
	}
	g.rects = out
}

// UnionRect adds r to the region in place. Parts of r already covered
// are not added twice.
func (g *Region) UnionRect(r Rect) {
	if r.IsEmpty() {
		return
	}
	pieces := []Rect{r}
	for _, m := range g.rects {
		var next []Rect
		for _, p := range pieces {
			next = append(next, p.Subtract(m)...)
		}
		pieces = next
		if len(pieces) == 0 {
			return
		}
	}
	g.rects = append(g.rects, pieces...)
}

// Classify intersects r with the region and reports the bounding box of
// the visible part together with how much of r is visible.
func (g *Region) Classify(r Rect) (Rect, Result) {
	if r.IsEmpty() {
		return Rect{}, Outside
	}
	var box Rect
	covered := 0
	for _, m := range g.rects {
		c := m.Intersect(r)
		if c.IsEmpty() {
			continue
		}
		box = box.Union(c)
		covered += c.Area()
	}
	switch {
	case covered == 0:
		return Rect{}, Outside
	case covered == r.Area():
		return r, Inside
	default:
		return box, Partial
	}
}

// Overlaps returns true if any pixel of r is covered.
func (g *Region) Overlaps(r Rect) bool {
	for _, m := range g.rects {
		if m.Intersects(r) {
			return true
		}
	}
	return false
}

// Equal reports whether both regions cover the same pixels.
func (g *Region) Equal(o *Region) bool {
	if g.Area() != o.Area() {
		return false
	}
	c := g.Clone()
	c.Intersect(o)
	return c.Area() == g.Area()
}
