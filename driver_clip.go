package fbdraw

import (
	"image"

	"github.com/gogpu/fbdraw/internal/clip"
)

// ClipResult classifies a rectangle against the active clip.
type ClipResult int

const (
	// ClipInside means the rectangle is fully visible.
	ClipInside ClipResult = iota
	// ClipPartial means the rectangle is partly visible.
	ClipPartial
	// ClipOutside means nothing of the rectangle is visible.
	ClipOutside
)

// String returns the result name.
func (r ClipResult) String() string {
	return clip.Result(r).String()
}

// Region is an opaque clip region, as returned by ClipRegion.
// A nil *Region means "no clip".
type Region struct {
	r *clip.Region
}

// NewRegion returns a region covering one rectangle.
func NewRegion(x, y, w, h int) *Region {
	return &Region{r: clip.NewRegion(clip.NewRect(x, y, w, h))}
}

// Bounds returns the bounding box of the region.
func (g *Region) Bounds() image.Rectangle {
	if g == nil {
		return image.Rectangle{}
	}
	return g.r.Bounds().Image()
}

// Empty reports whether the region covers no pixel.
func (g *Region) Empty() bool {
	return g != nil && g.r.IsEmpty()
}

// PushClip limits drawing to the intersection of the rectangle and the
// current clip. A rectangle with no area hides everything until popped.
func (d *Driver) PushClip(x, y, w, h int) {
	r := clip.NewRegion(clip.NewRect(x, y, w, h))
	if top := d.stack.Top(); top != nil {
		r.Intersect(top)
	}
	d.stack.Push(r)
	d.updateClip()
}

// PushNoClip suspends clipping until the matching PopClip. Drawing is
// still limited to the visible part of the window.
func (d *Driver) PushNoClip() {
	d.stack.PushNoClip()
	d.updateClip()
}

// PopClip restores the clip in effect before the last push. Popping an
// empty stack does nothing.
func (d *Driver) PopClip() {
	d.stack.Pop()
	d.updateClip()
}

// RestoreClip recomputes the active clip after the window's occlusion
// changed, for example when another window moved on top. The stack is
// left as is.
func (d *Driver) RestoreClip() {
	if d.bind != nil {
		d.bind.occlude()
	}
	d.updateClip()
}

// ClipDepth returns the number of pushed clip entries.
func (d *Driver) ClipDepth() int {
	return d.stack.Depth()
}

// ClipBox intersects the rectangle with the active clip. It returns the
// bounding box of the visible part and how much of the rectangle is
// visible. For ClipInside the box is the rectangle itself; for
// ClipOutside it is empty.
func (d *Driver) ClipBox(x, y, w, h int) (X, Y, W, H int, res ClipResult) {
	box, r := d.active.Classify(clip.NewRect(x, y, w, h))
	return box.X, box.Y, box.W, box.H, ClipResult(r)
}

// NotClipped reports whether any pixel of the rectangle is visible.
func (d *Driver) NotClipped(x, y, w, h int) bool {
	return d.active.Overlaps(clip.NewRect(x, y, w, h))
}

// ClipRegion returns a copy of the region on top of the clip stack, or nil
// if clipping is off.
func (d *Driver) ClipRegion() *Region {
	top := d.stack.Top()
	if top == nil {
		return nil
	}
	return &Region{r: top.Clone()}
}

// SetClipRegion replaces the region on top of the clip stack. nil turns
// clipping off for that entry.
func (d *Driver) SetClipRegion(r *Region) {
	if r == nil {
		d.stack.Replace(nil)
	} else {
		d.stack.Replace(r.r.Clone())
	}
	d.updateClip()
}
