package surface

import "image"

// Window is a rectangle of a Screen. It satisfies fbdraw.Window.
type Window struct {
	screen *Screen
	rect   image.Rectangle // screen coordinates
	closed bool
}

// Bounds returns the window rectangle in screen coordinates.
func (w *Window) Bounds() image.Rectangle {
	return w.rect
}

// Size returns the window size in pixels.
func (w *Window) Size() (width, height int) {
	if w.closed {
		return 0, 0
	}
	return w.rect.Dx(), w.rect.Dy()
}

// Pixels returns the framebuffer starting at the window's top-left pixel
// and the row stride in pixels.
func (w *Window) Pixels() ([]uint16, int) {
	if w.closed || w.rect.Empty() {
		return nil, 0
	}
	s := w.screen
	return s.pix[w.rect.Min.Y*s.stride+w.rect.Min.X:], s.stride
}

// Occlusion returns the window-local rectangles hidden by windows above.
func (w *Window) Occlusion() []image.Rectangle {
	if w.closed {
		return nil
	}
	return w.screen.occlusion(w)
}

// Damage records a write to r, given in window coordinates.
func (w *Window) Damage(r image.Rectangle) {
	if w.closed {
		return
	}
	w.screen.damage.markRect(r.Add(w.rect.Min).Intersect(w.rect))
}

// Move places the top-left corner at (x, y), keeping the window on the
// screen. Pixels are not moved.
func (w *Window) Move(x, y int) {
	sw, sh := w.screen.Size()
	x = min(max(x, 0), sw-w.rect.Dx())
	y = min(max(y, 0), sh-w.rect.Dy())
	w.rect = w.rect.Add(image.Pt(x, y).Sub(w.rect.Min))
}

// Raise moves the window to the top of the stack.
func (w *Window) Raise() {
	w.screen.restack(w, true)
}

// Lower moves the window to the bottom of the stack.
func (w *Window) Lower() {
	w.screen.restack(w, false)
}

// Close removes the window from the screen. A closed window has no pixels.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.screen.remove(w)
}
