package surface

import (
	"image"
	"slices"
	"sync"

	"github.com/gogpu/fbdraw/internal/color"
)

// Screen is an RGB565 framebuffer shared by a stack of windows.
//
// The window stack is guarded by a mutex; pixel writes are not
// synchronized and belong to whoever draws into a window.
type Screen struct {
	pix    []uint16
	width  int
	height int
	stride int

	mu      sync.Mutex
	windows []*Window // back to front

	damage *damageMap
}

// NewScreen creates a cleared w×h screen with packed rows.
func NewScreen(w, h int) *Screen {
	return NewScreenStride(w, h, w)
}

// NewScreenStride creates a cleared w×h screen whose rows are stride
// pixels apart. A stride below w is raised to w.
func NewScreenStride(w, h, stride int) *Screen {
	w, h = max(w, 0), max(h, 0)
	stride = max(stride, w)
	return &Screen{
		pix:    make([]uint16, stride*h),
		width:  w,
		height: h,
		stride: stride,
		damage: newDamageMap(w, h),
	}
}

// Size returns the screen size in pixels.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Bounds returns the screen rectangle.
func (s *Screen) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// Stride returns the row stride in pixels.
func (s *Screen) Stride() int {
	return s.stride
}

// Pixels returns the framebuffer.
func (s *Screen) Pixels() []uint16 {
	return s.pix
}

// At returns the packed pixel at (x, y), 0 outside the screen.
func (s *Screen) At(x, y int) uint16 {
	if !image.Pt(x, y).In(s.Bounds()) {
		return 0
	}
	return s.pix[y*s.stride+x]
}

// Clear fills the whole screen with c and marks it damaged.
func (s *Screen) Clear(c uint16) {
	for y := 0; y < s.height; y++ {
		row := s.pix[y*s.stride : y*s.stride+s.width]
		for i := range row {
			row[i] = c
		}
	}
	s.damage.markAll()
}

// NewWindow opens a window over r, clipped to the screen, on top of the
// stack.
func (s *Screen) NewWindow(r image.Rectangle) *Window {
	w := &Window{screen: s, rect: r.Canon().Intersect(s.Bounds())}
	s.mu.Lock()
	s.windows = append(s.windows, w)
	s.mu.Unlock()
	return w
}

// Windows returns the open windows back to front.
func (s *Screen) Windows() []*Window {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.windows)
}

// Damage returns the tiles written since the last call, merged into
// horizontal runs and clipped to the screen, and resets the record.
func (s *Screen) Damage() []image.Rectangle {
	rows := s.damage.takeRows()
	b := s.Bounds()
	for i := range rows {
		rows[i] = rows[i].Intersect(b)
	}
	return rows
}

// DamagedTiles returns the number of tiles written since the last Damage.
func (s *Screen) DamagedTiles() int {
	return s.damage.count()
}

// Snapshot returns a copy of the screen as an RGBA image.
func (s *Screen) Snapshot() *image.RGBA {
	img := image.NewRGBA(s.Bounds())
	for y := 0; y < s.height; y++ {
		row := s.pix[y*s.stride:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < s.width; x++ {
			r, g, b := color.Unpack565(row[x])
			dst[4*x+0] = r
			dst[4*x+1] = g
			dst[4*x+2] = b
			dst[4*x+3] = 0xFF
		}
	}
	return img
}

// occlusion returns the parts of w covered by windows above it, in w's
// coordinates.
func (s *Screen) occlusion(w *Window) []image.Rectangle {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.Index(s.windows, w)
	if i < 0 {
		return nil
	}
	var out []image.Rectangle
	for _, above := range s.windows[i+1:] {
		if r := above.rect.Intersect(w.rect); !r.Empty() {
			out = append(out, r.Sub(w.rect.Min))
		}
	}
	return out
}

func (s *Screen) restack(w *Window, top bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.Index(s.windows, w)
	if i < 0 {
		return
	}
	s.windows = slices.Delete(s.windows, i, i+1)
	if top {
		s.windows = append(s.windows, w)
	} else {
		s.windows = slices.Insert(s.windows, 0, w)
	}
}

func (s *Screen) remove(w *Window) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.Index(s.windows, w); i >= 0 {
		s.windows = slices.Delete(s.windows, i, i+1)
	}
}
