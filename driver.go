package fbdraw

import (
	"image"

	"github.com/gogpu/fbdraw/internal/cache"
	"github.com/gogpu/fbdraw/internal/clip"
	"github.com/gogpu/fbdraw/internal/color"
	"github.com/gogpu/fbdraw/internal/path"
	"github.com/gogpu/fbdraw/internal/raster"
	"github.com/gogpu/fbdraw/text"
)

// Window is a drawable area of the window system.
//
// Pixels returns the RGB565 framebuffer starting at the window's top-left
// pixel and the row stride in pixels. Occlusion returns the window-local
// rectangles covered by other windows; nothing is drawn there.
//
// A Window may also implement Damage(image.Rectangle); the driver then
// reports every rectangle it writes, in window coordinates.
type Window interface {
	Pixels() ([]uint16, int)
	Size() (w, h int)
	Occlusion() []image.Rectangle
}

type damager interface {
	Damage(r image.Rectangle)
}

// binding is the surface the driver draws into. It is built completely
// before MakeCurrent publishes it.
type binding struct {
	win     Window
	target  raster.Target
	window  clip.Rect
	desktop clip.Region
}

// occlude derives the desktop region from the window's current occlusion.
func (b *binding) occlude() {
	b.desktop.Set(b.window)
	for _, r := range b.win.Occlusion() {
		b.desktop.SubtractRect(clip.FromImage(r))
	}
}

// Capabilities reports optional features of the bound surface.
type Capabilities struct {
	// AlphaBlending reports translucent compositing of arbitrary colors.
	AlphaBlending bool
}

// Driver draws into the framebuffer of the current window.
//
// All coordinates are window-local pixels. Drawing calls never fail: what
// cannot be drawn is skipped. Driver is not safe for concurrent use.
type Driver struct {
	bind   *binding
	stack  *clip.Stack
	active clip.Region // desktop ∩ top of stack

	raster *raster.Rasterizer
	path   path.Builder
	pts    []raster.Point
	rings  [][]raster.Point

	color     Color
	palette   color.Palette
	lineStyle LineStyle

	text      *text.Renderer
	glyphs    *text.GlyphCache
	fallback  bool
	defFont   text.Font
	defSize   int
	fontNames map[text.Font]string

	images *cache.Cache[Handle, *cachedImage]
	masks  map[Handle]Handle // mask handle -> image handle
}

// NewDriver creates a driver with no window bound.
func NewDriver(opts ...Option) *Driver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Driver{
		stack:     clip.NewStack(),
		raster:    raster.NewRasterizer(),
		palette:   color.DefaultPalette(),
		defFont:   o.font,
		defSize:   o.size,
		fontNames: make(map[text.Font]string),
		masks:     make(map[Handle]Handle),
	}
	d.raster.Bind(nil, &d.active)

	if o.provider == nil {
		p, err := text.NewGoFontProvider()
		if err != nil {
			Logger().Warn("fbdraw: bundled fonts unavailable, using bitmap font", "err", err)
			o.provider = &text.BasicProvider{}
		} else {
			o.provider = p
		}
	}
	d.glyphs = text.NewGlyphCache(o.glyphCacheSize)
	d.text = text.NewRenderer(o.provider, d.glyphs)

	d.images = cache.New[Handle, *cachedImage](0,
		cache.WithMaxCost[Handle, *cachedImage](o.imageCacheLimit),
		cache.WithEvict(func(h Handle, e *cachedImage) {
			if e.mask != 0 {
				delete(d.masks, e.mask)
			}
			Logger().Debug("fbdraw: image evicted", "handle", h)
		}),
	)

	d.SetColor(Foreground)
	d.SetFont(d.defFont, d.defSize)
	return d
}

// MakeCurrent binds w as the drawing target. A nil w unbinds the driver;
// drawing calls are then no-ops. Call MakeCurrent again after the window
// was resized or moved; a change of occlusion only needs RestoreClip.
//
// The clip stack is kept across bindings.
func (d *Driver) MakeCurrent(w Window) {
	if w == nil {
		d.bind = nil
		d.raster.Bind(nil, &d.active)
		d.updateClip()
		Logger().Debug("fbdraw: surface unbound")
		return
	}

	pix, stride := w.Pixels()
	width, height := w.Size()
	fb := raster.NewRGB565(pix, stride, width, height)
	width, height = fb.Size()

	b := &binding{win: w, target: fb, window: clip.NewRect(0, 0, width, height)}
	if dm, ok := w.(damager); ok {
		b.target = &damageTarget{Target: fb, win: dm}
	}
	b.occlude()

	d.bind = b
	d.raster.Bind(b.target, &d.active)
	d.updateClip()
	Logger().Debug("fbdraw: surface bound",
		"width", width, "height", height, "stride", stride,
		"visible", b.desktop.Area())
}

// Current returns the bound window, nil if none.
func (d *Driver) Current() Window {
	if d.bind == nil {
		return nil
	}
	return d.bind.win
}

// Capabilities reports the features of the bound surface. The RGB565
// target reports none.
func (d *Driver) Capabilities() Capabilities {
	if d.bind == nil {
		return Capabilities{}
	}
	c := d.bind.target.Capabilities()
	return Capabilities{AlphaBlending: c.AlphaBlending}
}

// CanDoAlphaBlending reports whether translucent colors can be drawn.
// It is always false for the RGB565 target.
func (d *Driver) CanDoAlphaBlending() bool {
	return d.Capabilities().AlphaBlending
}

// updateClip recomputes the active region from the binding and the stack.
func (d *Driver) updateClip() {
	if d.bind == nil {
		d.active.Clear()
		return
	}
	d.active.CopyFrom(&d.bind.desktop)
	if top := d.stack.Top(); top != nil {
		d.active.Intersect(top)
	}
}

// damageTarget reports every write to the window.
type damageTarget struct {
	raster.Target
	win damager
}

func (t *damageTarget) FillSpan(x0, x1, y int, c color.RGB565) {
	t.Target.FillSpan(x0, x1, y, c)
	t.win.Damage(image.Rect(x0, y, x1, y+1))
}

func (t *damageTarget) CopySpan(x, y int, src []color.RGB565) {
	t.Target.CopySpan(x, y, src)
	t.win.Damage(image.Rect(x, y, x+len(src), y+1))
}

func (t *damageTarget) SetPixel(x, y int, c color.RGB565) {
	t.Target.SetPixel(x, y, c)
	t.win.Damage(image.Rect(x, y, x+1, y+1))
}

func (t *damageTarget) BlendPixel(x, y int, c color.RGB565, a uint8) {
	t.Target.BlendPixel(x, y, c, a)
	if a != 0 {
		t.win.Damage(image.Rect(x, y, x+1, y+1))
	}
}
