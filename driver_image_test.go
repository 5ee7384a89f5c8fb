package fbdraw

import (
	"image"
	"image/color"
	"testing"
)

func solidRGB(w, h int, r, g, b uint8) *RGBImage {
	data := make([]byte, 0, w*h*3)
	for range w * h {
		data = append(data, r, g, b)
	}
	return NewRGBImage(data, w, h, 3, 0)
}

func TestCacheIdempotent(t *testing.T) {
	d, _ := newTestDriver(t, 8, 8)
	img := solidRGB(4, 4, 255, 0, 0)

	id1, _ := d.Cache(img)
	id2, _ := d.Cache(img)
	if id1 == 0 || id1 != id2 {
		t.Errorf("handles = %d, %d, want equal and non-zero", id1, id2)
	}
	if n := d.CacheStats().Images; n != 1 {
		t.Errorf("cached images = %d, want 1", n)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	d, _ := newTestDriver(t, 8, 8)
	img := solidRGB(4, 4, 255, 0, 0)

	d.Cache(img)
	d.Uncache(img)
	if n := d.CacheStats().Images; n != 0 {
		t.Errorf("cached images after Uncache = %d, want 0", n)
	}
	if id, mask := img.Handles(); id != 0 || mask != 0 {
		t.Errorf("handles after Uncache = %d, %d, want 0, 0", id, mask)
	}

	id, _ := d.Cache(img)
	if id == 0 {
		t.Error("re-cache returned a zero handle")
	}
	if n := d.CacheStats().Images; n != 1 {
		t.Errorf("cached images after re-cache = %d, want 1", n)
	}
}

func TestUncacheNeverCached(t *testing.T) {
	d, _ := newTestDriver(t, 8, 8)
	d.Uncache(solidRGB(2, 2, 0, 0, 0))
	d.Uncache(nil)
	d.UncachePixmap(42)
	d.DeleteBitmask(42)
	if n := d.CacheStats().Images; n != 0 {
		t.Errorf("cached images = %d, want 0", n)
	}
}

func TestCacheRejectsBadImage(t *testing.T) {
	d, _ := newTestDriver(t, 8, 8)
	img := NewRGBImage(make([]byte, 5), 4, 4, 3, 0)
	if id, _ := d.Cache(img); id != 0 {
		t.Errorf("Cache of a short buffer = %d, want 0", id)
	}
	d.DrawImageAt(img, 0, 0)
}

func TestDrawImageCrop(t *testing.T) {
	d, s := newTestDriver(t, 20, 20)
	data := make([]byte, 4*4*3)
	// Source pixel (1, 1) is blue, the rest black.
	data[(1*4+1)*3+2] = 255
	img := NewRGBImage(data, 4, 4, 3, 0)

	d.DrawImage(img, 10, 10, 2, 2, 1, 1)
	if got := s.At(10, 10); got != 0x001F {
		t.Errorf("pixel (10,10) = %#04x, want 0x001f", got)
	}
	if got := s.At(9, 9); got != 0 {
		t.Errorf("pixel (9,9) = %#04x, want untouched", got)
	}
}

func TestDrawImageClipped(t *testing.T) {
	d, s := newTestDriver(t, 20, 20)
	d.PushClip(0, 0, 12, 12)
	d.DrawImageAt(solidRGB(4, 4, 255, 0, 0), 10, 10)
	if got := len(painted(s, red)); got != 4 {
		t.Errorf("painted %d pixels, want 4", got)
	}
}

func TestDrawTranslucentRGB(t *testing.T) {
	d, s := newTestDriver(t, 4, 1)
	img := NewRGBImage([]byte{
		255, 0, 0, 255,
		255, 0, 0, 0,
		255, 0, 0, 128,
	}, 3, 1, 4, 0)
	d.DrawImageAt(img, 0, 0)

	if s.At(0, 0) != red {
		t.Errorf("opaque pixel = %#04x, want red", s.At(0, 0))
	}
	if s.At(1, 0) != 0 {
		t.Errorf("transparent pixel = %#04x, want untouched", s.At(1, 0))
	}
	if got := s.At(2, 0); got == 0 || got == red {
		t.Errorf("half transparent pixel = %#04x, want a blend", got)
	}
}

func TestDrawBitmap(t *testing.T) {
	d, s := newTestDriver(t, 10, 10)
	d.SetColor(Red)
	// Row 0: pixels 0 and 2. Row 1: pixel 7.
	bm := NewBitmap([]byte{0b0000_0101, 0b1000_0000}, 8, 2)
	d.DrawImageAt(bm, 1, 1)

	want := map[image.Point]bool{{1, 1}: true, {3, 1}: true, {8, 2}: true}
	samePixels(t, painted(s, red), want)
}

func TestDrawPixmapMask(t *testing.T) {
	d, s := newTestDriver(t, 4, 4)
	pal := color.Palette{
		color.NRGBA{A: 0},
		color.NRGBA{R: 255, A: 255},
	}
	pm := NewPixmap([]byte{0, 1, 1, 0}, 2, 2, pal)

	id, mask := d.Cache(pm)
	if id == 0 || mask == 0 {
		t.Fatalf("handles = %d, %d, want both set", id, mask)
	}

	d.DrawImageAt(pm, 0, 0)
	want := map[image.Point]bool{{1, 0}: true, {0, 1}: true}
	samePixels(t, painted(s, red), want)

	d.DeleteBitmask(mask)
	if n := d.CacheStats().Images; n != 0 {
		t.Errorf("cached images after DeleteBitmask = %d, want 0", n)
	}
	d.DrawImageAt(pm, 2, 2)
	id2, mask2 := pm.Handles()
	if id2 != id {
		t.Errorf("image handle changed from %d to %d", id, id2)
	}
	if mask2 == 0 || mask2 == mask {
		t.Errorf("mask handle = %d, want a new one", mask2)
	}

	d.UncachePixmap(id2)
	if n := d.CacheStats().Images; n != 0 {
		t.Errorf("cached images after UncachePixmap = %d, want 0", n)
	}
}

func TestDrawTranslucentPixmap(t *testing.T) {
	d, s := newTestDriver(t, 2, 1)
	pal := color.Palette{
		color.NRGBA{R: 255, A: 255},
		color.NRGBA{R: 255, A: 100},
	}
	pm := NewPixmap([]byte{0, 1}, 2, 1, pal)
	if !pm.Translucent() {
		t.Fatal("palette with partial alpha should be translucent")
	}
	if _, mask := d.Cache(pm); mask != 0 {
		t.Errorf("translucent pixmap got mask handle %d", mask)
	}
	d.DrawImageAt(pm, 0, 0)
	if s.At(0, 0) != red {
		t.Errorf("opaque entry = %#04x, want red", s.At(0, 0))
	}
	if got := s.At(1, 0); got == 0 || got == red {
		t.Errorf("translucent entry = %#04x, want a blend", got)
	}
}

func TestImageCacheEviction(t *testing.T) {
	// A 4×4 RGB image costs 48 bytes.
	d, _ := newTestDriver(t, 8, 8, WithImageCacheLimit(60))

	a := solidRGB(4, 4, 255, 0, 0)
	b := solidRGB(4, 4, 0, 255, 0)
	d.DrawImageAt(a, 0, 0)
	d.DrawImageAt(b, 4, 4)

	st := d.CacheStats()
	if st.Images != 1 || st.Evictions != 1 {
		t.Errorf("stats = %+v, want 1 image and 1 eviction", st)
	}

	// The evicted image keeps its handle and converts again.
	id, _ := a.Handles()
	d.DrawImageAt(a, 0, 0)
	if id2, _ := a.Handles(); id2 != id {
		t.Errorf("handle changed from %d to %d", id, id2)
	}
	if d.CacheStats().Misses == 0 {
		t.Error("redraw after eviction should miss")
	}
}

func TestNewRGBImageFrom(t *testing.T) {
	opaque := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := 3; i < len(opaque.Pix); i += 4 {
		opaque.Pix[i] = 255
	}
	if m := NewRGBImageFrom(opaque); m.D != 3 || len(m.Data) != 12 || m.Translucent() {
		t.Errorf("opaque source: D=%d len=%d", m.D, len(m.Data))
	}

	translucent := image.NewNRGBA(image.Rect(5, 5, 7, 8))
	if m := NewRGBImageFrom(translucent); m.D != 4 || m.W != 2 || m.H != 3 || !m.Translucent() {
		t.Errorf("translucent source: D=%d %dx%d", m.D, m.W, m.H)
	}
}

func TestNewPixmapFrom(t *testing.T) {
	pal := color.Palette{color.Black, color.White}
	src := image.NewPaletted(image.Rect(0, 0, 4, 4), pal)
	src.SetColorIndex(2, 2, 1)

	pm := NewPixmapFrom(src.SubImage(image.Rect(1, 1, 3, 3)).(*image.Paletted))
	if pm.W != 2 || pm.H != 2 {
		t.Fatalf("size = %dx%d, want 2x2", pm.W, pm.H)
	}
	if want := []byte{0, 0, 0, 1}; string(pm.Index) != string(want) {
		t.Errorf("Index = %v, want %v", pm.Index, want)
	}
}

func TestDrawRGB(t *testing.T) {
	d, s := newTestDriver(t, 10, 10)
	buf := make([]byte, 0, 5*3*4)
	for range 5 * 3 {
		buf = append(buf, 255, 0, 0, 0)
	}

	// Depth 4, alpha ignored.
	d.DrawRGB(buf, 1, 1, 5, 3, 4, 0)
	if got := len(painted(s, red)); got != 15 {
		t.Errorf("painted %d pixels, want 15", got)
	}
	if d.CacheStats().Images != 0 {
		t.Error("streamed image was cached")
	}
}

func TestDrawRGBLineStride(t *testing.T) {
	d, s := newTestDriver(t, 10, 10)
	// Two rows of two pixels, rows 8 bytes apart.
	buf := []byte{
		255, 0, 0, 255, 0, 0, 9, 9,
		255, 0, 0, 255, 0, 0,
	}
	d.PushClip(0, 0, 10, 3)
	d.DrawRGB(buf, 0, 2, 2, 2, 3, 8)
	if got := len(painted(s, red)); got != 2 {
		t.Errorf("painted %d pixels, want 2", got)
	}
}

func TestDrawMono(t *testing.T) {
	d, s := newTestDriver(t, 4, 1)
	d.DrawMono([]byte{255, 0, 128}, 0, 0, 3, 1, 0, 0)
	if s.At(0, 0) != 0xFFFF {
		t.Errorf("white = %#04x", s.At(0, 0))
	}
	if s.At(2, 0) == 0 || s.At(2, 0) == 0xFFFF {
		t.Errorf("gray = %#04x", s.At(2, 0))
	}
}

func TestDrawRGBFuncVisibleRows(t *testing.T) {
	d, s := newTestDriver(t, 20, 20)
	d.PushClip(5, 3, 4, 2)

	type call struct{ x, y, w int }
	var calls []call
	d.DrawRGBFunc(func(x, y, w int, buf []byte) {
		calls = append(calls, call{x, y, w})
		for i := 0; i < w; i++ {
			buf[i*3] = 255
		}
	}, 2, 0, 10, 10, 3)

	want := []call{{3, 3, 4}, {3, 4, 4}}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, calls[i], want[i])
		}
	}
	if got := len(painted(s, red)); got != 8 {
		t.Errorf("painted %d pixels, want 8", got)
	}
}

func TestDrawMonoFunc(t *testing.T) {
	d, s := newTestDriver(t, 4, 4)
	d.DrawMonoFunc(func(x, y, w int, buf []byte) {
		for i := range buf {
			buf[i] = 255
		}
	}, 0, 0, 4, 4, 0)
	if got := len(painted(s, 0xFFFF)); got != 16 {
		t.Errorf("painted %d pixels, want 16", got)
	}
}

func TestImagesSharedBetweenDrivers(t *testing.T) {
	d1, _ := newTestDriver(t, 8, 8)
	d2, s := newTestDriver(t, 8, 8)
	a := solidRGB(2, 2, 0xFF, 0, 0)
	b := solidRGB(2, 2, 0, 0, 0xFF)

	d1.Cache(a)
	d2.DrawImageAt(a, 0, 0)
	d2.DrawImageAt(b, 4, 4)
	d2.DrawImageAt(a, 0, 4)

	ida, _ := a.Handles()
	idb, _ := b.Handles()
	if ida == idb {
		t.Fatalf("images share handle %d", ida)
	}
	tests := []struct {
		name string
		x, y int
		want uint16
	}{
		{"a first draw", 0, 0, red},
		{"b", 4, 4, 0x001F},
		{"a redrawn", 0, 4, red},
	}
	for _, tt := range tests {
		if got := s.At(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: At(%d, %d) = %#04x, want %#04x", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
	if n := d1.CacheStats().Images; n != 1 {
		t.Errorf("first driver caches %d images, want 1", n)
	}
}
