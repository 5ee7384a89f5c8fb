package raster

import (
	"testing"

	"github.com/gogpu/fbdraw/internal/color"
)

func TestNewRGB565ClampsHeight(t *testing.T) {
	tests := []struct {
		name          string
		n, stride     int
		w, h          int
		wantW, wantH int
	}{
		{"exact", 100, 10, 10, 10, 10, 10},
		{"short", 95, 10, 10, 10, 10, 9},
		{"padded last row", 93, 10, 3, 10, 3, 10},
		{"too small", 2, 10, 3, 10, 3, 0},
		{"negative", 100, 10, -1, -1, 0, 0},
		{"wider than stride", 100, 10, 20, 10, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg := NewRGB565(make([]color.RGB565, tt.n), tt.stride, tt.w, tt.h)
			w, h := tg.Size()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Size() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRGB565Stride(t *testing.T) {
	pix := make([]color.RGB565, 4*16)
	tg := NewRGB565(pix, 16, 8, 4)
	tg.SetPixel(7, 3, 0xFFFF)
	if pix[3*16+7] != 0xFFFF {
		t.Error("SetPixel did not use the row stride")
	}
	if tg.Offset(7, 3) != 55 {
		t.Errorf("Offset(7,3) = %d, want 55", tg.Offset(7, 3))
	}
	// Padding past width is never touched.
	tg.FillSpan(-5, 100, 1, 0x1234)
	for x := 8; x < 16; x++ {
		if pix[16+x] != 0 {
			t.Fatalf("FillSpan wrote into padding at x=%d", x)
		}
	}
	for x := 0; x < 8; x++ {
		if tg.Pixel(x, 1) != 0x1234 {
			t.Fatalf("Pixel(%d,1) = %#x", x, tg.Pixel(x, 1))
		}
	}
}

func TestRGB565CopySpan(t *testing.T) {
	tg := NewRGB565(make([]color.RGB565, 8), 8, 8, 1)
	src := []color.RGB565{1, 2, 3, 4}
	tg.CopySpan(-2, 0, src)
	tg.CopySpan(6, 0, src)
	want := []color.RGB565{3, 4, 0, 0, 0, 0, 1, 2}
	for x, w := range want {
		if got := tg.Pixel(x, 0); got != w {
			t.Errorf("Pixel(%d) = %d, want %d", x, got, w)
		}
	}
	tg.CopySpan(-10, 0, src)
	tg.CopySpan(8, 0, src)
	tg.CopySpan(0, 1, src)
}

func TestRGB565OutOfBounds(t *testing.T) {
	tg := NewRGB565(make([]color.RGB565, 4), 2, 2, 2)
	tg.SetPixel(-1, 0, 1)
	tg.SetPixel(2, 0, 1)
	tg.BlendPixel(0, 2, 1, 128)
	if tg.Pixel(5, 5) != 0 {
		t.Error("out of bounds read should be 0")
	}
	if tg.Capabilities().AlphaBlending {
		t.Error("RGB565 must not report alpha blending")
	}
}
