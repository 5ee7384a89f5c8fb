package fbdraw

import (
	"fmt"
	"image"
	"testing"
)

// drawn runs fn on a fresh 32×32 driver and returns the red pixels.
func drawn(t *testing.T, fn func(d *Driver)) map[image.Point]bool {
	t.Helper()
	d, s := newTestDriver(t, 32, 32)
	d.SetColor(Red)
	fn(d)
	return painted(s, red)
}

func TestXYLineMatchesLine(t *testing.T) {
	tests := []struct {
		name string
		fast func(d *Driver)
		line func(d *Driver)
	}{
		{"xyline", func(d *Driver) { d.XYLine(5, 5, 15) }, func(d *Driver) { d.Line(5, 5, 15, 5) }},
		{"xyline reversed", func(d *Driver) { d.XYLine(15, 5, 5) }, func(d *Driver) { d.Line(5, 5, 15, 5) }},
		{"yxline", func(d *Driver) { d.YXLine(5, 5, 15) }, func(d *Driver) { d.Line(5, 5, 5, 15) }},
		{"xyline clipped", func(d *Driver) { d.PushClip(8, 0, 4, 32); d.XYLine(5, 5, 15) },
			func(d *Driver) { d.PushClip(8, 0, 4, 32); d.Line(5, 5, 15, 5) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := drawn(t, tt.line)
			if len(want) == 0 {
				t.Fatal("line painted nothing")
			}
			samePixels(t, drawn(t, tt.fast), want)
		})
	}
}

func TestXYLineVariants(t *testing.T) {
	tests := []struct {
		name string
		fn   func(d *Driver)
		want []image.Point
	}{
		{"xyline2", func(d *Driver) { d.XYLine2(0, 0, 2, 2) },
			[]image.Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}},
		{"xyline3", func(d *Driver) { d.XYLine3(0, 0, 1, 1, 3) },
			[]image.Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {3, 1}}},
		{"yxline2", func(d *Driver) { d.YXLine2(0, 0, 2, 1) },
			[]image.Point{{0, 0}, {0, 1}, {0, 2}, {1, 2}}},
		{"yxline3", func(d *Driver) { d.YXLine3(0, 0, 1, 2, 3) },
			[]image.Point{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}, {2, 3}}},
		{"line3", func(d *Driver) { d.Line3(0, 0, 2, 0, 2, 2) },
			[]image.Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}},
		{"point", func(d *Driver) { d.Point(3, 4) }, []image.Point{{3, 4}}},
		{"point outside", func(d *Driver) { d.Point(-1, 40) }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := make(map[image.Point]bool)
			for _, p := range tt.want {
				want[p] = true
			}
			samePixels(t, drawn(t, tt.fn), want)
		})
	}
}

func TestRect(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       int
	}{
		{"box", 2, 2, 7, 7, 24},
		{"row", 0, 0, 5, 1, 5},
		{"column", 0, 0, 1, 5, 5},
		{"two rows", 0, 0, 4, 2, 8},
		{"empty", 0, 0, 0, 5, 0},
		{"clipped", -2, -2, 6, 6, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drawn(t, func(d *Driver) { d.Rect(tt.x, tt.y, tt.w, tt.h) })
			if len(got) != tt.want {
				t.Errorf("painted %d pixels, want %d", len(got), tt.want)
			}
		})
	}
}

func TestLoopMatchesRect(t *testing.T) {
	want := drawn(t, func(d *Driver) { d.Rect(3, 4, 10, 6) })
	got := drawn(t, func(d *Driver) { d.Loop4(3, 4, 12, 4, 12, 9, 3, 9) })
	samePixels(t, got, want)
}

func TestRectF(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       int
	}{
		{"inside", 1, 1, 10, 10, 100},
		{"partial", 28, 28, 10, 10, 16},
		{"outside", 40, 40, 10, 10, 0},
		{"negative", 5, 5, -3, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drawn(t, func(d *Driver) { d.RectF(tt.x, tt.y, tt.w, tt.h) })
			if len(got) != tt.want {
				t.Errorf("painted %d pixels, want %d", len(got), tt.want)
			}
		})
	}
}

func TestRectFRGBKeepsColor(t *testing.T) {
	d, s := newTestDriver(t, 8, 8)
	d.SetColor(Red)
	d.RectFRGB(0, 0, 2, 2, 0, 0, 255)
	if d.Color() != Red {
		t.Errorf("Color() = %v, want Red", d.Color())
	}
	if s.At(0, 0) != 0x001F {
		t.Errorf("pixel = %#04x, want 0x001f", s.At(0, 0))
	}
}

func TestPolygons(t *testing.T) {
	square := drawn(t, func(d *Driver) { d.Polygon4(0, 0, 10, 0, 10, 10, 0, 10) })
	if len(square) != 100 {
		t.Errorf("Polygon4 painted %d pixels, want 100", len(square))
	}
	// Two triangles sharing the diagonal tile the square exactly.
	halves := drawn(t, func(d *Driver) {
		d.Polygon3(0, 0, 10, 0, 10, 10)
		d.Polygon3(0, 0, 10, 10, 0, 10)
	})
	samePixels(t, halves, square)

	tri := drawn(t, func(d *Driver) { d.Loop3(0, 0, 10, 0, 0, 10) })
	if !tri[image.Pt(0, 0)] || !tri[image.Pt(10, 0)] || !tri[image.Pt(0, 10)] {
		t.Error("Loop3 misses a corner")
	}
}

func TestDottedLineStyle(t *testing.T) {
	d, s := newTestDriver(t, 16, 16)
	d.SetColor(Red)
	d.SetLineStyle(LineDot, 0, nil)
	if d.LineStyle() != LineDot {
		t.Errorf("LineStyle() = %v, want LineDot", d.LineStyle())
	}
	d.XYLine(0, 0, 9)
	if got := len(painted(s, red)); got != 5 {
		t.Errorf("dotted line painted %d pixels, want 5", got)
	}

	// Fills ignore the pattern.
	d.RectF(0, 4, 4, 4)
	if got := len(painted(s, red)); got != 5+16 {
		t.Errorf("painted %d pixels, want 21", got)
	}

	d.SetLineStyle(LineDash, 3, []byte{4, 2})
	d.XYLine(0, 12, 9)
	if got := len(painted(s, red)); got != 5+16+10 {
		t.Errorf("dashed line painted %d pixels, want a solid run", got-21)
	}
}

func TestArcAndPie(t *testing.T) {
	box := image.Rect(4, 4, 24, 24)

	arc := drawn(t, func(d *Driver) { d.Arc(4, 4, 20, 20, 0, 360) })
	if len(arc) == 0 {
		t.Fatal("arc painted nothing")
	}
	for p := range arc {
		if !p.In(box) {
			t.Errorf("arc pixel %v outside %v", p, box)
		}
	}

	pie := drawn(t, func(d *Driver) { d.Pie(4, 4, 20, 20, 0, 90) })
	if len(pie) == 0 {
		t.Fatal("pie painted nothing")
	}
	for p := range pie {
		if p.X < 14 || p.Y >= 14 {
			t.Errorf("quarter pie pixel %v outside the first quadrant", p)
		}
	}

	full := drawn(t, func(d *Driver) { d.Pie(4, 4, 20, 20, 0, 360) })
	if n := len(full); n < 280 || n > 330 {
		t.Errorf("full pie has %d pixels", n)
	}
}

func TestRunsInsideAndAcrossClip(t *testing.T) {
	clipBox := image.Rect(0, 0, 12, 32)
	tests := []struct {
		name string
		fn   func(d *Driver)
	}{
		{"rect", func(d *Driver) { d.Rect(4, 4, 16, 10) }},
		{"xyline3", func(d *Driver) { d.XYLine3(2, 3, 20, 15, 6) }},
		{"yxline3", func(d *Driver) { d.YXLine3(3, 2, 20, 15, 25) }},
		{"yxline2 reversed", func(d *Driver) { d.YXLine2(10, 20, 5, 1) }},
	}
	for _, dotted := range []bool{false, true} {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s dotted=%v", tt.name, dotted), func(t *testing.T) {
				style := LineSolid
				if dotted {
					style = LineDot
				}
				full := drawn(t, func(d *Driver) {
					d.SetLineStyle(style, 0, nil)
					tt.fn(d)
				})
				if len(full) == 0 {
					t.Fatal("painted nothing")
				}
				want := map[image.Point]bool{}
				for p := range full {
					if p.In(clipBox) {
						want[p] = true
					}
				}
				got := drawn(t, func(d *Driver) {
					d.SetLineStyle(style, 0, nil)
					d.PushClip(0, 0, 12, 32)
					tt.fn(d)
				})
				samePixels(t, got, want)
			})
		}
	}
}
