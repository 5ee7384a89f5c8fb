package main

import (
	"errors"
	"image"
	"reflect"
	"testing"

	"github.com/gogpu/fbdraw"
	"github.com/gogpu/fbdraw/surface"
	"github.com/gogpu/fbdraw/text"
)

const (
	white = 0xFFFF
	red   = 0xF800
	green = 0x07E0
	blue  = 0x001F
	black = 0x0000
)

func newDriver() *fbdraw.Driver {
	return fbdraw.NewDriver(fbdraw.WithFontProvider(&text.BasicProvider{}))
}

func render(t *testing.T, path string) *surface.Screen {
	t.Helper()
	sc, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene(%s): %v", path, err)
	}
	screen, err := Render(sc, newDriver())
	if err != nil {
		t.Fatalf("Render(%s): %v", path, err)
	}
	return screen
}

func TestSceneFormatsAgree(t *testing.T) {
	y, err := LoadScene("testdata/demo.yaml")
	if err != nil {
		t.Fatal(err)
	}
	tm, err := LoadScene("testdata/demo.toml")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(y, tm) {
		t.Errorf("yaml and toml scenes differ:\n%+v\n%+v", y, tm)
	}
}

func TestRenderScene(t *testing.T) {
	for _, path := range []string{"testdata/demo.yaml", "testdata/demo.toml"} {
		t.Run(path, func(t *testing.T) {
			s := render(t, path)
			tests := []struct {
				name string
				at   image.Point
				want uint16
			}{
				{"red bar", image.Pt(10, 4), red},
				{"window over bar", image.Pt(50, 4), blue},
				{"window body", image.Pt(50, 12), blue},
				{"clipped fill", image.Pt(10, 30), green},
				{"outside clip", image.Pt(35, 22), white},
				{"polygon", image.Pt(42, 26), black},
				{"polygon hole", image.Pt(50, 34), white},
			}
			for _, tt := range tests {
				if got := s.At(tt.at.X, tt.at.Y); got != tt.want {
					t.Errorf("%s: At(%d, %d) = %#04x, want %#04x", tt.name, tt.at.X, tt.at.Y, got, tt.want)
				}
			}

			ink := 0
			for y := 8; y < 20; y++ {
				for x := 0; x < 24; x++ {
					if s.At(x, y) != white {
						ink++
					}
				}
			}
			if ink == 0 {
				t.Error("text drew nothing")
			}
		})
	}
}

func TestParseSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
		want error
	}{
		{"unknown format", "width: 1", ".json", ErrUnknownFormat},
		{"no size", "commands: []", ".yaml", nil},
		{"bad yaml", "width: [", ".yaml", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene([]byte(tt.data), tt.ext)
			if err == nil {
				t.Fatal("ParseScene succeeded")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want error
	}{
		{"unknown op", Command{Op: "spiral"}, ErrUnknownOp},
		{"rectf args", Command{Op: "rectf", Args: []float64{1, 2, 3}}, ErrArgs},
		{"arc args", Command{Op: "arc", Args: []float64{1, 2, 3, 4}}, ErrArgs},
		{"bad color", Command{Op: "color", Color: "#zzzzzz"}, ErrColor},
		{"path kind", Command{Op: "path", Kind: "spline"}, ErrUnknownOp},
		{"vertex", Command{Op: "path", Kind: "line", Contours: [][][]float64{{{1}}}}, ErrArgs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := &Scene{Width: 8, Height: 8, Commands: []Command{tt.cmd}}
			_, err := Render(sc, newDriver())
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    fbdraw.Color
		wantErr bool
	}{
		{"red", fbdraw.Red, false},
		{" Blue ", fbdraw.Blue, false},
		{"#102030", fbdraw.RGBColor(0x10, 0x20, 0x30), false},
		{"88", fbdraw.Color(88), false},
		{"256", 0, true},
		{"#12345", 0, true},
		{"mauve", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) err = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

func TestPrimitiveOps(t *testing.T) {
	sc := &Scene{
		Width: 32, Height: 32, Background: "white",
		Commands: []Command{
			{Op: "color", Color: "red"},
			{Op: "line_style", Args: []float64{float64(fbdraw.LineDot)}},
			{Op: "rect", Args: []float64{0, 0, 4, 4}},
			{Op: "line_style", Args: []float64{0, 1}},
			{Op: "line", Args: []float64{0, 10, 5, 10}},
			{Op: "xyline", Args: []float64{0, 12, 3, 14}},
			{Op: "yxline", Args: []float64{20, 0, 3}},
			{Op: "loop", Args: []float64{10, 10, 14, 10, 14, 14}},
			{Op: "polygon", Args: []float64{20, 20, 24, 20, 24, 24, 20, 24}},
			{Op: "circle", Args: []float64{8, 24, 3}},
			{Op: "pie", Args: []float64{26, 0, 6, 6, 0, 360}},
			{Op: "arc", Args: []float64{26, 8, 6, 6, 0, 180}},
			{Op: "point", Args: []float64{31, 31}},
			{Op: "push_no_clip"},
			{Op: "pop_clip"},
			{Op: "font", Args: []float64{float64(text.Helvetica), 13}},
			{Op: "rtl_text", Text: "ab", Args: []float64{30, 30}},
		},
	}
	s, err := Render(sc, newDriver())
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{0, 10}, {5, 10}, {3, 13}, {20, 2}, {22, 22}, {31, 31}} {
		if got := s.At(p.X, p.Y); got != red {
			t.Errorf("At(%d, %d) = %#04x, want red", p.X, p.Y, got)
		}
	}
	if s.At(22, 26) != white {
		t.Error("polygon leaked below its bottom edge")
	}
}
