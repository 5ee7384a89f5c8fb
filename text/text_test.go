package text

import (
	"errors"
	"image"
	"testing"

	"github.com/go-text/typesetting/language"
	"golang.org/x/image/font/gofont/goregular"
)

// countingProvider counts glyph rasterizations.
type countingProvider struct {
	BasicProvider
	glyphs map[rune]int
}

type countingFace struct {
	Face
	p *countingProvider
}

func (f countingFace) Glyph(r rune) (*Glyph, error) {
	f.p.glyphs[r]++
	return f.Face.Glyph(r)
}

func (p *countingProvider) Face(f Font, size int) (Face, error) {
	face, err := p.BasicProvider.Face(f, size)
	if err != nil {
		return nil, err
	}
	return countingFace{Face: face, p: p}, nil
}

func newBasicRenderer(t *testing.T) *Renderer {
	t.Helper()
	r := NewRenderer(&BasicProvider{}, nil)
	if err := r.SetFont(Helvetica, 13); err != nil {
		t.Fatalf("SetFont: %v", err)
	}
	return r
}

func TestFontAttrs(t *testing.T) {
	tests := []struct {
		font Font
		want int
	}{
		{Helvetica, 0},
		{HelveticaBold, AttrBold},
		{CourierItalic, AttrItalic},
		{TimesBoldItalic, AttrBold | AttrItalic},
		{Symbol, 0},
		{Screen, 0},
		{ScreenBold, AttrBold},
		{ZapfDingbats, 0},
	}
	for _, tt := range tests {
		if got := FontAttrs(tt.font); got != tt.want {
			t.Errorf("FontAttrs(%s) = %d, want %d", classicNames[tt.font], got, tt.want)
		}
	}
}

func TestBasicProvider(t *testing.T) {
	p := &BasicProvider{}
	face, err := p.Face(Courier, 40)
	if err != nil {
		t.Fatal(err)
	}
	if m := face.Metrics(); m != (Metrics{Ascent: 11, Descent: 2, Height: 13}) {
		t.Errorf("Metrics() = %+v", m)
	}
	g, err := face.Glyph('A')
	if err != nil {
		t.Fatal(err)
	}
	if g.Mask == nil || g.Left != 0 || g.Top != -11 || g.Advance != 7 {
		t.Errorf("Glyph('A') = %+v", g)
	}
	sp, err := face.Glyph(' ')
	if err != nil {
		t.Fatal(err)
	}
	if sp.Mask != nil || sp.Advance != 7 {
		t.Errorf("space glyph = %+v, want blank with advance 7", sp)
	}
	if _, err := p.Face(FreeFont, 13); !errors.Is(err, ErrUnknownFont) {
		t.Errorf("err = %v, want ErrUnknownFont", err)
	}
	if got := p.Sizes(Helvetica); len(got) != 1 || got[0] != 13 {
		t.Errorf("Sizes() = %v", got)
	}
}

func TestGoFontProvider(t *testing.T) {
	p, err := NewGoFontProvider()
	if err != nil {
		t.Fatalf("NewGoFontProvider: %v", err)
	}
	if n := len(p.Names()); n != int(FreeFont) {
		t.Errorf("len(Names()) = %d, want %d", n, FreeFont)
	}

	face, err := p.Face(Helvetica, 14)
	if err != nil {
		t.Fatal(err)
	}
	again, _ := p.Face(Helvetica, 14)
	if face != again {
		t.Error("faces should be shared per slot and size")
	}
	if m := face.Metrics(); m.Ascent <= 0 || m.Descent <= 0 || m.Height < m.Ascent+m.Descent {
		t.Errorf("Metrics() = %+v", m)
	}
	g, err := face.Glyph('W')
	if err != nil {
		t.Fatal(err)
	}
	if g.Mask == nil || g.Advance <= 0 || g.Top >= 0 {
		t.Errorf("Glyph('W') = %+v", g)
	}

	if _, err := p.Face(Helvetica, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("size 0: err = %v", err)
	}
	if _, err := p.Face(99, 12); !errors.Is(err, ErrUnknownFont) {
		t.Errorf("slot 99: err = %v", err)
	}
}

func TestGoFontProviderRegister(t *testing.T) {
	p, err := NewGoFontProvider()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Register("empty", nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("err = %v, want ErrEmptyFontData", err)
	}
	if _, err := p.Register("junk", []byte("junk")); err == nil {
		t.Error("expected parse error")
	}
	f, err := p.Register("Go", goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if f != FreeFont {
		t.Errorf("slot = %d, want %d", f, FreeFont)
	}
	if names := p.Names(); names[f] != "Go" {
		t.Errorf("Names()[%d] = %q", f, names[f])
	}
	if _, err := p.Face(f, 10); err != nil {
		t.Errorf("Face(registered): %v", err)
	}
}

func TestGlyphCacheHit(t *testing.T) {
	p := &countingProvider{glyphs: map[rune]int{}}
	r := NewRenderer(p, NewGlyphCache(0))
	if err := r.SetFont(Helvetica, 13); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if w := r.Width("aab"); w != 21 {
			t.Fatalf("Width = %d, want 21", w)
		}
	}
	if p.glyphs['a'] != 1 || p.glyphs['b'] != 1 {
		t.Errorf("rasterizations = %v, want one per rune", p.glyphs)
	}
	s := r.Cache().Stats()
	if s.Len != 2 || s.Misses != 2 || s.Hits != 7 {
		t.Errorf("Stats() = %+v", s)
	}

	// A different size is a different key.
	if err := r.SetFont(Helvetica, 20); err != nil {
		t.Fatal(err)
	}
	r.Width("a")
	if p.glyphs['a'] != 2 {
		t.Errorf("new size should rasterize again, got %d", p.glyphs['a'])
	}
}

func TestRendererNoFace(t *testing.T) {
	r := NewRenderer(&BasicProvider{}, nil)
	if r.Width("abc") != 0 || r.RuneWidth('a') != 0 {
		t.Error("measuring without a face should give 0")
	}
	if _, err := r.Glyph('a'); !errors.Is(err, ErrNoFace) {
		t.Errorf("err = %v, want ErrNoFace", err)
	}
	if err := r.SetFont(-1, 12); err == nil {
		t.Error("SetFont(-1) should fail")
	}
	if r.Face() != nil {
		t.Error("failed SetFont selected a face")
	}
}

func TestRendererNormalizes(t *testing.T) {
	r := newBasicRenderer(t)
	if got, want := r.Width("e\u0301"), r.RuneWidth('\u00e9'); got != want || got != 7 {
		t.Errorf("Width(decomposed) = %d, want %d", got, want)
	}
}

func TestRendererExtents(t *testing.T) {
	r := newBasicRenderer(t)
	tests := []struct {
		s    string
		want image.Rectangle
	}{
		{"", image.Rectangle{}},
		{" ", image.Rectangle{}},
		{"A", image.Rect(0, -11, 6, 2)},
		{"AB", image.Rect(0, -11, 13, 2)},
		{" A", image.Rect(7, -11, 13, 2)},
	}
	for _, tt := range tests {
		if got := r.Extents(tt.s); got != tt.want {
			t.Errorf("Extents(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestRendererLayout(t *testing.T) {
	r := newBasicRenderer(t)
	var xs []int
	total := r.Layout("abc", func(_ *Glyph, x int) { xs = append(xs, x) })
	if total != 21 || len(xs) != 3 || xs[1] != 7 || xs[2] != 14 {
		t.Errorf("Layout = %d, %v", total, xs)
	}
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		s      string
		dir    Direction
		script language.Script
	}{
		{"hello", DirectionLTR, language.Latin},
		{"123", DirectionLTR, language.Latin},
		{"שלום", DirectionRTL, language.Hebrew},
		{"abc שלום", DirectionRTL, language.Latin},
		{"мир", DirectionLTR, language.Cyrillic},
		{"", DirectionLTR, language.Latin},
	}
	for _, tt := range tests {
		a := Analyze(tt.s)
		if a.Direction != tt.dir || a.Script != tt.script {
			t.Errorf("Analyze(%q) = %v/%v, want %v/%v", tt.s, a.Direction, a.Script, tt.dir, tt.script)
		}
	}
}
