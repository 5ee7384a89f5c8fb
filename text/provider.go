package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// goFontData lists the TTF data backing each classic slot.
var goFontData = [FreeFont][]byte{
	Helvetica:           goregular.TTF,
	HelveticaBold:       gobold.TTF,
	HelveticaItalic:     goitalic.TTF,
	HelveticaBoldItalic: gobolditalic.TTF,
	Courier:             gomono.TTF,
	CourierBold:         gomonobold.TTF,
	CourierItalic:       gomonoitalic.TTF,
	CourierBoldItalic:   gomonobolditalic.TTF,
	Times:               gomedium.TTF,
	TimesBold:           gobold.TTF,
	TimesItalic:         gomediumitalic.TTF,
	TimesBoldItalic:     gobolditalic.TTF,
	Symbol:              goregular.TTF,
	Screen:              gomono.TTF,
	ScreenBold:          gomonobold.TTF,
	ZapfDingbats:        goregular.TTF,
}

// faceKey identifies a sized face.
type faceKey struct {
	font Font
	size int
}

// GoFontProvider renders outline fonts with golang.org/x/image/font/opentype.
// The classic slots use the bundled Go fonts; Register adds more.
//
// GoFontProvider is safe for concurrent use.
type GoFontProvider struct {
	mu    sync.Mutex
	fonts []*opentype.Font
	names []string
	faces map[faceKey]Face

	hinting font.Hinting
}

// NewGoFontProvider parses the bundled Go fonts.
func NewGoFontProvider() (*GoFontProvider, error) {
	p := &GoFontProvider{
		faces:   make(map[faceKey]Face),
		hinting: font.HintingFull,
	}
	parsed := make(map[*byte]*opentype.Font)
	for i, data := range goFontData {
		f, ok := parsed[&data[0]]
		if !ok {
			var err error
			if f, err = opentype.Parse(data); err != nil {
				return nil, fmt.Errorf("text: failed to parse %s: %w", classicNames[i], err)
			}
			parsed[&data[0]] = f
		}
		p.fonts = append(p.fonts, f)
		p.names = append(p.names, classicNames[i])
	}
	return p, nil
}

// Register parses TTF/OTF data and assigns it the next free slot.
func (p *GoFontProvider) Register(name string, data []byte) (Font, error) {
	if len(data) == 0 {
		return 0, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return 0, fmt.Errorf("text: failed to parse font: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.fonts = append(p.fonts, f)
	p.names = append(p.names, name)
	return Font(len(p.fonts) - 1), nil
}

// Face implements Provider. Faces are created once per slot and size.
func (p *GoFontProvider) Face(f Font, size int) (Face, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if f < 0 || int(f) >= len(p.fonts) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFont, f)
	}
	key := faceKey{font: f, size: size}
	if face, ok := p.faces[key]; ok {
		return face, nil
	}

	xf, err := opentype.NewFace(p.fonts[f], &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: p.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	face := newXFace(xf)
	p.faces[key] = face
	return face, nil
}

// Names implements Provider.
func (p *GoFontProvider) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]string(nil), p.names...)
}

// Sizes implements Provider. Outline fonts scale to any size.
func (p *GoFontProvider) Sizes(Font) []int {
	return []int{0}
}

// BasicProvider serves basicfont.Face7x13 for every slot and size.
type BasicProvider struct {
	once sync.Once
	face Face
}

// Face implements Provider. The size is ignored.
func (p *BasicProvider) Face(f Font, _ int) (Face, error) {
	if f < 0 || f >= FreeFont {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFont, f)
	}
	p.once.Do(func() {
		p.face = newXFace(basicfont.Face7x13)
	})
	return p.face, nil
}

// Names implements Provider.
func (p *BasicProvider) Names() []string {
	return ClassicNames()
}

// Sizes implements Provider.
func (p *BasicProvider) Sizes(Font) []int {
	return []int{basicfont.Face7x13.Height}
}
