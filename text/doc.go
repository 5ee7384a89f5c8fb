// Package text is the font subsystem boundary of the drawing backend.
//
// A Provider maps a font number and pixel size to a Face. A Face hands out
// Glyphs: 8-bit coverage masks with bearing and advance, ready to be
// blended into a framebuffer in the current color. The Renderer lays out
// strings, measures them and serves glyphs through a GlyphCache, so every
// (font, size, rune) triple is rasterized once.
//
// # Providers
//
// GoFontProvider renders the Go font family with golang.org/x/image's
// OpenType rasterizer and maps the sixteen classic font slots
// (Helvetica, Courier, Times, Symbol, Screen, Zapf Dingbats and their
// bold/italic variants) onto it:
//
//	p, err := text.NewGoFontProvider()
//	if err != nil {
//		log.Fatal(err)
//	}
//	r := text.NewRenderer(p, text.NewGlyphCache(4096))
//	if err := r.SetFont(text.Helvetica, 14); err != nil {
//		log.Fatal(err)
//	}
//	w := r.Width("Hello")
//
// BasicProvider serves a fixed 7×13 bitmap face for every font and size.
// It needs no font data and is the fallback when outlines are unavailable.
package text
