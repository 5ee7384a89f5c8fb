package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFont is returned for font numbers the provider does not know.
	ErrUnknownFont = errors.New("text: unknown font")

	// ErrInvalidSize is returned for non-positive font sizes.
	ErrInvalidSize = errors.New("text: invalid font size")

	// ErrNoGlyph is returned when a face has no glyph, not even a
	// replacement, for a rune.
	ErrNoGlyph = errors.New("text: no glyph")

	// ErrNoFace is returned by Renderer methods before SetFont succeeded.
	ErrNoFace = errors.New("text: no font selected")
)
