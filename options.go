package fbdraw

import "github.com/gogpu/fbdraw/text"

// Option configures a Driver during creation.
//
// Example:
//
//	// Bundled Go fonts, default sizes
//	d := fbdraw.NewDriver()
//
//	// Fixed 7x13 bitmap font and a small image cache
//	d := fbdraw.NewDriver(
//	    fbdraw.WithFontProvider(&text.BasicProvider{}),
//	    fbdraw.WithImageCacheLimit(1<<20),
//	)
type Option func(*options)

// options holds optional configuration for Driver creation.
type options struct {
	provider        text.Provider
	font            text.Font
	size            int
	imageCacheLimit int
	glyphCacheSize  int
}

// Defaults used when no option overrides them.
const (
	DefaultFontSize        = 14
	DefaultImageCacheLimit = 16 << 20
)

// defaultOptions returns the default driver options.
func defaultOptions() options {
	return options{
		provider:        nil, // Will be set to a GoFontProvider if nil
		font:            text.Helvetica,
		size:            DefaultFontSize,
		imageCacheLimit: DefaultImageCacheLimit,
		glyphCacheSize:  text.DefaultGlyphCacheSize,
	}
}

// WithFontProvider sets the font subsystem the driver requests faces from.
// Use this to plug in fonts other than the bundled Go fonts.
func WithFontProvider(p text.Provider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithDefaultFont sets the font selected at creation and used as the
// fallback when SetFont cannot load a face.
func WithDefaultFont(f text.Font, size int) Option {
	return func(o *options) {
		o.font = f
		if size > 0 {
			o.size = size
		}
	}
}

// WithImageCacheLimit bounds the memory held by cached images, in bytes.
// When the limit is exceeded the least recently drawn images are released
// and converted again on their next draw.
func WithImageCacheLimit(bytes int) Option {
	return func(o *options) {
		if bytes > 0 {
			o.imageCacheLimit = bytes
		}
	}
}

// WithGlyphCacheSize sets the maximum number of cached glyphs.
func WithGlyphCacheSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.glyphCacheSize = n
		}
	}
}
