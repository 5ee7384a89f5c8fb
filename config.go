package fbdraw

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/gogpu/fbdraw/text"
)

// Config is the environment configuration of a driver. Each field is read
// from FBDRAW_<TAG>, for example FBDRAW_DEFAULT_SIZE.
type Config struct {
	DefaultFont     int    `envconfig:"DEFAULT_FONT" default:"0"`
	DefaultSize     int    `envconfig:"DEFAULT_SIZE" default:"14"`
	ImageCacheLimit int    `envconfig:"IMAGE_CACHE_LIMIT" default:"16777216"`
	GlyphCacheSize  int    `envconfig:"GLYPH_CACHE_SIZE" default:"4096"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"warn"`
	BitmapFont      bool   `envconfig:"BITMAP_FONT" default:"false"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("fbdraw", &cfg); err != nil {
		return nil, fmt.Errorf("fbdraw: failed to load config: %w", err)
	}
	return &cfg, nil
}

// Level parses LogLevel. Unknown names give slog.LevelWarn.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelWarn
	}
	return l
}

// Options converts the configuration into driver options.
func (c *Config) Options() []Option {
	opts := []Option{
		WithDefaultFont(text.Font(c.DefaultFont), c.DefaultSize),
		WithImageCacheLimit(c.ImageCacheLimit),
		WithGlyphCacheSize(c.GlyphCacheSize),
	}
	if c.BitmapFont {
		opts = append(opts, WithFontProvider(&text.BasicProvider{}))
	}
	return opts
}
