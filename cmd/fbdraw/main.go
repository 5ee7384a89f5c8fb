// Command fbdraw renders a YAML or TOML scene into an image file.
//
// The scene names a screen size and a list of drawing commands. Windows
// listed in the scene are stacked above the main window, so the main
// commands are clipped around them.
//
// Driver settings come from FBDRAW_* environment variables.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/gogpu/fbdraw"
	fbimage "github.com/gogpu/fbdraw/internal/image"
	"github.com/gogpu/fbdraw/surface"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (.yaml, .yml or .toml)")
		output    = flag.String("output", "scene.png", "output file (.png, .bmp, .tiff)")
		verbose   = flag.Bool("v", false, "log at debug level")
	)
	flag.Parse()

	cfg, err := fbdraw.LoadConfig()
	if err != nil {
		fatal(err)
	}
	level := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	fbdraw.SetLogger(logger)

	if *scenePath == "" {
		fatal(fmt.Errorf("missing -scene"))
	}
	sc, err := LoadScene(*scenePath)
	if err != nil {
		fatal(err)
	}

	d := fbdraw.NewDriver(cfg.Options()...)
	screen, err := Render(sc, d)
	if err != nil {
		fatal(err)
	}
	if err := fbimage.Save(*output, screen.Snapshot()); err != nil {
		fatal(err)
	}

	st := d.CacheStats()
	logger.Info("scene rendered",
		"output", *output, "width", sc.Width, "height", sc.Height,
		"tiles", screen.DamagedTiles(), "images", st.Images, "glyphs", st.Glyphs.Len)
}

func fatal(err error) {
	slog.Error("fbdraw failed", "err", err)
	os.Exit(1)
}

// Render draws sc onto a new screen. Stacked windows are drawn first, then
// the main window.
func Render(sc *Scene, d *fbdraw.Driver) (*surface.Screen, error) {
	screen := surface.NewScreen(sc.Width, sc.Height)
	mainWin := screen.NewWindow(screen.Bounds())
	r := newRunner(d, sc.dir)

	for i, ws := range sc.Windows {
		x, y, w, h := ws.Rect[0], ws.Rect[1], ws.Rect[2], ws.Rect[3]
		win := screen.NewWindow(image.Rect(x, y, x+w, y+h))
		d.MakeCurrent(win)
		if err := r.fill(ws.Background, w, h); err != nil {
			return nil, fmt.Errorf("window %d: %w", i, err)
		}
		if err := r.run(ws.Commands); err != nil {
			return nil, fmt.Errorf("window %d: %w", i, err)
		}
	}

	d.MakeCurrent(mainWin)
	if err := r.fill(sc.Background, sc.Width, sc.Height); err != nil {
		return nil, err
	}
	if err := r.run(sc.Commands); err != nil {
		return nil, err
	}
	d.MakeCurrent(nil)
	return screen, nil
}
