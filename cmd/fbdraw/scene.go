package main

import (
	"errors"
	"fmt"
	stdimage "image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/fbdraw"
	"github.com/gogpu/fbdraw/internal/image"
	"github.com/gogpu/fbdraw/text"
)

// Scene is a list of drawing commands for one screen.
type Scene struct {
	Width      int       `yaml:"width" toml:"width"`
	Height     int       `yaml:"height" toml:"height"`
	Background string    `yaml:"background" toml:"background"`
	Commands   []Command `yaml:"commands" toml:"commands"`

	// Windows are stacked above the main window, in order. They are
	// drawn first, so the main window's commands show their occlusion.
	Windows []Window `yaml:"windows" toml:"windows"`

	dir string
}

// Window is a window placed over the main one.
type Window struct {
	Rect       [4]int    `yaml:"rect" toml:"rect"`
	Background string    `yaml:"background" toml:"background"`
	Commands   []Command `yaml:"commands" toml:"commands"`
}

// Command is one drawing call. Op selects the call; Args holds its
// numeric arguments.
type Command struct {
	Op       string        `yaml:"op" toml:"op"`
	Args     []float64     `yaml:"args" toml:"args"`
	Color    string        `yaml:"color" toml:"color"`
	Text     string        `yaml:"text" toml:"text"`
	Path     string        `yaml:"path" toml:"path"`
	Kind     string        `yaml:"kind" toml:"kind"`
	Contours [][][]float64 `yaml:"contours" toml:"contours"`
}

// Errors returned while loading or running a scene.
var (
	ErrUnknownFormat = errors.New("scene: unknown file format")
	ErrUnknownOp     = errors.New("scene: unknown op")
	ErrArgs          = errors.New("scene: wrong number of arguments")
	ErrColor         = errors.New("scene: invalid color")
)

// LoadScene reads a YAML or TOML scene, chosen by file extension.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := ParseScene(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sc.dir = filepath.Dir(path)
	return sc, nil
}

// ParseScene decodes scene data. ext is ".yaml", ".yml" or ".toml".
func ParseScene(data []byte, ext string) (*Scene, error) {
	var sc Scene
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &sc)
	case ".toml":
		err = toml.Unmarshal(data, &sc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("scene: failed to decode: %w", err)
	}
	if sc.Width <= 0 || sc.Height <= 0 {
		return nil, fmt.Errorf("scene: invalid size %dx%d", sc.Width, sc.Height)
	}
	return &sc, nil
}

var colorNames = map[string]fbdraw.Color{
	"black":      fbdraw.Black,
	"red":        fbdraw.Red,
	"green":      fbdraw.Green,
	"yellow":     fbdraw.Yellow,
	"blue":       fbdraw.Blue,
	"magenta":    fbdraw.Magenta,
	"cyan":       fbdraw.Cyan,
	"white":      fbdraw.White,
	"background": fbdraw.Background,
	"foreground": fbdraw.Foreground,
	"dark_red":   fbdraw.DarkRed,
	"dark_green": fbdraw.DarkGreen,
	"dark_blue":  fbdraw.DarkBlue,
	"gray":       fbdraw.LightGray,
}

// ParseColor accepts a color name, "#RRGGBB" or a colormap index.
func ParseColor(s string) (fbdraw.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := colorNames[s]; ok {
		return c, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok && len(hex) == 6 {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrColor, s)
		}
		return fbdraw.RGBColor(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	if i, err := strconv.Atoi(s); err == nil && i >= 0 && i < 256 {
		return fbdraw.Color(i), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrColor, s)
}

// runner executes commands against a driver.
type runner struct {
	d      *fbdraw.Driver
	dir    string
	images map[string]fbdraw.Image
}

func newRunner(d *fbdraw.Driver, dir string) *runner {
	return &runner{d: d, dir: dir, images: make(map[string]fbdraw.Image)}
}

// fill paints the whole current window.
func (r *runner) fill(bg string, w, h int) error {
	if bg == "" {
		return nil
	}
	c, err := ParseColor(bg)
	if err != nil {
		return err
	}
	r.d.SetColor(c)
	r.d.RectF(0, 0, w, h)
	return nil
}

func (r *runner) run(cmds []Command) error {
	for i, c := range cmds {
		if err := r.exec(c); err != nil {
			return fmt.Errorf("command %d (%s): %w", i, c.Op, err)
		}
	}
	return nil
}

// ints converts the arguments to pixels, checking their number against
// the allowed counts.
func ints(args []float64, counts ...int) ([]int, error) {
	ok := false
	for _, n := range counts {
		ok = ok || len(args) == n
	}
	if !ok {
		return nil, fmt.Errorf("%w: got %d, want %v", ErrArgs, len(args), counts)
	}
	out := make([]int, len(args))
	for i, a := range args {
		out[i] = int(a)
	}
	return out, nil
}

func (r *runner) exec(c Command) error {
	d := r.d
	switch c.Op {
	case "color":
		col, err := ParseColor(c.Color)
		if err != nil {
			return err
		}
		d.SetColor(col)
	case "line_style":
		a, err := ints(c.Args, 1, 2)
		if err != nil {
			return err
		}
		width := 0
		if len(a) == 2 {
			width = a[1]
		}
		d.SetLineStyle(fbdraw.LineStyle(a[0]), width, nil)
	case "font":
		a, err := ints(c.Args, 2)
		if err != nil {
			return err
		}
		d.SetFont(text.Font(a[0]), a[1])
	case "push_clip":
		a, err := ints(c.Args, 4)
		if err != nil {
			return err
		}
		d.PushClip(a[0], a[1], a[2], a[3])
	case "push_no_clip":
		d.PushNoClip()
	case "pop_clip":
		d.PopClip()
	case "point":
		a, err := ints(c.Args, 2)
		if err != nil {
			return err
		}
		d.Point(a[0], a[1])
	case "rect", "rectf":
		a, err := ints(c.Args, 4)
		if err != nil {
			return err
		}
		if c.Op == "rect" {
			d.Rect(a[0], a[1], a[2], a[3])
		} else {
			d.RectF(a[0], a[1], a[2], a[3])
		}
	case "line":
		a, err := ints(c.Args, 4, 6)
		if err != nil {
			return err
		}
		if len(a) == 4 {
			d.Line(a[0], a[1], a[2], a[3])
		} else {
			d.Line3(a[0], a[1], a[2], a[3], a[4], a[5])
		}
	case "xyline":
		a, err := ints(c.Args, 3, 4, 5)
		if err != nil {
			return err
		}
		switch len(a) {
		case 3:
			d.XYLine(a[0], a[1], a[2])
		case 4:
			d.XYLine2(a[0], a[1], a[2], a[3])
		default:
			d.XYLine3(a[0], a[1], a[2], a[3], a[4])
		}
	case "yxline":
		a, err := ints(c.Args, 3, 4, 5)
		if err != nil {
			return err
		}
		switch len(a) {
		case 3:
			d.YXLine(a[0], a[1], a[2])
		case 4:
			d.YXLine2(a[0], a[1], a[2], a[3])
		default:
			d.YXLine3(a[0], a[1], a[2], a[3], a[4])
		}
	case "loop", "polygon":
		a, err := ints(c.Args, 6, 8)
		if err != nil {
			return err
		}
		switch {
		case c.Op == "loop" && len(a) == 6:
			d.Loop3(a[0], a[1], a[2], a[3], a[4], a[5])
		case c.Op == "loop":
			d.Loop4(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7])
		case len(a) == 6:
			d.Polygon3(a[0], a[1], a[2], a[3], a[4], a[5])
		default:
			d.Polygon4(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7])
		}
	case "circle":
		if len(c.Args) != 3 {
			return fmt.Errorf("%w: got %d, want 3", ErrArgs, len(c.Args))
		}
		d.Circle(c.Args[0], c.Args[1], c.Args[2])
	case "arc", "pie":
		if len(c.Args) != 6 {
			return fmt.Errorf("%w: got %d, want 6", ErrArgs, len(c.Args))
		}
		a, _ := ints(c.Args[:4], 4)
		if c.Op == "arc" {
			d.Arc(a[0], a[1], a[2], a[3], c.Args[4], c.Args[5])
		} else {
			d.Pie(a[0], a[1], a[2], a[3], c.Args[4], c.Args[5])
		}
	case "path":
		return r.path(c)
	case "text", "rtl_text":
		a, err := ints(c.Args, 2)
		if err != nil {
			return err
		}
		if c.Op == "text" {
			d.Draw(c.Text, a[0], a[1])
		} else {
			d.RTLDraw(c.Text, a[0], a[1])
		}
	case "image":
		a, err := ints(c.Args, 2)
		if err != nil {
			return err
		}
		img, err := r.image(c.Path)
		if err != nil {
			return err
		}
		d.DrawImageAt(img, a[0], a[1])
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, c.Op)
	}
	return nil
}

// path draws c.Contours as one begin/vertex/end path of c.Kind.
func (r *runner) path(c Command) error {
	for _, contour := range c.Contours {
		for _, v := range contour {
			if len(v) != 2 {
				return fmt.Errorf("%w: vertex has %d coordinates", ErrArgs, len(v))
			}
		}
	}
	d := r.d
	var end func()
	switch c.Kind {
	case "points":
		d.BeginPoints()
		end = d.EndPoints
	case "line":
		d.BeginLine()
		end = d.EndLine
	case "loop":
		d.BeginLoop()
		end = d.EndLoop
	case "polygon":
		d.BeginPolygon()
		end = d.EndPolygon
	case "complex_polygon":
		d.BeginComplexPolygon()
		end = d.EndComplexPolygon
	default:
		return fmt.Errorf("%w: path kind %q", ErrUnknownOp, c.Kind)
	}
	for i, contour := range c.Contours {
		if i > 0 {
			d.Gap()
		}
		for _, v := range contour {
			d.Vertex(v[0], v[1])
		}
	}
	end()
	return nil
}

// image loads a source image once per path.
func (r *runner) image(path string) (fbdraw.Image, error) {
	if img, ok := r.images[path]; ok {
		return img, nil
	}
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(r.dir, path)
	}
	src, err := image.Load(full)
	if err != nil {
		return nil, err
	}
	var img fbdraw.Image
	if p, ok := src.(*stdimage.Paletted); ok {
		img = fbdraw.NewPixmapFrom(p)
	} else {
		img = fbdraw.NewRGBImageFrom(src)
	}
	r.images[path] = img
	return img, nil
}
