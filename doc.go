// Package fbdraw is a software drawing backend for RGB565 framebuffers.
//
// # Overview
//
// A [Driver] turns the primitive calls of a widget toolkit (points, lines,
// rectangles, polygons, arcs, images and text) into pixel writes against
// the framebuffer of the current [Window]. Every write goes through the
// active clip: the visible part of the window intersected with the top of
// the clip stack. Nothing outside it is ever touched.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/fbdraw"
//	    "github.com/gogpu/fbdraw/surface"
//	)
//
//	screen := surface.NewScreen(320, 240)
//	win := screen.NewWindow(image.Rect(0, 0, 320, 240))
//
//	d := fbdraw.NewDriver()
//	d.MakeCurrent(win)
//
//	d.PushClip(10, 10, 20, 20)
//	d.SetColor(fbdraw.Red)
//	d.RectF(0, 0, 100, 100) // only the 20×20 block at (10, 10) is painted
//	d.PopClip()
//
// # Paths
//
// Shapes can be built from vertices between a Begin and an End call of the
// same kind. Complex polygons separate their contours with [Driver.Gap]
// and are filled with the even-odd rule, so an inner contour cuts a hole:
//
//	d.BeginComplexPolygon()
//	d.Vertex(0, 0); d.Vertex(10, 0); d.Vertex(10, 10); d.Vertex(0, 10)
//	d.Gap()
//	d.Vertex(3, 3); d.Vertex(7, 3); d.Vertex(7, 7); d.Vertex(3, 7)
//	d.EndComplexPolygon()
//
// Coordinates are rounded with floor(v+0.5). A pixel belongs to a filled
// shape when its center lies inside, so shapes sharing an edge tile without
// gaps.
//
// # Images and Text
//
// [RGBImage], [Bitmap] and [Pixmap] are converted once to a device form and
// kept in an LRU cache bounded by [WithImageCacheLimit]. Glyphs are
// rendered by a [text.Provider], the bundled Go fonts by default, and kept
// in a glyph cache.
//
// # Capabilities
//
// The RGB565 target cannot composite translucent colors:
// [Driver.CanDoAlphaBlending] reports false. Cached translucent images and
// glyph coverage are still blended per pixel.
//
// # Logging
//
// The package is silent by default. [SetLogger] installs a [log/slog]
// logger; see its documentation for the levels used.
package fbdraw
