// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface is an in-memory window system for the drawing backend.
//
// A Screen owns one RGB565 framebuffer. Windows are rectangles of that
// framebuffer stacked back to front; each Window exposes its part of the
// buffer together with the rectangles covered by windows above it, which
// is what a driver needs to bind it as a drawing target:
//
//	scr := surface.NewScreen(320, 240)
//	win := scr.NewWindow(image.Rect(10, 10, 210, 110))
//	d := fbdraw.NewDriver()
//	d.MakeCurrent(win)
//
// Writes are recorded per 32×32 tile so a presenter can copy only the
// damaged parts of the screen (see Screen.Damage).
package surface
