// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import "github.com/gogpu/pointview"

// DefaultTitle is the window title used when Options.Title is empty.
const DefaultTitle = "Drawing points from stdin"

// Options configures a new window.
type Options struct {
	// Title is the window caption. Backends without captions ignore it.
	Title string

	// Width and Height are the requested drawable size in pixels.
	// Backends that cannot honor them report their real size via Size.
	Width, Height int

	// Snapshot, when set, names a PNG file the image backend writes its
	// last presented frame to on Close.
	Snapshot string
}

// DefaultOptions returns the viewer's default window options.
func DefaultOptions() Options {
	return Options{
		Title:  DefaultTitle,
		Width:  pointview.DefaultWidth,
		Height: pointview.DefaultHeight,
	}
}

// normalize fills zero fields with defaults.
func (o Options) normalize() Options {
	d := DefaultOptions()
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	return o
}
