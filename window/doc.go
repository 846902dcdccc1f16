// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window selects and opens display backends for pointview.
//
// Backends register a factory under a name and a priority, usually from an
// init function, so programs choose them with a blank import:
//
//	import (
//	    _ "github.com/gogpu/pointview/window/gogpuwin" // GPU window, priority 100
//	    _ "github.com/gogpu/pointview/window/termwin"  // terminal, priority 50
//	)
//
//	win, err := window.Open(window.Options{Title: "points", Width: 640, Height: 480})
//	// or a specific backend:
//	win, err := window.OpenByName("term", opts)
//
// The built-in "image" backend keeps frames in memory and is never picked
// automatically; it serves tests and headless snapshot runs.
package window
