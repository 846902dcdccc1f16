// Package pointview draws a live stream of 2D points as an aging trail.
//
// # Overview
//
// A producer writes one "x y" record per line, both coordinates normalized
// to the unit square. pointview keeps the most recent points in a
// fixed-capacity ring buffer and redraws them every tick as filled squares
// whose brightness follows their position in the buffer: the oldest slot is
// the dimmest, the newest the brightest.
//
// # Quick Start
//
//	win, err := window.Open(window.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loop, err := pointview.NewLoop(win, input.Open(os.Stdin))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = pointview.Run(win, func() error { return loop.Run(ctx) })
//
// # Architecture
//
// The package is organized around a single-threaded event loop:
//   - InputChannel: non-blocking line source (see package input)
//   - Buffer: ring of the last N points, oldest first
//   - Ramp: grey shade per buffer slot
//   - Renderer: projects slots to pixel squares on a Surface
//   - Loop: multiplexes window events with a fixed-rate tick
//
// Windows are provided by backends registered in package window.
//
// # Coordinate System
//
// Point coordinates are fractions of the window:
//   - (0, 0) is the top-left corner
//   - (1, 1) is the bottom-right corner
//   - points outside [0, 1) are drawn and clipped by the surface
package pointview

// Version information
const (
	// Version is the current version of pointview
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
