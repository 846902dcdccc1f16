package pointview

import (
	"image"
	"image/color"
)

// Surface is the drawable area of a window at one resolution.
//
// Surfaces are NOT thread-safe. The Loop draws to its surface from a single
// goroutine; backends that display on another goroutine must copy in
// Present.
type Surface interface {
	// Bounds returns the drawable area in pixels.
	Bounds() image.Rectangle

	// Clear fills the entire surface with the given color.
	Clear(c color.Color)

	// FillRect fills r with c. Parts of r outside Bounds are clipped.
	FillRect(r image.Rectangle, c color.Color)

	// Present makes everything drawn since the last Present visible.
	Present() error
}
