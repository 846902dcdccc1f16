package pointview

import (
	"image/color"
	"math"
)

// Ramp is the grey shade assigned to each buffer slot. Shade i colors
// whatever point currently sits in slot i: the newest point is always in the
// last slot and moves one slot toward the front per append, so brightness
// measures how many points arrived after it, not how long it has existed.
type Ramp []color.Gray

// NewRamp builds a ramp of n shades from black (index 0) to white
// (index n-1). With n == 256 shade i is exactly Gray{i}. A ramp of one
// shade is white.
func NewRamp(n int) Ramp {
	if n < 1 {
		n = 1
	}
	r := make(Ramp, n)
	if n == 1 {
		r[0] = color.Gray{Y: 255}
		return r
	}
	for i := range r {
		r[i] = color.Gray{Y: uint8(math.Round(float64(i) * 255 / float64(n-1)))}
	}
	return r
}

// At returns the shade for slot i, clamping out-of-range indices.
func (r Ramp) At(i int) color.Gray {
	if len(r) == 0 {
		return color.Gray{}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(r) {
		i = len(r) - 1
	}
	return r[i]
}
