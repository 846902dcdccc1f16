package pointview

import "time"

// DefaultTickInterval is the input polling and redraw period.
const DefaultTickInterval = 10 * time.Millisecond

// Option configures a Loop during creation.
// Use functional options to customize Loop behavior.
//
// Example:
//
//	// Defaults: 256 points, 4 pixel thickness, 10ms tick
//	loop, err := pointview.NewLoop(win, in)
//
//	// Longer trail with smaller marks
//	loop, err := pointview.NewLoop(win, in,
//	    pointview.WithCapacity(1024),
//	    pointview.WithThickness(1))
type Option func(*loopOptions)

// loopOptions holds optional configuration for Loop creation.
type loopOptions struct {
	capacity  int
	thickness int
	interval  time.Duration
}

// defaultOptions returns the default loop options.
func defaultOptions() loopOptions {
	return loopOptions{
		capacity:  DefaultCapacity,
		thickness: DefaultThickness,
		interval:  DefaultTickInterval,
	}
}

// WithCapacity sets the number of points kept in the trail and the number
// of shades in the color ramp. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(o *loopOptions) {
		if n >= 1 {
			o.capacity = n
		}
	}
}

// WithThickness sets the half-size of a point square in pixels.
// Negative values are ignored.
func WithThickness(t int) Option {
	return func(o *loopOptions) {
		if t >= 0 {
			o.thickness = t
		}
	}
}

// WithTickInterval sets the input polling period. The viewer always uses
// DefaultTickInterval; other values are meant for tests and embedding.
// Non-positive values are ignored.
func WithTickInterval(d time.Duration) Option {
	return func(o *loopOptions) {
		if d > 0 {
			o.interval = d
		}
	}
}
