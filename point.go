package pointview

import (
	"fmt"

	"github.com/gogpu/pointview/internal/record"
)

// Point is a position in the unit square. X grows to the right and Y grows
// downward; both are conventionally in [0, 1).
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Scale maps the normalized point to pixel space for a w×h view.
func (p Point) Scale(w, h int) (x, y float64) {
	return p.X * float64(w), p.Y * float64(h)
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// ParsePoint parses an "x y" record. Surrounding whitespace, including the
// trailing newline, is ignored. It reports false for any other field count
// and for fields that are not finite numbers.
func ParsePoint(line string) (Point, bool) {
	x, y, ok := record.ParseXY(line)
	if !ok {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

// Slot is one position of a Buffer. A slot that never received a point has
// Valid == false and is skipped when rendering.
type Slot struct {
	Point
	Valid bool
}
