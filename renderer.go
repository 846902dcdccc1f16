package pointview

import (
	"image"
	"image/color"
)

// Background is the color every frame is cleared to.
var Background color.Color = color.Black

// pixelLimit bounds projected coordinates before integer conversion so that
// wildly out-of-range points cannot overflow; the surface clips them anyway.
const pixelLimit = 1 << 30

// Renderer draws buffer snapshots onto a Surface.
type Renderer struct {
	surface Surface
}

// NewRenderer creates a renderer that draws to s.
func NewRenderer(s Surface) *Renderer {
	return &Renderer{surface: s}
}

// Surface returns the current drawing target.
func (r *Renderer) Surface() Surface {
	return r.surface
}

// SetSurface replaces the drawing target, typically after a resize.
func (r *Renderer) SetSurface(s Surface) {
	r.surface = s
}

// Present clears the surface to Background, draws one square per valid slot
// and presents the result.
//
// Slot i is centred at (X*view.Width, Y*view.Height) and colored with
// ramp[i]; its side is 2*view.Thickness+1 pixels. Empty slots are skipped but
// still consume their ramp index.
func (r *Renderer) Present(slots []Slot, ramp Ramp, view ViewState) error {
	s := r.surface
	s.Clear(Background)
	for i, slot := range slots {
		if !slot.Valid {
			continue
		}
		s.FillRect(squareAt(slot.Point, view), ramp.At(i))
	}
	return s.Present()
}

// squareAt returns the pixel square covered by p in view.
func squareAt(p Point, view ViewState) image.Rectangle {
	cx, cy := p.Scale(view.Width, view.Height)
	t := float64(view.Thickness)
	x0 := int(clampPixel(cx - t))
	y0 := int(clampPixel(cy - t))
	side := view.Side()
	return image.Rect(x0, y0, x0+side, y0+side)
}

func clampPixel(v float64) float64 {
	switch {
	case v > pixelLimit:
		return pixelLimit
	case v < -pixelLimit:
		return -pixelLimit
	}
	return v
}
