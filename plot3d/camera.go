package plot3d

import "math"

// Default view angles in degrees.
const (
	DefaultElev = 30
	DefaultAzim = -60
)

// halfDiagonal is the projected radius of the unit cube [-1,1]^3 under any
// rotation.
var halfDiagonal = math.Sqrt(3)

// Camera is an orthographic view of the cube [-Limit, Limit]^3.
//
// Elev is the angle above the xy plane and Azim the rotation about the z
// axis, both in degrees.
type Camera struct {
	Elev  float64
	Azim  float64
	Limit float64
}

// NewCamera returns the default view of a cube with the given half side.
func NewCamera(limit float64) Camera {
	return Camera{Elev: DefaultElev, Azim: DefaultAzim, Limit: limit}
}

// basis returns the screen right and up vectors and the direction towards
// the viewer.
func (c Camera) basis() (right, up, toward [3]float64) {
	el := c.Elev * math.Pi / 180
	az := c.Azim * math.Pi / 180
	se, ce := math.Sincos(el)
	sa, ca := math.Sincos(az)

	right = [3]float64{-sa, ca, 0}
	up = [3]float64{-se * ca, -se * sa, ce}
	toward = [3]float64{ce * ca, ce * sa, se}
	return right, up, toward
}

// Project maps a data point onto the unit plane. The whole cube lands
// inside [0,1]×[0,1], centred at (0.5, 0.5), with v growing upwards.
func (c Camera) Project(x, y, z float64) (u, v float64) {
	right, up, _ := c.basis()
	p := c.scale(x, y, z)
	u = 0.5 + dot(p, right)/(2*halfDiagonal)
	v = 0.5 + dot(p, up)/(2*halfDiagonal)
	return u, v
}

// Depth returns how close a point is to the viewer; larger is nearer.
func (c Camera) Depth(x, y, z float64) float64 {
	_, _, toward := c.basis()
	return dot(c.scale(x, y, z), toward)
}

// backSides returns, per axis, the cube face coordinate furthest from the
// viewer. The three back panes are drawn on those faces.
func (c Camera) backSides() [3]float64 {
	_, _, toward := c.basis()
	var sides [3]float64
	for i, d := range toward {
		if d >= 0 {
			sides[i] = -c.Limit
		} else {
			sides[i] = c.Limit
		}
	}
	return sides
}

func (c Camera) scale(x, y, z float64) [3]float64 {
	l := c.Limit
	if l <= 0 {
		l = 1
	}
	return [3]float64{x / l, y / l, z / l}
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
