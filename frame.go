package pointview

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
)

// Frame is a rectangular RGBA pixel buffer, the software drawing target that
// every window backend presents from.
type Frame struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewFrame creates a frame with the given dimensions, cleared to
// transparent black. Non-positive dimensions produce an empty frame.
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Frame{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the frame.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the height of the frame.
func (f *Frame) Height() int {
	return f.height
}

// Data returns the raw pixel data (RGBA format).
func (f *Frame) Data() []uint8 {
	return f.data
}

// Resize changes the frame dimensions. Content is discarded.
func (f *Frame) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f.width, f.height = width, height
	if n := width * height * 4; cap(f.data) >= n {
		f.data = f.data[:n]
		clear(f.data)
	} else {
		f.data = make([]uint8, n)
	}
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are ignored.
func (f *Frame) SetPixel(x, y int, c color.Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	r, g, b, a := rgba8(c)
	i := (y*f.width + x) * 4
	f.data[i+0] = r
	f.data[i+1] = g
	f.data[i+2] = b
	f.data[i+3] = a
}

// Clear fills the entire frame with a color.
func (f *Frame) Clear(c color.Color) {
	r, g, b, a := rgba8(c)
	for i := 0; i < len(f.data); i += 4 {
		f.data[i+0] = r
		f.data[i+1] = g
		f.data[i+2] = b
		f.data[i+3] = a
	}
}

// FillRect fills r with a color. The rectangle is clipped to the frame
// bounds, so partially or fully off-frame rectangles are safe.
func (f *Frame) FillRect(r image.Rectangle, c color.Color) {
	r = r.Intersect(f.Bounds())
	if r.Empty() {
		return
	}
	cr, cg, cb, ca := rgba8(c)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := f.data[(y*f.width+r.Min.X)*4 : (y*f.width+r.Max.X)*4]
		for i := 0; i < len(row); i += 4 {
			row[i+0] = cr
			row[i+1] = cg
			row[i+2] = cb
			row[i+3] = ca
		}
	}
}

// DrawImage copies src onto the frame with its top-left corner at the
// origin, clipped to the frame bounds.
func (f *Frame) DrawImage(src image.Image) {
	dst := &image.RGBA{Pix: f.data, Stride: f.width * 4, Rect: f.Bounds()}
	draw.Draw(dst, dst.Rect, src, src.Bounds().Min, draw.Src)
}

// RGBAAt returns the color of a single pixel.
func (f *Frame) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return color.RGBA{}
	}
	i := (y*f.width + x) * 4
	return color.RGBA{R: f.data[i+0], G: f.data[i+1], B: f.data[i+2], A: f.data[i+3]}
}

// Image copies the frame into a new image.RGBA.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(f.Bounds())
	copy(img.Pix, f.data)
	return img
}

// CopyTo copies the frame into dst, reallocating it when the size differs,
// and returns the destination. It lets a backend keep one staging image.
func (f *Frame) CopyTo(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds() != f.Bounds() {
		return f.Image()
	}
	copy(dst.Pix, f.data)
	return dst
}

// EncodePNG writes the frame as a PNG image.
func (f *Frame) EncodePNG(w io.Writer) error {
	return png.Encode(w, f.Image())
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	return f.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return color.RGBAModel
}

// rgba8 converts c to 8-bit premultiplied components.
func rgba8(c color.Color) (r, g, b, a uint8) {
	cr, cg, cb, ca := c.RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(ca >> 8)
}
