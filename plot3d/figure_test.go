package plot3d

import (
	"image"
	"image/color"
	"testing"
)

func testFigure(points bool, series ...Series) *Figure {
	o := DefaultOptions()
	o.Points = points
	o.Line = !points
	o.Limit = 100
	o.Size = [2]float64{1, 1}
	o.Normalize()
	return NewFigure(o, series)
}

func single(x, y, z float64) Series {
	var s Series
	s.Add(x, y, z)
	return s
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -24 && d <= 24
}

func pixelAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// Two sources with one valid point each draw exactly two markers.
func TestRenderPointsTwoSources(t *testing.T) {
	fig := testFigure(true, single(0, 0, 0), single(50, -50, 25))

	img, stats := Image(fig, 300, 300)
	if stats.Series != 2 || stats.Markers != 2 || stats.Segments != 0 {
		t.Fatalf("stats = %+v, want 2 series, 2 markers, 0 segments", stats)
	}

	// The first series sits at the projected origin in the first tab10 color.
	l := layout{cam: fig.Camera, pt: 300.0 / 72, side: 300 * plotFraction, width: 300, height: 300}
	px, py := l.pixel(0, 0, 0)
	got := pixelAt(img, int(px), int(py))
	want := Tab10[0]
	wr, wg, wb, _ := want.RGBA()
	if !near(got.R, uint8(wr>>8)) || !near(got.G, uint8(wg>>8)) || !near(got.B, uint8(wb>>8)) {
		t.Errorf("marker pixel = %v, want near %v", got, want)
	}
}

func TestRenderBackground(t *testing.T) {
	img, _ := Image(testFigure(true), 120, 90)
	if img.Bounds() != image.Rect(0, 0, 120, 90) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := pixelAt(img, 0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("corner = %v, want white", got)
	}
	// The cube centre is covered by a back pane, not white.
	if got := pixelAt(img, 60, 45); got == (color.RGBA{255, 255, 255, 255}) {
		t.Error("no pane drawn at the figure centre")
	}
}

func TestRenderLineSegments(t *testing.T) {
	var s Series
	s.Add(-50, -50, -50)
	s.Add(0, 0, 0)
	s.Add(50, 50, 50)
	fig := testFigure(false, s, single(1, 1, 1))

	_, stats := Image(fig, 200, 200)
	if stats.Segments != 2 || stats.Markers != 0 {
		t.Errorf("stats = %+v, want 2 segments, 0 markers", stats)
	}
}

func TestColorCycle(t *testing.T) {
	series := make([]Series, 12)
	for i := range series {
		series[i] = single(float64(i), 0, 0)
	}
	_, stats := Image(testFigure(true, series...), 100, 100)
	if stats.Markers != 12 {
		t.Errorf("Markers = %d, want 12", stats.Markers)
	}
	if len(Tab10) != 10 {
		t.Errorf("len(Tab10) = %d", len(Tab10))
	}
}
