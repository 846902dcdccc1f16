package plot3d

import (
	"log/slog"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/pointview"
)

// Tab10 is the series color cycle.
var Tab10 = []gg.RGBA{
	gg.Hex("#1f77b4"), gg.Hex("#ff7f0e"), gg.Hex("#2ca02c"), gg.Hex("#d62728"),
	gg.Hex("#9467bd"), gg.Hex("#8c564b"), gg.Hex("#e377c2"), gg.Hex("#7f7f7f"),
	gg.Hex("#bcbd22"), gg.Hex("#17becf"),
}

// Sizes in points, scaled to pixels at render time.
const (
	lineWidthPt   = 1.5
	gridWidthPt   = 0.8
	markerSizePt  = 1.0
	labelOffsetPt = 14
	titleOffsetPt = 34
)

// plotFraction is the share of the shorter figure side used by the cube.
const plotFraction = 0.78

var (
	paneColor = gg.RGB(0.95, 0.95, 0.95)
	edgeColor = gg.RGB(0.8, 0.8, 0.8)
	gridColor = gg.RGB(0.87, 0.87, 0.87)
	textColor = gg.RGB(0.15, 0.15, 0.15)
)

// Stats counts what Render drew.
type Stats struct {
	Series   int
	Markers  int
	Segments int
}

// Figure is a 3D plot of one or more series.
type Figure struct {
	Options Options
	Series  []Series
	Camera  Camera
}

// NewFigure creates a figure with the default camera. opts should already
// be normalized.
func NewFigure(opts Options, series []Series) *Figure {
	return &Figure{
		Options: opts,
		Series:  series,
		Camera:  NewCamera(float64(opts.Limit)),
	}
}

// Render draws the figure into a new width×height context. Sizes given in
// points are scaled so that the figure width spans Options.Size[0] inches.
// The caller owns the returned context.
func (f *Figure) Render(width, height int) (*gg.Context, Stats) {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)

	l := layout{
		cam:   f.Camera,
		pt:    float64(width) / (f.Options.Size[0] * 72),
		side:  float64(min(width, height)) * plotFraction,
		width: float64(width), height: float64(height),
	}

	l.drawPanes(dc)
	l.drawLabels(dc, float64(f.Options.FontSize))

	stats := Stats{Series: len(f.Series)}
	for i := range f.Series {
		s := &f.Series[i]
		dc.SetColor(Tab10[i%len(Tab10)])
		if f.Options.Points {
			stats.Markers += l.drawMarkers(dc, s)
		} else {
			stats.Segments += l.drawLine(dc, s)
		}
	}
	return dc, stats
}

// layout maps data coordinates to figure pixels.
type layout struct {
	cam           Camera
	pt            float64 // pixels per point
	side          float64
	width, height float64
}

func (l layout) pixel(x, y, z float64) (px, py float64) {
	u, v := l.cam.Project(x, y, z)
	ox := (l.width - l.side) / 2
	oy := (l.height - l.side) / 2
	return ox + u*l.side, oy + (1-v)*l.side
}

func (l layout) lineWidth(pt float64) float64 {
	return max(pt*l.pt, 1)
}

// drawPanes fills the three back faces of the cube and rules a grid at
// the tick positions.
func (l layout) drawPanes(dc *gg.Context) {
	lim := l.cam.Limit
	back := l.cam.backSides()
	ticks := Ticks(lim)

	for axis := range 3 {
		// Corners of the face perpendicular to axis.
		var corners [4][3]float64
		a, b := (axis+1)%3, (axis+2)%3
		for i, c := range [4][2]float64{{-lim, -lim}, {lim, -lim}, {lim, lim}, {-lim, lim}} {
			corners[i][axis] = back[axis]
			corners[i][a] = c[0]
			corners[i][b] = c[1]
		}

		for i, c := range corners {
			px, py := l.pixel(c[0], c[1], c[2])
			if i == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.ClosePath()
		dc.SetColor(paneColor)
		_ = dc.FillPreserve()
		dc.SetColor(edgeColor)
		dc.SetLineWidth(l.lineWidth(gridWidthPt))
		_ = dc.Stroke()

		dc.SetColor(gridColor)
		for _, t := range ticks {
			for _, along := range [2]int{a, b} {
				var p0, p1 [3]float64
				p0[axis], p1[axis] = back[axis], back[axis]
				p0[along], p1[along] = t, t
				other := a + b - along
				p0[other], p1[other] = -lim, lim
				x0, y0 := l.pixel(p0[0], p0[1], p0[2])
				x1, y1 := l.pixel(p1[0], p1[1], p1[2])
				dc.DrawLine(x0, y0, x1, y1)
			}
		}
		_ = dc.Stroke()
	}
}

// drawLabels writes tick labels along one front edge per axis, plus the
// axis names.
func (l layout) drawLabels(dc *gg.Context, fontSize float64) {
	src := fontSource()
	if src == nil {
		return
	}
	dc.SetFont(src.Face(fontSize * l.pt))
	dc.SetColor(textColor)

	lim := l.cam.Limit
	back := l.cam.backSides()
	front := [3]float64{-back[0], -back[1], -back[2]}
	cx, cy := l.width/2, l.height/2
	names := [3]string{"X", "Y", "Z"}

	// Edge per axis: the ruled coordinate varies, the others are fixed.
	edges := [3][3]float64{
		{0, front[1], back[2]},
		{front[0], 0, back[2]},
		{front[0], back[1], 0},
	}
	for axis, edge := range edges {
		for _, t := range Ticks(lim) {
			p := edge
			p[axis] = t
			x, y := l.outward(cx, cy, p, labelOffsetPt)
			dc.DrawStringAnchored(TickLabel(t), x, y, 0.5, 0.5)
		}
		p := edge
		p[axis] = 0
		x, y := l.outward(cx, cy, p, titleOffsetPt)
		dc.DrawStringAnchored(names[axis], x, y, 0.5, 0.5)
	}
}

// outward projects p and pushes it away from the figure centre by
// offset points.
func (l layout) outward(cx, cy float64, p [3]float64, offset float64) (float64, float64) {
	x, y := l.pixel(p[0], p[1], p[2])
	dx, dy := x-cx, y-cy
	n := max(math.Hypot(dx, dy), 1e-9)
	return x + dx/n*offset*l.pt, y + dy/n*offset*l.pt
}

func (l layout) drawMarkers(dc *gg.Context, s *Series) int {
	r := max(markerSizePt*l.pt/2, 0.5)
	for i := range s.Len() {
		x, y := l.pixel(s.X[i], s.Y[i], s.Z[i])
		dc.DrawCircle(x, y, r)
	}
	_ = dc.Fill()
	return s.Len()
}

func (l layout) drawLine(dc *gg.Context, s *Series) int {
	if s.Len() < 2 {
		return 0
	}
	for i := range s.Len() {
		x, y := l.pixel(s.X[i], s.Y[i], s.Z[i])
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.SetLineWidth(l.lineWidth(lineWidthPt))
	_ = dc.Stroke()
	return s.Len() - 1
}

var (
	fontOnce sync.Once
	fontSrc  *text.FontSource
)

// fontSource loads the Go regular font once; the source is shared by all
// figures.
func fontSource() *text.FontSource {
	fontOnce.Do(func() {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			pointview.Logger().Warn("plot3d: load font, labels disabled", slog.Any("err", err))
			return
		}
		fontSrc = src
	})
	return fontSrc
}
