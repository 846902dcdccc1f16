package plot3d

// Defaults.
const (
	DefaultLimit    = 250
	DefaultDPI      = 300
	DefaultFontSize = 12
	DefaultSize     = 7.0 // inches, both sides
)

// Options describes one plot.
type Options struct {
	// Line draws each series as a connected polyline.
	Line bool

	// Points draws each series as unconnected markers.
	Points bool

	// Limit is the symmetric bound of all three axes.
	Limit int

	// Quiet suppresses the interactive display.
	Quiet bool

	// Outputs are files the figure is exported to.
	Outputs []string

	// DPI is the export resolution in pixels per inch.
	DPI int

	// FontSize is the tick label size in points.
	FontSize int

	// Size is the figure width and height in inches.
	Size [2]float64

	// Inputs are the files to read. Empty means standard input.
	Inputs []string
}

// DefaultOptions returns the plotter defaults: line mode, limit 250,
// 300 dpi, 12 point labels on a 7×7 inch figure.
func DefaultOptions() Options {
	return Options{
		Line:     true,
		Limit:    DefaultLimit,
		DPI:      DefaultDPI,
		FontSize: DefaultFontSize,
		Size:     [2]float64{DefaultSize, DefaultSize},
	}
}

// Normalize makes the options consistent. Line and Points are mutually
// exclusive: when neither or both are set, line mode wins. Non-positive
// numeric fields fall back to their defaults.
func (o *Options) Normalize() {
	if o.Line == o.Points {
		o.Line, o.Points = true, false
	}
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.DPI <= 0 {
		o.DPI = DefaultDPI
	}
	if o.FontSize <= 0 {
		o.FontSize = DefaultFontSize
	}
	for i := range o.Size {
		if !(o.Size[i] > 0) {
			o.Size[i] = DefaultSize
		}
	}
}

// PixelSize returns the figure size in pixels at dpi.
func (o Options) PixelSize(dpi int) (width, height int) {
	width = int(o.Size[0]*float64(dpi) + 0.5)
	height = int(o.Size[1]*float64(dpi) + 0.5)
	return max(width, 1), max(height, 1)
}
