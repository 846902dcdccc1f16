package plot3d

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/pointview"
)

// jpegQuality is used for .jpg and .jpeg outputs.
const jpegQuality = 95

// encoder writes a rendered figure.
type encoder func(w io.Writer, dc *gg.Context) error

var encoders = map[string]encoder{
	".png": func(w io.Writer, dc *gg.Context) error {
		return dc.EncodePNG(w)
	},
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".bmp": func(w io.Writer, dc *gg.Context) error {
		return bmp.Encode(w, dc.Image())
	},
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeJPEG(w io.Writer, dc *gg.Context) error {
	return dc.EncodeJPEG(w, jpegQuality)
}

func encodeTIFF(w io.Writer, dc *gg.Context) error {
	return tiff.Encode(w, dc.Image(), &tiff.Options{Compression: tiff.Deflate})
}

// Formats returns the supported output extensions.
func Formats() []string {
	return []string{".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff"}
}

func encoderFor(path string) (encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	return enc, nil
}

// Export renders fig at dpi and writes it to path, choosing the format by
// extension.
func Export(fig *Figure, path string, dpi int) error {
	return ExportAll(fig, []string{path}, dpi)
}

// ExportAll renders fig once at dpi and writes it to every path. All
// extensions are checked before anything is rendered.
func ExportAll(fig *Figure, paths []string, dpi int) error {
	if len(paths) == 0 {
		return nil
	}
	encs := make([]encoder, len(paths))
	for i, p := range paths {
		enc, err := encoderFor(p)
		if err != nil {
			return err
		}
		encs[i] = enc
	}

	w, h := fig.Options.PixelSize(dpi)
	dc, stats := fig.Render(w, h)
	defer func() { _ = dc.Close() }()

	for i, p := range paths {
		if err := writeFile(p, dc, encs[i]); err != nil {
			return err
		}
		pointview.Logger().Info("plot3d: exported",
			slog.String("path", p),
			slog.Int("width", w), slog.Int("height", h),
			slog.Int("markers", stats.Markers), slog.Int("segments", stats.Segments))
	}
	return nil
}

func writeFile(path string, dc *gg.Context, enc encoder) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot3d: export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("plot3d: export %s: %w", path, cerr)
		}
	}()
	if err := enc(f, dc); err != nil {
		return fmt.Errorf("plot3d: export %s: %w", path, err)
	}
	return nil
}

// Image renders fig at w×h and returns a standalone copy of the pixels.
func Image(fig *Figure, w, h int) (image.Image, Stats) {
	dc, stats := fig.Render(w, h)
	defer func() { _ = dc.Close() }()
	src := dc.Image()
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Rect, src, src.Bounds().Min, draw.Src)
	return img, stats
}
