package plot3d

import (
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func decodeFile(t *testing.T, path string, decode func(f *os.File) (image.Image, error)) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func TestExportAllFormats(t *testing.T) {
	dir := t.TempDir()
	fig := testFigure(true, single(0, 0, 0))
	fig.Options.Size = [2]float64{1, 0.5}

	paths := map[string]func(f *os.File) (image.Image, error){
		"out.png":  func(f *os.File) (image.Image, error) { return png.Decode(f) },
		"out.JPG":  func(f *os.File) (image.Image, error) { return jpeg.Decode(f) },
		"out.bmp":  func(f *os.File) (image.Image, error) { return bmp.Decode(f) },
		"out.tiff": func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
	}
	var list []string
	for name := range paths {
		list = append(list, filepath.Join(dir, name))
	}

	if err := ExportAll(fig, list, 80); err != nil {
		t.Fatalf("ExportAll: %v", err)
	}
	for name, decode := range paths {
		img := decodeFile(t, filepath.Join(dir, name), decode)
		if img.Bounds().Dx() != 80 || img.Bounds().Dy() != 40 {
			t.Errorf("%s: size = %v, want 80x40", name, img.Bounds().Size())
		}
	}
}

func TestExportUnsupported(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "ok.png")
	bad := filepath.Join(dir, "plot.svg")

	err := ExportAll(testFigure(false), []string{good, bad}, 50)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(good); !errors.Is(err, os.ErrNotExist) {
		t.Error("a file was written before the format check failed")
	}
}

func TestExportSingle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.png")
	if err := Export(testFigure(false), path, 30); err != nil {
		t.Fatalf("Export: %v", err)
	}
	img := decodeFile(t, path, func(f *os.File) (image.Image, error) { return png.Decode(f) })
	if img.Bounds().Dx() != 30 {
		t.Errorf("width = %d, want 30", img.Bounds().Dx())
	}
}

func TestExportCreateFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "out.png")
	if err := Export(testFigure(false), path, 20); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestFormats(t *testing.T) {
	for _, ext := range Formats() {
		if _, err := encoderFor("x" + ext); err != nil {
			t.Errorf("Formats lists %s but encoderFor fails: %v", ext, err)
		}
	}
}
