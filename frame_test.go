package pointview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestFrameClear(t *testing.T) {
	f := NewFrame(4, 3)
	f.Clear(color.RGBA{R: 10, G: 20, B: 30, A: 255})
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := f.RGBAAt(x, y); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
				t.Fatalf("pixel (%d,%d) = %v after Clear", x, y, got)
			}
		}
	}
}

func TestFrameFillRectClips(t *testing.T) {
	white := color.Gray{Y: 255}
	tests := []struct {
		name  string
		rect  image.Rectangle
		count int
	}{
		{"inside", image.Rect(1, 1, 3, 3), 4},
		{"overlaps left top", image.Rect(-2, -2, 2, 2), 4},
		{"overlaps right bottom", image.Rect(8, 8, 20, 20), 4},
		{"fully outside", image.Rect(20, 20, 30, 30), 0},
		{"negative outside", image.Rect(-30, -30, -20, -20), 0},
		{"covers all", image.Rect(-100, -100, 100, 100), 100},
		{"empty", image.Rect(5, 5, 5, 5), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(10, 10)
			f.Clear(color.Black)
			f.FillRect(tt.rect, white)

			count := 0
			for y := 0; y < 10; y++ {
				for x := 0; x < 10; x++ {
					if f.RGBAAt(x, y).R == 255 {
						count++
					}
				}
			}
			if count != tt.count {
				t.Errorf("FillRect(%v) painted %d pixels, want %d", tt.rect, count, tt.count)
			}
		})
	}
}

func TestFrameSetPixelOutOfBounds(t *testing.T) {
	f := NewFrame(2, 2)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		f.SetPixel(p.X, p.Y, color.White)
	}
	for i, v := range f.Data() {
		if v != 0 {
			t.Fatalf("out-of-bounds SetPixel modified byte %d", i)
		}
	}
	if got := f.RGBAAt(5, 5); got != (color.RGBA{}) {
		t.Errorf("RGBAAt out of bounds = %v, want zero", got)
	}
}

func TestFrameResize(t *testing.T) {
	f := NewFrame(4, 4)
	f.Clear(color.White)

	f.Resize(2, 2)
	if f.Width() != 2 || f.Height() != 2 || len(f.Data()) != 16 {
		t.Fatalf("after Resize(2,2): %dx%d, %d bytes", f.Width(), f.Height(), len(f.Data()))
	}
	for _, v := range f.Data() {
		if v != 0 {
			t.Fatal("Resize kept old content")
		}
	}

	f.Resize(8, 3)
	if f.Bounds() != image.Rect(0, 0, 8, 3) || len(f.Data()) != 8*3*4 {
		t.Errorf("after Resize(8,3): bounds %v, %d bytes", f.Bounds(), len(f.Data()))
	}

	f.Resize(-1, 5)
	if f.Width() != 0 || len(f.Data()) != 0 {
		t.Errorf("negative Resize: %dx%d", f.Width(), f.Height())
	}
}

func TestFrameEncodePNG(t *testing.T) {
	f := NewFrame(3, 2)
	f.Clear(color.Black)
	f.SetPixel(1, 1, color.Gray{Y: 200})

	var buf bytes.Buffer
	if err := f.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	r, _, _, _ := img.At(1, 1).RGBA()
	if r>>8 != 200 {
		t.Errorf("pixel (1,1) red = %d, want 200", r>>8)
	}
}

func TestFrameCopyTo(t *testing.T) {
	f := NewFrame(2, 2)
	f.Clear(color.White)

	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if got := f.CopyTo(dst); got != dst {
		t.Error("CopyTo reallocated a same-size destination")
	}
	if dst.RGBAAt(1, 1) != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("copied pixel = %v", dst.RGBAAt(1, 1))
	}

	small := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if got := f.CopyTo(small); got == small || got.Bounds() != f.Bounds() {
		t.Error("CopyTo should reallocate a mismatched destination")
	}
}

func TestFrameDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}

	f := NewFrame(3, 2)
	f.DrawImage(src)
	if got := f.RGBAAt(2, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel (2,1) = %v, want white", got)
	}

	// A smaller source leaves the rest untouched.
	f.Clear(color.Black)
	f.DrawImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if got := f.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("pixel (0,0) = %v, want transparent", got)
	}
	if got := f.RGBAAt(2, 1); got != (color.RGBA{A: 255}) {
		t.Errorf("pixel (2,1) = %v, want opaque black", got)
	}
}
