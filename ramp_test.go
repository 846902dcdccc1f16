package pointview

import (
	"image/color"
	"testing"
)

func TestRampLengthAndMonotonic(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10, 255, 256, 257, 1024} {
		r := NewRamp(n)
		if len(r) != n {
			t.Fatalf("len(NewRamp(%d)) = %d", n, len(r))
		}
		for i := 1; i < len(r); i++ {
			if r[i].Y < r[i-1].Y {
				t.Fatalf("NewRamp(%d) decreases at %d: %d < %d", n, i, r[i].Y, r[i-1].Y)
			}
		}
		if r[n-1].Y != 255 {
			t.Errorf("NewRamp(%d) brightest = %d, want 255", n, r[n-1].Y)
		}
		if n > 1 && r[0].Y != 0 {
			t.Errorf("NewRamp(%d) dimmest = %d, want 0", n, r[0].Y)
		}
	}
}

func TestRamp256IsIdentity(t *testing.T) {
	r := NewRamp(256)
	for i, c := range r {
		if c != (color.Gray{Y: uint8(i)}) {
			t.Fatalf("NewRamp(256)[%d] = %v, want Gray{%d}", i, c, i)
		}
	}
}

func TestRampAtClamps(t *testing.T) {
	r := NewRamp(4)
	if r.At(-3) != r[0] {
		t.Errorf("At(-3) = %v, want %v", r.At(-3), r[0])
	}
	if r.At(10) != r[3] {
		t.Errorf("At(10) = %v, want %v", r.At(10), r[3])
	}
	if (Ramp(nil)).At(0) != (color.Gray{}) {
		t.Error("empty ramp should return black")
	}
}
