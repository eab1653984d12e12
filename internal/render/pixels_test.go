package render

import (
	"image/color"
	"testing"
)

func TestFillRGBA(t *testing.T) {
	buf := make([]byte, 4*6)
	FillRGBA(buf, color.RGBA{R: 20, G: 20, B: 20, A: 255})
	for i := 0; i < len(buf); i += 4 {
		if buf[i] != 20 || buf[i+1] != 20 || buf[i+2] != 20 || buf[i+3] != 255 {
			t.Fatalf("pixel %d = (%d,%d,%d,%d)", i/4, buf[i], buf[i+1], buf[i+2], buf[i+3])
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, lo, hi, want int }{
		{-5, 0, 255, 0},
		{300, 0, 255, 255},
		{128, 0, 255, 128},
	}
	for _, tc := range cases {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Fatalf("Clamp(%d, %d, %d) = %d, want %d", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestSatAdd8Saturates(t *testing.T) {
	if got := SatAdd8(200, 100); got != 255 {
		t.Fatalf("SatAdd8(200, 100) = %d, want 255", got)
	}
	if got := SatAdd8(10, 20); got != 30 {
		t.Fatalf("SatAdd8(10, 20) = %d, want 30", got)
	}
}
