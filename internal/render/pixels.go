package render

import "image/color"

// FillRGBA sets every pixel of the row-major RGBA buffer to the given color.
func FillRGBA(buf []byte, c color.RGBA) {
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i+0] = c.R
		buf[i+1] = c.G
		buf[i+2] = c.B
		buf[i+3] = c.A
	}
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SatAdd8 adds d to c with saturation at 255 instead of wrapping.
func SatAdd8(c, d uint8) uint8 {
	s := uint16(c) + uint16(d)
	if s > 255 {
		return 255
	}
	return uint8(s)
}
