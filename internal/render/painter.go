//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads a raw RGBA frame into a single image and draws it
// scaled onto the screen.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
}

// NewFramePainter allocates a painter for a frame of size w*h pixels.
func NewFramePainter(w, h int) *FramePainter {
	return &FramePainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads the frame and draws it at the given integer scale.
func (fp *FramePainter) Blit(dst *ebiten.Image, frame []byte, scale int) {
	if len(frame) != 4*fp.w*fp.h {
		return
	}
	fp.img.WritePixels(frame)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
