package render

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	turbulenceOctaves   = 3
	turbulenceFrequency = 0.035
)

// Noise produces animated 2D turbulence fields used for per-pixel shading
// jitter. Samples are scaled to [-1, 1].
type Noise struct {
	p *perlin.Perlin
}

// NewNoise constructs a turbulence source from the provided seed.
func NewNoise(seed int64) *Noise {
	return &Noise{p: perlin.NewPerlin(2, 2, turbulenceOctaves, seed)}
}

// Fill populates dst with a w*h turbulence field whose origin is shifted by
// (offX, offY). Shifting the origin over time animates the pattern. dst must
// hold at least w*h samples.
func (n *Noise) Fill(dst []float32, w, h int, offX, offY float64) {
	i := 0
	for y := 0; y < h; y++ {
		fy := (float64(y) + offY) * turbulenceFrequency
		for x := 0; x < w; x++ {
			fx := (float64(x) + offX) * turbulenceFrequency
			dst[i] = float32(n.turbulence(fx, fy))
			i++
		}
	}
}

// turbulence sums absolute-value octaves and rescales into [-1, 1].
func (n *Noise) turbulence(x, y float64) float64 {
	sum := 0.0
	norm := 0.0
	amp := 1.0
	freq := 1.0
	for o := 0; o < turbulenceOctaves; o++ {
		sum += math.Abs(n.p.Noise2D(x*freq, y*freq)) * amp
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	v := sum/norm*2 - 1
	if v < -1 {
		v = -1
	}
	if v > 1 {
		v = 1
	}
	return v
}
