package sandbox

import (
	"image/color"

	"sandgrid/internal/render"
)

// emptyColor is the background shade of unoccupied cells.
var emptyColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}

var kindColor = [kindCount]color.RGBA{
	Sand:        {R: 196, G: 192, B: 135, A: 255},
	WetSand:     {R: 166, G: 162, B: 105, A: 255},
	Water:       {R: 8, G: 130, B: 201, A: 255},
	Acid:        {R: 128, G: 209, B: 0, A: 255},
	Iridium:     {R: 205, G: 210, B: 211, A: 255},
	Replicator:  {R: 68, G: 11, B: 67, A: 255},
	Plant:       {R: 86, G: 216, B: 143, A: 255},
	Cryotheum:   {R: 12, G: 191, B: 201, A: 255},
	Unstable:    {R: 181, G: 158, B: 128, A: 255},
	Electricity: {R: 247, G: 244, B: 49, A: 255},
	Glass:       {R: 159, G: 198, B: 197, A: 255},
}

// Young plants render with their own shade until the growth stage passes.
var plantSproutColor = color.RGBA{R: 75, G: 209, B: 216, A: 255}

func baseColor(p *Particle) color.RGBA {
	if p.Kind == Plant && p.Extra1 < 2 {
		return plantSproutColor
	}
	return kindColor[p.Kind]
}

// noiseIntensity is the per-kind jitter amplitude. Zero disables jitter;
// electricity is near-total flicker.
func noiseIntensity(p *Particle) int16 {
	switch p.Kind {
	case Sand, WetSand:
		return 10
	case Water:
		return 30
	case Acid:
		return 50
	case Iridium:
		return 0
	case Replicator:
		return 10
	case Plant:
		if p.Extra1 < 2 {
			return 10
		}
		return 5
	case Cryotheum:
		return 10
	case Unstable:
		if p.Temperature > 0 {
			return int16(10.0 * float64(p.Temperature) / 200.0)
		}
		return 0
	case Electricity:
		return 200
	case Glass:
		return 50
	}
	return 0
}

// Render paints the grid into frame as row-major RGBA, one pixel per cell,
// alpha always 255. elapsed shifts the turbulence field so the jitter
// animates over time.
//
// The turbulence field is generated with dimensions (2W)×(H/2) but consumed
// through a flat counter that advances once per pixel of the W×H scan. The
// shapes are not remapped onto each other; this mirrors the original
// sampling scheme and is kept for visual fidelity.
func (w *World) Render(frame []byte, elapsed float64) {
	g := w.grid
	fieldW, fieldH := g.w*2, g.h/2
	if len(w.field) < fieldW*fieldH {
		w.field = make([]float32, fieldW*fieldH)
	}
	offset := elapsed * 20
	w.noise.Fill(w.field, fieldW, fieldH, offset, offset)

	render.FillRGBA(frame[:4*g.w*g.h], emptyColor)

	frameIndex := 0
	noiseIndex := 0
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			p := &g.cells[g.Index(x, y)]
			if p.Kind == Empty {
				frameIndex += 4
				noiseIndex++
				continue
			}
			c := baseColor(p)

			// Darken/lighten by the animated turbulence sample.
			if intensity := noiseIntensity(p); intensity != 0 {
				m := int(w.field[noiseIndex] * float32(intensity))
				c.R = uint8(render.Clamp(int(c.R)+m, 0, 255))
				c.G = uint8(render.Clamp(int(c.G)+m, 0, 255))
				c.B = uint8(render.Clamp(int(c.B)+m, 0, 255))
			}

			// Tint blue when cold, red when hot. Saturating, after the jitter.
			t := int(p.Temperature)
			if t < 0 {
				c.B = render.SatAdd8(c.B, uint8(render.Clamp(-t, 0, 255)))
			} else {
				c.R = render.SatAdd8(c.R, uint8(render.Clamp(t, 0, 255)))
			}

			frame[frameIndex] = c.R
			frame[frameIndex+1] = c.G
			frame[frameIndex+2] = c.B
			frame[frameIndex+3] = 255

			frameIndex += 4
			noiseIndex++
		}
	}
}
