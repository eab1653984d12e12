package sandbox

import "sandgrid/internal/core"

// cardinal lists the axis-adjacent offsets in down, right, up, left order.
var cardinal = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Rules is the built-in behavior set: a workable falling-sand physics so the
// sandbox runs standalone. The pipeline treats it as any other Movement and
// Reactions implementation; nothing in the update passes depends on these
// semantics.
type Rules struct {
	params *Params
	rng    *core.RNG
}

// NewRules constructs the default behavior set. params is shared with the
// world so HUD adjustments take effect immediately.
func NewRules(params *Params, rng *core.RNG) *Rules {
	return &Rules{params: params, rng: rng}
}

// tryMove relocates the particle when the target cell is in bounds and
// empty, reporting whether it moved.
func (r *Rules) tryMove(g *Grid, x, y, nx, ny int) bool {
	if !g.InBounds(nx, ny) || g.Occupied(nx, ny) {
		return false
	}
	g.Move(x, y, nx, ny)
	return true
}

// Powder falls straight down, otherwise slides down a random diagonal.
func (r *Rules) Powder(g *Grid, x, y int) (int, int) {
	if r.tryMove(g, x, y, x, y+1) {
		return x, y + 1
	}
	side := 1
	if r.rng.Bool() {
		side = -1
	}
	if r.tryMove(g, x, y, x+side, y+1) {
		return x + side, y + 1
	}
	if r.tryMove(g, x, y, x-side, y+1) {
		return x - side, y + 1
	}
	return x, y
}

// Solid falls straight down and never slides.
func (r *Rules) Solid(g *Grid, x, y int) (int, int) {
	if r.tryMove(g, x, y, x, y+1) {
		return x, y + 1
	}
	return x, y
}

// Liquid falls, slides down diagonals, then flows toward a random open side.
func (r *Rules) Liquid(g *Grid, x, y int) (int, int) {
	if r.tryMove(g, x, y, x, y+1) {
		return x, y + 1
	}
	side := 1
	if r.rng.Bool() {
		side = -1
	}
	if r.tryMove(g, x, y, x+side, y+1) {
		return x + side, y + 1
	}
	if r.tryMove(g, x, y, x-side, y+1) {
		return x - side, y + 1
	}
	if r.tryMove(g, x, y, x+side, y) {
		return x + side, y
	}
	if r.tryMove(g, x, y, x-side, y) {
		return x - side, y
	}
	return x, y
}

// Electric random-walks to one of the four adjacent cells.
func (r *Rules) Electric(g *Grid, x, y int) (int, int) {
	d := cardinal[r.rng.IntN(4)]
	if r.tryMove(g, x, y, x+d[0], y+d[1]) {
		return x + d[0], y + d[1]
	}
	return x, y
}

// Sand soaks up an adjacent water particle and turns into wet sand.
func (r *Rules) Sand(g *Grid, x, y int) {
	for _, d := range cardinal {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		if g.At(nx, ny).Kind == Water {
			g.Clear(nx, ny)
			g.At(x, y).Kind = WetSand
			return
		}
	}
}

// Water boils off once hot enough. Soaking into sand is handled from the
// sand side.
func (r *Rules) Water(g *Grid, x, y int) {
	if g.At(x, y).Temperature >= 100 {
		g.Clear(x, y)
	}
}

// Acid eats one adjacent particle per step with configured probability,
// spending itself after a few bites. Extra1 counts the bites taken; iridium
// and glass resist.
func (r *Rules) Acid(g *Grid, x, y int) {
	d := cardinal[r.rng.IntN(4)]
	nx, ny := x+d[0], y+d[1]
	if !g.InBounds(nx, ny) {
		return
	}
	target := g.At(nx, ny)
	switch target.Kind {
	case Empty, Acid, Iridium, Glass:
		return
	}
	if !r.rng.Chance(r.params.AcidDissolveChance) {
		return
	}
	g.Clear(nx, ny)
	p := g.At(x, y)
	p.Extra1++
	if p.Extra1 >= 3 {
		g.Clear(x, y)
	}
}

// Replicator mirrors one adjacent particle to the cell on its opposite side.
func (r *Rules) Replicator(g *Grid, x, y int) {
	for _, d := range cardinal {
		nx, ny := x+d[0], y+d[1]
		ox, oy := x-d[0], y-d[1]
		if !g.InBounds(nx, ny) || !g.InBounds(ox, oy) {
			continue
		}
		src := g.At(nx, ny)
		if src.Kind == Empty || src.Kind == Replicator {
			continue
		}
		if g.Occupied(ox, oy) {
			continue
		}
		g.Place(ox, oy, *src)
		return
	}
}

// Plant waits as a seed until it drinks an adjacent water particle, then
// grows a stalk upward on the timer seeded into Extra1. Extra2 tracks the
// growth state: 0 seed, nonzero growing/grown (a growing plant no longer
// moves).
func (r *Rules) Plant(g *Grid, x, y int) {
	p := g.At(x, y)
	if p.Extra2 == 0 {
		for _, d := range cardinal {
			nx, ny := x+d[0], y+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			if g.At(nx, ny).Kind == Water {
				g.Clear(nx, ny)
				p.Extra2 = 1
				return
			}
		}
		return
	}
	if p.Extra1 <= 0 {
		return
	}
	p.Extra1--
	if g.InBounds(x, y-1) && !g.Occupied(x, y-1) {
		g.Place(x, y-1, Particle{Kind: Plant, Extra1: p.Extra1, Extra2: 1})
	}
}

// Cryotheum stays frozen while below zero and sublimates away once diffusion
// warms it up.
func (r *Rules) Cryotheum(g *Grid, x, y int) {
	if g.At(x, y).Temperature >= 0 {
		g.Clear(x, y)
	}
}

// Unstable self-heats every step and detonates at the configured
// temperature, clearing a blast radius (iridium survives) and scattering a
// few sparks near the center.
func (r *Rules) Unstable(g *Grid, x, y int) {
	p := g.At(x, y)
	p.Temperature++
	if int(p.Temperature) < r.params.UnstableDetonation {
		return
	}
	const radius = 6
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) {
				continue
			}
			q := g.At(nx, ny)
			switch q.Kind {
			case Empty:
				if dx*dx+dy*dy <= 2 && r.rng.Chance(0.4) {
					g.Place(nx, ny, Particle{Kind: Electricity})
				}
			case Iridium:
				q.Temperature += 50
			default:
				g.Clear(nx, ny)
			}
		}
	}
}

// Electricity heats whatever it touches and expires after its lifetime.
// Extra1 counts the steps lived.
func (r *Rules) Electricity(g *Grid, x, y int) {
	p := g.At(x, y)
	p.Extra1++
	if int(p.Extra1) >= r.params.ElectricityLifetime {
		g.Clear(x, y)
		return
	}
	for _, d := range cardinal {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		q := g.At(nx, ny)
		if q.Kind != Empty {
			q.Temperature += 4
		}
	}
}
