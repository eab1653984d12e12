package sandbox

import (
	"fmt"

	"sandgrid/internal/core"
	"sandgrid/internal/render"
)

// World is the particle sandbox. One Step runs a movement pass, a thermal
// diffusion pass, and an interaction pass over the whole grid, in that
// order. Calls are synchronous and single-threaded; callers never observe a
// partially stepped grid.
type World struct {
	cfg  Config
	grid *Grid
	snap []Particle
	rng  *core.RNG

	noise *render.Noise
	field []float32

	moves  Movement
	reacts Reactions

	// gen cycles 1..255, skipping 0 so a zero stamp always means "never
	// updated". It is bumped once before the movement pass and once before
	// the interaction pass.
	gen uint8
}

var (
	_ core.Sim           = (*World)(nil)
	_ core.FrameRenderer = (*World)(nil)
)

// New returns a sandbox with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox configured from the provided options. The
// built-in rule set is installed; SetBehaviors swaps it out.
func NewWithConfig(cfg Config) *World {
	w := &World{
		cfg:   cfg,
		grid:  NewGrid(cfg.Width, cfg.Height),
		rng:   core.NewRNG(cfg.Seed),
		noise: render.NewNoise(cfg.Seed),
		gen:   1,
	}
	rules := NewRules(&w.cfg.Params, w.rng)
	w.moves = rules
	w.reacts = rules
	return w
}

// SetBehaviors replaces the movement and reaction hooks.
func (w *World) SetBehaviors(m Movement, r Reactions) {
	if m != nil {
		w.moves = m
	}
	if r != nil {
		w.reacts = r
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sandbox" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.w, H: w.grid.h} }

// Grid exposes the particle grid. The renderer and input layers read and
// seed it; only Step mutates particles in flight.
func (w *World) Grid() *Grid { return w.grid }

// Spawn places a freshly created particle of kind k at (x, y). Placements
// outside the grid are ignored.
func (w *World) Spawn(x, y int, k Kind) {
	if !w.grid.InBounds(x, y) || k == Empty || k >= kindCount {
		return
	}
	w.grid.Place(x, y, NewParticle(k, w.rng))
}

// Erase empties the cell at (x, y) if it is in bounds.
func (w *World) Erase(x, y int) {
	if w.grid.InBounds(x, y) {
		w.grid.Clear(x, y)
	}
}

// Reset empties the grid and reseeds the randomness source. When the demo
// scene is enabled it also pours the starting scene, deterministically for a
// given seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	if rules, ok := w.moves.(*Rules); ok {
		rules.rng = w.rng
	}
	w.grid.Reset()
	w.gen = 1
	if w.cfg.Params.DemoScene {
		w.seedScene()
	}
}

// Step advances the simulation by one tick: movement, heat diffusion, then
// interactions.
func (w *World) Step() {
	w.movePass()
	w.diffuseHeat()
	w.reactPass()
}

func (w *World) bumpGeneration() {
	w.gen++
	if w.gen == 0 {
		w.gen = 1
	}
}

// movePass sweeps the grid x-major and relocates each particle at most once
// per pass. The stamp written after dispatch is what stops a particle that
// moved ahead of the sweep from being moved again when the sweep catches up
// to its new cell.
func (w *World) movePass() {
	w.bumpGeneration()
	g := w.grid
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			// Re-read occupancy: an earlier behavior call this pass may
			// have emptied or rewritten this cell.
			p := g.At(x, y)
			if p.Kind == Empty || p.stamp == w.gen {
				continue
			}
			kind := p.Kind
			nx, ny := x, y
			switch kind {
			case Sand:
				nx, ny = w.moves.Powder(g, x, y)
			case WetSand:
				nx, ny = w.moves.Solid(g, x, y)
			case Water, Acid:
				nx, ny = w.moves.Liquid(g, x, y)
			case Iridium, Replicator, Unstable:
				// stationary
			case Plant:
				if p.Extra2 == 0 {
					nx, ny = w.moves.Powder(g, x, y)
				}
			case Cryotheum:
				nx, ny = w.moves.Solid(g, x, y)
			case Electricity:
				nx, ny = w.moves.Electric(g, x, y)
			case Glass:
				// Dispatch, not physics: molten glass flows.
				if int(p.Temperature) >= w.cfg.Params.GlassMeltPoint {
					nx, ny = w.moves.Liquid(g, x, y)
				} else {
					nx, ny = w.moves.Solid(g, x, y)
				}
			}
			moved := g.At(nx, ny)
			if moved.Kind == Empty {
				panic(fmt.Sprintf("sandbox: %v move from (%d,%d) reported empty cell (%d,%d)",
					kind, x, y, nx, ny))
			}
			moved.stamp = w.gen
		}
	}
}

// diffuseHeat exchanges heat between axis-adjacent occupied cells. Flow is
// computed from a snapshot taken at pass start and applied cumulatively to
// the live grid, so a cell trades with all four neighbors "simultaneously"
// without sweep-order bias. Truncating integer division freezes tiny
// gradients at zero flow, which is expected.
func (w *World) diffuseHeat() {
	w.snap = w.grid.Snapshot(w.snap)
	g := w.grid
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			a := &w.snap[g.Index(x, y)]
			if a.Kind == Empty {
				continue
			}
			if y != g.h-1 {
				w.exchangeHeat(a, x, y, x, y+1)
			}
			if x != g.w-1 {
				w.exchangeHeat(a, x, y, x+1, y)
			}
			if y != 0 {
				w.exchangeHeat(a, x, y, x, y-1)
			}
			if x != 0 {
				w.exchangeHeat(a, x, y, x-1, y)
			}
		}
	}
}

// exchangeHeat moves one flow quantum from the cell at (x, y) to the
// occupied neighbor at (nx, ny). a carries the snapshot values of (x, y).
func (w *World) exchangeHeat(a *Particle, x, y, nx, ny int) {
	g := w.grid
	b := g.At(nx, ny)
	if b.Kind == Empty {
		return
	}
	tc := Conductivity(a.Kind) + Conductivity(b.Kind)
	flow := a.Temperature / tc
	g.At(x, y).Temperature -= flow
	b.Temperature += flow
}

// reactPass runs the per-kind interaction hooks. Unlike the movement pass it
// does not stamp cells afterwards; hooks own their own re-trigger guards.
func (w *World) reactPass() {
	w.bumpGeneration()
	g := w.grid
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			p := g.At(x, y)
			if p.Kind == Empty || p.stamp == w.gen {
				continue
			}
			switch p.Kind {
			case Sand:
				w.reacts.Sand(g, x, y)
			case Water:
				w.reacts.Water(g, x, y)
			case Acid:
				w.reacts.Acid(g, x, y)
			case Replicator:
				w.reacts.Replicator(g, x, y)
			case Plant:
				w.reacts.Plant(g, x, y)
			case Cryotheum:
				w.reacts.Cryotheum(g, x, y)
			case Unstable:
				w.reacts.Unstable(g, x, y)
			case Electricity:
				w.reacts.Electricity(g, x, y)
			case WetSand, Iridium, Glass:
				// inert
			}
		}
	}
}

// seedScene pours the demo scene: an iridium basin, a sand heap, a water
// pool, and a few reactive oddities to watch.
func (w *World) seedScene() {
	g := w.grid
	floor := g.h - 1
	for x := 0; x < g.w; x++ {
		w.Spawn(x, floor, Iridium)
	}
	wallTop := g.h - g.h/4
	for y := wallTop; y < g.h; y++ {
		w.Spawn(0, y, Iridium)
		w.Spawn(g.w-1, y, Iridium)
	}

	heapW := g.w / 6
	heapX := g.w / 8
	for i := 0; i < heapW; i++ {
		height := w.rng.Range(4, 14)
		for dy := 1; dy <= height; dy++ {
			w.Spawn(heapX+i, floor-dy, Sand)
		}
	}

	poolW := g.w / 5
	poolX := g.w / 2
	for i := 0; i < poolW; i++ {
		for dy := 1; dy <= 8; dy++ {
			w.Spawn(poolX+i, floor-dy, Water)
		}
	}

	w.Spawn(g.w/3, floor-1, Plant)
	for i := 0; i < 6; i++ {
		w.Spawn(g.w-g.w/8+i, floor-1, Cryotheum)
		w.Spawn(g.w-g.w/8+i, floor-2, Cryotheum)
	}
	w.Spawn(g.w/4*3, floor-1, Unstable)
}

// ParameterControls lists the HUD-adjustable tunables.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key: "glass_melt_point", Label: "Glass melt point", Type: core.ParamTypeInt,
			Step: 1, Min: -60, Max: 200, HasMin: true, HasMax: true,
		},
		{
			Key: "unstable_detonation", Label: "Unstable detonation", Type: core.ParamTypeInt,
			Step: 10, Min: 50, Max: 400, HasMin: true, HasMax: true,
		},
	}
}

// SetIntParameter updates an integer tunable, clamping to its bounds.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "glass_melt_point":
		w.cfg.Params.GlassMeltPoint = clampInt(value, -60, 200)
		return true
	case "unstable_detonation":
		w.cfg.Params.UnstableDetonation = clampInt(value, 50, 400)
		return true
	}
	return false
}

// IntParameter reports the current value of an integer tunable.
func (w *World) IntParameter(key string) (int, bool) {
	switch key {
	case "glass_melt_point":
		return w.cfg.Params.GlassMeltPoint, true
	case "unstable_detonation":
		return w.cfg.Params.UnstableDetonation, true
	}
	return 0, false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func init() {
	core.Register("sandbox", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
