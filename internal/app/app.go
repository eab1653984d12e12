//go:build ebiten

package app

import (
	"fmt"
	"time"

	"sandgrid/internal/core"
	"sandgrid/internal/render"
	"sandgrid/internal/sims/sandbox"
	"sandgrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// brushKeys maps keyboard keys to the particle kind they select.
var brushKeys = map[ebiten.Key]sandbox.Kind{
	ebiten.KeyDigit1: sandbox.Sand,
	ebiten.KeyDigit2: sandbox.WetSand,
	ebiten.KeyDigit3: sandbox.Water,
	ebiten.KeyDigit4: sandbox.Acid,
	ebiten.KeyDigit5: sandbox.Iridium,
	ebiten.KeyDigit6: sandbox.Replicator,
	ebiten.KeyDigit7: sandbox.Plant,
	ebiten.KeyDigit8: sandbox.Cryotheum,
	ebiten.KeyDigit9: sandbox.Unstable,
	ebiten.KeyDigit0: sandbox.Electricity,
	ebiten.KeyG:      sandbox.Glass,
}

// Game adapts the sandbox to the ebiten.Game interface: it paints brush
// strokes into the grid, advances the simulation at the configured tick
// rate, and blits the rendered frame.
type Game struct {
	sim     *sandbox.World
	painter *render.FramePainter
	hud     *ui.HUD
	stepper *core.FixedStep
	frame   []byte

	scale    int
	seed     int64
	paused   bool
	tickOnce bool

	brush  sandbox.Kind
	radius int
}

// New constructs a Game for the provided sandbox world.
func New(sim *sandbox.World, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewFramePainter(size.W, size.H),
		hud:     ui.NewHUD(sim),
		stepper: core.NewFixedStep(cfg.TPS),
		frame:   make([]byte, 4*size.W*size.H),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
		brush:   sandbox.Sand,
		radius:  3,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	for key, kind := range brushKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.brush = kind
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.radius > 1 {
		g.radius--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) && g.radius < 24 {
		g.radius++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.stepper.SetTPS(g.stepper.TPS() / 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.stepper.SetTPS(g.stepper.TPS() * 2)
	}

	g.paint()
	g.hud.Update()

	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	} else if !g.paused && g.stepper.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

// paint applies the brush under the cursor: left button places particles,
// right button erases.
func (g *Game) paint() {
	place := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	erase := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !place && !erase {
		return
	}
	mx, my := ebiten.CursorPosition()
	cx, cy := mx/g.scale, my/g.scale
	r := g.radius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x, y := cx+dx, cy+dy
			if erase {
				g.sim.Erase(x, y)
				continue
			}
			if !g.sim.Grid().InBounds(x, y) || g.sim.Grid().Occupied(x, y) {
				continue
			}
			g.sim.Spawn(x, y, g.brush)
		}
	}
}

// Draw renders the current simulation state and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.Render(g.frame, g.stepper.Elapsed())
	g.painter.Blit(screen, g.frame, g.scale)

	status := fmt.Sprintf("%s  tps:%d  brush:%v r:%d", g.sim.Name(), g.stepper.TPS(), g.brush, g.radius)
	if g.paused {
		status += "  [paused]"
	}
	g.hud.Draw(screen, status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
