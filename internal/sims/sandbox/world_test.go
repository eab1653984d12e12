package sandbox

import (
	"slices"
	"testing"
)

func testConfig(w, h int) Config {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Params.DemoScene = false
	return cfg
}

func TestEmptyGridStepIsNoop(t *testing.T) {
	world := NewWithConfig(testConfig(16, 12))
	world.Step()
	if got := world.Grid().Count(); got != 0 {
		t.Fatalf("empty grid gained %d particles after Step", got)
	}
}

func TestGenerationCounterSkipsZero(t *testing.T) {
	world := NewWithConfig(testConfig(4, 4))
	world.gen = 255
	world.bumpGeneration()
	if world.gen != 1 {
		t.Fatalf("generation after wrap = %d, want 1", world.gen)
	}
	for i := 0; i < 600; i++ {
		world.bumpGeneration()
		if world.gen == 0 {
			t.Fatal("generation counter landed on reserved value 0")
		}
	}
}

func TestConductivityFloor(t *testing.T) {
	for k := Sand; k < kindCount; k++ {
		if Conductivity(k) <= 1 {
			t.Fatalf("conductivity(%v) = %d, must be > 1", k, Conductivity(k))
		}
	}
}

func TestSingleExchangeTruncatesTowardZero(t *testing.T) {
	cases := []struct {
		src, dst         int16
		wantSrc, wantDst int16
	}{
		// Two waters at -10: flow = -10/(5+5) = -1, truncated toward zero.
		{src: -10, dst: -10, wantSrc: -9, wantDst: -11},
		{src: 25, dst: 0, wantSrc: 23, wantDst: 2},
		{src: 9, dst: 0, wantSrc: 9, wantDst: 0}, // |t| < tc freezes at zero flow
	}
	for _, tc := range cases {
		world := NewWithConfig(testConfig(2, 2))
		g := world.Grid()
		g.Place(0, 0, Particle{Kind: Water, Temperature: tc.src})
		g.Place(0, 1, Particle{Kind: Water, Temperature: tc.dst})

		snap := g.Snapshot(nil)
		world.exchangeHeat(&snap[g.Index(0, 0)], 0, 0, 0, 1)

		if got := g.At(0, 0).Temperature; got != tc.wantSrc {
			t.Fatalf("source after exchange from %d: got %d, want %d", tc.src, got, tc.wantSrc)
		}
		if got := g.At(0, 1).Temperature; got != tc.wantDst {
			t.Fatalf("sink after exchange from %d: got %d, want %d", tc.src, got, tc.wantDst)
		}
	}
}

func TestDiffusePassSymmetricPair(t *testing.T) {
	// Both cells trade from the same snapshot, so a symmetric pair is a
	// fixed point: the -1 flow each direction cancels out.
	world := NewWithConfig(testConfig(2, 4))
	g := world.Grid()
	g.Place(0, 1, Particle{Kind: Water, Temperature: -10})
	g.Place(0, 2, Particle{Kind: Water, Temperature: -10})

	world.diffuseHeat()

	if got := g.At(0, 1).Temperature; got != -10 {
		t.Fatalf("top water = %d, want -10", got)
	}
	if got := g.At(0, 2).Temperature; got != -10 {
		t.Fatalf("bottom water = %d, want -10", got)
	}
}

func TestDiffusePassUsesSnapshotNotLiveValues(t *testing.T) {
	// A hot cell flanked by two cold ones: both exchanges must read the hot
	// cell's pre-pass value, not the value left by the first exchange.
	world := NewWithConfig(testConfig(1, 3))
	g := world.Grid()
	g.Place(0, 0, Particle{Kind: Iridium})
	g.Place(0, 1, Particle{Kind: Iridium, Temperature: 160})
	g.Place(0, 2, Particle{Kind: Iridium})

	world.diffuseHeat()

	// tc = 16, flow = 10 toward each neighbor; plus each cold neighbor's
	// own zero flow back. Center loses 2*10.
	if got := g.At(0, 1).Temperature; got != 140 {
		t.Fatalf("center = %d, want 140", got)
	}
	if got := g.At(0, 0).Temperature; got != 10 {
		t.Fatalf("upper neighbor = %d, want 10", got)
	}
	if got := g.At(0, 2).Temperature; got != 10 {
		t.Fatalf("lower neighbor = %d, want 10", got)
	}
}

func TestPowderFallsOneCellPerStep(t *testing.T) {
	world := NewWithConfig(testConfig(1, 10))
	world.Spawn(0, 0, Sand)

	world.Step()

	g := world.Grid()
	if g.At(0, 1).Kind != Sand {
		t.Fatal("sand did not fall to (0,1)")
	}
	if got := g.Count(); got != 1 {
		t.Fatalf("particle count = %d, want 1", got)
	}
}

func TestSandAtBottomEdgeStaysInBounds(t *testing.T) {
	world := NewWithConfig(testConfig(4, 6))
	world.Spawn(0, 5, Sand)

	for i := 0; i < 10; i++ {
		world.Step()
	}

	g := world.Grid()
	if g.At(0, 5).Kind != Sand {
		t.Fatal("sand at the bottom edge moved away")
	}
	if got := g.Count(); got != 1 {
		t.Fatalf("particle count = %d, want 1", got)
	}
}

func TestParticleCountConservedWhileFalling(t *testing.T) {
	world := NewWithConfig(testConfig(12, 20))
	for x := 0; x < 12; x += 2 {
		for y := 0; y < 6; y++ {
			world.Spawn(x, y, Sand)
		}
	}
	want := world.Grid().Count()

	for i := 0; i < 50; i++ {
		world.Step()
		if got := world.Grid().Count(); got != want {
			t.Fatalf("step %d: particle count = %d, want %d", i, got, want)
		}
	}
}

// movementProbe counts strategy dispatches and moves powder straight down
// when possible.
type movementProbe struct {
	powder, solid, liquid, electric int
}

func (m *movementProbe) Powder(g *Grid, x, y int) (int, int) {
	m.powder++
	if g.InBounds(x, y+1) && !g.Occupied(x, y+1) {
		g.Move(x, y, x, y+1)
		return x, y + 1
	}
	return x, y
}

func (m *movementProbe) Solid(g *Grid, x, y int) (int, int) {
	m.solid++
	return x, y
}

func (m *movementProbe) Liquid(g *Grid, x, y int) (int, int) {
	m.liquid++
	return x, y
}

func (m *movementProbe) Electric(g *Grid, x, y int) (int, int) {
	m.electric++
	return x, y
}

// reactionProbe counts hook invocations.
type reactionProbe struct {
	counts map[Kind]int
}

func newReactionProbe() *reactionProbe { return &reactionProbe{counts: map[Kind]int{}} }

func (r *reactionProbe) Sand(g *Grid, x, y int)        { r.counts[Sand]++ }
func (r *reactionProbe) Water(g *Grid, x, y int)       { r.counts[Water]++ }
func (r *reactionProbe) Acid(g *Grid, x, y int)        { r.counts[Acid]++ }
func (r *reactionProbe) Replicator(g *Grid, x, y int)  { r.counts[Replicator]++ }
func (r *reactionProbe) Plant(g *Grid, x, y int)       { r.counts[Plant]++ }
func (r *reactionProbe) Cryotheum(g *Grid, x, y int)   { r.counts[Cryotheum]++ }
func (r *reactionProbe) Unstable(g *Grid, x, y int)    { r.counts[Unstable]++ }
func (r *reactionProbe) Electricity(g *Grid, x, y int) { r.counts[Electricity]++ }

func TestMovementDispatchesOncePerParticlePerPass(t *testing.T) {
	world := NewWithConfig(testConfig(3, 16))
	moves := &movementProbe{}
	world.SetBehaviors(moves, newReactionProbe())

	// A falling column: without the generation stamp the sweep would catch
	// the same particle again at its new cell and move it twice.
	world.Spawn(1, 0, Sand)
	world.Spawn(1, 1, Sand)
	world.Spawn(1, 2, Sand)

	world.Step()

	if moves.powder != 3 {
		t.Fatalf("powder dispatches = %d, want 3", moves.powder)
	}
	// Only the bottom particle had room to fall; the sweep must not have
	// chased it into its new cell.
	g := world.Grid()
	for _, y := range []int{0, 1, 3} {
		if g.At(1, y).Kind != Sand {
			t.Fatalf("expected sand at (1,%d) after one step", y)
		}
	}
}

func TestReactionHooksFireOncePerStep(t *testing.T) {
	world := NewWithConfig(testConfig(8, 8))
	reacts := newReactionProbe()
	world.SetBehaviors(&movementProbe{}, reacts)

	world.Spawn(0, 7, Sand)
	world.Spawn(2, 7, Water)
	world.Spawn(4, 7, Unstable)
	world.Spawn(6, 7, Iridium)

	world.Step()

	if got := reacts.counts[Sand]; got != 1 {
		t.Fatalf("sand hook fired %d times, want 1", got)
	}
	if got := reacts.counts[Water]; got != 1 {
		t.Fatalf("water hook fired %d times, want 1", got)
	}
	if got := reacts.counts[Unstable]; got != 1 {
		t.Fatalf("unstable hook fired %d times, want 1", got)
	}
	if len(reacts.counts) != 3 {
		t.Fatalf("unexpected hooks fired: %v", reacts.counts)
	}
}

func TestGlassDispatchFollowsTemperature(t *testing.T) {
	world := NewWithConfig(testConfig(4, 4))
	moves := &movementProbe{}
	world.SetBehaviors(moves, newReactionProbe())

	world.Spawn(1, 3, Glass)
	world.Grid().At(1, 3).Temperature = 29
	world.Step()
	if moves.solid != 1 || moves.liquid != 0 {
		t.Fatalf("cool glass dispatched solid=%d liquid=%d, want 1/0", moves.solid, moves.liquid)
	}

	world.Grid().At(1, 3).Temperature = 30
	world.Step()
	if moves.liquid != 1 {
		t.Fatalf("molten glass dispatched liquid=%d, want 1", moves.liquid)
	}
}

func TestGrowingPlantIsStationary(t *testing.T) {
	world := NewWithConfig(testConfig(4, 4))
	moves := &movementProbe{}
	world.SetBehaviors(moves, newReactionProbe())

	world.Spawn(1, 1, Plant)
	world.Grid().At(1, 1).Extra2 = 1
	world.Step()
	if moves.powder != 0 {
		t.Fatalf("growing plant dispatched powder %d times, want 0", moves.powder)
	}

	world.Grid().At(1, 1).Extra2 = 0
	world.Step()
	if moves.powder != 1 {
		t.Fatalf("settled plant dispatched powder %d times, want 1", moves.powder)
	}
}

// vanishingMoves violates the movement contract by reporting a cell it
// emptied.
type vanishingMoves struct{ movementProbe }

func (m *vanishingMoves) Powder(g *Grid, x, y int) (int, int) {
	g.Clear(x, y)
	return x, y
}

func TestMovePassPanicsOnBrokenContract(t *testing.T) {
	world := NewWithConfig(testConfig(4, 4))
	world.SetBehaviors(&vanishingMoves{}, newReactionProbe())
	world.Spawn(1, 1, Sand)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when a move reports an empty destination")
		}
	}()
	world.Step()
}

func TestResetDeterministicPerSeed(t *testing.T) {
	cfg := testConfig(48, 32)
	cfg.Params.DemoScene = true
	world := NewWithConfig(cfg)

	world.Reset(99)
	for i := 0; i < 5; i++ {
		world.Step()
	}
	first := world.Grid().Snapshot(nil)

	world.Reset(99)
	for i := 0; i < 5; i++ {
		world.Step()
	}
	second := world.Grid().Snapshot(nil)

	if !slices.Equal(first, second) {
		t.Fatal("same seed produced different worlds")
	}

	world.Reset(100)
	other := world.Grid().Snapshot(nil)
	if slices.Equal(first, other) {
		t.Fatal("different seeds produced identical worlds")
	}
}

func TestParameterSettersClamp(t *testing.T) {
	world := NewWithConfig(testConfig(4, 4))

	if !world.SetIntParameter("glass_melt_point", 500) {
		t.Fatal("glass_melt_point should be settable")
	}
	if v, _ := world.IntParameter("glass_melt_point"); v != 200 {
		t.Fatalf("glass_melt_point = %d, want clamp to 200", v)
	}
	if world.SetIntParameter("no_such_key", 1) {
		t.Fatal("unknown key should not be settable")
	}
}
