package sandbox

import "testing"

func TestRenderEmptyGridIsUniformBackground(t *testing.T) {
	world := NewWithConfig(testConfig(8, 6))
	frame := make([]byte, 4*8*6)

	world.Render(frame, 0)

	for i := 0; i < len(frame); i += 4 {
		if frame[i] != 20 || frame[i+1] != 20 || frame[i+2] != 20 || frame[i+3] != 255 {
			t.Fatalf("pixel %d = (%d,%d,%d,%d), want (20,20,20,255)",
				i/4, frame[i], frame[i+1], frame[i+2], frame[i+3])
		}
	}
}

func TestRenderWritesEveryByteWithOpaqueAlpha(t *testing.T) {
	world := NewWithConfig(testConfig(10, 8))
	world.Spawn(0, 0, Sand)
	world.Spawn(3, 3, Water)
	world.Spawn(9, 7, Electricity)

	frame := make([]byte, 4*10*8)
	for i := range frame {
		frame[i] = 7 // sentinel that alpha and background must overwrite
	}

	world.Render(frame, 0.5)

	for i := 3; i < len(frame); i += 4 {
		if frame[i] != 255 {
			t.Fatalf("alpha of pixel %d = %d, want 255", i/4, frame[i])
		}
	}
	for i := 0; i < len(frame); i += 4 {
		x, y := (i/4)%10, (i/4)/10
		if world.Grid().At(x, y).Kind == Empty && frame[i] != 20 {
			t.Fatalf("empty pixel (%d,%d) red = %d, want 20", x, y, frame[i])
		}
	}
}

func TestRenderHotParticleSaturatesRed(t *testing.T) {
	world := NewWithConfig(testConfig(8, 6))
	world.Spawn(2, 2, Sand)
	world.Grid().At(2, 2).Temperature = 1000

	frame := make([]byte, 4*8*6)
	world.Render(frame, 0)

	base := 4 * (2*8 + 2)
	if frame[base] != 255 {
		t.Fatalf("red channel = %d, want saturation at 255", frame[base])
	}
}

func TestRenderColdParticleSaturatesBlue(t *testing.T) {
	world := NewWithConfig(testConfig(8, 6))
	world.Spawn(2, 2, Sand)
	world.Grid().At(2, 2).Temperature = -1000

	frame := make([]byte, 4*8*6)
	world.Render(frame, 0)

	base := 4 * (2*8 + 2)
	if frame[base+2] != 255 {
		t.Fatalf("blue channel = %d, want saturation at 255", frame[base+2])
	}
}

func TestRenderPlantPaletteFollowsGrowthStage(t *testing.T) {
	world := NewWithConfig(testConfig(8, 6))
	world.Spawn(1, 1, Plant)
	p := world.Grid().At(1, 1)
	p.Temperature = 0

	frame := make([]byte, 4*8*6)

	p.Extra1 = 1
	world.Render(frame, 0)
	base := 4 * (1*8 + 1)
	sprout := [3]byte{frame[base], frame[base+1], frame[base+2]}

	p.Extra1 = 10
	world.Render(frame, 0)
	grown := [3]byte{frame[base], frame[base+1], frame[base+2]}

	if sprout == grown {
		t.Fatal("plant should render differently below and above the growth threshold")
	}
}

func TestRenderJitterAnimatesWithElapsedTime(t *testing.T) {
	world := NewWithConfig(testConfig(8, 6))
	for x := 0; x < 8; x++ {
		for y := 0; y < 6; y++ {
			world.Spawn(x, y, Electricity) // intensity 200, near-total flicker
		}
	}

	a := make([]byte, 4*8*6)
	b := make([]byte, 4*8*6)
	world.Render(a, 0)
	world.Render(b, 3)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("frames at different elapsed times should differ under noise jitter")
	}
}
