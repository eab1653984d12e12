package sandbox

import "testing"

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                   "80",
		"h":                   "60",
		"seed":                "7",
		"glass_melt_point":    "45",
		"unstable_detonation": "150",
		"scene":               "false",
	})

	if cfg.Width != 80 || cfg.Height != 60 {
		t.Fatalf("size = %dx%d, want 80x60", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 7 {
		t.Fatalf("seed = %d, want 7", cfg.Seed)
	}
	if cfg.Params.GlassMeltPoint != 45 {
		t.Fatalf("glass melt point = %d, want 45", cfg.Params.GlassMeltPoint)
	}
	if cfg.Params.UnstableDetonation != 150 {
		t.Fatalf("detonation threshold = %d, want 150", cfg.Params.UnstableDetonation)
	}
	if cfg.Params.DemoScene {
		t.Fatal("scene=false should disable the demo scene")
	}
}

func TestFromMapRejectsGarbage(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"w":                    "-3",
		"h":                    "zero",
		"acid_dissolve_chance": "1.5",
	})

	if cfg.Width != def.Width || cfg.Height != def.Height {
		t.Fatalf("size = %dx%d, want defaults %dx%d", cfg.Width, cfg.Height, def.Width, def.Height)
	}
	if cfg.Params.AcidDissolveChance != def.Params.AcidDissolveChance {
		t.Fatalf("dissolve chance = %f, want default %f",
			cfg.Params.AcidDissolveChance, def.Params.AcidDissolveChance)
	}
}

func TestFromMapNilKeepsDefaults(t *testing.T) {
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should produce the default config")
	}
}
