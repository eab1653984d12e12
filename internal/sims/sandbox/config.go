package sandbox

import "strconv"

// Params holds tunable thresholds for the sandbox rules.
type Params struct {
	// GlassMeltPoint is the temperature at or above which glass moves like
	// a liquid instead of a solid.
	GlassMeltPoint int
	// UnstableDetonation is the temperature at which unstable matter blows up.
	UnstableDetonation int
	// AcidDissolveChance is the per-step probability that acid eats an
	// adjacent particle.
	AcidDissolveChance float64
	// ElectricityLifetime is the number of steps an electricity particle
	// survives.
	ElectricityLifetime int
	// DemoScene seeds a small starting scene on Reset when true.
	DemoScene bool
}

// Config controls the sandbox dimensions and rules.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  600,
		Height: 400,
		Seed:   1337,
		Params: Params{
			GlassMeltPoint:      30,
			UnstableDetonation:  200,
			AcidDissolveChance:  0.3,
			ElectricityLifetime: 24,
			DemoScene:           true,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["glass_melt_point"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.GlassMeltPoint = parsed
		}
	}
	if v, ok := cfg["unstable_detonation"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.UnstableDetonation = parsed
		}
	}
	if v, ok := cfg["acid_dissolve_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.AcidDissolveChance = parsed
		}
	}
	if v, ok := cfg["electricity_lifetime"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.ElectricityLifetime = parsed
		}
	}
	if v, ok := cfg["scene"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.DemoScene = parsed
		}
	}
	return c
}
