//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sandgrid/internal/app"
	"sandgrid/internal/core"
	"sandgrid/internal/sims/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimOptions())
	world, ok := sim.(*sandbox.World)
	if !ok {
		log.Fatalf("sim %q does not support interactive painting", cfg.Sim)
	}
	world.Reset(cfg.Seed)

	game := app.New(world, cfg)
	size := world.Size()

	ebiten.SetWindowTitle("sandgrid - " + world.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
