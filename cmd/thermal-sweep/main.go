package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"sandgrid/internal/sims/sandbox"
)

type paramSet struct {
	waterChance float64
	sandChance  float64
	cryoChance  float64
	unstable    int
	seed        int64
}

func (p paramSet) String() string {
	return fmt.Sprintf("water=%.2f sand=%.2f cryo=%.2f unstable=%d seed=%d",
		p.waterChance, p.sandChance, p.cryoChance, p.unstable, p.seed)
}

type scenarioResult struct {
	params paramSet

	minTemp   int
	maxTemp   int
	meanAbs   float64
	particles int
	drift     int
}

func main() {
	steps := flag.Int("steps", 300, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 160, "grid width in cells")
	height := flag.Int("h", 120, "grid height in cells")
	flag.Parse()

	baseCfg := sandbox.DefaultConfig()
	baseCfg.Width = *width
	baseCfg.Height = *height
	baseCfg.Params.DemoScene = false

	waterOptions := []float64{0.05, 0.15, 0.30}
	sandOptions := []float64{0.10, 0.25}
	cryoOptions := []float64{0.0, 0.05, 0.15}
	unstableOptions := []int{0, 2, 8}

	var sets []paramSet
	for _, water := range waterOptions {
		for _, sand := range sandOptions {
			for _, cryo := range cryoOptions {
				for _, unstable := range unstableOptions {
					sets = append(sets, paramSet{
						waterChance: water,
						sandChance:  sand,
						cryoChance:  cryo,
						unstable:    unstable,
						seed:        1337,
					})
				}
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps)\n", len(sets), *workers, *steps)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(baseCfg, params, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].drift > all[j].drift })
	elapsed := time.Since(start)

	fmt.Printf("\nScenarios by temperature drift (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, res := range all {
		fmt.Printf("%2d) drift=%d temp=[%d,%d] meanAbs=%.2f particles=%d params=%s\n",
			i+1, res.drift, res.minTemp, res.maxTemp, res.meanAbs, res.particles, res.params)
	}
}

// runScenario fills the lower half of a fresh world with the configured
// particle mix, steps it, and measures the temperature envelope that the
// diffusion pass produced.
func runScenario(base sandbox.Config, params paramSet, steps int) scenarioResult {
	cfg := base
	cfg.Seed = params.seed

	world := sandbox.NewWithConfig(cfg)
	world.Reset(params.seed)
	grid := world.Grid()

	rng := rand.New(rand.NewSource(params.seed))
	for x := 0; x < cfg.Width; x++ {
		world.Spawn(x, cfg.Height-1, sandbox.Iridium)
		for y := cfg.Height / 2; y < cfg.Height-1; y++ {
			switch roll := rng.Float64(); {
			case roll < params.waterChance:
				world.Spawn(x, y, sandbox.Water)
			case roll < params.waterChance+params.sandChance:
				world.Spawn(x, y, sandbox.Sand)
			case roll < params.waterChance+params.sandChance+params.cryoChance:
				world.Spawn(x, y, sandbox.Cryotheum)
			}
		}
	}
	for i := 0; i < params.unstable; i++ {
		world.Spawn(rng.Intn(cfg.Width), cfg.Height-2, sandbox.Unstable)
	}

	for i := 0; i < steps; i++ {
		world.Step()
	}

	res := scenarioResult{params: params}
	sumAbs := 0.0
	for x := 0; x < cfg.Width; x++ {
		for y := 0; y < cfg.Height; y++ {
			p := grid.At(x, y)
			if p.Kind == sandbox.Empty {
				continue
			}
			t := int(p.Temperature)
			if res.particles == 0 {
				res.minTemp, res.maxTemp = t, t
			}
			if t < res.minTemp {
				res.minTemp = t
			}
			if t > res.maxTemp {
				res.maxTemp = t
			}
			if t < 0 {
				sumAbs += float64(-t)
			} else {
				sumAbs += float64(t)
			}
			res.particles++
		}
	}
	if res.particles > 0 {
		res.meanAbs = sumAbs / float64(res.particles)
	}
	res.drift = res.maxTemp - res.minTemp
	return res
}
