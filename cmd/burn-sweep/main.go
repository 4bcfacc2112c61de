// Command burn-sweep runs the fire/gunpowder rules across a grid of
// tuning parameters and reports which combinations burn fastest and
// farthest, grounded on the teacher's cmd/lava-sweep worker-pool sweep
// over ecology.Params.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"ashfall/internal/sim"
)

type paramSet struct {
	spreadChance  float64
	explodeRadius int
}

func (p paramSet) String() string {
	return fmt.Sprintf("spread=%.2f explodeRadius=%d", p.spreadChance, p.explodeRadius)
}

type scenarioResult struct {
	params       paramSet
	stepReached  int
	burnedPeak   int
	ashPeak      int
	fireTilePeak int
}

func main() {
	steps := flag.Int("steps", 200, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	size := flag.Int("size", 96, "grid width and height")
	flag.Parse()

	spreadOptions := []float64{0.15, 0.25, 0.35, 0.45, 0.55}
	radiusOptions := []int{2, 4, 6, 8}

	var sets []paramSet
	for _, spread := range spreadOptions {
		for _, radius := range radiusOptions {
			sets = append(sets, paramSet{spreadChance: spread, explodeRadius: radius})
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps, %dx%d grid)\n",
		len(sets), *workers, *steps, *size, *size)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(*size, params, *steps)
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
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool { return all[i].burnedPeak > all[j].burnedPeak })

	fmt.Printf("\nTop 5 results by cells burned (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) burned=%d ash=%d fireTiles=%d step=%d params=%s\n",
			i+1, res.burnedPeak, res.ashPeak, res.fireTilePeak, res.stepReached, res.params)
	}
}

// runScenario seeds a wood field studded with gunpowder pockets, ignites
// the center, and tracks how far the fire/explosion chain reaches under
// the given parameters.
func runScenario(size int, params paramSet, steps int) scenarioResult {
	cfg := sim.DefaultConfig()
	cfg.Width = size
	cfg.Height = size
	cfg.Seed = 1337
	cfg.Params.FireSpreadChance = params.spreadChance
	cfg.Params.GunpowderExplodeRadius = params.explodeRadius
	cfg.Params.LightningGunpowderRadius = params.explodeRadius

	engine := sim.NewEngine(cfg)
	engine.Place(size/2, size/2, size/2-2, sim.Wood)

	for gy := 8; gy < size-8; gy += 12 {
		for gx := 8; gx < size-8; gx += 12 {
			engine.Place(gx, gy, 1, sim.Gunpowder)
		}
	}

	engine.Place(size/2, size/2, 1, sim.Fire)

	var peakBurned, peakAsh, peakFireTiles, stepReached int
	for step := 0; step < steps; step++ {
		engine.Step()

		burned, ash, fireTiles := countBurn(engine, size)
		if burned > peakBurned {
			peakBurned = burned
			stepReached = step + 1
		}
		if ash > peakAsh {
			peakAsh = ash
		}
		if fireTiles > peakFireTiles {
			peakFireTiles = fireTiles
		}
		if fireTiles == 0 && step > 5 {
			break
		}
	}

	return scenarioResult{
		params:       params,
		stepReached:  stepReached,
		burnedPeak:   peakBurned,
		ashPeak:      peakAsh,
		fireTilePeak: peakFireTiles,
	}
}

func countBurn(e *sim.Engine, size int) (burned, ash, fireTiles int) {
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			k, _, _ := e.Read(x, y)
			switch k {
			case sim.Fire:
				fireTiles++
				burned++
			case sim.Ash, sim.Smoke:
				ash++
				burned++
			}
		}
	}
	return
}
