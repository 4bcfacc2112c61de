package sim

import "testing"

func newTestEngine(w, h int, seed int64) *Engine {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed = w, h, seed
	return NewEngine(cfg)
}

// Scenario 1: a single grain of sand falls one row when the cell below
// is EMPTY.
func TestScenarioSandFalls(t *testing.T) {
	e := newTestEngine(1, 2, 1)
	e.grid.Set(0, 0, Cell{Kind: Sand})

	e.Step()

	if k, _, _ := e.Read(0, 0); k != Empty {
		t.Fatalf("origin = %v, want EMPTY", k)
	}
	if k, _, _ := e.Read(0, 1); k != Sand {
		t.Fatalf("destination = %v, want SAND", k)
	}
}

// Scenario 2: FIRE adjacent to WATER turns to SMOKE at exactly life 15
// after one tick (the new SMOKE is not re-dispatched and decayed this
// same tick), and the water cell stays WATER.
func TestScenarioWaterExtinguishesFire(t *testing.T) {
	e := newTestEngine(2, 2, 1)
	e.grid.Set(0, 0, Cell{Kind: Water})
	e.grid.Set(1, 0, Cell{Kind: Fire, Life: 20})
	e.grid.Set(0, 1, Cell{Kind: Wall})
	e.grid.Set(1, 1, Cell{Kind: Wall})

	e.Step()

	k, life, _ := e.Read(1, 0)
	if k != Smoke {
		t.Fatalf("fire cell = %v, want SMOKE", k)
	}
	if life != 15 {
		t.Fatalf("smoke life = %d, want 15", life)
	}
	if k, _, _ := e.Read(0, 0); k != Water {
		t.Fatalf("water cell = %v, want WATER", k)
	}
}

// Scenario 3: LAVA adjacent to SAND converts it to GLASS in one tick.
func TestScenarioLavaMakesGlass(t *testing.T) {
	e := newTestEngine(2, 2, 1)
	e.grid.Set(0, 0, Cell{Kind: Lava})
	e.grid.Set(1, 0, Cell{Kind: Sand})
	e.grid.Set(0, 1, Cell{Kind: Wall})
	e.grid.Set(1, 1, Cell{Kind: Wall})

	e.Step()

	if k, _, _ := e.Read(1, 0); k != Glass {
		t.Fatalf("sand cell = %v, want GLASS", k)
	}
}

// Scenario 4: a GUNPOWDER cell lit by an adjacent FIRE detonates, and
// every in-radius cell becomes one of FIRE, SMOKE, or GAS, regardless
// of the RNG draw. The seed is pinned so the scenario is reproducible.
func TestScenarioGunpowderDetonates(t *testing.T) {
	e := newTestEngine(13, 13, 42)
	cx, cy := 6, 6
	e.grid.Set(cx, cy, Cell{Kind: Gunpowder})
	e.grid.Set(cx+1, cy, Cell{Kind: Fire, Life: 20})

	e.Step()

	r := e.p.GunpowderExplodeRadius
	r2 := r * r
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r2 {
				continue
			}
			if !e.grid.InBounds(x, y) {
				continue
			}
			k, _, _ := e.Read(x, y)
			switch k {
			case Fire, Smoke, Gas:
				// expected
			default:
				t.Fatalf("cell (%d,%d) = %v, want FIRE/SMOKE/GAS", x, y, k)
			}
		}
	}
}

// Scenario 5: electrified WATER propagates charge to an adjacent,
// uncharged WATER cell, decrementing by at least one per hop per tick.
// The top cell starts at life 8, the charge a lightning strike leaves
// on the water it lands on; no LIGHTNING cell is placed. The only rolls
// drawn on this path are the left/right picks of the movement attempt,
// and every lateral cell is out of bounds while density comparisons
// never fire between two WATER cells, so the outcome is exact without
// needing to pin a particular RNG stream.
func TestScenarioLightningChargePropagation(t *testing.T) {
	e := newTestEngine(1, 2, 7)
	e.grid.Set(0, 0, Cell{Kind: Water, Life: 8})
	e.grid.Set(0, 1, Cell{Kind: Water, Life: 0})

	e.Step()

	_, top, _ := e.Read(0, 0)
	_, bottom, _ := e.Read(0, 1)
	if top != 7 {
		t.Fatalf("struck cell life = %d, want 7 after one tick", top)
	}
	if bottom != 7 {
		t.Fatalf("neighbor life = %d, want 7 after one hop", bottom)
	}

	for tick := 0; tick < 8; tick++ {
		e.Step()
		_, top, _ = e.Read(0, 0)
		_, bottom, _ = e.Read(0, 1)
		if top < 0 || bottom < 0 {
			t.Fatalf("life fell below zero")
		}
	}
}

// An isolated charged WATER cell loses exactly one life per tick on its
// own.
func TestScenarioIsolatedChargeDecaysByOnePerTick(t *testing.T) {
	e := newTestEngine(3, 1, 7)
	e.grid.Set(0, 0, Cell{Kind: Wall})
	e.grid.Set(2, 0, Cell{Kind: Wall})
	e.grid.Set(1, 0, Cell{Kind: Water, Life: 5})

	for want := 4; want >= 0; want-- {
		e.Step()
		_, life, _ := e.Read(1, 0)
		if life != want {
			t.Fatalf("after tick, life = %d, want %d", life, want)
		}
	}
}

// Scenario 6: a ZOMBIE adjacent to a HUMAN resolves the engagement this
// tick — the human cell becomes either ZOMBIE (infection) or FIRE (the
// zombie's missed-infection burn), never staying HUMAN. The zombie
// sits at the lower column so the left-to-right sweep dispatches it
// before the human gets a turn to act on the zombie instead.
func TestScenarioZombieInfectsHuman(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		e := newTestEngine(2, 1, seed)
		e.grid.Set(0, 0, Cell{Kind: Zombie})
		e.grid.Set(1, 0, Cell{Kind: Human})

		e.Step()

		k, _, _ := e.Read(1, 0)
		if k != Zombie && k != Fire {
			t.Fatalf("seed %d: human cell = %v, want ZOMBIE or FIRE", seed, k)
		}
	}
}

// Universal invariant: every cell's life stays within [0, MaxLife]
// across many ticks of a mixed, randomized grid.
func TestInvariantLifeWithinBounds(t *testing.T) {
	e := newTestEngine(24, 24, 99)
	kinds := []Kind{Sand, Water, Fire, Lava, Smoke, Wire, Plant, Human, Zombie, Gunpowder}
	i := 0
	for y := 0; y < e.Height(); y += 2 {
		for x := 0; x < e.Width(); x += 2 {
			e.grid.Set(x, y, Cell{Kind: kinds[i%len(kinds)]})
			i++
		}
	}

	for tick := 0; tick < 50; tick++ {
		e.Step()
	}

	for y := 0; y < e.Height(); y++ {
		for x := 0; x < e.Width(); x++ {
			_, life, _ := e.Read(x, y)
			if life < 0 || life > MaxLife {
				t.Fatalf("cell (%d,%d) life = %d, out of [0,%d]", x, y, life, MaxLife)
			}
		}
	}
}

// Universal invariant: WALL never changes kind or life, however much
// activity surrounds it.
func TestInvariantWallIsImmutable(t *testing.T) {
	e := newTestEngine(5, 5, 3)
	for y := 0; y < e.Height(); y++ {
		for x := 0; x < e.Width(); x++ {
			if x == 2 && y == 2 {
				e.grid.Set(x, y, Cell{Kind: Wall})
				continue
			}
			e.grid.Set(x, y, Cell{Kind: Lava})
		}
	}

	for tick := 0; tick < 10; tick++ {
		e.Step()
	}

	k, life, _ := e.Read(2, 2)
	if k != Wall || life != 0 {
		t.Fatalf("wall cell = %v life=%d, want WALL life=0", k, life)
	}
}

// Boundary: placing at the grid edge clips to bounds without panicking
// or writing outside the grid.
func TestPlaceClipsAtEdge(t *testing.T) {
	e := newTestEngine(4, 4, 1)
	e.Place(0, 0, 3, Sand)

	for y := 0; y < e.Height(); y++ {
		for x := 0; x < e.Width(); x++ {
			if _, _, ok := e.Read(x, y); !ok {
				t.Fatalf("Read(%d,%d) reported out of bounds inside the grid", x, y)
			}
		}
	}
	if k, _, ok := e.Read(-1, 0); ok || k != Empty {
		t.Fatalf("Read out of bounds should report ok=false, kind=EMPTY")
	}
}

// Boundary: a powder resting in the bottom-left corner, with no open
// cell below or diagonally below it, never moves.
func TestPowderRestsAtCornerWithNoOpening(t *testing.T) {
	e := newTestEngine(2, 2, 1)
	e.grid.Set(0, 1, Cell{Kind: Sand})
	e.grid.Set(1, 1, Cell{Kind: Wall})
	e.grid.Set(1, 0, Cell{Kind: Wall})

	e.Step()

	if k, _, _ := e.Read(0, 1); k != Sand {
		t.Fatalf("sand cell = %v, want SAND (should not have moved)", k)
	}
}
