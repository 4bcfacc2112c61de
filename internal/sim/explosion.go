package sim

// Explode converts every cell within radius r of (cx, cy) into a
// probabilistic mix of fire, smoke, and gas, skipping the protected
// hard solids and any cell outside the grid (spec §4.2).
func Explode(g *Grid, rng *RNG, p Params, cx, cy, r int) {
	r2 := r * r
	fireCut := int(p.ExplosionFireChance * 100)
	smokeCut := int(p.ExplosionSmokeChance * 100)

	for y := cy - r; y <= cy+r; y++ {
		if y < 0 || y >= g.H {
			continue
		}
		for x := cx - r; x <= cx+r; x++ {
			if x < 0 || x >= g.W {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r2 {
				continue
			}
			c := g.At(x, y)
			if IsProtectedFromExplosion(c.Kind) {
				continue
			}

			roll := rng.Roll1to100()
			switch {
			case roll <= fireCut:
				g.Set(x, y, Cell{Kind: Fire, Life: rng.IntRange(p.ExplosionFireLifeMin, p.ExplosionFireLifeMax)})
			case roll <= smokeCut:
				g.Set(x, y, Cell{Kind: Smoke, Life: p.ExplosionSmokeLife})
			default:
				g.Set(x, y, Cell{Kind: Gas, Life: p.ExplosionGasLife})
			}
		}
	}
}
