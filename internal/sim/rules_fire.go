package sim

// ruleFire implements spec §4.4 FIRE: a chance to rise, a 3×3 spread
// pass, then a lifetime decrement that turns spent fire to smoke.
func ruleFire(ctx *tickCtx, x, y int, c Cell) {
	g, rng, p := ctx.g, ctx.rng, ctx.p

	if rng.Percent(p.FireRiseChance) && g.InBounds(x, y-1) {
		above := g.At(x, y-1)
		if above.Kind == Empty || IsGas(above.Kind) {
			ctx.moveTo(x, y, x, y-1)
			y = y - 1
		}
	}

	eachNeighbor(g, x, y, 1, func(nx, ny int, n Cell) bool {
		switch {
		case n.Kind == Gunpowder:
			if rng.Percent(p.FireSpreadChance) {
				ctx.explodeAt(nx, ny, p.GunpowderExplodeRadius)
			}
		case IsFlammable(n.Kind):
			if rng.Percent(p.FireSpreadChance) {
				ctx.react(nx, ny, Cell{Kind: Fire, Life: rng.IntRange(p.FireSpreadLifeMin, p.FireSpreadLifeMax)})
			}
		case n.Kind == Water || n.Kind == Saltwater:
			g.Set(x, y, Cell{Kind: Smoke, Life: p.FireSelfDecaySmokeLife})
		case n.Kind == Wire || n.Kind == Metal:
			if rng.Percent(p.FireConductSeedChance) {
				ctx.chargeTo(nx, ny, p.FireConductSeedLife)
			}
		}
		return true
	})

	c = g.At(x, y)
	if c.Kind != Fire {
		return
	}
	c.Life = clampLife(c.Life - 1)
	if c.Life <= 0 {
		g.Set(x, y, Cell{Kind: Smoke, Life: p.FireSelfDecaySmokeLife})
		return
	}
	g.Set(x, y, c)
}
