package sim

// ruleLightning implements spec §4.4 LIGHTNING: a 5×5 neighborhood
// pass that raises conductor/water charge and ignites flammables, then
// a lifetime decrement that leaves nothing behind.
func ruleLightning(ctx *tickCtx, x, y int, c Cell) {
	g, rng, p := ctx.g, ctx.rng, ctx.p

	eachNeighbor(g, x, y, 2, func(nx, ny int, n Cell) bool {
		switch {
		case n.Kind == Wire || n.Kind == Metal:
			ctx.chargeTo(nx, ny, p.LightningConductRaiseLife)
		case n.Kind == Water || n.Kind == Saltwater:
			ctx.chargeTo(nx, ny, p.LightningWaterLife)
		case n.Kind == Gunpowder:
			ctx.explodeAt(nx, ny, p.LightningGunpowderRadius)
		case IsFlammable(n.Kind):
			ctx.react(nx, ny, Cell{Kind: Fire, Life: rng.IntRange(p.LightningFlammableLifeMin, p.LightningFlammableLifeMax)})
		case n.Kind == Hydrogen || n.Kind == Gas:
			ctx.explodeAt(nx, ny, p.LightningGasRadius)
		}
		return true
	})

	c = g.At(x, y)
	if c.Kind != Lightning {
		return
	}
	c.Life = clampLife(c.Life - 1)
	if c.Life <= 0 {
		g.Set(x, y, Cell{Kind: Empty})
		return
	}
	g.Set(x, y, c)
}
