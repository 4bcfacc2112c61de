package sim

// ruleConductor implements spec §4.4 WIRE and METAL conduction: while
// charged (life>0), spread charge to like neighbors, occasionally
// ignite flammables or explode volatile gases, then decrement.
func ruleConductor(ctx *tickCtx, x, y int, c Cell) {
	if c.Life <= 0 {
		return
	}
	g, rng, p := ctx.g, ctx.rng, ctx.p
	q := c.Life

	eachNeighbor(g, x, y, 1, func(nx, ny int, n Cell) bool {
		switch {
		case n.Kind == Wire || n.Kind == Metal || n.Kind == Water || n.Kind == Saltwater:
			ctx.chargeTo(nx, ny, q-1)
		case n.Kind == Gunpowder:
			if rng.Percent(p.ConductIgniteChance) {
				ctx.explodeAt(nx, ny, p.GunpowderExplodeRadius)
			}
		case IsFlammable(n.Kind):
			if rng.Percent(p.ConductIgniteChance) {
				ctx.react(nx, ny, Cell{Kind: Fire, Life: p.IgniteFireLife})
			}
		case n.Kind == Hydrogen || n.Kind == Gas:
			if rng.Percent(p.ConductGasExplodeChance) {
				ctx.explodeAt(nx, ny, p.ConductGasRadius)
			}
		}
		return true
	})

	c = g.At(x, y)
	c.Life = clampLife(c.Life - 1)
	g.Set(x, y, c)
}
