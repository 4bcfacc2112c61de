package sim

// ruleIce implements spec §4.4 ICE: a chance to melt when touching
// fire, lava, or steam. Ice never moves.
func ruleIce(ctx *tickCtx, x, y int, c Cell) {
	g, rng, p := ctx.g, ctx.rng, ctx.p
	if anyNeighbor(g, x, y, 1, func(n Cell) bool {
		return n.Kind == Fire || n.Kind == Lava || n.Kind == Steam
	}) {
		if rng.Percent(p.IceMeltChance) {
			g.Set(x, y, Cell{Kind: Water})
		}
	}
}
