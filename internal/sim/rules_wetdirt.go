package sim

// ruleWetDirt implements spec §4.4 WET_DIRT: dries back to DIRT once
// its hydration life runs out with no adjacent water to refresh it.
// The water rule itself refreshes life to WetDirtLife on contact.
func ruleWetDirt(ctx *tickCtx, x, y int, c Cell) {
	g := ctx.g
	if anyNeighbor(g, x, y, 1, isWaterLike) {
		return
	}
	c.Life = clampLife(c.Life - 1)
	if c.Life <= 0 {
		g.Set(x, y, Cell{Kind: Dirt})
		return
	}
	g.Set(x, y, c)
}
