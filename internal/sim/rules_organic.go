package sim

// rulePlant implements spec §4.4 PLANT and SEAWEED: both burn readily
// and each has its own growth habit.
func rulePlant(ctx *tickCtx, x, y int, c Cell) {
	g, rng, p := ctx.g, ctx.rng, ctx.p
	if anyNeighbor(g, x, y, 1, isFireOrLava) {
		g.Set(x, y, Cell{Kind: Fire, Life: p.PlantFireLife})
		return
	}

	switch c.Kind {
	case Plant:
		if g.InBounds(x, y+1) && g.At(x, y+1).Kind == WetDirt && rng.Percent(p.PlantGrowChance) {
			if g.InBounds(x, y-1) && g.At(x, y-1).Kind == Empty {
				ctx.react(x, y-1, Cell{Kind: Plant})
			}
		}
	case Seaweed:
		if !g.InBounds(x, y-1) {
			return
		}
		above := g.At(x, y-1)
		if above.Kind != Water && above.Kind != Saltwater {
			return
		}
		if rng.Percent(p.SeaweedGrowChance) {
			ctx.react(x, y-1, Cell{Kind: Seaweed})
		}
	}
}

// ruleWood implements spec §4.4 WOOD and COAL: inert except for
// catching fire from an adjacent flame source.
func ruleWood(ctx *tickCtx, x, y int, c Cell) {
	g, p := ctx.g, ctx.p
	if anyNeighbor(g, x, y, 1, isFireOrLava) {
		g.Set(x, y, Cell{Kind: Fire, Life: p.WoodFireLife})
	}
}

func ruleCoal(ctx *tickCtx, x, y int, c Cell) {
	g, p := ctx.g, ctx.p
	if anyNeighbor(g, x, y, 1, isFireOrLava) {
		g.Set(x, y, Cell{Kind: Fire, Life: p.CoalFireLife})
	}
}
