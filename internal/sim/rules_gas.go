package sim

// tryRiseGas performs one upward movement attempt (spec §4.4 Gases):
// swap straight up if EMPTY, else a randomized left/right probe with a
// 50% chance of trying "slightly up" instead of level, swapping only
// into EMPTY.
func tryRiseGas(ctx *tickCtx, x, y int) (nx, ny int, moved bool) {
	g, rng := ctx.g, ctx.rng
	if g.InBounds(x, y-1) && g.At(x, y-1).Kind == Empty {
		ctx.moveTo(x, y, x, y-1)
		return x, y - 1, true
	}

	first, second := -1, 1
	if !rng.LeftBias() {
		first, second = 1, -1
	}
	for _, dx := range [2]int{first, second} {
		ty := y
		if rng.LeftBias() {
			ty = y - 1
		}
		tx := x + dx
		if !g.InBounds(tx, ty) {
			continue
		}
		if g.At(tx, ty).Kind == Empty {
			ctx.moveTo(x, y, tx, ty)
			return tx, ty, true
		}
	}
	return x, y, false
}

func gasAttempts(kind Kind) int {
	if kind == Hydrogen {
		return 2
	}
	return 1
}

func gasDecayLife(ctx *tickCtx, x, y int, c Cell, onZero func()) {
	c.Life = clampLife(c.Life - 1)
	if c.Life > 0 {
		ctx.g.Set(x, y, c)
		return
	}
	onZero()
}

func ruleSmoke(ctx *tickCtx, x, y int, c Cell) {
	for n := 0; n < gasAttempts(c.Kind); n++ {
		x, y, _ = tryRiseGas(ctx, x, y)
	}
	c = ctx.g.At(x, y)
	gasDecayLife(ctx, x, y, c, func() {
		g, rng, p := ctx.g, ctx.rng, ctx.p
		if rng.Percent(p.SmokeSettleChance) {
			g.Set(x, y, Cell{Kind: Ash})
		} else {
			g.Set(x, y, Cell{Kind: Empty})
		}
	})
}

func ruleSteam(ctx *tickCtx, x, y int, c Cell) {
	for n := 0; n < gasAttempts(c.Kind); n++ {
		x, y, _ = tryRiseGas(ctx, x, y)
	}
	c = ctx.g.At(x, y)
	gasDecayLife(ctx, x, y, c, func() {
		g, rng, p := ctx.g, ctx.rng, ctx.p
		if rng.Percent(p.SteamCondenseChance) {
			g.Set(x, y, Cell{Kind: Water})
		} else {
			g.Set(x, y, Cell{Kind: Empty})
		}
	})
}

func ruleGas(ctx *tickCtx, x, y int, c Cell) {
	for n := 0; n < gasAttempts(c.Kind); n++ {
		x, y, _ = tryRiseGas(ctx, x, y)
	}
	g, p := ctx.g, ctx.p
	if anyNeighbor(g, x, y, 1, isFireOrLava) {
		g.Set(x, y, Cell{Kind: Fire, Life: p.GasSelfIgniteFireLife})
		return
	}
	c = g.At(x, y)
	gasDecayLife(ctx, x, y, c, func() {
		g.Set(x, y, Cell{Kind: Empty})
	})
}

func ruleToxicGas(ctx *tickCtx, x, y int, c Cell) {
	for n := 0; n < gasAttempts(c.Kind); n++ {
		x, y, _ = tryRiseGas(ctx, x, y)
	}
	g := ctx.g
	c = g.At(x, y)
	gasDecayLife(ctx, x, y, c, func() {
		g.Set(x, y, Cell{Kind: Empty})
	})
}

func ruleHydrogen(ctx *tickCtx, x, y int, c Cell) {
	for n := 0; n < gasAttempts(c.Kind); n++ {
		x, y, _ = tryRiseGas(ctx, x, y)
	}
	g, p := ctx.g, ctx.p
	if anyNeighbor(g, x, y, 1, isFireOrLava) {
		ctx.explodeAt(x, y, p.HydrogenExplodeRadius)
		return
	}
	c = g.At(x, y)
	gasDecayLife(ctx, x, y, c, func() {
		g.Set(x, y, Cell{Kind: Empty})
	})
}

func ruleChlorine(ctx *tickCtx, x, y int, c Cell) {
	for n := 0; n < gasAttempts(c.Kind); n++ {
		x, y, _ = tryRiseGas(ctx, x, y)
	}
	g, rng, p := ctx.g, ctx.rng, ctx.p
	eachNeighbor(g, x, y, 1, func(nx, ny int, n Cell) bool {
		if n.Kind == Plant && rng.Percent(p.ChlorinePlantToxicChance) {
			ctx.react(nx, ny, Cell{Kind: ToxicGas, Life: p.ToxicGasLife})
		}
		return true
	})
	c = g.At(x, y)
	gasDecayLife(ctx, x, y, c, func() {
		g.Set(x, y, Cell{Kind: Empty})
	})
}
