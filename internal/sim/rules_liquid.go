package sim

// tryMoveLiquid attempts the liquid movement discipline (spec §4.4
// Liquids): straight down into EMPTY, a gas, or a strictly-less-dense
// liquid; otherwise a randomized left/right probe that swaps into
// EMPTY/gas outright or into a less-dense liquid with 50% probability.
// Reports the cell's position after the attempt.
func tryMoveLiquid(ctx *tickCtx, x, y int, kind Kind) (nx, ny int) {
	g, rng := ctx.g, ctx.rng
	density := Density(kind)

	if g.InBounds(x, y+1) {
		below := g.At(x, y+1)
		if below.Kind == Empty || IsGas(below.Kind) || (IsLiquid(below.Kind) && Density(below.Kind) < density) {
			ctx.moveTo(x, y, x, y+1)
			return x, y + 1
		}
	}

	first, second := -1, 1
	if !rng.LeftBias() {
		first, second = 1, -1
	}
	for _, dx := range [2]int{first, second} {
		tx, ty := x+dx, y
		if !g.InBounds(tx, ty) {
			continue
		}
		n := g.At(tx, ty)
		if n.Kind == Empty || IsGas(n.Kind) {
			ctx.moveTo(x, y, tx, ty)
			return tx, ty
		}
		if IsLiquid(n.Kind) && Density(n.Kind) < density && rng.Percent(0.5) {
			ctx.moveTo(x, y, tx, ty)
			return tx, ty
		}
	}
	return x, y
}

func ruleWater(ctx *tickCtx, x, y int, c Cell) {
	g, rng, p := ctx.g, ctx.rng, ctx.p
	x, y = tryMoveLiquid(ctx, x, y, c.Kind)

	eachNeighbor(g, x, y, 1, func(nx, ny int, n Cell) bool {
		switch {
		case n.Kind == Fire:
			ctx.react(nx, ny, Cell{Kind: Smoke, Life: p.FireSelfDecaySmokeLife})
		case n.Kind == Lava:
			ctx.react(nx, ny, Cell{Kind: Stone})
			if rng.Percent(p.WaterLavaSteamChance) {
				g.Set(x, y, Cell{Kind: Steam, Life: p.SteamLifeTicks})
			} else {
				g.Set(x, y, Cell{Kind: Stone})
			}
		}
		return true
	})

	cur := g.At(x, y)
	if cur.Kind != Water && cur.Kind != Saltwater {
		return
	}

	eachNeighbor(g, x, y, 1, func(nx, ny int, n Cell) bool {
		if n.Kind == Dirt || n.Kind == WetDirt {
			ctx.react(nx, ny, Cell{Kind: WetDirt, Life: p.WetDirtLife})
		}
		return true
	})

	if cur.Life <= 0 {
		return
	}
	eachNeighbor(g, x, y, 1, func(nx, ny int, n Cell) bool {
		switch {
		case n.Kind == Water || n.Kind == Saltwater:
			ctx.chargeTo(nx, ny, cur.Life-1)
		case n.Kind == Human || n.Kind == Zombie:
			ctx.react(nx, ny, Cell{Kind: Ash})
		}
		return true
	})
	cur.Life = clampLife(cur.Life - 1)
	g.Set(x, y, cur)
}

func ruleOil(ctx *tickCtx, x, y int, c Cell) {
	g, p := ctx.g, ctx.p
	x, y = tryMoveLiquid(ctx, x, y, c.Kind)

	if anyNeighbor(g, x, y, 1, isFireOrLava) {
		g.Set(x, y, Cell{Kind: Fire, Life: p.IgniteFireLife})
	}
}

func ruleAcid(ctx *tickCtx, x, y int, c Cell) {
	g, rng, p := ctx.g, ctx.rng, ctx.p
	x, y = tryMoveLiquid(ctx, x, y, c.Kind)

	eachNeighbor(g, x, y, 1, func(nx, ny int, n Cell) bool {
		switch {
		case IsDissolvable(n.Kind):
			if rng.Percent(p.AcidDissolveToGasChance) {
				ctx.react(nx, ny, Cell{Kind: ToxicGas, Life: p.ToxicGasLife})
			} else {
				ctx.react(nx, ny, Cell{Kind: Empty})
			}
			if rng.Percent(p.AcidSelfConsumeChance) {
				g.Set(x, y, Cell{Kind: Empty})
			}
		case n.Kind == Water:
			if rng.Percent(p.AcidWaterToSaltChance) {
				g.Set(x, y, Cell{Kind: Saltwater, Life: c.Life})
			}
			if rng.Percent(p.AcidWaterToSteamChance) {
				ctx.react(nx, ny, Cell{Kind: Steam, Life: p.SteamLifeTicks})
			}
		}
		return true
	})
}

func ruleLava(ctx *tickCtx, x, y int, c Cell) {
	g, rng, p := ctx.g, ctx.rng, ctx.p
	x, y = tryMoveLiquid(ctx, x, y, c.Kind)

	eachNeighbor(g, x, y, 1, func(nx, ny int, n Cell) bool {
		switch {
		case IsFlammable(n.Kind):
			ctx.react(nx, ny, Cell{Kind: Fire, Life: p.IgniteFireLife})
		case n.Kind == Sand || n.Kind == Snow:
			ctx.react(nx, ny, Cell{Kind: Glass})
		case n.Kind == Water || n.Kind == Saltwater:
			ctx.react(nx, ny, Cell{Kind: Stone})
			if rng.Percent(p.WaterLavaSteamChance) {
				g.Set(x, y, Cell{Kind: Steam, Life: p.SteamLifeTicks})
			} else {
				g.Set(x, y, Cell{Kind: Stone})
			}
		case n.Kind == Ice:
			ctx.react(nx, ny, Cell{Kind: Water})
		}
		return true
	})

	cur := g.At(x, y)
	if cur.Kind != Lava {
		return
	}
	cur.Life = clampLife(cur.Life + 1)
	if cur.Life > p.LavaAgeStoneThreshold {
		g.Set(x, y, Cell{Kind: Stone})
		return
	}
	g.Set(x, y, cur)
}

func ruleMercury(ctx *tickCtx, x, y int, c Cell) {
	tryMoveLiquid(ctx, x, y, c.Kind)
}
