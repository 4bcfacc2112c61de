package sim

// tryFallPowder attempts the powder movement discipline (spec §4.4
// Powders): straight down first, then a randomized diagonal-down pick,
// swapping into EMPTY or any liquid. Movement discipline is grounded on
// the active-cell fall/roll state machine in BurtsevAnton's sand
// simulation (handleFalling/handleRolling/canRoll), simplified here to
// this engine's single-buffer swap-with-claim model.
func tryFallPowder(ctx *tickCtx, x, y int) bool {
	g := ctx.g
	if g.InBounds(x, y+1) {
		below := g.At(x, y+1)
		if below.Kind == Empty || IsLiquid(below.Kind) {
			ctx.moveTo(x, y, x, y+1)
			return true
		}
	}

	first, second := -1, 1
	if !ctx.rng.LeftBias() {
		first, second = 1, -1
	}
	for _, dx := range [2]int{first, second} {
		nx, ny := x+dx, y+1
		if !g.InBounds(nx, ny) {
			continue
		}
		n := g.At(nx, ny)
		if n.Kind == Empty || IsLiquid(n.Kind) {
			ctx.moveTo(x, y, nx, ny)
			return true
		}
	}
	return false
}

func ruleSand(ctx *tickCtx, x, y int, c Cell) {
	g, p := ctx.g, ctx.p
	above := g.At(x, y-1)
	if above.Kind == Water {
		c.Life = clampLife(c.Life + 1)
		if c.Life > p.SandSeaweedLifeThreshold {
			if !anyNeighbor(g, x, y, 2, func(n Cell) bool { return n.Kind == Seaweed }) {
				ctx.react(x, y-1, Cell{Kind: Seaweed})
			}
			c.Life = 0
		}
	} else {
		c.Life = 0
	}
	g.Set(x, y, c)

	tryFallPowder(ctx, x, y)
}

func ruleGunpowder(ctx *tickCtx, x, y int, c Cell) {
	g, p := ctx.g, ctx.p
	if anyNeighbor(g, x, y, 1, isFireOrLava) {
		ctx.explodeAt(x, y, p.GunpowderExplodeRadius)
		return
	}
	tryFallPowder(ctx, x, y)
}

func ruleAsh(ctx *tickCtx, x, y int, c Cell) {
	tryFallPowder(ctx, x, y)
}

func ruleSnow(ctx *tickCtx, x, y int, c Cell) {
	g := ctx.g
	if anyNeighbor(g, x, y, 1, isFireOrLava) {
		g.Set(x, y, Cell{Kind: Water})
		return
	}
	tryFallPowder(ctx, x, y)
}
