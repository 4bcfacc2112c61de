package sim

// isAgentHazard is the shared HUMAN/ZOMBIE prelude predicate: a pure
// hazard kind, or electrified (life>0) WATER/SALTWATER (spec §4.4
// HUMAN and ZOMBIE).
func isAgentHazard(n Cell) bool {
	return IsHazard(n.Kind) || isElectrified(n)
}

func ruleHuman(ctx *tickCtx, x, y int, c Cell) {
	g, rng, p := ctx.g, ctx.rng, ctx.p

	if anyNeighbor(g, x, y, 1, isAgentHazard) {
		g.Set(x, y, Cell{Kind: Ash})
		return
	}

	eachNeighbor(g, x, y, 1, func(nx, ny int, n Cell) bool {
		if n.Kind != Zombie {
			return true
		}
		if rng.Percent(p.HumanZombieEngageChance) {
			if rng.Percent(p.HumanWinFireChance) {
				ctx.react(nx, ny, Cell{Kind: Fire, Life: rng.IntRange(p.HumanWinFireLifeMin, p.HumanWinFireLifeMax)})
			} else {
				ctx.react(nx, ny, Cell{Kind: Ash})
			}
		}
		return true
	})

	c = g.At(x, y)
	if c.Kind != Human {
		return
	}
	c.Life = clampLife(c.Life + 1)
	g.Set(x, y, c)

	moveAgent(ctx, x, y, Zombie, false)
}

func ruleZombie(ctx *tickCtx, x, y int, c Cell) {
	g, rng, p := ctx.g, ctx.rng, ctx.p

	if anyNeighbor(g, x, y, 1, isAgentHazard) {
		g.Set(x, y, Cell{Kind: Fire, Life: p.ZombieBurnFireLife})
		return
	}

	eachNeighbor(g, x, y, 1, func(nx, ny int, n Cell) bool {
		if n.Kind != Human {
			return true
		}
		if rng.Percent(p.ZombieInfectChance) {
			ctx.react(nx, ny, Cell{Kind: Zombie, Life: 0})
		} else {
			ctx.react(nx, ny, Cell{Kind: Fire, Life: p.ZombieMissFireLife})
		}
		return true
	})

	c = g.At(x, y)
	if c.Kind != Zombie {
		return
	}
	c.Life = clampLife(c.Life + 1)
	g.Set(x, y, c)

	moveAgent(ctx, x, y, Human, true)
}

// moveAgent implements the shared gravity/walk/hop movement in spec
// §4.4 HUMAN and ZOMBIE. target is the opposite agent kind; pursue is
// true for ZOMBIE (moves toward a sighted target) and false for HUMAN
// (flees).
func moveAgent(ctx *tickCtx, x, y int, target Kind, pursue bool) {
	g, rng, p := ctx.g, ctx.rng, ctx.p

	if g.InBounds(x, y+1) {
		below := g.At(x, y+1)
		if below.Kind == Empty || IsGas(below.Kind) {
			ctx.moveTo(x, y, x, y+1)
			return
		}
	}

	dir := seekDirection(g, x, y, target, pursue, rng)

	tx := x + dir
	if g.InBounds(tx, y) {
		n := g.At(tx, y)
		if n.Kind == Empty || IsGas(n.Kind) {
			ctx.moveTo(x, y, tx, y)
			return
		}
	}

	aboveSelf := g.InBounds(x, y-1) && g.At(x, y-1).Kind == Empty
	aboveTarget := g.InBounds(tx, y-1) && g.At(tx, y-1).Kind == Empty
	if aboveSelf && aboveTarget && rng.Percent(p.AgentHopChance) {
		ctx.moveTo(x, y, tx, y-1)
		return
	}

	alt := 1
	if rng.LeftBias() {
		alt = -1
	}
	ax := x + alt
	if g.InBounds(ax, y) {
		n := g.At(ax, y)
		if n.Kind == Empty || IsGas(n.Kind) {
			ctx.moveTo(x, y, ax, y)
		}
	}
}

// seekDirection scans a 13×13 box for the opposite agent kind and
// returns a horizontal step toward it (pursue) or away from it (flee);
// absent a sighting, it returns a random left/right step.
func seekDirection(g *Grid, x, y int, target Kind, pursue bool, rng *RNG) int {
	sighted := false
	sx := 0
	eachNeighbor(g, x, y, 6, func(nx, ny int, n Cell) bool {
		if n.Kind == target {
			sighted = true
			sx = nx
			return false
		}
		return true
	})
	if sighted {
		switch {
		case sx > x:
			if pursue {
				return 1
			}
			return -1
		case sx < x:
			if pursue {
				return -1
			}
			return 1
		}
	}
	if rng.LeftBias() {
		return -1
	}
	return 1
}
