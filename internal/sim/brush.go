package sim

// Place stamps a disk of kind at (cx, cy), or performs LIGHTNING's
// special strike-down placement (spec §4.3). It silently clips to
// bounds and never errors (spec §7).
func Place(g *Grid, p Params, cx, cy, r int, kind Kind) {
	if kind == Lightning {
		placeLightning(g, p, cx, cy)
		return
	}

	r2 := r * r
	for y := cy - r; y <= cy+r; y++ {
		if y < 0 || y >= g.H {
			continue
		}
		for x := cx - r; x <= cx+r; x++ {
			if x < 0 || x >= g.W {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r2 {
				continue
			}
			life := 0
			switch {
			case IsGas(kind):
				life = p.PlaceGasLife
			case kind == Fire:
				life = p.PlaceFireLife
			}
			g.Set(x, y, Cell{Kind: kind, Life: life})
		}
	}
}

// placeLightning extends a LIGHTNING bolt downward from (cx, cy) while
// the cell directly below is EMPTY or a gas, then electrifies a WATER/
// SALTWATER cell it terminates against (spec §4.3).
func placeLightning(g *Grid, p Params, cx, cy int) {
	if !g.InBounds(cx, cy) {
		return
	}
	y := cy
	for {
		g.Set(cx, y, Cell{Kind: Lightning, Life: p.LightningBoltLife})

		below := y + 1
		if below >= g.H {
			return
		}
		belowCell := g.At(cx, below)
		if belowCell.Kind == Empty || IsGas(belowCell.Kind) {
			y = below
			continue
		}

		if isWaterLike(belowCell) {
			belowCell.Life = clampLife(max(belowCell.Life, p.LightningWaterLife))
			g.Set(cx, below, belowCell)
		}
		return
	}
}
