package sim

// eachNeighbor visits every in-bounds cell in the square ring of the
// given radius around (x, y), excluding (x, y) itself — the 3×3 (r=1),
// 5×5 (r=2), or 13×13 (r=6) neighborhoods spec §4.4 repeatedly scans.
// visit returns false to stop early.
func eachNeighbor(g *Grid, x, y, radius int, visit func(nx, ny int, c Cell) bool) {
	for dy := -radius; dy <= radius; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.H {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.W {
				continue
			}
			if !visit(nx, ny, g.At(nx, ny)) {
				return
			}
		}
	}
}

// anyNeighbor reports whether any cell in the radius-r neighborhood
// around (x, y) satisfies pred.
func anyNeighbor(g *Grid, x, y, radius int, pred func(c Cell) bool) bool {
	found := false
	eachNeighbor(g, x, y, radius, func(_, _ int, c Cell) bool {
		if pred(c) {
			found = true
			return false
		}
		return true
	})
	return found
}

// countNeighbors counts cells in the radius-r neighborhood around (x, y)
// satisfying pred.
func countNeighbors(g *Grid, x, y, radius int, pred func(c Cell) bool) int {
	n := 0
	eachNeighbor(g, x, y, radius, func(_, _ int, c Cell) bool {
		if pred(c) {
			n++
		}
		return true
	})
	return n
}

// isFireOrLava is the recurring "ignition source" predicate spec §4.4
// uses for snow, plants, wood/coal, gunpowder, oil/ethanol, gas, and
// hydrogen.
func isFireOrLava(c Cell) bool {
	return c.Kind == Fire || c.Kind == Lava
}

func isWaterLike(c Cell) bool {
	return c.Kind == Water || c.Kind == Saltwater
}
