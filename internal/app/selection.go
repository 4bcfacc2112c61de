//go:build ebiten

package app

import "ashfall/internal/sim"

// selectableKinds lists the elements the brush can cycle through, in the
// order a host's "next/previous element" control should present them.
// Kept in the host package rather than internal/sim because "current
// selected element" is an input-layer concept, not an engine one (the
// original sandbox keeps it in its input handler, not its element table).
var selectableKinds = []sim.Kind{
	sim.Empty,
	sim.Sand,
	sim.Gunpowder,
	sim.Ash,
	sim.Snow,
	sim.Water,
	sim.Saltwater,
	sim.Oil,
	sim.Ethanol,
	sim.Acid,
	sim.Lava,
	sim.Mercury,
	sim.Stone,
	sim.Glass,
	sim.Wall,
	sim.Wood,
	sim.Plant,
	sim.Seaweed,
	sim.Metal,
	sim.Wire,
	sim.Ice,
	sim.Coal,
	sim.Dirt,
	sim.Smoke,
	sim.Steam,
	sim.Gas,
	sim.ToxicGas,
	sim.Hydrogen,
	sim.Chlorine,
	sim.Fire,
	sim.Lightning,
	sim.Human,
	sim.Zombie,
}

// cyclePalette returns the selectable index step positions away from i,
// wrapping around the ends.
func cyclePalette(i, step int) int {
	n := len(selectableKinds)
	if n == 0 {
		return 0
	}
	return ((i+step)%n + n) % n
}
