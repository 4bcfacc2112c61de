package sim

import "ashfall/pkg/core"

// RNG extends the bare pkg/core wrapper with the percentage rolls, int
// ranges, and left/right bias draws the element rules need (spec §4.4,
// §9: "left/right preference must be randomized per cell per tick").
type RNG struct {
	*core.RNG
}

// NewRNG creates a deterministic RNG using the provided seed (spec §5:
// "a pseudo-random stream", seeded once per §2).
func NewRNG(seed int64) *RNG {
	return &RNG{RNG: core.NewRNG(seed)}
}

// Percent reports true with probability p (0.0..1.0).
func (r *RNG) Percent(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

// Roll1to100 draws a uniform integer in [1, 100], for rules expressed as
// a percentage roll (spec §4.2 explode: "random roll over [1,100]").
func (r *RNG) Roll1to100() int {
	return r.IntN(100) + 1
}

// IntRange draws a uniform integer in [lo, hi] inclusive. If hi < lo the
// range collapses to lo.
func (r *RNG) IntRange(lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// LeftBias reports true with 50% probability, used to pick a randomized
// left/right preference per cell per tick so fluids don't visibly drift
// one way (spec §9 "Bias and fairness").
func (r *RNG) LeftBias() bool {
	return r.Bool()
}
