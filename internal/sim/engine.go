package sim

// tickCtx threads the grid, RNG, and tunables through a single tick's
// rule dispatch, and owns the per-tick updated mask that gives every
// cell at-most-once processing (spec §3, §9).
type tickCtx struct {
	g       *Grid
	rng     *RNG
	p       Params
	updated []bool
}

func newTickCtx(g *Grid, rng *RNG, p Params) *tickCtx {
	return &tickCtx{g: g, rng: rng, p: p, updated: make([]bool, g.W*g.H)}
}

func (c *tickCtx) idx(x, y int) int { return y*c.g.W + x }

func (c *tickCtx) isUpdated(x, y int) bool { return c.updated[c.idx(x, y)] }

func (c *tickCtx) markUpdated(x, y int) {
	if c.g.InBounds(x, y) {
		c.updated[c.idx(x, y)] = true
	}
}

// moveTo swaps the cell at (x, y) into (nx, ny) and marks the
// destination updated, so the sweep never reprocesses material that
// has already moved this tick (spec §3).
func (c *tickCtx) moveTo(x, y, nx, ny int) {
	c.g.Swap(x, y, nx, ny)
	c.markUpdated(nx, ny)
}

// react overwrites a neighbor cell as the eager, one-shot side effect
// of the originating cell's dispatch, and marks it updated so the
// sweep does not also dispatch the neighbor under its new kind this
// same tick (spec §5: cross-cell effects are one-shot per tick; the
// concrete water/fire and gunpowder scenarios in spec §8 pin the
// reacted cell's resulting life to the value set here, with no further
// decay in the same tick).
func (c *tickCtx) react(nx, ny int, cell Cell) {
	c.g.Set(nx, ny, cell)
	c.markUpdated(nx, ny)
}

// chargeTo raises a neighbor's life to at least min and marks it
// updated, so charge spreads exactly one hop per tick
// (spec §8 scenario 5: "charge propagates... decrementing by >=1 per
// tick per hop").
func (c *tickCtx) chargeTo(nx, ny, min int) {
	n := c.g.At(nx, ny)
	n.Life = clampLife(max(n.Life, min))
	c.g.Set(nx, ny, n)
	c.markUpdated(nx, ny)
}

// explodeAt runs the explosion primitive and marks every cell it
// could have touched as updated, so the blast's own byproducts are
// not redispatched later in the same tick (spec §8 scenario 4).
func (c *tickCtx) explodeAt(cx, cy, r int) {
	Explode(c.g, c.rng, c.p, cx, cy, r)
	r2 := r * r
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r2 {
				continue
			}
			c.markUpdated(x, y)
		}
	}
}

// Engine is the tick orchestrator: it owns the grid, the seeded RNG
// stream, and the tunable rule parameters, and exposes exactly the
// external operations spec §6 names (init, clear, step, place, read).
type Engine struct {
	grid *Grid
	rng  *RNG
	p    Params
}

// NewEngine constructs an engine from cfg, grounded on the teacher's
// ecology constructors that take a Config and build the runtime state
// from it in one call.
func NewEngine(cfg Config) *Engine {
	e := &Engine{p: cfg.Params}
	e.Init(cfg.Width, cfg.Height)
	e.rng = NewRNG(cfg.Seed)
	return e
}

// Init resizes the grid to width×height and clears it, per spec §6.
func (e *Engine) Init(width, height int) {
	e.grid = NewGrid(width, height)
}

// Clear resets every cell to EMPTY without touching the RNG stream.
func (e *Engine) Clear() {
	e.grid.Clear()
}

// Place stamps a disk of kind at (cx, cy) with radius r, per spec §4.3.
func (e *Engine) Place(cx, cy, r int, kind Kind) {
	Place(e.grid, e.p, cx, cy, r, kind)
}

// Read reports the kind and life of the cell at (x, y). ok is false if
// (x, y) is outside the grid, in which case kind and life are zero.
func (e *Engine) Read(x, y int) (kind Kind, life int, ok bool) {
	if !e.grid.InBounds(x, y) {
		return Empty, 0, false
	}
	c := e.grid.At(x, y)
	return c.Kind, c.Life, true
}

// Width and Height report the current grid dimensions.
func (e *Engine) Width() int  { return e.grid.W }
func (e *Engine) Height() int { return e.grid.H }

// Step advances the simulation by one tick: a bottom-up, left-to-right
// sweep that dispatches each not-yet-updated cell to its kind's rule
// (spec §3, §4.4).
func (e *Engine) Step() {
	ctx := newTickCtx(e.grid, e.rng, e.p)
	g := e.grid
	for y := g.H - 1; y >= 0; y-- {
		for x := 0; x < g.W; x++ {
			if ctx.isUpdated(x, y) {
				continue
			}
			c := g.At(x, y)
			dispatch(ctx, x, y, c)
			ctx.markUpdated(x, y)
		}
	}
}

// dispatch routes a cell to its kind's rule function. EMPTY and the
// hard solids (WALL, STONE, GLASS, DIRT) have no behavior and fall
// through to the default no-op.
func dispatch(ctx *tickCtx, x, y int, c Cell) {
	switch c.Kind {
	case Sand:
		ruleSand(ctx, x, y, c)
	case Gunpowder:
		ruleGunpowder(ctx, x, y, c)
	case Ash:
		ruleAsh(ctx, x, y, c)
	case Snow:
		ruleSnow(ctx, x, y, c)

	case Water, Saltwater:
		ruleWater(ctx, x, y, c)
	case Oil, Ethanol:
		ruleOil(ctx, x, y, c)
	case Acid:
		ruleAcid(ctx, x, y, c)
	case Lava:
		ruleLava(ctx, x, y, c)
	case Mercury:
		ruleMercury(ctx, x, y, c)

	case Smoke:
		ruleSmoke(ctx, x, y, c)
	case Steam:
		ruleSteam(ctx, x, y, c)
	case Gas:
		ruleGas(ctx, x, y, c)
	case ToxicGas:
		ruleToxicGas(ctx, x, y, c)
	case Hydrogen:
		ruleHydrogen(ctx, x, y, c)
	case Chlorine:
		ruleChlorine(ctx, x, y, c)

	case Fire:
		ruleFire(ctx, x, y, c)
	case Lightning:
		ruleLightning(ctx, x, y, c)

	case Wire, Metal:
		ruleConductor(ctx, x, y, c)

	case Ice:
		ruleIce(ctx, x, y, c)
	case WetDirt:
		ruleWetDirt(ctx, x, y, c)

	case Plant, Seaweed:
		rulePlant(ctx, x, y, c)
	case Wood:
		ruleWood(ctx, x, y, c)
	case Coal:
		ruleCoal(ctx, x, y, c)

	case Human:
		ruleHuman(ctx, x, y, c)
	case Zombie:
		ruleZombie(ctx, x, y, c)

	default:
		// Empty, Wall, Stone, Glass, Dirt: inert, mark-and-move-on.
	}
}
