//go:build ebiten

package app

import (
	"image/color"

	"ashfall/internal/render"
	"ashfall/internal/sim"
	"ashfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// palette caches sim.Color for every element kind, indexed by Kind, for
// render.GridPainter's per-byte lookup.
var palette = buildPalette()

func buildPalette() []color.RGBA {
	n := int(sim.Zombie) + 1
	p := make([]color.RGBA, n)
	for i := 0; i < n; i++ {
		p[i] = sim.Color(sim.Kind(i))
	}
	return p
}

// Game adapts a *sim.Engine to the ebiten.Game interface, per spec §6's
// engine API: it drives Step, reads cells for rendering, and forwards
// brush input to Place. Grounded on the teacher's internal/app.Game,
// generalized from a binary on/off Sim to this engine's ~30-kind
// taxonomy.
type Game struct {
	engine *sim.Engine
	cfg    Config

	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	kinds   []uint8

	paused   bool
	tickOnce bool
	selected int
	radius   int
	ticks    int
}

// New constructs a Game from cfg.
func New(cfg Config) *Game {
	e := sim.NewEngine(sim.Config{
		Width: cfg.Width, Height: cfg.Height, Seed: cfg.Seed,
		Params: sim.DefaultConfig().Params,
	})
	return &Game{
		engine:  e,
		cfg:     cfg,
		painter: render.NewGridPainter(cfg.Width, cfg.Height),
		kinds:   make([]uint8, cfg.Width*cfg.Height),
		hud:     ui.NewHUD(e),
		overlay: ui.NewOverlay(cfg.Scale),
		radius:  3,
	}
}

// Reset clears the grid and restarts the tick counter, keeping the seed.
func (g *Game) Reset() {
	g.engine.Clear()
	g.ticks = 0
	g.tickOnce = false
}

func (g *Game) selectedKind() sim.Kind {
	return selectableKinds[g.selected]
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.selected = cyclePalette(g.selected, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.selected = cyclePalette(g.selected, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && g.radius > 0 {
		g.radius--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) && g.radius < 20 {
		g.radius++
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		cx, cy := g.cursorCell()
		g.engine.Place(cx, cy, g.radius, g.selectedKind())
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		cx, cy := g.cursorCell()
		g.engine.Place(cx, cy, g.radius, sim.Empty)
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	g.hud.Update()

	if (!g.paused) || g.tickOnce {
		g.engine.Step()
		g.ticks++
		g.tickOnce = false
	}
	return nil
}

func (g *Game) cursorCell() (int, int) {
	mx, my := ebiten.CursorPosition()
	scale := g.cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return mx / scale, my / scale
}

// Draw renders the current simulation state, a brush-radius cursor ring,
// and the status HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	for y := 0; y < g.cfg.Height; y++ {
		for x := 0; x < g.cfg.Width; x++ {
			k, _, _ := g.engine.Read(x, y)
			g.kinds[y*g.cfg.Width+x] = uint8(k)
		}
	}
	g.painter.Blit(screen, g.kinds, palette, g.cfg.Scale)

	if g.overlay != nil {
		cx, cy := g.cursorCell()
		g.overlay.Draw(screen, cx, cy, g.radius)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.ticks, g.selectedKind(), g.radius, g.paused)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width * g.cfg.Scale, g.cfg.Height * g.cfg.Scale
}
