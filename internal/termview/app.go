//go:build term

package termview

import (
	"fmt"
	"time"

	"ashfall/internal/core"
	"ashfall/internal/sim"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// App drives the terminal host's event and tick loop, grounded on the
// vi-fighter main.Game: a tcell.Screen owned by one struct, an event
// channel fed by a PollEvent goroutine, and a ticker-driven redraw
// loop. Unlike the ebiten host, which is driven by ebiten's own frame
// callback, App paces simulation ticks itself with core.FixedStep so
// TPS stays independent of the terminal's redraw rate.
type App struct {
	screen tcell.Screen
	engine *sim.Engine
	cfg    Config
	step   *core.FixedStep

	paused   bool
	tickOnce bool
	selected int
	radius   int
	ticks    int

	cursorX, cursorY int
	kinds            []uint8
}

// New constructs an App bound to a freshly initialized tcell screen.
func New(cfg Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.Background(backgroundColor))
	screen.Clear()

	e := sim.NewEngine(sim.Config{
		Width: cfg.Width, Height: cfg.Height, Seed: cfg.Seed,
		Params: sim.DefaultConfig().Params,
	})

	a := &App{
		screen:  screen,
		engine:  e,
		cfg:     cfg,
		step:    core.NewFixedStep(cfg.TPS),
		radius:  2,
		cursorX: cfg.Width / 2,
		cursorY: cfg.Height / 2,
		kinds:   make([]uint8, cfg.Width*cfg.Height),
	}
	return a, nil
}

func (a *App) selectedKind() sim.Kind {
	return selectableKinds[a.selected]
}

// Run blocks, driving input and simulation until the user quits.
func (a *App) Run() {
	defer a.screen.Fini()

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if (!a.paused || a.tickOnce) && a.step.ShouldStep() {
				a.engine.Step()
				a.ticks++
				a.tickOnce = false
			}
			a.draw()
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		switch e.Rune() {
		case 'q':
			return false
		case ' ':
			a.paused = !a.paused
		case 'n':
			a.tickOnce = true
		case 'r':
			a.engine.Clear()
			a.ticks = 0
		case ']':
			a.selected = cyclePalette(a.selected, 1)
		case '[':
			a.selected = cyclePalette(a.selected, -1)
		case '-':
			if a.radius > 0 {
				a.radius--
			}
		case '=':
			if a.radius < 20 {
				a.radius++
			}
		case 'f':
			a.stepFloatParam("fire_spread_chance", -0.05)
		case 'F':
			a.stepFloatParam("fire_spread_chance", 0.05)
		case 'g':
			a.stepIntParam("gunpowder_explode_radius", -1)
		case 'G':
			a.stepIntParam("gunpowder_explode_radius", 1)
		case 'x':
			a.stepFloatParam("explosion_fire_chance", -0.05)
		case 'X':
			a.stepFloatParam("explosion_fire_chance", 0.05)
		}
		switch e.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			a.moveCursor(0, -1)
		case tcell.KeyDown:
			a.moveCursor(0, 1)
		case tcell.KeyLeft:
			a.moveCursor(-1, 0)
		case tcell.KeyRight:
			a.moveCursor(1, 0)
		case tcell.KeyEnter:
			a.engine.Place(a.cursorX, a.cursorY, a.radius, a.selectedKind())
		}
	case *tcell.EventMouse:
		x, y := e.Position()
		a.cursorX, a.cursorY = x, y
		switch e.Buttons() {
		case tcell.Button1:
			a.engine.Place(x, y, a.radius, a.selectedKind())
		case tcell.Button3:
			a.engine.Place(x, y, a.radius, sim.Empty)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// stepFloatParam nudges a float tunable by delta, clamping to [0, 1]
// the way internal/ui.HUD's button handlers clamp via ParameterControl
// bounds; the terminal host does not read ParameterControls and instead
// hardcodes the same bounds that Engine.ParameterControls reports.
func (a *App) stepFloatParam(key string, delta float64) {
	snapshot := a.engine.Parameters()
	for _, g := range snapshot.Groups {
		for _, p := range g.Params {
			if p.Key != key {
				continue
			}
			var v float64
			fmt.Sscanf(p.Value, "%f", &v)
			v += delta
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			a.engine.SetFloatParameter(key, v)
			return
		}
	}
}

func (a *App) stepIntParam(key string, delta int) {
	snapshot := a.engine.Parameters()
	for _, g := range snapshot.Groups {
		for _, p := range g.Params {
			if p.Key != key {
				continue
			}
			var v int
			fmt.Sscanf(p.Value, "%d", &v)
			v += delta
			if v < 1 {
				v = 1
			}
			if v > 10 {
				v = 10
			}
			a.engine.SetIntParameter(key, v)
			return
		}
	}
}

func (a *App) moveCursor(dx, dy int) {
	a.cursorX += dx
	a.cursorY += dy
	if a.cursorX < 0 {
		a.cursorX = 0
	}
	if a.cursorX >= a.cfg.Width {
		a.cursorX = a.cfg.Width - 1
	}
	if a.cursorY < 0 {
		a.cursorY = 0
	}
	if a.cursorY >= a.cfg.Height {
		a.cursorY = a.cfg.Height - 1
	}
}

// draw paints the grid, the brush cursor, and the two status lines.
func (a *App) draw() {
	defaultStyle := tcell.StyleDefault.Background(backgroundColor)

	for y := 0; y < a.cfg.Height; y++ {
		for x := 0; x < a.cfg.Width; x++ {
			k, life, _ := a.engine.Read(x, y)
			style := defaultStyle
			var ch rune = ' '
			if k != sim.Empty {
				style = defaultStyle.Foreground(colorFor(k))
				ch = sim.Glyph(k)
			}
			_ = life
			a.screen.SetContent(x, y, ch, nil, style)
		}
	}

	cursorStyle := defaultStyle.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	if a.cursorX >= 0 && a.cursorX < a.cfg.Width && a.cursorY >= 0 && a.cursorY < a.cfg.Height {
		a.screen.SetContent(a.cursorX, a.cursorY, ' ', nil, cursorStyle)
	}

	a.drawStatus(defaultStyle)
	a.screen.Show()
}

// drawStatus renders a two-line HUD below the grid: the status string
// (mirroring internal/ui.HUD's) and the adjustable parameter line from
// paramLine, drawn through tcell's
// cell-grid API instead of ebiten's text package. go-runewidth
// measures each rune so multi-cell glyphs (the engine's sim.Glyph set
// is ASCII-only today, but the HUD text itself may contain wide
// characters on non-ASCII terminals) don't desync the cursor column.
func (a *App) drawStatus(style tcell.Style) {
	state := "running"
	if a.paused {
		state = "paused"
	}
	a.drawLine(a.cfg.Height, statusLine(a.ticks, a.selectedKind(), a.radius, state), style)
	a.drawLine(a.cfg.Height+1, paramLine(a.engine.Parameters()), style)
}

func (a *App) drawLine(y int, text string, style tcell.Style) {
	x := 0
	for _, r := range text {
		if x >= a.cfg.Width {
			break
		}
		a.screen.SetContent(x, y, r, nil, style.Foreground(tcell.ColorSilver))
		x += runewidth.RuneWidth(r)
	}
}
