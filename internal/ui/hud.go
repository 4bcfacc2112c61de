//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"ashfall/internal/core"
	"ashfall/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// ParameterSource is implemented by a host's engine adapter to expose
// adjustable tunables to the HUD. Grounded on the teacher's core.Sim
// (ParameterControlsProvider + Parameters), scoped down to just the
// handful of controls the HUD draws rather than a full pluggable
// simulation contract.
type ParameterSource interface {
	core.ParameterControlsProvider
	Parameters() core.ParameterSnapshot
}

// HUD renders a one-line status readout plus a small interactive
// parameter panel (tick count, selected element, brush radius, pause
// state, and a handful of +/- adjustable tunables), grounded on the
// teacher's internal/ui.HUD parameter panel, compacted to fit inline
// above the simulation view instead of in a separate side panel.
type HUD struct {
	source      ParameterSource
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	rows        []hudRow
	pixel       *ebiten.Image
}

type hudRow struct {
	control   core.ParameterControl
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	hudTop       = 20
	rowHeight    = 16
	buttonSize   = 14
	buttonGap    = 4
	panelLeft    = 6
	panelWidth   = 260
)

var statusColor = color.RGBA{R: 230, G: 230, B: 240, A: 255}
var labelColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
var buttonColor = color.RGBA{R: 60, G: 62, B: 70, A: 255}

// NewHUD constructs a HUD bound to source's adjustable parameters.
// source may be nil, in which case the panel is simply omitted.
func NewHUD(source ParameterSource) *HUD {
	h := &HUD{source: source}
	if source != nil {
		controls := source.ParameterControls()
		h.rows = make([]hudRow, len(controls))
		for i, c := range controls {
			top := hudTop + i*rowHeight
			plus := image.Rect(panelLeft+panelWidth-buttonSize, top, panelLeft+panelWidth, top+buttonSize)
			minus := image.Rect(plus.Min.X-buttonGap-buttonSize, top, plus.Min.X-buttonGap, top+buttonSize)
			h.rows[i] = hudRow{control: c, minusRect: minus, plusRect: plus}
		}
		if setter, ok := source.(core.IntParameterSetter); ok {
			h.intSetter = setter
		}
		if setter, ok := source.(core.FloatParameterSetter); ok {
			h.floatSetter = setter
		}
	}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update handles mouse clicks on the +/- buttons.
func (h *HUD) Update() {
	if h == nil || len(h.rows) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	for i := range h.rows {
		row := &h.rows[i]
		if pointIn(mx, my, row.minusRect) {
			h.adjust(row.control, -1)
			return
		}
		if pointIn(mx, my, row.plusRect) {
			h.adjust(row.control, 1)
			return
		}
	}
}

func pointIn(x, y int, r image.Rectangle) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

func (h *HUD) adjust(c core.ParameterControl, direction int) {
	snapshot := h.source.Parameters()
	current, ok := findParam(snapshot, c.Key)
	if !ok {
		return
	}
	switch c.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		base, err := strconv.Atoi(current.Value)
		if err != nil {
			return
		}
		v := clampInt(base+direction*stepInt(c), c)
		h.intSetter.SetIntParameter(c.Key, v)
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		base, err := strconv.ParseFloat(current.Value, 64)
		if err != nil {
			return
		}
		v := clampFloat(base+float64(direction)*stepFloat(c), c)
		h.floatSetter.SetFloatParameter(c.Key, v)
	}
}

// Draw paints the status line and, if a ParameterSource was given, the
// adjustable control rows below it.
func (h *HUD) Draw(screen *ebiten.Image, ticks int, selected sim.Kind, radius int, paused bool) {
	if h == nil {
		return
	}
	state := "running"
	if paused {
		state = "paused"
	}
	line := fmt.Sprintf("tick %d  element %s (%c)  radius %d  [%s]", ticks, selected, sim.Glyph(selected), radius, state)
	text.Draw(screen, line, basicfont.Face7x13, 6, 14, statusColor)

	if h.source == nil {
		return
	}
	snapshot := h.source.Parameters()
	face := basicfont.Face7x13
	for i := range h.rows {
		row := &h.rows[i]
		param, ok := findParam(snapshot, row.control.Key)
		value := "--"
		if ok {
			value = param.Value
		}
		y := row.minusRect.Min.Y + buttonSize - 3
		text.Draw(screen, fmt.Sprintf("%s: %s", row.control.Label, value), face, panelLeft, y, labelColor)
		h.drawButton(screen, row.minusRect, "-")
		h.drawButton(screen, row.plusRect, "+")
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, r image.Rectangle, label string) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.Scale(float32(buttonColor.R)/255, float32(buttonColor.G)/255, float32(buttonColor.B)/255, 1)
	screen.DrawImage(h.pixel, op)
	text.Draw(screen, label, basicfont.Face7x13, r.Min.X+4, r.Min.Y+buttonSize-3, statusColor)
}

func findParam(s core.ParameterSnapshot, key string) (core.Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return core.Parameter{}, false
}

func stepInt(c core.ParameterControl) int {
	if c.Step <= 0 {
		return 1
	}
	return int(c.Step)
}

func stepFloat(c core.ParameterControl) float64 {
	if c.Step <= 0 {
		return 0.05
	}
	return c.Step
}

func clampInt(v int, c core.ParameterControl) int {
	if c.HasMin && float64(v) < c.Min {
		v = int(c.Min)
	}
	if c.HasMax && float64(v) > c.Max {
		v = int(c.Max)
	}
	return v
}

func clampFloat(v float64, c core.ParameterControl) float64 {
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}
