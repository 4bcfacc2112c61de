//go:build term

package termview

import (
	"image/color"

	"ashfall/internal/sim"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// backgroundColor is the terminal host's page background: every style
// in the frame composites onto it.
var backgroundColor = tcell.NewRGBColor(10, 10, 12)

// tcellPalette mirrors internal/app's pixel palette but as tcell.Color
// values, one per sim.Kind, built once at startup.
var tcellPalette = buildTcellPalette()

func buildTcellPalette() []tcell.Color {
	n := int(sim.Zombie) + 1
	p := make([]tcell.Color, n)
	for i := 0; i < n; i++ {
		p[i] = toTcellColor(sim.Color(sim.Kind(i)))
	}
	return p
}

// toTcellColor converts a sim.Color RGBA through go-colorful's Lab space
// and back, then hands the 24-bit RGB result to tcell.NewRGBColor. The
// Lab round trip leaves the channel values as they were and the alpha
// channel is dropped, so kinds whose RGBA values are close (several of
// the liquid/gas kinds share a hue family) get equally close terminal
// colors; no extra separation is applied.
func toTcellColor(c color.RGBA) tcell.Color {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	l, a, b := cf.Lab()
	out := colorful.Lab(l, a, b)
	r, g, bl := out.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// colorFor returns the terminal color for a cell kind.
func colorFor(k sim.Kind) tcell.Color {
	i := int(k)
	if i < 0 || i >= len(tcellPalette) {
		return tcell.ColorWhite
	}
	return tcellPalette[i]
}
