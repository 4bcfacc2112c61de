//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the brush cursor ring over the simulation view. Grounded
// on the teacher's internal/ui.Overlay, which drew debug vector/mask
// fields via the same line primitive reused here (drawLine); this spec
// has no such fields, so the overlay's only job is
// the cursor ring spec §1 calls out as the renderer's responsibility.
type Overlay struct {
	scale int
	pixel *ebiten.Image
	show  bool
}

// NewOverlay constructs a new overlay instance at the given pixel scale.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the cursor ring with the Tab key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.show = !o.show
	}
}

// Draw paints a ring of radius r (in cells) centered on cell (cx, cy).
func (o *Overlay) Draw(screen *ebiten.Image, cx, cy, r int) {
	if o == nil || !o.show {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	col := color.RGBA{R: 255, G: 255, B: 255, A: 160}
	centerX := (float64(cx) + 0.5) * float64(scale)
	centerY := (float64(cy) + 0.5) * float64(scale)
	radiusPx := float64(r)*float64(scale) + float64(scale)/2

	const segments = 32
	prevX, prevY := centerX+radiusPx, centerY
	for i := 1; i <= segments; i++ {
		angle := float64(i) / float64(segments) * 2 * math.Pi
		x := centerX + radiusPx*math.Cos(angle)
		y := centerY + radiusPx*math.Sin(angle)
		o.drawLine(screen, prevX, prevY, x, y, 1, col)
		prevX, prevY = x, y
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.Scale(float32(col.R)/255.0, float32(col.G)/255.0, float32(col.B)/255.0, float32(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
