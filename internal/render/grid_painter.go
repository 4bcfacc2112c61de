//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads per-cell kind bytes into a single RGBA image using a
// fixed palette, then blits that image scaled onto a destination. Adapted
// from the teacher's GridPainter (ui/internal/render/renderer.go), which
// painted binary on/off cells; this one looks up each byte in a palette so
// it can paint the ~30-kind element taxonomy instead of a two-state grid.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), img: ebiten.NewImage(w, h)}
}

// Blit uploads kinds into the painter image via palette and draws it scaled
// onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, kinds []uint8, palette []color.RGBA, scale int) {
	if len(kinds) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, kinds, palette)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
