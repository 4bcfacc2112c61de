// Package render blits engine cell data into an ebiten image.
package render

import "image/color"

// fillPaletteRGBA converts kind bytes into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, kinds []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range kinds {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, k := range kinds {
		idx := int(k)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
