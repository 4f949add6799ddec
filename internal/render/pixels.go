package render

import "image/color"

// AgePalette returns n colours for cell values 0..n-1: index 0 is the
// background and higher indices fade from white (newborn) towards blue
// (long-lived).
func AgePalette(n int) []color.RGBA {
	if n < 2 {
		n = 2
	}
	pal := make([]color.RGBA, n)
	pal[0] = color.RGBA{A: 255}
	steps := n - 1
	for i := 1; i < n; i++ {
		t := float64(i-1) / float64(max(steps-1, 1))
		pal[i] = color.RGBA{
			R: uint8(255 - t*215),
			G: uint8(255 - t*155),
			B: 255,
			A: 255,
		}
	}
	return pal
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
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
