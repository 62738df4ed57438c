package generator

import (
	"image"
	"image/color"
)

var (
	darkPixel  = color.RGBA{A: 0xff}
	lightPixel = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Rasterize paints m onto a new opaque canvas, one cell per pixel.
func Rasterize(m *SymbolMatrix) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := lightPixel
			if m.Get(x, y) {
				c = darkPixel
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
