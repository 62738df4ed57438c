package generator

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var placeholderBackground = color.RGBA{R: 0x1f, G: 0x6f, B: 0xeb, A: 0xff}

// PlaceholderLogo draws a size x size square logo with label centered on it.
func PlaceholderLogo(size int, label string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(placeholderBackground), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}
	width := d.MeasureString(label)
	metrics := face.Metrics()
	height := metrics.Ascent + metrics.Descent
	d.Dot = fixed.Point26_6{
		X: (fixed.I(size) - width) / 2,
		Y: (fixed.I(size)-height)/2 + metrics.Ascent,
	}
	d.DrawString(label)
	return img
}

// WritePlaceholderLogo writes a PNG placeholder logo to path, creating its
// directory if needed.
func WritePlaceholderLogo(path string, size int, label string) error {
	if size <= 0 {
		return fmt.Errorf("logo size must be positive, got %d", size)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: create logo dir: %w", ErrIO, err)
	}
	return WriteImage(path, PlaceholderLogo(size, label), imaging.PNG)
}
