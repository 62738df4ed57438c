package generator

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Frame describes the stroke drawn around an overlaid logo.
type Frame struct {
	StrokeWidth float32
	Arc         float32 // corner arc diameter
	Color       color.Color
}

// LoadLogo decodes the image at path.
func LoadLogo(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read logo %s: %w", ErrIO, path, err)
	}
	return img, nil
}

// LogoOrigin returns the top-left corner that centers a logo of the given
// size on the canvas. A logo larger than the canvas yields a negative origin.
func LogoOrigin(canvas image.Rectangle, logoSize image.Point) image.Point {
	return image.Pt(
		(canvas.Dx()-logoSize.X)/2,
		(canvas.Dy()-logoSize.Y)/2,
	)
}

// Overlay draws logo centered on canvas and frames it. Off-canvas parts of
// the logo and frame are clipped, never repositioned.
func Overlay(canvas draw.Image, logo image.Image, frame Frame) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrDrawing, r)
		}
	}()

	sr := logo.Bounds()
	at := LogoOrigin(canvas.Bounds(), sr.Size())
	draw.Copy(canvas, at, logo, sr, draw.Over, nil)
	strokeRoundRect(canvas, image.Rectangle{Min: at, Max: at.Add(sr.Size())}, frame)
	return nil
}

// strokeRoundRect outlines r the way an aliased 2D stroke would: the outline
// runs through pixel centers, the stroke is centered on it and coverage is
// thresholded so the frame stays a solid color.
func strokeRoundRect(dst draw.Image, r image.Rectangle, frame Frame) {
	half := frame.StrokeWidth / 2
	pad := int(math.Ceil(float64(half))) + 2
	origin := r.Min.Sub(image.Pt(pad, pad))
	size := r.Size().Add(image.Pt(2*pad, 2*pad))

	// Outline in rasterizer-local coordinates.
	x0 := float32(pad) + 0.5
	y0 := float32(pad) + 0.5
	x1 := x0 + float32(r.Dx())
	y1 := y0 + float32(r.Dy())
	radius := frame.Arc / 2

	z := vector.NewRasterizer(size.X, size.Y)
	roundRectPath(z, x0-half, y0-half, x1+half, y1+half, radius+half, false)
	if ix0, iy0, ix1, iy1 := x0+half, y0+half, x1-half, y1-half; ix1 > ix0 && iy1 > iy0 {
		roundRectPath(z, ix0, iy0, ix1, iy1, max(radius-half, 0), true)
	}

	mask := image.NewAlpha(image.Rectangle{Max: size})
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	for i, a := range mask.Pix {
		if a >= 0x80 {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}

	dr := image.Rectangle{Min: origin, Max: origin.Add(size)}
	draw.DrawMask(dst, dr, image.NewUniform(frame.Color), image.Point{}, mask, image.Point{}, draw.Over)
}

const cornerSteps = 8

// roundRectPath adds a closed rounded rectangle to z. Clockwise and
// counter-clockwise contours cancel, which is how the stroke's hole is cut.
func roundRectPath(z *vector.Rasterizer, x0, y0, x1, y1, radius float32, reverse bool) {
	radius = min(radius, (x1-x0)/2, (y1-y0)/2)
	corners := []struct {
		cx, cy float32
		start  float64
	}{
		{x1 - radius, y0 + radius, -math.Pi / 2},
		{x1 - radius, y1 - radius, 0},
		{x0 + radius, y1 - radius, math.Pi / 2},
		{x0 + radius, y0 + radius, math.Pi},
	}

	pts := make([][2]float32, 0, len(corners)*(cornerSteps+1))
	for _, c := range corners {
		for i := 0; i <= cornerSteps; i++ {
			theta := c.start + float64(i)*(math.Pi/2)/cornerSteps
			pts = append(pts, [2]float32{
				c.cx + radius*float32(math.Cos(theta)),
				c.cy + radius*float32(math.Sin(theta)),
			})
		}
	}
	if reverse {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}

	z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		z.LineTo(p[0], p[1])
	}
	z.ClosePath()
}
