package generator

import (
	"testing"
)

func TestRasterizeIsTwoTone(t *testing.T) {
	m, err := Encode("raster", DefaultSettings().Encoding, 300, 300)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img := Rasterize(m)
	if got := img.Bounds().Size(); got.X != 300 || got.Y != 300 {
		t.Fatalf("got %v, want 300x300", got)
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			want := lightPixel
			if m.Get(x, y) {
				want = darkPixel
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
