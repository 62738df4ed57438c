package generator

import (
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
)

// Settings is the fixed rendering configuration. It is passed by value and
// never mutated after a Generator is built.
type Settings struct {
	OutputDir string
	LogoPath  string
	Width     int
	Height    int
	Encoding  EncodeOptions
	Format    imaging.Format
	Frame     Frame
}

// DefaultSettings returns a 300x300, error-correction H, UTF-8, margin 1 PNG
// configuration writing to qrcode/ with its logo at logo/logo.png.
func DefaultSettings() Settings {
	return Settings{
		OutputDir: "qrcode/",
		LogoPath:  "logo/logo.png",
		Width:     300,
		Height:    300,
		Encoding: EncodeOptions{
			ErrorCorrection: "H",
			Charset:         "utf-8",
			Margin:          1,
		},
		Format: imaging.PNG,
		Frame: Frame{
			StrokeWidth: 3,
			Arc:         2,
			Color:       color.White,
		},
	}
}

// Suffix is the file extension for the configured format, e.g. ".png".
func (s Settings) Suffix() string {
	return "." + strings.ToLower(s.Format.String())
}
