// Package generator renders text into QR-code images, optionally with a
// centered logo, and writes them to disk.
package generator

import (
	"image"
	"log/slog"
)

// Generator writes QR-code images using a fixed Settings value. It holds no
// mutable state and is safe for concurrent use.
type Generator struct {
	settings Settings
	log      *slog.Logger
}

// New returns a Generator for settings. A nil logger uses slog.Default.
func New(settings Settings, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{settings: settings, log: log}
}

// Settings returns the generator's configuration.
func (g *Generator) Settings() Settings {
	return g.settings
}

// WithoutLogo writes a plain QR code for content into outputDir (the default
// directory when empty) and returns the output path.
//
// The path is returned even when err is non-nil; in that case no file was
// written there.
func (g *Generator) WithoutLogo(content, outputDir string) (string, error) {
	path := g.outputPath(outputDir)
	err := g.write(path, content, func(*image.RGBA) error { return nil })
	if err != nil {
		g.log.Error("generate qr code", "path", path, "error", err)
		return path, err
	}
	g.log.Debug("qr code written", "path", path)
	return path, nil
}

// WithLogo is WithoutLogo with the image at logoPath (the default logo when
// empty) drawn over the center of the code.
func (g *Generator) WithLogo(content, outputDir, logoPath string) (string, error) {
	path := g.outputPath(outputDir)
	err := g.write(path, content, func(canvas *image.RGBA) error {
		resolved, err := g.settings.ResolveLogoPath(logoPath)
		if err != nil {
			return err
		}
		logo, err := LoadLogo(resolved)
		if err != nil {
			return err
		}
		return Overlay(canvas, logo, g.settings.Frame)
	})
	if err != nil {
		g.log.Error("generate qr code with logo", "path", path, "logo", logoPath, "error", err)
		return path, err
	}
	g.log.Debug("qr code with logo written", "path", path)
	return path, nil
}

func (g *Generator) outputPath(dir string) string {
	return g.settings.ResolveOutputDir(dir) + NextImageName() + g.settings.Suffix()
}

func (g *Generator) write(path, content string, decorate func(*image.RGBA) error) error {
	s := g.settings
	m, err := Encode(content, s.Encoding, s.Width, s.Height)
	if err != nil {
		return err
	}
	canvas := Rasterize(m)
	if err := decorate(canvas); err != nil {
		return err
	}
	return WriteImage(path, canvas, s.Format)
}
