package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestLoadDefaults(t *testing.T) {
	testChdir(t, t.TempDir())
	cfg, err := Load("missing.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := cfg.Settings()
	if s.OutputDir != "qrcode/" || s.LogoPath != "logo/logo.png" {
		t.Fatalf("unexpected paths %q %q", s.OutputDir, s.LogoPath)
	}
	if s.Width != 300 || s.Height != 300 {
		t.Fatalf("unexpected canvas %dx%d", s.Width, s.Height)
	}
	if s.Encoding.ErrorCorrection != "H" || s.Encoding.Charset != "utf-8" || s.Encoding.Margin != 1 {
		t.Fatalf("unexpected encoding %+v", s.Encoding)
	}
	if s.Format != imaging.PNG || s.Suffix() != ".png" {
		t.Fatalf("unexpected format %v", s.Format)
	}
	if s.Frame.StrokeWidth != 3 || s.Frame.Arc != 2 {
		t.Fatalf("unexpected frame %+v", s.Frame)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	path := filepath.Join(dir, "qrgen.yaml")
	yml := `output_dir: out/
width: 400
height: 400
error_correction: q
frame:
  stroke_width: 5
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("QRGEN_HEIGHT", "500")
	t.Setenv("QRGEN_LOGO_PATH", "brand.png")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := cfg.Settings()
	if s.OutputDir != "out/" || s.Width != 400 || s.Height != 500 {
		t.Fatalf("unexpected settings %+v", s)
	}
	if s.LogoPath != "brand.png" {
		t.Fatalf("env override not applied: %q", s.LogoPath)
	}
	if s.Encoding.ErrorCorrection != "Q" {
		t.Fatalf("level not normalized: %q", s.Encoding.ErrorCorrection)
	}
	if s.Frame.StrokeWidth != 5 || s.Frame.Arc != 2 {
		t.Fatalf("unexpected frame %+v", s.Frame)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	if err := os.WriteFile(".env", []byte("QRGEN_OUTPUT_DIR=fromdotenv/\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Registers cleanup so the variable godotenv sets does not leak.
	t.Setenv("QRGEN_OUTPUT_DIR", "")
	os.Unsetenv("QRGEN_OUTPUT_DIR")

	cfg, err := Load("missing.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "fromdotenv/" {
		t.Fatalf("got %q, want fromdotenv/", cfg.OutputDir)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{name: "zero width", yaml: "width: 0\n"},
		{name: "negative margin", yaml: "margin: -1\n"},
		{name: "bad level", yaml: "error_correction: Z\n"},
		{name: "bad charset", yaml: "charset: klingon\n"},
		{name: "bad format", yaml: "format: webp\n"},
		{name: "bad log level", yaml: "log_level: loud\n"},
		{name: "malformed yaml", yaml: "width: [\n"},
		{name: "non-numeric env", env: map[string]string{"QRGEN_WIDTH": "wide"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			testChdir(t, dir)
			path := filepath.Join(dir, "qrgen.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
