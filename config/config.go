// Package config handles loading generator configuration from YAML files,
// .env files and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/openclaw/qrgen/generator"
)

// Frame controls the stroke drawn around an overlaid logo.
type Frame struct {
	StrokeWidth float32 `yaml:"stroke_width"`
	Arc         float32 `yaml:"arc"`
}

// Config holds all application configuration values.
type Config struct {
	OutputDir       string `yaml:"output_dir"`
	LogoPath        string `yaml:"logo_path"`
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	Margin          int    `yaml:"margin"`
	ErrorCorrection string `yaml:"error_correction"`
	Charset         string `yaml:"charset"`
	Format          string `yaml:"format"`
	Frame           Frame  `yaml:"frame"`
	LogLevel        string `yaml:"log_level"`
}

// defaults mirrors generator.DefaultSettings.
func defaults() *Config {
	s := generator.DefaultSettings()
	return &Config{
		OutputDir:       s.OutputDir,
		LogoPath:        s.LogoPath,
		Width:           s.Width,
		Height:          s.Height,
		Margin:          s.Encoding.Margin,
		ErrorCorrection: s.Encoding.ErrorCorrection,
		Charset:         s.Encoding.Charset,
		Format:          "png",
		Frame: Frame{
			StrokeWidth: s.Frame.StrokeWidth,
			Arc:         s.Frame.Arc,
		},
		LogLevel: "info",
	}
}

// Load reads configuration from the YAML file at path, falling back to
// defaults if the file does not exist. A .env file in the working directory
// is loaded first if present; QRGEN_* environment variables then override
// file and default values.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies QRGEN_* environment variable overrides to cfg.
func applyEnvOverrides(cfg *Config) error {
	strs := map[string]*string{
		"QRGEN_OUTPUT_DIR":       &cfg.OutputDir,
		"QRGEN_LOGO_PATH":        &cfg.LogoPath,
		"QRGEN_ERROR_CORRECTION": &cfg.ErrorCorrection,
		"QRGEN_CHARSET":          &cfg.Charset,
		"QRGEN_FORMAT":           &cfg.Format,
		"QRGEN_LOG_LEVEL":        &cfg.LogLevel,
	}
	for key, dst := range strs {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"QRGEN_WIDTH":  &cfg.Width,
		"QRGEN_HEIGHT": &cfg.Height,
		"QRGEN_MARGIN": &cfg.Margin,
	}
	for key, dst := range ints {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, v, err)
		}
		*dst = n
	}
	return nil
}

// Validate checks that the configuration can drive a generator.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %d", c.Margin)
	}
	if c.Frame.StrokeWidth < 0 || c.Frame.Arc < 0 {
		return fmt.Errorf("frame stroke width and arc must not be negative")
	}
	if _, err := generator.ParseErrorCorrection(c.ErrorCorrection); err != nil {
		return err
	}
	if _, err := generator.Transcode("", c.Charset); err != nil {
		return err
	}
	if _, err := imaging.FormatFromExtension(c.Format); err != nil {
		return fmt.Errorf("unsupported image format %q: %w", c.Format, err)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Settings converts c into the immutable settings a generator runs with.
// Call Validate first.
func (c *Config) Settings() generator.Settings {
	format, _ := imaging.FormatFromExtension(c.Format)
	return generator.Settings{
		OutputDir: c.OutputDir,
		LogoPath:  c.LogoPath,
		Width:     c.Width,
		Height:    c.Height,
		Encoding: generator.EncodeOptions{
			ErrorCorrection: strings.ToUpper(c.ErrorCorrection),
			Charset:         c.Charset,
			Margin:          c.Margin,
		},
		Format: format,
		Frame: generator.Frame{
			StrokeWidth: c.Frame.StrokeWidth,
			Arc:         c.Frame.Arc,
			Color:       color.White,
		},
	}
}
