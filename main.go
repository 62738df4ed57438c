package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openclaw/qrgen/config"
	"github.com/openclaw/qrgen/generator"
)

var version = "v0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:          "qrgen",
		Short:        "Render text into QR-code images",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "qrgen.yaml", "Path to config file")

	// --- plain command -------------------------------------------------------
	var plainOut string
	plainCmd := &cobra.Command{
		Use:   "plain [content]",
		Short: "Write a QR code without a logo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGenerator(configPath)
			if err != nil {
				return err
			}
			path, err := g.WithoutLogo(args[0], plainOut)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	plainCmd.Flags().StringVarP(&plainOut, "out", "o", "", "Output directory prefix (default from config)")
	root.AddCommand(plainCmd)

	// --- logo command --------------------------------------------------------
	var logoOut, logoPath string
	logoCmd := &cobra.Command{
		Use:   "logo [content]",
		Short: "Write a QR code with a centered logo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGenerator(configPath)
			if err != nil {
				return err
			}
			path, err := g.WithLogo(args[0], logoOut, logoPath)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	logoCmd.Flags().StringVarP(&logoOut, "out", "o", "", "Output directory prefix (default from config)")
	logoCmd.Flags().StringVarP(&logoPath, "logo", "l", "", "Logo image path (default from config)")
	root.AddCommand(logoCmd)

	// --- placeholder-logo command --------------------------------------------
	var phOutput, phText string
	var phSize int
	placeholderCmd := &cobra.Command{
		Use:   "placeholder-logo",
		Short: "Write a simple placeholder logo image",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := generator.WritePlaceholderLogo(phOutput, phSize, phText); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), phOutput)
			return nil
		},
	}
	placeholderCmd.Flags().StringVar(&phOutput, "output", generator.DefaultSettings().LogoPath, "Output path for the logo")
	placeholderCmd.Flags().IntVar(&phSize, "size", 60, "Width and height of the logo in pixels")
	placeholderCmd.Flags().StringVar(&phText, "text", "QR", "Label drawn on the logo")
	root.AddCommand(placeholderCmd)

	// --- version command -----------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qrgen %s\n", version)
		},
	})

	return root
}

// newGenerator loads config and wires a generator with a logger at the
// configured level.
func newGenerator(configPath string) (*generator.Generator, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var logLevel slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	return generator.New(cfg.Settings(), log), nil
}
