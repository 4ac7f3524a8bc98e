package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/qrcodegen/qrcodegen"
)

var generateCmd = &cobra.Command{
	Use:   "generate <text>",
	Short: "Encode text as a QR code and write it out as SVG",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

var (
	flagConfig string
	flagLevel  string
	flagOut    string
	flagMargin int
	flagOpen   bool
)

func init() {
	generateCmd.Flags().StringVar(&flagConfig, "config", "", "config file (default: ~/.qrdemo.yaml)")
	generateCmd.Flags().StringVar(&flagLevel, "level", "", "error correction level: low, medium, quartile, high (overrides config)")
	generateCmd.Flags().StringVar(&flagOut, "out", "", "output SVG path (overrides config)")
	generateCmd.Flags().IntVar(&flagMargin, "margin", -1, "quiet zone margin in modules (overrides config)")
	generateCmd.Flags().BoolVar(&flagOpen, "open", false, "open the rendered SVG in the default browser")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	levelName := cfg.ErrorCorrectionLevel
	if flagLevel != "" {
		levelName = flagLevel
	}
	level, err := parseLevel(levelName)
	if err != nil {
		return err
	}

	out := cfg.OutFile
	if flagOut != "" {
		out = flagOut
	}

	margin := cfg.Margin
	if flagMargin >= 0 {
		margin = flagMargin
	}

	text := args[0]
	slog.Info("encoding text", "length", len(text), "level", levelName)

	q, err := qrcodegen.GenerateQR(text, level)
	if err != nil {
		return fmt.Errorf("generating QR code: %w", err)
	}
	slog.Info("encoded", "version", q.Version, "size", q.Size, "mask", q.Mask)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := q.RenderSVG(f, margin); err != nil {
		return fmt.Errorf("rendering SVG: %w", err)
	}
	slog.Info("wrote SVG", "path", out)

	if flagOpen || cfg.OpenInBrowser {
		if err := openInBrowser(out); err != nil {
			slog.Warn("could not open SVG in browser", "err", err)
		}
	}

	return nil
}

func parseLevel(name string) (qrcodegen.ErrorCorrectionLevel, error) {
	switch name {
	case "low":
		return qrcodegen.Low, nil
	case "medium", "":
		return qrcodegen.Medium, nil
	case "quartile":
		return qrcodegen.Quartile, nil
	case "high":
		return qrcodegen.High, nil
	default:
		return 0, fmt.Errorf("unknown error correction level %q", name)
	}
}
