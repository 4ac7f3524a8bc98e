package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults qrdemo falls back on when a flag is not given
// explicitly on the command line.
type Config struct {
	ErrorCorrectionLevel string `yaml:"error_correction_level"`
	Margin               int    `yaml:"margin"`
	OutFile              string `yaml:"out_file"`
	OpenInBrowser        bool   `yaml:"open_in_browser"`
}

func defaults() *Config {
	return &Config{
		ErrorCorrectionLevel: "medium",
		Margin:               4,
		OutFile:              "qrcode.svg",
		OpenInBrowser:        false,
	}
}

// loadConfig reads cfg from path, falling back to defaults for any field
// absent from the file. A missing file is not an error: it just yields
// the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".qrdemo.yaml"
	}
	return filepath.Join(home, ".qrdemo.yaml")
}
