package config

import (
	"fmt"
	"os"
)

const (
	DefaultThreatsFile  = "threat-model/threats.yaml"
	DefaultControlsFile = "threat-model/controls.yaml"
	DefaultOutputDir    = "."
)

// Config holds the resolved file locations for one run. Flag values win over
// the defaults; empty flag values fall back.
type Config struct {
	ThreatsPath  string
	ControlsPath string
	OutputDir    string
	Verbose      bool
}

// Load resolves catalog and output paths from the given flag values and
// ensures the output directory exists.
func Load(threatsPath, controlsPath, outputDir string, verbose bool) (*Config, error) {
	cfg := &Config{
		ThreatsPath:  threatsPath,
		ControlsPath: controlsPath,
		OutputDir:    outputDir,
		Verbose:      verbose,
	}

	if cfg.ThreatsPath == "" {
		cfg.ThreatsPath = DefaultThreatsFile
	}
	if cfg.ControlsPath == "" {
		cfg.ControlsPath = DefaultControlsFile
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	if err := ensureDir(cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return cfg, nil
}

func ensureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0755)
	}
	return nil
}
