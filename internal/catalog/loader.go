package catalog

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// LoadThreats reads the threat catalog from path. A missing file is treated
// as an empty catalog (warning logged), not an error: downstream aggregates
// degrade to zero rather than failing the run. Malformed YAML is fatal.
func LoadThreats(path string, log *zap.Logger) (*ThreatCatalog, error) {
	var cat ThreatCatalog
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("threats file not found, using empty catalog", zap.String("path", path))
			return &cat, nil
		}
		return nil, fmt.Errorf("reading threats catalog: %w", err)
	}

	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	log.Info("loaded threat catalog",
		zap.String("path", path),
		zap.Int("threats", len(cat.Threats)))
	return &cat, nil
}

// LoadControls reads the security controls catalog from path. Same missing-file
// policy as LoadThreats.
func LoadControls(path string, log *zap.Logger) (*ControlCatalog, error) {
	var cat ControlCatalog
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("controls file not found, using empty catalog", zap.String("path", path))
			return &cat, nil
		}
		return nil, fmt.Errorf("reading controls catalog: %w", err)
	}

	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	log.Info("loaded controls catalog",
		zap.String("path", path),
		zap.Int("controls", len(cat.Controls)))
	return &cat, nil
}
