package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/errors"
)

// Load reads and validates a configuration file. The format follows the
// file extension: .yaml/.yml parse as YAML, everything else as JSON.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFatal(err, "Config", "Load", "reading config file")
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("parsing %s: %w", path, err),
				"Config", "Load", "parsing YAML")
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("parsing %s: %w", path, err),
				"Config", "Load", "parsing JSON")
		}
	}

	if cfg.Dispatch == "" {
		cfg.Dispatch = DispatchAuto
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
