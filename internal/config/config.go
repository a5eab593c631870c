// Package config loads the optional player configuration file. A missing
// file means defaults; a broken file is reported but never blocks the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config models config.yaml in the foundry base directory.
type Config struct {
	PlayerName string `yaml:"player_name"`
	// BaseDir overrides where the save file, journal and workspaces live.
	BaseDir string `yaml:"base_dir"`
	// Debug enables the file log under <base_dir>/logs.
	Debug bool `yaml:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{PlayerName: "Apprentice"}
}

// Path returns the config file location under the base directory.
func Path(baseDir string) string {
	return filepath.Join(baseDir, "config.yaml")
}

// Load reads the config file, applying defaults for anything missing.
// A nonexistent file returns defaults with no error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if cfg.PlayerName == "" {
		cfg.PlayerName = "Apprentice"
	}
	return cfg, nil
}
