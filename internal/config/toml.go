// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Breaker BreakerConfig `toml:"breaker"`
	Scoring ScoringConfig `toml:"scoring"`
}

// BreakerConfig maps key recovery settings.
type BreakerConfig struct {
	MinKeySize *int  `toml:"min-keysize"`
	MaxKeySize *int  `toml:"max-keysize"`
	Try        *int  `toml:"try"`
	Save       *bool `toml:"save"`
}

// ScoringConfig maps plaintext scoring settings.
type ScoringConfig struct {
	Table *string `toml:"table"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
