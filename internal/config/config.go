// Package config loads the TOML configuration for the punctuate CLI.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/BugHunterPhilosopher/phonemizer"
)

//go:embed sample_config.toml
var sampleConfig string

// Config holds the CLI-level settings for punctuation processing.
type Config struct {
	// Marks is the punctuation alphabet, one character per mark.
	Marks string `toml:"marks"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Marks: phonemizer.DefaultMarks()}
}

// Load reads the TOML configuration at path on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Sample returns the embedded sample configuration file.
func Sample() string {
	return sampleConfig
}
