// Package config loads redline's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable knobs for the CLI and the spell provider.
type Config struct {
	// Dictionary is a path to a word list, one word per line. Empty means
	// the embedded common-word dictionary.
	Dictionary string `yaml:"dictionary"`

	// MinWordLength is the shortest word flagged by line checking.
	MinWordLength int `yaml:"min_word_length"`

	// SkipAllCaps ignores all-uppercase words (acronyms).
	SkipAllCaps bool `yaml:"skip_all_caps"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Path is the log file; empty disables logging.
	Path string `yaml:"path"`
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		MinWordLength: 3,
		SkipAllCaps:   true,
		Log:           LogConfig{Level: "warn"},
	}
}

// Load reads path, falling back to defaults when the file does not exist.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.MinWordLength < 1 {
		cfg.MinWordLength = 1
	}
	return cfg, nil
}
