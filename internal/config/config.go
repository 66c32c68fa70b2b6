// Package config provides completion engine configuration.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Default minimum candidate word lengths, in grapheme clusters.
const (
	DefaultMinWordLenManual    = 2
	DefaultMinWordLenAutomatic = 8
)

// DefaultPriority is the provisional priority assigned to word suggestions.
// It is not yet context-sensitive.
const DefaultPriority int8 = 1

// Config holds the tunable parameters of the word completion engine.
type Config struct {
	// MinWordLenManual is the minimum candidate word length, in grapheme
	// clusters, for manually invoked completion.
	MinWordLenManual int `toml:"min_word_len_manual"`
	// MinWordLenAutomatic is the minimum candidate word length, in grapheme
	// clusters, for automatic (as-you-type) completion.
	MinWordLenAutomatic int `toml:"min_word_len_automatic"`
	// Priority tags every produced response. Higher sorts earlier when the
	// host merges providers.
	Priority int8 `toml:"priority"`
}

// Default returns a configuration with the standard values.
func Default() *Config {
	return &Config{
		MinWordLenManual:    DefaultMinWordLenManual,
		MinWordLenAutomatic: DefaultMinWordLenAutomatic,
		Priority:            DefaultPriority,
	}
}

// Load reads a TOML configuration file, layering it over the defaults.
// A missing file is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for nonsensical values.
func (c *Config) Validate() error {
	if c.MinWordLenManual < 1 {
		return fmt.Errorf("min_word_len_manual must be at least 1, got %d", c.MinWordLenManual)
	}
	if c.MinWordLenAutomatic < 1 {
		return fmt.Errorf("min_word_len_automatic must be at least 1, got %d", c.MinWordLenAutomatic)
	}
	return nil
}

// MinWordLen returns the minimum candidate word length for the given trigger:
// manual triggers use the lower threshold, everything else the automatic one.
func (c *Config) MinWordLen(manual bool) int {
	if manual {
		return c.MinWordLenManual
	}
	return c.MinWordLenAutomatic
}
