// Package config handles configuration loading and validation for placard.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// AssetNamespace is the cache key prefix for HTML bodies.
	AssetNamespace string `yaml:"asset_namespace"`
	// AssetExtensions overrides the downloadable asset extension set.
	AssetExtensions []string          `yaml:"asset_extensions"`
	Interaction     InteractionConfig `yaml:"interaction"`
	Events          EventsConfig      `yaml:"events"`
	DataDir         string            `yaml:"-"` // set by caller, not from config file
}

// InteractionConfig describes the interaction query schema reported by the
// display surface.
type InteractionConfig struct {
	// Delimiter separates the segments of a query ID.
	Delimiter string `yaml:"delimiter"`
	// Segments is the exact segment count a query ID must split into.
	Segments int `yaml:"segments"`
}

// EventsConfig holds interaction event log settings.
type EventsConfig struct {
	// MaxEvents caps the retained interaction event log. 0 uses the store default.
	MaxEvents int `yaml:"max_events"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		AssetNamespace: "rules_assets",
		Interaction: InteractionConfig{
			Delimiter: ",",
			Segments:  3,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided
// dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.AssetNamespace == "" {
		c.AssetNamespace = def.AssetNamespace
	}
	if c.Interaction.Delimiter == "" {
		c.Interaction.Delimiter = def.Interaction.Delimiter
	}
	if c.Interaction.Segments == 0 {
		c.Interaction.Segments = def.Interaction.Segments
	}
}

// CacheDir returns the asset cache directory.
func (c *Config) CacheDir() string {
	return filepath.Join(c.DataDir, "cache")
}

// EventsDir returns the interaction event log directory.
func (c *Config) EventsDir() string {
	return filepath.Join(c.DataDir, "events")
}
