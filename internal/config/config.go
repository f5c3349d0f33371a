package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/veribal-dev/veribal/internal/tolerance"
)

// Config represents the top-level veribal.yaml configuration.
type Config struct {
	Business   BusinessConfig   `yaml:"business"`
	Validation ValidationConfig `yaml:"validation"`
	Import     ImportConfig     `yaml:"import"`
}

// BusinessConfig identifies the business entity the balances belong to.
type BusinessConfig struct {
	Name       string `yaml:"name"`
	FiscalCode string `yaml:"fiscal_code,omitempty"`
}

// ValidationConfig holds default engine options for CLI runs. They feed the
// explicit options passed into the engine; the engine never reads config.
type ValidationConfig struct {
	Tolerance           float64 `yaml:"tolerance"`
	AggregateDuplicates bool    `yaml:"aggregate_duplicates"`
}

// ImportConfig controls trial-balance file import.
type ImportConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// Load reads a veribal.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Validation: ValidationConfig{
			Tolerance:           tolerance.Default,
			AggregateDuplicates: false,
		},
		Import: ImportConfig{
			DefaultFormat: "standard",
		},
	}
}
