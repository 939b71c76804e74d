package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name looked up in the working directory.
const FileName = "ledger.yaml"

// Config represents the top-level ledger.yaml configuration. File paths are
// explicit here and passed into the store/exporter, never package globals.
type Config struct {
	Ledger     LedgerConfig `yaml:"ledger"`
	Export     ExportConfig `yaml:"export"`
	Charts     ChartsConfig `yaml:"charts"`
	Currency   string       `yaml:"currency"`
	Categories []string     `yaml:"categories,omitempty"`
}

// LedgerConfig locates the persisted store.
type LedgerConfig struct {
	File string `yaml:"file"`
}

// ExportConfig locates the filtered-export artifact.
type ExportConfig struct {
	File string `yaml:"file"`
}

// ChartsConfig locates the two chart artifacts.
type ChartsConfig struct {
	CategoryFile string `yaml:"category_file"`
	TrendFile    string `yaml:"trend_file"`
}

// Load reads a ledger.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
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

// Default returns a Config with the original tracker's file layout.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Ledger.File == "" {
		c.Ledger.File = "expenses.csv"
	}
	if c.Export.File == "" {
		c.Export.File = "export.csv"
	}
	if c.Charts.CategoryFile == "" {
		c.Charts.CategoryFile = "chart_expenses_by_category.png"
	}
	if c.Charts.TrendFile == "" {
		c.Charts.TrendFile = "chart_monthly_trend.png"
	}
	if c.Currency == "" {
		c.Currency = "£"
	}
}
