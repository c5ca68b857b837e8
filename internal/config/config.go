package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level migration.yaml configuration.
type Config struct {
	Company    CompanyConfig     `yaml:"company"`
	Dirs       DirsConfig        `yaml:"dirs"`
	Balance    BalanceConfig     `yaml:"balance"`
	GroupMap   map[string]string `yaml:"group_map,omitempty"`   // source account type -> parent group overrides
	LedgersMap map[string]string `yaml:"ledgers_map,omitempty"` // mandatory ledger role -> ledger name overrides
}

// CompanyConfig identifies the target company the import is addressed to.
type CompanyConfig struct {
	Name           string `yaml:"name"`
	CurrencyName   string `yaml:"currency_name"`
	CurrencySymbol string `yaml:"currency_symbol"`
	Country        string `yaml:"country"`
}

// DirsConfig points at the source export and the XML output location.
type DirsConfig struct {
	Source string `yaml:"source"`
	Output string `yaml:"output"`
}

// BalanceConfig controls the balance validator.
type BalanceConfig struct {
	// Epsilon is the largest absolute voucher residual tolerated before an
	// imbalance diagnostic is raised, in currency units.
	Epsilon float64 `yaml:"epsilon"`
}

// Load reads a migration.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Balance.Epsilon <= 0 {
		cfg.Balance.Epsilon = 0.01
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

// Default returns a Config with sensible defaults for a new migration
// workspace.
func Default(companyName string) *Config {
	return &Config{
		Company: CompanyConfig{
			Name:           companyName,
			CurrencyName:   "Rupees",
			CurrencySymbol: "₹",
			Country:        "India",
		},
		Dirs: DirsConfig{
			Source: "source",
			Output: "output",
		},
		Balance: BalanceConfig{
			Epsilon: 0.01,
		},
	}
}
