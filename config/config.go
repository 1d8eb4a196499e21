// Package config loads the runtime parameters from a TOML file and the
// genesis allocation from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config carries the tunable ledger policy: the flat transfer fee and the
// staking parameters.
type Config struct {
	BaseFee         uint64 `toml:"BaseFee"`
	FeeRecipient    string `toml:"FeeRecipient"`
	MinimumStake    uint64 `toml:"MinimumStake"`
	RewardRate      uint64 `toml:"RewardRate"`
	UnstakingPeriod uint64 `toml:"UnstakingPeriod"`
	MaxValidators   uint32 `toml:"MaxValidators"`
}

// Default returns the stock policy: no fee, burn fees, and the default
// staking parameters.
func Default() *Config {
	return &Config{
		MinimumStake:    100,
		RewardRate:      5,
		UnstakingPeriod: 10,
		MaxValidators:   10,
	}
}

// Load reads the configuration from path, writing the default file first if
// none exists.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefault(path)
	}

	cfg := &Config{}
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects parameter combinations the runtime cannot operate under.
func (c *Config) Validate() error {
	if c.MaxValidators == 0 {
		return fmt.Errorf("config: MaxValidators must be at least 1")
	}
	if c.MinimumStake == 0 {
		return fmt.Errorf("config: MinimumStake must be at least 1")
	}
	return nil
}

func createDefault(path string) (*Config, error) {
	cfg := Default()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("config: create %s: %w", path, err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: write defaults to %s: %w", path, err)
	}
	return cfg, nil
}
