package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GenesisValidator describes one validator present from block zero.
type GenesisValidator struct {
	ID         string `yaml:"id"`
	Commission uint8  `yaml:"commission"`
}

// Genesis is the initial state applied before the first block: account
// balances and the starting validator set.
type Genesis struct {
	Balances   map[string]uint64  `yaml:"balances"`
	Validators []GenesisValidator `yaml:"validators"`
}

// LoadGenesis reads a genesis allocation from a YAML file.
func LoadGenesis(path string) (*Genesis, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read genesis %s: %w", path, err)
	}
	genesis := &Genesis{}
	if err := yaml.Unmarshal(raw, genesis); err != nil {
		return nil, fmt.Errorf("config: decode genesis %s: %w", path, err)
	}
	if err := genesis.Validate(); err != nil {
		return nil, err
	}
	return genesis, nil
}

// Validate rejects allocations the staking pallet would refuse at runtime.
func (g *Genesis) Validate() error {
	seen := make(map[string]struct{}, len(g.Validators))
	for _, validator := range g.Validators {
		if validator.ID == "" {
			return fmt.Errorf("config: genesis validator with empty id")
		}
		if validator.Commission > 100 {
			return fmt.Errorf("config: genesis validator %s commission %d exceeds 100", validator.ID, validator.Commission)
		}
		if _, dup := seen[validator.ID]; dup {
			return fmt.Errorf("config: duplicate genesis validator %s", validator.ID)
		}
		seen[validator.ID] = struct{}{}
	}
	return nil
}
