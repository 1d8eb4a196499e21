package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	// The default file must be readable on the next load.
	again, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}

func TestLoadParsesPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
BaseFee = 5
FeeRecipient = "treasury"
MinimumStake = 250
RewardRate = 7
UnstakingPeriod = 20
MaxValidators = 4
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint64(5), cfg.BaseFee)
	require.Equal(t, "treasury", cfg.FeeRecipient)
	require.Equal(t, uint64(250), cfg.MinimumStake)
	require.Equal(t, uint64(7), cfg.RewardRate)
	require.Equal(t, uint64(20), cfg.UnstakingPeriod)
	require.Equal(t, uint32(4), cfg.MaxValidators)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("Unknown = 1\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.MaxValidators = 0
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MinimumStake = 0
	require.Error(t, cfg.Validate())

	require.NoError(t, Default().Validate())
}

func TestLoadGenesis(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
balances:
  cheryl: 10000
  femi: 500
validators:
  - id: v1
    commission: 5
  - id: v2
    commission: 10
`), 0o600))

	genesis, err := LoadGenesis(path)
	require.NoError(t, err)
	require.Equal(t, uint64(10000), genesis.Balances["cheryl"])
	require.Len(t, genesis.Validators, 2)
	require.Equal(t, uint8(5), genesis.Validators[0].Commission)
}

func TestGenesisValidate(t *testing.T) {
	bad := &Genesis{Validators: []GenesisValidator{{ID: "v1", Commission: 150}}}
	require.Error(t, bad.Validate())

	dup := &Genesis{Validators: []GenesisValidator{{ID: "v1"}, {ID: "v1"}}}
	require.Error(t, dup.Validate())

	require.NoError(t, (&Genesis{}).Validate())
}
