// Command microchain runs a scripted simulation against the ledger runtime:
// it applies a genesis allocation, executes a few blocks of transfers and
// staking activity (including deliberate failures), and verifies the
// resulting hash chain.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"microchain/config"
	"microchain/core"
	"microchain/core/types"
	"microchain/native/balances"
	"microchain/native/staking"
	"microchain/observability/logging"
)

type (
	runtime   = core.Runtime[string, uint32, uint32, uint64]
	block     = types.Block[uint32, string, types.RuntimeCall]
	extrinsic = types.Extrinsic[string, types.RuntimeCall]
)

func main() {
	configFile := flag.String("config", "./config.toml", "Path to the configuration file")
	genesisFile := flag.String("genesis", "", "Path to a genesis allocation YAML file")
	flag.Parse()

	env := strings.TrimSpace(os.Getenv("MICROCHAIN_ENV"))
	logger := logging.Setup("microchain", env)

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	rt := newRuntime(cfg)
	rt.SetLogger(logger)

	if *genesisFile != "" {
		genesis, err := config.LoadGenesis(*genesisFile)
		if err != nil {
			logger.Error("failed to load genesis", slog.Any("error", err))
			os.Exit(1)
		}
		applyGenesis(rt, genesis, logger)
	}

	if err := runSimulation(rt, logger); err != nil {
		logger.Error("simulation failed", slog.Any("error", err))
		os.Exit(1)
	}

	if !rt.VerifyChainIntegrity() {
		logger.Error("chain integrity check failed")
		os.Exit(1)
	}
	logger.Info("chain integrity verified",
		slog.Uint64("blocks", uint64(rt.System.BlockNumber())))
}

func newRuntime(cfg *config.Config) *runtime {
	rt := core.NewRuntimeWithStaking[string, uint32, uint32](staking.Params[uint32, uint64]{
		MinimumStake:    cfg.MinimumStake,
		RewardRate:      cfg.RewardRate,
		UnstakingPeriod: uint32(cfg.UnstakingPeriod),
		MaxValidators:   cfg.MaxValidators,
	})
	rt.Balances.SetTransactionFee(cfg.BaseFee)
	if cfg.FeeRecipient != "" {
		recipient := cfg.FeeRecipient
		rt.Balances.SetFeeRecipient(&recipient)
	}
	return rt
}

func applyGenesis(rt *runtime, genesis *config.Genesis, logger *slog.Logger) {
	for account, balance := range genesis.Balances {
		rt.Balances.SetBalance(account, balance)
	}
	for _, validator := range genesis.Validators {
		if err := rt.Staking.AddValidator(validator.ID, validator.Commission); err != nil {
			logger.Warn("skipping genesis validator",
				slog.String("validator", validator.ID), slog.Any("error", err))
		}
	}
	logger.Info("genesis applied",
		slog.Int("accounts", len(genesis.Balances)),
		slog.Int("validators", len(genesis.Validators)))
}

func runSimulation(rt *runtime, logger *slog.Logger) error {
	// Issuance, in case no genesis file seeded the accounts.
	if rt.Balances.Balance("cheryl") == 0 {
		if err := execute(rt, logger, []extrinsic{
			{Caller: "root", Call: balances.SetBalance[string, uint64]{Who: "cheryl", Amount: 10000}},
			{Caller: "root", Call: balances.SetBalance[string, uint64]{Who: "femi", Amount: 500}},
		}); err != nil {
			return err
		}
	}

	// Plain transfers.
	if err := execute(rt, logger, []extrinsic{
		{Caller: "cheryl", Call: balances.Transfer[string, uint64]{To: "faith", Amount: 50}},
		{Caller: "cheryl", Call: balances.Transfer[string, uint64]{To: "nathaniel", Amount: 70}},
		{Caller: "femi", Call: balances.Transfer[string, uint64]{To: "temi", Amount: 100}},
	}); err != nil {
		return err
	}

	// Validator registration and staking.
	if err := execute(rt, logger, []extrinsic{
		{Caller: "nathaniel", Call: staking.AddValidator[string]{Validator: "nathaniel", Commission: 5}},
		{Caller: "cheryl", Call: staking.Stake[string, uint64]{Amount: 200, Validator: "nathaniel"}},
	}); err != nil {
		return err
	}

	// A block with a deliberate failure: the transfer exceeds cheryl's
	// balance and is skipped while the rest of the block applies.
	if err := execute(rt, logger, []extrinsic{
		{Caller: "cheryl", Call: balances.Transfer[string, uint64]{To: "nathaniel", Amount: 920000}},
		{Caller: "temi", Call: balances.Transfer[string, uint64]{To: "faith", Amount: 50}},
		{Caller: "femi", Call: balances.Transfer[string, uint64]{To: "cheryl", Amount: 200}},
	}); err != nil {
		return err
	}

	// Ride out the unstaking period with empty blocks, then claim and
	// release the stake.
	for i := 0; i < 64 && rt.Staking.IsStaking("cheryl"); i++ {
		if err := execute(rt, logger, []extrinsic{
			{Caller: "cheryl", Call: staking.ClaimRewards{}},
			{Caller: "cheryl", Call: staking.Unstake{}},
		}); err != nil {
			return err
		}
	}
	if rt.Staking.IsStaking("cheryl") {
		return fmt.Errorf("stake never released within the simulation window")
	}

	logFinalState(rt, logger)
	return nil
}

func execute(rt *runtime, logger *slog.Logger, extrinsics []extrinsic) error {
	_, err := executeResult(rt, logger, extrinsics)
	return err
}

func executeResult(rt *runtime, logger *slog.Logger, extrinsics []extrinsic) (*core.BlockResult[string, uint32], error) {
	next := rt.System.BlockNumber() + 1
	result, err := rt.ExecuteBlock(block{
		Header:     types.Header[uint32]{Number: next},
		Extrinsics: extrinsics,
	})
	if err != nil {
		return nil, fmt.Errorf("execute block %d: %w", next, err)
	}
	logger.Info("block finalized",
		slog.Uint64("number", uint64(result.Number)),
		slog.String("hash", result.Hash.ShortHex()),
		slog.Int("applied", result.Applied),
		slog.Int("failed", len(result.Failed)),
		slog.Int("events", len(result.Events)))
	return result, nil
}

func logFinalState(rt *runtime, logger *slog.Logger) {
	for _, account := range []string{"femi", "temi", "cheryl", "nathaniel", "faith"} {
		if balance := rt.Balances.Balance(account); balance > 0 {
			logger.Info("account",
				slog.String("who", account),
				slog.Uint64("balance", balance),
				slog.Uint64("nonce", uint64(rt.System.Nonce(account))))
		}
	}
	stats := rt.Staking.Stats()
	logger.Info("staking",
		slog.Uint64("totalStaked", stats.TotalStaked),
		slog.Uint64("validators", uint64(stats.TotalValidators)),
		slog.Uint64("stakers", uint64(stats.TotalStakers)))
	if genesisHash, ok := rt.System.GenesisHash(); ok {
		logger.Info("genesis hash", slog.String("hash", genesisHash.ShortHex()))
	}
}
