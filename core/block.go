package core

import (
	"log/slog"

	"microchain/core/types"
	"microchain/native/staking"
	"microchain/native/system"
	"microchain/observability"
)

// FailedExtrinsic records one extrinsic that dispatched unsuccessfully inside
// a block.
type FailedExtrinsic[AccountID any] struct {
	Index  int
	Caller AccountID
	Module string
	Err    error
}

// BlockResult summarises one executed block.
type BlockResult[AccountID any, BlockNumber any] struct {
	Number  BlockNumber
	Hash    system.Hash
	Applied int
	Failed  []FailedExtrinsic[AccountID]
	Events  []staking.Event
}

// ExecuteBlock advances the chain by one block and applies its extrinsics in
// order. Each extrinsic increments its caller's nonce before dispatch; a
// failed extrinsic is logged and recorded but neither rolls back the nonce
// nor aborts the rest of the block. After the last extrinsic the block is
// finalized, the staking pallet receives its block tick, and the staking
// event queue is drained into the result.
func (r *Runtime[AccountID, BlockNumber, Nonce, Balance]) ExecuteBlock(block types.Block[BlockNumber, AccountID, types.RuntimeCall]) (*BlockResult[AccountID, BlockNumber], error) {
	metrics := observability.Runtime()

	r.System.IncBlockNumber()
	current := r.System.BlockNumber()
	if block.Header.Number != current {
		return nil, ErrBlockNumberMismatch
	}

	result := &BlockResult[AccountID, BlockNumber]{Number: current}
	for i, extrinsic := range block.Extrinsics {
		r.System.IncNonce(extrinsic.Caller)

		module := extrinsic.Call.RuntimeModule()
		if err := r.Dispatch(extrinsic.Caller, extrinsic.Call); err != nil {
			metrics.Extrinsics.WithLabelValues(module, "failed").Inc()
			result.Failed = append(result.Failed, FailedExtrinsic[AccountID]{
				Index:  i,
				Caller: extrinsic.Caller,
				Module: module,
				Err:    err,
			})
			r.log().Warn("extrinsic failed",
				slog.Uint64("block", uint64(current)),
				slog.Int("index", i),
				slog.String("module", module),
				slog.Any("error", err),
			)
			continue
		}
		metrics.Extrinsics.WithLabelValues(module, "applied").Inc()
		result.Applied++
	}

	result.Hash = r.System.FinalizeBlock()
	r.Staking.OnBlock(current)
	result.Events = r.Staking.DrainEvents()

	for _, event := range result.Events {
		if event.EventType() == staking.TypeRewardsPaid {
			metrics.RewardsPaid.Inc()
		}
	}
	metrics.BlocksFinalized.Inc()

	return result, nil
}

// VerifyChainIntegrity checks that every block up to the current height has a
// stored hash.
func (r *Runtime[AccountID, BlockNumber, Nonce, Balance]) VerifyChainIntegrity() bool {
	current := uint64(r.System.BlockNumber())
	for n := uint64(1); n <= current; n++ {
		if _, ok := r.System.BlockHash(BlockNumber(n)); !ok {
			return false
		}
	}
	return true
}
