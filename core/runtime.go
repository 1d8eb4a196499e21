// Package core composes the system, balances, and staking pallets into a
// single runtime and executes blocks against them. The runtime is the only
// mutator of ledger state: it runs single-threaded, one extrinsic at a time,
// and owns every pallet it routes calls to.
package core

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	"golang.org/x/exp/constraints"

	"microchain/core/types"
	"microchain/native/balances"
	"microchain/native/staking"
	"microchain/native/system"
	"microchain/numeric"
)

// ErrBlockNumberMismatch rejects a block whose header number is not the
// expected next height.
var ErrBlockNumberMismatch = stderrors.New("block number does not match what is expected")

// Runtime aggregates one instance of each pallet. Instantiating every pallet
// from the same type-parameter set guarantees all modules agree on the
// concrete account, block-number, nonce, and balance types.
type Runtime[AccountID constraints.Ordered, BlockNumber, Nonce, Balance numeric.Unsigned] struct {
	System   *system.Pallet[AccountID, BlockNumber, Nonce]
	Balances *balances.Pallet[AccountID, Balance]
	Staking  *staking.Pallet[AccountID, BlockNumber, Balance]

	logger *slog.Logger
}

// NewRuntime returns a runtime with empty pallets under the default staking
// policy.
func NewRuntime[AccountID constraints.Ordered, BlockNumber, Nonce, Balance numeric.Unsigned]() *Runtime[AccountID, BlockNumber, Nonce, Balance] {
	return NewRuntimeWithStaking[AccountID, BlockNumber, Nonce](staking.DefaultParams[BlockNumber, Balance]())
}

// NewRuntimeWithStaking returns a runtime whose staking pallet uses the
// supplied policy.
func NewRuntimeWithStaking[AccountID constraints.Ordered, BlockNumber, Nonce, Balance numeric.Unsigned](params staking.Params[BlockNumber, Balance]) *Runtime[AccountID, BlockNumber, Nonce, Balance] {
	return &Runtime[AccountID, BlockNumber, Nonce, Balance]{
		System:   system.New[AccountID, BlockNumber, Nonce](),
		Balances: balances.New[AccountID, Balance](),
		Staking:  staking.NewWithParams[AccountID](params),
	}
}

// SetLogger routes block-execution logging through the given logger instead
// of slog.Default.
func (r *Runtime[AccountID, BlockNumber, Nonce, Balance]) SetLogger(logger *slog.Logger) {
	r.logger = logger
}

func (r *Runtime[AccountID, BlockNumber, Nonce, Balance]) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

// Dispatch routes a call to the pallet that owns it and propagates the
// pallet's error unchanged. It implements the same dispatch contract the
// pallets do, which is what lets the runtime stand in as the single entry
// point for all typed calls.
func (r *Runtime[AccountID, BlockNumber, Nonce, Balance]) Dispatch(caller AccountID, call types.RuntimeCall) error {
	switch c := call.(type) {
	case balances.Call:
		return r.Balances.Dispatch(caller, c)
	case staking.Call:
		return r.Staking.Dispatch(caller, c, r.Balances.Balance)
	default:
		return fmt.Errorf("runtime: no module registered for call %T", call)
	}
}

var _ types.Dispatcher[string, types.RuntimeCall] = (*Runtime[string, uint32, uint32, uint64])(nil)
