package staking

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"microchain/core/types"
	"microchain/numeric"
)

// ModuleName tags staking calls at the dispatch boundary.
const ModuleName = "staking"

// Call is the sealed set of operations routable to the staking pallet.
type Call interface {
	types.RuntimeCall
	isStakingCall()
}

// Stake bonds Amount from the caller to Validator.
type Stake[AccountID constraints.Ordered, Balance numeric.Unsigned] struct {
	Amount    Balance
	Validator AccountID
}

func (Stake[AccountID, Balance]) RuntimeModule() string { return ModuleName }
func (Stake[AccountID, Balance]) isStakingCall()        {}

// Unstake releases the caller's stake after the lock-up period.
type Unstake struct{}

func (Unstake) RuntimeModule() string { return ModuleName }
func (Unstake) isStakingCall()        {}

// ClaimRewards pays out the caller's accrued rewards.
type ClaimRewards struct{}

func (ClaimRewards) RuntimeModule() string { return ModuleName }
func (ClaimRewards) isStakingCall()        {}

// AddValidator registers Validator with the given commission percentage.
type AddValidator[AccountID constraints.Ordered] struct {
	Validator  AccountID
	Commission uint8
}

func (AddValidator[AccountID]) RuntimeModule() string { return ModuleName }
func (AddValidator[AccountID]) isStakingCall()        {}

// RemoveValidator deregisters Validator.
type RemoveValidator[AccountID constraints.Ordered] struct {
	Validator AccountID
}

func (RemoveValidator[AccountID]) RuntimeModule() string { return ModuleName }
func (RemoveValidator[AccountID]) isStakingCall()        {}

// Dispatch executes a staking call on behalf of caller. The balance oracle is
// injected per call so the pallet never holds a reference into the balances
// ledger.
func (p *Pallet[AccountID, BlockNumber, Balance]) Dispatch(caller AccountID, call Call, balanceOf BalanceSource[AccountID, Balance]) error {
	switch c := call.(type) {
	case Stake[AccountID, Balance]:
		return p.Stake(caller, c.Amount, c.Validator, balanceOf)
	case Unstake:
		_, err := p.Unstake(caller)
		return err
	case ClaimRewards:
		_, err := p.ClaimRewards(caller)
		return err
	case AddValidator[AccountID]:
		return p.AddValidator(c.Validator, c.Commission)
	case RemoveValidator[AccountID]:
		return p.RemoveValidator(c.Validator)
	default:
		return fmt.Errorf("staking: unsupported call %T", call)
	}
}
