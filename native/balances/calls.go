package balances

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"microchain/core/types"
	"microchain/numeric"
)

// ModuleName tags balances calls at the dispatch boundary.
const ModuleName = "balances"

// Call is the sealed set of operations routable to the balances pallet.
type Call interface {
	types.RuntimeCall
	isBalancesCall()
}

// Transfer moves Amount from the caller to To, charging the configured fee.
type Transfer[AccountID constraints.Ordered, Balance numeric.Unsigned] struct {
	To     AccountID
	Amount Balance
}

func (Transfer[AccountID, Balance]) RuntimeModule() string { return ModuleName }
func (Transfer[AccountID, Balance]) isBalancesCall()       {}

// SetBalance overwrites Who's balance with Amount. An issuance operation, not
// a transfer: it does not conserve total issuance.
type SetBalance[AccountID constraints.Ordered, Balance numeric.Unsigned] struct {
	Who    AccountID
	Amount Balance
}

func (SetBalance[AccountID, Balance]) RuntimeModule() string { return ModuleName }
func (SetBalance[AccountID, Balance]) isBalancesCall()       {}

// Dispatch executes a balances call on behalf of caller, satisfying the
// module dispatch contract.
func (p *Pallet[AccountID, Balance]) Dispatch(caller AccountID, call Call) error {
	switch c := call.(type) {
	case Transfer[AccountID, Balance]:
		return p.Transfer(caller, c.To, c.Amount)
	case SetBalance[AccountID, Balance]:
		p.SetBalance(c.Who, c.Amount)
		return nil
	default:
		return fmt.Errorf("balances: unsupported call %T", call)
	}
}
