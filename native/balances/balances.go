// Package balances implements the balances pallet: the canonical
// account-to-balance ledger, checked transfers, and a flat, configurable
// transaction fee optionally forwarded to a recipient account.
package balances

import (
	"microchain/numeric"

	"golang.org/x/exp/constraints"
)

// Pallet owns the account ledger. Absent accounts hold a zero balance.
type Pallet[AccountID constraints.Ordered, Balance numeric.Unsigned] struct {
	balances     map[AccountID]Balance
	baseFee      Balance
	feeRecipient *AccountID
}

// New returns an empty ledger with a zero base fee and no fee recipient.
func New[AccountID constraints.Ordered, Balance numeric.Unsigned]() *Pallet[AccountID, Balance] {
	return &Pallet[AccountID, Balance]{balances: make(map[AccountID]Balance)}
}

// NewWithFeeConfig returns an empty ledger with the supplied fee policy.
func NewWithFeeConfig[AccountID constraints.Ordered, Balance numeric.Unsigned](baseFee Balance, feeRecipient *AccountID) *Pallet[AccountID, Balance] {
	p := New[AccountID, Balance]()
	p.baseFee = baseFee
	p.SetFeeRecipient(feeRecipient)
	return p
}

// Balance returns the balance of an account, zero if absent.
func (p *Pallet[AccountID, Balance]) Balance(who AccountID) Balance {
	return p.balances[who]
}

// SetBalance overwrites an account's balance unconditionally. It exists for
// issuance and genesis setup, not as a transfer path.
func (p *Pallet[AccountID, Balance]) SetBalance(who AccountID, amount Balance) {
	p.balances[who] = amount
}

// SetTransactionFee replaces the flat fee charged per transfer.
func (p *Pallet[AccountID, Balance]) SetTransactionFee(fee Balance) {
	p.baseFee = fee
}

// TransactionFee returns the flat fee charged per transfer.
func (p *Pallet[AccountID, Balance]) TransactionFee() Balance {
	return p.baseFee
}

// SetFeeRecipient configures where fees are forwarded. A nil recipient burns
// the fee: it leaves the sender and is credited nowhere.
func (p *Pallet[AccountID, Balance]) SetFeeRecipient(recipient *AccountID) {
	if recipient == nil {
		p.feeRecipient = nil
		return
	}
	r := *recipient
	p.feeRecipient = &r
}

// FeeRecipient returns the configured fee recipient, if any.
func (p *Pallet[AccountID, Balance]) FeeRecipient() (AccountID, bool) {
	if p.feeRecipient == nil {
		var zero AccountID
		return zero, false
	}
	return *p.feeRecipient, true
}

// TransferCost returns the total debit a transfer of amount would place on the
// sender: the amount plus the flat fee.
func (p *Pallet[AccountID, Balance]) TransferCost(amount Balance) (Balance, error) {
	total, ok := numeric.CheckedAdd(amount, p.calculateFee(amount))
	if !ok {
		return 0, ErrOverflowInCalculation
	}
	return total, nil
}

// calculateFee resolves the fee for a transfer of the given amount. The flat
// base fee is the canonical policy; the amount does not influence it.
func (p *Pallet[AccountID, Balance]) calculateFee(Balance) Balance {
	return p.baseFee
}

// Transfer moves amount from sender to receiver and settles the transaction
// fee. All validation happens before the first ledger write, so a failed
// transfer leaves every balance untouched.
func (p *Pallet[AccountID, Balance]) Transfer(sender, receiver AccountID, amount Balance) error {
	fee := p.calculateFee(amount)
	senderBalance := p.Balance(sender)
	receiverBalance := p.Balance(receiver)

	totalNeeded, ok := numeric.CheckedAdd(amount, fee)
	if !ok {
		return ErrOverflowInCalculation
	}
	if senderBalance < totalNeeded {
		return ErrInsufficientBalance
	}

	newSenderBalance, ok := numeric.CheckedSub(senderBalance, amount)
	if !ok {
		return ErrInsufficientFunds
	}
	newReceiverBalance, ok := numeric.CheckedAdd(receiverBalance, amount)
	if !ok {
		return ErrOverflowInTransfer
	}

	p.balances[sender] = newSenderBalance
	p.balances[receiver] = newReceiverBalance

	return p.settleFee(sender, fee)
}

// settleFee debits the fee from the payer and credits the configured
// recipient, if any.
func (p *Pallet[AccountID, Balance]) settleFee(who AccountID, fee Balance) error {
	newBalance, ok := numeric.CheckedSub(p.Balance(who), fee)
	if !ok {
		return ErrInsufficientFunds
	}
	p.balances[who] = newBalance

	if p.feeRecipient != nil {
		recipient := *p.feeRecipient
		credited, ok := numeric.CheckedAdd(p.Balance(recipient), fee)
		if !ok {
			return ErrOverflowInCalculation
		}
		p.balances[recipient] = credited
	}
	return nil
}

// TotalIssuance sums every account balance. Transfers conserve this value
// whenever a fee recipient is configured.
func (p *Pallet[AccountID, Balance]) TotalIssuance() Balance {
	var total Balance
	for _, balance := range p.balances {
		total += balance
	}
	return total
}
