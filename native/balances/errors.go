package balances

import stderrors "errors"

var (
	// ErrInsufficientBalance rejects a transfer whose sender cannot cover the
	// amount plus the transaction fee.
	ErrInsufficientBalance = stderrors.New("balances: insufficient balance")
	// ErrInsufficientFunds rejects a fee debit that would drive the payer
	// below zero.
	ErrInsufficientFunds = stderrors.New("balances: insufficient funds to pay fees")
	// ErrOverflowInCalculation signals that a cost or fee computation exceeds
	// the range of the balance type.
	ErrOverflowInCalculation = stderrors.New("balances: overflow calculating transfer cost")
	// ErrOverflowInTransfer signals that crediting the receiver would exceed
	// the range of the balance type.
	ErrOverflowInTransfer = stderrors.New("balances: overflow in transfer")
	// ErrInvalidAmount is reserved for callers validating amounts before
	// submission; the pallet itself accepts any representable amount.
	ErrInvalidAmount = stderrors.New("balances: invalid amount")
)
