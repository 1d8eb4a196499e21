package balances

import (
	"errors"
	"math"
	"testing"
)

func TestInitBalances(t *testing.T) {
	p := New[string, uint64]()

	if got := p.Balance("alice"); got != 0 {
		t.Fatalf("expected zero balance, got %d", got)
	}
	p.SetBalance("alice", 100)
	if got := p.Balance("alice"); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	if got := p.Balance("bob"); got != 0 {
		t.Fatalf("expected zero balance for bob, got %d", got)
	}
}

func TestTransferBalance(t *testing.T) {
	p := New[string, uint64]()

	// Transfer from an empty account fails and changes nothing.
	if err := p.Transfer("alice", "bob", 51); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	if p.Balance("alice") != 0 || p.Balance("bob") != 0 {
		t.Fatalf("failed transfer must not touch the ledger")
	}

	p.SetBalance("alice", 100)
	if err := p.Transfer("alice", "bob", 51); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if got := p.Balance("alice"); got != 49 {
		t.Fatalf("expected alice=49, got %d", got)
	}
	if got := p.Balance("bob"); got != 51 {
		t.Fatalf("expected bob=51, got %d", got)
	}
}

func TestTransferWithFeeRecipient(t *testing.T) {
	treasury := "treasury"
	p := NewWithFeeConfig[string, uint64](5, &treasury)

	if recipient, ok := p.FeeRecipient(); !ok || recipient != "treasury" {
		t.Fatalf("expected fee recipient treasury, got %q (ok=%v)", recipient, ok)
	}
	if got := p.TransactionFee(); got != 5 {
		t.Fatalf("expected fee 5, got %d", got)
	}

	p.SetBalance("alice", 100)
	p.SetBalance("treasury", 10)

	if err := p.Transfer("alice", "bob", 30); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if got := p.Balance("alice"); got != 65 {
		t.Fatalf("expected alice=65, got %d", got)
	}
	if got := p.Balance("bob"); got != 30 {
		t.Fatalf("expected bob=30, got %d", got)
	}
	if got := p.Balance("treasury"); got != 15 {
		t.Fatalf("expected treasury=15, got %d", got)
	}
}

func TestConservationWithRecipient(t *testing.T) {
	treasury := "treasury"
	p := NewWithFeeConfig[string, uint64](7, &treasury)
	p.SetBalance("alice", 500)
	p.SetBalance("bob", 200)

	before := p.TotalIssuance()
	transfers := []struct {
		from, to string
		amount   uint64
	}{
		{"alice", "bob", 40},
		{"bob", "alice", 10},
		{"alice", "treasury", 25},
	}
	for _, tr := range transfers {
		if err := p.Transfer(tr.from, tr.to, tr.amount); err != nil {
			t.Fatalf("transfer %v: %v", tr, err)
		}
	}
	if after := p.TotalIssuance(); after != before {
		t.Fatalf("fees must move value, not destroy it: before=%d after=%d", before, after)
	}
}

func TestFeeBurnedWithoutRecipient(t *testing.T) {
	p := New[string, uint64]()
	p.SetTransactionFee(5)
	p.SetBalance("alice", 100)

	before := p.TotalIssuance()
	if err := p.Transfer("alice", "bob", 30); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if after := p.TotalIssuance(); after != before-5 {
		t.Fatalf("with no recipient the fee leaves total issuance: before=%d after=%d", before, after)
	}
}

func TestTransferCost(t *testing.T) {
	p := New[string, uint64]()
	p.SetTransactionFee(10)

	cost, err := p.TransferCost(90)
	if err != nil {
		t.Fatalf("transfer cost: %v", err)
	}
	if cost != 100 {
		t.Fatalf("expected cost 100, got %d", cost)
	}

	if _, err := p.TransferCost(math.MaxUint64); !errors.Is(err, ErrOverflowInCalculation) {
		t.Fatalf("expected ErrOverflowInCalculation, got %v", err)
	}
}

func TestTransferOverflowInTransfer(t *testing.T) {
	p := New[string, uint64]()
	p.SetBalance("alice", 10)
	p.SetBalance("bob", math.MaxUint64)

	if err := p.Transfer("alice", "bob", 1); !errors.Is(err, ErrOverflowInTransfer) {
		t.Fatalf("expected ErrOverflowInTransfer, got %v", err)
	}
}

func TestTransferCostGatesFee(t *testing.T) {
	p := New[string, uint64]()
	p.SetTransactionFee(5)
	p.SetBalance("alice", 100)

	// Amount alone fits, amount+fee does not.
	if err := p.Transfer("alice", "bob", 98); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	if p.Balance("alice") != 100 || p.Balance("bob") != 0 {
		t.Fatalf("failed transfer must not touch the ledger")
	}
}

func TestDispatch(t *testing.T) {
	p := New[string, uint64]()

	if err := p.Dispatch("root", SetBalance[string, uint64]{Who: "alice", Amount: 80}); err != nil {
		t.Fatalf("dispatch set balance: %v", err)
	}
	if err := p.Dispatch("alice", Transfer[string, uint64]{To: "bob", Amount: 30}); err != nil {
		t.Fatalf("dispatch transfer: %v", err)
	}
	if p.Balance("alice") != 50 || p.Balance("bob") != 30 {
		t.Fatalf("dispatch did not route to the ledger")
	}

	if err := p.Dispatch("alice", Transfer[string, uint64]{To: "bob", Amount: 500}); err == nil {
		t.Fatalf("expected dispatch to surface the module error")
	}
}
