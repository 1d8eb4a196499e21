package system

import (
	"math"
	"testing"
)

func TestBlockNumberAndNonce(t *testing.T) {
	p := New[string, uint32, uint32]()

	p.IncBlockNumber()
	if p.BlockNumber() != 1 {
		t.Fatalf("expected block 1, got %d", p.BlockNumber())
	}

	p.IncNonce("temi")
	if got := p.Nonce("temi"); got != 1 {
		t.Fatalf("expected nonce 1, got %d", got)
	}
	if got := p.Nonce("faithful"); got != 0 {
		t.Fatalf("expected zero nonce for unseen account, got %d", got)
	}

	// Nonces only ever increment, regardless of how often.
	for i := 0; i < 4; i++ {
		p.IncNonce("temi")
	}
	if got := p.Nonce("temi"); got != 5 {
		t.Fatalf("expected nonce 5, got %d", got)
	}
}

func TestBlockNumberSaturates(t *testing.T) {
	p := New[string, uint8, uint32]()
	for i := 0; i < 300; i++ {
		p.IncBlockNumber()
	}
	if p.BlockNumber() != math.MaxUint8 {
		t.Fatalf("expected saturation at %d, got %d", math.MaxUint8, p.BlockNumber())
	}
}

func TestFinalizeBlockChainsHashes(t *testing.T) {
	p := New[string, uint32, uint32]()

	genesis := p.FinalizeBlock()
	if got, ok := p.GenesisHash(); !ok || got != genesis {
		t.Fatalf("genesis hash not stored")
	}

	p.IncBlockNumber()
	p.IncNonce("cheryl")
	first := p.FinalizeBlock()

	if first == genesis {
		t.Fatalf("child hash should differ from parent")
	}
	if parent, ok := p.ParentBlockHash(); !ok || parent != genesis {
		t.Fatalf("parent hash mismatch")
	}
	if current, ok := p.CurrentBlockHash(); !ok || current != first {
		t.Fatalf("current hash mismatch")
	}

	// Repeated queries return the same value absent a re-finalization.
	again, ok := p.BlockHash(1)
	if !ok || again != first {
		t.Fatalf("block hash query not stable")
	}
}

func TestHashDependsOnlyOnDeclaredInputs(t *testing.T) {
	build := func() *Pallet[string, uint32, uint32] {
		p := New[string, uint32, uint32]()
		p.FinalizeBlock()
		p.IncBlockNumber()
		p.IncNonce("alice")
		p.IncNonce("bob")
		return p
	}

	a := build().FinalizeBlock()
	b := build().FinalizeBlock()
	if a != b {
		t.Fatalf("identical inputs must yield identical hashes")
	}

	// A different nonce sum changes the hash.
	p := build()
	p.IncNonce("alice")
	if c := p.FinalizeBlock(); c == a {
		t.Fatalf("hash ignored nonce state")
	}
}

func TestReFinalizationOverwrites(t *testing.T) {
	p := New[string, uint32, uint32]()
	p.IncBlockNumber()

	first := p.FinalizeBlock()
	p.IncNonce("cheryl")
	second := p.FinalizeBlock()

	if first == second {
		t.Fatalf("re-finalization with changed nonces should overwrite the hash")
	}
	if stored, ok := p.BlockHash(1); !ok || stored != second {
		t.Fatalf("stored hash should be the latest finalization")
	}
	if len(p.AllBlockHashes()) != 1 {
		t.Fatalf("re-finalization must not add a new entry")
	}
}

func TestParentHashAtGenesis(t *testing.T) {
	p := New[string, uint32, uint32]()
	if _, ok := p.ParentBlockHash(); ok {
		t.Fatalf("block zero has no parent")
	}
}
