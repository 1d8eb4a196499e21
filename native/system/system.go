// Package system implements the system pallet: block progression, per-account
// nonces, and the chain of finalized block hashes. Every operation is a total
// function over in-memory state; nothing in this package can fail.
package system

import (
	"microchain/numeric"

	"golang.org/x/exp/constraints"
)

// Pallet tracks the current block number, the nonce of every account that has
// submitted an extrinsic, and one hash per finalized block.
type Pallet[AccountID constraints.Ordered, BlockNumber, Nonce numeric.Unsigned] struct {
	blockNumber BlockNumber
	nonces      map[AccountID]Nonce
	blockHashes map[BlockNumber]Hash
}

// New returns an empty system pallet at block zero.
func New[AccountID constraints.Ordered, BlockNumber, Nonce numeric.Unsigned]() *Pallet[AccountID, BlockNumber, Nonce] {
	return &Pallet[AccountID, BlockNumber, Nonce]{
		nonces:      make(map[AccountID]Nonce),
		blockHashes: make(map[BlockNumber]Hash),
	}
}

// BlockNumber returns the current block number.
func (p *Pallet[AccountID, BlockNumber, Nonce]) BlockNumber() BlockNumber {
	return p.blockNumber
}

// IncBlockNumber advances the block number by one, saturating at the maximum
// of the block-number type rather than wrapping back to zero.
func (p *Pallet[AccountID, BlockNumber, Nonce]) IncBlockNumber() {
	p.blockNumber = numeric.SaturatingAdd(p.blockNumber, BlockNumber(1))
}

// IncNonce bumps the nonce of the given account, starting from zero for
// accounts never seen before. Nonces only ever move forward.
func (p *Pallet[AccountID, BlockNumber, Nonce]) IncNonce(who AccountID) {
	p.nonces[who] = p.nonces[who] + 1
}

// Nonce returns the recorded nonce for an account, zero if absent.
func (p *Pallet[AccountID, BlockNumber, Nonce]) Nonce(who AccountID) Nonce {
	return p.nonces[who]
}

// FinalizeBlock seals the current block: it derives the block hash from the
// current height, the tracked nonce set, and the parent hash, then files it
// under the current block number. Finalizing again without advancing the
// block number overwrites the stored hash for that height.
func (p *Pallet[AccountID, BlockNumber, Nonce]) FinalizeBlock() Hash {
	var nonceSum uint64
	for _, n := range p.nonces {
		nonceSum += uint64(n)
	}
	parent, _ := p.ParentBlockHash()
	hash := computeHash(uint64(p.blockNumber), uint64(len(p.nonces)), nonceSum, parent)
	p.blockHashes[p.blockNumber] = hash
	return hash
}

// BlockHash returns the hash stored for the given block number.
func (p *Pallet[AccountID, BlockNumber, Nonce]) BlockHash(number BlockNumber) (Hash, bool) {
	hash, ok := p.blockHashes[number]
	return hash, ok
}

// CurrentBlockHash returns the hash of the current block, if finalized.
func (p *Pallet[AccountID, BlockNumber, Nonce]) CurrentBlockHash() (Hash, bool) {
	return p.BlockHash(p.blockNumber)
}

// ParentBlockHash returns the hash of the block preceding the current one.
// At block zero there is no parent.
func (p *Pallet[AccountID, BlockNumber, Nonce]) ParentBlockHash() (Hash, bool) {
	if p.blockNumber == 0 {
		return Hash{}, false
	}
	return p.BlockHash(p.blockNumber - 1)
}

// GenesisHash returns the hash stored for block zero, if finalized.
func (p *Pallet[AccountID, BlockNumber, Nonce]) GenesisHash() (Hash, bool) {
	var zero BlockNumber
	return p.BlockHash(zero)
}

// AllBlockHashes returns a copy of the full block-number to hash mapping.
func (p *Pallet[AccountID, BlockNumber, Nonce]) AllBlockHashes() map[BlockNumber]Hash {
	out := make(map[BlockNumber]Hash, len(p.blockHashes))
	for number, hash := range p.blockHashes {
		out[number] = hash
	}
	return out
}

// NonceCount returns how many accounts have a recorded nonce.
func (p *Pallet[AccountID, BlockNumber, Nonce]) NonceCount() int {
	return len(p.nonces)
}
