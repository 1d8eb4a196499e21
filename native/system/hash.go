package system

import (
	"encoding/binary"
	"encoding/hex"

	"lukechampine.com/blake3"
)

// Hash is the 32-byte identifier of a finalized block. It is a placeholder
// commitment for simulation purposes, not a cryptographic guarantee over block
// contents.
type Hash [32]byte

// Hex returns the lowercase hex encoding of the hash.
func (h Hash) Hex() string {
	return hex.EncodeToString(h[:])
}

// ShortHex returns the hex encoding of the first eight bytes, handy for logs.
func (h Hash) ShortHex() string {
	return hex.EncodeToString(h[:8])
}

// computeHash derives a block hash from the block number, the number of
// tracked nonces, their sum, and the parent block's hash. A child hash depends
// on nothing else, so re-deriving it with the same inputs always yields the
// same value.
func computeHash(blockNumber, nonceCount, nonceSum uint64, parent Hash) Hash {
	var buf [56]byte
	binary.BigEndian.PutUint64(buf[0:8], blockNumber)
	binary.BigEndian.PutUint64(buf[8:16], nonceCount)
	binary.BigEndian.PutUint64(buf[16:24], nonceSum)
	copy(buf[24:], parent[:])
	return Hash(blake3.Sum256(buf[:]))
}
