// Package types defines the block structure and the dispatch contract shared
// by every ledger module. The types are generic over the runtime's account,
// block-number, and call types so that modules never hardcode a concrete
// identity or numeric width.
package types

import "microchain/numeric"

// Header carries the metadata of a block. The simulator only tracks the
// height; richer fields (state roots, timestamps) belong to the systems this
// runtime deliberately does not model.
type Header[BlockNumber numeric.Unsigned] struct {
	Number BlockNumber
}

// Extrinsic pairs a caller identity with the call it submits. One extrinsic
// corresponds to one submitted transaction inside a block.
type Extrinsic[Caller, Call any] struct {
	Caller Caller
	Call   Call
}

// Block is an ordered list of extrinsics under a header. Extrinsics execute
// strictly in list order.
type Block[BlockNumber numeric.Unsigned, Caller, Call any] struct {
	Header     Header[BlockNumber]
	Extrinsics []Extrinsic[Caller, Call]
}
