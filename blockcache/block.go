package blockcache

import (
	"math/big"

	"github.com/ArweaveTeam/blockcache/chainhash"
)

// Block is the subset of a block's fields the cache consumes. It never
// parses, serializes, or validates a block; any type exposing these
// accessors can be cached.
type Block interface {
	IndepHash() chainhash.IndepHash
	PreviousBlock() chainhash.IndepHash
	SolutionHash() chainhash.SolutionHash
	CumulativeDiff() *big.Int
	PreviousCumulativeDiff() *big.Int
	Height() uint64
	Txs() []chainhash.TxID
}

// Fork26HeightFunc reports the height at and beyond which newly-added
// blocks require nonce-limiter validation before full validation. It is a
// named function type, not a bare func() uint64, so a zero-value Cache
// built without going through New is obviously misconfigured rather than
// silently treating every block as pre-fork.
type Fork26HeightFunc func() uint64
