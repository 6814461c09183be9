package blockcache

import (
	"math/big"

	"github.com/ArweaveTeam/blockcache/chainhash"
)

// fakeBlock is a minimal Block implementation for tests, grounded the same
// way kaspad's blockdag/test_utils.go fabricates blocks by hand rather
// than mining real ones.
type fakeBlock struct {
	hash      chainhash.IndepHash
	prev      chainhash.IndepHash
	solution  chainhash.SolutionHash
	cdiff     *big.Int
	prevCDiff *big.Int
	height    uint64
	txs       []chainhash.TxID
}

func (b *fakeBlock) IndepHash() chainhash.IndepHash             { return b.hash }
func (b *fakeBlock) PreviousBlock() chainhash.IndepHash         { return b.prev }
func (b *fakeBlock) SolutionHash() chainhash.SolutionHash       { return b.solution }
func (b *fakeBlock) CumulativeDiff() *big.Int                   { return b.cdiff }
func (b *fakeBlock) PreviousCumulativeDiff() *big.Int           { return b.prevCDiff }
func (b *fakeBlock) Height() uint64                             { return b.height }
func (b *fakeBlock) Txs() []chainhash.TxID                      { return b.txs }

// hashByte builds a distinct IndepHash by repeating b across every byte.
func hashByte(b byte) chainhash.IndepHash {
	var h chainhash.IndepHash
	for i := range h {
		h[i] = b
	}
	return h
}

func solutionByte(b byte) chainhash.SolutionHash {
	var h chainhash.SolutionHash
	for i := range h {
		h[i] = b
	}
	return h
}

// chainBlock builds a block at id extending parent, with cdiff = parent's
// cdiff + diff. Every block gets its own solution hash unless overridden by
// withSolution.
func chainBlock(id byte, parent *fakeBlock, height uint64, diff int64) *fakeBlock {
	prevCDiff := big.NewInt(0)
	if parent != nil {
		prevCDiff = parent.cdiff
	}
	return &fakeBlock{
		hash:      hashByte(id),
		prev:      parentHash(parent),
		solution:  solutionByte(id),
		cdiff:     new(big.Int).Add(prevCDiff, big.NewInt(diff)),
		prevCDiff: prevCDiff,
		height:    height,
	}
}

func parentHash(parent *fakeBlock) chainhash.IndepHash {
	if parent == nil {
		return chainhash.IndepHash{}
	}
	return parent.hash
}

func withSolution(b *fakeBlock, solution chainhash.SolutionHash) *fakeBlock {
	b.solution = solution
	return b
}

func noFork26() Fork26HeightFunc { return func() uint64 { return 1 << 62 } }

func alwaysFork26() Fork26HeightFunc { return func() uint64 { return 0 } }
