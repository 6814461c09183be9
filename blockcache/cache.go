package blockcache

import (
	"math/big"
	"sync"
	"time"

	"github.com/ArweaveTeam/blockcache/chainhash"
	"github.com/ArweaveTeam/blockcache/ignoreregistry"
	"github.com/pkg/errors"
)

// longestChainEntry is one element of the memoized longest-chain summary:
// a cached block's hash paired with its transaction ids.
type longestChainEntry struct {
	Hash chainhash.IndepHash
	Txs  []chainhash.TxID
}

// longestChain is the memoized value behind GetLongestChainBlockTxsPairs:
// up to StoreBlocksBehindCurrent blocks newest-first, plus how many of them
// are not yet OnChain.
type longestChain struct {
	Entries    []longestChainEntry
	NotOnChain int
}

// Cache is the block cache: one mutable state object holding the
// Block Store, Height Index, Solution Index, Max-CDiff pointer, and
// Tip/longest-chain cache, kept mutually consistent under a single lock.
//
// Every exported method takes mu for its whole duration (matching the
// kaspad's domain/blockdag locking discipline); private helpers suffixed
// Locked assume the caller already holds it for write, and are never called
// from inside another exported method's read-lock section.
type Cache struct {
	mu sync.RWMutex

	blocks    map[chainhash.IndepHash]*entry
	heights   *heightIndex
	solutions *solutionIndex

	maxCDiffHash chainhash.IndepHash
	maxCDiff     *big.Int

	tip          chainhash.IndepHash
	longestChain longestChain

	fork26Height       Fork26HeightFunc
	ignoreRegistry     ignoreregistry.Registry
	storeBlocksBehind  int
	altBlockExpiration time.Duration
	now                func() time.Time
	nextSeq            uint64
}

// New creates a Cache seeded with genesis block B as the sole OnChain
// entry and current tip. cfg.Fork26Height must be non-nil.
func New(genesis Block, cfg Config) *Cache {
	c := &Cache{
		blocks:             make(map[chainhash.IndepHash]*entry),
		heights:            newHeightIndex(),
		solutions:          newSolutionIndex(),
		fork26Height:       cfg.Fork26Height,
		ignoreRegistry:     cfg.IgnoreRegistry,
		storeBlocksBehind:  cfg.storeBlocksBehindCurrent(),
		altBlockExpiration: cfg.alternativeBlockExpiration(),
		now:                cfg.now(),
	}
	if c.ignoreRegistry == nil {
		c.ignoreRegistry = ignoreregistry.Noop{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.insertLocked(genesis, StatusOnChain)
	hash := genesis.IndepHash()
	c.tip = hash
	c.maxCDiffHash = hash
	c.maxCDiff = genesis.CumulativeDiff()
	c.recomputeLongestChainLocked()
	return c
}

// InitializeFromList installs blocks (newest-first, as gossiped/stored)
// as an entirely on-chain history: the oldest block becomes
// genesis via New, then each successively newer block is AddValidated-ed
// and immediately MarkTip-ed, so every block ends OnChain and the newest
// is tip.
func InitializeFromList(blocks []Block, cfg Config) (*Cache, error) {
	if len(blocks) == 0 {
		return nil, errors.New("blockcache: InitializeFromList requires at least one block")
	}
	oldestFirst := make([]Block, len(blocks))
	for i, b := range blocks {
		oldestFirst[len(blocks)-1-i] = b
	}

	c := New(oldestFirst[0], cfg)
	for _, b := range oldestFirst[1:] {
		if err := c.AddValidated(b); err != nil {
			return nil, err
		}
		if err := c.MarkTip(b.IndepHash()); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// insertLocked creates a brand-new entry for block with the given status,
// wires it into every index, and notifies the ignore registry. It does NOT
// purge expired alternatives (callers needing that call
// purgeExpiredAlternativesLocked first) and does NOT touch maxCDiff/longestChain (callers finish that).
// mu must be held for write.
func (c *Cache) insertLocked(block Block, status Status) *entry {
	hash := block.IndepHash()
	e := newEntry(block, status, c.now(), c.nextSeq)
	c.nextSeq++
	c.blocks[hash] = e
	c.heights.insert(block.Height(), hash)
	c.solutions.add(block.SolutionHash(), hash)

	if parent, ok := c.blocks[block.PreviousBlock()]; ok {
		parent.addChild(hash)
	}

	c.ignoreRegistry.Add(hash)
	return e
}

// maybeRaiseMaxCDiffLocked moves the max-cdiff pointer to hash if cdiff is
// strictly heavier than the current maximum.
// mu must be held for write.
func (c *Cache) maybeRaiseMaxCDiffLocked(hash chainhash.IndepHash, cdiff *big.Int) {
	if c.maxCDiff == nil || cdiff.Cmp(c.maxCDiff) > 0 {
		c.maxCDiffHash = hash
		c.maxCDiff = cdiff
	}
}
