package blockcache

import (
	"math/big"

	"github.com/ArweaveTeam/blockcache/chainhash"
)

// Get returns the cached block for hash.
func (c *Cache) Get(hash chainhash.IndepHash) (Block, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.blocks[hash]
	if !ok {
		return nil, ErrNotFound
	}
	return e.block, nil
}

// GetBlockAndStatus returns the cached block for hash together with its
// current Status.
func (c *Cache) GetBlockAndStatus(hash chainhash.IndepHash) (Block, Status, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.blocks[hash]
	if !ok {
		return nil, 0, ErrNotFound
	}
	return e.block, e.status, nil
}

// Tip returns the current tip pointer.
func (c *Cache) Tip() chainhash.IndepHash {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tip
}

// Height returns the cached height of hash, if known.
func (c *Cache) Height(hash chainhash.IndepHash) (uint64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.blocks[hash]
	if !ok {
		return 0, ErrNotFound
	}
	return e.block.Height(), nil
}

// ChildHashes returns the cached direct children of hash.
func (c *Cache) ChildHashes(hash chainhash.IndepHash) ([]chainhash.IndepHash, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.blocks[hash]
	if !ok {
		return nil, ErrNotFound
	}
	return e.childHashes(), nil
}

// Len returns the number of blocks currently cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.blocks)
}

// MaxCumulativeDiff returns the hash and cumulative_diff of the current
// max-cdiff pointer.
func (c *Cache) MaxCumulativeDiff() (chainhash.IndepHash, *big.Int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxCDiffHash, c.maxCDiff
}
