package blockcache

import (
	"math/big"

	"github.com/ArweaveTeam/blockcache/chainhash"
)

// Add inserts B as a newly-gossiped, not-yet-validated block.
// Re-adding a hash already Validated/OnChain is a no-op (logged at
// warn: the consensus layer has already accepted it, so this indicates an
// upstream bug, not a race worth surfacing as an error).
func (c *Cache) Add(b Block) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	hash := b.IndepHash()
	if existing, ok := c.blocks[hash]; ok {
		if existing.status.IsNotValidated() {
			existing.block = b
			c.recomputeLongestChainLocked()
			return nil
		}
		log.Warnf("Add: block %s already %s, ignoring re-add", hash, existing.status)
		return nil
	}

	if _, ok := c.blocks[b.PreviousBlock()]; !ok {
		return ErrPreviousBlockNotFound
	}

	c.purgeExpiredAlternativesLocked(b.SolutionHash())

	status := StatusAwaitingValidation
	if b.Height() >= c.fork26Height() {
		status = StatusAwaitingNonceLimiterValidation
	}
	c.insertLocked(b, status)
	c.maybeRaiseMaxCDiffLocked(hash, b.CumulativeDiff())
	c.recomputeLongestChainLocked()
	log.Debugf("Add: %s height %d status %s", hash, b.Height(), status)
	return nil
}

// AddValidated inserts or promotes B to Validated (or leaves it OnChain).
// The parent must already be cached and already past the
// NotValidated(_) sub-states.
func (c *Cache) AddValidated(b Block) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	parent, ok := c.blocks[b.PreviousBlock()]
	if !ok {
		return ErrPreviousBlockNotFound
	}
	if parent.status.IsNotValidated() {
		return ErrPreviousBlockNotValidated
	}

	hash := b.IndepHash()
	existing, ok := c.blocks[hash]
	if !ok {
		c.purgeExpiredAlternativesLocked(b.SolutionHash())
		c.insertLocked(b, StatusValidated)
	} else {
		existing.block = b
		if existing.status != StatusOnChain {
			existing.status = StatusValidated
		}
		parent.addChild(hash)
	}

	c.maybeRaiseMaxCDiffLocked(hash, b.CumulativeDiff())
	c.recomputeLongestChainLocked()
	return nil
}

// MarkNonceLimiterValidationScheduled advances hash from
// AwaitingNonceLimiterValidation to NonceLimiterValidationScheduled. It is
// a no-op, never an error, if hash is unknown or not in that sub-state:
// producers may race to schedule validation for the same block.
func (c *Cache) MarkNonceLimiterValidationScheduled(hash chainhash.IndepHash) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.blocks[hash]
	if !ok || e.status != StatusAwaitingNonceLimiterValidation {
		return
	}
	e.status = StatusNonceLimiterValidationScheduled
}

// MarkNonceLimiterValidated advances hash from
// NonceLimiterValidationScheduled to NonceLimiterValidated, at which point
// it becomes eligible to appear in the longest-chain summary. No-op under
// the same conditions as MarkNonceLimiterValidationScheduled.
func (c *Cache) MarkNonceLimiterValidated(hash chainhash.IndepHash) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.blocks[hash]
	if !ok || e.status != StatusNonceLimiterValidationScheduled {
		return
	}
	e.status = StatusNonceLimiterValidated
	c.recomputeLongestChainLocked()
}

// Remove deletes hash and every descendant reachable through children,
// transitively. Removing an unknown hash is a no-op.
func (c *Cache) Remove(hash chainhash.IndepHash) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.blocks[hash]; !ok {
		return
	}
	c.removeSubtreeLocked(hash)
	c.recomputeLongestChainLocked()
}

// Prune repeatedly removes the lowest-height cached entry (and any
// non-OnChain children subtrees hanging off it) until the lowest height is
// within depth of the tip's height. The lowest cached block
// is always OnChain afterward, since only non-OnChain children of the
// removed low block are subtree-deleted before the low block itself goes.
func (c *Cache) Prune(depth uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tipHeight := c.blocks[c.tip].block.Height()
	for {
		pair, ok := c.heights.lowest()
		if !ok {
			break
		}
		if tipHeight < depth || pair.height >= tipHeight-depth {
			break
		}

		low := c.blocks[pair.hash]
		for _, childHash := range low.childHashes() {
			child, ok := c.blocks[childHash]
			if ok && child.status != StatusOnChain {
				c.removeSubtreeLocked(childHash)
			}
		}
		c.removeSingleLocked(pair.hash)
	}
	c.recomputeLongestChainLocked()
}

// removeSubtreeLocked deletes hash and every transitive child of it.
// mu must be held for write.
func (c *Cache) removeSubtreeLocked(hash chainhash.IndepHash) {
	queue := []chainhash.IndepHash{hash}
	var toRemove []chainhash.IndepHash
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		e, ok := c.blocks[h]
		if !ok {
			continue
		}
		toRemove = append(toRemove, h)
		queue = append(queue, e.childHashes()...)
	}
	for _, h := range toRemove {
		c.removeSingleLocked(h)
	}
}

// removeSingleLocked deletes exactly hash from every index, without
// touching its children (callers that need subtree semantics use
// removeSubtreeLocked; Prune uses this directly on the low block so its
// single OnChain child survives as the new lowest entry).
// mu must be held for write.
func (c *Cache) removeSingleLocked(hash chainhash.IndepHash) {
	e, ok := c.blocks[hash]
	if !ok {
		return
	}
	delete(c.blocks, hash)
	c.heights.remove(hash)
	c.solutions.remove(e.block.SolutionHash(), hash)
	if parent, ok := c.blocks[e.block.PreviousBlock()]; ok {
		parent.removeChild(hash)
	}
	c.ignoreRegistry.Remove(hash)

	if hash == c.maxCDiffHash {
		c.rescanMaxCDiffLocked()
	}
}

// rescanMaxCDiffLocked recomputes the max-cdiff pointer from scratch over
// every remaining cached block, breaking ties by insertion order (seq).
// mu must be held for write.
func (c *Cache) rescanMaxCDiffLocked() {
	var (
		bestHash chainhash.IndepHash
		bestSeq  uint64
		best     *big.Int
	)
	for h, e := range c.blocks {
		cdiff := e.block.CumulativeDiff()
		if best == nil || cdiff.Cmp(best) > 0 || (cdiff.Cmp(best) == 0 && e.seq < bestSeq) {
			best = cdiff
			bestHash = h
			bestSeq = e.seq
		}
	}
	c.maxCDiff = best
	c.maxCDiffHash = bestHash
}
