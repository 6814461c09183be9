package blockcache

import (
	"math/big"
	"time"

	"github.com/ArweaveTeam/blockcache/chainhash"
)

// purgeExpiredAlternativesLocked scans every cached block sharing solution,
// removes the ones that are non-OnChain and past their alternative-block
// lifetime, and leaves the rest. Called before adding a new block under the
// same solution hash. mu must be held for write.
func (c *Cache) purgeExpiredAlternativesLocked(solution chainhash.SolutionHash) {
	now := c.now()
	for _, hash := range c.solutions.members(solution) {
		e, ok := c.blocks[hash]
		if !ok || e.status == StatusOnChain {
			continue
		}
		lifetime := c.altBlockExpiration * time.Duration(c.forkLengthLocked(hash))
		if now.Sub(e.insertionTimestamp) >= lifetime {
			c.removeSubtreeLocked(hash)
		}
	}
}

// forkLengthLocked returns 1 + the maximum depth, in blocks, of the subtree
// rooted at hash - the scale factor for how long an alternative block at
// that root is allowed to live before aging out. mu must be held for read
// or write.
func (c *Cache) forkLengthLocked(hash chainhash.IndepHash) int {
	e, ok := c.blocks[hash]
	if !ok {
		return 1
	}
	maxChildDepth := 0
	for _, child := range e.childHashes() {
		if d := c.forkLengthLocked(child); d > maxChildDepth {
			maxChildDepth = d
		}
	}
	return 1 + maxChildDepth
}

// GetBySolutionHash scans the blocks sharing solution (skipping exclude)
// for a double-signing match against (cdiff, prevCDiff):
//
//  1. exact twin: same cumulative_diff as cdiff.
//  2. overlapping-height double-sign: the candidate's cdiff exceeds
//     prevCDiff AND cdiff exceeds the candidate's previous cumulative_diff.
//  3. any other member.
//
// Returns ErrNotFound if the set is empty or contains only exclude.
func (c *Cache) GetBySolutionHash(
	solution chainhash.SolutionHash,
	exclude chainhash.IndepHash,
	cdiff, prevCDiff *big.Int,
) (Block, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var exactTwin, doubleSign, any Block
	for _, hash := range c.solutions.members(solution) {
		if hash == exclude {
			continue
		}
		e, ok := c.blocks[hash]
		if !ok {
			// Unreachable while the read lock is held: every solutions
			// member is a cached block. No race-retry is attempted.
			continue
		}
		b := e.block
		if any == nil {
			any = b
		}
		if b.CumulativeDiff().Cmp(cdiff) == 0 {
			exactTwin = b
			break
		}
		if doubleSign == nil && b.CumulativeDiff().Cmp(prevCDiff) > 0 && cdiff.Cmp(b.PreviousCumulativeDiff()) > 0 {
			doubleSign = b
		}
	}

	switch {
	case exactTwin != nil:
		return exactTwin, nil
	case doubleSign != nil:
		return doubleSign, nil
	case any != nil:
		return any, nil
	default:
		return nil, ErrNotFound
	}
}

// IsKnownSolutionHash reports whether any cached block shares solution.
func (c *Cache) IsKnownSolutionHash(solution chainhash.SolutionHash) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.solutions.isKnown(solution)
}
