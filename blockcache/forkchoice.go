package blockcache

import "github.com/ArweaveTeam/blockcache/chainhash"

// maxReorgRetries bounds the reorg-in-flight retry loop of
// walkLongestChainLocked. Under the single-writer concurrency model the
// race it guards against can't actually occur (no mutation is concurrent with
// recomputeLongestChainLocked), so one retry is already more than enough;
// the bound exists purely so a latent bug here fails loudly instead of
// spinning.
const maxReorgRetries = 3

// recomputeLongestChainLocked refreshes c.longestChain from the current
// max-cdiff pointer. Called after every mutating operation.
// mu must be held for write.
func (c *Cache) recomputeLongestChainLocked() {
	for attempt := 0; attempt < maxReorgRetries; attempt++ {
		entries, notOnChain, raced := c.walkLongestChainLocked()
		if !raced {
			c.longestChain = longestChain{Entries: entries, NotOnChain: notOnChain}
			return
		}
	}
	log.Errorf("recomputeLongestChainLocked: reorg-in-flight race did not resolve after %d attempts", maxReorgRetries)
}

func (c *Cache) walkLongestChainLocked() (entries []longestChainEntry, notOnChain int, raced bool) {
	if len(c.blocks) == 0 {
		return nil, 0, false
	}

	// Head-skip rule: a block still awaiting, or scheduled for, nonce-
	// limiter validation is too early to publish. Walk past a run of
	// those - and only at the head - before starting collection.
	start := c.maxCDiffHash
	for {
		e, ok := c.blocks[start]
		if !ok {
			return nil, 0, false
		}
		if e.status != StatusAwaitingNonceLimiterValidation && e.status != StatusNonceLimiterValidationScheduled {
			break
		}
		start = e.block.PreviousBlock()
	}

	cur := start
	sawOnChain := false
	for i := 0; i < c.storeBlocksBehind; i++ {
		e, ok := c.blocks[cur]
		if !ok {
			break // pruned-tail rule: return what we have.
		}

		if sawOnChain && e.status != StatusOnChain {
			// Reorg-in-flight: an OnChain ancestor became non-OnChain
			// mid-walk. Restart from the (possibly now different)
			// max-cdiff pointer.
			return nil, 0, true
		}
		if e.status == StatusOnChain {
			sawOnChain = true
		}

		entries = append(entries, longestChainEntry{Hash: cur, Txs: e.block.Txs()})
		if e.status != StatusOnChain {
			notOnChain++
		}
		cur = e.block.PreviousBlock()
	}
	return entries, notOnChain, false
}

// GetLongestChainBlockTxsPairs returns the memoized longest-chain summary:
// up to StoreBlocksBehindCurrent (hash, txs) pairs ending at the max-cdiff
// pointer (newest first), and how many of them are not yet OnChain.
func (c *Cache) GetLongestChainBlockTxsPairs() ([]chainhash.IndepHash, map[chainhash.IndepHash][]chainhash.TxID, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	hashes := make([]chainhash.IndepHash, len(c.longestChain.Entries))
	txs := make(map[chainhash.IndepHash][]chainhash.TxID, len(c.longestChain.Entries))
	for i, e := range c.longestChain.Entries {
		hashes[i] = e.Hash
		txs[e.Hash] = e.Txs
	}
	return hashes, txs, c.longestChain.NotOnChain
}

// GetEarliestNotValidatedFromLongestChain finds the deepest (earliest
// height) NotValidated(_) block on the path back from the max-cdiff
// pointer. It returns found=false when the tip is already
// at least as heavy as the max-cdiff pointer (nothing heavier to validate),
// or when the heaviest candidate chain has no NotValidated(_) blocks left
// to validate (it's already fully Validated, just waiting on MarkTip).
//
// intermediates is the single-element list [junction], junction being the
// first on-chain-or-validated block reached walking back from ancestor -
// which, since a NotValidated(_) block can never have an OnChain
// descendant and AddValidated refuses a NotValidated(_)
// parent, is always exactly ancestor's own parent.
func (c *Cache) GetEarliestNotValidatedFromLongestChain() (ancestor Block, intermediates []Block, status Status, found bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tipEntry, ok := c.blocks[c.tip]
	if !ok || c.maxCDiff == nil {
		return nil, nil, 0, false
	}
	if tipEntry.block.CumulativeDiff().Cmp(c.maxCDiff) >= 0 {
		return nil, nil, 0, false
	}

	cur := c.maxCDiffHash
	var deepest *entry
	for {
		e, ok := c.blocks[cur]
		if !ok {
			break
		}
		if !e.status.IsNotValidated() {
			break
		}
		deepest = e
		cur = e.block.PreviousBlock()
	}
	if deepest == nil {
		return nil, nil, 0, false
	}
	if junction, ok := c.blocks[cur]; ok {
		intermediates = []Block{junction.block}
	}
	return deepest.block, intermediates, deepest.status, true
}
