package blockcache

import "github.com/ArweaveTeam/blockcache/chainhash"

// MarkTip moves the tip pointer to hash and re-colors the chain accordingly.
// hash itself is marked OnChain whatever its current status; the walk up
// from its parent must reach the existing OnChain spine without crossing a
// NotValidated(_) ancestor; if it does, MarkTip changes nothing and returns
// ErrInvalidTip. Both checks - existence and validation
// - are done on a first pass before any status is mutated, so a failure is
// always atomic: either the whole reorg happens or none of it does.
func (c *Cache) MarkTip(hash chainhash.IndepHash) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.blocks[hash]; !ok {
		return ErrNotFound
	}

	// Pass 1: walk from hash up to the first already-OnChain ancestor,
	// recording the path. Fail without mutating anything if a
	// NotValidated(_) ancestor is in the way.
	path := []chainhash.IndepHash{}
	cur := hash
	var junction chainhash.IndepHash
	for {
		e, ok := c.blocks[cur]
		if !ok {
			return ErrInvalidTip
		}
		if e.status == StatusOnChain {
			junction = cur
			break
		}
		if cur != hash && e.status.IsNotValidated() {
			return ErrInvalidTip
		}
		path = append(path, cur)
		cur = e.block.PreviousBlock()
	}

	// Pass 2: promote every block on path (newest to oldest) to OnChain:
	// hash itself, then its Validated ancestors.
	for _, h := range path {
		c.blocks[h].status = StatusOnChain
	}

	// Pass 3: demote every sibling subtree displaced from the old spine.
	// Walking from junction along path toward the new tip, at each step the
	// child that continues along path stays OnChain; every other child
	// was on the old canonical chain and must come down to Validated.
	node := junction
	for i := len(path) - 1; i >= 0; i-- {
		next := path[i]
		for _, child := range c.blocks[node].childHashes() {
			if child == next {
				continue
			}
			c.demoteFromOnChainLocked(child)
		}
		node = next
	}
	// The old tip's own former children (if any grew past it) never carry
	// OnChain status past the old tip, so there's nothing to demote below
	// the last path entry.

	c.tip = hash
	c.recomputeLongestChainLocked()
	log.Debugf("MarkTip: tip now %s, promoted %d blocks", hash, len(path))
	return nil
}

// demoteFromOnChainLocked flips hash and every OnChain descendant of it
// down to Validated. It stops descending as soon as a child is not
// OnChain, since non-OnChain subtrees were never part of the old spine to
// begin with. mu must be held for write.
func (c *Cache) demoteFromOnChainLocked(hash chainhash.IndepHash) {
	e, ok := c.blocks[hash]
	if !ok || e.status != StatusOnChain {
		return
	}
	e.status = StatusValidated
	for _, child := range e.childHashes() {
		c.demoteFromOnChainLocked(child)
	}
}
