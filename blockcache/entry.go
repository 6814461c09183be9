package blockcache

import (
	"time"

	"github.com/ArweaveTeam/blockcache/chainhash"
)

// entry is the value stored per cached block hash. insertionTimestamp is
// wall-clock at first insertion only: it is the cache's age for this hash,
// not the block's own timestamp, and is never touched by later re-adds or
// status transitions.
type entry struct {
	block              Block
	status             Status
	insertionTimestamp time.Time
	children           map[chainhash.IndepHash]struct{}

	// seq breaks max-cdiff ties deterministically by "observed first",
	// since wall-clock timestamps alone aren't fine grained enough to
	// order two inserts in the same instant.
	seq uint64
}

func newEntry(block Block, status Status, now time.Time, seq uint64) *entry {
	return &entry{
		block:              block,
		status:             status,
		insertionTimestamp: now,
		children:           make(map[chainhash.IndepHash]struct{}),
		seq:                seq,
	}
}

func (e *entry) addChild(hash chainhash.IndepHash) {
	e.children[hash] = struct{}{}
}

func (e *entry) removeChild(hash chainhash.IndepHash) {
	delete(e.children, hash)
}

// childHashes returns a snapshot slice of the children set. The cache never
// hands out the live map, so callers can't corrupt the index by mutating
// what they get back.
func (e *entry) childHashes() []chainhash.IndepHash {
	out := make([]chainhash.IndepHash, 0, len(e.children))
	for h := range e.children {
		out = append(out, h)
	}
	return out
}
