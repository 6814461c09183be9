// Package ignoreregistry defines the outbound collaborator hook the block
// cache notifies on every insertion and deletion of a cached block. The
// registry itself (deduping recently-seen gossip hashes) lives outside this
// module; the cache only ever calls Add/Remove, fire-and-forget.
package ignoreregistry

import (
	"sync"

	"github.com/ArweaveTeam/blockcache/chainhash"
)

// Registry is notified when the cache learns about or forgets a block hash.
type Registry interface {
	Add(hash chainhash.IndepHash)
	Remove(hash chainhash.IndepHash)
}

// InMemory is a minimal Registry suitable for tests and for callers that
// don't wire a real gossip-dedup registry.
type InMemory struct {
	mu    sync.Mutex
	known map[chainhash.IndepHash]struct{}
}

// NewInMemory returns an empty InMemory registry.
func NewInMemory() *InMemory {
	return &InMemory{known: make(map[chainhash.IndepHash]struct{})}
}

// Add marks hash as known.
func (r *InMemory) Add(hash chainhash.IndepHash) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.known[hash] = struct{}{}
}

// Remove unmarks hash.
func (r *InMemory) Remove(hash chainhash.IndepHash) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.known, hash)
}

// IsKnown reports whether hash was most recently Add-ed without a following
// Remove. Exposed for tests; the cache itself never reads this back.
func (r *InMemory) IsKnown(hash chainhash.IndepHash) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.known[hash]
	return ok
}

// Noop discards every notification. Useful when a caller genuinely has no
// ignore registry to wire up.
type Noop struct{}

// Add is a no-op.
func (Noop) Add(chainhash.IndepHash) {}

// Remove is a no-op.
func (Noop) Remove(chainhash.IndepHash) {}
