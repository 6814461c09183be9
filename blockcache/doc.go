// Package blockcache implements the in-memory chain-and-forks cache of
// proof-of-work-valid blocks that sits between gossip intake, the
// nonce-limiter validator, and full-block validation.
//
// The cache is owned by a single writer. Every exported method takes
// Cache.mu for the duration of the call (write lock for mutators, read lock
// for lookups); no suspension point exists inside a held lock.
package blockcache
