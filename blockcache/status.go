package blockcache

// Status is the cache's three-colored validation state of a block, plus the
// linear nonce-limiter sub-progression that precedes full validation. It is
// a flat enum rather than a pair of booleans (or a bitfield, as
// kaspad's blockStatus is) so that illegal transitions - e.g. jumping
// straight from AwaitingNonceLimiterValidation to OnChain - are simply
// values this type never takes on, not states that have to be guarded
// against at every call site.
type Status int

const (
	// StatusAwaitingNonceLimiterValidation is the initial state for any
	// block at or beyond the fork 2.6 height: it has not yet been handed
	// to the nonce-limiter (VDF) validator.
	StatusAwaitingNonceLimiterValidation Status = iota

	// StatusNonceLimiterValidationScheduled means a nonce-limiter
	// validation job has been dispatched but hasn't returned.
	StatusNonceLimiterValidationScheduled

	// StatusNonceLimiterValidated means the nonce-limiter check passed;
	// the block is now eligible for full validation and for inclusion in
	// the published longest-chain summary.
	StatusNonceLimiterValidated

	// StatusAwaitingValidation is the initial state for blocks below the
	// fork 2.6 height, which skip nonce-limiter validation entirely.
	StatusAwaitingValidation

	// StatusValidated means full validation (PoW, signature, txs) passed,
	// but the block is not (or no longer) part of the canonical chain.
	StatusValidated

	// StatusOnChain means the block is part of the canonical chain
	// between the cache's lowest retained block and the tip.
	StatusOnChain
)

// IsNotValidated reports whether status is one of the four
// NotValidated(_) sub-states.
func (s Status) IsNotValidated() bool {
	return s == StatusAwaitingNonceLimiterValidation ||
		s == StatusNonceLimiterValidationScheduled ||
		s == StatusNonceLimiterValidated ||
		s == StatusAwaitingValidation
}

func (s Status) String() string {
	switch s {
	case StatusAwaitingNonceLimiterValidation:
		return "NotValidated(AwaitingNonceLimiterValidation)"
	case StatusNonceLimiterValidationScheduled:
		return "NotValidated(NonceLimiterValidationScheduled)"
	case StatusNonceLimiterValidated:
		return "NotValidated(NonceLimiterValidated)"
	case StatusAwaitingValidation:
		return "NotValidated(AwaitingValidation)"
	case StatusValidated:
		return "Validated"
	case StatusOnChain:
		return "OnChain"
	default:
		return "Unknown"
	}
}
