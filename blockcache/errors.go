package blockcache

import "github.com/pkg/errors"

// Sentinel errors surfaced to callers. None of these are retried inside the
// cache; each indicates either a caller bug (topological ordering violated,
// an unknown hash passed to MarkTip) or a logic error upstream in the
// validation pipeline.
var (
	// ErrPreviousBlockNotFound is returned by Add and AddValidated when
	// the block's parent is not in the cache.
	ErrPreviousBlockNotFound = errors.New("previous block not found")

	// ErrPreviousBlockNotValidated is returned by AddValidated when the
	// block's parent is present but still NotValidated(_).
	ErrPreviousBlockNotValidated = errors.New("previous block not validated")

	// ErrInvalidTip is returned by MarkTip when it would have to cross a
	// NotValidated(_) ancestor to reach the root.
	ErrInvalidTip = errors.New("invalid tip: ancestor not validated")

	// ErrNotFound is returned by MarkTip (and by lookups) for an unknown
	// hash.
	ErrNotFound = errors.New("block not found")
)
