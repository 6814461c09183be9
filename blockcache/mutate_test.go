package blockcache

import "testing"

// TestMarkNonceLimiterProgression covers the linear nonce-limiter
// sub-progression end to end: no-op on an unknown hash, no-op when a
// method is applied to a block outside the sub-state it expects, and the
// full AwaitingNonceLimiterValidation -> NonceLimiterValidationScheduled ->
// NonceLimiterValidated advance that makes a block eligible to appear in
// longest_chain.
func TestMarkNonceLimiterProgression(t *testing.T) {
	b1 := chainBlock(1, nil, 0, 0)
	c := newTestCache(b1, alwaysFork26())

	b2 := chainBlock(2, b1, 1, 5)
	if err := c.Add(b2); err != nil {
		t.Fatalf("TestMarkNonceLimiterProgression: Add(b2) failed: %s", err)
	}

	// No-op on an unknown hash: must not panic or affect anything cached.
	c.MarkNonceLimiterValidationScheduled(hashByte(0xff))
	c.MarkNonceLimiterValidated(hashByte(0xff))

	b3 := chainBlock(3, b2, 2, 5)
	if err := c.Add(b3); err != nil {
		t.Fatalf("TestMarkNonceLimiterProgression: Add(b3) failed: %s", err)
	}

	// No-op when the sub-state doesn't match: b3 is still Awaiting, so
	// MarkNonceLimiterValidated (which only advances from Scheduled) does
	// nothing.
	c.MarkNonceLimiterValidated(b3.hash)
	_, status, err := c.GetBlockAndStatus(b3.hash)
	if err != nil {
		t.Fatalf("TestMarkNonceLimiterProgression: Get(b3) failed: %s", err)
	}
	if status != StatusAwaitingNonceLimiterValidation {
		t.Fatalf("TestMarkNonceLimiterProgression: b3 status = %s after out-of-order MarkNonceLimiterValidated, want unchanged Awaiting", status)
	}

	c.MarkNonceLimiterValidationScheduled(b2.hash)
	_, status, err = c.GetBlockAndStatus(b2.hash)
	if err != nil {
		t.Fatalf("TestMarkNonceLimiterProgression: Get(b2) failed: %s", err)
	}
	if status != StatusNonceLimiterValidationScheduled {
		t.Fatalf("TestMarkNonceLimiterProgression: b2 status = %s, want NonceLimiterValidationScheduled", status)
	}

	// No-op when already past the sub-state a method expects: b2 is
	// Scheduled, not Awaiting, so scheduling it again changes nothing.
	c.MarkNonceLimiterValidationScheduled(b2.hash)
	_, status, err = c.GetBlockAndStatus(b2.hash)
	if err != nil {
		t.Fatalf("TestMarkNonceLimiterProgression: re-Get(b2) failed: %s", err)
	}
	if status != StatusNonceLimiterValidationScheduled {
		t.Fatalf("TestMarkNonceLimiterProgression: b2 status = %s after re-scheduling, want unchanged Scheduled", status)
	}

	c.MarkNonceLimiterValidationScheduled(b3.hash)
	c.MarkNonceLimiterValidated(b3.hash)
	_, status, err = c.GetBlockAndStatus(b3.hash)
	if err != nil {
		t.Fatalf("TestMarkNonceLimiterProgression: Get(b3) after progression failed: %s", err)
	}
	if status != StatusNonceLimiterValidated {
		t.Fatalf("TestMarkNonceLimiterProgression: b3 status = %s, want NonceLimiterValidated", status)
	}

	// b3 carries the highest cumulative_diff in the cache, so once it's
	// past the nonce-limiter sub-states, longest_chain's head-skip rule no
	// longer holds it back.
	hashes, _, notOnChain := c.GetLongestChainBlockTxsPairs()
	if len(hashes) != 3 || hashes[0] != b3.hash || hashes[1] != b2.hash || hashes[2] != b1.hash {
		t.Fatalf("TestMarkNonceLimiterProgression: longest_chain = %v, want [b3, b2, b1]", hashes)
	}
	if notOnChain != 2 {
		t.Fatalf("TestMarkNonceLimiterProgression: notOnChain = %d, want 2 (b3 NonceLimiterValidated, b2 Scheduled, neither OnChain)", notOnChain)
	}
}
