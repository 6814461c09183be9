package blockcache

import (
	"testing"
	"time"
)

// fakeClock lets tests advance wall-clock deterministically instead of
// sleeping, the same way kaspad's blockdag tests inject a TimeSource.
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }
func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestAlternativeBlockExpiresAfterLifetime(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	b1 := chainBlock(1, nil, 0, 10)
	c := New(b1, Config{
		Fork26Height:               noFork26(),
		AlternativeBlockExpiration: time.Second,
		Now:                        clock.Now,
	})

	sol := solutionByte(0x42)
	stale := withSolution(chainBlock(2, b1, 1, 5), sol)
	if err := c.AddValidated(stale); err != nil {
		t.Fatalf("TestAlternativeBlockExpiresAfterLifetime: AddValidated failed: %s", err)
	}

	clock.advance(5 * time.Second)

	fresh := withSolution(chainBlock(3, b1, 1, 5), sol)
	if err := c.AddValidated(fresh); err != nil {
		t.Fatalf("TestAlternativeBlockExpiresAfterLifetime: AddValidated fresh failed: %s", err)
	}

	if _, err := c.Get(stale.hash); err != ErrNotFound {
		t.Fatalf("TestAlternativeBlockExpiresAfterLifetime: stale alternative should have aged out")
	}
	if _, err := c.Get(fresh.hash); err != nil {
		t.Fatalf("TestAlternativeBlockExpiresAfterLifetime: fresh block should still be cached: %s", err)
	}
}

func TestOnChainAlternativeNeverExpires(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	b1 := chainBlock(1, nil, 0, 10)
	c := New(b1, Config{
		Fork26Height:               noFork26(),
		AlternativeBlockExpiration: time.Second,
		Now:                        clock.Now,
	})

	sol := solutionByte(0x42)
	onChain := withSolution(chainBlock(2, b1, 1, 5), sol)
	if err := c.AddValidated(onChain); err != nil {
		t.Fatalf("TestOnChainAlternativeNeverExpires: AddValidated failed: %s", err)
	}
	if err := c.MarkTip(onChain.hash); err != nil {
		t.Fatalf("TestOnChainAlternativeNeverExpires: MarkTip failed: %s", err)
	}

	clock.advance(time.Hour)

	other := withSolution(chainBlock(3, b1, 1, 5), sol)
	if err := c.AddValidated(other); err != nil {
		t.Fatalf("TestOnChainAlternativeNeverExpires: AddValidated other failed: %s", err)
	}

	if _, err := c.Get(onChain.hash); err != nil {
		t.Fatalf("TestOnChainAlternativeNeverExpires: OnChain block must never be purged as an alternative: %s", err)
	}
}
