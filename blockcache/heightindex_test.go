package blockcache

import "testing"

func TestHeightIndexLowestOrdering(t *testing.T) {
	hi := newHeightIndex()
	hi.insert(5, hashByte(5))
	hi.insert(2, hashByte(2))
	hi.insert(9, hashByte(9))
	hi.insert(2, hashByte(1)) // same height, smaller hash should sort first

	pair, ok := hi.lowest()
	if !ok {
		t.Fatalf("TestHeightIndexLowestOrdering: expected a lowest entry")
	}
	if pair.height != 2 || pair.hash != hashByte(1) {
		t.Fatalf("TestHeightIndexLowestOrdering: lowest = (%d, %s), want (2, %s)", pair.height, pair.hash, hashByte(1))
	}
}

func TestHeightIndexInsertIsIdempotent(t *testing.T) {
	hi := newHeightIndex()
	hi.insert(1, hashByte(1))
	hi.insert(1, hashByte(1))
	if hi.len() != 1 {
		t.Fatalf("TestHeightIndexInsertIsIdempotent: len = %d, want 1", hi.len())
	}
}

func TestHeightIndexRemoveArbitrary(t *testing.T) {
	hi := newHeightIndex()
	hi.insert(1, hashByte(1))
	hi.insert(2, hashByte(2))
	hi.insert(3, hashByte(3))

	hi.remove(hashByte(2))
	if hi.len() != 2 {
		t.Fatalf("TestHeightIndexRemoveArbitrary: len = %d, want 2", hi.len())
	}

	pair, ok := hi.lowest()
	if !ok || pair.hash != hashByte(1) {
		t.Fatalf("TestHeightIndexRemoveArbitrary: lowest = %v, want hashByte(1)", pair)
	}

	hi.remove(hashByte(1))
	pair, ok = hi.lowest()
	if !ok || pair.hash != hashByte(3) {
		t.Fatalf("TestHeightIndexRemoveArbitrary: lowest after second remove = %v, want hashByte(3)", pair)
	}
}

func TestHeightIndexRemoveUnknownIsNoop(t *testing.T) {
	hi := newHeightIndex()
	hi.insert(1, hashByte(1))
	hi.remove(hashByte(99))
	if hi.len() != 1 {
		t.Fatalf("TestHeightIndexRemoveUnknownIsNoop: len = %d, want 1", hi.len())
	}
}
