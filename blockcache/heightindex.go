package blockcache

import (
	"container/heap"

	"github.com/ArweaveTeam/blockcache/chainhash"
)

// heightIndex is the Height Index: an ordered set of
// (height, hash) pairs, sorted lexicographically on the pair. It backs
// Prune's repeated "take the lowest entry" scan and the invariant that
// every cached hash has exactly one heights entry.
//
// Lowest-entry extraction is grounded on kaspad's blockdag/blockheap.go
// upHeap/BlockHeap: a container/heap ordered by (height, hash). Unlike
// kaspad's heap, ours also needs O(log n) removal of an arbitrary hash
// (Remove/Prune can delete blocks anywhere in the index, not just the
// bottom), so each entry tracks its own heap slot and pos gives O(1)
// lookup of that slot.
type heightIndex struct {
	h pairHeap
	// pos maps a hash to its current index inside h.pairs, kept in sync by
	// heightIndex's Swap/Push/Pop so Remove can heap.Fix/heap.Pop in place.
	pos map[chainhash.IndepHash]int
}

type heightHashPair struct {
	height uint64
	hash   chainhash.IndepHash
}

func newHeightIndex() *heightIndex {
	hi := &heightIndex{pos: make(map[chainhash.IndepHash]int)}
	heap.Init(hi)
	return hi
}

func (hi *heightIndex) insert(height uint64, hash chainhash.IndepHash) {
	if _, exists := hi.pos[hash]; exists {
		return
	}
	heap.Push(hi, heightHashPair{height: height, hash: hash})
}

func (hi *heightIndex) remove(hash chainhash.IndepHash) {
	i, ok := hi.pos[hash]
	if !ok {
		return
	}
	heap.Remove(hi, i)
}

func (hi *heightIndex) len() int { return len(hi.h.pairs) }

// lowest returns the (height, hash) pair that sorts first, i.e. smallest
// height, ties broken by smallest hash.
func (hi *heightIndex) lowest() (heightHashPair, bool) {
	if len(hi.h.pairs) == 0 {
		return heightHashPair{}, false
	}
	return hi.h.pairs[0], true
}

// heap.Interface, delegated to by heightIndex so heap.Push/Pop/Fix/Remove
// can keep hi.pos in sync via Swap.

func (hi *heightIndex) Len() int { return hi.h.Len() }
func (hi *heightIndex) Less(i, j int) bool { return hi.h.Less(i, j) }
func (hi *heightIndex) Swap(i, j int) {
	hi.h.Swap(i, j)
	hi.pos[hi.h.pairs[i].hash] = i
	hi.pos[hi.h.pairs[j].hash] = j
}
func (hi *heightIndex) Push(x interface{}) {
	p := x.(heightHashPair)
	hi.pos[p.hash] = len(hi.h.pairs)
	hi.h.pairs = append(hi.h.pairs, p)
}
func (hi *heightIndex) Pop() interface{} {
	n := len(hi.h.pairs)
	p := hi.h.pairs[n-1]
	hi.h.pairs = hi.h.pairs[:n-1]
	delete(hi.pos, p.hash)
	return p
}

// pairHeap is the bare ordering for heightHashPair, kept as its own type
// (rather than inlining Less/Swap into heightIndex) the same way kaspad
// splits baseHeap from upHeap/downHeap in blockdag/blockheap.go.
type pairHeap struct {
	pairs []heightHashPair
}

func (p pairHeap) Len() int { return len(p.pairs) }
func (p pairHeap) Less(i, j int) bool {
	if p.pairs[i].height != p.pairs[j].height {
		return p.pairs[i].height < p.pairs[j].height
	}
	return p.pairs[i].hash.Less(p.pairs[j].hash)
}
func (p pairHeap) Swap(i, j int) { p.pairs[i], p.pairs[j] = p.pairs[j], p.pairs[i] }
